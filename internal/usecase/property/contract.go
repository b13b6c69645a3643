package property

import (
	"context"

	domprop "github.com/kailas-cloud/roommatch/internal/domain/property"
)

// Catalog loads the listing catalog in catalog order.
type Catalog interface {
	List(ctx context.Context) ([]domprop.Record, error)
}
