package catalog

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/kailas-cloud/roommatch/internal/domain/property"
)

// listingRow is one row of the listings table. Amenities is a JSONB object of amenity id to bool.
type listingRow struct {
	ID         string         `db:"id"`
	Title      sql.NullString `db:"title"`
	Address    sql.NullString `db:"address"`
	City       sql.NullString `db:"city"`
	Locality   sql.NullString `db:"locality"`
	PostalCode sql.NullString `db:"postal_code"`
	Price      int64          `db:"price"`
	Amenities  []byte         `db:"amenities"`
	Visibility string         `db:"visibility"`
}

func toRecord(r listingRow) (property.Record, error) {
	rec := property.Record{
		ID:         r.ID,
		Title:      r.Title.String,
		Address:    r.Address.String,
		City:       r.City.String,
		Locality:   r.Locality.String,
		PostalCode: r.PostalCode.String,
		Price:      r.Price,
		Visibility: property.ParseVisibility(r.Visibility),
	}
	if len(r.Amenities) > 0 && string(r.Amenities) != "null" {
		if err := json.Unmarshal(r.Amenities, &rec.Amenities); err != nil {
			return property.Record{}, fmt.Errorf("listing %s amenities: %w", r.ID, err)
		}
	}
	return rec, nil
}
