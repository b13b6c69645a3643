package chi

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"

	domprop "github.com/kailas-cloud/roommatch/internal/domain/property"
	propertyuc "github.com/kailas-cloud/roommatch/internal/usecase/property"
)

// maxIDLength bounds path identifiers.
const maxIDLength = 128

// pathParam binds a required simple-style path parameter.
func pathParam(r *http.Request, name string) (string, error) {
	var v string
	err := runtime.BindStyledParameterWithOptions("simple", name, chi.URLParam(r, name), &v,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return "", fmt.Errorf("invalid format for parameter %s: %w", name, err)
	}
	if v == "" || len(v) > maxIDLength {
		return "", fmt.Errorf("parameter %s must be 1 to %d characters", name, maxIDLength)
	}
	return v, nil
}

// propertyParams are the query parameters of the property search endpoints.
type propertyParams struct {
	City      *string
	Keyword   *string
	MinPrice  *int64
	MaxPrice  *int64
	Amenities *[]string
	Sort      *string
	Limit     *int
	Offset    *int
}

func bindPropertyParams(r *http.Request) (propertyParams, error) {
	var p propertyParams
	q := r.URL.Query()
	binds := []struct {
		name string
		dest any
	}{
		{"city", &p.City},
		{"keyword", &p.Keyword},
		{"min_price", &p.MinPrice},
		{"max_price", &p.MaxPrice},
		{"amenities", &p.Amenities},
		{"sort", &p.Sort},
		{"limit", &p.Limit},
		{"offset", &p.Offset},
	}
	for _, b := range binds {
		if err := runtime.BindQueryParameter("form", true, false, b.name, q, b.dest); err != nil {
			return propertyParams{}, fmt.Errorf("invalid format for parameter %s: %w", b.name, err)
		}
	}
	return p, nil
}

// query builds the domain query. Validation errors wrap domain.ErrInvalidQuery.
func (p propertyParams) query() (domprop.Query, error) {
	qp := domprop.QueryParams{
		City:     deref(p.City),
		Keyword:  deref(p.Keyword),
		MinPrice: p.MinPrice,
		MaxPrice: p.MaxPrice,
	}
	if p.Amenities != nil {
		qp.Amenities = *p.Amenities
	}
	return domprop.NewQuery(qp)
}

func (p propertyParams) page() (propertyuc.Page, error) {
	sort, err := propertyuc.ParseSort(deref(p.Sort))
	if err != nil {
		return propertyuc.Page{}, err
	}
	return propertyuc.Page{Limit: deref(p.Limit), Offset: deref(p.Offset), Sort: sort}, nil
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
