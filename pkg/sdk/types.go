package roommatch

import (
	domcompat "github.com/kailas-cloud/roommatch/internal/domain/compat"
	domfeed "github.com/kailas-cloud/roommatch/internal/domain/feed"
	"github.com/kailas-cloud/roommatch/internal/domain/profile"
	domprop "github.com/kailas-cloud/roommatch/internal/domain/property"
	domss "github.com/kailas-cloud/roommatch/internal/domain/savedsearch"
	feeduc "github.com/kailas-cloud/roommatch/internal/usecase/feed"
	propertyuc "github.com/kailas-cloud/roommatch/internal/usecase/property"
)

// Profile is a user as the matching engine sees it.
type Profile = profile.UserProfile

// Breakdown is a compatibility score with its per-category parts.
type Breakdown = domcompat.Breakdown

// FeedFilters select the candidates of a feed. Changing them rebuilds the queue.
type FeedFilters = domfeed.Filters

// FeedState is the persisted cursor of one viewer.
type FeedState = domfeed.State

// FeedView is the current card plus the cursor state.
type FeedView = feeduc.View

// Card is a candidate with its breakdown against the viewer.
type Card = feeduc.Card

// SwipeResult is the effect of a swipe plus the next view.
type SwipeResult = feeduc.SwipeResult

// Match is one accepted candidate.
type Match = domfeed.Match

// Property is one catalog listing.
type Property = domprop.Record

// SavedSearch is a named property query snapshot.
type SavedSearch = domss.SavedSearch

// Sort orders property results.
type Sort = propertyuc.Sort

// Sort orders.
const (
	SortNone      = propertyuc.SortNone
	SortPriceAsc  = propertyuc.SortPriceAsc
	SortPriceDesc = propertyuc.SortPriceDesc
)

// Page selects a window of property results. A zero Limit uses the default page size.
type Page = propertyuc.Page

// PropertyPage is one page of results plus the total match count.
type PropertyPage = propertyuc.Result

// PropertyQuery holds the raw property search inputs. Nil prices are absent clauses.
type PropertyQuery struct {
	City      string
	Keyword   string
	MinPrice  *int64
	MaxPrice  *int64
	Amenities []string
}

// Price returns a pointer to v for PropertyQuery price bounds.
func Price(v int64) *int64 { return &v }

func (q PropertyQuery) build() (domprop.Query, error) {
	return domprop.NewQuery(domprop.QueryParams{
		City:      q.City,
		Keyword:   q.Keyword,
		MinPrice:  q.MinPrice,
		MaxPrice:  q.MaxPrice,
		Amenities: q.Amenities,
	})
}
