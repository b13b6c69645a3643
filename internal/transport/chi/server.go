package chi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"slices"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	domfeed "github.com/kailas-cloud/roommatch/internal/domain/feed"
	domprop "github.com/kailas-cloud/roommatch/internal/domain/property"
	domss "github.com/kailas-cloud/roommatch/internal/domain/savedsearch"
	feeduc "github.com/kailas-cloud/roommatch/internal/usecase/feed"
	healthuc "github.com/kailas-cloud/roommatch/internal/usecase/health"
	propertyuc "github.com/kailas-cloud/roommatch/internal/usecase/property"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 64 << 10

// Server serves the matching HTTP API.
type Server struct {
	compat        CompatService
	feeds         FeedService
	properties    PropertyService
	searches      SavedSearchService
	health        HealthService
	validate      *validator.Validate
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	compat CompatService,
	feeds FeedService,
	properties PropertyService,
	searches SavedSearchService,
	health HealthService,
) *Server {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return &Server{
		compat:        compat,
		feeds:         feeds,
		properties:    properties,
		searches:      searches,
		health:        health,
		validate:      v,
		errorHandlers: defaultErrorHandlers(),
	}
}

// Register mounts every route on r.
func (s *Server) Register(r chi.Router) {
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/compatibility/{a}/{b}", s.Compare)

		r.Route("/feeds/{viewer}", func(r chi.Router) {
			r.Put("/", s.OpenFeed)
			r.Get("/", s.GetFeed)
			r.Post("/accept", s.Accept)
			r.Post("/reject", s.Reject)
		})

		r.Get("/properties", s.SearchProperties)

		r.Route("/users/{owner}", func(r chi.Router) {
			r.Get("/matches", s.ListMatches)
			r.Post("/saved-searches", s.SaveSearch)
			r.Get("/saved-searches", s.ListSavedSearches)
			r.Get("/saved-searches/{id}", s.GetSavedSearch)
			r.Delete("/saved-searches/{id}", s.DeleteSavedSearch)
			r.Get("/saved-searches/{id}/properties", s.RunSavedSearch)
		})
	})
}

// Compare handles GET /compatibility/{a}/{b}.
func (s *Server) Compare(w http.ResponseWriter, r *http.Request) {
	a, ok := s.path(w, r, "a")
	if !ok {
		return
	}
	b, ok := s.path(w, r, "b")
	if !ok {
		return
	}

	bd, err := s.compat.Compare(r.Context(), a, b)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, bd)
}

// OpenFeed handles PUT /feeds/{viewer}.
func (s *Server) OpenFeed(w http.ResponseWriter, r *http.Request) {
	viewer, ok := s.path(w, r, "viewer")
	if !ok {
		return
	}
	var req OpenFeedRequest
	if !s.decode(w, r, &req, true) {
		return
	}

	filters, err := domfeed.NewFilters(req.City, req.Interests)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	v, err := s.feeds.Open(r.Context(), viewer, filters)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, feedToResponse(v))
}

// GetFeed handles GET /feeds/{viewer}.
func (s *Server) GetFeed(w http.ResponseWriter, r *http.Request) {
	viewer, ok := s.path(w, r, "viewer")
	if !ok {
		return
	}
	v, err := s.feeds.Current(r.Context(), viewer)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, feedToResponse(v))
}

// Accept handles POST /feeds/{viewer}/accept.
func (s *Server) Accept(w http.ResponseWriter, r *http.Request) {
	s.swipe(w, r, s.feeds.Accept)
}

// Reject handles POST /feeds/{viewer}/reject.
func (s *Server) Reject(w http.ResponseWriter, r *http.Request) {
	s.swipe(w, r, s.feeds.Reject)
}

type swipeFunc func(ctx context.Context, viewerID, expectedID string) (feeduc.SwipeResult, error)

func (s *Server) swipe(w http.ResponseWriter, r *http.Request, fn swipeFunc) {
	viewer, ok := s.path(w, r, "viewer")
	if !ok {
		return
	}
	var req SwipeRequest
	if !s.decode(w, r, &req, false) {
		return
	}

	res, err := fn(r.Context(), viewer, req.CandidateID)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	resp := SwipeResponse{
		Action:  res.Outcome.Action,
		Applied: res.Outcome.Applied,
		Match:   res.Outcome.Match,
		Feed:    feedToResponse(res.View),
	}
	if res.Outcome.Candidate != nil {
		resp.Candidate = res.Outcome.Candidate.Profile.ID
	}
	writeJSON(w, http.StatusOK, resp)
}

// ListMatches handles GET /users/{owner}/matches.
func (s *Server) ListMatches(w http.ResponseWriter, r *http.Request) {
	viewer, ok := s.path(w, r, "owner")
	if !ok {
		return
	}
	matches, err := s.feeds.Matches(r.Context(), viewer)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	if matches == nil {
		matches = []domfeed.Match{}
	}
	writeJSON(w, http.StatusOK, MatchListResponse{Items: matches, Total: len(matches)})
}

// SearchProperties handles GET /properties.
func (s *Server) SearchProperties(w http.ResponseWriter, r *http.Request) {
	params, err := bindPropertyParams(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, err.Error())
		return
	}
	q, err := params.query()
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	page, err := params.page()
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	res, err := s.properties.Search(r.Context(), q, Privileged(r.Context()), page)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, propertiesToResponse(res))
}

// SaveSearch handles POST /users/{owner}/saved-searches.
func (s *Server) SaveSearch(w http.ResponseWriter, r *http.Request) {
	owner, ok := s.path(w, r, "owner")
	if !ok {
		return
	}
	var req SaveSearchRequest
	if !s.decode(w, r, &req, true) {
		return
	}

	q, err := domprop.NewQuery(domprop.QueryParams{
		City:      req.City,
		Keyword:   req.Keyword,
		MinPrice:  req.MinPrice,
		MaxPrice:  req.MaxPrice,
		Amenities: req.Amenities,
	})
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	ss, err := s.searches.Save(r.Context(), owner, req.Name, q)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	w.Header().Set("Location", fmt.Sprintf("/api/v1/users/%s/saved-searches/%s", owner, ss.ID()))
	writeJSON(w, http.StatusCreated, savedSearchToResponse(ss))
}

// ListSavedSearches handles GET /users/{owner}/saved-searches.
func (s *Server) ListSavedSearches(w http.ResponseWriter, r *http.Request) {
	owner, ok := s.path(w, r, "owner")
	if !ok {
		return
	}
	list, err := s.searches.List(r.Context(), owner)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	items := make([]SavedSearchResponse, len(list))
	for i, ss := range list {
		items[i] = savedSearchToResponse(ss)
	}
	writeJSON(w, http.StatusOK, SavedSearchListResponse{Items: items, Total: len(items)})
}

// GetSavedSearch handles GET /users/{owner}/saved-searches/{id}.
func (s *Server) GetSavedSearch(w http.ResponseWriter, r *http.Request) {
	owner, id, ok := s.ownerAndID(w, r)
	if !ok {
		return
	}
	ss, err := s.searches.Get(r.Context(), owner, id)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, savedSearchToResponse(ss))
}

// DeleteSavedSearch handles DELETE /users/{owner}/saved-searches/{id}.
func (s *Server) DeleteSavedSearch(w http.ResponseWriter, r *http.Request) {
	owner, id, ok := s.ownerAndID(w, r)
	if !ok {
		return
	}
	if err := s.searches.Delete(r.Context(), owner, id); err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RunSavedSearch handles GET /users/{owner}/saved-searches/{id}/properties.
// Pagination and sort come from the query string; filter parameters are ignored.
func (s *Server) RunSavedSearch(w http.ResponseWriter, r *http.Request) {
	owner, id, ok := s.ownerAndID(w, r)
	if !ok {
		return
	}
	params, err := bindPropertyParams(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, err.Error())
		return
	}
	page, err := params.page()
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	res, err := s.searches.Run(r.Context(), owner, id, Privileged(r.Context()), page)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, propertiesToResponse(res))
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}
	writeJSON(w, httpStatus, HealthResponse{Status: string(report.Status), Checks: checks})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func (s *Server) path(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	v, err := pathParam(r, name)
	if err != nil {
		writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, err.Error())
		return "", false
	}
	return v, true
}

func (s *Server) ownerAndID(w http.ResponseWriter, r *http.Request) (string, string, bool) {
	owner, ok := s.path(w, r, "owner")
	if !ok {
		return "", "", false
	}
	id, ok := s.path(w, r, "id")
	if !ok {
		return "", "", false
	}
	return owner, id, true
}

// decode reads a JSON body into dst and validates it. An empty body is accepted unless required.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst any, required bool) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if !errors.Is(err, io.EOF) || required {
			writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, "Invalid request body: "+err.Error())
			return false
		}
	}
	if err := s.validate.Struct(dst); err != nil {
		writeError(w, http.StatusBadRequest, ErrorCodeValidationFailed, validationMessage(err))
		return false
	}
	return true
}

// --- Mapping ---

func feedToResponse(v feeduc.View) FeedResponse {
	resp := FeedResponse{
		ViewerID:  v.State.ViewerID,
		Status:    v.State.Status(),
		Filters:   v.State.Filters,
		Position:  v.State.Cursor,
		Length:    v.State.Length,
		Remaining: v.Remaining,
		Matches:   v.State.Matches,
		Rebuilt:   v.Rebuilt,
	}
	if v.Current != nil {
		resp.Current = &CardResponse{Candidate: v.Current.Candidate, Breakdown: v.Current.Breakdown}
	}
	return resp
}

func propertiesToResponse(res propertyuc.Result) PropertyListResponse {
	items := make([]PropertyResponse, len(res.Items))
	for i, r := range res.Items {
		items[i] = propertyToResponse(r)
	}
	return PropertyListResponse{Items: items, Total: res.Total, Limit: res.Limit, Offset: res.Offset}
}

func propertyToResponse(r domprop.Record) PropertyResponse {
	amenities := make([]string, 0, len(r.Amenities))
	for k, v := range r.Amenities {
		if v {
			amenities = append(amenities, k)
		}
	}
	slices.Sort(amenities)
	return PropertyResponse{
		ID:         r.ID,
		Title:      r.Title,
		Address:    r.Address,
		City:       r.City,
		Locality:   r.Locality,
		PostalCode: r.PostalCode,
		Price:      r.Price,
		Amenities:  amenities,
		Visibility: r.Visibility,
	}
}

func savedSearchToResponse(ss domss.SavedSearch) SavedSearchResponse {
	return SavedSearchResponse{
		ID:        ss.ID(),
		OwnerID:   ss.OwnerID(),
		Name:      ss.Name(),
		Query:     ss.Snapshot(),
		CreatedAt: ss.CreatedAt(),
	}
}
