package chi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/kailas-cloud/roommatch/internal/domain"
	"github.com/kailas-cloud/roommatch/internal/logger"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

func defaultErrorHandlers() []errorHandler {
	// Order matters: ErrInvalidSnapshot and ErrInvalidQuery can wrap ErrUnknownVocabulary.
	return []errorHandler{
		sentinelHandler(domain.ErrInvalidSnapshot, http.StatusUnprocessableEntity, ErrorCodeInvalidSnapshot),
		vocabularyHandler,
		sentinelHandler(domain.ErrNotFound, http.StatusNotFound, ErrorCodeNotFound),
		sentinelHandler(domain.ErrAlreadyExists, http.StatusConflict, ErrorCodeAlreadyExists),
		sentinelHandler(domain.ErrFeedNotOpened, http.StatusConflict, ErrorCodeFeedNotOpened),
		sentinelHandler(domain.ErrStaleFeed, http.StatusConflict, ErrorCodeStaleFeed),
		sentinelHandler(domain.ErrSavedSearchLimit, http.StatusUnprocessableEntity, ErrorCodeSearchLimit),
		sentinelHandler(domain.ErrInvalidQuery, http.StatusBadRequest, ErrorCodeValidationFailed),
		sentinelHandler(domain.ErrInvalidProfile, http.StatusBadRequest, ErrorCodeValidationFailed),
		sentinelHandler(domain.ErrInvalidSavedSearch, http.StatusBadRequest, ErrorCodeValidationFailed),
	}
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
// Validation errors carry user input only, so their full text is returned.
func safeDomainMessage(err error) string {
	for _, s := range []error{
		domain.ErrInvalidQuery,
		domain.ErrInvalidProfile,
		domain.ErrInvalidSavedSearch,
		domain.ErrUnknownVocabulary,
		domain.ErrStaleFeed,
	} {
		if errors.Is(err, s) {
			return err.Error()
		}
	}
	for _, s := range []error{
		domain.ErrInvalidSnapshot,
		domain.ErrNotFound,
		domain.ErrAlreadyExists,
		domain.ErrFeedNotOpened,
		domain.ErrSavedSearchLimit,
	} {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code ErrorCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

// vocabularyHandler reports the offending registry and value.
func vocabularyHandler(w http.ResponseWriter, err error, msg string) bool {
	var ve *domain.VocabularyError
	if !errors.As(err, &ve) {
		return false
	}
	writeJSON(w, http.StatusBadRequest, ErrorResponse{
		Code:     ErrorCodeUnknownVocab,
		Message:  msg,
		Registry: ve.Registry,
		Value:    ve.Value,
	})
	return true
}

func (s *Server) handleDomainError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromContext(r.Context())
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			log.Warn("domain error", zap.Error(err))
			return
		}
	}
	log.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, ErrorCodeInternalError, "internal error")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code ErrorCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// validationMessage flattens validator errors into one readable line.
func validationMessage(err error) string {
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return err.Error()
	}
	msg := ""
	for i, fe := range ves {
		if i > 0 {
			msg += ", "
		}
		msg += fieldMessage(fe)
	}
	return msg
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "max":
		return field + " must be at most " + fe.Param()
	case "gte":
		return field + " must be at least " + fe.Param()
	default:
		return field + " is invalid"
	}
}
