package http

import (
	"errors"
	"net/http"

	"github.com/dmaraujo/gymkeeper/internal/logger"
	"github.com/dmaraujo/gymkeeper/internal/service"
	"github.com/dmaraujo/gymkeeper/internal/store"
	"github.com/dmaraujo/gymkeeper/internal/utils"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrTokenRevoked:            http.StatusUnauthorized,

	store.ErrEmailAlreadyExists: http.StatusBadRequest,
	store.ErrNoUserWasFound:     http.StatusUnauthorized,
	store.ErrNotFound:           http.StatusNotFound,

	store.ErrBuildingQuery:  http.StatusInternalServerError,
	store.ErrExecutingQuery: http.StatusInternalServerError,
	store.ErrScanningRow:    http.StatusInternalServerError,
	store.ErrScanningRows:   http.StatusInternalServerError,
}

var errorMessageMap = map[error]string{
	service.ErrInvalidDataProvided:     "invalid data provided",
	service.ErrWrongPassword:           "invalid email or password",
	service.ErrTokenIsExpiredOrInvalid: "token is expired or invalid",
	service.ErrTokenRevoked:            "token has been revoked",

	store.ErrEmailAlreadyExists: "email already registered",
	store.ErrNoUserWasFound:     "invalid email or password",
	store.ErrNotFound:           "record not found",
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error) string {
	for target, message := range errorMessageMap {
		if errors.Is(err, target) {
			return message
		}
	}
	return http.StatusText(http.StatusInternalServerError)
}

// respondError translates a service or store error into the uniform error
// body. Validation failures keep their per-field detail; everything mapped
// to 500 is reduced to a generic message so internals never leak, with the
// detail going to the request log only.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		utils.WriteError(w, "invalid data provided", http.StatusBadRequest, validationErr.Fields...)
		return
	}

	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		log.Err(err).Msg("request failed with internal error")
	} else {
		log.Err(err).Send()
	}

	utils.WriteError(w, messageFromError(err), status)
}
