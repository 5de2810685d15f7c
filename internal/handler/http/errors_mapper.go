package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-calorie-keeper/internal/app"
	"github.com/MKhiriev/go-calorie-keeper/internal/logger"
	"github.com/MKhiriev/go-calorie-keeper/internal/service"
	"github.com/MKhiriev/go-calorie-keeper/internal/store"
	"github.com/MKhiriev/go-calorie-keeper/internal/utils"
)

type errorMapping struct {
	target error
	status int
	detail string
}

// errorMappings is matched in order; the first target found in the error
// chain wins. An empty detail means the error text itself is safe to show.
var errorMappings = []errorMapping{
	{ErrMalformedBody, http.StatusBadRequest, app.MsgInvalidJSON},
	{ErrInvalidBody, http.StatusUnprocessableEntity, ""},
	{ErrInvalidMealID, http.StatusUnprocessableEntity, app.MsgInvalidMealID},
	{ErrNoUserInContext, http.StatusUnauthorized, app.MsgUnauthorized},

	{service.ErrInvalidDataProvided, http.StatusUnprocessableEntity, ""},
	{service.ErrInvalidDateFilter, http.StatusBadRequest, app.MsgInvalidDateFormat},
	{service.ErrWrongPassword, http.StatusBadRequest, app.MsgLoginBadCredentials},
	{service.ErrUserInactive, http.StatusBadRequest, app.MsgLoginBadCredentials},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, app.MsgUnauthorized},
	{service.ErrDatabaseUnavailable, http.StatusServiceUnavailable, app.MsgStatusError},

	{store.ErrEmailAlreadyExists, http.StatusConflict, app.MsgRegisterUserAlreadyExists},
	{store.ErrMealNotFound, http.StatusNotFound, app.MsgMealNotFound},
	{store.ErrNoUserWasFound, http.StatusNotFound, app.MsgUnauthorized},

	{store.ErrBuildingSQLQuery, http.StatusInternalServerError, app.MsgInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError, app.MsgInternalServerError},
	{store.ErrExecutingStatement, http.StatusInternalServerError, app.MsgInternalServerError},
	{store.ErrScanningRow, http.StatusInternalServerError, app.MsgInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError, app.MsgInternalServerError},
}

// statusFromError returns the HTTP status and the client-facing detail for
// err. Unknown errors are 500 and never expose their text.
func statusFromError(err error) (int, string) {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			if m.detail == "" {
				return m.status, err.Error()
			}
			return m.status, m.detail
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

// writeError logs err with the request-scoped logger and replies with
// {"detail": ...}.
func writeError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	status, detail := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", funcName).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Str("func", funcName).Int("status", status).Msg("request rejected")
	}

	utils.WriteError(w, detail, status)
}
