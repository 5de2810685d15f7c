package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-calorie-keeper/internal/app"
	"github.com/MKhiriev/go-calorie-keeper/internal/logger"
	"github.com/MKhiriev/go-calorie-keeper/internal/service"
	"github.com/MKhiriev/go-calorie-keeper/internal/utils"
)

// auth is an HTTP middleware that enforces bearer token authentication.
//
// It extracts the token from the "Authorization" header, resolves it to an
// active user via [service.AuthService.Authenticate] and stores both the user
// and its ID in the request context (see [utils.WithUser]) before delegating
// to the next handler.
//
// Missing or malformed headers, invalid or expired tokens, and tokens of
// deleted or inactive accounts are all answered with 401 and the same
// detail. A storage failure while loading the user is a 500.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Debug().Err(ErrEmptyAuthorizationHeader).Send()
			unauthorized(w)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Debug().Err(err).Send()
			unauthorized(w)
			return
		}

		ctx := r.Context()
		user, err := h.services.AuthService.Authenticate(ctx, tokenString)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrTokenIsExpiredOrInvalid), errors.Is(err, service.ErrUserInactive):
				log.Debug().Err(err).Msg("authentication rejected")
				unauthorized(w)
				return
			default:
				log.Err(err).Msg("error occurred during authentication")
				utils.WriteError(w, app.MsgInternalServerError, http.StatusInternalServerError)
				return
			}
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUser(ctx, user)))
	})
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	utils.WriteError(w, app.MsgUnauthorized, http.StatusUnauthorized)
}
