package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/httprate"

	"github.com/MKhiriev/go-calorie-keeper/internal/app"
	"github.com/MKhiriev/go-calorie-keeper/internal/utils"
)

// rateLimiter limits each caller to rateLimit requests per window. Callers
// are keyed by user ID once authenticated and by client IP otherwise.
func (h *Handler) rateLimiter() func(http.Handler) http.Handler {
	return httprate.Limit(
		h.rateLimit,
		h.rateLimitWindow,
		httprate.WithKeyFuncs(keyByUserOrIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			utils.WriteError(w, app.MsgTooManyRequests, http.StatusTooManyRequests)
		}),
	)
}

func keyByUserOrIP(r *http.Request) (string, error) {
	if userID, ok := utils.GetUserIDFromContext(r.Context()); ok {
		return "user:" + strconv.FormatInt(userID, 10), nil
	}
	return httprate.KeyByIP(r)
}
