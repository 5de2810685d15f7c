package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-calorie-keeper/internal/utils"
	"github.com/MKhiriev/go-calorie-keeper/models"
)

// maxBodySize bounds every JSON request body.
const maxBodySize = 1 << 20

// decodeJSON reads a single JSON document from r into dst. Syntax errors and
// empty bodies are ErrMalformedBody; well-formed documents with mistyped
// fields are ErrInvalidBody. Unknown fields are ignored.
func decodeJSON(r *http.Request, dst any) error {
	decoder := json.NewDecoder(io.LimitReader(r.Body, maxBodySize))

	if err := decoder.Decode(dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		switch {
		case errors.As(err, &typeErr), errors.Is(err, models.ErrInvalidTimestamp):
			return fmt.Errorf("%w: %w", ErrInvalidBody, err)
		default:
			return fmt.Errorf("%w: %w", ErrMalformedBody, err)
		}
	}

	return nil
}

func mealIDFromRequest(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidMealID, raw)
	}

	return id, nil
}

func userIDFromRequest(r *http.Request) (int64, error) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		return 0, ErrNoUserInContext
	}
	return userID, nil
}
