package http

import (
	"bytes"
	"io"
	"net/http"

	"github.com/MKhiriev/go-calorie-keeper/internal/app"
	"github.com/MKhiriev/go-calorie-keeper/internal/utils"
)

// hashHeader carries the hex HMAC-SHA256 of the body in both directions.
const hashHeader = "HashSHA256"

// withHashing verifies the HashSHA256 header of incoming bodies and signs
// every response body the same way. Requests without the header are passed
// through unchecked. It is a no-op when no hash key is configured.
func (h *Handler) withHashing(next http.Handler) http.Handler {
	if h.hasher == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if signature := r.Header.Get(hashHeader); signature != "" && r.Body != nil {
			body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
			if err != nil {
				h.logger.Err(err).Str("func", "*Handler.withHashing").Msg("failed to read request body")
				utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
				return
			}
			// restore request body
			r.Body = io.NopCloser(bytes.NewReader(body))

			if !h.hasher.Verify(body, signature) {
				h.logger.Error().Str("func", "*Handler.withHashing").
					Str("hash from request", signature).
					Msg("hashes are not equal")
				utils.WriteError(w, app.MsgIntegrityCheckFailed, http.StatusBadRequest)
				return
			}
		}

		hw := &hashingResponseWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(hw, r)

		w.Header().Set(hashHeader, h.hasher.SumHex(hw.body.Bytes()))
		w.WriteHeader(hw.status)
		w.Write(hw.body.Bytes())
	})
}

// hashingResponseWriter buffers the response so that its signature can be
// sent as a header before the body.
type hashingResponseWriter struct {
	http.ResponseWriter
	status int
	body   bytes.Buffer
}

func (w *hashingResponseWriter) WriteHeader(statusCode int) {
	w.status = statusCode
}

func (w *hashingResponseWriter) Write(b []byte) (int, error) {
	return w.body.Write(b)
}
