package middlewares

//go:generate mockgen -source=envelope.go -destination=mock_envelope.go -package=middlewares

import (
	"bytes"
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"strconv"

	"github.com/sbilibin2017/gw-expense-note/internal/logger"
	"github.com/sbilibin2017/gw-expense-note/internal/payload"
)

// PayloadDecrypter opens envelopes the frontend encrypted for this server.
type PayloadDecrypter interface {
	DecryptFromPeer(encoded string) ([]byte, error)
}

// PayloadEncrypter seals response bodies for the frontend.
type PayloadEncrypter interface {
	EncryptForPeer(v any) (string, error)
}

// DecryptMiddleware replaces an {"payload": ...} request body with the JSON it encrypts.
func DecryptMiddleware(cipher PayloadDecrypter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var env payload.Envelope
			if err := json.NewDecoder(r.Body).Decode(&env); err != nil || env.Payload == "" {
				writeError(w, http.StatusBadRequest, "Missing encrypted payload")
				return
			}

			plaintext, err := cipher.DecryptFromPeer(env.Payload)
			if err != nil {
				logger.Log.Infow("failed to decrypt request payload", "request_id", RequestIDFromContext(r.Context()), "error", err)
				writeError(w, http.StatusBadRequest, "Invalid encrypted payload")
				return
			}

			r.Body = io.NopCloser(bytes.NewReader(plaintext))
			r.ContentLength = int64(len(plaintext))
			r.Header.Set("Content-Type", "application/json")
			r.Header.Set("Content-Length", strconv.Itoa(len(plaintext)))

			next.ServeHTTP(w, r)
		})
	}
}

// EncryptMiddleware wraps a successful JSON response into an envelope.
// Error responses pass through unchanged so the client can still read them.
func EncryptMiddleware(cipher PayloadEncrypter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			buf := newBufferedResponse()
			next.ServeHTTP(buf, r)

			if buf.isError() || !isJSON(buf.header.Get("Content-Type")) {
				buf.flush(w)
				return
			}

			sealed, err := cipher.EncryptForPeer(json.RawMessage(bytes.TrimSpace(buf.body.Bytes())))
			if err != nil {
				logger.Log.Errorw("failed to encrypt response payload", "request_id", RequestIDFromContext(r.Context()), "error", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
				return
			}

			for k, v := range buf.header {
				w.Header()[k] = v
			}
			w.Header().Del("Content-Length")
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(buf.Status())
			if err := json.NewEncoder(w).Encode(payload.Envelope{Payload: sealed}); err != nil {
				logger.Log.Errorw("failed to encode response", "error", err)
			}
		})
	}
}

func isJSON(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	return err == nil && mediaType == "application/json"
}
