package middlewares

import (
	"crypto/rand"
	"crypto/rsa"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-expense-note/internal/payload"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tiers returns the server and frontend ciphers built from two fresh key pairs.
func tiers(t *testing.T) (server, frontend *payload.Cipher) {
	t.Helper()
	serverKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	frontendKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	return payload.New(serverKey, &frontendKey.PublicKey), payload.New(frontendKey, &serverKey.PublicKey)
}

func envelopeBody(t *testing.T, sealed string) io.Reader {
	t.Helper()
	data, err := json.Marshal(payload.Envelope{Payload: sealed})
	require.NoError(t, err)
	return strings.NewReader(string(data))
}

func TestEnvelope_RoundTrip(t *testing.T) {
	server, frontend := tiers(t)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var in map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, "GEMINI", in["defaultModel"])
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"message":"API tokens updated successfully."}` + "\n"))
	})
	handler := EncryptMiddleware(server)(DecryptMiddleware(server)(next))

	sealed, err := frontend.EncryptForPeer(map[string]string{"defaultModel": "GEMINI", "geminiKey": "g-key"})
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPut, "/api/users/v2/api-token", envelopeBody(t, sealed)))

	require.Equal(t, http.StatusOK, rr.Code)
	var env payload.Envelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	require.NotEmpty(t, env.Payload)
	assert.NotContains(t, rr.Body.String(), "successfully")

	plaintext, err := frontend.DecryptFromPeer(env.Payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"message":"API tokens updated successfully."}`, string(plaintext))
}

func TestDecryptMiddleware_Rejects(t *testing.T) {
	server, _ := tiers(t)
	_, stranger := tiers(t)

	foreign, err := stranger.EncryptForPeer(map[string]string{"defaultModel": "OPENAI"})
	require.NoError(t, err)

	tests := []struct {
		name        string
		body        io.Reader
		expectedErr string
	}{
		{name: "no body", body: strings.NewReader(""), expectedErr: "Missing encrypted payload"},
		{name: "plain json", body: strings.NewReader(`{"defaultModel":"GEMINI"}`), expectedErr: "Missing encrypted payload"},
		{name: "not base64", body: envelopeBody(t, "***"), expectedErr: "Invalid encrypted payload"},
		{name: "wrong key", body: envelopeBody(t, foreign), expectedErr: "Invalid encrypted payload"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				t.Fatal("next must not run")
			})

			rr := httptest.NewRecorder()
			DecryptMiddleware(server)(next).ServeHTTP(rr, httptest.NewRequest(http.MethodPut, "/", tt.body))

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.JSONEq(t, `{"error":"`+tt.expectedErr+`"}`, rr.Body.String())
		})
	}
}

func TestEncryptMiddleware_PassesErrorsThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	enc := NewMockPayloadEncrypter(ctrl)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"Unauthorized"}`))
	})

	rr := httptest.NewRecorder()
	EncryptMiddleware(enc)(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, rr.Body.String())
}

func TestEncryptMiddleware_EncryptFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	enc := NewMockPayloadEncrypter(ctrl)
	enc.EXPECT().EncryptForPeer(gomock.Any()).Return("", errors.New("payload exceeds the RSA-OAEP block size"))

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"defaultModel":"GEMINI"}`))
	})

	rr := httptest.NewRecorder()
	EncryptMiddleware(enc)(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.NotContains(t, rr.Body.String(), "GEMINI")
}

func TestDecryptMiddleware_UsesDecrypter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dec := NewMockPayloadDecrypter(ctrl)
	dec.EXPECT().DecryptFromPeer("sealed").Return([]byte(`{"openaiKey":"sk"}`), nil)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, `{"openaiKey":"sk"}`, string(body))
		assert.EqualValues(t, len(body), r.ContentLength)
		w.WriteHeader(http.StatusNoContent)
	})

	rr := httptest.NewRecorder()
	DecryptMiddleware(dec)(next).ServeHTTP(rr, httptest.NewRequest(http.MethodPut, "/", envelopeBody(t, "sealed")))

	assert.Equal(t, http.StatusNoContent, rr.Code)
}
