package facades

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
)

func TestGmailMailer_Send(t *testing.T) {
	var raw string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/gmail/v1/users/me/messages/send", r.URL.Path)

		var msg struct {
			Raw string `json:"raw"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&msg))
		raw = msg.Raw

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"m1"}`))
	}))
	defer srv.Close()

	ctx := context.Background()
	m, err := NewGmailMailer(ctx, GmailConfig{From: "noreply@expensenote.app"},
		option.WithHTTPClient(srv.Client()),
		option.WithEndpoint(srv.URL+"/"),
	)
	require.NoError(t, err)

	err = m.Send(ctx, "mike@example.com", "ExpenseNote - Password Reset Request", "Click the link")
	require.NoError(t, err)

	decoded, err := base64.URLEncoding.DecodeString(raw)
	require.NoError(t, err)
	text := string(decoded)
	assert.True(t, strings.HasPrefix(text, "From: noreply@expensenote.app\r\n"))
	assert.Contains(t, text, "To: mike@example.com\r\n")
	assert.Contains(t, text, "Subject: ExpenseNote - Password Reset Request\r\n")
	assert.True(t, strings.HasSuffix(text, "\r\n\r\nClick the link"))
}

func TestGmailMailer_SendFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error":{"code":403,"message":"insufficient scope"}}`))
	}))
	defer srv.Close()

	ctx := context.Background()
	m, err := NewGmailMailer(ctx, GmailConfig{From: "noreply@expensenote.app"},
		option.WithHTTPClient(srv.Client()),
		option.WithEndpoint(srv.URL+"/"),
	)
	require.NoError(t, err)

	assert.Error(t, m.Send(ctx, "mike@example.com", "s", "b"))
}
