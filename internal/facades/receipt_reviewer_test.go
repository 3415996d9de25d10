package facades

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReceiptReviewHTTPFacade_Review(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/review", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var in ReviewRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, "Summarize my spending habits", in.Query)
		assert.Equal(t, "GEMINI", in.Model)
		require.Len(t, in.Receipts, 1)
		assert.Equal(t, "Store 1", in.Receipts[0].MerchantName)

		w.Write([]byte("You mostly spend on groceries."))
	}))
	defer srv.Close()

	f := NewReceiptReviewHTTPFacade(srv.URL, srv.Client())
	got, err := f.Review(context.Background(), ReviewRequest{
		Receipts: []ReviewReceipt{{MerchantName: "Store 1", Date: "2023-10-20T00:00:00.000Z", TotalCost: 100, Category: "Food"}},
		Query:    "Summarize my spending habits",
		Model:    "GEMINI",
		APIKey:   "k",
	})
	require.NoError(t, err)
	assert.Equal(t, "You mostly spend on groceries.", got)
}

func TestReceiptReviewHTTPFacade_EmptyHistory(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var raw map[string]json.RawMessage
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		assert.JSONEq(t, `[]`, string(raw["receipts"]))
		w.Write([]byte("No data."))
	}))
	defer srv.Close()

	got, err := NewReceiptReviewHTTPFacade(srv.URL, srv.Client()).Review(context.Background(), ReviewRequest{Query: "q"})
	require.NoError(t, err)
	assert.Equal(t, "No data.", got)
}

func TestReceiptReviewHTTPFacade_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	got, err := NewReceiptReviewHTTPFacade(srv.URL, srv.Client()).Review(context.Background(), ReviewRequest{Query: "q"})
	assert.Error(t, err)
	assert.Empty(t, got)
}
