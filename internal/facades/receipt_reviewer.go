package facades

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// ReviewItem is one receipt line in a review request.
type ReviewItem struct {
	ItemName     string  `json:"itemName"`
	ItemQuantity int     `json:"itemQuantity"`
	ItemCost     float64 `json:"itemCost"`
}

// ReviewReceipt is a receipt as sent to the analysis service. Images are never sent.
type ReviewReceipt struct {
	MerchantName string       `json:"merchantName"`
	Date         string       `json:"date"`
	TotalCost    float64      `json:"totalCost"`
	Category     string       `json:"category"`
	ItemizedList []ReviewItem `json:"itemizedList"`
}

// ReviewRequest is the body of POST /review.
type ReviewRequest struct {
	Receipts []ReviewReceipt `json:"receipts"`
	Query    string          `json:"query"`
	Model    string          `json:"model"`
	APIKey   string          `json:"apiKey"`
}

// ReceiptReviewHTTPFacade calls the analysis service over HTTP.
type ReceiptReviewHTTPFacade struct {
	baseURL string
	client  *http.Client
}

// NewReceiptReviewHTTPFacade creates a facade for the analysis service at baseURL.
func NewReceiptReviewHTTPFacade(baseURL string, client *http.Client) *ReceiptReviewHTTPFacade {
	return &ReceiptReviewHTTPFacade{baseURL: strings.TrimRight(baseURL, "/"), client: client}
}

// Review sends the receipt history and the question and returns the raw text answer.
func (f *ReceiptReviewHTTPFacade) Review(ctx context.Context, in ReviewRequest) (string, error) {
	if in.Receipts == nil {
		in.Receipts = []ReviewReceipt{}
	}
	payload, err := json.Marshal(in)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.baseURL+"/review", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxUpstreamBody))
	if err != nil {
		return "", err
	}
	if resp.StatusCode >= 300 {
		return "", fmt.Errorf("POST /review: status %d: %s", resp.StatusCode, truncate(body, 512))
	}
	return string(body), nil
}
