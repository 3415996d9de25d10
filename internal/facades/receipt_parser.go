package facades

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"

	"github.com/sbilibin2017/gw-expense-note/internal/logger"
	"github.com/xeipuuv/gojsonschema"
)

// maxUpstreamBody caps how much of an upstream response is read.
const maxUpstreamBody = 4 << 20

// Scalar holds a JSON string or number as text. The OCR service is not strict
// about types, so every parsed field is kept as text and converted later.
// Objects and arrays keep their raw JSON, null becomes "".
type Scalar string

func (s *Scalar) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(b))
	switch {
	case raw == "null":
		*s = ""
	case strings.HasPrefix(raw, `"`):
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = Scalar(v)
	default:
		*s = Scalar(raw)
	}
	return nil
}

// ParsedItem is one item line as the OCR service reports it.
type ParsedItem struct {
	ItemName     Scalar `json:"item_name"`
	ItemQuantity Scalar `json:"item_quantity"`
	ItemCost     Scalar `json:"item_cost"`
}

// ParsedReceipt is the OCR service response. Date is dd/mm/yyyy.
type ParsedReceipt struct {
	MerchantName Scalar       `json:"merchant_name"`
	Date         Scalar       `json:"date"`
	TotalCost    Scalar       `json:"total_cost"`
	Category     Scalar       `json:"category"`
	ItemizedList []ParsedItem `json:"itemized_list"`
}

// Upload is an image file received from a client.
type Upload struct {
	Filename    string
	ContentType string
	Data        []byte
}

const parsedReceiptSchema = `{
	"type": "object",
	"properties": {
		"merchant_name": {"type": ["string", "null"]},
		"date":          {"type": ["string", "null"]},
		"total_cost":    {"type": ["string", "number", "null"]},
		"category":      {"type": ["string", "null"]},
		"itemized_list": {
			"type": ["array", "null"],
			"items": {
				"type": "object",
				"properties": {
					"item_name":     {"type": ["string", "null"]},
					"item_quantity": {"type": ["string", "number", "null"]},
					"item_cost":     {"type": ["string", "number", "null"]}
				}
			}
		}
	}
}`

// ErrInvalidParserResponse is returned when the OCR response does not match its schema.
var ErrInvalidParserResponse = errors.New("receipt parser returned an unexpected document")

// ReceiptParserHTTPFacade calls the OCR service over HTTP.
type ReceiptParserHTTPFacade struct {
	baseURL string
	client  *http.Client
	schema  *gojsonschema.Schema
}

// NewReceiptParserHTTPFacade creates a facade for the OCR service at baseURL.
func NewReceiptParserHTTPFacade(baseURL string, client *http.Client) (*ReceiptParserHTTPFacade, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(parsedReceiptSchema))
	if err != nil {
		return nil, fmt.Errorf("compile parser response schema: %w", err)
	}
	return &ReceiptParserHTTPFacade{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		schema:  schema,
	}, nil
}

// Parse uploads the image with the provider name and key and returns the parsed receipt.
func (f *ReceiptParserHTTPFacade) Parse(ctx context.Context, image Upload, model, apiKey string) (*ParsedReceipt, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	filename := image.Filename
	if filename == "" {
		filename = "receipt.png"
	}
	contentType := image.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, filename))
	header.Set("Content-Type", contentType)
	fw, err := mw.CreatePart(header)
	if err != nil {
		return nil, err
	}
	if _, err := fw.Write(image.Data); err != nil {
		return nil, err
	}
	if err := mw.WriteField("model", model); err != nil {
		return nil, err
	}
	if err := mw.WriteField("apiKey", apiKey); err != nil {
		return nil, err
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.baseURL+"/upload", &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	body, err := f.do(req)
	if err != nil {
		return nil, err
	}

	res, err := f.schema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return nil, fmt.Errorf("validate parser response: %w", err)
	}
	if !res.Valid() {
		details := make([]string, 0, len(res.Errors()))
		for _, e := range res.Errors() {
			details = append(details, e.String())
		}
		logger.Log.Errorw("receipt parser response failed schema validation", "details", details)
		return nil, ErrInvalidParserResponse
	}

	var parsed ParsedReceipt
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("decode parser response: %w", err)
	}
	return &parsed, nil
}

func (f *ReceiptParserHTTPFacade) do(req *http.Request) ([]byte, error) {
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxUpstreamBody))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%s %s: status %d: %s", req.Method, req.URL.Path, resp.StatusCode, truncate(body, 512))
	}
	return body, nil
}

func truncate(b []byte, n int) string {
	if len(b) > n {
		return string(b[:n]) + "..."
	}
	return string(b)
}
