package handlers

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-expense-note/internal/facades"
	"github.com/sbilibin2017/gw-expense-note/internal/models"
	"github.com/sbilibin2017/gw-expense-note/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withReceiptID(req *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func multipartRequest(t *testing.T, method, target string, fields map[string]string, image []byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if image != nil {
		fw, err := mw.CreateFormFile("image", "receipt.png")
		require.NoError(t, err)
		_, err = fw.Write(image)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(method, target, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestProcessReceiptHandler(t *testing.T) {
	draft := models.ReceiptResponse{MerchantName: "Cafe", Date: "2024-03-01T00:00:00.000Z", TotalCost: 12.5, Category: models.CategoryFood, ItemizedList: []models.Item{}}

	tests := []struct {
		name         string
		req          func(t *testing.T) *http.Request
		setup        func(s *MockReceiptManager)
		expectedCode int
		expectedErr  string
	}{
		{
			name: "parsed draft",
			req: func(t *testing.T) *http.Request {
				return multipartRequest(t, http.MethodPost, "/api/receipts/process", nil, []byte("img"))
			},
			setup: func(s *MockReceiptManager) {
				s.EXPECT().Process(gomock.Any(), "u-1", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, up *facades.Upload) (models.ReceiptResponse, error) {
						assert.Equal(t, "receipt.png", up.Filename)
						assert.Equal(t, []byte("img"), up.Data)
						return draft, nil
					})
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "no image",
			req: func(t *testing.T) *http.Request {
				return multipartRequest(t, http.MethodPost, "/api/receipts/process", nil, nil)
			},
			setup: func(s *MockReceiptManager) {
				s.EXPECT().Process(gomock.Any(), "u-1", (*facades.Upload)(nil)).Return(models.ReceiptResponse{}, services.ErrNoImage)
			},
			expectedCode: http.StatusBadRequest,
			expectedErr:  "No image uploaded",
		},
		{
			name: "upstream failure",
			req: func(t *testing.T) *http.Request {
				return multipartRequest(t, http.MethodPost, "/api/receipts/process", nil, []byte("img"))
			},
			setup: func(s *MockReceiptManager) {
				s.EXPECT().Process(gomock.Any(), "u-1", gomock.Any()).Return(models.ReceiptResponse{}, services.ErrReceiptProcessing)
			},
			expectedCode: http.StatusInternalServerError,
			expectedErr:  "Receipt processing failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockReceiptManager(ctrl)
			tk := NewMockTokener(ctrl)
			expectSession(tk, "u-1")
			tt.setup(svc)

			rr := httptest.NewRecorder()
			NewProcessReceiptHandler(svc, tk)(rr, tt.req(t))

			assert.Equal(t, tt.expectedCode, rr.Code)
			resp := decodeBody(t, rr)
			if tt.expectedErr != "" {
				assert.Equal(t, tt.expectedErr, resp["error"])
				return
			}
			assert.Equal(t, "Cafe", resp["merchantName"])
			assert.Equal(t, "Food", resp["category"])
		})
	}
}

func TestCreateReceiptHandler(t *testing.T) {
	in := models.CreateReceiptInput{
		MerchantName: "Cafe",
		Date:         "2024-03-01",
		TotalCost:    12.5,
		Category:     models.CategoryFood,
		ItemizedList: []models.Item{{ItemName: "Latte", ItemQuantity: 1, ItemCost: 12.5}},
	}

	tests := []struct {
		name         string
		body         any
		setup        func(s *MockReceiptManager)
		expectedCode int
		expectedErr  string
	}{
		{
			name: "created",
			body: in,
			setup: func(s *MockReceiptManager) {
				s.EXPECT().Create(gomock.Any(), "u-1", in).Return(models.ReceiptResponse{ID: "r-1", UserID: "u-1"}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "invalid category",
			body: in,
			setup: func(s *MockReceiptManager) {
				s.EXPECT().Create(gomock.Any(), "u-1", in).Return(models.ReceiptResponse{}, services.ErrInvalidCategory)
			},
			expectedCode: http.StatusBadRequest,
			expectedErr:  "Invalid category",
		},
		{
			name:         "missing merchant",
			body:         models.CreateReceiptInput{Date: "2024-03-01", Category: models.CategoryFood},
			setup:        func(*MockReceiptManager) {},
			expectedCode: http.StatusBadRequest,
			expectedErr:  "Input data validation failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockReceiptManager(ctrl)
			tk := NewMockTokener(ctrl)
			expectSession(tk, "u-1")
			tt.setup(svc)

			rr := httptest.NewRecorder()
			NewCreateReceiptHandler(svc, tk)(rr, jsonRequest(t, http.MethodPost, "/api/receipts", tt.body))

			assert.Equal(t, tt.expectedCode, rr.Code)
			resp := decodeBody(t, rr)
			if tt.expectedErr != "" {
				assert.Equal(t, tt.expectedErr, resp["error"])
				return
			}
			assert.Equal(t, "r-1", resp["id"])
		})
	}
}

func TestUpdateReceiptHandler_JSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockReceiptManager(ctrl)
	tk := NewMockTokener(ctrl)
	expectSession(tk, "u-1")

	merchant := "Bakery"
	svc.EXPECT().
		Update(gomock.Any(), "u-1", "r-1", models.UpdateReceiptInput{MerchantName: &merchant}).
		Return(models.ReceiptResponse{}, services.ErrReceiptNotFound)

	req := withReceiptID(jsonRequest(t, http.MethodPut, "/api/receipts/r-1", map[string]string{"merchantName": merchant}), "r-1")
	rr := httptest.NewRecorder()
	NewUpdateReceiptHandler(svc, tk)(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Receipt not found or not owned by the user", decodeBody(t, rr)["error"])
}

func TestUpdateReceiptHandler_Multipart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockReceiptManager(ctrl)
	tk := NewMockTokener(ctrl)
	expectSession(tk, "u-1")

	cost := 7.25
	category := models.CategoryLeisure
	items := []models.Item{{ItemName: "Ticket", ItemQuantity: 1, ItemCost: 7.25}}
	image := "aW1n"
	want := models.UpdateReceiptInput{TotalCost: &cost, Category: &category, ItemizedList: &items, Image: &image}

	svc.EXPECT().Update(gomock.Any(), "u-1", "r-1", want).Return(models.ReceiptResponse{ID: "r-1", TotalCost: cost}, nil)

	req := multipartRequest(t, http.MethodPut, "/api/receipts/r-1", map[string]string{
		"totalCost":    "7.25",
		"category":     "Leisure",
		"itemizedList": `[{"itemName":"Ticket","itemQuantity":1,"itemCost":7.25}]`,
	}, []byte("img"))

	rr := httptest.NewRecorder()
	NewUpdateReceiptHandler(svc, tk)(rr, withReceiptID(req, "r-1"))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 7.25, decodeBody(t, rr)["totalCost"])
}

func TestUpdateReceiptHandler_BadForm(t *testing.T) {
	tests := []struct {
		name        string
		fields      map[string]string
		expectedErr string
	}{
		{name: "cost", fields: map[string]string{"totalCost": "abc"}, expectedErr: "Invalid total cost"},
		{name: "items", fields: map[string]string{"itemizedList": "not json"}, expectedErr: "Invalid itemized list"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			tk := NewMockTokener(ctrl)
			expectSession(tk, "u-1")

			rr := httptest.NewRecorder()
			req := withReceiptID(multipartRequest(t, http.MethodPut, "/api/receipts/r-1", tt.fields, nil), "r-1")
			NewUpdateReceiptHandler(NewMockReceiptManager(ctrl), tk)(rr, req)

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Equal(t, tt.expectedErr, decodeBody(t, rr)["error"])
		})
	}
}

func TestDeleteReceiptHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockReceiptManager(ctrl)
	tk := NewMockTokener(ctrl)

	expectSession(tk, "u-1")
	svc.EXPECT().Delete(gomock.Any(), "u-1", "r-1").Return(nil)

	rr := httptest.NewRecorder()
	NewDeleteReceiptHandler(svc, tk)(rr, withReceiptID(httptest.NewRequest(http.MethodDelete, "/api/receipts/r-1", nil), "r-1"))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Receipt successfully deleted.", decodeBody(t, rr)["message"])

	expectSession(tk, "u-1")
	svc.EXPECT().Delete(gomock.Any(), "u-1", "r-2").Return(services.ErrReceiptNotFound)

	rr = httptest.NewRecorder()
	NewDeleteReceiptHandler(svc, tk)(rr, withReceiptID(httptest.NewRequest(http.MethodDelete, "/api/receipts/r-2", nil), "r-2"))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestListReceiptsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockReceiptManager(ctrl)
	tk := NewMockTokener(ctrl)

	expectSession(tk, "u-1")
	svc.EXPECT().List(gomock.Any(), "u-1").Return([]models.ReceiptResponse{{ID: "r-1"}, {ID: "r-2"}}, nil)

	rr := httptest.NewRecorder()
	NewListReceiptsHandler(svc, tk)(rr, httptest.NewRequest(http.MethodGet, "/api/receipts", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[{"id":"r-1","merchantName":"","date":"","totalCost":0,"category":"","itemizedList":null,"userId":""},
		{"id":"r-2","merchantName":"","date":"","totalCost":0,"category":"","itemizedList":null,"userId":""}]`, rr.Body.String())

	expectNoSession(tk)
	rr = httptest.NewRecorder()
	NewListReceiptsHandler(svc, tk)(rr, httptest.NewRequest(http.MethodGet, "/api/receipts", nil))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestReviewReceiptsHandler(t *testing.T) {
	tests := []struct {
		name         string
		body         any
		setup        func(s *MockReceiptManager)
		expectedCode int
		expectedKey  string
		expectedVal  string
	}{
		{
			name: "answered",
			body: models.ReviewInput{Query: "How much on food?"},
			setup: func(s *MockReceiptManager) {
				s.EXPECT().Review(gomock.Any(), "u-1", "How much on food?").Return("You spent 12.50 on food.", nil)
			},
			expectedCode: http.StatusOK,
			expectedKey:  "review",
			expectedVal:  "You spent 12.50 on food.",
		},
		{
			name: "no api token",
			body: models.ReviewInput{Query: "How much on food?"},
			setup: func(s *MockReceiptManager) {
				s.EXPECT().Review(gomock.Any(), "u-1", gomock.Any()).Return("", services.ErrUserOrTokenNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedKey:  "error",
			expectedVal:  "User or API token not found",
		},
		{
			name: "unexpected failure",
			body: models.ReviewInput{Query: "q"},
			setup: func(s *MockReceiptManager) {
				s.EXPECT().Review(gomock.Any(), "u-1", "q").Return("", errors.New("boom"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedKey:  "error",
			expectedVal:  "Internal server error",
		},
		{
			name:         "empty query",
			body:         models.ReviewInput{},
			setup:        func(*MockReceiptManager) {},
			expectedCode: http.StatusBadRequest,
			expectedKey:  "error",
			expectedVal:  "Input data validation failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockReceiptManager(ctrl)
			tk := NewMockTokener(ctrl)
			expectSession(tk, "u-1")
			tt.setup(svc)

			rr := httptest.NewRecorder()
			NewReviewReceiptsHandler(svc, tk)(rr, jsonRequest(t, http.MethodPost, "/api/receipts/review", tt.body))

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, tt.expectedVal, decodeBody(t, rr)[tt.expectedKey])
		})
	}
}
