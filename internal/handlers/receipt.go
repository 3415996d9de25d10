package handlers

//go:generate mockgen -source=receipt.go -destination=mock_receipt.go -package=handlers

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-expense-note/internal/facades"
	"github.com/sbilibin2017/gw-expense-note/internal/logger"
	"github.com/sbilibin2017/gw-expense-note/internal/models"
)

// ReceiptManager defines the receipt operations the service must implement.
type ReceiptManager interface {
	Process(ctx context.Context, userID string, image *facades.Upload) (models.ReceiptResponse, error)
	Create(ctx context.Context, userID string, in models.CreateReceiptInput) (models.ReceiptResponse, error)
	Update(ctx context.Context, userID, id string, in models.UpdateReceiptInput) (models.ReceiptResponse, error)
	Delete(ctx context.Context, userID, id string) error
	List(ctx context.Context, userID string) ([]models.ReceiptResponse, error)
	Review(ctx context.Context, userID, query string) (string, error)
}

// ReviewResponse carries the analysis service answer unchanged
// swagger:model ReviewResponse
type ReviewResponse struct {
	Review string `json:"review"`
}

// NewProcessReceiptHandler returns an HTTP handler that parses a receipt image into a draft.
// @Summary Upload and process receipt image
// @Description Sends the image to the OCR service with the user's default model. The draft has no id and is not saved.
// @Tags receipts
// @Accept mpfd
// @Produce json
// @Param image formData file true "Receipt image"
// @Success 200 {object} models.ReceiptResponse "Draft receipt"
// @Failure 400 {object} handlers.ErrorResponse "No image uploaded / API key not set"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "User or API token not found"
// @Failure 500 {object} handlers.ErrorResponse "Receipt processing failed"
// @Router /receipts/process [post]
// @Security BearerAuth
func NewProcessReceiptHandler(svc ReceiptManager, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := claimsFromRequest(w, r, tokener)
		if claims == nil {
			return
		}

		var image *facades.Upload
		if isMultipart(r) {
			if !parseMultipart(w, r) {
				return
			}
			var err error
			if image, err = formFile(r, "image"); err != nil {
				logger.Log.Infow("failed to read receipt image", "user_id", claims.UserID, "error", err)
				writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid image upload"})
				return
			}
		}

		draft, err := svc.Process(r.Context(), claims.UserID, image)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, draft)
	}
}

// NewCreateReceiptHandler returns an HTTP handler persisting a confirmed or manual receipt.
// @Summary Create receipt with the confirmed details
// @Tags receipts
// @Accept json
// @Produce json
// @Param receipt body models.CreateReceiptInput true "Receipt"
// @Success 201 {object} models.ReceiptResponse "Receipt successfully created"
// @Failure 400 {object} handlers.ErrorResponse "Invalid date format / invalid category"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /receipts/create [post]
// @Security BearerAuth
func NewCreateReceiptHandler(svc ReceiptManager, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := claimsFromRequest(w, r, tokener)
		if claims == nil {
			return
		}

		var in models.CreateReceiptInput
		if !decodeJSON(w, r, &in) || !validateInput(w, in) {
			return
		}

		resp, err := svc.Create(r.Context(), claims.UserID, in)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, resp)
	}
}

// NewUpdateReceiptHandler returns an HTTP handler that partially updates an owned receipt.
// @Summary Update receipt
// @Description Accepts JSON or a multipart form; in a form itemizedList is a JSON array and the image is a file.
// @Tags receipts
// @Accept json
// @Accept mpfd
// @Produce json
// @Param id path string true "Receipt id"
// @Param receipt body models.UpdateReceiptInput true "Fields to change"
// @Param image formData file false "Replacement image"
// @Success 200 {object} models.ReceiptResponse "Receipt successfully updated"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Receipt not found or not owned by the user"
// @Router /receipts/{id} [put]
// @Security BearerAuth
func NewUpdateReceiptHandler(svc ReceiptManager, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := claimsFromRequest(w, r, tokener)
		if claims == nil {
			return
		}

		var in models.UpdateReceiptInput
		if isMultipart(r) {
			if !parseMultipart(w, r) {
				return
			}
			var ok bool
			if in, ok = updateReceiptForm(w, r); !ok {
				return
			}
		} else if !decodeJSON(w, r, &in) {
			return
		}

		if !validateInput(w, in) {
			return
		}

		resp, err := svc.Update(r.Context(), claims.UserID, chi.URLParam(r, "id"), in)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// updateReceiptForm reads an UpdateReceiptInput from a parsed multipart form.
func updateReceiptForm(w http.ResponseWriter, r *http.Request) (models.UpdateReceiptInput, bool) {
	in := models.UpdateReceiptInput{
		MerchantName: formString(r, "merchantName"),
		Date:         formString(r, "date"),
	}

	if v := formString(r, "totalCost"); v != nil {
		cost, err := strconv.ParseFloat(*v, 64)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid total cost"})
			return in, false
		}
		in.TotalCost = &cost
	}
	if v := formString(r, "category"); v != nil {
		c := models.Category(*v)
		in.Category = &c
	}
	if v := formString(r, "itemizedList"); v != nil {
		var items []models.Item
		if err := json.Unmarshal([]byte(*v), &items); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid itemized list"})
			return in, false
		}
		in.ItemizedList = &items
	}

	image, err := formFile(r, "image")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid image upload"})
		return in, false
	}
	if image != nil && len(image.Data) > 0 {
		encoded := base64.StdEncoding.EncodeToString(image.Data)
		in.Image = &encoded
	}
	return in, true
}

// NewDeleteReceiptHandler returns an HTTP handler removing an owned receipt.
// @Summary Delete receipt
// @Tags receipts
// @Param id path string true "Receipt id"
// @Success 200 {object} handlers.MessageResponse "Receipt successfully deleted."
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Receipt not found or not owned by the user"
// @Router /receipts/{id} [delete]
// @Security BearerAuth
func NewDeleteReceiptHandler(svc ReceiptManager, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := claimsFromRequest(w, r, tokener)
		if claims == nil {
			return
		}

		if err := svc.Delete(r.Context(), claims.UserID, chi.URLParam(r, "id")); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, MessageResponse{Message: "Receipt successfully deleted."})
	}
}

// NewListReceiptsHandler returns an HTTP handler listing the user's receipts.
// @Summary Get all receipts for the user
// @Tags receipts
// @Produce json
// @Success 200 {array} models.ReceiptResponse "Receipts retrieved successfully"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /receipts [get]
// @Security BearerAuth
func NewListReceiptsHandler(svc ReceiptManager, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := claimsFromRequest(w, r, tokener)
		if claims == nil {
			return
		}

		receipts, err := svc.List(r.Context(), claims.UserID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, receipts)
	}
}

// NewReviewReceiptsHandler returns an HTTP handler asking the analysis service about the user's receipts.
// @Summary Ask about spending
// @Tags receipts
// @Accept json
// @Produce json
// @Param request body models.ReviewInput true "Question"
// @Success 200 {object} handlers.ReviewResponse "Analysis answer"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request / API key not set"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "User or API token not found"
// @Failure 500 {object} handlers.ErrorResponse "Transaction review failed"
// @Router /receipts/review [post]
// @Security BearerAuth
func NewReviewReceiptsHandler(svc ReceiptManager, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := claimsFromRequest(w, r, tokener)
		if claims == nil {
			return
		}

		var in models.ReviewInput
		if !decodeJSON(w, r, &in) || !validateInput(w, in) {
			return
		}

		review, err := svc.Review(r.Context(), claims.UserID, in.Query)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, ReviewResponse{Review: review})
	}
}
