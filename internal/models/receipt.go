package models

import (
	"encoding/base64"
	"time"
)

// Category is the closed set of receipt categories.
type Category string

const (
	CategoryTransport  Category = "Transport"
	CategoryClothing   Category = "Clothing"
	CategoryHealthcare Category = "Healthcare"
	CategoryFood       Category = "Food"
	CategoryLeisure    Category = "Leisure"
	CategoryHousing    Category = "Housing"
	CategoryOthers     Category = "Others"
	CategoryInvalid    Category = "Invalid"
)

var categories = []Category{
	CategoryTransport,
	CategoryClothing,
	CategoryHealthcare,
	CategoryFood,
	CategoryLeisure,
	CategoryHousing,
	CategoryOthers,
	CategoryInvalid,
}

// ParseCategory returns the Category named by s.
func ParseCategory(s string) (Category, bool) {
	for _, c := range categories {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}

// Item is one line of a receipt.
type Item struct {
	ItemName     string  `json:"itemName" validate:"required"`
	ItemQuantity int     `json:"itemQuantity" validate:"gte=0"`
	ItemCost     float64 `json:"itemCost"`
}

// Receipt is a persisted receipt. It always belongs to exactly one user.
type Receipt struct {
	ID           string
	UserID       string
	MerchantName string
	Date         time.Time
	TotalCost    float64
	Category     Category
	ItemizedList []Item
	Image        []byte
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ISODateLayout renders dates the way browsers serialize them.
const ISODateLayout = "2006-01-02T15:04:05.000Z"

// ReceiptResponse is the transport shape of drafts and persisted receipts.
// A draft has empty ID and UserID; an empty Date means the date needs manual correction.
// swagger:model ReceiptResponse
type ReceiptResponse struct {
	// example: 9b2f6a52-0c35-4d2a-8a0e-3c5b1f7d9e21
	ID string `json:"id"`

	// example: KFC
	MerchantName string `json:"merchantName"`

	// example: 2023-10-20T00:00:00.000Z
	Date string `json:"date"`

	// example: 19.99
	TotalCost float64 `json:"totalCost"`

	// example: Food
	Category Category `json:"category"`

	ItemizedList []Item `json:"itemizedList"`

	UserID string `json:"userId"`

	// Base64 encoded receipt image
	Image string `json:"image,omitempty"`
}

// NewReceiptResponse builds the transport shape of a persisted receipt.
func NewReceiptResponse(r *Receipt) ReceiptResponse {
	items := r.ItemizedList
	if items == nil {
		items = []Item{}
	}
	resp := ReceiptResponse{
		ID:           r.ID,
		MerchantName: r.MerchantName,
		Date:         r.Date.UTC().Format(ISODateLayout),
		TotalCost:    r.TotalCost,
		Category:     r.Category,
		ItemizedList: items,
		UserID:       r.UserID,
	}
	if len(r.Image) > 0 {
		resp.Image = base64.StdEncoding.EncodeToString(r.Image)
	}
	return resp
}

// CreateReceiptInput is a confirmed draft or a manually entered receipt.
// swagger:model CreateReceiptInput
type CreateReceiptInput struct {
	// required: true
	// example: KFC
	MerchantName string `json:"merchantName" validate:"required"`

	// ISO-8601 or dd/mm/yyyy
	// required: true
	// example: 2023-10-20T00:00:00.000Z
	Date string `json:"date" validate:"required"`

	// example: 19.99
	TotalCost float64 `json:"totalCost" validate:"gte=0"`

	// required: true
	// example: Food
	Category Category `json:"category" validate:"required"`

	ItemizedList []Item `json:"itemizedList" validate:"dive"`

	// Base64 string, optionally a data URL
	// example: data:image/png;base64,iVBORw0KGgo...
	Image *string `json:"image,omitempty"`
}

// UpdateReceiptInput is a partial receipt update. Nil fields are left unchanged.
// swagger:model UpdateReceiptInput
type UpdateReceiptInput struct {
	MerchantName *string   `json:"merchantName,omitempty" validate:"omitempty,min=1"`
	Date         *string   `json:"date,omitempty" validate:"omitempty,min=1"`
	TotalCost    *float64  `json:"totalCost,omitempty" validate:"omitempty,gte=0"`
	Category     *Category `json:"category,omitempty"`
	ItemizedList *[]Item   `json:"itemizedList,omitempty" validate:"omitempty,dive"`
	Image        *string   `json:"image,omitempty"`
}

// ReviewInput is a free-text question about the user's spending
// swagger:model ReviewInput
type ReviewInput struct {
	// required: true
	// example: How much did I spend on food last month?
	Query string `json:"query" validate:"required"`
}
