package models

// Receipt lifecycle operations carried by ReceiptEvent.
const (
	ReceiptCreated = "receipt.created"
	ReceiptUpdated = "receipt.updated"
	ReceiptDeleted = "receipt.deleted"
)

// ReceiptEvent is published after a receipt is stored, changed or removed.
type ReceiptEvent struct {
	EventID   string  `json:"event_id"`   // EventID is a unique identifier for the event.
	Timestamp int64   `json:"timestamp"`  // Timestamp is the Unix time in seconds when the change happened.
	Operation string  `json:"operation"`  // Operation is one of receipt.created, receipt.updated or receipt.deleted.
	ReceiptID string  `json:"receipt_id"` // ReceiptID identifies the receipt.
	UserID    string  `json:"user_id"`    // UserID identifies the owner.
	TotalCost float64 `json:"total_cost"` // TotalCost is the receipt total after the change; zero for deletions.
	Category  string  `json:"category"`   // Category is the receipt category after the change; empty for deletions.
}
