package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-expense-note/internal/models"
)

type receiptRow struct {
	ID           string    `db:"id"`
	UserID       string    `db:"user_id"`
	MerchantName string    `db:"merchant_name"`
	Date         time.Time `db:"date"`
	TotalCost    float64   `db:"total_cost"`
	Category     string    `db:"category"`
	ItemizedList []byte    `db:"itemized_list"`
	Image        []byte    `db:"image"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func (r *receiptRow) toModel() (*models.Receipt, error) {
	items := []models.Item{}
	if len(r.ItemizedList) > 0 {
		if err := json.Unmarshal(r.ItemizedList, &items); err != nil {
			return nil, fmt.Errorf("decode itemized list of receipt %s: %w", r.ID, err)
		}
	}
	return &models.Receipt{
		ID:           r.ID,
		UserID:       r.UserID,
		MerchantName: r.MerchantName,
		Date:         r.Date.UTC(),
		TotalCost:    r.TotalCost,
		Category:     models.Category(r.Category),
		ItemizedList: items,
		Image:        r.Image,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}, nil
}

const selectReceipt = `
	SELECT id, user_id, merchant_name, date, total_cost, category, itemized_list, image,
	       created_at, updated_at
	FROM receipts
`

type ReceiptReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewReceiptReadRepository(db *sqlx.DB, txGetter TxGetter) *ReceiptReadRepository {
	return &ReceiptReadRepository{db: db, txGetter: txGetter}
}

// GetByID returns nil, nil when the receipt does not exist.
func (r *ReceiptReadRepository) GetByID(ctx context.Context, id string) (*models.Receipt, error) {
	query := selectReceipt + `WHERE id = $1`

	var row receiptRow
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &row, query, id)

	found := err == nil
	if errors.Is(err, sql.ErrNoRows) {
		err = nil
	}
	logQuery(query, []any{id}, found, err)

	if err != nil || !found {
		return nil, err
	}
	return row.toModel()
}

// ListByUserID returns every receipt owned by userID, newest date first.
func (r *ReceiptReadRepository) ListByUserID(ctx context.Context, userID string) ([]models.Receipt, error) {
	query := selectReceipt + `WHERE user_id = $1 ORDER BY date DESC, created_at DESC`

	var rows []receiptRow
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &rows, query, userID)
	logQuery(query, []any{userID}, len(rows), err)
	if err != nil {
		return nil, err
	}

	receipts := make([]models.Receipt, 0, len(rows))
	for i := range rows {
		receipt, err := rows[i].toModel()
		if err != nil {
			return nil, err
		}
		receipts = append(receipts, *receipt)
	}
	return receipts, nil
}

type ReceiptWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewReceiptWriteRepository(db *sqlx.DB, txGetter TxGetter) *ReceiptWriteRepository {
	return &ReceiptWriteRepository{db: db, txGetter: txGetter}
}

func (r *ReceiptWriteRepository) Create(ctx context.Context, receipt *models.Receipt) error {
	const query = `
		INSERT INTO receipts (id, user_id, merchant_name, date, total_cost, category, itemized_list,
		                      image, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
	`
	items, err := encodeItems(receipt.ItemizedList)
	if err != nil {
		return err
	}

	_, err = executor(ctx, r.db, r.txGetter).ExecContext(ctx, query,
		receipt.ID, receipt.UserID, receipt.MerchantName, receipt.Date.UTC(), receipt.TotalCost,
		string(receipt.Category), items, receipt.Image,
	)
	logQuery(query, []any{receipt.ID, receipt.UserID, receipt.MerchantName}, nil, err)

	return err
}

// Update replaces the stored fields of the receipt owned by receipt.UserID.
func (r *ReceiptWriteRepository) Update(ctx context.Context, receipt *models.Receipt) error {
	const query = `
		UPDATE receipts
		SET merchant_name = $3, date = $4, total_cost = $5, category = $6, itemized_list = $7,
		    image = $8, updated_at = NOW()
		WHERE id = $1 AND user_id = $2
	`
	items, err := encodeItems(receipt.ItemizedList)
	if err != nil {
		return err
	}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query,
		receipt.ID, receipt.UserID, receipt.MerchantName, receipt.Date.UTC(), receipt.TotalCost,
		string(receipt.Category), items, receipt.Image,
	)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, []any{receipt.ID, receipt.UserID}, rowsAffected, err)

	return err
}

// Delete removes the receipt with id owned by userID.
func (r *ReceiptWriteRepository) Delete(ctx context.Context, userID, id string) error {
	const query = `DELETE FROM receipts WHERE id = $1 AND user_id = $2`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, id, userID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, []any{id, userID}, rowsAffected, err)

	return err
}

func encodeItems(items []models.Item) (string, error) {
	if items == nil {
		items = []models.Item{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("encode itemized list: %w", err)
	}
	return string(data), nil
}
