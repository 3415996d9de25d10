package services

//go:generate mockgen -source=receipt.go -destination=mock_receipt.go -package=services

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-expense-note/internal/apperrors"
	"github.com/sbilibin2017/gw-expense-note/internal/facades"
	"github.com/sbilibin2017/gw-expense-note/internal/logger"
	"github.com/sbilibin2017/gw-expense-note/internal/models"
	"github.com/sbilibin2017/gw-expense-note/internal/reporter"
	"github.com/segmentio/kafka-go"
)

// Error variables
var (
	ErrNoImage             = apperrors.NewBadRequest("No image uploaded")
	ErrInvalidCategory     = apperrors.NewBadRequest("Invalid category")
	ErrInvalidDateFormat   = apperrors.NewBadRequest("Invalid date format")
	ErrInvalidImage        = apperrors.NewBadRequest("Invalid image encoding")
	ErrReceiptNotFound     = apperrors.NewNotFound("Receipt not found or not owned by the user")
	ErrUserOrTokenNotFound = apperrors.NewNotFound("User or API token not found")
	ErrReceiptProcessing   = apperrors.NewInternal("Receipt processing failed")
	ErrTransactionReview   = apperrors.NewInternal("Transaction review failed")
)

// ocrDateLayout is the day-first date the OCR service emits.
const ocrDateLayout = "2/1/2006"

// receiptDateLayouts are accepted for client supplied dates, tried in order.
var receiptDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
	ocrDateLayout,
}

// ReceiptReader defines read-only operations for receipts.
type ReceiptReader interface {
	GetByID(ctx context.Context, id string) (*models.Receipt, error)
	ListByUserID(ctx context.Context, userID string) ([]models.Receipt, error)
}

// ReceiptWriter defines write operations for receipts.
type ReceiptWriter interface {
	Create(ctx context.Context, receipt *models.Receipt) error
	Update(ctx context.Context, receipt *models.Receipt) error
	Delete(ctx context.Context, userID, id string) error
}

// ReceiptParser extracts structured data from a receipt image.
type ReceiptParser interface {
	Parse(ctx context.Context, image facades.Upload, model, apiKey string) (*facades.ParsedReceipt, error)
}

// ReceiptReviewer answers a free-form question about a set of receipts.
type ReceiptReviewer interface {
	Review(ctx context.Context, in facades.ReviewRequest) (string, error)
}

// APIKeyDecrypter recovers the provider key stored for a model.
type APIKeyDecrypter interface {
	DecryptKeyForModel(userID, model, ciphertext string) (string, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// ReceiptService handles receipt ingestion, CRUD and review.
type ReceiptService struct {
	users        UserReader
	reader       ReceiptReader
	writer       ReceiptWriter
	parser       ReceiptParser
	reviewer     ReceiptReviewer
	keys         APIKeyDecrypter
	kafkaWriter  KafkaWriter
	defaultImage []byte
	reporter     reporter.Reporter
	now          func() time.Time
}

// NewReceiptService creates a new ReceiptService. kafkaWriter may be nil, in which case
// lifecycle events are not published.
func NewReceiptService(
	users UserReader,
	reader ReceiptReader,
	writer ReceiptWriter,
	parser ReceiptParser,
	reviewer ReceiptReviewer,
	keys APIKeyDecrypter,
	kafkaWriter KafkaWriter,
	defaultImage []byte,
	rep reporter.Reporter,
) *ReceiptService {
	if rep == nil {
		rep = reporter.Nop{}
	}
	return &ReceiptService{
		users:        users,
		reader:       reader,
		writer:       writer,
		parser:       parser,
		reviewer:     reviewer,
		keys:         keys,
		kafkaWriter:  kafkaWriter,
		defaultImage: defaultImage,
		reporter:     rep,
		now:          time.Now,
	}
}

// Process sends image to the OCR service using the caller's default model and returns
// an unsaved draft. Nothing is persisted.
func (s *ReceiptService) Process(ctx context.Context, userID string, image *facades.Upload) (draft models.ReceiptResponse, err error) {
	defer reporter.TrackErrors(ctx, s.reporter, "ReceiptService.Process", &err)

	if image == nil || len(image.Data) == 0 {
		return models.ReceiptResponse{}, ErrNoImage
	}

	model, apiKey, err := s.providerKey(ctx, userID)
	if err != nil {
		return models.ReceiptResponse{}, err
	}

	parsed, err := s.parser.Parse(ctx, *image, string(model), apiKey)
	if err != nil {
		logger.Log.Errorw("receipt parser failed", "user_id", userID, "model", model, "error", err)
		return models.ReceiptResponse{}, ErrReceiptProcessing
	}

	draft = MapParsedReceipt(parsed)
	draft.Image = base64.StdEncoding.EncodeToString(image.Data)
	return draft, nil
}

// Create stores a receipt for userID.
func (s *ReceiptService) Create(ctx context.Context, userID string, in models.CreateReceiptInput) (resp models.ReceiptResponse, err error) {
	defer reporter.TrackErrors(ctx, s.reporter, "ReceiptService.Create", &err)

	category, ok := models.ParseCategory(string(in.Category))
	if !ok {
		return models.ReceiptResponse{}, ErrInvalidCategory
	}
	date, err := ParseReceiptDate(in.Date)
	if err != nil {
		return models.ReceiptResponse{}, err
	}
	image := s.defaultImage
	if in.Image != nil && *in.Image != "" {
		if image, err = DecodeImage(*in.Image); err != nil {
			return models.ReceiptResponse{}, err
		}
	}

	items := in.ItemizedList
	if items == nil {
		items = []models.Item{}
	}

	receipt := &models.Receipt{
		ID:           uuid.NewString(),
		UserID:       userID,
		MerchantName: in.MerchantName,
		Date:         date,
		TotalCost:    in.TotalCost,
		Category:     category,
		ItemizedList: items,
		Image:        image,
	}

	if err := s.writer.Create(ctx, receipt); err != nil {
		logger.Log.Errorw("failed to save receipt", "user_id", userID, "error", err)
		return models.ReceiptResponse{}, err
	}

	s.publishEvent(ctx, models.ReceiptCreated, receipt)
	return models.NewReceiptResponse(receipt), nil
}

// Update applies the fields present in in to a receipt owned by userID.
func (s *ReceiptService) Update(ctx context.Context, userID, id string, in models.UpdateReceiptInput) (resp models.ReceiptResponse, err error) {
	defer reporter.TrackErrors(ctx, s.reporter, "ReceiptService.Update", &err)

	receipt, err := s.owned(ctx, userID, id)
	if err != nil {
		return models.ReceiptResponse{}, err
	}

	if in.MerchantName != nil {
		receipt.MerchantName = *in.MerchantName
	}
	if in.Date != nil {
		if receipt.Date, err = ParseReceiptDate(*in.Date); err != nil {
			return models.ReceiptResponse{}, err
		}
	}
	if in.TotalCost != nil {
		receipt.TotalCost = *in.TotalCost
	}
	if in.Category != nil {
		category, ok := models.ParseCategory(string(*in.Category))
		if !ok {
			return models.ReceiptResponse{}, ErrInvalidCategory
		}
		receipt.Category = category
	}
	if in.ItemizedList != nil {
		receipt.ItemizedList = *in.ItemizedList
		if receipt.ItemizedList == nil {
			receipt.ItemizedList = []models.Item{}
		}
	}
	if in.Image != nil && *in.Image != "" {
		if receipt.Image, err = DecodeImage(*in.Image); err != nil {
			return models.ReceiptResponse{}, err
		}
	}

	if err := s.writer.Update(ctx, receipt); err != nil {
		logger.Log.Errorw("failed to update receipt", "receipt_id", id, "user_id", userID, "error", err)
		return models.ReceiptResponse{}, err
	}

	s.publishEvent(ctx, models.ReceiptUpdated, receipt)
	return models.NewReceiptResponse(receipt), nil
}

// Delete removes a receipt owned by userID.
func (s *ReceiptService) Delete(ctx context.Context, userID, id string) (err error) {
	defer reporter.TrackErrors(ctx, s.reporter, "ReceiptService.Delete", &err)

	receipt, err := s.owned(ctx, userID, id)
	if err != nil {
		return err
	}

	if err := s.writer.Delete(ctx, userID, id); err != nil {
		logger.Log.Errorw("failed to delete receipt", "receipt_id", id, "user_id", userID, "error", err)
		return err
	}

	s.publishEvent(ctx, models.ReceiptDeleted, &models.Receipt{ID: receipt.ID, UserID: receipt.UserID})
	return nil
}

// List returns the receipts owned by userID, newest first.
func (s *ReceiptService) List(ctx context.Context, userID string) (out []models.ReceiptResponse, err error) {
	defer reporter.TrackErrors(ctx, s.reporter, "ReceiptService.List", &err)

	receipts, err := s.reader.ListByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list receipts", "user_id", userID, "error", err)
		return nil, err
	}

	out = make([]models.ReceiptResponse, 0, len(receipts))
	for i := range receipts {
		out = append(out, models.NewReceiptResponse(&receipts[i]))
	}
	return out, nil
}

// Review asks the analysis service query about all receipts of userID. Images are not sent.
func (s *ReceiptService) Review(ctx context.Context, userID, query string) (answer string, err error) {
	defer reporter.TrackErrors(ctx, s.reporter, "ReceiptService.Review", &err)

	model, apiKey, err := s.providerKey(ctx, userID)
	if err != nil {
		return "", err
	}

	receipts, err := s.reader.ListByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list receipts", "user_id", userID, "error", err)
		return "", err
	}

	req := facades.ReviewRequest{
		Receipts: make([]facades.ReviewReceipt, 0, len(receipts)),
		Query:    query,
		Model:    string(model),
		APIKey:   apiKey,
	}
	for _, r := range receipts {
		items := make([]facades.ReviewItem, 0, len(r.ItemizedList))
		for _, it := range r.ItemizedList {
			items = append(items, facades.ReviewItem{ItemName: it.ItemName, ItemQuantity: it.ItemQuantity, ItemCost: it.ItemCost})
		}
		req.Receipts = append(req.Receipts, facades.ReviewReceipt{
			MerchantName: r.MerchantName,
			Date:         r.Date.UTC().Format(models.ISODateLayout),
			TotalCost:    r.TotalCost,
			Category:     string(r.Category),
			ItemizedList: items,
		})
	}

	answer, err = s.reviewer.Review(ctx, req)
	if err != nil {
		logger.Log.Errorw("receipt review failed", "user_id", userID, "model", model, "error", err)
		return "", ErrTransactionReview
	}
	return answer, nil
}

// providerKey resolves the caller's default model and its decrypted key.
func (s *ReceiptService) providerKey(ctx context.Context, userID string) (models.Model, string, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", userID, "error", err)
		return "", "", err
	}
	if user == nil || user.APIToken == nil {
		return "", "", ErrUserOrTokenNotFound
	}

	model := user.APIToken.DefaultModel
	if model == "" {
		model = models.ModelUnset
	}
	apiKey, err := s.keys.DecryptKeyForModel(user.ID, string(model), user.APIToken.KeyFor(model))
	if err != nil {
		logger.Log.Infow("API key unavailable", "user_id", userID, "model", model, "error", err)
		return "", "", err
	}
	return model, apiKey, nil
}

func (s *ReceiptService) owned(ctx context.Context, userID, id string) (*models.Receipt, error) {
	receipt, err := s.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get receipt", "receipt_id", id, "error", err)
		return nil, err
	}
	if receipt == nil || receipt.UserID != userID {
		return nil, ErrReceiptNotFound
	}
	return receipt, nil
}

// publishEvent publishes a receipt lifecycle event to Kafka.
func (s *ReceiptService) publishEvent(ctx context.Context, operation string, receipt *models.Receipt) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "receipt_id", receipt.ID, "operation", operation)
		return
	}

	event := models.ReceiptEvent{
		EventID:   uuid.NewString(),
		Timestamp: s.now().Unix(),
		Operation: operation,
		ReceiptID: receipt.ID,
		UserID:    receipt.UserID,
		TotalCost: receipt.TotalCost,
		Category:  string(receipt.Category),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal receipt event for Kafka", "receipt_id", receipt.ID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(receipt.ID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish receipt event to Kafka", "receipt_id", receipt.ID, "operation", operation, "error", err)
	} else {
		logger.Log.Infow("Receipt event published to Kafka", "receipt_id", receipt.ID, "operation", operation)
	}
}

// MapParsedReceipt converts an OCR result into a draft. Unparseable values fall back to
// zero values and unknown categories to Others.
func MapParsedReceipt(p *facades.ParsedReceipt) models.ReceiptResponse {
	draft := models.ReceiptResponse{
		MerchantName: strings.TrimSpace(string(p.MerchantName)),
		TotalCost:    parseCost(string(p.TotalCost)),
		Category:     models.CategoryOthers,
		ItemizedList: make([]models.Item, 0, len(p.ItemizedList)),
	}

	if d, err := time.ParseInLocation(ocrDateLayout, strings.TrimSpace(string(p.Date)), time.UTC); err == nil {
		draft.Date = d.Format(models.ISODateLayout)
	}
	if c, ok := models.ParseCategory(strings.TrimSpace(string(p.Category))); ok {
		draft.Category = c
	}

	for _, it := range p.ItemizedList {
		draft.ItemizedList = append(draft.ItemizedList, models.Item{
			ItemName:     strings.TrimSpace(string(it.ItemName)),
			ItemQuantity: parseQuantity(string(it.ItemQuantity)),
			ItemCost:     parseCost(string(it.ItemCost)),
		})
	}
	return draft
}

// ParseReceiptDate accepts ISO-8601 timestamps, plain ISO dates and dd/mm/yyyy. Values
// without a zone are read as UTC.
func ParseReceiptDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range receiptDateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, ErrInvalidDateFormat
}

// DecodeImage decodes a base64 image, with or without a data URL prefix.
func DecodeImage(s string) ([]byte, error) {
	if strings.HasPrefix(s, "data:") {
		i := strings.Index(s, ",")
		if i < 0 {
			return nil, ErrInvalidImage
		}
		s = s[i+1:]
	}
	s = strings.TrimSpace(s)

	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		if data, err = base64.RawStdEncoding.DecodeString(s); err != nil {
			return nil, ErrInvalidImage
		}
	}
	if len(data) == 0 {
		return nil, ErrInvalidImage
	}
	return data, nil
}

func parseCost(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func parseQuantity(s string) int {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v != math.Trunc(v) || math.Abs(v) > math.MaxInt32 {
		return 0
	}
	return int(v)
}
