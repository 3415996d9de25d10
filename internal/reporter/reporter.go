// Package reporter counts failed service operations.
//
// Services receive a Reporter through their constructor and wrap every public
// operation with a deferred TrackErrors call:
//
//	func (s *ReceiptService) Delete(ctx context.Context, userID, id string) (err error) {
//		defer reporter.TrackErrors(ctx, s.reporter, "ReceiptService.Delete", &err)
//		...
//	}
package reporter

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/sbilibin2017/gw-expense-note/internal/apperrors"
	"github.com/sbilibin2017/gw-expense-note/internal/logger"
	"github.com/segmentio/kafka-go"
)

// MetricName is the name of the failure counter.
const MetricName = "function_error_count"

// Reporter observes failed operations.
type Reporter interface {
	FunctionError(ctx context.Context, function string, err error)
}

// TrackErrors reports *errp if it is non-nil. It is meant to be deferred with a
// pointer to the named error result of the wrapped operation.
func TrackErrors(ctx context.Context, r Reporter, function string, errp *error) {
	if r == nil || errp == nil || *errp == nil {
		return
	}
	r.FunctionError(ctx, function, *errp)
}

// Nop discards every report.
type Nop struct{}

func (Nop) FunctionError(context.Context, string, error) {}

// LogReporter keeps per-function counters in memory and logs every failure.
type LogReporter struct {
	mu     sync.Mutex
	counts map[string]int64
}

// NewLogReporter creates a LogReporter.
func NewLogReporter() *LogReporter {
	return &LogReporter{counts: make(map[string]int64)}
}

func (r *LogReporter) FunctionError(ctx context.Context, function string, err error) {
	r.mu.Lock()
	r.counts[function]++
	count := r.counts[function]
	r.mu.Unlock()

	logger.Log.Warnw("operation failed",
		"metric", MetricName,
		"function_name", function,
		"count", count,
		"kind", apperrors.KindOf(err).String(),
		"error", err,
	)
}

// Count returns the number of failures recorded for function.
func (r *LogReporter) Count(function string) int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.counts[function]
}

// Writer is the subset of *kafka.Writer the reporter needs.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// Event is the message KafkaReporter publishes for each failure.
type Event struct {
	Metric       string `json:"metric"`
	FunctionName string `json:"function_name"`
	Kind         string `json:"kind"`
	Timestamp    int64  `json:"timestamp"`
}

// KafkaReporter publishes one counter increment per failure.
// Publishing is best-effort: a broker failure is logged and dropped.
type KafkaReporter struct {
	writer Writer
	now    func() time.Time
}

// NewKafkaReporter creates a KafkaReporter on top of writer.
func NewKafkaReporter(writer Writer) *KafkaReporter {
	return &KafkaReporter{writer: writer, now: time.Now}
}

func (r *KafkaReporter) FunctionError(ctx context.Context, function string, err error) {
	// error text is not published; it may carry upstream detail
	data, mErr := json.Marshal(Event{
		Metric:       MetricName,
		FunctionName: function,
		Kind:         apperrors.KindOf(err).String(),
		Timestamp:    r.now().Unix(),
	})
	if mErr != nil {
		logger.Log.Errorw("failed to marshal error event", "function_name", function, "error", mErr)
		return
	}

	msg := kafka.Message{
		Key:   []byte(function),
		Value: data,
	}
	if wErr := r.writer.WriteMessages(context.WithoutCancel(ctx), msg); wErr != nil {
		logger.Log.Errorw("failed to publish error event", "function_name", function, "error", wErr)
	}
}

// Multi fans a report out to several reporters.
type Multi []Reporter

func (m Multi) FunctionError(ctx context.Context, function string, err error) {
	for _, r := range m {
		r.FunctionError(ctx, function, err)
	}
}
