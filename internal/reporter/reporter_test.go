package reporter

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/sbilibin2017/gw-expense-note/internal/apperrors"
	"github.com/sbilibin2017/gw-expense-note/internal/logger"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type fakeWriter struct {
	mu   sync.Mutex
	msgs []kafka.Message
	err  error
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func tracked(r Reporter, fail error) (err error) {
	defer TrackErrors(context.Background(), r, "Service.Op", &err)
	return fail
}

func TestTrackErrors(t *testing.T) {
	r := NewLogReporter()

	assert.NoError(t, tracked(r, nil))
	assert.Equal(t, int64(0), r.Count("Service.Op"))

	boom := errors.New("boom")
	assert.Same(t, boom, tracked(r, boom))
	assert.Same(t, boom, tracked(r, boom))
	assert.Equal(t, int64(2), r.Count("Service.Op"))

	assert.NotPanics(t, func() {
		_ = tracked(nil, boom)
	})
}

func TestLogReporter_Logs(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	defer logger.Replace(zap.New(core))()

	r := NewLogReporter()
	r.FunctionError(context.Background(), "AuthService.Login", apperrors.NewUnauthorized("Invalid credentials"))

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, MetricName, fields["metric"])
	assert.Equal(t, "AuthService.Login", fields["function_name"])
	assert.Equal(t, int64(1), fields["count"])
	assert.Equal(t, "UNAUTHORIZED", fields["kind"])
}

func TestKafkaReporter(t *testing.T) {
	w := &fakeWriter{}
	r := NewKafkaReporter(w)
	r.now = func() time.Time { return time.Unix(1700000000, 0) }

	r.FunctionError(context.Background(), "ReceiptService.Process", errors.New("upstream said no"))

	require.Len(t, w.msgs, 1)
	assert.Equal(t, "ReceiptService.Process", string(w.msgs[0].Key))

	var ev Event
	require.NoError(t, json.Unmarshal(w.msgs[0].Value, &ev))
	assert.Equal(t, Event{
		Metric:       MetricName,
		FunctionName: "ReceiptService.Process",
		Kind:         "INTERNAL",
		Timestamp:    1700000000,
	}, ev)
	assert.NotContains(t, string(w.msgs[0].Value), "upstream said no")
}

func TestKafkaReporter_WriteFailureIsDropped(t *testing.T) {
	r := NewKafkaReporter(&fakeWriter{err: errors.New("broker down")})
	assert.NotPanics(t, func() {
		r.FunctionError(context.Background(), "Service.Op", errors.New("x"))
	})
}

func TestMulti(t *testing.T) {
	a, b := NewLogReporter(), NewLogReporter()
	_ = tracked(Multi{a, b, Nop{}}, errors.New("x"))
	assert.Equal(t, int64(1), a.Count("Service.Op"))
	assert.Equal(t, int64(1), b.Count("Service.Op"))
}
