package history

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// appendTimeout bounds a single background write
const appendTimeout = 5 * time.Second

// AsyncRecorder writes history records in the background. Failures are logged
// and never reach the caller; Close waits for pending writes.
type AsyncRecorder struct {
	store  Store
	logger *zap.Logger
	now    func() time.Time
	newID  func() string

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

// NewAsyncRecorder wraps store. A nil logger is replaced by a no-op logger.
func NewAsyncRecorder(store Store, logger *zap.Logger) *AsyncRecorder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AsyncRecorder{
		store:  store,
		logger: logger,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// Record serialises input and result immediately, then appends them asynchronously
func (r *AsyncRecorder) Record(ctx context.Context, kind, sessionID string, input, result any) {
	inputJSON, err := json.Marshal(input)
	if err != nil {
		r.logger.Warn("Dropping history record: input not serialisable", zap.String("kind", kind), zap.Error(err))
		return
	}
	resultJSON, err := json.Marshal(result)
	if err != nil {
		r.logger.Warn("Dropping history record: result not serialisable", zap.String("kind", kind), zap.Error(err))
		return
	}

	rec := Record{
		ID:        r.newID(),
		SessionID: sessionID,
		Kind:      kind,
		Input:     inputJSON,
		Result:    resultJSON,
		CreatedAt: r.now(),
	}

	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		r.logger.Warn("Dropping history record: recorder closed", zap.String("kind", kind))
		return
	}
	r.wg.Add(1)
	r.mu.Unlock()

	// Detach from the request so a finished request does not cancel the write
	bg := context.WithoutCancel(ctx)
	go func() {
		defer r.wg.Done()
		writeCtx, cancel := context.WithTimeout(bg, appendTimeout)
		defer cancel()
		if err := r.store.Append(writeCtx, rec); err != nil {
			r.logger.Warn("History write failed",
				zap.String("id", rec.ID),
				zap.String("kind", rec.Kind),
				zap.Error(err))
			return
		}
		r.logger.Debug("History record saved", zap.String("id", rec.ID), zap.String("kind", rec.Kind))
	}()
}

// Close stops accepting records and waits for in-flight writes.
// It does not close the underlying store.
func (r *AsyncRecorder) Close() {
	r.mu.Lock()
	r.closed = true
	r.mu.Unlock()
	r.wg.Wait()
}
