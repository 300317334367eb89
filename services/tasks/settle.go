package tasks

import (
	"context"
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeSettleConfirmation = "confirmation:settle"

// SettleConfirmationPayload identifies the booking whose confirmation
// should flip from processing to confirmed.
type SettleConfirmationPayload struct {
	SessionID string `json:"sessionId"`
	Reference string `json:"reference"`
}

func NewSettleConfirmationTask(payload SettleConfirmationPayload, delay time.Duration) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSettleConfirmation, b)
	opts := []asynq.Option{asynq.ProcessIn(delay), asynq.MaxRetry(3)}

	return task, opts, nil
}

// ConfirmationSettler is the slice of the checkout service the settle
// handler needs.
type ConfirmationSettler interface {
	SettleConfirmation(ctx context.Context, sessionID, reference string) error
}

// SettleHandler processes deferred confirmation settling tasks.
type SettleHandler struct {
	Checkout ConfirmationSettler
	Logger   *zap.Logger
}

func NewSettleHandler(checkout ConfirmationSettler, logger *zap.Logger) *SettleHandler {
	return &SettleHandler{Checkout: checkout, Logger: logger}
}

func (h *SettleHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var payload SettleConfirmationPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		h.Logger.Error("settle task has malformed payload", zap.Error(err))
		return err
	}
	if err := h.Checkout.SettleConfirmation(ctx, payload.SessionID, payload.Reference); err != nil {
		h.Logger.Error("failed to settle confirmation",
			zap.String("reference", payload.Reference), zap.Error(err))
		return err
	}
	h.Logger.Info("confirmation settled", zap.String("reference", payload.Reference))
	return nil
}
