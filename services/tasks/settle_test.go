package tasks

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSettler struct {
	sessionID string
	reference string
	err       error
}

func (f *fakeSettler) SettleConfirmation(_ context.Context, sessionID, reference string) error {
	f.sessionID = sessionID
	f.reference = reference
	return f.err
}

func TestNewSettleConfirmationTask(t *testing.T) {
	task, opts, err := NewSettleConfirmationTask(
		SettleConfirmationPayload{SessionID: "sess-1", Reference: "BKABC123XYZ"},
		3*time.Second,
	)

	require.NoError(t, err)
	assert.Equal(t, TypeSettleConfirmation, task.Type())
	assert.NotEmpty(t, opts)
}

func TestSettleHandler_ProcessTask(t *testing.T) {
	settler := &fakeSettler{}
	h := NewSettleHandler(settler, zap.NewNop())

	task, _, err := NewSettleConfirmationTask(
		SettleConfirmationPayload{SessionID: "sess-1", Reference: "BKABC123XYZ"},
		0,
	)
	require.NoError(t, err)

	require.NoError(t, h.ProcessTask(context.Background(), task))
	assert.Equal(t, "sess-1", settler.sessionID)
	assert.Equal(t, "BKABC123XYZ", settler.reference)
}

func TestSettleHandler_PropagatesFailure(t *testing.T) {
	settler := &fakeSettler{err: errors.New("booking not found")}
	h := NewSettleHandler(settler, zap.NewNop())

	task := asynq.NewTask(TypeSettleConfirmation, []byte(`{"sessionId":"s","reference":"r"}`))
	assert.Error(t, h.ProcessTask(context.Background(), task))
}
