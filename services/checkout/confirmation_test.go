package checkout

import (
	"testing"

	"wanderbook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildConfirmationRecord(t *testing.T) {
	m := NewMachine(DefaultTaxRate, "US")
	sess := newTestSession()
	require.NoError(t, m.SubmitCustomerDetails(sess, validCustomerDetails()))
	require.NoError(t, m.SubmitPayment(sess, validPayment()))

	record, err := BuildConfirmationRecord(sess.Context)

	require.NoError(t, err)
	assert.Equal(t, sess.Context.Confirmation.BookingReference, record.BookingReference)
	assert.Equal(t, "ava@example.com", record.CustomerEmail)
	assert.Equal(t, 168.30, record.Total)
	assert.Equal(t, sess.Context.Confirmation.BookedAt, record.BookedAt)
}

func TestBuildConfirmationRecord_IncompleteContext(t *testing.T) {
	var incomplete *IncompleteContextError

	_, err := BuildConfirmationRecord(models.BookingContext{})
	assert.ErrorAs(t, err, &incomplete)

	m := NewMachine(DefaultTaxRate, "US")
	sess := newTestSession()
	require.NoError(t, m.SubmitCustomerDetails(sess, validCustomerDetails()))
	_, err = BuildConfirmationRecord(sess.Context)
	assert.ErrorAs(t, err, &incomplete)
}
