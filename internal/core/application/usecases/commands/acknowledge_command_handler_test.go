package commands_test

import (
	"testing"

	"caps/internal/core/application/usecases/commands"
	"caps/internal/core/domain/model/parcel"
	"caps/internal/core/domain/services"
	"caps/internal/core/ports"
	"caps/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewAcknowledgeCommand(t *testing.T) {
	t.Run("should default store to client id", func(t *testing.T) {
		cmd, err := commands.NewAcknowledgeCommand("v1", "Acme", "o1", "")

		require.NoError(t, err)
		assert.Equal(t, "Acme", cmd.Store())
	})

	t.Run("should require message id", func(t *testing.T) {
		_, err := commands.NewAcknowledgeCommand("v1", "Acme", "", "Acme")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestAcknowledgeCommandHandler_Handle(t *testing.T) {
	t.Run("should remove received package", func(t *testing.T) {
		ctx := t.Context()
		cmd, _ := commands.NewAcknowledgeCommand("v1", "Acme", "o1", "Acme")

		ledger := new(MockLedger)
		ledger.On("Acknowledge", "Acme", "o1").
			Return(parcel.NewDeliveredRecord("Acme", "o1", acmeOrder), nil).Once()
		notifier := new(MockNotifier)

		h := commands.NewAcknowledgeCommandHandler(ledger, notifier, discardLogger())
		require.NoError(t, h.Handle(ctx, cmd))
		ledger.AssertExpectations(t)
		notifier.AssertNotCalled(t, "ToConn", mock.Anything, mock.Anything)
	})

	t.Run("should report acknowledge of undelivered package to the vendor", func(t *testing.T) {
		ctx := t.Context()
		cmd, _ := commands.NewAcknowledgeCommand("v1", "Acme", "o1", "Acme")

		notifier := new(MockNotifier)
		notifier.On("ToConn", ports.ConnID("v1"), errorEvent("acknowledge-error")).Return().Once()
		notifier.On("ToRoom", "Acme", ports.ConnID("v1"), errorEvent("acknowledge-error")).Return().Once()

		h := commands.NewAcknowledgeCommandHandler(services.NewLedger(services.Overwrite), notifier, discardLogger())
		err := h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		notifier.AssertExpectations(t)

		msg := notifier.Calls[0].Arguments.Get(1).(ports.Message)
		assert.Equal(t, commands.AcknowledgeFailedMessage, msg.Payload.(ports.ErrorPayload).Message)
	})

	t.Run("should fail the second acknowledge", func(t *testing.T) {
		ctx := t.Context()
		ledger := services.NewLedger(services.Overwrite)
		_, err := ledger.Pickup(acmeOrder)
		require.NoError(t, err)
		_, err = ledger.Deliver("Acme", "o1", acmeOrder)
		require.NoError(t, err)

		notifier := new(MockNotifier)
		notifier.On("ToConn", mock.Anything, mock.Anything).Return()
		notifier.On("ToRoom", mock.Anything, mock.Anything, mock.Anything).Return()

		h := commands.NewAcknowledgeCommandHandler(ledger, notifier, discardLogger())
		cmd, _ := commands.NewAcknowledgeCommand("v1", "Acme", "o1", "")

		require.NoError(t, h.Handle(ctx, cmd))
		require.Error(t, h.Handle(ctx, cmd))
		assert.Equal(t, services.Absent, ledger.Locate("Acme", "o1"))
		notifier.AssertNumberOfCalls(t, "ToConn", 1)
	})
}
