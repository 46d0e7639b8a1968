package commands_test

import (
	"testing"

	"caps/internal/core/application/usecases/commands"
	"caps/internal/core/ports"
	"caps/internal/pkg/errs"

	"github.com/stretchr/testify/require"
)

func TestNewJoinCommand(t *testing.T) {
	_, err := commands.NewJoinCommand("c1", " ")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	cmd, err := commands.NewJoinCommand("c1", "Acme")
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
}

func TestJoinCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewJoinCommand("c1", "Acme")

	notifier := new(MockNotifier)
	notifier.On("Join", ports.ConnID("c1"), "Acme").Return().Once()
	notifier.On("ToRoom", "Acme", ports.ConnID("c1"), ports.Message{
		Event:   "join",
		Payload: commands.JoinPayload{Store: "Acme"},
	}).Return().Once()

	h := commands.NewJoinCommandHandler(notifier)
	require.NoError(t, h.Handle(ctx, cmd))
	notifier.AssertExpectations(t)
}

func TestJoinCommandHandler_Handle_ValidationError(t *testing.T) {
	h := commands.NewJoinCommandHandler(new(MockNotifier))
	require.ErrorIs(t, h.Handle(t.Context(), commands.JoinCommand{}), commands.ErrJoinCommandIsNotConstructed)
}
