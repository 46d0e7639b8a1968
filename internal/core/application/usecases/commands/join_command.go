package commands

import (
	"context"
	"errors"
	"strings"

	"caps/internal/core/ports"
	"caps/internal/pkg/errs"
	"caps/internal/pkg/guard"
)

var ErrJoinCommandIsNotConstructed = errors.New("JoinCommand must be created via NewJoinCommand constructor")

// JoinPayload is echoed to a room when a connection joins it.
type JoinPayload struct {
	Store string `json:"store"`
}

// JoinCommand subscribes a connection to a store's channel.
type JoinCommand struct {
	sender ports.ConnID
	store  string

	guard guard.ConstructorGuard
}

// NewJoinCommand validates that store is not blank.
func NewJoinCommand(sender ports.ConnID, store string) (JoinCommand, error) {
	if strings.TrimSpace(store) == "" {
		return JoinCommand{}, errs.NewValueIsRequiredError("store")
	}
	return JoinCommand{sender: sender, store: store, guard: guard.NewConstructorGuard()}, nil
}

func (c JoinCommand) Validate() error {
	return c.guard.Validate(ErrJoinCommandIsNotConstructed)
}

func (c JoinCommand) Sender() ports.ConnID { return c.sender }

func (c JoinCommand) Store() string { return c.store }

// JoinCommandHandler adds the sender to the room and announces it to the other members.
type JoinCommandHandler struct {
	notifier ports.Notifier
}

func NewJoinCommandHandler(notifier ports.Notifier) JoinCommandHandler {
	return JoinCommandHandler{notifier: notifier}
}

func (h JoinCommandHandler) Handle(_ context.Context, cmd JoinCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	h.notifier.Join(cmd.Sender(), cmd.Store())
	h.notifier.ToRoom(cmd.Store(), cmd.Sender(), ports.Message{
		Event:   "join",
		Payload: JoinPayload{Store: cmd.Store()},
	})
	return nil
}
