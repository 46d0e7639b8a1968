package commands

import (
	"errors"
	"strings"

	"caps/internal/core/ports"
	"caps/internal/pkg/errs"
	"caps/internal/pkg/guard"
)

var ErrAcknowledgeCommandIsNotConstructed = errors.New(
	"AcknowledgeCommand must be created via NewAcknowledgeCommand constructor",
)

// AcknowledgeCommand confirms that a vendor saw the delivery notice of a package.
type AcknowledgeCommand struct {
	sender    ports.ConnID
	clientID  string
	messageID string
	store     string

	guard guard.ConstructorGuard
}

// NewAcknowledgeCommand validates the vendor and message ids. store names the channel
// failures are reported to and defaults to clientID.
func NewAcknowledgeCommand(sender ports.ConnID, clientID, messageID, store string) (AcknowledgeCommand, error) {
	var problems []error
	if strings.TrimSpace(clientID) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("clientId"))
	}
	if strings.TrimSpace(messageID) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("messageId"))
	}
	if err := errors.Join(problems...); err != nil {
		return AcknowledgeCommand{}, err
	}

	if strings.TrimSpace(store) == "" {
		store = clientID
	}

	return AcknowledgeCommand{
		sender:    sender,
		clientID:  clientID,
		messageID: messageID,
		store:     store,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c AcknowledgeCommand) Validate() error {
	return c.guard.Validate(ErrAcknowledgeCommandIsNotConstructed)
}

func (c AcknowledgeCommand) Sender() ports.ConnID { return c.sender }

func (c AcknowledgeCommand) ClientID() string { return c.clientID }

func (c AcknowledgeCommand) MessageID() string { return c.messageID }

func (c AcknowledgeCommand) Store() string { return c.store }
