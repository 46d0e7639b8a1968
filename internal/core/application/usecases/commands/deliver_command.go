package commands

import (
	"errors"
	"strings"

	"caps/internal/core/domain/model/parcel"
	"caps/internal/core/ports"
	"caps/internal/pkg/errs"
	"caps/internal/pkg/guard"
)

var ErrDeliverCommandIsNotConstructed = errors.New("DeliverCommand must be created via NewDeliverCommand constructor")

// DeliveredPayload is the body of the delivered event, both inbound from the driver
// and outbound to the vendor's channel.
type DeliveredPayload struct {
	ClientID  string       `json:"clientId"`
	MessageID string       `json:"messageId"`
	Order     parcel.Order `json:"order"`
}

// DeliverCommand reports that a driver handed a package to its customer.
type DeliverCommand struct {
	sender    ports.ConnID
	clientID  string
	messageID string
	order     parcel.Order

	guard guard.ConstructorGuard
}

// NewDeliverCommand validates that the vendor and message ids are present.
func NewDeliverCommand(sender ports.ConnID, clientID, messageID string, order parcel.Order) (DeliverCommand, error) {
	cmd := DeliverCommand{guard: guard.NewConstructorGuard(), sender: sender, order: order}

	if err := errors.Join(
		cmd.setClientID(clientID),
		cmd.setMessageID(messageID),
	); err != nil {
		return DeliverCommand{}, err
	}
	return cmd, nil
}

func (c DeliverCommand) Validate() error {
	return c.guard.Validate(ErrDeliverCommandIsNotConstructed)
}

func (c DeliverCommand) Sender() ports.ConnID { return c.sender }

func (c DeliverCommand) ClientID() string { return c.clientID }

func (c DeliverCommand) MessageID() string { return c.messageID }

func (c DeliverCommand) Order() parcel.Order { return c.order }

func (c *DeliverCommand) setClientID(clientID string) error {
	if strings.TrimSpace(clientID) == "" {
		return errs.NewValueIsRequiredError("clientId")
	}
	c.clientID = clientID
	return nil
}

func (c *DeliverCommand) setMessageID(messageID string) error {
	if strings.TrimSpace(messageID) == "" {
		return errs.NewValueIsRequiredError("messageId")
	}
	c.messageID = messageID
	return nil
}
