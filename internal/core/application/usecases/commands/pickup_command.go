package commands

import (
	"errors"

	"caps/internal/core/domain/model/parcel"
	"caps/internal/core/ports"
	"caps/internal/pkg/guard"
)

var ErrPickupCommandIsNotConstructed = errors.New("PickupCommand must be created via NewPickupCommand constructor")

// PickupCommand announces a vendor's package as ready for collection.
//
// Example:
//
//	cmd, err := NewPickupCommand(connID, parcel.Order{Store: "Acme", OrderID: "o1"})
//	if err != nil {
//	    // report pickup-error to the vendor
//	}
//	err = handler.Handle(ctx, cmd)
type PickupCommand struct {
	sender ports.ConnID
	order  parcel.Order

	guard guard.ConstructorGuard
}

// NewPickupCommand validates that the order names its store and order id.
func NewPickupCommand(sender ports.ConnID, order parcel.Order) (PickupCommand, error) {
	if err := order.Validate(); err != nil {
		return PickupCommand{}, err
	}
	return PickupCommand{sender: sender, order: order, guard: guard.NewConstructorGuard()}, nil
}

func (c PickupCommand) Validate() error {
	return c.guard.Validate(ErrPickupCommandIsNotConstructed)
}

func (c PickupCommand) Sender() ports.ConnID { return c.sender }

func (c PickupCommand) Order() parcel.Order { return c.order }
