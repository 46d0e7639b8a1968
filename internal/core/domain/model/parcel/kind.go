package parcel

import (
	"fmt"

	"caps/internal/pkg/errs"
)

// Kind is a lifecycle event understood by the hub.
//
// Kind is a closed enumeration; handlers switch over it exhaustively instead of
// comparing event names.
type Kind int

const (
	// Unknown is the zero value and is never valid.
	Unknown Kind = iota

	// Pickup is emitted by a vendor when a package is ready to be collected.
	Pickup

	// Transit is emitted by a driver to request a vendor's pending packages.
	Transit

	// Delivered is emitted by a driver when a package reached its customer.
	Delivered

	// Acknowledge is emitted by a vendor to confirm a delivery notice.
	Acknowledge

	// Reserved is accepted and ignored.
	Reserved
)

func getKindNames() map[Kind]string {
	return map[Kind]string{
		Unknown:     "unknown",
		Pickup:      "pickup",
		Transit:     "transit",
		Delivered:   "delivered",
		Acknowledge: "acknowledge",
		Reserved:    "reserved",
	}
}

// Kinds returns every valid kind in lifecycle order.
func Kinds() []Kind {
	return []Kind{Pickup, Transit, Delivered, Acknowledge, Reserved}
}

// ParseKind maps an event name to its Kind.
func ParseKind(name string) (Kind, error) {
	for _, k := range Kinds() {
		if k.String() == name {
			return k, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("event", fmt.Errorf("%q is not a known event", name))
}

// Validate checks that k is one of the valid kinds.
func (k Kind) Validate() error {
	if k < Pickup || k > Reserved {
		return errs.NewValueIsInvalidErrorWithCause("event", fmt.Errorf("%d is not a valid event kind", k))
	}
	return nil
}

// String returns the wire name of the kind, or "unknown".
func (k Kind) String() string {
	if name, ok := getKindNames()[k]; ok {
		return name
	}
	return "unknown"
}

// ErrorEvent returns the name of the event reporting a failed k, e.g. "acknowledge-error".
func (k Kind) ErrorEvent() string {
	return k.String() + "-error"
}

// MarshalText encodes the kind as its wire name.
func (k Kind) MarshalText() ([]byte, error) {
	if err := k.Validate(); err != nil {
		return nil, err
	}
	return []byte(k.String()), nil
}

// UnmarshalText decodes a wire name.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
