package parcel

import (
	"bytes"
	"encoding/json"
	"errors"
	"maps"
	"strings"

	"caps/internal/pkg/errs"
)

// Order is the payload a vendor attaches to a pickup. The hub reads Store and OrderID
// to route it; the rest of the document is kept byte for byte and forwarded as sent.
type Order struct {
	Store   string
	OrderID string

	doc json.RawMessage
}

type orderKeys struct {
	Store   string `json:"store"`
	OrderID string `json:"orderId"`
}

// NewOrder builds an order document from its routing keys and any extra fields.
func NewOrder(store, orderID string, fields map[string]any) (Order, error) {
	doc := make(map[string]any, len(fields)+2)
	maps.Copy(doc, fields)
	doc["store"] = store
	doc["orderId"] = orderID

	data, err := json.Marshal(doc)
	if err != nil {
		return Order{}, errs.NewValueIsInvalidErrorWithCause("order", err)
	}
	return ParseOrder(data)
}

// ParseOrder reads an order document. Only store and orderId must be strings when present.
func ParseOrder(data []byte) (Order, error) {
	var o Order
	if err := o.UnmarshalJSON(data); err != nil {
		return Order{}, err
	}
	return o, nil
}

// Validate reports every missing field of the order.
func (o Order) Validate() error {
	var problems []error
	if strings.TrimSpace(o.Store) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("store"))
	}
	if strings.TrimSpace(o.OrderID) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("orderId"))
	}
	return errors.Join(problems...)
}

// Field returns the raw value of a top-level field of the document, or nil when absent.
func (o Order) Field(name string) json.RawMessage {
	if len(o.doc) == 0 {
		return nil
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(o.doc, &fields); err != nil {
		return nil
	}
	return fields[name]
}

// MarshalJSON returns the document as received. Orders built in code without a
// document are written from their routing keys.
func (o Order) MarshalJSON() ([]byte, error) {
	if len(o.doc) > 0 {
		return o.doc, nil
	}
	return json.Marshal(orderKeys{Store: o.Store, OrderID: o.OrderID})
}

// UnmarshalJSON keeps a copy of data and decodes the routing keys from it. JSON null
// leaves the order empty.
func (o *Order) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*o = Order{}
		return nil
	}

	var keys orderKeys
	if err := json.Unmarshal(trimmed, &keys); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("order", err)
	}

	*o = Order{
		Store:   keys.Store,
		OrderID: keys.OrderID,
		doc:     bytes.Clone(trimmed),
	}
	return nil
}
