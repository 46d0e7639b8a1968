package parcel

// Record is one package's lifecycle snapshot as held by the ledger.
//
// ClientID is the owning vendor's id and doubles as the name of that vendor's
// channel; MessageID is the order id.
type Record struct {
	Event     Kind   `json:"event"`
	MessageID string `json:"messageId"`
	ClientID  string `json:"clientId"`
	Order     Order  `json:"order"`
}

// NewPickupRecord creates the pending record for a freshly picked-up order.
func NewPickupRecord(order Order) Record {
	return Record{
		Event:     Pickup,
		MessageID: order.OrderID,
		ClientID:  order.Store,
		Order:     order,
	}
}

// NewDeliveredRecord creates the received record for a delivered package.
func NewDeliveredRecord(clientID, messageID string, order Order) Record {
	return Record{
		Event:     Delivered,
		MessageID: messageID,
		ClientID:  clientID,
		Order:     order,
	}
}
