package ws

import (
	"encoding/json"

	"caps/internal/core/domain/model/parcel"
)

// JoinEvent is the name of the channel subscription event. It is a transport
// concern and not part of the package lifecycle.
const JoinEvent = "join"

// ErrorEvent is sent when a frame cannot be decoded or names no known event.
const ErrorEvent = "error"

type envelopeDTO struct {
	Event   string          `json:"event"`
	Payload json.RawMessage `json:"payload"`
}

type joinDTO struct {
	Store string `json:"store"`
}

type transitDTO struct {
	Store string `json:"store"`
}

type deliveredDTO struct {
	ClientID  string       `json:"clientId"`
	MessageID string       `json:"messageId"`
	Order     parcel.Order `json:"order"`
}

type acknowledgeDTO struct {
	ClientID  string `json:"clientId"`
	MessageID string `json:"messageId"`
	Store     string `json:"store"`
}
