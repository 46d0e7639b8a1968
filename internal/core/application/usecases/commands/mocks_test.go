package commands_test

import (
	"io"
	"log/slog"

	"caps/internal/core/domain/model/parcel"
	"caps/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockLedger struct{ mock.Mock }

func (m *MockLedger) Pickup(order parcel.Order) (parcel.Record, error) {
	args := m.Called(order)
	return args.Get(0).(parcel.Record), args.Error(1)
}

func (m *MockLedger) Transit(store string) map[string]parcel.Record {
	args := m.Called(store)
	return args.Get(0).(map[string]parcel.Record)
}

func (m *MockLedger) Deliver(clientID, messageID string, order parcel.Order) (parcel.Record, error) {
	args := m.Called(clientID, messageID, order)
	return args.Get(0).(parcel.Record), args.Error(1)
}

func (m *MockLedger) Acknowledge(clientID, messageID string) (parcel.Record, error) {
	args := m.Called(clientID, messageID)
	return args.Get(0).(parcel.Record), args.Error(1)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) Broadcast(except ports.ConnID, msg ports.Message) {
	m.Called(except, msg)
}

func (m *MockNotifier) ToRoom(room string, except ports.ConnID, msg ports.Message) {
	m.Called(room, except, msg)
}

func (m *MockNotifier) ToConn(id ports.ConnID, msg ports.Message) {
	m.Called(id, msg)
}

func (m *MockNotifier) Join(id ports.ConnID, room string) {
	m.Called(id, room)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func errorEvent(event string) any {
	return mock.MatchedBy(func(msg ports.Message) bool {
		_, ok := msg.Payload.(ports.ErrorPayload)
		return msg.Event == event && ok
	})
}
