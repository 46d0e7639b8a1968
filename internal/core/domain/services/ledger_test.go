package services_test

import (
	"encoding/json"
	"fmt"
	"sync"
	"testing"

	"caps/internal/core/domain/model/parcel"
	"caps/internal/core/domain/services"
	"caps/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func acmeOrder(id string) parcel.Order {
	return customerOrder(id, "Jo")
}

func customerOrder(id, customer string) parcel.Order {
	order, err := parcel.NewOrder("Acme", id, map[string]any{"customer": customer, "address": "1 Main"})
	if err != nil {
		panic(err)
	}
	return order
}

func customerOf(record parcel.Record) string {
	var customer string
	_ = json.Unmarshal(record.Order.Field("customer"), &customer)
	return customer
}

func TestLedger_Lifecycle(t *testing.T) {
	ledger := services.NewLedger(services.Overwrite)
	order := acmeOrder("o1")

	assert.Equal(t, services.Absent, ledger.Locate("Acme", "o1"))

	record, err := ledger.Pickup(order)
	require.NoError(t, err)
	assert.Equal(t, parcel.Pickup, record.Event)
	assert.Equal(t, services.InPending, ledger.Locate("Acme", "o1"))

	pending := ledger.Transit("Acme")
	require.Len(t, pending, 1)
	assert.Equal(t, record, pending["o1"])
	assert.Equal(t, services.InPending, ledger.Locate("Acme", "o1"), "transit must not remove")

	delivered, err := ledger.Deliver("Acme", "o1", order)
	require.NoError(t, err)
	assert.Equal(t, parcel.Delivered, delivered.Event)
	assert.Equal(t, services.InReceived, ledger.Locate("Acme", "o1"))
	assert.Empty(t, ledger.Transit("Acme"))
	assert.Equal(t, delivered, ledger.Received("Acme")["o1"])

	acknowledged, err := ledger.Acknowledge("Acme", "o1")
	require.NoError(t, err)
	assert.Equal(t, "o1", acknowledged.MessageID)
	assert.Equal(t, services.Absent, ledger.Locate("Acme", "o1"))
	assert.Empty(t, ledger.Received("Acme"))
}

func TestLedger_Pickup(t *testing.T) {
	t.Run("should reject malformed order", func(t *testing.T) {
		ledger := services.NewLedger(services.Overwrite)

		_, err := ledger.Pickup(parcel.Order{Store: "Acme"})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Equal(t, services.Stats{}, ledger.Stats())
	})

	t.Run("should overwrite duplicate under overwrite policy", func(t *testing.T) {
		ledger := services.NewLedger(services.Overwrite)
		_, err := ledger.Pickup(acmeOrder("o1"))
		require.NoError(t, err)

		second := customerOrder("o1", "Sam")
		_, err = ledger.Pickup(second)
		require.NoError(t, err)

		pending := ledger.Transit("Acme")
		require.Len(t, pending, 1)
		assert.Equal(t, "Sam", customerOf(pending["o1"]))
	})

	t.Run("should keep first record under reject policy", func(t *testing.T) {
		ledger := services.NewLedger(services.Reject)
		_, err := ledger.Pickup(acmeOrder("o1"))
		require.NoError(t, err)

		second := customerOrder("o1", "Sam")
		_, err = ledger.Pickup(second)
		require.ErrorIs(t, err, services.ErrDuplicatePackage)

		assert.Equal(t, "Jo", customerOf(ledger.Transit("Acme")["o1"]))
	})
}

func TestLedger_Transit(t *testing.T) {
	t.Run("should return empty set for unknown vendor", func(t *testing.T) {
		ledger := services.NewLedger(services.Overwrite)

		pending := ledger.Transit("Nobody")

		assert.NotNil(t, pending)
		assert.Empty(t, pending)
	})

	t.Run("should isolate vendors", func(t *testing.T) {
		ledger := services.NewLedger(services.Overwrite)
		_, err := ledger.Pickup(acmeOrder("o1"))
		require.NoError(t, err)

		assert.Empty(t, ledger.Transit("Globex"))
		assert.Len(t, ledger.Transit("Acme"), 1)
	})

	t.Run("should return a copy", func(t *testing.T) {
		ledger := services.NewLedger(services.Overwrite)
		_, err := ledger.Pickup(acmeOrder("o1"))
		require.NoError(t, err)

		pending := ledger.Transit("Acme")
		delete(pending, "o1")

		assert.Equal(t, services.InPending, ledger.Locate("Acme", "o1"))
	})
}

func TestLedger_Deliver(t *testing.T) {
	t.Run("should report unknown vendor", func(t *testing.T) {
		ledger := services.NewLedger(services.Overwrite)

		_, err := ledger.Deliver("Acme", "o1", acmeOrder("o1"))

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.Contains(t, err.Error(), "no pending packages for Acme")
		assert.Empty(t, ledger.Received("Acme"))
	})

	t.Run("should report unknown message id", func(t *testing.T) {
		ledger := services.NewLedger(services.Overwrite)
		_, err := ledger.Pickup(acmeOrder("o1"))
		require.NoError(t, err)

		_, err = ledger.Deliver("Acme", "o2", acmeOrder("o2"))

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.Equal(t, services.InPending, ledger.Locate("Acme", "o1"))
		assert.Equal(t, services.Absent, ledger.Locate("Acme", "o2"))
	})

	t.Run("should fall back to pending order", func(t *testing.T) {
		ledger := services.NewLedger(services.Overwrite)
		_, err := ledger.Pickup(acmeOrder("o1"))
		require.NoError(t, err)

		record, err := ledger.Deliver("Acme", "o1", parcel.Order{})

		require.NoError(t, err)
		assert.Equal(t, acmeOrder("o1"), record.Order)
	})

	t.Run("should require ids", func(t *testing.T) {
		ledger := services.NewLedger(services.Overwrite)

		_, err := ledger.Deliver("", "", parcel.Order{})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should treat blank ids as missing", func(t *testing.T) {
		ledger := services.NewLedger(services.Overwrite)

		_, err := ledger.Deliver("  ", "\t", parcel.Order{})
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = ledger.Acknowledge(" ", "o1")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.NotErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestLedger_Acknowledge(t *testing.T) {
	t.Run("should succeed once", func(t *testing.T) {
		ledger := services.NewLedger(services.Overwrite)
		_, err := ledger.Pickup(acmeOrder("o1"))
		require.NoError(t, err)
		_, err = ledger.Deliver("Acme", "o1", acmeOrder("o1"))
		require.NoError(t, err)

		_, err = ledger.Acknowledge("Acme", "o1")
		require.NoError(t, err)

		_, err = ledger.Acknowledge("Acme", "o1")
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should report never delivered package", func(t *testing.T) {
		ledger := services.NewLedger(services.Overwrite)
		_, err := ledger.Pickup(acmeOrder("o1"))
		require.NoError(t, err)

		_, err = ledger.Acknowledge("Acme", "o1")

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.Contains(t, err.Error(), "no received packages for Acme")
		assert.Equal(t, services.InPending, ledger.Locate("Acme", "o1"))
	})
}

func TestLedger_StatsAndReclaim(t *testing.T) {
	ledger := services.NewLedger(services.Overwrite)
	_, err := ledger.Pickup(acmeOrder("o1"))
	require.NoError(t, err)
	_, err = ledger.Pickup(acmeOrder("o2"))
	require.NoError(t, err)
	_, err = ledger.Pickup(parcel.Order{Store: "Globex", OrderID: "g1"})
	require.NoError(t, err)
	_, err = ledger.Deliver("Acme", "o1", acmeOrder("o1"))
	require.NoError(t, err)

	assert.Equal(t, services.Stats{Vendors: 2, Pending: 2, Received: 1}, ledger.Stats())
	assert.Empty(t, ledger.Reclaim(), "no vendor is fully drained yet")

	_, err = ledger.Deliver("Globex", "g1", parcel.Order{})
	require.NoError(t, err)
	_, err = ledger.Acknowledge("Globex", "g1")
	require.NoError(t, err)

	assert.Equal(t, []string{"Globex"}, ledger.Reclaim())
	assert.Equal(t, services.Stats{Vendors: 1, Pending: 1, Received: 1}, ledger.Stats())

	_, err = ledger.Deliver("Acme", "o2", parcel.Order{})
	require.NoError(t, err)
	_, err = ledger.Acknowledge("Acme", "o1")
	require.NoError(t, err)
	_, err = ledger.Acknowledge("Acme", "o2")
	require.NoError(t, err)

	assert.Equal(t, []string{"Acme"}, ledger.Reclaim())
	assert.Equal(t, services.Stats{}, ledger.Stats())
}

func TestLedger_ConcurrentLifecycles(t *testing.T) {
	ledger := services.NewLedger(services.Overwrite)
	const vendors, orders = 8, 50

	var wg sync.WaitGroup
	for v := range vendors {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store := fmt.Sprintf("store-%d", v)
			for i := range orders {
				id := fmt.Sprintf("o%d", i)
				if _, err := ledger.Pickup(parcel.Order{Store: store, OrderID: id}); err != nil {
					t.Error(err)
					return
				}
				_ = ledger.Transit(store)
				if _, err := ledger.Deliver(store, id, parcel.Order{}); err != nil {
					t.Error(err)
					return
				}
				if _, err := ledger.Acknowledge(store, id); err != nil {
					t.Error(err)
					return
				}
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, services.Stats{Vendors: vendors}, ledger.Stats())
}

func TestParseDuplicatePolicy(t *testing.T) {
	p, err := services.ParseDuplicatePolicy("")
	require.NoError(t, err)
	assert.Equal(t, services.Overwrite, p)

	p, err = services.ParseDuplicatePolicy(" Reject ")
	require.NoError(t, err)
	assert.Equal(t, services.Reject, p)
	assert.Equal(t, "reject", p.String())

	_, err = services.ParseDuplicatePolicy("merge")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
