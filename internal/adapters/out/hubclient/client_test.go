package hubclient_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"caps/internal/adapters/in/ws"
	"caps/internal/adapters/out/hubclient"
	"caps/internal/core/application/usecases/commands"
	"caps/internal/core/application/usecases/queries"
	"caps/internal/core/domain/model/parcel"
	"caps/internal/core/domain/services"
	"caps/internal/pkg/metrics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

type hubFixture struct {
	url    string
	ledger *services.Ledger
	hub    *ws.Hub
}

func startHub(t *testing.T) hubFixture {
	t.Helper()

	ledger := services.NewLedger(services.Overwrite)
	hub := ws.NewHub(discard)
	m := metrics.New()
	router := ws.NewRouter(ws.Handlers{
		Join:        commands.NewJoinCommandHandler(hub),
		Pickup:      commands.NewPickupCommandHandler(ledger, hub, discard),
		Deliver:     commands.NewDeliverCommandHandler(ledger, hub, discard),
		Acknowledge: commands.NewAcknowledgeCommandHandler(ledger, hub, discard),
		Transit:     queries.NewTransitQueryHandler(ledger, hub, discard),
	}, hub, m, discard)

	srv := httptest.NewServer(ws.NewServer(ws.Config{}, hub, router, m, discard))
	t.Cleanup(func() {
		hub.Close()
		srv.Close()
	})

	return hubFixture{
		url:    "ws" + strings.TrimPrefix(srv.URL, "http"),
		ledger: ledger,
		hub:    hub,
	}
}

func (f hubFixture) connect(t *testing.T) *hubclient.Client {
	t.Helper()

	before := f.hub.Len()
	client, err := hubclient.Dial(t.Context(), f.url, discard)
	require.NoError(t, err)
	require.Eventually(t, func() bool { return f.hub.Len() > before }, 2*time.Second, 5*time.Millisecond)
	return client
}

func run(t *testing.T, ctx context.Context, client *hubclient.Client) <-chan error {
	t.Helper()

	done := make(chan error, 1)
	go func() { done <- client.Run(ctx) }()
	t.Cleanup(func() { _ = client.Close() })
	return done
}

func TestClient_EmitAndOn(t *testing.T) {
	f := startHub(t)
	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()

	first := f.connect(t)
	second := f.connect(t)

	var (
		mu  sync.Mutex
		got []string
	)
	second.On("pickup", func(_ context.Context, payload json.RawMessage) {
		var order parcel.Order
		if json.Unmarshal(payload, &order) == nil {
			mu.Lock()
			got = append(got, order.OrderID)
			mu.Unlock()
		}
	})
	run(t, ctx, first)
	run(t, ctx, second)

	require.NoError(t, first.Emit("pickup", parcel.Order{Store: "Acme", OrderID: "o1"}))

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(got) == 1 && got[0] == "o1"
	}, 2*time.Second, 5*time.Millisecond)
}

func TestClient_RunStopsOnCancel(t *testing.T) {
	f := startHub(t)
	ctx, cancel := context.WithCancel(t.Context())

	client := f.connect(t)
	done := run(t, ctx, client)

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
	assert.ErrorIs(t, client.Emit("reserved", nil), hubclient.ErrClientClosed)
}

func TestVendorAndDriver_CompleteLifecycle(t *testing.T) {
	f := startHub(t)
	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()

	vendorConn := f.connect(t)
	driverConn := f.connect(t)

	vendor := hubclient.NewVendor(vendorConn, "Acme", discard)
	driver := hubclient.NewDriver(driverConn, 10*time.Millisecond, discard)
	defer driver.Stop()
	run(t, ctx, vendorConn)
	run(t, ctx, driverConn)

	require.NoError(t, vendor.Join())
	require.Eventually(t, func() bool { return len(f.hub.Members("Acme")) == 1 }, 2*time.Second, 5*time.Millisecond)

	order, err := parcel.NewOrder("Acme", "o1", map[string]any{"customer": "Jo", "address": "1 Main"})
	require.NoError(t, err)
	require.NoError(t, vendor.Pickup(order))
	require.Eventually(t, func() bool {
		return f.ledger.Locate("Acme", "o1") != services.Absent
	}, 2*time.Second, 5*time.Millisecond)

	// driver delivers, vendor acknowledges, the package leaves the ledger
	assert.Eventually(t, func() bool {
		return f.ledger.Stats() == services.Stats{Vendors: 1}
	}, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, services.Absent, f.ledger.Locate("Acme", "o1"))
}

func TestVendor_RunEmitsOrders(t *testing.T) {
	f := startHub(t)
	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()

	conn := f.connect(t)
	vendor := hubclient.NewVendor(conn, "Acme", discard)
	run(t, ctx, conn)

	var n int
	next := func(store string) (parcel.Order, error) {
		n++
		return parcel.NewOrder(store, "o"+strconv.Itoa(n), nil)
	}
	go func() { _ = vendor.Run(ctx, 10*time.Millisecond, next) }()

	assert.Eventually(t, func() bool {
		return f.ledger.Stats().Pending >= 2
	}, 2*time.Second, 5*time.Millisecond)
}
