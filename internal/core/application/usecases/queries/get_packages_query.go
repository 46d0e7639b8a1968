package queries

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"caps/internal/core/domain/model/parcel"
	"caps/internal/core/domain/services"
	"caps/internal/pkg/errs"
	"caps/internal/pkg/guard"
)

var ErrGetPackagesQueryIsNotConstructed = errors.New("GetPackagesQuery must be created via NewGetPackagesQuery constructor")

// LedgerReader is the read side of the ledger used by inspection queries.
type LedgerReader interface {
	Transit(store string) map[string]parcel.Record
	Received(store string) map[string]parcel.Record
	Stats() services.Stats
}

// GetPackagesQuery reads one store's packages from the pending or received side.
type GetPackagesQuery struct {
	store string
	slot  services.Slot

	guard guard.ConstructorGuard
}

// NewGetPackagesQuery accepts services.InPending or services.InReceived.
func NewGetPackagesQuery(store string, slot services.Slot) (GetPackagesQuery, error) {
	if strings.TrimSpace(store) == "" {
		return GetPackagesQuery{}, errs.NewValueIsRequiredError("store")
	}
	if slot != services.InPending && slot != services.InReceived {
		return GetPackagesQuery{}, errs.NewValueIsInvalidErrorWithCause("slot", fmt.Errorf("%s is not readable", slot))
	}
	return GetPackagesQuery{store: store, slot: slot, guard: guard.NewConstructorGuard()}, nil
}

func (q GetPackagesQuery) Validate() error {
	return q.guard.Validate(ErrGetPackagesQueryIsNotConstructed)
}

func (q GetPackagesQuery) Store() string { return q.store }

func (q GetPackagesQuery) Slot() services.Slot { return q.slot }

// GetPackagesQueryHandler serves store snapshots and ledger counters.
type GetPackagesQueryHandler struct {
	ledger LedgerReader
}

func NewGetPackagesQueryHandler(ledger LedgerReader) GetPackagesQueryHandler {
	return GetPackagesQueryHandler{ledger: ledger}
}

func (h GetPackagesQueryHandler) Handle(_ context.Context, query GetPackagesQuery) (map[string]parcel.Record, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if query.Slot() == services.InReceived {
		return h.ledger.Received(query.Store()), nil
	}
	return h.ledger.Transit(query.Store()), nil
}

// Stats returns the ledger counters.
func (h GetPackagesQueryHandler) Stats(_ context.Context) services.Stats {
	return h.ledger.Stats()
}
