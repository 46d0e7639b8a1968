// Package queries contains the read-only operations of the hub: a driver's transit
// request and the inspection reads behind the HTTP API.
package queries

import (
	"errors"
	"strings"

	"caps/internal/core/ports"
	"caps/internal/pkg/errs"
	"caps/internal/pkg/guard"
)

var ErrTransitQueryIsNotConstructed = errors.New("TransitQuery must be created via NewTransitQuery constructor")

// TransitQuery is a driver's request for every pending package of a store.
//
// Example:
//
//	query, err := NewTransitQuery(connID, "Acme")
//	if err != nil {
//	    return err
//	}
//	packages, err := handler.Handle(ctx, query)
type TransitQuery struct {
	sender ports.ConnID
	store  string

	guard guard.ConstructorGuard
}

// NewTransitQuery validates that store is not blank.
func NewTransitQuery(sender ports.ConnID, store string) (TransitQuery, error) {
	if strings.TrimSpace(store) == "" {
		return TransitQuery{}, errs.NewValueIsRequiredError("store")
	}
	return TransitQuery{sender: sender, store: store, guard: guard.NewConstructorGuard()}, nil
}

func (q TransitQuery) Validate() error {
	return q.guard.Validate(ErrTransitQueryIsNotConstructed)
}

func (q TransitQuery) Sender() ports.ConnID { return q.sender }

func (q TransitQuery) Store() string { return q.store }
