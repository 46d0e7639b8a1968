// Package commands contains the lifecycle events that change hub state.
//
// Every command follows the same pattern: a constructor that validates the inbound
// payload and marks the command with a ConstructorGuard, and a handler that applies
// the transition to the ledger and notifies the right audience. Failed transitions
// are reported to the originating party by the handler and returned for logging;
// they never affect other connections.
package commands
