package services

import (
	"fmt"
	"strings"

	"caps/internal/pkg/errs"
)

// DuplicatePolicy decides what a pickup does when the order id is already pending
// for the same vendor.
type DuplicatePolicy int

const (
	// Overwrite replaces the pending record (last write wins).
	Overwrite DuplicatePolicy = iota
	// Reject leaves the pending record untouched and fails the pickup.
	Reject
)

func (p DuplicatePolicy) String() string {
	switch p {
	case Overwrite:
		return "overwrite"
	case Reject:
		return "reject"
	default:
		return "unknown"
	}
}

// ParseDuplicatePolicy maps a configuration value to a policy. An empty value means Overwrite.
func ParseDuplicatePolicy(s string) (DuplicatePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "overwrite":
		return Overwrite, nil
	case "reject":
		return Reject, nil
	default:
		return Overwrite, errs.NewValueIsInvalidErrorWithCause(
			"duplicate policy",
			fmt.Errorf("%q is not one of overwrite, reject", s),
		)
	}
}
