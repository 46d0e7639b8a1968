// Package guard provides ConstructorGuard, used by commands and queries to detect
// values that bypassed their constructor and therefore skipped payload validation.
package guard
