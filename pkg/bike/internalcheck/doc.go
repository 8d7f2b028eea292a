// Package internalcheck is a static-analysis test, not a library: it is
// the enforced proxy for this repository's constant-time policy. It fails the
// build if any file in a secret-handling package compares two byte slices
// with == or != instead of going through internal/secure, which is built
// on crypto/subtle.
//
// This package is not intended for external use and holds no exported API
// beyond the test itself.
package internalcheck
