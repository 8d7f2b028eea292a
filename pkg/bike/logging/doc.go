// Package logging provides a minimal logging facade for the bike KEM
// package.
//
// This package defines a Logger interface that wraps a subset of the
// standard library's log/slog functionality. The interface is intentionally
// small to allow applications to provide custom implementations for
// testing, redaction, or integration with existing logging systems.
//
// # Logger Interface
//
// The Logger interface provides context-aware logging methods:
//
//	type Logger interface {
//	    Debug(ctx context.Context, msg string, args ...any)
//	    Info(ctx context.Context, msg string, args ...any)
//	    Warn(ctx context.Context, msg string, args ...any)
//	    Error(ctx context.Context, msg string, args ...any)
//	    With(args ...any) Logger
//	}
//
// # Default Implementation
//
// The package provides a default slog-backed implementation:
//
//	import (
//	    "log/slog"
//	    "github.com/coinbase/bike-kem/pkg/bike/logging"
//	)
//
//	// Use default logger (slog.Default())
//	logger := logging.New(nil)
//
//	// Use custom slog.Logger
//	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})
//	customLogger := logging.New(slog.New(handler))
//
// # Redaction Support
//
// The package provides utilities for redacting sensitive information:
//
//	// Mark an attribute as redacted
//	logger.Debug(ctx, "sampled error vector", logging.Redacted("e"))
//	// Logs: e="[redacted]"
//
//	// Get the redaction placeholder
//	placeholder := logging.Placeholder() // Returns "[redacted]"
//
// # Usage in the KEM core
//
// A Logger can be attached to a Scheme for observability of operational
// events only — which operation completed and which parameter set is
// active:
//
//	logger := logging.New(nil)
//	logger.Info(ctx, "scheme initialized", "params", "bike1l1")
//	logger.Debug(ctx, "decapsulation complete", "params", "bike1l1")
//
// # Security Considerations
//
//   - Never log secret keys, seeds, sampled errors, or shared secrets
//   - Use logging.Redacted() to mark sensitive attributes if a call site
//     must reference one by name
//   - The decapsulation success predicate and its two candidate shared
//     secrets must never appear in a log line, redacted or not — logging
//     even their presence/absence leaks the implicit-rejection signal
//     the implicit-rejection design requires stay unobservable
//   - Ensure log storage is secure and access-controlled
package logging
