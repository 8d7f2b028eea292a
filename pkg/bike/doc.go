// Package bike implements the KEM orchestration layer of a BIKE-1 Round-2
// key encapsulation mechanism: keypair generation, encapsulation, and
// constant-time, implicit-rejecting decapsulation over R =
// GF(2)[x]/(x^r - 1).
//
// This package is the thin, auditable "core" described by this
// repository's design document: it composes the secret-key sampler, the
// public-key ring multiplication, the extract-then-expand error function
// H, the encryption equation, and the decapsulation success predicate, but
// owns none of the heavy cryptographic primitives themselves — those live
// in internal/gf2x, internal/decoder, internal/prf, internal/entropy,
// internal/sampler and internal/secure, each satisfying a narrow contract
// so the orchestration logic here stays a direct, auditable translation of
// the BIKE-1 Round-2 component design.
//
// Keypair and Encapsulate draw fresh entropy internally, so their output is
// not reproducible across calls. The seeded variants keypairWithSeeds and
// encapsulateWithSeeds in kem.go are unexported; pkg/bike/kat_test.go uses
// them for this repository's own determinism tests.
package bike
