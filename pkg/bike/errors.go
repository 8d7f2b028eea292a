package bike

import (
	"errors"
	"fmt"

	"github.com/coinbase/bike-kem/internal/prf"
)

// ErrPRFExhausted is the one fatal-programming-error path this package
// recognizes: the sampler's rejection loop could not find enough bits
// within the PRF's invocation budget. For a correctly sized parameter set
// this is cryptographically unreachable; callers should treat it the same
// way they would a panic.
var ErrPRFExhausted = errors.New("bike: PRF invocation budget exhausted")

// ErrInvalidEncoding reports that a Marshal/Unmarshal byte layout did not
// match the scheme's parameter set (wrong length, or a layout invariant
// violated). This is an ABI-boundary error, not a decapsulation-failure
// signal — it can only arise from a malformed buffer, never from a
// syntactically valid ciphertext that fails to decode.
var ErrInvalidEncoding = errors.New("bike: invalid byte encoding for this parameter set")

// remapError normalizes collaborator errors into the sentinel the public
// API exposes, so callers can errors.Is(err, ErrPRFExhausted) regardless of
// which internal package the exhaustion surfaced from.
func remapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, prf.ErrExhausted) {
		return fmt.Errorf("%w: %v", ErrPRFExhausted, err)
	}
	return err
}
