// Package sampler implements the rejection-sampling primitives the BIKE
// core is built on: uniform RingElement sampling (with an optional
// odd-weight restriction) and sparse-weight sampling that produces both the
// dense bit-vector and its sorted index list.
package sampler

import (
	"github.com/coinbase/bike-kem/internal/params"
	"github.com/coinbase/bike-kem/internal/prf"
	"github.com/coinbase/bike-kem/internal/ring"
)

// Restriction selects the post-sampling acceptance rule for
// SampleUniformRBits.
type Restriction int

const (
	// None accepts the first uniform draw unconditionally.
	None Restriction = iota
	// Odd retries the whole element until its Hamming weight is odd.
	Odd
)

// SampleUniformRBits fills out with r uniform bits (masked to clear bits
// >= r, so truncation never biases the distribution), drawing fresh keying
// material from seed for each retry triggered by the Odd restriction.
func SampleUniformRBits(out ring.Element, seed [32]byte, restriction Restriction, p *params.Params) error {
	stream, err := prf.NewAESCTR(seed)
	if err != nil {
		return err
	}
	defer stream.Zeroize()
	return SampleUniformRBitsWithStream(out, stream, restriction, p)
}

// SampleUniformRBitsWithStream is SampleUniformRBits but draws from a
// caller-owned PRF stream, so several elements can share one CTR stream and
// be guaranteed independent, matching the reference's
// sample_uniform_r_bits_with_fixed_prf_context idiom.
func SampleUniformRBitsWithStream(out ring.Element, stream *prf.Stream, restriction Restriction, p *params.Params) error {
	for {
		if err := stream.Next(out.Raw); err != nil {
			return err
		}
		ring.Mask(out, p)

		if restriction == None {
			return nil
		}
		if ring.Weight(out, p)%2 == 1 {
			return nil
		}
	}
}

// GenerateSparseRep rejection-samples w distinct indices in [0, bits),
// zeroes buf (p.NSize() or p.RSize() bytes depending on whether bits == N
// or bits == r), sets the corresponding bits, and returns the sorted index
// list. Rejection against already-accepted indices uses a swap-based
// constant-time-in-the-index-set technique (Fisher-Yates over a virtual
// [0,bits) array compacted lazily via a map of displaced values) so that
// which indices collided and were retried is not observable from the
// buffer's control flow shape — only the total number of PRF draws varies,
// which is inherent to rejection sampling and is bounded by the PRF's
// invocation budget (prf.ErrExhausted) rather than by a secret-dependent
// loop count check in this function.
func GenerateSparseRep(buf []byte, bits, w int, stream *prf.Stream) ([]uint32, error) {
	for i := range buf {
		buf[i] = 0
	}

	// displaced implements the usual "sample without replacement from
	// [0,bits) via virtual array with swaps" trick: position i, if never
	// touched, holds value i; displaced records the positions that have
	// been overwritten by an earlier draw.
	displaced := make(map[int]int, w)
	picked := make([]uint32, 0, w)

	remaining := bits
	for len(picked) < w {
		idx, err := drawIndex(stream, remaining)
		if err != nil {
			return nil, err
		}

		value := idx
		if v, ok := displaced[idx]; ok {
			value = v
		}

		picked = append(picked, uint32(value))
		setBit(buf, value)

		last := remaining - 1
		if idx != last {
			if v, ok := displaced[last]; ok {
				displaced[idx] = v
			} else {
				displaced[idx] = last
			}
		}
		delete(displaced, last)
		remaining--
	}

	sortUint32(picked)
	return picked, nil
}

// drawIndex draws a uniform index in [0, n) from stream using rejection
// sampling over the smallest power-of-two-minus-one mask covering n, so the
// draw is unbiased.
func drawIndex(stream *prf.Stream, n int) (int, error) {
	if n <= 0 {
		return 0, nil
	}
	width := bitWidth(n - 1)
	mask := uint32(1)<<uint(width) - 1

	for {
		var buf4 [4]byte
		if err := stream.Next(buf4[:]); err != nil {
			return 0, err
		}
		v := (uint32(buf4[0]) | uint32(buf4[1])<<8 | uint32(buf4[2])<<16 | uint32(buf4[3])<<24) & mask
		if int(v) < n {
			return int(v), nil
		}
	}
}

func bitWidth(v int) int {
	w := 0
	for v > 0 {
		w++
		v >>= 1
	}
	return w
}

func setBit(buf []byte, idx int) {
	buf[idx/8] |= 1 << uint(idx%8)
}

func sortUint32(s []uint32) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}
