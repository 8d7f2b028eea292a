// Package decoder implements a QC-MDPC bit-flipping decoder: given a
// syndrome and the secret key's sparse row supports, recover a candidate
// error vector of the target weight. This is the reference "Algorithm
// 2"-style one-round-per-iteration bit-flipping decoder from the BIKE
// family of proposals, not the black/gray-flag multi-round variant the
// fastest implementations use; the contract this package satisfies is just:
// recover e such that e0*h0 + e1*h1 reproduces the syndrome, within
// MaxDecoderIters rounds.
package decoder

import (
	"github.com/coinbase/bike-kem/internal/gf2x"
	"github.com/coinbase/bike-kem/internal/params"
	"github.com/coinbase/bike-kem/internal/ring"
)

// Syndrome is a RingElement-shaped value: the r-bit projection of the
// ciphertext onto the code's parity check, s = c0*h0 + c1*h1.
type Syndrome = ring.Element

// ComputeSyndrome computes s = c0*h0 + c1*h1, the reference's
// `compute_syndrome` step.
func ComputeSyndrome(c0, c1, h0, h1 ring.Element, p *params.Params) Syndrome {
	t0 := ring.New(p)
	t1 := ring.New(p)
	gf2x.MulMod(t0, c0, h0, p)
	gf2x.MulMod(t1, c1, h1, p)

	s := ring.New(p)
	ring.Xor(s, t0, t1, p)
	return s
}

// thresholdCoeffs are the piecewise-linear threshold-table coefficients the
// BIKE Round-2 reference decoder hard-codes per parameter set, rather than
// recomputing an asymptotic bound at runtime. Values follow the published
// BIKE decoder's threshold approximation T(S) = max(dv/2+1, floor(a*S+b+0.5)).
type thresholdCoeffs struct {
	a, b float64
}

var coeffsByName = map[string]thresholdCoeffs{
	"bike1l1": {a: 0.0069722, b: 13.530},
	"bike1l3": {a: 0.005265, b: 15.2588},
}

// threshold falls back to the bike1l1 coefficients for any parameter set
// name this table doesn't recognize; the two shipped presets (bike1l1,
// bike1l3) are both listed above, so this only bites a custom Params value
// constructed outside this package's presets.
func threshold(p *params.Params, syndromeWeight int) int {
	c, ok := coeffsByName[p.Name]
	if !ok {
		c = coeffsByName["bike1l1"]
	}
	t := int(c.a*float64(syndromeWeight) + c.b + 0.5)
	min := p.Dv/2 + 1
	if t < min {
		return min
	}
	return t
}

// Decode runs the bit-flipping decoder for up to p.MaxDecoderIters rounds
// and returns the candidate (e0, e1) plus whether the syndrome reached zero
// weight (decoder success, the reference's dec_ret). A false return is not
// an error: the orchestrator masks it into implicit rejection.
func Decode(s Syndrome, wlist0, wlist1 []uint32, p *params.Params) (e0, e1 ring.Element, ok bool) {
	e0 = ring.New(p)
	e1 = ring.New(p)

	syn := s.Clone()

	for iter := 0; iter < p.MaxDecoderIters; iter++ {
		synWeight := ring.Weight(syn, p)
		if synWeight == 0 {
			return e0, e1, true
		}

		thr := threshold(p, synWeight)

		counter0 := counters(syn, wlist0, p)
		counter1 := counters(syn, wlist1, p)

		flipRound(e0, counter0, thr, wlist0, syn, p)
		flipRound(e1, counter1, thr, wlist1, syn, p)
	}

	return e0, e1, ring.Weight(syn, p) == 0
}

// counters computes, for every position j in [0, r), the number of indices
// k in support that land on a set syndrome bit at (j+k) mod r — i.e. the
// correlation between column j of the circulant block and the syndrome.
func counters(syn Syndrome, support []uint32, p *params.Params) []int {
	r := p.R
	count := make([]int, r)
	for _, k := range support {
		ki := int(k)
		for j := 0; j < r; j++ {
			pos := j + ki
			if pos >= r {
				pos -= r
			}
			if bitSet(syn.Raw, pos) {
				count[j]++
			}
		}
	}
	return count
}

// flipRound flips every position whose counter meets thr and XORs the
// corresponding column of the circulant block into syn so the syndrome
// reflects the flips before the next iteration reads it.
func flipRound(e ring.Element, count []int, thr int, support []uint32, syn Syndrome, p *params.Params) {
	r := p.R
	for j := 0; j < r; j++ {
		if count[j] < thr {
			continue
		}
		flipBit(e.Raw, j)
		for _, k := range support {
			pos := j + int(k)
			if pos >= r {
				pos -= r
			}
			flipBit(syn.Raw, pos)
		}
	}
	ring.Mask(e, p)
}

func bitSet(buf []byte, i int) bool {
	return buf[i/8]&(1<<uint(i%8)) != 0
}

func flipBit(buf []byte, i int) {
	buf[i/8] ^= 1 << uint(i%8)
}
