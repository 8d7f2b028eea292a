// Package ring implements RingElement, the packed little-endian byte
// representation of an element of R = GF(2)[x]/(x^r - 1), along with the
// handful of byte-level operations the BIKE core needs directly: masking,
// the N-bit split operator, weight, and XOR. Polynomial
// multiplication lives in internal/gf2x since it is logically a distinct
// collaborator.
package ring

import "github.com/coinbase/bike-kem/internal/params"

// Element is a polynomial in R, stored as p.RSize() little-endian bytes.
// The invariant enforced by every function in this package that produces an
// Element is that bits at position >= r are zero in the last byte.
type Element struct {
	Raw []byte
}

// New allocates a zeroed Element sized for p.
func New(p *params.Params) Element {
	return Element{Raw: make([]byte, p.RSize())}
}

// NewPadded allocates a zeroed Element with extra trailing scratch bytes.
// internal/gf2x does not use it: MulMod allocates its own N-bit accumulator.
func NewPadded(p *params.Params, extra int) Element {
	return Element{Raw: make([]byte, p.RSize()+extra)}
}

// Clone returns an independent copy of e.
func (e Element) Clone() Element {
	out := make([]byte, len(e.Raw))
	copy(out, e.Raw)
	return Element{Raw: out}
}

// Mask clears the bits at position >= r in the last byte of e, restoring
// the RingElement invariant. Every producer in this repository calls Mask
// (directly or through a helper that does) before returning.
func Mask(e Element, p *params.Params) {
	n := p.RSize()
	if len(e.Raw) < n || n == 0 {
		return
	}
	e.Raw[n-1] &= p.LastRByteMask()
}

// Xor computes dst = a XOR b over p.RSize() bytes and re-masks dst. This is
// the single-width addition primitive (the N-bit case is handled directly
// by internal/gf2x, which owns the padded scratch buffers).
func Xor(dst, a, b Element, p *params.Params) {
	n := p.RSize()
	for i := 0; i < n; i++ {
		dst.Raw[i] = a.Raw[i] ^ b.Raw[i]
	}
	Mask(dst, p)
}

// Weight returns the Hamming weight (population count) of e, counted over
// all p.RSize() bytes. Callers on a secret-dependent path must route the
// result through internal/secure rather than branching on it directly; this
// function itself performs no data-dependent branch (popcount below is a
// pure shift-and-mask bit trick with no secret-dependent control flow).
func Weight(e Element, p *params.Params) int {
	n := p.RSize()
	w := 0
	for i := 0; i < n; i++ {
		w += popcount(e.Raw[i])
	}
	return w
}

func popcount(b byte) int {
	b = b - ((b >> 1) & 0x55)
	b = (b & 0x33) + ((b >> 2) & 0x33)
	return int((b + (b >> 4)) & 0x0F)
}

// Split implements the N-to-r split operator: given a packed N-bit buffer (p.NSize()
// bytes, the low r bits followed by the high r bits), produce e0 (the low r
// bits) and e1 (the high r bits, right-shifted down to occupy bit positions
// [0, r)).
func Split(buf []byte, p *params.Params) (e0, e1 Element) {
	rSize := p.RSize()
	nSize := p.NSize()

	e0 = New(p)
	e1 = New(p)

	copy(e0.Raw, buf[:rSize])

	// Go defines a shift count >= the operand's bit width as yielding zero,
	// so the r%8==0 edge case (lead==8) needs no special-casing here.
	lead := p.LastRByteLead()
	trail := p.LastRByteTrail()

	for i := rSize; i < nSize; i++ {
		e1.Raw[i-rSize] = (buf[i] << trail) | (buf[i-1] >> lead)
	}

	if nSize < 2*rSize {
		e1.Raw[rSize-1] = buf[nSize-1] >> lead
	}

	Mask(e0, p)
	Mask(e1, p)
	return e0, e1
}
