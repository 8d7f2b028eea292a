// Package gf2x provides polynomial arithmetic over R = GF(2)[x]/(x^r - 1):
// multiplication and addition of RingElements. This is a plain
// comb-multiplication implementation, not the bit-sliced/vectorized
// primitive a production BIKE build would ship, but it satisfies the
// contract internal/ring.Element producers all share: correct result,
// masked trailing bits.
package gf2x

import (
	"github.com/coinbase/bike-kem/internal/params"
	"github.com/coinbase/bike-kem/internal/ring"
)

// Add computes dst = a XOR b over R. It is a thin re-export of ring.Xor so
// that callers needing gf2x's "multiplication and addition primitives"
// contract in one place do not also need to import internal/ring directly.
func Add(dst, a, b ring.Element, p *params.Params) {
	ring.Xor(dst, a, b, p)
}

// MulMod computes dst = a*b mod (x^r - 1) over GF(2) and writes the result,
// masked, into dst. dst must not alias a or b.
//
// The algorithm is right-to-left comb multiplication: walk the bits of b
// from low to high, and whenever bit i of b is set, XOR a rotated left by i
// positions (mod r, i.e. within the ring) into the accumulator. Rotation
// within R is free to express as "XOR a shifted by i bits into a 2r-bit
// scratch buffer, then fold the high half onto the low half" — exactly the
// same high-onto-low fold the split operator (internal/ring.Split) performs,
// since reduction mod (x^r - 1) is precisely "x^r = 1", i.e. wraparound.
func MulMod(dst, a, b ring.Element, p *params.Params) {
	r := p.R
	nSize := p.NSize()

	acc := make([]byte, nSize)

	for i := 0; i < r; i++ {
		if !bitSet(b.Raw, i) {
			continue
		}
		xorShifted(acc, a.Raw, i, r)
	}

	e0, e1 := ring.Split(acc, p)
	ring.Xor(dst, e0, e1, p)
}

// bitSet reports whether bit i of the little-endian bit-packed buf is set.
func bitSet(buf []byte, i int) bool {
	return buf[i/8]&(1<<uint(i%8)) != 0
}

// xorShifted XORs a, reduced to r bits and shifted left by `shift` bit
// positions within a 2r-bit accumulator, into acc. Shifting within the
// 2r-bit accumulator rather than wrapping mod r directly keeps this loop
// branch-free per bit; the final fold in MulMod reduces mod (x^r - 1).
func xorShifted(acc, a []byte, shift, r int) {
	byteShift := shift / 8
	bitShift := uint(shift % 8)

	carry := byte(0)
	for i := 0; i < len(a); i++ {
		dstIdx := i + byteShift
		if dstIdx >= len(acc) {
			break
		}
		v := a[i]
		shifted := (v << bitShift) | carry
		if bitShift == 0 {
			carry = 0
		} else {
			carry = v >> (8 - bitShift)
		}
		acc[dstIdx] ^= shifted
	}
	if carry != 0 {
		dstIdx := len(a) + byteShift
		if dstIdx < len(acc) {
			acc[dstIdx] ^= carry
		}
	}
	_ = r
}
