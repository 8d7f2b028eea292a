// Package params holds the compile-time constant sets for the supported
// BIKE-1 Round-2 security levels. A single Params value is fixed for the
// lifetime of a bike.Scheme; nothing in this repository recomputes r, dv, or
// t at runtime from caller-supplied values — there is no algorithmic
// agility across BIKE levels.
package params

// Params is one BIKE-1 Round-2 parameter set: the ring degree r, the row
// weight dv of each half of the secret key, and the target error weight t.
type Params struct {
	// Name identifies the parameter set, e.g. "bike1l1".
	Name string

	// R is the ring degree: R = GF(2)[x]/(x^R - 1). Must be an odd prime.
	R int

	// Dv is the Hamming weight of h0 and of h1.
	Dv int

	// T is the target combined Hamming weight of (e0, e1).
	T int

	// SSLen is the shared-secret length in bytes.
	SSLen int

	// SeedLen is the length in bytes of a sampling seed.
	SeedLen int

	// MaxDecoderIters bounds the bit-flipping decoder (internal/decoder).
	MaxDecoderIters int
}

// N is 2*R, the bit-length of a full error vector before splitting.
func (p *Params) N() int { return 2 * p.R }

// RSize is ceil(r/8), the byte length of one RingElement.
func (p *Params) RSize() int { return (p.R + 7) / 8 }

// NSize is ceil(2r/8), the byte length of a packed N-bit error vector.
func (p *Params) NSize() int { return (p.N() + 7) / 8 }

// LastRByteMask masks the unused high bits of the last byte of a
// RingElement. It is 0xFF when r is a multiple of 8 (no unused bits).
func (p *Params) LastRByteMask() byte {
	lead := p.R % 8
	if lead == 0 {
		return 0xFF
	}
	return byte(1<<uint(lead)) - 1
}

// LastRByteLead is r mod 8, treated as 8 when r is a multiple of 8 so that
// shift-based realignment in the split operator never shifts by zero when
// it means "the full byte boundary".
func (p *Params) LastRByteLead() uint {
	lead := p.R % 8
	if lead == 0 {
		return 8
	}
	return uint(lead)
}

// LastRByteTrail is 8 - LastRByteLead.
func (p *Params) LastRByteTrail() uint {
	return 8 - p.LastRByteLead()
}

// BIKE1L1 is the BIKE-1 Round-2 parameter set for NIST security level 1.
func BIKE1L1() *Params {
	return &Params{
		Name:            "bike1l1",
		R:               12323,
		Dv:              71,
		T:               134,
		SSLen:           32,
		SeedLen:         32,
		MaxDecoderIters: 5,
	}
}

// BIKE1L3 is the BIKE-1 Round-2 parameter set for NIST security level 3.
func BIKE1L3() *Params {
	return &Params{
		Name:            "bike1l3",
		R:               24659,
		Dv:              103,
		T:               199,
		SSLen:           32,
		SeedLen:         32,
		MaxDecoderIters: 5,
	}
}
