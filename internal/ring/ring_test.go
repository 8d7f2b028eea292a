package ring_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/coinbase/bike-kem/internal/params"
	"github.com/coinbase/bike-kem/internal/ring"
)

func getBit(buf []byte, i int) bool {
	return buf[i/8]&(1<<uint(i%8)) != 0
}

func fillDeterministic(buf []byte, seed uint32) {
	x := seed
	for i := range buf {
		x = x*1664525 + 1013904223
		buf[i] = byte(x >> 24)
	}
}

// splitParamSets exercises both the r%8 != 0 case (a real parameter set) and
// the r%8 == 0 edge case the split operator's shift-by-width behavior
// depends on Go defining as zero.
func splitParamSets() []*params.Params {
	return []*params.Params{
		params.BIKE1L1(),
		{Name: "toy-multiple-of-8", R: 16, Dv: 1, T: 2, SSLen: 32, SeedLen: 32, MaxDecoderIters: 1},
	}
}

func TestSplitBitCorrespondence(t *testing.T) {
	for _, p := range splitParamSets() {
		buf := make([]byte, p.NSize())
		fillDeterministic(buf, 12345)

		e0, e1 := ring.Split(buf, p)

		for i := 0; i < p.R; i++ {
			require.Equalf(t, getBit(buf, i), getBit(e0.Raw, i), "param %s bit %d of e0", p.Name, i)
		}
		for i := 0; i < p.R; i++ {
			require.Equalf(t, getBit(buf, p.R+i), getBit(e1.Raw, i), "param %s bit %d of e1", p.Name, i)
		}
	}
}

func TestSplitMasksTrailingBits(t *testing.T) {
	for _, p := range splitParamSets() {
		buf := make([]byte, p.NSize())
		for i := range buf {
			buf[i] = 0xFF
		}
		e0, e1 := ring.Split(buf, p)
		require.Equal(t, byte(0), e0.Raw[p.RSize()-1]&^p.LastRByteMask())
		require.Equal(t, byte(0), e1.Raw[p.RSize()-1]&^p.LastRByteMask())
	}
}

func TestMaskClearsHighBits(t *testing.T) {
	p := params.BIKE1L1()
	e := ring.New(p)
	for i := range e.Raw {
		e.Raw[i] = 0xFF
	}
	ring.Mask(e, p)
	require.Equal(t, byte(0), e.Raw[p.RSize()-1]&^p.LastRByteMask())
}

func TestXorSelfCancels(t *testing.T) {
	p := params.BIKE1L1()
	a := ring.New(p)
	fillDeterministic(a.Raw, 999)
	ring.Mask(a, p)

	out := ring.New(p)
	ring.Xor(out, a, a, p)
	for i, b := range out.Raw {
		require.Equalf(t, byte(0), b, "byte %d", i)
	}
}

func TestWeightCountsSetBits(t *testing.T) {
	p := &params.Params{Name: "toy", R: 16, Dv: 1, T: 1, SSLen: 32, SeedLen: 32, MaxDecoderIters: 1}
	e := ring.New(p)
	e.Raw[0] = 0b00001011 // 3 bits
	e.Raw[1] = 0b00000001 // 1 bit
	require.Equal(t, 4, ring.Weight(e, p))
}
