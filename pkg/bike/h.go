package bike

import (
	"github.com/coinbase/bike-kem/internal/params"
	"github.com/coinbase/bike-kem/internal/prf"
	"github.com/coinbase/bike-kem/internal/ring"
	"github.com/coinbase/bike-kem/internal/sampler"
)

// computeH is the extract-then-expand error generator: hash
// (in0||in1) with SHA-384, use the leading 32 bytes of the digest to key an
// AES-256-CTR PRF, sparse-sample an N-bit error of weight p.T from that
// stream, and split it into (e0, e1).
func computeH(p *params.Params, in0, in1 ring.Element) (e0, e1 ring.Element, err error) {
	concat := make([]byte, 2*p.RSize())
	defer Zeroize(concat)
	copy(concat[:p.RSize()], in0.Raw)
	copy(concat[p.RSize():], in1.Raw)

	digest := prf.SHA384(concat)
	defer func() {
		for i := range digest {
			digest[i] = 0
		}
	}()

	var seed [32]byte
	copy(seed[:], digest[:32])
	defer func() {
		for i := range seed {
			seed[i] = 0
		}
	}()

	stream, err := prf.NewAESCTR(seed)
	if err != nil {
		return ring.Element{}, ring.Element{}, err
	}
	defer stream.Zeroize()

	buf := make([]byte, p.NSize())
	defer Zeroize(buf)

	if _, err := sampler.GenerateSparseRep(buf, p.N(), p.T, stream); err != nil {
		return ring.Element{}, ring.Element{}, err
	}

	e0, e1 = ring.Split(buf, p)
	return e0, e1, nil
}

// getSS is the shared-secret KDF: K = truncate(SHA-384(a0||a1||c0||c1), ss_len).
func getSS(p *params.Params, a0, a1, c0, c1 ring.Element) []byte {
	concat := make([]byte, 4*p.RSize())
	defer Zeroize(concat)

	n := p.RSize()
	copy(concat[0*n:1*n], a0.Raw)
	copy(concat[1*n:2*n], a1.Raw)
	copy(concat[2*n:3*n], c0.Raw)
	copy(concat[3*n:4*n], c1.Raw)

	digest := prf.SHA384(concat)
	defer func() {
		for i := range digest {
			digest[i] = 0
		}
	}()

	out := make([]byte, p.SSLen)
	copy(out, digest[:p.SSLen])
	return out
}
