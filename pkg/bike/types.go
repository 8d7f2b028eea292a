package bike

import (
	"encoding/binary"
	"fmt"

	"github.com/coinbase/bike-kem/internal/params"
	"github.com/coinbase/bike-kem/internal/ring"
)

// PublicKey is (f0, f1), with f0 = g*h1 and f1 = g*h0 in R — the
// cross-wiring that is intentional, not a bug.
type PublicKey struct {
	F0, F1 ring.Element
	p      *params.Params
}

// SecretKey is (h0, h1) together with their sparse index supports and the
// implicit-rejection masking values (sigma0, sigma1).
type SecretKey struct {
	H0, H1         ring.Element
	WList0, WList1 []uint32
	Sigma0, Sigma1 ring.Element
	p              *params.Params
}

// Ciphertext is (c0, c1).
type Ciphertext struct {
	C0, C1 ring.Element
	p      *params.Params
}

// SharedSecret is the ss_len-byte KEM output.
type SharedSecret []byte

// MarshalBinary encodes pk as f0.raw || f1.raw, 2*RSize bytes total.
func (pk *PublicKey) MarshalBinary() ([]byte, error) {
	out := make([]byte, 2*pk.p.RSize())
	n := pk.p.RSize()
	copy(out[:n], pk.F0.Raw)
	copy(out[n:], pk.F1.Raw)
	return out, nil
}

// UnmarshalPublicKey decodes pk from the byte layout MarshalBinary writes,
// validated against p.
func UnmarshalPublicKey(buf []byte, p *params.Params) (PublicKey, error) {
	n := p.RSize()
	if len(buf) != 2*n {
		return PublicKey{}, fmt.Errorf("%w: public key must be %d bytes, got %d", ErrInvalidEncoding, 2*n, len(buf))
	}
	pk := PublicKey{F0: ring.New(p), F1: ring.New(p), p: p}
	copy(pk.F0.Raw, buf[:n])
	copy(pk.F1.Raw, buf[n:])
	return pk, nil
}

// MarshalBinary encodes ct as c0.raw || c1.raw, 2*RSize bytes total.
func (ct *Ciphertext) MarshalBinary() ([]byte, error) {
	out := make([]byte, 2*ct.p.RSize())
	n := ct.p.RSize()
	copy(out[:n], ct.C0.Raw)
	copy(out[n:], ct.C1.Raw)
	return out, nil
}

// UnmarshalCiphertext decodes ct from the byte layout MarshalBinary writes.
func UnmarshalCiphertext(buf []byte, p *params.Params) (Ciphertext, error) {
	n := p.RSize()
	if len(buf) != 2*n {
		return Ciphertext{}, fmt.Errorf("%w: ciphertext must be %d bytes, got %d", ErrInvalidEncoding, 2*n, len(buf))
	}
	ct := Ciphertext{C0: ring.New(p), C1: ring.New(p), p: p}
	copy(ct.C0.Raw, buf[:n])
	copy(ct.C1.Raw, buf[n:])
	return ct, nil
}

// secretKeyWListBytes is the encoded length of one sparse index list: dv
// little-endian uint32 values.
func secretKeyWListBytes(p *params.Params) int {
	return p.Dv * 4
}

// secretKeyLen is the total byte length of the sk layout:
// bin[0]||bin[1]||wlist[0]||wlist[1]||sigma0||sigma1.
func secretKeyLen(p *params.Params) int {
	return 2*p.RSize() + 2*secretKeyWListBytes(p) + 2*p.RSize()
}

// MarshalBinary encodes sk as h0.raw||h1.raw||wlist0||wlist1||sigma0.raw||sigma1.raw.
func (sk *SecretKey) MarshalBinary() ([]byte, error) {
	n := sk.p.RSize()
	wn := secretKeyWListBytes(sk.p)
	out := make([]byte, secretKeyLen(sk.p))

	off := 0
	copy(out[off:off+n], sk.H0.Raw)
	off += n
	copy(out[off:off+n], sk.H1.Raw)
	off += n

	if err := encodeWList(out[off:off+wn], sk.WList0); err != nil {
		return nil, err
	}
	off += wn
	if err := encodeWList(out[off:off+wn], sk.WList1); err != nil {
		return nil, err
	}
	off += wn

	copy(out[off:off+n], sk.Sigma0.Raw)
	off += n
	copy(out[off:off+n], sk.Sigma1.Raw)

	return out, nil
}

// UnmarshalSecretKey decodes sk from the byte layout MarshalBinary writes.
func UnmarshalSecretKey(buf []byte, p *params.Params) (SecretKey, error) {
	want := secretKeyLen(p)
	if len(buf) != want {
		return SecretKey{}, fmt.Errorf("%w: secret key must be %d bytes, got %d", ErrInvalidEncoding, want, len(buf))
	}

	n := p.RSize()
	wn := secretKeyWListBytes(p)

	sk := SecretKey{
		H0:     ring.New(p),
		H1:     ring.New(p),
		Sigma0: ring.New(p),
		Sigma1: ring.New(p),
		p:      p,
	}

	off := 0
	copy(sk.H0.Raw, buf[off:off+n])
	off += n
	copy(sk.H1.Raw, buf[off:off+n])
	off += n

	sk.WList0 = decodeWList(buf[off : off+wn])
	off += wn
	sk.WList1 = decodeWList(buf[off : off+wn])
	off += wn

	copy(sk.Sigma0.Raw, buf[off:off+n])
	off += n
	copy(sk.Sigma1.Raw, buf[off:off+n])

	return sk, nil
}

func encodeWList(dst []byte, list []uint32) error {
	if len(dst) != len(list)*4 {
		return fmt.Errorf("%w: sparse index list length mismatch", ErrInvalidEncoding)
	}
	for i, v := range list {
		binary.LittleEndian.PutUint32(dst[i*4:], v)
	}
	return nil
}

func decodeWList(src []byte) []uint32 {
	out := make([]uint32, len(src)/4)
	for i := range out {
		out[i] = binary.LittleEndian.Uint32(src[i*4:])
	}
	return out
}

// Zeroize clears every secret-bearing field of sk.
func (sk *SecretKey) Zeroize() {
	ZeroizeRing(sk.H0)
	ZeroizeRing(sk.H1)
	ZeroizeRing(sk.Sigma0)
	ZeroizeRing(sk.Sigma1)
	for i := range sk.WList0 {
		sk.WList0[i] = 0
	}
	for i := range sk.WList1 {
		sk.WList1[i] = 0
	}
}
