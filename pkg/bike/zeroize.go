package bike

import (
	"runtime"

	"github.com/coinbase/bike-kem/internal/ring"
)

// Zeroize overwrites buf with zeros. Every secret-bearing buffer allocated
// by a public operation (sk, the mf/e/e' scratch in Decapsulate, the KDF
// concatenation buffer) is zeroized through this helper on every exit path
// — success or failure; PRF streams clear their own key copy through
// prf.Stream.Zeroize. The trailing runtime.KeepAlive pins
// buf past the final store
// so the compiler cannot prove the writes are dead and elide them; callers
// wanting extra assurance should build with `go build -gcflags=-m` and
// confirm no "dead store" diagnostic is emitted for a Zeroize call site.
func Zeroize(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
	runtime.KeepAlive(buf)
}

// ZeroizeRing zeroizes a RingElement's backing bytes.
func ZeroizeRing(e ring.Element) {
	Zeroize(e.Raw)
}
