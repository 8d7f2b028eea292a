// Package entropy draws the three independent 32-byte seeds each public
// operation needs from the operating system's entropy source in a single
// call.
package entropy

import (
	"crypto/rand"
	"io"
)

// SeedLen is the byte length of one seed.
const SeedLen = 32

// Seeds holds the three independent seeds a single keypair/encaps call
// consumes in one shot.
type Seeds struct {
	S0, S1, S2 [SeedLen]byte
}

// GetSeeds fills a Seeds value from crypto/rand.Reader with a single read,
// drawing all three from the OS entropy source in one read.
func GetSeeds() (Seeds, error) {
	var buf [3 * SeedLen]byte
	if _, err := io.ReadFull(rand.Reader, buf[:]); err != nil {
		return Seeds{}, err
	}

	var s Seeds
	copy(s.S0[:], buf[0:SeedLen])
	copy(s.S1[:], buf[SeedLen:2*SeedLen])
	copy(s.S2[:], buf[2*SeedLen:3*SeedLen])
	return s, nil
}

// Zeroize clears all three seeds.
func (s *Seeds) Zeroize() {
	for i := range s.S0 {
		s.S0[i] = 0
	}
	for i := range s.S1 {
		s.S1[i] = 0
	}
	for i := range s.S2 {
		s.S2[i] = 0
	}
}
