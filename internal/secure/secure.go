// Package secure provides the constant-time comparison, weight-check, and
// selection primitives the orchestration core in pkg/bike relies on for its
// decapsulation success predicate and implicit-rejection masking. Nothing
// here may branch on the content of the buffers it is given; the
// internalcheck package enforces the companion rule that callers never
// compare secret-derived byte slices with == outside of this package.
package secure

import "crypto/subtle"

// Predicate is a constant-time boolean: 0x00 (false) or 0xFF (true). It is
// deliberately a distinct type from bool so that combining predicates reads
// as bitwise masking rather than boolean short-circuit logic.
type Predicate byte

// PredicateTrue and PredicateFalse are the two valid Predicate values.
const (
	PredicateFalse Predicate = 0x00
	PredicateTrue  Predicate = 0xFF
)

// predicateFromInt turns a subtle.ConstantTime* 0/1 result into a Predicate.
func predicateFromInt(v int) Predicate {
	return Predicate(-byte(v) & 0xFF)
}

// And combines two predicates with a constant-time bitwise AND. Used to
// build the three-way decapsulation success condition without ever
// evaluating a Go && against secret-derived booleans.
func (p Predicate) And(q Predicate) Predicate {
	return p & q
}

// Bool reports the boolean value of p. It is safe to branch on the *result*
// of a completed constant-time computation (e.g. for logging or tests); what
// must never happen is deriving p itself through a data-dependent branch.
func (p Predicate) Bool() bool {
	return p == PredicateTrue
}

// Compare reports whether a and b are byte-for-byte equal, in time
// independent of where they first differ. It is the concrete instance of
// the comparison primitive the BIKE reference calls secure_cmp.
func Compare(a, b []byte) Predicate {
	if len(a) != len(b) {
		return PredicateFalse
	}
	return predicateFromInt(subtle.ConstantTimeCompare(a, b))
}

// Equal32 reports whether two uint32 values are equal in constant time. It
// is the uint32 analog of Compare (the reference's secure_cmp32), used to
// compare the decoded error weight against the target weight t.
func Equal32(a, b uint32) Predicate {
	return predicateFromInt(subtle.ConstantTimeEq(int32(a), int32(b)))
}

// LessOrEqual32 reports whether a <= b in constant time, used when the
// weight check is phrased as a bound rather than an exact target.
func LessOrEqual32(a, b uint32) Predicate {
	return predicateFromInt(subtle.ConstantTimeLessOrEq(int(a), int(b)))
}

// Select copies src1 into dst when p is true, src2 otherwise, touching every
// byte of both sources regardless of p so the operation's timing does not
// depend on the predicate. dst, src1 and src2 must have equal length.
func Select(dst, src1, src2 []byte, p Predicate) {
	if len(dst) != len(src1) || len(dst) != len(src2) {
		panic("secure.Select: length mismatch")
	}
	subtle.ConstantTimeCopy(int((^p)&1), dst, src2)
	subtle.ConstantTimeCopy(int(p&1), dst, src1)
}
