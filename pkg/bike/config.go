package bike

import "github.com/coinbase/bike-kem/internal/params"

// Parameters is the compiled-in BIKE-1 Round-2 parameter set a Scheme is
// built from. It is a re-export of internal/params.Params so callers never
// need to import an internal package just to pick a preset.
type Parameters = params.Params

// BIKE1L1 returns the NIST security level 1 parameter set (r=12323, dv=71,
// t=134).
func BIKE1L1() *Parameters { return params.BIKE1L1() }

// BIKE1L3 returns the NIST security level 3 parameter set (r=24659,
// dv=103, t=199).
func BIKE1L3() *Parameters { return params.BIKE1L3() }
