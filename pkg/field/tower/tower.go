// Package tower documents the field-element contract every level of the
// extension tower (Fp, Fp2, Fp3, Fp6, Fp12) satisfies. Each level's package
// (fp, fp2, fp3, fp6, fp12) implements this contract as free functions over
// its own concrete Element type rather than through this interface
// directly - Go's lack of sum-type-friendly generics over differently
// shaped descriptors makes a single shared interface awkward to thread
// through Karatsuba-style multiplies that need access to sibling
// coefficients. Element exists so higher-level code that only needs the
// capabilities below (not a level's specific coordinate shape) has a name
// for the shape it depends on.
package tower

import "github.com/eth2030/pairingtower/pkg/scalar"

// Element is the minimal capability every tower level's concrete element
// type exposes as methods (IsZero, and an Equal taking its own concrete
// type). Each level's package is written against its own concrete Element
// struct rather than this interface, since Karatsuba-style multiplies need
// access to sibling coefficients an interface can't expose; this type
// documents the shared shape for readers moving between levels.
type Element interface {
	IsZero() bool
}

// Pow is the shape of a level's pow(exp) entry point: new element, total,
// consuming exp as MSB-first 64-bit limbs.
type Pow func(exp scalar.Limbs) Element
