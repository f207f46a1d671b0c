// Package fp implements the base prime field Fp that every level of the
// extension tower (Fp2, Fp3, Fp6, Fp12) is built on.
//
// A Modulus is constructed once per configured curve and shared by every
// Element produced from it; elements never carry their own copy of p.
package fp

import "math/big"

// Modulus is the base-field descriptor: the prime p. Nothing else is
// precomputed; each arithmetic routine reduces directly against p.
type Modulus struct {
	p *big.Int
}

// NewModulus builds a field descriptor for the prime p. Callers are
// responsible for ensuring p is actually prime; Fp does not verify it.
func NewModulus(p *big.Int) *Modulus {
	return &Modulus{p: new(big.Int).Set(p)}
}

// Int returns the modulus as a big.Int. The returned value must not be mutated.
func (m *Modulus) Int() *big.Int { return m.p }

// Element is a single Fp value, reduced into [0, p).
type Element struct {
	v   *big.Int
	mod *Modulus
}

// New reduces v modulo m's prime and returns the resulting element.
func New(m *Modulus, v *big.Int) *Element {
	r := new(big.Int).Mod(v, m.p)
	if r.Sign() < 0 {
		r.Add(r, m.p)
	}
	return &Element{v: r, mod: m}
}

// Zero returns the additive identity of m.
func Zero(m *Modulus) *Element { return &Element{v: new(big.Int), mod: m} }

// One returns the multiplicative identity of m.
func One(m *Modulus) *Element { return &Element{v: big.NewInt(1), mod: m} }

// Modulus returns the descriptor this element was built from.
func (e *Element) Modulus() *Modulus { return e.mod }

// Int returns the element's value. The returned value must not be mutated.
func (e *Element) Int() *big.Int { return e.v }

// IsZero reports whether e is the additive identity.
func (e *Element) IsZero() bool { return e.v.Sign() == 0 }

// Equal reports whether e and f represent the same residue.
func (e *Element) Equal(f *Element) bool { return e.v.Cmp(f.v) == 0 }

// Add returns e + f.
func Add(e, f *Element) *Element {
	r := new(big.Int).Add(e.v, f.v)
	r.Mod(r, e.mod.p)
	return &Element{v: r, mod: e.mod}
}

// Sub returns e - f.
func Sub(e, f *Element) *Element {
	r := new(big.Int).Sub(e.v, f.v)
	r.Mod(r, e.mod.p)
	return &Element{v: r, mod: e.mod}
}

// Double returns e + e.
func Double(e *Element) *Element { return Add(e, e) }

// Neg returns -e mod p.
func Neg(e *Element) *Element {
	if e.v.Sign() == 0 {
		return Zero(e.mod)
	}
	r := new(big.Int).Sub(e.mod.p, e.v)
	return &Element{v: r, mod: e.mod}
}

// Mul returns e * f.
func Mul(e, f *Element) *Element {
	r := new(big.Int).Mul(e.v, f.v)
	r.Mod(r, e.mod.p)
	return &Element{v: r, mod: e.mod}
}

// Sqr returns e * e.
func Sqr(e *Element) *Element { return Mul(e, e) }

// Inverse returns e^-1 and true, or (nil, false) if e is zero.
func Inverse(e *Element) (*Element, bool) {
	if e.v.Sign() == 0 {
		return nil, false
	}
	r := new(big.Int).ModInverse(e.v, e.mod.p)
	return &Element{v: r, mod: e.mod}, true
}

// Exp returns e raised to the power k, reduced mod p - this is Fp's own
// pow(exp), consumed as a plain *big.Int since Fp sits below the tower's
// limb-oriented pow(exp) contract.
func Exp(e *Element, k *big.Int) *Element {
	r := new(big.Int).Exp(e.v, k, e.mod.p)
	return &Element{v: r, mod: e.mod}
}

// Sqrt returns a square root of e, or (nil, false) if e is not a square.
// Assumes p = 3 (mod 4), matching every pairing-friendly prime this tower
// is built for: sqrt(a) = a^((p+1)/4).
func Sqrt(e *Element) (*Element, bool) {
	if e.v.Sign() == 0 {
		return Zero(e.mod), true
	}
	exp := new(big.Int).Add(e.mod.p, big.NewInt(1))
	exp.Rsh(exp, 2)
	r := Exp(e, exp)
	if !Sqr(r).Equal(e) {
		return nil, false
	}
	return r, true
}

// IsSquare reports whether e is a quadratic residue, via Euler's criterion.
func IsSquare(e *Element) bool {
	if e.v.Sign() == 0 {
		return true
	}
	exp := new(big.Int).Sub(e.mod.p, big.NewInt(1))
	exp.Rsh(exp, 1)
	return Exp(e, exp).v.Cmp(big.NewInt(1)) == 0
}

// Sgn0 returns the low bit of e's canonical representative.
func Sgn0(e *Element) int { return int(e.v.Bit(0)) }
