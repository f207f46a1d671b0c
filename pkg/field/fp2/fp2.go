// Package fp2 implements the quadratic extension Fp2 = Fp[u]/(u^2 - beta),
// for a configurable non-residue beta carried by the Extension descriptor
// (rather than a hard-coded package constant), per the tower's data model.
package fp2

import (
	"math/big"

	"github.com/eth2030/pairingtower/pkg/field/fp"
)

// Extension is the Fp2 descriptor: the base modulus and the non-residue
// beta defining u^2 = beta. Built once per curve and shared by every
// Element produced from it.
type Extension struct {
	Base       *fp.Modulus
	NonResidue *fp.Element // beta, with u^2 = beta
}

// NewExtension builds an Fp2 descriptor over base with non-residue beta.
func NewExtension(base *fp.Modulus, beta *fp.Element) *Extension {
	return &Extension{Base: base, NonResidue: beta}
}

// Element is (c0 + c1*u), c0, c1 in Fp.
type Element struct {
	C0, C1 *fp.Element
	Ext    *Extension
}

// New builds an element from raw coordinates.
func New(ext *Extension, c0, c1 *fp.Element) *Element {
	return &Element{C0: c0, C1: c1, Ext: ext}
}

func Zero(ext *Extension) *Element {
	return &Element{C0: fp.Zero(ext.Base), C1: fp.Zero(ext.Base), Ext: ext}
}

func One(ext *Extension) *Element {
	return &Element{C0: fp.One(ext.Base), C1: fp.Zero(ext.Base), Ext: ext}
}

func (e *Element) IsZero() bool { return e.C0.IsZero() && e.C1.IsZero() }

func (e *Element) Equal(f *Element) bool { return e.C0.Equal(f.C0) && e.C1.Equal(f.C1) }

func Add(e, f *Element) *Element {
	return &Element{C0: fp.Add(e.C0, f.C0), C1: fp.Add(e.C1, f.C1), Ext: e.Ext}
}

func Sub(e, f *Element) *Element {
	return &Element{C0: fp.Sub(e.C0, f.C0), C1: fp.Sub(e.C1, f.C1), Ext: e.Ext}
}

func Double(e *Element) *Element { return Add(e, e) }

func Neg(e *Element) *Element {
	return &Element{C0: fp.Neg(e.C0), C1: fp.Neg(e.C1), Ext: e.Ext}
}

// Conj returns the conjugate c0 - c1*u.
func Conj(e *Element) *Element {
	return &Element{C0: e.C0, C1: fp.Neg(e.C1), Ext: e.Ext}
}

// Mul returns e*f via Karatsuba: (a0+a1 u)(b0+b1 u) = (a0 b0 + beta a1 b1) + ((a0+a1)(b0+b1) - a0 b0 - a1 b1) u.
func Mul(e, f *Element) *Element {
	v0 := fp.Mul(e.C0, f.C0)
	v1 := fp.Mul(e.C1, f.C1)
	c0 := fp.Add(v0, fp.Mul(v1, e.Ext.NonResidue))
	c1 := fp.Sub(fp.Mul(fp.Add(e.C0, e.C1), fp.Add(f.C0, f.C1)), fp.Add(v0, v1))
	return &Element{C0: c0, C1: c1, Ext: e.Ext}
}

// Sqr returns e^2 using the complex-squaring identity.
func Sqr(e *Element) *Element {
	ab := fp.Mul(e.C0, e.C1)
	c0 := fp.Mul(fp.Add(e.C0, e.C1), fp.Add(e.C0, fp.Mul(e.Ext.NonResidue, e.C1)))
	c0 = fp.Sub(c0, ab)
	c0 = fp.Sub(c0, fp.Mul(e.Ext.NonResidue, ab))
	c1 := fp.Add(ab, ab)
	return &Element{C0: c0, C1: c1, Ext: e.Ext}
}

// MulByNonResidue multiplies e by beta, the field's own non-residue - not
// to be confused with Fp6's own non-residue xi, which Fp6's cross terms
// multiply by through Mul.
func MulByNonResidue(e *Element) *Element {
	return &Element{C0: fp.Mul(e.C0, e.Ext.NonResidue), C1: fp.Mul(e.C1, e.Ext.NonResidue), Ext: e.Ext}
}

// MulScalar returns e scaled by an Fp element.
func MulScalar(e *Element, s *fp.Element) *Element {
	return &Element{C0: fp.Mul(e.C0, s), C1: fp.Mul(e.C1, s), Ext: e.Ext}
}

// Inverse returns e^-1 and true, or (nil, false) if e is zero.
// (a0 + a1 u)^-1 = (a0 - a1 u) / (a0^2 - beta a1^2).
func Inverse(e *Element) (*Element, bool) {
	if e.IsZero() {
		return nil, false
	}
	norm := fp.Sub(fp.Sqr(e.C0), fp.Mul(e.Ext.NonResidue, fp.Sqr(e.C1)))
	normInv, ok := fp.Inverse(norm)
	if !ok {
		return nil, false
	}
	return &Element{C0: fp.Mul(e.C0, normInv), C1: fp.Neg(fp.Mul(e.C1, normInv)), Ext: e.Ext}, true
}

// Exp raises e to the power k via square-and-multiply, MSB-first over k's
// bits. Used only to precompute Frobenius coefficient tables at extension
// construction time, not on the hot arithmetic path.
func Exp(e *Element, k *big.Int) *Element {
	r := One(e.Ext)
	for i := k.BitLen() - 1; i >= 0; i-- {
		r = Sqr(r)
		if k.Bit(i) == 1 {
			r = Mul(r, e)
		}
	}
	return r
}

// FrobeniusMap raises e to p^k. On Fp2, Frobenius has order 2 (conjugation),
// so only k's parity matters: odd k conjugates, even k is the identity.
func FrobeniusMap(e *Element, k int) *Element {
	if k%2 != 0 {
		return Conj(e)
	}
	return &Element{C0: e.C0, C1: e.C1, Ext: e.Ext}
}

// Sgn0 matches the hash-to-curve sign convention: sign of C1, tie-broken by C0.
func Sgn0(e *Element) int {
	if e.C1.IsZero() {
		return fp.Sgn0(e.C0)
	}
	return fp.Sgn0(e.C1)
}
