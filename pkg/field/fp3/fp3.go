// Package fp3 implements the cubic extension Fp3 = Fp[t]/(t^3 - gamma),
// the base field of the twisted Weierstrass curve. Pairing-friendly curves
// built with a cubic twist (rather than the more common quadratic/sextic
// twist) carry their curve coefficients and point coordinates in Fp3.
package fp3

import "github.com/eth2030/pairingtower/pkg/field/fp"

// Extension is the Fp3 descriptor: the base modulus and the cubic
// non-residue gamma defining t^3 = gamma.
type Extension struct {
	Base       *fp.Modulus
	NonResidue *fp.Element // gamma, with t^3 = gamma
}

func NewExtension(base *fp.Modulus, gamma *fp.Element) *Extension {
	return &Extension{Base: base, NonResidue: gamma}
}

// Element is (c0 + c1*t + c2*t^2), c0, c1, c2 in Fp.
type Element struct {
	C0, C1, C2 *fp.Element
	Ext        *Extension
}

func New(ext *Extension, c0, c1, c2 *fp.Element) *Element {
	return &Element{C0: c0, C1: c1, C2: c2, Ext: ext}
}

func Zero(ext *Extension) *Element {
	return &Element{C0: fp.Zero(ext.Base), C1: fp.Zero(ext.Base), C2: fp.Zero(ext.Base), Ext: ext}
}

func One(ext *Extension) *Element {
	return &Element{C0: fp.One(ext.Base), C1: fp.Zero(ext.Base), C2: fp.Zero(ext.Base), Ext: ext}
}

func (e *Element) IsZero() bool { return e.C0.IsZero() && e.C1.IsZero() && e.C2.IsZero() }

func (e *Element) Equal(f *Element) bool {
	return e.C0.Equal(f.C0) && e.C1.Equal(f.C1) && e.C2.Equal(f.C2)
}

func Add(e, f *Element) *Element {
	return &Element{C0: fp.Add(e.C0, f.C0), C1: fp.Add(e.C1, f.C1), C2: fp.Add(e.C2, f.C2), Ext: e.Ext}
}

func Sub(e, f *Element) *Element {
	return &Element{C0: fp.Sub(e.C0, f.C0), C1: fp.Sub(e.C1, f.C1), C2: fp.Sub(e.C2, f.C2), Ext: e.Ext}
}

func Double(e *Element) *Element { return Add(e, e) }

func Neg(e *Element) *Element {
	return &Element{C0: fp.Neg(e.C0), C1: fp.Neg(e.C1), C2: fp.Neg(e.C2), Ext: e.Ext}
}

// Mul returns e*f via the Toom-Cook-style three-term extension multiply,
// the same structural shape used for Fp6 over Fp2, specialized to a
// scalar (rather than Fp2-valued) non-residue gamma.
func Mul(e, f *Element) *Element {
	t0 := fp.Mul(e.C0, f.C0)
	t1 := fp.Mul(e.C1, f.C1)
	t2 := fp.Mul(e.C2, f.C2)

	c0 := fp.Add(t0, fp.Mul(e.Ext.NonResidue,
		fp.Sub(fp.Sub(fp.Mul(fp.Add(e.C1, e.C2), fp.Add(f.C1, f.C2)), t1), t2)))

	c1 := fp.Add(
		fp.Sub(fp.Sub(fp.Mul(fp.Add(e.C0, e.C1), fp.Add(f.C0, f.C1)), t0), t1),
		fp.Mul(e.Ext.NonResidue, t2))

	c2 := fp.Add(
		fp.Sub(fp.Sub(fp.Mul(fp.Add(e.C0, e.C2), fp.Add(f.C0, f.C2)), t0), t2),
		t1)

	return &Element{C0: c0, C1: c1, C2: c2, Ext: e.Ext}
}

func Sqr(e *Element) *Element { return Mul(e, e) }

// MulByNonResidue multiplies e by t (where t^3 = gamma) via the cyclic shift
// (c0,c1,c2) -> (gamma*c2, c0, c1).
func MulByNonResidue(e *Element) *Element {
	return &Element{
		C0:  fp.Mul(e.Ext.NonResidue, e.C2),
		C1:  e.C0,
		C2:  e.C1,
		Ext: e.Ext,
	}
}

// Inverse returns e^-1 and true, or (nil, false) if e is zero, using the
// standard cubic-extension inversion formula.
func Inverse(e *Element) (*Element, bool) {
	if e.IsZero() {
		return nil, false
	}
	g := e.Ext.NonResidue
	a := fp.Sub(fp.Sqr(e.C0), fp.Mul(g, fp.Mul(e.C1, e.C2)))
	b := fp.Sub(fp.Mul(g, fp.Sqr(e.C2)), fp.Mul(e.C0, e.C1))
	c := fp.Sub(fp.Sqr(e.C1), fp.Mul(e.C0, e.C2))

	denom := fp.Add(fp.Mul(e.C0, a), fp.Mul(g, fp.Add(fp.Mul(e.C2, b), fp.Mul(e.C1, c))))
	denomInv, ok := fp.Inverse(denom)
	if !ok {
		return nil, false
	}
	return &Element{
		C0:  fp.Mul(a, denomInv),
		C1:  fp.Mul(b, denomInv),
		C2:  fp.Mul(c, denomInv),
		Ext: e.Ext,
	}, true
}
