// Package fp6 implements the sextic extension Fp6 = Fp2[v]/(v^3 - xi), the
// layer the Fp12 engine is built on. xi is the Fp2-valued non-residue
// carried by the Extension descriptor.
package fp6

import (
	"math/big"

	"github.com/eth2030/pairingtower/pkg/field/fp2"
)

// Extension is the Fp6 descriptor: the base Fp2 extension and the
// non-residue xi defining v^3 = xi, plus the precomputed Frobenius
// coefficient tables frobenius_map(k) needs to scale the c1/c2 slots by,
// indexed by k mod 6.
type Extension struct {
	Base              *fp2.Extension
	NonResidue        *fp2.Element // xi, with v^3 = xi
	FrobeniusCoeffsC1 [6]*fp2.Element
	FrobeniusCoeffsC2 [6]*fp2.Element
}

// NewExtension builds an Fp6 descriptor over base with non-residue xi,
// deriving the six Frobenius coefficients as xi^((p^k-1)/3) (and its
// square) directly from the base prime rather than hard-coding them per
// curve, so a newly loaded curveparams.Preset needs no source changes.
func NewExtension(base *fp2.Extension, xi *fp2.Element) *Extension {
	ext := &Extension{Base: base, NonResidue: xi}
	p := base.Base.Int()
	for k := 0; k < 6; k++ {
		pk := new(big.Int).Exp(p, big.NewInt(int64(k)), nil)
		e := new(big.Int).Sub(pk, big.NewInt(1))
		e.Div(e, big.NewInt(3))
		c1 := fp2.Exp(xi, e)
		ext.FrobeniusCoeffsC1[k] = c1
		ext.FrobeniusCoeffsC2[k] = fp2.Sqr(c1)
	}
	return ext
}

// Element is (c0 + c1*v + c2*v^2), c0, c1, c2 in Fp2.
type Element struct {
	C0, C1, C2 *fp2.Element
	Ext        *Extension
}

func New(ext *Extension, c0, c1, c2 *fp2.Element) *Element {
	return &Element{C0: c0, C1: c1, C2: c2, Ext: ext}
}

func Zero(ext *Extension) *Element {
	z := fp2.Zero(ext.Base)
	return &Element{C0: z, C1: fp2.Zero(ext.Base), C2: fp2.Zero(ext.Base), Ext: ext}
}

func One(ext *Extension) *Element {
	return &Element{C0: fp2.One(ext.Base), C1: fp2.Zero(ext.Base), C2: fp2.Zero(ext.Base), Ext: ext}
}

func (e *Element) IsZero() bool { return e.C0.IsZero() && e.C1.IsZero() && e.C2.IsZero() }

func (e *Element) Equal(f *Element) bool {
	return e.C0.Equal(f.C0) && e.C1.Equal(f.C1) && e.C2.Equal(f.C2)
}

func Add(e, f *Element) *Element {
	return &Element{C0: fp2.Add(e.C0, f.C0), C1: fp2.Add(e.C1, f.C1), C2: fp2.Add(e.C2, f.C2), Ext: e.Ext}
}

func Sub(e, f *Element) *Element {
	return &Element{C0: fp2.Sub(e.C0, f.C0), C1: fp2.Sub(e.C1, f.C1), C2: fp2.Sub(e.C2, f.C2), Ext: e.Ext}
}

func Double(e *Element) *Element { return Add(e, e) }

func Neg(e *Element) *Element {
	return &Element{C0: fp2.Neg(e.C0), C1: fp2.Neg(e.C1), C2: fp2.Neg(e.C2), Ext: e.Ext}
}

// MulByNonResidue multiplies e by v (where v^3 = xi) via the cyclic shift
// (c0,c1,c2) -> (xi*c2, c0, c1). This is the operation Fp12's own
// multiply-by-its-non-residue is implemented in terms of (see fp12.go).
func MulByNonResidue(e *Element) *Element {
	return &Element{
		C0:  scaleByXi(e.Ext, e.C2),
		C1:  e.C0,
		C2:  e.C1,
		Ext: e.Ext,
	}
}

// Mul returns e*f via the Karatsuba-style three-term extension multiply.
func Mul(e, f *Element) *Element {
	t0 := fp2.Mul(e.C0, f.C0)
	t1 := fp2.Mul(e.C1, f.C1)
	t2 := fp2.Mul(e.C2, f.C2)

	c0 := fp2.Add(t0, scaleByXi(e.Ext,
		fp2.Sub(fp2.Sub(fp2.Mul(fp2.Add(e.C1, e.C2), fp2.Add(f.C1, f.C2)), t1), t2)))

	c1 := fp2.Add(
		fp2.Sub(fp2.Sub(fp2.Mul(fp2.Add(e.C0, e.C1), fp2.Add(f.C0, f.C1)), t0), t1),
		scaleByXi(e.Ext, t2))

	c2 := fp2.Add(
		fp2.Sub(fp2.Sub(fp2.Mul(fp2.Add(e.C0, e.C2), fp2.Add(f.C0, f.C2)), t0), t2),
		t1)

	return &Element{C0: c0, C1: c1, C2: c2, Ext: e.Ext}
}

func Sqr(e *Element) *Element {
	s0 := fp2.Sqr(e.C0)
	ab := fp2.Mul(e.C0, e.C1)
	s1 := fp2.Double(ab)
	s2 := fp2.Sqr(fp2.Sub(fp2.Add(e.C0, e.C2), e.C1))
	bc := fp2.Mul(e.C1, e.C2)
	s3 := fp2.Double(bc)
	s4 := fp2.Sqr(e.C2)

	c0 := fp2.Add(s0, scaleByXi(e.Ext, s3))
	c1 := fp2.Add(s1, scaleByXi(e.Ext, s4))
	c2 := fp2.Sub(fp2.Sub(fp2.Add(fp2.Add(s1, s2), s3), s0), s4)

	return &Element{C0: c0, C1: c1, C2: c2, Ext: e.Ext}
}

// Inverse returns e^-1 and true, or (nil, false) if e is zero, using the
// standard cubic-extension-over-quadratic inversion formula.
func Inverse(e *Element) (*Element, bool) {
	if e.IsZero() {
		return nil, false
	}
	a := fp2.Sub(fp2.Sqr(e.C0), scaleByXi(e.Ext, fp2.Mul(e.C1, e.C2)))
	b := fp2.Sub(scaleByXi(e.Ext, fp2.Sqr(e.C2)), fp2.Mul(e.C0, e.C1))
	c := fp2.Sub(fp2.Sqr(e.C1), fp2.Mul(e.C0, e.C2))

	denom := fp2.Add(fp2.Mul(e.C0, a), scaleByXi(e.Ext, fp2.Add(fp2.Mul(e.C2, b), fp2.Mul(e.C1, c))))
	denomInv, ok := fp2.Inverse(denom)
	if !ok {
		return nil, false
	}
	return &Element{
		C0:  fp2.Mul(a, denomInv),
		C1:  fp2.Mul(b, denomInv),
		C2:  fp2.Mul(c, denomInv),
		Ext: e.Ext,
	}, true
}

// MulByFp2 scales every coefficient of e by an Fp2 scalar - used by
// Fp12's mul_by_034 sparse multiply.
func MulByFp2(e *Element, s *fp2.Element) *Element {
	return &Element{C0: fp2.Mul(e.C0, s), C1: fp2.Mul(e.C1, s), C2: fp2.Mul(e.C2, s), Ext: e.Ext}
}

// MulBy1 multiplies e by the sparse element (0 + d1*v + 0*v^2), exploiting
// the two zero slots - the Fp6 collaborator operation named in the tower's
// field-element contract (used by Fp12's mul_by_014).
func MulBy1(e *Element, d1 *fp2.Element) *Element {
	t1 := fp2.Mul(e.C1, d1)
	return &Element{
		C0:  scaleByXi(e.Ext, fp2.Mul(e.C2, d1)),
		C1:  fp2.Mul(e.C0, d1),
		C2:  t1,
		Ext: e.Ext,
	}
}

// MulBy01 multiplies e by the sparse element (d0 + d1*v + 0*v^2),
// exploiting the zero top slot - used by Fp12's mul_by_014/mul_by_034.
func MulBy01(e *Element, d0, d1 *fp2.Element) *Element {
	t0 := fp2.Mul(e.C0, d0)
	t1 := fp2.Mul(e.C1, d1)

	c0 := fp2.Add(t0, scaleByXi(e.Ext, fp2.Mul(e.C2, d1)))
	c1 := fp2.Sub(fp2.Sub(fp2.Mul(fp2.Add(e.C0, e.C1), fp2.Add(d0, d1)), t0), t1)
	c2 := fp2.Add(fp2.Mul(e.C2, d0), t1)

	return &Element{C0: c0, C1: c1, C2: c2, Ext: e.Ext}
}

// FrobeniusMap raises e to p^k: apply Fp2's own Frobenius to each
// coefficient, then scale c1 and c2 by the precomputed coefficients for
// k mod 6.
func FrobeniusMap(e *Element, k int) *Element {
	idx := k % 6
	if idx < 0 {
		idx += 6
	}
	c0 := fp2.FrobeniusMap(e.C0, k)
	c1 := fp2.Mul(fp2.FrobeniusMap(e.C1, k), e.Ext.FrobeniusCoeffsC1[idx])
	c2 := fp2.Mul(fp2.FrobeniusMap(e.C2, k), e.Ext.FrobeniusCoeffsC2[idx])
	return &Element{C0: c0, C1: c1, C2: c2, Ext: e.Ext}
}

// scaleByXi multiplies the Fp2 value v by the Fp6 extension's non-residue
// xi - the cross-term coefficient that shows up throughout the Karatsuba
// multiply, inversion, and sparse-multiply formulas above.
func scaleByXi(ext *Extension, v *fp2.Element) *fp2.Element {
	return fp2.Mul(v, ext.NonResidue)
}
