// Package fp12 implements the Fp12 engine: the degree-12 extension
// Fp12 = Fp6[w]/(w^2 - v), where v is Fp6's own non-residue. This is the
// target field of the pairing - every Miller-loop accumulator and every
// final-exponentiation intermediate lives here.
package fp12

import (
	"math/big"

	"github.com/eth2030/pairingtower/pkg/field/fp2"
	"github.com/eth2030/pairingtower/pkg/field/fp6"
	"github.com/eth2030/pairingtower/pkg/scalar"
)

// Extension is the Fp12 descriptor. NonResidue is carried only for
// structural symmetry with the lower tower levels - the reduction
// polynomial w^2-v is hard-coded, so multiply-by-non-residue at this
// layer is implemented as a shift of the Fp6 operand, never a generic
// multiply against NonResidue (see fp6.MulByNonResidue, used by Mul, Sqr
// and Inverse).
type Extension struct {
	Base              *fp6.Extension
	NonResidue        *fp6.Element
	FrobeniusCoeffsC1 [12]*fp2.Element
}

// NewExtension builds an Fp12 descriptor over base, deriving the twelve
// Frobenius coefficients as xi^((p^k-1)/6) directly from the base prime
// and Fp6's non-residue.
func NewExtension(base *fp6.Extension) *Extension {
	v := fp6.New(base, fp2.Zero(base.Base), fp2.One(base.Base), fp2.Zero(base.Base))
	ext := &Extension{Base: base, NonResidue: v}
	p := base.Base.Base.Int()
	for k := 0; k < 12; k++ {
		pk := new(big.Int).Exp(p, big.NewInt(int64(k)), nil)
		e := new(big.Int).Sub(pk, big.NewInt(1))
		e.Div(e, big.NewInt(6))
		ext.FrobeniusCoeffsC1[k] = fp2.Exp(base.NonResidue, e)
	}
	return ext
}

// Element is (c0 + c1*w), c0, c1 in Fp6.
type Element struct {
	C0, C1 *fp6.Element
	Ext    *Extension
}

func New(ext *Extension, c0, c1 *fp6.Element) *Element {
	return &Element{C0: c0, C1: c1, Ext: ext}
}

func Zero(ext *Extension) *Element {
	return &Element{C0: fp6.Zero(ext.Base), C1: fp6.Zero(ext.Base), Ext: ext}
}

func One(ext *Extension) *Element {
	return &Element{C0: fp6.One(ext.Base), C1: fp6.Zero(ext.Base), Ext: ext}
}

func (e *Element) IsZero() bool { return e.C0.IsZero() && e.C1.IsZero() }

func (e *Element) IsOne() bool {
	one := fp6.One(e.Ext.Base)
	return e.C0.Equal(one) && e.C1.IsZero()
}

func (e *Element) Equal(f *Element) bool { return e.C0.Equal(f.C0) && e.C1.Equal(f.C1) }

func Add(e, f *Element) *Element {
	return &Element{C0: fp6.Add(e.C0, f.C0), C1: fp6.Add(e.C1, f.C1), Ext: e.Ext}
}

func Sub(e, f *Element) *Element {
	return &Element{C0: fp6.Sub(e.C0, f.C0), C1: fp6.Sub(e.C1, f.C1), Ext: e.Ext}
}

func Double(e *Element) *Element { return Add(e, e) }

func Neg(e *Element) *Element {
	return &Element{C0: fp6.Neg(e.C0), C1: fp6.Neg(e.C1), Ext: e.Ext}
}

// Conjugate negates c1 - Frobenius over Fp6.
func Conjugate(e *Element) *Element {
	return &Element{C0: e.C0, C1: fp6.Neg(e.C1), Ext: e.Ext}
}

// MulByNonResidue is the Fp12-level multiply-by-non-residue from the
// tower's generic field-element contract. Fp12 sits at the top of the
// tower, so nothing above it ever needs to multiply by Fp12's own
// non-residue; this is provided only for contract conformance and panics
// if called, matching the source's own "unreachable" fallback.
func MulByNonResidue(e *Element) *Element {
	panic("fp12: multiply by Fp12's own non-residue is unreachable")
}

// Mul returns e*f via Karatsuba over the quadratic extension:
// x=(a0,a1), y=(b0,b1); A=a0*b0, B=a1*b1;
// S=(a0+a1)(b0+b1)-A-B; c0 = A + fp6.MulByNonResidue(B); c1 = S.
func Mul(e, f *Element) *Element {
	a := fp6.Mul(e.C0, f.C0)
	b := fp6.Mul(e.C1, f.C1)
	c1 := fp6.Sub(fp6.Sub(fp6.Mul(fp6.Add(e.C0, e.C1), fp6.Add(f.C0, f.C1)), a), b)
	c0 := fp6.Add(a, fp6.MulByNonResidue(b))
	return &Element{C0: c0, C1: c1, Ext: e.Ext}
}

// Sqr returns e^2 via the complex-squaring variant: x=(a0,a1);
// ab=a0*a1; S=(a0+a1)(a0+v*a1)-ab-v*ab; c0=S, c1=2*ab.
func Sqr(e *Element) *Element {
	ab := fp6.Mul(e.C0, e.C1)
	t := fp6.Add(e.C0, e.C1)
	u := fp6.Add(e.C0, fp6.MulByNonResidue(e.C1))
	c0 := fp6.Sub(fp6.Sub(fp6.Mul(t, u), ab), fp6.MulByNonResidue(ab))
	c1 := fp6.Double(ab)
	return &Element{C0: c0, C1: c1, Ext: e.Ext}
}

// Inverse returns e^-1 and true, or (nil, false) if e is zero.
// t = a0^2 - v*a1^2; u = t^-1; result = (a0*u, -a1*u).
func Inverse(e *Element) (*Element, bool) {
	if e.IsZero() {
		return nil, false
	}
	t := fp6.Sub(fp6.Sqr(e.C0), fp6.MulByNonResidue(fp6.Sqr(e.C1)))
	u, ok := fp6.Inverse(t)
	if !ok {
		return nil, false
	}
	return &Element{C0: fp6.Mul(e.C0, u), C1: fp6.Neg(fp6.Mul(e.C1, u)), Ext: e.Ext}, true
}

// MulBy014 multiplies e=(A,B) by the sparse element whose Fp6 parts are
// (c0 + c1*v, c4*v). A Miller-loop line-function shape.
func MulBy014(e *Element, c0, c1, c4 *fp2.Element) *Element {
	aa := fp6.MulBy01(e.C0, c0, c1)
	bb := fp6.MulBy1(e.C1, c4)
	o := fp2.Add(c1, c4)

	newC1 := fp6.MulBy01(fp6.Add(e.C0, e.C1), c0, o)
	newC1 = fp6.Sub(newC1, aa)
	newC1 = fp6.Sub(newC1, bb)

	newC0 := fp6.Add(fp6.MulByNonResidue(bb), aa)

	return &Element{C0: newC0, C1: newC1, Ext: e.Ext}
}

// MulBy034 multiplies e=(A,B) by the sparse element whose Fp6 parts are
// (c0, c3 + c4*v). The alternate-form Miller-loop line-function shape.
func MulBy034(e *Element, c0, c3, c4 *fp2.Element) *Element {
	a := fp6.MulByFp2(e.C0, c0)
	b := fp6.MulBy01(e.C1, c3, c4)

	sumC0 := fp2.Add(c0, c3)
	eSum := fp6.MulBy01(fp6.Add(e.C0, e.C1), sumC0, c4)

	newC1 := fp6.Sub(fp6.Sub(eSum, a), b)
	newC0 := fp6.Add(a, fp6.MulByNonResidue(b))

	return &Element{C0: newC0, C1: newC1, Ext: e.Ext}
}

// CyclotomicSquare is the Granger-Scott squaring for elements of the
// cyclotomic subgroup. x = (z0+z4*v+z3*v^2) + (z2+z1*v+z5*v^2)*w; three
// Fp2 complex-squarings produce (t0,t1),(t2,t3),(t4,t5), then the g_i are
// assembled via the closed form in the tower's design notes. The
// double-then-add expansion of 3t+2z (rather than a single fused
// multiply-add) is intentional and preserved bit-for-bit.
func CyclotomicSquare(e *Element) *Element {
	z0, z1 := e.C0.C0, e.C1.C1
	z2, z3 := e.C1.C0, e.C0.C2
	z4, z5 := e.C0.C1, e.C1.C2

	t0, t1 := complexSquare(z0, z1, e.Ext)
	t2, t3 := complexSquare(z2, z3, e.Ext)
	t4, t5 := complexSquare(z4, z5, e.Ext)

	g0 := subVariant(t0, z0)
	g1 := addThenDoubleThenAdd(t1, z1)
	g2 := addThenDoubleThenAdd(scaleByXiFp2(e.Ext, t5), z2)
	g3 := subVariant(t4, z3)
	g4 := subVariant(t2, z4)
	g5 := addThenDoubleThenAdd(t3, z5)

	c0 := fp6.New(e.Ext.Base, g0, g4, g3)
	c1 := fp6.New(e.Ext.Base, g2, g1, g5)
	return &Element{C0: c0, C1: c1, Ext: e.Ext}
}

// complexSquare computes (z + z'*v)^2 = t + t'*v for an Fp2 pair (z, z'),
// using the same complex-squaring identity as Fp12's own Sqr: Karatsuba
// over a quadratic extension, specialized to Fp2 pairs packed inside Fp6.
func complexSquare(z, zp *fp2.Element, ext *Extension) (t, tp *fp2.Element) {
	ab := fp2.Mul(z, zp)
	xi := ext.Base.NonResidue
	sum := fp2.Add(z, zp)
	u := fp2.Add(z, fp2.Mul(xi, zp))
	t = fp2.Sub(fp2.Sub(fp2.Mul(sum, u), ab), fp2.Mul(xi, ab))
	tp = fp2.Double(ab)
	return t, tp
}

// addThenDoubleThenAdd expands 3*t+2*z as ((t+z)*2)+t, matching the
// source's own double-then-add sequence rather than a single fused
// 3*t+2*z expression.
func addThenDoubleThenAdd(t, z *fp2.Element) *fp2.Element {
	sum := fp2.Add(t, z)
	doubled := fp2.Double(sum)
	return fp2.Add(doubled, t)
}

// subVariant expands 3*t-2*z as ((t-z)*2)+t, the mirrored doubling
// sequence used for g0/g3/g4.
func subVariant(t, z *fp2.Element) *fp2.Element {
	diff := fp2.Sub(t, z)
	doubled := fp2.Double(diff)
	return fp2.Add(doubled, t)
}

func scaleByXiFp2(ext *Extension, v *fp2.Element) *fp2.Element {
	return fp2.Mul(ext.Base.NonResidue, v)
}

// Pow returns e raised to the power given by exp's MSB-first 64-bit
// limbs, via generic square-and-multiply.
func Pow(e *Element, exp scalar.Limbs) *Element {
	return expWith(e, exp, Sqr)
}

// CyclotomicExp is Pow's identical loop shape specialized to
// CyclotomicSquare - valid only when e is in the cyclotomic subgroup.
func CyclotomicExp(e *Element, exp scalar.Limbs) *Element {
	return expWith(e, exp, CyclotomicSquare)
}

func expWith(e *Element, exp scalar.Limbs, square func(*Element) *Element) *Element {
	if exp.IsZero() {
		return One(e.Ext)
	}
	n := exp.BitLen()
	r := &Element{C0: e.C0, C1: e.C1, Ext: e.Ext}
	started := false
	for i := n - 1; i >= 0; i-- {
		bit := exp.Bit(i)
		if !started {
			if bit == 0 {
				continue
			}
			started = true
			continue
		}
		r = square(r)
		if bit == 1 {
			r = Mul(r, e)
		}
	}
	return r
}

// FrobeniusMap raises e to p^k: apply Fp6's own Frobenius to c0 and c1,
// then scale each Fp2 component of c1 by frobenius_coeffs_c1[k mod 12].
func FrobeniusMap(e *Element, k int) *Element {
	idx := k % 12
	if idx < 0 {
		idx += 12
	}
	c0 := fp6.FrobeniusMap(e.C0, k)
	c1raw := fp6.FrobeniusMap(e.C1, k)
	coeff := e.Ext.FrobeniusCoeffsC1[idx]
	c1 := fp6.New(c1raw.Ext, fp2.Mul(c1raw.C0, coeff), fp2.Mul(c1raw.C1, coeff), fp2.Mul(c1raw.C2, coeff))
	return &Element{C0: c0, C1: c1, Ext: e.Ext}
}
