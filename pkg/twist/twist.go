// Package twist implements the twisted Weierstrass curve y^2 = x^3 + a*x + b
// over Fp3 (a cubic twist), in Jacobian coordinates, with its group law and
// binary/wNAF scalar multiplication. Grounded on the EFD "2007-bl"/"2009-l"
// addition and doubling formulas, the same ones the teacher's G1/G2 point
// arithmetic uses over Fp/Fp2 - generalized here to a cubic-extension base
// field and a curve that may have a nonzero `a` coefficient.
package twist

import (
	"errors"

	"github.com/eth2030/pairingtower/pkg/field/fp3"
	"github.com/eth2030/pairingtower/pkg/scalar"
)

// ErrInvariantViolation is panicked when a point invariant the group law
// assumes (a non-zero Z coordinate being invertible) fails to hold -
// reachable only if a caller builds a Point by hand outside this package's
// constructors, since every function here preserves the invariant.
var ErrInvariantViolation = errors.New("twist: invariant violation")

// CurveType tags whether a curve's `a` coefficient is zero. Only Double
// dispatches on it; every other group operation is oblivious to the tag.
type CurveType int

const (
	Generic CurveType = iota
	AIsZero
)

// Curve is the twisted-curve descriptor: coefficients a, b in Fp3, the
// base field extension, and the CurveType tag. It holds no scalar-field
// modulus; scalar multiplication never reduces `exp`.
type Curve struct {
	Base *fp3.Extension
	A, B *fp3.Element
	Type CurveType
}

// New builds a curve descriptor, tagging AIsZero iff a.IsZero().
func New(base *fp3.Extension, a, b *fp3.Element) *Curve {
	t := Generic
	if a.IsZero() {
		t = AIsZero
	}
	return &Curve{Base: base, A: a, B: b, Type: t}
}

// Point is a Jacobian-coordinate point (X,Y,Z) on its curve.
type Point struct {
	X, Y, Z *fp3.Element
	Curve   *Curve
}

// Zero returns the canonical identity representative (0,1,0).
func Zero(c *Curve) *Point {
	return &Point{X: fp3.Zero(c.Base), Y: fp3.One(c.Base), Z: fp3.Zero(c.Base), Curve: c}
}

// PointFromXY builds an affine (Z=1) point from coordinates, or the
// identity if both are zero.
func PointFromXY(c *Curve, x, y *fp3.Element) *Point {
	if x.IsZero() && y.IsZero() {
		return Zero(c)
	}
	return &Point{X: x, Y: y, Z: fp3.One(c.Base), Curve: c}
}

// IsZero reports whether p is the identity (Z=0).
func (p *Point) IsZero() bool { return p.Z.IsZero() }

// IsNormalized reports whether p is already affine (Z=1), matching it
// against the field's multiplicative identity.
func (p *Point) IsNormalized() bool {
	return p.Z.Equal(fp3.One(p.Curve.Base))
}

// CheckOnCurve tests y^2 = x^3 + a*x + b. Assumes p is affine (Z==1);
// callers must Normalize first - this precondition is documented rather
// than defensively enforced, matching the source's own choice.
func CheckOnCurve(p *Point) bool {
	if p.IsZero() {
		return true
	}
	x2 := fp3.Sqr(p.X)
	x3 := fp3.Mul(x2, p.X)
	rhs := fp3.Add(fp3.Add(x3, fp3.Mul(p.Curve.A, p.X)), p.Curve.B)
	lhs := fp3.Sqr(p.Y)
	return lhs.Equal(rhs)
}

// Normalize converts p from Jacobian to affine coordinates, returning a
// new point and leaving p untouched: if zero or already affine, returns p
// unchanged; else divides X by Z^2 and Y by Z^3. Inversion of a non-zero
// Z cannot fail in a field; a failure here indicates memory corruption or
// caller misuse and is surfaced as a fatal invariant violation, not a
// recoverable error.
func Normalize(p *Point) *Point {
	if p.IsZero() || p.IsNormalized() {
		return p
	}
	zInv, ok := fp3.Inverse(p.Z)
	if !ok {
		panic(ErrInvariantViolation)
	}
	zInv2 := fp3.Sqr(zInv)
	zInv3 := fp3.Mul(zInv2, zInv)
	return &Point{
		X:     fp3.Mul(p.X, zInv2),
		Y:     fp3.Mul(p.Y, zInv3),
		Z:     fp3.One(p.Curve.Base),
		Curve: p.Curve,
	}
}

// IntoXY normalizes p using Jacobian convention (divide by Z^2, Z^3) and
// returns its affine coordinates.
func IntoXY(p *Point) (x, y *fp3.Element) {
	n := Normalize(p)
	return n.X, n.Y
}

// IntoXYFromHomogeneous normalizes p using projective convention (divide
// both coordinates by Z) - exported alongside IntoXY because different
// pairing sub-algorithms emit points in different coordinate systems;
// the two conventions are intentionally not unified.
func IntoXYFromHomogeneous(p *Point) (x, y *fp3.Element) {
	if p.IsZero() {
		return fp3.Zero(p.Curve.Base), fp3.Zero(p.Curve.Base)
	}
	if p.IsNormalized() {
		return p.X, p.Y
	}
	zInv, ok := fp3.Inverse(p.Z)
	if !ok {
		panic(ErrInvariantViolation)
	}
	return fp3.Mul(p.X, zInv), fp3.Mul(p.Y, zInv)
}

// Negate maps identity to identity; otherwise negates Y.
func Negate(p *Point) *Point {
	if p.IsZero() {
		return Zero(p.Curve)
	}
	return &Point{X: p.X, Y: fp3.Neg(p.Y), Z: p.Z, Curve: p.Curve}
}

// Sub returns p - q, i.e. Add(p, Negate(q)).
func Sub(p, q *Point) *Point { return Add(p, Negate(q)) }

// AddMixed adds p and q using EFD's madd-2007-bl, assuming q is affine
// (q.Z == 1). Used automatically by Add when the right operand is affine;
// exported so callers already holding an affine operand can skip the
// Z==1 check.
func AddMixed(p, q *Point) *Point {
	if p.IsZero() {
		return &Point{X: q.X, Y: q.Y, Z: fp3.One(p.Curve.Base), Curve: p.Curve}
	}

	z1z1 := fp3.Sqr(p.Z)
	u2 := fp3.Mul(q.X, z1z1)
	s2 := fp3.Mul(fp3.Mul(q.Y, p.Z), z1z1)

	if p.X.Equal(u2) {
		if p.Y.Equal(s2) {
			return Double(p)
		}
		return Zero(p.Curve)
	}

	h := fp3.Sub(u2, p.X)
	hh := fp3.Sqr(h)
	i := fp3.Double(fp3.Double(hh))
	j := fp3.Mul(h, i)
	r := fp3.Double(fp3.Sub(s2, p.Y))
	v := fp3.Mul(p.X, i)

	x3 := fp3.Sub(fp3.Sub(fp3.Sqr(r), j), fp3.Double(v))
	y3 := fp3.Sub(fp3.Mul(r, fp3.Sub(v, x3)), fp3.Double(fp3.Mul(p.Y, j)))
	z3 := fp3.Sub(fp3.Sub(fp3.Sqr(fp3.Add(p.Z, h)), z1z1), hh)

	return &Point{X: x3, Y: y3, Z: z3, Curve: p.Curve}
}

// Add adds p and q using EFD's add-2007-bl. If either operand is the
// identity it returns a copy of the other; if q is affine it delegates to
// AddMixed.
func Add(p, q *Point) *Point {
	if p.IsZero() {
		return &Point{X: q.X, Y: q.Y, Z: q.Z, Curve: p.Curve}
	}
	if q.IsZero() {
		return &Point{X: p.X, Y: p.Y, Z: p.Z, Curve: p.Curve}
	}
	if q.IsNormalized() {
		return AddMixed(p, q)
	}

	z1z1 := fp3.Sqr(p.Z)
	z2z2 := fp3.Sqr(q.Z)
	u1 := fp3.Mul(p.X, z2z2)
	u2 := fp3.Mul(q.X, z1z1)
	s1 := fp3.Mul(fp3.Mul(p.Y, q.Z), z2z2)
	s2 := fp3.Mul(fp3.Mul(q.Y, p.Z), z1z1)

	if u1.Equal(u2) {
		if s1.Equal(s2) {
			return Double(p)
		}
		return Zero(p.Curve)
	}

	h := fp3.Sub(u2, u1)
	i := fp3.Sqr(fp3.Double(h))
	j := fp3.Mul(h, i)
	r := fp3.Double(fp3.Sub(s2, s1))
	v := fp3.Mul(u1, i)

	x3 := fp3.Sub(fp3.Sub(fp3.Sqr(r), j), fp3.Double(v))
	y3 := fp3.Sub(fp3.Mul(r, fp3.Sub(v, x3)), fp3.Double(fp3.Mul(s1, j)))
	z3 := fp3.Mul(fp3.Sub(fp3.Sub(fp3.Sqr(fp3.Add(p.Z, q.Z)), z1z1), z2z2), h)

	return &Point{X: x3, Y: y3, Z: z3, Curve: p.Curve}
}

// Double doubles p, dispatching on the curve's tag: dbl-2009-l for
// AIsZero, dbl-2007-bl for Generic. This is the only operation that
// branches on CurveType.
func Double(p *Point) *Point {
	if p.IsZero() {
		return Zero(p.Curve)
	}
	switch p.Curve.Type {
	case AIsZero:
		return doubleAIsZero(p)
	default:
		return doubleGeneric(p)
	}
}

func doubleGeneric(p *Point) *Point {
	a := fp3.Sqr(p.X)
	b := fp3.Sqr(p.Y)
	c := fp3.Sqr(b)
	zz := fp3.Sqr(p.Z)

	d := fp3.Double(fp3.Sub(fp3.Sub(fp3.Sqr(fp3.Add(p.X, b)), a), c))
	zz2 := fp3.Sqr(zz)
	e := fp3.Add(fp3.Add(fp3.Double(a), a), fp3.Mul(p.Curve.A, zz2))
	f := fp3.Sub(fp3.Sqr(e), fp3.Double(d))

	x3 := f
	z3 := fp3.Sub(fp3.Sub(fp3.Sqr(fp3.Add(p.Y, p.Z)), b), zz)
	eightC := fp3.Double(fp3.Double(fp3.Double(c)))
	y3 := fp3.Sub(fp3.Mul(e, fp3.Sub(d, x3)), eightC)

	return &Point{X: x3, Y: y3, Z: z3, Curve: p.Curve}
}

func doubleAIsZero(p *Point) *Point {
	a := fp3.Sqr(p.X)
	b := fp3.Sqr(p.Y)
	c := fp3.Sqr(b)

	d := fp3.Double(fp3.Sub(fp3.Sub(fp3.Sqr(fp3.Add(p.X, b)), a), c))
	e := fp3.Add(fp3.Double(a), a)
	f := fp3.Sub(fp3.Sqr(e), fp3.Double(d))

	x3 := f
	z3 := fp3.Double(fp3.Mul(p.Y, p.Z))
	eightC := fp3.Double(fp3.Double(fp3.Double(c)))
	y3 := fp3.Sub(fp3.Mul(e, fp3.Sub(d, x3)), eightC)

	return &Point{X: x3, Y: y3, Z: z3, Curve: p.Curve}
}

// Mul computes exp*p via left-to-right double-and-add over exp's
// MSB-first bit stream. Uses the mixed-add specialization throughout
// when p is affine.
func Mul(p *Point, exp scalar.Limbs) *Point {
	if exp.IsZero() || p.IsZero() {
		return Zero(p.Curve)
	}
	addFn := Add
	if p.IsNormalized() {
		addFn = AddMixed
	}

	n := exp.BitLen()
	var r *Point
	started := false
	for i := n - 1; i >= 0; i-- {
		bit := exp.Bit(i)
		if !started {
			if bit == 0 {
				continue
			}
			r = &Point{X: p.X, Y: p.Y, Z: p.Z, Curve: p.Curve}
			started = true
			continue
		}
		r = Double(r)
		if bit == 1 {
			r = addFn(r, p)
		}
	}
	if !started {
		return Zero(p.Curve)
	}
	return r
}

// wnafWindow is the fixed window width (w=3) the core's wNAF scalar
// multiplication uses, giving the digit set {+-1, +-3}.
const wnafWindow = 3

// WnafMul computes exp*p via windowed non-adjacent-form scalar
// multiplication with window width 3.
func WnafMul(p *Point, exp scalar.Limbs) *Point {
	if exp.IsZero() || p.IsZero() {
		return Zero(p.Curve)
	}

	// idxPos centers the precompute table: 1<<(w-2) = 2 for w=3, giving a
	// 4-entry table indexed 0..3 with no negative index ever touched
	// (matches the canonical wnaf_mul_impl's index_for_positive).
	const idxPos = 1 << (wnafWindow - 2)

	table := make([]*Point, 1<<(wnafWindow-1)) // 4 entries
	table[idxPos] = &Point{X: p.X, Y: p.Y, Z: p.Z, Curve: p.Curve}
	table[idxPos-1] = Negate(table[idxPos])

	twiceP := Double(table[idxPos])
	for k := 1; k < 1<<(wnafWindow-2); k++ {
		table[idxPos+k] = Add(table[idxPos+k-1], twiceP)
		table[idxPos-1-k] = Negate(table[idxPos+k])
	}

	digits := scalar.WNAF(exp, wnafWindow)

	var r *Point
	started := false
	for i := len(digits) - 1; i >= 0; i-- {
		d := digits[i]
		if started {
			r = Double(r)
		}
		if d != 0 {
			var addend *Point
			if d > 0 {
				addend = table[idxPos+int(d)>>1]
			} else {
				addend = table[idxPos-1-int(-d)>>1]
			}
			if !started {
				r = &Point{X: addend.X, Y: addend.Y, Z: addend.Z, Curve: addend.Curve}
				started = true
			} else {
				r = Add(r, addend)
			}
		}
	}
	if !started {
		return Zero(p.Curve)
	}
	return r
}
