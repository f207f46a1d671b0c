package fp12

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eth2030/pairingtower/pkg/field/fp"
	"github.com/eth2030/pairingtower/pkg/field/fp2"
	"github.com/eth2030/pairingtower/pkg/field/fp6"
	"github.com/eth2030/pairingtower/pkg/scalar"
)

func testExtension() *Extension {
	p, _ := new(big.Int).SetString("21888242871839275222246405745257275088696311157297823662689037894645226208583", 10)
	m := fp.NewModulus(p)
	beta := fp.New(m, big.NewInt(-1))
	fp2Ext := fp2.NewExtension(m, beta)
	xi := fp2.New(fp2Ext, fp.New(m, big.NewInt(9)), fp.New(m, big.NewInt(1)))
	fp6Ext := fp6.NewExtension(fp2Ext, xi)
	return NewExtension(fp6Ext)
}

func fp2elem(ext *fp2.Extension, c0, c1 int64) *fp2.Element {
	return fp2.New(ext, fp.New(ext.Base, big.NewInt(c0)), fp.New(ext.Base, big.NewInt(c1)))
}

func fp6elem(ext *fp6.Extension, a, b, c *fp2.Element) *fp6.Element {
	return fp6.New(ext, a, b, c)
}

func sampleElement(ext *Extension) *Element {
	base := ext.Base
	c0 := fp6elem(base, fp2elem(base.Base, 3, 1), fp2elem(base.Base, 5, 2), fp2elem(base.Base, 7, 3))
	c1 := fp6elem(base, fp2elem(base.Base, 11, 4), fp2elem(base.Base, 13, 5), fp2elem(base.Base, 17, 6))
	return New(ext, c0, c1)
}

func TestMulMatchesSqr(t *testing.T) {
	ext := testExtension()
	a := sampleElement(ext)
	require.True(t, Sqr(a).Equal(Mul(a, a)))
}

func TestMulInverseIdentity(t *testing.T) {
	ext := testExtension()
	a := sampleElement(ext)
	inv, ok := Inverse(a)
	require.True(t, ok)
	require.True(t, Mul(a, inv).IsOne())
}

func TestMulBy014AgreesWithGenericMul(t *testing.T) {
	ext := testExtension()
	a := sampleElement(ext)
	base := ext.Base

	c0 := fp2elem(base.Base, 9, 2)
	c1 := fp2elem(base.Base, 4, 7)
	c4 := fp2elem(base.Base, 21, 1)

	sparse := New(ext,
		fp6elem(base, c0, c1, fp2.Zero(base.Base)),
		fp6elem(base, fp2.Zero(base.Base), c4, fp2.Zero(base.Base)))

	require.True(t, MulBy014(a, c0, c1, c4).Equal(Mul(a, sparse)))
}

func TestMulBy034AgreesWithGenericMul(t *testing.T) {
	ext := testExtension()
	a := sampleElement(ext)
	base := ext.Base

	c0 := fp2elem(base.Base, 9, 2)
	c3 := fp2elem(base.Base, 4, 7)
	c4 := fp2elem(base.Base, 21, 1)

	sparse := New(ext,
		fp6elem(base, c0, fp2.Zero(base.Base), fp2.Zero(base.Base)),
		fp6elem(base, c3, c4, fp2.Zero(base.Base)))

	require.True(t, MulBy034(a, c0, c3, c4).Equal(Mul(a, sparse)))
}

// cyclotomicSample raises a to the "easy part" of the final exponentiation,
// (p^6-1)(p^2+1), landing it in the order-(p^4-p^2+1) cyclotomic subgroup
// G_Phi6 that CyclotomicSquare requires. Raising only to (p^6-1) lands in
// the larger norm-1 torus T2 (order p^6+1 = (p^2+1)(p^4-p^2+1)) and is not
// enough: a generic element of T2 is not fixed by CyclotomicSquare.
func cyclotomicSample(ext *Extension, a *Element) *Element {
	p := ext.Base.Base.Base.Int()
	p6 := new(big.Int).Exp(p, big.NewInt(6), nil)
	p6.Sub(p6, big.NewInt(1))
	p2 := new(big.Int).Exp(p, big.NewInt(2), nil)
	p2.Add(p2, big.NewInt(1))
	easyPart := new(big.Int).Mul(p6, p2)
	return Pow(a, scalar.FromBig(easyPart))
}

func TestCyclotomicSquareAgreesWithGenericSquare(t *testing.T) {
	ext := testExtension()
	a := sampleElement(ext)
	cyclo := cyclotomicSample(ext, a)

	require.True(t, CyclotomicSquare(cyclo).Equal(Sqr(cyclo)))
}

func TestCyclotomicExpAgreesWithPow(t *testing.T) {
	ext := testExtension()
	a := sampleElement(ext)
	cyclo := cyclotomicSample(ext, a)

	exp := scalar.FromBig(big.NewInt(12345))
	require.True(t, CyclotomicExp(cyclo, exp).Equal(Pow(cyclo, exp)))
}

func TestFrobeniusMapIdentityAtTwelve(t *testing.T) {
	ext := testExtension()
	a := sampleElement(ext)
	require.True(t, FrobeniusMap(a, 12).Equal(a))
}

func TestPowZeroIsOne(t *testing.T) {
	ext := testExtension()
	a := sampleElement(ext)
	require.True(t, Pow(a, nil).IsOne())
}

// Conjugate (negate the w-coefficient) is Fp12/Fp6's quadratic-extension
// conjugation, which is raising to the |Fp6| = p^6 power - FrobeniusMap(a,6),
// not FrobeniusMap(a,1).
func TestConjugateMatchesFrobeniusAtSix(t *testing.T) {
	ext := testExtension()
	a := sampleElement(ext)
	require.True(t, Conjugate(a).Equal(FrobeniusMap(a, 6)))
}
