package fp6

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eth2030/pairingtower/pkg/field/fp"
	"github.com/eth2030/pairingtower/pkg/field/fp2"
)

func testExtension() *Extension {
	p, _ := new(big.Int).SetString("21888242871839275222246405745257275088696311157297823662689037894645226208583", 10)
	m := fp.NewModulus(p)
	beta := fp.New(m, big.NewInt(-1))
	fp2Ext := fp2.NewExtension(m, beta)
	xi := fp2.New(fp2Ext, fp.New(m, big.NewInt(9)), fp.New(m, big.NewInt(1)))
	return NewExtension(fp2Ext, xi)
}

func fp2elem(ext *fp2.Extension, c0, c1 int64) *fp2.Element {
	return fp2.New(ext, fp.New(ext.Base, big.NewInt(c0)), fp.New(ext.Base, big.NewInt(c1)))
}

func elem(ext *Extension, a, b, c *fp2.Element) *Element {
	return New(ext, a, b, c)
}

func TestMulMatchesSqr(t *testing.T) {
	ext := testExtension()
	a := elem(ext, fp2elem(ext.Base, 3, 1), fp2elem(ext.Base, 5, 2), fp2elem(ext.Base, 7, 3))
	require.True(t, Sqr(a).Equal(Mul(a, a)))
}

func TestMulInverseIdentity(t *testing.T) {
	ext := testExtension()
	a := elem(ext, fp2elem(ext.Base, 3, 1), fp2elem(ext.Base, 5, 2), fp2elem(ext.Base, 7, 3))
	inv, ok := Inverse(a)
	require.True(t, ok)
	require.True(t, Mul(a, inv).Equal(One(ext)))
}

func TestMulBy1AgreesWithGenericMul(t *testing.T) {
	ext := testExtension()
	a := elem(ext, fp2elem(ext.Base, 3, 1), fp2elem(ext.Base, 5, 2), fp2elem(ext.Base, 7, 3))
	d1 := fp2elem(ext.Base, 13, 4)
	sparse := elem(ext, fp2.Zero(ext.Base), d1, fp2.Zero(ext.Base))

	require.True(t, MulBy1(a, d1).Equal(Mul(a, sparse)))
}

func TestMulBy01AgreesWithGenericMul(t *testing.T) {
	ext := testExtension()
	a := elem(ext, fp2elem(ext.Base, 3, 1), fp2elem(ext.Base, 5, 2), fp2elem(ext.Base, 7, 3))
	d0 := fp2elem(ext.Base, 9, 6)
	d1 := fp2elem(ext.Base, 13, 4)
	sparse := elem(ext, d0, d1, fp2.Zero(ext.Base))

	require.True(t, MulBy01(a, d0, d1).Equal(Mul(a, sparse)))
}

func TestFrobeniusMapIdentityAtSix(t *testing.T) {
	ext := testExtension()
	a := elem(ext, fp2elem(ext.Base, 3, 1), fp2elem(ext.Base, 5, 2), fp2elem(ext.Base, 7, 3))
	require.True(t, FrobeniusMap(a, 6).Equal(a))
}

func TestMulByNonResidueIsCyclicShift(t *testing.T) {
	ext := testExtension()
	a := elem(ext, fp2elem(ext.Base, 3, 1), fp2elem(ext.Base, 5, 2), fp2elem(ext.Base, 7, 3))
	shifted := MulByNonResidue(a)
	require.True(t, shifted.C1.Equal(a.C0))
	require.True(t, shifted.C2.Equal(a.C1))
}
