package fp3

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eth2030/pairingtower/pkg/field/fp"
)

func testExtension() *Extension {
	p, _ := new(big.Int).SetString("2055236678969533001948963524292549209725396610320044949542151", 10)
	m := fp.NewModulus(p)
	gamma := fp.New(m, big.NewInt(-2))
	return NewExtension(m, gamma)
}

func elem(ext *Extension, c0, c1, c2 int64) *Element {
	return New(ext, fp.New(ext.Base, big.NewInt(c0)), fp.New(ext.Base, big.NewInt(c1)), fp.New(ext.Base, big.NewInt(c2)))
}

func TestMulMatchesSqr(t *testing.T) {
	ext := testExtension()
	a := elem(ext, 3, 5, 7)
	require.True(t, Sqr(a).Equal(Mul(a, a)))
}

func TestMulInverseIdentity(t *testing.T) {
	ext := testExtension()
	a := elem(ext, 3, 5, 7)
	inv, ok := Inverse(a)
	require.True(t, ok)
	require.True(t, Mul(a, inv).Equal(One(ext)))
}

func TestMulByNonResidueIsCyclicShift(t *testing.T) {
	ext := testExtension()
	a := elem(ext, 3, 5, 7)
	shifted := MulByNonResidue(a)
	require.True(t, shifted.C1.Equal(a.C0))
	require.True(t, shifted.C2.Equal(a.C1))
	require.True(t, shifted.C0.Equal(fp.Mul(ext.NonResidue, a.C2)))
}

func TestAddSubRoundTrip(t *testing.T) {
	ext := testExtension()
	a := elem(ext, 3, 5, 7)
	b := elem(ext, 11, 13, 17)
	require.True(t, Sub(Add(a, b), b).Equal(a))
}

func TestDistributivity(t *testing.T) {
	ext := testExtension()
	a := elem(ext, 3, 5, 7)
	b := elem(ext, 11, 13, 17)
	c := elem(ext, 2, 4, 6)
	lhs := Mul(a, Add(b, c))
	rhs := Add(Mul(a, b), Mul(a, c))
	require.True(t, lhs.Equal(rhs))
}
