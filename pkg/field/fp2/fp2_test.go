package fp2

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eth2030/pairingtower/pkg/field/fp"
)

func testExtension() *Extension {
	p, _ := new(big.Int).SetString("21888242871839275222246405745257275088696311157297823662689037894645226208583", 10)
	m := fp.NewModulus(p)
	beta := fp.New(m, big.NewInt(-1))
	return NewExtension(m, beta)
}

func elem(ext *Extension, c0, c1 int64) *Element {
	return New(ext, fp.New(ext.Base, big.NewInt(c0)), fp.New(ext.Base, big.NewInt(c1)))
}

func TestMulMatchesSqr(t *testing.T) {
	ext := testExtension()
	a := elem(ext, 3, 5)
	require.True(t, Sqr(a).Equal(Mul(a, a)))
}

func TestMulInverseIdentity(t *testing.T) {
	ext := testExtension()
	a := elem(ext, 3, 5)
	inv, ok := Inverse(a)
	require.True(t, ok)
	require.True(t, Mul(a, inv).Equal(One(ext)))
}

func TestConjTwiceIsIdentity(t *testing.T) {
	ext := testExtension()
	a := elem(ext, 7, 11)
	require.True(t, Conj(Conj(a)).Equal(a))
}

func TestFrobeniusMapParity(t *testing.T) {
	ext := testExtension()
	a := elem(ext, 7, 11)
	require.True(t, FrobeniusMap(a, 0).Equal(a))
	require.True(t, FrobeniusMap(a, 2).Equal(a))
	require.True(t, FrobeniusMap(a, 1).Equal(Conj(a)))
}

func TestExpAgreesWithRepeatedMul(t *testing.T) {
	ext := testExtension()
	a := elem(ext, 3, 5)
	got := Exp(a, big.NewInt(4))
	want := Mul(Mul(Mul(a, a), a), a)
	require.True(t, got.Equal(want))
}

func TestMulByNonResidueMatchesScalarMul(t *testing.T) {
	ext := testExtension()
	a := elem(ext, 3, 5)
	require.True(t, MulByNonResidue(a).Equal(MulScalar(a, ext.NonResidue)))
}
