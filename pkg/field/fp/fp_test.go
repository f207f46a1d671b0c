package fp

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func testModulus() *Modulus {
	p, _ := new(big.Int).SetString("21888242871839275222246405745257275088696311157297823662689037894645226208583", 10)
	return NewModulus(p)
}

func TestAddSubRoundTrip(t *testing.T) {
	m := testModulus()
	a := New(m, big.NewInt(123456789))
	b := New(m, big.NewInt(987654321))

	sum := Add(a, b)
	back := Sub(sum, b)
	require.True(t, back.Equal(a))
}

func TestMulInverseIdentity(t *testing.T) {
	m := testModulus()
	a := New(m, big.NewInt(42))

	inv, ok := Inverse(a)
	require.True(t, ok)
	require.True(t, Mul(a, inv).Equal(One(m)))
}

func TestInverseOfZeroFails(t *testing.T) {
	m := testModulus()
	_, ok := Inverse(Zero(m))
	require.False(t, ok)
}

func TestSqrMatchesMul(t *testing.T) {
	m := testModulus()
	a := New(m, big.NewInt(7))
	require.True(t, Sqr(a).Equal(Mul(a, a)))
}

func TestExpFermat(t *testing.T) {
	m := testModulus()
	a := New(m, big.NewInt(42))
	pMinus1 := new(big.Int).Sub(m.Int(), big.NewInt(1))
	require.True(t, Exp(a, pMinus1).Equal(One(m)))
}

func TestSqrtRoundTrip(t *testing.T) {
	m := testModulus()
	a := New(m, big.NewInt(16))
	a2 := Sqr(a)

	root, ok := Sqrt(a2)
	require.True(t, ok)
	require.True(t, Sqr(root).Equal(a2))
}

func TestIsSquare(t *testing.T) {
	m := testModulus()
	a := New(m, big.NewInt(16))
	require.True(t, IsSquare(Sqr(a)))
}

func TestSgn0Parity(t *testing.T) {
	m := testModulus()
	even := New(m, big.NewInt(4))
	odd := New(m, big.NewInt(5))
	require.Equal(t, 0, Sgn0(even))
	require.Equal(t, 1, Sgn0(odd))
}

func TestNegSelfInverse(t *testing.T) {
	m := testModulus()
	a := New(m, big.NewInt(99))
	require.True(t, Neg(Neg(a)).Equal(a))
	require.True(t, Add(a, Neg(a)).IsZero())
}
