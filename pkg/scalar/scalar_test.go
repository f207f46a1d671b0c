package scalar

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromBigToBigRoundTrip(t *testing.T) {
	cases := []int64{0, 1, 7, 12345, 1 << 40}
	for _, c := range cases {
		v := big.NewInt(c)
		limbs := FromBig(v)
		require.Equal(t, 0, ToBig(limbs).Cmp(v))
	}
}

func TestFromBigLargerThan256Bits(t *testing.T) {
	v := new(big.Int).Lsh(big.NewInt(1), 300)
	limbs := FromBig(v)
	require.Equal(t, 0, ToBig(limbs).Cmp(v))
}

func TestZeroIsEmpty(t *testing.T) {
	require.True(t, FromBig(big.NewInt(0)).IsZero())
	require.Equal(t, 0, len(FromBig(big.NewInt(0))))
}

func TestBitLenMatchesBigInt(t *testing.T) {
	v := big.NewInt(12345)
	limbs := FromBig(v)
	require.Equal(t, v.BitLen(), limbs.BitLen())
}

func TestBitMatchesBigInt(t *testing.T) {
	v := big.NewInt(0b10110)
	limbs := FromBig(v)
	for i := 0; i < 8; i++ {
		require.Equal(t, int(v.Bit(i)), limbs.Bit(i), "bit %d", i)
	}
}

func TestUint256RoundTrip(t *testing.T) {
	v := big.NewInt(0xdeadbeef)
	limbs := FromBig(v)
	u := ToUint256(limbs)
	back := FromUint256(u)
	require.Equal(t, 0, ToBig(back).Cmp(v))
}

// TestWNAFReconstructsValue checks that summing d_i * 2^i over the digit
// sequence WNAF emits recovers the original value, and that every digit
// is zero or odd with |d_i| < 2^(w-1).
func TestWNAFReconstructsValue(t *testing.T) {
	for _, n := range []int64{1, 2, 3, 7, 255, 12345, 999999} {
		v := big.NewInt(n)
		digits := WNAF(FromBig(v), 3)

		sum := new(big.Int)
		pow := big.NewInt(1)
		for _, d := range digits {
			term := new(big.Int).Mul(big.NewInt(int64(d)), pow)
			sum.Add(sum, term)
			pow.Lsh(pow, 1)
		}
		require.Equal(t, 0, sum.Cmp(v), "wnaf for %d did not reconstruct", n)

		for _, d := range digits {
			if d == 0 {
				continue
			}
			require.Equal(t, 1, int(d)&1, "digit %d should be odd", d)
			require.Less(t, int(d), 4)
			require.Greater(t, int(d), -4)
		}
	}
}

func TestWNAFZero(t *testing.T) {
	require.Nil(t, WNAF(FromBig(big.NewInt(0)), 3))
}
