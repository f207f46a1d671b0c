// Package scalar provides the 64-bit-limb, most-significant-limb-first
// integer representation the tower's pow(exp) and the twisted curve's
// scalar multiplication consume (frobenius_map takes a plain int k), plus
// the windowed non-adjacent-form (wNAF) digit converter used by wnaf_mul.
package scalar

import (
	"math/big"

	"github.com/holiman/uint256"
)

// Limbs is a big-endian sequence of 64-bit words: Limbs[0] is the most
// significant limb. A zero-length Limbs represents zero.
type Limbs []uint64

// FromBig converts a non-negative big.Int into MSB-first 64-bit limbs,
// with no leading all-zero limb (zero itself is the empty slice).
func FromBig(v *big.Int) Limbs {
	if v.Sign() == 0 {
		return nil
	}
	// Field and scalar values for every curve this tower targets fit in
	// 256 bits; route through uint256 for a fixed, portable 64-bit-limb
	// layout (matches the teacher's own pkg/geth balance conversions).
	// Wider values fall back to a direct 64-bit-limb-at-a-time expansion.
	u, overflow := uint256.FromBig(v)
	if overflow {
		return fromBigDirect(v)
	}
	arr := [4]uint64(*u)
	out := make(Limbs, 0, 4)
	started := false
	for i := 3; i >= 0; i-- {
		if !started && arr[i] == 0 {
			continue
		}
		started = true
		out = append(out, arr[i])
	}
	return out
}

func fromBigDirect(v *big.Int) Limbs {
	b := new(big.Int).Set(v)
	mask := new(big.Int).SetUint64(^uint64(0))
	var rev Limbs
	for b.Sign() != 0 {
		limb := new(big.Int).And(b, mask)
		rev = append(rev, limb.Uint64())
		b.Rsh(b, 64)
	}
	out := make(Limbs, len(rev))
	for i, w := range rev {
		out[len(rev)-1-i] = w
	}
	return out
}

// ToBig converts MSB-first limbs back into a big.Int.
func ToBig(l Limbs) *big.Int {
	r := new(big.Int)
	for _, w := range l {
		r.Lsh(r, 64)
		r.Or(r, new(big.Int).SetUint64(w))
	}
	return r
}

// ToUint256 converts l into a *uint256.Int, assuming it fits in 256 bits.
func ToUint256(l Limbs) *uint256.Int {
	u, _ := uint256.FromBig(ToBig(l))
	return u
}

// FromUint256 converts a *uint256.Int into MSB-first limbs.
func FromUint256(u *uint256.Int) Limbs {
	return FromBig(u.ToBig())
}

// IsZero reports whether l represents zero.
func (l Limbs) IsZero() bool { return len(l) == 0 }

// BitLen returns the number of significant bits in l.
func (l Limbs) BitLen() int {
	if len(l) == 0 {
		return 0
	}
	top := bitLen64(l[0])
	return top + (len(l)-1)*64
}

// Bit returns the bit at position i (0 = least significant) across the
// MSB-first limb sequence.
func (l Limbs) Bit(i int) int {
	n := len(l)
	limbIdx := n - 1 - i/64
	if limbIdx < 0 || limbIdx >= n {
		return 0
	}
	return int((l[limbIdx] >> uint(i%64)) & 1)
}

func bitLen64(w uint64) int {
	n := 0
	for w != 0 {
		n++
		w >>= 1
	}
	return n
}

// WNAF converts exp into its signed windowed-non-adjacent-form digit
// sequence for window width w: digits are zero or odd, |d_i| < 2^(w-1),
// least-significant digit first, and exp = sum d_i * 2^i.
func WNAF(exp Limbs, w uint) []int8 {
	v := ToBig(exp)
	if v.Sign() == 0 {
		return nil
	}
	window := new(big.Int).Lsh(big.NewInt(1), w)     // 2^w
	halfWindow := new(big.Int).Lsh(big.NewInt(1), w-1) // 2^(w-1)
	var digits []int8
	for v.Sign() != 0 {
		var d int64
		if v.Bit(0) == 1 {
			mod := new(big.Int).Mod(v, window)
			di := new(big.Int).Set(mod)
			if di.Cmp(halfWindow) >= 0 {
				di.Sub(di, window)
			}
			d = di.Int64()
			v.Sub(v, di)
		}
		digits = append(digits, int8(d))
		v.Rsh(v, 1)
	}
	return digits
}
