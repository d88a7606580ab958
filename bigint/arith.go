package bigint

import "math/bits"

// The magnitude primitives below operate on trimmed little-endian digit
// slices, where an empty slice stands for a zero magnitude. They always
// return fresh or receiver-owned storage, never a slice aliasing an
// operand, which is what preserves the value semantics of Int.

// addAt adds x into z starting at digit position off and returns the
// possibly grown z. Multiplication uses off > 0 to place each partial
// product at the offset of its multiplier digit.
func addAt(z, x []uint32, off int) []uint32 {
	if len(x) == 0 {
		return z
	}
	for len(z) < off+len(x) {
		z = append(z, 0)
	}
	var carry uint32
	for i, xi := range x {
		z[off+i], carry = bits.Add32(z[off+i], xi, carry)
	}
	for i := off + len(x); carry > 0; i++ {
		if i == len(z) {
			z = append(z, carry)
			break
		}
		z[i], carry = bits.Add32(z[i], 0, carry)
	}
	return z
}

// magSub returns x - y as a fresh slice. The caller must guarantee
// magCmp(x, y) >= 0; the final borrow is zero under that precondition.
func magSub(x, y []uint32) []uint32 {
	z := make([]uint32, len(x))
	var borrow uint32
	for i, xi := range x {
		var yi uint32
		if i < len(y) {
			yi = y[i]
		}
		z[i], borrow = bits.Sub32(xi, yi, borrow)
	}
	return z
}

// magMulWord returns x * d as a fresh trimmed slice, or nil if the
// product is zero. The uint64 accumulator holds the worst case
// (2^32-1)*(2^32-1) + (2^32-1) without overflow.
func magMulWord(x []uint32, d uint32) []uint32 {
	if d == 0 || len(x) == 0 {
		return nil
	}
	z := make([]uint32, len(x), len(x)+1)
	var carry uint32
	for i, xi := range x {
		p := uint64(xi)*uint64(d) + uint64(carry)
		z[i] = uint32(p)
		carry = uint32(p >> wordBits)
	}
	if carry > 0 {
		z = append(z, carry)
	}
	return z
}

// magCmp compares the trimmed magnitudes x and y. A shorter digit
// sequence is smaller; equal lengths are decided by the first mismatch
// from the most significant digit down.
func magCmp(x, y []uint32) int {
	if len(x) != len(y) {
		if len(x) < len(y) {
			return -1
		}
		return 1
	}
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] != y[i] {
			if x[i] < y[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Add sets z to the sum x+y and returns z. z may alias x or y.
func (z *Int) Add(x, y *Int) *Int {
	xm, ym := trim(x.mag), trim(y.mag)
	if x.neg == y.neg {
		neg := x.neg
		z.mag = addAt(clone(xm), ym, 0)
		z.neg = neg
		return z.normalize()
	}

	// Opposite signs: the operand with the larger magnitude determines
	// the sign, and the magnitude is the difference of the two.
	switch magCmp(xm, ym) {
	case 1:
		neg := x.neg
		z.mag = magSub(xm, ym)
		z.neg = neg
	case -1:
		neg := y.neg
		z.mag = magSub(ym, xm)
		z.neg = neg
	default:
		z.mag = []uint32{0}
		z.neg = false
	}
	return z.normalize()
}

// Sub sets z to the difference x-y and returns z. z may alias x or y.
func (z *Int) Sub(x, y *Int) *Int {
	return z.Add(x, new(Int).Neg(y))
}

// Mul sets z to the product x*y and returns z. z may alias x or y.
//
// Schoolbook multiplication: each digit of y contributes one
// single-word partial product, folded into the accumulator at that
// digit's offset. The sign is the XOR of the operand signs and is reset
// to positive when the product is zero.
func (z *Int) Mul(x, y *Int) *Int {
	xm, ym := trim(x.mag), trim(y.mag)
	neg := x.neg != y.neg
	acc := []uint32{0}
	for i, d := range ym {
		acc = addAt(acc, magMulWord(xm, d), i)
	}
	z.mag = acc
	z.neg = neg
	return z.normalize()
}

// AddWord sets z to z + w and returns z.
func (z *Int) AddWord(w uint32) *Int {
	return z.Add(z, &Int{mag: []uint32{w}})
}

// MulWord sets z to z * w and returns z. The sign of z is unchanged
// unless the product is zero.
func (z *Int) MulWord(w uint32) *Int {
	z.mag = magMulWord(trim(z.mag), w)
	return z.normalize()
}

// Inc adds one to z and returns z, the prefix form of increment.
func (z *Int) Inc() *Int {
	return z.Add(z, intOne)
}

// Dec subtracts one from z and returns z, the prefix form of decrement.
func (z *Int) Dec() *Int {
	return z.Sub(z, intOne)
}

// PostInc adds one to z and returns the prior value, the postfix form
// of increment.
func (z *Int) PostInc() *Int {
	prev := NewFromInt(z)
	z.Inc()
	return prev
}

// PostDec subtracts one from z and returns the prior value, the postfix
// form of decrement.
func (z *Int) PostDec() *Int {
	prev := NewFromInt(z)
	z.Dec()
	return prev
}
