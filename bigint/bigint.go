package bigint

// Int is a signed arbitrary-precision integer in sign-magnitude form.
// The magnitude is a little-endian sequence of base 2^32 digits with no
// most-significant zero digits, except the single digit 0 for the value
// zero. Zero always carries a positive sign.
//
// An Int has value semantics: every instance owns its digit storage
// exclusively, so operands are never modified by an operation unless
// they are the receiver. The zero value for an Int represents the
// value 0.
type Int struct {
	neg bool     // true if the value is negative
	mag []uint32 // little-endian base 2^32 magnitude
}

const (
	wordBits = 32
	wordMax  = 1<<wordBits - 1
)

// intOne is only ever used as an operand, never as a receiver.
var intOne = &Int{mag: []uint32{1}}

// NewFromInt64 constructs an Int equal to the provided int64.
func NewFromInt64(n int64) *Int {
	neg := n < 0
	un := uint64(n)
	if neg {
		un = -un // two's complement negation, correct for math.MinInt64
	}
	z := &Int{
		neg: neg,
		mag: []uint32{uint32(un), uint32(un >> wordBits)},
	}
	return z.normalize()
}

// NewFromInt constructs an Int with the value of x. The copy is deep.
func NewFromInt(x *Int) *Int {
	return new(Int).Set(x)
}

// Set sets z to x and returns z. This is a deep copy: z and x share no
// storage afterwards.
func (z *Int) Set(x *Int) *Int {
	if z != x {
		z.neg = x.neg
		z.mag = clone(x.mag)
	}
	return z.normalize()
}

// Sign returns:
//
// -1 if z <  0
//
//	0 if z == 0
//
// +1 if z >  0
func (z *Int) Sign() int {
	if z.IsZero() {
		return 0
	}
	if z.neg {
		return -1
	}
	return 1
}

// IsZero reports whether z is equal to 0.
func (z *Int) IsZero() bool {
	return len(trim(z.mag)) == 0
}

// IsNegative reports whether z is less than 0.
func (z *Int) IsNegative() bool {
	return z.neg && !z.IsZero()
}

// Neg sets z to -x and returns z. Negating zero is a no-op: the result
// keeps the canonical positive sign.
func (z *Int) Neg(x *Int) *Int {
	neg := !x.neg
	z.mag = clone(trim(x.mag))
	z.neg = neg
	return z.normalize()
}

// Abs sets z to |x| and returns z.
func (z *Int) Abs(x *Int) *Int {
	z.mag = clone(trim(x.mag))
	z.neg = false
	return z.normalize()
}

// normalize restores the canonical shape after a mutation: the magnitude
// is trimmed of most-significant zero digits down to a minimum of one
// digit, and zero carries a positive sign.
func (z *Int) normalize() *Int {
	z.mag = norm(z.mag)
	if len(z.mag) == 1 && z.mag[0] == 0 {
		z.neg = false
	}
	return z
}

// trim returns m without most-significant zero digits. The result may be
// empty and aliases m.
func trim(m []uint32) []uint32 {
	i := len(m)
	for i > 0 && m[i-1] == 0 {
		i--
	}
	return m[:i]
}

// norm is trim with the minimum length of one digit restored.
func norm(m []uint32) []uint32 {
	m = trim(m)
	if len(m) == 0 {
		return []uint32{0}
	}
	return m
}

func clone(m []uint32) []uint32 {
	c := make([]uint32, len(m))
	copy(c, m)
	return c
}
