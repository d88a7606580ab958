package bigint

// Cmp compares z and y and returns:
//
// -1 if z <  y
//
//	0 if z == y
//
// +1 if z >  y
//
// The comparison never materializes a difference: signs decide first,
// then magnitude lengths, then digits from the most significant down.
func (z *Int) Cmp(y *Int) int {
	zm, ym := trim(z.mag), trim(y.mag)
	zneg := z.neg && len(zm) > 0
	yneg := y.neg && len(ym) > 0
	switch {
	case zneg && !yneg:
		return -1
	case !zneg && yneg:
		return 1
	}
	c := magCmp(zm, ym)
	if zneg {
		return -c
	}
	return c
}

// Equal reports whether z and y represent the same value. Equality is
// exact: identical sign and identical canonical digit sequences.
func (z *Int) Equal(y *Int) bool {
	return z.Cmp(y) == 0
}

// Less reports whether z < y.
func (z *Int) Less(y *Int) bool {
	return z.Cmp(y) < 0
}

// Greater reports whether z > y.
func (z *Int) Greater(y *Int) bool {
	return z.Cmp(y) > 0
}

// LessOrEqual reports whether z <= y.
func (z *Int) LessOrEqual(y *Int) bool {
	return z.Cmp(y) <= 0
}

// GreaterOrEqual reports whether z >= y.
func (z *Int) GreaterOrEqual(y *Int) bool {
	return z.Cmp(y) >= 0
}
