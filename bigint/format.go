package bigint

import (
	"strconv"
	"strings"
)

// Text renders z in the given base: a '-' for negative values, then
// digits from most significant to least significant with no leading
// zeros other than the single digit "0" for the zero value. Letter
// digits are lowercase. Text panics if base is outside
// [MinBase, MaxBase], matching the strconv convention for formatting.
func (z *Int) Text(base int) string {
	if base < MinBase || base > MaxBase {
		panic("bigint: illegal base for Text")
	}
	m := trim(z.mag)
	if len(m) == 0 {
		return "0"
	}

	// Peel base^wnd-sized chunks off a working copy of the magnitude,
	// least significant first, with single-word short division. Every
	// chunk except the most significant is zero-padded to wnd digits.
	wnd, pow := window(base)
	var chunks []uint32
	work := clone(m)
	for len(work) > 0 {
		var rem uint32
		work, rem = magDivWord(work, pow)
		chunks = append(chunks, rem)
	}

	var sb strings.Builder
	if z.neg {
		sb.WriteByte('-')
	}
	last := len(chunks) - 1
	sb.WriteString(strconv.FormatUint(uint64(chunks[last]), base))
	for i := last - 1; i >= 0; i-- {
		digits := strconv.FormatUint(uint64(chunks[i]), base)
		sb.WriteString(strings.Repeat("0", wnd-len(digits)))
		sb.WriteString(digits)
	}
	return sb.String()
}

// String renders z in base 10.
func (z *Int) String() string {
	return z.Text(10)
}

// magDivWord divides x by the single word d, returning the trimmed
// quotient and the remainder. Short division serves the formatter only;
// general long division is out of scope.
func magDivWord(x []uint32, d uint32) ([]uint32, uint32) {
	q := make([]uint32, len(x))
	var rem uint32
	for i := len(x) - 1; i >= 0; i-- {
		cur := uint64(rem)<<wordBits | uint64(x[i])
		q[i] = uint32(cur / uint64(d))
		rem = uint32(cur % uint64(d))
	}
	return trim(q), rem
}
