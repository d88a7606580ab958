package bigint

import (
	"errors"
	"fmt"
	"strconv"

	"fortio.org/safecast"
)

// Bounds for the caller-facing text base. Digits are '0'-'9' followed by
// case-insensitive letters for the values 10-35.
const (
	MinBase = 2
	MaxBase = 36
)

// ErrInvalidSign reports a '-' that is repeated or not in the first
// position of the input.
var ErrInvalidSign = errors.New("invalid '-' sign: must appear once, in the first position")

// InvalidCharacterError reports an input character that is neither a
// digit nor a legally placed sign marker.
type InvalidCharacterError struct {
	Ch rune
}

func (e InvalidCharacterError) Error() string {
	return fmt.Sprintf("invalid character %q found", e.Ch)
}

// InvalidDigitError reports an alphanumeric input character whose digit
// value is too large for the requested base.
type InvalidDigitError struct {
	Ch   rune
	Base int
}

func (e InvalidDigitError) Error() string {
	return fmt.Sprintf("invalid character %q used for integer of base %d", e.Ch, e.Base)
}

// NewFromString constructs an Int by parsing text in the given base.
// base must be in [MinBase, MaxBase]. A single leading '-' marks a
// negative value; "-0" and the empty string parse to canonical zero.
//
// The whole input is validated before any numeric state is built, so a
// failed parse never exposes a partially constructed value.
func NewFromString(s string, base int) (*Int, error) {
	if base < MinBase || base > MaxBase {
		return nil, fmt.Errorf("NewFromString: base %d out of range [%d, %d]", base, MinBase, MaxBase)
	}
	neg := false
	for i, ch := range s {
		switch {
		case isDigit(ch):
			if digitVal(ch) >= base {
				return nil, InvalidDigitError{Ch: ch, Base: base}
			}
		case ch == '-':
			if i != 0 {
				return nil, ErrInvalidSign
			}
			neg = true
		default:
			return nil, InvalidCharacterError{Ch: ch}
		}
	}
	if neg {
		s = s[1:]
	}

	// Fold fixed-size windows of source digits into the accumulator,
	// each with one single-word multiply and one single-word add. The
	// first window takes the length remainder so that all later windows
	// are full-sized.
	wnd, pow := window(base)
	z := new(Int).normalize()
	off := len(s) % wnd
	if off > 0 {
		w, err := parseWindow(s[:off], base)
		if err != nil {
			return nil, err
		}
		z.AddWord(w)
	}
	for pos := off; pos < len(s); pos += wnd {
		w, err := parseWindow(s[pos:pos+wnd], base)
		if err != nil {
			return nil, err
		}
		z.MulWord(pow)
		z.AddWord(w)
	}
	z.neg = neg
	return z.normalize(), nil
}

// NewFromDecimalString constructs an Int by parsing base-10 text.
func NewFromDecimalString(s string) (*Int, error) {
	return NewFromString(s, 10)
}

func isDigit(ch rune) bool {
	return (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func digitVal(ch rune) int {
	switch {
	case ch >= '0' && ch <= '9':
		return int(ch - '0')
	case ch >= 'a' && ch <= 'z':
		return int(ch-'a') + 10
	default:
		return int(ch-'A') + 10
	}
}

// window returns the number of source digits folded per step and the
// fold multiplier base^count, the largest power of base that fits a
// single word.
func window(base int) (int, uint32) {
	count := 0
	pow := uint64(1)
	for pow*uint64(base) <= wordMax {
		pow *= uint64(base)
		count++
	}
	return count, uint32(pow)
}

// parseWindow converts one window of validated source digits to its
// single-word value. Failures here would mean the eager validation pass
// let a bad character through.
func parseWindow(s string, base int) (uint32, error) {
	v, err := strconv.ParseUint(s, base, 64)
	if err != nil {
		return 0, fmt.Errorf("NewFromString: window %q: %w", s, err)
	}
	w, err := safecast.Conv[uint32](v)
	if err != nil {
		return 0, fmt.Errorf("NewFromString: window %q overflows a word: %w", s, err)
	}
	return w, nil
}
