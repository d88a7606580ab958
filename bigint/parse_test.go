package bigint

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFromStringDefaultBase(t *testing.T) {
	for _, s := range []string{
		"111111111222222222",
		"1111111112222222223",
		"999999999999999999999999999999",
	} {
		v, err := NewFromDecimalString(s)
		require.NoError(t, err)
		assert.Equal(t, s, v.String())
	}
}

func TestNewFromStringRejectsSpaces(t *testing.T) {
	for _, s := range []string{" 12", "   12", "12   ", "1   2", " 1  2"} {
		_, err := NewFromDecimalString(s)
		var invalid InvalidCharacterError
		require.ErrorAs(t, err, &invalid, "input %q", s)
		assert.Equal(t, ' ', invalid.Ch)
	}
}

func TestNewFromStringRejectsMisplacedSign(t *testing.T) {
	for _, s := range []string{"--12", "-1-2", "-12-", "12-", "12--"} {
		_, err := NewFromDecimalString(s)
		assert.True(t, errors.Is(err, ErrInvalidSign), "input %q", s)
	}
}

func TestNewFromStringRejectsInvalidCharacters(t *testing.T) {
	cases := []struct {
		in string
		ch rune
	}{
		{"12?", '?'},
		{"1?2", '?'},
		{"?12", '?'},
		{"*)?", '*'},
	}
	for _, tc := range cases {
		_, err := NewFromDecimalString(tc.in)
		var invalid InvalidCharacterError
		require.ErrorAs(t, err, &invalid, "input %q", tc.in)
		assert.Equal(t, tc.ch, invalid.Ch)
	}
}

func TestNewFromStringRejectsDigitsOutsideBase(t *testing.T) {
	cases := []struct {
		in   string
		base int
		ch   rune
	}{
		{"123", 3, '3'},
		{"12A", 10, 'A'},
		{"12a", 10, 'a'},
		{"1G2", 16, 'G'},
		{"1g2", 16, 'g'},
	}
	for _, tc := range cases {
		_, err := NewFromString(tc.in, tc.base)
		var invalid InvalidDigitError
		require.ErrorAs(t, err, &invalid, "input %q base %d", tc.in, tc.base)
		assert.Equal(t, tc.ch, invalid.Ch)
		assert.Equal(t, tc.base, invalid.Base)
	}
}

func TestNewFromStringFailureIsAtomic(t *testing.T) {
	v, err := NewFromDecimalString("123456789?")
	assert.Error(t, err)
	assert.Nil(t, v)
}

func TestNewFromStringCaseInsensitive(t *testing.T) {
	lower, err := NewFromString("1f2", 16)
	require.NoError(t, err)
	upper, err := NewFromString("1F2", 16)
	require.NoError(t, err)
	assert.True(t, lower.Equal(upper))

	mixed, err := NewFromString("deadBEEF", 16)
	require.NoError(t, err)
	assert.Equal(t, "3735928559", mixed.String())
}

func TestNewFromStringBases(t *testing.T) {
	cases := []struct {
		in   string
		base int
		want string
	}{
		{"11111111", 2, "255"},
		{"ff", 16, "255"},
		{"-ff", 16, "-255"},
		{"z", 36, "35"},
		{"zz", 36, "1295"},
		{"777", 8, "511"},
	}
	for _, tc := range cases {
		v, err := NewFromString(tc.in, tc.base)
		require.NoError(t, err, "input %q base %d", tc.in, tc.base)
		assert.Equal(t, tc.want, v.String())
	}
}

func TestNewFromStringBaseOutOfRange(t *testing.T) {
	for _, base := range []int{-1, 0, 1, 37} {
		_, err := NewFromString("10", base)
		assert.Error(t, err, "base %d", base)
	}
}

func TestNewFromStringCanonicalZero(t *testing.T) {
	for _, s := range []string{"0", "-0", "000", "-000", "", "-"} {
		v, err := NewFromDecimalString(s)
		require.NoError(t, err, "input %q", s)
		assert.Equal(t, 0, v.Sign(), "input %q", s)
		assert.False(t, v.neg, "input %q", s)
		assert.Equal(t, "0", v.String(), "input %q", s)
	}
}

func TestNewFromStringStripsLeadingZeros(t *testing.T) {
	v, err := NewFromDecimalString("000123")
	require.NoError(t, err)
	assert.Equal(t, "123", v.String())
}

func TestNewFromStringLongInputsExerciseEveryWindowShape(t *testing.T) {
	// Base 10 folds nine source digits per window; cover remainders 0
	// through 2 of the first short window.
	for _, s := range []string{
		"123456789123456789123456789",
		"1234567891234567891234567891",
		"12345678912345678912345678912",
	} {
		v, err := NewFromDecimalString(s)
		require.NoError(t, err)
		assert.Equal(t, s, v.String())
	}
}
