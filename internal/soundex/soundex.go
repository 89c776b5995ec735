package soundex

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// Length is the number of characters in every non-empty code.
	Length = 4

	// PadDigit fills codes that run out of coded consonants.
	PadDigit = '0'
)

// Encode returns the Soundex code of name.
//
// The first character of the result is the upper-cased first character of
// name, kept verbatim even when it is not a letter. The remaining three are
// digit groups of the following consonants, with repeats of the current group
// suppressed, padded with '0'. Scanning stops as soon as four characters are
// produced. An empty name yields an empty code; there are no error cases.
//
// Leading and trailing whitespace is not trimmed.
func Encode(name string) string {
	if name == "" {
		return ""
	}

	seed, size := utf8.DecodeRuneInString(name)

	var sb strings.Builder
	sb.Grow(Length + utf8.UTFMax)
	sb.WriteRune(unicode.ToUpper(seed))

	n := 1
	prev := Classify(seed)
	for _, r := range name[size:] {
		if n == Length {
			break
		}
		code := Classify(r)
		switch {
		case code.IsDigit():
			if code != prev {
				sb.WriteByte(byte(code))
				n++
			}
			prev = code
		case Separates(r):
			prev = NoCode
		}
	}

	for ; n < Length; n++ {
		sb.WriteByte(PadDigit)
	}
	return sb.String()
}

// EncodePtr is Encode for an optional name. A nil name yields an empty code.
func EncodePtr(name *string) string {
	if name == nil {
		return ""
	}
	return Encode(*name)
}

// SoundsAlike reports whether a and b share the same non-empty code.
func SoundsAlike(a, b string) bool {
	ca := Encode(a)
	return ca != "" && ca == Encode(b)
}

// IsValidCode reports whether code is well formed: four characters, the last
// three of which are digits '0' through '6'. The first character is not
// checked since Encode keeps a non-letter seed as is.
func IsValidCode(code string) bool {
	if utf8.RuneCountInString(code) != Length {
		return false
	}
	_, size := utf8.DecodeRuneInString(code)
	for i := size; i < len(code); i++ {
		if code[i] < PadDigit || code[i] > byte(ShortLiquid) {
			return false
		}
	}
	return true
}
