package soundex

// Code is the classification of a single character. Digit groups are the
// ASCII digits '1' through '6'; every other character classifies as NoCode.
type Code byte

// NoCode marks a character that contributes nothing to the output. It is
// distinct from PadDigit, which only ever appears as padding.
const NoCode Code = 0

// Digit group constants
const (
	Labial      Code = '1' // B F P V
	Guttural    Code = '2' // C G J K Q S X Z
	Dental      Code = '3' // D T
	LongLiquid  Code = '4' // L
	Nasal       Code = '5' // M N
	ShortLiquid Code = '6' // R
)

// letterCodes is indexed by upper-case letter minus 'A'.
var letterCodes = [26]Code{
	NoCode,      // A
	Labial,      // B
	Guttural,    // C
	Dental,      // D
	NoCode,      // E
	Labial,      // F
	Guttural,    // G
	NoCode,      // H
	NoCode,      // I
	Guttural,    // J
	Guttural,    // K
	LongLiquid,  // L
	Nasal,       // M
	Nasal,       // N
	NoCode,      // O
	Labial,      // P
	Guttural,    // Q
	ShortLiquid, // R
	Guttural,    // S
	Dental,      // T
	NoCode,      // U
	Labial,      // V
	NoCode,      // W
	Guttural,    // X
	NoCode,      // Y
	Guttural,    // Z
}

// Classify returns the digit group of r, ignoring case. Vowels, H, W, Y and
// anything outside A-Z return NoCode.
func Classify(r rune) Code {
	if i, ok := letterIndex(r); ok {
		return letterCodes[i]
	}
	return NoCode
}

// Separates reports whether r clears duplicate suppression, so that two
// consonants of the same group on either side of it are both coded. Only the
// vowels A E I O U Y do; H, W and non-letters are transparent.
func Separates(r rune) bool {
	switch toUpperASCII(r) {
	case 'A', 'E', 'I', 'O', 'U', 'Y':
		return true
	default:
		return false
	}
}

// IsDigit reports whether c is one of the six digit groups.
func (c Code) IsDigit() bool {
	return c >= Labial && c <= ShortLiquid
}

func letterIndex(r rune) (int, bool) {
	u := toUpperASCII(r)
	if u < 'A' || u > 'Z' {
		return 0, false
	}
	return int(u - 'A'), true
}

func toUpperASCII(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - ('a' - 'A')
	}
	return r
}
