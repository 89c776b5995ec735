package nameinput

import (
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// FoldDiacritics strips combining marks, so "Müller" becomes "Muller" and
// "Šimůnek" becomes "Simunek". Letters without a decomposition, such as "ß"
// or "Ø", are left unchanged.
func FoldDiacritics(name string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, name)
	if err != nil {
		return name
	}
	return folded
}
