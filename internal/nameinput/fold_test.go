package nameinput

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFoldDiacritics(t *testing.T) {
	tests := map[string]string{
		"Müller":   "Muller",
		"Šimůnek":  "Simunek",
		"José":     "Jose",
		"Ångström": "Angstrom",
		"Weiß":     "Weiß",
		"Øster":    "Øster",
		"O'Malley": "O'Malley",
		"":         "",
		"Robert":   "Robert",
	}
	for in, want := range tests {
		assert.Equal(t, want, FoldDiacritics(in), "FoldDiacritics(%q)", in)
	}
}
