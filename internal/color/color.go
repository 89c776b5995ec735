// Package color wraps text in ANSI escape sequences for the soundex CLI.
//
//nolint:revive // package name conflicts with standard library
package color

import (
	"strings"
	"unicode/utf8"
)

// ANSI color codes
const (
	resetCode  = "\033[0m"
	grayCode   = "\033[90m" // Bright black/gray
	greenCode  = "\033[32m"
	yellowCode = "\033[33m"
	redCode    = "\033[31m"
	cyanCode   = "\033[36m"
	boldCode   = "\033[1m"
)

// Color wraps text with ANSI escape sequences.
type Color func(text string) string

// NewColor creates a color function with the specified ANSI code.
func NewColor(ansiCode string) Color {
	return func(text string) string {
		return ansiCode + text + resetCode
	}
}

// Predefined color functions
var (
	Gray   = NewColor(grayCode)
	Green  = NewColor(greenCode)
	Yellow = NewColor(yellowCode)
	Red    = NewColor(redCode)
	Cyan   = NewColor(cyanCode)
	Bold   = NewColor(boldCode)
)

// Palette applies colors only when enabled, so callers can format the same
// way for terminals and pipes.
type Palette struct {
	enabled bool
}

// NewPalette returns a palette that colors when enabled is true.
func NewPalette(enabled bool) Palette {
	return Palette{enabled: enabled}
}

// Enabled reports whether the palette emits escape sequences.
func (p Palette) Enabled() bool {
	return p.enabled
}

// Paint applies c to text when the palette is enabled.
func (p Palette) Paint(c Color, text string) string {
	if !p.enabled || text == "" {
		return text
	}
	return c(text)
}

// Code highlights a Soundex code: the leading character in bold cyan, coded
// digits in green and trailing padding zeros in gray.
func (p Palette) Code(code string) string {
	if !p.enabled || code == "" {
		return code
	}

	_, size := utf8.DecodeRuneInString(code)
	digits := code[size:]
	coded := strings.TrimRight(digits, "0")
	padding := digits[len(coded):]

	var sb strings.Builder
	sb.WriteString(Bold(Cyan(code[:size])))
	if coded != "" {
		sb.WriteString(Green(coded))
	}
	if padding != "" {
		sb.WriteString(Gray(padding))
	}
	return sb.String()
}
