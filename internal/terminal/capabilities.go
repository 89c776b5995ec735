package terminal

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrInvalidColorMode is returned by ParseColorMode for unknown values.
var ErrInvalidColorMode = errors.New("invalid color mode")

// ColorMode is the user's color preference.
type ColorMode string

// Supported color modes
const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseColorMode parses a color mode name. An empty string means ColorAuto.
func ParseColorMode(s string) (ColorMode, error) {
	switch mode := ColorMode(strings.ToLower(strings.TrimSpace(s))); mode {
	case "":
		return ColorAuto, nil
	case ColorAuto, ColorAlways, ColorNever:
		return mode, nil
	default:
		return "", fmt.Errorf("%w: %q (want auto, always or never)", ErrInvalidColorMode, s)
	}
}

// Capabilities is the outcome of terminal detection for one output stream.
type Capabilities struct {
	// Interactive is true when a person is likely reading the stream.
	Interactive bool
	// Color is true when ANSI colors may be written to the stream.
	Color bool
}

// Detect works out the capabilities of out.
//
// Color resolution order:
//  1. mode always / never
//  2. CLICOLOR_FORCE truthy
//  3. NO_COLOR present (any value, even empty)
//  4. non-interactive streams get no color
//  5. CLICOLOR, when set
//  6. TERM names a color terminal
func Detect(out io.Writer, mode ColorMode) Capabilities {
	interactive := !IsCIEnvironment() && IsTerminal(out)
	return Capabilities{
		Interactive: interactive,
		Color:       resolveColor(mode, interactive),
	}
}

func resolveColor(mode ColorMode, interactive bool) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}

	if isTruthy(os.Getenv("CLICOLOR_FORCE")) {
		return true
	}
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return false
	}
	if !interactive {
		return false
	}
	if cliColor := os.Getenv("CLICOLOR"); cliColor != "" {
		return isTruthy(cliColor)
	}
	return termSupportsColor()
}
