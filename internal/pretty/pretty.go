package pretty

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// When to emit color codes.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

func ParseColorMode(s string) (ColorMode, error) {
	switch mode := ColorMode(s); mode {
	case ColorAuto, ColorAlways, ColorNever:
		return mode, nil
	case "":
		return ColorAuto, nil
	default:
		return "", fmt.Errorf(
			"unrecognized color mode \"%s\" (want auto, always, or never)",
			s,
		)
	}
}

func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Enables or disables color for output written to f.
func ConfigureColor(mode ColorMode, f *os.File) {
	switch mode {
	case ColorAlways:
		SetColorEnabled(true)
	case ColorNever:
		SetColorEnabled(false)
	default:
		SetColorEnabled(IsTerminal(f))
	}
}
