// ANSI escape codes
package pretty

var colorEnabled = true

// SetColorEnabled controls whether ANSI color codes are output
func SetColorEnabled(enabled bool) {
	colorEnabled = enabled
}

// GetColorEnabled returns whether ANSI color codes are currently enabled
func GetColorEnabled() bool {
	return colorEnabled
}

const resetCode string = "\x1b[0m"
const greenCode string = "\x1b[32m"
const redCode string = "\x1b[31m"
const dimCode string = "\x1b[2m"

// Reset returns the reset ANSI code if colors are enabled, empty string otherwise
func Reset() string {
	if colorEnabled {
		return resetCode
	}
	return ""
}

func Green() string {
	if colorEnabled {
		return greenCode
	}
	return ""
}

func Red() string {
	if colorEnabled {
		return redCode
	}
	return ""
}

func Dim() string {
	if colorEnabled {
		return dimCode
	}
	return ""
}

// Wraps s in green if n is positive and red if n is negative.
func Signed(n int, s string) string {
	switch {
	case n > 0:
		return Green() + s + Reset()
	case n < 0:
		return Red() + s + Reset()
	default:
		return s
	}
}
