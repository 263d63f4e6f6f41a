package pretty_test

import (
	"testing"

	"github.com/sinclairtarget/git-churn/internal/pretty"
)

func TestParseColorMode(t *testing.T) {
	tests := map[string]pretty.ColorMode{
		"":       pretty.ColorAuto,
		"auto":   pretty.ColorAuto,
		"always": pretty.ColorAlways,
		"never":  pretty.ColorNever,
	}

	for input, expected := range tests {
		got, err := pretty.ParseColorMode(input)
		if err != nil {
			t.Errorf("ParseColorMode(%q) returned error: %v", input, err)
			continue
		}
		if got != expected {
			t.Errorf("expected %s for %q but got %s", expected, input, got)
		}
	}

	if _, err := pretty.ParseColorMode("sometimes"); err == nil {
		t.Errorf("expected error for unknown color mode")
	}
}

func TestSigned(t *testing.T) {
	enabled := pretty.GetColorEnabled()
	defer pretty.SetColorEnabled(enabled)

	pretty.SetColorEnabled(true)
	if got := pretty.Signed(-3, "-3"); got != "\x1b[31m-3\x1b[0m" {
		t.Errorf("expected red text but got %q", got)
	}
	if got := pretty.Signed(0, "0"); got != "0" {
		t.Errorf("expected plain text for zero but got %q", got)
	}

	pretty.SetColorEnabled(false)
	if got := pretty.Signed(5, "5"); got != "5" {
		t.Errorf("expected no color codes when disabled but got %q", got)
	}
}
