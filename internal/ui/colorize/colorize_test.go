package colorize

import (
	"strings"
	"testing"
)

func TestListingNoColor(t *testing.T) {
	t.Setenv("DEXSECT_NO_COLOR", "1")

	in := "0000  const/4 v0, 0x1\n0001  return-void\n"
	out, err := Listing(in)
	if err != nil {
		t.Fatalf("Listing failed: %v", err)
	}
	if out != in {
		t.Errorf("Listing with color disabled = %q, want input unchanged", out)
	}
}

func TestListingKeepsEveryLine(t *testing.T) {
	t.Setenv("DEXSECT_NO_COLOR", "")

	in := "0000  const/4 v0, 0x1\n0001  ; packed-switch-payload, 6 units\n0007  return-void\n"
	out, err := Listing(in)
	if err != nil {
		t.Fatalf("Listing failed: %v", err)
	}
	// highlighting may wrap tokens in escape codes but never drops text
	plain := stripEscapes(out)
	for _, word := range []string{"const/4", "packed-switch-payload", "return-void"} {
		if !strings.Contains(plain, word) {
			t.Errorf("Listing output missing %q: %q", word, plain)
		}
	}
}

func stripEscapes(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == 0x1b {
			for i < len(s) && s[i] != 'm' {
				i++
			}
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

func TestLineNoColor(t *testing.T) {
	t.Setenv("DEXSECT_NO_COLOR", "1")

	in := "0003  goto +2"
	if out := Line(in); out != in {
		t.Errorf("Line with color disabled = %q, want input unchanged", out)
	}
}
