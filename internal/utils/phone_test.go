package utils

import "testing"

func TestIsE164(t *testing.T) {
	cases := map[string]bool{
		"+14165550100":    true,
		"+442071838750":   true,
		"14165550100":     false,
		"+0123456789":     false,
		"+1 416 555 0100": false,
		"":                false,
	}
	for in, want := range cases {
		if got := IsE164(in); got != want {
			t.Errorf("IsE164(%q) = %v, want %v", in, got, want)
		}
	}
}
