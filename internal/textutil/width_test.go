package textutil

import "testing"

func TestVisibleWidth(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"abc", 3},
		{"日本語", 6},
		{"a日b", 4},
		{"\x1b[31mred\x1b[0m", 3},
		{"\x1b]8;;http://x\x07link\x1b]8;;\x07", 4},
	}
	for _, tc := range cases {
		if got := VisibleWidth(tc.in); got != tc.want {
			t.Fatalf("VisibleWidth(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestStripANSI(t *testing.T) {
	if got := StripANSI("\x1b[1;31mX\x1b[0m"); got != "X" {
		t.Fatalf("StripANSI = %q", got)
	}
	if got := StripANSI("plain"); got != "plain" {
		t.Fatalf("StripANSI = %q", got)
	}
}

func TestPad(t *testing.T) {
	if got := PadRight("ab", 4); got != "ab  " {
		t.Fatalf("PadRight = %q", got)
	}
	if got := PadLeft("ab", 4); got != "  ab" {
		t.Fatalf("PadLeft = %q", got)
	}
	// Styled text pads by visible width, not byte length.
	styled := "\x1b[31mab\x1b[0m"
	if got := PadRight(styled, 4); got != styled+"  " {
		t.Fatalf("PadRight(styled) = %q", got)
	}
	if got := PadRight("abcd", 2); got != "abcd" {
		t.Fatalf("PadRight must not truncate: %q", got)
	}
}
