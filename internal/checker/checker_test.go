package checker

import (
	"reflect"
	"strings"
	"testing"

	"github.com/phyten/brackx/internal/model"
)

func ref(char string, line, col int) model.BracketRef {
	return model.BracketRef{Char: char, Line: line, Col: col}
}

func TestCheckBalanced(t *testing.T) {
	cases := []struct {
		name  string
		lines []string
	}{
		{"empty input", nil},
		{"zero-length line", []string{""}},
		{"no brackets at all", []string{"plain text, no brackets; just words."}},
		{"single pair", []string{"()"}},
		{"nested same type", []string{"((()))"}},
		{"nested mixed types", []string{"{ [1, 2, (3+4)] }"}},
		{"pairs across lines", []string{"func main() {", "\tdo(x[0])", "}"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rep := Check(tc.lines)
			if !rep.Balanced() {
				t.Fatalf("Check(%q) = %+v, want balanced", tc.lines, rep)
			}
		})
	}
}

func TestCheckExtraClosing(t *testing.T) {
	cases := []struct {
		name  string
		lines []string
		want  model.BracketRef
	}{
		{"lone closer", []string{")"}, ref(")", 1, 0)},
		{"closer after balanced pair", []string{"()]"}, ref("]", 1, 2)},
		{"closer on later line", []string{"abc", "de}"}, ref("}", 2, 2)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rep := Check(tc.lines)
			if rep.Status != model.KindExtraClosing {
				t.Fatalf("status = %s, want %s", rep.Status, model.KindExtraClosing)
			}
			if rep.Close == nil || *rep.Close != tc.want {
				t.Fatalf("close = %+v, want %+v", rep.Close, tc.want)
			}
			if rep.Open != nil || rep.Unclosed != nil {
				t.Fatalf("unexpected extra fields in report: %+v", rep)
			}
		})
	}
}

func TestCheckMismatched(t *testing.T) {
	cases := []struct {
		name      string
		lines     []string
		wantOpen  model.BracketRef
		wantClose model.BracketRef
	}{
		{"interleaved pairs", []string{"([)]"}, ref("[", 1, 1), ref(")", 1, 2)},
		{"wrong closer type", []string{"(])"}, ref("(", 1, 0), ref("]", 1, 1)},
		{"mismatch inside literal", []string{"{ [1, 2, (3+4] }"}, ref("(", 1, 9), ref("]", 1, 13)},
		{"mismatch across lines", []string{"foo(", "bar]"}, ref("(", 1, 3), ref("]", 2, 3)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rep := Check(tc.lines)
			if rep.Status != model.KindMismatched {
				t.Fatalf("status = %s, want %s", rep.Status, model.KindMismatched)
			}
			if rep.Open == nil || *rep.Open != tc.wantOpen {
				t.Fatalf("open = %+v, want %+v", rep.Open, tc.wantOpen)
			}
			if rep.Close == nil || *rep.Close != tc.wantClose {
				t.Fatalf("close = %+v, want %+v", rep.Close, tc.wantClose)
			}
		})
	}
}

func TestCheckUnclosed(t *testing.T) {
	rep := Check([]string{"([{"})
	if rep.Status != model.KindUnclosed {
		t.Fatalf("status = %s, want %s", rep.Status, model.KindUnclosed)
	}
	want := []model.BracketRef{ref("(", 1, 0), ref("[", 1, 1), ref("{", 1, 2)}
	if !reflect.DeepEqual(rep.Unclosed, want) {
		t.Fatalf("unclosed = %+v, want %+v (bottom-to-top order)", rep.Unclosed, want)
	}
}

func TestCheckUnclosedAcrossLines(t *testing.T) {
	rep := Check([]string{"foo(", "bar{"})
	want := []model.BracketRef{ref("(", 1, 3), ref("{", 2, 3)}
	if rep.Status != model.KindUnclosed || !reflect.DeepEqual(rep.Unclosed, want) {
		t.Fatalf("got %+v, want unclosed %+v", rep, want)
	}
}

// The first violation in scan order wins; subsequent problems are never
// reported. "(])" stops at the ']' mismatch before even seeing the ')'.
func TestCheckShortCircuit(t *testing.T) {
	rep := Check([]string{"(])"})
	if rep.Status != model.KindMismatched {
		t.Fatalf("status = %s, want %s", rep.Status, model.KindMismatched)
	}
	rep = Check([]string{")("})
	if rep.Status != model.KindExtraClosing {
		t.Fatalf("status = %s, want %s", rep.Status, model.KindExtraClosing)
	}
	if rep.Close == nil || rep.Close.Col != 0 {
		t.Fatalf("expected the leading ')' to be reported, got %+v", rep.Close)
	}
}

func TestCheckIgnoresNonBrackets(t *testing.T) {
	balanced := Check([]string{"a(b[c{d}e]f)g"})
	if !balanced.Balanced() {
		t.Fatalf("noise characters changed the result: %+v", balanced)
	}
	// Multibyte characters count as one column each.
	rep := Check([]string{"あい("})
	if rep.Status != model.KindUnclosed {
		t.Fatalf("status = %s, want %s", rep.Status, model.KindUnclosed)
	}
	if got := rep.Unclosed[0]; got != ref("(", 1, 2) {
		t.Fatalf("col = %+v, want opener at column 2", got)
	}
}

func TestCheckIdempotent(t *testing.T) {
	lines := []string{"{ [1, 2, (3+4] }"}
	first := Check(lines)
	second := Check(lines)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("repeated scans disagree: %+v vs %+v", first, second)
	}
}

func TestCheckReader(t *testing.T) {
	rep, err := CheckReader(strings.NewReader("foo(\nbar)\n"))
	if err != nil {
		t.Fatalf("CheckReader failed: %v", err)
	}
	if !rep.Balanced() {
		t.Fatalf("got %+v, want balanced", rep)
	}

	rep, err = CheckReader(strings.NewReader("foo(\r\nbar]\r\n"))
	if err != nil {
		t.Fatalf("CheckReader failed: %v", err)
	}
	if rep.Status != model.KindMismatched {
		t.Fatalf("status = %s, want %s", rep.Status, model.KindMismatched)
	}
	if rep.Open == nil || rep.Open.Line != 1 || rep.Open.Col != 3 {
		t.Fatalf("open = %+v, want line 1 col 3", rep.Open)
	}
	if rep.Close == nil || rep.Close.Line != 2 || rep.Close.Col != 3 {
		t.Fatalf("close = %+v, want line 2 col 3", rep.Close)
	}
}

func TestReadLinesStripsCR(t *testing.T) {
	lines, err := ReadLines(strings.NewReader("a\r\nb\nc"))
	if err != nil {
		t.Fatalf("ReadLines failed: %v", err)
	}
	want := []string{"a", "b", "c"}
	if !reflect.DeepEqual(lines, want) {
		t.Fatalf("lines = %q, want %q", lines, want)
	}
}
