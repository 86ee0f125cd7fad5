package opts

import (
	"net/url"
	"reflect"
	"testing"
)

func TestParseBool(t *testing.T) {
	trues := []string{"1", "true", "YES", " on "}
	for _, raw := range trues {
		v, err := ParseBool(raw, "flag")
		if err != nil || !v {
			t.Fatalf("ParseBool(%q) = %v, %v; want true", raw, v, err)
		}
	}
	falses := []string{"0", "false", "No", "OFF"}
	for _, raw := range falses {
		v, err := ParseBool(raw, "flag")
		if err != nil || v {
			t.Fatalf("ParseBool(%q) = %v, %v; want false", raw, v, err)
		}
	}
	if _, err := ParseBool("maybe", "flag"); err == nil {
		t.Fatal("ParseBool should reject unknown literals")
	}
}

func TestParseIntInRange(t *testing.T) {
	if n, err := ParseIntInRange("8", "jobs", 1, 64); err != nil || n != 8 {
		t.Fatalf("got %d, %v", n, err)
	}
	if _, err := ParseIntInRange("0", "jobs", 1, 64); err == nil {
		t.Fatal("expected range error for 0")
	}
	if _, err := ParseIntInRange("65", "jobs", 1, 64); err == nil {
		t.Fatal("expected range error for 65")
	}
	if _, err := ParseIntInRange("x", "jobs", 1, 64); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestSplitMulti(t *testing.T) {
	got := SplitMulti([]string{"a, b", "", "c", " , d"})
	want := []string{"a", "b", "c", "d"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("SplitMulti = %v, want %v", got, want)
	}
}

func TestNormalizeOutput(t *testing.T) {
	cases := map[string]string{
		"":         "text",
		"TEXT":     "text",
		"table":    "table",
		"tsv":      "tsv",
		"json":     "json",
		"ndjson":   "ndjson",
		"csv":      "csv",
		"md":       "md",
		"markdown": "md",
	}
	for raw, want := range cases {
		got, err := NormalizeOutput(raw)
		if err != nil || got != want {
			t.Fatalf("NormalizeOutput(%q) = %q, %v; want %q", raw, got, err, want)
		}
	}
	if _, err := NormalizeOutput("xml"); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestNormalizeAndValidate(t *testing.T) {
	o := Defaults(".")
	o.Paths = []string{" src ", ""}
	o.PathRegex = []string{`\.go$`}
	if err := NormalizeAndValidate(&o); err != nil {
		t.Fatalf("NormalizeAndValidate failed: %v", err)
	}
	if !reflect.DeepEqual(o.Paths, []string{"src"}) {
		t.Fatalf("paths not trimmed: %v", o.Paths)
	}
	if len(o.PathRegexCompiled) != 1 {
		t.Fatalf("path regex not compiled: %v", o.PathRegexCompiled)
	}

	bad := Defaults(".")
	bad.Jobs = 0
	if err := NormalizeAndValidate(&bad); err == nil {
		t.Fatal("expected jobs range error")
	}

	badRe := Defaults(".")
	badRe.PathRegex = []string{"("}
	if err := NormalizeAndValidate(&badRe); err == nil {
		t.Fatal("expected regex compile error")
	}
}

func TestApplyWebQueryToOptions(t *testing.T) {
	def := Defaults("/repo")
	q := url.Values{
		"path":            []string{"src,docs"},
		"exclude":         []string{"*.min.js"},
		"exclude_typical": []string{"0"},
		"jobs":            []string{"2"},
		"max_file_bytes":  []string{"1024"},
	}
	got, err := ApplyWebQueryToOptions(def, q)
	if err != nil {
		t.Fatalf("ApplyWebQueryToOptions failed: %v", err)
	}
	if !reflect.DeepEqual(got.Paths, []string{"src", "docs"}) {
		t.Fatalf("paths = %v", got.Paths)
	}
	if got.ExcludeTypical {
		t.Fatal("exclude_typical=0 should disable pruning")
	}
	if got.Jobs != 2 || got.MaxFileBytes != 1024 {
		t.Fatalf("jobs/max_file_bytes = %d/%d", got.Jobs, got.MaxFileBytes)
	}

	if _, err := ApplyWebQueryToOptions(def, url.Values{"jobs": []string{"999"}}); err == nil {
		t.Fatal("expected jobs range error from query")
	}
}
