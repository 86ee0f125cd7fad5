package engine

import (
	"regexp"
	"time"

	"github.com/phyten/brackx/internal/checker"
	"github.com/phyten/brackx/internal/model"
)

// Item は 1 件の括弧エラーを表す。mismatched では Open と Close の両方が
// 埋まり、extra_closing では Close のみ、unclosed では Open のみが埋まる
// （スタックに残った開き括弧 1 個につき 1 件）。
type Item struct {
	File   string            `json:"file"`
	Status model.Kind        `json:"status"`
	Open   *model.BracketRef `json:"open,omitempty"`
	Close  *model.BracketRef `json:"close,omitempty"`
}

// Pos returns the position the item is reported at: the closing side when
// present, otherwise the unclosed opener.
func (it Item) Pos() (line, col int) {
	if it.Close != nil {
		return it.Close.Line, it.Close.Col
	}
	if it.Open != nil {
		return it.Open.Line, it.Open.Col
	}
	return 0, 0
}

// Char returns the offending bracket character: the closer for
// extra_closing and mismatched, the leftover opener for unclosed.
func (it Item) Char() string {
	if it.Close != nil {
		return it.Close.Char
	}
	if it.Open != nil {
		return it.Open.Char
	}
	return ""
}

// FileReport は 1 ファイル分の走査結果を表す
type FileReport struct {
	File   string         `json:"file"`
	Report checker.Report `json:"report"`
}

// ItemError は 1 ファイルの読み込みに失敗した際の情報を表す
type ItemError struct {
	File    string `json:"file"`
	Stage   string `json:"stage"`
	Message string `json:"message"`
}

// Options は実行オプション
type Options struct {
	Paths             []string
	Excludes          []string
	PathRegex         []string
	PathRegexCompiled []*regexp.Regexp
	ExcludeTypical    bool
	MaxFileBytes      int
	Jobs              int
	RootDir           string
	Progress          bool
}

// Result は出力
type Result struct {
	Items      []Item      `json:"items"`
	Checked    int         `json:"checked"`
	Balanced   int         `json:"balanced"`
	Broken     int         `json:"broken"`
	Total      int         `json:"total"`
	ElapsedMS  int64       `json:"elapsed_ms"`
	Errors     []ItemError `json:"errors,omitempty"`
	ErrorCount int         `json:"error_count"`
}

// AllBalanced reports whether every checked file came back clean.
func (r *Result) AllBalanced() bool {
	return r.Broken == 0 && len(r.Items) == 0
}

func msSince(t time.Time) int64 { return time.Since(t).Milliseconds() }
