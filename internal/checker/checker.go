// Package checker implements the balance scan itself: a single
// left-to-right, top-to-bottom pass over text that matches every closing
// bracket against a stack of pending openers. Structural violations are
// returned as data, never as errors.
package checker

import (
	"bufio"
	"io"

	"github.com/phyten/brackx/internal/model"
)

// Report は 1 回の走査の結果を表す。Status に応じて付随フィールドが埋まる:
// extra_closing は Close のみ、mismatched は Open と Close の対、
// unclosed は Unclosed（開かれた順、スタックの底から先頭へ）。
type Report struct {
	Status   model.Kind         `json:"status"`
	Open     *model.BracketRef  `json:"open,omitempty"`
	Close    *model.BracketRef  `json:"close,omitempty"`
	Unclosed []model.BracketRef `json:"unclosed,omitempty"`
}

// Balanced reports whether the scan found no violation.
func (r Report) Balanced() bool { return r.Status == model.KindBalanced }

// Check scans the given lines and reports the first structural violation,
// if any. Lines are 1-based, columns are 0-based offsets counted in code
// points within the line. Characters other than the six bracket characters
// never affect the result. The scan stops at the first extra closing
// bracket or mismatched pair; unclosed openers are only reported when the
// end of input is reached without an earlier violation.
func Check(lines []string) Report {
	var stack []model.BracketRef
	for i, line := range lines {
		col := 0
		for _, ch := range line {
			switch {
			case model.Opening(ch):
				stack = append(stack, model.BracketRef{Char: string(ch), Line: i + 1, Col: col})
			case model.Closing(ch):
				ref := model.BracketRef{Char: string(ch), Line: i + 1, Col: col}
				if len(stack) == 0 {
					return Report{Status: model.KindExtraClosing, Close: &ref}
				}
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.Char != string(model.OpenerFor(ch)) {
					open := top
					return Report{Status: model.KindMismatched, Open: &open, Close: &ref}
				}
			}
			col++
		}
	}
	if len(stack) > 0 {
		return Report{Status: model.KindUnclosed, Unclosed: stack}
	}
	return Report{Status: model.KindBalanced}
}

// CheckReader reads r line by line and runs Check over the collected
// lines. Read errors are surfaced to the caller untouched; they are the
// only failure mode, malformed bracket structure is a normal result.
func CheckReader(r io.Reader) (Report, error) {
	lines, err := ReadLines(r)
	if err != nil {
		return Report{}, err
	}
	return Check(lines), nil
}

// ReadLines splits r into lines without the trailing newline. Carriage
// returns before the newline are stripped as well; they sit past any
// bracket on the line and cannot shift a reported column.
func ReadLines(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	buf := make([]byte, 0, 64*1024)
	sc.Buffer(buf, 16*1024*1024)
	var lines []string
	for sc.Scan() {
		line := sc.Text()
		if n := len(line); n > 0 && line[n-1] == '\r' {
			line = line[:n-1]
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
