package output

import (
	"fmt"
	"io"

	"github.com/phyten/brackx/internal/engine"
	"github.com/phyten/brackx/internal/model"
	"github.com/phyten/brackx/internal/termcolor"
)

// TextOptions controls the human-readable rendering.
type TextOptions struct {
	// ShowFiles prefixes each block with the file path. Single-file runs
	// leave it off so the output matches the classic one-file messages.
	ShowFiles bool
	// Quiet drops the closing "Brackets are balanced" line on success.
	Quiet   bool
	Color   bool
	Profile termcolor.Profile
}

// WriteText renders the result as the classic diagnostic messages, one
// block per broken file, first violation only per file (unclosed openers
// are listed together under a single header).
func WriteText(w io.Writer, res *engine.Result, o TextOptions) error {
	style := func(kind model.Kind, s string) string {
		return termcolor.Apply(termcolor.StatusStyle(kind, o.Profile), s, o.Color)
	}

	i := 0
	items := res.Items
	for i < len(items) {
		it := items[i]
		prefix := ""
		if o.ShowFiles {
			prefix = it.File + ": "
		}
		switch it.Status {
		case model.KindExtraClosing, model.KindMismatched:
			if _, err := fmt.Fprintln(w, prefix+style(it.Status, Detail(it))); err != nil {
				return err
			}
			i++
		case model.KindUnclosed:
			if _, err := fmt.Fprintln(w, prefix+style(it.Status, "Unclosed brackets:")); err != nil {
				return err
			}
			for i < len(items) && items[i].File == it.File && items[i].Status == model.KindUnclosed {
				open := items[i].Open
				line := fmt.Sprintf("  '%s' at line %d, column %d", open.Char, open.Line, open.Col)
				if _, err := fmt.Fprintln(w, style(it.Status, line)); err != nil {
					return err
				}
				i++
			}
		default:
			i++
		}
	}

	if res.AllBalanced() && !o.Quiet {
		if _, err := fmt.Fprintln(w, style(model.KindBalanced, "Brackets are balanced")); err != nil {
			return err
		}
	}
	return nil
}
