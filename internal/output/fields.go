package output

import (
	"fmt"
	"strings"

	"github.com/phyten/brackx/internal/engine"
	"github.com/phyten/brackx/internal/model"
)

type Field struct {
	Key    string
	Header string
}

type FieldSelection struct {
	Fields []Field
}

var fieldRegistry = map[string]string{
	"file":     "FILE",
	"status":   "STATUS",
	"char":     "CHAR",
	"line":     "LINE",
	"col":      "COL",
	"location": "LOCATION",
	"open":     "OPEN",
	"detail":   "DETAIL",
}

var defaultFieldKeys = []string{"location", "status", "char", "detail"}

// ResolveFields parses a comma-separated field list into a selection.
// An empty list yields the default columns.
func ResolveFields(raw string) (FieldSelection, error) {
	raw = strings.TrimSpace(raw)
	keys := defaultFieldKeys
	if raw != "" {
		parts := strings.Split(raw, ",")
		keys = make([]string, 0, len(parts))
		for _, part := range parts {
			name := strings.TrimSpace(part)
			if name == "" {
				return FieldSelection{}, fmt.Errorf("invalid fields: empty entry")
			}
			key := strings.ToLower(name)
			if _, ok := fieldRegistry[key]; !ok {
				return FieldSelection{}, fmt.Errorf("invalid field: %s", name)
			}
			keys = append(keys, key)
		}
	}
	sel := FieldSelection{Fields: make([]Field, 0, len(keys))}
	for _, key := range keys {
		sel.Fields = append(sel.Fields, Field{Key: key, Header: fieldRegistry[key]})
	}
	return sel, nil
}

// Headers returns the column headers for the selected fields.
func Headers(fields []Field) []string {
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		out = append(out, f.Header)
	}
	return out
}

// RowValues renders one item into the selected columns.
func RowValues(it engine.Item, fields []Field) []string {
	line, col := it.Pos()
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		switch f.Key {
		case "file":
			out = append(out, it.File)
		case "status":
			out = append(out, string(it.Status))
		case "char":
			out = append(out, it.Char())
		case "line":
			out = append(out, fmt.Sprintf("%d", line))
		case "col":
			out = append(out, fmt.Sprintf("%d", col))
		case "location":
			out = append(out, fmt.Sprintf("%s:%d:%d", it.File, line, col))
		case "open":
			if it.Status == model.KindMismatched && it.Open != nil {
				out = append(out, fmt.Sprintf("%s:%d:%d", it.Open.Char, it.Open.Line, it.Open.Col))
			} else {
				out = append(out, "")
			}
		case "detail":
			out = append(out, Detail(it))
		default:
			out = append(out, "")
		}
	}
	return out
}

// Detail renders the single-line human message for an item, without the
// file name. The wording matches the text output.
func Detail(it engine.Item) string {
	switch it.Status {
	case model.KindExtraClosing:
		if it.Close == nil {
			return ""
		}
		return fmt.Sprintf("Extra closing bracket '%s' at line %d, column %d",
			it.Close.Char, it.Close.Line, it.Close.Col)
	case model.KindMismatched:
		if it.Open == nil || it.Close == nil {
			return ""
		}
		return fmt.Sprintf("Mismatched brackets: '%s' at line %d, column %d and '%s' at line %d, column %d",
			it.Open.Char, it.Open.Line, it.Open.Col,
			it.Close.Char, it.Close.Line, it.Close.Col)
	case model.KindUnclosed:
		if it.Open == nil {
			return ""
		}
		return fmt.Sprintf("Unclosed bracket '%s' at line %d, column %d",
			it.Open.Char, it.Open.Line, it.Open.Col)
	default:
		return ""
	}
}
