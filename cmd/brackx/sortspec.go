package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/phyten/brackx/internal/engine"
)

type SortKey struct {
	Name string
	Desc bool
}

type SortSpec struct {
	Keys []SortKey
}

func ParseSortSpec(raw string) (SortSpec, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return SortSpec{}, nil
	}
	parts := strings.Split(raw, ",")
	keys := make([]SortKey, 0, len(parts))
	for _, part := range parts {
		token := strings.TrimSpace(part)
		if token == "" {
			return SortSpec{}, fmt.Errorf("invalid sort key: empty segment")
		}
		desc := false
		switch token[0] {
		case '+':
			token = token[1:]
		case '-':
			desc = true
			token = token[1:]
		}
		token = strings.TrimSpace(token)
		if token == "" {
			return SortSpec{}, fmt.Errorf("invalid sort key: sign without name")
		}
		name := strings.ToLower(token)
		switch name {
		case "location":
			keys = append(keys,
				SortKey{Name: "file", Desc: desc},
				SortKey{Name: "line", Desc: desc},
				SortKey{Name: "col", Desc: desc})
			continue
		case "file", "line", "col", "status", "char":
			// accepted as is
		default:
			return SortSpec{}, fmt.Errorf("invalid sort key: %s", token)
		}
		keys = append(keys, SortKey{Name: name, Desc: desc})
	}
	return SortSpec{Keys: keys}, nil
}

func ApplySort(items []engine.Item, spec SortSpec) {
	keys := spec.Keys
	if len(keys) == 0 {
		keys = []SortKey{{Name: "file"}, {Name: "line"}, {Name: "col"}}
	} else {
		keys = append(append([]SortKey{}, keys...),
			SortKey{Name: "file"}, SortKey{Name: "line"}, SortKey{Name: "col"})
	}
	sort.SliceStable(items, func(i, j int) bool {
		a := &items[i]
		b := &items[j]
		aLine, aCol := a.Pos()
		bLine, bCol := b.Pos()
		for _, key := range keys {
			switch key.Name {
			case "file":
				if a.File != b.File {
					if key.Desc {
						return a.File > b.File
					}
					return a.File < b.File
				}
			case "line":
				if aLine != bLine {
					if key.Desc {
						return aLine > bLine
					}
					return aLine < bLine
				}
			case "col":
				if aCol != bCol {
					if key.Desc {
						return aCol > bCol
					}
					return aCol < bCol
				}
			case "status":
				if a.Status != b.Status {
					if key.Desc {
						return a.Status > b.Status
					}
					return a.Status < b.Status
				}
			case "char":
				ac, bc := a.Char(), b.Char()
				if ac != bc {
					if key.Desc {
						return ac > bc
					}
					return ac < bc
				}
			}
		}
		return false
	})
}
