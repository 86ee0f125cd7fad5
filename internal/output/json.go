package output

import (
	"encoding/json"
	"io"

	"github.com/phyten/brackx/internal/engine"
)

// WriteJSON renders the whole result, counters included, as indented JSON.
func WriteJSON(w io.Writer, res *engine.Result) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}
