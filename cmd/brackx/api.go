package main

import (
	"encoding/json"
	"net/http"

	"github.com/phyten/brackx/internal/engine"
	"github.com/phyten/brackx/internal/engine/opts"
)

// apiCheckHandler runs a scan with query-string overrides applied on top of
// the server defaults. Bad parameters are the client's fault (400); scan
// failures are ours (500).
func apiCheckHandler(def engine.Options) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		o, err := opts.ApplyWebQueryToOptions(def, r.URL.Query())
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := opts.NormalizeAndValidate(&o); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		o.Progress = false

		res, err := engine.Run(o)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(res); err != nil {
			http.Error(w, "encoding failed", http.StatusInternalServerError)
		}
	}
}
