package export

import (
	"encoding/json"
	"errors"
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"

	"github.com/monthlies/bulletin/internal/draft"
	"github.com/monthlies/bulletin/internal/progress"
)

// RegisterRoutes mounts the export endpoint. exportDir is the root the
// per-draft bundles are written under, mirroring the CLI's default.
func RegisterRoutes(r chi.Router, e *Exporter, exportDir string) {
	r.Post("/api/drafts/{id}/export", handleExport(e, exportDir))
}

type exportResponse struct {
	Files int    `json:"files"`
	Dir   string `json:"dir"`
}

func handleExport(e *Exporter, exportDir string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		outDir := filepath.Join(exportDir, id)

		n, err := e.Export(r.Context(), id, outDir, progress.Silent{})
		if err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, draft.ErrNotFound) {
				status = http.StatusNotFound
			}
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(status)
			json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(exportResponse{Files: n, Dir: outDir})
	}
}
