package uploads

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// MaxUploadBytes caps a single multipart upload.
const MaxUploadBytes = 10 << 20

// RegisterRoutes mounts the upload API and the static file serving for
// stored images.
func RegisterRoutes(r chi.Router, store *Store) {
	r.Post("/api/uploads", handleUpload(store))
	r.Get("/api/uploads", handleList(store))
	r.Delete("/api/uploads/{id}", handleDelete(store))

	fs := http.StripPrefix("/uploads/", http.FileServer(http.Dir(store.Dir())))
	r.Get("/uploads/*", fs.ServeHTTP)
}

func handleUpload(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, MaxUploadBytes)
		if err := r.ParseMultipartForm(MaxUploadBytes); err != nil {
			http.Error(w, `{"error":"invalid multipart body"}`, http.StatusBadRequest)
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			http.Error(w, `{"error":"file field is required"}`, http.StatusBadRequest)
			return
		}
		defer file.Close()

		ref, err := store.Save(header.Filename, file)
		if err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, ErrDisallowedType) {
				status = http.StatusBadRequest
			}
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(status)
			json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(ref)
	}
}

func handleList(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		refs, err := store.List()
		if err != nil {
			http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusInternalServerError)
			return
		}
		if refs == nil {
			refs = []ImageRef{}
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(refs)
	}
}

func handleDelete(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := store.Delete(chi.URLParam(r, "id")); err != nil {
			http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
