package draft

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/monthlies/bulletin/internal/layout"
)

// RegisterRoutes mounts the draft API.
func RegisterRoutes(r chi.Router, store *Store) {
	r.Get("/api/templates", handleListTemplates())

	r.Route("/api/drafts", func(r chi.Router) {
		r.Post("/", handleCreateDraft(store))
		r.Get("/", handleListDrafts(store))
		r.Get("/{id}", handleGetDraft(store))
		r.Patch("/{id}", handleUpdateDraft(store))

		r.Put("/{id}/images/{slot}", handleSetImage(store))
		r.Delete("/{id}/images/{slot}", handleDeleteImage(store))

		r.Get("/{id}/notes", handleListNotes(store))
		r.Put("/{id}/notes/{date}", handleUpsertNote(store))
		r.Delete("/{id}/notes/{date}", handleDeleteNote(store))

		r.Post("/{id}/recipients", handleAddRecipient(store))
		r.Get("/{id}/recipients", handleListRecipients(store))
		r.Delete("/{id}/recipients/{recipientID}", handleDeleteRecipient(store))

		r.Post("/{id}/submit", handleSubmit(store))
		r.Get("/{id}/submissions", handleListSubmissions(store))
	})
}

// writeError maps store errors onto HTTP statuses with a JSON body.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, ErrBlurbTooLong),
		errors.Is(err, ErrSlotOutOfRange),
		errors.Is(err, ErrBadDate),
		errors.Is(err, layout.ErrInvalidTemplate):
		status = http.StatusBadRequest
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func handleListTemplates() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, layout.Templates())
	}
}

type createDraftRequest struct {
	Owner       string `json:"owner"`
	DisplayName string `json:"display_name"`
	TemplateID  int    `json:"template_id"`
}

func handleCreateDraft(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createDraftRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
			return
		}
		if req.Owner == "" {
			req.Owner = "anonymous"
		}

		d, err := store.CreateDraft(r.Context(), req.Owner, req.DisplayName, req.TemplateID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, d)
	}
}

func handleListDrafts(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		drafts, err := store.ListDrafts(r.Context(), r.URL.Query().Get("owner"))
		if err != nil {
			writeError(w, err)
			return
		}
		if drafts == nil {
			drafts = []Draft{}
		}
		writeJSON(w, drafts)
	}
}

// draftView is the composite shape returned for a single draft.
type draftView struct {
	Draft      *Draft         `json:"draft"`
	Images     []Image        `json:"images"`
	Notes      []CalendarNote `json:"notes"`
	Recipients []Recipient    `json:"recipients"`
}

func handleGetDraft(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		d, err := store.GetDraft(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		images, err := store.ListImages(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		notes, err := store.ListNotes(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		recs, err := store.ListRecipients(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		if images == nil {
			images = []Image{}
		}
		if notes == nil {
			notes = []CalendarNote{}
		}
		if recs == nil {
			recs = []Recipient{}
		}
		writeJSON(w, draftView{Draft: d, Images: images, Notes: notes, Recipients: recs})
	}
}

type updateDraftRequest struct {
	DisplayName *string `json:"display_name"`
	Blurb       *string `json:"blurb"`
	TemplateID  *int    `json:"template_id"`
}

func handleUpdateDraft(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		var req updateDraftRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
			return
		}

		if req.DisplayName != nil {
			if err := store.UpdateDisplayName(r.Context(), id, *req.DisplayName); err != nil {
				writeError(w, err)
				return
			}
		}
		if req.Blurb != nil {
			if err := store.UpdateBlurb(r.Context(), id, *req.Blurb); err != nil {
				writeError(w, err)
				return
			}
		}
		if req.TemplateID != nil {
			if err := store.UpdateTemplate(r.Context(), id, *req.TemplateID); err != nil {
				writeError(w, err)
				return
			}
		}

		d, err := store.GetDraft(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, d)
	}
}

type setImageRequest struct {
	URL string `json:"url"`
}

func handleSetImage(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slot, ok := slotParam(w, r)
		if !ok {
			return
		}
		var req setImageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.URL == "" {
			http.Error(w, `{"error":"url is required"}`, http.StatusBadRequest)
			return
		}

		img, err := store.SetImage(r.Context(), chi.URLParam(r, "id"), slot, req.URL)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, img)
	}
}

func handleDeleteImage(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slot, ok := slotParam(w, r)
		if !ok {
			return
		}
		if err := store.DeleteImage(r.Context(), chi.URLParam(r, "id"), slot); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func slotParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	slot, err := strconv.Atoi(chi.URLParam(r, "slot"))
	if err != nil {
		http.Error(w, `{"error":"slot must be an integer"}`, http.StatusBadRequest)
		return 0, false
	}
	return slot, true
}

func handleListNotes(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		notes, err := store.ListNotes(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, err)
			return
		}
		if notes == nil {
			notes = []CalendarNote{}
		}
		writeJSON(w, notes)
	}
}

type upsertNoteRequest struct {
	Note string `json:"note"`
}

func handleUpsertNote(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req upsertNoteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
			return
		}

		note, err := store.UpsertNote(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "date"), req.Note)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, note)
	}
}

func handleDeleteNote(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := store.DeleteNote(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "date")); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

type addRecipientRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

func handleAddRecipient(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req addRecipientRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
			http.Error(w, `{"error":"name is required"}`, http.StatusBadRequest)
			return
		}

		rec, err := store.AddRecipient(r.Context(), chi.URLParam(r, "id"), req.Name, req.Address)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, rec)
	}
}

func handleListRecipients(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recs, err := store.ListRecipients(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, err)
			return
		}
		if recs == nil {
			recs = []Recipient{}
		}
		writeJSON(w, recs)
	}
}

func handleDeleteRecipient(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := store.DeleteRecipient(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "recipientID")); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func handleSubmit(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sub, err := store.Submit(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, sub)
	}
}

func handleListSubmissions(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		subs, err := store.ListSubmissions(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, err)
			return
		}
		if subs == nil {
			subs = []Submission{}
		}
		writeJSON(w, subs)
	}
}
