package draft

import (
	"context"
	"database/sql"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/monthlies/bulletin/internal/db"
	"github.com/monthlies/bulletin/internal/layout"
)

// Store manages persistence of drafts, their images, calendar notes,
// recipients and submissions.
type Store struct {
	db *db.DB
}

// NewStore creates a draft store.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// CreateDraft inserts a new empty draft. The template id is validated
// against the layout registry before anything is written.
func (s *Store) CreateDraft(ctx context.Context, owner, displayName string, templateID int) (*Draft, error) {
	if _, err := layout.Lookup(templateID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	d := Draft{
		ID:          uuid.New().String(),
		Owner:       owner,
		DisplayName: displayName,
		TemplateID:  templateID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO drafts (id, owner, display_name, blurb, template_id, created_at, updated_at)
		 VALUES (?, ?, ?, '', ?, ?, ?)`,
		d.ID, d.Owner, d.DisplayName, d.TemplateID, d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting draft: %w", err)
	}
	return &d, nil
}

// GetDraft retrieves a draft by id.
func (s *Store) GetDraft(ctx context.Context, id string) (*Draft, error) {
	var d Draft
	err := s.db.QueryRowContext(ctx,
		`SELECT id, owner, display_name, blurb, template_id, created_at, updated_at
		 FROM drafts WHERE id = ?`, id,
	).Scan(&d.ID, &d.Owner, &d.DisplayName, &d.Blurb, &d.TemplateID, &d.CreatedAt, &d.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting draft: %w", err)
	}
	return &d, nil
}

// ListDrafts returns all drafts for an owner, most recently updated first.
// An empty owner lists everything.
func (s *Store) ListDrafts(ctx context.Context, owner string) ([]Draft, error) {
	query := `SELECT id, owner, display_name, blurb, template_id, created_at, updated_at FROM drafts`
	args := []interface{}{}
	if owner != "" {
		query += " WHERE owner = ?"
		args = append(args, owner)
	}
	query += " ORDER BY updated_at DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying drafts: %w", err)
	}
	defer rows.Close()

	var drafts []Draft
	for rows.Next() {
		var d Draft
		if err := rows.Scan(&d.ID, &d.Owner, &d.DisplayName, &d.Blurb, &d.TemplateID, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning draft: %w", err)
		}
		drafts = append(drafts, d)
	}
	return drafts, rows.Err()
}

// UpdateBlurb replaces the draft's blurb text.
func (s *Store) UpdateBlurb(ctx context.Context, id, blurb string) error {
	if utf8.RuneCountInString(blurb) > MaxBlurbLen {
		return ErrBlurbTooLong
	}
	return s.touchUpdate(ctx,
		`UPDATE drafts SET blurb = ?, updated_at = ? WHERE id = ?`, blurb, id)
}

// UpdateDisplayName replaces the draft's display name.
func (s *Store) UpdateDisplayName(ctx context.Context, id, name string) error {
	return s.touchUpdate(ctx,
		`UPDATE drafts SET display_name = ?, updated_at = ? WHERE id = ?`, name, id)
}

// UpdateTemplate switches the draft to another layout. Images beyond the
// new template's slot count are kept: the generator ignores overflow, and
// switching back restores them.
func (s *Store) UpdateTemplate(ctx context.Context, id string, templateID int) error {
	if _, err := layout.Lookup(templateID); err != nil {
		return err
	}
	return s.touchUpdate(ctx,
		`UPDATE drafts SET template_id = ?, updated_at = ? WHERE id = ?`, templateID, id)
}

// touchUpdate runs a three-placeholder UPDATE (value, updated_at, id) and
// maps a zero-row result to ErrNotFound.
func (s *Store) touchUpdate(ctx context.Context, query string, value interface{}, id string) error {
	res, err := s.db.ExecContext(ctx, query, value, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("updating draft: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating draft: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// SetImage binds an image URL to a slot. Replacing an occupied slot is
// delete+insert with a fresh image id; the slot index is what stays stable.
func (s *Store) SetImage(ctx context.Context, draftID string, slot int, url string) (*Image, error) {
	if slot < 0 || slot >= MaxImages {
		return nil, ErrSlotOutOfRange
	}
	if _, err := s.GetDraft(ctx, draftID); err != nil {
		return nil, err
	}

	img := Image{
		DraftID: draftID,
		Slot:    slot,
		ImageID: uuid.New().String(),
		URL:     url,
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO draft_images (draft_id, slot, image_id, url) VALUES (?, ?, ?, ?)
		 ON CONFLICT(draft_id, slot) DO UPDATE SET image_id = excluded.image_id, url = excluded.url`,
		img.DraftID, img.Slot, img.ImageID, img.URL,
	)
	if err != nil {
		return nil, fmt.Errorf("setting image: %w", err)
	}
	return &img, nil
}

// DeleteImage clears a slot. Deleting an already-empty slot is a no-op.
func (s *Store) DeleteImage(ctx context.Context, draftID string, slot int) error {
	if slot < 0 || slot >= MaxImages {
		return ErrSlotOutOfRange
	}
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM draft_images WHERE draft_id = ? AND slot = ?`, draftID, slot)
	if err != nil {
		return fmt.Errorf("deleting image: %w", err)
	}
	return nil
}

// ListImages returns the draft's images in slot order.
func (s *Store) ListImages(ctx context.Context, draftID string) ([]Image, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT draft_id, slot, image_id, url FROM draft_images WHERE draft_id = ? ORDER BY slot`, draftID)
	if err != nil {
		return nil, fmt.Errorf("querying images: %w", err)
	}
	defer rows.Close()

	var images []Image
	for rows.Next() {
		var img Image
		if err := rows.Scan(&img.DraftID, &img.Slot, &img.ImageID, &img.URL); err != nil {
			return nil, fmt.Errorf("scanning image: %w", err)
		}
		images = append(images, img)
	}
	return images, rows.Err()
}

// SlotURLs returns the image URLs as a positional list indexed by slot,
// with empty strings for unoccupied slots. This is the shape the template
// generator consumes.
func (s *Store) SlotURLs(ctx context.Context, draftID string) ([]string, error) {
	images, err := s.ListImages(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if len(images) == 0 {
		return nil, nil
	}
	urls := make([]string, images[len(images)-1].Slot+1)
	for _, img := range images {
		urls[img.Slot] = img.URL
	}
	return urls, nil
}

// UpsertNote writes the note for one calendar day, replacing any prior note
// for that date.
func (s *Store) UpsertNote(ctx context.Context, draftID, date, note string) (*CalendarNote, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, ErrBadDate
	}
	if _, err := s.GetDraft(ctx, draftID); err != nil {
		return nil, err
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO calendar_notes (draft_id, date, note) VALUES (?, ?, ?)
		 ON CONFLICT(draft_id, date) DO UPDATE SET note = excluded.note`,
		draftID, date, note,
	)
	if err != nil {
		return nil, fmt.Errorf("upserting note: %w", err)
	}
	return &CalendarNote{DraftID: draftID, Date: date, Note: note}, nil
}

// DeleteNote removes the note for one date, if any.
func (s *Store) DeleteNote(ctx context.Context, draftID, date string) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM calendar_notes WHERE draft_id = ? AND date = ?`, draftID, date)
	if err != nil {
		return fmt.Errorf("deleting note: %w", err)
	}
	return nil
}

// ListNotes returns the draft's calendar notes in date order.
func (s *Store) ListNotes(ctx context.Context, draftID string) ([]CalendarNote, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT draft_id, date, note FROM calendar_notes WHERE draft_id = ? ORDER BY date`, draftID)
	if err != nil {
		return nil, fmt.Errorf("querying notes: %w", err)
	}
	defer rows.Close()

	var notes []CalendarNote
	for rows.Next() {
		var n CalendarNote
		if err := rows.Scan(&n.DraftID, &n.Date, &n.Note); err != nil {
			return nil, fmt.Errorf("scanning note: %w", err)
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

// AddRecipient attaches a print recipient to the draft.
func (s *Store) AddRecipient(ctx context.Context, draftID, name, address string) (*Recipient, error) {
	if _, err := s.GetDraft(ctx, draftID); err != nil {
		return nil, err
	}
	rec := Recipient{
		ID:      uuid.New().String(),
		DraftID: draftID,
		Name:    name,
		Address: address,
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO recipients (id, draft_id, name, address) VALUES (?, ?, ?, ?)`,
		rec.ID, rec.DraftID, rec.Name, rec.Address,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting recipient: %w", err)
	}
	return &rec, nil
}

// ListRecipients returns the draft's recipients in insertion order.
func (s *Store) ListRecipients(ctx context.Context, draftID string) ([]Recipient, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, draft_id, name, address FROM recipients WHERE draft_id = ? ORDER BY created_at`, draftID)
	if err != nil {
		return nil, fmt.Errorf("querying recipients: %w", err)
	}
	defer rows.Close()

	var recs []Recipient
	for rows.Next() {
		var rec Recipient
		if err := rows.Scan(&rec.ID, &rec.DraftID, &rec.Name, &rec.Address); err != nil {
			return nil, fmt.Errorf("scanning recipient: %w", err)
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

// DeleteRecipient removes one recipient.
func (s *Store) DeleteRecipient(ctx context.Context, draftID, recipientID string) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM recipients WHERE draft_id = ? AND id = ?`, draftID, recipientID)
	if err != nil {
		return fmt.Errorf("deleting recipient: %w", err)
	}
	return nil
}

// Submit hands the draft off to print fulfillment and records the
// submission. The actual print integration is external; the store only
// persists the handoff.
func (s *Store) Submit(ctx context.Context, draftID string) (*Submission, error) {
	if _, err := s.GetDraft(ctx, draftID); err != nil {
		return nil, err
	}
	sub := Submission{
		ID:          uuid.New().String(),
		DraftID:     draftID,
		Status:      "queued",
		SubmittedAt: time.Now().UTC(),
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO submissions (id, draft_id, status, submitted_at) VALUES (?, ?, ?, ?)`,
		sub.ID, sub.DraftID, sub.Status, sub.SubmittedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting submission: %w", err)
	}
	return &sub, nil
}

// ListSubmissions returns the draft's submissions, newest first.
func (s *Store) ListSubmissions(ctx context.Context, draftID string) ([]Submission, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, draft_id, status, submitted_at FROM submissions WHERE draft_id = ? ORDER BY submitted_at DESC`, draftID)
	if err != nil {
		return nil, fmt.Errorf("querying submissions: %w", err)
	}
	defer rows.Close()

	var subs []Submission
	for rows.Next() {
		var sub Submission
		if err := rows.Scan(&sub.ID, &sub.DraftID, &sub.Status, &sub.SubmittedAt); err != nil {
			return nil, fmt.Errorf("scanning submission: %w", err)
		}
		subs = append(subs, sub)
	}
	return subs, rows.Err()
}
