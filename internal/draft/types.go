package draft

import (
	"errors"
	"time"
)

// MaxImages is the hard cap on images per draft, independent of any
// template's slot count.
const MaxImages = 9

// MaxBlurbLen bounds the blurb text, in runes.
const MaxBlurbLen = 500

var (
	ErrNotFound       = errors.New("draft: not found")
	ErrBlurbTooLong   = errors.New("draft: blurb exceeds maximum length")
	ErrSlotOutOfRange = errors.New("draft: image slot out of range")
	ErrBadDate        = errors.New("draft: note date must be YYYY-MM-DD")
)

// Draft is one user's in-progress monthly bulletin page.
type Draft struct {
	ID          string    `json:"id"`
	Owner       string    `json:"owner"`
	DisplayName string    `json:"display_name"`
	Blurb       string    `json:"blurb"`
	TemplateID  int       `json:"template_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Image is one uploaded picture bound to a slot index. Images are never
// mutated in place: replacing a slot deletes the old row and inserts a new
// one with a fresh image id at the same slot.
type Image struct {
	DraftID string `json:"draft_id"`
	Slot    int    `json:"slot"`
	ImageID string `json:"image_id"`
	URL     string `json:"url"`
}

// CalendarNote is a short note attached to one calendar day. At most one
// note exists per date; writing to an already-noted date replaces it.
type CalendarNote struct {
	DraftID string `json:"draft_id"`
	Date    string `json:"date"` // YYYY-MM-DD
	Note    string `json:"note"`
}

// Recipient is a friend or family member the printed bulletin is sent to.
type Recipient struct {
	ID      string `json:"id"`
	DraftID string `json:"draft_id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

// Submission records a handoff to print fulfillment.
type Submission struct {
	ID          string    `json:"id"`
	DraftID     string    `json:"draft_id"`
	Status      string    `json:"status"`
	SubmittedAt time.Time `json:"submitted_at"`
}
