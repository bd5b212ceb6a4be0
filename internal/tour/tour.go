// Package tour exposes stable anchors on the editing surface for an
// external guided-tour engine, and advances the tour when the user performs
// the step's action. The tour only consumes the editor's action
// notifications; it never drives editor state itself.
package tour

import (
	"sync"

	"github.com/monthlies/bulletin/internal/editor"
)

// Anchor identifies a stable, addressable region of the editing UI.
type Anchor string

const (
	AnchorPreview        Anchor = "preview-surface"
	AnchorActionImages   Anchor = "action-images"
	AnchorActionBlurb    Anchor = "action-blurb"
	AnchorActionTemplate Anchor = "action-template"
)

// Step is one tour stop: where to point and what to say.
type Step struct {
	Anchor Anchor `json:"anchor"`
	Text   string `json:"text"`
}

// DefaultSteps is the onboarding sequence for first-time editors. Every
// anchor here is one the editing surface actually produces: the preview
// anchor is satisfied by any click relayed from the document, the action
// anchors by the corresponding editor actions.
func DefaultSteps() []Step {
	return []Step{
		{Anchor: AnchorPreview, Text: "This is your bulletin. Click any photo or the text to edit it."},
		{Anchor: AnchorActionImages, Text: "Open the photo editor to replace or remove a picture."},
		{Anchor: AnchorActionBlurb, Text: "Write a short note for this month's page."},
		{Anchor: AnchorActionTemplate, Text: "Try a different layout for your page."},
	}
}

// Tour tracks progression through a step sequence for one session.
type Tour struct {
	mu      sync.Mutex
	steps   []Step
	current int
}

// New returns a tour positioned at the first step.
func New(steps []Step) *Tour {
	return &Tour{steps: steps}
}

// Current returns the active step, or false when the tour is finished
// (or was created with no steps).
func (t *Tour) Current() (Step, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.current >= len(t.steps) {
		return Step{}, false
	}
	return t.steps[t.current], true
}

// Advance moves to the next step when the performed action matches the
// active step's anchor. Non-matching actions leave the tour where it is.
func (t *Tour) Advance(a Anchor) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.current >= len(t.steps) {
		return false
	}
	if t.steps[t.current].Anchor != a {
		return false
	}
	t.current++
	return true
}

// Done reports whether every step has been completed.
func (t *Tour) Done() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.current >= len(t.steps)
}

// Attach subscribes the tour to a controller's action notifications.
func (t *Tour) Attach(ctrl *editor.Controller) {
	ctrl.Notify(func(m editor.Mode) {
		if a, ok := anchorForMode(m); ok {
			t.Advance(a)
		}
	})
}

func anchorForMode(m editor.Mode) (Anchor, bool) {
	switch m {
	case editor.ModeImages:
		return AnchorActionImages, true
	case editor.ModeBlurb:
		return AnchorActionBlurb, true
	case editor.ModeTemplate:
		return AnchorActionTemplate, true
	default:
		return "", false
	}
}
