package layout

import "errors"

// ErrInvalidTemplate is returned when a template id matches no preset.
// Template ids are internal enumerations, so this surfaces to the caller
// rather than falling back to a default layout.
var ErrInvalidTemplate = errors.New("layout: invalid template id")

// BaseWidth and BaseHeight are the design dimensions in pixels. Generated
// documents carry absolute pixel geometry at this size; internal/scale
// rewrites the values for the actual container width.
const (
	BaseWidth  = 520
	BaseHeight = 680
)

// Rect is one region's geometry at the base design size.
type Rect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

// TemplateDescriptor describes one fixed bulletin layout. Descriptors are
// immutable build-time data, not user input.
type TemplateDescriptor struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	SlotCount int    `json:"slot_count"`

	slots  []Rect
	blurb  Rect
	byline Rect
}

// Slots returns a copy of the image slot geometry in slot-index order.
func (t TemplateDescriptor) Slots() []Rect {
	out := make([]Rect, len(t.slots))
	copy(out, t.slots)
	return out
}

// Templates returns all built-in layouts in id order.
func Templates() []TemplateDescriptor {
	out := make([]TemplateDescriptor, len(presets))
	copy(out, presets)
	return out
}

// Lookup returns the descriptor for the given template id.
func Lookup(id int) (TemplateDescriptor, error) {
	if id < 0 || id >= len(presets) {
		return TemplateDescriptor{}, ErrInvalidTemplate
	}
	return presets[id], nil
}
