package layout

// The four built-in layouts. Slot counts (6/2/5/6) are product
// configuration: changing a count means changing the preset's geometry
// here, nowhere else. The seed generator and the HTTP template listing
// both read these descriptors rather than carrying their own copies.
var presets = []TemplateDescriptor{
	{
		ID:        0,
		Name:      "grid-heavy",
		SlotCount: 6,
		// 3x2 photo grid on top, blurb band underneath.
		slots: []Rect{
			{X: 20, Y: 20, W: 150, H: 150},
			{X: 185, Y: 20, W: 150, H: 150},
			{X: 350, Y: 20, W: 150, H: 150},
			{X: 20, Y: 185, W: 150, H: 150},
			{X: 185, Y: 185, W: 150, H: 150},
			{X: 350, Y: 185, W: 150, H: 150},
		},
		blurb:  Rect{X: 20, Y: 360, W: 480, H: 220},
		byline: Rect{X: 20, Y: 604, W: 480, H: 40},
	},
	{
		ID:        1,
		Name:      "two-column-image-left",
		SlotCount: 2,
		// Two stacked photos on the left, text column on the right.
		slots: []Rect{
			{X: 20, Y: 20, W: 230, H: 290},
			{X: 20, Y: 330, W: 230, H: 290},
		},
		blurb:  Rect{X: 270, Y: 20, W: 230, H: 560},
		byline: Rect{X: 20, Y: 604, W: 480, H: 40},
	},
	{
		ID:        2,
		Name:      "two-column-image-right",
		SlotCount: 5,
		// Text column on the left, one wide photo plus a 2x2 grid right.
		slots: []Rect{
			{X: 270, Y: 20, W: 230, H: 220},
			{X: 270, Y: 260, W: 110, H: 130},
			{X: 390, Y: 260, W: 110, H: 130},
			{X: 270, Y: 410, W: 110, H: 130},
			{X: 390, Y: 410, W: 110, H: 130},
		},
		blurb:  Rect{X: 20, Y: 20, W: 230, H: 560},
		byline: Rect{X: 20, Y: 604, W: 480, H: 40},
	},
	{
		ID:        3,
		Name:      "mixed-asymmetric",
		SlotCount: 6,
		// Hero photo, a strip of five small photos, blurb band below.
		slots: []Rect{
			{X: 20, Y: 20, W: 480, H: 260},
			{X: 20, Y: 300, W: 88, H: 88},
			{X: 118, Y: 300, W: 88, H: 88},
			{X: 216, Y: 300, W: 88, H: 88},
			{X: 314, Y: 300, W: 88, H: 88},
			{X: 412, Y: 300, W: 88, H: 88},
		},
		blurb:  Rect{X: 20, Y: 408, W: 480, H: 176},
		byline: Rect{X: 20, Y: 604, W: 480, H: 40},
	},
}
