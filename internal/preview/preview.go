// Package preview renders bulletin drafts into sandboxed documents. Every
// render regenerates the full document from current draft state. There is
// no incremental patching, so a stale in-flight render can never overwrite
// a newer one, and the embedded script's state resets with each write.
package preview

import (
	"context"

	"github.com/monthlies/bulletin/internal/draft"
	"github.com/monthlies/bulletin/internal/layout"
	"github.com/monthlies/bulletin/internal/scale"
)

// Renderer composes the template generator and the responsive scaler over
// the draft store.
type Renderer struct {
	store     *draft.Store
	baseWidth int
}

// NewRenderer creates a preview renderer. baseWidthPx is the design width
// container measurements are scaled against; zero or less means the
// generator's own base width.
func NewRenderer(store *draft.Store, baseWidthPx int) *Renderer {
	if baseWidthPx <= 0 {
		baseWidthPx = layout.BaseWidth
	}
	return &Renderer{store: store, baseWidth: baseWidthPx}
}

// Render generates the draft's document and scales it to widthPx. A width
// of zero or less means the container has not been measured yet; the
// document is returned unscaled at the base size rather than collapsed by
// a zero scale factor.
func (p *Renderer) Render(ctx context.Context, draftID string, widthPx int) (string, error) {
	d, err := p.store.GetDraft(ctx, draftID)
	if err != nil {
		return "", err
	}
	urls, err := p.store.SlotURLs(ctx, draftID)
	if err != nil {
		return "", err
	}

	doc, err := layout.Generate(d.TemplateID, urls, d.Blurb, d.DisplayName)
	if err != nil {
		return "", err
	}

	if widthPx <= 0 {
		return doc, nil
	}
	return scale.Scale(doc, widthPx, p.baseWidth)
}
