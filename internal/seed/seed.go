// Package seed populates the store with demo drafts so the preview and
// editing surfaces have something to show in development. Image counts per
// draft come from the layout registry, so a preset change automatically
// flows through.
package seed

import (
	"context"
	"fmt"

	"github.com/monthlies/bulletin/internal/draft"
	"github.com/monthlies/bulletin/internal/layout"
	"github.com/monthlies/bulletin/internal/progress"
)

var demoNames = []string{
	"The Hendersons", "Marta & June", "Familie Okafor", "The Reyes Crew",
}

var demoBlurbs = []string{
	"August flew by! We spent two weeks at the lake house and the kids finally learned to swim.",
	"A quiet month at home. The garden gave us more tomatoes than we know what to do with.",
	"We celebrated grandpa's 80th with the whole family together for the first time in years.",
	"New school year, new city. The move was chaos but we are settling in nicely.",
}

var demoNotes = []struct {
	day  string
	note string
}{
	{"2026-08-03", "First day at the lake"},
	{"2026-08-15", "Farmers market haul"},
	{"2026-08-22", "Grandpa's birthday dinner"},
}

// Seeder creates demo drafts.
type Seeder struct {
	store *draft.Store
}

// New creates a seeder over the given store.
func New(store *draft.Store) *Seeder {
	return &Seeder{store: store}
}

// Seed creates n demo drafts cycling through the templates and returns
// their ids. Each draft gets exactly its template's slot count of
// placeholder images, a blurb, calendar notes and one recipient.
func (s *Seeder) Seed(ctx context.Context, n int, rep progress.Reporter) ([]string, error) {
	templates := layout.Templates()
	rep.Start(n)

	var ids []string
	for i := 0; i < n; i++ {
		tpl := templates[i%len(templates)]
		name := demoNames[i%len(demoNames)]

		d, err := s.store.CreateDraft(ctx, "demo", name, tpl.ID)
		if err != nil {
			return ids, fmt.Errorf("creating demo draft %d: %w", i, err)
		}

		if err := s.store.UpdateBlurb(ctx, d.ID, demoBlurbs[i%len(demoBlurbs)]); err != nil {
			return ids, fmt.Errorf("seeding blurb: %w", err)
		}

		for slot := 0; slot < tpl.SlotCount; slot++ {
			url := fmt.Sprintf("https://picsum.photos/seed/%s-%d/600/400", d.ID[:8], slot)
			if _, err := s.store.SetImage(ctx, d.ID, slot, url); err != nil {
				return ids, fmt.Errorf("seeding image %d: %w", slot, err)
			}
		}

		for _, dn := range demoNotes {
			if _, err := s.store.UpsertNote(ctx, d.ID, dn.day, dn.note); err != nil {
				return ids, fmt.Errorf("seeding note: %w", err)
			}
		}

		if _, err := s.store.AddRecipient(ctx, d.ID, "Grandma Ruth", "14 Orchard Lane"); err != nil {
			return ids, fmt.Errorf("seeding recipient: %w", err)
		}

		ids = append(ids, d.ID)
		rep.Update(i+1, fmt.Sprintf("%s (%s)", name, tpl.Name))
	}

	rep.Finish()
	return ids, nil
}
