package seed

import (
	"context"
	"testing"

	"github.com/monthlies/bulletin/internal/db"
	"github.com/monthlies/bulletin/internal/draft"
	"github.com/monthlies/bulletin/internal/layout"
	"github.com/monthlies/bulletin/internal/progress"
)

func newTestSeeder(t *testing.T) (*Seeder, *draft.Store) {
	t.Helper()
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("opening memory db: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	store := draft.NewStore(database)
	return New(store), store
}

func TestSeedCyclesTemplates(t *testing.T) {
	seeder, store := newTestSeeder(t)
	ctx := context.Background()

	ids, err := seeder.Seed(ctx, 5, progress.Silent{})
	if err != nil {
		t.Fatalf("Seed: %v", err)
	}
	if len(ids) != 5 {
		t.Fatalf("ids = %d, want 5", len(ids))
	}

	templates := layout.Templates()
	for i, id := range ids {
		d, err := store.GetDraft(ctx, id)
		if err != nil {
			t.Fatalf("GetDraft(%s): %v", id, err)
		}

		wantTpl := templates[i%len(templates)]
		if d.TemplateID != wantTpl.ID {
			t.Errorf("draft %d template = %d, want %d", i, d.TemplateID, wantTpl.ID)
		}
		if d.Blurb == "" {
			t.Errorf("draft %d has no blurb", i)
		}

		images, err := store.ListImages(ctx, id)
		if err != nil {
			t.Fatalf("ListImages: %v", err)
		}
		if len(images) != wantTpl.SlotCount {
			t.Errorf("draft %d images = %d, want the template's %d slots", i, len(images), wantTpl.SlotCount)
		}

		notes, err := store.ListNotes(ctx, id)
		if err != nil {
			t.Fatalf("ListNotes: %v", err)
		}
		if len(notes) != 3 {
			t.Errorf("draft %d notes = %d, want 3", i, len(notes))
		}

		recs, err := store.ListRecipients(ctx, id)
		if err != nil {
			t.Fatalf("ListRecipients: %v", err)
		}
		if len(recs) != 1 {
			t.Errorf("draft %d recipients = %d, want 1", i, len(recs))
		}
	}
}

func TestSeedZero(t *testing.T) {
	seeder, _ := newTestSeeder(t)
	ids, err := seeder.Seed(context.Background(), 0, progress.Silent{})
	if err != nil {
		t.Fatalf("Seed: %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("ids = %d, want 0", len(ids))
	}
}
