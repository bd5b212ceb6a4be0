// Package export writes a print-ready bundle for a draft: the bulletin page
// itself at the base design size, plus a calendar-notes sheet rendered from
// markdown. The bundle is what gets handed to the print fulfillment
// partner; no scaling is applied since print works from the base geometry.
package export

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/monthlies/bulletin/internal/draft"
	"github.com/monthlies/bulletin/internal/layout"
	"github.com/monthlies/bulletin/internal/progress"
)

// Exporter renders drafts into print bundles.
type Exporter struct {
	store *draft.Store
	md    goldmark.Markdown
}

// New creates an exporter over the given store.
func New(store *draft.Store) *Exporter {
	return &Exporter{
		store: store,
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
		),
	}
}

// Export writes the bundle for one draft into outDir and returns the
// number of files written.
func (e *Exporter) Export(ctx context.Context, draftID, outDir string, rep progress.Reporter) (int, error) {
	d, err := e.store.GetDraft(ctx, draftID)
	if err != nil {
		return 0, err
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return 0, fmt.Errorf("creating export directory: %w", err)
	}

	rep.Start(2)

	// 1. The bulletin page, unscaled.
	urls, err := e.store.SlotURLs(ctx, draftID)
	if err != nil {
		return 0, err
	}
	page, err := layout.Generate(d.TemplateID, urls, d.Blurb, d.DisplayName)
	if err != nil {
		return 0, err
	}
	if err := os.WriteFile(filepath.Join(outDir, "page.html"), []byte(page), 0o644); err != nil {
		return 0, fmt.Errorf("writing page: %w", err)
	}
	rep.Update(1, "page.html")

	// 2. The calendar-notes sheet.
	notes, err := e.store.ListNotes(ctx, draftID)
	if err != nil {
		return 1, err
	}
	sheet, err := e.notesSheet(d, notes)
	if err != nil {
		return 1, err
	}
	if err := os.WriteFile(filepath.Join(outDir, "notes.html"), []byte(sheet), 0o644); err != nil {
		return 1, fmt.Errorf("writing notes: %w", err)
	}
	rep.Update(2, "notes.html")

	rep.Finish()
	return 2, nil
}

// notesSheet renders the calendar notes as a markdown document and converts
// it to a standalone HTML page.
func (e *Exporter) notesSheet(d *draft.Draft, notes []draft.CalendarNote) (string, error) {
	var md strings.Builder
	fmt.Fprintf(&md, "# Calendar notes: %s\n\n", strings.ToLower(d.DisplayName))
	if len(notes) == 0 {
		md.WriteString("_No notes this month._\n")
	}
	for _, n := range notes {
		fmt.Fprintf(&md, "- **%s**: %s\n", n.Date, n.Note)
	}

	var body bytes.Buffer
	if err := e.md.Convert([]byte(md.String()), &body); err != nil {
		return "", fmt.Errorf("rendering notes: %w", err)
	}

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", html.EscapeString("notes: "+strings.ToLower(d.DisplayName)))
	b.WriteString("<style>body{font-family:Georgia,serif;max-width:640px;margin:40px auto;color:#3a362f}</style>\n")
	b.WriteString("</head>\n<body>\n")
	b.Write(body.Bytes())
	b.WriteString("</body>\n</html>\n")
	return b.String(), nil
}
