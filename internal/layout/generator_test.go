package layout

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestGenerateSlotPopulation(t *testing.T) {
	for _, tpl := range Templates() {
		for _, n := range []int{0, 1, tpl.SlotCount, tpl.SlotCount + 5} {
			t.Run(fmt.Sprintf("%s/%d-images", tpl.Name, n), func(t *testing.T) {
				images := make([]string, n)
				for i := range images {
					images[i] = fmt.Sprintf("https://img.example/%d.jpg", i)
				}

				doc, err := Generate(tpl.ID, images, "hello", "The Testers")
				if err != nil {
					t.Fatalf("Generate: %v", err)
				}

				populated := strings.Count(doc, "<img ")
				want := n
				if want > tpl.SlotCount {
					want = tpl.SlotCount
				}
				if populated != want {
					t.Errorf("populated slots = %d, want %d", populated, want)
				}

				empty := strings.Count(doc, `class="slot slot-`) - populated
				if empty != tpl.SlotCount-want {
					t.Errorf("empty slots = %d, want %d", empty, tpl.SlotCount-want)
				}
			})
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	images := []string{"https://img.example/a.jpg", "https://img.example/b.jpg"}

	first, err := Generate(1, images, "a blurb", "Name")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	second, err := Generate(1, images, "a blurb", "Name")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if first != second {
		t.Error("identical inputs produced different markup")
	}
}

func TestGenerateInvalidTemplate(t *testing.T) {
	for _, id := range []int{-1, 4, 99} {
		if _, err := Generate(id, nil, "", ""); !errors.Is(err, ErrInvalidTemplate) {
			t.Errorf("Generate(%d) error = %v, want ErrInvalidTemplate", id, err)
		}
	}
}

func TestGenerateEscapesText(t *testing.T) {
	doc, err := Generate(0, []string{`https://img.example/a.jpg?x="1"&y=2`}, `<b>hi & "there"</b>`, "Family")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if strings.Contains(doc, "<b>hi") {
		t.Error("blurb embedded without escaping")
	}
	if !strings.Contains(doc, "&lt;b&gt;hi &amp; &#34;there&#34;&lt;/b&gt;") {
		t.Error("escaped blurb not found in document")
	}
	if !strings.Contains(doc, "&amp;y=2") {
		t.Error("image URL not escaped")
	}
}

func TestGenerateLowercasesDisplayName(t *testing.T) {
	doc, err := Generate(0, nil, "", "The HENDERSONS")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !strings.Contains(doc, `<div class="byline">the hendersons</div>`) {
		t.Error("display name not lower-cased in byline")
	}
}

func TestGenerateSlotIndexStable(t *testing.T) {
	// A partial image list still binds each image to its own slot index.
	doc, err := Generate(0, []string{"https://img.example/only.jpg"}, "", "")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !strings.Contains(doc, `class="slot slot-0" data-slot="0"`) {
		t.Error("slot 0 not populated")
	}
	if !strings.Contains(doc, `class="slot slot-1 empty" data-slot="1"`) {
		t.Error("slot 1 not rendered as empty placeholder")
	}
}

func TestLookup(t *testing.T) {
	tpl, err := Lookup(2)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if tpl.Name != "two-column-image-right" || tpl.SlotCount != 5 {
		t.Errorf("Lookup(2) = %q/%d, want two-column-image-right/5", tpl.Name, tpl.SlotCount)
	}

	if _, err := Lookup(7); !errors.Is(err, ErrInvalidTemplate) {
		t.Errorf("Lookup(7) error = %v, want ErrInvalidTemplate", err)
	}
}

func TestTemplateSlotCounts(t *testing.T) {
	want := []int{6, 2, 5, 6}
	templates := Templates()
	if len(templates) != len(want) {
		t.Fatalf("template count = %d, want %d", len(templates), len(want))
	}
	for i, tpl := range templates {
		if tpl.SlotCount != want[i] {
			t.Errorf("template %d slot count = %d, want %d", i, tpl.SlotCount, want[i])
		}
		if len(tpl.Slots()) != tpl.SlotCount {
			t.Errorf("template %d geometry has %d rects for %d slots", i, len(tpl.Slots()), tpl.SlotCount)
		}
	}
}
