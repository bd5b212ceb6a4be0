package scale

import (
	"errors"
	"strings"
	"testing"

	"github.com/monthlies/bulletin/internal/layout"
)

func generate(t *testing.T) string {
	t.Helper()
	doc, err := layout.Generate(0, []string{"https://img.example/a.jpg"}, "hello", "name")
	if err != nil {
		t.Fatalf("layout.Generate: %v", err)
	}
	return doc
}

func TestScaleIdentity(t *testing.T) {
	doc := generate(t)

	out, err := Scale(doc, DefaultBaseWidth, DefaultBaseWidth)
	if err != nil {
		t.Fatalf("Scale: %v", err)
	}

	// Factor 1 leaves every geometry value alone.
	for _, want := range []string{
		"width:520px;height:680px",
		".slot-0{left:20px;top:20px;width:150px;height:150px}",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q at factor 1", want)
		}
	}
	if !strings.Contains(out, "html{font-size:16px}") {
		t.Error("root font-size not injected at base size")
	}
}

func TestScaleHalving(t *testing.T) {
	doc := generate(t)

	out, err := Scale(doc, DefaultBaseWidth/2, DefaultBaseWidth)
	if err != nil {
		t.Fatalf("Scale: %v", err)
	}

	for _, want := range []string{
		"width:260px;height:340px",
		// 185 halves to 92.5 which rounds to 93.
		".slot-1{left:93px;top:10px;width:75px;height:75px}",
		"html{font-size:8px}",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q at factor 0.5", want)
		}
	}
	if strings.Contains(out, "520px") {
		t.Error("base-size literal survived the rewrite")
	}
}

func TestScaleUpscales(t *testing.T) {
	out, err := Scale("<style></style><div style=\"width:100px\">", 1040, DefaultBaseWidth)
	if err != nil {
		t.Fatalf("Scale: %v", err)
	}
	if !strings.Contains(out, "width:200px") {
		t.Errorf("100px not doubled at factor 2: %q", out)
	}
	if !strings.Contains(out, "html{font-size:32px}") {
		t.Error("root font-size not doubled")
	}
}

func TestScaleNotMeasured(t *testing.T) {
	for _, w := range []int{0, -10} {
		if _, err := Scale("<style></style>", w, DefaultBaseWidth); !errors.Is(err, ErrNotMeasured) {
			t.Errorf("Scale(width=%d) error = %v, want ErrNotMeasured", w, err)
		}
		if _, err := Factor(w, DefaultBaseWidth); !errors.Is(err, ErrNotMeasured) {
			t.Errorf("Factor(width=%d) error = %v, want ErrNotMeasured", w, err)
		}
	}
}

func TestScaleDefaultBaseWidth(t *testing.T) {
	f, err := Factor(260, 0)
	if err != nil {
		t.Fatalf("Factor: %v", err)
	}
	if f != 0.5 {
		t.Errorf("Factor(260, 0) = %v, want 0.5 via DefaultBaseWidth", f)
	}
}

func TestScaleLeavesNonPixelText(t *testing.T) {
	in := "<style></style><p>took 300 ms, px is not a unit here</p>"
	out, err := Scale(in, 260, DefaultBaseWidth)
	if err != nil {
		t.Fatalf("Scale: %v", err)
	}
	if !strings.Contains(out, "took 300 ms") {
		t.Error("bare number without px suffix was rewritten")
	}
}

func TestScaleFontInjectedOnce(t *testing.T) {
	doc := generate(t)
	out, err := Scale(doc, 300, DefaultBaseWidth)
	if err != nil {
		t.Fatalf("Scale: %v", err)
	}
	if n := strings.Count(out, "html{font-size:"); n != 1 {
		t.Errorf("root font-size injected %d times, want 1", n)
	}
}
