// Package scale resizes generated bulletin documents proportionally by
// rewriting their absolute pixel geometry. It is a textual transform over
// the generator's output, not a layout engine: callers must always feed it
// freshly generated markup, never markup that has already been scaled.
package scale

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// DefaultBaseWidth is the generator's design width in pixels.
const DefaultBaseWidth = 520

// baseFontSize is the root font size at scale factor 1. Template text uses
// rem units, so injecting a scaled root size resizes all text with it.
const baseFontSize = 16

// ErrNotMeasured is returned when the container width is zero or negative,
// i.e. the host has not measured its container yet. Callers should render
// unscaled or defer until a real width is known; propagating a zero scale
// factor would collapse the whole layout.
var ErrNotMeasured = errors.New("scale: container width not measured")

var pxLiteral = regexp.MustCompile(`(\d+)px`)

// Scale rewrites every literal pixel magnitude in markup by the factor
// containerWidthPx/baseWidthPx (rounded to integers) and injects a matching
// root font-size declaration. A baseWidthPx of zero or less means
// DefaultBaseWidth.
func Scale(markup string, containerWidthPx, baseWidthPx int) (string, error) {
	if containerWidthPx <= 0 {
		return "", ErrNotMeasured
	}
	if baseWidthPx <= 0 {
		baseWidthPx = DefaultBaseWidth
	}

	factor := float64(containerWidthPx) / float64(baseWidthPx)

	out := pxLiteral.ReplaceAllStringFunc(markup, func(m string) string {
		n, err := strconv.Atoi(strings.TrimSuffix(m, "px"))
		if err != nil {
			return m
		}
		return strconv.Itoa(int(math.Round(float64(n)*factor))) + "px"
	})

	// The root font-size is injected after the rewrite so it is not
	// itself rescaled.
	root := fmt.Sprintf("html{font-size:%dpx}\n", int(math.Round(baseFontSize*factor)))
	out = strings.Replace(out, "<style>", "<style>"+root, 1)

	return out, nil
}

// Factor returns the scale factor for the given widths, or an error when
// the container width is not yet measured.
func Factor(containerWidthPx, baseWidthPx int) (float64, error) {
	if containerWidthPx <= 0 {
		return 0, ErrNotMeasured
	}
	if baseWidthPx <= 0 {
		baseWidthPx = DefaultBaseWidth
	}
	return float64(containerWidthPx) / float64(baseWidthPx), nil
}
