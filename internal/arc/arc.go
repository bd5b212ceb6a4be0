// Package arc computes the radial geometry of the contextual action menu:
// given a click point and the viewport, it arranges n buttons along a
// circular arc that avoids the viewport edges, plus a close control at the
// click origin. The host ships the resulting positions (and stagger delays)
// to the sandboxed document over the relay; the sandbox only animates them.
package arc

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// Direction is the vertical half-plane the arc opens into.
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)

// Config holds the arc geometry parameters, in the coordinate space of the
// rendered document (i.e. post-scaling CSS pixels).
type Config struct {
	Radius     float64 // arc radius from the click origin to button centers
	ButtonSize float64 // button diameter
	SpreadDeg  float64 // total angular spread of the arc
	BiasDeg    float64 // base-angle shift applied when an edge is tight
}

// DefaultConfig returns the stock menu geometry.
func DefaultConfig() Config {
	return Config{
		Radius:     80,
		ButtonSize: 44,
		SpreadDeg:  100,
		BiasDeg:    30,
	}
}

// Position is a button center offset relative to the click origin.
// Positive Y is downward, matching screen coordinates.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Layout is the computed arrangement for one menu invocation.
type Layout struct {
	Direction Direction  `json:"direction"`
	Positions []Position `json:"positions"`
	// Close is the dismiss control, always at the click origin regardless
	// of direction or bias.
	Close Position `json:"close"`
}

// ErrNoButtons is returned when Compute is asked for zero or fewer buttons.
var ErrNoButtons = errors.New("arc: button count must be positive")

// Compute arranges buttonCount action buttons around the click point.
//
// Direction: up is preferred; down is used when the space above cannot fit
// radius+buttonSize but the space below can. When neither fits, the roomier
// half-plane wins. Horizontal bias: when the space to the left or right of
// the click is tighter than radius+buttonSize, the arc's base angle shifts
// toward the roomier side. The bias is mirrored when the direction is down,
// because the arc geometry flips vertically.
func Compute(clickX, clickY, viewportW, viewportH float64, buttonCount int, cfg Config) (Layout, error) {
	if buttonCount <= 0 {
		return Layout{}, ErrNoButtons
	}
	if viewportW <= 0 || viewportH <= 0 {
		return Layout{}, fmt.Errorf("arc: invalid viewport %gx%g", viewportW, viewportH)
	}

	needed := cfg.Radius + cfg.ButtonSize

	spaceAbove := clickY
	spaceBelow := viewportH - clickY
	dir := DirectionUp
	switch {
	case spaceAbove >= needed:
		// Up fits; up wins even when down also fits.
	case spaceBelow >= needed:
		dir = DirectionDown
	case spaceBelow > spaceAbove:
		dir = DirectionDown
	}

	spaceLeft := clickX
	spaceRight := viewportW - clickX
	bias := 0.0
	switch {
	case spaceLeft < needed && spaceRight >= spaceLeft:
		bias = cfg.BiasDeg
	case spaceRight < needed && spaceLeft > spaceRight:
		bias = -cfg.BiasDeg
	}

	// Angles follow screen coordinates: 0 deg points right, positive
	// angles rotate downward. A positive bias swings the arc rightward
	// for "up"; for "down" the sign flips so the arc still swings away
	// from the tight edge.
	var center float64
	if dir == DirectionUp {
		center = -90 + bias
	} else {
		center = 90 - bias
	}

	positions := make([]Position, buttonCount)
	if buttonCount == 1 {
		positions[0] = pointAt(center, cfg.Radius)
	} else {
		start := center - cfg.SpreadDeg/2
		step := cfg.SpreadDeg / float64(buttonCount-1)
		for i := 0; i < buttonCount; i++ {
			positions[i] = pointAt(start+float64(i)*step, cfg.Radius)
		}
	}

	return Layout{Direction: dir, Positions: positions, Close: Position{}}, nil
}

func pointAt(angleDeg, radius float64) Position {
	rad := angleDeg * math.Pi / 180
	return Position{
		X: round2(radius * math.Cos(rad)),
		Y: round2(radius * math.Sin(rad)),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Stagger returns the per-button entry delays: index*step for each of the
// n buttons. Exit animations use the same schedule reversed. All delays are
// bounded; cancellation is owned by whoever schedules them.
func Stagger(n int, step time.Duration) []time.Duration {
	if n <= 0 {
		return nil
	}
	out := make([]time.Duration, n)
	for i := range out {
		out[i] = time.Duration(i) * step
	}
	return out
}
