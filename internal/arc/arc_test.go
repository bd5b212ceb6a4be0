package arc

import (
	"errors"
	"math"
	"testing"
	"time"
)

func TestComputeDirectionUpPreferred(t *testing.T) {
	// Plenty of room both ways: up wins.
	l, err := Compute(400, 300, 800, 600, 3, DefaultConfig())
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if l.Direction != DirectionUp {
		t.Errorf("direction = %s, want up", l.Direction)
	}
	for i, p := range l.Positions {
		if p.Y >= 0 {
			t.Errorf("position %d Y = %v, want negative (above origin)", i, p.Y)
		}
	}
}

func TestComputeDirectionDownNearTop(t *testing.T) {
	// 50px above the click is less than radius+buttonSize (124).
	l, err := Compute(400, 50, 800, 600, 3, DefaultConfig())
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if l.Direction != DirectionDown {
		t.Errorf("direction = %s, want down", l.Direction)
	}
	for i, p := range l.Positions {
		if p.Y <= 0 {
			t.Errorf("position %d Y = %v, want positive (below origin)", i, p.Y)
		}
	}
}

func TestComputeRoomierHalfPlaneWhenNeitherFits(t *testing.T) {
	cfg := DefaultConfig()

	l, err := Compute(400, 40, 800, 100, 3, cfg)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if l.Direction != DirectionDown {
		t.Errorf("direction = %s, want down (60 below > 40 above)", l.Direction)
	}

	l, err = Compute(400, 60, 800, 100, 3, cfg)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if l.Direction != DirectionUp {
		t.Errorf("direction = %s, want up (60 above >= 40 below)", l.Direction)
	}
}

func meanX(ps []Position) float64 {
	var sum float64
	for _, p := range ps {
		sum += p.X
	}
	return sum / float64(len(ps))
}

func TestComputeBiasMirrorsWithDirection(t *testing.T) {
	cfg := DefaultConfig()

	// Clicks hugging the left edge: the arc must lean rightward whether it
	// opens up or down.
	up, err := Compute(30, 500, 800, 600, 3, cfg)
	if err != nil {
		t.Fatalf("Compute up: %v", err)
	}
	down, err := Compute(30, 50, 800, 600, 3, cfg)
	if err != nil {
		t.Fatalf("Compute down: %v", err)
	}
	if up.Direction != DirectionUp || down.Direction != DirectionDown {
		t.Fatalf("directions = %s/%s, want up/down", up.Direction, down.Direction)
	}
	if m := meanX(up.Positions); m <= 0 {
		t.Errorf("up arc mean X = %v, want positive (leaning away from left edge)", m)
	}
	if m := meanX(down.Positions); m <= 0 {
		t.Errorf("down arc mean X = %v, want positive (leaning away from left edge)", m)
	}
	// The flip is an exact mirror: same X offsets in reverse order.
	for i := range up.Positions {
		j := len(down.Positions) - 1 - i
		if math.Abs(up.Positions[i].X-down.Positions[j].X) > 0.01 {
			t.Errorf("up X[%d]=%v not mirrored by down X[%d]=%v",
				i, up.Positions[i].X, j, down.Positions[j].X)
		}
	}

	// And symmetrically for the right edge.
	right, err := Compute(770, 500, 800, 600, 3, cfg)
	if err != nil {
		t.Fatalf("Compute right: %v", err)
	}
	if m := meanX(right.Positions); m >= 0 {
		t.Errorf("right-edge arc mean X = %v, want negative", m)
	}
}

func TestComputeSingleButton(t *testing.T) {
	l, err := Compute(400, 300, 800, 600, 1, DefaultConfig())
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if len(l.Positions) != 1 {
		t.Fatalf("positions = %d, want 1", len(l.Positions))
	}
	p := l.Positions[0]
	if p.X != 0 || p.Y != -80 {
		t.Errorf("single button at (%v,%v), want (0,-80) straight up", p.X, p.Y)
	}
}

func TestComputeCloseAtOrigin(t *testing.T) {
	for _, y := range []float64{50, 500} {
		l, err := Compute(30, y, 800, 600, 4, DefaultConfig())
		if err != nil {
			t.Fatalf("Compute: %v", err)
		}
		if l.Close.X != 0 || l.Close.Y != 0 {
			t.Errorf("close control at (%v,%v), want origin", l.Close.X, l.Close.Y)
		}
	}
}

func TestComputeSpreadEndpoints(t *testing.T) {
	cfg := DefaultConfig()
	l, err := Compute(400, 300, 800, 600, 5, cfg)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	// No bias, up: center -90, spread 100 means endpoints at -140 and -40.
	wantFirst := Position{X: round2(80 * math.Cos(-140*math.Pi/180)), Y: round2(80 * math.Sin(-140*math.Pi/180))}
	wantLast := Position{X: round2(80 * math.Cos(-40*math.Pi/180)), Y: round2(80 * math.Sin(-40*math.Pi/180))}
	if l.Positions[0] != wantFirst {
		t.Errorf("first position = %+v, want %+v", l.Positions[0], wantFirst)
	}
	if l.Positions[4] != wantLast {
		t.Errorf("last position = %+v, want %+v", l.Positions[4], wantLast)
	}
}

func TestComputeErrors(t *testing.T) {
	if _, err := Compute(10, 10, 800, 600, 0, DefaultConfig()); !errors.Is(err, ErrNoButtons) {
		t.Errorf("zero buttons error = %v, want ErrNoButtons", err)
	}
	if _, err := Compute(10, 10, 0, 600, 2, DefaultConfig()); err == nil {
		t.Error("zero-width viewport accepted")
	}
}

func TestStagger(t *testing.T) {
	delays := Stagger(3, 40*time.Millisecond)
	want := []time.Duration{0, 40 * time.Millisecond, 80 * time.Millisecond}
	if len(delays) != len(want) {
		t.Fatalf("len = %d, want %d", len(delays), len(want))
	}
	for i := range want {
		if delays[i] != want[i] {
			t.Errorf("delay %d = %v, want %v", i, delays[i], want[i])
		}
	}

	if Stagger(0, time.Millisecond) != nil {
		t.Error("Stagger(0) should return nil")
	}
}
