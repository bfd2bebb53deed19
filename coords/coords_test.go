package coords

import (
	"math"
	"testing"

	"git.sr.ht/~whereswaldon/chartcore/axis"
)

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestRoundTrip(t *testing.T) {
	type testcase struct {
		name   string
		mapper Mapper
		x, y   float64
	}
	labels := []string{"a", "b", "c", "d"}
	for _, tc := range []testcase{
		{
			name: "linear",
			mapper: Mapper{
				X:    axis.Range{Lower: -10, Upper: 10},
				Y:    axis.Range{Lower: 0, Upper: 5},
				Size: Size{Width: 640, Height: 480},
			},
			x: 3.5,
			y: 1.25,
		},
		{
			name: "log",
			mapper: Mapper{
				X:    axis.Range{Lower: 0, Upper: 100},
				Y:    axis.Range{Lower: 1, Upper: 1e6, Scale: axis.Log},
				Size: Size{Width: 300, Height: 200},
			},
			x: 42,
			y: 3162.3,
		},
		{
			name: "category",
			mapper: Mapper{
				X:    axis.Range{Lower: 0, Upper: 3, Scale: axis.Category, Labels: labels},
				Y:    axis.Range{Lower: 0, Upper: 10},
				Size: Size{Width: 400, Height: 100},
			},
			x: 2,
			y: 7,
		},
		{
			name: "vertical",
			mapper: Mapper{
				X:           axis.Range{Lower: 0, Upper: 1},
				Y:           axis.Range{Lower: -1, Upper: 1},
				Size:        Size{Width: 200, Height: 800},
				Orientation: Vertical,
			},
			x: 0.25,
			y: -0.5,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			p := tc.mapper.DataToPixel(tc.x, tc.y)
			x, y := tc.mapper.PixelToData(p)
			if !near(x, tc.x) || !near(y, tc.y) {
				t.Errorf("expected (%g, %g), got (%g, %g) via %v", tc.x, tc.y, x, y, p)
			}
		})
	}
}

func TestDataToPixel(t *testing.T) {
	m := Mapper{
		X:    axis.Range{Lower: 0, Upper: 10},
		Y:    axis.Range{Lower: 0, Upper: 10},
		Size: Size{Width: 100, Height: 50},
	}
	if p := m.DataToPixel(0, 0); p != (Point{X: 0, Y: 50}) {
		t.Errorf("expected the origin in the bottom left corner, got %v", p)
	}
	if p := m.DataToPixel(10, 10); p != (Point{X: 100, Y: 0}) {
		t.Errorf("expected the upper bounds in the top right corner, got %v", p)
	}
	m.Orientation = Vertical
	if p := m.DataToPixel(10, 0); p != (Point{X: 0, Y: 0}) {
		t.Errorf("expected x to run upward when vertical, got %v", p)
	}
}

func TestCategorySlots(t *testing.T) {
	r := axis.Range{Lower: 0, Upper: 3, Scale: axis.Category, Labels: []string{"a", "b", "c", "d"}}
	if got := ValueToPixel(0, r, 400); got != 50 {
		t.Errorf("expected the first category centred in its slot at 50, got %g", got)
	}
	if got := ValueToPixel(3, r, 400); got != 350 {
		t.Errorf("expected the last category centred at 350, got %g", got)
	}
}

func TestSelectionRatios(t *testing.T) {
	size := Size{Width: 200, Height: 100}
	start, end := Point{X: 150, Y: 10}, Point{X: 50, Y: 60}
	lo, hi := SelectionRatios(start, end, size, axis.X, Horizontal)
	if lo != 0.25 || hi != 0.75 {
		t.Errorf("expected x ratios (0.25, 0.75), got (%g, %g)", lo, hi)
	}
	lo, hi = SelectionRatios(start, end, size, axis.Y, Horizontal)
	if !near(lo, 0.4) || !near(hi, 0.9) {
		t.Errorf("expected y ratios (0.4, 0.9), got (%g, %g)", lo, hi)
	}
	lo, hi = SelectionRatios(start, end, size, axis.Y, Vertical)
	if lo != 0.25 || hi != 0.75 {
		t.Errorf("expected vertical y ratios to come from screen x, got (%g, %g)", lo, hi)
	}
	lo, hi = SelectionRatios(Point{X: -20}, Point{X: 400}, size, axis.X, Horizontal)
	if lo != 0 || hi != 1 {
		t.Errorf("expected ratios clamped to [0, 1], got (%g, %g)", lo, hi)
	}
}

func TestNearest(t *testing.T) {
	points := []Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 4, Y: 3}, {X: 3, Y: 4}}
	at := func(i int) (Point, bool) { return points[i], true }

	idx, dist, ok := Nearest(Point{X: 0, Y: 0}, 6, len(points), at)
	if !ok || idx != 0 || dist != 0 {
		t.Errorf("expected exact hit on 0, got %d %g %v", idx, dist, ok)
	}
	idx, _, ok = Nearest(Point{X: 8, Y: 8}, 7, len(points), at)
	if !ok || idx != 2 {
		t.Errorf("expected the tie to go to the lower index 2, got %d %v", idx, ok)
	}
	if _, _, ok = Nearest(Point{X: 0, Y: 5}, 5, 1, at); ok {
		t.Errorf("expected a point exactly at the radius to miss")
	}
	skip := func(i int) (Point, bool) { return points[i], i != 0 }
	if idx, _, ok = Nearest(Point{X: 0, Y: 0}, 6, len(points), skip); !ok || idx != 2 {
		t.Errorf("expected skipped points to be ignored, got %d %v", idx, ok)
	}
}

func TestRatio(t *testing.T) {
	linear := axis.Range{Lower: 0.1, Upper: 0.7}
	log := axis.Range{Lower: 1, Upper: 100, Scale: axis.Log}
	for _, tc := range []struct {
		name   string
		r      axis.Range
		v      float64
		expect float64
	}{
		{name: "linear lower", r: linear, v: 0.1, expect: 0},
		{name: "linear middle", r: linear, v: 0.4, expect: 0.5},
		{name: "log geometric middle", r: log, v: 10, expect: 0.5},
		{name: "log upper", r: log, v: 100, expect: 1},
		{name: "flat range", r: axis.Range{Lower: 3, Upper: 3}, v: 3, expect: 0.5},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if got := Ratio(tc.v, tc.r); !near(got, tc.expect) {
				t.Errorf("expected %g, got %g", tc.expect, got)
			}
			if got := FromRatio(tc.expect, tc.r); !near(got, tc.v) {
				t.Errorf("expected %g back, got %g", tc.v, got)
			}
		})
	}
	if got := FromRatio(1, linear); got != 0.7 {
		t.Errorf("expected the exact upper bound, got %g", got)
	}
	if got := Ratio(0, log); !math.IsNaN(got) {
		t.Errorf("expected no position for 0 on a log axis, got %g", got)
	}
}
