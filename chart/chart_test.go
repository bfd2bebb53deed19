package chart

import (
	"errors"
	"testing"

	"git.sr.ht/~whereswaldon/chartcore/axis"
	"git.sr.ht/~whereswaldon/chartcore/compress"
	"git.sr.ht/~whereswaldon/chartcore/coords"
	"git.sr.ht/~whereswaldon/chartcore/series"
)

func newLineChart(t *testing.T, y ...float64) *Chart {
	t.Helper()
	c := New()
	if _, err := c.CreateSeries(series.Line, "s1"); err != nil {
		t.Fatal(err)
	}
	if err := c.SetYValues("s1", y); err != nil {
		t.Fatal(err)
	}
	return c
}

func expectRange(t *testing.T, c *Chart, dir axis.Direction, id int, lower, upper float64) {
	t.Helper()
	r, err := c.Range(dir, id)
	if err != nil {
		t.Fatal(err)
	}
	if r.Lower != lower || r.Upper != upper {
		t.Errorf("%s axis %d: expected [%g, %g], got %v", dir, id, lower, upper, r)
	}
}

func TestAutoScale(t *testing.T) {
	c := newLineChart(t, 3.0, 2.1, 1.9, 2.3, 3.2)
	if err := c.AutoScaleAll(); err != nil {
		t.Fatal(err)
	}
	expectRange(t, c, axis.X, 0, 0, 4)
	expectRange(t, c, axis.Y, 0, 1.9, 3.2)
}

func TestAutoScaleIgnoresHiddenSeries(t *testing.T) {
	c := newLineChart(t, 1, 2)
	hidden, _ := c.CreateSeries(series.Line, "s2")
	_ = hidden.SetYValues([]float64{-100, 100})
	hidden.SetVisible(false)
	if err := c.AutoScale(axis.Y, 0); err != nil {
		t.Fatal(err)
	}
	expectRange(t, c, axis.Y, 0, 1, 2)
}

func TestAutoScaleLog(t *testing.T) {
	c := newLineChart(t, -1, 0.5, 10)
	if err := c.SetRange(axis.Y, 0, 1, 10); err != nil {
		t.Fatal(err)
	}
	if err := c.SetScale(axis.Y, 0, axis.Log); err != nil {
		t.Fatal(err)
	}
	if err := c.AutoScale(axis.Y, 0); err != nil {
		t.Fatal(err)
	}
	expectRange(t, c, axis.Y, 0, 0.5, 10)
}

func TestSetScaleAndFit(t *testing.T) {
	c := newLineChart(t, -1, 0.5, 10)
	_ = c.AutoScaleAll()
	if err := c.SetScale(axis.Y, 0, axis.Log); !errors.Is(err, axis.ErrInvalidRange) {
		t.Errorf("expected SetScale to reject [-1, 10] as log, got %v", err)
	}
	if err := c.SetScaleAndFit(axis.Y, 0, axis.Log); err != nil {
		t.Fatal(err)
	}
	expectRange(t, c, axis.Y, 0, 0.5, 10)
	if err := c.SetScaleAndFit(axis.Y, 0, axis.Linear); err != nil {
		t.Fatal(err)
	}
	expectRange(t, c, axis.Y, 0, -1, 10)
}

func TestRenderPoints(t *testing.T) {
	c := newLineChart(t, 3.0, 2.1, 1.9, 2.3, 3.2)
	s := c.Series("s1")
	if pts, _ := s.RenderPoints(); len(pts) != 0 {
		t.Errorf("expected nothing to be compressed before the plot has a size, got %v", pts)
	}
	_ = c.AutoScaleAll()
	c.OnPlotAreaResized(400, 300)
	pts, idx := s.RenderPoints()
	if len(pts) != 5 || len(idx) != 5 {
		t.Fatalf("expected all 5 points, got %v", pts)
	}
	if pts[2] != (compress.Point{X: 2, Y: 1.9}) {
		t.Errorf("expected (2, 1.9), got %v", pts[2])
	}
	if err := c.SetYValues("s1", []float64{1, 2}); err != nil {
		t.Fatal(err)
	}
	if pts, _ := s.RenderPoints(); len(pts) != 2 {
		t.Errorf("expected new values to be recompressed, got %v", pts)
	}
}

func TestHiddenSeriesHasNoRenderPoints(t *testing.T) {
	c := newLineChart(t, 1, 2, 3)
	s := c.Series("s1")
	_ = c.AutoScaleAll()
	c.OnPlotAreaResized(400, 300)
	s.SetVisible(false)
	if pts, _ := s.RenderPoints(); len(pts) != 0 {
		t.Errorf("expected a hidden series not to be compressed, got %v", pts)
	}
	s.SetVisible(true)
	if pts, _ := s.RenderPoints(); len(pts) != 3 {
		t.Errorf("expected all 3 points once shown again, got %v", pts)
	}
}

func TestFindNearestPoint(t *testing.T) {
	c := newLineChart(t, 3.0, 2.1, 1.9, 2.3, 3.2)
	_ = c.AutoScaleAll()
	c.OnPlotAreaResized(400, 300)
	p, err := c.DataToPixel(0, 0, 2, 1.9)
	if err != nil {
		t.Fatal(err)
	}
	hit, ok := c.FindNearestPoint(coords.Point{X: p.X + 1, Y: p.Y}, 5)
	if !ok {
		t.Fatalf("expected a hit near %v", p)
	}
	if hit.SeriesID != "s1" || hit.Index != 2 || hit.Distance != 1 {
		t.Errorf("expected s1[2] at distance 1, got %+v", hit)
	}
	if _, ok := c.FindNearestPoint(coords.Point{X: p.X, Y: p.Y + 5}, 5); ok {
		t.Errorf("expected a point exactly at the radius to miss")
	}
}

func TestSelect(t *testing.T) {
	c := New()
	c.OnPlotAreaResized(200, 100)
	_ = c.SetRange(axis.X, 0, 0, 100)
	_ = c.SetRange(axis.Y, 0, 0, 100)
	if err := c.Select(coords.Point{X: 150, Y: 75}, coords.Point{X: 50, Y: 25}); err != nil {
		t.Fatal(err)
	}
	expectRange(t, c, axis.X, 0, 25, 75)
	expectRange(t, c, axis.Y, 0, 25, 75)

	if err := c.Select(coords.Point{X: 10, Y: 10}, coords.Point{X: 10, Y: 10}); err != nil {
		t.Errorf("expected a click to be ignored, got %v", err)
	}
	expectRange(t, c, axis.X, 0, 25, 75)
}

func TestSelectVertical(t *testing.T) {
	c := New()
	c.OnPlotAreaResized(200, 100)
	c.SetOrientation(coords.Vertical)
	_ = c.SetRange(axis.X, 0, 0, 100)
	_ = c.SetRange(axis.Y, 0, 0, 100)
	if err := c.Select(coords.Point{X: 0, Y: 0}, coords.Point{X: 50, Y: 50}); err != nil {
		t.Fatal(err)
	}
	expectRange(t, c, axis.Y, 0, 0, 25)
	expectRange(t, c, axis.X, 0, 50, 100)
}

func TestZoomInAt(t *testing.T) {
	c := New()
	c.OnPlotAreaResized(200, 100)
	_ = c.SetRange(axis.X, 0, 0, 100)
	if err := c.ZoomInAt(axis.X, 0, coords.Point{X: 20, Y: 50}, 0.5); err != nil {
		t.Fatal(err)
	}
	expectRange(t, c, axis.X, 0, 5, 55)
}

func TestZoomAllAt(t *testing.T) {
	c := New()
	c.OnPlotAreaResized(200, 100)
	_ = c.SetRange(axis.X, 0, 0, 100)
	_ = c.SetRange(axis.Y, 0, 0, 100)
	if err := c.ZoomInAllAt(coords.Point{X: 20, Y: 50}, 0.5); err != nil {
		t.Fatal(err)
	}
	expectRange(t, c, axis.X, 0, 5, 55)
	expectRange(t, c, axis.Y, 0, 25, 75)
	if err := c.ZoomOutAllAt(coords.Point{X: 20, Y: 50}, 0.5); err != nil {
		t.Fatal(err)
	}
	expectRange(t, c, axis.X, 0, 0, 100)
	expectRange(t, c, axis.Y, 0, 0, 100)
}

func TestZoomInvalidFactor(t *testing.T) {
	c := New()
	if err := c.ZoomIn(axis.X, 0, 1.5); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
	expectRange(t, c, axis.X, 0, 0, 1)
	if err := c.ZoomIn(axis.X, 3, 0.5); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestScrollScreen(t *testing.T) {
	c := New()
	_ = c.SetRange(axis.X, 0, 0, 10)
	_ = c.SetRange(axis.Y, 0, 0, 10)
	if err := c.ScrollScreen(true, true); err != nil {
		t.Fatal(err)
	}
	expectRange(t, c, axis.X, 0, 1, 11)
	expectRange(t, c, axis.Y, 0, 0, 10)

	c.SetOrientation(coords.Vertical)
	if err := c.ScrollScreen(true, false); err != nil {
		t.Fatal(err)
	}
	expectRange(t, c, axis.X, 0, 1, 11)
	expectRange(t, c, axis.Y, 0, -1, 9)
}

func TestMissingSeries(t *testing.T) {
	c := New()
	if err := c.SetYValues("nope", []float64{1}); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if err := c.EnableStack("nope", true); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if err := c.DeleteSeries("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteAxisRebinds(t *testing.T) {
	c := newLineChart(t, 1, 2, 3)
	y := c.CreateAxis(axis.Y)
	if err := c.SetAxisBinding("s1", 0, y); err != nil {
		t.Fatal(err)
	}
	if err := c.DeleteAxis(axis.Y, y); err != nil {
		t.Fatal(err)
	}
	if got := c.Series("s1").YAxisID(); got != 0 {
		t.Errorf("expected s1 to move to y axis 0, got %d", got)
	}
	if _, err := c.Range(axis.Y, y); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected the deleted axis to be gone, got %v", err)
	}
}

func TestStackedCategoryChart(t *testing.T) {
	c := New()
	if err := c.SetCategories(axis.X, 0, []string{"q1", "q2", "q3"}); err != nil {
		t.Fatal(err)
	}
	if err := c.SetScale(axis.X, 0, axis.Category); err != nil {
		t.Fatal(err)
	}
	for i, id := range []string{"a", "b"} {
		if _, err := c.CreateSeries(series.Bar, id); err != nil {
			t.Fatal(err)
		}
		base := float64(i * 3)
		if err := c.SetYValues(id, []float64{base + 1, base + 2, base + 3}); err != nil {
			t.Fatal(err)
		}
		if err := c.EnableStack(id, true); err != nil {
			t.Fatal(err)
		}
	}
	if err := c.AutoScaleAll(); err != nil {
		t.Fatal(err)
	}
	expectRange(t, c, axis.X, 0, 0, 2)
	expectRange(t, c, axis.Y, 0, 1, 9)
	if n := c.Axes().XAxis(0).NumRisers(); n != 1 {
		t.Errorf("expected one shared riser, got %d", n)
	}
}
