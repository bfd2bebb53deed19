// Package chart ties the axes, series, compression and coordinate mapping of
// one chart together behind the API used by hosts.
//
// A Chart is not safe for concurrent use. Every method runs to completion
// synchronously. Methods acting on one series or one axis leave the chart
// unchanged when they return an error; methods acting on every axis report
// the failures of individual axes after applying the others.
package chart

import (
	"errors"
	"fmt"

	"git.sr.ht/~whereswaldon/chartcore/axis"
	"git.sr.ht/~whereswaldon/chartcore/compress"
	"git.sr.ht/~whereswaldon/chartcore/coords"
	"git.sr.ht/~whereswaldon/chartcore/series"
)

var (
	ErrInvalidArgument = series.ErrInvalidArgument
	ErrNotFound        = series.ErrNotFound
	ErrInvalidRange    = axis.ErrInvalidRange
)

// Chart is one plot area with its axes and series.
type Chart struct {
	axes        *axis.Set
	series      *series.Registry
	size        coords.Size
	orientation coords.Orientation
}

func New() *Chart {
	c := &Chart{
		axes: axis.NewSet(),
	}
	c.series = series.NewRegistry(c.axes)
	c.series.OnLayout(c.compressAll)
	return c
}

func (c *Chart) Axes() *axis.Set {
	return c.axes
}

func (c *Chart) Size() coords.Size {
	return c.size
}

func (c *Chart) Orientation() coords.Orientation {
	return c.orientation
}

func (c *Chart) SetOrientation(o coords.Orientation) {
	c.orientation = o
	c.compressAll()
}

// OnPlotAreaResized records the new plot size and recompresses every series.
func (c *Chart) OnPlotAreaResized(width, height int) {
	c.size = coords.Size{Width: width, Height: height}
	c.compressAll()
}

// OnDataOrRangeChanged reruns layout and compression.
func (c *Chart) OnDataOrRangeChanged() {
	c.series.RecomputeLayout()
}

func (c *Chart) CreateSeries(typ series.Type, id string) (*series.Series, error) {
	return c.series.Create(typ, id)
}

func (c *Chart) DeleteSeries(id string) error {
	return c.series.Delete(id)
}

// Series returns the series with the given id, or nil.
func (c *Chart) Series(id string) *series.Series {
	return c.series.Get(id)
}

// AllSeries returns every series in registration order.
func (c *Chart) AllSeries() []*series.Series {
	return c.series.All()
}

func (c *Chart) lookup(id string) (*series.Series, error) {
	s := c.series.Get(id)
	if s == nil {
		return nil, fmt.Errorf("%w: series %q", ErrNotFound, id)
	}
	return s, nil
}

func (c *Chart) SetXValues(id string, values []float64) error {
	s, err := c.lookup(id)
	if err != nil {
		return err
	}
	s.SetXValues(values)
	return nil
}

func (c *Chart) SetYValues(id string, values []float64) error {
	s, err := c.lookup(id)
	if err != nil {
		return err
	}
	return s.SetYValues(values)
}

func (c *Chart) EnableStack(id string, enabled bool) error {
	s, err := c.lookup(id)
	if err != nil {
		return err
	}
	return s.EnableStack(enabled)
}

func (c *Chart) SetAxisBinding(id string, xAxisID, yAxisID int) error {
	s, err := c.lookup(id)
	if err != nil {
		return err
	}
	return s.SetAxisBinding(xAxisID, yAxisID)
}

// CreateAxis adds an axis and returns its id.
func (c *Chart) CreateAxis(dir axis.Direction) int {
	return c.axes.CreateAxis(dir)
}

// DeleteAxis removes an axis and moves its series onto the first axis of the
// same direction.
func (c *Chart) DeleteAxis(dir axis.Direction, id int) error {
	if err := c.axes.DeleteAxis(dir, id); err != nil {
		return err
	}
	c.series.Rebind(dir, id)
	return nil
}

func (c *Chart) axis(dir axis.Direction, id int) (*axis.Axis, error) {
	return c.axes.Lookup(dir, id)
}

// Range returns the visible range of an axis.
func (c *Chart) Range(dir axis.Direction, id int) (axis.Range, error) {
	a, err := c.axis(dir, id)
	if err != nil {
		return axis.Range{}, err
	}
	return a.Range(), nil
}

func (c *Chart) SetRange(dir axis.Direction, id int, lower, upper float64) error {
	return c.withAxis(dir, id, func(a *axis.Axis) error {
		return a.SetRange(lower, upper)
	})
}

// SetScale changes the scale kind of an axis and reruns layout, since
// stacking depends on category axes.
func (c *Chart) SetScale(dir axis.Direction, id int, s axis.Scale) error {
	a, err := c.axis(dir, id)
	if err != nil {
		return err
	}
	if err := a.SetScale(s); err != nil {
		return err
	}
	c.series.RecomputeLayout()
	return nil
}

// SetScaleAndFit changes the scale of an axis and fits it to the data.
// Unlike SetScale it can switch a range reaching zero or below to Log.
func (c *Chart) SetScaleAndFit(dir axis.Direction, id int, s axis.Scale) error {
	a, err := c.axis(dir, id)
	if err != nil {
		return err
	}
	if s == axis.Log && a.Scale() != axis.Log && a.Range().Lower <= 0 {
		if err := a.SetRange(1, 10); err != nil {
			return err
		}
	}
	if err := c.SetScale(dir, id, s); err != nil {
		return err
	}
	return c.AutoScale(dir, id)
}

// SetCategories sets the category labels of an axis and reruns layout.
func (c *Chart) SetCategories(dir axis.Direction, id int, labels []string) error {
	a, err := c.axis(dir, id)
	if err != nil {
		return err
	}
	a.SetCategories(labels)
	c.series.RecomputeLayout()
	return nil
}

func (c *Chart) ZoomIn(dir axis.Direction, id int, factor float64) error {
	return c.withAxis(dir, id, func(a *axis.Axis) error {
		return a.ZoomIn(factor)
	})
}

func (c *Chart) ZoomOut(dir axis.Direction, id int, factor float64) error {
	return c.withAxis(dir, id, func(a *axis.Axis) error {
		return a.ZoomOut(factor)
	})
}

// ZoomInAt zooms keeping the data value under the plot-area position p in
// place.
func (c *Chart) ZoomInAt(dir axis.Direction, id int, p coords.Point, factor float64) error {
	return c.withAxis(dir, id, func(a *axis.Axis) error {
		return a.ZoomInAt(c.valueAt(a, p), factor)
	})
}

// ZoomOutAt is the opposite of ZoomInAt.
func (c *Chart) ZoomOutAt(dir axis.Direction, id int, p coords.Point, factor float64) error {
	return c.withAxis(dir, id, func(a *axis.Axis) error {
		return a.ZoomOutAt(c.valueAt(a, p), factor)
	})
}

func (c *Chart) valueAt(a *axis.Axis, p coords.Point) float64 {
	r := a.Range()
	if coords.ScreenAxis(a.Direction(), c.orientation) {
		return coords.PixelToValue(p.X, r, c.size.Width)
	}
	return coords.PixelToValue(float64(c.size.Height)-p.Y, r, c.size.Height)
}

func (c *Chart) ScrollUp(dir axis.Direction, id int) error {
	return c.withAxis(dir, id, (*axis.Axis).ScrollUp)
}

func (c *Chart) ScrollDown(dir axis.Direction, id int) error {
	return c.withAxis(dir, id, (*axis.Axis).ScrollDown)
}

// AutoScale fits an axis to the data of the visible series bound to it.
// Log axes use the smallest positive value as their lower bound.
func (c *Chart) AutoScale(dir axis.Direction, id int) error {
	return c.withAxis(dir, id, func(a *axis.Axis) error {
		lower, upper, ok := c.dataExtent(a)
		if !ok {
			if a.IsValidCategoryAxis() {
				return a.AutoScale(0, 0)
			}
			return nil
		}
		return a.AutoScale(lower, upper)
	})
}

func (c *Chart) dataExtent(a *axis.Axis) (lower, upper float64, ok bool) {
	for _, s := range c.series.All() {
		if !s.Visible() {
			continue
		}
		var lo, hi float64
		var found bool
		if a.Direction() == axis.X {
			if s.XAxisID() != a.ID() {
				continue
			}
			lo, hi, found = s.XRange()
			if found && a.Scale() == axis.Log {
				lo, found = s.PositiveXMin()
			}
		} else {
			if s.YAxisID() != a.ID() {
				continue
			}
			lo, hi, found = s.YRange()
			if found && a.Scale() == axis.Log {
				lo, found = s.PositiveYMin()
			}
		}
		if !found {
			continue
		}
		if !ok {
			lower, upper, ok = lo, hi, true
			continue
		}
		lower = min(lower, lo)
		upper = max(upper, hi)
	}
	return lower, upper, ok
}

// AutoScaleAll fits every axis.
func (c *Chart) AutoScaleAll() error {
	var errs []error
	for _, a := range c.axes.Axes() {
		errs = append(errs, c.AutoScale(a.Direction(), a.ID()))
	}
	return errors.Join(errs...)
}

// ZoomInAll zooms every axis in by factor.
func (c *Chart) ZoomInAll(factor float64) error {
	return c.eachAxis(func(a *axis.Axis) error { return a.ZoomIn(factor) })
}

// ZoomOutAll zooms every axis out by factor.
func (c *Chart) ZoomOutAll(factor float64) error {
	return c.eachAxis(func(a *axis.Axis) error { return a.ZoomOut(factor) })
}

// ZoomInAllAt zooms every axis in by factor around the data under the
// plot-area position p.
func (c *Chart) ZoomInAllAt(p coords.Point, factor float64) error {
	return c.eachAxis(func(a *axis.Axis) error { return a.ZoomInAt(c.valueAt(a, p), factor) })
}

// ZoomOutAllAt is the opposite of ZoomInAllAt.
func (c *Chart) ZoomOutAllAt(p coords.Point, factor float64) error {
	return c.eachAxis(func(a *axis.Axis) error { return a.ZoomOutAt(c.valueAt(a, p), factor) })
}

// ScrollScreen scrolls every axis running along the given screen direction.
// Positive steps scroll toward larger values.
func (c *Chart) ScrollScreen(horizontal bool, up bool) error {
	var errs []error
	for _, a := range c.axes.Axes() {
		if coords.ScreenAxis(a.Direction(), c.orientation) != horizontal {
			continue
		}
		var err error
		if up {
			err = a.ScrollUp()
		} else {
			err = a.ScrollDown()
		}
		errs = append(errs, err)
	}
	c.compressAll()
	return errors.Join(errs...)
}

func (c *Chart) eachAxis(f func(a *axis.Axis) error) error {
	var errs []error
	for _, a := range c.axes.Axes() {
		errs = append(errs, f(a))
	}
	c.compressAll()
	return errors.Join(errs...)
}

func (c *Chart) RatioToRange(dir axis.Direction, id int, ratioLower, ratioUpper float64) (lower, upper float64, err error) {
	a, err := c.axis(dir, id)
	if err != nil {
		return 0, 0, err
	}
	return a.RatioToRange(ratioLower, ratioUpper)
}

// Select zooms every axis to the region of the drag rectangle from start to
// end. Axes across which the rectangle has no extent keep their range.
func (c *Chart) Select(start, end coords.Point) error {
	var errs []error
	for _, a := range c.axes.Axes() {
		rl, ru := coords.SelectionRatios(start, end, c.size, a.Direction(), c.orientation)
		lower, upper, err := a.RatioToRange(rl, ru)
		if errors.Is(err, axis.ErrInvalidRange) {
			continue
		} else if err != nil {
			errs = append(errs, err)
			continue
		}
		errs = append(errs, a.SetRange(lower, upper))
	}
	c.compressAll()
	return errors.Join(errs...)
}

func (c *Chart) withAxis(dir axis.Direction, id int, f func(a *axis.Axis) error) error {
	a, err := c.axis(dir, id)
	if err != nil {
		return err
	}
	if err := f(a); err != nil {
		return err
	}
	c.compressAll()
	return nil
}

// Mapper returns the coordinate mapper for a pair of axes.
func (c *Chart) Mapper(xAxisID, yAxisID int) (coords.Mapper, error) {
	x, err := c.axis(axis.X, xAxisID)
	if err != nil {
		return coords.Mapper{}, err
	}
	y, err := c.axis(axis.Y, yAxisID)
	if err != nil {
		return coords.Mapper{}, err
	}
	return coords.Mapper{
		X:           x.Range(),
		Y:           y.Range(),
		Size:        c.size,
		Orientation: c.orientation,
	}, nil
}

// DataToPixel maps a data point on the given axes to plot-area pixels.
func (c *Chart) DataToPixel(xAxisID, yAxisID int, x, y float64) (coords.Point, error) {
	m, err := c.Mapper(xAxisID, yAxisID)
	if err != nil {
		return coords.Point{}, err
	}
	return m.DataToPixel(x, y), nil
}

// PixelToData maps a plot-area position to data coordinates on the given
// axes.
func (c *Chart) PixelToData(xAxisID, yAxisID int, p coords.Point) (x, y float64, err error) {
	m, err := c.Mapper(xAxisID, yAxisID)
	if err != nil {
		return 0, 0, err
	}
	x, y = m.PixelToData(p)
	return x, y, nil
}

// Hit identifies one data point of one series.
type Hit struct {
	SeriesID string
	Index    int
	Distance float64
}

// FindNearestPoint returns the data point drawn closest to p and strictly
// within radius pixels of it. Earlier series win ties.
func (c *Chart) FindNearestPoint(p coords.Point, radius float64) (Hit, bool) {
	var best Hit
	found := false
	for _, s := range c.series.All() {
		if !s.Visible() {
			continue
		}
		m, err := c.Mapper(s.XAxisID(), s.YAxisID())
		if err != nil {
			continue
		}
		idx, dist, ok := coords.Nearest(p, radius, s.Len(), func(i int) (coords.Point, bool) {
			return m.DataToPixel(s.X(i), s.Y(i)), true
		})
		if ok && (!found || dist < best.Distance) {
			best = Hit{SeriesID: s.ID(), Index: idx, Distance: dist}
			found = true
		}
	}
	return best, found
}

// compressAll decimates every visible series against its axes' current
// ranges and drops the render points of hidden ones.
func (c *Chart) compressAll() {
	if c.size.Width <= 0 || c.size.Height <= 0 {
		return
	}
	w, h := c.size.Width, c.size.Height
	if c.orientation == coords.Vertical {
		w, h = h, w
	}
	for _, s := range c.series.All() {
		x := c.axes.XAxis(s.XAxisID())
		y := c.axes.YAxis(s.YAxisID())
		if x == nil || y == nil {
			continue
		}
		xr, yr := x.Range(), y.Range()
		xMin, _ := s.PositiveXMin()
		yMin, _ := s.PositiveYMin()
		cfg := compress.NewConfig(w, h,
			xr.Lower, xr.Upper, yr.Lower, yr.Upper,
			xr.Scale == axis.Log, yr.Scale == axis.Log,
			xMin, yMin)
		s.Compress(cfg)
	}
}
