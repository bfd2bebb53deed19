package series

import (
	"fmt"
	"math"
	"slices"

	"git.sr.ht/~whereswaldon/chartcore/axis"
	"git.sr.ht/~whereswaldon/chartcore/compress"
)

type Type uint8

const (
	Line Type = iota
	Bar
)

func (t Type) String() string {
	switch t {
	case Line:
		return "line"
	case Bar:
		return "bar"
	default:
		return "?"
	}
}

// ParseType converts "line" or "bar" into a Type.
func ParseType(s string) (Type, error) {
	switch s {
	case "line":
		return Line, nil
	case "bar":
		return Bar, nil
	}
	return 0, fmt.Errorf("%w: unknown series type %q", ErrInvalidArgument, s)
}

// Series represents one data set in a visualization.
type Series struct {
	reg *Registry

	id      string
	typ     Type
	xValues []float64
	yValues []float64
	xAxisID int
	yAxisID int
	visible bool
	stacked bool

	stackedYValues []float64
	riserIndex     int

	// revision changes whenever the values being drawn change.
	revision   uint64
	compressor compress.Compressor
	points     []compress.Point
	indexes    []int
}

func (s *Series) ID() string {
	return s.id
}

func (s *Series) Type() Type {
	return s.typ
}

func (s *Series) XAxisID() int {
	return s.xAxisID
}

func (s *Series) YAxisID() int {
	return s.yAxisID
}

func (s *Series) Visible() bool {
	return s.visible
}

func (s *Series) StackEnabled() bool {
	return s.stacked
}

// XValues returns the X values, or nil when the series is plotted against
// its indices.
func (s *Series) XValues() []float64 {
	return slices.Clone(s.xValues)
}

func (s *Series) YValues() []float64 {
	return slices.Clone(s.yValues)
}

// StackedYValues returns the cumulative values computed by the last layout
// pass, or nil when the series is not stacked.
func (s *Series) StackedYValues() []float64 {
	return slices.Clone(s.stackedYValues)
}

// RiserIndex returns the bar slot assigned by the last layout pass. ok is
// false for line series and for bars not yet laid out.
func (s *Series) RiserIndex() (index int, ok bool) {
	if s.typ != Bar || s.riserIndex < 0 {
		return 0, false
	}
	return s.riserIndex, true
}

// Len is the number of data points.
func (s *Series) Len() int {
	if s.xValues == nil {
		return len(s.yValues)
	}
	return min(len(s.xValues), len(s.yValues))
}

// X returns the X coordinate of the point at index i.
func (s *Series) X(i int) float64 {
	if s.xValues == nil {
		return float64(i)
	}
	return s.xValues[i]
}

// Y returns the drawn Y coordinate of the point at index i: the stacked
// total of its category when stacking is active. Stacked points outside
// the categories are NaN and never drawn.
func (s *Series) Y(i int) float64 {
	if s.stackedYValues == nil {
		return s.yValues[i]
	}
	c, ok := s.category(i, len(s.stackedYValues))
	if !ok {
		return math.NaN()
	}
	return s.stackedYValues[c]
}

// category returns the category index of point i among n categories: its X
// coordinate, which must be a whole index below n.
func (s *Series) category(i, n int) (int, bool) {
	x := s.X(i)
	if x != math.Trunc(x) || x < 0 || x >= float64(n) {
		return 0, false
	}
	return int(x), true
}

// SetXValues replaces the X values. A nil slice plots the series against its
// indices.
func (s *Series) SetXValues(values []float64) {
	s.xValues = slices.Clone(values)
	s.changed()
}

// SetYValues replaces the Y values. Negative values are rejected while the
// series is stacked.
func (s *Series) SetYValues(values []float64) error {
	if s.stacked {
		if i := slices.IndexFunc(values, func(v float64) bool { return v < 0 }); i >= 0 {
			return fmt.Errorf("%w: series %q is stacked but y[%d] = %g is negative", ErrInvalidArgument, s.id, i, values[i])
		}
	}
	s.yValues = slices.Clone(values)
	s.changed()
	return nil
}

// EnableStack turns stacking on or off. Enabling requires a valid category X
// axis and non-negative Y values; the series is unchanged on failure.
func (s *Series) EnableStack(enabled bool) error {
	if enabled {
		if x := s.reg.axes.XAxis(s.xAxisID); x == nil || !x.IsValidCategoryAxis() {
			return fmt.Errorf("%w: series %q: stacking needs a category x axis", ErrInvalidArgument, s.id)
		}
		if i := slices.IndexFunc(s.yValues, func(v float64) bool { return v < 0 }); i >= 0 {
			return fmt.Errorf("%w: series %q: cannot stack negative value y[%d] = %g", ErrInvalidArgument, s.id, i, s.yValues[i])
		}
	}
	if s.stacked == enabled {
		return nil
	}
	s.stacked = enabled
	if !enabled {
		s.stackedYValues = nil
	}
	s.changed()
	return nil
}

// SetAxisBinding moves the series to another pair of axes.
func (s *Series) SetAxisBinding(xAxisID, yAxisID int) error {
	if _, err := s.reg.axes.Lookup(axis.X, xAxisID); err != nil {
		return fmt.Errorf("series %q: %w", s.id, err)
	}
	if _, err := s.reg.axes.Lookup(axis.Y, yAxisID); err != nil {
		return fmt.Errorf("series %q: %w", s.id, err)
	}
	s.xAxisID, s.yAxisID = xAxisID, yAxisID
	s.changed()
	return nil
}

func (s *Series) SetVisible(visible bool) {
	if s.visible == visible {
		return
	}
	s.visible = visible
	s.changed()
}

func (s *Series) changed() {
	s.revision++
	s.reg.recomputeLayout()
}

// XRange returns the extent of the X coordinates. ok is false for an empty
// series.
func (s *Series) XRange() (lower, upper float64, ok bool) {
	return extent(s.Len(), s.X)
}

// YRange returns the extent of the drawn Y coordinates.
func (s *Series) YRange() (lower, upper float64, ok bool) {
	return extent(s.Len(), s.Y)
}

// PositiveXMin returns the smallest strictly positive X coordinate.
func (s *Series) PositiveXMin() (float64, bool) {
	return positiveMin(s.Len(), s.X)
}

// PositiveYMin returns the smallest strictly positive drawn Y coordinate.
func (s *Series) PositiveYMin() (float64, bool) {
	return positiveMin(s.Len(), s.Y)
}

func extent(n int, at func(int) float64) (lower, upper float64, ok bool) {
	for i := 0; i < n; i++ {
		v := at(i)
		if math.IsNaN(v) {
			continue
		}
		if !ok {
			lower, upper, ok = v, v, true
			continue
		}
		lower = min(lower, v)
		upper = max(upper, v)
	}
	return lower, upper, ok
}

func positiveMin(n int, at func(int) float64) (m float64, ok bool) {
	for i := 0; i < n; i++ {
		v := at(i)
		if v > 0 && (!ok || v < m) {
			m, ok = v, true
		}
	}
	return m, ok
}

// Compress decimates the series for config and stores the result as the
// series' render points. Hidden series have no render points.
func (s *Series) Compress(config compress.Config) {
	if !s.visible {
		s.points, s.indexes = nil, nil
		s.compressor.Invalidate()
		return
	}
	if s.compressor.Fresh(s.revision, config) {
		return
	}
	n := s.Len()
	data := compress.Data{
		Y:   make([]float64, n),
		Bar: s.typ == Bar,
	}
	if s.xValues != nil {
		data.X = s.xValues[:n]
	}
	for i := range data.Y {
		data.Y[i] = s.Y(i)
	}
	s.points, s.indexes = s.compressor.Compress(data, s.revision, config)
}

// RenderPoints returns the decimated points of the last compression along
// with the raw index of each.
func (s *Series) RenderPoints() ([]compress.Point, []int) {
	return slices.Clone(s.points), slices.Clone(s.indexes)
}
