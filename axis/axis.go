package axis

import (
	"fmt"
	"math"
	"slices"
)

type Direction uint8

const (
	X Direction = iota
	Y
)

func (d Direction) String() string {
	switch d {
	case X:
		return "x"
	case Y:
		return "y"
	default:
		return "?"
	}
}

// Axis is one horizontal or vertical data axis of a chart.
type Axis struct {
	id        int
	direction Direction
	rng       Range
	numRisers int
}

func newAxis(id int, dir Direction) *Axis {
	return &Axis{
		id:        id,
		direction: dir,
		rng:       Range{Lower: 0, Upper: 1},
	}
}

func (a *Axis) ID() int {
	return a.id
}

func (a *Axis) Direction() Direction {
	return a.direction
}

// Range returns a copy of the visible range.
func (a *Axis) Range() Range {
	r := a.rng
	r.Labels = slices.Clone(a.rng.Labels)
	return r
}

func (a *Axis) Scale() Scale {
	return a.rng.Scale
}

// Categories returns the category labels of the axis.
func (a *Axis) Categories() []string {
	return slices.Clone(a.rng.Labels)
}

// IsValidCategoryAxis reports whether the axis can host stacked series: an
// X axis with a category scale and at least one label.
func (a *Axis) IsValidCategoryAxis() bool {
	return a.direction == X && a.rng.Scale == Category && len(a.rng.Labels) > 0
}

// NumRisers is the number of bar slots sharing this axis, as computed by the
// last layout pass.
func (a *Axis) NumRisers() int {
	return a.numRisers
}

func (a *Axis) SetNumRisers(n int) {
	a.numRisers = n
}

func (a *Axis) SetRange(lower, upper float64) error {
	if err := a.rng.SetRange(lower, upper); err != nil {
		return fmt.Errorf("%s axis %d: %w", a.direction, a.id, err)
	}
	return nil
}

// SetCategories replaces the category labels. When the axis already uses a
// category scale, the range is reset to cover every label.
func (a *Axis) SetCategories(labels []string) {
	a.rng.Labels = slices.Clone(labels)
	if a.rng.Scale == Category && len(labels) > 0 {
		a.rng.Lower, a.rng.Upper = 0, float64(len(labels)-1)
	}
}

// SetScale switches the scale kind. Switching to Log fails when the current
// range is not strictly positive; switching to Category snaps the range to
// the label indices.
func (a *Axis) SetScale(s Scale) error {
	switch s {
	case Log:
		if err := validate(Log, a.rng.Lower, a.rng.Upper); err != nil {
			return fmt.Errorf("%s axis %d: %w", a.direction, a.id, err)
		}
	case Category:
		lo, hi := math.Floor(a.rng.Lower), math.Ceil(a.rng.Upper)
		if n := len(a.rng.Labels); n > 0 {
			lo, hi = 0, float64(n-1)
		}
		a.rng.Lower, a.rng.Upper = lo, hi
	case Linear:
	default:
		return fmt.Errorf("%w: unknown scale %d", ErrInvalidArgument, s)
	}
	a.rng.Scale = s
	return nil
}

func (a *Axis) ZoomIn(factor float64) error {
	return a.wrap(a.rng.ZoomIn(factor))
}

func (a *Axis) ZoomOut(factor float64) error {
	return a.wrap(a.rng.ZoomOut(factor))
}

func (a *Axis) ZoomInAt(coordinate, factor float64) error {
	return a.wrap(a.rng.ZoomInAt(coordinate, factor))
}

func (a *Axis) ZoomOutAt(coordinate, factor float64) error {
	return a.wrap(a.rng.ZoomOutAt(coordinate, factor))
}

func (a *Axis) ScrollUp() error {
	return a.wrap(a.rng.ScrollUp())
}

func (a *Axis) ScrollDown() error {
	return a.wrap(a.rng.ScrollDown())
}

// AutoScale sets the range to the given data extent. Category axes always
// span every label.
func (a *Axis) AutoScale(lower, upper float64) error {
	if a.IsValidCategoryAxis() {
		lower, upper = 0, float64(len(a.rng.Labels)-1)
	}
	return a.wrap(a.rng.AutoScale(lower, upper))
}

func (a *Axis) RatioToRange(ratioLower, ratioUpper float64) (lower, upper float64, err error) {
	lower, upper, err = a.rng.RatioToRange(ratioLower, ratioUpper)
	return lower, upper, a.wrap(err)
}

func (a *Axis) wrap(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s axis %d: %w", a.direction, a.id, err)
}

// Set holds the X and Y axes of one chart. Ids are unique per direction and
// never reused.
type Set struct {
	xAxes, yAxes []*Axis
	nextID       [2]int
}

// NewSet returns a set holding X axis 0 and Y axis 0.
func NewSet() *Set {
	s := &Set{}
	s.CreateAxis(X)
	s.CreateAxis(Y)
	return s
}

func (s *Set) list(dir Direction) *[]*Axis {
	if dir == X {
		return &s.xAxes
	}
	return &s.yAxes
}

// CreateAxis adds an axis in the given direction and returns its id.
func (s *Set) CreateAxis(dir Direction) int {
	id := s.nextID[dir]
	s.nextID[dir]++
	l := s.list(dir)
	*l = append(*l, newAxis(id, dir))
	return id
}

// DeleteAxis removes an axis. The first axis of each direction cannot be
// deleted.
func (s *Set) DeleteAxis(dir Direction, id int) error {
	l := s.list(dir)
	idx := slices.IndexFunc(*l, func(a *Axis) bool { return a.id == id })
	if idx < 0 {
		return fmt.Errorf("%w: %s axis %d", ErrNotFound, dir, id)
	}
	if idx == 0 {
		return fmt.Errorf("%w: %s axis %d cannot be deleted", ErrInvalidArgument, dir, id)
	}
	*l = slices.Delete(*l, idx, idx+1)
	return nil
}

// Axis returns the axis with the given id, or nil.
func (s *Set) Axis(dir Direction, id int) *Axis {
	for _, a := range *s.list(dir) {
		if a.id == id {
			return a
		}
	}
	return nil
}

// Lookup is like Axis but reports a missing axis as ErrNotFound.
func (s *Set) Lookup(dir Direction, id int) (*Axis, error) {
	a := s.Axis(dir, id)
	if a == nil {
		return nil, fmt.Errorf("%w: %s axis %d", ErrNotFound, dir, id)
	}
	return a, nil
}

func (s *Set) XAxis(id int) *Axis {
	return s.Axis(X, id)
}

func (s *Set) YAxis(id int) *Axis {
	return s.Axis(Y, id)
}

func (s *Set) XAxes() []*Axis {
	return slices.Clone(s.xAxes)
}

func (s *Set) YAxes() []*Axis {
	return slices.Clone(s.yAxes)
}

// Axes returns every X axis followed by every Y axis.
func (s *Set) Axes() []*Axis {
	return append(s.XAxes(), s.yAxes...)
}

func (s *Set) XAxisIDs() []int {
	return ids(s.xAxes)
}

func (s *Set) YAxisIDs() []int {
	return ids(s.yAxes)
}

func ids(axes []*Axis) []int {
	out := make([]int, len(axes))
	for i, a := range axes {
		out[i] = a.id
	}
	return out
}
