package series

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"git.sr.ht/~whereswaldon/chartcore/axis"
	"github.com/shopspring/decimal"
)

// The error kinds are shared with package axis so that callers can test
// for them with errors.Is regardless of which layer failed.
var (
	ErrInvalidArgument = axis.ErrInvalidArgument
	ErrNotFound        = axis.ErrNotFound
)

// Registry owns the series of one chart. Series are kept in registration
// order, which is also the order in which layout assigns bar slots.
type Registry struct {
	axes   *axis.Set
	order  []*Series
	byID   map[string]*Series
	listen func()
	// pairRisers records the riser count of every axis pair seen by the
	// last layout pass.
	pairRisers map[axisPair]int
}

type axisPair struct {
	x, y int
}

func NewRegistry(axes *axis.Set) *Registry {
	return &Registry{
		axes:       axes,
		byID:       make(map[string]*Series),
		pairRisers: make(map[axisPair]int),
	}
}

// OnLayout registers a function invoked after every layout pass.
func (r *Registry) OnLayout(f func()) {
	r.listen = f
}

// Create adds a series bound to the first X and Y axes. An existing series
// with the same id is replaced in place and keeps its registration slot.
func (r *Registry) Create(typ Type, id string) (*Series, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, fmt.Errorf("%w: series id is empty", ErrInvalidArgument)
	}
	if typ != Line && typ != Bar {
		return nil, fmt.Errorf("%w: unknown series type %d", ErrInvalidArgument, typ)
	}
	xIDs, yIDs := r.axes.XAxisIDs(), r.axes.YAxisIDs()
	if len(xIDs) == 0 || len(yIDs) == 0 {
		return nil, fmt.Errorf("%w: chart has no axes", ErrNotFound)
	}
	s := &Series{
		reg:        r,
		id:         id,
		typ:        typ,
		xAxisID:    xIDs[0],
		yAxisID:    yIDs[0],
		visible:    true,
		riserIndex: -1,
	}
	if old, ok := r.byID[id]; ok {
		idx := slices.Index(r.order, old)
		r.order[idx] = s
	} else {
		r.order = append(r.order, s)
	}
	r.byID[id] = s
	r.recomputeLayout()
	return s, nil
}

func (r *Registry) Delete(id string) error {
	s, ok := r.byID[id]
	if !ok {
		return fmt.Errorf("%w: series %q", ErrNotFound, id)
	}
	delete(r.byID, id)
	r.order = slices.DeleteFunc(r.order, func(e *Series) bool { return e == s })
	r.recomputeLayout()
	return nil
}

// Get returns the series with the given id, or nil.
func (r *Registry) Get(id string) *Series {
	return r.byID[id]
}

// All returns every series in registration order.
func (r *Registry) All() []*Series {
	return slices.Clone(r.order)
}

func (r *Registry) Len() int {
	return len(r.order)
}

// RiserCount returns the number of bar slots of an axis pair as of the last
// layout pass.
func (r *Registry) RiserCount(xAxisID, yAxisID int) int {
	return r.pairRisers[axisPair{xAxisID, yAxisID}]
}

// Rebind moves every series bound to a deleted axis onto the first axis of
// that direction.
func (r *Registry) Rebind(dir axis.Direction, deletedID int) {
	var first int
	if dir == axis.X {
		first = r.axes.XAxisIDs()[0]
	} else {
		first = r.axes.YAxisIDs()[0]
	}
	for _, s := range r.order {
		if dir == axis.X && s.xAxisID == deletedID {
			s.xAxisID = first
			s.revision++
		} else if dir == axis.Y && s.yAxisID == deletedID {
			s.yAxisID = first
			s.revision++
		}
	}
	r.recomputeLayout()
}

// RecomputeLayout reruns the stack and riser layout. It happens on its own
// after every structural change; hosts call it after editing axes.
func (r *Registry) RecomputeLayout() {
	r.recomputeLayout()
}

func (r *Registry) recomputeLayout() {
	// Stacking is only meaningful on category axes.
	for _, s := range r.order {
		if !s.stacked {
			continue
		}
		if x := r.axes.XAxis(s.xAxisID); x == nil || !x.IsValidCategoryAxis() {
			s.stacked = false
			s.stackedYValues = nil
			s.revision++
		}
	}
	for _, s := range r.order {
		s.riserIndex = -1
	}
	clear(r.pairRisers)
	var pairs []axisPair
	for _, s := range r.order {
		p := axisPair{s.xAxisID, s.yAxisID}
		if !slices.Contains(pairs, p) {
			pairs = append(pairs, p)
		}
	}
	risers := make(map[int]int)
	for _, p := range pairs {
		n := r.layoutPair(p)
		r.pairRisers[p] = n
		risers[p.x] = max(risers[p.x], n)
	}
	for _, x := range r.axes.XAxes() {
		x.SetNumRisers(risers[x.ID()])
	}
	if r.listen != nil {
		r.listen()
	}
}

// layoutPair assigns riser indices and stacked values for the series bound to
// one axis pair and returns the number of risers used.
func (r *Registry) layoutPair(p axisPair) int {
	riserCount := 0
	stackRiser := -1
	var stackLen int
	if x := r.axes.XAxis(p.x); x != nil {
		stackLen = len(x.Categories())
	}
	barTotals := make([]decimal.Decimal, stackLen)
	lineTotals := make([]decimal.Decimal, stackLen)
	for _, s := range r.order {
		if s.xAxisID != p.x || s.yAxisID != p.y {
			continue
		}
		if !s.visible {
			s.clearStacked()
			continue
		}
		switch {
		case s.stacked && s.typ == Bar:
			if stackRiser == -1 {
				stackRiser = riserCount
				riserCount++
			}
			s.riserIndex = stackRiser
			s.setStacked(barTotals)
		case s.stacked:
			s.setStacked(lineTotals)
		case s.typ == Bar:
			s.riserIndex = riserCount
			riserCount++
		}
	}
	return riserCount
}

// setStacked adds the series' values to the running totals of their
// categories and stores the result as its stacked values. Categories the
// series has no value for keep the total of the series below it.
func (s *Series) setStacked(totals []decimal.Decimal) {
	for i := 0; i < s.Len(); i++ {
		c, ok := s.category(i, len(totals))
		v := s.yValues[i]
		if !ok || math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		totals[c] = totals[c].Add(decimal.NewFromFloat(v))
	}
	stacked := make([]float64, len(totals))
	for i, t := range totals {
		stacked[i] = t.InexactFloat64()
	}
	if !slices.Equal(stacked, s.stackedYValues) {
		s.stackedYValues = stacked
		s.revision++
	}
}

// clearStacked drops the stacked values of a series left out of the layout.
func (s *Series) clearStacked() {
	if s.stackedYValues != nil {
		s.stackedYValues = nil
		s.revision++
	}
}
