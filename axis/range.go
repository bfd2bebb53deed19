package axis

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidRange is returned for inverted ranges, non-positive log
	// bounds and degenerate ratio selections.
	ErrInvalidRange = errors.New("invalid range")
	// ErrInvalidArgument is returned for out-of-domain parameters such as a
	// zoom factor outside (0,1).
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotFound is returned when an axis id is unknown.
	ErrNotFound = errors.New("not found")
)

const (
	// DefaultZoomFactor narrows a range by 20% on each side.
	DefaultZoomFactor = 0.6
	// ScrollRatio is the fraction of the span moved by one scroll step.
	ScrollRatio = 0.1
)

type Scale uint8

const (
	Linear Scale = iota
	Log
	Category
)

func (s Scale) String() string {
	switch s {
	case Linear:
		return "linear"
	case Log:
		return "log"
	case Category:
		return "category"
	default:
		return "?"
	}
}

// Range is the visible interval of one axis.
type Range struct {
	Lower, Upper float64
	Scale        Scale
	// Labels holds the category names when Scale is Category.
	Labels []string
}

func (r Range) Span() float64 {
	return r.Upper - r.Lower
}

func (r Range) Contains(v float64) bool {
	return v >= r.Lower && v <= r.Upper
}

func (r Range) String() string {
	return fmt.Sprintf("[%g, %g] (%s)", r.Lower, r.Upper, r.Scale)
}

func validate(scale Scale, lower, upper float64) error {
	if math.IsNaN(lower) || math.IsNaN(upper) || math.IsInf(lower, 0) || math.IsInf(upper, 0) {
		return fmt.Errorf("%w: bounds must be finite, got [%g, %g]", ErrInvalidRange, lower, upper)
	}
	if lower > upper {
		return fmt.Errorf("%w: lower %g exceeds upper %g", ErrInvalidRange, lower, upper)
	}
	if scale == Log && (lower <= 0 || upper <= 0) {
		return fmt.Errorf("%w: log scale requires positive bounds, got [%g, %g]", ErrInvalidRange, lower, upper)
	}
	return nil
}

// SetRange replaces the bounds. The range is left untouched on error.
func (r *Range) SetRange(lower, upper float64) error {
	if err := validate(r.Scale, lower, upper); err != nil {
		return err
	}
	if r.Scale == Category {
		lower, upper = math.Floor(lower), math.Ceil(upper)
	}
	r.Lower, r.Upper = lower, upper
	return nil
}

// AutoScale sets the range to exactly the given extent. Padding is the
// business of whoever renders the range.
func (r *Range) AutoScale(lower, upper float64) error {
	return r.SetRange(lower, upper)
}

func checkFactor(factor float64) error {
	if !(factor > 0 && factor < 1) {
		return fmt.Errorf("%w: zoom factor %g not in (0,1)", ErrInvalidArgument, factor)
	}
	return nil
}

// ZoomIn narrows the range around its midpoint so that the new span is
// factor times the old one. Log ranges zoom around their geometric midpoint.
func (r *Range) ZoomIn(factor float64) error {
	return r.ZoomInAt(r.midpoint(), factor)
}

// ZoomOut grows the range around its midpoint by 1/factor.
func (r *Range) ZoomOut(factor float64) error {
	return r.ZoomOutAt(r.midpoint(), factor)
}

// ZoomInAt narrows the range while keeping coordinate at the same relative
// position.
func (r *Range) ZoomInAt(coordinate, factor float64) error {
	if err := checkFactor(factor); err != nil {
		return err
	}
	return r.zoom(coordinate, factor, true)
}

// ZoomOutAt grows the range while keeping coordinate at the same relative
// position.
func (r *Range) ZoomOutAt(coordinate, factor float64) error {
	if err := checkFactor(factor); err != nil {
		return err
	}
	return r.zoom(coordinate, 1/factor, false)
}

func (r *Range) midpoint() float64 {
	if r.Scale == Log {
		return math.Sqrt(r.Lower * r.Upper)
	}
	return (r.Lower + r.Upper) / 2
}

func (r *Range) zoom(coordinate, scale float64, in bool) error {
	switch r.Scale {
	case Log:
		if coordinate <= 0 {
			return fmt.Errorf("%w: log zoom around non-positive coordinate %g", ErrInvalidArgument, coordinate)
		}
		c := math.Log10(coordinate)
		lo := c + (math.Log10(r.Lower)-c)*scale
		hi := c + (math.Log10(r.Upper)-c)*scale
		return r.SetRange(math.Pow(10, lo), math.Pow(10, hi))
	case Category:
		lo := coordinate + (r.Lower-coordinate)*scale
		hi := coordinate + (r.Upper-coordinate)*scale
		if in {
			lo, hi = math.Round(lo), math.Round(hi)
			// Always move by at least one category while there is room.
			if lo == r.Lower && hi == r.Upper && r.Upper-r.Lower >= 2 {
				lo, hi = r.Lower+1, r.Upper-1
			}
			if lo > hi {
				lo = math.Round(coordinate)
				hi = lo
			}
		} else {
			lo, hi = math.Floor(lo), math.Ceil(hi)
			if lo == r.Lower && hi == r.Upper {
				lo, hi = r.Lower-1, r.Upper+1
			}
		}
		lo, hi = r.clampCategory(lo, hi)
		return r.SetRange(lo, hi)
	default:
		lo := coordinate + (r.Lower-coordinate)*scale
		hi := coordinate + (r.Upper-coordinate)*scale
		return r.SetRange(lo, hi)
	}
}

// clampCategory keeps category bounds inside the label indices.
func (r *Range) clampCategory(lo, hi float64) (float64, float64) {
	if len(r.Labels) == 0 {
		return lo, hi
	}
	last := float64(len(r.Labels) - 1)
	lo = min(max(lo, 0), last)
	hi = min(max(hi, 0), last)
	return lo, hi
}

// ScrollUp shifts the range toward larger values by ScrollRatio of its span.
func (r *Range) ScrollUp() error {
	return r.scroll(1)
}

// ScrollDown shifts the range toward smaller values by ScrollRatio of its span.
func (r *Range) ScrollDown() error {
	return r.scroll(-1)
}

func (r *Range) scroll(sign float64) error {
	switch r.Scale {
	case Log:
		lo, hi := math.Log10(r.Lower), math.Log10(r.Upper)
		delta := sign * (hi - lo) * ScrollRatio
		return r.SetRange(math.Pow(10, lo+delta), math.Pow(10, hi+delta))
	case Category:
		delta := sign * max(math.Round((r.Upper-r.Lower+1)*ScrollRatio), 1)
		lo, hi := r.Lower+delta, r.Upper+delta
		if len(r.Labels) > 0 {
			last := float64(len(r.Labels) - 1)
			// Stop at the ends rather than shrinking the span.
			if lo < 0 {
				lo, hi = 0, hi-lo
			}
			if hi > last {
				lo, hi = lo-(hi-last), last
			}
			lo = max(lo, 0)
		}
		return r.SetRange(lo, hi)
	default:
		delta := sign * (r.Upper - r.Lower) * ScrollRatio
		return r.SetRange(r.Lower+delta, r.Upper+delta)
	}
}

// RatioToRange maps two fractions of the current pixel extent back to a
// data-space sub-range of the current range. The ratios may be given in
// either order. Equal ratios describe an empty selection and fail with
// ErrInvalidRange.
func (r Range) RatioToRange(ratioLower, ratioUpper float64) (lower, upper float64, err error) {
	if ratioLower == ratioUpper {
		return 0, 0, fmt.Errorf("%w: empty selection at ratio %g", ErrInvalidRange, ratioLower)
	}
	if ratioUpper < ratioLower {
		ratioLower, ratioUpper = ratioUpper, ratioLower
	}
	if r.Scale == Category {
		first, last := math.Floor(r.Lower), math.Ceil(r.Upper)
		span := last - first + 1
		lower = math.Trunc(r.Lower + ratioLower*span)
		upper = math.Trunc(r.Lower + ratioUpper*span)
		lower = min(max(lower, first), last)
		upper = min(max(upper, first), last)
		return lower, upper, nil
	}
	s, ok := r.UnitScale()
	if !ok {
		return 0, 0, fmt.Errorf("%w: cannot map ratios onto %v", ErrInvalidRange, r)
	}
	lower, upper = s.Unmap(ratioLower), s.Unmap(ratioUpper)
	// Exact bounds for the full extent.
	if ratioLower == 0 {
		lower = r.Lower
	}
	if ratioUpper == 1 {
		upper = r.Upper
	}
	return lower, upper, nil
}
