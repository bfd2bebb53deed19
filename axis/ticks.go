package axis

import (
	"math"

	"github.com/aclements/go-moremath/scale"
)

// Ticks returns at most max tick values inside the range, in increasing
// order. Linear and log ranges are placed at round powers of ten; category
// ranges tick every label index, skipping evenly when there are too many.
func (r Range) Ticks(max int) []float64 {
	if max <= 0 {
		return nil
	}
	var major []float64
	switch r.Scale {
	case Log:
		s, err := scale.NewLog(r.Lower, r.Upper, 10)
		if err != nil {
			return nil
		}
		major, _ = s.Ticks(scale.TickOptions{Max: max})
	case Category:
		first, last := math.Ceil(r.Lower), math.Floor(r.Upper)
		if last < first {
			return nil
		}
		stride := math.Ceil((last - first + 1) / float64(max))
		for v := first; v <= last; v += stride {
			major = append(major, v)
		}
		return major
	default:
		major, _ = scale.Linear{Min: r.Lower, Max: r.Upper}.Ticks(scale.TickOptions{Max: max})
	}
	// Floating-point spacing can land a tick just past a bound.
	ticks := major[:0]
	for _, v := range major {
		if r.Contains(v) {
			ticks = append(ticks, v)
		}
	}
	return ticks
}
