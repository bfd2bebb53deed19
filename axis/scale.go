package axis

import "github.com/aclements/go-moremath/scale"

// UnitScale maps data values onto [0, 1] and back.
type UnitScale interface {
	Map(x float64) float64
	Unmap(y float64) float64
}

// UnitScale returns the scale mapping a linear or log range onto [0, 1]. ok
// is false for category ranges and for log ranges reaching 0.
func (r Range) UnitScale() (s UnitScale, ok bool) {
	switch r.Scale {
	case Linear:
		return scale.Linear{Min: r.Lower, Max: r.Upper}, true
	case Log:
		l, err := scale.NewLog(r.Lower, r.Upper, 10)
		if err != nil {
			return nil, false
		}
		return l, true
	}
	return nil, false
}
