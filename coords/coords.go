// Package coords converts between data space and the pixel space of a plot
// area.
package coords

import (
	"math"

	"git.sr.ht/~whereswaldon/chartcore/axis"
)

// Orientation tells which screen direction the X data direction runs along.
type Orientation uint8

const (
	// Horizontal charts draw X data left to right and Y data bottom to top.
	Horizontal Orientation = iota
	// Vertical charts draw X data bottom to top and Y data left to right.
	Vertical
)

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Size is the pixel extent of the plot area.
type Size struct {
	Width, Height int
}

// Point is a position in plot-area pixels, with the origin in the top left
// corner.
type Point struct {
	X, Y float64
}

// Ratio returns where v falls in r as a fraction of the axis length, 0 at the
// lower bound and 1 at the upper bound. Category values sit in the centre of
// their slot.
func Ratio(v float64, r axis.Range) float64 {
	if r.Scale == axis.Category {
		return (v - r.Lower + 0.5) / (r.Upper - r.Lower + 1)
	}
	s, ok := r.UnitScale()
	if !ok {
		return math.NaN()
	}
	return s.Map(v)
}

// FromRatio is the inverse of Ratio. The range bounds are returned exactly
// at ratios 0 and 1.
func FromRatio(ratio float64, r axis.Range) float64 {
	if r.Scale == axis.Category {
		return r.Lower - 0.5 + ratio*(r.Upper-r.Lower+1)
	}
	switch ratio {
	case 0:
		return r.Lower
	case 1:
		return r.Upper
	}
	s, ok := r.UnitScale()
	if !ok {
		return math.NaN()
	}
	return s.Unmap(ratio)
}

// ValueToPixel maps v onto an axis that is length pixels long, measured from
// the end showing the lower bound.
func ValueToPixel(v float64, r axis.Range, length int) float64 {
	return Ratio(v, r) * float64(length)
}

// PixelToValue is the inverse of ValueToPixel.
func PixelToValue(p float64, r axis.Range, length int) float64 {
	if length <= 0 {
		return r.Lower
	}
	return FromRatio(p/float64(length), r)
}

// Mapper converts points between the data space of one pair of axes and the
// plot area.
type Mapper struct {
	X, Y        axis.Range
	Size        Size
	Orientation Orientation
}

// DataToPixel returns the plot-area position of the data point (x, y).
func (m Mapper) DataToPixel(x, y float64) Point {
	if m.Orientation == Vertical {
		return Point{
			X: ValueToPixel(y, m.Y, m.Size.Width),
			Y: float64(m.Size.Height) - ValueToPixel(x, m.X, m.Size.Height),
		}
	}
	return Point{
		X: ValueToPixel(x, m.X, m.Size.Width),
		Y: float64(m.Size.Height) - ValueToPixel(y, m.Y, m.Size.Height),
	}
}

// PixelToData returns the data coordinates under the plot-area position p.
func (m Mapper) PixelToData(p Point) (x, y float64) {
	if m.Orientation == Vertical {
		return PixelToValue(float64(m.Size.Height)-p.Y, m.X, m.Size.Height),
			PixelToValue(p.X, m.Y, m.Size.Width)
	}
	return PixelToValue(p.X, m.X, m.Size.Width),
		PixelToValue(float64(m.Size.Height)-p.Y, m.Y, m.Size.Height)
}

// ScreenAxis reports whether data direction dir runs along the screen's
// horizontal axis under orientation o.
func ScreenAxis(dir axis.Direction, o Orientation) (horizontal bool) {
	return (dir == axis.X) == (o == Horizontal)
}

// SelectionRatios converts the corners of a drag rectangle into the pair of
// ratios it covers along data direction dir, lower first. Ratios are clamped
// to [0,1].
func SelectionRatios(start, end Point, size Size, dir axis.Direction, o Orientation) (lower, upper float64) {
	if ScreenAxis(dir, o) {
		if size.Width <= 0 {
			return 0, 0
		}
		w := float64(size.Width)
		lower = clamp01(min(start.X, end.X) / w)
		upper = clamp01(max(start.X, end.X) / w)
		return lower, upper
	}
	if size.Height <= 0 {
		return 0, 0
	}
	h := float64(size.Height)
	// Screen Y grows downward while data grows upward.
	lower = clamp01((h - max(start.Y, end.Y)) / h)
	upper = clamp01((h - min(start.Y, end.Y)) / h)
	return lower, upper
}

func clamp01(v float64) float64 {
	return min(max(v, 0), 1)
}

// Distance is the euclidean distance between two plot-area positions.
func Distance(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// Nearest returns the index among n candidates whose position is closest to
// target and strictly within radius. ok is false when none qualifies. Ties
// go to the lowest index.
func Nearest(target Point, radius float64, n int, at func(i int) (Point, bool)) (index int, dist float64, ok bool) {
	for i := 0; i < n; i++ {
		p, valid := at(i)
		if !valid {
			continue
		}
		d := Distance(target, p)
		if d >= radius || math.IsNaN(d) {
			continue
		}
		if !ok || d < dist {
			index, dist, ok = i, d, true
		}
	}
	return index, dist, ok
}
