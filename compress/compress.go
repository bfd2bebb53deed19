// Package compress reduces a series to the points needed to draw it at a
// given pixel density.
package compress

import (
	"math"
	"slices"
)

// Precision is the oversampling factor applied to the plot size so that
// sub-pixel detail survives decimation.
const Precision = 2

// Margin is the fraction of a linear range added on each side so that points
// on the boundary are not clipped.
const Margin = 0.015

// Point is one data-space coordinate kept for rendering.
type Point struct {
	X, Y float64
}

// Config describes the viewport a series is compressed for.
type Config struct {
	// WidthInPixel and HeightInPixel are the oversampled plot dimensions.
	WidthInPixel, HeightInPixel int
	XLower, XUpper              float64
	YLower, YUpper              float64
	XLogScale, YLogScale        bool
}

// NewConfig builds the compression config for one series. width and height
// are the plot size in pixels; xRange and yRange the bound axes' visible
// ranges; xDataMin and yDataMin the smallest strictly positive data value of
// the series, used as the lower bound on log axes where a margin below the
// data would be undefined.
func NewConfig(width, height int, xLower, xUpper, yLower, yUpper float64, xLog, yLog bool, xDataMin, yDataMin float64) Config {
	c := Config{
		WidthInPixel:  width * Precision,
		HeightInPixel: height * Precision,
		XLogScale:     xLog,
		YLogScale:     yLog,
	}
	c.XLower, c.XUpper = expand(xLower, xUpper, xLog, xDataMin)
	c.YLower, c.YUpper = expand(yLower, yUpper, yLog, yDataMin)
	return c
}

func expand(lower, upper float64, log bool, dataMin float64) (float64, float64) {
	span := upper - lower
	l, u := lower-span*Margin, upper+span*Margin
	if log {
		l = dataMin
	}
	return l, u
}

// Data is the raw input of one compression.
type Data struct {
	// X may be nil, in which case the index of each value is its X
	// coordinate.
	X, Y []float64
	// Bar marks bar series, which keep only the bar reaching farthest from
	// zero in each column, or one on each side when the column crosses
	// zero.
	Bar bool
}

func (d Data) x(i int) float64 {
	if d.X == nil {
		return float64(i)
	}
	return d.X[i]
}

func (d Data) len() int {
	if d.X == nil {
		return len(d.Y)
	}
	return min(len(d.X), len(d.Y))
}

// Compressor decimates one series and caches the result of the last run.
type Compressor struct {
	prev     Config
	revision uint64
	valid    bool
	points   []Point
	indexes  []int
}

// Compress returns the points of data worth drawing under config, with the
// raw index of each one. revision identifies the version of data; calling
// Compress again with the same revision and config returns the cached
// result. The returned slices must not be modified.
func (c *Compressor) Compress(data Data, revision uint64, config Config) ([]Point, []int) {
	if c.Fresh(revision, config) {
		return c.points, c.indexes
	}
	c.points, c.indexes = Compress(data, config)
	c.prev = config
	c.revision = revision
	c.valid = true
	return c.points, c.indexes
}

// Fresh reports whether the cached result is valid for revision and config.
func (c *Compressor) Fresh(revision uint64, config Config) bool {
	return c.valid && c.revision == revision && c.prev == config
}

// Invalidate drops the cached result.
func (c *Compressor) Invalidate() {
	c.valid = false
}

// Compress decimates data for config. It is deterministic: the same inputs
// always produce the same output.
func Compress(data Data, config Config) (points []Point, indexes []int) {
	n := data.len()
	if n == 0 {
		return nil, nil
	}
	g := newGrid(config)
	if !g.ok {
		// Degenerate viewport: nothing meaningful can be bucketed.
		return nil, nil
	}
	var keep []int
	if isMonotone(data, n) {
		keep = columns(data, n, g)
	} else {
		keep = cells(data, n, g)
	}
	points = make([]Point, len(keep))
	for i, idx := range keep {
		points[i] = Point{X: data.x(idx), Y: data.Y[idx]}
	}
	return points, keep
}

func isMonotone(data Data, n int) bool {
	if data.X == nil {
		return true
	}
	for i := 1; i < n; i++ {
		if data.X[i] < data.X[i-1] {
			return false
		}
	}
	return true
}

// grid converts data values into sub-pixel bucket indices.
type grid struct {
	xLo, xHi, yLo, yHi float64
	w, h               float64
	xLog, yLog         bool
	ok                 bool
}

func newGrid(c Config) grid {
	g := grid{
		xLo:  c.XLower,
		xHi:  c.XUpper,
		yLo:  c.YLower,
		yHi:  c.YUpper,
		w:    float64(c.WidthInPixel),
		h:    float64(c.HeightInPixel),
		xLog: c.XLogScale,
		yLog: c.YLogScale,
	}
	if g.xLog {
		g.xLo, g.xHi = math.Log10(g.xLo), math.Log10(g.xHi)
	}
	if g.yLog {
		g.yLo, g.yHi = math.Log10(g.yLo), math.Log10(g.yHi)
	}
	g.ok = g.w > 0 && g.h > 0 &&
		!math.IsNaN(g.xLo) && !math.IsNaN(g.xHi) && !math.IsInf(g.xLo, 0) && !math.IsInf(g.xHi, 0) &&
		!math.IsNaN(g.yLo) && !math.IsNaN(g.yHi) && !math.IsInf(g.yLo, 0) && !math.IsInf(g.yHi, 0)
	return g
}

// usable reports whether a value can be placed on a log axis.
func usable(v float64, log bool) bool {
	if math.IsNaN(v) {
		return false
	}
	return !log || v > 0
}

func bucket(v, lo, hi, size float64, log bool) float64 {
	if log {
		v = math.Log10(v)
	}
	if hi == lo {
		return 0
	}
	return math.Floor((v - lo) / (hi - lo) * size)
}

func (g grid) column(x float64) float64 {
	return bucket(x, g.xLo, g.xHi, g.w, g.xLog)
}

func (g grid) row(y float64) float64 {
	return bucket(y, g.yLo, g.yHi, g.h, g.yLog)
}

// columns keeps, for every sub-pixel column of a monotone series, the first,
// lowest, highest and last points in index order, or the deepest bars. Points left of the visible
// range are reduced to the one nearest the range, and likewise on the right,
// so that lines entering and leaving the plot are still drawn.
func columns(data Data, n int, g grid) []int {
	var (
		keep        []int
		lastBefore  = -1
		firstAfter  = -1
		col         = math.NaN()
		first, last int
		lo, hi      int
	)
	flush := func() {
		if math.IsNaN(col) {
			return
		}
		if data.Bar {
			switch {
			case data.Y[lo] < 0 && data.Y[hi] > 0:
				keep = append(keep, min(lo, hi), max(lo, hi))
			case data.Y[hi] <= 0:
				keep = append(keep, lo)
			default:
				keep = append(keep, hi)
			}
			return
		}
		group := []int{first, lo, hi, last}
		slices.Sort(group)
		keep = append(keep, slices.Compact(group)...)
	}
	for i := 0; i < n; i++ {
		x, y := data.x(i), data.Y[i]
		if !usable(x, g.xLog) || !usable(y, g.yLog) {
			continue
		}
		c := g.column(x)
		if c < 0 {
			lastBefore = i
			continue
		}
		if c >= g.w {
			if firstAfter < 0 {
				firstAfter = i
			}
			continue
		}
		if c != col {
			flush()
			col = c
			first, last, lo, hi = i, i, i, i
			continue
		}
		last = i
		if y < data.Y[lo] {
			lo = i
		}
		if y > data.Y[hi] {
			hi = i
		}
	}
	flush()
	if lastBefore >= 0 {
		keep = append([]int{lastBefore}, keep...)
	}
	if firstAfter >= 0 {
		keep = append(keep, firstAfter)
	}
	return keep
}

// cells keeps a point only when it falls in a different sub-pixel cell than
// the previously kept point. It serves series whose X values are not sorted.
func cells(data Data, n int, g grid) []int {
	var keep []int
	prevCol, prevRow := math.NaN(), math.NaN()
	for i := 0; i < n; i++ {
		x, y := data.x(i), data.Y[i]
		if !usable(x, g.xLog) || !usable(y, g.yLog) {
			continue
		}
		c, r := g.column(x), g.row(y)
		if c == prevCol && r == prevRow {
			continue
		}
		prevCol, prevRow = c, r
		keep = append(keep, i)
	}
	return keep
}
