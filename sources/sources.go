// Package sources produces the columns of a live CSV trace, one value per
// sample, for charting while the file grows.
package sources

import (
	"fmt"
	"io"
	"math"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"
)

type Source interface {
	Name() string
	Read() (float64, error)
}

// Sine is a sine wave sampled against a clock.
type Sine struct {
	name      string
	period    time.Duration
	amplitude float64
	start     time.Time
	now       func() time.Time
}

func NewSine(name string, period time.Duration, amplitude float64) *Sine {
	return &Sine{
		name:      name,
		period:    period,
		amplitude: amplitude,
		now:       time.Now,
	}
}

func (s *Sine) Name() string {
	return s.name
}

func (s *Sine) Read() (float64, error) {
	now := s.now()
	if s.start.IsZero() {
		s.start = now
	}
	if s.period <= 0 {
		return 0, fmt.Errorf("%s: period must be positive, got %v", s.name, s.period)
	}
	phase := float64(now.Sub(s.start)) / float64(s.period)
	return s.amplitude * math.Sin(2*math.Pi*phase), nil
}

// Walk is a random walk taking one step per read.
type Walk struct {
	name  string
	step  float64
	value float64
	rng   *rand.Rand
}

func NewWalk(name string, step float64, seed int64) *Walk {
	return &Walk{
		name: name,
		step: step,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

func (w *Walk) Name() string {
	return w.name
}

func (w *Walk) Read() (float64, error) {
	w.value += (w.rng.Float64()*2 - 1) * w.step
	return w.value, nil
}

// Counter reports how much an integer counter stored in a file grew since
// the previous read, such as the counters under /sys or /proc.
type Counter struct {
	name      string
	path      string
	file      *os.File
	lastValue int64
	// maxRange is where the counter wraps back to zero. Zero means it
	// never wraps.
	maxRange int64
	primed   bool
}

func OpenCounter(name, path string, maxRange int64) (*Counter, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed opening counter %q: %w", path, err)
	}
	return &Counter{
		name:     name,
		path:     path,
		file:     file,
		maxRange: maxRange,
	}, nil
}

func (c *Counter) Name() string {
	return c.name
}

func (c *Counter) Read() (float64, error) {
	var buf [256]byte
	if _, err := c.file.Seek(0, io.SeekStart); err != nil {
		return 0, fmt.Errorf("failed rewinding %s: %w", c.path, err)
	}
	n, err := c.file.Read(buf[:])
	if err != nil {
		return 0, fmt.Errorf("failed reading %s: %w", c.path, err)
	}
	text := strings.TrimSpace(string(buf[:n]))
	asInt, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed parsing %s (%s): %w", c.path, text, err)
	}
	if !c.primed {
		c.primed = true
		c.lastValue = asInt
		return 0, nil
	}
	increment := asInt - c.lastValue
	if asInt < c.lastValue && c.maxRange > 0 {
		// Handle when the counter wraps back past zero.
		increment += c.maxRange
	}
	c.lastValue = asInt
	return float64(increment), nil
}

func (c *Counter) Close() error {
	return c.file.Close()
}

// WriteHeader writes the CSV heading row for sources, led by the x column.
func WriteHeader(w io.Writer, sources []Source) error {
	names := make([]string, 0, len(sources)+1)
	names = append(names, "x elapsed (s)")
	for _, s := range sources {
		names = append(names, s.Name())
	}
	_, err := fmt.Fprintln(w, strings.Join(names, ", "))
	return err
}

// WriteSample reads every source once and writes the values as one CSV row
// at x. Sources that fail leave their cell empty.
func WriteSample(w io.Writer, x float64, sources []Source) error {
	cells := make([]string, 0, len(sources)+1)
	cells = append(cells, strconv.FormatFloat(x, 'f', 3, 64))
	var firstErr error
	for _, s := range sources {
		v, err := s.Read()
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			cells = append(cells, "")
			continue
		}
		cells = append(cells, strconv.FormatFloat(v, 'f', -1, 64))
	}
	if _, err := fmt.Fprintln(w, strings.Join(cells, ", ")); err != nil {
		return err
	}
	return firstErr
}
