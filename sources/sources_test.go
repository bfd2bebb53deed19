package sources

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"git.sr.ht/~whereswaldon/chartcore/backend"
)

func TestSine(t *testing.T) {
	start := time.Unix(100, 0)
	now := start
	s := NewSine("wave", 4*time.Second, 2)
	s.now = func() time.Time { return now }
	for _, tc := range []struct {
		elapsed time.Duration
		expect  float64
	}{
		{0, 0},
		{time.Second, 2},
		{2 * time.Second, 0},
		{3 * time.Second, -2},
	} {
		now = start.Add(tc.elapsed)
		v, err := s.Read()
		if err != nil {
			t.Fatal(err)
		}
		if math.Abs(v-tc.expect) > 1e-9 {
			t.Errorf("at %v: expected %g, got %g", tc.elapsed, tc.expect, v)
		}
	}
}

func TestWalkIsSeeded(t *testing.T) {
	a, b := NewWalk("a", 1, 42), NewWalk("b", 1, 42)
	for i := 0; i < 10; i++ {
		va, _ := a.Read()
		vb, _ := b.Read()
		if va != vb {
			t.Fatalf("step %d: expected equal seeds to walk together, got %g and %g", i, va, vb)
		}
		if i == 0 && math.Abs(va) > 1 {
			t.Errorf("expected the first step to stay within 1, got %g", va)
		}
	}
}

func TestCounter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "energy_uj")
	write := func(v string) {
		t.Helper()
		if err := os.WriteFile(path, []byte(v+"\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	write("100")
	c, err := OpenCounter("energy", path, 1000)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()
	for i, tc := range []struct {
		value  string
		expect float64
	}{
		{"100", 0},
		{"150", 50},
		{"990", 840},
		{"20", 30},
	} {
		write(tc.value)
		v, err := c.Read()
		if err != nil {
			t.Fatalf("read %d: %v", i, err)
		}
		if v != tc.expect {
			t.Errorf("read %d: expected %g, got %g", i, tc.expect, v)
		}
	}
	write("nope")
	if _, err := c.Read(); err == nil {
		t.Errorf("expected garbage to fail to parse")
	}
}

type failing struct{}

func (failing) Name() string           { return "broken" }
func (failing) Read() (float64, error) { return 0, os.ErrClosed }

func TestWrittenTraceReadsBack(t *testing.T) {
	var buf bytes.Buffer
	walk := NewWalk("walk", 1, 7)
	srcs := []Source{walk, failing{}}
	if err := WriteHeader(&buf, srcs); err != nil {
		t.Fatal(err)
	}
	var expected []float64
	for i := 0; i < 3; i++ {
		if err := WriteSample(&buf, float64(i)/2, srcs); err == nil {
			t.Errorf("expected the failing source to be reported")
		}
		expected = append(expected, walk.value)
	}
	table, err := backend.ReadTable(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if table.XName != "x elapsed (s)" || table.Rows != 3 {
		t.Fatalf("expected 3 rows against the elapsed column, got %+v", table)
	}
	col, ok := table.Column("walk")
	if !ok {
		t.Fatalf("expected a walk column")
	}
	if !slices.Equal(col.X, []float64{0, 0.5, 1}) || !slices.Equal(col.Y, expected) {
		t.Errorf("expected %v at [0 0.5 1], got %v at %v", expected, col.Y, col.X)
	}
	if broken, _ := table.Column("broken"); len(broken.Y) != 0 {
		t.Errorf("expected the failing column to stay empty, got %v", broken.Y)
	}
}
