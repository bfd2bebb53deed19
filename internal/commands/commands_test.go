package commands

import (
	"bytes"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"git.sr.ht/~whereswaldon/chartcore/coords"
)

func writeCSV(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func testContext(out *bytes.Buffer) *Context {
	return &Context{Width: 400, Height: 300, Orientation: coords.Horizontal, Stdout: out}
}

func TestSummaryJSON(t *testing.T) {
	var out bytes.Buffer
	cmd := SummaryCmd{
		ChartFlags: ChartFlags{File: writeCSV(t, "a,b\n1,4\n2,5\n3,6\n"), Type: "line"},
		Output:     "json",
	}
	if err := cmd.Run(testContext(&out)); err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	var s Summary
	if err := json.Unmarshal(out.Bytes(), &s); err != nil {
		t.Fatalf("expected json output, got %q: %v", out.String(), err)
	}
	if len(s.Axes) != 2 || len(s.Series) != 2 {
		t.Fatalf("expected 2 axes and 2 series, got %+v", s)
	}
	x, y := s.Axes[0], s.Axes[1]
	if x.Direction != "x" || x.Lower != 0 || x.Upper != 2 {
		t.Errorf("expected x axis [0, 2], got %+v", x)
	}
	if !slices.Equal(x.Ticks, []float64{0, 0.5, 1, 1.5, 2}) {
		t.Errorf("expected half unit ticks on x, got %v", x.Ticks)
	}
	if y.Direction != "y" || y.Lower != 1 || y.Upper != 6 {
		t.Errorf("expected y axis [1, 6], got %+v", y)
	}
	if a := s.Series[0]; a.ID != "a" || a.Points != 3 || a.Drawn != 3 || a.Riser != -1 {
		t.Errorf("expected series a with 3 drawn points, got %+v", a)
	}
}

func TestSummaryText(t *testing.T) {
	var out bytes.Buffer
	cmd := SummaryCmd{
		ChartFlags: ChartFlags{File: writeCSV(t, "xday,sales,costs\nmon,1,4\ntue,2,5\n"), Type: "bar", Stack: true},
		Output:     "text",
	}
	if err := cmd.Run(testContext(&out)); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"sales", "costs", "bar stacked", "category", "mon, tue"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out.String())
		}
	}
}

func TestBuildAppliesViewFlags(t *testing.T) {
	var out bytes.Buffer
	flags := ChartFlags{
		File:   writeCSV(t, "a,b\n1,4\n2,5\n3,6\n"),
		Type:   "line",
		Select: []float64{0, 0, 200, 300},
	}
	c, err := flags.Build(testContext(&out))
	if err != nil {
		t.Fatal(err)
	}
	r := c.Axes().XAxis(0).Range()
	if r.Lower != 0 || r.Upper != 1 {
		t.Errorf("expected the left half of x to be selected, got %v", r)
	}

	flags.Select = []float64{1, 2}
	if _, err := flags.Build(testContext(&out)); err == nil {
		t.Errorf("expected an incomplete selection to fail")
	}
}

func TestBuildScroll(t *testing.T) {
	var out bytes.Buffer
	flags := ChartFlags{File: writeCSV(t, "a\n0\n10\n"), Type: "line", ScrollX: -2, ScrollY: 1}
	c, err := flags.Build(testContext(&out))
	if err != nil {
		t.Fatal(err)
	}
	x := c.Axes().XAxis(0).Range()
	if math.Abs(x.Lower+0.2) > 1e-9 || math.Abs(x.Upper-0.8) > 1e-9 {
		t.Errorf("expected x scrolled back two steps to [-0.2, 0.8], got %v", x)
	}
	y := c.Axes().YAxis(0).Range()
	if math.Abs(y.Lower-1) > 1e-9 || math.Abs(y.Upper-11) > 1e-9 {
		t.Errorf("expected y scrolled up one step to [1, 11], got %v", y)
	}
}

func TestNearest(t *testing.T) {
	var out bytes.Buffer
	flags := ChartFlags{File: writeCSV(t, "a,b\n1,4\n2,5\n3,6\n"), Type: "line"}
	c, err := flags.Build(testContext(&out))
	if err != nil {
		t.Fatal(err)
	}
	res, err := Nearest(c, coords.Point{X: 200, Y: 240}, 5)
	if err != nil {
		t.Fatal(err)
	}
	if !res.Found || res.Series != "a" || res.Index != 1 {
		t.Errorf("expected a[1], got %+v", res)
	}
	if math.Abs(res.DataX-1) > 1e-9 || math.Abs(res.DataY-2) > 1e-9 {
		t.Errorf("expected (1, 2) under the pixel, got (%g, %g)", res.DataX, res.DataY)
	}

	res, err = Nearest(c, coords.Point{X: 100, Y: 150}, 5)
	if err != nil {
		t.Fatal(err)
	}
	if res.Found {
		t.Errorf("expected nothing near an empty spot, got %+v", res)
	}
	if !strings.Contains(res.Render(), "No point within radius") {
		t.Errorf("expected a miss to be reported, got %q", res.Render())
	}
}

func TestCompressYAML(t *testing.T) {
	var out bytes.Buffer
	cmd := CompressCmd{
		ChartFlags: ChartFlags{File: writeCSV(t, "a\n1\n2\n"), Type: "line"},
		Output:     "yaml",
		Pixels:     true,
	}
	if err := cmd.Run(testContext(&out)); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"id: a", "total: 2", "pixel_x: 400"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out.String())
		}
	}
}
