package axis

import (
	"errors"
	"slices"
	"testing"
)

func TestSetCreateDelete(t *testing.T) {
	s := NewSet()
	if ids := s.XAxisIDs(); !slices.Equal(ids, []int{0}) {
		t.Fatalf("expected x axes [0], got %v", ids)
	}
	if ids := s.YAxisIDs(); !slices.Equal(ids, []int{0}) {
		t.Fatalf("expected y axes [0], got %v", ids)
	}
	id := s.CreateAxis(Y)
	if id != 1 {
		t.Errorf("expected new y axis id 1, got %d", id)
	}
	if a := s.YAxis(id); a == nil || a.Direction() != Y {
		t.Errorf("expected y axis %d to exist, got %v", id, a)
	}
	if err := s.DeleteAxis(Y, 0); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected deleting the first axis to fail with ErrInvalidArgument, got %v", err)
	}
	if err := s.DeleteAxis(Y, 42); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if err := s.DeleteAxis(Y, id); err != nil {
		t.Fatalf("expected delete to succeed, got %v", err)
	}
	if _, err := s.Lookup(Y, id); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected deleted axis to be gone, got %v", err)
	}
	if next := s.CreateAxis(Y); next != 2 {
		t.Errorf("expected ids not to be reused, got %d", next)
	}
	if n := len(s.Axes()); n != 3 {
		t.Errorf("expected 3 axes in total, got %d", n)
	}
}

func TestCategoryAxis(t *testing.T) {
	s := NewSet()
	x := s.XAxis(0)
	if x.IsValidCategoryAxis() {
		t.Errorf("expected a fresh axis not to be a category axis")
	}
	x.SetCategories([]string{"mon", "tue", "wed"})
	if err := x.SetScale(Category); err != nil {
		t.Fatal(err)
	}
	if !x.IsValidCategoryAxis() {
		t.Errorf("expected a valid category axis")
	}
	if r := x.Range(); r.Lower != 0 || r.Upper != 2 {
		t.Errorf("expected [0, 2], got %v", r)
	}
	if err := x.AutoScale(-5, 50); err != nil {
		t.Fatal(err)
	}
	if r := x.Range(); r.Lower != 0 || r.Upper != 2 {
		t.Errorf("expected autoscale to cover the labels, got %v", r)
	}
	y := s.YAxis(0)
	y.SetCategories([]string{"a"})
	if err := y.SetScale(Category); err != nil {
		t.Fatal(err)
	}
	if y.IsValidCategoryAxis() {
		t.Errorf("expected a y axis never to be a valid category axis")
	}
}

func TestSetScaleLog(t *testing.T) {
	s := NewSet()
	a := s.YAxis(0)
	if err := a.SetScale(Log); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("expected [0, 1] to be rejected for log scale, got %v", err)
	}
	if a.Scale() != Linear {
		t.Errorf("expected scale to stay linear, got %v", a.Scale())
	}
	if err := a.SetRange(1, 1000); err != nil {
		t.Fatal(err)
	}
	if err := a.SetScale(Log); err != nil {
		t.Fatalf("expected log scale to be accepted, got %v", err)
	}
	if err := a.SetRange(0, 10); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("expected non-positive log range to fail, got %v", err)
	}
	if r := a.Range(); r.Lower != 1 || r.Upper != 1000 {
		t.Errorf("expected range to be unchanged, got %v", r)
	}
}

func TestRangeIsCopied(t *testing.T) {
	s := NewSet()
	x := s.XAxis(0)
	x.SetCategories([]string{"a", "b"})
	r := x.Range()
	r.Labels[0] = "changed"
	if got := x.Categories()[0]; got != "a" {
		t.Errorf("expected labels to be copied, got %q", got)
	}
}
