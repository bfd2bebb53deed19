package backend

import (
	"errors"
	"slices"

	"git.sr.ht/~whereswaldon/chartcore/axis"
	"git.sr.ht/~whereswaldon/chartcore/chart"
	"git.sr.ht/~whereswaldon/chartcore/series"
)

// LoadOptions controls how table columns become chart series.
type LoadOptions struct {
	Type  series.Type
	Stack bool
}

// LoadInto makes the series of c match the columns of t, one series per
// column keyed by its name. Series without a column are deleted. A table with
// category labels puts them on the first x axis and gives it a category
// scale. Failures of individual series are joined; the rest still load.
func LoadInto(c *chart.Chart, t Table, opts LoadOptions) error {
	var errs []error
	if t.Categorical() {
		x := c.Axes().XAxis(0)
		if !slices.Equal(x.Categories(), t.Labels) {
			errs = append(errs, c.SetCategories(axis.X, 0, t.Labels))
		}
		if x.Scale() != axis.Category {
			errs = append(errs, c.SetScale(axis.X, 0, axis.Category))
		}
	}
	for _, col := range t.Columns {
		s := c.Series(col.Name)
		if s == nil || s.Type() != opts.Type {
			var err error
			s, err = c.CreateSeries(opts.Type, col.Name)
			if err != nil {
				errs = append(errs, err)
				continue
			}
		}
		s.SetXValues(col.X)
		if err := s.SetYValues(col.Y); err != nil {
			errs = append(errs, err)
			continue
		}
		if s.StackEnabled() != opts.Stack {
			errs = append(errs, s.EnableStack(opts.Stack))
		}
	}
	for _, s := range c.AllSeries() {
		if _, ok := t.Column(s.ID()); !ok {
			errs = append(errs, c.DeleteSeries(s.ID()))
		}
	}
	return errors.Join(errs...)
}
