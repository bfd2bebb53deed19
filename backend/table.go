package backend

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"slices"
	"strconv"
	"strings"
)

// Column is one data series read from a table.
type Column struct {
	Name string
	X, Y []float64
}

// Table is the parsed content of a CSV file. Empty cells are skipped, so
// columns may hold fewer points than the table has rows.
type Table struct {
	// XName is the heading of the shared x column, or empty when every
	// column is a data series plotted against the row index.
	XName string
	// Labels holds the x cells of every row once any of them is not a number.
	// Rows are then plotted against their index and the labels name the
	// categories.
	Labels  []string
	Columns []Column
	Rows    int
}

// Categorical reports whether the table's x values are category labels.
func (t Table) Categorical() bool {
	return len(t.Labels) > 0
}

// Column returns the column with the given name.
func (t Table) Column(name string) (Column, bool) {
	i := slices.IndexFunc(t.Columns, func(c Column) bool { return c.Name == name })
	if i < 0 {
		return Column{}, false
	}
	return t.Columns[i], true
}

// Clone returns a deep copy of the table.
func (t Table) Clone() Table {
	out := t
	out.Labels = slices.Clone(t.Labels)
	out.Columns = make([]Column, len(t.Columns))
	for i, c := range t.Columns {
		out.Columns[i] = Column{
			Name: c.Name,
			X:    slices.Clone(c.X),
			Y:    slices.Clone(c.Y),
		}
	}
	return out
}

// ReadTable parses a complete CSV document. The first row holds the column
// headings. When the first heading starts with "x" that column supplies the
// x value of each row; otherwise rows are plotted against their index.
func ReadTable(r io.Reader) (Table, error) {
	tr := newTableReader(r)
	if err := tr.readAvailable(); !errors.Is(err, io.EOF) {
		return Table{}, err
	}
	if !tr.headed {
		return Table{}, fmt.Errorf("reading table: no header row")
	}
	return tr.table, nil
}

// tableReader incrementally builds a Table from CSV records.
type tableReader struct {
	csv     *csv.Reader
	table   Table
	headed  bool
	xColumn bool
	// xCells holds the raw x cell of every row, which become the labels
	// once any of them is not a number.
	xCells      []string
	categorical bool
	// rows holds the row of every point of each column.
	rows [][]int
	// changed is set whenever the table grows.
	changed bool
}

func newTableReader(r io.Reader) *tableReader {
	c := csv.NewReader(r)
	c.TrimLeadingSpace = true
	c.FieldsPerRecord = -1
	c.ReuseRecord = true
	return &tableReader{csv: c}
}

// readAvailable consumes every record currently readable. It returns io.EOF
// once the input is drained, which is not final for a growing file.
func (t *tableReader) readAvailable() error {
	if !t.headed {
		headings, err := t.csv.Read()
		if err != nil {
			return err
		}
		t.setHeadings(headings)
	}
	for {
		rec, err := t.csv.Read()
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				log.Printf("skipping malformed row: %v", err)
				continue
			}
			return err
		}
		if err := t.addRecord(rec); err != nil {
			log.Printf("skipping row %d: %v", t.table.Rows, err)
		}
	}
}

func (t *tableReader) setHeadings(headings []string) {
	t.headed = true
	t.changed = true
	if len(headings) > 1 && strings.HasPrefix(strings.ToLower(strings.TrimSpace(headings[0])), "x") {
		t.xColumn = true
		t.table.XName = strings.TrimSpace(headings[0])
		headings = headings[1:]
	}
	used := map[string]bool{}
	for i, h := range headings {
		name := strings.TrimSpace(h)
		if name == "" {
			name = "column " + strconv.Itoa(i+1)
		}
		// Series are keyed by name, so repeated headings get a suffix.
		for n, base := 2, name; used[name]; n++ {
			name = fmt.Sprintf("%s (%d)", base, n)
		}
		used[name] = true
		t.table.Columns = append(t.table.Columns, Column{Name: name})
	}
	t.rows = make([][]int, len(t.table.Columns))
}

// becomeCategorical switches the table to category labels: every row so far
// is labelled by its x cell and plotted against its index.
func (t *tableReader) becomeCategorical() {
	t.categorical = true
	t.table.Labels = slices.Clone(t.xCells)
	for i := range t.table.Columns {
		col := &t.table.Columns[i]
		for j, row := range t.rows[i] {
			col.X[j] = float64(row)
		}
	}
}

func (t *tableReader) addRecord(rec []string) error {
	row := t.table.Rows
	x := float64(row)
	cells := rec
	if t.xColumn {
		if len(rec) == 0 {
			return fmt.Errorf("missing x value")
		}
		cell := strings.TrimSpace(rec[0])
		t.xCells = append(t.xCells, cell)
		if !t.categorical {
			if v, err := strconv.ParseFloat(cell, 64); err == nil {
				x = v
			} else {
				t.becomeCategorical()
			}
		} else {
			t.table.Labels = append(t.table.Labels, cell)
		}
		cells = rec[1:]
	}
	for i := range t.table.Columns {
		if i >= len(cells) {
			break
		}
		cell := strings.TrimSpace(cells[i])
		if cell == "" {
			// Skip null cells.
			continue
		}
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			log.Printf("failed parsing %s[%d]=%q: %v", t.table.Columns[i].Name, row, cell, err)
			continue
		}
		col := &t.table.Columns[i]
		col.X = append(col.X, x)
		col.Y = append(col.Y, v)
		t.rows[i] = append(t.rows[i], row)
	}
	t.table.Rows++
	t.changed = true
	return nil
}
