package csv

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/midbel/chartview/chart"
	"github.com/midbel/chartview/layout"
)

var ErrColumn = errors.New("invalid column")

// Table holds the records of a CSV file. When the file carries a header,
// the first record is kept apart in Header.
type Table struct {
	Header []string
	Rows   [][]string
}

func Open(file string, header bool) (*Table, error) {
	r, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return ReadTable(r, header)
}

func ReadTable(r io.Reader, header bool) (*Table, error) {
	rs := NewReader(r)
	rs.TrimSpace = true

	var tb Table
	for {
		row, err := rs.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("csv: line %d: %w", len(tb.Rows)+1, err)
		}
		if blank(row) {
			continue
		}
		if header && tb.Header == nil {
			tb.Header = row
			continue
		}
		tb.Rows = append(tb.Rows, row)
	}
	return &tb, nil
}

func (t *Table) Columns() int64 {
	n := len(t.Header)
	for _, r := range t.Rows {
		n = max(n, len(r))
	}
	return int64(n)
}

// Name gives the name of the column at the zero based index ix.
func (t *Table) Name(ix int64) string {
	if ix >= 0 && ix < int64(len(t.Header)) && t.Header[ix] != "" {
		return t.Header[ix]
	}
	return layout.ColumnName(ix + 1)
}

// Sets builds one set per column picked by the values selection. Entry
// labels are read from the labels column or, when labels is empty, are
// the line numbers.
func (t *Table) Sets(labels, values string) ([]*chart.Set, error) {
	sel, err := layout.SelectionFromString(values)
	if err != nil {
		return nil, err
	}
	var (
		count = t.Columns()
		cols  = sel.Indices(count)
		lix   = int64(-1)
	)
	if len(cols) == 0 {
		return nil, fmt.Errorf("%w: %q selects nothing", ErrColumn, values)
	}
	if labels != "" {
		ix, n := layout.ParseIndex(labels)
		if ix == 0 || n != len(labels) || ix > count {
			return nil, fmt.Errorf("%w: %q", ErrColumn, labels)
		}
		lix = ix - 1
	}
	var sets []*chart.Set
	for _, c := range cols {
		set := chart.NewSet(t.Name(c))
		for i, row := range t.Rows {
			pos := layout.Position{
				Line:   int64(i + 1),
				Column: c + 1,
			}
			if t.Header != nil {
				pos.Line++
			}
			value, err := parseValue(cell(row, c))
			if err != nil {
				return nil, fmt.Errorf("csv: %s: %w", pos, err)
			}
			label := strconv.Itoa(i + 1)
			if lix >= 0 {
				label = cell(row, lix)
			}
			set.Add(label, value)
		}
		sets = append(sets, set)
	}
	return sets, nil
}

// WritePoints writes one record per entry with its value and its screen
// coordinates.
func WritePoints(w io.Writer, sets []*chart.Set) error {
	ws := NewWriter(w)
	ws.Write([]string{"set", "label", "value", "x", "y"})
	for _, s := range sets {
		for _, e := range s.Entries() {
			row := []string{
				s.Name,
				e.Label,
				formatFloat(e.Value()),
				formatFloat(e.X()),
				formatFloat(e.Y()),
			}
			if err := ws.Write(row); err != nil {
				return err
			}
		}
	}
	return ws.Flush()
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func parseValue(str string) (float64, error) {
	if str == "" {
		return 0, fmt.Errorf("%w: empty cell", chart.ErrEmpty)
	}
	return strconv.ParseFloat(str, 64)
}

func cell(row []string, ix int64) string {
	if ix < int64(len(row)) {
		return row[ix]
	}
	return ""
}

func blank(row []string) bool {
	for _, r := range row {
		if r != "" {
			return false
		}
	}
	return true
}
