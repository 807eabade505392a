// Package profile inspects a source registry in a single pass: per-column
// inferred types, value counts, unique values and the dataset shape.
package profile

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"wrecklore/internal/normalize"
)

// ColumnType is the inferred scalar type of a column across all present
// values. A column whose present values disagree is mixed.
type ColumnType string

const (
	TypeEmpty   ColumnType = "empty"
	TypeInteger ColumnType = "integer"
	TypeDecimal ColumnType = "decimal"
	TypeBoolean ColumnType = "boolean"
	TypeText    ColumnType = "text"
	TypeMixed   ColumnType = "mixed"
)

// MaxTrackedUnique caps the unique-value set kept per column. Beyond the cap
// the count keeps growing but values are no longer recorded.
const MaxTrackedUnique = 200

type Column struct {
	Name     string     `json:"name"`
	Type     ColumnType `json:"type"`
	NonEmpty int        `json:"non_empty"`
	Empty    int        `json:"empty"`
	Unique   int        `json:"unique"`
	// Values holds up to MaxTrackedUnique distinct values in sorted order;
	// nil when the cap was exceeded.
	Values []string `json:"values,omitempty"`
}

type Report struct {
	Rows    int      `json:"rows"`
	Columns []Column `json:"columns"`
}

// Shape returns the dataset dimensions as "rows x columns".
func (r *Report) Shape() string {
	return fmt.Sprintf("%d x %d", r.Rows, len(r.Columns))
}

type columnState struct {
	name     string
	nonEmpty int
	empty    int
	unique   map[string]struct{}
	overflow int
	kind     ColumnType
}

// Run profiles every column of the CSV read from r.
func Run(r io.Reader) (*Report, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	states := make([]*columnState, len(header))
	for i, name := range header {
		states[i] = &columnState{name: name, unique: make(map[string]struct{}), kind: TypeEmpty}
	}

	rows := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row %d: %w", rows+1, err)
		}
		rows++

		for i, state := range states {
			var raw string
			if i < len(record) {
				raw = record[i]
			}
			value, present := normalize.Clean(raw)
			if !present {
				state.empty++
				continue
			}
			state.nonEmpty++
			state.observe(value)
		}
	}

	report := &Report{Rows: rows, Columns: make([]Column, 0, len(states))}
	for _, state := range states {
		report.Columns = append(report.Columns, state.column())
	}
	return report, nil
}

func (s *columnState) observe(value string) {
	if len(s.unique) < MaxTrackedUnique {
		s.unique[value] = struct{}{}
	} else if _, seen := s.unique[value]; !seen {
		s.overflow++
	}

	kind := classify(value)
	switch {
	case s.kind == TypeEmpty:
		s.kind = kind
	case s.kind == kind:
	case s.kind == TypeInteger && kind == TypeDecimal,
		s.kind == TypeDecimal && kind == TypeInteger:
		s.kind = TypeDecimal
	default:
		s.kind = TypeMixed
	}
}

func (s *columnState) column() Column {
	col := Column{
		Name:     s.name,
		Type:     s.kind,
		NonEmpty: s.nonEmpty,
		Empty:    s.empty,
		Unique:   len(s.unique) + s.overflow,
	}
	if s.overflow == 0 && len(s.unique) > 0 {
		col.Values = make([]string, 0, len(s.unique))
		for v := range s.unique {
			col.Values = append(col.Values, v)
		}
		sort.Strings(col.Values)
	}
	return col
}

func classify(value string) ColumnType {
	switch value {
	case "Y", "YES", "TRUE", "true", "False", "FALSE", "Yes", "No", "NO", "y":
		return TypeBoolean
	}
	if _, err := strconv.ParseInt(value, 10, 64); err == nil {
		return TypeInteger
	}
	if _, err := strconv.ParseFloat(value, 64); err == nil {
		return TypeDecimal
	}
	return TypeText
}

// WriteColumnTypes renders the per-column summary as CSV.
func WriteColumnTypes(w io.Writer, report *Report) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"column", "type", "non_empty", "empty", "unique"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, col := range report.Columns {
		row := []string{
			col.Name,
			string(col.Type),
			strconv.Itoa(col.NonEmpty),
			strconv.Itoa(col.Empty),
			strconv.Itoa(col.Unique),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("writing column %s: %w", col.Name, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flushing output: %w", err)
	}
	return nil
}

// WriteUniqueValues renders each column's tracked unique values as plain
// text, one section per column.
func WriteUniqueValues(w io.Writer, report *Report) error {
	for _, col := range report.Columns {
		if _, err := fmt.Fprintf(w, "%s (%d unique)\n%s\n", col.Name, col.Unique, strings.Repeat("-", 40)); err != nil {
			return fmt.Errorf("writing section %s: %w", col.Name, err)
		}
		if col.Values == nil && col.Unique > 0 {
			if _, err := fmt.Fprintf(w, "(more than %d distinct values, not listed)\n", MaxTrackedUnique); err != nil {
				return err
			}
		}
		for _, v := range col.Values {
			if _, err := fmt.Fprintln(w, v); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
