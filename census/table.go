// Copyright 2024 the census-go authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package census

import (
	"math"
	"strconv"

	"github.com/pkg/errors"
)

// Table is a labeled tabular query result. Every cell is a string as
// received from the API; numeric interpretation is explicit via Ints,
// Floats and Ratio. A Table is exclusively owned by its caller.
type Table struct {
	Columns []string
	Rows    [][]string
}

func (t *Table) NumRows() int {
	return len(t.Rows)
}

// Returns the index of the named column, or -1.
func (t *Table) Index(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Returns the cells of the named column, or nil if it does not exist.
func (t *Table) Column(name string) []string {
	ix := t.Index(name)
	if ix < 0 {
		return nil
	}
	result := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		result[i] = row[ix]
	}
	return result
}

// Kind is the semantic type of a column. Text is the default for every
// column; geography identifiers stay Text so values like "00601" are
// never coerced.
type Kind int

const (
	Text Kind = iota
	Int
	Float
)

// ColumnKind designates the semantic type of one named column.
type ColumnKind struct {
	Column string
	Kind   Kind
}

// Schema is an ordered list of column type designations. Columns not
// listed default to Text.
type Schema []ColumnKind

// Parse the named column as integers.
func (t *Table) Ints(name string) ([]int64, error) {
	ix := t.Index(name)
	if ix < 0 {
		return nil, errors.Errorf("no column '%s'", name)
	}
	result := make([]int64, len(t.Rows))
	for i, row := range t.Rows {
		v, err := strconv.ParseInt(row[ix], 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "column '%s' row %d", name, i)
		}
		result[i] = v
	}
	return result, nil
}

// Parse the named column as floats.
func (t *Table) Floats(name string) ([]float64, error) {
	ix := t.Index(name)
	if ix < 0 {
		return nil, errors.Errorf("no column '%s'", name)
	}
	result := make([]float64, len(t.Rows))
	for i, row := range t.Rows {
		v, err := strconv.ParseFloat(row[ix], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "column '%s' row %d", name, i)
		}
		result[i] = v
	}
	return result, nil
}

// Check verifies that every column the schema designates as numeric
// parses cleanly. Text designations only require the column to exist.
// The table is not mutated.
func (t *Table) Check(schema Schema) error {
	for _, ck := range schema {
		switch ck.Kind {
		case Int:
			if _, err := t.Ints(ck.Column); err != nil {
				return err
			}
		case Float:
			if _, err := t.Floats(ck.Column); err != nil {
				return err
			}
		default:
			if t.Index(ck.Column) < 0 {
				return errors.Errorf("no column '%s'", ck.Column)
			}
		}
	}
	return nil
}

// Parse a column for ratio arithmetic. Empty cells (JSON nulls) read
// as NaN rather than failing, matching missing-denominator semantics.
func (t *Table) ratioColumn(name string) ([]float64, error) {
	ix := t.Index(name)
	if ix < 0 {
		return nil, errors.Errorf("no column '%s'", name)
	}
	result := make([]float64, len(t.Rows))
	for i, row := range t.Rows {
		cell := row[ix]
		if cell == "" {
			result[i] = math.NaN()
			continue
		}
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "column '%s' row %d", name, i)
		}
		result[i] = v
	}
	return result, nil
}

// Ratio computes the elementwise quotient of two numeric columns.
// Division follows IEEE semantics: 0/0 is NaN, n/0 is +/-Inf. Source
// columns are not mutated.
func (t *Table) Ratio(numerator, denominator string) ([]float64, error) {
	nv, err := t.ratioColumn(numerator)
	if err != nil {
		return nil, err
	}
	dv, err := t.ratioColumn(denominator)
	if err != nil {
		return nil, err
	}
	result := make([]float64, len(nv))
	for i := range nv {
		result[i] = nv[i] / dv[i]
	}
	return result, nil
}

// AddRatio appends the quotient of two numeric columns as a new column.
func (t *Table) AddRatio(name, numerator, denominator string) error {
	vals, err := t.Ratio(numerator, denominator)
	if err != nil {
		return err
	}
	cells := make([]string, len(vals))
	for i, v := range vals {
		cells[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return t.AddColumn(name, cells)
}

// AddColumn appends a new column with the given cells.
func (t *Table) AddColumn(name string, cells []string) error {
	if t.Index(name) >= 0 {
		return errors.Errorf("column '%s' already exists", name)
	}
	if len(cells) != len(t.Rows) {
		return errors.Errorf("column '%s' has %d cells, table has %d rows",
			name, len(cells), len(t.Rows))
	}
	t.Columns = append(t.Columns, name)
	for i := range t.Rows {
		t.Rows[i] = append(t.Rows[i], cells[i])
	}
	return nil
}
