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
	"testing"
)

func testTable() *Table {
	return &Table{
		Columns: []string{"total", "female", "zcta"},
		Rows: [][]string{
			{"0", "0", "00601"},
			{"0", "10", "00602"},
			{"4", "1", "00603"},
		},
	}
}

func TestRatio(t *testing.T) {
	table := testTable()
	vals, err := table.Ratio("female", "total")
	if err != nil {
		t.Fatal(err)
	}
	if !math.IsNaN(vals[0]) {
		t.Errorf("0/0: got %v, want NaN", vals[0])
	}
	if !math.IsInf(vals[1], 1) {
		t.Errorf("10/0: got %v, want +Inf", vals[1])
	}
	if vals[2] != 0.25 {
		t.Errorf("1/4: got %v, want 0.25", vals[2])
	}
}

func TestRatioMissingDenominator(t *testing.T) {
	table := &Table{
		Columns: []string{"num", "den"},
		Rows:    [][]string{{"5", ""}},
	}
	vals, err := table.Ratio("num", "den")
	if err != nil {
		t.Fatal(err)
	}
	if !math.IsNaN(vals[0]) {
		t.Errorf("5/missing: got %v, want NaN", vals[0])
	}
}

func TestRatioErrors(t *testing.T) {
	table := testTable()
	if _, err := table.Ratio("female", "nope"); err == nil {
		t.Error("expected error for missing column")
	}
	named := &Table{
		Columns: []string{"name", "total"},
		Rows:    [][]string{{"Adjuntas", "17126"}},
	}
	if _, err := named.Ratio("name", "total"); err == nil {
		t.Error("expected error for non-numeric column")
	}
}

func TestAddRatio(t *testing.T) {
	table := testTable()
	if err := table.AddRatio("share", "female", "total"); err != nil {
		t.Fatal(err)
	}
	if table.Columns[3] != "share" {
		t.Errorf("columns: got %v", table.Columns)
	}
	if got := table.Rows[2][3]; got != "0.25" {
		t.Errorf("share cell: got %q", got)
	}
	// Source columns untouched.
	if table.Rows[2][0] != "4" || table.Rows[2][1] != "1" {
		t.Errorf("source cells mutated: %v", table.Rows[2])
	}
	if err := table.AddRatio("share", "female", "total"); err == nil {
		t.Error("expected error for duplicate column")
	}
}

func TestAddColumnLengthMismatch(t *testing.T) {
	table := testTable()
	if err := table.AddColumn("extra", []string{"1"}); err == nil {
		t.Error("expected error for cell count mismatch")
	}
}

func TestCasts(t *testing.T) {
	table := testTable()
	ints, err := table.Ints("female")
	if err != nil {
		t.Fatal(err)
	}
	if ints[1] != 10 {
		t.Errorf("female[1]: got %d", ints[1])
	}
	floats, err := table.Floats("total")
	if err != nil {
		t.Fatal(err)
	}
	if floats[2] != 4.0 {
		t.Errorf("total[2]: got %v", floats[2])
	}
	if _, err := table.Ints("zcta"); err == nil {
		t.Error("expected parse error casting zcta to int")
	}
	// The identifier column is untouched by numeric access elsewhere.
	if got := table.Rows[0][2]; got != "00601" {
		t.Errorf("zcta cell: got %q", got)
	}
}

func TestCheck(t *testing.T) {
	table := testTable()
	schema := Schema{
		{Column: "total", Kind: Int},
		{Column: "female", Kind: Float},
		{Column: "zcta", Kind: Text},
	}
	if err := table.Check(schema); err != nil {
		t.Fatal(err)
	}
	bad := Schema{{Column: "zcta", Kind: Int}}
	if err := table.Check(bad); err == nil {
		t.Error("expected error for int-designated identifier column")
	}
	missing := Schema{{Column: "nope", Kind: Text}}
	if err := table.Check(missing); err == nil {
		t.Error("expected error for missing column")
	}
}

func TestColumnAccess(t *testing.T) {
	table := testTable()
	if got := table.Index("nope"); got != -1 {
		t.Errorf("index of missing column: got %d", got)
	}
	if got := table.Column("nope"); got != nil {
		t.Errorf("missing column: got %v", got)
	}
	col := table.Column("zcta")
	if len(col) != 3 || col[0] != "00601" {
		t.Errorf("zcta column: got %v", col)
	}
}
