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
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

func makeIndent(indent int) string {
	return strings.Repeat(" ", indent)
}

// Encode the given item as JSON to the given writer.
func Encode(w io.Writer, item interface{}, indent int) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", makeIndent(indent))
	return enc.Encode(item)
}

// Print the given item as JSON to stdout.
func ShowJSON(item interface{}, indent int) error {
	return Encode(os.Stdout, item, indent)
}

type Showable interface {
	Show()
}

func (t *Table) Show() {
	widths := make([]int, len(t.Columns))
	for i, c := range t.Columns {
		widths[i] = len(c)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}
	showAligned(t.Columns, widths)
	for _, row := range t.Rows {
		showAligned(row, widths)
	}
}

func showAligned(cells []string, widths []int) {
	for i, cell := range cells {
		if i > 0 {
			fmt.Print("  ")
		}
		fmt.Printf("%-*s", widths[i], cell)
	}
	fmt.Println()
}

func (vl VariableList) Show() {
	names := make([]string, 0, len(vl))
	for name := range vl {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		v := vl[name]
		fmt.Printf("%s  %s", name, v.Label)
		if v.Concept != "" {
			fmt.Printf("  (%s)", v.Concept)
		}
		fmt.Println()
	}
}

func (gs GeoLevels) Show() {
	for _, g := range gs {
		fmt.Print(g.Name)
		if len(g.Requires) > 0 {
			fmt.Printf("  requires %s", strings.Join(g.Requires, ", "))
		}
		fmt.Println()
	}
}

func (gs Groups) Show() {
	for _, g := range gs {
		fmt.Printf("%s  %s\n", g.Name, g.Description)
	}
}
