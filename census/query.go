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
	"net/url"
	"strings"

	"github.com/pkg/errors"
)

// Wildcard selects all values of a geography level.
const Wildcard = "*"

// Field names an API variable to request and the column label it should
// carry in the result. An empty Label keeps the API name.
type Field struct {
	Name  string
	Label string
}

// Fields is an ordered list of requested variables. Order determines
// the `get` parameter and, transitively, the result column order. The
// API accepts at most 50 variables per call; that bound is left to the
// remote service.
type Fields []Field

// Returns the API variable names in declaration order.
func (fs Fields) Names() []string {
	names := make([]string, len(fs))
	for i, f := range fs {
		names[i] = f.Name
	}
	return names
}

// Returns the output label for the given header cell. Cells that do not
// name a requested variable pass through unchanged, which is how
// server-injected geography identifier columns keep their names.
func (fs Fields) label(name string) string {
	for _, f := range fs {
		if f.Name == name && f.Label != "" {
			return f.Label
		}
	}
	return name
}

// Geo is one level:value pair of a geography constraint, eg.
// {"state", "06"} or {"zip code tabulation area", Wildcard}.
type Geo struct {
	Level string
	Value string
}

// Geography is an ordered list of level:value pairs, used for both the
// `for` (target) and `in` (containing) clauses.
type Geography []Geo

func (g Geography) clause() string {
	parts := make([]string, len(g))
	for i, geo := range g {
		parts[i] = geo.Level + ":" + geo.Value
	}
	return strings.Join(parts, ",")
}

var ErrNoFields = errors.New("no fields requested")
var ErrNoGeography = errors.New("no target geography")

// Construct the query parameters for a data request.
func queryArgs(fields Fields, forGeo, inGeo Geography, key string) (url.Values, error) {
	if len(fields) == 0 {
		return nil, ErrNoFields
	}
	if len(forGeo) == 0 {
		return nil, ErrNoGeography
	}
	args := url.Values{}
	args.Set("get", strings.Join(fields.Names(), ","))
	args.Set("for", forGeo.clause())
	if len(inGeo) > 0 {
		args.Set("in", inGeo.clause())
	}
	if key != "" {
		args.Set("key", key)
	}
	return args, nil
}

// Query requests the given variables for the given vintage and
// geography and returns the response as a Table. The response header
// row supplies the column names, renamed through fields; the remaining
// rows become data rows in received order. All cells remain strings --
// casting is the caller's explicit responsibility, so identifier-like
// columns are never silently coerced.
//
// A non-2xx response fails with *HTTPError; a body that is not a
// non-empty rectangular 2D array of strings fails with *ShapeError.
// Both are terminal, no partial result is ever returned.
func (c *Client) Query(vintage int, fields Fields, forGeo, inGeo Geography) (*Table, error) {
	args, err := queryArgs(fields, forGeo, inGeo, c.Key)
	if err != nil {
		return nil, err
	}
	data, err := c.get(c.Url(vintage), args)
	if err != nil {
		return nil, err
	}
	rows, err := parseRows(data)
	if err != nil {
		return nil, err
	}
	return newTable(rows, fields), nil
}

// Parse and validate the response body as a non-empty rectangular 2D
// array of strings.
func parseRows(data []byte) ([][]string, error) {
	var rows [][]string
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, &ShapeError{Reason: fmt.Sprintf("not a 2D array of strings: %v", err)}
	}
	if len(rows) == 0 {
		return nil, &ShapeError{Reason: "empty response array"}
	}
	width := len(rows[0])
	if width == 0 {
		return nil, &ShapeError{Reason: "empty header row"}
	}
	for i, row := range rows {
		if len(row) != width {
			return nil, &ShapeError{Reason: fmt.Sprintf(
				"row %d has %d cells, header has %d", i, len(row), width)}
		}
	}
	return rows, nil
}

func newTable(rows [][]string, fields Fields) *Table {
	columns := make([]string, len(rows[0]))
	for i, name := range rows[0] {
		columns[i] = fields.label(name)
	}
	return &Table{Columns: columns, Rows: rows[1:]}
}
