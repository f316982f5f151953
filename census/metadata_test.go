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
	"fmt"
	"net/http"
	"testing"
)

func TestVariables(t *testing.T) {
	var gotPath string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		fmt.Fprint(w, `{"variables": {
			"B01003_001E": {"label": "Estimate!!Total", "concept": "TOTAL POPULATION", "group": "B01003"},
			"NAME": {"label": "Geographic Area Name"}}}`)
	})
	items, err := client.Variables(2021)
	if err != nil {
		t.Fatal(err)
	}
	if gotPath != "/data/2021/acs/acs5/variables.json" {
		t.Errorf("request path: got %q", gotPath)
	}
	if len(items) != 2 {
		t.Fatalf("variables: got %d", len(items))
	}
	if items["B01003_001E"].Concept != "TOTAL POPULATION" {
		t.Errorf("concept: got %q", items["B01003_001E"].Concept)
	}

	matched := items.Match("population")
	if len(matched) != 1 {
		t.Errorf("match: got %d items", len(matched))
	}
	if len(items.Match("")) != 2 {
		t.Error("empty pattern should match all")
	}
}

func TestGeographyLevels(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"fips": [
			{"name": "state", "geoLevelDisplay": "040"},
			{"name": "county", "geoLevelDisplay": "050", "requires": ["state"], "wildcard": ["state"]}]}`)
	})
	items, err := client.GeographyLevels(2021)
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 2 {
		t.Fatalf("levels: got %d", len(items))
	}
	if items[1].Name != "county" || items[1].Requires[0] != "state" {
		t.Errorf("county level: got %+v", items[1])
	}
}

func TestDatasetGroups(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"groups": [{"name": "B01003", "description": "Total Population"}]}`)
	})
	items, err := client.DatasetGroups(2021)
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 1 || items[0].Name != "B01003" {
		t.Errorf("groups: got %+v", items)
	}
}
