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

import "strings"

// Variable describes one dataset variable from the discovery metadata.
type Variable struct {
	Label         string `json:"label"`
	Concept       string `json:"concept"`
	PredicateType string `json:"predicateType"`
	Group         string `json:"group"`
}

// VariableList maps variable ids to their descriptions.
type VariableList map[string]Variable

type variablesResponse struct {
	Variables VariableList `json:"variables"`
}

// Match returns the subset of variables whose id or label contains the
// given pattern, case-insensitively. An empty pattern matches all.
func (vl VariableList) Match(pattern string) VariableList {
	if pattern == "" {
		return vl
	}
	pattern = strings.ToLower(pattern)
	result := VariableList{}
	for name, v := range vl {
		if strings.Contains(strings.ToLower(name), pattern) ||
			strings.Contains(strings.ToLower(v.Label), pattern) {
			result[name] = v
		}
	}
	return result
}

// Variables fetches the variable metadata for the given vintage.
func (c *Client) Variables(vintage int) (VariableList, error) {
	var rsp variablesResponse
	err := c.getJSON(c.Url(vintage, "variables.json"), nil, &rsp)
	if err != nil {
		return nil, err
	}
	return rsp.Variables, nil
}

// GeoLevel describes one geography level and its containment
// requirements, eg. county requires state.
type GeoLevel struct {
	Name            string   `json:"name"`
	GeoLevelDisplay string   `json:"geoLevelDisplay"`
	ReferenceDate   string   `json:"referenceDate"`
	Requires        []string `json:"requires,omitempty"`
	Wildcard        []string `json:"wildcard,omitempty"`
}

type GeoLevels []GeoLevel

type geographyResponse struct {
	Fips GeoLevels `json:"fips"`
}

// GeographyLevels fetches the geography hierarchy for the given vintage.
func (c *Client) GeographyLevels(vintage int) (GeoLevels, error) {
	var rsp geographyResponse
	err := c.getJSON(c.Url(vintage, "geography.json"), nil, &rsp)
	if err != nil {
		return nil, err
	}
	return rsp.Fips, nil
}

// Group describes one thematic bundle of related variables.
type Group struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Variables   string `json:"variables"`
}

type Groups []Group

type groupsResponse struct {
	Groups Groups `json:"groups"`
}

// DatasetGroups fetches the variable groups for the given vintage.
func (c *Client) DatasetGroups(vintage int) (Groups, error) {
	var rsp groupsResponse
	err := c.getJSON(c.Url(vintage, "groups.json"), nil, &rsp)
	if err != nil {
		return nil, err
	}
	return rsp.Groups, nil
}
