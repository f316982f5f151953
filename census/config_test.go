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

import "testing"

const testConfig = `
[default]
host = api.census.gov
dataset = acs/acs5
key = abc123

[local]
scheme = http
host = localhost:8080
`

func TestLoadConfigString(t *testing.T) {
	var cfg Config
	if err := LoadConfigString(testConfig, "default", &cfg); err != nil {
		t.Fatal(err)
	}
	if cfg.Host != "api.census.gov" {
		t.Errorf("host: got %q", cfg.Host)
	}
	if cfg.Dataset != "acs/acs5" {
		t.Errorf("dataset: got %q", cfg.Dataset)
	}
	if cfg.Key != "abc123" {
		t.Errorf("key: got %q", cfg.Key)
	}
	if cfg.Scheme != "" {
		t.Errorf("scheme: got %q, want unset", cfg.Scheme)
	}
}

func TestLoadConfigProfile(t *testing.T) {
	var cfg Config
	if err := LoadConfigString(testConfig, "local", &cfg); err != nil {
		t.Fatal(err)
	}
	if cfg.Scheme != "http" || cfg.Host != "localhost:8080" {
		t.Errorf("local profile: got %+v", cfg)
	}
}

func TestLoadConfigMissingProfile(t *testing.T) {
	var cfg Config
	if err := LoadConfigString(testConfig, "nope", &cfg); err == nil {
		t.Error("expected error for missing profile")
	}
}
