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

package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"census/census"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func fatal(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(os.Stderr, "Error: %s\n", msg)
	os.Exit(1)
}

func rtrimEol(value string) string {
	return strings.TrimRight(value, "\r\n")
}

// Represents the state used when processing a command.
type Action struct {
	cmd    *cobra.Command
	quiet  bool
	client *census.Client
	start  time.Time
}

func newAction(cmd *cobra.Command) *Action {
	result := &Action{cmd: cmd, start: time.Now()}
	result.quiet = result.getBool("quiet")
	return result
}

func (a *Action) Client() *census.Client {
	if a.client == nil {
		a.client = a.newClient()
	}
	return a.client
}

func (a *Action) getBool(name string) bool {
	result, _ := a.cmd.Flags().GetBool(name)
	return result
}

func (a *Action) getInt(name string) int {
	result, _ := a.cmd.Flags().GetInt(name)
	return result
}

func (a *Action) getString(name string) string {
	result, _ := a.cmd.Flags().GetString(name)
	return result
}

func (a *Action) getStringArray(name string) []string {
	result, _ := a.cmd.Flags().GetStringArray(name)
	return result
}

func (a *Action) loadConfig() *census.Config {
	var cfg census.Config
	fname := a.getString("config")
	profile := a.getString("profile")
	// The default config file is optional, flags and defaults suffice.
	err := census.LoadConfigFile(fname, profile, &cfg)
	if err != nil && fname != census.DefaultConfigFile {
		fmt.Printf("\n%s\n", rtrimEol(err.Error()))
	}
	if host := a.getString("host"); host != "" {
		cfg.Host = host
	}
	if dataset := a.getString("dataset"); dataset != "" {
		cfg.Dataset = dataset
	}
	if key := a.getString("key"); key != "" {
		cfg.Key = key
	}
	return &cfg
}

func (a *Action) newClient() *census.Client {
	cfg := a.loadConfig()
	opts := &census.ClientOptions{Config: *cfg}
	return census.NewClient(a.cmd.Context(), opts)
}

func showJSON(v interface{}) {
	census.ShowJSON(v, 2)
}

func (a *Action) showValue(v interface{}) {
	if v == nil {
		return
	}
	format := a.getString("format")
	if format == "pretty" {
		if s, ok := v.(census.Showable); ok {
			s.Show()
			return
		}
	}
	showJSON(v)
}

func (a *Action) Append(format string, args ...interface{}) *Action {
	if a.quiet {
		return a
	}
	fmt.Printf(format, args...)
	return a
}

// Show the action banner message.
func (a *Action) Start(format string, args ...interface{}) *Action {
	if a.quiet {
		return a
	}
	msg := fmt.Sprintf(format, args...)
	fmt.Printf("%s .. ", msg)
	return a
}

// Update the action banner and exit.
func (a *Action) Exit(result interface{}, err error) {
	delta := time.Since(a.start).Seconds()
	if err != nil {
		a.Append("(%.1fs)\n%s\n", delta, rtrimEol(err.Error()))
		os.Exit(1)
	}
	a.Append("Ok (%.1fs)\n", delta)
	a.showValue(result)
	os.Exit(0)
}

// Parse variable[=label] arguments into an ordered field list.
func parseFields(args []string) census.Fields {
	fields := make(census.Fields, len(args))
	for i, arg := range args {
		name, label, _ := strings.Cut(arg, "=")
		fields[i] = census.Field{Name: name, Label: label}
	}
	return fields
}

// Parse level:value flags into a geography clause.
func parseGeography(specs []string) (census.Geography, error) {
	geo := make(census.Geography, len(specs))
	for i, spec := range specs {
		level, value, found := strings.Cut(spec, ":")
		if !found || level == "" || value == "" {
			return nil, errors.Errorf("bad geography '%s', want level:value", spec)
		}
		geo[i] = census.Geo{Level: level, Value: value}
	}
	return geo, nil
}

// Parse a name=numerator/denominator ratio spec.
func parseRatio(spec string) (name, num, den string, err error) {
	name, expr, found := strings.Cut(spec, "=")
	if found {
		num, den, found = strings.Cut(expr, "/")
	}
	if !found || name == "" || num == "" || den == "" {
		err = errors.Errorf("bad ratio '%s', want name=numerator/denominator", spec)
	}
	return
}

// Parse column:int|float flags into a schema.
func parseSchema(specs []string) (census.Schema, error) {
	schema := make(census.Schema, len(specs))
	for i, spec := range specs {
		column, kind, found := strings.Cut(spec, ":")
		if !found || column == "" {
			return nil, errors.Errorf("bad cast '%s', want column:int|float", spec)
		}
		switch kind {
		case "int":
			schema[i] = census.ColumnKind{Column: column, Kind: census.Int}
		case "float":
			schema[i] = census.ColumnKind{Column: column, Kind: census.Float}
		case "text":
			schema[i] = census.ColumnKind{Column: column, Kind: census.Text}
		default:
			return nil, errors.Errorf("bad cast kind '%s'", kind)
		}
	}
	return schema, nil
}

//
// Data
//

func getData(cmd *cobra.Command, args []string) {
	action := newAction(cmd)
	fields := parseFields(args)
	forGeo, err := parseGeography(action.getStringArray("for"))
	if err != nil {
		fatal(err.Error())
	}
	inGeo, err := parseGeography(action.getStringArray("in"))
	if err != nil {
		fatal(err.Error())
	}
	schema, err := parseSchema(action.getStringArray("cast"))
	if err != nil {
		fatal(err.Error())
	}
	ratios := action.getStringArray("ratio")
	vintage := action.getInt("vintage")
	action.Start("Query %d variables (%d)", len(fields), vintage)
	table, err := action.Client().Query(vintage, fields, forGeo, inGeo)
	if err != nil {
		action.Exit(nil, err)
	}
	if err := table.Check(schema); err != nil {
		action.Exit(nil, err)
	}
	for _, spec := range ratios {
		name, num, den, err := parseRatio(spec)
		if err == nil {
			err = table.AddRatio(name, num, den)
		}
		if err != nil {
			action.Exit(nil, err)
		}
	}
	action.Exit(table, nil)
}

//
// Discovery
//

func listVariables(cmd *cobra.Command, args []string) {
	action := newAction(cmd)
	vintage := action.getInt("vintage")
	match := ""
	if len(args) > 0 {
		match = args[0]
	}
	action.Start("List variables (%d)", vintage)
	items, err := action.Client().Variables(vintage)
	if err == nil {
		items = items.Match(match)
	}
	action.Exit(items, err)
}

func listGeography(cmd *cobra.Command, args []string) {
	// assert len(args) == 0
	action := newAction(cmd)
	vintage := action.getInt("vintage")
	action.Start("List geography levels (%d)", vintage)
	items, err := action.Client().GeographyLevels(vintage)
	action.Exit(items, err)
}

func listGroups(cmd *cobra.Command, args []string) {
	// assert len(args) == 0
	action := newAction(cmd)
	vintage := action.getInt("vintage")
	action.Start("List groups (%d)", vintage)
	items, err := action.Client().DatasetGroups(vintage)
	action.Exit(items, err)
}
