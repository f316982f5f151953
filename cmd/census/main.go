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
	"github.com/spf13/cobra"
)

func addVintageFlag(cmd *cobra.Command) {
	cmd.Flags().IntP("vintage", "v", 2021, "dataset vintage year")
}

func addCommands(root *cobra.Command) {
	// Data
	cmd := &cobra.Command{
		Use:   "get variable[=label]...",
		Short: "Query the dataset for the given variables",
		Args:  cobra.MinimumNArgs(1),
		Run:   getData}
	addVintageFlag(cmd)
	cmd.Flags().StringArrayP("for", "f", nil, "target geography, level:value")
	cmd.Flags().StringArrayP("in", "i", nil, "containing geography, level:value")
	cmd.Flags().StringArray("ratio", nil, "derived share column, name=numerator/denominator")
	cmd.Flags().StringArray("cast", nil, "column type check, column:int|float")
	cmd.MarkFlagRequired("for")
	root.AddCommand(cmd)

	// Discovery
	cmd = &cobra.Command{
		Use:   "variables [match]",
		Short: "List dataset variables, optionally filtered by id or label",
		Args:  cobra.MaximumNArgs(1),
		Run:   listVariables}
	addVintageFlag(cmd)
	root.AddCommand(cmd)

	cmd = &cobra.Command{
		Use:   "geography",
		Short: "List the dataset's geography levels",
		Args:  cobra.ExactArgs(0),
		Run:   listGeography}
	addVintageFlag(cmd)
	root.AddCommand(cmd)

	cmd = &cobra.Command{
		Use:   "groups",
		Short: "List the dataset's variable groups",
		Args:  cobra.ExactArgs(0),
		Run:   listGroups}
	addVintageFlag(cmd)
	root.AddCommand(cmd)
}

func main() {
	var root = &cobra.Command{Use: "census"}
	root.PersistentFlags().String("host", "", "host name")
	root.PersistentFlags().String("dataset", "", "dataset path, eg. acs/acs5")
	root.PersistentFlags().String("key", "", "API key")
	root.PersistentFlags().String("config", "~/.census/config", "config file")
	root.PersistentFlags().String("profile", "default", "config profile")
	root.PersistentFlags().BoolP("quiet", "q", false, "silence status output")
	root.PersistentFlags().String("format", "pretty", "format results, 'json' or 'pretty'")
	addCommands(root)
	root.Execute()
}
