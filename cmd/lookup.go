// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/open-policy-agent/atom/v1/atom"
	"github.com/open-policy-agent/atom/v1/atom/table"
)

type lookupResult struct {
	Name        string   `json:"name"`
	Kind        string   `json:"kind"`
	Index       int      `json:"index"`
	Hash        string   `json:"hash"`
	Suggestions []string `json:"suggestions,omitempty"`
}

func lookup(name string, maxDist int) lookupResult {
	a := atom.From(name)
	res := lookupResult{
		Name:  a.String(),
		Kind:  a.Kind().String(),
		Index: table.Default().Index(name),
		Hash:  fmt.Sprintf("%016x", a.Hash()),
	}
	if !a.IsStatic() && maxDist > 0 {
		res.Suggestions = table.Default().Suggest(name, maxDist)
	}
	return res
}

func newLookupCommand(r *root) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lookup <name> [<name>...]",
		Short: "Show how names are interned",
		Long: `Show how names are interned.

For each name, lookup prints whether it is a static table entry or would be
stored as an owned string, its table index (-1 when absent) and its content
hash. Names missing from the table get suggestions for close table entries.`,
		Args: cobra.MinimumNArgs(1),
		PreRunE: func(*cobra.Command, []string) error {
			return checkFormat(r.v.GetString("format"))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			maxDist := r.v.GetInt("max-distance")

			results := make([]lookupResult, len(args))
			for i, name := range args {
				results[i] = lookup(name, maxDist)
				r.logger.WithFields(map[string]any{"name": name}).Debug("Looked up %v atom.", results[i].Kind)
			}

			if r.v.GetString("format") == formatJSON {
				return renderJSON(cmd.OutOrStdout(), results)
			}

			rows := make([][]string, len(results))
			for i, res := range results {
				rows[i] = []string{res.Name, res.Kind, strconv.Itoa(res.Index), res.Hash, strings.Join(res.Suggestions, ", ")}
			}
			return renderTable(cmd.OutOrStdout(), []string{"Name", "Kind", "Index", "Hash", "Did you mean"}, rows)
		},
	}

	cmd.Flags().IntP("max-distance", "d", 2, "maximum edit distance of suggestions (0 disables them)")
	cmd.Flags().StringP("format", "f", formatPretty, "set output format (pretty, json)")

	return cmd
}
