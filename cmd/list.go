// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/open-policy-agent/atom/v1/atom/table"
)

type listEntry struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
}

func newListCommand(r *root) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the static table",
		Args:  cobra.NoArgs,
		PreRunE: func(*cobra.Command, []string) error {
			return checkFormat(r.v.GetString("format"))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			tbl := table.Default()

			var names []string
			if pattern := r.v.GetString("match"); pattern != "" {
				var err error
				if names, err = tbl.Match(pattern); err != nil {
					return fmt.Errorf("invalid pattern %q: %w", pattern, err)
				}
			} else {
				names = tbl.WithPrefix(r.v.GetString("prefix"))
			}

			entries := make([]listEntry, len(names))
			for i, name := range names {
				entries[i] = listEntry{Index: tbl.Index(name), Name: name}
			}

			if r.v.GetString("format") == formatJSON {
				return renderJSON(cmd.OutOrStdout(), entries)
			}

			rows := make([][]string, len(entries))
			for i, e := range entries {
				rows[i] = []string{strconv.Itoa(e.Index), e.Name, strconv.Itoa(len(e.Name))}
			}
			if err := renderTable(cmd.OutOrStdout(), []string{"Index", "Name", "Length"}, rows); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d of %d entries\n", len(entries), tbl.Len())
			return nil
		},
	}

	cmd.Flags().String("prefix", "", "only list entries starting with prefix")
	cmd.Flags().String("match", "", "only list entries matching a glob pattern")
	cmd.Flags().StringP("format", "f", formatPretty, "set output format (pretty, json)")
	cmd.MarkFlagsMutuallyExclusive("prefix", "match")

	return cmd
}
