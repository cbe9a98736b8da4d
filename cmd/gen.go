// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/open-policy-agent/atom/internal/gen"
)

func newGenCommand(r *root) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate the static table from its YAML source",
		Long: `Generate the static table from its YAML source.

The source lists the names to intern in named groups. Names are merged, sorted
and written as a Go array whose element addresses identify table entries. With
--check, gen fails and prints a diff when the output file is out of date
instead of writing it.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			input, output := r.v.GetString("input"), r.v.GetString("output")

			bs, err := os.ReadFile(input)
			if err != nil {
				return err
			}
			src, err := gen.Load(bs)
			if err != nil {
				return fmt.Errorf("%s: %w", input, err)
			}
			rendered, err := gen.Render(src)
			if err != nil {
				return err
			}

			if r.v.GetBool("check") {
				existing, err := os.ReadFile(output)
				if err != nil {
					return err
				}
				if err := gen.Check(existing, rendered); err != nil {
					return fmt.Errorf("%s: %w", output, err)
				}
				r.logger.Info("%s is up to date.", output)
				return nil
			}

			if err := os.WriteFile(output, rendered, 0o644); err != nil {
				return err
			}
			r.logger.WithFields(map[string]any{"names": len(src.Names())}).Info("Wrote %s.", output)
			return nil
		},
	}

	cmd.Flags().StringP("input", "i", "atoms.yaml", "path of the table source")
	cmd.Flags().StringP("output", "o", "table_data.go", "path of the generated Go file")
	cmd.Flags().Bool("check", false, "fail if the output file is out of date instead of writing it")

	return cmd
}
