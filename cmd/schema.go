package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/go-git/go-billy/v5/util"
	"github.com/spf13/cobra"

	"github.com/syntax-frame/syntax-frame/internal/schema"
)

func newSchemaCmd(opts *options) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of a snippet source file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := schema.Render()
			if err != nil {
				return err
			}

			if outPath == "" {
				_, err := cmd.OutOrStdout().Write(data)
				return err
			}

			p, err := opts.openProject()
			if err != nil {
				return err
			}
			if !filepath.IsLocal(outPath) {
				return fmt.Errorf("--out %q must be a relative path inside the project root", outPath)
			}
			if err := p.fs.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
				return fmt.Errorf("creating %s: %w", filepath.Dir(outPath), err)
			}
			if err := util.WriteFile(p.fs, outPath, data, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", outPath, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote snippet schema to %s\n", p.abs(outPath))
			return nil
		},
	}
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write the schema to this path under the project root instead of stdout")
	return cmd
}
