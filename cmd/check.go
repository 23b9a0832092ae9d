package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCheckCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify the merged snippet file is up to date without writing it",
		Long: `check validates every snippet file exactly like generate, then compares the
result with the existing output file. It exits non-zero if the output is
missing or differs, which makes it suitable for CI.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := opts.openProject()
			if err != nil {
				return err
			}

			res, err := p.generator(opts.log).Check()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "✅ Syntax Frame global snippet is up to date (%d snippets from %d files):\n",
				res.Snippets, len(res.Files))
			fmt.Fprintf(out, "   %s\n", p.abs(res.OutputFile))
			return nil
		},
	}
}
