package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newGenerateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Rebuild dist/syntax-frame.code-snippets from snippets/*.json",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts)
		},
	}
}

func runGenerate(cmd *cobra.Command, opts *options) error {
	p, err := opts.openProject()
	if err != nil {
		return err
	}

	res, err := p.generator(opts.log).Generate()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "✅ Syntax Frame global snippet generated successfully:")
	fmt.Fprintf(out, "   %s\n", p.abs(res.OutputFile))
	return nil
}
