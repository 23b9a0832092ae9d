package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	billy "github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/syntax-frame/syntax-frame/internal/config"
	"github.com/syntax-frame/syntax-frame/internal/snippet"
)

const errorHeader = "❌ Generator Error:"

// options are shared by every subcommand.
type options struct {
	root    string
	verbose bool
	log     *zap.Logger
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{log: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:   "syntax-frame",
		Short: "Merge per-language snippet files into one VS Code global snippet file",
		Long: `syntax-frame reads snippets/*.json under the project root, checks that every
snippet has a prefix, scope and body, renames each one to "<name> — <Language>"
and writes them all to dist/syntax-frame.code-snippets.

Running without a subcommand is the same as "syntax-frame generate".`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			opts.log = newLogger(cmd.ErrOrStderr(), opts.verbose)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = opts.log.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts)
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	rootCmd.PersistentFlags().StringVar(&opts.root, "root", ".", "Project root containing snippets/ and dist/")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging on stderr")

	rootCmd.AddCommand(
		newGenerateCmd(opts),
		newCheckCmd(opts),
		newSchemaCmd(opts),
	)
	return rootCmd
}

// newLogger writes console-encoded logs to w. Warnings and errors are always
// shown; --verbose adds the generator's debug trace.
func newLogger(w io.Writer, verbose bool) *zap.Logger {
	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), level)
	return zap.New(core)
}

// project opens the project root and loads its config.
type project struct {
	root string
	fs   billy.Filesystem
	cfg  *config.Config
}

func (o *options) openProject() (*project, error) {
	root, err := filepath.Abs(o.root)
	if err != nil {
		return nil, fmt.Errorf("resolve project root: %w", err)
	}
	fs := osfs.New(root)

	cfg, err := config.Load(fs)
	if err != nil {
		return nil, err
	}
	o.log.Debug("project",
		zap.String("root", root),
		zap.String("config", cfg.Source),
		zap.String("snippets_dir", cfg.SnippetsDir),
		zap.String("output", cfg.OutputFile))

	return &project{root: root, fs: fs, cfg: cfg}, nil
}

func (p *project) generator(log *zap.Logger) *snippet.Generator {
	return snippet.New(p.fs,
		snippet.WithPaths(p.cfg.SnippetsDir, p.cfg.OutputFile),
		snippet.WithLogger(log))
}

// abs returns a root-relative path as an absolute one for display.
func (p *project) abs(rel string) string {
	return filepath.Join(p.root, rel)
}

// run executes the CLI and returns the process exit code. Failures are
// reported as a fixed header line followed by the error message.
func run(args []string, stdout, stderr io.Writer) int {
	rootCmd := newRootCmd(stdout, stderr)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(stderr, errorHeader)
		fmt.Fprintln(stderr, err)
		return snippet.ExitFailure
	}
	return 0
}

// Execute runs the root command.
func Execute() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
