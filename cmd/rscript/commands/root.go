// Package commands implements the CLI commands for rscript.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/rscript/internal/app"
	"go.trai.ch/rscript/internal/build"
)

// CLI represents the command line interface for rscript.
type CLI struct {
	app      Application
	rootCmd  *cobra.Command
	exitCode int
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, opts app.RunOptions) (int, error)
	ClearCache(ctx context.Context) error
	ListCache(ctx context.Context, format string, w io.Writer) error
	SetVerbose(verbose bool)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:           "rscript [flags] <script> [args...]",
		Short:         "Run single-file programs, compiling and caching them on demand",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		RunE:          c.runScript,
	}

	// Everything after the script belongs to the script.
	rootCmd.Flags().SetInterspersed(false)
	addRunFlags(rootCmd)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log debug output to stderr")

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c.rootCmd = rootCmd

	rootCmd.AddCommand(c.newCacheCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

func addRunFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.BoolP("expr", "e", false, "Treat the script argument as an expression to evaluate")
	f.StringArrayP("dep", "d", nil, "Add a dependency, as name or name=version (repeatable)")
	f.String("features", "", "Features passed to the build tool")
	f.Bool("debug", false, "Build in debug mode instead of release")
	f.BoolP("force", "f", false, "Force the script to be rebuilt")
	f.BoolP("package", "p", false, "Generate the package and print its path without running it")
	f.String("pkg-path", "", "Generate the package at this path instead of the cache")
	f.Bool("test", false, "Build and run the script's tests")
	f.Bool("bench", false, "Build and run the script's benchmarks")
	f.String("toolchain", "", "Toolchain to build with, as passed to the build tool after '+'")
	f.Bool("clear-cache", false, "Clear the cache before running")
	f.StringArrayP("unstable-feature", "u", nil, "Enable an unstable language feature (repeatable)")
	f.StringArrayP("extern", "x", nil, "Declare an external crate in the script prelude (repeatable)")
	f.BoolP("cargo-output", "c", false, "Show the build tool's output for normal runs")
	f.BoolP("watch", "w", false, "Run again every time the script changes")
}

func (c *CLI) runScript(cmd *cobra.Command, args []string) error {
	f := cmd.Flags()
	clearCache, _ := f.GetBool("clear-cache")
	if len(args) == 0 && !clearCache {
		// Display command usage help without returning an error
		_ = cmd.Help()
		return nil
	}

	c.applyVerbose(cmd)

	opts := app.RunOptions{ClearCache: clearCache}
	if len(args) > 0 {
		opts.Script = args[0]
		opts.Args = args[1:]
	}
	opts.Expr, _ = f.GetBool("expr")
	opts.Deps, _ = f.GetStringArray("dep")
	opts.Features, _ = f.GetString("features")
	opts.Debug, _ = f.GetBool("debug")
	opts.Force, _ = f.GetBool("force")
	opts.GenPkgOnly, _ = f.GetBool("package")
	opts.PkgPath, _ = f.GetString("pkg-path")
	opts.Test, _ = f.GetBool("test")
	opts.Bench, _ = f.GetBool("bench")
	opts.Toolchain, _ = f.GetString("toolchain")
	opts.UnstableFeatures, _ = f.GetStringArray("unstable-feature")
	opts.Externs, _ = f.GetStringArray("extern")
	opts.CargoOutput, _ = f.GetBool("cargo-output")
	opts.Watch, _ = f.GetBool("watch")

	code, err := c.app.Run(cmd.Context(), opts)
	c.exitCode = code
	return err
}

func (c *CLI) applyVerbose(cmd *cobra.Command) {
	verbose, _ := cmd.Flags().GetBool("verbose")
	c.app.SetVerbose(verbose)
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.exitCode = 0
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// ExitCode returns the exit code reported by the last script run.
func (c *CLI) ExitCode() int {
	return c.exitCode
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
