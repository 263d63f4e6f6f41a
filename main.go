package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/sinclairtarget/git-churn/internal/config"
	"github.com/sinclairtarget/git-churn/internal/git"
	"github.com/sinclairtarget/git-churn/internal/git/cmd"
	"github.com/sinclairtarget/git-churn/internal/pretty"
	"github.com/sinclairtarget/git-churn/internal/render"
	"github.com/sinclairtarget/git-churn/internal/subcommands"
)

var Commit = "unknown"
var Version = "unknown"

type globalFlags struct {
	verbose    bool
	configPath string
}

// Main sets up the command tree and runs whichever subcommand was specified.
//
// If no subcommand was specified, we default to the "report" subcommand.
func main() {
	var global globalFlags

	rootCmd := &cobra.Command{
		Use:   "git-churn [subcommand]",
		Short: "git-churn summarizes lines added and removed by file type",
		Long: strings.TrimSpace(`
git-churn summarizes the lines one author added and removed, broken down by
file type, using the output of git log --numstat.
		`),
		Version:       fmt.Sprintf("%s %s", Version, Commit),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(c *cobra.Command, args []string) {
			if global.verbose {
				configureLogging(slog.LevelDebug)
				logger().Debug("log level set to DEBUG")
			} else {
				configureLogging(slog.LevelInfo)
			}
		},
	}

	rootCmd.PersistentFlags().BoolVarP(
		&global.verbose,
		"verbose",
		"v",
		false,
		"Enables debug logging",
	)
	rootCmd.PersistentFlags().StringVar(
		&global.configPath,
		"config",
		"",
		fmt.Sprintf("Path to config file (default: %s at repository root)", config.FileName),
	)

	report := reportCmd(&global)
	rootCmd.AddCommand(report, dumpCmd(), classifyCmd())

	// Default to "report"
	rootCmd.Args = report.Args
	rootCmd.RunE = report.RunE
	rootCmd.Flags().AddFlagSet(report.Flags())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}

// -v- Subcommand definitions --------------------------------------------------

type reportFlags struct {
	author  string
	since   string
	days    int
	until   string
	format  string
	color   string
	renames bool
	stdin   bool
}

func reportCmd(global *globalFlags) *cobra.Command {
	var flags reportFlags

	c := &cobra.Command{
		Use:   "report [options...] [revisions...] [[--] paths...]",
		Short: "Print lines added and removed by an author, by file type",
		Args:  cobra.ArbitraryArgs,
		RunE: func(c *cobra.Command, args []string) error {
			cfg, err := loadConfig(global.configPath)
			if err != nil {
				return err
			}

			cfg, err = applyReportFlags(c, cfg, flags)
			if err != nil {
				return err
			}

			start, err := cfg.Start(time.Now())
			if err != nil {
				return err
			}

			outFormat, err := render.ParseFormat(cfg.Format)
			if err != nil {
				return err
			}

			colorMode, err := pretty.ParseColorMode(cfg.Color)
			if err != nil {
				return err
			}
			pretty.ConfigureColor(colorMode, os.Stdout)

			author := cfg.Author
			if author == "" {
				author, err = git.UserName()
				if err != nil {
					return err
				}
			}

			revs, pathspecs := splitArgs(c, args)
			opts := subcommands.ReportOpts{
				Revs:      revs,
				Pathspecs: pathspecs,
				Author:    author,
				Start:     start,
				Until:     flags.until,
				Format:    outFormat,
				Renames:   flags.renames,
			}
			if flags.stdin {
				opts.Input = os.Stdin
			}

			return subcommands.Report(os.Stdout, opts)
		},
	}

	c.Flags().StringVar(&flags.author, "author", "", strings.TrimSpace(`
Author to count changes for. Defaults to user.name from the git config
	`))
	c.Flags().StringVar(&flags.since, "since", "", "Only count commits on or after this date (YYYY-MM-DD)")
	c.Flags().IntVar(&flags.days, "days", 0, "Only count commits from the last N days")
	c.Flags().StringVar(&flags.until, "until", "", "Only count commits before this date. See git-log(1) for valid date formats")
	c.Flags().StringVarP(&flags.format, "format", "f", "", fmt.Sprintf("Output format (%s)", formatNames()))
	c.Flags().StringVar(&flags.color, "color", "", "When to color output (auto, always, never)")
	c.Flags().BoolVar(&flags.renames, "resolve-renames", false, "Classify moved files by their new path")
	c.Flags().BoolVar(&flags.stdin, "stdin", false, "Read git log --numstat output from stdin instead of running git")
	c.MarkFlagsMutuallyExclusive("since", "days")

	return c
}

func dumpCmd() *cobra.Command {
	var author, since, until string

	c := &cobra.Command{
		Use:   "dump [options...] [revisions...] [[--] paths...]",
		Short: "Print the git log --numstat lines a report would read",
		Args:  cobra.ArbitraryArgs,
		RunE: func(c *cobra.Command, args []string) error {
			revs, pathspecs := splitArgs(c, args)
			filters := cmd.LogFilters{
				Author: author,
				Since:  since,
				Until:  until,
			}

			return subcommands.Dump(os.Stdout, revs, pathspecs, filters)
		},
	}

	c.Flags().StringVar(&author, "author", "", "Only show commits by this author")
	c.Flags().StringVar(&since, "since", "", "Only show commits after this date")
	c.Flags().StringVar(&until, "until", "", "Only show commits before this date")

	return c
}

func classifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify paths...",
		Short: "Print the file type each path is counted under",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return subcommands.Classify(os.Stdout, args)
		},
	}
}

// -^---------------------------------------------------------------------------

func configureLogging(level slog.Level) {
	handler := slog.NewTextHandler(
		os.Stderr,
		&slog.HandlerOptions{
			Level: level,
		},
	)
	logger := slog.New(handler)
	slog.SetDefault(logger)
}

func logger() *slog.Logger {
	return slog.Default().With("package", "main")
}

// Reads the config file named on the command line, or else the one at the root
// of the working tree. Outside of a working tree, or without git installed,
// the defaults are used.
func loadConfig(path string) (config.Config, error) {
	if path != "" {
		return config.LoadFromPath(path)
	}

	root, err := git.GetRoot()
	if err != nil {
		var subprocessErr cmd.SubprocessErr
		if errors.As(err, &subprocessErr) {
			logger().Debug("not in a git working tree; using default config")
			return config.Default(), nil
		}

		if errors.Is(err, exec.ErrNotFound) {
			logger().Debug("git not found; using default config")
			return config.Default(), nil
		}

		return config.Config{}, err
	}

	return config.Load(root)
}

// Flags given on the command line take precedence over the config file.
func applyReportFlags(
	c *cobra.Command,
	cfg config.Config,
	flags reportFlags,
) (config.Config, error) {
	changed := c.Flags().Changed

	if changed("author") {
		cfg.Author = flags.author
	}

	if changed("since") {
		cfg.Since = flags.since
		cfg.Days = 0
	}

	if changed("days") {
		cfg.Days = flags.days
		cfg.Since = ""
	}

	if changed("format") {
		cfg.Format = flags.format
	}

	if changed("color") {
		cfg.Color = flags.color
	}

	err := cfg.Validate()
	if err != nil {
		return cfg, err
	}

	logger().Debug("resolved options", "config", cfg)
	return cfg, nil
}

// Arguments before "--" are revisions, after it are paths.
func splitArgs(c *cobra.Command, args []string) (revs []string, pathspecs []string) {
	dash := c.ArgsLenAtDash()
	if dash < 0 {
		return args, nil
	}

	return args[:dash], args[dash:]
}

func formatNames() string {
	names := make([]string, len(render.Formats))
	for i, f := range render.Formats {
		names[i] = string(f)
	}

	return strings.Join(names, ", ")
}
