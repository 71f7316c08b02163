// Package main provides the uptime command-line tool for displaying how long
// the system has been running, how many users are logged in, and the load
// averages, in several display styles.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"uptime/display"
	"uptime/sysinfo"
)

var version = "dev"

// options holds the parsed command-line flags.
type options struct {
	format      string
	container   bool
	since       bool
	noColor     bool
	asciiOnly   bool
	debug       bool
	showVersion bool
	watch       time.Duration
	procRoot    string
}

func main() {
	if err := execute(context.Background(), newRootCommand()); err != nil {
		os.Exit(1)
	}
}

// execute runs cmd and reports any error on its stderr, including flag and
// argument errors cobra raises before RunE is reached.
func execute(ctx context.Context, cmd *cobra.Command) error {
	err := cmd.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "uptime: %v\n", err)
	}
	return err
}

// newRootCommand builds the uptime command and its flags.
func newRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "uptime",
		Short: "Tell how long the system has been running",
		Long: `uptime prints the current time, how long the system has been running,
how many users are logged on, and the 1, 5 and 15 minute load averages.

Examples:
  uptime                      # up 3 hours, 12 minutes
  uptime -f standard          # classic one-line output
  uptime -f raw               # boot uptime idle load1 load5 load15
  uptime -s                   # boot timestamp
  uptime -f interactive -w 2s # refreshing dashboard`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.format, "format", "f", display.Pretty.String(),
		"output format: "+strings.Join(display.FormatNames(), ", "))
	flags.BoolVarP(&opts.container, "container", "c", false, "show container uptime")
	flags.BoolVarP(&opts.since, "since", "s", false, "show system up since timestamp (with --format, only standard or since)")
	flags.DurationVarP(&opts.watch, "watch", "w", 0, "refresh every interval until interrupted (e.g. 2s)")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	flags.BoolVar(&opts.asciiOnly, "ascii", false, "draw the interactive panel with ASCII characters only")
	flags.BoolVar(&opts.debug, "debug", false, "enable debug logging (sets UPTIME_DEBUG)")
	flags.StringVar(&opts.procRoot, "proc", sysinfo.DefaultProcRoot, "proc filesystem mount point")
	flags.BoolVarP(&opts.showVersion, "version", "V", false, "print version and exit")

	return cmd
}

func run(cmd *cobra.Command, opts *options) error {
	if opts.showVersion {
		fmt.Fprintf(cmd.OutOrStdout(), "uptime %s\n", version)
		return nil
	}

	cfg, err := opts.displayConfig(cmd.Flags().Changed("format"))
	if err != nil {
		return err
	}
	if opts.watch < 0 {
		return fmt.Errorf("invalid watch interval %s", opts.watch)
	}

	if opts.debug {
		_ = os.Setenv("UPTIME_DEBUG", "1")
	}
	logger := newLogger(cmd.ErrOrStderr(), os.Getenv("UPTIME_DEBUG") != "")

	src := sysinfo.NewCollector(
		sysinfo.NewProcFS(opts.procRoot, os.LookupEnv),
		sysinfo.WithLogger(logger),
	)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return runWatch(ctx, cmd.OutOrStdout(), src, cfg, opts.watch, logger)
}

// displayConfig turns flags into a display.Config. A bare --since selects
// the since format; combined with an explicit --format standard it appends
// the boot timestamp. Any other explicit format cannot show it and is rejected.
func (o *options) displayConfig(formatSet bool) (display.Config, error) {
	format, err := display.ParseFormat(o.format)
	if err != nil {
		return display.Config{}, err
	}

	cfg := display.Config{
		Format:        format,
		ShowContainer: o.container,
		Color:         !o.noColor && !color.NoColor,
		ASCIIBorders:  o.asciiOnly,
	}
	if o.since {
		switch {
		case !formatSet:
			cfg.Format = display.Since
		case format == display.Standard:
			cfg.ShowSince = true
		case format != display.Since:
			return display.Config{}, fmt.Errorf("--since cannot be combined with --format %s", format)
		}
	}
	return cfg, nil
}

func newLogger(w io.Writer, debug bool) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}
	if debug {
		opts.Level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
