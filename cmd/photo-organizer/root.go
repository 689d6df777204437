package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/handiism/photo-organizer/internal/config"
	"github.com/handiism/photo-organizer/internal/logging"
	"github.com/handiism/photo-organizer/internal/organizer"
)

type flags struct {
	config  string
	mode    string
	limit   int
	rename  bool
	action  string
	dryRun  bool
	logFile string
	verbose bool
}

func newRootCmd() *cobra.Command {
	return newCommand(run)
}

func newCommand(runFn func(*config.Settings) error) *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "photo-organizer <source> <library>",
		Short: "Sort photos into a dated library by their EXIF capture time",
		Long: `photo-organizer scans a source directory for photos, reads the capture
time from each file's EXIF DateTime tag and moves (or copies) it into a
library laid out by date.

Files without a usable capture time are left where they are. A file that
already sits at its place in the library is not touched, so running again
over the same tree is safe.

Settings can also come from a JSON or YAML file (--config) and from
PHOTO_ORGANIZER_* environment variables, including ones in a .env file.`,
		Example: `  photo-organizer ~/Pictures/inbox ~/Pictures/library
  photo-organizer -m compact -n 40 --rename ~/DCIM ~/Photos
  photo-organizer --dry-run -v ~/DCIM ~/Photos`,
		Args: cobra.MaximumNArgs(2),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := resolveSettings(cmd, &f, args)
			if err != nil {
				return err
			}
			return runFn(settings)
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&f.config, "config", "c", "", "Path to a JSON or YAML settings file")
	fs.StringVarP(&f.mode, "mode", "m", "daily", "Folder layout: daily, monthly, compact or flat")
	fs.IntVarP(&f.limit, "limit", "n", 25, "Largest month kept in one folder in compact mode")
	fs.BoolVarP(&f.rename, "rename", "r", false, "Rename files to YYYYMMDD_hhmmss plus the original extension")
	fs.StringVarP(&f.action, "action", "a", "move", "How files reach the library: move or copy")
	fs.BoolVar(&f.dryRun, "dry-run", false, "Report what would happen without changing anything")
	fs.StringVarP(&f.logFile, "log-file", "l", "", "Write the log to this file instead of stderr")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "Log every file")

	return cmd
}

// resolveSettings layers defaults, the settings file, the environment and
// explicitly set flags, in that order.
func resolveSettings(cmd *cobra.Command, f *flags, args []string) (*config.Settings, error) {
	settings := config.DefaultSettings()
	if f.config != "" {
		loaded, err := config.Load(f.config)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		settings = loaded
	}

	if err := settings.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	if len(args) > 0 {
		settings.SourceDir = args[0]
	}
	if len(args) > 1 {
		settings.LibraryDir = args[1]
	}

	fs := cmd.Flags()
	if fs.Changed("mode") {
		settings.Mode = f.mode
	}
	if fs.Changed("limit") {
		settings.Limit = f.limit
	}
	if fs.Changed("rename") {
		settings.Rename = f.rename
	}
	if fs.Changed("action") {
		settings.Action = f.action
	}
	if fs.Changed("dry-run") {
		settings.DryRun = f.dryRun
	}
	if fs.Changed("log-file") {
		settings.LogFile = f.logFile
	}
	if fs.Changed("verbose") {
		settings.Verbose = f.verbose
	}

	return settings, nil
}

func run(settings *config.Settings) error {
	cfg, err := settings.RunConfig()
	if err != nil {
		return err
	}

	// Check the directories before the log file is created or truncated.
	if err := organizer.Validate(cfg); err != nil {
		return err
	}

	logger, closeLog, err := logging.New(settings.LogFile, settings.Verbose, settings.DryRun)
	if err != nil {
		return err
	}
	defer closeLog()

	onProgress := logging.Sink(logger)
	if settings.LogFile != "" && !settings.DryRun {
		onProgress = withProgressBar(onProgress)
	}

	if settings.DryRun {
		color.Yellow("Dry run: nothing will be moved or copied")
	}

	summary, err := organizer.New(cfg, onProgress).Run()
	if err != nil {
		return err
	}

	switch {
	case summary.Failed > 0:
		color.Red("%s", summary)
	case summary.DryRun:
		color.Yellow("%s", summary)
	default:
		color.Green("%s", summary)
	}
	return nil
}

// withProgressBar draws a terminal bar from transfer-stage events while
// still passing every event on to next.
func withProgressBar(next func(organizer.ProgressEvent)) func(organizer.ProgressEvent) {
	var bar *progressbar.ProgressBar

	return func(event organizer.ProgressEvent) {
		next(event)

		if event.Total == 0 {
			return
		}
		if bar == nil {
			bar = progressbar.NewOptions(event.Total,
				progressbar.OptionSetDescription("Organizing"),
				progressbar.OptionSetWidth(20),
				progressbar.OptionShowCount(),
				progressbar.OptionShowIts(),
				progressbar.OptionClearOnFinish(),
			)
		}
		if event.Processed > 0 {
			_ = bar.Set(event.Processed)
		}
		if event.Processed == event.Total {
			_ = bar.Finish()
		}
	}
}
