// Package main provides the soundex command. It prints the American Soundex
// code of each name given on the command line, in a file or on stdin.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/isseis/go-soundex/internal/batch"
	"github.com/isseis/go-soundex/internal/color"
	"github.com/isseis/go-soundex/internal/config"
	"github.com/isseis/go-soundex/internal/logging"
	"github.com/isseis/go-soundex/internal/nameinput"
	"github.com/isseis/go-soundex/internal/output"
	"github.com/isseis/go-soundex/internal/soundex"
	"github.com/isseis/go-soundex/internal/terminal"
)

const (
	exitOK       = 0
	exitFailure  = 1
	exitNoMatch  = 1
	compareNames = 2
)

var errCompareNeedsTwoNames = errors.New("-compare needs exactly two names")

// cliOptions holds parsed flags. Only flags that were set override the
// config file.
type cliOptions struct {
	configPath string
	namesFile  string
	format     string
	colorMode  string
	logLevel   string
	logFile    string
	workers    int
	fold       bool
	noTrim     bool
	compare    bool
	names      []string
	set        map[string]bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, fs, err := parseArgs(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		printUsage(fs, stderr)
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitFailure
	}

	settings, err := loadSettings(opts)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitFailure
	}

	runID := batch.NewRunID()
	logger, closeLog, err := logging.Setup(logging.Config{
		Level:        settings.LogLevel,
		Console:      stderr,
		Capabilities: terminal.Detect(stderr, settings.Color),
		FilePath:     settings.LogFile,
		RunID:        runID,
		RedactNames:  settings.RedactNames,
	})
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: failed to setup logger: %v\n", err)
		return exitFailure
	}
	defer func() { _ = closeLog() }()

	source := nameinput.NewSource(nameinput.Options{
		Trim:           settings.Trim,
		FoldDiacritics: settings.FoldDiacritics,
	}, stdin)
	names, err := source.Collect(opts.names, opts.namesFile)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitFailure
	}
	logger.Debug("Names collected", "count", len(names), "trim", settings.Trim, "fold", settings.FoldDiacritics)

	palette := color.NewPalette(terminal.Detect(stdout, settings.Color).Color)

	if opts.compare {
		return compare(names, palette, logger, stdout, stderr)
	}

	processor, err := batch.NewProcessor(batch.Options{
		Workers:  settings.Workers,
		Logger:   logger,
		NewRunID: func() string { return runID },
	})
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitFailure
	}

	report, err := processor.Process(ctx, names)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitFailure
	}

	if err := output.NewWriter(settings.Format, palette).Write(stdout, report); err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitFailure
	}
	return exitOK
}

func parseArgs(args []string, stderr io.Writer) (*cliOptions, *flag.FlagSet, error) {
	opts := &cliOptions{set: make(map[string]bool)}

	fs := flag.NewFlagSet("soundex", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { printUsage(fs, stderr) }
	fs.StringVar(&opts.configPath, "config", "", "Path to a TOML config file")
	fs.StringVar(&opts.namesFile, "file", "", "Read names from file, one per line ('-' for stdin)")
	fs.StringVar(&opts.namesFile, "f", "", "Short alias for -file")
	fs.StringVar(&opts.format, "format", "", "Output format: text, json or groups (default text)")
	fs.StringVar(&opts.colorMode, "color", "", "Color output: auto, always or never (default auto)")
	fs.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn or error (default warn)")
	fs.StringVar(&opts.logFile, "log-file", "", "Append JSON logs to this file")
	fs.IntVar(&opts.workers, "workers", 0, "Number of encoding workers (default: number of CPUs)")
	fs.BoolVar(&opts.fold, "fold", false, "Strip diacritics before encoding")
	fs.BoolVar(&opts.noTrim, "no-trim", false, "Keep leading and trailing whitespace of each name")
	fs.BoolVar(&opts.compare, "compare", false, "Compare two names and report whether they sound alike")

	if err := fs.Parse(args); err != nil {
		return nil, fs, err
	}
	fs.Visit(func(f *flag.Flag) { opts.set[f.Name] = true })
	opts.names = fs.Args()

	if opts.compare && (len(opts.names) != compareNames || opts.namesFile != "") {
		return nil, fs, errCompareNeedsTwoNames
	}
	return opts, fs, nil
}

// loadSettings reads the config file, if any, and applies flag overrides.
func loadSettings(opts *cliOptions) (config.Settings, error) {
	settings := config.Default()
	if opts.configPath != "" {
		var err error
		settings, err = config.NewLoader().Load(opts.configPath)
		if err != nil {
			return config.Settings{}, err
		}
	}

	if opts.set["format"] {
		format, err := output.ParseFormat(opts.format)
		if err != nil {
			return config.Settings{}, err
		}
		settings.Format = format
	}
	if opts.set["color"] {
		mode, err := terminal.ParseColorMode(opts.colorMode)
		if err != nil {
			return config.Settings{}, err
		}
		settings.Color = mode
	}
	if opts.set["log-level"] {
		level, err := logging.ParseLevel(opts.logLevel)
		if err != nil {
			return config.Settings{}, err
		}
		settings.LogLevel = level
	}
	if opts.set["log-file"] {
		settings.LogFile = opts.logFile
	}
	if opts.set["workers"] {
		if opts.workers < 1 {
			return config.Settings{}, fmt.Errorf("-workers: %w", config.ErrWorkersNotPositive)
		}
		settings.Workers = opts.workers
	}
	if opts.set["fold"] {
		settings.FoldDiacritics = opts.fold
	}
	if opts.set["no-trim"] {
		settings.Trim = !opts.noTrim
	}
	return settings, nil
}

func compare(names []string, palette color.Palette, logger *slog.Logger, stdout, stderr io.Writer) int {
	if len(names) != compareNames {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", errCompareNeedsTwoNames)
		return exitFailure
	}
	a, b := names[0], names[1]
	for _, name := range names {
		_, _ = fmt.Fprintf(stdout, "%s\t%s\n", name, palette.Code(soundex.Encode(name)))
	}

	if soundex.SoundsAlike(a, b) {
		_, _ = fmt.Fprintln(stdout, palette.Paint(color.Green, "match"))
		logger.Debug("Names sound alike", "name_a", a, "name_b", b)
		return exitOK
	}
	_, _ = fmt.Fprintln(stdout, palette.Paint(color.Yellow, "no match"))
	return exitNoMatch
}

func printUsage(fs *flag.FlagSet, w io.Writer) {
	if fs == nil {
		return
	}
	_, _ = fmt.Fprintf(w, "Usage: %s [flags] [name...]\n", filepath.Base(os.Args[0]))
	_, _ = fmt.Fprintln(w, "Without names or -file, names are read from stdin.")
	fs.PrintDefaults()
}
