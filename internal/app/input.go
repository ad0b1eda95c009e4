package app

import (
	"errors"
	"flag"
	"fmt"
)

var (
	// ErrUsageRequested indicates usage help was requested
	ErrUsageRequested = errors.New("usage requested")

	// ErrVersionRequested indicates version display was requested
	ErrVersionRequested = errors.New("version requested")

	// ErrUpdateCheckRequested indicates update check was requested
	ErrUpdateCheckRequested = errors.New("update check requested")
)

// Config contains all configuration needed to run the transpiler.
type Config struct {
	// ScriptPath is the pika source file to transpile. Empty means an
	// interactive session.
	ScriptPath string

	// OutputPath receives the generated Python. Empty means stdout.
	OutputPath string

	// HistoryPath is the SQLite transcript database. Empty disables history.
	HistoryPath string

	// NoColor disables colored output even on a terminal.
	NoColor bool
}

type options struct {
	outputPath   *string
	historyPath  *string
	noColor      *bool
	showVersion  *bool
	checkUpdates *bool
	args         []string
}

// ProcessUserInput parses command-line arguments into a Config. The help,
// version, and update flags surface as sentinel errors so the caller decides
// how to exit.
func ProcessUserInput(args []string) (Config, error) {
	fs := flag.NewFlagSet("pika", flag.ContinueOnError)
	fs.Usage = func() { PrintUsage(fs) }

	opts := options{
		outputPath:   fs.String("o", "", "write the generated Python to this file instead of stdout"),
		historyPath:  fs.String("history", "", "record the session to a SQLite database at this path"),
		noColor:      fs.Bool("no-color", false, "disable colored output"),
		showVersion:  fs.Bool("v", false, "show version and exit"),
		checkUpdates: fs.Bool("u", false, "check for updates and exit"),
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return Config{}, ErrUsageRequested
		}
		return Config{}, err
	}
	opts.args = fs.Args()

	if *opts.showVersion {
		return Config{}, ErrVersionRequested
	}

	if *opts.checkUpdates {
		return Config{}, ErrUpdateCheckRequested
	}

	if len(opts.args) > 1 {
		return Config{}, fmt.Errorf("expected at most one script path, got %d arguments", len(opts.args))
	}

	config := Config{
		OutputPath:  *opts.outputPath,
		HistoryPath: *opts.historyPath,
		NoColor:     *opts.noColor,
	}

	if len(opts.args) == 1 {
		config.ScriptPath = opts.args[0]
	}

	return config, nil
}
