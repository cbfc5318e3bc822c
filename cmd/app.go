// Package cmd implements the CLI application to plan trips and track their expenses.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/travel"
	"github.com/etnz/travel/config"
	"github.com/google/subcommands"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", "", "Path to a YAML configuration file (default: ./config.yaml or $HOME/.travel/config.yaml)")
var dataDir = flag.String("data", "", "Directory of the trips and rates documents (overrides data_dir)")
var displayCurrency = flag.String("currency", "", "Currency used to display totals: TWD, JPY, KRW or EUR (overrides display_currency)")
var Verbose = flag.Bool("v", false, "Log what is being done on stderr")

// stdin and stdout are the terminal streams, replaced in tests.
var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
)

// commands lists the application commands by group.
func commands() map[string][]subcommands.Command {
	return map[string][]subcommands.Command{
		"trips": {
			&newCmd{},
			&lsCmd{},
			&showCmd{},
			&rmCmd{},
			&datesCmd{},
			&titleCmd{},
			&hotelCmd{},
			&openCmd{},
		},
		"days": {
			&itemCmd{},
			&doneCmd{},
			&memoCmd{},
			&assistCmd{},
		},
		"expenses": {
			&expenseCmd{},
			&totalCmd{},
			&ratesCmd{},
		},
		"data": {
			&importCmd{},
			&exportCmd{},
			&xlsxCmd{},
			&queryCmd{},
		},
		"help": {
			&topicCmd{},
		},
	}
}

// Register the subcommands.
func Register(c *subcommands.Commander) {
	for group, cmds := range commands() {
		for _, cmd := range cmds {
			c.Register(cmd, group)
		}
	}
	c.Register(c.HelpCommand(), "help")
	c.Register(c.FlagsCommand(), "help")
	c.Register(c.CommandsCommand(), "help")
}

// LoadConfig reads the configuration and applies the global flags on top of it.
func LoadConfig() (*config.Config, error) {
	cfg, err := config.Load(*configFile)
	if err != nil {
		return nil, err
	}
	if *dataDir != "" {
		cfg.DataDir = *dataDir
	}
	if *displayCurrency != "" {
		cfg.DisplayCurrency = *displayCurrency
	}
	if *Verbose {
		cfg.LogLevel = "debug"
	}
	if err := travel.SetLogLevel(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	return cfg, nil
}

// OpenStore loads the trips and rates from the data directory.
func OpenStore() (*travel.Store, *config.Config, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	kv := travel.NewDirKV(cfg.DataDir)
	s, err := travel.Open(travel.NewKVStorage(kv))
	if err != nil {
		return nil, nil, fmt.Errorf("could not load %q: %w", kv.Dir(), err)
	}
	travel.Log.WithField("dir", kv.Dir()).Debug("store opened")
	return s, cfg, nil
}

// status maps an error to the exit status of a command, reporting it on stderr.
// A canceled prompt is a silent success: nothing was changed.
func status(err error) subcommands.ExitStatus {
	switch {
	case err == nil:
		return subcommands.ExitSuccess
	case errors.Is(err, travel.ErrCanceled):
		fmt.Fprintln(os.Stderr, "Canceled, nothing changed.")
		return subcommands.ExitSuccess
	case errors.Is(err, travel.ErrIndex),
		errors.Is(err, travel.ErrCurrency),
		errors.Is(err, travel.ErrCategory),
		errors.Is(err, travel.ErrBaseRate),
		errors.Is(err, travel.ErrInvalid),
		errors.Is(err, errUsage):
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
}

// errUsage flags an invalid command line.
var errUsage = errors.New("invalid usage")

func usageErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", errUsage, fmt.Sprintf(format, args...))
}

// group is a command made of subcommands.
type group interface {
	commands() []subcommands.Command
}

// runGroup executes the subcommand named by the remaining arguments of f.
func runGroup(ctx context.Context, f *flag.FlagSet, name string, cmds []subcommands.Command, args ...interface{}) subcommands.ExitStatus {
	cdr := subcommands.NewCommander(f, name)
	for _, c := range cmds {
		cdr.Register(c, "")
	}
	cdr.Register(cdr.HelpCommand(), "")
	return cdr.Execute(ctx, args...)
}
