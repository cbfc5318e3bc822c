package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/etnz/travel"
)

// Environment of the extensions, read back by the configuration.
const (
	EnvDataDir         = "TRAVEL_DATA_DIR"
	EnvDisplayCurrency = "TRAVEL_DISPLAY_CURRENCY"
	EnvLogLevel        = "TRAVEL_LOG_LEVEL"
)

// RunExtension attempts to find and execute an external trv-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
func RunExtension(subcommand string, args []string) (bool, int) {
	name := "trv-" + subcommand

	lp, err := exec.LookPath(name)
	if err != nil {
		travel.Log.WithError(err).Debugf("external command %q not found in PATH", name)
		return false, 0
	}

	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return true, 1
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	// the resolved configuration is passed along, so that the extension can call trv back.
	cmd.Env = append(os.Environ(),
		EnvDataDir+"="+cfg.DataDir,
		EnvDisplayCurrency+"="+cfg.DisplayCurrency,
		EnvLogLevel+"="+cfg.LogLevel,
	)

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", name, err)
		return true, 1
	}
	return true, 0
}
