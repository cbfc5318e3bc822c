package travel

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Log is the logger used by the package. The CLI adjusts its level from the
// configuration; it defaults to warnings only.
var Log = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.WarnLevel)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return l
}

// SetLogLevel parses level (e.g. "debug", "info", "warn") and applies it to Log.
func SetLogLevel(level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	Log.SetLevel(lvl)
	return nil
}
