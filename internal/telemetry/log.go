// Package telemetry centralizes the module's structured logging so every
// package logs through one configured logrus instance with a fixed
// text formatter, instead of each package reaching for logrus's
// package-level default.
package telemetry

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Log is the module-wide logger. Configure sets its level and formatter;
// packages that need to log just call telemetry.Log.
var Log = logrus.New()

func init() {
	Log.SetOutput(os.Stderr)
	Log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "15:04:05",
	})
}

// Configure applies the CLI's -debug flag to the shared logger.
func Configure(debug bool) {
	if debug {
		Log.SetLevel(logrus.DebugLevel)
	} else {
		Log.SetLevel(logrus.InfoLevel)
	}
}
