// Command antsys solves Euclidean travelling-salesman instances with the
// Ant System heuristic. Results go to stdout, progress and diagnostics to
// stderr, so the output stays pipeable.
package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
)

func main() {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slog.LevelInfo,
			TimeFormat: "15:04:05",
		}),
	))
	os.Exit(run())
}

// run executes the root command and maps failures onto process exit codes:
// flag, config and input problems exit 2, runtime failures exit 1.
func run() int {
	if err := newRootCmd().Execute(); err != nil {
		slog.Error("antsys failed", "err", err)
		var ee *exitError
		if errors.As(err, &ee) {
			return ee.code
		}
		return exitConfig
	}
	return exitOK
}
