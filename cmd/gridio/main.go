package main

import (
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/viper"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newLogger builds the invocation logger: a text handler on stderr, debug
// level under --verbose, tagged with a fresh run ID so batch log lines can be
// correlated.
func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if viper.GetBool("verbose") {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With("run_id", uuid.New().String())
}
