package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fncokg/gridio/textgrid"
)

var checkCmd = &cobra.Command{
	Use:   "check <files...>",
	Short: "Parse and validate TextGrid files",
	Long:  "Parse each file and run the full invariant validation pass, reporting per-file results. Exits nonzero if any file fails.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	format := textgrid.Format(viper.GetString("format"))

	failed := 0
	for _, path := range args {
		tg, err := textgrid.ReadFile(path, true, format)
		if err != nil {
			fmt.Fprintf(os.Stderr, "FAIL  %s: %v\n", path, err)
			logger.Debug("check failed", "path", path, "err", err)
			failed++
			continue
		}
		fmt.Fprintf(os.Stderr, "OK    %s (%d tiers, %s..%s)\n",
			path, len(tg.Tiers), formatSeconds(tg.Tmin), formatSeconds(tg.Tmax))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed validation", failed, len(args))
	}
	return nil
}

func formatSeconds(v float64) string {
	return fmt.Sprintf("%gs", v)
}
