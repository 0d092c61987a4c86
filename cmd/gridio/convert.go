package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fncokg/gridio/textgrid"
)

var convertCmd = &cobra.Command{
	Use:   "convert <files...>",
	Short: "Convert TextGrid files to long, short, or CSV form",
	Long:  "Read one or more TextGrid files and write each to the chosen output representation. A file that fails to parse is reported and skipped; the rest of the batch continues.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runConvert,
}

func init() {
	convertCmd.Flags().String("to", "long", "Output representation: long, short, or csv")
	convertCmd.Flags().StringP("out", "o", ".", "Output directory")

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	format := textgrid.Format(viper.GetString("format"))
	strict := viper.GetBool("strict")
	to, _ := cmd.Flags().GetString("to")
	outDir, _ := cmd.Flags().GetString("out")

	var ext string
	switch to {
	case "long", "short":
		ext = ".TextGrid"
	case "csv":
		ext = ".csv"
	default:
		return fmt.Errorf("unknown output representation %q", to)
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	failed := 0
	for _, path := range args {
		outPath, err := convertFile(path, outDir, ext, to, strict, format)
		if err != nil {
			logger.Error("conversion failed", "path", path, "err", err)
			failed++
			continue
		}
		logger.Info("converted", "path", path, "out", outPath)
	}

	logger.Debug("batch finished", "total", len(args), "failed", failed)
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(args))
	}
	return nil
}

// convertFile reads one TextGrid and writes it in the requested output
// representation, returning the written path.
func convertFile(path, outDir, ext, to string, strict bool, format textgrid.Format) (string, error) {
	tg, err := textgrid.ReadFile(path, strict, format)
	if err != nil {
		return "", err
	}

	outPath := filepath.Join(outDir, tg.Name+ext)
	switch to {
	case "long":
		err = tg.SaveFile(outPath, true)
	case "short":
		err = tg.SaveFile(outPath, false)
	case "csv":
		err = tg.SaveCSV(outPath)
	}
	if err != nil {
		return "", err
	}
	return outPath, nil
}
