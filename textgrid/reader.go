package textgrid

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fncokg/gridio/parmap"
)

// Format selects which parser a read operation uses.
type Format string

const (
	FormatLong  Format = "long"
	FormatShort Format = "short"
	FormatAuto  Format = "auto"
)

// batchMinPerWorker is the per-worker batch size below which multi-file
// operations stay sequential.
const batchMinPerWorker = 20

// DetectFormat guesses the dialect of raw TextGrid content: the literal
// marker "item []" only appears in the long format's tier-list header.
//
// This is a heuristic, not a guaranteed sniff: a short-format file whose
// label text happens to contain "item []" would be misclassified. Callers
// that know the dialect should pass it explicitly.
func DetectFormat(content string) Format {
	if strings.Contains(content, "item []") {
		return FormatLong
	}
	return FormatShort
}

// Parse parses TextGrid content in the given format, using DetectFormat when
// the format is FormatAuto. The name becomes the TextGrid's display name.
func Parse(name, content string, strict bool, format Format) (*TextGrid, error) {
	switch format {
	case FormatLong:
		return ParseLong(name, content, strict)
	case FormatShort:
		return ParseShort(name, content, strict)
	case FormatAuto:
		if DetectFormat(content) == FormatLong {
			return ParseLong(name, content, strict)
		}
		return ParseShort(name, content, strict)
	default:
		return nil, &InputError{Message: fmt.Sprintf("unknown format %q", format)}
	}
}

// ReadFile reads and parses one TextGrid file. The base filename minus its
// extension becomes the TextGrid's name.
func ReadFile(path string, strict bool, format Format) (*TextGrid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	base := filepath.Base(path)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	return Parse(name, string(data), strict, format)
}

// FilesToData reads many TextGrid files and converts each to its nested
// tabular form. Files are fully independent and are processed in parallel
// when the batch is large enough. A file that fails to read or parse
// contributes a zero-valued placeholder instead of aborting the batch.
func FilesToData(paths []string, strict bool, format Format) []GridData {
	return parmap.Map(paths, func(path string) GridData {
		tg, err := ReadFile(path, strict, format)
		if err != nil {
			slog.Warn("skipping unreadable TextGrid", "path", path, "err", err)
			return GridData{}
		}
		return tg.ToData()
	}, batchMinPerWorker)
}

// FilesToVectors reads many TextGrid files and converts each to its flat
// vector form, with the same per-file failure isolation as FilesToData.
func FilesToVectors(paths []string, strict bool, format Format) []Vectors {
	return parmap.Map(paths, func(path string) Vectors {
		tg, err := ReadFile(path, strict, format)
		if err != nil {
			slog.Warn("skipping unreadable TextGrid", "path", path, "err", err)
			return Vectors{}
		}
		return tg.ToVectors()
	}, batchMinPerWorker)
}
