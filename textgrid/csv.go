package textgrid

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/natefinch/atomic"
)

// WriteCSV writes the TextGrid as CSV with header
// tmin,tmax,label,tier,is_interval and one row per item, in tier order then
// item order. Non-numeric fields are always quoted, matching the quoting
// convention of the legacy exporter rather than minimal RFC 4180 quoting
// (which is why encoding/csv is not used here).
func (tg *TextGrid) WriteCSV(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(`"tmin","tmax","label","tier","is_interval"` + "\n"); err != nil {
		return err
	}
	data := tg.ToData()
	for _, tier := range data.Tiers {
		for _, item := range tier.Items {
			_, err := fmt.Fprintf(bw, "%s,%s,%s,%s,%s\n",
				formatTime(item.Tmin),
				formatTime(item.Tmax),
				quoteCSVField(item.Label),
				quoteCSVField(tier.Name),
				quoteCSVField(strconv.FormatBool(tier.IntervalTier)))
			if err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

// SaveCSV writes the CSV export to path atomically.
func (tg *TextGrid) SaveCSV(path string) error {
	var buf bytes.Buffer
	if err := tg.WriteCSV(&buf); err != nil {
		return err
	}
	return atomic.WriteFile(path, &buf)
}

// quoteCSVField wraps a field in double quotes, doubling embedded quotes per
// CSV convention.
func quoteCSVField(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
