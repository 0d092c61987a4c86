package textgrid

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/natefinch/atomic"

	"github.com/fncokg/gridio/parmap"
)

// writerMinPerWorker is the per-worker batch size below which per-item
// serialization stays sequential.
const writerMinPerWorker = 20

// The legacy format terminates every line with CRLF and, in the long dialect,
// follows every value with a trailing space. Praat emits both, so the writers
// reproduce them exactly.

// formatTime renders a time value the way Praat writes it: shortest decimal
// representation, never exponent notation.
func formatTime(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// escapeQuotes backslash-escapes quote characters inside labels and names.
func escapeQuotes(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}

// tiersMarker returns the format's distinguishable-from-empty-list sentinel
// for the "tiers?" header line.
func tiersMarker(n int) string {
	if n > 0 {
		return "<exists>"
	}
	return "<absent>"
}

// LongString serializes the TextGrid to the verbose long dialect,
// byte-compatible with the output of Praat itself.
func (tg *TextGrid) LongString() string {
	var sb strings.Builder
	fmt.Fprintf(&sb,
		"File type = \"ooTextFile\"\r\nObject class = \"TextGrid\"\r\n\r\nxmin = %s \r\nxmax = %s \r\ntiers? %s \r\nsize = %d \r\nitem []: \r\n",
		formatTime(tg.Tmin), formatTime(tg.Tmax), tiersMarker(len(tg.Tiers)), len(tg.Tiers))
	for i := range tg.Tiers {
		sb.WriteString(tg.Tiers[i].longString(i))
	}
	return sb.String()
}

// longString serializes one tier as a long-format "item [n]:" block. The
// index is 0-based; the emitted block numbers are 1-based.
func (t *Tier) longString(index int) string {
	class, blockName := "IntervalTier", "intervals"
	if !t.IntervalTier {
		class, blockName = "TextTier", "points"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb,
		"    item [%d]:\r\n        class = \"%s\" \r\n        name = \"%s\" \r\n        xmin = %s \r\n        xmax = %s \r\n        %s: size = %d \r\n",
		index+1, class, escapeQuotes(t.Name), formatTime(t.Tmin), formatTime(t.Tmax), blockName, len(t.Items))

	interval := t.IntervalTier
	blocks := parmap.MapIndexed(t.Items, func(i int, item Item) string {
		if interval {
			return fmt.Sprintf(
				"        intervals [%d]:\r\n            xmin = %s \r\n            xmax = %s \r\n            text = \"%s\" \r\n",
				i+1, formatTime(item.Tmin), formatTime(item.Tmax), escapeQuotes(item.Label))
		}
		return fmt.Sprintf(
			"        points [%d]:\r\n            number = %s \r\n            mark = \"%s\" \r\n",
			i+1, formatTime(item.Tmin), escapeQuotes(item.Label))
	}, writerMinPerWorker)
	sb.WriteString(strings.Join(blocks, ""))
	return sb.String()
}

// ShortString serializes the TextGrid to the compact short dialect: the same
// information as the long form, one value per line, no keys.
func (tg *TextGrid) ShortString() string {
	var sb strings.Builder
	fmt.Fprintf(&sb,
		"File type = \"ooTextFile\"\r\nObject class = \"TextGrid\"\r\n\r\n%s\r\n%s\r\n%s\r\n%d\r\n",
		formatTime(tg.Tmin), formatTime(tg.Tmax), tiersMarker(len(tg.Tiers)), len(tg.Tiers))
	for i := range tg.Tiers {
		sb.WriteString(tg.Tiers[i].shortString())
	}
	return sb.String()
}

// shortString serializes one tier in the short dialect's positional layout.
func (t *Tier) shortString() string {
	class := "IntervalTier"
	if !t.IntervalTier {
		class = "TextTier"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "\"%s\"\r\n\"%s\"\r\n%s\r\n%s\r\n%d\r\n",
		class, escapeQuotes(t.Name), formatTime(t.Tmin), formatTime(t.Tmax), len(t.Items))

	interval := t.IntervalTier
	lines := parmap.Map(t.Items, func(item Item) string {
		if interval {
			return fmt.Sprintf("%s\r\n%s\r\n\"%s\"\r\n",
				formatTime(item.Tmin), formatTime(item.Tmax), escapeQuotes(item.Label))
		}
		return fmt.Sprintf("%s\r\n\"%s\"\r\n",
			formatTime(item.Tmin), escapeQuotes(item.Label))
	}, writerMinPerWorker)
	sb.WriteString(strings.Join(lines, ""))
	return sb.String()
}

// SaveFile writes the TextGrid to path in the long or short dialect. The
// write is atomic: the file is never observable in a half-written state.
func (tg *TextGrid) SaveFile(path string, long bool) error {
	var content string
	if long {
		content = tg.LongString()
	} else {
		content = tg.ShortString()
	}
	return atomic.WriteFile(path, strings.NewReader(content))
}
