package textgrid

import (
	"fmt"
	"strconv"
	"strings"
)

// longState tracks which context a key = value line belongs to while the
// long-format parser scans the file.
type longState int

const (
	stateHeader longState = iota
	stateTierList
	stateTierHeader
	stateItem
)

// ParseLong parses the verbose long-format dialect. The state machine is
// driven purely by line prefixes: "item []" opens the tier list, "item [n]"
// opens a tier, "intervals [n]" / "points [n]" open an item, and every other
// non-blank line is a key = value assignment routed to the active context.
//
// Numeric fields that fail to parse default to 0.0 and unknown keys are
// ignored; only structural defects (an unknown tier class, an item block
// before any tier) abort parsing. With strict set, the parsed TextGrid is
// validated before being returned.
func ParseLong(name, content string, strict bool) (*TextGrid, error) {
	tg := &TextGrid{Name: name}
	state := stateHeader

	for i, raw := range strings.Split(content, "\n") {
		line := strings.TrimSpace(raw)
		lineno := i + 1

		switch {
		case strings.HasPrefix(line, "item []"):
			state = stateTierList

		case strings.HasPrefix(line, "item ["):
			state = stateTierHeader
			tg.appendEmptyTier()

		case strings.HasPrefix(line, "intervals [") || strings.HasPrefix(line, "points ["):
			state = stateItem
			tier := tg.currentTier()
			if tier == nil {
				return nil, &ParseError{Message: "item block before any tier", Line: lineno}
			}
			tier.appendEmptyItem()

		default:
			switch state {
			case stateHeader:
				parseGridField(line, tg)
			case stateTierHeader:
				if err := parseTierField(line, tg.currentTier()); err != nil {
					if pe, ok := err.(*ParseError); ok {
						pe.Line = lineno
					}
					return nil, err
				}
			case stateItem:
				parseItemField(line, tg.currentTier().currentItem())
			case stateTierList:
				// The tier list marker carries no data.
			}
		}
	}

	if strict {
		if err := tg.Validate(); err != nil {
			return nil, err
		}
	}
	return tg, nil
}

// parseGridField applies a header-level key = value line to the TextGrid.
func parseGridField(line string, tg *TextGrid) {
	key, value, ok := splitKeyValue(line)
	if !ok {
		return
	}
	switch key {
	case "xmin":
		tg.Tmin = parseFloat(value)
	case "xmax":
		tg.Tmax = parseFloat(value)
	case "size":
		tg.Size = parseCount(value)
	}
}

// parseTierField applies a tier-header key = value line to the current tier.
// An unrecognized class literal is fatal: without knowing interval-vs-point
// semantics the rest of the tier cannot be interpreted.
func parseTierField(line string, t *Tier) error {
	key, value, ok := splitKeyValue(line)
	if !ok {
		return nil
	}
	switch key {
	case "class":
		switch strings.Trim(value, `"`) {
		case "IntervalTier":
			t.IntervalTier = true
		case "TextTier":
			t.IntervalTier = false
		default:
			return &ParseError{Message: fmt.Sprintf("unknown tier class %s", value)}
		}
	case "name":
		t.Name = parseQuoted(value)
	case "intervals: size", "points: size":
		t.Size = parseCount(value)
	case "xmin":
		t.Tmin = parseFloat(value)
	case "xmax":
		t.Tmax = parseFloat(value)
	}
	return nil
}

// parseItemField applies an item-level key = value line to the current item.
// Interval items carry xmin/xmax/text; point items carry number/mark, where
// number sets both ends of the item to the same timestamp.
func parseItemField(line string, item *Item) {
	key, value, ok := splitKeyValue(line)
	if !ok || item == nil {
		return
	}
	switch key {
	case "xmin":
		item.Tmin = parseFloat(value)
	case "xmax":
		item.Tmax = parseFloat(value)
	case "text":
		item.Label = parseQuoted(value)
	case "number":
		item.Tmin = parseFloat(value)
		item.Tmax = item.Tmin
	case "mark":
		item.Label = parseQuoted(value)
	}
}

// splitKeyValue splits a line on the first '=' and trims both sides.
func splitKeyValue(line string) (key, value string, ok bool) {
	parts := strings.SplitN(line, "=", 2)
	if len(parts) != 2 {
		return "", "", false
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), true
}

// parseFloat parses a float, defaulting to 0.0 on malformed input. Tolerant
// by design: strictness is enforced by post-parse validation, not here.
func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// parseCount parses a non-negative count, defaulting to 0 on malformed input.
func parseCount(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// parseQuoted strips surrounding quote characters from a string field.
func parseQuoted(s string) string {
	return strings.Trim(s, `"`)
}
