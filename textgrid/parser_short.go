package textgrid

import (
	"fmt"
	"strings"
)

// Fixed line offsets of the short-format header: xmin, xmax, and the tier
// count. Line 5 is the "tiers? <exists>" marker; tier data begins at line 7.
const (
	shortTminLine  = 3
	shortTmaxLine  = 4
	shortSizeLine  = 6
	shortTierStart = 7
)

// ParseShort parses the compact short-format dialect. There is no state
// machine: structure is fully positional, driven by the declared counts, and
// consumed by a moving cursor with no lookahead. A declared count that runs
// past the end of the input is a fatal error, as is an unknown tier class.
// With strict set, the parsed TextGrid is validated before being returned.
func ParseShort(name, content string, strict bool) (*TextGrid, error) {
	lines := splitTrimmedLines(content)
	if len(lines) <= shortSizeLine {
		return nil, &ParseError{Message: "short-format header is truncated"}
	}

	tg := &TextGrid{Name: name}
	tg.Tmin = parseFloat(lines[shortTminLine])
	tg.Tmax = parseFloat(lines[shortTmaxLine])
	tg.Size = parseCount(lines[shortSizeLine])

	cursor := shortTierStart
	for i := 0; i < tg.Size; i++ {
		tier, next, err := parseShortTier(lines, cursor)
		if err != nil {
			return nil, err
		}
		tg.Tiers = append(tg.Tiers, tier)
		cursor = next
	}

	if strict {
		if err := tg.Validate(); err != nil {
			return nil, err
		}
	}
	return tg, nil
}

// parseShortTier reads one tier starting at the given line index: five header
// lines (class, name, tmin, tmax, item count), then three lines per interval
// item or two per point item. It returns the tier and the cursor positioned
// past the consumed lines so the caller can continue the linear scan.
func parseShortTier(lines []string, start int) (Tier, int, error) {
	if start+5 > len(lines) {
		return Tier{}, 0, &ParseError{
			Message: "tier header runs past the end of the file",
			Line:    start + 1,
		}
	}

	tier := NewTier()
	switch strings.Trim(lines[start], `"`) {
	case "IntervalTier":
		tier.IntervalTier = true
	case "TextTier":
		tier.IntervalTier = false
	default:
		return Tier{}, 0, &ParseError{
			Message: fmt.Sprintf("unknown tier class %s", lines[start]),
			Line:    start + 1,
		}
	}
	tier.Name = parseQuoted(lines[start+1])
	tier.Tmin = parseFloat(lines[start+2])
	tier.Tmax = parseFloat(lines[start+3])
	tier.Size = parseCount(lines[start+4])

	cursor := start + 5
	for i := 0; i < tier.Size; i++ {
		var item Item
		if tier.IntervalTier {
			if cursor+3 > len(lines) {
				return Tier{}, 0, &ParseError{
					Message: fmt.Sprintf("tier %q declares %d intervals but the file ends early", tier.Name, tier.Size),
					Line:    cursor + 1,
				}
			}
			item = Item{
				Tmin:  parseFloat(lines[cursor]),
				Tmax:  parseFloat(lines[cursor+1]),
				Label: parseQuoted(lines[cursor+2]),
			}
			cursor += 3
		} else {
			if cursor+2 > len(lines) {
				return Tier{}, 0, &ParseError{
					Message: fmt.Sprintf("tier %q declares %d points but the file ends early", tier.Name, tier.Size),
					Line:    cursor + 1,
				}
			}
			number := parseFloat(lines[cursor])
			item = Item{
				Tmin:  number,
				Tmax:  number,
				Label: parseQuoted(lines[cursor+1]),
			}
			cursor += 2
		}
		tier.Items = append(tier.Items, item)
	}

	return tier, cursor, nil
}

// splitTrimmedLines splits content into whitespace-trimmed lines.
func splitTrimmedLines(content string) []string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return lines
}
