// Package textgrid reads, writes, validates, and converts Praat TextGrid
// annotation files.
//
// A TextGrid is a named timeline divided into ordered tiers. Each tier holds
// either contiguous labeled intervals (an IntervalTier) or discrete labeled
// time points (a TextTier). Praat serializes TextGrids in two dialects: a
// verbose "long" format of key = value lines, and a compact "short" format
// where structure is purely positional and delimited by declared counts.
//
// The package is structured in four layers:
//
//   - Data model: the TextGrid, Tier, and Item types plus the Validate pass
//     that enforces temporal-consistency invariants.
//   - Parsers: a line-oriented state machine for the long format and a
//     cursor-driven positional scan for the short format, with automatic
//     format detection.
//   - Converter: lossless mappings between the tree model and flat tabular
//     representations (per-tier nested data, or fully parallel vectors).
//   - Writers: the exact textual inverse of the parsers, regenerating
//     byte-compatible long/short text, plus CSV export.
//
// Usage:
//
//	tg, err := textgrid.ReadFile("utterance.TextGrid", true, textgrid.FormatAuto)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(tg.Name, len(tg.Tiers))
//
// Parsing is tolerant by default: malformed numeric tokens silently parse as
// 0.0 and unknown keys are ignored. Structural errors (an unknown tier class,
// a declared count running past the end of the file) are always fatal. The
// strict flag additionally runs full invariant validation before a parsed
// TextGrid is returned.
package textgrid
