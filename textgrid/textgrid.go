package textgrid

// TimeEpsilon is the tolerance used for all time comparisons: range durations
// must exceed it, interval overlaps may not exceed it, and point items must
// have tmin and tmax within it.
const TimeEpsilon = 1e-6

// DefaultName is used for TextGrids constructed from bare data when no name
// is supplied.
const DefaultName = "ConvertedTextGrid"

// Item is one annotated unit: a time span with a text label on an interval
// tier, or a single timestamp (Tmin == Tmax) on a point tier.
type Item struct {
	Tmin  float64
	Tmax  float64
	Label string
}

// Tier is a named, ordered sequence of Items sharing one timeline.
// IntervalTier discriminates the two tier kinds: true for "IntervalTier"
// (spans tiling the tier's range), false for "TextTier" (discrete points).
type Tier struct {
	Name         string
	Size         int // declared item count; must equal len(Items)
	Items        []Item
	IntervalTier bool
	Tmin         float64
	Tmax         float64
}

// TextGrid is the top-level annotation document: global time bounds plus an
// ordered list of tiers. Tier order is semantically meaningful (it is the
// on-disk and display order) and is preserved through every transformation.
type TextGrid struct {
	Tmin  float64
	Tmax  float64
	Size  int // declared tier count; must equal len(Tiers)
	Name  string
	Tiers []Tier
}

// NewTier returns an empty tier. The interval kind is the default, matching
// the long-format parser's behavior when a class line is missing.
func NewTier() Tier {
	return Tier{IntervalTier: true}
}

// appendEmptyItem appends a zero-valued item for the parsers to fill in.
func (t *Tier) appendEmptyItem() {
	t.Items = append(t.Items, Item{})
}

// appendEmptyTier appends an empty tier for the parsers to fill in.
func (tg *TextGrid) appendEmptyTier() {
	tg.Tiers = append(tg.Tiers, NewTier())
}

// currentTier returns the tier under construction, or nil if none exists yet.
func (tg *TextGrid) currentTier() *Tier {
	if len(tg.Tiers) == 0 {
		return nil
	}
	return &tg.Tiers[len(tg.Tiers)-1]
}

// currentItem returns the item under construction in the given tier, or nil.
func (t *Tier) currentItem() *Item {
	if t == nil || len(t.Items) == 0 {
		return nil
	}
	return &t.Items[len(t.Items)-1]
}
