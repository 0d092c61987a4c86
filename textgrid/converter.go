package textgrid

import (
	"sort"

	"github.com/fncokg/gridio/parmap"
)

// convertMinPerWorker is the per-worker batch size below which per-item
// conversions stay sequential.
const convertMinPerWorker = 20

// ItemData is one item in tabular form.
type ItemData struct {
	Tmin  float64
	Tmax  float64
	Label string
}

// TierData is one tier in the nested tabular form: the tier identity plus its
// items, without the derived Size/Tmin/Tmax bookkeeping of the tree model.
type TierData struct {
	Name         string
	IntervalTier bool
	Items        []ItemData
}

// GridData is the nested tabular form of a TextGrid: global bounds plus
// per-tier item lists, grouped by tier in document order.
type GridData struct {
	Tmin  float64
	Tmax  float64
	Tiers []TierData
}

// Vectors is the flat tabular form of a TextGrid: five parallel sequences
// with one entry per item, tier membership encoded positionally by repeated
// tier name rather than by nesting.
type Vectors struct {
	Tmins      []float64
	Tmaxs      []float64
	Labels     []string
	TierNames  []string
	IsInterval []bool
}

// Overrides carries optional explicit values for reconstruction. A nil Tmin
// or Tmax means "derive from the item extremes"; an empty Name means
// DefaultName.
type Overrides struct {
	Name string
	Tmin *float64
	Tmax *float64
}

// ToData converts the TextGrid to its nested tabular form.
func (tg *TextGrid) ToData() GridData {
	tiers := make([]TierData, 0, len(tg.Tiers))
	for i := range tg.Tiers {
		tier := &tg.Tiers[i]
		items := parmap.Map(tier.Items, func(it Item) ItemData {
			return ItemData{Tmin: it.Tmin, Tmax: it.Tmax, Label: it.Label}
		}, convertMinPerWorker)
		tiers = append(tiers, TierData{
			Name:         tier.Name,
			IntervalTier: tier.IntervalTier,
			Items:        items,
		})
	}
	return GridData{Tmin: tg.Tmin, Tmax: tg.Tmax, Tiers: tiers}
}

// FromData rebuilds a TextGrid from nested tabular data. Bounds and sizes are
// recomputed from the supplied items unless Overrides gives explicit values.
// Tiers with no items are dropped: their bounds are indeterminate without
// items. The result is always validated.
func FromData(tiers []TierData, o Overrides) (*TextGrid, error) {
	built := make([]Tier, 0, len(tiers))
	for _, td := range tiers {
		items := parmap.Map(td.Items, func(d ItemData) Item {
			return Item{Tmin: d.Tmin, Tmax: d.Tmax, Label: d.Label}
		}, convertMinPerWorker)
		if len(items) == 0 {
			continue
		}
		built = append(built, makeTier(items, td.Name, td.IntervalTier, o.Tmin, o.Tmax))
	}
	return makeTextGrid(built, o)
}

// ToVectors converts the TextGrid to its flat vector form, in tier order then
// item order.
func (tg *TextGrid) ToVectors() Vectors {
	var v Vectors
	for i := range tg.Tiers {
		tier := &tg.Tiers[i]
		for _, item := range tier.Items {
			v.Tmins = append(v.Tmins, item.Tmin)
			v.Tmaxs = append(v.Tmaxs, item.Tmax)
			v.Labels = append(v.Labels, item.Label)
			v.TierNames = append(v.TierNames, tier.Name)
			v.IsInterval = append(v.IsInterval, tier.IntervalTier)
		}
	}
	return v
}

// FromVectors rebuilds a TextGrid from flat parallel vectors. All five
// sequences must have equal length. Items are grouped into tiers by the first
// occurrence of each tier name, so the input may interleave tiers arbitrarily;
// within each reconstructed tier, items are re-sorted by ascending Tmin
// before the tier is built. The result is always validated.
func FromVectors(v Vectors, o Overrides) (*TextGrid, error) {
	n := len(v.Tmins)
	if len(v.Tmaxs) != n || len(v.Labels) != n || len(v.TierNames) != n || len(v.IsInterval) != n {
		return nil, &InputError{Message: "input vectors must have the same length"}
	}

	type tierGroup struct {
		items        []Item
		intervalTier bool
	}
	groups := make(map[string]*tierGroup)
	var order []string
	for i := 0; i < n; i++ {
		name := v.TierNames[i]
		g, ok := groups[name]
		if !ok {
			g = &tierGroup{intervalTier: v.IsInterval[i]}
			groups[name] = g
			order = append(order, name)
		}
		g.items = append(g.items, Item{Tmin: v.Tmins[i], Tmax: v.Tmaxs[i], Label: v.Labels[i]})
	}

	tiers := make([]Tier, 0, len(order))
	for _, name := range order {
		g := groups[name]
		sort.SliceStable(g.items, func(a, b int) bool {
			return g.items[a].Tmin < g.items[b].Tmin
		})
		tiers = append(tiers, makeTier(g.items, name, g.intervalTier, o.Tmin, o.Tmax))
	}
	return makeTextGrid(tiers, o)
}

// makeTier builds a tier whose bounds are the item extremes unless explicit
// overrides are supplied.
func makeTier(items []Item, name string, intervalTier bool, tmin, tmax *float64) Tier {
	return Tier{
		Name:         name,
		IntervalTier: intervalTier,
		Tmin:         overrideOrExtreme(tmin, items, func(it Item) float64 { return it.Tmin }, false),
		Tmax:         overrideOrExtreme(tmax, items, func(it Item) float64 { return it.Tmax }, true),
		Size:         len(items),
		Items:        items,
	}
}

// makeTextGrid assembles and validates a TextGrid from built tiers.
func makeTextGrid(tiers []Tier, o Overrides) (*TextGrid, error) {
	name := o.Name
	if name == "" {
		name = DefaultName
	}
	tg := &TextGrid{
		Name:  name,
		Tmin:  overrideOrExtreme(o.Tmin, tiers, func(t Tier) float64 { return t.Tmin }, false),
		Tmax:  overrideOrExtreme(o.Tmax, tiers, func(t Tier) float64 { return t.Tmax }, true),
		Size:  len(tiers),
		Tiers: tiers,
	}
	if err := tg.Validate(); err != nil {
		return nil, err
	}
	return tg, nil
}

// overrideOrExtreme returns the override when present, otherwise the minimum
// (or maximum) of key over items, or 0 for an empty slice.
func overrideOrExtreme[T any](override *float64, items []T, key func(T) float64, findMax bool) float64 {
	if override != nil {
		return *override
	}
	if len(items) == 0 {
		return 0
	}
	ext := key(items[0])
	for _, it := range items[1:] {
		v := key(it)
		if findMax && v > ext || !findMax && v < ext {
			ext = v
		}
	}
	return ext
}
