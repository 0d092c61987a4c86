package textgrid

import (
	"fmt"
	"math"
)

// assertValidTimeBounds checks the shared range invariants: non-negative
// bounds and a duration strictly greater than TimeEpsilon.
func assertValidTimeBounds(tmin, tmax float64, where string) error {
	if tmin < 0 || tmax <= 0 {
		return &ValidationError{Where: where, Message: "time bounds must be non-negative"}
	}
	if tmax-tmin <= TimeEpsilon {
		return &ValidationError{Where: where, Message: "tmin must be less than tmax"}
	}
	return nil
}

// Validate checks the tier's invariants: the declared size matches the actual
// item count, the tier bounds form a valid range, every item is well-formed
// for the tier kind, and consecutive interval items do not overlap by more
// than TimeEpsilon. Validation is pure and fails fast on the first violation.
func (t *Tier) Validate() error {
	if t.Size != len(t.Items) {
		return &ValidationError{
			Where:   fmt.Sprintf("tier %q", t.Name),
			Message: fmt.Sprintf("declared size %d does not match %d items", t.Size, len(t.Items)),
		}
	}
	if err := assertValidTimeBounds(t.Tmin, t.Tmax, fmt.Sprintf("tier %q", t.Name)); err != nil {
		return err
	}
	for i := range t.Items {
		item := &t.Items[i]
		if t.IntervalTier {
			where := fmt.Sprintf("item %d in tier %q", i, t.Name)
			if err := assertValidTimeBounds(item.Tmin, item.Tmax, where); err != nil {
				return err
			}
		} else if math.Abs(item.Tmin-item.Tmax) > TimeEpsilon {
			return &ValidationError{
				Where:   fmt.Sprintf("point tier %q", t.Name),
				Message: fmt.Sprintf("item %d must have tmin == tmax", i),
			}
		}
		if i+1 < len(t.Items) {
			next := &t.Items[i+1]
			if item.Tmax-next.Tmin > TimeEpsilon {
				return &ValidationError{
					Where:   fmt.Sprintf("tier %q", t.Name),
					Message: fmt.Sprintf("items %d and %d overlap", i, i+1),
				}
			}
		}
	}
	return nil
}

// Validate checks the whole document: the declared tier count matches the
// actual tier count, the global bounds form a valid range, and every tier
// validates. The first invalid tier aborts the pass.
func (tg *TextGrid) Validate() error {
	if tg.Size != len(tg.Tiers) {
		return &ValidationError{
			Where:   "TextGrid",
			Message: fmt.Sprintf("declared size %d does not match %d tiers", tg.Size, len(tg.Tiers)),
		}
	}
	if err := assertValidTimeBounds(tg.Tmin, tg.Tmax, "TextGrid"); err != nil {
		return err
	}
	for i := range tg.Tiers {
		if err := tg.Tiers[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}
