package textgrid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateWellFormedGrid(t *testing.T) {
	require.NoError(t, wordsGrid().Validate())
	require.NoError(t, mixedGrid().Validate())
}

func TestValidateOverlapWithinEpsilon(t *testing.T) {
	tg := wordsGrid()
	// Overlap of 1e-7 is inside the tolerance.
	tg.Tiers[0].Items[1].Tmin = 1 - 1e-7
	assert.NoError(t, tg.Validate())
}

func TestValidateOverlapBeyondEpsilon(t *testing.T) {
	tg := wordsGrid()
	tg.Tiers[0].Items[1].Tmin = 0.9
	err := tg.Validate()
	require.Error(t, err)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Error(), "overlap")
	assert.Contains(t, verr.Error(), "words")
}

func TestValidateGapIsPermitted(t *testing.T) {
	tg := wordsGrid()
	tg.Tiers[0].Items[1].Tmin = 1.2
	assert.NoError(t, tg.Validate())
}

func TestValidateItemTimeBounds(t *testing.T) {
	tg := wordsGrid()
	tg.Tiers[0].Items[1] = Item{Tmin: 2, Tmax: 1, Label: "backwards"}
	err := tg.Validate()
	require.Error(t, err)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Error(), "item 1")
}

func TestValidateZeroDurationInterval(t *testing.T) {
	tg := wordsGrid()
	tg.Tiers[0].Items[0] = Item{Tmin: 1, Tmax: 1, Label: "degenerate"}
	assert.Error(t, tg.Validate())
}

func TestValidateNegativeBounds(t *testing.T) {
	tg := wordsGrid()
	tg.Tmin = -0.5
	err := tg.Validate()
	require.Error(t, err)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "TextGrid", verr.Where)
}

func TestValidateTierSizeMismatch(t *testing.T) {
	tg := wordsGrid()
	tg.Tiers[0].Size = 3
	err := tg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "size")
	assert.Contains(t, err.Error(), "words")
}

func TestValidateGridSizeMismatch(t *testing.T) {
	tg := wordsGrid()
	tg.Size = 2
	err := tg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TextGrid")
}

func TestValidatePointTierRequiresEqualBounds(t *testing.T) {
	tg := mixedGrid()
	tg.Tiers[1].Items[0].Tmax = 0.7
	err := tg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tones")
	assert.Contains(t, err.Error(), "tmin == tmax")
}

func TestValidatePointJitterWithinEpsilon(t *testing.T) {
	tg := mixedGrid()
	tg.Tiers[1].Items[0].Tmax = 0.5 + 1e-7
	assert.NoError(t, tg.Validate())
}

func TestValidateFailsFastOnFirstTier(t *testing.T) {
	tg := mixedGrid()
	tg.Tiers[0].Size = 99  // first tier broken
	tg.Tiers[1].Tmax = -1  // second tier also broken
	err := tg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "words")
}
