package textgrid

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLongStringGolden(t *testing.T) {
	want := "File type = \"ooTextFile\"\r\n" +
		"Object class = \"TextGrid\"\r\n" +
		"\r\n" +
		"xmin = 0 \r\n" +
		"xmax = 2 \r\n" +
		"tiers? <exists> \r\n" +
		"size = 1 \r\n" +
		"item []: \r\n" +
		"    item [1]:\r\n" +
		"        class = \"IntervalTier\" \r\n" +
		"        name = \"words\" \r\n" +
		"        xmin = 0 \r\n" +
		"        xmax = 2 \r\n" +
		"        intervals: size = 2 \r\n" +
		"        intervals [1]:\r\n" +
		"            xmin = 0 \r\n" +
		"            xmax = 1 \r\n" +
		"            text = \"hello\" \r\n" +
		"        intervals [2]:\r\n" +
		"            xmin = 1 \r\n" +
		"            xmax = 2 \r\n" +
		"            text = \"world\" \r\n"
	assert.Equal(t, want, wordsGrid().LongString())
}

func TestShortStringGolden(t *testing.T) {
	want := "File type = \"ooTextFile\"\r\n" +
		"Object class = \"TextGrid\"\r\n" +
		"\r\n" +
		"0\r\n" +
		"2\r\n" +
		"<exists>\r\n" +
		"1\r\n" +
		"\"IntervalTier\"\r\n" +
		"\"words\"\r\n" +
		"0\r\n" +
		"2\r\n" +
		"2\r\n" +
		"0\r\n" +
		"1\r\n" +
		"\"hello\"\r\n" +
		"1\r\n" +
		"2\r\n" +
		"\"world\"\r\n"
	assert.Equal(t, want, wordsGrid().ShortString())
}

func TestRoundTripLong(t *testing.T) {
	for _, tg := range []*TextGrid{wordsGrid(), mixedGrid()} {
		parsed, err := ParseLong(tg.Name, tg.LongString(), true)
		require.NoError(t, err)
		assert.Equal(t, tg, parsed)
	}
}

func TestRoundTripShort(t *testing.T) {
	for _, tg := range []*TextGrid{wordsGrid(), mixedGrid()} {
		parsed, err := ParseShort(tg.Name, tg.ShortString(), true)
		require.NoError(t, err)
		assert.Equal(t, tg, parsed)
	}
}

func TestCrossFormatEquivalence(t *testing.T) {
	tg := mixedGrid()
	fromLong, err := ParseLong(tg.Name, tg.LongString(), true)
	require.NoError(t, err)
	fromShort, err := ParseShort(tg.Name, tg.ShortString(), true)
	require.NoError(t, err)
	assert.Equal(t, fromLong, fromShort)
}

func TestWriterEmptyGridUsesAbsentMarker(t *testing.T) {
	tg := &TextGrid{Tmin: 0, Tmax: 2, Size: 0, Name: "empty"}

	long := tg.LongString()
	assert.Contains(t, long, "tiers? <absent> \r\n")
	assert.Contains(t, long, "size = 0 \r\n")

	short := tg.ShortString()
	assert.Contains(t, short, "<absent>\r\n")

	parsed, err := ParseShort("empty", short, true)
	require.NoError(t, err)
	assert.Empty(t, parsed.Tiers)
}

func TestWriterEscapesQuotes(t *testing.T) {
	tg := wordsGrid()
	tg.Tiers[0].Items[0].Label = `say "cheese"`
	tg.Tiers[0].Name = `the "words"`

	long := tg.LongString()
	assert.Contains(t, long, `text = "say \"cheese\"" `)
	assert.Contains(t, long, `name = "the \"words\"" `)

	short := tg.ShortString()
	assert.Contains(t, short, "\"say \\\"cheese\\\"\"\r\n")
}

func TestWriterFormatsTimesWithoutExponent(t *testing.T) {
	tg := wordsGrid()
	tg.Tiers[0].Items[0].Tmax = 0.000125
	tg.Tiers[0].Items[1].Tmin = 0.000125
	out := tg.LongString()
	assert.Contains(t, out, "xmax = 0.000125 ")
	assert.False(t, strings.Contains(out, "e-"), "times must not use exponent notation")
}

func TestSaveFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	tg := mixedGrid()

	longPath := dir + "/sample_long.TextGrid"
	require.NoError(t, tg.SaveFile(longPath, true))
	fromLong, err := ReadFile(longPath, true, FormatAuto)
	require.NoError(t, err)
	assert.Equal(t, "sample_long", fromLong.Name)
	assert.Equal(t, tg.Tiers, fromLong.Tiers)

	shortPath := dir + "/sample_short.TextGrid"
	require.NoError(t, tg.SaveFile(shortPath, false))
	fromShort, err := ReadFile(shortPath, true, FormatAuto)
	require.NoError(t, err)
	assert.Equal(t, tg.Tiers, fromShort.Tiers)
}
