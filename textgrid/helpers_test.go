package textgrid

// wordsGrid is the canonical two-interval fixture: one "words" tier tiling
// [0, 2] with "hello" and "world".
func wordsGrid() *TextGrid {
	return &TextGrid{
		Tmin: 0,
		Tmax: 2,
		Size: 1,
		Name: "sample",
		Tiers: []Tier{
			{
				Name:         "words",
				IntervalTier: true,
				Tmin:         0,
				Tmax:         2,
				Size:         2,
				Items: []Item{
					{Tmin: 0, Tmax: 1, Label: "hello"},
					{Tmin: 1, Tmax: 2, Label: "world"},
				},
			},
		},
	}
}

// mixedGrid adds a point tier to wordsGrid: two tone targets at 0.5 and 1.5.
func mixedGrid() *TextGrid {
	tg := wordsGrid()
	tg.Size = 2
	tg.Tiers = append(tg.Tiers, Tier{
		Name:         "tones",
		IntervalTier: false,
		Tmin:         0,
		Tmax:         2,
		Size:         2,
		Items: []Item{
			{Tmin: 0.5, Tmax: 0.5, Label: "H*"},
			{Tmin: 1.5, Tmax: 1.5, Label: "L-L%"},
		},
	})
	return tg
}
