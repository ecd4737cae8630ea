package schema

// Point is one labeled value in an ordered series.
type Point struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Series is an ordered label/value sequence for a generic chart renderer
// (bar, scatter, histogram). The point order carries meaning and must be
// preserved end to end; writers never re-sort it.
type Series struct {
	Name   string  `json:"name"`
	Points []Point `json:"points"`
}

// RadarSeries maps the fixed RadarAxes to values for one player. Axes and
// Values are index-aligned; a missing attribute appears as the zero
// placeholder rather than being dropped.
type RadarSeries struct {
	Name   string    `json:"name"`
	Axes   []string  `json:"axes"`
	Values []float64 `json:"values"`
}

// HeatmapGrid is a square matrix of values with shared row/column labels,
// used for attribute correlation output.
type HeatmapGrid struct {
	Labels []string    `json:"labels"`
	Cells  [][]float64 `json:"cells"`
}

// HistogramBin is one fixed-width bucket: [Low, High) except the last bin,
// which is closed on both ends.
type HistogramBin struct {
	Low   float64 `json:"low"`
	High  float64 `json:"high"`
	Count int     `json:"count"`
}

// Histogram is the binned distribution of one attribute across players.
type Histogram struct {
	Attribute string         `json:"attribute"`
	Bins      []HistogramBin `json:"bins"`
}
