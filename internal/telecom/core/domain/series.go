package domain

// Point is one value of a chronological series.
type Point struct {
	Period QuarterPeriod
	Value  float64
}

// Change is a period-over-period percentage keyed by (Province, Period).
// Valid is false where the change is undefined (no lag partner, or a zero
// base value).
type Change struct {
	Province string
	Period   QuarterPeriod
	Percent  float64
	Valid    bool
}

// Ranked is one entry of a top-N ranking; Rank starts at 1.
type Ranked struct {
	Rank     int
	Province string
	Value    float64
}
