package display

// Band classifies a load average by severity.
type Band int

const (
	BandLow Band = iota
	BandModerate
	BandHigh
	BandCritical
)

func (b Band) String() string {
	switch b {
	case BandLow:
		return "low"
	case BandModerate:
		return "moderate"
	case BandHigh:
		return "high"
	default:
		return "critical"
	}
}

// Classify maps a load average onto its band: below 1, below 2, below 4,
// and 4 or more. Negative values from a corrupt source fall in BandLow.
func Classify(load float64) Band {
	switch {
	case load < 1.0:
		return BandLow
	case load < 2.0:
		return BandModerate
	case load < 4.0:
		return BandHigh
	default:
		return BandCritical
	}
}
