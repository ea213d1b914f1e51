package quiz

// Dimension is one of the four scoring axes.
type Dimension string

const (
	DimensionDominant   Dimension = "dominant"
	DimensionSadist     Dimension = "sadist"
	DimensionSubmissive Dimension = "submissive"
	DimensionMasochist  Dimension = "masochist"
)

// FullMark is the chart axis upper bound for every dimension. It only scales
// the chart; totals above it are reported as-is.
const FullMark = 12

// AllDimensions returns the dimensions in canonical order. Tie-breaking when
// choosing the primary dimension follows this order.
func AllDimensions() []Dimension {
	return []Dimension{DimensionDominant, DimensionSadist, DimensionSubmissive, DimensionMasochist}
}

// Valid reports whether d is one of the four known dimensions.
func (d Dimension) Valid() bool {
	switch d {
	case DimensionDominant, DimensionSadist, DimensionSubmissive, DimensionMasochist:
		return true
	default:
		return false
	}
}

// ChartLabel returns the axis label shown on the result chart.
func (d Dimension) ChartLabel() string {
	switch d {
	case DimensionDominant:
		return "控制欲"
	case DimensionSadist:
		return "施虐傾向"
	case DimensionSubmissive:
		return "順從度"
	case DimensionMasochist:
		return "痛感耐受"
	default:
		return string(d)
	}
}

// DisplayName returns an ASCII label for the dimension.
func (d Dimension) DisplayName() string {
	switch d {
	case DimensionDominant:
		return "Dominance"
	case DimensionSadist:
		return "Sadism"
	case DimensionSubmissive:
		return "Submission"
	case DimensionMasochist:
		return "Pain tolerance"
	default:
		return string(d)
	}
}

// Scores holds one total per dimension. It doubles as the per-option
// contribution table.
type Scores struct {
	Dominant   int `json:"dominant"`
	Sadist     int `json:"sadist"`
	Submissive int `json:"submissive"`
	Masochist  int `json:"masochist"`
}

// Get returns the value for d. Unknown dimensions read as zero.
func (s Scores) Get(d Dimension) int {
	switch d {
	case DimensionDominant:
		return s.Dominant
	case DimensionSadist:
		return s.Sadist
	case DimensionSubmissive:
		return s.Submissive
	case DimensionMasochist:
		return s.Masochist
	default:
		return 0
	}
}

// Add returns the element-wise sum of s and o.
func (s Scores) Add(o Scores) Scores {
	return Scores{
		Dominant:   s.Dominant + o.Dominant,
		Sadist:     s.Sadist + o.Sadist,
		Submissive: s.Submissive + o.Submissive,
		Masochist:  s.Masochist + o.Masochist,
	}
}

// Total returns the sum across all dimensions.
func (s Scores) Total() int {
	return s.Dominant + s.Sadist + s.Submissive + s.Masochist
}

// ChartPoint is one axis of the result chart.
type ChartPoint struct {
	Dimension Dimension `json:"dimension"`
	Label     string    `json:"label"`
	Value     int       `json:"value"`
	FullMark  int       `json:"fullMark"`
}

// Ratio returns Value/FullMark clamped to [0, 1].
func (p ChartPoint) Ratio() float64 {
	if p.FullMark <= 0 {
		return 0
	}
	r := float64(p.Value) / float64(p.FullMark)
	if r < 0 {
		return 0
	}
	if r > 1 {
		return 1
	}
	return r
}

// Chart projects scores onto the four chart axes in canonical order.
func Chart(s Scores) []ChartPoint {
	dims := AllDimensions()
	points := make([]ChartPoint, 0, len(dims))
	for _, d := range dims {
		points = append(points, ChartPoint{
			Dimension: d,
			Label:     d.ChartLabel(),
			Value:     s.Get(d),
			FullMark:  FullMark,
		})
	}
	return points
}
