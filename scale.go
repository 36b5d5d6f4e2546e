package designer

// Range is a span of output pixels a scaler maps into.
type Range struct {
	F float64
	T float64
}

func NewRange(f, t float64) Range {
	return Range{
		F: f,
		T: t,
	}
}

func (r Range) Len() float64 {
	return r.T - r.F
}

// ValueScaler maps a data value onto a vertical pixel offset measured from
// the top of the plot area: 0 maps to the baseline, the domain max to 0.
type ValueScaler struct {
	Range
	Max float64
}

func NewValueScaler(max float64, rg Range) ValueScaler {
	if max <= 0 {
		max = 1
	}
	return ValueScaler{
		Range: rg,
		Max:   max,
	}
}

func (s ValueScaler) Scale(v float64) float64 {
	if v < 0 {
		v = 0
	}
	if v > s.Max {
		v = s.Max
	}
	return s.Len() - v*s.Space()
}

// Height is the rendered extent of a value above the baseline.
func (s ValueScaler) Height(v float64) float64 {
	return s.Len() - s.Scale(v)
}

func (s ValueScaler) Space() float64 {
	return s.Len() / s.Max
}

// CategoryScaler maps row slots onto evenly divided horizontal bands.
type CategoryScaler struct {
	Range
	Count int
}

func NewCategoryScaler(count int, rg Range) CategoryScaler {
	if count <= 0 {
		count = 1
	}
	return CategoryScaler{
		Range: rg,
		Count: count,
	}
}

// Scale returns the left edge of the band for a row slot.
func (s CategoryScaler) Scale(i int) float64 {
	return float64(i) * s.Space()
}

// Center returns the middle of the band, where line points and tick labels
// sit.
func (s CategoryScaler) Center(i int) float64 {
	return s.Scale(i) + s.Space()/2
}

func (s CategoryScaler) Space() float64 {
	return s.Len() / float64(s.Count)
}
