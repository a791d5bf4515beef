package schema

import "math"

// Intensity level bounds. Level 0 is reserved for days with no commits.
const (
	NumLevels = 5
	MaxLevel  = NumLevels - 1
)

// LevelScale maps raw day counts to discrete intensity levels. The scale
// is anchored to the maximum count across every matrix rendered together,
// so colors stay comparable between authors in the same table.
//
// Quantization uses square-root compression over (0, max]: a handful of
// high-activity days will not collapse all other days into the lowest
// level. Zero always maps to level 0 and max always maps to MaxLevel.
type LevelScale struct {
	max int
}

// NewLevelScale builds a scale from the matrices that will render together.
func NewLevelScale(matrices ...ActivityMatrix) LevelScale {
	s := LevelScale{}
	for i := range matrices {
		for _, d := range matrices[i].Days {
			if d.Count > s.max {
				s.max = d.Count
			}
		}
	}
	return s
}

// MaxCount returns the maximum day count the scale was built from.
func (s LevelScale) MaxCount() int {
	return s.max
}

// Level returns the intensity level for a day count.
func (s LevelScale) Level(count int) int {
	if count <= 0 || s.max <= 0 {
		return 0
	}
	if count >= s.max {
		return MaxLevel
	}
	level := int(math.Ceil(float64(MaxLevel) * math.Sqrt(float64(count)) / math.Sqrt(float64(s.max))))
	if level < 1 {
		level = 1
	}
	if level > MaxLevel {
		level = MaxLevel
	}
	return level
}

// Bounds returns the inclusive count range [lo, hi] that maps to the given
// level. A range with lo > hi means no count maps to that level under the
// current max; callers should render such legend entries as empty.
func (s LevelScale) Bounds(level int) (int, int) {
	if level <= 0 || s.max <= 0 {
		return 0, 0
	}
	frac := func(l int) float64 {
		f := float64(l) / float64(MaxLevel)
		return f * f * float64(s.max)
	}
	lo := int(math.Floor(frac(level-1))) + 1
	hi := int(math.Floor(frac(level)))
	if level == MaxLevel {
		hi = s.max
	}
	return lo, hi
}
