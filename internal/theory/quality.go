package theory

import "fmt"

// Quality is a chord type, independent of its root
type Quality int

const (
	Triad Quality = iota
	MinorTriad
	Major7
	Minor7
	Dominant7
	MinorFlat5
	Minor7Flat5
)

var qualitySymbols = map[Quality]string{
	Triad:       "",
	MinorTriad:  "m",
	Major7:      "M7",
	Minor7:      "m7",
	Dominant7:   "7",
	MinorFlat5:  "mb5",
	Minor7Flat5: "m7b5",
}

// Semitones from the root, in voicing order (root, third, fifth, seventh)
var qualityIntervals = map[Quality][]int{
	Triad:       {0, 4, 7},
	MinorTriad:  {0, 3, 7},
	Major7:      {0, 4, 7, 11},
	Minor7:      {0, 3, 7, 10},
	Dominant7:   {0, 4, 7, 10},
	MinorFlat5:  {0, 3, 6},
	Minor7Flat5: {0, 3, 6, 10},
}

// String returns the chord suffix, e.g. "m7b5"
func (q Quality) String() string {
	if s, ok := qualitySymbols[q]; ok {
		return s
	}
	return fmt.Sprintf("Quality(%d)", int(q))
}

// Name returns a readable name for logs and API responses
func (q Quality) Name() string {
	switch q {
	case Triad:
		return "major"
	case MinorTriad:
		return "minor"
	case Major7:
		return "major7"
	case Minor7:
		return "minor7"
	case Dominant7:
		return "dominant7"
	case MinorFlat5:
		return "diminished"
	case Minor7Flat5:
		return "half-diminished7"
	default:
		return q.String()
	}
}

// Intervals returns a copy of the quality's semitone offsets
func (q Quality) Intervals() []int {
	src := qualityIntervals[q]
	out := make([]int, len(src))
	copy(out, src)
	return out
}

// ParseQuality maps a chord suffix back to its Quality
func ParseQuality(symbol string) (Quality, error) {
	for q, s := range qualitySymbols {
		if s == symbol {
			return q, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown quality %q", ErrInvalidChordSymbol, symbol)
}
