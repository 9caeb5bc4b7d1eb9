package theory

import "fmt"

// ResolveTones lists the chord tones of root/quality, ordered root, third, fifth, [seventh]
func ResolveTones(root PitchClass, quality Quality) ([]PitchClass, error) {
	intervals, ok := qualityIntervals[quality]
	if !ok {
		return nil, fmt.Errorf("%w: unknown quality %d", ErrInvalidChordSymbol, int(quality))
	}

	ring, err := Chromatic.Rotate(root)
	if err != nil {
		return nil, err
	}

	tones := make([]PitchClass, len(intervals))
	for i, interval := range intervals {
		tones[i] = ring.At(interval)
	}
	return tones, nil
}
