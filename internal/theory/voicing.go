package theory

import "fmt"

// AssignOctaves places every tone at the highest octave that is still strictly
// below top. Tones are handled independently and keep their input order.
func AssignOctaves(tones []PitchClass, top Note) ([]Note, error) {
	below, err := PitchRange.SliceBelow(top)
	if err != nil {
		return nil, err
	}

	eligible := make(map[Note]bool, len(below))
	for _, n := range below {
		eligible[n] = true
	}

	voiced := make([]Note, 0, len(tones))
	for _, pc := range tones {
		note, ok := highestBelow(pc, eligible)
		if !ok {
			return nil, fmt.Errorf("%w: no octave puts %s below %s", ErrUnvoiceableNote, pc, top)
		}
		voiced = append(voiced, note)
	}
	return voiced, nil
}

func highestBelow(pc PitchClass, eligible map[Note]bool) (Note, bool) {
	for octave := highestOctave; octave >= lowestOctave; octave-- {
		candidate := Note{Class: pc, Octave: octave}
		if eligible[candidate] {
			return candidate, true
		}
	}
	return Note{}, false
}
