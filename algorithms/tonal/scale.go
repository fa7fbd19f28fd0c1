package tonal

import (
	"github.com/RyanBlaney/armonia/algorithms/chroma"
	"github.com/RyanBlaney/armonia/algorithms/common"
	"github.com/RyanBlaney/armonia/logging"
)

// Step qualities between consecutive scale degrees
const (
	StepSemitone        = "S"
	StepTone            = "T"
	StepToneAndHalf     = "T1/2"
	StepInvalidInterval = "Invalid interval"
)

// GetScale returns the pitch classes of mode built on root, followed by the first
// degree again to close the octave (8 names for a 7-degree mode).
//
// Each template offset is added to the root as-is. For rotated modes the first
// offset is not 0, so the scale starts (and closes) on the rotated degree:
// GetScale("C", "dorian") is D E F G A B C D.
func GetScale(root, mode string) ([]string, error) {
	pitchClasses, err := scalePitchClasses(root, mode)
	if err != nil {
		return nil, err
	}

	scale := chroma.Names(pitchClasses)
	return append(scale, scale[0]), nil
}

func scalePitchClasses(root, mode string) ([]chroma.PitchClass, error) {
	r, err := parseRoot(root)
	if err != nil {
		return nil, err
	}
	m, err := LookupMode(mode)
	if err != nil {
		return nil, err
	}

	degrees := make([]chroma.PitchClass, len(m.Template))
	for i, offset := range m.Template {
		degrees[i] = r.Transpose(offset)
	}
	return degrees, nil
}

// GetIntervals returns the step quality between each pair of consecutive degrees of
// mode, including the step that closes the octave.
func GetIntervals(mode string) ([]string, error) {
	m, err := LookupMode(mode)
	if err != nil {
		return nil, err
	}

	steps := stepSizes(m.Template[:])
	labels := make([]string, len(steps))
	for i, step := range steps {
		labels[i] = stepLabel(step)
		if labels[i] == StepInvalidInterval {
			logging.Warn("unrecognized step size in mode template", logging.Fields{
				"mode": mode,
				"step": step,
			})
		}
	}
	return labels, nil
}

// stepSizes re-bases a template on its first offset and returns the semitone
// distances between successive degrees, closing on the octave.
func stepSizes(template []int) []int {
	if len(template) == 0 {
		return []int{}
	}

	first := template[0]
	closed := make([]int, 0, len(template)+1)
	for _, offset := range template {
		closed = append(closed, common.Mod(offset-first, chroma.NumPitchClasses))
	}
	closed = append(closed, closed[0]+chroma.NumPitchClasses)

	return common.Diff(closed)
}

func stepLabel(semitones int) string {
	switch semitones {
	case 1:
		return StepSemitone
	case 2:
		return StepTone
	case 3:
		return StepToneAndHalf
	default:
		return StepInvalidInterval
	}
}
