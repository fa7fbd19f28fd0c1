package chroma

import (
	"errors"
	"fmt"

	"github.com/RyanBlaney/armonia/algorithms/common"
)

// NumPitchClasses is the size of the chromatic cycle
const NumPitchClasses = 12

// ErrUnknownPitchClass is returned when a name is not one of the canonical pitch classes
var ErrUnknownPitchClass = errors.New("unknown pitch class")

// PitchClass represents a pitch class (0=C, 1=Db, ..., 11=B).
// Arithmetic on pitch classes is always mod 12.
type PitchClass int

// Canonical pitch classes. Spelling is fixed per index, flats only.
const (
	C PitchClass = iota
	Db
	D
	Eb
	E
	F
	Gb
	G
	Ab
	A
	Bb
	B
)

var pitchClassNames = [NumPitchClasses]string{
	"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B",
}

var pitchClassIndex = func() map[string]PitchClass {
	index := make(map[string]PitchClass, NumPitchClasses)
	for i, name := range pitchClassNames {
		index[name] = PitchClass(i)
	}
	return index
}()

// PitchClassNames returns the 12 canonical names in index order
func PitchClassNames() []string {
	names := make([]string, NumPitchClasses)
	copy(names, pitchClassNames[:])
	return names
}

// ParsePitchClass looks up a canonical name. Matching is exact and case-sensitive;
// enharmonic spellings such as "C#" are not accepted.
func ParsePitchClass(name string) (PitchClass, error) {
	pc, ok := pitchClassIndex[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownPitchClass, name)
	}
	return pc, nil
}

// IsPitchClass reports whether name is one of the canonical names
func IsPitchClass(name string) bool {
	_, ok := pitchClassIndex[name]
	return ok
}

// String returns the canonical name
func (pc PitchClass) String() string {
	return pitchClassNames[pc.Normalize()]
}

// Normalize folds any integer into [0, 12)
func (pc PitchClass) Normalize() PitchClass {
	return common.Mod(pc, NumPitchClasses)
}

// Transpose moves the pitch class by a number of semitones, wrapping around the octave
func (pc PitchClass) Transpose(semitones int) PitchClass {
	return common.Mod(pc+PitchClass(semitones), NumPitchClasses)
}

// IntervalBetween returns the ascending interval class from one pitch class to another, in [0, 12)
func IntervalBetween(from, to PitchClass) int {
	return int(common.Mod(to-from, NumPitchClasses))
}

// Names converts a sequence of pitch classes to their canonical names
func Names(pitchClasses []PitchClass) []string {
	names := make([]string, len(pitchClasses))
	for i, pc := range pitchClasses {
		names[i] = pc.String()
	}
	return names
}
