package tonal

import (
	"fmt"

	"github.com/RyanBlaney/armonia/algorithms/common"
)

// DegreesPerMode is the number of degrees in every supported mode
const DegreesPerMode = 7

// ModeFamily identifies the seven-note template a mode is rotated from
type ModeFamily int

const (
	FamilyMajor ModeFamily = iota
	FamilyMelodicMinor
	FamilyHarmonicMinor
	FamilyHarmonicMajor
	FamilyDoubleHarmonic
)

// Base templates, semitone offsets from the first degree
var familyTemplates = map[ModeFamily][DegreesPerMode]int{
	FamilyMajor:          {0, 2, 4, 5, 7, 9, 11},
	FamilyMelodicMinor:   {0, 2, 3, 5, 7, 9, 11},
	FamilyHarmonicMinor:  {0, 2, 3, 5, 7, 8, 11},
	FamilyHarmonicMajor:  {0, 2, 4, 5, 7, 8, 11},
	FamilyDoubleHarmonic: {0, 1, 4, 5, 7, 8, 11},
}

func (f ModeFamily) String() string {
	switch f {
	case FamilyMajor:
		return "major"
	case FamilyMelodicMinor:
		return "melodic minor"
	case FamilyHarmonicMinor:
		return "harmonic minor"
	case FamilyHarmonicMajor:
		return "harmonic major"
	case FamilyDoubleHarmonic:
		return "double harmonic"
	default:
		return "unknown"
	}
}

// Template returns the family's base template
func (f ModeFamily) Template() []int {
	base, ok := familyTemplates[f]
	if !ok {
		return nil
	}
	return base[:]
}

// Mode is a named rotation of a family template.
//
// Template holds the rotated offsets exactly as rotated: it is not re-based to start
// at 0, so a scale built from it starts on the rotation's degree, not on the root.
// GetIntervals re-bases on the fly.
type Mode struct {
	Name     string
	Family   ModeFamily
	Rotation int
	Template [DegreesPerMode]int
}

type modeEntry struct {
	name     string
	family   ModeFamily
	rotation int
}

// Registration order is the order reported by Modes(). Names are kept exactly as
// they have always been registered, spelling included, since they are lookup keys.
var modeEntries = []modeEntry{
	{"major", FamilyMajor, 0},
	{"ionian", FamilyMajor, 0},
	{"dorian", FamilyMajor, 1},
	{"phrigian", FamilyMajor, 2},
	{"lydian", FamilyMajor, 3},
	{"mixolydian", FamilyMajor, 4},
	{"aeolian", FamilyMajor, 5},
	{"natural minor", FamilyMajor, 5},
	{"locrian", FamilyMajor, 6},

	{"melodic minor", FamilyMelodicMinor, 0},
	{"dorian #7", FamilyMelodicMinor, 0},
	{"phrigian #6", FamilyMelodicMinor, 1},
	{"lydian #5", FamilyMelodicMinor, 2},
	{"mixolydian #4", FamilyMelodicMinor, 3},
	{"aeolian #3", FamilyMelodicMinor, 4},
	{"locrian #2", FamilyMelodicMinor, 5},
	{"ionian #1", FamilyMelodicMinor, 6},

	{"harmonic minor", FamilyHarmonicMinor, 0},
	{"aeolian #7", FamilyHarmonicMinor, 0},
	{"locrian #6", FamilyHarmonicMinor, 1},
	{"ionian #5", FamilyHarmonicMinor, 2},
	{"dorian #4", FamilyHarmonicMinor, 3},
	{"phrygian #3", FamilyHarmonicMinor, 4},
	{"lydian #2", FamilyHarmonicMinor, 5},
	{"mixolydian #1", FamilyHarmonicMinor, 6},

	{"harmonic major", FamilyHarmonicMajor, 0},
	{"ionian b6", FamilyHarmonicMajor, 0},
	{"dorian b5", FamilyHarmonicMajor, 1},
	{"phrigian b4", FamilyHarmonicMajor, 2},
	{"lydian b3", FamilyHarmonicMajor, 3},
	{"mixolydian b2", FamilyHarmonicMajor, 4},
	{"lydian augmented #2", FamilyHarmonicMajor, 5},
	{"locrian bb7", FamilyHarmonicMajor, 6},

	{"double harmonic", FamilyDoubleHarmonic, 0},
	{"lydian #2 #6", FamilyDoubleHarmonic, 1},
	{"phrygian b4 bb7", FamilyDoubleHarmonic, 2},
	{"Lydian #3 #6", FamilyDoubleHarmonic, 3},
	{"mixolydian b2 b5", FamilyDoubleHarmonic, 4},
	{"ionian #2 #5", FamilyDoubleHarmonic, 5},
	{"locrian bb3 bb7", FamilyDoubleHarmonic, 6},
}

var (
	modeOrder []string
	modeTable map[string]Mode
)

func init() {
	modes, order, err := buildModes(modeEntries)
	if err != nil {
		panic(fmt.Sprintf("tonal: invalid mode registry: %v", err))
	}
	modeTable = modes
	modeOrder = order
}

func buildModes(entries []modeEntry) (map[string]Mode, []string, error) {
	modes := make(map[string]Mode, len(entries))
	order := make([]string, 0, len(entries))

	for _, e := range entries {
		if _, dup := modes[e.name]; dup {
			return nil, nil, fmt.Errorf("duplicate mode %q", e.name)
		}

		base := e.family.Template()
		if base == nil {
			return nil, nil, fmt.Errorf("mode %q: unknown family %d", e.name, e.family)
		}
		if e.rotation < 0 || e.rotation >= DegreesPerMode {
			return nil, nil, fmt.Errorf("mode %q: rotation %d out of range", e.name, e.rotation)
		}

		var template [DegreesPerMode]int
		copy(template[:], common.Rotate(base, e.rotation))

		m := Mode{Name: e.name, Family: e.family, Rotation: e.rotation, Template: template}
		if err := validateMode(m); err != nil {
			return nil, nil, err
		}

		modes[e.name] = m
		order = append(order, e.name)
	}

	return modes, order, nil
}

// validateMode checks that the template is a rotation of exactly one family template,
// and that the family is the declared one.
func validateMode(m Mode) error {
	var matches []ModeFamily
	for f := FamilyMajor; f <= FamilyDoubleHarmonic; f++ {
		if isRotationOf(m.Template[:], f.Template()) {
			matches = append(matches, f)
		}
	}

	switch {
	case len(matches) == 0:
		return fmt.Errorf("mode %q: template %v is not a rotation of any family", m.Name, m.Template)
	case len(matches) > 1:
		return fmt.Errorf("mode %q: template %v matches families %v", m.Name, m.Template, matches)
	case matches[0] != m.Family:
		return fmt.Errorf("mode %q: declared %s but template belongs to %s", m.Name, m.Family, matches[0])
	}
	return nil
}

func isRotationOf(template, base []int) bool {
	for k := range base {
		if common.Equal(template, common.Rotate(base, k)) {
			return true
		}
	}
	return false
}

// Modes returns every registered mode name in registration order
func Modes() []string {
	names := make([]string, len(modeOrder))
	copy(names, modeOrder)
	return names
}

// LookupMode returns the registered mode for a name
func LookupMode(name string) (Mode, error) {
	m, ok := modeTable[name]
	if !ok {
		return Mode{}, fmt.Errorf("%w: %q", ErrInvalidMode, name)
	}
	return m, nil
}

// IsMode reports whether name is a registered mode
func IsMode(name string) bool {
	_, ok := modeTable[name]
	return ok
}
