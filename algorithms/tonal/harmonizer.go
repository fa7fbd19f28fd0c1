package tonal

import (
	"github.com/RyanBlaney/armonia/algorithms/chroma"
	"github.com/RyanBlaney/armonia/logging"
)

// Scale-relative positions stacked on each degree: root, third, fifth, seventh
var tetradDegrees = [TetradSize]int{0, 2, 4, 6}

// HarmonizedChord is the tetrad built on one scale degree
type HarmonizedChord struct {
	Degree  int      `json:"degree"`  // 0-based scale degree
	Label   string   `json:"label"`   // Classification, NotApplicable if unrecognized
	Notes   []string `json:"notes"`   // Root, third, fifth, seventh
	Pattern []int    `json:"pattern"` // Offsets of Notes from the tetrad root, in [0, 12)
}

// HarmonizerParams contains parameters for harmonization
type HarmonizerParams struct {
	Root string `json:"root"` // One of the 12 canonical pitch class names
	Mode string `json:"mode"` // A registered mode name, see Modes()

	// Logger receives debug output. Nil uses the global logger.
	Logger logging.Logger `json:"-"`
}

// DefaultHarmonizerParams returns C major with the global logger
func DefaultHarmonizerParams() HarmonizerParams {
	return HarmonizerParams{
		Root: "C",
		Mode: "major",
	}
}

// Harmonizer builds scales and their diatonic tetrads for a fixed root and mode.
// It holds no mutable state and is safe for concurrent use.
type Harmonizer struct {
	root   chroma.PitchClass
	mode   Mode
	logger logging.Logger
}

// NewHarmonizer creates a harmonizer for root and mode
func NewHarmonizer(root, mode string) (*Harmonizer, error) {
	params := DefaultHarmonizerParams()
	params.Root = root
	params.Mode = mode
	return NewHarmonizerWithParams(params)
}

// NewHarmonizerWithParams creates a harmonizer with custom parameters. It fails with
// ErrInvalidRoot or ErrInvalidMode.
func NewHarmonizerWithParams(params HarmonizerParams) (*Harmonizer, error) {
	root, err := parseRoot(params.Root)
	if err != nil {
		return nil, err
	}
	mode, err := LookupMode(params.Mode)
	if err != nil {
		return nil, err
	}

	logger := params.Logger
	if logger == nil {
		logger = logging.GetGlobalLogger()
	}
	logger = logger.WithFields(logging.Fields{
		"root": root.String(),
		"mode": mode.Name,
	})

	logger.Debug("harmonizer created", logging.Fields{
		"family":   mode.Family.String(),
		"rotation": mode.Rotation,
	})

	return &Harmonizer{root: root, mode: mode, logger: logger}, nil
}

// Root returns the root name
func (h *Harmonizer) Root() string {
	return h.root.String()
}

// Mode returns the mode name
func (h *Harmonizer) Mode() string {
	return h.mode.Name
}

// Scale returns the closed scale, see GetScale
func (h *Harmonizer) Scale() []string {
	// root and mode were validated at construction
	scale, _ := GetScale(h.Root(), h.Mode())
	return scale
}

// Intervals returns the step qualities of the mode, see GetIntervals
func (h *Harmonizer) Intervals() []string {
	intervals, _ := GetIntervals(h.Mode())
	return intervals
}

// CheckChord classifies a tetrad pattern on root, see ClassifyChord
func (h *Harmonizer) CheckChord(root string, pattern []int) string {
	return ClassifyChord(root, pattern)
}

// Harmonize stacks thirds on every degree of the scale and classifies each tetrad.
// Degrees wrap around the seven-note scale, so every degree gets a full tetrad.
func (h *Harmonizer) Harmonize() []HarmonizedChord {
	degrees, _ := scalePitchClasses(h.Root(), h.Mode())

	chords := make([]HarmonizedChord, len(degrees))
	for i := range degrees {
		notes := make([]chroma.PitchClass, TetradSize)
		pattern := make([]int, TetradSize)
		for j, step := range tetradDegrees {
			notes[j] = degrees[(i+step)%len(degrees)]
			pattern[j] = chroma.IntervalBetween(notes[0], notes[j])
		}

		label := NotApplicable
		if m, ok := MatchChord(pattern); ok {
			label = m.Label(notes[0])
		}

		chords[i] = HarmonizedChord{
			Degree:  i,
			Label:   label,
			Notes:   chroma.Names(notes),
			Pattern: pattern,
		}

		h.logger.Debug("degree harmonized", logging.Fields{
			"degree":  i,
			"label":   label,
			"pattern": pattern,
		})
	}

	return chords
}

// Harmonize is a convenience for NewHarmonizer(root, mode).Harmonize()
func Harmonize(root, mode string) ([]HarmonizedChord, error) {
	h, err := NewHarmonizer(root, mode)
	if err != nil {
		return nil, err
	}
	return h.Harmonize(), nil
}
