package tonal

import (
	"github.com/RyanBlaney/armonia/algorithms/chroma"
	"github.com/RyanBlaney/armonia/algorithms/common"
)

// NotApplicable is the label for a tetrad with no common name
const NotApplicable = "NA"

// TetradSize is the only pattern length the classifier recognizes
const TetradSize = 4

// ChordQuality represents the quality/type of a tetrad
type ChordQuality int

const (
	ChordMaj7 ChordQuality = iota
	ChordMaj7Sharp5
	ChordDom7
	ChordDom7Flat5
	ChordSus2
	ChordSus2Six
	ChordSus2Flat5
	ChordSus2SixFlat5
	ChordSus7
	ChordSus7Flat5
	ChordSus6
	ChordSus6Flat5
	ChordSix
	ChordMinMaj7
	ChordMin7
	ChordMin6
	ChordHalfDim7
	ChordDim7
)

// ChordInversion is the rotation a pattern was matched in. Anything but ChordRoot
// is rendered as a slash chord naming the note moved to the bass.
type ChordInversion int

const (
	ChordRoot ChordInversion = iota
	ChordFirst
	ChordSecond
	ChordThird
)

// chordShape is one catalog entry. rootSep and slashSep sit between the
// root (or slash) part of a label and the symbol; most shapes use a space.
type chordShape struct {
	quality   ChordQuality
	intervals [TetradSize]int
	symbol    string
	rootSep   string
	slashSep  string
}

// Catalog order is match order: the first voicing that matches wins.
var chordShapes = []chordShape{
	{ChordMaj7, [TetradSize]int{0, 4, 7, 11}, "Maj7", " ", " "},
	{ChordMaj7Sharp5, [TetradSize]int{0, 4, 8, 11}, "Maj7(#5)", " ", " "},
	{ChordDom7, [TetradSize]int{0, 4, 7, 10}, "7", " ", " "},
	{ChordDom7Flat5, [TetradSize]int{0, 4, 6, 10}, "7(b5)", " ", " "},
	{ChordSus2, [TetradSize]int{0, 2, 7, 10}, "sus2", " ", " "},
	{ChordSus2Six, [TetradSize]int{0, 2, 7, 9}, "sus2 6", " ", " "},
	{ChordSus2Flat5, [TetradSize]int{0, 2, 6, 10}, "sus2(b5)", " ", " "},
	{ChordSus2SixFlat5, [TetradSize]int{0, 2, 6, 9}, "sus2 6(b5)", " ", " "},
	{ChordSus7, [TetradSize]int{0, 5, 7, 10}, "sus7", " ", " "},
	{ChordSus7Flat5, [TetradSize]int{0, 5, 6, 10}, "sus7(b5)", " ", " "},
	{ChordSus6, [TetradSize]int{0, 5, 7, 9}, "sus6", " ", " "},
	{ChordSus6Flat5, [TetradSize]int{0, 5, 6, 9}, "sus6(b5)", " ", " "},
	{ChordSix, [TetradSize]int{0, 4, 7, 9}, "6", "", ""},
	{ChordMinMaj7, [TetradSize]int{0, 3, 7, 11}, "min(Maj7)", " ", " "},
	{ChordMin7, [TetradSize]int{0, 3, 7, 10}, "min7", " ", ""},
	{ChordMin6, [TetradSize]int{0, 3, 7, 9}, "min6", " ", ""},
	{ChordHalfDim7, [TetradSize]int{0, 3, 6, 10}, "min7(b5)", " ", " "},
	{ChordDim7, [TetradSize]int{0, 3, 6, 9}, "dim7", " ", " "},
}

// Voicings that do not follow the rotation rule. They are part of the established
// labelling and are reproduced as-is.
//
// 7(b5) second inversion names the bass a fifth above the root although the matched
// offset is 6. dim7 third inversion matches [9 0 3 7], which is not a rotation of
// [0 3 6 9]; min6 claims that pattern first, so it never yields a dim7 label and the
// true rotation [9 0 3 6] goes unrecognized.
var voicingQuirks = []struct {
	quality   ChordQuality
	inversion ChordInversion
	pattern   [TetradSize]int
	bass      int
}{
	{ChordDom7Flat5, ChordSecond, [TetradSize]int{6, 10, 0, 4}, 7},
	{ChordDim7, ChordThird, [TetradSize]int{9, 0, 3, 7}, 9},
}

// voicing is one matchable pattern of a shape
type voicing struct {
	shape     *chordShape
	inversion ChordInversion
	pattern   [TetradSize]int
	bass      int
}

var chordVoicings = buildVoicings()

func buildVoicings() []voicing {
	voicings := make([]voicing, 0, len(chordShapes)*TetradSize)

	for i := range chordShapes {
		shape := &chordShapes[i]
		for inv := 0; inv < TetradSize; inv++ {
			v := voicing{
				shape:     shape,
				inversion: ChordInversion(inv),
				bass:      shape.intervals[inv],
			}
			copy(v.pattern[:], common.Rotate(shape.intervals[:], inv))

			for _, q := range voicingQuirks {
				if q.quality == shape.quality && q.inversion == v.inversion {
					v.pattern = q.pattern
					v.bass = q.bass
				}
			}

			voicings = append(voicings, v)
		}
	}

	return voicings
}

// ChordMatch is a recognized tetrad pattern
type ChordMatch struct {
	Quality   ChordQuality   `json:"quality"`
	Inversion ChordInversion `json:"inversion"`
	// BassOffset is the semitone distance from the root to the note named after
	// the slash. Zero in root position.
	BassOffset int   `json:"bass_offset"`
	Pattern    []int `json:"pattern"`
}

// MatchChord finds the catalog voicing equal to pattern. Patterns must hold exactly
// four offsets; they are compared literally, without normalization.
func MatchChord(pattern []int) (ChordMatch, bool) {
	if len(pattern) != TetradSize {
		return ChordMatch{}, false
	}

	for _, v := range chordVoicings {
		if common.Equal(pattern, v.pattern[:]) {
			matched := make([]int, TetradSize)
			copy(matched, v.pattern[:])
			return ChordMatch{
				Quality:    v.shape.quality,
				Inversion:  v.inversion,
				BassOffset: v.bass,
				Pattern:    matched,
			}, true
		}
	}
	return ChordMatch{}, false
}

// Label renders the match on a root, e.g. "C Maj7" or "C/E Maj7"
func (m ChordMatch) Label(root chroma.PitchClass) string {
	shape := shapeFor(m.Quality)
	if shape == nil {
		return NotApplicable
	}

	if m.Inversion == ChordRoot {
		return root.String() + shape.rootSep + shape.symbol
	}
	bass := root.Transpose(m.BassOffset)
	return root.String() + "/" + bass.String() + shape.slashSep + shape.symbol
}

// ClassifyChord names the tetrad described by pattern on root. It never fails:
// unknown roots, patterns of the wrong length and unmatched patterns all yield
// NotApplicable.
func ClassifyChord(root string, pattern []int) string {
	m, ok := MatchChord(pattern)
	if !ok {
		return NotApplicable
	}

	r, err := chroma.ParsePitchClass(root)
	if err != nil {
		return NotApplicable
	}
	return m.Label(r)
}

func shapeFor(quality ChordQuality) *chordShape {
	for i := range chordShapes {
		if chordShapes[i].quality == quality {
			return &chordShapes[i]
		}
	}
	return nil
}

// Symbol returns the chord symbol used in labels, e.g. "Maj7"
func (q ChordQuality) Symbol() string {
	if shape := shapeFor(q); shape != nil {
		return shape.symbol
	}
	return "unknown"
}

// Intervals returns the root-position semitone offsets of the quality
func (q ChordQuality) Intervals() []int {
	shape := shapeFor(q)
	if shape == nil {
		return nil
	}
	out := make([]int, TetradSize)
	copy(out, shape.intervals[:])
	return out
}

func (q ChordQuality) String() string {
	return q.Symbol()
}

func (inv ChordInversion) String() string {
	switch inv {
	case ChordRoot:
		return "root"
	case ChordFirst:
		return "first"
	case ChordSecond:
		return "second"
	case ChordThird:
		return "third"
	default:
		return "unknown"
	}
}

// GetSupportedChordQualities returns the symbols of every catalog shape in match order
func GetSupportedChordQualities() []string {
	symbols := make([]string, len(chordShapes))
	for i, shape := range chordShapes {
		symbols[i] = shape.symbol
	}
	return symbols
}

// GetChordQualities returns every catalog quality in match order
func GetChordQualities() []ChordQuality {
	qualities := make([]ChordQuality, len(chordShapes))
	for i, shape := range chordShapes {
		qualities[i] = shape.quality
	}
	return qualities
}
