package tonal

import (
	"bytes"
	"errors"
	"sync"
	"testing"

	"github.com/RyanBlaney/armonia/algorithms/chroma"
	"github.com/RyanBlaney/armonia/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHarmonizer(t *testing.T, root, mode string) *Harmonizer {
	t.Helper()

	params := DefaultHarmonizerParams()
	params.Root = root
	params.Mode = mode
	params.Logger = &logging.NoOpLogger{}

	h, err := NewHarmonizerWithParams(params)
	require.NoError(t, err)
	return h
}

func labels(chords []HarmonizedChord) []string {
	out := make([]string, len(chords))
	for i, c := range chords {
		out[i] = c.Label
	}
	return out
}

func TestHarmonizeHarmonicMinor(t *testing.T) {
	chords := newTestHarmonizer(t, "C", "harmonic minor").Harmonize()
	require.Len(t, chords, 7)

	first := chords[0]
	assert.Equal(t, "C min(Maj7)", first.Label)
	assert.Equal(t, []string{"C", "Eb", "G", "B"}, first.Notes)
	assert.Equal(t, []int{0, 3, 7, 11}, first.Pattern)
	assert.Equal(t, 0, first.Degree)

	assert.Equal(t, []string{
		"C min(Maj7)",
		"D min7(b5)",
		"Eb Maj7(#5)",
		"F min7",
		"G 7",
		"Ab Maj7",
		"B dim7",
	}, labels(chords))
}

func TestHarmonizeMajor(t *testing.T) {
	chords := newTestHarmonizer(t, "C", "major").Harmonize()

	assert.Equal(t, []string{
		"C Maj7", "D min7", "E min7", "F Maj7", "G 7", "A min7", "B min7(b5)",
	}, labels(chords))
	assert.Equal(t, []string{"G", "B", "D", "F"}, chords[4].Notes)
	assert.Equal(t, []string{"B", "D", "F", "A"}, chords[6].Notes)
}

func TestHarmonizeRotatedModeStartsOnRotatedDegree(t *testing.T) {
	chords := newTestHarmonizer(t, "C", "dorian").Harmonize()

	assert.Equal(t, []string{
		"D min7", "E min7", "F Maj7", "G 7", "A min7", "B min7(b5)", "C Maj7",
	}, labels(chords))
}

func TestHarmonizeDoubleHarmonic(t *testing.T) {
	chords := newTestHarmonizer(t, "C", "double harmonic").Harmonize()

	assert.Equal(t, []string{
		"C Maj7", "Db Maj7", "E min6", "F min(Maj7)", "G 7(b5)", "Ab Maj7(#5)", "B sus2 6(b5)",
	}, labels(chords))
}

func TestHarmonizeShapeForAllRootsAndModes(t *testing.T) {
	for _, root := range chroma.PitchClassNames() {
		for _, mode := range Modes() {
			chords, err := Harmonize(root, mode)
			require.NoError(t, err)
			require.Len(t, chords, DegreesPerMode)

			scale, _ := GetScale(root, mode)
			for i, c := range chords {
				assert.Equal(t, i, c.Degree)
				assert.Len(t, c.Notes, TetradSize)
				assert.Equal(t, scale[i], c.Notes[0])
				assert.Equal(t, 0, c.Pattern[0])
				for _, p := range c.Pattern {
					assert.True(t, p >= 0 && p < 12, "%v", c.Pattern)
				}
				assert.Equal(t, ClassifyChord(c.Notes[0], c.Pattern), c.Label)
			}
		}
	}
}

func TestNewHarmonizerValidation(t *testing.T) {
	_, err := NewHarmonizer("H", "major")
	assert.True(t, errors.Is(err, ErrInvalidRoot))

	_, err = NewHarmonizer("C", "ionian #9")
	assert.True(t, errors.Is(err, ErrInvalidMode))

	_, err = Harmonize("", "major")
	assert.True(t, errors.Is(err, ErrInvalidRoot))
}

func TestHarmonizerAccessors(t *testing.T) {
	h := newTestHarmonizer(t, "Eb", "lydian b3")

	assert := assert.New(t)
	assert.Equal("Eb", h.Root())
	assert.Equal("lydian b3", h.Mode())

	scale, _ := GetScale("Eb", "lydian b3")
	assert.Equal(scale, h.Scale())

	intervals, _ := GetIntervals("lydian b3")
	assert.Equal(intervals, h.Intervals())

	assert.Equal("C/E Maj7", h.CheckChord("C", []int{4, 7, 11, 0}))
	assert.Equal(NotApplicable, h.CheckChord("C", []int{0, 4}))
}

func TestDefaultHarmonizerParams(t *testing.T) {
	params := DefaultHarmonizerParams()
	assert.Equal(t, "C", params.Root)
	assert.Equal(t, "major", params.Mode)
	assert.Nil(t, params.Logger)

	h, err := NewHarmonizerWithParams(params)
	require.NoError(t, err)
	assert.Equal(t, "C", h.Root())
}

func TestHarmonizerLogsDegrees(t *testing.T) {
	var stdout, stderr bytes.Buffer
	logger := logging.NewDefaultLoggerWithWriters(&stdout, &stderr, false)
	logger.SetLevel(logging.DebugLevel)

	params := DefaultHarmonizerParams()
	params.Logger = logger
	h, err := NewHarmonizerWithParams(params)
	require.NoError(t, err)
	h.Harmonize()

	out := stdout.String()
	assert.Contains(t, out, "harmonizer created")
	assert.Contains(t, out, "degree harmonized")
	assert.Contains(t, out, "label=B min7(b5)")
	assert.Contains(t, out, "mode=major")
	assert.Empty(t, stderr.String())
}

func TestHarmonizeConcurrentCallers(t *testing.T) {
	h := newTestHarmonizer(t, "A", "melodic minor")
	expected := h.Harmonize()

	var wg sync.WaitGroup
	results := make([][]HarmonizedChord, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = h.Harmonize()
		}(i)
	}
	wg.Wait()

	for _, r := range results {
		assert.Equal(t, expected, r)
	}
}
