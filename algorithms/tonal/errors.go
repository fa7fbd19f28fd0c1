package tonal

import (
	"errors"
	"fmt"

	"github.com/RyanBlaney/armonia/algorithms/chroma"
)

// Sentinel errors for invalid scale/harmonizer input
var (
	ErrInvalidRoot = errors.New("invalid root")
	ErrInvalidMode = errors.New("invalid mode")
)

func parseRoot(root string) (chroma.PitchClass, error) {
	pc, err := chroma.ParsePitchClass(root)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidRoot, err)
	}
	return pc, nil
}
