package design

import (
	"errors"
	"fmt"
)

var (
	ErrSource  = errors.New("invalid source profile")
	ErrQuality = errors.New("invalid water quality")
)

// Validate rejects inputs the engine cannot interpret. Non-positive flows are
// accepted and come back as unsized stages.
func (in Input) Validate() error {
	if !in.Origin.Valid() || !in.Profile.Valid() {
		return fmt.Errorf("%w: origin %q, profile %q", ErrSource, in.Origin, in.Profile)
	}
	if !in.Raw.Valid() {
		return ErrQuality
	}
	return nil
}
