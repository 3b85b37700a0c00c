package urseg

import "errors"

// Sentinel errors for conditions callers may need to handle differently.
var (
	// ErrInvalidConfig indicates the lexicon or options are unusable. It is
	// the only error New returns; segmentation itself never fails.
	ErrInvalidConfig = errors.New("urseg: invalid configuration")
)
