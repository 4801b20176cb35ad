package core

import "errors"

// Sentinel errors returned by spec validation and the generators.
var (
	// ErrInvalidSpec indicates an inconsistent language specification:
	// a pattern role with no phoneme set, or syllable bounds with max < min.
	// Detected at construction time, never mid-generation.
	ErrInvalidSpec = errors.New("invalid language spec")

	// ErrEmptyPhonemeSet indicates a pattern role that resolves to an
	// empty candidate sequence. Like ErrInvalidSpec this is a
	// construction-time configuration error.
	ErrEmptyPhonemeSet = errors.New("empty phoneme set")

	// ErrAttemptsExhausted is returned by generators when a retry bound
	// was configured and reached. With the default unbounded retries it
	// is never returned.
	ErrAttemptsExhausted = errors.New("generation attempts exhausted")
)
