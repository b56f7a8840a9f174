package rng

import "fmt"

// ErrNoUsableItem is returned by RandChoice when every candidate in a
// resample chain is locked or marked retry, including the final fallback
// attempt.
var ErrNoUsableItem = fmt.Errorf("rng: no usable item found after exhausting resample chain")

// ErrEmptyItemSet is returned by RandChoice when called with no candidates
// to choose from.
var ErrEmptyItemSet = fmt.Errorf("rng: rand choice called with an empty item set")

// ErrSeedTooLong names a seed that exceeds a length bound. No function in
// this package returns it: Engine accepts seeds of any length.
var ErrSeedTooLong = fmt.Errorf("rng: seed exceeds maximum length")
