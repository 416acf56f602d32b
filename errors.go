package uroman

import "errors"

// Sentinel errors returned by the public API. Wrap with fmt.Errorf("...: %w", ErrX)
// for call-site context, matching the teacher's error-wrapping style.
var (
	// ErrSerializationFailed is returned when an Edges/ALTS/Lattice result
	// cannot be marshaled to JSON.
	ErrSerializationFailed = errors.New("uroman: failed to serialize edges to JSON")

	// ErrInternal signals an invariant violation: the path selector found no
	// cover for a non-empty input. Seeing this means the lattice or path
	// selector has a bug, not a bad input.
	ErrInternal = errors.New("uroman: internal invariant violation")
)
