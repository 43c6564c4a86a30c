package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the input contained no rows.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row")
	// ErrRegionIndex indicates a requested region index is out of range.
	ErrRegionIndex = errors.New("gridgraph: region index out of range")
)
