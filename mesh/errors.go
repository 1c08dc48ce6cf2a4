package mesh

import (
	"errors"
	"fmt"
)

// ErrEmptyMesh is returned by operations that need at least one triangle.
var ErrEmptyMesh = errors.New("mesh has no triangles")

// FormatError reports malformed, truncated or unsupported input
// while decoding a mesh. A mesh that failed to load must be discarded.
type FormatError struct {
	Msg string
	Err error // underlying cause, may be nil
}

func (e *FormatError) Error() string {
	if e.Err == nil {
		return "mesh format: " + e.Msg
	}
	return "mesh format: " + e.Msg + ": " + e.Err.Error()
}

func (e *FormatError) Unwrap() error { return e.Err }

// IOError reports a stream that could not be opened or a write that
// failed part way. Output written before the failure is left in place.
type IOError struct {
	Op   string
	Path string // empty when writing to a caller supplied stream
	Err  error
}

func (e *IOError) Error() string {
	if e.Path == "" {
		return e.Op + ": " + e.Err.Error()
	}
	return e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *IOError) Unwrap() error { return e.Err }

// IndexError is returned when a vertex index is out of range.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("vertex index %d out of range [0,%d)", e.Index, e.Len)
}

// TopologyError is returned by FixCracks when the problem edges
// cannot be paired up. The mesh is left unmodified.
type TopologyError struct {
	ProblemEdges int
}

func (e *TopologyError) Error() string {
	return fmt.Sprintf("found %d problem edges, need an even number to pair them (mesh may have holes)", e.ProblemEdges)
}
