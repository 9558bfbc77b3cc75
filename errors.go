package graph

import "errors"

// ErrKeyNotFound indicates an operation referenced a key with no node entry.
// It is the only error this package returns; match it with errors.Is.
var ErrKeyNotFound = errors.New("graph: key not found")
