package search

import "errors"

// ErrNoOperators is returned by Search when no node operator has been
// registered via AddNodeOperator.
var ErrNoOperators = errors.New("search: no node operators registered")

// ErrZeroGranularity is returned by NeighbourhoodParams.Validate when
// NbGranular is zero: a client with no granular neighbors can never be
// touched by node operators, which is always a misconfiguration.
var ErrZeroGranularity = errors.New("search: nbGranular must be greater than zero")
