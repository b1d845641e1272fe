package domain

import "errors"

var (
	// ErrInvalidConfig marks input that can never produce a plan (bad split floor,
	// unknown depot, empty demand points, malformed coordinates). Not retried.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInfeasible is returned when every candidate tour was rejected by the
	// forbidden-predecessor rule.
	ErrInfeasible = errors.New("no feasible tour")

	// ErrUnknownLocation is returned when a tour references an id missing from the network.
	ErrUnknownLocation = errors.New("unknown location")

	// ErrOutOfTable is returned by strict current-draw lookups outside the table domain.
	ErrOutOfTable = errors.New("payload outside current-draw table")
)
