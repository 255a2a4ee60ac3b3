package datamodel

import "errors"

// Errors returned by datamodel operations.
var (
	// ErrEndpointNotFound indicates the requested endpoint does not exist.
	ErrEndpointNotFound = errors.New("endpoint not found")

	// ErrEndpointExists indicates an endpoint with the same ID already exists.
	ErrEndpointExists = errors.New("endpoint already exists")

	// ErrClusterNotFound indicates the requested cluster does not exist.
	ErrClusterNotFound = errors.New("cluster not found")

	// ErrClusterExists indicates a cluster with the same ID already exists.
	ErrClusterExists = errors.New("cluster already exists")

	// ErrEventNotFound indicates the requested event does not exist.
	ErrEventNotFound = errors.New("event not found")

	// ErrEventExists indicates an event with the same ID already exists.
	ErrEventExists = errors.New("event already exists")

	// ErrEventsNotEnumerable indicates the cluster does not enumerate events.
	ErrEventsNotEnumerable = errors.New("events not enumerable")

	// ErrCompletenessMismatch indicates a cluster's metadata completeness
	// does not match the catalog-wide mode.
	ErrCompletenessMismatch = errors.New("metadata completeness mismatch")
)
