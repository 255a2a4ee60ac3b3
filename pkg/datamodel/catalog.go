package datamodel

// ClusterDescriptor describes a server cluster as seen by path
// authorization: its identity and its declared event surface.
//
// In complete metadata mode EventList returns every declared event in
// registration order. In coarse mode event enumeration is unsupported and
// EventList returns nil; callers must not take an empty list as proof of
// absence in that mode.
//
// C++ Reference: DataModel::Provider cluster metadata
type ClusterDescriptor interface {
	// ClusterID returns the cluster identifier (e.g., 0x0006 for OnOff).
	ClusterID() ClusterID

	// EventCompleteness reports whether the descriptor enumerates events.
	EventCompleteness() MetadataCompleteness

	// EventList returns metadata for all declared events in registration
	// order, or nil in coarse mode.
	EventList() []EventEntry
}

// CatalogLookup is the capability catalog surface the path-authorization
// resolver traverses. Implementations must return stable, registration-order
// sequences so wildcard expansion is deterministic.
//
// All lookups are read-only; a catalog must be read-consistent for the
// duration of a single resolution.
type CatalogLookup interface {
	// EndpointsKnownToDevice returns all endpoint IDs in registration order.
	EndpointsKnownToDevice() []EndpointID

	// ClustersOnEndpoint returns the cluster descriptors on the given
	// endpoint in registration order, or nil if the endpoint is unknown.
	ClustersOnEndpoint(id EndpointID) []ClusterDescriptor

	// FindCluster returns the descriptor for the given cluster on the given
	// endpoint, or nil if the endpoint or cluster is unknown.
	FindCluster(endpoint EndpointID, cluster ClusterID) ClusterDescriptor
}
