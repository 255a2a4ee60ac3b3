package datamodel

import "sync"

// BasicNode is a simple in-memory capability catalog.
// It provides thread-safe endpoint registration and implements the
// CatalogLookup surface the path-authorization resolver traverses.
//
// The node carries the catalog-wide metadata completeness mode; every
// cluster registered beneath it must match that mode.
type BasicNode struct {
	mu           sync.RWMutex
	completeness MetadataCompleteness
	endpoints    map[EndpointID]*BasicEndpoint
	order        []EndpointID // Preserve registration order
}

// NewNode creates a new empty node in complete metadata mode.
func NewNode() *BasicNode {
	return NewNodeWithCompleteness(MetadataComplete)
}

// NewNodeWithCompleteness creates a new empty node with the given
// catalog-wide metadata completeness mode.
func NewNodeWithCompleteness(c MetadataCompleteness) *BasicNode {
	return &BasicNode{
		completeness: c,
		endpoints:    make(map[EndpointID]*BasicEndpoint),
	}
}

// Completeness returns the catalog-wide metadata completeness mode.
func (n *BasicNode) Completeness() MetadataCompleteness {
	return n.completeness
}

// AddEndpoint registers an endpoint with the node.
// Returns ErrEndpointExists if an endpoint with the same ID already exists,
// or ErrCompletenessMismatch if any cluster on the endpoint does not match
// the node's completeness mode. The endpoint is stamped with the node's
// mode so later AddCluster calls are validated too.
func (n *BasicNode) AddEndpoint(ep *BasicEndpoint) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := ep.ID()
	if _, exists := n.endpoints[id]; exists {
		return ErrEndpointExists
	}

	if err := ep.bindCompleteness(n.completeness); err != nil {
		return err
	}

	n.endpoints[id] = ep
	n.order = append(n.order, id)
	return nil
}

// RemoveEndpoint removes an endpoint from the node.
// Returns ErrEndpointNotFound if the endpoint doesn't exist.
func (n *BasicNode) RemoveEndpoint(id EndpointID) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if _, exists := n.endpoints[id]; !exists {
		return ErrEndpointNotFound
	}

	delete(n.endpoints, id)

	// Remove from order slice
	for i, epID := range n.order {
		if epID == id {
			n.order = append(n.order[:i], n.order[i+1:]...)
			break
		}
	}

	return nil
}

// GetEndpoint returns the endpoint with the given ID, or nil if not found.
func (n *BasicNode) GetEndpoint(id EndpointID) *BasicEndpoint {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.endpoints[id]
}

// GetEndpoints returns all endpoints in registration order.
func (n *BasicNode) GetEndpoints() []*BasicEndpoint {
	n.mu.RLock()
	defer n.mu.RUnlock()

	result := make([]*BasicEndpoint, 0, len(n.order))
	for _, id := range n.order {
		if ep, ok := n.endpoints[id]; ok {
			result = append(result, ep)
		}
	}
	return result
}

// EndpointCount returns the number of registered endpoints.
func (n *BasicNode) EndpointCount() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return len(n.endpoints)
}

// HasEndpoint returns true if an endpoint with the given ID exists.
func (n *BasicNode) HasEndpoint(id EndpointID) bool {
	n.mu.RLock()
	defer n.mu.RUnlock()
	_, exists := n.endpoints[id]
	return exists
}

// GetCluster is a convenience method to get a cluster by endpoint and
// cluster ID. Returns nil if the endpoint or cluster doesn't exist.
func (n *BasicNode) GetCluster(endpointID EndpointID, clusterID ClusterID) ClusterDescriptor {
	ep := n.GetEndpoint(endpointID)
	if ep == nil {
		return nil
	}
	return ep.GetCluster(clusterID)
}

// EndpointsKnownToDevice implements CatalogLookup.
func (n *BasicNode) EndpointsKnownToDevice() []EndpointID {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return append([]EndpointID{}, n.order...)
}

// ClustersOnEndpoint implements CatalogLookup.
// Returns nil if the endpoint is unknown.
func (n *BasicNode) ClustersOnEndpoint(id EndpointID) []ClusterDescriptor {
	ep := n.GetEndpoint(id)
	if ep == nil {
		return nil
	}
	return ep.GetClusters()
}

// FindCluster implements CatalogLookup.
// Returns nil if the endpoint or cluster is unknown.
func (n *BasicNode) FindCluster(endpoint EndpointID, cluster ClusterID) ClusterDescriptor {
	return n.GetCluster(endpoint, cluster)
}

// IsDeviceTypeOnEndpoint reports whether the given device type is declared
// on the given endpoint. The signature matches the acl package's
// DeviceTypeResolver, so a node can back device-type ACL targets directly.
func (n *BasicNode) IsDeviceTypeOnEndpoint(deviceType uint32, endpoint uint16) bool {
	ep := n.GetEndpoint(EndpointID(endpoint))
	if ep == nil {
		return false
	}
	return ep.HasDeviceType(DeviceTypeID(deviceType))
}

// Verify BasicNode implements the interface.
var _ CatalogLookup = (*BasicNode)(nil)
