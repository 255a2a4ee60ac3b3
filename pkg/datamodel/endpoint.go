package datamodel

import "sync"

// BasicEndpoint is a simple in-memory endpoint implementation.
// It provides thread-safe cluster registration and lookup.
type BasicEndpoint struct {
	mu          sync.RWMutex
	id          EndpointID
	clusters    map[ClusterID]ClusterDescriptor
	order       []ClusterID // Preserve registration order
	deviceTypes []DeviceTypeEntry

	// Catalog-wide completeness, stamped when the endpoint joins a node.
	// Unbound endpoints accept any descriptor; the node validates on attach.
	boundCompleteness *MetadataCompleteness
}

// NewEndpoint creates a new endpoint with the given ID.
func NewEndpoint(id EndpointID) *BasicEndpoint {
	return &BasicEndpoint{
		id:       id,
		clusters: make(map[ClusterID]ClusterDescriptor),
	}
}

// ID returns the endpoint ID.
func (e *BasicEndpoint) ID() EndpointID {
	return e.id
}

// AddCluster registers a cluster descriptor with the endpoint.
// Returns ErrClusterExists if a cluster with the same ID already exists,
// or ErrCompletenessMismatch if the endpoint belongs to a node whose
// catalog-wide completeness mode differs from the descriptor's.
func (e *BasicEndpoint) AddCluster(c ClusterDescriptor) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.boundCompleteness != nil && c.EventCompleteness() != *e.boundCompleteness {
		return ErrCompletenessMismatch
	}

	id := c.ClusterID()
	if _, exists := e.clusters[id]; exists {
		return ErrClusterExists
	}

	e.clusters[id] = c
	e.order = append(e.order, id)
	return nil
}

// RemoveCluster removes a cluster from the endpoint.
// Returns ErrClusterNotFound if the cluster doesn't exist.
func (e *BasicEndpoint) RemoveCluster(id ClusterID) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, exists := e.clusters[id]; !exists {
		return ErrClusterNotFound
	}

	delete(e.clusters, id)

	// Remove from order slice
	for i, cID := range e.order {
		if cID == id {
			e.order = append(e.order[:i], e.order[i+1:]...)
			break
		}
	}

	return nil
}

// GetCluster returns the cluster with the given ID, or nil if not found.
func (e *BasicEndpoint) GetCluster(id ClusterID) ClusterDescriptor {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.clusters[id]
}

// GetClusters returns all clusters in registration order.
func (e *BasicEndpoint) GetClusters() []ClusterDescriptor {
	e.mu.RLock()
	defer e.mu.RUnlock()

	result := make([]ClusterDescriptor, 0, len(e.order))
	for _, id := range e.order {
		if c, ok := e.clusters[id]; ok {
			result = append(result, c)
		}
	}
	return result
}

// ClusterCount returns the number of registered clusters.
func (e *BasicEndpoint) ClusterCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.clusters)
}

// HasCluster returns true if a cluster with the given ID exists.
func (e *BasicEndpoint) HasCluster(id ClusterID) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	_, exists := e.clusters[id]
	return exists
}

// GetClusterIDs returns the IDs of all clusters on this endpoint.
func (e *BasicEndpoint) GetClusterIDs() []ClusterID {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return append([]ClusterID{}, e.order...)
}

// AddDeviceType adds a device type to the endpoint.
func (e *BasicEndpoint) AddDeviceType(dt DeviceTypeEntry) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.deviceTypes = append(e.deviceTypes, dt)
}

// GetDeviceTypes returns all device types for this endpoint.
func (e *BasicEndpoint) GetDeviceTypes() []DeviceTypeEntry {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return append([]DeviceTypeEntry{}, e.deviceTypes...)
}

// HasDeviceType returns true if the endpoint declares the given device type.
func (e *BasicEndpoint) HasDeviceType(id DeviceTypeID) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()

	for _, dt := range e.deviceTypes {
		if dt.DeviceTypeID == id {
			return true
		}
	}
	return false
}

// bindCompleteness stamps the catalog-wide completeness mode onto the
// endpoint. Called by BasicNode when the endpoint is attached; subsequent
// AddCluster calls are validated against it.
func (e *BasicEndpoint) bindCompleteness(c MetadataCompleteness) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, cluster := range e.clusters {
		if cluster.EventCompleteness() != c {
			return ErrCompletenessMismatch
		}
	}

	e.boundCompleteness = &c
	return nil
}
