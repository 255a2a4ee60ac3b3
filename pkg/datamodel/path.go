package datamodel

import "fmt"

// EventPathRequest identifies an event or set of events to authorize for
// reading. A nil component is a wildcard matching every value at that level,
// the same convention the Interaction Model uses on the wire.
// Spec: Section 8.9.2.2
//
// A component is either concrete (non-nil) or wildcard (nil); there is no
// "absent" state. Requests are value types, built once per query.
type EventPathRequest struct {
	Endpoint *EndpointID // nil = all endpoints
	Cluster  *ClusterID  // nil = all clusters
	Event    *EventID    // nil = all events
}

// NewEventPathRequest creates a request from selector pointers.
// Pass nil for a wildcard component.
func NewEventPathRequest(endpoint *EndpointID, cluster *ClusterID, event *EventID) EventPathRequest {
	return EventPathRequest{
		Endpoint: endpoint,
		Cluster:  cluster,
		Event:    event,
	}
}

// ConcreteEventPathRequest creates a fully concrete request.
func ConcreteEventPathRequest(endpoint EndpointID, cluster ClusterID, event EventID) EventPathRequest {
	return EventPathRequest{
		Endpoint: &endpoint,
		Cluster:  &cluster,
		Event:    &event,
	}
}

// WildcardEventPathRequest creates a request matching every event path.
func WildcardEventPathRequest() EventPathRequest {
	return EventPathRequest{}
}

// HasWildcardEndpoint returns true if the endpoint component is a wildcard.
func (p EventPathRequest) HasWildcardEndpoint() bool {
	return p.Endpoint == nil
}

// HasWildcardCluster returns true if the cluster component is a wildcard.
func (p EventPathRequest) HasWildcardCluster() bool {
	return p.Cluster == nil
}

// HasWildcardEvent returns true if the event component is a wildcard.
func (p EventPathRequest) HasWildcardEvent() bool {
	return p.Event == nil
}

// IsConcrete returns true if no component is a wildcard.
func (p EventPathRequest) IsConcrete() bool {
	return p.Endpoint != nil && p.Cluster != nil && p.Event != nil
}

// String returns a path representation with "*" for wildcard components.
func (p EventPathRequest) String() string {
	endpoint := "*"
	if p.Endpoint != nil {
		endpoint = fmt.Sprintf("%d", *p.Endpoint)
	}
	cluster := "*"
	if p.Cluster != nil {
		cluster = fmt.Sprintf("0x%04X", uint32(*p.Cluster))
	}
	event := "*"
	if p.Event != nil {
		event = fmt.Sprintf("0x%04X", uint32(*p.Event))
	}
	return fmt.Sprintf("EventPath(%s/%s/%s)", endpoint, cluster, event)
}

// EndpointPtr returns a pointer to the given endpoint ID, for building
// request selectors.
func EndpointPtr(id EndpointID) *EndpointID { return &id }

// ClusterPtr returns a pointer to the given cluster ID.
func ClusterPtr(id ClusterID) *ClusterID { return &id }

// EventPtr returns a pointer to the given event ID.
func EventPtr(id EventID) *EventID { return &id }

// ConcreteClusterPath identifies a specific cluster instance on an endpoint.
type ConcreteClusterPath struct {
	Endpoint EndpointID
	Cluster  ClusterID
}

// String returns a string representation of the cluster path.
func (p ConcreteClusterPath) String() string {
	return fmt.Sprintf("Cluster(%d/0x%04X)", p.Endpoint, uint32(p.Cluster))
}

// ConcreteEventPath identifies a specific event within a cluster.
// Spec: Section 8.2.1.3
type ConcreteEventPath struct {
	Endpoint EndpointID
	Cluster  ClusterID
	Event    EventID
}

// ClusterPath returns the cluster path portion.
func (p ConcreteEventPath) ClusterPath() ConcreteClusterPath {
	return ConcreteClusterPath{
		Endpoint: p.Endpoint,
		Cluster:  p.Cluster,
	}
}

// String returns a string representation of the event path.
func (p ConcreteEventPath) String() string {
	return fmt.Sprintf("Event(%d/0x%04X/0x%04X)", p.Endpoint, uint32(p.Cluster), uint32(p.Event))
}
