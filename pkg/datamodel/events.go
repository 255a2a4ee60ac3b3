package datamodel

import (
	"errors"
	"fmt"
)

// EventPublisher abstracts the event log a cluster emits into.
// Payload encoding is the caller's concern; the data model treats event
// payloads as opaque bytes.
type EventPublisher interface {
	// PublishEvent records an event occurrence.
	// Returns the assigned EventNumber, or an error if the event could not
	// be recorded.
	//
	// Parameters:
	//   - endpoint: The endpoint emitting the event
	//   - cluster: The cluster emitting the event
	//   - eventID: The event identifier within the cluster
	//   - priority: Event priority (Debug, Info, Critical)
	//   - data: Opaque encoded payload (may be nil)
	//   - fabricIndex: Fabric scope (0 for non-fabric-scoped events)
	PublishEvent(
		endpoint EndpointID,
		cluster ClusterID,
		eventID EventID,
		priority EventPriority,
		data []byte,
		fabricIndex uint8,
	) (EventNumber, error)
}

// EventSource is a mixin to add event emission to a cluster implementation.
// Embed it alongside BasicCluster for clusters that emit events.
//
// Emission is validated against the events registered on the source, so a
// cluster cannot emit an event ID it never declared. Sources on coarse
// clusters skip that validation (there is no declared list to check).
type EventSource struct {
	endpoint  EndpointID
	cluster   ClusterID
	publisher EventPublisher

	// Used to validate that emitted event IDs are registered for this
	// cluster. nil disables validation.
	validEvents map[EventID]EventEntry
}

// NewEventSource creates a new EventSource.
// Call Bind() to connect it to a cluster and publisher.
func NewEventSource() *EventSource {
	return &EventSource{
		validEvents: make(map[EventID]EventEntry),
	}
}

// Bind connects the EventSource to its parent cluster and publisher.
// This should be called during cluster initialization.
func (e *EventSource) Bind(endpoint EndpointID, cluster ClusterID, publisher EventPublisher) {
	e.endpoint = endpoint
	e.cluster = cluster
	e.publisher = publisher
}

// RegisterEvent adds an event to internal validation.
func (e *EventSource) RegisterEvent(entry EventEntry) {
	if e.validEvents == nil {
		e.validEvents = make(map[EventID]EventEntry)
	}
	e.validEvents[entry.ID] = entry
}

// RegisterEvents adds multiple events to internal validation.
func (e *EventSource) RegisterEvents(entries []EventEntry) {
	for _, entry := range entries {
		e.RegisterEvent(entry)
	}
}

// HasEvent returns true if the event ID is registered.
func (e *EventSource) HasEvent(eventID EventID) bool {
	if e.validEvents == nil {
		return false
	}
	_, ok := e.validEvents[eventID]
	return ok
}

// Emit publishes an event with the given payload.
// FabricIndex defaults to 0 (all fabrics); use EmitFabricScoped for
// fabric-specific events.
//
// Returns the assigned EventNumber, or error if:
//   - Publisher is not bound
//   - Event ID is not registered (if validation is enabled)
func (e *EventSource) Emit(eventID EventID, priority EventPriority, payload []byte) (EventNumber, error) {
	return e.EmitFabricScoped(eventID, priority, payload, 0)
}

// EmitFabricScoped publishes a fabric-scoped event.
// Use this for events that should only be visible to a specific fabric.
func (e *EventSource) EmitFabricScoped(eventID EventID, priority EventPriority, payload []byte, fabricIndex uint8) (EventNumber, error) {
	if e.publisher == nil {
		return 0, ErrEventPublisherNotBound
	}

	// Validate event ID if validation is enabled
	if e.validEvents != nil && len(e.validEvents) > 0 {
		if _, ok := e.validEvents[eventID]; !ok {
			return 0, fmt.Errorf("%w: event ID 0x%04X not registered for cluster 0x%04X",
				ErrEventNotRegistered, eventID, e.cluster)
		}
	}

	return e.publisher.PublishEvent(e.endpoint, e.cluster, eventID, priority, payload, fabricIndex)
}

// IsBound returns true if the EventSource is bound to a publisher.
func (e *EventSource) IsBound() bool {
	return e.publisher != nil
}

// Event source errors.
var (
	ErrEventPublisherNotBound = errors.New("event publisher not bound")
	ErrEventNotRegistered     = errors.New("event not registered")
)
