package datamodel

import "sync"

// BasicCluster is a simple in-memory ClusterDescriptor implementation.
// It holds the cluster's declared event metadata in registration order.
type BasicCluster struct {
	mu           sync.RWMutex
	id           ClusterID
	completeness MetadataCompleteness
	events       []EventEntry
}

// NewCluster creates a cluster descriptor that enumerates its events
// (complete metadata mode). Declare events with AddEvent or AddEvents.
func NewCluster(id ClusterID) *BasicCluster {
	return &BasicCluster{
		id:           id,
		completeness: MetadataComplete,
	}
}

// NewCoarseCluster creates a cluster descriptor without event enumeration
// (coarse metadata mode). Events cannot be declared on it.
func NewCoarseCluster(id ClusterID) *BasicCluster {
	return &BasicCluster{
		id:           id,
		completeness: MetadataCoarse,
	}
}

// ClusterID returns the cluster identifier.
func (c *BasicCluster) ClusterID() ClusterID {
	return c.id
}

// EventCompleteness reports whether this descriptor enumerates events.
func (c *BasicCluster) EventCompleteness() MetadataCompleteness {
	return c.completeness
}

// AddEvent declares an event on the cluster.
// Returns ErrEventsNotEnumerable in coarse mode and ErrEventExists if an
// event with the same ID is already declared.
func (c *BasicCluster) AddEvent(entry EventEntry) error {
	if c.completeness == MetadataCoarse {
		return ErrEventsNotEnumerable
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for _, e := range c.events {
		if e.ID == entry.ID {
			return ErrEventExists
		}
	}

	c.events = append(c.events, entry)
	return nil
}

// AddEvents declares multiple events, stopping at the first failure.
func (c *BasicCluster) AddEvents(entries ...EventEntry) error {
	for _, entry := range entries {
		if err := c.AddEvent(entry); err != nil {
			return err
		}
	}
	return nil
}

// EventList returns the declared events in registration order.
// Returns nil in coarse mode.
func (c *BasicCluster) EventList() []EventEntry {
	if c.completeness == MetadataCoarse {
		return nil
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]EventEntry{}, c.events...)
}

// FindEvent returns the declared entry for the given event ID.
// The second return value is false if the event is not declared.
func (c *BasicCluster) FindEvent(id EventID) (EventEntry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, e := range c.events {
		if e.ID == id {
			return e, true
		}
	}
	return EventEntry{}, false
}

// HasEvent returns true if an event with the given ID is declared.
func (c *BasicCluster) HasEvent(id EventID) bool {
	_, ok := c.FindEvent(id)
	return ok
}

// EventCount returns the number of declared events.
func (c *BasicCluster) EventCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.events)
}

// FindEventEntry searches an event list for a specific event ID.
// Returns nil if not found.
func FindEventEntry(list []EventEntry, id EventID) *EventEntry {
	for i := range list {
		if list[i].ID == id {
			return &list[i]
		}
	}
	return nil
}

// Verify BasicCluster implements the interface.
var _ ClusterDescriptor = (*BasicCluster)(nil)
