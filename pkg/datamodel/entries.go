package datamodel

// EventEntry describes an event's metadata as declared by a cluster.
// The path-authorization resolver derives per-event required privileges
// from it when the catalog runs in complete metadata mode.
// C++ Reference: MetadataTypes.h::EventEntry
type EventEntry struct {
	// ID is the event identifier.
	ID EventID

	// Priority is the default priority for this event.
	Priority EventPriority

	// ReadPrivilege is the minimum privilege required to read this event.
	// PrivilegeUnknown means the default (View) applies.
	ReadPrivilege Privilege

	// IsFabricSensitive indicates if the event is fabric-sensitive.
	IsFabricSensitive bool
}

// NewEventEntry creates a new event entry.
func NewEventEntry(id EventID, priority EventPriority, readPriv Privilege, fabricSensitive bool) EventEntry {
	return EventEntry{
		ID:                id,
		Priority:          priority,
		ReadPrivilege:     readPriv,
		IsFabricSensitive: fabricSensitive,
	}
}

// NewInfoEvent creates an Info-priority event entry readable at View.
func NewInfoEvent(id EventID) EventEntry {
	return NewEventEntry(id, EventPriorityInfo, PrivilegeView, false)
}

// NewCriticalEvent creates a Critical-priority event entry readable at View.
func NewCriticalEvent(id EventID) EventEntry {
	return NewEventEntry(id, EventPriorityCritical, PrivilegeView, false)
}

// EffectiveReadPrivilege returns the privilege required to read this event,
// falling back to View when no privilege was declared.
func (e EventEntry) EffectiveReadPrivilege() Privilege {
	if !e.ReadPrivilege.IsValid() {
		return PrivilegeView
	}
	return e.ReadPrivilege
}

// DeviceTypeEntry describes a device type present on an endpoint.
// C++ Reference: MetadataTypes.h::DeviceTypeEntry
type DeviceTypeEntry struct {
	// DeviceTypeID is the device type identifier.
	DeviceTypeID DeviceTypeID

	// Revision is the device type revision.
	Revision uint8
}
