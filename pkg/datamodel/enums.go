// Package datamodel provides the capability catalog for the Matter Data Model
// event hierarchy (Spec Chapter 7).
//
// This package defines the Node → Endpoint → Cluster containment tree, the
// event metadata each cluster declares, and the lookup surface the
// path-authorization resolver (pkg/pathcheck) traverses. Catalogs come in two
// metadata modes: complete (every cluster enumerates its events) and coarse
// (event enumeration unsupported, existence cannot be proven either way).
//
// Spec References:
//   - Section 7.4: Element hierarchy
//   - Section 7.8: Node
//   - Section 7.9: Endpoint
//   - Section 7.10: Cluster
//   - Section 7.14: Event
package datamodel

// Privilege defines access privilege levels for ACL checks.
// Spec: Section 7.6
type Privilege int

const (
	// PrivilegeUnknown indicates an uninitialized or invalid privilege.
	PrivilegeUnknown Privilege = iota

	// PrivilegeView allows read access to attributes and events.
	// Spec: Section 7.6.6
	PrivilegeView

	// PrivilegeProxyView allows proxy read access (for proxy devices).
	PrivilegeProxyView

	// PrivilegeOperate allows read/write/invoke access for normal operations.
	// Spec: Section 7.6.7
	PrivilegeOperate

	// PrivilegeManage allows configuration and management operations.
	// Spec: Section 7.6.8
	PrivilegeManage

	// PrivilegeAdminister allows full administrative control.
	// Spec: Section 7.6.9
	PrivilegeAdminister
)

// String returns a human-readable name for the privilege level.
func (p Privilege) String() string {
	switch p {
	case PrivilegeView:
		return "View"
	case PrivilegeProxyView:
		return "ProxyView"
	case PrivilegeOperate:
		return "Operate"
	case PrivilegeManage:
		return "Manage"
	case PrivilegeAdminister:
		return "Administer"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the privilege is a defined value.
func (p Privilege) IsValid() bool {
	return p >= PrivilegeView && p <= PrivilegeAdminister
}

// EventPriority defines the priority level for events.
// Spec: Section 7.14.1.3
type EventPriority int

const (
	// EventPriorityDebug is for debugging information.
	EventPriorityDebug EventPriority = iota

	// EventPriorityInfo is for informational events.
	EventPriorityInfo

	// EventPriorityCritical is for critical events that must not be lost.
	EventPriorityCritical
)

// String returns a human-readable name for the event priority.
func (p EventPriority) String() string {
	switch p {
	case EventPriorityDebug:
		return "Debug"
	case EventPriorityInfo:
		return "Info"
	case EventPriorityCritical:
		return "Critical"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the priority is a defined value.
func (p EventPriority) IsValid() bool {
	return p >= EventPriorityDebug && p <= EventPriorityCritical
}

// MetadataCompleteness describes how much event metadata a catalog carries.
//
// In complete mode every cluster declares its full event list, so the
// catalog can prove an event does not exist. In coarse mode event
// enumeration is unsupported: the catalog treats any event ID as
// potentially present and access control alone decides visibility.
//
// The mode is fixed per deployment at catalog construction time. A catalog
// never mixes modes across clusters.
type MetadataCompleteness int

const (
	// MetadataComplete indicates clusters enumerate their declared events.
	MetadataComplete MetadataCompleteness = iota

	// MetadataCoarse indicates event enumeration is unsupported.
	MetadataCoarse
)

// String returns a human-readable name for the completeness mode.
func (c MetadataCompleteness) String() string {
	switch c {
	case MetadataComplete:
		return "Complete"
	case MetadataCoarse:
		return "Coarse"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the completeness mode is a defined value.
func (c MetadataCompleteness) IsValid() bool {
	return c == MetadataComplete || c == MetadataCoarse
}
