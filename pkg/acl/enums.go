package acl

// Privilege is an access level granted by an ACL entry.
// Spec: Section 9.10.5.2 (AccessControlEntryPrivilegeEnum)
type Privilege uint8

const (
	// PrivilegeView grants read access to attributes and events (value 1).
	PrivilegeView Privilege = 1

	// PrivilegeProxyView grants proxy read access (value 2).
	// Deprecated in recent spec revisions, kept for compatibility.
	PrivilegeProxyView Privilege = 2

	// PrivilegeOperate grants the primary device function on top of View
	// (value 3).
	PrivilegeOperate Privilege = 3

	// PrivilegeManage grants persistent configuration changes on top of
	// Operate (value 4).
	PrivilegeManage Privilege = 4

	// PrivilegeAdminister grants Access Control cluster operations on top
	// of Manage (value 5). The highest privilege.
	PrivilegeAdminister Privilege = 5
)

// String returns the privilege name.
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

// Grants reports whether holding privilege p satisfies a requirement of
// the required privilege. Implements the hierarchy from Spec 6.6.6.2:
// Administer implies everything, Manage implies Operate and View,
// Operate implies View, and ProxyView implies only View. ProxyView
// itself is implied only by Administer.
func (p Privilege) Grants(required Privilege) bool {
	if p == required {
		return p.IsValid()
	}
	switch required {
	case PrivilegeView:
		// Every defined privilege carries View.
		return p.IsValid()
	case PrivilegeProxyView:
		return p == PrivilegeAdminister
	case PrivilegeOperate:
		return p == PrivilegeManage || p == PrivilegeAdminister
	case PrivilegeManage:
		return p == PrivilegeAdminister
	default:
		return false
	}
}

// AuthMode identifies how a session was authenticated.
// Spec: Section 9.10.5.4 (AccessControlEntryAuthModeEnum)
type AuthMode uint8

const (
	// AuthModeUnknown is the zero value, never valid on a session.
	AuthModeUnknown AuthMode = 0

	// AuthModePASE is Passcode Authenticated Session Establishment
	// (value 1). Used during commissioning; never stored in ACL entries.
	AuthModePASE AuthMode = 1

	// AuthModeCASE is Certificate Authenticated Session Establishment
	// (value 2). The normal operational mode.
	AuthModeCASE AuthMode = 2

	// AuthModeGroup is group (multicast) messaging (value 3).
	AuthModeGroup AuthMode = 3
)

// String returns the auth mode name.
func (m AuthMode) String() string {
	switch m {
	case AuthModePASE:
		return "PASE"
	case AuthModeCASE:
		return "CASE"
	case AuthModeGroup:
		return "Group"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the auth mode is a defined value (excluding Unknown).
func (m AuthMode) IsValid() bool {
	return m >= AuthModePASE && m <= AuthModeGroup
}

// RequestType identifies the kind of Interaction Model operation being
// authorized. The same entries govern all kinds; the request type tells
// the caller which privilege floor applies (reads need View, writes and
// invokes need Operate or better per cluster metadata).
type RequestType uint8

const (
	// RequestTypeUnknown is the zero value.
	RequestTypeUnknown RequestType = iota

	// RequestTypeAttributeRead authorizes reading attribute values.
	RequestTypeAttributeRead

	// RequestTypeAttributeWrite authorizes writing attribute values.
	RequestTypeAttributeWrite

	// RequestTypeCommandInvoke authorizes invoking commands.
	RequestTypeCommandInvoke

	// RequestTypeEventRead authorizes reading events from the event log.
	RequestTypeEventRead
)

// String returns the request type name.
func (r RequestType) String() string {
	switch r {
	case RequestTypeAttributeRead:
		return "AttributeRead"
	case RequestTypeAttributeWrite:
		return "AttributeWrite"
	case RequestTypeCommandInvoke:
		return "CommandInvoke"
	case RequestTypeEventRead:
		return "EventRead"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the request type is a defined value (excluding Unknown).
func (r RequestType) IsValid() bool {
	return r >= RequestTypeAttributeRead && r <= RequestTypeEventRead
}

// Result is the outcome of an access control check.
type Result uint8

const (
	// ResultDenied means no installed entry granted access.
	ResultDenied Result = iota

	// ResultAllowed means an installed entry granted access.
	ResultAllowed

	// ResultRestricted means an Access Restriction List entry blocked
	// access that an ACL entry would otherwise have granted.
	ResultRestricted
)

// String returns the result name.
func (r Result) String() string {
	switch r {
	case ResultDenied:
		return "Denied"
	case ResultAllowed:
		return "Allowed"
	case ResultRestricted:
		return "Restricted"
	default:
		return "Unknown"
	}
}
