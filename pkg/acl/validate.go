package acl

import "errors"

// Validation errors.
var (
	ErrInvalidFabricIndex    = errors.New("acl: invalid fabric index")
	ErrInvalidAuthMode       = errors.New("acl: invalid auth mode")
	ErrInvalidPrivilege      = errors.New("acl: invalid privilege")
	ErrGroupAdminister       = errors.New("acl: group auth mode cannot have administer privilege")
	ErrInvalidSubject        = errors.New("acl: invalid subject for auth mode")
	ErrTargetEmpty           = errors.New("acl: target must have at least one field set")
	ErrTargetEndpointAndType = errors.New("acl: target cannot have both endpoint and device type")
	ErrInvalidClusterID      = errors.New("acl: invalid cluster ID")
	ErrInvalidEndpointID     = errors.New("acl: invalid endpoint ID")
	ErrInvalidDeviceTypeID   = errors.New("acl: invalid device type ID")
)

// Cluster ID ranges (Spec 7.10.2). Standard clusters live below 0x8000;
// manufacturer clusters carry a vendor prefix in the upper half and a
// 0xFC00-0xFFFE suffix.
const (
	ClusterIDStdMin uint32 = 0x0000_0000
	ClusterIDStdMax uint32 = 0x0000_7FFF

	ClusterIDMfgMin uint32 = 0x0000_FC00
	ClusterIDMfgMax uint32 = 0x0000_FFFE

	ClusterIDWildcard uint32 = 0xFFFF_FFFF
)

// Endpoint ID range (Spec 7.9.1). 0xFFFF is the wire wildcard and never
// valid in a stored target.
const (
	EndpointIDMin     uint16 = 0x0000
	EndpointIDMax     uint16 = 0xFFFE
	EndpointIDInvalid uint16 = 0xFFFF
)

// Device type ID range (Spec 7.10.7).
const (
	DeviceTypeIDMin      uint32 = 0x0000_0000
	DeviceTypeIDMax      uint32 = 0x0000_BFFF
	DeviceTypeIDWildcard uint32 = 0x0000_FFFF
)

// ValidateEntry checks an entry against the storage rules of Spec
// 9.10.5.6. Returns nil for a valid entry, or the first violation:
//
//   - FabricIndex must be valid (1-254)
//   - AuthMode must be CASE or Group (PASE grants are implicit, never stored)
//   - Privilege must be defined; Group entries cannot grant Administer
//   - every subject must fit the auth mode's node ID range
//   - every target must be well formed
func ValidateEntry(entry *Entry) error {
	if !entry.FabricIndex.IsValid() {
		return ErrInvalidFabricIndex
	}

	if entry.AuthMode != AuthModeCASE && entry.AuthMode != AuthModeGroup {
		return ErrInvalidAuthMode
	}

	if !entry.Privilege.IsValid() {
		return ErrInvalidPrivilege
	}
	if entry.AuthMode == AuthModeGroup && entry.Privilege == PrivilegeAdminister {
		return ErrGroupAdminister
	}

	for _, subject := range entry.Subjects {
		if err := ValidateSubject(entry.AuthMode, subject); err != nil {
			return err
		}
	}

	for i := range entry.Targets {
		if err := ValidateTarget(&entry.Targets[i]); err != nil {
			return err
		}
	}

	return nil
}

// ValidateSubject checks that a subject fits the auth mode:
// CASE subjects are operational node IDs or valid CATs, Group subjects
// are group node IDs with a valid group ID, PASE subjects are PAKE
// node IDs.
func ValidateSubject(authMode AuthMode, subject uint64) error {
	switch authMode {
	case AuthModeCASE:
		if IsOperationalNodeID(subject) {
			return nil
		}
		if IsCATNodeID(subject) && CATFromNodeID(subject).IsValid() {
			return nil
		}
		return ErrInvalidSubject

	case AuthModeGroup:
		if IsGroupNodeID(subject) && IsValidGroupID(GroupIDFromNodeID(subject)) {
			return nil
		}
		return ErrInvalidSubject

	case AuthModePASE:
		if IsPAKENodeID(subject) {
			return nil
		}
		return ErrInvalidSubject

	default:
		return ErrInvalidAuthMode
	}
}

// ValidateTarget checks that a target is well formed: non-empty, not
// combining endpoint with device type, and with every set field inside
// its ID range.
func ValidateTarget(target *Target) error {
	if target.IsEmpty() {
		return ErrTargetEmpty
	}
	if target.Endpoint != nil && target.DeviceType != nil {
		return ErrTargetEndpointAndType
	}

	if target.Cluster != nil && !IsValidClusterID(*target.Cluster) {
		return ErrInvalidClusterID
	}
	if target.Endpoint != nil && !IsValidEndpointID(*target.Endpoint) {
		return ErrInvalidEndpointID
	}
	if target.DeviceType != nil && !IsValidDeviceTypeID(*target.DeviceType) {
		return ErrInvalidDeviceTypeID
	}

	return nil
}

// IsValidClusterID reports whether a cluster ID may appear in a stored
// target: standard range, or manufacturer range under a valid vendor
// prefix. The wire wildcard is excluded.
func IsValidClusterID(id uint32) bool {
	if id <= ClusterIDStdMax {
		return true
	}

	// Manufacturer clusters: 0xVVVV_FC00 - 0xVVVV_FFFE with a vendor
	// prefix at most 0xFFF4.
	suffix := id & 0x0000_FFFF
	if suffix >= 0xFC00 && suffix <= 0xFFFE {
		return id>>16 <= 0xFFF4
	}

	return false
}

// IsValidEndpointID reports whether an endpoint ID may appear in a
// stored target. Only the wire wildcard 0xFFFF is excluded.
func IsValidEndpointID(id uint16) bool {
	return id != EndpointIDInvalid
}

// IsValidDeviceTypeID reports whether a device type ID may appear in a
// stored target. The range cap also excludes the wildcard suffix.
func IsValidDeviceTypeID(id uint32) bool {
	return id&0x0000_FFFF <= DeviceTypeIDMax
}
