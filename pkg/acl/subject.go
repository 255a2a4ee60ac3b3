package acl

import "github.com/backkem/matterpath/pkg/fabric"

// Node ID ranges. A 64-bit Matter node ID encodes its kind in the upper
// bits: operational IDs occupy the low range, while group, PAKE and CAT
// identities live in reserved high ranges.
// Spec: Section 2.5.5
const (
	// NodeIDUnspecified is the null node ID.
	NodeIDUnspecified uint64 = 0x0000_0000_0000_0000

	// NodeIDMinOperational is the smallest operational node ID.
	NodeIDMinOperational uint64 = 0x0000_0000_0000_0001

	// NodeIDMaxOperational is the largest operational node ID.
	NodeIDMaxOperational uint64 = 0xFFFF_FFEF_FFFF_FFFF

	// NodeIDMinGroup is the smallest group-type node ID.
	NodeIDMinGroup uint64 = 0xFFFF_FFFF_FFFF_0001

	// NodeIDMaxGroup is the largest group-type node ID.
	NodeIDMaxGroup uint64 = 0xFFFF_FFFF_FFFF_FFFF

	// NodeIDMinPAKE is the smallest PAKE-type node ID.
	NodeIDMinPAKE uint64 = 0xFFFF_FFFB_0000_0000

	// NodeIDMaxPAKE is the largest PAKE-type node ID.
	NodeIDMaxPAKE uint64 = 0xFFFF_FFFB_0000_FFFF
)

// Group ID range.
const (
	// GroupIDMin is the smallest valid group ID.
	GroupIDMin uint16 = 0x0001

	// GroupIDMax is the largest valid group ID.
	GroupIDMax uint16 = 0xFFFF
)

// IsOperationalNodeID returns true if the node ID is in the operational range.
func IsOperationalNodeID(nodeID uint64) bool {
	return nodeID >= NodeIDMinOperational && nodeID <= NodeIDMaxOperational
}

// IsGroupNodeID returns true if the node ID encodes a group.
func IsGroupNodeID(nodeID uint64) bool {
	return nodeID >= NodeIDMinGroup && nodeID <= NodeIDMaxGroup
}

// IsPAKENodeID returns true if the node ID encodes a PAKE key ID.
func IsPAKENodeID(nodeID uint64) bool {
	return nodeID >= NodeIDMinPAKE && nodeID <= NodeIDMaxPAKE
}

// NodeIDFromGroupID encodes a group ID as a group-type node ID.
func NodeIDFromGroupID(groupID uint16) uint64 {
	return 0xFFFF_FFFF_FFFF_0000 | uint64(groupID)
}

// GroupIDFromNodeID extracts the group ID from a group-type node ID.
// Returns 0 if the node ID is not group-type.
func GroupIDFromNodeID(nodeID uint64) uint16 {
	if !IsGroupNodeID(nodeID) {
		return 0
	}
	return uint16(nodeID & 0xFFFF)
}

// NodeIDFromPAKEKeyID encodes a PAKE key ID as a PAKE-type node ID.
func NodeIDFromPAKEKeyID(keyID uint16) uint64 {
	return NodeIDMinPAKE | uint64(keyID)
}

// IsValidGroupID returns true if the group ID is in the valid range.
func IsValidGroupID(groupID uint16) bool {
	return groupID >= GroupIDMin && groupID <= GroupIDMax
}

// SubjectDescriptor is the authenticated identity a request arrives
// under, derived from the session when a message is received.
// Spec: Section 6.6.6.1.3 (Incoming Subject Descriptor)
type SubjectDescriptor struct {
	// FabricIndex identifies the fabric the session belongs to.
	// Zero for a PASE session before any fabric is installed.
	FabricIndex fabric.FabricIndex

	// AuthMode is how the session was authenticated.
	AuthMode AuthMode

	// Subject is the primary identity:
	//   - CASE: the operational node ID
	//   - Group: the group encoded as a node ID
	//   - PASE: the PAKE key ID encoded as a node ID
	Subject uint64

	// CATs holds the CASE Authenticated Tags from the peer's operational
	// certificate. Only meaningful for CASE sessions.
	CATs CATValues

	// IsCommissioning marks a PASE session that is currently
	// commissioning the node. Such sessions hold implicit Administer.
	IsCommissioning bool
}

// CASESubject builds a descriptor for an operational CASE session.
// Up to three CATs are carried; extras are ignored.
func CASESubject(fabricIndex fabric.FabricIndex, nodeID uint64, cats ...CASEAuthTag) SubjectDescriptor {
	d := SubjectDescriptor{
		FabricIndex: fabricIndex,
		AuthMode:    AuthModeCASE,
		Subject:     nodeID,
	}
	for i, cat := range cats {
		if i >= len(d.CATs) {
			break
		}
		d.CATs[i] = cat
	}
	return d
}

// GroupSubject builds a descriptor for a group session.
func GroupSubject(fabricIndex fabric.FabricIndex, groupID uint16) SubjectDescriptor {
	return SubjectDescriptor{
		FabricIndex: fabricIndex,
		AuthMode:    AuthModeGroup,
		Subject:     NodeIDFromGroupID(groupID),
	}
}

// PASECommissioningSubject builds a descriptor for a PASE session during
// commissioning.
func PASECommissioningSubject(pakeKeyID uint16) SubjectDescriptor {
	return SubjectDescriptor{
		AuthMode:        AuthModePASE,
		Subject:         NodeIDFromPAKEKeyID(pakeKeyID),
		IsCommissioning: true,
	}
}
