package acl

// CASE Authenticated Tags.
// Spec: Section 6.6.2.1.2
//
// A CAT is a 32-bit grouping tag carried in a CASE certificate, split
// into a 16-bit identifier (which group) and a 16-bit version (which
// generation of membership). ACL subjects reference CATs as node IDs in
// the reserved 0xFFFF_FFFD_xxxx_xxxx range, so CAT matching plugs into
// the same subject comparison as plain node IDs.

// CASEAuthTag is a 32-bit CASE Authenticated Tag,
// laid out as [identifier:16][version:16].
type CASEAuthTag uint32

// CATUndefined is an empty CAT slot.
const CATUndefined CASEAuthTag = 0

// CAT-type node ID range.
// Spec: Section 2.5.5.5
const (
	// NodeIDMinCAT is the smallest CAT-type node ID.
	NodeIDMinCAT uint64 = 0xFFFF_FFFD_0000_0000

	// NodeIDMaxCAT is the largest CAT-type node ID.
	NodeIDMaxCAT uint64 = 0xFFFF_FFFD_FFFF_FFFF
)

// Well-known CAT identifiers.
const (
	// CATIdentifierAdmin tags administrators (0xFFFF).
	CATIdentifierAdmin uint16 = 0xFFFF

	// CATIdentifierAnchor tags the anchor administrator (0xFFFE).
	CATIdentifierAnchor uint16 = 0xFFFE
)

// NewCASEAuthTag builds a CAT from an identifier and a version.
func NewCASEAuthTag(identifier, version uint16) CASEAuthTag {
	return CASEAuthTag(uint32(identifier)<<16 | uint32(version))
}

// GetIdentifier returns the 16-bit identifier half.
func (c CASEAuthTag) GetIdentifier() uint16 {
	return uint16(c >> 16)
}

// GetVersion returns the 16-bit version half.
func (c CASEAuthTag) GetVersion() uint16 {
	return uint16(c)
}

// IsValid returns true if the version is non-zero. Version 0 is
// reserved as invalid.
func (c CASEAuthTag) IsValid() bool {
	return c.GetVersion() > 0
}

// NodeID returns the CAT encoded as a CAT-type node ID.
func (c CASEAuthTag) NodeID() uint64 {
	return NodeIDMinCAT | uint64(c)
}

// IsCATNodeID returns true if the node ID is in the CAT-type range.
func IsCATNodeID(nodeID uint64) bool {
	return nodeID >= NodeIDMinCAT && nodeID <= NodeIDMaxCAT
}

// CATFromNodeID extracts the CAT from a CAT-type node ID, or
// CATUndefined if the node ID is not CAT-type.
func CATFromNodeID(nodeID uint64) CASEAuthTag {
	if !IsCATNodeID(nodeID) {
		return CATUndefined
	}
	return CASEAuthTag(nodeID)
}

// CATValues holds the CATs from one certificate. A certificate carries
// at most three.
type CATValues [3]CASEAuthTag

// GetNumTagsPresent returns how many slots are occupied.
func (c CATValues) GetNumTagsPresent() int {
	count := 0
	for _, cat := range c {
		if cat != CATUndefined {
			count++
		}
	}
	return count
}

// Contains returns true if the exact CAT value is present.
func (c CATValues) Contains(tag CASEAuthTag) bool {
	for _, cat := range c {
		if cat != CATUndefined && cat == tag {
			return true
		}
	}
	return false
}

// ContainsIdentifier returns true if a CAT with the identifier is
// present, regardless of version.
func (c CATValues) ContainsIdentifier(identifier uint16) bool {
	for _, cat := range c {
		if cat != CATUndefined && cat.GetIdentifier() == identifier {
			return true
		}
	}
	return false
}

// AreValid returns true if every occupied slot has a non-zero version
// and no identifier appears twice.
func (c CATValues) AreValid() bool {
	for i, cat := range c {
		if cat == CATUndefined {
			continue
		}
		if !cat.IsValid() {
			return false
		}
		for j, other := range c {
			if i == j || other == CATUndefined {
				continue
			}
			if other.GetIdentifier() == cat.GetIdentifier() {
				return false
			}
		}
	}
	return true
}

// CheckSubjectAgainstCATs reports whether an ACL subject written as a
// CAT-type node ID matches this certificate's CATs.
// Spec: Section 6.6.2.1.2
//
// The identifiers must be equal and the certificate's version must be
// at least the ACL subject's version. An entry listing version N thus
// admits members of generation N and later, which is how members are
// rotated out: bump the entry's version and reissue certificates to
// everyone who should stay.
func (c CATValues) CheckSubjectAgainstCATs(subject uint64) bool {
	if !IsCATNodeID(subject) {
		return false
	}

	subjectCAT := CATFromNodeID(subject)
	if subjectCAT.GetVersion() == 0 {
		return false
	}

	for _, cat := range c {
		if cat == CATUndefined {
			continue
		}
		if cat.GetIdentifier() != subjectCAT.GetIdentifier() {
			continue
		}
		if cat.GetVersion() >= subjectCAT.GetVersion() {
			return true
		}
	}

	return false
}

// Equal returns true if both sets hold the same CATs, ignoring order.
// Invalid sets never compare equal.
func (c CATValues) Equal(other CATValues) bool {
	if c.GetNumTagsPresent() != other.GetNumTagsPresent() {
		return false
	}
	if !c.AreValid() || !other.AreValid() {
		return false
	}
	for _, cat := range c {
		if cat == CATUndefined {
			continue
		}
		if !other.Contains(cat) {
			return false
		}
	}
	return true
}
