package acl

import (
	"sync"

	"github.com/backkem/matterpath/pkg/fabric"
)

// DeviceTypeResolver answers whether an endpoint carries a device type.
// It decouples device-type targets from the data model package; the
// data model's node satisfies it directly.
type DeviceTypeResolver interface {
	// IsDeviceTypeOnEndpoint returns true if the endpoint carries the
	// device type.
	IsDeviceTypeOnEndpoint(deviceType uint32, endpoint uint16) bool
}

// NullDeviceTypeResolver answers false for everything, so device-type
// targets never match. Use it when no data model is wired up.
type NullDeviceTypeResolver struct{}

// IsDeviceTypeOnEndpoint always returns false.
func (NullDeviceTypeResolver) IsDeviceTypeOnEndpoint(uint32, uint16) bool {
	return false
}

// Checker evaluates access control checks against installed entries.
// Entries are held per fabric; a check only ever consults the subject
// fabric's entries. Safe for concurrent use.
type Checker struct {
	mu       sync.RWMutex
	entries  map[fabric.FabricIndex][]Entry
	resolver DeviceTypeResolver
}

// NewChecker creates a checker. A nil resolver disables device-type
// target matching.
func NewChecker(resolver DeviceTypeResolver) *Checker {
	if resolver == nil {
		resolver = NullDeviceTypeResolver{}
	}
	return &Checker{
		entries:  make(map[fabric.FabricIndex][]Entry),
		resolver: resolver,
	}
}

// SetEntries replaces the entries installed for one fabric. The entries
// are copied and stamped with the fabric index. An invalid fabric index
// is ignored.
func (c *Checker) SetEntries(fabricIndex fabric.FabricIndex, entries []Entry) {
	if !fabricIndex.IsValid() {
		return
	}

	installed := make([]Entry, len(entries))
	copy(installed, entries)
	for i := range installed {
		installed[i].FabricIndex = fabricIndex
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[fabricIndex] = installed
}

// AddEntry validates an entry and installs it under its own fabric index.
func (c *Checker) AddEntry(entry Entry) error {
	if err := ValidateEntry(&entry); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[entry.FabricIndex] = append(c.entries[entry.FabricIndex], entry)
	return nil
}

// GetEntries returns a copy of the entries installed for a fabric.
func (c *Checker) GetEntries(fabricIndex fabric.FabricIndex) []Entry {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entries := c.entries[fabricIndex]
	result := make([]Entry, len(entries))
	copy(result, entries)
	return result
}

// ClearFabric drops all entries installed for a fabric.
func (c *Checker) ClearFabric(fabricIndex fabric.FabricIndex) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, fabricIndex)
}

// Check evaluates whether the subject holds the required privilege on
// the request path. Implements Spec 6.6.6.2 "Overall Algorithm":
//
//  1. A PASE session during commissioning holds implicit Administer.
//  2. Scan the subject fabric's entries in order. An entry applies when
//     its auth mode matches the session, its privilege grants the
//     required one, one of its subjects matches, and one of its targets
//     covers the path.
//  3. First applicable entry allows. Nothing applicable denies.
func (c *Checker) Check(subject SubjectDescriptor, path RequestPath, required Privilege) Result {
	// Spec 6.6.2.9: commissioning bootstraps with implicit Administer
	// because no ACL exists yet to grant anything.
	if subject.AuthMode == AuthModePASE && subject.IsCommissioning {
		return ResultAllowed
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	for i := range c.entries[subject.FabricIndex] {
		entry := &c.entries[subject.FabricIndex][i]

		if entry.AuthMode != subject.AuthMode {
			continue
		}
		if !entry.Privilege.Grants(required) {
			continue
		}
		if !entrySubjectMatches(entry, &subject) {
			continue
		}
		if !c.entryTargetMatches(entry, &path) {
			continue
		}

		return ResultAllowed
	}

	return ResultDenied
}

// entrySubjectMatches reports whether the session subject is among the
// entry's subjects. An empty subject list is a wildcard, permitted only
// for CASE and Group entries.
func entrySubjectMatches(entry *Entry, subject *SubjectDescriptor) bool {
	if len(entry.Subjects) == 0 {
		return entry.AuthMode == AuthModeCASE || entry.AuthMode == AuthModeGroup
	}

	for _, aclSubject := range entry.Subjects {
		if subjectMatches(aclSubject, subject) {
			return true
		}
	}
	return false
}

// subjectMatches compares one ACL subject against the session subject:
// either an exact node ID match, or for CASE sessions a CAT-type
// subject matched against the certificate's CATs.
func subjectMatches(aclSubject uint64, subject *SubjectDescriptor) bool {
	if aclSubject == subject.Subject {
		return true
	}
	if subject.AuthMode == AuthModeCASE && IsCATNodeID(aclSubject) {
		return subject.CATs.CheckSubjectAgainstCATs(aclSubject)
	}
	return false
}

// entryTargetMatches reports whether the request path falls under one
// of the entry's targets. An empty target list covers everything.
func (c *Checker) entryTargetMatches(entry *Entry, path *RequestPath) bool {
	if len(entry.Targets) == 0 {
		return true
	}

	for i := range entry.Targets {
		if c.targetMatches(&entry.Targets[i], path) {
			return true
		}
	}
	return false
}

// targetMatches checks one target against the path. Set fields must all
// match; a device-type constraint is resolved against the endpoint.
func (c *Checker) targetMatches(target *Target, path *RequestPath) bool {
	if target.Cluster != nil && *target.Cluster != path.Cluster {
		return false
	}
	if target.Endpoint != nil && *target.Endpoint != path.Endpoint {
		return false
	}
	if target.DeviceType != nil &&
		!c.resolver.IsDeviceTypeOnEndpoint(*target.DeviceType, path.Endpoint) {
		return false
	}
	return true
}
