package events

import (
	"sort"

	"github.com/backkem/matterpath/pkg/acl"
	"github.com/backkem/matterpath/pkg/datamodel"
)

// Filter narrows a read-out. The zero value matches every record.
type Filter struct {
	// Endpoint, Cluster and Event narrow the record path. nil matches
	// every value at that level, the EventPathRequest convention.
	Endpoint *datamodel.EndpointID
	Cluster  *datamodel.ClusterID
	Event    *datamodel.EventID

	// MinNumber drops records numbered below it.
	MinNumber datamodel.EventNumber

	// MinPriority drops records below the given priority.
	MinPriority datamodel.EventPriority
}

// matches reports whether the record passes the filter.
func (f Filter) matches(record Record) bool {
	if record.Number < f.MinNumber {
		return false
	}
	if record.Priority < f.MinPriority {
		return false
	}
	if f.Endpoint != nil && *f.Endpoint != record.Path.Endpoint {
		return false
	}
	if f.Cluster != nil && *f.Cluster != record.Path.Cluster {
		return false
	}
	if f.Event != nil && *f.Event != record.Path.Event {
		return false
	}
	return true
}

// Events returns the stored records passing the filter, in event
// number order.
func (l *Log) Events(filter Filter) []Record {
	l.mu.RLock()

	var result []Record
	for _, ring := range [][]Record{l.debug, l.info, l.critical} {
		for _, record := range ring {
			if filter.matches(record) {
				result = append(result, record)
			}
		}
	}
	l.mu.RUnlock()

	sort.Slice(result, func(i, j int) bool {
		return result[i].Number < result[j].Number
	})
	return result
}

// ReadAuthorizer answers whether a subject may read events at a
// concrete path. *pathcheck.Resolver satisfies it.
type ReadAuthorizer interface {
	CanReadEvent(subject acl.SubjectDescriptor, path datamodel.ConcreteEventPath) bool
}

// EventsForSubject returns the filtered records the subject is
// entitled to see. Records whose path the authorizer denies are
// dropped, as are fabric-sensitive records belonging to another
// fabric. The result carries no trace of what was withheld.
func (l *Log) EventsForSubject(subject acl.SubjectDescriptor, filter Filter, authorizer ReadAuthorizer) []Record {
	records := l.Events(filter)

	// Paths repeat heavily across records; one decision covers every
	// record on the same path.
	decisions := make(map[datamodel.ConcreteEventPath]bool)

	visible := records[:0]
	for _, record := range records {
		if record.FabricIndex != 0 && uint8(subject.FabricIndex) != record.FabricIndex {
			continue
		}
		allowed, decided := decisions[record.Path]
		if !decided {
			allowed = authorizer.CanReadEvent(subject, record.Path)
			decisions[record.Path] = allowed
		}
		if !allowed {
			continue
		}
		visible = append(visible, record)
	}
	return visible
}
