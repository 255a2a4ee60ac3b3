package events

import (
	"errors"
	"sync"
	"time"

	"github.com/pion/logging"

	"github.com/backkem/matterpath/pkg/datamodel"
)

// ErrInvalidPriority is returned by Append for a priority outside the
// defined levels.
var ErrInvalidPriority = errors.New("events: invalid priority")

// DefaultCapacityPerPriority is the per-ring record capacity used when
// Config leaves it unset.
const DefaultCapacityPerPriority = 50

// Record is one stored event occurrence.
type Record struct {
	// Number is the monotonically increasing counter assigned on
	// append, unique across all priorities.
	Number datamodel.EventNumber

	// Path names the emitting endpoint, cluster and event.
	Path datamodel.ConcreteEventPath

	// Priority is the level the event was published at.
	Priority datamodel.EventPriority

	// Timestamp is when the record was appended.
	Timestamp time.Time

	// FabricIndex scopes fabric-sensitive records; 0 means visible to
	// every fabric.
	FabricIndex uint8

	// Data is the opaque encoded payload.
	Data []byte
}

// Listener is notified of appended records.
type Listener interface {
	// OnEvent is called once per appended record, after the log's lock
	// is released. Callbacks may query the log.
	OnEvent(record Record)
}

// Config configures a Log. Zero values select defaults.
type Config struct {
	// CapacityPerPriority bounds each priority ring. When a ring is
	// full its oldest record is evicted.
	CapacityPerPriority int

	// LoggerFactory customizes logging.
	LoggerFactory logging.LoggerFactory
}

// Log is an in-memory event log with one ring per priority and a
// single event number sequence across them. Safe for concurrent use.
type Log struct {
	mu        sync.RWMutex
	capacity  int
	debug     []Record
	info      []Record
	critical  []Record
	next      datamodel.EventNumber
	listeners []Listener

	log logging.LeveledLogger
}

// NewLog creates an event log.
func NewLog(config Config) *Log {
	if config.CapacityPerPriority <= 0 {
		config.CapacityPerPriority = DefaultCapacityPerPriority
	}
	if config.LoggerFactory == nil {
		config.LoggerFactory = logging.NewDefaultLoggerFactory()
	}

	return &Log{
		capacity: config.CapacityPerPriority,
		next:     1, // Event numbers start at 1
		log:      config.LoggerFactory.NewLogger("events"),
	}
}

// Append stores a record: the next event number is assigned, a zero
// Timestamp is replaced with the current time, and the record joins
// its priority ring, evicting that ring's oldest record when full.
// Listeners observe the record after the lock is released; concurrent
// appends may interleave notifications.
func (l *Log) Append(record Record) (datamodel.EventNumber, error) {
	if !record.Priority.IsValid() {
		return 0, ErrInvalidPriority
	}

	l.mu.Lock()
	record.Number = l.next
	l.next++
	if record.Timestamp.IsZero() {
		record.Timestamp = time.Now()
	}

	ring := l.ringFor(record.Priority)
	if len(*ring) >= l.capacity {
		l.log.Debugf("%s ring full, evicting event %d", record.Priority, (*ring)[0].Number)
		*ring = (*ring)[1:]
	}
	*ring = append(*ring, record)

	listeners := append([]Listener{}, l.listeners...)
	l.mu.Unlock()

	for _, listener := range listeners {
		listener.OnEvent(record)
	}
	return record.Number, nil
}

// PublishEvent implements datamodel.EventPublisher, so clusters built
// on datamodel.EventSource emit straight into the log.
func (l *Log) PublishEvent(
	endpoint datamodel.EndpointID,
	cluster datamodel.ClusterID,
	eventID datamodel.EventID,
	priority datamodel.EventPriority,
	data []byte,
	fabricIndex uint8,
) (datamodel.EventNumber, error) {
	return l.Append(Record{
		Path: datamodel.ConcreteEventPath{
			Endpoint: endpoint,
			Cluster:  cluster,
			Event:    eventID,
		},
		Priority:    priority,
		FabricIndex: fabricIndex,
		Data:        data,
	})
}

var _ datamodel.EventPublisher = (*Log)(nil)

// AddListener registers a listener for appended records.
func (l *Log) AddListener(listener Listener) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.listeners = append(l.listeners, listener)
}

// RemoveListener unregisters a previously added listener.
func (l *Log) RemoveListener(listener Listener) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, registered := range l.listeners {
		if registered == listener {
			l.listeners = append(l.listeners[:i], l.listeners[i+1:]...)
			return
		}
	}
}

// LastNumber returns the most recently assigned event number, 0 before
// the first append.
func (l *Log) LastNumber() datamodel.EventNumber {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.next - 1
}

// Clear drops every stored record. The number sequence continues;
// numbers are never reused.
func (l *Log) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.debug = l.debug[:0]
	l.info = l.info[:0]
	l.critical = l.critical[:0]
}

// ringFor returns the ring holding the given priority. Append has
// already validated the priority.
func (l *Log) ringFor(priority datamodel.EventPriority) *[]Record {
	switch priority {
	case datamodel.EventPriorityDebug:
		return &l.debug
	case datamodel.EventPriorityInfo:
		return &l.info
	default:
		return &l.critical
	}
}
