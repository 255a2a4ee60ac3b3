package acl

import (
	"errors"
	"sync"

	"github.com/backkem/matterpath/pkg/fabric"
	"github.com/pion/logging"
)

// Manager errors.
var (
	ErrEntryNotFound   = errors.New("acl: entry not found")
	ErrTooManyEntries  = errors.New("acl: too many entries for fabric")
	ErrTooManySubjects = errors.New("acl: too many subjects in entry")
	ErrTooManyTargets  = errors.New("acl: too many targets in entry")
	ErrIndexOutOfRange = errors.New("acl: index out of range")
)

// Capacity minimums a server must support, Spec 9.10.5.
const (
	// DefaultMaxEntriesPerFabric is the minimum entry capacity per fabric.
	DefaultMaxEntriesPerFabric = 4

	// DefaultMaxSubjectsPerEntry is the minimum subject capacity per entry.
	DefaultMaxSubjectsPerEntry = 4

	// DefaultMaxTargetsPerEntry is the minimum target capacity per entry.
	DefaultMaxTargetsPerEntry = 3
)

// Manager ties a Checker to a Store: entry mutations are validated,
// bounded by the per-fabric capacity, persisted, and mirrored into the
// checker so Check always sees the stored state.
type Manager struct {
	mu      sync.RWMutex
	checker *Checker
	store   Store
	log     logging.LeveledLogger

	maxEntriesPerFabric int
	maxSubjectsPerEntry int
	maxTargetsPerEntry  int
}

// ManagerOption configures a Manager.
type ManagerOption func(*managerConfig)

type managerConfig struct {
	store         Store
	resolver      DeviceTypeResolver
	loggerFactory logging.LoggerFactory

	maxEntriesPerFabric int
	maxSubjectsPerEntry int
	maxTargetsPerEntry  int
}

// WithStore sets the persistence backend. Defaults to a MemoryStore.
func WithStore(store Store) ManagerOption {
	return func(c *managerConfig) {
		c.store = store
	}
}

// WithDeviceTypeResolver sets the resolver for device-type targets.
// Defaults to NullDeviceTypeResolver.
func WithDeviceTypeResolver(resolver DeviceTypeResolver) ManagerOption {
	return func(c *managerConfig) {
		c.resolver = resolver
	}
}

// WithLoggerFactory sets the logger factory.
func WithLoggerFactory(factory logging.LoggerFactory) ManagerOption {
	return func(c *managerConfig) {
		c.loggerFactory = factory
	}
}

// WithMaxEntriesPerFabric overrides the per-fabric entry capacity.
func WithMaxEntriesPerFabric(max int) ManagerOption {
	return func(c *managerConfig) {
		c.maxEntriesPerFabric = max
	}
}

// WithMaxSubjectsPerEntry overrides the subject capacity per entry.
func WithMaxSubjectsPerEntry(max int) ManagerOption {
	return func(c *managerConfig) {
		c.maxSubjectsPerEntry = max
	}
}

// WithMaxTargetsPerEntry overrides the target capacity per entry.
func WithMaxTargetsPerEntry(max int) ManagerOption {
	return func(c *managerConfig) {
		c.maxTargetsPerEntry = max
	}
}

// NewManager creates a manager with the given options.
func NewManager(opts ...ManagerOption) *Manager {
	config := managerConfig{
		maxEntriesPerFabric: DefaultMaxEntriesPerFabric,
		maxSubjectsPerEntry: DefaultMaxSubjectsPerEntry,
		maxTargetsPerEntry:  DefaultMaxTargetsPerEntry,
	}
	for _, opt := range opts {
		opt(&config)
	}

	if config.store == nil {
		config.store = NewMemoryStore()
	}
	if config.loggerFactory == nil {
		config.loggerFactory = logging.NewDefaultLoggerFactory()
	}

	return &Manager{
		checker:             NewChecker(config.resolver),
		store:               config.store,
		log:                 config.loggerFactory.NewLogger("acl"),
		maxEntriesPerFabric: config.maxEntriesPerFabric,
		maxSubjectsPerEntry: config.maxSubjectsPerEntry,
		maxTargetsPerEntry:  config.maxTargetsPerEntry,
	}
}

// Check evaluates an access control check against the installed entries.
func (m *Manager) Check(subject SubjectDescriptor, path RequestPath, privilege Privilege) Result {
	return m.checker.Check(subject, path, privilege)
}

// CreateEntry validates and stores a new entry for a fabric, returning
// its index within the fabric's entry list.
func (m *Manager) CreateEntry(fabricIndex fabric.FabricIndex, entry Entry) (int, error) {
	entry.FabricIndex = fabricIndex

	if err := m.validateBounded(&entry); err != nil {
		return -1, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	entries, err := m.store.LoadEntries(fabricIndex)
	if err != nil {
		return -1, err
	}
	if len(entries) >= m.maxEntriesPerFabric {
		return -1, ErrTooManyEntries
	}

	entries = append(entries, entry)
	if err := m.store.SaveEntries(fabricIndex, entries); err != nil {
		return -1, err
	}
	m.checker.SetEntries(fabricIndex, entries)

	index := len(entries) - 1
	m.log.Debugf("fabric %d: created entry %d (%s, %s)",
		fabricIndex, index, entry.Privilege, entry.AuthMode)
	return index, nil
}

// UpdateEntry replaces the entry at the given index.
func (m *Manager) UpdateEntry(fabricIndex fabric.FabricIndex, index int, entry Entry) error {
	entry.FabricIndex = fabricIndex

	if err := m.validateBounded(&entry); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	entries, err := m.store.LoadEntries(fabricIndex)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(entries) {
		return ErrIndexOutOfRange
	}

	entries[index] = entry
	if err := m.store.SaveEntries(fabricIndex, entries); err != nil {
		return err
	}
	m.checker.SetEntries(fabricIndex, entries)

	m.log.Debugf("fabric %d: updated entry %d (%s, %s)",
		fabricIndex, index, entry.Privilege, entry.AuthMode)
	return nil
}

// DeleteEntry removes the entry at the given index. Later entries
// shift down.
func (m *Manager) DeleteEntry(fabricIndex fabric.FabricIndex, index int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	entries, err := m.store.LoadEntries(fabricIndex)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(entries) {
		return ErrIndexOutOfRange
	}

	entries = append(entries[:index], entries[index+1:]...)
	if err := m.store.SaveEntries(fabricIndex, entries); err != nil {
		return err
	}
	m.checker.SetEntries(fabricIndex, entries)

	m.log.Debugf("fabric %d: deleted entry %d", fabricIndex, index)
	return nil
}

// GetEntries returns all entries for a fabric.
func (m *Manager) GetEntries(fabricIndex fabric.FabricIndex) ([]Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.store.LoadEntries(fabricIndex)
}

// GetEntry returns the entry at the given index.
func (m *Manager) GetEntry(fabricIndex fabric.FabricIndex, index int) (*Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	entries, err := m.store.LoadEntries(fabricIndex)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(entries) {
		return nil, ErrEntryNotFound
	}
	return &entries[index], nil
}

// GetEntryCount returns the number of entries stored for a fabric.
func (m *Manager) GetEntryCount(fabricIndex fabric.FabricIndex) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	entries, err := m.store.LoadEntries(fabricIndex)
	if err != nil {
		return 0, err
	}
	return len(entries), nil
}

// DeleteAllForFabric removes every entry for a fabric. Called when the
// fabric itself is removed from the node.
func (m *Manager) DeleteAllForFabric(fabricIndex fabric.FabricIndex) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.store.SaveEntries(fabricIndex, nil); err != nil {
		return err
	}
	m.checker.ClearFabric(fabricIndex)

	m.log.Debugf("fabric %d: deleted all entries", fabricIndex)
	return nil
}

// LoadFromStore mirrors every fabric's persisted entries into the
// checker. Call once after constructing a manager over a store that
// already holds entries.
func (m *Manager) LoadFromStore() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	total := 0
	for fi := fabric.FabricIndexMin; fi <= fabric.FabricIndexMax; fi++ {
		entries, err := m.store.LoadEntries(fi)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			continue
		}
		m.checker.SetEntries(fi, entries)
		total += len(entries)
	}

	m.log.Infof("loaded %d entries from store", total)
	return nil
}

// validateBounded runs ValidateEntry plus the manager's capacity limits.
func (m *Manager) validateBounded(entry *Entry) error {
	if err := ValidateEntry(entry); err != nil {
		return err
	}
	if len(entry.Subjects) > m.maxSubjectsPerEntry {
		return ErrTooManySubjects
	}
	if len(entry.Targets) > m.maxTargetsPerEntry {
		return ErrTooManyTargets
	}
	return nil
}
