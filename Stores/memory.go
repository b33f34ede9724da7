package Stores

import (
	"errors"
	"fmt"
	"sync"

	"EnasClinic/Models"
	"EnasClinic/SessionCapture"
)

// MemoryStore implements the same gateway contract as GormStore without a
// database. Tests use it to reject chosen writes and to push snapshots at
// will, including after an unsubscribe.
type MemoryStore struct {
	mu          sync.Mutex
	records     map[uint][]Models.SessionRecord
	subscribers map[uint]map[int]func([]Models.SessionRecord)
	nextID      int

	// FailRegions rejects WriteUnique for the listed region keys.
	FailRegions map[string]bool
	// Prices backs PriceTable.
	Prices Models.PriceTable
}

var (
	_ SessionCapture.SessionWriter     = (*MemoryStore)(nil)
	_ SessionCapture.SessionSubscriber = (*MemoryStore)(nil)
	_ SessionCapture.PriceSource       = (*MemoryStore)(nil)
)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records:     make(map[uint][]Models.SessionRecord),
		subscribers: make(map[uint]map[int]func([]Models.SessionRecord)),
		FailRegions: make(map[string]bool),
		Prices:      make(Models.PriceTable),
	}
}

func (s *MemoryStore) WriteUnique(clientID uint, record Models.SessionRecord) (string, error) {
	s.mu.Lock()
	if s.FailRegions[record.Region] {
		s.mu.Unlock()
		return "", errors.New("write rejected")
	}
	s.nextID++
	record.ClientID = clientID
	record.UID = fmt.Sprintf("mem-%d", s.nextID)
	s.records[clientID] = append(s.records[clientID], record)
	snapshot := s.snapshotLocked(clientID)
	callbacks := s.callbacksLocked(clientID)
	s.mu.Unlock()

	for _, deliver := range callbacks {
		deliver(snapshot)
	}
	return record.UID, nil
}

func (s *MemoryStore) GetOnce(clientID uint) ([]Models.SessionRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked(clientID), nil
}

func (s *MemoryStore) Subscribe(clientID uint, deliver func([]Models.SessionRecord)) func() {
	s.mu.Lock()
	if s.subscribers[clientID] == nil {
		s.subscribers[clientID] = make(map[int]func([]Models.SessionRecord))
	}
	s.nextID++
	id := s.nextID
	s.subscribers[clientID][id] = deliver
	snapshot := s.snapshotLocked(clientID)
	s.mu.Unlock()

	deliver(snapshot)

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subscribers[clientID], id)
	}
}

// Deliver pushes an arbitrary snapshot to the client's subscribers, bypassing
// the stored records. Tests use it to simulate a store that keeps delivering
// after an unsubscribe.
func (s *MemoryStore) Deliver(clientID uint, records []Models.SessionRecord) {
	s.mu.Lock()
	callbacks := s.callbacksLocked(clientID)
	s.mu.Unlock()

	for _, deliver := range callbacks {
		deliver(records)
	}
}

func (s *MemoryStore) PriceTable() (Models.PriceTable, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	table := make(Models.PriceTable, len(s.Prices))
	for key, price := range s.Prices {
		table[key] = price
	}
	return table, nil
}

func (s *MemoryStore) snapshotLocked(clientID uint) []Models.SessionRecord {
	snapshot := make([]Models.SessionRecord, len(s.records[clientID]))
	copy(snapshot, s.records[clientID])
	return snapshot
}

func (s *MemoryStore) callbacksLocked(clientID uint) []func([]Models.SessionRecord) {
	callbacks := make([]func([]Models.SessionRecord), 0, len(s.subscribers[clientID]))
	for _, deliver := range s.subscribers[clientID] {
		callbacks = append(callbacks, deliver)
	}
	return callbacks
}
