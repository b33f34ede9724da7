package Stores

import (
	"sync"

	"EnasClinic/Models"
	"EnasClinic/SessionCapture"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormStore is the session gateway over the clinic database. Writes get a
// generated unique key, and every write fans the client's full collection out
// to its subscribers, so feeds always see whole snapshots, never deltas.
type GormStore struct {
	db          *gorm.DB
	mu          sync.Mutex
	subscribers map[uint]map[int]func([]Models.SessionRecord)
	nextID      int
}

var (
	_ SessionCapture.SessionWriter     = (*GormStore)(nil)
	_ SessionCapture.SessionSubscriber = (*GormStore)(nil)
	_ SessionCapture.PriceSource       = (*GormStore)(nil)
)

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{
		db:          db,
		subscribers: make(map[uint]map[int]func([]Models.SessionRecord)),
	}
}

func (s *GormStore) WriteUnique(clientID uint, record Models.SessionRecord) (string, error) {
	record.ClientID = clientID
	record.UID = uuid.New().String()
	if err := s.db.Create(&record).Error; err != nil {
		return "", err
	}
	s.notify(clientID)
	return record.UID, nil
}

// GetOnce reads the client's full session collection in insertion order.
func (s *GormStore) GetOnce(clientID uint) ([]Models.SessionRecord, error) {
	var records []Models.SessionRecord
	if err := s.db.Model(&Models.SessionRecord{}).
		Where("client_id = ?", clientID).
		Order("created_at asc").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// Subscribe registers a snapshot callback for one client and delivers the
// current collection immediately. The returned function releases the
// subscription.
func (s *GormStore) Subscribe(clientID uint, deliver func([]Models.SessionRecord)) func() {
	s.mu.Lock()
	if s.subscribers[clientID] == nil {
		s.subscribers[clientID] = make(map[int]func([]Models.SessionRecord))
	}
	id := s.nextID
	s.nextID++
	s.subscribers[clientID][id] = deliver
	s.mu.Unlock()

	if records, err := s.GetOnce(clientID); err == nil {
		deliver(records)
	}

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subscribers[clientID], id)
	}
}

func (s *GormStore) notify(clientID uint) {
	records, err := s.GetOnce(clientID)
	if err != nil {
		return
	}

	s.mu.Lock()
	callbacks := make([]func([]Models.SessionRecord), 0, len(s.subscribers[clientID]))
	for _, deliver := range s.subscribers[clientID] {
		callbacks = append(callbacks, deliver)
	}
	s.mu.Unlock()

	for _, deliver := range callbacks {
		deliver(records)
	}
}

func (s *GormStore) PriceTable() (Models.PriceTable, error) {
	return Models.LoadPriceTable(s.db)
}

func (s *GormStore) Client(clientID uint) (Models.Client, error) {
	var client Models.Client
	if err := s.db.First(&client, clientID).Error; err != nil {
		return client, err
	}
	return client, nil
}
