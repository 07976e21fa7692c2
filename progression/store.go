package progression

import (
	"fmt"
	"log"
	"sync"

	"github.com/quasilyte/gdata"
)

// Store persists opaque progression blobs by key.
type Store interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

// GDataStore keeps items in the per-user save directory managed by gdata.
type GDataStore struct {
	m *gdata.Manager
}

// OpenGData opens the save directory for appName.
func OpenGData(appName string) (*GDataStore, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open save data: %w", err)
	}
	return &GDataStore{m: m}, nil
}

func (s *GDataStore) LoadItem(key string) ([]byte, error) {
	return s.m.LoadItem(key)
}

func (s *GDataStore) SaveItem(key string, data []byte) error {
	return s.m.SaveItem(key, data)
}

// MemoryStore is an in-process Store.
type MemoryStore struct {
	mu    sync.Mutex
	items map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: make(map[string][]byte)}
}

func (s *MemoryStore) LoadItem(key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.items[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), data...), nil
}

func (s *MemoryStore) SaveItem(key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[key] = append([]byte(nil), data...)
	return nil
}

// OpenStore opens gdata storage and falls back to memory when the save directory
// is unavailable.
func OpenStore(appName string) Store {
	s, err := OpenGData(appName)
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return NewMemoryStore()
	}
	return s
}
