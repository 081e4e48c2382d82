package cart

import (
	"encoding/json"
	"sync"

	"github.com/pkg/errors"
)

// Storage adalah port persistensi keranjang: blob JSON per kunci sesi.
// Implementasi lain (redis, dokumen per user) cukup memenuhi interface ini.
type Storage interface {
	Load(sessionID string) (*Cart, error)
	Save(sessionID string, c *Cart) error
	Delete(sessionID string) error
}

// MemoryStorage menyimpan keranjang di memori proses. Blob tetap
// di-encode sebagai JSON agar perilakunya sama dengan storage eksternal.
type MemoryStorage struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewMemoryStorage membuat MemoryStorage kosong.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{blobs: make(map[string][]byte)}
}

// Load mengembalikan keranjang sesi; sesi yang belum dikenal
// mendapat keranjang kosong.
func (s *MemoryStorage) Load(sessionID string) (*Cart, error) {
	s.mu.RLock()
	blob, ok := s.blobs[sessionID]
	s.mu.RUnlock()

	if !ok {
		return &Cart{}, nil
	}

	var c Cart
	if err := json.Unmarshal(blob, &c); err != nil {
		return nil, errors.Wrap(err, "decoding stored cart")
	}
	return &c, nil
}

// Save menyimpan keranjang sesi.
func (s *MemoryStorage) Save(sessionID string, c *Cart) error {
	blob, err := json.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "encoding cart")
	}

	s.mu.Lock()
	s.blobs[sessionID] = blob
	s.mu.Unlock()
	return nil
}

// Delete membuang keranjang sesi.
func (s *MemoryStorage) Delete(sessionID string) error {
	s.mu.Lock()
	delete(s.blobs, sessionID)
	s.mu.Unlock()
	return nil
}
