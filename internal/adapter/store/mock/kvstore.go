package mock

import (
	"errors"
	"sync"
)

// KVStore mocks store.KVStore with in-memory map.
type KVStore struct {
	data    map[string][]byte
	updates int
	m       sync.Mutex

	// UpdateErr is returned from UpdateKeyFunc when set.
	UpdateErr error
}

// NewKVStore creates new KVStore instance with given data.
func NewKVStore(data map[string][]byte) *KVStore {
	return &KVStore{
		data: data,
	}
}

// UpdateKeyFunc replaces data under given key with the result of fn.
func (s *KVStore) UpdateKeyFunc(key []byte, fn func(current []byte) ([]byte, error)) error {
	s.m.Lock()
	defer s.m.Unlock()

	if s.UpdateErr != nil {
		return s.UpdateErr
	}
	if fn == nil {
		return errors.New("nil update func")
	}

	s.updates++
	if s.data == nil {
		s.data = make(map[string][]byte)
	}
	data, err := fn(s.data[string(key)])
	if err != nil {
		return err
	}
	s.data[string(key)] = data

	return nil
}

// Value returns data saved for given key.
func (s *KVStore) Value(key string) []byte {
	s.m.Lock()
	defer s.m.Unlock()

	return s.data[key]
}

// Updates returns update call count.
func (s *KVStore) Updates() int {
	s.m.Lock()
	defer s.m.Unlock()

	return s.updates
}
