package store

import (
	"context"
	"fmt"

	"github.com/ArijitMandal123/Hackathon-Proj-sbh/internal/app"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// KVStore provides simple kv data storage with atomic read-modify-write.
type KVStore interface {
	UpdateKeyFunc(key []byte, fn func(current []byte) ([]byte, error)) error
}

// BoltStore keeps user documents as json values in embedded kv store.
type BoltStore struct {
	kv KVStore
}

var _ app.Store = &BoltStore{}

// NewBoltStore creates new BoltStore instance.
func NewBoltStore(kv KVStore) *BoltStore {
	return &BoltStore{kv: kv}
}

// MergeUser merges user record into document stored under user id.
func (s *BoltStore) MergeUser(ctx context.Context, userID string, rec app.UserRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.kv.UpdateKeyFunc(userKey(userID), func(current []byte) ([]byte, error) {
		var doc Document
		if current != nil {
			if err := json.Unmarshal(current, &doc); err != nil {
				return nil, fmt.Errorf("unmarshalling stored document: %w", err)
			}
		}

		data, err := json.Marshal(mergeDocuments(doc, userDocument(rec)))
		if err != nil {
			return nil, fmt.Errorf("marshalling document: %w", err)
		}
		return data, nil
	})
}

func userKey(userID string) []byte {
	return []byte("users/" + userID)
}
