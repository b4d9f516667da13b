package database

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoltKVStoreUpdateKeyFunc(t *testing.T) {
	s, err := NewBoltKVStore(filepath.Join(t.TempDir(), "test.db"), "users")
	require.NoError(t, err)
	defer s.Close()

	err = s.UpdateKeyFunc([]byte("k"), func(current []byte) ([]byte, error) {
		assert.Nil(t, current)
		return []byte("v1"), nil
	})
	require.NoError(t, err)

	err = s.UpdateKeyFunc([]byte("k"), func(current []byte) ([]byte, error) {
		assert.Equal(t, []byte("v1"), current)
		return append(current, '+'), nil
	})
	require.NoError(t, err)

	assert.Equal(t, []byte("v1+"), currentValue(t, s, "k"))
}

func TestBoltKVStoreUpdateKeyFuncError(t *testing.T) {
	s, err := NewBoltKVStore(filepath.Join(t.TempDir(), "test.db"), "users")
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.UpdateKeyFunc([]byte("k"), func([]byte) ([]byte, error) {
		return []byte("v1"), nil
	}))

	fnErr := errors.New("broken document")
	err = s.UpdateKeyFunc([]byte("k"), func([]byte) ([]byte, error) {
		return nil, fnErr
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, fnErr))

	assert.Equal(t, []byte("v1"), currentValue(t, s, "k"))
}

func TestBoltKVStoreReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	s, err := NewBoltKVStore(path, "users")
	require.NoError(t, err)
	require.NoError(t, s.UpdateKeyFunc([]byte("k"), func([]byte) ([]byte, error) {
		return []byte("v1"), nil
	}))
	require.NoError(t, s.Close())

	s, err = NewBoltKVStore(path, "users")
	require.NoError(t, err)
	defer s.Close()

	assert.Equal(t, []byte("v1"), currentValue(t, s, "k"))
}

// currentValue reads key by rewriting its current value unchanged.
func currentValue(t *testing.T, s *BoltKVStore, key string) []byte {
	t.Helper()

	var value []byte
	require.NoError(t, s.UpdateKeyFunc([]byte(key), func(current []byte) ([]byte, error) {
		value = current
		return current, nil
	}))
	return value
}
