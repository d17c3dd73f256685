package lock_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Daisey666/envfile/internal/adapters/lock"
	"github.com/Daisey666/envfile/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLock() domain.Lock {
	return domain.Lock{
		Name:     "odin",
		Digest:   "8f3c1a92d4e56b70",
		Channels: []string{"conda-forge", "defaults"},
		Conda: []domain.LockEntry{
			{Name: "numpy", Spec: "numpy=1.18"},
			{Name: "python", Spec: "python=3.7"},
		},
		Pip: []domain.LockEntry{
			{Name: "jax", Spec: "jax==0.1.75"},
		},
	}
}

func TestStore_PutGet(t *testing.T) {
	store, err := lock.NewStore()
	require.NoError(t, err)

	dir := t.TempDir()
	want := testLock()
	require.NoError(t, store.Put(dir, want))

	got, err := store.Get(dir)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, want, *got)
}

func TestStore_Get_Missing(t *testing.T) {
	store, err := lock.NewStore()
	require.NoError(t, err)

	got, err := store.Get(t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_Get_Corrupt(t *testing.T) {
	store, err := lock.NewStore()
	require.NoError(t, err)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(domain.LockPath(dir), []byte("{not json"), 0o644))

	_, err = store.Get(dir)
	assert.ErrorIs(t, err, domain.ErrLockUnmarshalFailed)
}

func TestStore_Put_BadDir(t *testing.T) {
	store, err := lock.NewStore()
	require.NoError(t, err)

	err = store.Put(filepath.Join(t.TempDir(), "missing"), testLock())
	assert.ErrorIs(t, err, domain.ErrLockWriteFailed)
}

func TestStore_Put_TrailingNewline(t *testing.T) {
	store, err := lock.NewStore()
	require.NoError(t, err)

	dir := t.TempDir()
	require.NoError(t, store.Put(dir, testLock()))

	data, err := os.ReadFile(domain.LockPath(dir))
	require.NoError(t, err)
	assert.True(t, len(data) > 0 && data[len(data)-1] == '\n')
}
