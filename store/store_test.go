package store_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/blockfall/store"
)

func exercise(t *testing.T, s store.Store) {
	t.Helper()

	_, err := s.Get("missing")
	assert.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, s.Set("name", "blocks"))
	v, err := s.Get("name")
	require.NoError(t, err)
	assert.Equal(t, "blocks", v)

	require.NoError(t, s.Set("name", "more blocks"))
	v, err = s.Get("name")
	require.NoError(t, err)
	assert.Equal(t, "more blocks", v)

	require.NoError(t, store.SetInt(s, "score", 1200))
	n, err := store.GetInt(s, "score")
	require.NoError(t, err)
	assert.Equal(t, 1200, n)

	_, err = store.GetInt(s, "name")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, store.ErrNotFound)

	_, err = store.GetInt(s, "nothing")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestMemory(t *testing.T) {
	exercise(t, store.NewMemory())

	var zero store.Memory
	require.NoError(t, zero.Set("k", "v"))
	v, err := zero.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "v", v)
}

func TestFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "scores.json")
	exercise(t, store.NewFile(path))

	// A second handle sees what the first wrote.
	n, err := store.GetInt(store.NewFile(path), "score")
	require.NoError(t, err)
	assert.Equal(t, 1200, n)

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err), "temporary file is renamed away")
}

func TestFileTreatsEmptyFileAsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.json")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	_, err := store.NewFile(path).Get("score")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestFileRejectsCorruptContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	s := store.NewFile(path)
	_, err := s.Get("score")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, store.ErrNotFound)
	assert.Error(t, s.Set("score", "1"))
}

func TestSQLiteInMemory(t *testing.T) {
	s, err := store.OpenSQLite(":memory:")
	require.NoError(t, err)
	defer s.Close()

	exercise(t, s)
}

func TestSQLitePersistsAcrossHandles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db", "blockfall.db")

	s, err := store.OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, store.SetInt(s, "tetris_high_score", 4200))
	require.NoError(t, s.Close())

	s, err = store.OpenSQLite(path)
	require.NoError(t, err)
	defer s.Close()
	n, err := store.GetInt(s, "tetris_high_score")
	require.NoError(t, err)
	assert.Equal(t, 4200, n)
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	cases := []struct {
		kind string
		path string
	}{
		{"", ""},
		{"memory", ""},
		{"file", filepath.Join(dir, "scores.json")},
		{"sqlite", filepath.Join(dir, "scores.db")},
	}
	for _, tc := range cases {
		t.Run(tc.kind, func(t *testing.T) {
			s, closeFn, err := store.Open(tc.kind, tc.path)
			require.NoError(t, err)
			require.NotNil(t, closeFn)
			defer func() { assert.NoError(t, closeFn()) }()
			exercise(t, s)
		})
	}

	s, closeFn, err := store.Open("redis", "")
	assert.Error(t, err)
	assert.Nil(t, s)
	assert.NoError(t, closeFn())
}
