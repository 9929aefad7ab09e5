package prefs

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type view struct {
	Fovy    float32    `json:"fovy"`
	Shading string     `json:"shading"`
	Matrix  [4]float32 `json:"matrix"`
}

func openStore(t *testing.T) (*Store, string) {
	path := filepath.Join(t.TempDir(), "prefs.db")
	s, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s, path
}

func TestLoadMissing(t *testing.T) {
	s, _ := openStore(t)
	var v view
	found, err := s.Load("combined", &v)
	assert.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, view{}, v)
}

func TestSaveThenLoad(t *testing.T) {
	s, _ := openStore(t)
	saved := view{Fovy: 1.2, Shading: "phong", Matrix: [4]float32{1, 2, 3, 4}}
	require.NoError(t, s.Save("combined", saved))

	var loaded view
	found, err := s.Load("combined", &loaded)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, saved, loaded)
}

func TestSaveReplaces(t *testing.T) {
	s, _ := openStore(t)
	require.NoError(t, s.Save("animated", view{Fovy: 1}))
	require.NoError(t, s.Save("animated", view{Fovy: 2}))
	var loaded view
	_, err := s.Load("animated", &loaded)
	require.NoError(t, err)
	assert.Equal(t, float32(2), loaded.Fovy)
}

func TestPersistsAcrossOpen(t *testing.T) {
	s, path := openStore(t)
	require.NoError(t, s.Save("animated", view{Shading: "gouraud"}))
	require.NoError(t, s.Save("combined", view{Shading: "phong"}))
	require.NoError(t, s.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()
	names, err := reopened.Names()
	require.NoError(t, err)
	assert.Equal(t, []string{"animated", "combined"}, names)
	var loaded view
	found, err := reopened.Load("combined", &loaded)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "phong", loaded.Shading)
}

func TestBadValue(t *testing.T) {
	s, _ := openStore(t)
	require.NoError(t, s.Save("combined", "not a view"))
	var loaded view
	found, err := s.Load("combined", &loaded)
	assert.Error(t, err)
	assert.True(t, found)

	assert.Error(t, s.Save("combined", func() {}))
}

func TestClosed(t *testing.T) {
	s, _ := openStore(t)
	require.NoError(t, s.Close())
	assert.NoError(t, s.Close())
	assert.ErrorIs(t, s.Save("x", 1), ErrClosed)
	_, err := s.Load("x", new(int))
	assert.ErrorIs(t, err, ErrClosed)
	_, err = s.Names()
	assert.ErrorIs(t, err, ErrClosed)
}
