package storage

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_RoundTrip(t *testing.T) {
	s, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	path, err := s.UploadFromBytes([]byte("plan"), "Floor Plan.PDF", "documents")
	require.NoError(t, err)
	assert.Contains(t, path, "documents/")
	assert.True(t, s.Exists(path))

	f, err := s.Open(path)
	require.NoError(t, err)
	data, _ := io.ReadAll(f)
	f.Close()
	assert.Equal(t, "plan", string(data))

	require.NoError(t, s.Delete(path))
	assert.False(t, s.Exists(path))
	assert.NoError(t, s.Delete(path))
}

func TestLocalStorage_RejectsEscapingPaths(t *testing.T) {
	s, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	_, err = s.FullPath("../../etc/passwd")
	assert.ErrorIs(t, err, ErrPathOutsideStorage)
	assert.False(t, s.Exists("../outside"))
}

func TestIsValidContentType(t *testing.T) {
	assert.True(t, IsValidContentType("application/pdf"))
	assert.True(t, IsValidContentType("IMAGE/PNG"))
	assert.False(t, IsValidContentType("text/html"))
	assert.True(t, IsImage("image/jpeg"))
	assert.False(t, IsImage("application/pdf"))
}
