package services

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/propease/propease-api/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageService_Thumbnail(t *testing.T) {
	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	svc := NewImageService(store)

	src := imaging.New(1200, 600, color.NRGBA{R: 200, G: 120, B: 40, A: 255})
	var buf bytes.Buffer
	require.NoError(t, imaging.Encode(&buf, src, imaging.PNG))
	path, err := store.UploadFromBytes(buf.Bytes(), "plan.png", "documents")
	require.NoError(t, err)

	thumbPath, err := svc.Thumbnail(path)
	require.NoError(t, err)
	assert.Contains(t, thumbPath, "thumbnails/")

	f, err := store.Open(thumbPath)
	require.NoError(t, err)
	defer f.Close()
	img, _, err := image.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 320, img.Bounds().Dx())
	assert.Equal(t, 160, img.Bounds().Dy())

	svc.DeleteDocument(path, thumbPath)
	assert.False(t, store.Exists(path))
	assert.False(t, store.Exists(thumbPath))
}

func TestImageService_ThumbnailRejectsPDF(t *testing.T) {
	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	svc := NewImageService(store)

	path, err := store.UploadFromBytes([]byte("%PDF-1.4"), "brochure.pdf", "documents")
	require.NoError(t, err)

	_, err = svc.Thumbnail(path)
	assert.Error(t, err)
}
