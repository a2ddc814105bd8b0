package services

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/propease/propease-api/internal/storage"
	"github.com/propease/propease-api/pkg/logger"
)

// Thumbnail bounds; the aspect ratio is kept
const (
	thumbWidth  = 320
	thumbHeight = 320
)

// ImageService stores uploaded project documents and makes thumbnails of
// the ones that are images (floor plans, letter heads)
type ImageService struct {
	storage *storage.LocalStorage
}

func NewImageService(storage *storage.LocalStorage) *ImageService {
	return &ImageService{storage: storage}
}

// SaveDocument stores an upload under documents/ and returns its path and,
// for images, the path of its thumbnail. A thumbnail that cannot be made is
// logged and skipped.
func (s *ImageService) SaveDocument(file multipart.File, header *multipart.FileHeader) (path, thumbnailPath string, err error) {
	path, err = s.storage.Upload(file, header, "documents")
	if err != nil {
		return "", "", err
	}

	if storage.IsImage(header.Header.Get("Content-Type")) {
		thumbnailPath, err = s.Thumbnail(path)
		if err != nil {
			logger.Warn("failed to create thumbnail", "path", path, "error", err)
			thumbnailPath = ""
		}
	}
	return path, thumbnailPath, nil
}

// Thumbnail reads a stored image and saves a scaled down copy next to the
// other thumbnails, returning its relative path
func (s *ImageService) Thumbnail(relativePath string) (string, error) {
	format, err := imaging.FormatFromFilename(relativePath)
	if err != nil {
		return "", fmt.Errorf("unsupported image format: %w", err)
	}

	src, err := s.storage.Open(relativePath)
	if err != nil {
		return "", err
	}
	defer src.Close()

	img, err := imaging.Decode(src, imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}

	thumb := imaging.Fit(img, thumbWidth, thumbHeight, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, thumb, format, imaging.JPEGQuality(85)); err != nil {
		return "", fmt.Errorf("failed to encode thumbnail: %w", err)
	}

	name := strings.TrimSuffix(filepath.Base(relativePath), filepath.Ext(relativePath)) + "_thumb" + filepath.Ext(relativePath)
	return s.storage.UploadFromBytes(buf.Bytes(), name, "thumbnails")
}

// DeleteDocument removes a stored document and its thumbnail
func (s *ImageService) DeleteDocument(path, thumbnailPath string) {
	for _, p := range []string{path, thumbnailPath} {
		if p == "" {
			continue
		}
		if err := s.storage.Delete(p); err != nil {
			logger.Warn("failed to delete stored file", "path", p, "error", err)
		}
	}
}
