package storage

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Upload errors returned before anything is written
var (
	ErrFileTooLarge       = errors.New("file exceeds the maximum upload size")
	ErrUnsupportedType    = errors.New("file type is not allowed")
	ErrPathOutsideStorage = errors.New("path escapes the storage directory")
)

// MaxFileSize is the largest accepted upload (10MB)
const MaxFileSize int64 = 10 * 1024 * 1024

var validContentTypes = map[string]bool{
	"application/pdf": true,
	"image/jpeg":      true,
	"image/jpg":       true,
	"image/png":       true,
}

// IsValidContentType checks if the content type is allowed
func IsValidContentType(contentType string) bool {
	return validContentTypes[strings.ToLower(contentType)]
}

// IsImage reports whether contentType is an image we can thumbnail
func IsImage(contentType string) bool {
	return strings.HasPrefix(strings.ToLower(contentType), "image/")
}

// LocalStorage keeps project documents, thumbnails and generated reports on
// the local filesystem. Paths handed out are relative to the base directory.
type LocalStorage struct {
	basePath string
}

// NewLocalStorage creates a new local storage instance
func NewLocalStorage(basePath string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &LocalStorage{basePath: basePath}, nil
}

// Upload validates and saves a multipart file under subDir/yyyy/mm and
// returns its relative path
func (s *LocalStorage) Upload(file multipart.File, header *multipart.FileHeader, subDir string) (string, error) {
	if header.Size > MaxFileSize {
		return "", ErrFileTooLarge
	}
	if !IsValidContentType(header.Header.Get("Content-Type")) {
		return "", ErrUnsupportedType
	}

	filePath, err := s.newPath(subDir, header.Filename)
	if err != nil {
		return "", err
	}

	dst, err := os.Create(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, io.LimitReader(file, MaxFileSize+1)); err != nil {
		os.Remove(filePath)
		return "", fmt.Errorf("failed to save file: %w", err)
	}

	return s.rel(filePath), nil
}

// UploadFromBytes saves bytes to a file and returns its relative path
func (s *LocalStorage) UploadFromBytes(data []byte, filename string, subDir string) (string, error) {
	filePath, err := s.newPath(subDir, filename)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	return s.rel(filePath), nil
}

// Open returns a stored file for reading
func (s *LocalStorage) Open(relativePath string) (*os.File, error) {
	full, err := s.FullPath(relativePath)
	if err != nil {
		return nil, err
	}
	return os.Open(full)
}

// Delete removes a file. A file that is already gone is not an error.
func (s *LocalStorage) Delete(relativePath string) error {
	full, err := s.FullPath(relativePath)
	if err != nil {
		return err
	}
	if err := os.Remove(full); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// Exists checks if a file exists
func (s *LocalStorage) Exists(relativePath string) bool {
	full, err := s.FullPath(relativePath)
	if err != nil {
		return false
	}
	_, err = os.Stat(full)
	return err == nil
}

// FullPath resolves a relative path, refusing anything outside the base
func (s *LocalStorage) FullPath(relativePath string) (string, error) {
	full := filepath.Join(s.basePath, relativePath)
	rel, err := filepath.Rel(s.basePath, full)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", ErrPathOutsideStorage
	}
	return full, nil
}

func (s *LocalStorage) newPath(subDir, filename string) (string, error) {
	dir := filepath.Join(s.basePath, subDir, time.Now().Format("2006/01"))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}
	ext := strings.ToLower(filepath.Ext(filename))
	return filepath.Join(dir, uuid.NewString()+ext), nil
}

func (s *LocalStorage) rel(fullPath string) string {
	relPath, _ := filepath.Rel(s.basePath, fullPath)
	return filepath.ToSlash(relPath)
}
