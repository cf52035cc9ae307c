package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"

	"github.com/google/uuid"
)

// DiskStorage keeps uploaded blobs under a local media root and hands back
// paths that resolve under the /media/ route.
type DiskStorage struct {
	root string
}

func NewDiskStorage(root string) *DiskStorage {
	return &DiskStorage{root: root}
}

// Save writes the upload under root/subdir with a random filename, keeping
// only the original extension. Returns the path relative to the media root.
func (s *DiskStorage) Save(upload *multipart.FileHeader, subdir string) (string, error) {
	src, err := upload.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	dir := filepath.Join(s.root, subdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create media directory: %w", err)
	}

	name := uuid.New().String() + filepath.Ext(upload.Filename)
	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create media file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to write media file: %w", err)
	}

	return path.Join(subdir, name), nil
}

// URL converts a stored path into the retrievable location.
func (s *DiskStorage) URL(storedPath string) string {
	return path.Join("/media", storedPath)
}

// Root is where the HTTP file server should be anchored.
func (s *DiskStorage) Root() string {
	return s.root
}
