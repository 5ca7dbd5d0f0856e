package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ObjectPrefix is the bucket folder product images live under.
const ObjectPrefix = "product-images"

// Store is the object storage boundary: upload returns a public URL, remove
// is best-effort.
type Store interface {
	Upload(ctx context.Context, filename string, r io.Reader) (publicURL string, err error)
	Remove(ctx context.Context, objectPath string) error
}

// DiskStore keeps objects on the local filesystem and serves them through the
// router's static /storage route.
type DiskStore struct {
	root    string
	baseURL string
}

// NewDiskStore creates the backing directory if needed.
func NewDiskStore(root, publicBaseURL string) (*DiskStore, error) {
	if err := os.MkdirAll(filepath.Join(root, ObjectPrefix), 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}
	return &DiskStore{
		root:    root,
		baseURL: strings.TrimRight(publicBaseURL, "/"),
	}, nil
}

// Upload stores the file under a randomized name, keeping only the original
// extension, and returns the public URL.
func (s *DiskStore) Upload(ctx context.Context, filename string, r io.Reader) (string, error) {
	name := uuid.New().String()
	if ext := path.Ext(filename); ext != "" {
		name += ext
	}
	objectPath := path.Join(ObjectPrefix, name)

	f, err := os.Create(filepath.Join(s.root, ObjectPrefix, name))
	if err != nil {
		return "", fmt.Errorf("create object: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("write object: %w", err)
	}
	return s.baseURL + "/storage/" + objectPath, nil
}

// Remove deletes an object. A missing object is not an error.
func (s *DiskStore) Remove(ctx context.Context, objectPath string) error {
	err := os.Remove(filepath.Join(s.root, filepath.FromSlash(objectPath)))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove object: %w", err)
	}
	return nil
}

// ObjectPath maps a public image URL back to the object key, using the last
// path segment the way the URLs are minted above.
func ObjectPath(publicURL string) string {
	if publicURL == "" {
		return ""
	}
	name := path.Base(publicURL)
	if name == "." || name == "/" {
		return ""
	}
	return path.Join(ObjectPrefix, name)
}
