// Package store provides the upload storage capability: save bytes under a
// generated identifier, load them back by identifier. The compositor itself
// is stateless; its caller injects a Store.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// ErrNotFound reports an unknown image identifier.
var ErrNotFound = errors.New("store: image not found")

// ErrBadExtension reports a file extension outside the allow-list.
var ErrBadExtension = errors.New("store: file type not allowed")

// allowedExts are the upload formats the compositor can decode.
var allowedExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
	".tif":  true,
	".tiff": true,
}

// AllowedExt reports whether ext (including the leading dot, any case) is
// an accepted upload extension.
func AllowedExt(ext string) bool {
	return allowedExts[strings.ToLower(ext)]
}

// Store saves and loads uploaded image bytes by opaque identifier.
type Store interface {
	// Save stores data under a fresh identifier carrying the given
	// extension and returns the identifier.
	Save(data []byte, ext string) (string, error)

	// Load returns the bytes stored under id, or ErrNotFound.
	Load(id string) ([]byte, error)

	// Remove deletes the bytes stored under id. Removing an unknown id
	// is not an error.
	Remove(id string) error
}

// newID generates an identifier: a uuid4 hex string plus the normalized
// extension.
func newID(ext string) (string, error) {
	ext = strings.ToLower(ext)
	if !allowedExts[ext] {
		return "", fmt.Errorf("%w: %s", ErrBadExtension, ext)
	}
	u := uuid.New()
	return strings.ReplaceAll(u.String(), "-", "") + ext, nil
}

// validID rejects identifiers that could escape the storage namespace.
func validID(id string) bool {
	if id == "" || id == "." || id == ".." {
		return false
	}
	return !strings.ContainsAny(id, `/\`)
}

// Dir is a directory-backed Store. Files are written under a single
// directory with uuid-hex names; identifiers never contain path separators.
type Dir struct {
	root string
}

// NewDir creates a directory-backed store rooted at dir, creating the
// directory if needed.
func NewDir(dir string) (*Dir, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("store: create upload dir: %w", err)
	}
	return &Dir{root: dir}, nil
}

// Save implements Store.
func (d *Dir) Save(data []byte, ext string) (string, error) {
	id, err := newID(ext)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(filepath.Join(d.root, id), data, 0o640); err != nil {
		return "", fmt.Errorf("store: write upload: %w", err)
	}
	return id, nil
}

// Load implements Store.
func (d *Dir) Load(id string) ([]byte, error) {
	if !validID(id) {
		return nil, ErrNotFound
	}
	data, err := os.ReadFile(filepath.Join(d.root, id))
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("store: read upload: %w", err)
	}
	return data, nil
}

// Remove implements Store.
func (d *Dir) Remove(id string) error {
	if !validID(id) {
		return nil
	}
	err := os.Remove(filepath.Join(d.root, id))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("store: remove upload: %w", err)
	}
	return nil
}

// Mem is an in-memory Store for tests and one-shot tools.
type Mem struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewMem creates an empty in-memory store.
func NewMem() *Mem {
	return &Mem{blobs: make(map[string][]byte)}
}

// Save implements Store.
func (m *Mem) Save(data []byte, ext string) (string, error) {
	id, err := newID(ext)
	if err != nil {
		return "", err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blobs[id] = append([]byte(nil), data...)
	return id, nil
}

// Load implements Store.
func (m *Mem) Load(id string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.blobs[id]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), data...), nil
}

// Remove implements Store.
func (m *Mem) Remove(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.blobs, id)
	return nil
}
