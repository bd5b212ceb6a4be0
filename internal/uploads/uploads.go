// Package uploads stores bulletin images on disk and hands out stable
// ImageRefs. The rest of the system only ever sees "id maps to a URL";
// bucket or CDN storage would slot in behind the same interface.
package uploads

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/google/uuid"
)

// ErrDisallowedType is returned when an uploaded filename matches none of
// the configured allow patterns.
var ErrDisallowedType = errors.New("uploads: file type not allowed")

// ImageRef is a stable image identifier plus its resolvable URL.
type ImageRef struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// Store writes uploads into a single directory with uuid-based names.
type Store struct {
	dir     string
	allowed []string
}

// NewStore creates an upload store rooted at dir. allowed is a list of
// glob patterns (e.g. "*.jpg") matched against the uploaded filename.
func NewStore(dir string, allowed []string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating uploads directory: %w", err)
	}
	return &Store{dir: dir, allowed: allowed}, nil
}

// Dir returns the storage directory, for mounting a file server.
func (s *Store) Dir() string { return s.dir }

// allowedName checks the original filename against the allow patterns.
func (s *Store) allowedName(name string) bool {
	if len(s.allowed) == 0 {
		return true
	}
	base := strings.ToLower(filepath.Base(name))
	for _, pattern := range s.allowed {
		if matched, err := doublestar.Match(strings.ToLower(pattern), base); err == nil && matched {
			return true
		}
	}
	return false
}

// Save stores one upload and returns its ref. The stored name is a fresh
// uuid plus the original extension; the original name is only used for the
// type check.
func (s *Store) Save(name string, r io.Reader) (*ImageRef, error) {
	if !s.allowedName(name) {
		return nil, ErrDisallowedType
	}

	id := uuid.New().String() + strings.ToLower(filepath.Ext(name))
	f, err := os.Create(filepath.Join(s.dir, id))
	if err != nil {
		return nil, fmt.Errorf("creating upload file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(f.Name())
		return nil, fmt.Errorf("writing upload: %w", err)
	}

	return &ImageRef{ID: id, URL: "/uploads/" + id}, nil
}

// List returns all stored images sorted by id.
func (s *Store) List() ([]ImageRef, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("reading uploads directory: %w", err)
	}

	var refs []ImageRef
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		refs = append(refs, ImageRef{ID: e.Name(), URL: "/uploads/" + e.Name()})
	}
	sort.Slice(refs, func(i, j int) bool { return refs[i].ID < refs[j].ID })
	return refs, nil
}

// Delete removes one stored image. The id is reduced to its base name so a
// crafted id cannot escape the uploads directory.
func (s *Store) Delete(id string) error {
	name := filepath.Base(id)
	if name == "." || name == ".." || name == "/" {
		return fmt.Errorf("uploads: invalid id %q", id)
	}
	if err := os.Remove(filepath.Join(s.dir, name)); err != nil {
		return fmt.Errorf("deleting upload: %w", err)
	}
	return nil
}
