package files

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Store writes uploaded files under a media root directory. Paths returned
// are relative to the root and safe to persist in the database.
type Store interface {
	// Save writes the upload into subdir and returns the stored relative path.
	Save(subdir, filename string, r io.Reader) (string, error)
	// Remove deletes a previously stored file. Missing files are not an error.
	Remove(relPath string) error
}

// LocalStore implements Store on the local filesystem.
type LocalStore struct {
	root string
}

// NewLocalStore creates a store rooted at dir, creating it if needed.
func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create media root: %w", err)
	}
	return &LocalStore{root: dir}, nil
}

// Root returns the media root directory.
func (s *LocalStore) Root() string {
	return s.root
}

// Save writes the upload to disk under a random name that keeps the original
// extension. The write goes to a temp file first and is renamed into place,
// so a half-written file is never visible under its final name.
// PRE: subdir contains no path separators; r is readable
// POST: Returns the relative path of the stored file
func (s *LocalStore) Save(subdir, filename string, r io.Reader) (string, error) {
	if strings.ContainsAny(subdir, `/\`) {
		return "", fmt.Errorf("invalid subdirectory %q", subdir)
	}
	dir := filepath.Join(s.root, subdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", dir, err)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	name := uuid.New().String() + ext
	dst := filepath.Join(dir, name)

	tmp, err := os.CreateTemp(dir, ".upload-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return "", fmt.Errorf("failed to write upload: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("failed to close upload: %w", err)
	}
	if err := os.Rename(tmp.Name(), dst); err != nil {
		return "", fmt.Errorf("failed to place upload: %w", err)
	}

	return filepath.ToSlash(filepath.Join(subdir, name)), nil
}

// Remove deletes a stored file by its relative path.
// POST: The file is gone; a missing file is not an error
func (s *LocalStore) Remove(relPath string) error {
	if relPath == "" {
		return nil
	}
	clean := filepath.Clean(relPath)
	if strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return fmt.Errorf("invalid media path %q", relPath)
	}
	err := os.Remove(filepath.Join(s.root, clean))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
