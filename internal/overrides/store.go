package overrides

import (
	"os"

	"github.com/greenroomhq/greenroom/pkg/constants"
)

// Store abstracts the file operations the override workflow needs. The
// create-only-if-absent contract is an existence check entangled with a
// write, so tests need to drive both branches without touching the real
// file system.
type Store interface {
	// Exists reports whether a file is present at path.
	Exists(path string) (bool, error)

	// ReadFile returns the contents of the file at path.
	ReadFile(path string) ([]byte, error)

	// WriteFile writes data to path, replacing any existing content.
	WriteFile(path string, data []byte) error
}

// OSStore implements Store against the local file system.
type OSStore struct{}

// Exists implements Store.
func (OSStore) Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// ReadFile implements Store.
func (OSStore) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// WriteFile implements Store.
func (OSStore) WriteFile(path string, data []byte) error {
	return os.WriteFile(path, data, constants.FilePermissions)
}
