package overrides

import "os"

// MemStore is an in-memory Store for tests. It lets pipeline and command
// tests drive the create-only-if-absent and malformed-content branches
// without touching the real file system.
type MemStore struct {
	Files map[string][]byte

	// StatErr, when set, is returned from Exists to simulate permission
	// or transport failures around the existence check.
	StatErr error
	// ReadErr, when set, is returned from ReadFile for present files.
	ReadErr error
	// WriteErr, when set, is returned from WriteFile.
	WriteErr error
}

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{Files: make(map[string][]byte)}
}

// Exists implements Store.
func (m *MemStore) Exists(path string) (bool, error) {
	if m.StatErr != nil {
		return false, m.StatErr
	}
	_, ok := m.Files[path]
	return ok, nil
}

// ReadFile implements Store.
func (m *MemStore) ReadFile(path string) ([]byte, error) {
	if m.ReadErr != nil {
		return nil, m.ReadErr
	}
	data, ok := m.Files[path]
	if !ok {
		return nil, os.ErrNotExist
	}
	return data, nil
}

// WriteFile implements Store.
func (m *MemStore) WriteFile(path string, data []byte) error {
	if m.WriteErr != nil {
		return m.WriteErr
	}
	if m.Files == nil {
		m.Files = make(map[string][]byte)
	}
	m.Files[path] = data
	return nil
}
