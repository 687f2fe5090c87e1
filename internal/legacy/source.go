package legacy

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Source reads the two well-known legacy keys and clears them once their
// contents have been migrated.
type Source interface {
	// Items returns the legacy item list. present is false when the key
	// does not exist; a non-nil error means the key exists but could not
	// be parsed.
	Items() (items []Item, present bool, err error)
	Contacts() (contacts []ContactRequest, present bool, err error)
	// Clear removes both keys. Irreversible.
	Clear() error
}

// FileSource is a Source over a local data directory holding one JSON
// file per key.
type FileSource struct {
	dir string
}

func NewFileSource(dir string) *FileSource {
	return &FileSource{dir: dir}
}

func (s *FileSource) Items() ([]Item, bool, error) {
	var items []Item
	present, err := s.readKey(ItemsKey, &items)
	return items, present, err
}

func (s *FileSource) Contacts() ([]ContactRequest, bool, error) {
	var contacts []ContactRequest
	present, err := s.readKey(ContactsKey, &contacts)
	return contacts, present, err
}

func (s *FileSource) Clear() error {
	var firstErr error
	for _, key := range []string{ItemsKey, ContactsKey} {
		if err := os.Remove(s.keyPath(key)); err != nil && !errors.Is(err, fs.ErrNotExist) && firstErr == nil {
			firstErr = fmt.Errorf("failed to clear legacy key %s: %w", key, err)
		}
	}
	return firstErr
}

func (s *FileSource) readKey(key string, out any) (bool, error) {
	data, err := os.ReadFile(s.keyPath(key))
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return true, fmt.Errorf("failed to read legacy key %s: %w", key, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return true, fmt.Errorf("failed to parse legacy key %s: %w", key, err)
	}
	return true, nil
}

func (s *FileSource) keyPath(key string) string {
	return filepath.Join(s.dir, key+".json")
}
