package session

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jywlabs/promptbuilder/internal/template"
	"gopkg.in/yaml.v3"
)

// Store keeps a CLI session in .promptbuilder/session.yaml between
// invocations.
type Store struct {
	path string
}

// NewStore returns a Store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{path: filepath.Join(dir, template.Dir, template.SessionFile)}
}

// Path returns the session file location.
func (st *Store) Path() string {
	return st.path
}

// Load reads the session. A missing file yields a fresh session.
func (st *Store) Load() (*Session, error) {
	data, err := os.ReadFile(st.path)
	if err != nil {
		if os.IsNotExist(err) {
			return New(), nil
		}
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	s := New()
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("failed to parse session %s: %w", st.path, err)
	}
	if _, err := ParseView(string(s.View)); err != nil {
		s.View = ViewBuilder
	}
	return s, nil
}

// Save writes the session atomically.
func (st *Store) Save(s *Session) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(st.path), 0755); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}

	tmp := st.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}
	if err := os.Rename(tmp, st.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to write session: %w", err)
	}
	return nil
}

// Update loads the session, applies fn and saves the result.
// Nothing is saved when fn returns an error.
func (st *Store) Update(fn func(*Session) error) (*Session, error) {
	s, err := st.Load()
	if err != nil {
		return nil, err
	}
	if err := fn(s); err != nil {
		return nil, err
	}
	if err := st.Save(s); err != nil {
		return nil, err
	}
	return s, nil
}
