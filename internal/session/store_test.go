package session

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jywlabs/promptbuilder/internal/draft"
	"github.com/jywlabs/promptbuilder/internal/template"
)

func TestStoreLoadMissing(t *testing.T) {
	st := NewStore(t.TempDir())

	s, err := st.Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if s.View != ViewBuilder || !s.Draft.IsEmpty() || s.Assembled != "" || s.MenuOpen {
		t.Errorf("Load() on missing file = %+v, want fresh session", s)
	}
}

func TestStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	st := NewStore(dir)

	s := New()
	_ = s.SetField(draft.FieldRole, "  Act as X\nwith | pipes  ")
	_ = s.SetField(draft.FieldContext, "Y")
	s.Generate()
	s.ToggleMenu()

	if err := st.Save(s); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, template.Dir, template.SessionFile)); err != nil {
		t.Fatalf("session file not written: %v", err)
	}

	got, err := st.Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if *got != *s {
		t.Errorf("Load() = %+v, want %+v", *got, *s)
	}
}

func TestStoreUnknownViewFallsBack(t *testing.T) {
	dir := t.TempDir()
	st := NewStore(dir)
	if err := os.MkdirAll(filepath.Dir(st.Path()), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(st.Path(), []byte("view: settings\ndraft:\n  task: keep me\n"), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := st.Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if s.View != ViewBuilder {
		t.Errorf("View = %q, want builder fallback", s.View)
	}
	if s.Draft.Task != "keep me" {
		t.Errorf("Draft.Task = %q, want keep me", s.Draft.Task)
	}
}

func TestStoreLoadCorrupt(t *testing.T) {
	st := NewStore(t.TempDir())
	if err := os.MkdirAll(filepath.Dir(st.Path()), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(st.Path(), []byte("draft: [\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := st.Load(); err == nil {
		t.Error("Load() on corrupt file should fail")
	}
}

func TestStoreUpdate(t *testing.T) {
	st := NewStore(t.TempDir())

	s, err := st.Update(func(s *Session) error {
		s.LoadExample()
		return nil
	})
	if err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if s.Draft != draft.Example() {
		t.Error("Update() should return the modified session")
	}

	boom := errors.New("boom")
	_, err = st.Update(func(s *Session) error {
		s.ClearAll()
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("Update() error = %v, want boom", err)
	}

	reloaded, err := st.Load()
	if err != nil {
		t.Fatal(err)
	}
	if reloaded.Draft != draft.Example() {
		t.Error("a failed Update() should not save")
	}
}
