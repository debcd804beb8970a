package session

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jywlabs/promptbuilder/internal/draft"
)

// ErrUnknownView is returned for a view name other than builder or output.
var ErrUnknownView = errors.New("unknown view")

// View selects which half of the tool is shown.
type View string

const (
	ViewBuilder View = "builder"
	ViewOutput  View = "output"
)

// ParseView resolves a view name.
func ParseView(s string) (View, error) {
	switch View(strings.ToLower(strings.TrimSpace(s))) {
	case ViewBuilder:
		return ViewBuilder, nil
	case ViewOutput:
		return ViewOutput, nil
	}
	return "", fmt.Errorf("%w %q (want builder or output)", ErrUnknownView, s)
}

// Session is the view/state controller: the current draft, the prompt
// assembled by the last Generate, the active view and the menu flag.
//
// Assembled is not kept in sync with Draft; it reflects the draft as of
// the last Generate.
type Session struct {
	Draft     draft.Draft `yaml:"draft" json:"draft"`
	Assembled string      `yaml:"assembled" json:"assembled"`
	View      View        `yaml:"view" json:"view"`
	MenuOpen  bool        `yaml:"menuOpen" json:"menuOpen"`
}

// New returns an empty session on the builder view.
func New() *Session {
	return &Session{View: ViewBuilder}
}

// SetField stores value verbatim in the draft.
func (s *Session) SetField(f draft.Field, value string) error {
	return s.Draft.Set(f, value)
}

// Generate assembles the current draft and switches to the output view.
func (s *Session) Generate() string {
	s.Assembled = draft.Assemble(s.Draft)
	s.View = ViewOutput
	return s.Assembled
}

// ClearAll empties the draft and the assembled prompt.
// The view and menu are left as they are.
func (s *Session) ClearAll() {
	s.Draft = draft.Draft{}
	s.Assembled = ""
}

// LoadExample replaces the draft with the fixed example. It neither
// regenerates nor changes the view.
func (s *Session) LoadExample() {
	s.Draft = draft.Example()
}

// MenuLoadExample is LoadExample triggered from the menu, which closes it.
func (s *Session) MenuLoadExample() {
	s.LoadExample()
	s.CloseMenu()
}

// MenuClearAll is ClearAll triggered from the menu, which closes it.
func (s *Session) MenuClearAll() {
	s.ClearAll()
	s.CloseMenu()
}

// SetView switches the active view without regenerating.
func (s *Session) SetView(v View) error {
	if v != ViewBuilder && v != ViewOutput {
		return fmt.Errorf("%w %q", ErrUnknownView, string(v))
	}
	s.View = v
	return nil
}

// ToggleMenu flips the menu flag.
func (s *Session) ToggleMenu() {
	s.MenuOpen = !s.MenuOpen
}

// CloseMenu hides the menu.
func (s *Session) CloseMenu() {
	s.MenuOpen = false
}

// HasOutput reports whether there is an assembled prompt to copy or save.
func (s *Session) HasOutput() bool {
	return s.Assembled != ""
}
