package export

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/jywlabs/promptbuilder/internal/config"
)

func TestOSC52Clipboard(t *testing.T) {
	tests := []struct {
		name       string
		term       string
		tmux       string
		wantPrefix string
	}{
		{"plain terminal", "xterm-256color", "", "\x1b]52;c;"},
		{"tmux", "xterm-256color", "/tmp/tmux-1000/default,1,0", "\x1bPtmux;"},
		{"screen", "screen-256color", "", "\x1bP"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.tmux == "" {
				t.Setenv("TMUX", "")
			}
			var buf bytes.Buffer
			c := &OSC52Clipboard{Out: &buf, Term: tt.term, Tmux: tt.tmux}

			if err := c.WriteText(context.Background(), "Act as X"); err != nil {
				t.Fatalf("WriteText() error: %v", err)
			}

			got := buf.String()
			if !strings.HasPrefix(got, tt.wantPrefix) {
				t.Errorf("sequence %q does not start with %q", got, tt.wantPrefix)
			}
			encoded := base64.StdEncoding.EncodeToString([]byte("Act as X"))
			if !strings.Contains(got, encoded) {
				t.Errorf("sequence %q does not carry base64 payload %q", got, encoded)
			}
		})
	}
}

func TestOSC52ClipboardNoWriter(t *testing.T) {
	c := &OSC52Clipboard{}
	if err := c.WriteText(context.Background(), "x"); !errors.Is(err, ErrNoClipboard) {
		t.Errorf("WriteText() error = %v, want ErrNoClipboard", err)
	}
}

func TestCommandClipboard(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses a shell script as a fake clipboard tool")
	}

	dir := t.TempDir()
	out := filepath.Join(dir, "clipboard.txt")
	script := "#!/bin/sh\ncat > " + out + "\n"
	if err := os.WriteFile(filepath.Join(dir, "fakecopy"), []byte(script), 0755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))

	c := &CommandClipboard{commands: []clipboardCommand{
		{name: "definitely-not-installed"},
		{name: "fakecopy"},
	}}
	if err := c.WriteText(context.Background(), "Act as X\n\nY"); err != nil {
		t.Fatalf("WriteText() error: %v", err)
	}

	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "Act as X\n\nY" {
		t.Errorf("clipboard got %q", got)
	}
}

func TestCommandClipboardDoesNotWaitForBackgroundChild(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses a shell script as a fake clipboard tool")
	}

	// Behaves like xclip: consume stdin, leave a child holding the selection.
	dir := t.TempDir()
	script := "#!/bin/sh\ncat >/dev/null\nsleep 5 &\nexit 0\n"
	if err := os.WriteFile(filepath.Join(dir, "forkcopy"), []byte(script), 0755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))

	c := &CommandClipboard{commands: []clipboardCommand{{name: "forkcopy"}}}

	start := time.Now()
	if err := c.WriteText(context.Background(), "Act as X"); err != nil {
		t.Fatalf("WriteText() error: %v", err)
	}
	if elapsed := time.Since(start); elapsed > 3*time.Second {
		t.Errorf("WriteText() took %v, should return once the tool exits", elapsed)
	}
}

func TestCommandClipboardToolFails(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses a shell script as a fake clipboard tool")
	}

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "badcopy"), []byte("#!/bin/sh\ncat >/dev/null\nexit 3\n"), 0755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))

	c := &CommandClipboard{commands: []clipboardCommand{{name: "badcopy"}}}
	if err := c.WriteText(context.Background(), "x"); err == nil {
		t.Error("WriteText() should report a failing tool")
	}
}

func TestCommandClipboardNoneFound(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	c := &CommandClipboard{commands: []clipboardCommand{{name: "nope"}}}
	if err := c.WriteText(context.Background(), "x"); !errors.Is(err, ErrNoClipboard) {
		t.Errorf("WriteText() error = %v, want ErrNoClipboard", err)
	}
}

type stubClipboard struct {
	err   error
	calls int
}

func (s *stubClipboard) WriteText(context.Context, string) error {
	s.calls++
	return s.err
}

func TestFallbackClipboard(t *testing.T) {
	failing := &stubClipboard{err: errors.New("first failed")}
	working := &stubClipboard{}
	unused := &stubClipboard{}

	f := FallbackClipboard{failing, working, unused}
	if err := f.WriteText(context.Background(), "x"); err != nil {
		t.Fatalf("WriteText() error: %v", err)
	}
	if failing.calls != 1 || working.calls != 1 || unused.calls != 0 {
		t.Errorf("calls = %d/%d/%d, want 1/1/0", failing.calls, working.calls, unused.calls)
	}

	allFail := FallbackClipboard{&stubClipboard{err: ErrNoClipboard}, &stubClipboard{err: errors.New("other")}}
	if err := allFail.WriteText(context.Background(), "x"); !errors.Is(err, ErrNoClipboard) {
		t.Errorf("WriteText() error = %v, want joined ErrNoClipboard", err)
	}

	if err := (FallbackClipboard{}).WriteText(context.Background(), "x"); !errors.Is(err, ErrNoClipboard) {
		t.Errorf("empty chain error = %v, want ErrNoClipboard", err)
	}
}

func TestNewClipboard(t *testing.T) {
	var tty bytes.Buffer

	if _, ok := NewClipboard(config.ClipboardOSC52, &tty).(*OSC52Clipboard); !ok {
		t.Error("osc52 method should build an OSC52Clipboard")
	}
	if _, ok := NewClipboard(config.ClipboardCommand, nil).(*CommandClipboard); !ok {
		t.Error("command method should build a CommandClipboard")
	}
	if err := NewClipboard(config.ClipboardNone, &tty).WriteText(context.Background(), "x"); !errors.Is(err, ErrNoClipboard) {
		t.Errorf("none method error = %v, want ErrNoClipboard", err)
	}

	auto, ok := NewClipboard(config.ClipboardAuto, &tty).(FallbackClipboard)
	if !ok || len(auto) != 2 {
		t.Errorf("auto with a terminal should chain command and osc52, got %#v", auto)
	}
	auto, ok = NewClipboard(config.ClipboardAuto, nil).(FallbackClipboard)
	if !ok || len(auto) != 1 {
		t.Errorf("auto without a terminal should only use commands, got %#v", auto)
	}
}
