package export

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/aymanbagabas/go-osc52/v2"
	"github.com/jywlabs/promptbuilder/internal/config"
)

// ErrNoClipboard is returned when no clipboard backend is usable.
var ErrNoClipboard = errors.New("no clipboard available")

// Clipboard hands text to the host clipboard.
type Clipboard interface {
	WriteText(ctx context.Context, text string) error
}

// OSC52Clipboard sets the terminal's clipboard with an OSC 52 escape
// sequence. It works over SSH and inside tmux or screen.
type OSC52Clipboard struct {
	Out io.Writer
	// Term and Tmux default to $TERM and $TMUX when empty.
	Term string
	Tmux string
}

// WriteText writes the escape sequence for text.
func (c *OSC52Clipboard) WriteText(_ context.Context, text string) error {
	if c.Out == nil {
		return ErrNoClipboard
	}

	seq := osc52.New(text)
	switch {
	case firstNonEmpty(c.Tmux, os.Getenv("TMUX")) != "":
		seq = seq.Tmux()
	case strings.HasPrefix(firstNonEmpty(c.Term, os.Getenv("TERM")), "screen"):
		seq = seq.Screen()
	}

	if _, err := seq.WriteTo(c.Out); err != nil {
		return fmt.Errorf("osc52 write: %w", err)
	}
	return nil
}

// clipboardCommand is a platform tool that reads the clipboard text on stdin.
type clipboardCommand struct {
	name string
	args []string
}

// commandWaitDelay bounds how long Run waits on stdin after the tool exits.
const commandWaitDelay = 2 * time.Second

var defaultCommands = []clipboardCommand{
	{name: "pbcopy"},
	{name: "wl-copy"},
	{name: "xclip", args: []string{"-selection", "clipboard"}},
	{name: "xsel", args: []string{"--clipboard", "--input"}},
	{name: "clip.exe"},
}

// CommandClipboard pipes text into the first clipboard tool found on PATH.
type CommandClipboard struct {
	commands []clipboardCommand
}

// WriteText runs the clipboard tool with text on stdin.
func (c *CommandClipboard) WriteText(ctx context.Context, text string) error {
	commands := c.commands
	if commands == nil {
		commands = defaultCommands
	}

	for _, cc := range commands {
		path, err := exec.LookPath(cc.name)
		if err != nil {
			continue
		}
		// xclip and wl-copy leave a child running to own the selection. It
		// must not inherit an output pipe, or Wait blocks until it exits.
		cmd := exec.CommandContext(ctx, path, cc.args...)
		cmd.Stdin = strings.NewReader(text)
		cmd.WaitDelay = commandWaitDelay
		if err := cmd.Run(); err != nil && !errors.Is(err, exec.ErrWaitDelay) {
			return fmt.Errorf("%s failed: %w", cc.name, err)
		}
		return nil
	}
	return ErrNoClipboard
}

// FallbackClipboard tries each clipboard in order until one succeeds.
type FallbackClipboard []Clipboard

// WriteText returns nil on the first success, or all errors joined.
func (f FallbackClipboard) WriteText(ctx context.Context, text string) error {
	if len(f) == 0 {
		return ErrNoClipboard
	}
	var errs []error
	for _, c := range f {
		err := c.WriteText(ctx, text)
		if err == nil {
			return nil
		}
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

type noClipboard struct{}

func (noClipboard) WriteText(context.Context, string) error { return ErrNoClipboard }

// NewClipboard builds the clipboard for a configured method. tty is the
// terminal used for OSC 52; pass nil when output is not a terminal.
func NewClipboard(method string, tty io.Writer) Clipboard {
	switch method {
	case config.ClipboardOSC52:
		return &OSC52Clipboard{Out: tty}
	case config.ClipboardCommand:
		return &CommandClipboard{}
	case config.ClipboardNone:
		return noClipboard{}
	}

	chain := FallbackClipboard{&CommandClipboard{}}
	if tty != nil {
		chain = append(chain, &OSC52Clipboard{Out: tty})
	}
	return chain
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
