package cmd

import (
	"io"
	"os"
	"path/filepath"

	"github.com/jywlabs/promptbuilder/internal/config"
	"github.com/jywlabs/promptbuilder/internal/display"
	"github.com/jywlabs/promptbuilder/internal/export"
	"github.com/jywlabs/promptbuilder/internal/logger"
	"github.com/jywlabs/promptbuilder/internal/output"
	"github.com/jywlabs/promptbuilder/internal/session"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app bundles what every command needs, rooted at one workspace directory.
type app struct {
	dir      string
	cfg      *config.Config
	log      *zap.Logger
	store    *session.Store
	exporter *export.Exporter
	display  *display.Display
	printer  *output.Printer
	out      io.Writer
}

// newApp wires config, logging, session storage and export for dir.
// tty receives OSC 52 clipboard sequences; nil disables them.
func newApp(dir string, out, errOut, tty io.Writer) (*app, error) {
	cfg, err := config.Load(dir)
	if err != nil {
		return nil, err
	}

	logCfg := cfg.Log
	if logCfg.File != "" {
		logCfg.File = resolve(dir, logCfg.File)
	}
	log, err := logger.New(logCfg, errOut)
	if err != nil {
		return nil, err
	}

	saver := &export.FileSaver{Dir: resolve(dir, cfg.Export.Dir)}
	clip := export.NewClipboard(cfg.Clipboard.Method, tty)

	return &app{
		dir:      dir,
		cfg:      cfg,
		log:      log,
		store:    session.NewStore(dir),
		exporter: export.New(clip, saver, cfg.Export.FileName, log),
		display:  display.NewDisplay(out),
		printer:  output.New(out),
		out:      out,
	}, nil
}

// openApp builds the app for a cobra command.
func openApp(cmd *cobra.Command) (*app, error) {
	out := cmd.OutOrStdout()
	var tty io.Writer
	if f, ok := out.(*os.File); ok && display.IsTerminal(f) {
		tty = f
	}
	return newApp(dirFlag, out, cmd.ErrOrStderr(), tty)
}

func (a *app) close() {
	_ = a.log.Sync()
}

func resolve(dir, p string) string {
	if p == "" {
		return dir
	}
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}
