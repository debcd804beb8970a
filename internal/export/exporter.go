package export

import (
	"context"

	"github.com/jywlabs/promptbuilder/internal/template"
	"go.uber.org/zap"
)

// Exporter hands prompts to the clipboard or to a file.
//
// Copy is fire-and-forget: failures are logged at debug level and never
// returned. TryCopy exposes the error. TryDownload returns its error since a
// saved file is something the caller asked for.
type Exporter struct {
	clipboard Clipboard
	saver     Saver
	fileName  string
	log       *zap.Logger
}

// New creates an Exporter. An empty fileName means ai-prompt.txt and a nil
// logger discards.
func New(clipboard Clipboard, saver Saver, fileName string, log *zap.Logger) *Exporter {
	if fileName == "" {
		fileName = template.DownloadFile
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Exporter{
		clipboard: clipboard,
		saver:     saver,
		fileName:  fileName,
		log:       log,
	}
}

// FileName returns the name used for downloads.
func (e *Exporter) FileName() string {
	return e.fileName
}

// TryCopy writes text to the clipboard and returns the outcome.
func (e *Exporter) TryCopy(ctx context.Context, text string) error {
	if e.clipboard == nil {
		return ErrNoClipboard
	}
	return e.clipboard.WriteText(ctx, text)
}

// Copy writes text to the clipboard. A failure is logged and swallowed;
// the result only says whether the text arrived.
func (e *Exporter) Copy(ctx context.Context, text string) bool {
	if err := e.TryCopy(ctx, text); err != nil {
		e.log.Debug("clipboard write failed", zap.Error(err), zap.Int("bytes", len(text)))
		return false
	}
	e.log.Debug("copied to clipboard", zap.Int("bytes", len(text)))
	return true
}

// CopyTemplate copies the assistant template.
func (e *Exporter) CopyTemplate(ctx context.Context) bool {
	return e.Copy(ctx, template.AssistantTemplate)
}

// TryDownload saves content under the download file name and returns the path.
func (e *Exporter) TryDownload(ctx context.Context, content string) (string, error) {
	path, err := e.saver.Save(ctx, e.fileName, content)
	if err != nil {
		return "", err
	}
	e.log.Info("prompt saved", zap.String("path", path), zap.Int("bytes", len(content)))
	return path, nil
}
