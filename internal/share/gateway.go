package share

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/atotto/clipboard"
	"github.com/gosimple/slug"
	"github.com/mark3labs/yavoy/internal/logger"
)

// Gateway delivers shared content somewhere outside the process.
// Callers do not depend on anything beyond the returned error.
type Gateway interface {
	Name() string
	Share(ctx context.Context, c Content) error
}

// WriterGateway writes the share text to an io.Writer (stdout by default).
type WriterGateway struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterGateway returns a gateway writing to w, or os.Stdout when w is nil.
func NewWriterGateway(w io.Writer) *WriterGateway {
	if w == nil {
		w = os.Stdout
	}
	return &WriterGateway{w: w}
}

func (g *WriterGateway) Name() string { return "stdout" }

// Share implements Gateway.
func (g *WriterGateway) Share(_ context.Context, c Content) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, err := io.WriteString(g.w, c.Text); err != nil {
		return fmt.Errorf("writing share text: %w", err)
	}
	return nil
}

// ClipboardGateway copies the share text to the system clipboard.
type ClipboardGateway struct {
	write func(string) error
}

// NewClipboardGateway returns a gateway backed by the system clipboard.
func NewClipboardGateway() *ClipboardGateway {
	return &ClipboardGateway{write: clipboard.WriteAll}
}

func (g *ClipboardGateway) Name() string { return "clipboard" }

// Share implements Gateway.
func (g *ClipboardGateway) Share(_ context.Context, c Content) error {
	if clipboard.Unsupported {
		return fmt.Errorf("clipboard is not supported on this system")
	}
	if err := g.write(c.Text); err != nil {
		return fmt.Errorf("copying to clipboard: %w", err)
	}
	return nil
}

// FileGateway writes each share to its own text file under Dir.
type FileGateway struct {
	Dir string
}

func (g *FileGateway) Name() string { return "file" }

// Path returns the file a share is written to, e.g. shares/wedding-2025-07-06-1900-1a2b3c4d.txt.
func (g *FileGateway) Path(c Content) string {
	name := slug.Make(fmt.Sprintf("%s %s", c.EventLabel, c.RequestedAt.Format("2006-01-02 1504")))
	if name == "" {
		name = "share"
	}
	id := c.ID
	if len(id) > 8 {
		id = id[:8]
	}
	if id != "" {
		name += "-" + id
	}
	return filepath.Join(g.Dir, name+".txt")
}

// Share implements Gateway.
func (g *FileGateway) Share(_ context.Context, c Content) error {
	if err := os.MkdirAll(g.Dir, 0755); err != nil {
		return fmt.Errorf("creating share directory: %w", err)
	}
	path := g.Path(c)
	logger.Debug("Writing share to %s", path)
	if err := os.WriteFile(path, []byte(c.Text), 0644); err != nil {
		return fmt.Errorf("writing share file: %w", err)
	}
	return nil
}

// Recorder receives the outcome of every share attempt.
type Recorder interface {
	RecordShare(target string, err error)
}

type instrumented struct {
	Gateway
	rec Recorder
}

// Instrument wraps g so each attempt is logged and reported to rec.
func Instrument(g Gateway, rec Recorder) Gateway {
	return &instrumented{Gateway: g, rec: rec}
}

func (i *instrumented) Share(ctx context.Context, c Content) error {
	err := i.Gateway.Share(ctx, c)
	if err != nil {
		logger.Warn("Share via %s failed: %v", i.Name(), err)
	} else {
		logger.Info("Shared result %s via %s", c.ID, i.Name())
	}
	if i.rec != nil {
		i.rec.RecordShare(i.Name(), err)
	}
	return err
}
