package card

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/abhisek/archetype/internal/quiz"
)

// Exporter saves result cards into a directory.
type Exporter struct {
	Dir      string
	Scale    int
	FontPath string
	Logger   *slog.Logger
}

func (e *Exporter) logger() *slog.Logger {
	if e.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return e.Logger
}

// Export renders r as PNG and writes it into Dir, returning the file path.
// Errors are logged and returned; r is left untouched.
func (e *Exporter) Export(r quiz.Result) (string, error) {
	log := e.logger().With("archetype", r.Archetype.ID, "format", "png")

	img, err := Render(r, Options{Scale: e.Scale, FontPath: e.FontPath})
	if err != nil {
		log.Error("render card failed", "error", err)
		return "", fmt.Errorf("render card: %w", err)
	}

	var buf bytes.Buffer
	if err := EncodePNG(&buf, img); err != nil {
		log.Error("encode card failed", "error", err)
		return "", err
	}

	path, err := e.write(FileName(r, "png"), buf.Bytes())
	if err != nil {
		log.Error("write card failed", "error", err)
		return "", err
	}
	log.Info("card exported", "path", path, "bytes", buf.Len())
	return path, nil
}

// ExportJSON writes doc into Dir as JSON, returning the file path.
func (e *Exporter) ExportJSON(r quiz.Result, doc Document) (string, error) {
	log := e.logger().With("archetype", r.Archetype.ID, "format", "json")

	var buf bytes.Buffer
	if err := WriteJSON(&buf, doc); err != nil {
		log.Error("encode document failed", "error", err)
		return "", fmt.Errorf("encode document: %w", err)
	}

	path, err := e.write(FileName(r, "json"), buf.Bytes())
	if err != nil {
		log.Error("write document failed", "error", err)
		return "", err
	}
	log.Info("document exported", "path", path, "bytes", buf.Len())
	return path, nil
}

// write stores data under name in Dir through a temp file and rename. A
// failed write leaves no partial file.
func (e *Exporter) write(name string, data []byte) (string, error) {
	dir := e.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".card-*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close temp file: %w", err)
	}

	path := filepath.Join(dir, name)
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("rename to %s: %w", path, err)
	}
	if err := os.Chmod(path, 0o644); err != nil {
		return "", fmt.Errorf("chmod %s: %w", path, err)
	}
	return path, nil
}
