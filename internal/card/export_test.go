package card

import (
	"bytes"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExporter_Export(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "cards")
	var logs bytes.Buffer
	e := &Exporter{Dir: dir, Scale: 1, Logger: slog.New(slog.NewJSONHandler(&logs, nil))}

	r := scored("bbbbbbbbbb")
	path, err := e.Export(r)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "性原型診斷-照顧者.png"), path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, cardWidth, cfg.Width)

	assert.Contains(t, logs.String(), `"msg":"card exported"`)
	assert.Contains(t, logs.String(), `"archetype":"caretaker"`)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must be cleaned up")
}

func TestExporter_ExportFailure(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	var logs bytes.Buffer
	e := &Exporter{Dir: blocker, Scale: 1, Logger: slog.New(slog.NewJSONHandler(&logs, nil))}

	r := scored("aaaaaaaaaa")
	before := r.Archetype.ID
	_, err := e.Export(r)
	require.Error(t, err)
	assert.Contains(t, logs.String(), `"level":"ERROR"`)
	assert.Equal(t, before, r.Archetype.ID)
}

func TestExporter_BadFont(t *testing.T) {
	e := &Exporter{Dir: t.TempDir(), FontPath: "/nonexistent/font.ttf"}
	_, err := e.Export(scored("aaaaaaaaaa"))
	assert.ErrorContains(t, err, "render card")
}

func TestExporter_ExportJSON(t *testing.T) {
	dir := t.TempDir()
	e := &Exporter{Dir: dir}

	r := scored("cccccccccc")
	path, err := e.ExportJSON(r, NewDocument(r))
	require.NoError(t, err)
	assert.Equal(t, "性原型診斷-受虐者.json", filepath.Base(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"id": "masochist"`)
}
