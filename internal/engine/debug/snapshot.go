// Package debug writes rendered widget frames to image files.
package debug

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/image/bmp"
)

// SnapshotWriter saves frames as PNG or BMP files.
type SnapshotWriter struct {
	outputDir string
	prefix    string
	now       func() time.Time
}

// NewSnapshotWriter creates a writer that names files <prefix>_<timestamp>.png
// inside outputDir.
func NewSnapshotWriter(outputDir, prefix string) *SnapshotWriter {
	if prefix == "" {
		prefix = "lollipop"
	}
	return &SnapshotWriter{
		outputDir: outputDir,
		prefix:    prefix,
		now:       time.Now,
	}
}

// Save writes img under a generated, timestamped name and returns the path.
func (sw *SnapshotWriter) Save(img image.Image) (string, error) {
	path := sw.GenerateFilename()
	if err := sw.SaveTo(img, path); err != nil {
		return "", err
	}
	return path, nil
}

// SaveTo writes img to path, creating parent directories. A .bmp extension
// selects BMP; anything else is written as PNG.
func (sw *SnapshotWriter) SaveTo(img image.Image, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output dir: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}

	format, encode := "PNG", png.Encode
	if strings.EqualFold(filepath.Ext(path), ".bmp") {
		format, encode = "BMP", bmp.Encode
	}
	if err := encode(file, img); err != nil {
		file.Close()
		return fmt.Errorf("encoding %s: %w", format, err)
	}
	return file.Close()
}

// GenerateFilename returns the path Save would use right now.
func (sw *SnapshotWriter) GenerateFilename() string {
	timestamp := sw.now().Format("2006-01-02_15-04-05")
	filename := fmt.Sprintf("%s_%s.png", sw.prefix, timestamp)
	if sw.outputDir != "" {
		filename = filepath.Join(sw.outputDir, filename)
	}
	return filename
}
