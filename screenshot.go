package zoomer

import (
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Screenshot queues a labeled PNG capture of the next finished frame. Files
// are written to ScreenshotDir with a timestamped name.
func (z *Zoomer) Screenshot(label string) {
	z.screenshotQueue = append(z.screenshotQueue, label)
}

// Snapshot copies the current frame into a new image.
func (z *Zoomer) Snapshot() *image.NRGBA {
	return z.raster.Image()
}

// Image converts the current buffer to an opaque-alpha NRGBA image.
func (r *Raster) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, r.Width, r.Height))
	img.Pix = r.AppendBytes(img.Pix[:0])
	return img
}

// WritePNG writes the current frame to path.
func (z *Zoomer) WritePNG(path string) error {
	return writePNG(path, z.Snapshot())
}

// flushScreenshots writes every queued capture. Called at the end of
// DrawFrame.
func (z *Zoomer) flushScreenshots() {
	if len(z.screenshotQueue) == 0 {
		return
	}
	defer func() { z.screenshotQueue = z.screenshotQueue[:0] }()

	if err := os.MkdirAll(z.ScreenshotDir, 0o755); err != nil {
		Logger().Warn("screenshot: mkdir", slog.String("dir", z.ScreenshotDir), slog.Any("err", err))
		return
	}
	img := z.Snapshot()
	stamp := z.clock.Now().Format("20060102_150405")
	for _, label := range z.screenshotQueue {
		path := filepath.Join(z.ScreenshotDir, fmt.Sprintf("%s_%s.png", stamp, sanitizeLabel(label)))
		if err := writePNG(path, img); err != nil {
			Logger().Warn("screenshot", slog.Any("err", err))
			continue
		}
		Logger().Info("screenshot written", slog.String("path", path))
	}
}

// writePNG encodes an image to a PNG file at the given path.
func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '_', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
