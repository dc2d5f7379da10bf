package cli

import (
	"bytes"
	"context"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/phanxgames/zoomer"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() { zoomer.SetLogger(nil) })
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestSetVersion(t *testing.T) {
	defer SetVersion("dev", "", "")
	SetVersion("1.0.0", "abc123", "2024-01-01")
	if version != "1.0.0" || commit != "abc123" || date != "2024-01-01" {
		t.Errorf("version info = %s %s %s", version, commit, date)
	}
}

func TestPresetsCommand(t *testing.T) {
	out, err := execute(t, "presets")
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range zoomer.Presets() {
		if !strings.Contains(out, name) {
			t.Errorf("output lacks %q:\n%s", name, out)
		}
	}
}

func TestRenderCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cli.png")
	out, err := execute(t, "render", "--width", "24", "--height", "16", "--max-iter", "16", "-o", path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, path) || !strings.Contains(out, "Computed lines") {
		t.Errorf("summary = %q", out)
	}
	if w, h := decodeSize(t, path); w != 24 || h != 16 {
		t.Errorf("output = %dx%d", w, h)
	}
}

func TestPresetsRejectsArgs(t *testing.T) {
	if _, err := execute(t, "presets", "x"); err == nil {
		t.Error("presets accepted an argument")
	}
}

func TestRenderCommandErrors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"bad scale", []string{"render", "--scale", "0"}, "--scale"},
		{"bad preset", []string{"render", "--preset", "nope"}, "unknown preset"},
		{"missing config", []string{"render", "--config", filepath.Join(dir, "none.toml")}, "load config"},
		{"missing script", []string{"render", "--script", filepath.Join(dir, "none.json")}, "read zoom script"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, append(tt.args, "-o", filepath.Join(dir, "x.png"))...)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want it to contain %q", err, tt.want)
			}
		})
	}
}
