package config

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-drift/colorring/pkg/errors"
	"github.com/go-drift/colorring/pkg/graphics"
	"github.com/go-drift/colorring/pkg/progress"
	"github.com/go-drift/colorring/pkg/segment"
)

func TestParse_Full(t *testing.T) {
	data := []byte(`
version: v1.2.0
strokeWidth: 12
autoPlay: true
startAngle: 0
duration: 1500
colors: ["#E91E63", indigo, none, "0x804CAF50"]
finalizeWithPrimaryColor: true
primaryColor: "#0099CC"
`)
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if cfg.StrokeWidth != 12 || !cfg.AutoPlay || cfg.StartAngle != 0 || cfg.Duration != 1500*time.Millisecond {
		t.Errorf("unexpected scalar fields %+v", cfg)
	}
	if !cfg.FinalizeWithPrimaryColor || cfg.PrimaryColor != graphics.Color(0xFF0099CC) {
		t.Errorf("unexpected finalize fields %+v", cfg)
	}
	want := []graphics.Color{
		graphics.Color(0xFFE91E63),
		graphics.RGB(0x4B, 0x00, 0x82),
		graphics.ColorNone,
		graphics.Color(0x804CAF50),
	}
	if len(cfg.Colors) != len(want) {
		t.Fatalf("Colors = %v, want %v", cfg.Colors, want)
	}
	for i := range want {
		if cfg.Colors[i] != want[i] {
			t.Errorf("Colors[%d] = %v, want %v", i, cfg.Colors[i], want[i])
		}
	}
}

func TestParse_EmptyKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("{}"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	def := progress.DefaultConfig()
	if cfg.StrokeWidth != def.StrokeWidth || cfg.StartAngle != def.StartAngle || cfg.Duration != def.Duration ||
		cfg.PrimaryColor != def.PrimaryColor || cfg.Colors != nil || cfg.AutoPlay {
		t.Errorf("Parse({}) = %+v, want defaults %+v", cfg, def)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"bad yaml", "colors: [", "invalid yaml"},
		{"bad version", "version: one", "not a valid semantic version"},
		{"future version", "version: v2.0.0", "not supported"},
		{"zero stroke", "strokeWidth: 0", "strokeWidth must be positive"},
		{"negative duration", "duration: -5", "duration must not be negative"},
		{"unknown color", "colors: [chartreuse-ish]", "colors[0]"},
		{"bad primary", "primaryColor: '#12'", "primaryColor"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q should contain %q", err, tt.want)
			}
			var e *errors.Error
			if !stderrors.As(err, &e) || e.Kind != errors.KindConfig {
				t.Errorf("expected config *errors.Error, got %#v", err)
			}
		})
	}
}

func TestParse_InvalidSegmentCount(t *testing.T) {
	for _, doc := range []string{
		"colors: []",
		"colors: [red, green, blue, white, black]",
	} {
		_, err := Parse([]byte(doc))
		if !stderrors.Is(err, segment.ErrInvalidSegmentCount) {
			t.Errorf("Parse(%q) error = %v, want ErrInvalidSegmentCount", doc, err)
		}
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ring.yaml")
	if err := os.WriteFile(path, []byte("duration: 250\ncolors: [red]\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Duration != 250*time.Millisecond || len(cfg.Colors) != 1 || cfg.Colors[0] != graphics.ColorRed {
		t.Errorf("Load = %+v", cfg)
	}
}

func TestLoad_ErrorCarriesPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ring.yaml")
	if err := os.WriteFile(path, []byte("strokeWidth: -1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	var e *errors.Error
	if !stderrors.As(err, &e) || e.Path != path {
		t.Fatalf("expected *errors.Error with path %q, got %v", path, err)
	}

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	if !stderrors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) = %v, want os.ErrNotExist", err)
	}
}

func TestLoadOptional(t *testing.T) {
	dir := t.TempDir()
	cfg, err := LoadOptional(dir)
	if err != nil {
		t.Fatalf("LoadOptional(empty dir): %v", err)
	}
	if cfg.StrokeWidth != progress.DefaultStrokeWidth {
		t.Errorf("expected defaults, got %+v", cfg)
	}

	if err := os.WriteFile(filepath.Join(dir, FileName), []byte("autoPlay: true\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err = LoadOptional(dir)
	if err != nil {
		t.Fatalf("LoadOptional: %v", err)
	}
	if !cfg.AutoPlay {
		t.Error("expected autoPlay from file")
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    graphics.Color
		wantErr bool
	}{
		{"#FF0000", graphics.ColorRed, false},
		{"#80FF0000", graphics.Color(0x80FF0000), false},
		{"0xFF00FF00", graphics.ColorGreen, false},
		{"  Blue ", graphics.ColorBlue, false},
		{"none", graphics.ColorNone, false},
		{"NONE", graphics.ColorNone, false},
		{"teal", graphics.RGB(0x00, 0x80, 0x80), false},
		{"#12345", 0, true},
		{"0xFF00", 0, true},
		{"#GGGGGG", 0, true},
		{"not-a-color", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFormatColor(t *testing.T) {
	if got := FormatColor(graphics.ColorNone); got != "none" {
		t.Errorf("FormatColor(none) = %q", got)
	}
	if got := FormatColor(graphics.Color(0xFF0099CC)); got != "#FF0099CC" {
		t.Errorf("FormatColor = %q, want #FF0099CC", got)
	}
}
