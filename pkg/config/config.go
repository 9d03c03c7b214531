// Package config loads indicator settings from YAML.
//
// A config file looks like:
//
//	version: v1
//	strokeWidth: 8
//	autoPlay: true
//	startAngle: -90
//	duration: 60000
//	colors: ["#E91E63", "indigo", none, "0xFF4CAF50"]
//	finalizeWithPrimaryColor: true
//	primaryColor: "#0099CC"
//
// Every key is optional; missing keys keep progress.DefaultConfig values.
package config

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/colorring/pkg/errors"
	"github.com/go-drift/colorring/pkg/graphics"
	"github.com/go-drift/colorring/pkg/progress"
	"github.com/go-drift/colorring/pkg/segment"
)

// FileName is the config file looked up by LoadOptional.
const FileName = "colorring.yaml"

// SupportedMajor is the schema major version this package reads.
const SupportedMajor = "v1"

// File mirrors the YAML document. Pointer fields distinguish unset keys
// from zero values.
type File struct {
	Version                  string   `yaml:"version,omitempty"`
	StrokeWidth              *int     `yaml:"strokeWidth,omitempty"`
	AutoPlay                 *bool    `yaml:"autoPlay,omitempty"`
	StartAngle               *float64 `yaml:"startAngle,omitempty"`
	Duration                 *int     `yaml:"duration,omitempty"`
	Colors                   []string `yaml:"colors,omitempty"`
	FinalizeWithPrimaryColor *bool    `yaml:"finalizeWithPrimaryColor,omitempty"`
	PrimaryColor             string   `yaml:"primaryColor,omitempty"`
}

// Parse decodes a YAML document into an indicator config.
func Parse(data []byte) (progress.Config, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return progress.Config{}, errors.Wrap("config.Parse", errors.KindConfig, fmt.Errorf("invalid yaml: %w", err))
	}
	cfg, err := f.Resolve()
	if err != nil {
		return progress.Config{}, errors.Wrap("config.Parse", errors.KindConfig, err)
	}
	return cfg, nil
}

// Load reads and parses the config file at path.
func Load(path string) (progress.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return progress.Config{}, &errors.Error{Op: "config.Load", Kind: errors.KindConfig, Path: path, Err: err}
	}
	cfg, err := Parse(data)
	if err != nil {
		var e *errors.Error
		if stderrors.As(err, &e) {
			e.Path = path
		}
		return progress.Config{}, err
	}
	return cfg, nil
}

// LoadOptional reads colorring.yaml from dir if present, returning
// progress.DefaultConfig when it does not exist.
func LoadOptional(dir string) (progress.Config, error) {
	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); stderrors.Is(err, os.ErrNotExist) {
		return progress.DefaultConfig(), nil
	}
	return Load(path)
}

// Resolve applies the file on top of progress.DefaultConfig.
func (f *File) Resolve() (progress.Config, error) {
	if err := checkVersion(f.Version); err != nil {
		return progress.Config{}, err
	}

	cfg := progress.DefaultConfig()
	if f.StrokeWidth != nil {
		if *f.StrokeWidth <= 0 {
			return progress.Config{}, fmt.Errorf("strokeWidth must be positive (got %d)", *f.StrokeWidth)
		}
		cfg.StrokeWidth = *f.StrokeWidth
	}
	if f.AutoPlay != nil {
		cfg.AutoPlay = *f.AutoPlay
	}
	if f.StartAngle != nil {
		cfg.StartAngle = *f.StartAngle
	}
	if f.Duration != nil {
		if *f.Duration < 0 {
			return progress.Config{}, fmt.Errorf("duration must not be negative (got %d)", *f.Duration)
		}
		cfg.Duration = time.Duration(*f.Duration) * time.Millisecond
	}
	if f.FinalizeWithPrimaryColor != nil {
		cfg.FinalizeWithPrimaryColor = *f.FinalizeWithPrimaryColor
	}
	if f.PrimaryColor != "" {
		c, err := ParseColor(f.PrimaryColor)
		if err != nil {
			return progress.Config{}, fmt.Errorf("primaryColor: %w", err)
		}
		cfg.PrimaryColor = c
	}

	// A present but empty list stays non-nil so segment.Build rejects it.
	if f.Colors != nil {
		cfg.Colors = make([]graphics.Color, 0, len(f.Colors))
		for i, s := range f.Colors {
			c, err := ParseColor(s)
			if err != nil {
				return progress.Config{}, fmt.Errorf("colors[%d]: %w", i, err)
			}
			cfg.Colors = append(cfg.Colors, c)
		}
		if _, err := segment.Build(cfg.Colors, cfg.StartAngle); err != nil {
			return progress.Config{}, err
		}
	}
	return cfg, nil
}

func checkVersion(v string) error {
	if v == "" {
		return nil
	}
	if !semver.IsValid(v) {
		return fmt.Errorf("version %q is not a valid semantic version", v)
	}
	if major := semver.Major(v); major != SupportedMajor {
		return fmt.Errorf("version %s is not supported (want %s.x)", v, SupportedMajor)
	}
	return nil
}
