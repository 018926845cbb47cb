// ABOUTME: scon settings loading with global + project YAML deep merge
// ABOUTME: Defaults are filled in first; files override them; CLI flags override files

package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings holds the merged configuration.
type Settings struct {
	FPS            float64 `yaml:"fps,omitempty"`
	FallbackWidth  int     `yaml:"fallback_width,omitempty"`
	FallbackHeight int     `yaml:"fallback_height,omitempty"`
	NonBlocking    bool    `yaml:"non_blocking,omitempty"`
	Force          bool    `yaml:"force,omitempty"`
	PTY            bool    `yaml:"pty,omitempty"`
	Record         string  `yaml:"record,omitempty"`
	SpinnerLabel   string  `yaml:"spinner_label,omitempty"`
	Verbose        bool    `yaml:"verbose,omitempty"`

	// fpsSet records an explicit fps key, so "fps: 0" (unlimited) can
	// override a non-zero default.
	fpsSet bool
}

// Defaults returns the built-in settings.
func Defaults() *Settings {
	return &Settings{
		FPS:            30,
		FallbackWidth:  80,
		FallbackHeight: 24,
		SpinnerLabel:   "running",
	}
}

// Load reads and merges global and project-local settings over the
// defaults. Project settings override global settings. Missing files are
// not an error.
func Load(projectRoot string) (*Settings, error) {
	global, err := loadFile(GlobalConfigFile())
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading global config: %w", err)
	}

	project, err := loadFile(ProjectConfigFile(projectRoot))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	merged := merge(merge(Defaults(), global), project)
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return merged, nil
}

// LoadFrom reads a single settings file over the defaults.
func LoadFrom(path string) (*Settings, error) {
	s, err := loadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	merged := merge(Defaults(), s)
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return merged, nil
}

// loadFile reads Settings from a YAML file. Returns zero Settings and the
// error if the file cannot be read.
func loadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return &Settings{}, err
	}
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	var explicit struct {
		FPS *float64 `yaml:"fps"`
	}
	if err := yaml.Unmarshal(data, &explicit); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	s.fpsSet = explicit.FPS != nil
	return &s, nil
}

// merge deep-merges overlay onto base. Non-zero overlay values win.
func merge(base, overlay *Settings) *Settings {
	if base == nil {
		base = &Settings{}
	}
	if overlay == nil {
		return base
	}

	result := *base

	if overlay.FPS != 0 || overlay.fpsSet {
		result.FPS = overlay.FPS
		result.fpsSet = true
	}
	if overlay.FallbackWidth != 0 {
		result.FallbackWidth = overlay.FallbackWidth
	}
	if overlay.FallbackHeight != 0 {
		result.FallbackHeight = overlay.FallbackHeight
	}
	if overlay.NonBlocking {
		result.NonBlocking = true
	}
	if overlay.Force {
		result.Force = true
	}
	if overlay.PTY {
		result.PTY = true
	}
	if overlay.Record != "" {
		result.Record = overlay.Record
	}
	if overlay.SpinnerLabel != "" {
		result.SpinnerLabel = overlay.SpinnerLabel
	}
	if overlay.Verbose {
		result.Verbose = true
	}

	return &result
}

// Validate rejects settings the console cannot run with.
func (s *Settings) Validate() error {
	if s.FPS < 0 {
		return fmt.Errorf("invalid fps %v: must not be negative", s.FPS)
	}
	if s.FallbackWidth <= 0 || s.FallbackHeight <= 0 {
		return fmt.Errorf("invalid fallback size %dx%d: must be positive", s.FallbackWidth, s.FallbackHeight)
	}
	return nil
}
