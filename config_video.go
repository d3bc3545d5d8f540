// config_video.go - Persisted display and input settings

/*
 ██▓ ███▄    █ ▄▄▄█████▓ █    ██  ██▓▄▄▄█████▓ ██▓ ▒█████   ███▄    █    ▓█████  ███▄    █   ▄████  ██▓ ███▄    █ ▓█████
▓██▒ ██ ▀█   █ ▓  ██▒ ▓▒ ██  ▓██▒▓██▒▓  ██▒ ▓▒▓██▒▒██▒  ██▒ ██ ▀█   █    ▓█   ▀  ██ ▀█   █  ██▒ ▀█▒▓██▒ ██ ▀█   █ ▓█   ▀
▒██▒▓██  ▀█ ██▒▒ ▓██░ ▒░▓██  ▒██░▒██▒▒ ▓██░ ▒░▒██▒▒██░  ██▒▓██  ▀█ ██▒   ▒███   ▓██  ▀█ ██▒▒██░▄▄▄░▒██▒▓██  ▀█ ██▒▒███
░██░▓██▒  ▐▌██▒░ ▓██▓ ░ ▓▓█  ░██░░██░░ ▓██▓ ░ ░██░▒██   ██░▓██▒  ▐▌██▒   ▒▓█  ▄ ▓██▒  ▐▌██▒░▓█  ██▓░██░▓██▒  ▐▌██▒▒▓█  ▄
░██░▒██░   ▓██░  ▒██▒ ░ ▒▒█████▓ ░██░  ▒██▒ ░ ░██░░ ████▓▒░▒██░   ▓██░   ░▒████▒▒██░   ▓██░░▒▓███▀▒░██░▒██░   ▓██░░▒████▒
░▓  ░ ▒░   ▒ ▒   ▒ ░░   ░▒▓▒ ▒ ▒ ░▓    ▒ ░░   ░▓  ░ ▒░▒░▒░ ░ ▒░   ▒ ▒    ░░ ▒░ ░░ ▒░   ▒ ▒  ░▒   ▒ ░▓  ░ ▒░   ▒ ▒ ░░ ▒░ ░
 ▒ ░░ ░░   ░ ▒░    ░    ░░▒░ ░ ░  ▒ ░    ░     ▒ ░  ░ ▒ ▒░ ░ ░░   ░ ▒░    ░ ░  ░░ ░░   ░ ▒░  ░   ░  ▒ ░░ ░░   ░ ▒░ ░ ░  ░
 ▒ ░   ░   ░ ░   ░       ░░░ ░ ░  ▒ ░  ░       ▒ ░░ ░ ░ ▒     ░   ░ ░       ░      ░   ░ ░ ░ ░   ░  ▒ ░   ░   ░ ░    ░
 ░           ░             ░      ░            ░      ░ ░           ░       ░  ░         ░       ░  ░           ░    ░  ░

(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	VideoConfigFilename = "video.yml"
	maxConfigSize       = 64 * 1024
)

// MouseAxis configures one axis of relative mouse motion.
type MouseAxis struct {
	Disabled bool `yaml:"disabled"`
	Inverted bool `yaml:"inverted"`
}

// VideoConfig holds the fields this subsystem reads at startup and writes
// back whenever geometry or mode changes.
type VideoConfig struct {
	WindowPosition    string    `yaml:"window_position"` // "x,y"; anything else centers the window
	ScreenWidth       int       `yaml:"screen_width"`    // 0 = desktop size
	ScreenHeight      int       `yaml:"screen_height"`
	WindowWidth       int       `yaml:"window_width"`
	WindowHeight      int       `yaml:"window_height"`
	Fullscreen        bool      `yaml:"fullscreen"`
	Widescreen        bool      `yaml:"widescreen"`
	VSync             bool      `yaml:"vsync"`
	Gamma             float64   `yaml:"gamma"`
	MouseAcceleration float64   `yaml:"mouse_acceleration"`
	MouseThreshold    int       `yaml:"mouse_threshold"`
	MouseX            MouseAxis `yaml:"mouse_x"`
	MouseY            MouseAxis `yaml:"mouse_y"`
	ScaleQuality      string    `yaml:"scale_quality"`
	VideoBackend      string    `yaml:"video_backend"`
	VideoDriver       string    `yaml:"video_driver"`
	ShowFPS           bool      `yaml:"show_fps"`
	AlwaysRun         bool      `yaml:"always_run"`
}

func DefaultVideoConfig() *VideoConfig {
	return &VideoConfig{
		WindowWidth:       640,
		WindowHeight:      480,
		Fullscreen:        true,
		VSync:             true,
		Gamma:             1.0,
		MouseAcceleration: 2.0,
		MouseThreshold:    10,
		ScaleQuality:      "linear",
		VideoBackend:      VIDEO_BACKEND_EBITEN,
	}
}

// LoadVideoConfig reads path over the defaults. A missing file is not an
// error: the defaults are returned.
func LoadVideoConfig(path string) (*VideoConfig, error) {
	cfg := DefaultVideoConfig()
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("stat video config: %w", err)
	}
	if info.Size() > maxConfigSize {
		return cfg, fmt.Errorf("video config %s too large: %d bytes", path, info.Size())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read video config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return DefaultVideoConfig(), fmt.Errorf("parse video config %s: %w", path, err)
	}
	cfg.sanitize()
	return cfg, nil
}

func (c *VideoConfig) sanitize() {
	if c.ScreenWidth < 0 || c.ScreenHeight < 0 {
		c.ScreenWidth, c.ScreenHeight = 0, 0
	}
	if c.WindowHeight < MIN_WINDOW_HEIGHT {
		c.WindowHeight = MIN_WINDOW_HEIGHT
	}
	if c.WindowWidth <= 0 {
		c.WindowWidth = c.WindowHeight * 4 / 3
	}
	if c.MouseThreshold < 0 {
		c.MouseThreshold = 0
	}
	if c.MouseAcceleration <= 0 {
		c.MouseAcceleration = 1.0
	}
	if c.Gamma <= 0 {
		c.Gamma = 1.0
	}
}

// ConfigStore persists the configuration.
type ConfigStore interface {
	Save(cfg *VideoConfig) error
}

// FileConfigStore writes the configuration as YAML to Path.
type FileConfigStore struct {
	Path string
}

func (s *FileConfigStore) Save(cfg *VideoConfig) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode video config: %w", err)
	}
	if dir := filepath.Dir(s.Path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config dir: %w", err)
		}
	}
	tmp := s.Path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write video config: %w", err)
	}
	if err := os.Rename(tmp, s.Path); err != nil {
		return fmt.Errorf("replace video config: %w", err)
	}
	return nil
}

type discardConfigStore struct{}

func (discardConfigStore) Save(*VideoConfig) error { return nil }

// parseWindowPosition parses "x,y" and clamps it to the desktop. A malformed
// value yields centered=true.
func parseWindowPosition(s string, desktopW, desktopH int) (x, y int, centered bool) {
	xs, ys, found := strings.Cut(strings.TrimSpace(s), ",")
	if !found {
		return 0, 0, true
	}
	x, errX := strconv.Atoi(strings.TrimSpace(xs))
	y, errY := strconv.Atoi(strings.TrimSpace(ys))
	if errX != nil || errY != nil {
		return 0, 0, true
	}
	if x < 0 {
		x = 0
	} else if x > desktopW {
		x = desktopW - 16
	}
	if y < 0 {
		y = 0
	} else if y > desktopH {
		y = desktopH - 16
	}
	return x, y, false
}
