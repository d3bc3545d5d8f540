package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadVideoConfig_MissingFileGivesDefaults(t *testing.T) {
	cfg, err := LoadVideoConfig(filepath.Join(t.TempDir(), "absent.yml"))
	if err != nil {
		t.Fatalf("LoadVideoConfig: %v", err)
	}
	def := DefaultVideoConfig()
	if *cfg != *def {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
	if !cfg.Fullscreen || cfg.ScreenWidth != 0 || cfg.WindowHeight != 480 {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
}

func TestLoadVideoConfig_SanitizesValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), VideoConfigFilename)
	data := "fullscreen: false\nwindow_height: 100\nwindow_width: 0\nmouse_threshold: -4\nscreen_width: -1\nmouse_y:\n  inverted: true\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadVideoConfig(path)
	if err != nil {
		t.Fatalf("LoadVideoConfig: %v", err)
	}
	if cfg.Fullscreen {
		t.Fatal("fullscreen should be off")
	}
	if cfg.WindowHeight != MIN_WINDOW_HEIGHT || cfg.WindowWidth != MIN_WINDOW_HEIGHT*4/3 {
		t.Fatalf("window %dx%d", cfg.WindowWidth, cfg.WindowHeight)
	}
	if cfg.MouseThreshold != 0 || cfg.ScreenWidth != 0 {
		t.Fatalf("threshold %d screen width %d", cfg.MouseThreshold, cfg.ScreenWidth)
	}
	if !cfg.MouseY.Inverted || cfg.MouseX.Inverted {
		t.Fatalf("mouse axes %+v %+v", cfg.MouseX, cfg.MouseY)
	}
	if cfg.ScaleQuality != "linear" {
		t.Fatalf("unset fields keep defaults, scale quality %q", cfg.ScaleQuality)
	}
}

func TestLoadVideoConfig_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), VideoConfigFilename)
	if err := os.WriteFile(path, []byte("fullscreen: [oops"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadVideoConfig(path)
	if err == nil {
		t.Fatal("expected parse error")
	}
	if cfg == nil || !cfg.Fullscreen {
		t.Fatal("defaults should still be returned")
	}
}

func TestFileConfigStore_SaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", VideoConfigFilename)
	store := &FileConfigStore{Path: path}
	cfg := DefaultVideoConfig()
	cfg.Fullscreen = false
	cfg.WindowWidth, cfg.WindowHeight = 1200, 900
	cfg.Widescreen = true
	cfg.Gamma = 1.25

	if err := store.Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Fatal("temporary file left behind")
	}
	got, err := LoadVideoConfig(path)
	if err != nil {
		t.Fatalf("LoadVideoConfig: %v", err)
	}
	if *got != *cfg {
		t.Fatalf("reloaded %+v, want %+v", got, cfg)
	}
}

func TestParseWindowPosition(t *testing.T) {
	tests := []struct {
		in       string
		x, y     int
		centered bool
	}{
		{"", 0, 0, true},
		{"center", 0, 0, true},
		{"10,x", 0, 0, true},
		{"100,50", 100, 50, false},
		{" 100 , 50 ", 100, 50, false},
		{"-5,3", 0, 3, false},
		{"5000,20", 1904, 20, false},
		{"20,5000", 20, 1064, false},
	}
	for _, tt := range tests {
		x, y, centered := parseWindowPosition(tt.in, 1920, 1080)
		if x != tt.x || y != tt.y || centered != tt.centered {
			t.Fatalf("parseWindowPosition(%q) = %d,%d,%v; want %d,%d,%v", tt.in, x, y, centered, tt.x, tt.y, tt.centered)
		}
	}
}
