// resource_cache.go - Directory-backed lump cache and built-in fallback palette

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
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const maxLumpSize = 1 << 20

// DirResourceCache serves lumps stored as <dir>/<NAME>.lmp.
type DirResourceCache struct {
	baseDir string
	lumps   map[string][]byte
}

func NewDirResourceCache(baseDir string) *DirResourceCache {
	absBase, err := filepath.Abs(baseDir)
	if err != nil {
		absBase = baseDir
	}
	return &DirResourceCache{
		baseDir: absBase,
		lumps:   make(map[string][]byte),
	}
}

// Lump returns the named lump, reading it once.
func (c *DirResourceCache) Lump(name string) ([]byte, error) {
	key := strings.ToUpper(name)
	if data, ok := c.lumps[key]; ok {
		return data, nil
	}
	path, ok := c.sanitizePath(key + ".lmp")
	if !ok {
		return nil, fmt.Errorf("invalid lump name %q", name)
	}
	data, err := readLumpFile(path)
	if err != nil {
		// Lump files are often stored lower case.
		lower, ok := c.sanitizePath(strings.ToLower(key) + ".lmp")
		if !ok {
			return nil, err
		}
		if data, err = readLumpFile(lower); err != nil {
			return nil, err
		}
	}
	c.lumps[key] = data
	return data, nil
}

// sanitizePath keeps lookups inside baseDir.
func (c *DirResourceCache) sanitizePath(name string) (string, bool) {
	if filepath.IsAbs(name) || strings.Contains(name, "..") || strings.ContainsAny(name, `/\`) {
		return "", false
	}
	fullPath := filepath.Join(c.baseDir, name)
	rel, err := filepath.Rel(c.baseDir, fullPath)
	if err != nil || strings.HasPrefix(rel, "..") {
		return "", false
	}
	return fullPath, true
}

func readLumpFile(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.Size() > maxLumpSize {
		return nil, fmt.Errorf("lump %s too large: %d bytes", path, info.Size())
	}
	return os.ReadFile(path)
}

// BuiltinResourceCache supplies a generated PLAYPAL when no lump directory
// is configured: eight ramps of 32 shades.
type BuiltinResourceCache struct{}

var builtinRamps = [8][3]byte{
	{255, 255, 255},
	{255, 64, 64},
	{64, 255, 64},
	{64, 64, 255},
	{255, 255, 64},
	{255, 64, 255},
	{64, 255, 255},
	{255, 160, 64},
}

func (BuiltinResourceCache) Lump(name string) ([]byte, error) {
	if !strings.EqualFold(name, PALETTE_LUMP) {
		return nil, fmt.Errorf("builtin cache has no lump %q", name)
	}
	pal := make([]byte, PALETTE_BYTES)
	for i := 0; i < PALETTE_ENTRIES; i++ {
		ramp := builtinRamps[i/32]
		shade := i % 32
		for ch := 0; ch < 3; ch++ {
			pal[i*3+ch] = byte(int(ramp[ch]) * shade / 31)
		}
	}
	return pal, nil
}
