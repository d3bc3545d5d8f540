// video_palette.go - Palette state and gamma-corrected palette application

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
	"image/color"
)

const (
	PALETTE_ENTRIES = 256
	PALETTE_BYTES   = PALETTE_ENTRIES * 3
)

// PaletteState is the display-ready palette plus a dirty flag; it is applied
// to the presented frame at most once per Present.
type PaletteState struct {
	Entries [PALETTE_ENTRIES]color.RGBA
	dirty   bool
}

func (p *PaletteState) Dirty() bool { return p.dirty }

func (p *PaletteState) MarkDirty() { p.dirty = true }

// take returns the entries and clears the dirty flag.
func (p *PaletteState) take() [PALETTE_ENTRIES]color.RGBA {
	p.dirty = false
	return p.Entries
}

// ApplyPalette runs 256 RGB triples through gamma level and returns opaque entries.
func ApplyPalette(gamma *GammaTable, level int, raw []byte) ([PALETTE_ENTRIES]color.RGBA, error) {
	var out [PALETTE_ENTRIES]color.RGBA
	if len(raw) < PALETTE_BYTES {
		return out, fmt.Errorf("palette too short: got %d bytes, need %d", len(raw), PALETTE_BYTES)
	}
	for i := 0; i < PALETTE_ENTRIES; i++ {
		out[i] = color.RGBA{
			R: gamma.Correct(level, raw[i*3]),
			G: gamma.Correct(level, raw[i*3+1]),
			B: gamma.Correct(level, raw[i*3+2]),
			A: 0xFF,
		}
	}
	return out, nil
}

// ResourceCache supplies named resources such as the PLAYPAL palette lump.
type ResourceCache interface {
	Lump(name string) ([]byte, error)
}

const PALETTE_LUMP = "PLAYPAL"
