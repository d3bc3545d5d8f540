// gamma_table.go - Gamma correction lookup tables

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

import "math"

const (
	GAMMA_LEVELS        = 31
	GAMMA_NEUTRAL_INDEX = 10
)

// gammaLevels runs from 0.50 (darker) through 1.00 (no correction) to 2.00 (lighter).
var gammaLevels = [GAMMA_LEVELS]float64{
	0.50, 0.55, 0.60, 0.65, 0.70, 0.75, 0.80, 0.85, 0.90, 0.95,
	1.00,
	1.05, 1.10, 1.15, 1.20, 1.25, 1.30, 1.35, 1.40, 1.45, 1.50,
	1.55, 1.60, 1.65, 1.70, 1.75, 1.80, 1.85, 1.90, 1.95, 2.00,
}

// GammaTable maps [level][byte] to a corrected byte. Immutable once built.
type GammaTable [GAMMA_LEVELS][256]byte

func BuildGammaTable() *GammaTable {
	t := new(GammaTable)
	for i, level := range gammaLevels {
		if i == GAMMA_NEUTRAL_INDEX {
			for v := 0; v < 256; v++ {
				t[i][v] = byte(v)
			}
			continue
		}
		for v := 0; v < 256; v++ {
			t[i][v] = byte(math.Round(255 * math.Pow(float64(v+1)/256, 1/level)))
		}
	}
	return t
}

// Correct returns the corrected value of v at level index.
func (t *GammaTable) Correct(level int, v byte) byte {
	return t[clampGammaIndex(level)][v]
}

// GammaLevel returns the gamma value for a level index.
func GammaLevel(index int) float64 {
	return gammaLevels[clampGammaIndex(index)]
}

// GammaIndexFor returns the table level closest to a configured gamma value.
func GammaIndexFor(level float64) int {
	best := GAMMA_NEUTRAL_INDEX
	bestDiff := math.Inf(1)
	for i, l := range gammaLevels {
		if d := math.Abs(l - level); d < bestDiff {
			best, bestDiff = i, d
		}
	}
	return best
}

func clampGammaIndex(i int) int {
	return max(0, min(i, GAMMA_LEVELS-1))
}
