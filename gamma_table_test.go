package main

import "testing"

func TestGammaTable_NeutralIsIdentity(t *testing.T) {
	table := BuildGammaTable()
	for v := 0; v < 256; v++ {
		if got := table.Correct(GAMMA_NEUTRAL_INDEX, byte(v)); got != byte(v) {
			t.Fatalf("neutral level: Correct(%d) = %d", v, got)
		}
	}
}

func TestGammaTable_Monotonic(t *testing.T) {
	table := BuildGammaTable()
	for level := 0; level < GAMMA_LEVELS; level++ {
		for v := 1; v < 256; v++ {
			if table[level][v] < table[level][v-1] {
				t.Fatalf("level %d not monotonic at %d: %d < %d", level, v, table[level][v], table[level][v-1])
			}
		}
	}
}

func TestGammaTable_DarkerAndLighter(t *testing.T) {
	table := BuildGammaTable()
	if table[0][128] >= 128 {
		t.Fatalf("level 0 should darken mid grey, got %d", table[0][128])
	}
	if table[GAMMA_LEVELS-1][128] <= 128 {
		t.Fatalf("top level should lighten mid grey, got %d", table[GAMMA_LEVELS-1][128])
	}
	if table[GAMMA_LEVELS-1][255] != 255 {
		t.Fatalf("white must stay white, got %d", table[GAMMA_LEVELS-1][255])
	}
}

func TestGammaIndexFor(t *testing.T) {
	tests := []struct {
		level float64
		want  int
	}{
		{1.0, GAMMA_NEUTRAL_INDEX},
		{0.5, 0},
		{2.0, GAMMA_LEVELS - 1},
		{0.1, 0},
		{9.0, GAMMA_LEVELS - 1},
		{1.26, 15},
	}
	for _, tt := range tests {
		if got := GammaIndexFor(tt.level); got != tt.want {
			t.Fatalf("GammaIndexFor(%v) = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestGammaTable_ClampsLevel(t *testing.T) {
	table := BuildGammaTable()
	if table.Correct(-4, 200) != table[0][200] {
		t.Fatal("negative level should clamp to 0")
	}
	if table.Correct(99, 200) != table[GAMMA_LEVELS-1][200] {
		t.Fatal("large level should clamp to the last level")
	}
	if GammaLevel(GAMMA_NEUTRAL_INDEX) != 1.0 {
		t.Fatalf("neutral gamma = %v", GammaLevel(GAMMA_NEUTRAL_INDEX))
	}
}

func TestApplyPalette(t *testing.T) {
	table := BuildGammaTable()
	raw := grayPalette()
	raw[3], raw[4], raw[5] = 255, 0, 0

	entries, err := ApplyPalette(table, GAMMA_NEUTRAL_INDEX, raw)
	if err != nil {
		t.Fatalf("ApplyPalette: %v", err)
	}
	if c := entries[1]; c.R != 255 || c.G != 0 || c.B != 0 || c.A != 0xFF {
		t.Fatalf("entry 1 = %+v, want opaque red", c)
	}
	if c := entries[200]; c.R != 200 || c.G != 200 || c.B != 200 {
		t.Fatalf("entry 200 = %+v", c)
	}

	dark, _ := ApplyPalette(table, 0, raw)
	if dark[200].R >= 200 {
		t.Fatalf("expected darker entry at level 0, got %d", dark[200].R)
	}

	if _, err := ApplyPalette(table, GAMMA_NEUTRAL_INDEX, raw[:100]); err == nil {
		t.Fatal("expected error for short palette")
	}
}
