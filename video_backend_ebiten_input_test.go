//go:build !headless

package main

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestEbitenScancodes_RoundTrip(t *testing.T) {
	for key, sc := range ebitenScancodes {
		back, ok := ebitenKeyFor(sc)
		if !ok {
			t.Fatalf("scancode %d from %v has no reverse mapping", sc, key)
		}
		if back != key {
			t.Fatalf("scancode %d maps back to %v, want %v", sc, back, key)
		}
	}
}

func TestEbitenScancodes_Letters(t *testing.T) {
	sc, ok := scancodeForEbitenKey(ebiten.KeyA)
	if !ok || sc != ScancodeA {
		t.Fatalf("expected KeyA -> ScancodeA, got %d ok=%v", sc, ok)
	}
	sc, ok = scancodeForEbitenKey(ebiten.KeyZ)
	if !ok || sc != ScancodeZ {
		t.Fatalf("expected KeyZ -> ScancodeZ, got %d ok=%v", sc, ok)
	}
}

func TestEbitenScancodes_TranslateToEngineKeys(t *testing.T) {
	tests := []struct {
		key  ebiten.Key
		want Key
	}{
		{ebiten.KeyEnter, KeyEnter},
		{ebiten.KeyEscape, KeyEscape},
		{ebiten.KeyArrowLeft, KeyLeftArrow},
		{ebiten.KeyF11, KeyF11},
		{ebiten.KeyShiftLeft, KeyRShift},
		{ebiten.KeyDigit0, '0'},
	}
	keys := NewKeyTable()
	for _, tt := range tests {
		sc, ok := scancodeForEbitenKey(tt.key)
		if !ok {
			t.Fatalf("%v: no scancode", tt.key)
		}
		got, ok := keys.Lookup(sc)
		if !ok || got != tt.want {
			t.Fatalf("%v: expected key 0x%x, got 0x%x ok=%v", tt.key, tt.want, got, ok)
		}
	}
}

func TestEbitenMouseButtons_Order(t *testing.T) {
	if ebitenMouseButtons[0] != ebiten.MouseButtonLeft {
		t.Fatal("button 1 must be left")
	}
	if ebitenMouseButtons[1] != ebiten.MouseButtonMiddle {
		t.Fatal("button 2 must be middle")
	}
	if ebitenMouseButtons[2] != ebiten.MouseButtonRight {
		t.Fatal("button 3 must be right")
	}
}
