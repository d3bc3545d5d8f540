//go:build !headless

package main

import "testing"

func TestEbitenBackend_ImplementsVideoBackend(t *testing.T) {
	eb, err := NewEbitenBackend()
	if err != nil {
		t.Fatalf("NewEbitenBackend: %v", err)
	}
	if _, ok := eb.(*EbitenBackend); !ok {
		t.Fatalf("expected *EbitenBackend, got %T", eb)
	}
	if eb.Name() != VIDEO_BACKEND_EBITEN {
		t.Fatalf("expected name %q, got %q", VIDEO_BACKEND_EBITEN, eb.Name())
	}
}

func TestEbitenWindow_OverlayCapable(t *testing.T) {
	var w VideoWindow = &ebitenWindow{}
	if _, ok := w.(OverlayCapable); !ok {
		t.Fatal("expected ebitenWindow to implement OverlayCapable")
	}
}
