package main

import (
	"encoding/binary"
	"math"
	"testing"
)

func TestQuitCueSamples(t *testing.T) {
	samples := quitCueSamples(CUE_SAMPLE_RATE)
	if want := CUE_SAMPLE_RATE * 3 / 10; len(samples) != want {
		t.Fatalf("expected %d samples, got %d", want, len(samples))
	}
	if samples[0] != 0.5 {
		t.Fatalf("first sample %v, want 0.5", samples[0])
	}
	for i, s := range samples {
		if s > 0.5 || s < -0.5 {
			t.Fatalf("sample %d out of range: %v", i, s)
		}
	}
	last := samples[len(samples)-1]
	if math.Abs(float64(last)) > 0.01 {
		t.Fatalf("cue should fade out, last sample %v", last)
	}
}

func TestFloat32LEBytes(t *testing.T) {
	buf := float32LEBytes([]float32{0.25, -1})
	if len(buf) != 8 {
		t.Fatalf("expected 8 bytes, got %d", len(buf))
	}
	if math.Float32frombits(binary.LittleEndian.Uint32(buf[4:])) != -1 {
		t.Fatal("second sample not encoded little-endian")
	}
}
