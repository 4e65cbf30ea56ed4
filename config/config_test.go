package config

import (
	"math"
	"testing"
)

func TestDeriveFieldParticleCount(t *testing.T) {
	tests := []struct {
		width float64
		want  int
	}{
		{width: 0, want: 50},
		{width: 500, want: 50},
		{width: 767.9, want: 50},
		{width: 768, want: 100},
		{width: 1200, want: 100},
		{width: 5000, want: 100},
	}
	for _, tt := range tests {
		got := DeriveField(tt.width)
		if got.ParticleCount != tt.want {
			t.Errorf("DeriveField(%v).ParticleCount = %d, want %d", tt.width, got.ParticleCount, tt.want)
		}
	}
}

func TestDeriveFieldConstants(t *testing.T) {
	cfg := DeriveField(1024)
	if cfg.ParticleSize != (Range{Min: 2, Max: 4}) {
		t.Errorf("ParticleSize = %+v", cfg.ParticleSize)
	}
	if cfg.ParticleSpeed != (Range{Min: 0.1, Max: 0.3}) {
		t.Errorf("ParticleSpeed = %+v", cfg.ParticleSpeed)
	}
	if cfg.ConnectionDistance != 150 {
		t.Errorf("ConnectionDistance = %v, want 150", cfg.ConnectionDistance)
	}
	if cfg.Colors.Primary != (RGB{R: 0x10, G: 0xb9, B: 0x81}) {
		t.Errorf("Primary = %+v", cfg.Colors.Primary)
	}
	if cfg.Colors.Secondary != (RGB{R: 0x05, G: 0x96, B: 0x69}) {
		t.Errorf("Secondary = %+v", cfg.Colors.Secondary)
	}
	if cfg.Colors.Background != (RGB{R: 0x1e, G: 0x1e, B: 0x1e}) {
		t.Errorf("Background = %+v", cfg.Colors.Background)
	}
}

func TestAlphaByte(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want uint8
	}{
		{"zero", 0, 0},
		{"negative", -0.3, 0},
		{"nan", math.NaN(), 0},
		{"half", 0.5, 127},
		{"floors", 0.1, 25},
		{"one", 1, 255},
		{"above", 1.7, 255},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AlphaByte(tt.in); got != tt.want {
				t.Errorf("AlphaByte(%v) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestWithAlphaKeepsChannels(t *testing.T) {
	c := Emerald.WithAlpha(0.5)
	if c.R != 0x10 || c.G != 0xb9 || c.B != 0x81 || c.A != 127 {
		t.Errorf("WithAlpha(0.5) = %+v", c)
	}
}
