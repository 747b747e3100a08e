package config

import (
	"testing"

	"github.com/dfraymond/goprogressivetracer/pkg/scene"
)

func TestDefaultValidates(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default() should validate cleanly, got %v", err)
	}
}

func TestValidateRejectsUnknownRenderer(t *testing.T) {
	cfg := Default()
	cfg.Renderer = "bogus"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected an error for an unknown renderer")
	}
}

func TestValidateRejectsNegativeDimensions(t *testing.T) {
	cfg := Default()
	cfg.Width = -1
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected an error for a negative width")
	}
}

func TestValidateRejectsNegativeMaxDepth(t *testing.T) {
	cfg := Default()
	cfg.MaxDepth = -1
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected an error for a negative max-depth")
	}
}

func TestApplyOverridesLeavesZeroFieldsAlone(t *testing.T) {
	cfg := Default()
	cfg.MaxDepth = 0 // Default carries a nonzero max-depth; zero it to test pass-through
	base := scene.Config{Width: 400, Height: 300, SamplesPerPixel: 50, MaxDepth: 20, AspectRatio: 400.0 / 300.0}
	got := cfg.ApplyOverrides(base)
	if got != base {
		t.Fatalf("ApplyOverrides with no overrides = %+v, want unchanged %+v", got, base)
	}
}

func TestApplyOverridesAppliesWidthAndRecomputesAspectRatio(t *testing.T) {
	cfg := Default()
	cfg.Width = 800
	base := scene.Config{Width: 400, Height: 300, SamplesPerPixel: 50, MaxDepth: 20, AspectRatio: 400.0 / 300.0}
	got := cfg.ApplyOverrides(base)
	if got.Width != 800 {
		t.Fatalf("Width = %v, want 800", got.Width)
	}
	want := 800.0 / 300.0
	if got.AspectRatio != want {
		t.Fatalf("AspectRatio = %v, want %v", got.AspectRatio, want)
	}
}

func TestApplyOverridesAppliesSamplesAndMaxDepth(t *testing.T) {
	cfg := Default()
	cfg.SamplesPerPixel = 1000
	cfg.MaxDepth = 5
	base := scene.Config{Width: 400, Height: 300, SamplesPerPixel: 50, MaxDepth: 20, AspectRatio: 400.0 / 300.0}
	got := cfg.ApplyOverrides(base)
	if got.SamplesPerPixel != 1000 {
		t.Fatalf("SamplesPerPixel = %v, want 1000", got.SamplesPerPixel)
	}
	if got.MaxDepth != 5 {
		t.Fatalf("MaxDepth = %v, want 5", got.MaxDepth)
	}
}
