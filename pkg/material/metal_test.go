package material

import (
	"testing"

	"github.com/dfraymond/goprogressivetracer/pkg/core"
	"github.com/dfraymond/goprogressivetracer/pkg/vec3"
)

func TestMetalFuzzClamped(t *testing.T) {
	m := NewMetal(vec3.New(1, 1, 1), 5)
	if m.Fuzz != 1 {
		t.Fatalf("Fuzz = %v, want clamped to 1", m.Fuzz)
	}
	m2 := NewMetal(vec3.New(1, 1, 1), -5)
	if m2.Fuzz != 0 {
		t.Fatalf("Fuzz = %v, want clamped to 0", m2.Fuzz)
	}
}

func TestMetalZeroFuzzReflectsExactly(t *testing.T) {
	m := NewMetal(vec3.New(1, 1, 1), 0)
	rIn := vec3.NewRay(vec3.New(0, 1, 0), vec3.New(1, -1, 0), 0)
	hit := core.HitRecord{P: vec3.New(0, 0, 0), Normal: vec3.New(0, 1, 0)}
	rng := core.NewRng(1)

	srec, ok := m.Scatter(rIn, hit, rng)
	if !ok {
		t.Fatal("expected scatter")
	}
	want := vec3.Reflect(rIn.Direction.Unit(), hit.Normal)
	if srec.Specular.Direction != want {
		t.Fatalf("reflected = %v, want %v", srec.Specular.Direction, want)
	}
}

func TestMetalAbsorbsWhenReflectionGoesIntoSurface(t *testing.T) {
	m := NewMetal(vec3.New(1, 1, 1), 0.9)
	// A ray grazing nearly parallel to the surface, fuzzed enough times,
	// should eventually be absorbed when the perturbed reflection dips below
	// the surface.
	rIn := vec3.NewRay(vec3.New(0, 0.001, 0), vec3.New(1, -0.001, 0), 0)
	hit := core.HitRecord{P: vec3.New(0, 0, 0), Normal: vec3.New(0, 1, 0)}
	rng := core.NewRng(7)

	sawAbsorb := false
	for i := 0; i < 200; i++ {
		if _, ok := m.Scatter(rIn, hit, rng); !ok {
			sawAbsorb = true
			break
		}
	}
	if !sawAbsorb {
		t.Fatal("expected at least one absorbed sample over 200 fuzzed draws")
	}
}
