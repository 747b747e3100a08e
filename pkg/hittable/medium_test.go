package hittable

import (
	"math"
	"testing"

	"github.com/dfraymond/goprogressivetracer/pkg/core"
	"github.com/dfraymond/goprogressivetracer/pkg/material"
	"github.com/dfraymond/goprogressivetracer/pkg/vec3"
)

func testMedium(density float64) *ConstantMedium {
	boundary := NewSphere(vec3.New(0, 0, 0), 1, testMat())
	return NewConstantMedium(boundary, density, material.NewIsotropic(vec3.New(1, 1, 1)))
}

func TestConstantMediumDenseFogAlwaysScatters(t *testing.T) {
	// Mean free path 1/10000 against a 2-unit chord: the ray practically
	// cannot make it through.
	medium := testMedium(10000)
	r := vec3.NewRay(vec3.New(0, 0, -3), vec3.New(0, 0, 1), 0)
	rng := core.NewRng(1)

	for i := 0; i < 100; i++ {
		rec, hit := medium.Hit(r, 0.001, math.Inf(1), rng)
		if !hit {
			t.Fatal("expected dense fog to scatter every ray")
		}
		// Entry at t=2, exit at t=4.
		if rec.T < 2 || rec.T > 4 {
			t.Fatalf("scatter at t = %v, want within the boundary chord [2,4]", rec.T)
		}
		if rec.Material != medium.Phase {
			t.Fatal("expected the hit to carry the phase material")
		}
		if !rec.FrontFace {
			t.Fatal("expected FrontFace fixed to true inside a medium")
		}
	}
}

func TestConstantMediumThinFogRarelyScatters(t *testing.T) {
	// Mean free path 1e9 against a 2-unit chord.
	medium := testMedium(1e-9)
	r := vec3.NewRay(vec3.New(0, 0, -3), vec3.New(0, 0, 1), 0)
	rng := core.NewRng(2)

	for i := 0; i < 100; i++ {
		if _, hit := medium.Hit(r, 0.001, math.Inf(1), rng); hit {
			t.Fatal("expected near-vacuum fog to pass every ray through")
		}
	}
}

func TestConstantMediumMissesWhenRayMissesBoundary(t *testing.T) {
	medium := testMedium(10000)
	r := vec3.NewRay(vec3.New(5, 5, -3), vec3.New(0, 0, 1), 0)
	rng := core.NewRng(3)
	if _, hit := medium.Hit(r, 0.001, math.Inf(1), rng); hit {
		t.Fatal("expected miss when the ray never enters the boundary")
	}
}

func TestConstantMediumScatterFromInsideBoundary(t *testing.T) {
	medium := testMedium(10000)
	// Origin inside the boundary: the segment is clipped to start at the
	// ray origin rather than behind it.
	r := vec3.NewRay(vec3.New(0, 0, 0), vec3.New(0, 0, 1), 0)
	rng := core.NewRng(4)

	for i := 0; i < 100; i++ {
		rec, hit := medium.Hit(r, 0.001, math.Inf(1), rng)
		if !hit {
			t.Fatal("expected dense fog to scatter from inside")
		}
		if rec.T < 0 || rec.T > 1 {
			t.Fatalf("scatter at t = %v, want within [0,1] to the exit", rec.T)
		}
	}
}

func TestConstantMediumBoundingBoxIsBoundarys(t *testing.T) {
	medium := testMedium(1)
	got, ok := medium.BoundingBox(0, 1)
	if !ok {
		t.Fatal("expected a bounding box")
	}
	want, _ := medium.Boundary.BoundingBox(0, 1)
	if got != want {
		t.Fatalf("box = %v, want the boundary's own %v", got, want)
	}
}

func TestConstantMediumScatterDepthIsExponential(t *testing.T) {
	// With density d, the scatter depth beyond the entry point is
	// exponential with mean 1/d. A large boundary keeps the chord from
	// truncating the distribution, so the sample mean should land near it.
	boundary := NewSphere(vec3.New(0, 0, 0), 1000, testMat())
	medium := NewConstantMedium(boundary, 2, material.NewIsotropic(vec3.New(1, 1, 1)))
	r := vec3.NewRay(vec3.New(0, 0, -1000), vec3.New(0, 0, 1), 0)
	rng := core.NewRng(5)

	const n = 2000
	sum := 0.0
	for i := 0; i < n; i++ {
		rec, hit := medium.Hit(r, 0.001, math.Inf(1), rng)
		if !hit {
			t.Fatal("expected a scatter inside the huge boundary")
		}
		sum += rec.T // entry is t=0 at the sphere's near pole
	}
	mean := sum / n
	if mean < 0.4 || mean > 0.6 {
		t.Fatalf("mean scatter depth = %v, want near 1/density = 0.5", mean)
	}
}
