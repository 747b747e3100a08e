package hittable

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dfraymond/goprogressivetracer/pkg/core"
	"github.com/dfraymond/goprogressivetracer/pkg/vec3"
)

func TestBoxHitNearestFace(t *testing.T) {
	box := NewBox(vec3.New(0, 0, 0), vec3.New(1, 1, 1), testMat())
	r := vec3.NewRay(vec3.New(-2, 0.5, 0.5), vec3.New(1, 0, 0), 0)

	rec, hit := box.Hit(r, 0.001, math.Inf(1), nil)
	if !hit {
		t.Fatal("expected hit")
	}
	if math.Abs(rec.T-2) > 1e-9 {
		t.Fatalf("t = %v, want 2 (the x=0 face)", rec.T)
	}
	want := vec3.New(0, 0.5, 0.5)
	if math.Abs(rec.P.X-want.X) > 1e-9 || math.Abs(rec.P.Y-want.Y) > 1e-9 || math.Abs(rec.P.Z-want.Z) > 1e-9 {
		t.Fatalf("p = %v, want %v", rec.P, want)
	}
	if rec.Normal != vec3.New(-1, 0, 0) {
		t.Fatalf("normal = %v, want (-1,0,0) facing the ray", rec.Normal)
	}
	if !rec.FrontFace {
		t.Fatal("expected front_face = true on the flipped min-X face")
	}
}

func TestBoxHitFromInsideFindsExitFace(t *testing.T) {
	box := NewBox(vec3.New(0, 0, 0), vec3.New(1, 1, 1), testMat())
	r := vec3.NewRay(vec3.New(0.5, 0.5, 0.5), vec3.New(0, 1, 0), 0)

	rec, hit := box.Hit(r, 0.001, math.Inf(1), nil)
	if !hit {
		t.Fatal("expected hit")
	}
	if math.Abs(rec.T-0.5) > 1e-9 {
		t.Fatalf("t = %v, want 0.5 (the y=1 face)", rec.T)
	}
}

func TestBoxMiss(t *testing.T) {
	box := NewBox(vec3.New(0, 0, 0), vec3.New(1, 1, 1), testMat())
	r := vec3.NewRay(vec3.New(-2, 5, 0.5), vec3.New(1, 0, 0), 0)
	if _, hit := box.Hit(r, 0.001, math.Inf(1), nil); hit {
		t.Fatal("expected miss above the box")
	}
}

func TestBoxBoundingBox(t *testing.T) {
	box := NewBox(vec3.New(-1, 0, 2), vec3.New(3, 4, 5), testMat())
	got, ok := box.BoundingBox(0, 1)
	if !ok {
		t.Fatal("expected a bounding box")
	}
	want := core.NewAabb(vec3.New(-1, 0, 2), vec3.New(3, 4, 5))
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("bounding box mismatch (-want +got):\n%s", diff)
	}
}
