package hittable

import (
	"math"
	"testing"

	"github.com/dfraymond/goprogressivetracer/pkg/core"
	"github.com/dfraymond/goprogressivetracer/pkg/material"
	"github.com/dfraymond/goprogressivetracer/pkg/vec3"
)

func testMat() core.Material {
	return material.NewLambertian(vec3.New(0.5, 0.5, 0.5))
}

func TestXYRectHitStraightOn(t *testing.T) {
	rect := NewXYRect(0, 2, 0, 4, 3, testMat())
	r := vec3.NewRay(vec3.New(1, 1, 0), vec3.New(0, 0, 1), 0)

	rec, hit := rect.Hit(r, 0.001, math.Inf(1), nil)
	if !hit {
		t.Fatal("expected hit")
	}
	if math.Abs(rec.T-3) > 1e-9 {
		t.Fatalf("t = %v, want 3", rec.T)
	}
	want := vec3.New(1, 1, 3)
	if math.Abs(rec.P.X-want.X) > 1e-9 || math.Abs(rec.P.Y-want.Y) > 1e-9 || math.Abs(rec.P.Z-want.Z) > 1e-9 {
		t.Fatalf("p = %v, want %v", rec.P, want)
	}
	if math.Abs(rec.U-0.5) > 1e-9 || math.Abs(rec.V-0.25) > 1e-9 {
		t.Fatalf("(u,v) = (%v,%v), want (0.5,0.25)", rec.U, rec.V)
	}
	// Traveling +Z into the +Z outward normal means the back face.
	if rec.FrontFace {
		t.Fatal("expected front_face = false approaching along the outward normal")
	}
	if rec.Normal != vec3.New(0, 0, -1) {
		t.Fatalf("normal = %v, want flipped into the incident hemisphere", rec.Normal)
	}
}

func TestXYRectFrontFaceFromNormalSide(t *testing.T) {
	rect := NewXYRect(0, 2, 0, 4, 3, testMat())
	r := vec3.NewRay(vec3.New(1, 1, 10), vec3.New(0, 0, -1), 0)

	rec, hit := rect.Hit(r, 0.001, math.Inf(1), nil)
	if !hit {
		t.Fatal("expected hit")
	}
	if !rec.FrontFace {
		t.Fatal("expected front_face = true against the outward normal")
	}
	if rec.Normal != vec3.New(0, 0, 1) {
		t.Fatalf("normal = %v, want (0,0,1)", rec.Normal)
	}
}

func TestXYRectMissOutsideBounds(t *testing.T) {
	rect := NewXYRect(0, 2, 0, 4, 3, testMat())
	r := vec3.NewRay(vec3.New(5, 1, 0), vec3.New(0, 0, 1), 0)
	if _, hit := rect.Hit(r, 0.001, math.Inf(1), nil); hit {
		t.Fatal("expected miss outside the rectangle's extent")
	}
}

func TestXZRectHitAndUV(t *testing.T) {
	rect := NewXZRect(0, 2, 0, 4, 1, testMat())
	r := vec3.NewRay(vec3.New(0.5, 5, 3), vec3.New(0, -1, 0), 0)

	rec, hit := rect.Hit(r, 0.001, math.Inf(1), nil)
	if !hit {
		t.Fatal("expected hit")
	}
	if math.Abs(rec.T-4) > 1e-9 {
		t.Fatalf("t = %v, want 4", rec.T)
	}
	if math.Abs(rec.U-0.25) > 1e-9 || math.Abs(rec.V-0.75) > 1e-9 {
		t.Fatalf("(u,v) = (%v,%v), want (0.25,0.75)", rec.U, rec.V)
	}
	if !rec.FrontFace || rec.Normal != vec3.New(0, 1, 0) {
		t.Fatalf("normal = %v front_face = %v, want +Y front face", rec.Normal, rec.FrontFace)
	}
}

func TestYZRectHit(t *testing.T) {
	rect := NewYZRect(0, 2, 0, 4, -1, testMat())
	r := vec3.NewRay(vec3.New(-5, 1, 2), vec3.New(1, 0, 0), 0)

	rec, hit := rect.Hit(r, 0.001, math.Inf(1), nil)
	if !hit {
		t.Fatal("expected hit")
	}
	if math.Abs(rec.T-4) > 1e-9 {
		t.Fatalf("t = %v, want 4", rec.T)
	}
	if rec.FrontFace {
		t.Fatal("expected back face traveling along the +X outward normal")
	}
}

func TestRectBoundingBoxesArePaddedOnTheThinAxis(t *testing.T) {
	xy := NewXYRect(0, 1, 0, 1, 2, testMat())
	box, ok := xy.BoundingBox(0, 1)
	if !ok {
		t.Fatal("expected a bounding box")
	}
	if box.Max.Z-box.Min.Z <= 0 {
		t.Fatalf("XY rect box has zero Z extent: %v", box)
	}

	xz := NewXZRect(0, 1, 0, 1, 2, testMat())
	box, _ = xz.BoundingBox(0, 1)
	if box.Max.Y-box.Min.Y <= 0 {
		t.Fatalf("XZ rect box has zero Y extent: %v", box)
	}

	yz := NewYZRect(0, 1, 0, 1, 2, testMat())
	box, _ = yz.BoundingBox(0, 1)
	if box.Max.X-box.Min.X <= 0 {
		t.Fatalf("YZ rect box has zero X extent: %v", box)
	}
}

func TestXZRectPdfValueStraightOn(t *testing.T) {
	// A 2x2 rect seen head-on from distance 5: density is
	// distance²/(cosine·area) = 25/4.
	rect := NewXZRect(-1, 1, -1, 1, 0, testMat())
	got := rect.PdfValue(vec3.New(0, 5, 0), vec3.New(0, -1, 0))
	want := 25.0 / 4.0
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("PdfValue = %v, want %v", got, want)
	}
}

func TestRectPdfValueZeroWhenPointingAway(t *testing.T) {
	rect := NewXZRect(-1, 1, -1, 1, 0, testMat())
	if got := rect.PdfValue(vec3.New(0, 5, 0), vec3.New(0, 1, 0)); got != 0 {
		t.Fatalf("PdfValue pointing away = %v, want 0", got)
	}
}

func TestRectRandomPointsAtTheRectangle(t *testing.T) {
	origin := vec3.New(3, 7, -2)
	rng := core.NewRng(11)

	xy := NewXYRect(0, 2, 1, 4, 5, testMat())
	for i := 0; i < 100; i++ {
		p := origin.Add(xy.Random(origin, rng))
		if p.X < 0 || p.X > 2 || p.Y < 1 || p.Y > 4 || math.Abs(p.Z-5) > 1e-9 {
			t.Fatalf("XY sample %v lands off the rectangle", p)
		}
	}

	xz := NewXZRect(0, 2, 1, 4, 5, testMat())
	for i := 0; i < 100; i++ {
		p := origin.Add(xz.Random(origin, rng))
		if p.X < 0 || p.X > 2 || p.Z < 1 || p.Z > 4 || math.Abs(p.Y-5) > 1e-9 {
			t.Fatalf("XZ sample %v lands off the rectangle", p)
		}
	}

	yz := NewYZRect(0, 2, 1, 4, 5, testMat())
	for i := 0; i < 100; i++ {
		p := origin.Add(yz.Random(origin, rng))
		if p.Y < 0 || p.Y > 2 || p.Z < 1 || p.Z > 4 || math.Abs(p.X-5) > 1e-9 {
			t.Fatalf("YZ sample %v lands off the rectangle", p)
		}
	}
}

func TestRectRandomAgreesWithPdfValue(t *testing.T) {
	// Every direction Random draws must land where PdfValue is nonzero.
	rect := NewXZRect(213, 343, 227, 332, 554, testMat())
	origin := vec3.New(278, 278, 278)
	rng := core.NewRng(12)
	for i := 0; i < 200; i++ {
		dir := rect.Random(origin, rng)
		if rect.PdfValue(origin, dir) <= 0 {
			t.Fatalf("sampled direction %v has zero density", dir)
		}
	}
}
