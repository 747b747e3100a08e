package material

import (
	"math"
	"testing"

	"github.com/dfraymond/goprogressivetracer/pkg/core"
	"github.com/dfraymond/goprogressivetracer/pkg/vec3"
)

func TestIsotropicScatteringPdfUniform(t *testing.T) {
	iso := NewIsotropic(vec3.New(0.5, 0.5, 0.5))
	want := 1.0 / (4.0 * math.Pi)
	got := iso.ScatteringPdf(vec3.Ray{}, core.HitRecord{}, vec3.Ray{})
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("ScatteringPdf = %v, want %v", got, want)
	}
}

func TestIsotropicPdfMatchesScatteringPdf(t *testing.T) {
	iso := NewIsotropic(vec3.New(0.5, 0.5, 0.5))
	hit := core.HitRecord{P: vec3.New(0, 0, 0)}
	rng := core.NewRng(3)
	srec, ok := iso.Scatter(vec3.Ray{}, hit, rng)
	if !ok {
		t.Fatal("expected scatter")
	}
	sampled := srec.Pdf.Generate(rng)
	if math.Abs(srec.Pdf.Value(sampled)-iso.ScatteringPdf(vec3.Ray{}, hit, vec3.NewRay(hit.P, sampled, 0))) > 1e-9 {
		t.Fatal("Pdf.Value and ScatteringPdf disagree")
	}
}
