package geometry

import (
	"YogaPoseAPI/internal/entity"
	"errors"
	"math"
	"testing"
)

func pt(x, y float64) entity.Point {
	return entity.Point{X: x, Y: y}
}

func pt3(x, y, z float64) entity.Point {
	return entity.Point{X: x, Y: y, Z: &z}
}

func TestAngleAtVertex(t *testing.T) {
	tests := []struct {
		name   string
		p1     entity.Point
		vertex entity.Point
		p2     entity.Point
		want   float64
	}{
		{"right angle", pt(1, 0), pt(0, 0), pt(0, 1), 90},
		{"straight line", pt(-1, 0), pt(0, 0), pt(1, 0), 180},
		{"collinear same side", pt(1, 0), pt(0, 0), pt(2, 0), 0},
		{"45 degrees", pt(1, 0), pt(0, 0), pt(1, 1), 45},
		{"offset vertex", pt(0.6, 0.4), pt(0.5, 0.4), pt(0.5, 0.7), 90},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AngleAtVertex(tt.p1, tt.vertex, tt.p2)
			if err != nil {
				t.Fatalf("AngleAtVertex returned error: %v", err)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Fatalf("AngleAtVertex = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAngleAtVertex3D(t *testing.T) {
	got, err := AngleAtVertex(pt3(1, 0, 0), pt3(0, 0, 0), pt3(0, 0, 1))
	if err != nil {
		t.Fatalf("AngleAtVertex returned error: %v", err)
	}
	if math.Abs(got-90) > 1e-9 {
		t.Fatalf("3D angle = %v, want 90", got)
	}

	// Z only participates when all three points carry it.
	z := 5.0
	mixed := entity.Point{X: 1, Y: 0, Z: &z}
	got, err = AngleAtVertex(mixed, pt(0, 0), pt(0, 1))
	if err != nil {
		t.Fatalf("AngleAtVertex returned error: %v", err)
	}
	if math.Abs(got-90) > 1e-9 {
		t.Fatalf("mixed-dimension angle = %v, want 90", got)
	}
}

func TestAngleAtVertexDegenerate(t *testing.T) {
	tests := []struct {
		name   string
		p1     entity.Point
		vertex entity.Point
		p2     entity.Point
	}{
		{"p1 equals vertex", pt(0.5, 0.5), pt(0.5, 0.5), pt(1, 1)},
		{"p2 equals vertex", pt(1, 1), pt(0.5, 0.5), pt(0.5, 0.5)},
		{"all identical", pt(0.2, 0.2), pt(0.2, 0.2), pt(0.2, 0.2)},
		{"below epsilon", pt(1e-8, 0), pt(0, 0), pt(1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AngleAtVertex(tt.p1, tt.vertex, tt.p2)
			if !errors.Is(err, ErrDegenerateGeometry) {
				t.Fatalf("expected ErrDegenerateGeometry, got angle=%v err=%v", got, err)
			}
			if math.IsNaN(got) || math.IsInf(got, 0) {
				t.Fatalf("degenerate input produced non-finite value %v", got)
			}
		})
	}
}

func TestAngleCosineClamping(t *testing.T) {
	// Near-collinear points whose dot product can overshoot |1| in floating
	// point. Must never return NaN.
	p1 := pt(0.1000000001, 0.2000000002)
	v := pt(0.5, 1.0)
	p2 := pt(0.9, 1.8)

	got, err := AngleAtVertex(p1, v, p2)
	if err != nil {
		t.Fatalf("AngleAtVertex returned error: %v", err)
	}
	if math.IsNaN(got) {
		t.Fatal("AngleAtVertex returned NaN for near-collinear points")
	}
	if got < 0 || got > 180 {
		t.Fatalf("angle %v out of [0, 180]", got)
	}
}

func TestDistance(t *testing.T) {
	if d := Distance(pt(0, 0), pt(3, 4)); math.Abs(d-5) > 1e-9 {
		t.Fatalf("Distance = %v, want 5", d)
	}
	if d := Distance(pt3(0, 0, 0), pt3(1, 2, 2)); math.Abs(d-3) > 1e-9 {
		t.Fatalf("3D Distance = %v, want 3", d)
	}
	if d := Distance(pt(0.35, 0.7), pt(0.35, 0.7)); d != 0 {
		t.Fatalf("Distance of identical points = %v, want 0", d)
	}
}
