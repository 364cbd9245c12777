package colr

import (
	"math"
	"testing"
)

func TestAffineIsIdentity(t *testing.T) {
	tests := []struct {
		name string
		m    Affine
		want bool
	}{
		{"identity", AffineIdentity(), true},
		{"scale 1,1 (identity via scale)", AffineScale(1, 1), true},
		{"translate 0,0 (identity via translate)", AffineTranslate(0, 0), true},
		{"rotate 0", AffineRotate(0), true},
		{"translation", AffineTranslate(10, 20), false},
		{"scale", AffineScale(2, 2), false},
		{"rotation", AffineRotate(math.Pi / 4), false},
		{"zero matrix", Affine{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.IsIdentity(); got != tt.want {
				t.Errorf("Affine%+v.IsIdentity() = %v, want %v", tt.m, got, tt.want)
			}
		})
	}
}

// apply maps a point through the matrix, the way a renderer would.
func apply(m Affine, x, y float32) (float32, float32) {
	return m.XX*x + m.XY*y + m.DX, m.YX*x + m.YY*y + m.DY
}

func TestAffineMultiply(t *testing.T) {
	const epsilon = 1e-5

	tests := []struct {
		name  string
		m     Affine
		x, y  float32
		wantX float32
		wantY float32
	}{
		{"identity * identity", AffineIdentity().Multiply(AffineIdentity()), 3, 4, 3, 4},
		{"scale then translate", AffineTranslate(10, 20).Multiply(AffineScale(2, 3)), 1, 1, 12, 23},
		{"translate then scale", AffineScale(2, 3).Multiply(AffineTranslate(10, 20)), 1, 1, 22, 63},
		{"rotate 90deg", AffineRotate(math.Pi / 2), 1, 0, 0, 1},
		{"rotate 180deg", AffineRotate(math.Pi), 1, 2, -1, -2},
		{"rotate then scale", AffineScale(2, 2).Multiply(AffineRotate(math.Pi / 2)), 1, 0, 0, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotX, gotY := apply(tt.m, tt.x, tt.y)
			if math.Abs(float64(gotX-tt.wantX)) > epsilon || math.Abs(float64(gotY-tt.wantY)) > epsilon {
				t.Errorf("apply(%v, %v) = (%v, %v), want (%v, %v)",
					tt.x, tt.y, gotX, gotY, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestAffineMultiplyIdentityNeutral(t *testing.T) {
	m := Affine{XX: 2, YX: 0.5, XY: -0.5, YY: 3, DX: 7, DY: -7}
	if got := m.Multiply(AffineIdentity()); got != m {
		t.Errorf("m.Multiply(identity) = %+v, want %+v", got, m)
	}
	if got := AffineIdentity().Multiply(m); got != m {
		t.Errorf("identity.Multiply(m) = %+v, want %+v", got, m)
	}
}

func TestAffineRotateOrthogonal(t *testing.T) {
	// A rotation maps the unit basis vectors to unit vectors, at every
	// angle.
	for deg := 0; deg < 360; deg += 15 {
		m := AffineRotate(float32(deg) * math.Pi / 180)
		x, y := apply(m, 1, 0)
		if n := math.Hypot(float64(x), float64(y)); math.Abs(n-1) > 1e-5 {
			t.Errorf("AffineRotate(%d deg): |e1 image| = %v, want 1", deg, n)
		}
		x, y = apply(m, 0, 1)
		if n := math.Hypot(float64(x), float64(y)); math.Abs(n-1) > 1e-5 {
			t.Errorf("AffineRotate(%d deg): |e2 image| = %v, want 1", deg, n)
		}
	}
}

func TestAffineConstructorsCompose(t *testing.T) {
	// Translate(10, 20) * Scale(2, 2) built by Multiply equals the
	// matrix written out by hand.
	got := AffineTranslate(10, 20).Multiply(AffineScale(2, 2))
	want := Affine{XX: 2, YX: 0, XY: 0, YY: 2, DX: 10, DY: 20}
	if got != want {
		t.Errorf("compose = %+v, want %+v", got, want)
	}
}
