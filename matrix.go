package colr

import "math"

// Affine is the 2x3 transformation matrix of a Transform paint.
// Field names and on-disk order follow the table format:
//
//	x' = XX*x + XY*y + DX
//	y' = YX*x + YY*y + DY
//
// Values are encoded as 16.16 fixed-point numbers.
type Affine struct {
	XX, YX, XY, YY, DX, DY float32
}

// AffineIdentity returns the identity transformation.
func AffineIdentity() Affine {
	return Affine{
		XX: 1, YX: 0,
		XY: 0, YY: 1,
		DX: 0, DY: 0,
	}
}

// AffineTranslate creates a translation matrix.
func AffineTranslate(dx, dy float32) Affine {
	return Affine{
		XX: 1, YX: 0,
		XY: 0, YY: 1,
		DX: dx, DY: dy,
	}
}

// AffineScale creates a scaling matrix.
func AffineScale(sx, sy float32) Affine {
	return Affine{
		XX: sx, YX: 0,
		XY: 0, YY: sy,
		DX: 0, DY: 0,
	}
}

// AffineRotate creates a rotation matrix (angle in radians).
func AffineRotate(angle float32) Affine {
	cos := float32(math.Cos(float64(angle)))
	sin := float32(math.Sin(float64(angle)))
	return Affine{
		XX: cos, YX: sin,
		XY: -sin, YY: cos,
		DX: 0, DY: 0,
	}
}

// Multiply multiplies two matrices (m * other).
func (m Affine) Multiply(other Affine) Affine {
	return Affine{
		XX: m.XX*other.XX + m.XY*other.YX,
		YX: m.YX*other.XX + m.YY*other.YX,
		XY: m.XX*other.XY + m.XY*other.YY,
		YY: m.YX*other.XY + m.YY*other.YY,
		DX: m.XX*other.DX + m.XY*other.DY + m.DX,
		DY: m.YX*other.DX + m.YY*other.DY + m.DY,
	}
}

// IsIdentity returns true if the matrix is the identity matrix.
func (m Affine) IsIdentity() bool {
	return m.XX == 1 && m.YX == 0 && m.XY == 0 &&
		m.YY == 1 && m.DX == 0 && m.DY == 0
}
