package colr

import (
	"encoding/binary"
	"math"
)

// PaintFormat identifies the on-disk table format of a paint.
type PaintFormat uint8

// Paint table formats. The values are the format bytes written to the
// table; the variable-font formats (odd companions 3, 5, 7, 9, 13 and
// the translate/scale/rotate/skew family) are not produced by this
// package.
const (
	// PaintFormatLayerGroup is PaintColrLayers: a slice of the shared
	// layer list.
	PaintFormatLayerGroup PaintFormat = 1
	// PaintFormatSolid is PaintSolid: a palette color.
	PaintFormatSolid PaintFormat = 2
	// PaintFormatLinearGradient is PaintLinearGradient.
	PaintFormatLinearGradient PaintFormat = 4
	// PaintFormatRadialGradient is PaintRadialGradient.
	PaintFormatRadialGradient PaintFormat = 6
	// PaintFormatSweepGradient is PaintSweepGradient.
	PaintFormatSweepGradient PaintFormat = 8
	// PaintFormatGlyph is PaintGlyph: a child paint clipped to a glyph
	// outline.
	PaintFormatGlyph PaintFormat = 10
	// PaintFormatBaseGlyphRef is PaintColrGlyph: the paint graph of
	// another base glyph.
	PaintFormatBaseGlyphRef PaintFormat = 11
	// PaintFormatTransform is PaintTransform.
	PaintFormatTransform PaintFormat = 12
	// PaintFormatComposite is PaintComposite.
	PaintFormatComposite PaintFormat = 32
)

// Paint is one node in a color glyph's paint graph.
// This is a sealed interface - only types in this package implement it.
//
// The builder treats every paint as opaque content except LayerGroupRef,
// the one case it inspects structurally (and the only case it ever
// synthesizes). Recognizing that case is an ordinary type assertion:
//
//	if ref, ok := p.(LayerGroupRef); ok {
//		_ = ref.NumLayers
//	}
//
// All paints are plain value types; child paints are held by value
// through this interface, and variants must be passed by value, never
// by pointer, or case recognition fails. Paints are compared by full
// structural equality over all fields (see Equal) and hashed by a
// canonical content key, which is what the layer-reuse cache indexes.
type Paint interface {
	// Format returns the paint's on-disk table format.
	Format() PaintFormat

	// appendKey appends the paint's canonical content key to dst and
	// returns the extended slice. The key is self-delimiting (leading
	// format tag, fixed-width fields, length-prefixed lists), so keys
	// of equal sequences concatenate to equal bytes and vice versa.
	// As an unexported method it also seals the interface.
	appendKey(dst []byte) []byte
}

// LayerGroupRef is a reference to a contiguous run of the shared layer
// list: "the NumLayers entries starting at FirstLayer" (PaintColrLayers
// on disk). NumLayers is 1–255 for real runs; the zero value
// LayerGroupRef{0, 0} is the reserved empty-group sentinel returned for
// empty input and is never stored in the layer list.
type LayerGroupRef struct {
	NumLayers  uint8
	FirstLayer uint32
}

// Format implements Paint.
func (LayerGroupRef) Format() PaintFormat { return PaintFormatLayerGroup }

func (p LayerGroupRef) appendKey(dst []byte) []byte {
	dst = append(dst, byte(PaintFormatLayerGroup), p.NumLayers)
	return binary.BigEndian.AppendUint32(dst, p.FirstLayer)
}

// IsEmpty reports whether this is the reserved empty-group sentinel.
func (p LayerGroupRef) IsEmpty() bool {
	return p.NumLayers == 0 && p.FirstLayer == 0
}

// Solid fills with a single palette color (PaintSolid on disk).
type Solid struct {
	Palette ColorIndex
}

// Format implements Paint.
func (Solid) Format() PaintFormat { return PaintFormatSolid }

func (p Solid) appendKey(dst []byte) []byte {
	dst = append(dst, byte(PaintFormatSolid))
	return appendColorIndexKey(dst, p.Palette)
}

// LinearGradient fills with a linear gradient between two points, with
// a third point giving the rotation of the gradient normal
// (PaintLinearGradient on disk). Coordinates are font units.
type LinearGradient struct {
	Line   ColorLine
	X0, Y0 int16
	X1, Y1 int16
	X2, Y2 int16
}

// Format implements Paint.
func (LinearGradient) Format() PaintFormat { return PaintFormatLinearGradient }

func (p LinearGradient) appendKey(dst []byte) []byte {
	dst = append(dst, byte(PaintFormatLinearGradient))
	dst = appendColorLineKey(dst, p.Line)
	for _, v := range [6]int16{p.X0, p.Y0, p.X1, p.Y1, p.X2, p.Y2} {
		dst = binary.BigEndian.AppendUint16(dst, uint16(v))
	}
	return dst
}

// RadialGradient fills with a gradient between two circles
// (PaintRadialGradient on disk). Centers are font units, radii are
// unsigned font units.
type RadialGradient struct {
	Line   ColorLine
	X0, Y0 int16
	R0     uint16
	X1, Y1 int16
	R1     uint16
}

// Format implements Paint.
func (RadialGradient) Format() PaintFormat { return PaintFormatRadialGradient }

func (p RadialGradient) appendKey(dst []byte) []byte {
	dst = append(dst, byte(PaintFormatRadialGradient))
	dst = appendColorLineKey(dst, p.Line)
	dst = binary.BigEndian.AppendUint16(dst, uint16(p.X0))
	dst = binary.BigEndian.AppendUint16(dst, uint16(p.Y0))
	dst = binary.BigEndian.AppendUint16(dst, p.R0)
	dst = binary.BigEndian.AppendUint16(dst, uint16(p.X1))
	dst = binary.BigEndian.AppendUint16(dst, uint16(p.Y1))
	return binary.BigEndian.AppendUint16(dst, p.R1)
}

// SweepGradient fills with an angular gradient around a center
// (PaintSweepGradient on disk). Angles are half-turns: 1.0 means 180°,
// matching the table's F2Dot14 encoding.
type SweepGradient struct {
	Line             ColorLine
	CenterX, CenterY int16
	StartAngle       float32
	EndAngle         float32
}

// Format implements Paint.
func (SweepGradient) Format() PaintFormat { return PaintFormatSweepGradient }

func (p SweepGradient) appendKey(dst []byte) []byte {
	dst = append(dst, byte(PaintFormatSweepGradient))
	dst = appendColorLineKey(dst, p.Line)
	dst = binary.BigEndian.AppendUint16(dst, uint16(p.CenterX))
	dst = binary.BigEndian.AppendUint16(dst, uint16(p.CenterY))
	dst = binary.BigEndian.AppendUint32(dst, math.Float32bits(p.StartAngle))
	return binary.BigEndian.AppendUint32(dst, math.Float32bits(p.EndAngle))
}

// Glyph applies the Fill paint within the outline of a glyph
// (PaintGlyph on disk). The glyph contributes its shape only; its own
// color data, if any, is not consulted.
type Glyph struct {
	Fill    Paint
	GlyphID uint16
}

// Format implements Paint.
func (Glyph) Format() PaintFormat { return PaintFormatGlyph }

func (p Glyph) appendKey(dst []byte) []byte {
	dst = append(dst, byte(PaintFormatGlyph))
	dst = binary.BigEndian.AppendUint16(dst, p.GlyphID)
	return appendChildKey(dst, p.Fill)
}

// BaseGlyphRef renders the complete paint graph of another base glyph
// (PaintColrGlyph on disk), letting one color glyph reuse another
// wholesale.
type BaseGlyphRef struct {
	GlyphID uint16
}

// Format implements Paint.
func (BaseGlyphRef) Format() PaintFormat { return PaintFormatBaseGlyphRef }

func (p BaseGlyphRef) appendKey(dst []byte) []byte {
	dst = append(dst, byte(PaintFormatBaseGlyphRef))
	return binary.BigEndian.AppendUint16(dst, p.GlyphID)
}

// Transform renders the Child paint under an affine transformation
// (PaintTransform on disk).
type Transform struct {
	Child  Paint
	Matrix Affine
}

// Format implements Paint.
func (Transform) Format() PaintFormat { return PaintFormatTransform }

func (p Transform) appendKey(dst []byte) []byte {
	dst = append(dst, byte(PaintFormatTransform))
	for _, v := range [6]float32{p.Matrix.XX, p.Matrix.YX, p.Matrix.XY, p.Matrix.YY, p.Matrix.DX, p.Matrix.DY} {
		dst = binary.BigEndian.AppendUint32(dst, math.Float32bits(v))
	}
	return appendChildKey(dst, p.Child)
}

// Composite blends the Source paint onto the Backdrop paint with the
// given mode (PaintComposite on disk).
type Composite struct {
	Source   Paint
	Mode     CompositeMode
	Backdrop Paint
}

// Format implements Paint.
func (Composite) Format() PaintFormat { return PaintFormatComposite }

func (p Composite) appendKey(dst []byte) []byte {
	dst = append(dst, byte(PaintFormatComposite), byte(p.Mode))
	dst = appendChildKey(dst, p.Source)
	return appendChildKey(dst, p.Backdrop)
}

// Equal reports whether two paints have identical structural content.
// Equality is over every field recursively, including child paints.
// Nil compares equal only to nil.
func Equal(a, b Paint) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Format() != b.Format() {
		return false
	}
	return string(a.appendKey(nil)) == string(b.appendKey(nil))
}

// Content key helpers. Floats are keyed by their IEEE 754 bit pattern
// (exact matching, no epsilon), nested children by their own keys, and
// a nil child by a reserved zero tag no real format uses.

func appendColorIndexKey(dst []byte, c ColorIndex) []byte {
	dst = binary.BigEndian.AppendUint16(dst, c.Index)
	return binary.BigEndian.AppendUint32(dst, math.Float32bits(c.Alpha))
}

func appendColorLineKey(dst []byte, l ColorLine) []byte {
	dst = append(dst, byte(l.Extend))
	// Full length, not the table's uint16: keys must stay unambiguous
	// even for stop lists the encoder would reject.
	dst = binary.BigEndian.AppendUint32(dst, uint32(len(l.Stops)))
	for _, s := range l.Stops {
		dst = binary.BigEndian.AppendUint32(dst, math.Float32bits(s.Offset))
		dst = appendColorIndexKey(dst, s.Palette)
	}
	return dst
}

func appendChildKey(dst []byte, child Paint) []byte {
	if child == nil {
		return append(dst, 0)
	}
	return child.appendKey(dst)
}
