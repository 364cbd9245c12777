package colr

import (
	"encoding/binary"
	"errors"
	"math"
)

// Encoding errors.
var (
	// ErrTooManyColorStops indicates a color line with more stops than
	// the table's 16-bit count can hold.
	ErrTooManyColorStops = errors.New("colr: color line has more than 65535 stops")

	// ErrTooManyLayers indicates a layer list longer than the table's
	// 32-bit count can hold.
	ErrTooManyLayers = errors.New("colr: layer list exceeds uint32 capacity")

	// ErrTooManyGlyphs indicates more base glyph records than the
	// table's 32-bit count can hold.
	ErrTooManyGlyphs = errors.New("colr: base glyph list exceeds uint32 capacity")

	// ErrPaintOffsetOverflow indicates a subtable landed more than
	// 0xFFFFFF bytes after its parent paint, beyond 24-bit offset reach.
	ErrPaintOffsetOverflow = errors.New("colr: paint offset exceeds 24 bits")

	// ErrNilPaint indicates a nil paint in a base glyph record, a layer
	// list entry, or a child slot that the format cannot leave empty.
	ErrNilPaint = errors.New("colr: nil paint")

	// ErrUnsupportedPaint indicates a paint the encoder has no table
	// layout for, such as a variant passed by pointer.
	ErrUnsupportedPaint = errors.New("colr: unsupported paint type")
)

// headerLen is the size of a version 1 header: the five version 0
// fields followed by five 32-bit offsets.
const headerLen = 34

// Encode serializes t as a binary color table, version 1.
//
// Base glyph records and layer-list entries address their paint tables
// with 32-bit offsets from their list's start. Child paints are written
// after their parent and addressed by 24-bit offsets from the parent's
// first byte. Each paint graph is serialized per occurrence, with no
// byte-level subtable sharing across parents: sharing whole layer runs
// is the layer list's job.
//
// The version 0 record fields in the header stay zero; a reader that
// only understands version 0 sees an empty table.
func Encode(t *Table) ([]byte, error) {
	e := &encoder{buf: make([]byte, 0, 1024)}

	e.buf = binary.BigEndian.AppendUint16(e.buf, 1) // version
	e.buf = binary.BigEndian.AppendUint16(e.buf, 0) // numBaseGlyphRecords
	e.buf = binary.BigEndian.AppendUint32(e.buf, 0) // baseGlyphRecordsOffset
	e.buf = binary.BigEndian.AppendUint32(e.buf, 0) // layerRecordsOffset
	e.buf = binary.BigEndian.AppendUint16(e.buf, 0) // numLayerRecords
	baseListPos := len(e.buf)
	e.buf = binary.BigEndian.AppendUint32(e.buf, 0) // baseGlyphListOffset
	layerListPos := len(e.buf)
	e.buf = binary.BigEndian.AppendUint32(e.buf, 0) // layerListOffset
	e.buf = binary.BigEndian.AppendUint32(e.buf, 0) // clipListOffset
	e.buf = binary.BigEndian.AppendUint32(e.buf, 0) // varIndexMapOffset
	e.buf = binary.BigEndian.AppendUint32(e.buf, 0) // itemVariationStoreOffset

	var baseListStart uint32
	var glyphOffsetPos []int
	if len(t.BaseGlyphs) > 0 {
		if uint64(len(t.BaseGlyphs)) > math.MaxUint32 {
			return nil, ErrTooManyGlyphs
		}
		baseListStart = uint32(len(e.buf))
		binary.BigEndian.PutUint32(e.buf[baseListPos:], baseListStart)
		e.buf = binary.BigEndian.AppendUint32(e.buf, uint32(len(t.BaseGlyphs)))
		glyphOffsetPos = make([]int, len(t.BaseGlyphs))
		for i, g := range t.BaseGlyphs {
			e.buf = binary.BigEndian.AppendUint16(e.buf, g.GlyphID)
			glyphOffsetPos[i] = len(e.buf)
			e.buf = binary.BigEndian.AppendUint32(e.buf, 0)
		}
	}

	var layerListStart uint32
	var layerOffsetPos []int
	if t.Layers != nil {
		if uint64(len(t.Layers.Paints)) > math.MaxUint32 {
			return nil, ErrTooManyLayers
		}
		layerListStart = uint32(len(e.buf))
		binary.BigEndian.PutUint32(e.buf[layerListPos:], layerListStart)
		e.buf = binary.BigEndian.AppendUint32(e.buf, uint32(len(t.Layers.Paints)))
		layerOffsetPos = make([]int, len(t.Layers.Paints))
		for i := range t.Layers.Paints {
			layerOffsetPos[i] = len(e.buf)
			e.buf = binary.BigEndian.AppendUint32(e.buf, 0)
		}
	}

	for i, g := range t.BaseGlyphs {
		start, err := e.encodePaint(g.Paint)
		if err != nil {
			return nil, err
		}
		binary.BigEndian.PutUint32(e.buf[glyphOffsetPos[i]:], start-baseListStart)
	}
	if t.Layers != nil {
		for i, p := range t.Layers.Paints {
			start, err := e.encodePaint(p)
			if err != nil {
				return nil, err
			}
			binary.BigEndian.PutUint32(e.buf[layerOffsetPos[i]:], start-layerListStart)
		}
	}

	return e.buf, nil
}

// encoder accumulates the table bytes and patches offset fields as
// subtables are placed.
type encoder struct {
	buf []byte
}

// encodePaint appends the paint table for p, child subtables included,
// and returns the table's start position.
func (e *encoder) encodePaint(p Paint) (uint32, error) {
	if p == nil {
		return 0, ErrNilPaint
	}
	start := uint32(len(e.buf))
	switch v := p.(type) {
	case LayerGroupRef:
		e.buf = append(e.buf, byte(PaintFormatLayerGroup), v.NumLayers)
		e.buf = binary.BigEndian.AppendUint32(e.buf, v.FirstLayer)
	case Solid:
		e.buf = append(e.buf, byte(PaintFormatSolid))
		e.buf = binary.BigEndian.AppendUint16(e.buf, v.Palette.Index)
		e.buf = binary.BigEndian.AppendUint16(e.buf, uint16(f2dot14(v.Palette.Alpha)))
	case LinearGradient:
		e.buf = append(e.buf, byte(PaintFormatLinearGradient))
		linePos := e.reserve24()
		for _, c := range [6]int16{v.X0, v.Y0, v.X1, v.Y1, v.X2, v.Y2} {
			e.buf = binary.BigEndian.AppendUint16(e.buf, uint16(c))
		}
		if err := e.placeColorLine(start, linePos, v.Line); err != nil {
			return 0, err
		}
	case RadialGradient:
		e.buf = append(e.buf, byte(PaintFormatRadialGradient))
		linePos := e.reserve24()
		e.buf = binary.BigEndian.AppendUint16(e.buf, uint16(v.X0))
		e.buf = binary.BigEndian.AppendUint16(e.buf, uint16(v.Y0))
		e.buf = binary.BigEndian.AppendUint16(e.buf, v.R0)
		e.buf = binary.BigEndian.AppendUint16(e.buf, uint16(v.X1))
		e.buf = binary.BigEndian.AppendUint16(e.buf, uint16(v.Y1))
		e.buf = binary.BigEndian.AppendUint16(e.buf, v.R1)
		if err := e.placeColorLine(start, linePos, v.Line); err != nil {
			return 0, err
		}
	case SweepGradient:
		e.buf = append(e.buf, byte(PaintFormatSweepGradient))
		linePos := e.reserve24()
		e.buf = binary.BigEndian.AppendUint16(e.buf, uint16(v.CenterX))
		e.buf = binary.BigEndian.AppendUint16(e.buf, uint16(v.CenterY))
		e.buf = binary.BigEndian.AppendUint16(e.buf, uint16(f2dot14(v.StartAngle)))
		e.buf = binary.BigEndian.AppendUint16(e.buf, uint16(f2dot14(v.EndAngle)))
		if err := e.placeColorLine(start, linePos, v.Line); err != nil {
			return 0, err
		}
	case Glyph:
		e.buf = append(e.buf, byte(PaintFormatGlyph))
		fillPos := e.reserve24()
		e.buf = binary.BigEndian.AppendUint16(e.buf, v.GlyphID)
		if err := e.placeChild(start, fillPos, v.Fill); err != nil {
			return 0, err
		}
	case BaseGlyphRef:
		e.buf = append(e.buf, byte(PaintFormatBaseGlyphRef))
		e.buf = binary.BigEndian.AppendUint16(e.buf, v.GlyphID)
	case Transform:
		e.buf = append(e.buf, byte(PaintFormatTransform))
		childPos := e.reserve24()
		matrixPos := e.reserve24()
		if err := e.placeChild(start, childPos, v.Child); err != nil {
			return 0, err
		}
		matrixStart := uint32(len(e.buf))
		for _, f := range [6]float32{v.Matrix.XX, v.Matrix.YX, v.Matrix.XY, v.Matrix.YY, v.Matrix.DX, v.Matrix.DY} {
			e.buf = binary.BigEndian.AppendUint32(e.buf, uint32(fixed1616(f)))
		}
		if err := e.patch24(start, matrixPos, matrixStart); err != nil {
			return 0, err
		}
	case Composite:
		e.buf = append(e.buf, byte(PaintFormatComposite))
		srcPos := e.reserve24()
		e.buf = append(e.buf, byte(v.Mode))
		backPos := e.reserve24()
		if err := e.placeChild(start, srcPos, v.Source); err != nil {
			return 0, err
		}
		if err := e.placeChild(start, backPos, v.Backdrop); err != nil {
			return 0, err
		}
	default:
		return 0, ErrUnsupportedPaint
	}
	return start, nil
}

// placeChild appends the child's paint table and patches the 3-byte
// offset field reserved at pos inside the parent starting at parent.
func (e *encoder) placeChild(parent uint32, pos int, child Paint) error {
	childStart, err := e.encodePaint(child)
	if err != nil {
		return err
	}
	return e.patch24(parent, pos, childStart)
}

// placeColorLine appends a color line table and patches the 3-byte
// offset field reserved at pos inside the parent starting at parent.
func (e *encoder) placeColorLine(parent uint32, pos int, line ColorLine) error {
	if len(line.Stops) > math.MaxUint16 {
		return ErrTooManyColorStops
	}
	lineStart := uint32(len(e.buf))
	e.buf = append(e.buf, byte(line.Extend))
	e.buf = binary.BigEndian.AppendUint16(e.buf, uint16(len(line.Stops)))
	for _, s := range line.Stops {
		e.buf = binary.BigEndian.AppendUint16(e.buf, uint16(f2dot14(s.Offset)))
		e.buf = binary.BigEndian.AppendUint16(e.buf, s.Palette.Index)
		e.buf = binary.BigEndian.AppendUint16(e.buf, uint16(f2dot14(s.Palette.Alpha)))
	}
	return e.patch24(parent, pos, lineStart)
}

// reserve24 appends a zeroed 3-byte offset field and returns its
// position for a later patch.
func (e *encoder) reserve24() int {
	pos := len(e.buf)
	e.buf = append(e.buf, 0, 0, 0)
	return pos
}

// patch24 writes the distance from parent to target into the 3-byte
// field at pos. Subtables always follow their parent, so the distance
// is never negative.
func (e *encoder) patch24(parent uint32, pos int, target uint32) error {
	delta := target - parent
	if delta > 0xFFFFFF {
		return ErrPaintOffsetOverflow
	}
	e.buf[pos] = byte(delta >> 16)
	e.buf[pos+1] = byte(delta >> 8)
	e.buf[pos+2] = byte(delta)
	return nil
}

// f2dot14 converts a float to 2.14 fixed point, rounding half away from
// zero and clamping to the representable range.
func f2dot14(v float32) int16 {
	r := math.Round(float64(v) * 16384)
	if r > math.MaxInt16 {
		return math.MaxInt16
	}
	if r < math.MinInt16 {
		return math.MinInt16
	}
	return int16(r)
}

// fixed1616 converts a float to 16.16 fixed point, rounding half away
// from zero and clamping to the representable range.
func fixed1616(v float32) int32 {
	r := math.Round(float64(v) * 65536)
	if r > math.MaxInt32 {
		return math.MaxInt32
	}
	if r < math.MinInt32 {
		return math.MinInt32
	}
	return int32(r)
}
