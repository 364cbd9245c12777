package colr

// ForegroundPalette is the reserved palette index meaning "use the text
// foreground color" instead of a CPAL entry.
const ForegroundPalette uint16 = 0xFFFF

// ColorIndex selects a CPAL palette entry and scales its alpha.
// Colors in COLR are always palette references; the palette itself
// lives in the font's CPAL table and is not this package's concern.
type ColorIndex struct {
	// Index is the CPAL palette entry, or ForegroundPalette for the
	// current text color.
	Index uint16

	// Alpha multiplies the palette entry's alpha. The useful range is
	// [0, 1]; the encoder clamps to what F2Dot14 can represent.
	Alpha float32
}

// IsForeground returns true if the index selects the text foreground color.
func (c ColorIndex) IsForeground() bool {
	return c.Index == ForegroundPalette
}

// ExtendMode defines how a gradient extends beyond its color stops.
// The values match the on-disk encoding.
type ExtendMode uint8

const (
	// ExtendPad extends edge colors beyond bounds (default behavior).
	ExtendPad ExtendMode = 0
	// ExtendRepeat repeats the gradient pattern.
	ExtendRepeat ExtendMode = 1
	// ExtendReflect mirrors the gradient pattern.
	ExtendReflect ExtendMode = 2
)

// String returns the string representation of the extend mode.
func (m ExtendMode) String() string {
	switch m {
	case ExtendPad:
		return "Pad"
	case ExtendRepeat:
		return "Repeat"
	case ExtendReflect:
		return "Reflect"
	default:
		return unknownStr
	}
}

// ColorStop is a palette color at a position along a gradient's color line.
type ColorStop struct {
	// Offset is the stop position, normally in [0, 1] (F2Dot14 on disk).
	Offset float32

	// Palette is the color at this position.
	Palette ColorIndex
}

// ColorLine is the shared stop list of the gradient paints.
// Stops are encoded in the order given; producers normally supply them
// sorted by offset but the builder does not reorder them (layer and stop
// order is the frontend's decision).
type ColorLine struct {
	Extend ExtendMode
	Stops  []ColorStop
}

// CompositeMode selects the blending operation of a Composite paint.
// The values match the on-disk encoding (W3C compositing operators
// followed by the separable and non-separable blend modes).
type CompositeMode uint8

const (
	// Porter-Duff compositing operators.

	CompositeClear    CompositeMode = 0
	CompositeSrc      CompositeMode = 1
	CompositeDest     CompositeMode = 2
	CompositeSrcOver  CompositeMode = 3
	CompositeDestOver CompositeMode = 4
	CompositeSrcIn    CompositeMode = 5
	CompositeDestIn   CompositeMode = 6
	CompositeSrcOut   CompositeMode = 7
	CompositeDestOut  CompositeMode = 8
	CompositeSrcAtop  CompositeMode = 9
	CompositeDestAtop CompositeMode = 10
	CompositeXor      CompositeMode = 11
	CompositePlus     CompositeMode = 12

	// Separable blend modes.

	CompositeScreen     CompositeMode = 13
	CompositeOverlay    CompositeMode = 14
	CompositeDarken     CompositeMode = 15
	CompositeLighten    CompositeMode = 16
	CompositeColorDodge CompositeMode = 17
	CompositeColorBurn  CompositeMode = 18
	CompositeHardLight  CompositeMode = 19
	CompositeSoftLight  CompositeMode = 20
	CompositeDifference CompositeMode = 21
	CompositeExclusion  CompositeMode = 22
	CompositeMultiply   CompositeMode = 23

	// Non-separable (HSL) blend modes.

	CompositeHSLHue        CompositeMode = 24
	CompositeHSLSaturation CompositeMode = 25
	CompositeHSLColor      CompositeMode = 26
	CompositeHSLLuminosity CompositeMode = 27
)

// compositeModeNames maps each mode to its display name.
var compositeModeNames = map[CompositeMode]string{
	CompositeClear:         "Clear",
	CompositeSrc:           "Src",
	CompositeDest:          "Dest",
	CompositeSrcOver:       "SrcOver",
	CompositeDestOver:      "DestOver",
	CompositeSrcIn:         "SrcIn",
	CompositeDestIn:        "DestIn",
	CompositeSrcOut:        "SrcOut",
	CompositeDestOut:       "DestOut",
	CompositeSrcAtop:       "SrcAtop",
	CompositeDestAtop:      "DestAtop",
	CompositeXor:           "Xor",
	CompositePlus:          "Plus",
	CompositeScreen:        "Screen",
	CompositeOverlay:       "Overlay",
	CompositeDarken:        "Darken",
	CompositeLighten:       "Lighten",
	CompositeColorDodge:    "ColorDodge",
	CompositeColorBurn:     "ColorBurn",
	CompositeHardLight:     "HardLight",
	CompositeSoftLight:     "SoftLight",
	CompositeDifference:    "Difference",
	CompositeExclusion:     "Exclusion",
	CompositeMultiply:      "Multiply",
	CompositeHSLHue:        "HSLHue",
	CompositeHSLSaturation: "HSLSaturation",
	CompositeHSLColor:      "HSLColor",
	CompositeHSLLuminosity: "HSLLuminosity",
}

// String returns the string representation of the composite mode.
func (m CompositeMode) String() string {
	if name, ok := compositeModeNames[m]; ok {
		return name
	}
	return unknownStr
}

const unknownStr = "Unknown"
