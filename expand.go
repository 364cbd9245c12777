package colr

import "errors"

// Layer expansion errors.
var (
	// ErrNoLayerList indicates a LayerGroupRef was expanded without a
	// layer list to resolve it against.
	ErrNoLayerList = errors.New("colr: no layer list to resolve layer group against")

	// ErrLayerOutOfRange indicates a LayerGroupRef spans layers beyond
	// the end of the layer list.
	ErrLayerOutOfRange = errors.New("colr: layer group out of range")

	// ErrForwardLayerRef indicates a layer group stored in the list
	// references layers at or after its own position.
	ErrForwardLayerRef = errors.New("colr: layer group references forward layers")
)

// ExpandLayers resolves p against list and returns the flat sequence of
// layers it stands for. A LayerGroupRef expands to the referenced run
// with any nested group references resolved recursively; the empty
// sentinel expands to nothing; any other paint expands to itself.
// Children held inside non-group paints are returned as stored, never
// rewritten.
//
// Expanding the paint returned by AddPaintLayers against the built list
// yields the ingested group with any group references it contained
// flattened, whether or not layer reuse was enabled.
//
// Group references stored in the list must point strictly before their
// own position, which every builder-produced list satisfies; a
// violation reports ErrForwardLayerRef rather than recursing forever.
func ExpandLayers(p Paint, list *LayerList) ([]Paint, error) {
	ref, ok := p.(LayerGroupRef)
	if !ok {
		return []Paint{p}, nil
	}
	if ref.IsEmpty() {
		return nil, nil
	}
	if list == nil {
		return nil, ErrNoLayerList
	}
	return expandGroup(nil, list, ref, uint32(len(list.Paints)))
}

// expandGroup appends the flattened content of ref to out. Group
// references found inside the list may only span layers strictly before
// their own position; limit carries that position down the recursion.
func expandGroup(out []Paint, list *LayerList, ref LayerGroupRef, limit uint32) ([]Paint, error) {
	first := ref.FirstLayer
	end := first + uint32(ref.NumLayers)
	if end < first || end > uint32(len(list.Paints)) {
		return nil, ErrLayerOutOfRange
	}
	if end > limit {
		return nil, ErrForwardLayerRef
	}
	for i := first; i < end; i++ {
		child, ok := list.Paints[i].(LayerGroupRef)
		if !ok {
			out = append(out, list.Paints[i])
			continue
		}
		if child.IsEmpty() {
			continue
		}
		var err error
		out, err = expandGroup(out, list, child, i)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}
