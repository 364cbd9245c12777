package colr

import "slices"

// maxReuseLen caps the length of subsequences indexed for layer reuse.
// The cap bounds the per-group window scan; longer windows add search
// cost with diminishing savings. It is a tunable, not a table limit.
const maxReuseLen = 32

// layerReuseCache indexes paint subsequences already present in the
// shared layer list, keyed by canonical content, so that a later group
// can reference an earlier run instead of re-emitting it.
//
// Entries map content to the absolute index of its first occurrence and
// are never updated or removed: the earliest index is always a valid
// anchor for any future backward reference. A cache lives and dies with
// one LayerListBuilder.
type layerReuseCache struct {
	pool map[string]uint32
	hits int // runs replaced across all tryReuse calls
}

func newLayerReuseCache() *layerReuseCache {
	return &layerReuseCache{pool: make(map[string]uint32)}
}

// paintKeys returns the canonical content key of each paint. Keys are
// self-delimiting, so the key of a run is the concatenation of its
// element keys.
func paintKeys(layers []Paint) [][]byte {
	keys := make([][]byte, len(layers))
	for i, p := range layers {
		keys[i] = p.appendKey(nil)
	}
	return keys
}

// tryReuse replaces cached runs in layers with LayerGroupRef paints
// until no window of length 2 to maxReuseLen matches. Candidates are
// tried longest first; among equal lengths the rightmost window wins,
// and each hit restarts the search on the shortened sequence. Every
// replacement removes at least one element, so the loop terminates.
//
// The input slice is spliced in place and returned.
func (c *layerReuseCache) tryReuse(layers []Paint) []Paint {
	keys := paintKeys(layers)
	var scratch []byte
search:
	for {
		for length := min(len(layers), maxReuseLen); length >= 2; length-- {
			for end := len(layers); end >= length; end-- {
				start := end - length
				scratch = scratch[:0]
				for _, k := range keys[start:end] {
					scratch = append(scratch, k...)
				}
				first, ok := c.pool[string(scratch)]
				if !ok {
					continue
				}
				ref := LayerGroupRef{NumLayers: uint8(length), FirstLayer: first}
				c.hits++
				Logger().Debug("layer reuse: replaced run", "start", start, "len", length, "first", first)
				layers = slices.Replace(layers, start, end, Paint(ref))
				keys = slices.Replace(keys, start, end, ref.appendKey(nil))
				continue search
			}
		}
		return layers
	}
}

// register indexes every window of length 2 to maxReuseLen of a run
// just appended to the shared list at firstIndex. A window whose
// content is already indexed keeps its existing, earlier index.
func (c *layerReuseCache) register(layers []Paint, firstIndex uint32) {
	keys := paintKeys(layers)
	var scratch []byte
	for start := range layers {
		scratch = scratch[:0]
		maxEnd := min(start+maxReuseLen, len(layers))
		for end := start + 1; end <= maxEnd; end++ {
			scratch = append(scratch, keys[end-1]...)
			if end-start < 2 {
				continue
			}
			if _, ok := c.pool[string(scratch)]; !ok {
				c.pool[string(scratch)] = firstIndex + uint32(start)
			}
		}
	}
}
