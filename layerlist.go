package colr

import "slices"

// maxLayerGroupCount is the most layers a single LayerGroupRef can
// span: the on-disk count field is one byte.
const maxLayerGroupCount = 255

// LayerList is the shared flat sequence of paints that every
// LayerGroupRef in a table indexes into. NumLayers always equals
// len(Paints); the count is kept explicit because the table stores it.
type LayerList struct {
	NumLayers uint32
	Paints    []Paint
}

// LayerListBuilder accumulates paint layers into one shared LayerList,
// one logical group at a time. Groups are appended in call order and
// indices never move once assigned, so paints returned by earlier calls
// stay valid for the lifetime of the build.
//
// A builder serves a single table build on a single goroutine. Create
// it with NewLayerListBuilder, feed it with AddPaintLayers, and finish
// with Build.
type LayerListBuilder struct {
	layers []Paint
	cache  *layerReuseCache // nil when layer reuse is disabled
	stats  ReuseStats
}

// NewLayerListBuilder returns an empty builder. When allowLayerReuse is
// true the builder replaces repeated layer runs with references to
// their first occurrence, trading build-time search for a smaller
// table. Reuse never changes what a returned paint expands to, only how
// it is stored.
func NewLayerListBuilder(allowLayerReuse bool) *LayerListBuilder {
	b := &LayerListBuilder{}
	if allowLayerReuse {
		b.cache = newLayerReuseCache()
	}
	return b
}

// AddPaintLayers adds one ordered group of paints to the layer list and
// returns a paint that stands in for exactly that group.
//
// An empty group returns the LayerGroupRef{0, 0} sentinel and a
// single-element group returns its element verbatim; neither touches
// the list. Larger groups are appended, after reuse reduction when
// enabled, and referenced by one LayerGroupRef, or by the root of a
// reference tree when more than 255 elements remain. The input slice is
// neither retained nor modified.
func (b *LayerListBuilder) AddPaintLayers(paints []Paint) Paint {
	b.stats.Groups++
	b.stats.LayersIn += len(paints)

	if len(paints) == 0 {
		return LayerGroupRef{}
	}
	if len(paints) == 1 {
		return paints[0]
	}

	layers := paints
	if b.cache != nil {
		layers = b.cache.tryReuse(slices.Clone(paints))
	}

	// A lone LayerGroupRef after reduction means the whole group was
	// already present as one contiguous run. Nothing to append.
	if len(layers) == 1 {
		if ref, ok := layers[0].(LayerGroupRef); ok {
			b.stats.CompleteReuses++
			b.stats.LayersSaved += len(paints)
			Logger().Debug("layer reuse: complete", "len", len(paints), "first", ref.FirstLayer)
			return ref
		}
	}

	first := uint32(len(b.layers))
	n := uint32(len(layers))
	b.layers = append(b.layers, layers...)
	if b.cache != nil {
		b.cache.register(layers, first)
	}
	b.stats.LayersSaved += len(paints) - len(layers)
	b.stats.LayersAppended += len(layers)

	if n > maxLayerGroupCount {
		return b.buildTree(first, n)
	}
	if n == 1 {
		return layers[0]
	}
	return LayerGroupRef{NumLayers: uint8(n), FirstLayer: first}
}

// buildTree wraps a contiguous region of the layer list in reference
// nodes so that no single LayerGroupRef spans more than 255 layers. One
// node per chunk of at most 255 layers is appended after the data it
// describes; if more than 255 nodes were needed, the node run is
// wrapped again. Tree nodes are never registered for reuse.
func (b *LayerListBuilder) buildTree(firstIndex, numLayers uint32) Paint {
	if numLayers <= maxLayerGroupCount {
		return LayerGroupRef{NumLayers: uint8(numLayers), FirstLayer: firstIndex}
	}

	nodeFirst := uint32(len(b.layers))
	for offset := uint32(0); offset < numLayers; {
		chunk := min(numLayers-offset, maxLayerGroupCount)
		b.layers = append(b.layers, LayerGroupRef{NumLayers: uint8(chunk), FirstLayer: firstIndex + offset})
		offset += chunk
	}
	numNodes := uint32(len(b.layers)) - nodeFirst
	b.stats.TreeNodes += int(numNodes)
	Logger().Debug("layer tree: level added", "nodes", numNodes, "first", nodeFirst)
	return b.buildTree(nodeFirst, numNodes)
}

// Len reports how many paints the layer list currently holds, tree
// nodes included.
func (b *LayerListBuilder) Len() int { return len(b.layers) }

// Build finalizes the builder and hands off its layer list without
// copying, or returns nil if no group ever appended layers. The builder
// must not be used after Build.
func (b *LayerListBuilder) Build() *LayerList {
	if len(b.layers) == 0 {
		return nil
	}
	Logger().Debug("layer list: built", "layers", len(b.layers), "treeNodes", b.stats.TreeNodes)
	return &LayerList{NumLayers: uint32(len(b.layers)), Paints: b.layers}
}

// ReuseStats reports what a builder did with the groups it ingested.
// The counters are diagnostic only and never influence the build.
type ReuseStats struct {
	Groups          int // ingestion calls, empty and singleton included
	LayersIn        int // paints received across all groups
	LayersAppended  int // paints appended to the list, tree nodes excluded
	LayersSaved     int // paints not appended because an existing run was referenced
	SequencesReused int // cached runs replaced by group references
	CompleteReuses  int // groups that resolved entirely to an existing run
	TreeNodes       int // reference nodes appended by tree packing
	CacheEntries    int // distinct subsequences indexed for reuse
}

// Stats returns a snapshot of the builder's counters.
func (b *LayerListBuilder) Stats() ReuseStats {
	s := b.stats
	if b.cache != nil {
		s.SequencesReused = b.cache.hits
		s.CacheEntries = len(b.cache.pool)
	}
	return s
}
