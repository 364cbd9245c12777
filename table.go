package colr

import "slices"

// BaseGlyph binds a glyph ID to the root paint of its color rendering.
// One BaseGlyph becomes one base glyph record on disk.
type BaseGlyph struct {
	GlyphID uint16
	Paint   Paint
}

// Table is a finished color table: base glyph records sorted by glyph
// ID plus the shared layer list their paints index into. Layers is nil
// when no glyph ever appended layers.
type Table struct {
	BaseGlyphs []BaseGlyph
	Layers     *LayerList
}

// TableBuilder assembles a complete color table. It owns a
// LayerListBuilder for the shared layer list and collects one root
// paint per glyph. Like the layer-list builder it serves one table
// build on one goroutine.
type TableBuilder struct {
	layers *LayerListBuilder
	roots  map[uint16]Paint
}

// NewTableBuilder returns an empty table builder. allowLayerReuse is
// passed through to the underlying LayerListBuilder.
func NewTableBuilder(allowLayerReuse bool) *TableBuilder {
	return &TableBuilder{
		layers: NewLayerListBuilder(allowLayerReuse),
		roots:  make(map[uint16]Paint),
	}
}

// AddGlyphLayers ingests layers as one group and binds the resulting
// paint to gid as its root. It returns that paint, which may also be
// embedded in other glyphs' graphs. A later binding for the same glyph
// replaces the earlier one.
func (b *TableBuilder) AddGlyphLayers(gid uint16, layers []Paint) Paint {
	p := b.layers.AddPaintLayers(layers)
	b.roots[gid] = p
	return p
}

// AddGlyph binds a pre-built root paint to gid. Use it when the glyph's
// graph was assembled from paints returned by AddPaintLayers or needs
// no layer group at all. A later binding for the same glyph replaces
// the earlier one.
func (b *TableBuilder) AddGlyph(gid uint16, root Paint) {
	b.roots[gid] = root
}

// AddPaintLayers ingests one group into the shared layer list without
// binding it to a glyph. The returned paint can be embedded anywhere in
// a glyph graph added later.
func (b *TableBuilder) AddPaintLayers(paints []Paint) Paint {
	return b.layers.AddPaintLayers(paints)
}

// Stats returns the reuse counters of the underlying layer-list
// builder.
func (b *TableBuilder) Stats() ReuseStats {
	return b.layers.Stats()
}

// Build finalizes the table. Records are sorted by glyph ID, the order
// the format requires for binary search. The builder must not be used
// after Build.
func (b *TableBuilder) Build() *Table {
	glyphs := make([]BaseGlyph, 0, len(b.roots))
	for gid, p := range b.roots {
		glyphs = append(glyphs, BaseGlyph{GlyphID: gid, Paint: p})
	}
	slices.SortFunc(glyphs, func(a, b BaseGlyph) int {
		return int(a.GlyphID) - int(b.GlyphID)
	})
	return &Table{BaseGlyphs: glyphs, Layers: b.layers.Build()}
}
