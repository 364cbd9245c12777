// Package colr provides construction primitives for OpenType COLR v1
// color-glyph tables.
//
// # Overview
//
// colr is the write-side companion to color-font consumers in the GoGPU
// ecosystem (gg's text/emoji package parses COLR; this package builds it).
// A font compiler describes each color glyph as an ordered stack of paint
// layers; colr packs those stacks into the single shared layer list that
// the binary table indexes into, deduplicating repeated layer runs and
// splitting oversized groups into bounded reference trees.
//
// # Quick Start
//
//	import "github.com/gogpu/colr"
//
//	// One builder per table build.
//	b := colr.NewTableBuilder(true) // true = deduplicate repeated layer runs
//
//	// Describe each color glyph as its ordered paint layers.
//	b.AddGlyphLayers(5, []colr.Paint{
//		colr.Glyph{Fill: colr.Solid{Palette: colr.ColorIndex{Index: 0, Alpha: 1}}, GlyphID: 10},
//		colr.Glyph{Fill: colr.Solid{Palette: colr.ColorIndex{Index: 1, Alpha: 1}}, GlyphID: 11},
//	})
//
//	// Serialize the finished table.
//	data, err := colr.Encode(b.Build())
//
// Lower-level control is available through LayerListBuilder, which accepts
// one logical layer group per call and returns the Paint standing in for it.
//
// # Layer Reuse
//
// Color fonts repeat themselves: glyph families share decorations, skin-tone
// variants share everything but a few layers. With reuse enabled the builder
// keeps a content-addressed index of every layer run it has emitted (run
// lengths 2–32) and replaces repeated runs with references to their first
// occurrence instead of appending them again. Reuse changes only the encoded
// size, never the expansion semantics: ExpandLayers yields identical layer
// sequences with reuse on or off.
//
// # Reference Trees
//
// A single layer-group reference addresses at most 255 layers (the count is
// one byte on disk). Groups larger than that are packed into a tree of
// bounded references appended after the data they describe, so every
// reference in the final table respects the limit.
//
// # Concurrency
//
// Builders are single-owner and not safe for concurrent use; each table
// build uses its own builder. Package-level logging configuration
// (SetLogger) is safe for concurrent use.
package colr

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
