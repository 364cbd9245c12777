// Command colrdemo builds a synthetic color-glyph workload and reports
// how much layer sharing shrinks the table.
package main

import (
	"flag"
	"log"
	"log/slog"
	"math/rand"
	"os"

	"github.com/gogpu/colr"
)

func main() {
	var (
		glyphs  = flag.Int("glyphs", 200, "number of color glyphs")
		layers  = flag.Int("layers", 6, "paint layers per glyph")
		shared  = flag.Float64("shared", 0.5, "fraction of glyphs ending in a shared decoration run")
		seed    = flag.Int64("seed", 1, "workload seed")
		verbose = flag.Bool("v", false, "log reuse decisions to stderr")
	)
	flag.Parse()

	if *glyphs < 1 || *layers < 1 {
		log.Fatal("glyphs and layers must be at least 1")
	}
	if *verbose {
		colr.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	workload := buildWorkload(rand.New(rand.NewSource(*seed)), *glyphs, *layers, *shared)

	plain, plainData, _ := build(workload, false)
	dedup, dedupData, stats := build(workload, true)

	verify(plain, dedup)

	log.Printf("workload: %d glyphs, %d layers each, %.0f%% with shared decorations",
		*glyphs, *layers, *shared*100)
	log.Printf("without reuse: %5d layers, %7d bytes", layerCount(plain), len(plainData))
	log.Printf("with reuse:    %5d layers, %7d bytes", layerCount(dedup), len(dedupData))
	log.Printf("reuse: %d runs replaced, %d whole groups deduplicated, %d layers saved, %d cached windows",
		stats.SequencesReused, stats.CompleteReuses, stats.LayersSaved, stats.CacheEntries)
	if stats.TreeNodes > 0 {
		log.Printf("tree packing: %d intermediate nodes", stats.TreeNodes)
	}
}

// buildWorkload composes a layer stack per glyph: unique body layers
// followed, for a fraction of glyphs, by one of a few fixed decoration
// runs, the way an emoji set shares its outline and highlight layers.
func buildWorkload(rng *rand.Rand, glyphs, layersPer int, shared float64) [][]colr.Paint {
	decorations := [][]colr.Paint{
		{
			colr.Glyph{GlyphID: 900, Fill: colr.Solid{Palette: colr.ColorIndex{Index: 0, Alpha: 1}}},
			colr.Glyph{GlyphID: 901, Fill: colr.Solid{Palette: colr.ColorIndex{Index: 1, Alpha: 0.25}}},
		},
		{
			colr.Glyph{GlyphID: 902, Fill: colr.LinearGradient{
				Line: colr.ColorLine{Stops: []colr.ColorStop{
					{Offset: 0, Palette: colr.ColorIndex{Index: 2, Alpha: 0.5}},
					{Offset: 1, Palette: colr.ColorIndex{Index: 2, Alpha: 0}},
				}},
				Y1: 512,
			}},
			colr.Glyph{GlyphID: 903, Fill: colr.Solid{Palette: colr.ColorIndex{Index: 3, Alpha: 1}}},
		},
		{
			colr.Transform{
				Child:  colr.Glyph{GlyphID: 904, Fill: colr.Solid{Palette: colr.ColorIndex{Index: 4, Alpha: 1}}},
				Matrix: colr.AffineTranslate(16, -16),
			},
		},
	}

	out := make([][]colr.Paint, glyphs)
	for g := range out {
		var tail []colr.Paint
		own := layersPer
		if rng.Float64() < shared {
			tail = decorations[rng.Intn(len(decorations))]
			if own > len(tail) {
				own -= len(tail)
			}
		}
		stack := make([]colr.Paint, 0, own+len(tail))
		for i := 0; i < own; i++ {
			stack = append(stack, randomLayer(rng))
		}
		stack = append(stack, tail...)
		out[g] = stack
	}
	return out
}

// randomLayer returns a body layer: an outline glyph with a solid or
// gradient fill, occasionally transformed.
func randomLayer(rng *rand.Rand) colr.Paint {
	gid := uint16(rng.Intn(800))
	palette := colr.ColorIndex{Index: uint16(rng.Intn(64)), Alpha: 1}

	switch rng.Intn(8) {
	case 0:
		return colr.Glyph{GlyphID: gid, Fill: colr.LinearGradient{
			Line: colr.ColorLine{Stops: []colr.ColorStop{
				{Offset: 0, Palette: palette},
				{Offset: 1, Palette: colr.ColorIndex{Index: palette.Index, Alpha: 0.5}},
			}},
			X1: int16(rng.Intn(1024)),
			Y2: int16(rng.Intn(1024)),
		}}
	case 1:
		return colr.Glyph{GlyphID: gid, Fill: colr.RadialGradient{
			Line: colr.ColorLine{Extend: colr.ExtendPad, Stops: []colr.ColorStop{
				{Offset: 0, Palette: palette},
				{Offset: 1, Palette: colr.ColorIndex{Index: colr.ForegroundPalette, Alpha: 1}},
			}},
			R1: uint16(rng.Intn(512) + 1),
		}}
	case 2:
		return colr.Transform{
			Child:  colr.Glyph{GlyphID: gid, Fill: colr.Solid{Palette: palette}},
			Matrix: colr.AffineScale(0.5+rng.Float32(), 0.5+rng.Float32()),
		}
	default:
		return colr.Glyph{GlyphID: gid, Fill: colr.Solid{Palette: palette}}
	}
}

func build(workload [][]colr.Paint, reuse bool) (*colr.Table, []byte, colr.ReuseStats) {
	b := colr.NewTableBuilder(reuse)
	for gid, stack := range workload {
		b.AddGlyphLayers(uint16(gid), stack)
	}
	table := b.Build()
	data, err := colr.Encode(table)
	if err != nil {
		log.Fatalf("encode: %v", err)
	}
	return table, data, b.Stats()
}

// verify checks that every glyph expands to the same layers whether or
// not the list was deduplicated.
func verify(plain, dedup *colr.Table) {
	for i := range plain.BaseGlyphs {
		pg, dg := plain.BaseGlyphs[i], dedup.BaseGlyphs[i]
		want, err := colr.ExpandLayers(pg.Paint, plain.Layers)
		if err != nil {
			log.Fatalf("glyph %d: expand without reuse: %v", pg.GlyphID, err)
		}
		got, err := colr.ExpandLayers(dg.Paint, dedup.Layers)
		if err != nil {
			log.Fatalf("glyph %d: expand with reuse: %v", dg.GlyphID, err)
		}
		if len(got) != len(want) {
			log.Fatalf("glyph %d: %d layers with reuse, %d without", pg.GlyphID, len(got), len(want))
		}
		for j := range got {
			if !colr.Equal(got[j], want[j]) {
				log.Fatalf("glyph %d: layer %d diverges after deduplication", pg.GlyphID, j)
			}
		}
	}
}

func layerCount(t *colr.Table) int {
	if t.Layers == nil {
		return 0
	}
	return len(t.Layers.Paints)
}
