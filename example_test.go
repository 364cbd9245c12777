package colr_test

import (
	"fmt"

	"github.com/gogpu/colr"
)

// ExampleTableBuilder builds a two-glyph table where both glyphs share
// their first two layers, so the second glyph stores a back-reference
// instead of repeating them.
func ExampleTableBuilder() {
	builder := colr.NewTableBuilder(true)

	body := colr.Glyph{GlyphID: 4, Fill: colr.Solid{Palette: colr.ColorIndex{Index: 0, Alpha: 1}}}
	eyes := colr.Glyph{GlyphID: 5, Fill: colr.Solid{Palette: colr.ColorIndex{Index: 1, Alpha: 1}}}
	blush := colr.Glyph{GlyphID: 6, Fill: colr.Solid{Palette: colr.ColorIndex{Index: 2, Alpha: 0.5}}}
	tear := colr.Glyph{GlyphID: 7, Fill: colr.Solid{Palette: colr.ColorIndex{Index: 3, Alpha: 1}}}

	builder.AddGlyphLayers(1, []colr.Paint{body, eyes, blush})
	builder.AddGlyphLayers(2, []colr.Paint{body, eyes, tear})

	table := builder.Build()
	data, err := colr.Encode(table)
	if err != nil {
		fmt.Println("encode:", err)
		return
	}

	stats := builder.Stats()
	fmt.Printf("layers stored: %d of %d\n", len(table.Layers.Paints), stats.LayersIn)
	fmt.Printf("runs reused: %d\n", stats.SequencesReused)
	fmt.Printf("table size: %d bytes\n", len(data))
	// Output:
	// layers stored: 5 of 6
	// runs reused: 1
	// table size: 136 bytes
}
