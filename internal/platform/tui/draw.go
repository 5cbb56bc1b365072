package tui

import (
	"cmp"
	"slices"

	"github.com/vovakirdan/sprite-tutorial/internal/core"
	"github.com/vovakirdan/sprite-tutorial/internal/engine"
	"github.com/vovakirdan/sprite-tutorial/internal/registry"
)

// headingArrows is indexed by Sprite.Heading.
var headingArrows = [8]rune{'→', '↗', '↑', '↖', '←', '↙', '↓', '↘'}

// TextColor is used for every text overlay.
const TextColor = core.ColorBrightWhite

// DrawWorld renders the engine's sprites and texts into the screen buffer.
// Sprites fill every cell whose centre lies inside their box, lowest layer
// first. Texts are drawn last, centred on their translation.
func DrawWorld(s *core.Screen, e *engine.Engine, vp Viewport) {
	s.Clear()

	sprites := make([]*engine.Sprite, 0, len(e.Sprites))
	for _, sp := range e.Sprites {
		sprites = append(sprites, sp)
	}
	slices.SortFunc(sprites, func(a, b *engine.Sprite) int {
		return cmp.Or(cmp.Compare(a.Layer, b.Layer), cmp.Compare(a.Label, b.Label))
	})
	for _, sp := range sprites {
		drawSprite(s, sp, vp)
	}

	texts := make([]*engine.Text, 0, len(e.Texts))
	for _, t := range e.Texts {
		texts = append(texts, t)
	}
	slices.SortFunc(texts, func(a, b *engine.Text) int {
		return cmp.Or(cmp.Compare(a.Layer, b.Layer), cmp.Compare(a.Label, b.Label))
	})
	for _, t := range texts {
		col, row := vp.WorldToCell(t.Translation)
		width := len([]rune(t.Value))
		s.DrawText(col-width/2, row, t.Value, TextColor)
	}
}

func drawSprite(s *core.Screen, sp *engine.Sprite, vp Viewport) {
	p, err := registry.LookupPreset(sp.Preset)
	if err != nil {
		return
	}

	box := sp.Collider()
	// Max is the top-left corner in screen terms.
	c0, r0 := vp.WorldToCell(core.Vec2{X: box.Min().X, Y: box.Max().Y})
	c1, r1 := vp.WorldToCell(core.Vec2{X: box.Max().X, Y: box.Min().Y})

	drawn := false
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			if !vp.InBounds(col, row) || !box.Contains(vp.CellToWorld(col, row)) {
				continue
			}
			s.SetColored(col, row, p.Glyph, p.Color)
			drawn = true
		}
	}

	col, row := vp.WorldToCell(sp.Translation)
	if !drawn && vp.InBounds(col, row) {
		// Smaller than a cell
		s.SetColored(col, row, p.Glyph, p.Color)
	}
	if p.Directional && vp.InBounds(col, row) {
		s.SetColored(col, row, headingArrows[sp.Heading()], p.Color)
	}
}
