package arcade

import (
	"image/color"

	"github.com/Garsondee/Invaders/internal/game"
	"github.com/hajimehoshi/ebiten/v2"
)

// spriteCells is the side length of every invader bitmap.
const spriteCells = 8

// spritePatterns are the invader bitmaps keyed by sprite identifier,
// top row first. '#' is a lit cell.
var spritePatterns = map[string][]string{
	"invader-5": {
		"...##...",
		"..####..",
		".######.",
		"##.##.##",
		"########",
		"..#..#..",
		".#.##.#.",
		"#.#..#.#",
	},
	"invader-4": {
		"..#..#..",
		"...##...",
		"..####..",
		".##..##.",
		"########",
		"#.####.#",
		"#.#..#.#",
		"...##...",
	},
	"invader-3": {
		"..####..",
		".######.",
		"##.##.##",
		"########",
		".##..##.",
		"##.##.##",
		"#......#",
		".#....#.",
	},
	"invader-2": {
		"#......#",
		".#.##.#.",
		".######.",
		"##.##.##",
		"########",
		"..####..",
		".#....#.",
		"#......#",
	},
	"invader-1": {
		"...##...",
		".######.",
		"########",
		"#..##..#",
		"########",
		"..#..#..",
		".#.##.#.",
		"#......#",
	},
}

// tierColors tints each row tier, top row first.
var tierColors = [game.Rows]color.RGBA{
	{R: 240, G: 90, B: 200, A: 255},
	{R: 170, G: 110, B: 250, A: 255},
	{R: 80, G: 170, B: 250, A: 255},
	{R: 80, G: 220, B: 170, A: 255},
	{R: 200, G: 230, B: 90, A: 255},
}

// spritePixels expands a pattern into RGBA bytes, one pixel per cell.
func spritePixels(pattern []string, c color.RGBA) []byte {
	pix := make([]byte, spriteCells*spriteCells*4)
	for y, row := range pattern {
		for x := 0; x < len(row) && x < spriteCells; x++ {
			if row[x] != '#' {
				continue
			}
			i := (y*spriteCells + x) * 4
			pix[i], pix[i+1], pix[i+2], pix[i+3] = c.R, c.G, c.B, c.A
		}
	}
	return pix
}

// newSpriteSet builds one image per sprite identifier.
func newSpriteSet() map[string]*ebiten.Image {
	set := make(map[string]*ebiten.Image, len(game.InvaderSprites))
	for tier, name := range game.InvaderSprites {
		img := ebiten.NewImage(spriteCells, spriteCells)
		img.WritePixels(spritePixels(spritePatterns[name], tierColors[tier]))
		set[name] = img
	}
	return set
}
