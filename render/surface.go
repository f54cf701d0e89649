// Package render defines the drawing surface the game loop renders into.
package render

import (
	"image"

	"github.com/automoto/pixelrun/assets"
)

// Surface is a 2D target for sprite tiles. Width and Height bound the
// horizontal clamp of the world.
type Surface interface {
	// DrawTile copies src from img to the destination rectangle, rotating its hue by hue degrees.
	DrawTile(img image.Image, src image.Rectangle, dstX, dstY, dstW, dstH float64, hue float64)
	Clear()
	Width() int
	Height() int
}

// DrawSprite draws a resolved sprite at its natural size.
func DrawSprite(s Surface, sprite assets.ResolvedSprite, x, y float64) {
	if sprite.Image == nil {
		return
	}
	s.DrawTile(sprite.Image, sprite.Source, x, y, float64(sprite.TileWidth), float64(sprite.TileHeight), sprite.Hue)
}

// DrawImage draws a whole image at x, y.
func DrawImage(s Surface, img image.Image, x, y float64) {
	if img == nil {
		return
	}
	b := img.Bounds()
	s.DrawTile(img, b, x, y, float64(b.Dx()), float64(b.Dy()), 0)
}
