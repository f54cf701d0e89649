// Package screen draws render.Surface calls onto ebiten images.
package screen

import (
	"image"
	"math"

	"github.com/automoto/pixelrun/render"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/colorm"
)

var _ render.Surface = (*Surface)(nil)

// Surface implements render.Surface over an offscreen ebiten image. Decoded
// images are uploaded to the GPU once and cached by identity.
type Surface struct {
	target *ebiten.Image
	images map[image.Image]*ebiten.Image
	op     colorm.DrawImageOptions
}

func New(width, height int) *Surface {
	return &Surface{
		target: ebiten.NewImage(width, height),
		images: make(map[image.Image]*ebiten.Image),
	}
}

// Image is the canvas the game draws into.
func (s *Surface) Image() *ebiten.Image {
	return s.target
}

func (s *Surface) DrawTile(img image.Image, src image.Rectangle, dstX, dstY, dstW, dstH float64, hue float64) {
	if img == nil || src.Empty() {
		return
	}
	eimg, src := s.upload(img, src)
	sub := eimg.SubImage(src).(*ebiten.Image)

	var cm colorm.ColorM
	if hue != 0 {
		cm.RotateHue(hue * math.Pi / 180)
	}

	s.op.GeoM.Reset()
	if w, h := float64(src.Dx()), float64(src.Dy()); w != dstW || h != dstH {
		s.op.GeoM.Scale(dstW/w, dstH/h)
	}
	s.op.GeoM.Translate(dstX, dstY)
	colorm.DrawImage(s.target, sub, cm, &s.op)
}

// upload returns the GPU copy of img and src translated into its coordinates.
func (s *Surface) upload(img image.Image, src image.Rectangle) (*ebiten.Image, image.Rectangle) {
	if eimg, ok := img.(*ebiten.Image); ok {
		return eimg, src
	}
	eimg, ok := s.images[img]
	if !ok {
		eimg = ebiten.NewImageFromImage(img)
		s.images[img] = eimg
	}
	// Uploaded copies start at the origin
	return eimg, src.Sub(img.Bounds().Min)
}

func (s *Surface) Clear() {
	s.target.Clear()
}

func (s *Surface) Width() int  { return s.target.Bounds().Dx() }
func (s *Surface) Height() int { return s.target.Bounds().Dy() }

// Dispose releases the canvas and every cached upload.
func (s *Surface) Dispose() {
	for k, img := range s.images {
		img.Deallocate()
		delete(s.images, k)
	}
	s.target.Deallocate()
}
