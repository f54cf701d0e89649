package render

import "image"

// DrawCall is one recorded DrawTile.
type DrawCall struct {
	Image      image.Image
	Src        image.Rectangle
	X, Y, W, H float64
	Hue        float64
}

// Recorder is a headless Surface that keeps the draw calls since the last Clear.
type Recorder struct {
	W, H   int
	Calls  []DrawCall
	Clears int
}

func NewRecorder(width, height int) *Recorder {
	return &Recorder{W: width, H: height}
}

func (r *Recorder) DrawTile(img image.Image, src image.Rectangle, dstX, dstY, dstW, dstH float64, hue float64) {
	r.Calls = append(r.Calls, DrawCall{Image: img, Src: src, X: dstX, Y: dstY, W: dstW, H: dstH, Hue: hue})
}

func (r *Recorder) Clear() {
	r.Calls = r.Calls[:0]
	r.Clears++
}

func (r *Recorder) Width() int  { return r.W }
func (r *Recorder) Height() int { return r.H }
