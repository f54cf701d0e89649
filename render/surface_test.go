package render

import (
	"image"
	"testing"

	"github.com/automoto/pixelrun/assets"
)

func TestDrawSprite(t *testing.T) {
	rec := NewRecorder(320, 180)
	img := image.NewNRGBA(image.Rect(0, 0, 64, 32))
	sprite := assets.ResolvedSprite{
		Image:      img,
		Source:     image.Rect(16, 16, 32, 32),
		TileWidth:  16,
		TileHeight: 16,
		Hue:        90,
	}

	DrawSprite(rec, sprite, 10, 20)
	if len(rec.Calls) != 1 {
		t.Fatalf("calls = %d, want 1", len(rec.Calls))
	}
	c := rec.Calls[0]
	if c.Src != sprite.Source || c.X != 10 || c.Y != 20 || c.W != 16 || c.H != 16 || c.Hue != 90 {
		t.Errorf("unexpected call %+v", c)
	}

	DrawSprite(rec, assets.ResolvedSprite{}, 0, 0)
	if len(rec.Calls) != 1 {
		t.Error("sprite without image was drawn")
	}

	rec.Clear()
	if len(rec.Calls) != 0 || rec.Clears != 1 {
		t.Errorf("Clear left %d calls, clears=%d", len(rec.Calls), rec.Clears)
	}
}
