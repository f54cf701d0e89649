package assets

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func testFS(t *testing.T) fstest.MapFS {
	t.Helper()
	return fstest.MapFS{
		"sheet.png":  {Data: pngBytes(t, 64, 32)},
		"odd.png":    {Data: pngBytes(t, 70, 40)},
		"tiny.png":   {Data: pngBytes(t, 8, 8)},
		"broken.png": {Data: []byte("not a png")},
	}
}

func TestSpriteSheetTileCount(t *testing.T) {
	cases := []struct {
		name   string
		path   string
		tw, th int
		want   int
	}{
		{"exact_grid", "sheet.png", 16, 16, 8},
		{"partial_tiles_dropped", "odd.png", 16, 16, 8},
		{"wide_tiles", "sheet.png", 32, 16, 4},
		{"smaller_than_tile", "tiny.png", 16, 16, 0},
	}

	fsys := testFS(t)
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := LoadSpriteSheet(fsys, c.path, c.tw, c.th)
			if err := s.Wait(); err != nil {
				t.Fatalf("Wait: %v", err)
			}
			if s.TileCount() != c.want {
				t.Fatalf("TileCount = %d, want %d", s.TileCount(), c.want)
			}
		})
	}
}

func TestSpriteSheetRowMajor(t *testing.T) {
	s := LoadSpriteSheet(testFS(t), "sheet.png", 16, 16)
	if err := s.Wait(); err != nil {
		t.Fatalf("Wait: %v", err)
	}

	const cols = 4
	for i := 0; i < s.TileCount(); i++ {
		tile, err := s.TileAt(i)
		if err != nil {
			t.Fatalf("TileAt(%d): %v", i, err)
		}
		want := Tile{Index: i, X: (i % cols) * 16, Y: (i / cols) * 16}
		if tile != want {
			t.Errorf("TileAt(%d) = %+v, want %+v", i, tile, want)
		}
	}

	tile, _ := s.TileAt(5)
	if tile.X != 16 || tile.Y != 16 {
		t.Errorf("tile 5 = (%d,%d), want (16,16)", tile.X, tile.Y)
	}
	if got := s.Source(tile); got != image.Rect(16, 16, 32, 32) {
		t.Errorf("Source(tile 5) = %v", got)
	}
}

func TestSpriteSheetOutOfRange(t *testing.T) {
	s := LoadSpriteSheet(testFS(t), "sheet.png", 16, 16)
	if err := s.Wait(); err != nil {
		t.Fatalf("Wait: %v", err)
	}
	for _, i := range []int{-1, 8, 100} {
		if _, err := s.TileAt(i); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("TileAt(%d) err = %v, want ErrOutOfRange", i, err)
		}
	}
}

func TestSpriteSheetLoadFailure(t *testing.T) {
	cases := []struct {
		name   string
		path   string
		tw, th int
	}{
		{"missing_file", "nope.png", 16, 16},
		{"decode_error", "broken.png", 16, 16},
		{"zero_tile_size", "sheet.png", 0, 16},
	}

	fsys := testFS(t)
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := LoadSpriteSheet(fsys, c.path, c.tw, c.th)
			if err := s.Wait(); !errors.Is(err, ErrAssetLoad) {
				t.Fatalf("Wait err = %v, want ErrAssetLoad", err)
			}
			if s.Loaded() {
				t.Fatal("failed sheet reports loaded")
			}
			if _, err := s.TileAt(0); !errors.Is(err, ErrNotFound) {
				t.Fatalf("TileAt after failure err = %v, want ErrNotFound", err)
			}
		})
	}
}

func TestSpriteSheetNotFoundBeforeLoad(t *testing.T) {
	// A sheet that has not published tiles behaves like an unloaded one.
	s := &SpriteSheet{Path: "pending.png", TileWidth: 16, TileHeight: 16, done: make(chan struct{})}
	if _, err := s.TileAt(0); !errors.Is(err, ErrNotFound) {
		t.Fatalf("TileAt before load err = %v, want ErrNotFound", err)
	}
	select {
	case <-s.Done():
		t.Fatal("Done closed before load")
	default:
	}
}

func TestComputeTiles(t *testing.T) {
	tiles := ComputeTiles(48, 32, 16, 16)
	if len(tiles) != 6 {
		t.Fatalf("len = %d, want 6", len(tiles))
	}
	if tiles[4] != (Tile{Index: 4, X: 16, Y: 16}) {
		t.Errorf("tiles[4] = %+v", tiles[4])
	}
	if got := ComputeTiles(48, 32, 0, 16); got == nil || len(got) != 0 {
		t.Errorf("zero tile width should give an empty grid, got %v", got)
	}
}
