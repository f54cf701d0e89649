package assets

import (
	"fmt"
	"image"
	"io/fs"
	"log"
	"sync"

	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// Tile is one cell of a sprite sheet. X and Y are pixel offsets from the
// sheet origin.
type Tile struct {
	Index int
	X     int
	Y     int
}

// SpriteSheet is an image sliced into fixed-size tiles. The image loads on a
// goroutine; tiles exist only once the load succeeded.
type SpriteSheet struct {
	Path       string
	TileWidth  int
	TileHeight int

	mu    sync.RWMutex
	img   image.Image
	tiles []Tile
	err   error
	done  chan struct{}
}

// LoadSpriteSheet starts loading path from fsys and returns immediately.
func LoadSpriteSheet(fsys fs.FS, path string, tileWidth, tileHeight int) *SpriteSheet {
	s := &SpriteSheet{
		Path:       path,
		TileWidth:  tileWidth,
		TileHeight: tileHeight,
		done:       make(chan struct{}),
	}
	go s.load(fsys)
	return s
}

func (s *SpriteSheet) load(fsys fs.FS) {
	defer close(s.done)

	img, err := s.decode(fsys)
	if err != nil {
		err = fmt.Errorf("%w: %s: %v", ErrAssetLoad, s.Path, err)
		log.Printf("[assets] %v", err)
		s.mu.Lock()
		s.err = err
		s.mu.Unlock()
		return
	}

	b := img.Bounds()
	tiles := ComputeTiles(b.Dx(), b.Dy(), s.TileWidth, s.TileHeight)

	s.mu.Lock()
	s.img = img
	s.tiles = tiles
	s.mu.Unlock()
}

func (s *SpriteSheet) decode(fsys fs.FS) (image.Image, error) {
	if s.TileWidth <= 0 || s.TileHeight <= 0 {
		return nil, fmt.Errorf("invalid tile size %dx%d", s.TileWidth, s.TileHeight)
	}
	f, err := fsys.Open(s.Path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}
	return img, nil
}

// ComputeTiles lays out floor(w/tw) x floor(h/th) tiles in row-major order.
func ComputeTiles(width, height, tileWidth, tileHeight int) []Tile {
	if tileWidth <= 0 || tileHeight <= 0 {
		return []Tile{}
	}
	cols := width / tileWidth
	rows := height / tileHeight
	tiles := make([]Tile, 0, cols*rows)
	for i := 0; i < cols*rows; i++ {
		tiles = append(tiles, Tile{
			Index: i,
			X:     (i % cols) * tileWidth,
			Y:     (i / cols) * tileHeight,
		})
	}
	return tiles
}

// TileAt returns the tile at a row-major index.
func (s *SpriteSheet) TileAt(index int) (Tile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.tiles == nil {
		return Tile{}, fmt.Errorf("%w: %s is not loaded", ErrNotFound, s.Path)
	}
	if index < 0 || index >= len(s.tiles) {
		return Tile{}, fmt.Errorf("%w: %s has %d tiles, index %d", ErrOutOfRange, s.Path, len(s.tiles), index)
	}
	return s.tiles[index], nil
}

// TileCount is zero until the sheet has loaded.
func (s *SpriteSheet) TileCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tiles)
}

// Loaded reports whether the image decoded successfully.
func (s *SpriteSheet) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tiles != nil
}

func (s *SpriteSheet) Image() image.Image {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.img
}

// Source returns the rectangle of a tile within the sheet image.
func (s *SpriteSheet) Source(t Tile) image.Rectangle {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var origin image.Point
	if s.img != nil {
		origin = s.img.Bounds().Min
	}
	r := image.Rect(t.X, t.Y, t.X+s.TileWidth, t.Y+s.TileHeight)
	return r.Add(origin)
}

// Err returns the load error, if any.
func (s *SpriteSheet) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

// Done is closed when the load attempt finished.
func (s *SpriteSheet) Done() <-chan struct{} {
	return s.done
}

// Wait blocks until the load attempt finished and returns its error.
func (s *SpriteSheet) Wait() error {
	<-s.done
	return s.Err()
}
