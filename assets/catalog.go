package assets

import (
	"errors"
	"fmt"
	"image"
	"io/fs"
	"sort"
	"sync"

	"github.com/automoto/pixelrun/config"
)

// SpriteRequest asks for one tile of a registered sprite type.
// An empty Color means config.DefaultSpriteColor.
type SpriteRequest struct {
	Type  string
	Index int
	Color string
}

// ResolvedSprite is everything a surface needs to draw a tile.
type ResolvedSprite struct {
	Type       string
	ImagePath  string
	Tile       Tile
	TileWidth  int
	TileHeight int
	Color      string
	Hue        float64 // degrees
	Image      image.Image
	Source     image.Rectangle
}

// Catalog maps sprite types to sprite sheets.
type Catalog struct {
	fsys fs.FS

	mu     sync.RWMutex
	sheets map[string]*SpriteSheet
}

func NewCatalog(fsys fs.FS) *Catalog {
	return &Catalog{
		fsys:   fsys,
		sheets: make(map[string]*SpriteSheet),
	}
}

// NewDefaultCatalog registers config.Sprites from the embedded assets.
func NewDefaultCatalog() *Catalog {
	c := NewCatalog(FS())
	c.RegisterAll(config.Sprites)
	return c
}

// Register starts loading a sheet for typ, replacing any earlier registration.
func (c *Catalog) Register(typ, path string, tileWidth, tileHeight int) *SpriteSheet {
	sheet := LoadSpriteSheet(c.fsys, path, tileWidth, tileHeight)
	c.mu.Lock()
	c.sheets[typ] = sheet
	c.mu.Unlock()
	return sheet
}

func (c *Catalog) RegisterAll(sheets []config.SpriteSheetConfig) {
	for _, s := range sheets {
		c.Register(s.Type, s.Path, s.TileWidth, s.TileHeight)
	}
}

func (c *Catalog) Sheet(typ string) (*SpriteSheet, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s, ok := c.sheets[typ]
	return s, ok
}

// Types returns the registered sprite types in sorted order.
func (c *Catalog) Types() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	types := make([]string, 0, len(c.sheets))
	for t := range c.sheets {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// Resolve looks up a tile. It fails with ErrNotFound for an unknown type or a
// sheet that has not loaded, and with ErrOutOfRange for a bad index.
func (c *Catalog) Resolve(req SpriteRequest) (ResolvedSprite, error) {
	sheet, ok := c.Sheet(req.Type)
	if !ok {
		return ResolvedSprite{}, fmt.Errorf("%w: unknown type %q", ErrNotFound, req.Type)
	}
	tile, err := sheet.TileAt(req.Index)
	if err != nil {
		return ResolvedSprite{}, fmt.Errorf("resolve %s[%d]: %w", req.Type, req.Index, err)
	}

	color := req.Color
	if color == "" {
		color = config.DefaultSpriteColor
	}
	return ResolvedSprite{
		Type:       req.Type,
		ImagePath:  sheet.Path,
		Tile:       tile,
		TileWidth:  sheet.TileWidth,
		TileHeight: sheet.TileHeight,
		Color:      color,
		Hue:        config.HueRotation(color),
		Image:      sheet.Image(),
		Source:     sheet.Source(tile),
	}, nil
}

// WaitAll blocks until every registered sheet finished loading and joins their errors.
func (c *Catalog) WaitAll() error {
	c.mu.RLock()
	sheets := make([]*SpriteSheet, 0, len(c.sheets))
	for _, s := range c.sheets {
		sheets = append(sheets, s)
	}
	c.mu.RUnlock()

	var errs []error
	for _, s := range sheets {
		if err := s.Wait(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
