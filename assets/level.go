package assets

import (
	"fmt"
	"image"
	"io/fs"
	"log"
	"sort"

	"github.com/automoto/pixelrun/config"
	"github.com/lafriks/go-tiled"
	"github.com/lafriks/go-tiled/render"
)

// Spawn is a top-left spawn position in level pixels.
type Spawn struct {
	X float64
	Y float64
}

type EnemySpawn struct {
	Spawn
	Name           string
	Strategy       string // "none", "patrol" or "script"; empty uses config.Enemy.DefaultStrategy
	Script         string // asset path for the script strategy
	PatrolDistance float64
}

type PowerUpSpawn struct {
	Spawn
	Kind config.PowerUpKind
}

// Level is the playable map: its size, floor and spawn points.
type Level struct {
	Name          string
	Width         int
	Height        int
	FloorY        float64 // top of the ground; entities are clamped above it
	PlayerSpawn   Spawn
	EnemySpawns   []EnemySpawn
	PowerUpSpawns []PowerUpSpawn
	Background    image.Image // nil when the tile layers could not be rendered
}

// LoadLevel parses a Tiled map. Object groups:
//
//	Ground       rectangles; the highest top edge becomes FloorY
//	PlayerSpawn  first object is the player spawn
//	EnemySpawn   "strategy", "script" and "patrolDistance" properties
//	PowerUps     "kind" property, speed or invincibility
func LoadLevel(fsys fs.FS, path string) (*Level, error) {
	levelMap, err := tiled.LoadFile(path, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("assets: load level %s: %w", path, err)
	}

	level := &Level{
		Name:        path,
		Width:       levelMap.Width * levelMap.TileWidth,
		Height:      levelMap.Height * levelMap.TileHeight,
		PlayerSpawn: Spawn{X: config.Player.DefaultSpawnX, Y: config.Player.DefaultSpawnY},
	}
	level.FloorY = float64(level.Height)

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "Ground":
			for _, o := range og.Objects {
				if o.Y < level.FloorY {
					level.FloorY = o.Y
				}
			}
		case "PlayerSpawn":
			if len(og.Objects) > 0 {
				o := og.Objects[0]
				level.PlayerSpawn = Spawn{X: o.X, Y: o.Y}
			}
		case "EnemySpawn":
			for _, o := range og.Objects {
				distance := o.Properties.GetFloat("patrolDistance")
				if distance <= 0 {
					distance = config.Enemy.PatrolDistance
				}
				level.EnemySpawns = append(level.EnemySpawns, EnemySpawn{
					Spawn:          Spawn{X: o.X, Y: o.Y},
					Name:           o.Name,
					Strategy:       o.Properties.GetString("strategy"),
					Script:         o.Properties.GetString("script"),
					PatrolDistance: distance,
				})
			}
		case "PowerUps":
			for _, o := range og.Objects {
				kind := config.PowerUpKind(o.Properties.GetString("kind"))
				if _, ok := config.PowerUpTiles[kind]; !ok {
					log.Printf("[assets] Warning: level %s: unknown power-up kind %q, skipping", path, kind)
					continue
				}
				level.PowerUpSpawns = append(level.PowerUpSpawns, PowerUpSpawn{
					Spawn: Spawn{X: o.X, Y: o.Y},
					Kind:  kind,
				})
			}
		}
	}

	// Left to right for a stable spawn order
	sort.SliceStable(level.EnemySpawns, func(i, j int) bool {
		return level.EnemySpawns[i].X < level.EnemySpawns[j].X
	})

	level.Background = renderBackground(levelMap, fsys, path)
	return level, nil
}

func renderBackground(levelMap *tiled.Map, fsys fs.FS, path string) image.Image {
	if len(levelMap.Layers) == 0 {
		return nil
	}
	renderer, err := render.NewRendererWithFileSystem(levelMap, fsys)
	if err != nil {
		log.Printf("[assets] Warning: level %s: create renderer: %v", path, err)
		return nil
	}
	for i := range levelMap.Layers {
		if err := renderer.RenderLayer(i); err != nil {
			log.Printf("[assets] Warning: level %s: render layer %d: %v", path, i, err)
			return nil
		}
	}
	return renderer.Result
}
