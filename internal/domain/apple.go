package domain

import (
	"image/color"

	"golang.org/x/exp/rand"
)

const spawnAttempts = 100

type Apple struct {
	Pos   Coord
	Color color.NRGBA
}

// Spawner places apples and picks cosmetic colors. Positions and colors come
// from separate streams so a seeded gameplay stream stays reproducible no
// matter how many colors are drawn.
type Spawner struct {
	gameplay *rand.Rand
	cosmetic *rand.Rand
}

func NewSpawner(gameplaySeed, cosmeticSeed uint64) *Spawner {
	return &Spawner{
		gameplay: rand.New(rand.NewSource(gameplaySeed)),
		cosmetic: rand.New(rand.NewSource(cosmeticSeed)),
	}
}

// Spawn picks a random free cell. After spawnAttempts misses it falls back to
// the first free cell in row-major order. ok is false only when the snake
// covers the whole grid.
func (sp *Spawner) Spawn(snake *Snake, grid *Grid) (Apple, bool) {
	occupied := make(map[Coord]bool, snake.Length())
	for _, p := range snake.Points {
		occupied[p] = true
	}

	tiles := grid.TileCount()

	for attempts := 0; attempts < spawnAttempts; attempts++ {
		pos := grid.CellAt(sp.gameplay.Intn(tiles))
		if !occupied[pos] {
			return Apple{Pos: pos, Color: sp.Color()}, true
		}
	}

	for i := 0; i < tiles; i++ {
		pos := grid.CellAt(i)
		if !occupied[pos] {
			return Apple{Pos: pos, Color: sp.Color()}, true
		}
	}

	return Apple{}, false
}

// Color returns a muted random color: uniform RGB with alpha in [0.5, 1.0).
func (sp *Spawner) Color() color.NRGBA {
	alpha := 0.5 + sp.cosmetic.Float64()*0.5
	return color.NRGBA{
		R: uint8(sp.cosmetic.Intn(256)),
		G: uint8(sp.cosmetic.Intn(256)),
		B: uint8(sp.cosmetic.Intn(256)),
		A: uint8(alpha * 255),
	}
}
