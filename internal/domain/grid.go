package domain

import "fmt"

// Grid is the fixed playing area measured in pixels. Every valid cell sits on a
// multiple of TileSize inside [0, Width) x [0, Height).
type Grid struct {
	TileSize int32
	Width    int32
	Height   int32
}

func NewGrid(tileSize, width, height int32) (*Grid, error) {
	if tileSize <= 0 {
		return nil, fmt.Errorf("tile size must be positive, got %d", tileSize)
	}
	if width <= 0 || width%tileSize != 0 {
		return nil, fmt.Errorf("width %d is not a positive multiple of tile size %d", width, tileSize)
	}
	if height <= 0 || height%tileSize != 0 {
		return nil, fmt.Errorf("height %d is not a positive multiple of tile size %d", height, tileSize)
	}
	return &Grid{
		TileSize: tileSize,
		Width:    width,
		Height:   height,
	}, nil
}

func (g *Grid) ToCell(pixel int32) int32 {
	return pixel / g.TileSize
}

func (g *Grid) Columns() int32 {
	return g.Width / g.TileSize
}

func (g *Grid) Rows() int32 {
	return g.Height / g.TileSize
}

func (g *Grid) TileCount() int {
	return int(g.Columns()) * int(g.Rows())
}

func (g *Grid) Contains(c Coord) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

func (g *Grid) Aligned(c Coord) bool {
	return c.X%g.TileSize == 0 && c.Y%g.TileSize == 0
}

func (g *Grid) CellAt(index int) Coord {
	cols := int(g.Columns())
	return Coord{
		X: int32(index%cols) * g.TileSize,
		Y: int32(index/cols) * g.TileSize,
	}
}

func (g *Grid) IndexOf(c Coord) int {
	return int(g.ToCell(c.Y))*int(g.Columns()) + int(g.ToCell(c.X))
}

// Move steps one tile in d. The result may lie outside the grid.
func (g *Grid) Move(c Coord, d Direction) Coord {
	return c.Add(d.Delta().Scale(g.TileSize))
}
