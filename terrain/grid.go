// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

import (
	"github.com/tucker567/Car-sub000/world"
)

// Tile is one cell of the world grid. Each tile owns its sample data
// exclusively; shared boundary rows/columns are equal across neighbors
// because they are sliced from (or sampled at) the same global indices,
// never re-derived independently.
type Tile struct {
	X, Y   int         // grid coordinates
	Origin world.Vec2f // world-space corner

	Height *Field // (resolution+1)² heights in [0,1]
	Blend  *Field // biome blend, 0 = salt flat, 1 = dune
	River  *Field // slice of the global river mask
	Splat  *Splatmap

	Left, Right, Top, Bottom *Tile
}

// Grid partitions the global sample space into tiles.
type Grid struct {
	TilesX, TilesY int
	Resolution     int
	TileSize       float32
	tiles          []*Tile
}

func NewGrid(settings *Settings) *Grid {
	g := &Grid{
		TilesX:     settings.TilesX,
		TilesY:     settings.TilesY,
		Resolution: settings.Resolution,
		TileSize:   settings.TileSize,
		tiles:      make([]*Tile, settings.TilesX*settings.TilesY),
	}
	for ty := 0; ty < g.TilesY; ty++ {
		for tx := 0; tx < g.TilesX; tx++ {
			g.tiles[tx+ty*g.TilesX] = &Tile{
				X: tx,
				Y: ty,
				Origin: world.Vec2f{
					X: float32(tx) * g.TileSize,
					Y: float32(ty) * g.TileSize,
				},
			}
		}
	}
	return g
}

func (g *Grid) TileAt(tx, ty int) *Tile {
	if uint(tx) >= uint(g.TilesX) || uint(ty) >= uint(g.TilesY) {
		panic("tile index out of grid")
	}
	return g.tiles[tx+ty*g.TilesX]
}

// Tiles returns the tiles in row-major order.
func (g *Grid) Tiles() []*Tile {
	return g.tiles
}

// SampleOrigin is the global sample-space corner of a tile. Adjacent
// tiles overlap by exactly one sample row/column.
func (g *Grid) SampleOrigin(t *Tile) (x, y int) {
	return t.X * g.Resolution, t.Y * g.Resolution
}

// SliceInto distributes a global field into per-tile slices with
// one-sample overlap at shared edges.
func (g *Grid) SliceInto(global *Field, slice func(*Tile, *Field)) {
	side := g.Resolution + 1
	for _, t := range g.tiles {
		x, y := g.SampleOrigin(t)
		slice(t, global.Slice(x, y, side, side))
	}
}

// Reassemble rebuilds a global field from per-tile slices. The overlap
// samples are written more than once; they must agree, which the tests
// rely on for the round-trip property.
func (g *Grid) Reassemble(slice func(*Tile) *Field) *Field {
	global := NewField(g.TilesX*g.Resolution+1, g.TilesY*g.Resolution+1)
	side := g.Resolution + 1
	for _, t := range g.tiles {
		ox, oy := g.SampleOrigin(t)
		f := slice(t)
		for j := 0; j < side; j++ {
			for i := 0; i < side; i++ {
				global.Set(ox+i, oy+j, f.At(i, j))
			}
		}
	}
	return global
}

// Link wires up neighbor references and asserts the seam invariant:
// every shared boundary sample must already be bit-identical, since
// both sides come from the same global sample index. A mismatch is a
// programming fault, not a recoverable condition.
func (g *Grid) Link() {
	for _, t := range g.tiles {
		if t.X > 0 {
			t.Left = g.TileAt(t.X-1, t.Y)
		}
		if t.X < g.TilesX-1 {
			t.Right = g.TileAt(t.X+1, t.Y)
		}
		if t.Y > 0 {
			t.Top = g.TileAt(t.X, t.Y-1)
		}
		if t.Y < g.TilesY-1 {
			t.Bottom = g.TileAt(t.X, t.Y+1)
		}
	}

	side := g.Resolution + 1
	for _, t := range g.tiles {
		if t.Right != nil && t.Right.Height != nil && t.Height != nil {
			for j := 0; j < side; j++ {
				if t.Height.At(side-1, j) != t.Right.Height.At(0, j) {
					panic("height seam mismatch between horizontal neighbors")
				}
			}
		}
		if t.Bottom != nil && t.Bottom.Height != nil && t.Height != nil {
			for i := 0; i < side; i++ {
				if t.Height.At(i, side-1) != t.Bottom.Height.At(i, 0) {
					panic("height seam mismatch between vertical neighbors")
				}
			}
		}
	}
}
