// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

import (
	"log"
	"math/rand"

	"github.com/chewxy/math32"
	"github.com/tucker567/Car-sub000/world"
)

const (
	// towerSeedOffset derives the placement sub-seed from the world seed.
	towerSeedOffset = 1000003
	// anchorRetries bounds spawn anchor lookups before falling back.
	anchorRetries = 3
)

// Tower is a placed point of interest. Positions are world-space;
// altitude is the depth-scaled height sample plus the configured
// vertical offset.
type Tower struct {
	Name         string      `json:"name"`
	TileX, TileY int         `json:"-"`
	Pos          world.Vec2f `json:"pos"`
	Alt          float32     `json:"alt"`
	Yaw          world.Angle `json:"yaw"`
}

type towerSpot struct {
	tile *Tile
	u, v float32 // normalized in-tile offsets, margin already applied
	name string
	yaw  world.Angle
}

// planTowers makes every seeded decision for tower placement in one
// fixed order: tile selection, per-tower jitter, name and yaw. Actual
// placement afterwards is deterministic height sampling.
func (p *Pipeline) planTowers() {
	r := rand.New(rand.NewSource(p.seed + towerSeedOffset))
	tiles := p.grid.Tiles()

	spawnTile := -1
	if p.anchor != nil {
		spawnTile = p.resolveSpawnTile()
	}

	chosen := make([]int, 0, p.towerCount)
	for _, i := range r.Perm(len(tiles)) {
		if len(chosen) == p.towerCount {
			break
		}
		if i == spawnTile {
			continue
		}
		chosen = append(chosen, i)
	}
	if len(chosen) < p.towerCount {
		// Degenerate grid (every tile excluded); reuse the spawn tile
		// rather than placing fewer towers than promised.
		chosen = append(chosen, spawnTile)
	}

	margin := p.settings.TowerMargin
	p.spots = make([]towerSpot, 0, p.towerCount)
	for _, i := range chosen {
		p.spots = append(p.spots, towerSpot{
			tile: tiles[i],
			u:    margin + r.Float32()*(1-2*margin),
			v:    margin + r.Float32()*(1-2*margin),
			name: towerName(r, p.settings.TowerLabel),
			yaw:  world.Angle(r.Float32() * 2 * math32.Pi),
		})
	}
}

// resolveSpawnTile maps the external spawn anchor to a tile index so
// towers keep clear of it. After bounded retries it falls back to the
// grid center tile and logs a warning; generation still completes.
func (p *Pipeline) resolveSpawnTile() int {
	for i := 0; i < anchorRetries; i++ {
		x, y, err := p.anchor.SpawnPoint()
		if err != nil {
			continue
		}
		tx := minInt(p.settings.TilesX-1, maxInt(0, int(x/p.settings.TileSize)))
		ty := minInt(p.settings.TilesY-1, maxInt(0, int(y/p.settings.TileSize)))
		return tx + ty*p.settings.TilesX
	}
	log.Println("spawn anchor unavailable, keeping towers off the center tile")
	return p.settings.TilesX/2 + p.settings.TilesY/2*p.settings.TilesX
}

func (p *Pipeline) placeTower(i int) {
	spot := p.spots[i]
	t := spot.tile
	res := p.settings.Resolution

	sx := int(math32.Floor(spot.u*float32(res) + 0.5))
	sy := int(math32.Floor(spot.v*float32(res) + 0.5))

	p.towers = append(p.towers, Tower{
		Name:  spot.name,
		TileX: t.X,
		TileY: t.Y,
		Pos:   t.Origin.Add(world.Vec2f{X: spot.u, Y: spot.v}.Mul(p.settings.TileSize)),
		Alt:   t.Height.At(sx, sy)*p.settings.Depth + p.settings.TowerHeightOffset,
		Yaw:   spot.yaw,
	})
}
