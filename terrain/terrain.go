// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

// Source generates normalized heightmap and biome data.
// Coordinates are global sample-space indices so that adjacent tiles
// requesting overlapping blocks receive identical boundary samples.
// Implementations must be deterministic for a given seed.
type Source interface {
	// Heights returns a width*height block of [0,1] heights starting at (x, y).
	Heights(x, y, width, height int) []float32
	// Blends returns the matching block of [0,1] biome blend values
	// (0 = salt flat, 1 = dune).
	Blends(x, y, width, height int) []float32
}

// RiverSource carves a river-influence mask over the full global sample
// space in one pass, which is what keeps rivers seamless across tiles.
type RiverSource interface {
	// Plan draws the river count and every seeded decision (axis, start
	// offset, jitter profiles) for a width*height sample space. All RNG
	// draws happen here, in a fixed order, so that carving is free of
	// random state and safe to reorder.
	Plan(width, height int) int
	// Carve stamps river i into the mask. Stamping is max-combine, so
	// carve order does not affect the result.
	Carve(i int)
	// Mask returns the global mask. Valid once every river is carved,
	// read-only afterwards.
	Mask() *Field
}

// AnchorSource locates an external spawn anchor in world space.
// Lookups may fail transiently; callers retry a bounded number of times.
type AnchorSource interface {
	SpawnPoint() (x, y float32, err error)
}
