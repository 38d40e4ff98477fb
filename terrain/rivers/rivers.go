// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package rivers

import (
	"math/rand"

	"github.com/chewxy/math32"

	"github.com/tucker567/Car-sub000/terrain"
	"github.com/tucker567/Car-sub000/terrain/noise"
)

const (
	// riverSeedOffset derives the river sub-seed from the world seed.
	riverSeedOffset = 7919

	// Path noise along the primary axis, in cycles per sample.
	driftFrequency  = 0.005 // slow bank-to-bank meander
	wiggleFrequency = 0.04  // local wiggle, scaled by windiness
	roughFrequency  = 0.6   // post-smoothing jitter

	// Amplitudes as fractions of the perpendicular span.
	driftAmplitude  = 0.35
	wiggleAmplitude = 0.12

	// noiseLane spreads the per-river 1D noise tracks apart.
	noiseLane = 512.0
)

// Builder carves the global river-influence mask: 0 is untouched
// terrain, 1 a river centerline. One builder pass covers the whole
// multi-tile sample space, which is what keeps rivers continuous
// across tile boundaries; tiles only ever receive slices of it.
//
// Implements terrain.RiverSource.
type Builder struct {
	settings *terrain.Settings
	rng      *rand.Rand
	noise    *noise.Field
	mask     *terrain.Field
	paths    []path
	kernels  map[int][]kernelCell
}

// path is one river: an ordered sequence of perpendicular offsets and
// stamp widths along its primary traversal axis.
type path struct {
	vertical bool
	offsets  []float32 // normalized perpendicular offset per step
	widths   []float32 // stamp radius in samples per step
}

func NewBuilder(seed int64, settings *terrain.Settings) *Builder {
	return &Builder{
		settings: settings,
		rng:      rand.New(rand.NewSource(seed + riverSeedOffset)),
		noise:    noise.NewField(seed + riverSeedOffset),
		kernels:  make(map[int][]kernelCell),
	}
}

// Plan draws the river count and every per-river seeded decision in a
// fixed order, then lays out each path. After Plan returns no random
// state remains; Carve calls are pure and order-independent.
func (b *Builder) Plan(width, height int) int {
	s := b.settings

	count := s.MinRivers
	if s.MaxRivers > s.MinRivers {
		count += b.rng.Intn(s.MaxRivers - s.MinRivers + 1)
	}

	b.mask = terrain.NewField(width, height)
	b.paths = make([]path, count)
	for i := range b.paths {
		b.paths[i] = b.plan1(i, width, height)
	}
	return count
}

func (b *Builder) plan1(i, width, height int) path {
	s := b.settings

	vertical := b.rng.Intn(2) == 1
	length := width
	if vertical {
		length = height
	}

	// Per-river draws: start offset and the noise tracks that shape
	// the drift, wiggle, roughness and width-jitter profiles.
	start := b.rng.Float32()
	driftOff := float64(i)*noiseLane + b.rng.Float64()
	wiggleOff := float64(i)*noiseLane + noiseLane/4 + b.rng.Float64()
	roughOff := float64(i)*noiseLane + noiseLane/2 + b.rng.Float64()
	widthOff := float64(i)*noiseLane + noiseLane*3/4 + b.rng.Float64()

	offsets := make([]float32, length)
	for j := range offsets {
		t := float64(j)
		drift := (b.noise.At1(t*driftFrequency+driftOff) - 0.5) * driftAmplitude
		wiggle := (b.noise.At1(t*wiggleFrequency+wiggleOff) - 0.5) * wiggleAmplitude * s.RiverWindiness
		offsets[j] = clamp01(start + drift + wiggle)
	}

	// 3-point box smoothing.
	for pass := 0; pass < s.RiverSmoothPasses; pass++ {
		prev := offsets[0]
		for j := 1; j+1 < len(offsets); j++ {
			cur := offsets[j]
			offsets[j] = (prev + cur + offsets[j+1]) / 3
			prev = cur
		}
	}

	// Bounded high-frequency jitter survives the smoothing passes.
	if s.RiverRoughness > 0 {
		for j := range offsets {
			t := float64(j)
			offsets[j] = clamp01(offsets[j] + (b.noise.At1(t*roughFrequency+roughOff)-0.5)*2*s.RiverRoughness)
		}
	}

	widths := make([]float32, length)
	for j := range widths {
		t := float64(j)
		jitter := (b.noise.At1(t*float64(s.RiverWidthJitterFrequency)+widthOff) - 0.5) * 2 * s.RiverWidthJitter
		widths[j] = s.RiverWidth * (1 + jitter)
	}

	return path{
		vertical: vertical,
		offsets:  offsets,
		widths:   widths,
	}
}

// Carve stamps river i into the mask with the radial falloff kernel.
// Stamping is max-combine: crossing rivers merge, a new stamp never
// lowers an existing higher value.
func (b *Builder) Carve(i int) {
	p := b.paths[i]

	span := b.mask.Height
	if p.vertical {
		span = b.mask.Width
	}

	for j, off := range p.offsets {
		radius := maxInt(1, int(math32.Floor(p.widths[j]+0.5)))
		center := int(math32.Floor(off*float32(span-1) + 0.5))

		for _, c := range b.kernel(radius) {
			x, y := j+c.dx, center+c.dy
			if p.vertical {
				x, y = center+c.dy, j+c.dx
			}
			if uint(x) < uint(b.mask.Width) && uint(y) < uint(b.mask.Height) {
				b.mask.MaxAt(x, y, c.weight)
			}
		}
	}
}

// Mask implements terrain.RiverSource.
func (b *Builder) Mask() *terrain.Field {
	return b.mask
}
