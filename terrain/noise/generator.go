// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package noise

import (
	"github.com/chewxy/math32"

	"github.com/tucker567/Car-sub000/terrain"
	"github.com/tucker567/Car-sub000/world"
)

const (
	// duneExponent is the fixed dune shaping exponent.
	duneExponent = 1.9
	// windSkew steepens the leeward face of the wind profile.
	windSkew = 0.65

	detailFrequency = 7.3
	flatFrequency   = 2.1
)

// Generator synthesizes normalized dune and salt-flat heights.
// It implements terrain.Source. Sub-seeds are fixed offsets from the
// world seed, never wall-clock state.
type Generator struct {
	settings *terrain.Settings

	base   *Field // fBm octaves of the dune field
	detail *Field // high-frequency dune grain
	flat   *Field // faint salt-flat ripple
	biome  *Classifier
}

func NewGenerator(seed int64, settings *terrain.Settings) *Generator {
	return &Generator{
		settings: settings,
		base:     NewField(seed),
		detail:   NewField(seed + 1),
		flat:     NewField(seed + 2),
		biome:    NewClassifier(seed+3, settings),
	}
}

// Biome exposes the classifier sharing this generator's sub-seed.
func (g *Generator) Biome() *Classifier {
	return g.biome
}

// Heights implements terrain.Source.
func (g *Generator) Heights(x, y, width, height int) []float32 {
	buf := make([]float32, width*height)
	for j := 0; j < height; j++ {
		for i := 0; i < width; i++ {
			buf[i+j*width] = g.heightAt(x+i, y+j)
		}
	}
	return buf
}

// Blends implements terrain.Source.
func (g *Generator) Blends(x, y, width, height int) []float32 {
	buf := make([]float32, width*height)
	for j := 0; j < height; j++ {
		for i := 0; i < width; i++ {
			buf[i+j*width] = g.biome.BlendAt(x+i, y+j)
		}
	}
	return buf
}

func (g *Generator) heightAt(gx, gy int) float32 {
	s := g.settings
	fx := float64(gx) / float64(s.NoiseScale)
	fy := float64(gy) / float64(s.NoiseScale)

	base := g.base.FBM(fx, fy, s.Octaves, s.Persistence, s.Lacunarity)

	// Dunes: skewed transverse wind ridges over the base field, raised
	// to the shaping exponent, plus fine surface grain.
	wind := windProfile((float32(gx) + float32(gy)*0.25) * s.DuneWindFrequency)
	dune := clamp01(base + wind*s.DuneWindStrength)
	dune = math32.Pow(dune, duneExponent)
	dune += (g.detail.At(fx*detailFrequency, fy*detailFrequency) - 0.5) * s.DuneDetail

	// Salt flats: near-level floor with faint ripple.
	flat := s.FlatLevel + (g.flat.At(fx*flatFrequency, fy*flatFrequency)-0.5)*s.FlatDetail

	blend := g.biome.BlendAt(gx, gy)
	return clamp01(world.Lerp(flat, dune, blend) * s.DuneHeight)
}

// windProfile is a skewed sine: gentle windward rise, steep leeward
// drop, like a transverse dune cross-section.
func windProfile(t float32) float32 {
	return math32.Sin(t + windSkew*math32.Sin(t))
}
