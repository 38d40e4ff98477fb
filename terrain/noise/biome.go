// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package noise

import (
	"github.com/chewxy/math32"
	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/tucker567/Car-sub000/terrain"
	"github.com/tucker567/Car-sub000/world"
)

// warpOffset decorrelates the two warp axes.
const warpOffset = 37.1

// Biome octaves use fixed shaping; the tunables are count and warp.
const (
	biomePersistence = 0.5
	biomeLacunarity  = 2.0
)

// Classifier produces the smooth dune/salt-flat blend: 0 is pure salt
// flat, 1 is pure dune, with a continuous transition band around the
// threshold. The default path is one low-frequency octave; setting
// BiomeOctaves > 1 or BiomeWarp > 0 enables the advanced variant with
// octave accumulation, domain warp, optional ridged transform,
// rotation and contrast/invert shaping before the same threshold
// smoothing.
//
// The classifier runs on a simplex basis, decorrelated from the
// perlin height octaves so biome regions don't track dune crests.
type Classifier struct {
	settings *terrain.Settings
	base     opensimplex.Noise
	warp     opensimplex.Noise
}

func NewClassifier(seed int64, settings *terrain.Settings) *Classifier {
	return &Classifier{
		settings: settings,
		base:     opensimplex.NewNormalized(seed),
		warp:     opensimplex.NewNormalized(seed + 1),
	}
}

// BlendAt returns the blend at a global sample index.
func (c *Classifier) BlendAt(gx, gy int) float32 {
	s := c.settings
	x := float64(gx) / float64(s.BiomeScale)
	y := float64(gy) / float64(s.BiomeScale)

	if s.BiomeRotation != 0 {
		sin, cos := math32.Sincos(s.BiomeRotation)
		x, y = x*float64(cos)-y*float64(sin), x*float64(sin)+y*float64(cos)
	}
	if s.BiomeWarp > 0 {
		warp := float64(s.BiomeWarp)
		x += warp * (c.warp.Eval2(x, y) - 0.5)
		y += warp * (c.warp.Eval2(x+warpOffset, y+warpOffset) - 0.5)
	}

	n := c.octaves(x, y)
	if s.BiomeRidged {
		n = 1 - math32.Abs(n*2-1)
	}
	if s.BiomeContrast > 0 && s.BiomeContrast != 1 {
		n = clamp01(0.5 + (n-0.5)*s.BiomeContrast)
	}
	if s.BiomeInvert {
		n = 1 - n
	}

	t := world.InverseLerp(s.BiomeThreshold-s.BiomeTransition, s.BiomeThreshold+s.BiomeTransition, n)
	return world.Smoothstep(t)
}

func (c *Classifier) octaves(x, y float64) float32 {
	count := maxInt(1, c.settings.BiomeOctaves)

	amplitude := float32(1)
	frequency := 1.0
	var sum, norm float32

	for i := 0; i < count; i++ {
		sum += float32(c.base.Eval2(x*frequency, y*frequency)) * amplitude
		norm += amplitude
		amplitude *= biomePersistence
		frequency *= biomeLacunarity
	}
	return sum / norm
}
