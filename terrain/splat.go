// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

import (
	"github.com/chewxy/math32"
)

// Texture layer indices within a splat weight triple.
const (
	LayerDune = iota
	LayerSaltFlat
	LayerRiver
	LayerCount
)

// Splatmap holds normalized per-sample texture weights.
//
// Alphamap space is transposed relative to heightmap sample space: the
// raw buffer is laid out [x][y][layer] while fields are stored with x
// fastest. At hides the remap; code that hands the raw buffer to a
// renderer must preserve this orientation.
type Splatmap struct {
	Weights []float32
	Width   int // sample-space width (second raw index)
	Height  int // sample-space height (first raw index)
}

func NewSplatmap(width, height int) *Splatmap {
	return &Splatmap{
		Weights: make([]float32, width*height*LayerCount),
		Width:   width,
		Height:  height,
	}
}

// At returns the weight for a layer at sample-space (x, y).
func (s *Splatmap) At(x, y, layer int) float32 {
	return s.Weights[(x*s.Height+y)*LayerCount+layer]
}

func (s *Splatmap) set(x, y, layer int, value float32) {
	s.Weights[(x*s.Height+y)*LayerCount+layer] = value
}

// ComposeSplat derives the texture weights of a tile from its biome
// blend and river mask. Weights are non-negative and sum to 1 per
// sample. Sharpening > 1 increases contrast at biome boundaries
// without breaking the unit sum.
func ComposeSplat(t *Tile, sharpening float32) *Splatmap {
	blend := t.Blend
	river := t.River
	s := NewSplatmap(blend.Width, blend.Height)

	for y := 0; y < blend.Height; y++ {
		for x := 0; x < blend.Width; x++ {
			b := blend.At(x, y)
			if sharpening != 1 {
				b = sharpen(b, sharpening)
			}
			r := river.At(x, y)

			s.set(x, y, LayerDune, b*(1-r))
			s.set(x, y, LayerSaltFlat, (1-b)*(1-r))
			s.set(x, y, LayerRiver, r)
		}
	}
	return s
}

// sharpen pushes a [0,1] blend toward 0 or 1 around 0.5.
func sharpen(b, exponent float32) float32 {
	hi := math32.Pow(b, exponent)
	lo := math32.Pow(1-b, exponent)
	return hi / (hi + lo)
}
