// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

import (
	"image"
	"image/color"
)

type ColorVec [3]float32

// Layer colors indexed like splat weights.
var layerColors = [LayerCount]ColorVec{
	LayerDune:     RGB(205, 170, 109),
	LayerSaltFlat: RGB(228, 226, 218),
	LayerRiver:    RGB(0, 75, 130),
}

// Render paints the whole grid from splat weights, shaded by height.
// Debug aid; a seam shows up as a visible grid line.
func Render(w *World) image.Image {
	g := w.Grid
	img := image.NewRGBA(image.Rect(0, 0, g.TilesX*g.Resolution+1, g.TilesY*g.Resolution+1))

	side := g.Resolution + 1
	for _, t := range g.Tiles() {
		ox, oy := g.SampleOrigin(t)
		for j := 0; j < side; j++ {
			for i := 0; i < side; i++ {
				var c ColorVec
				for layer := 0; layer < LayerCount; layer++ {
					c = c.AddScaled(layerColors[layer], t.Splat.At(i, j, layer))
				}
				shade := 0.55 + 0.45*t.Height.At(i, j)
				img.Set(ox+i, oy+j, c.Mul(shade).Color())
			}
		}
	}
	return img
}

func RGB(r, g, b byte) ColorVec {
	const factor = 1.0 / 255
	return ColorVec{float32(r) * factor, float32(g) * factor, float32(b) * factor}
}

func (vec ColorVec) Mul(v float32) ColorVec {
	vec[0] *= v
	vec[1] *= v
	vec[2] *= v
	return vec
}

func (vec ColorVec) AddScaled(other ColorVec, factor float32) ColorVec {
	for i := range vec {
		vec[i] += other[i] * factor
	}
	return vec
}

func (vec ColorVec) Color() color.RGBA {
	return color.RGBA{R: floatToByte(vec[0]), G: floatToByte(vec[1]), B: floatToByte(vec[2]), A: 255}
}

func floatToByte(f float32) byte {
	if f < 0 {
		return 0
	}
	if f > 1.0 {
		return 255
	}
	return byte(f * 255)
}
