// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package noise

import (
	"github.com/aquilax/go-perlin"
)

// Field is a single-octave coherent noise source normalized to [0,1].
// Identical seed and coordinates always yield identical samples,
// independent of call order or platform.
type Field struct {
	p *perlin.Perlin
}

func NewField(seed int64) *Field {
	return &Field{p: perlin.NewPerlin(2, 2, 1, seed)}
}

// At samples 2D noise at (x, y). Result is in [0, 1].
func (f *Field) At(x, y float64) float32 {
	return clamp01(float32(f.p.Noise2D(x, y))*0.5 + 0.5)
}

// At1 samples 1D noise along a line. Result is in [0, 1].
func (f *Field) At1(x float64) float32 {
	return clamp01(float32(f.p.Noise1D(x))*0.5 + 0.5)
}

// FBM accumulates octaves with persistence-scaled amplitude and
// lacunarity-scaled frequency, then normalizes by FBMNorm.
func (f *Field) FBM(x, y float64, octaves int, persistence, lacunarity float32) float32 {
	amplitude := float32(1)
	frequency := 1.0
	var sum float32

	for i := 0; i < octaves; i++ {
		sum += f.At(x*frequency, y*frequency) * amplitude
		amplitude *= persistence
		frequency *= float64(lacunarity)
	}
	return sum / FBMNorm(octaves)
}

// FBMNorm is the closed-form octave amplitude sum 2 - 1/2^(octaves-1).
func FBMNorm(octaves int) float32 {
	return 2 - 1/float32(int64(1)<<uint(octaves-1))
}
