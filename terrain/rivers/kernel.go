// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package rivers

import (
	"github.com/chewxy/math32"
)

// kernelCell is one offset/weight pair of a precomputed river stamp.
type kernelCell struct {
	dx, dy int
	weight float32
}

// kernel returns the radial falloff stamp for an integer radius:
// weight = (1 - d/radius)^bankSoftness for every offset within the
// radius. Many path steps share a radius, so kernels are cached per
// builder; rebuilding them per step dominates carve cost otherwise.
func (b *Builder) kernel(radius int) []kernelCell {
	if k, ok := b.kernels[radius]; ok {
		return k
	}

	r := float32(radius)
	softness := b.settings.RiverBankSoftness
	k := make([]kernelCell, 0, (2*radius+1)*(2*radius+1))

	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			d := math32.Hypot(float32(dx), float32(dy))
			if d > r {
				continue
			}
			k = append(k, kernelCell{
				dx:     dx,
				dy:     dy,
				weight: math32.Pow(1-d/r, softness),
			})
		}
	}

	b.kernels[radius] = k
	return k
}
