// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

import (
	"math/rand"
	"testing"
)

func splatTile(side int, fill func(x, y int) (blend, river float32)) *Tile {
	t := &Tile{
		Blend: NewField(side, side),
		River: NewField(side, side),
	}
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			b, r := fill(x, y)
			t.Blend.Set(x, y, b)
			t.River.Set(x, y, r)
		}
	}
	return t
}

func TestComposeSplat_UnitSum(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	tile := splatTile(9, func(x, y int) (float32, float32) {
		return r.Float32(), r.Float32()
	})

	for _, sharpening := range []float32{1, 2.5} {
		s := ComposeSplat(tile, sharpening)
		for y := 0; y < 9; y++ {
			for x := 0; x < 9; x++ {
				sum := s.At(x, y, LayerDune) + s.At(x, y, LayerSaltFlat) + s.At(x, y, LayerRiver)
				if sum < 1-1e-5 || sum > 1+1e-5 {
					t.Fatal("weights at", x, y, "sum to", sum)
				}
				for layer := 0; layer < LayerCount; layer++ {
					if w := s.At(x, y, layer); w < 0 || w > 1 {
						t.Fatal("weight out of [0,1]:", w)
					}
				}
			}
		}
	}
}

func TestComposeSplat_Weights(t *testing.T) {
	tile := splatTile(2, func(x, y int) (float32, float32) {
		return 0.75, 0.4
	})
	s := ComposeSplat(tile, 1)

	if got := s.At(0, 0, LayerRiver); got != 0.4 {
		t.Error("river weight expected 0.4 got", got)
	}
	if got, want := s.At(0, 0, LayerDune), float32(0.75)*0.6; got != want {
		t.Error("dune weight expected", want, "got", got)
	}
	if got, want := s.At(0, 0, LayerSaltFlat), float32(0.25)*0.6; got != want {
		t.Error("salt flat weight expected", want, "got", got)
	}
}

// Alphamap space is transposed relative to heightmap sample space: the
// raw buffer iterates y fastest within x.
func TestSplatmap_Orientation(t *testing.T) {
	tile := splatTile(3, func(x, y int) (float32, float32) {
		if x == 2 && y == 0 {
			return 0, 1 // pure river at sample-space (2, 0)
		}
		return 1, 0
	})
	s := ComposeSplat(tile, 1)

	if got := s.At(2, 0, LayerRiver); got != 1 {
		t.Fatal("river weight at (2,0) expected 1 got", got)
	}

	// Raw layout: [x][y][layer].
	raw := s.Weights[(2*3+0)*LayerCount+LayerRiver]
	if raw != 1 {
		t.Error("raw buffer not transposed: expected river weight at [2][0], got", raw)
	}
	if transposed := s.Weights[(0*3+2)*LayerCount+LayerRiver]; transposed != 0 {
		t.Error("raw buffer has river weight at [0][2]:", transposed)
	}
}

func TestSharpen(t *testing.T) {
	if v := sharpen(0.5, 3); v != 0.5 {
		t.Error("sharpen is not neutral at 0.5, got", v)
	}
	if lo, hi := sharpen(0.2, 3), sharpen(0.8, 3); lo >= 0.2 || hi <= 0.8 {
		t.Error("sharpening did not increase contrast:", lo, hi)
	}
}
