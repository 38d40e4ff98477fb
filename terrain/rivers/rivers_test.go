// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package rivers

import (
	"testing"

	"github.com/chewxy/math32"

	"github.com/tucker567/Car-sub000/terrain"
)

func scenarioSettings() *terrain.Settings {
	settings := terrain.DefaultSettings()
	settings.TilesX = 2
	settings.TilesY = 2
	settings.Resolution = 4
	settings.Depth = 20
	settings.MinRivers = 1
	settings.MaxRivers = 1
	return settings
}

// The 2x2/res-4/seed-42 scenario: exactly one river spanning the full
// global sample space, mask 1.0 along the centerline.
func TestBuilder_Scenario(t *testing.T) {
	settings := scenarioSettings()
	b := NewBuilder(42, settings)

	count := b.Plan(settings.SampleWidth(), settings.SampleHeight())
	if count != 1 {
		t.Fatal("river count expected 1 got", count)
	}
	b.Carve(0)
	mask := b.Mask()

	if mask.Width != 9 || mask.Height != 9 {
		t.Fatal("mask expected 9x9 got", mask.Width, mask.Height)
	}

	// The path must reach mask 1.0 at every step of its primary axis,
	// whichever axis was drawn.
	horizontal, vertical := true, true
	for i := 0; i < 9; i++ {
		var rowMax, colMax float32
		for k := 0; k < 9; k++ {
			if v := mask.At(i, k); v > rowMax {
				rowMax = v
			}
			if v := mask.At(k, i); v > colMax {
				colMax = v
			}
		}
		if rowMax != 1 {
			horizontal = false
		}
		if colMax != 1 {
			vertical = false
		}
	}
	if !horizontal && !vertical {
		t.Error("no centerline of 1.0 spans the full sample space")
	}

	for _, v := range mask.Values {
		if v < 0 || v > 1 {
			t.Fatal("mask value out of [0,1]:", v)
		}
	}
}

// Fractional widths round to the nearest integer stamp radius and
// still produce a full-span centerline.
func TestBuilder_FractionalWidth(t *testing.T) {
	settings := scenarioSettings()
	settings.RiverWidth = 2.5
	settings.RiverWidthJitter = 0
	b := NewBuilder(42, settings)

	n := b.Plan(settings.SampleWidth(), settings.SampleHeight())
	for i := 0; i < n; i++ {
		b.Carve(i)
	}

	mask := b.Mask()
	centerline := false
	for _, v := range mask.Values {
		if v < 0 || v > 1 {
			t.Fatal("mask value out of [0,1]:", v)
		}
		if v == 1 {
			centerline = true
		}
	}
	if !centerline {
		t.Error("no centerline sample after width rounding")
	}
}

func TestBuilder_Deterministic(t *testing.T) {
	settings := scenarioSettings()

	build := func() []float32 {
		b := NewBuilder(42, settings)
		n := b.Plan(settings.SampleWidth(), settings.SampleHeight())
		for i := 0; i < n; i++ {
			b.Carve(i)
		}
		return b.Mask().Values
	}

	a, c := build(), build()
	for i := range a {
		if a[i] != c[i] {
			t.Fatal("same seed diverged at index", i, "expected", a[i], "got", c[i])
		}
	}
}

// Stamping is max-combine: carving another river never lowers a
// previously higher sample.
func TestBuilder_MonotonicStamping(t *testing.T) {
	settings := scenarioSettings()
	settings.MinRivers = 3
	settings.MaxRivers = 3
	b := NewBuilder(17, settings)

	count := b.Plan(settings.SampleWidth(), settings.SampleHeight())
	if count != 3 {
		t.Fatal("river count expected 3 got", count)
	}

	var prev []float32
	for i := 0; i < count; i++ {
		b.Carve(i)
		cur := b.Mask().Clone().Values
		for j, v := range cur {
			if prev != nil && v < prev[j] {
				t.Fatal("carve", i, "lowered sample", j, "from", prev[j], "to", v)
			}
		}
		prev = cur
	}
}

// Carve order must not matter once planned.
func TestBuilder_CarveOrderIndependent(t *testing.T) {
	settings := scenarioSettings()
	settings.MinRivers = 3
	settings.MaxRivers = 3

	forward := NewBuilder(23, settings)
	n := forward.Plan(settings.SampleWidth(), settings.SampleHeight())
	for i := 0; i < n; i++ {
		forward.Carve(i)
	}

	backward := NewBuilder(23, settings)
	backward.Plan(settings.SampleWidth(), settings.SampleHeight())
	for i := n - 1; i >= 0; i-- {
		backward.Carve(i)
	}

	for i := range forward.Mask().Values {
		if forward.Mask().Values[i] != backward.Mask().Values[i] {
			t.Fatal("carve order changed mask at index", i)
		}
	}
}

func TestKernel_PowerLawFalloff(t *testing.T) {
	settings := scenarioSettings()
	settings.RiverBankSoftness = 1.6
	b := NewBuilder(1, settings)

	const radius = 5
	k := b.kernel(radius)

	for _, c := range k {
		d := math32.Hypot(float32(c.dx), float32(c.dy))
		want := math32.Pow(1-d/radius, settings.RiverBankSoftness)
		if c.weight != want {
			t.Fatal("kernel weight at", c.dx, c.dy, "expected", want, "got", c.weight)
		}
	}

	// Center cell carries full influence.
	var center bool
	for _, c := range k {
		if c.dx == 0 && c.dy == 0 {
			center = c.weight == 1
		}
	}
	if !center {
		t.Error("kernel center weight expected 1")
	}
}

func TestKernel_Cached(t *testing.T) {
	b := NewBuilder(1, scenarioSettings())

	a := b.kernel(4)
	c := b.kernel(4)
	if &a[0] != &c[0] {
		t.Error("kernel not cached for repeated radius")
	}
}
