// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

import "fmt"

// Field is a dense float32 sample grid indexed (x, y) with x fastest.
type Field struct {
	Values []float32
	Width  int
	Height int
}

func NewField(width, height int) *Field {
	return &Field{
		Values: make([]float32, width*height),
		Width:  width,
		Height: height,
	}
}

func (f *Field) index(x, y int) int {
	if uint(x) >= uint(f.Width) || uint(y) >= uint(f.Height) {
		panic(fmt.Sprintf("field index (%d, %d) out of %dx%d", x, y, f.Width, f.Height))
	}
	return x + y*f.Width
}

func (f *Field) At(x, y int) float32 {
	return f.Values[f.index(x, y)]
}

func (f *Field) Set(x, y int, value float32) {
	f.Values[f.index(x, y)] = value
}

// MaxAt raises the sample to value if value is higher.
// Never lowers an existing sample.
func (f *Field) MaxAt(x, y int, value float32) {
	i := f.index(x, y)
	if value > f.Values[i] {
		f.Values[i] = value
	}
}

// Slice copies a width*height sub-block starting at (x, y).
func (f *Field) Slice(x, y, width, height int) *Field {
	// Early bounds check
	_ = f.index(x+width-1, y+height-1)

	s := NewField(width, height)
	for j := 0; j < height; j++ {
		src := f.index(x, y+j)
		copy(s.Values[j*width:(j+1)*width], f.Values[src:src+width])
	}
	return s
}

// Clone copies the whole field.
func (f *Field) Clone() *Field {
	s := NewField(f.Width, f.Height)
	copy(s.Values, f.Values)
	return s
}
