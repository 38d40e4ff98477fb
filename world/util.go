// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package world

func Min(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func Max(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func Clamp(val, minimum, maximum float32) float32 {
	return Min(Max(val, minimum), maximum)
}

// Clamp01 clamps to the normalized sample range.
func Clamp01(val float32) float32 {
	return Clamp(val, 0, 1)
}

func Lerp(a, b, factor float32) float32 {
	return a + (b-a)*factor
}

// InverseLerp maps val from [a, b] to [0, 1], clamped.
func InverseLerp(a, b, val float32) float32 {
	if a == b {
		return 0
	}
	return Clamp01((val - a) / (b - a))
}

// Smoothstep applies the cubic 3t²-2t³ ease to a value already in [0, 1].
func Smoothstep(t float32) float32 {
	t = Clamp01(t)
	return t * t * (3 - 2*t)
}
