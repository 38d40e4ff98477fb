// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package world

import "testing"

func TestInverseLerp(t *testing.T) {
	if v := InverseLerp(2, 4, 3); v != 0.5 {
		t.Error("expected 0.5 got", v)
	}
	if v := InverseLerp(2, 4, 1); v != 0 {
		t.Error("expected clamp to 0 got", v)
	}
	if v := InverseLerp(2, 4, 5); v != 1 {
		t.Error("expected clamp to 1 got", v)
	}
	if v := InverseLerp(3, 3, 3); v != 0 {
		t.Error("degenerate range expected 0 got", v)
	}
}

func TestSmoothstep(t *testing.T) {
	if v := Smoothstep(0); v != 0 {
		t.Error("expected 0 got", v)
	}
	if v := Smoothstep(1); v != 1 {
		t.Error("expected 1 got", v)
	}
	if v := Smoothstep(0.5); v != 0.5 {
		t.Error("expected 0.5 got", v)
	}
	if Smoothstep(0.25) >= 0.25 {
		t.Error("ease-in should undershoot linear")
	}
}

func TestAngle_Norm(t *testing.T) {
	if a := Angle(-1).Norm(); a < 0 || a >= Pi2 {
		t.Error("norm out of range:", a)
	}
	if a := Angle(7).Norm(); a < 0 || a >= Pi2 {
		t.Error("norm out of range:", a)
	}
}
