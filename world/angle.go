// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package world

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Angle is a radian heading.
type Angle float32

const Pi2 = Angle(math32.Pi * 2)

// Norm wraps the angle into [0, 2pi).
func (angle Angle) Norm() Angle {
	angle = Angle(math32.Mod(float32(angle), float32(Pi2)))
	if angle < 0 {
		angle += Pi2
	}
	return angle
}

func (angle Angle) String() string {
	return fmt.Sprintf("%.01f°", float32(angle.Norm())*180/math32.Pi)
}
