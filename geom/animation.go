// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

// AngleStep is the amount the animation angle advances per frame, in radians.
const AngleStep float32 = 0.02

// Animation is the animation state: a single angle that is
// advanced by a fixed Step once per frame.
type Animation struct {
	// Angle is the current angle in radians.
	Angle float32

	// Step is the per-frame increment.
	Step float32
}

// NewAnimation returns a new Animation starting at 0 with [AngleStep].
func NewAnimation() *Animation {
	return &Animation{Step: AngleStep}
}

// Advance advances the angle by Step and returns the new angle.
func (an *Animation) Advance() float32 {
	an.Angle += an.Step
	return an.Angle
}
