// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

// Solution holds the solution data @ nodes.
//
//  y = { ux0 uy0 uz0 rx0 ry0 rz0 ... } (ny x 1)
//
type Solution struct {

	// current state
	T float64   // current time
	Y []float64 // DOFs (displacements and rotations)

	// auxiliary
	Dt float64   // current time increment
	ΔY []float64 // total increment (for nonlinear solver)
}

// NewSolution allocates a new solution with ny DOFs
func NewSolution(ny int) *Solution {
	return &Solution{Y: make([]float64, ny), ΔY: make([]float64, ny)}
}

// Reset clear values
func (o *Solution) Reset() {
	o.T = 0
	for i := 0; i < len(o.Y); i++ {
		o.Y[i] = 0
		o.ΔY[i] = 0
	}
}
