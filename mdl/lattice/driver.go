// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lattice

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/mat"
)

// Driver runs a sequence of generalised strains through a frame model at a single point
type Driver struct {

	// input
	Mdl Frame  // lattice frame model
	Pt  *Point // point driven by the strain path

	// settings
	TolD float64 // tolerance to check D
	StpD float64 // step for the finite differences used to check D
	VerD bool    // verbose check of D

	// check D matrix
	TstD *testing.T // if != nil, do check D against finite differences of FrameForces

	// results
	Res []*Status   // committed status after each step
	Eps [][]float64 // strains applied at each step
}

// Init initialises driver
func (o *Driver) Init(mdl Model, sec Section) (err error) {
	if !mdl.HasCapability(Mode3dLattice) {
		return chk.Err("model cannot be used in 3D lattice analyses")
	}
	frame, ok := mdl.(Frame)
	if !ok {
		return chk.Err("model is not a lattice frame model")
	}
	o.Mdl = frame
	o.Pt = NewPoint(-1, 0, sec)
	o.TolD = 1e-8
	o.StpD = 1e-6
	o.VerD = chk.Verbose
	return
}

// Run runs simulation
//  path -- generalised strains [nsteps][Nsig]; time at step i is i
func (o *Driver) Run(path [][]float64) (err error) {

	// allocate results arrays
	np := len(path)
	o.Res = make([]*Status, np)
	o.Eps = make([][]float64, np)

	// update states
	for i, ε := range path {
		if len(ε) != Nsig {
			return chk.Err("strain at step %d must have %d components. %d is invalid", i, Nsig, len(ε))
		}
		t := float64(i)
		σ := o.Mdl.FrameForces(ε, o.Pt, t)
		status := o.Mdl.Status(o.Pt)
		status.Commit()
		o.Res[i] = status.GetCopy()
		o.Eps[i] = append([]float64{}, ε...)
		if o.VerD {
			io.Pf("%3d : ε = %v\n", i, ε)
			io.Pforan("      σ = %v\n", σ)
		}

		// check D
		if o.TstD != nil {
			o.checkD(i, ε, t)
		}
	}
	return
}

// checkD compares D with the Jacobian of FrameForces computed with finite differences
func (o *Driver) checkD(step int, ε []float64, t float64) {
	D := o.Mdl.Stiffness(ElasticStiffness, o.Pt, t)
	scratch := NewPoint(-2, step, o.Pt.Sec)
	var num mat.Dense
	num.ReuseAs(Nsig, Nsig)
	fd.Jacobian(&num, func(σ, x []float64) {
		copy(σ, o.Mdl.FrameForces(x, scratch, t))
	}, ε, &fd.JacobianSettings{Formula: fd.Central, Step: o.StpD})
	chk.Deep2(o.TstD, io.Sf("D @ step %d", step), o.TolD, deep2(&num), deep2(D))
}

// deep2 converts a matrix to [][]float64
func deep2(a mat.Matrix) (res [][]float64) {
	r, c := a.Dims()
	res = make([][]float64, r)
	for i := 0; i < r; i++ {
		res[i] = make([]float64, c)
		for j := 0; j < c; j++ {
			res[i][j] = a.At(i, j)
		}
	}
	return
}

// LinearPath returns nincs+1 strains linearly interpolated between ε0 and ε1
func LinearPath(ε0, ε1 []float64, nincs int) (path [][]float64) {
	if nincs < 1 {
		nincs = 1
	}
	S := utl.LinSpace(0, 1, nincs+1)
	path = make([][]float64, nincs+1)
	for i, s := range S {
		path[i] = make([]float64, Nsig)
		for j := 0; j < Nsig; j++ {
			path[i][j] = (1.0-s)*ε0[j] + s*ε1[j]
		}
	}
	return
}
