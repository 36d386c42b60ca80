// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/latfem/latfem/inp"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Solver implements the actual solver (time loop)
type Solver interface {
	Run(ctrl *inp.Control, verbose bool) (err error)
}

// allocators holds all available solvers
var allocators = make(map[string]func(dom *Domain, sum *Summary) Solver)

// Implicit solves the equilibrium equations with Newton's method at each time step
type Implicit struct {
	Dom *Domain  // domain
	Sum *Summary // summary; nil => no output files
}

// register solver
func init() {
	allocators["imp"] = func(dom *Domain, sum *Summary) Solver {
		return &Implicit{dom, sum}
	}
}

// Run runs the time loop
func (o *Implicit) Run(ctrl *inp.Control, verbose bool) (err error) {

	// auxiliary
	d := o.Dom
	ϵ := 1e-10 * ctrl.Dt
	t := d.Sol.T
	tout := t + ctrl.DtOut

	// first output
	if o.Sum != nil && len(o.Sum.OutTimes) == 0 {
		err = o.Sum.SaveDomain(d, verbose)
		if err != nil {
			return
		}
	}

	// time loop
	for t < ctrl.Tf-ϵ {

		// time increment
		Δt := ctrl.Dt
		if t+Δt > ctrl.Tf {
			Δt = ctrl.Tf - t
		}
		t += Δt

		// message
		if verbose {
			io.Pf("> time = %g\n", t)
		}

		// iterations
		err = d.backup()
		if err != nil {
			return
		}
		err = run_iterations(t, Δt, d, ctrl, verbose)
		if err != nil {
			if e := d.restore(); e != nil {
				return chk.Err("%v\n%v", err, e)
			}
			return
		}
		d.Commit()

		// output
		if t >= tout-ϵ || t >= ctrl.Tf-ϵ {
			if o.Sum != nil {
				err = o.Sum.SaveDomain(d, verbose)
				if err != nil {
					return
				}
			}
			tout += ctrl.DtOut
		}
	}
	return
}

// run_iterations solves the nonlinear problem
func run_iterations(t, Δt float64, d *Domain, ctrl *inp.Control, verbose bool) (err error) {

	// zero accumulated increments
	for i := 0; i < d.Ny; i++ {
		d.Sol.ΔY[i] = 0
	}

	// prescribed values
	d.Sol.T = t
	d.Sol.Dt = Δt
	for _, bc := range d.EssenBcs.Bcs {
		d.Sol.ΔY[bc.Eq] = bc.Fcn.F(t, nil) - d.Sol.Y[bc.Eq]
	}
	d.EssenBcs.Apply(d.Sol.Y, t)

	// free equations
	free := d.EssenBcs.FreeEqs(d.Ny)
	nf := len(free)
	fb := make([]float64, nf)
	K := mat.NewDense(max(nf, 1), max(nf, 1), nil)

	// iterations
	var it int
	var largFb float64
	for it = 0; it < ctrl.NmaxIt; it++ {

		// update elements and assemble
		err = d.UpdateElems()
		if err != nil {
			return chk.Err("cannot update elements:\n%v", err)
		}
		err = d.Assemble(it == 0)
		if err != nil {
			return chk.Err("cannot assemble system:\n%v", err)
		}

		// largest absolute component of fb
		for i, I := range free {
			fb[i] = d.Fb[I]
		}
		largFb = 0
		if nf > 0 {
			largFb = floats.Norm(fb, math.Inf(1))
		}
		if verbose {
			io.Pf("%13.6e%4d%23.15e\n", t, it, largFb)
		}
		if largFb < ctrl.Tol {
			return
		}

		// solve for δy
		Kd := d.Kb.ToDense()
		for i, I := range free {
			for j, J := range free {
				K.Set(i, j, Kd.Get(I, J))
			}
		}
		var δy mat.VecDense
		err = δy.SolveVec(K, mat.NewVecDense(nf, fb))
		if err != nil {
			return chk.Err("cannot solve linear system at t=%g:\n%v", t, err)
		}

		// update primary variables
		for i, I := range free {
			d.Sol.Y[I] += δy.AtVec(i)
			d.Sol.ΔY[I] += δy.AtVec(i)
		}
	}
	return chk.Err("iterations did not converge at t=%g. largFb=%g", t, largFb)
}
