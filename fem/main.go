// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fem implements the FEM solver for lattice models
package fem

import (
	"time"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/latfem/latfem/inp"
)

// Main holds all data for a simulation using the finite element method
type Main struct {
	Sim     *inp.Simulation // simulation data
	Summary *Summary        // summary structure
	Dom     *Domain         // domain
	Solver  Solver          // finite element method solver
	ShowMsg bool            // show messages
}

// NewMain returns a new Main structure
//  Input:
//   simfilepath -- simulation (.sim) filename including full path
//   solverType  -- e.g. "imp"
//   saveResults -- save results and summary files
//   verbose     -- show messages
func NewMain(simfilepath, solverType string, saveResults, verbose bool) (o *Main, err error) {

	// new Main object
	o = new(Main)
	o.ShowMsg = verbose

	// read input data
	o.Sim, err = inp.ReadSim(simfilepath, saveResults)
	if err != nil {
		return nil, chk.Err("cannot read simulation input data:\n%v", err)
	}
	if o.ShowMsg {
		io.Pf("> Simulation (.sim) file read\n")
	}

	// summary
	if saveResults {
		o.Summary = &Summary{Dirout: o.Sim.DirOut, Fnkey: o.Sim.Key, EncType: o.Sim.EncType}
	}

	// domain
	o.Dom, err = NewDomain(o.Sim, verbose)
	if err != nil {
		return nil, chk.Err("cannot allocate domain:\n%v", err)
	}

	// solver
	alloc, ok := allocators[solverType]
	if !ok {
		return nil, chk.Err("cannot find solver type named %q", solverType)
	}
	o.Solver = alloc(o.Dom, o.Summary)
	return
}

// Run runs FE simulation
func (o *Main) Run() (err error) {

	// exit commands
	cputime := time.Now()
	defer func() { err = o.onexit(cputime, err) }()

	// message
	if o.ShowMsg {
		io.Pf("> Running FE solver\n")
	}

	// time loop
	return o.Solver.Run(&o.Sim.Control, o.ShowMsg)
}

// auxiliary //////////////////////////////////////////////////////////////////////////////////////

// onexit prints final message with cpu time and save summary
func (o *Main) onexit(cputime time.Time, prevErr error) (err error) {

	// show final message
	if o.ShowMsg {
		if prevErr == nil {
			io.PfGreen("> Success\n")
			io.Pf("> CPU time = %v\n", time.Since(cputime))
		} else {
			io.PfRed("> Failed\n")
		}
	}

	// save summary
	if o.Summary != nil {
		err = o.Summary.Save()
		if err != nil {
			return
		}
	}

	// skip if previous error is not nil
	if prevErr != nil {
		err = prevErr
	}
	return
}
