// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/latfem/latfem/fem"
	"github.com/latfem/latfem/inp"
	"github.com/latfem/latfem/mdl/lattice"
	"github.com/latfem/latfem/out"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
			os.Exit(1)
		}
	}()

	// simulation or material point
	fnamepath := io.ArgToString(0, "")
	if fnamepath == "" {
		io.Pf("usage:\n")
		io.Pf("  latfem file.sim [verbose] [saveResults] [vid]\n")
		io.Pf("  latfem file.mat material section [nsteps] [epsmax] [plot] [unitPres]\n")
		return
	}
	var err error
	if strings.HasSuffix(fnamepath, ".sim") {
		err = runSim(fnamepath)
	} else {
		err = runPoint(fnamepath)
	}
	if err != nil {
		chk.Panic("%v", err)
	}
}

// runSim runs a finite element simulation
func runSim(fnamepath string) (err error) {
	verbose := io.ArgToBool(1, true)
	saveResults := io.ArgToBool(2, true)
	vid := io.ArgToInt(3, -1)
	if verbose {
		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"save results", "saveResults", saveResults,
			"vertex to report", "vid", vid,
		))
	}
	analysis, err := fem.NewMain(fnamepath, "imp", saveResults, verbose)
	if err != nil {
		return
	}
	err = analysis.Run()
	if err != nil || !saveResults || vid < 0 {
		return
	}

	// report
	res, err := out.Start(fnamepath, analysis.Sim.DirOut)
	if err != nil {
		return
	}
	l, err := res.Table(vid, "ux", "uy", "uz", "rx", "ry", "rz")
	if err != nil {
		return
	}
	io.Pf("\n%v", l)
	return
}

// runPoint drives one integration point along a uniaxial strain path
func runPoint(fnamepath string) (err error) {

	// input
	matname := io.ArgToString(1, "")
	secname := io.ArgToString(2, "")
	nsteps := io.ArgToInt(3, 10)
	epsmax := io.ArgToFloat(4, 1e-3)
	doplot := io.ArgToBool(5, false)
	unitPres := io.ArgToString(6, "MPa")
	io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
		"materials file", "fnamepath", fnamepath,
		"material name", "matname", matname,
		"cross-section name", "secname", secname,
		"number of steps", "nsteps", nsteps,
		"maximum axial strain", "epsmax", epsmax,
		"plot results", "doplot", doplot,
		"unit of pressure (reference materials)", "unitPres", unitPres,
	))

	// materials database
	mdb, err := inp.ReadMat(filepath.Dir(fnamepath), filepath.Base(fnamepath))
	if err != nil {
		return
	}
	mat, err := mdb.AddReference(matname, unitPres)
	if err != nil {
		return
	}
	sec := mdb.Section(secname)
	if sec == nil {
		return chk.Err("cannot find cross-section %q", secname)
	}

	// run
	var drv lattice.Driver
	err = drv.Init(mat.Lattice, sec)
	if err != nil {
		return
	}
	ε1 := make([]float64, lattice.Nsig)
	ε1[0] = epsmax
	err = drv.Run(lattice.LinearPath(make([]float64, lattice.Nsig), ε1, nsteps))
	if err != nil {
		return
	}

	// results
	io.Pf("%4s", "step")
	for _, key := range lattice.ComponentKeys {
		io.Pf("%14s", "ε"+key)
	}
	for _, key := range lattice.ComponentKeys {
		io.Pf("%14s", key)
	}
	io.Pf("\n")
	for i, res := range drv.Res {
		io.Pf("%4d", i)
		for _, v := range res.Strain {
			io.Pf("%14.6e", v)
		}
		for _, v := range res.Stress {
			io.Pf("%14.6e", v)
		}
		io.Pf("\n")
	}

	// plot
	if doplot {
		var plr lattice.Plotter
		plr.SetFig(os.TempDir(), "latfem_"+matname)
		fn, err := plr.Plot(drv.Res, []int{0})
		if err != nil {
			return err
		}
		io.Pf("file <%s> written\n", fn)
	}
	return
}
