// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"sort"

	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// EssentialBc holds information about a prescribed displacement or rotation
//  The equations of prescribed values are eliminated from the linear system:
//
//      y[Eq] = Fcn(t)
//
type EssentialBc struct {
	Key string // key such as 'ux', 'rz'
	Eq  int    // equation number
	Fcn dbf.T  // function that implements the prescribed value
}

// EbcArray is an array of EssentialBc's
type EbcArray []*EssentialBc

// EssentialBcs implements a structure to record the definition of essential bcs
type EssentialBcs struct {
	Bcs   EbcArray     // active essential bcs
	Fixed map[int]bool // equations with prescribed values
}

// Init initialises this structure
func (o *EssentialBcs) Init() {
	o.Bcs = make([]*EssentialBc, 0)
	o.Fixed = make(map[int]bool)
}

// Set sets or replaces the prescribed value of equation eq
func (o *EssentialBcs) Set(key string, eq int, fcn dbf.T) {
	o.Fixed[eq] = true
	for _, bc := range o.Bcs {
		if bc.Eq == eq {
			bc.Key, bc.Fcn = key, fcn
			return
		}
	}
	o.Bcs = append(o.Bcs, &EssentialBc{key, eq, fcn})
}

// Apply sets the prescribed values in y at time t
func (o *EssentialBcs) Apply(y []float64, t float64) {
	for _, bc := range o.Bcs {
		y[bc.Eq] = bc.Fcn.F(t, nil)
	}
}

// FreeEqs returns the equations without prescribed values
func (o *EssentialBcs) FreeEqs(ny int) (eqs []int) {
	for eq := 0; eq < ny; eq++ {
		if !o.Fixed[eq] {
			eqs = append(eqs, eq)
		}
	}
	return
}

// List returns a simple list logging bcs at time t
func (o *EssentialBcs) List(t float64) (l string) {
	l = "\n==================================================================\n"
	l += io.Sf("%8s%8s%25s%25s\n", "eq", "key", "value @ t=0", io.Sf("value @ t=%g", t))
	l += "------------------------------------------------------------------\n"
	sort.Sort(o.Bcs)
	for _, bc := range o.Bcs {
		l += io.Sf("%8d%8s%25.13f%25.13f\n", bc.Eq, bc.Key, bc.Fcn.F(0, nil), bc.Fcn.F(t, nil))
	}
	l += "==================================================================\n"
	return
}

// functions to implement Sort interface
func (o EbcArray) Len() int           { return len(o) }
func (o EbcArray) Swap(i, j int)      { o[i], o[j] = o[j], o[i] }
func (o EbcArray) Less(i, j int) bool { return o[i].Eq < o[j].Eq }

// PtNaturalBc holds information on point natural boundary conditions such as
// prescribed forces or moments at nodes
type PtNaturalBc struct {
	Key string // key such as fx, fy, mz
	Eq  int    // equation
	Fcn dbf.T  // function
}

// PtNaturalBcs is a set of prescribed forces
type PtNaturalBcs struct {
	Eq2idx map[int]int    // maps eq number to indices in Bcs
	Bcs    []*PtNaturalBc // active bcs
}

// Reset initialises internal structures
func (o *PtNaturalBcs) Reset() {
	o.Eq2idx = make(map[int]int)
	o.Bcs = make([]*PtNaturalBc, 0)
}

// AddToRhs adds the boundary conditions terms to the augmented fb vector
func (o PtNaturalBcs) AddToRhs(fb []float64, t float64) {
	for _, p := range o.Bcs {
		fb[p.Eq] += p.Fcn.F(t, nil)
	}
}

// Set sets or replaces the force acting on equation eq
func (o *PtNaturalBcs) Set(key string, eq int, fcn dbf.T) {
	if idx, ok := o.Eq2idx[eq]; ok {
		o.Bcs[idx].Key, o.Bcs[idx].Fcn = key, fcn
		return
	}
	o.Eq2idx[eq] = len(o.Bcs)
	o.Bcs = append(o.Bcs, &PtNaturalBc{key, eq, fcn})
}

// List returns a simple list logging bcs at time t
func (o PtNaturalBcs) List(t float64) (l string) {
	l = "\n==================================================================\n"
	l += io.Sf("%8s%8s%25s%25s\n", "eq", "key", "value @ t=0", io.Sf("value @ t=%g", t))
	l += "------------------------------------------------------------------\n"
	for _, bc := range o.Bcs {
		l += io.Sf("%8d%8s%25.13f%25.13f\n", bc.Eq, bc.Key, bc.Fcn.F(0, nil), bc.Fcn.F(t, nil))
	}
	l += "==================================================================\n"
	return
}
