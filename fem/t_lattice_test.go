// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"os"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	elat "github.com/latfem/latfem/ele/lattice"
	"github.com/stretchr/testify/assert"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// cantilever: tip values for 2 frames with total length L=2
//  w = P L / (G As) + P L³ / (3 E I) (1 - 1/(4 n²))    θ = P L² / (2 E I)
var cantileverTip = []float64{
	6.666666666666666e-05, // ux = Fx L / (E A)
	0.0200384,             // uy
	-0.0100192,            // uz
	0.0011377777777777777, // rx = Mx L / (G Ik)
	0.008,                 // ry
	0.016,                 // rz
}

func Test_cantilever01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cantilever01. tip loads")

	analysis, err := NewMain("data/cantilever.sim", "imp", false, chk.Verbose)
	if err != nil {
		tst.Errorf("NewMain failed:\n%v", err)
		return
	}
	dom := analysis.Dom
	chk.Int(tst, "number of elements", len(dom.Elems), 2)
	chk.Int(tst, "number of equations", dom.Ny, 18)
	chk.Int(tst, "number of prescribed values", len(dom.EssenBcs.Bcs), 6)
	chk.Int(tst, "number of point loads", len(dom.PtNatBcs.Bcs), 4)
	chk.Int(tst, "number of integration points", dom.Pts.Len(), 2)
	if chk.Verbose {
		io.Pf("%v", dom.EssenBcs.List(1))
		io.Pf("%v", dom.PtNatBcs.List(1))
	}

	err = analysis.Run()
	if err != nil {
		tst.Errorf("Run failed:\n%v", err)
		return
	}

	// tip displacements and rotations
	tip := dom.Vid2node[2]
	keys := []string{"ux", "uy", "uz", "rx", "ry", "rz"}
	for i, key := range keys {
		chk.Float64(tst, "tip: "+key, 1e-12, dom.Sol.Y[tip.GetEq(key)], cantileverTip[i])
	}

	// fixed node
	root := dom.Vid2node[0]
	for _, key := range keys {
		chk.Float64(tst, "root: "+key, 1e-17, dom.Sol.Y[root.GetEq(key)], 0)
	}

	// axial force and torque are constant
	vals := dom.IpsValues()
	for _, cid := range []int{0, 1} {
		chk.Float64(tst, io.Sf("N @ %d", cid), 1e-13, vals[cid].Get("N", 0), 1e-2)
		chk.Float64(tst, io.Sf("T0 @ %d", cid), 1e-15, vals[cid].Get("T0", 0), 1e-4)
	}
}

func Test_cantilever02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cantilever02. results files")

	analysis, err := NewMain("data/cantilever.sim", "imp", true, chk.Verbose)
	if err != nil {
		tst.Errorf("NewMain failed:\n%v", err)
		return
	}
	analysis.Sim.DirOut = tst.TempDir()
	analysis.Summary.Dirout = analysis.Sim.DirOut
	err = analysis.Run()
	if err != nil {
		tst.Errorf("Run failed:\n%v", err)
		return
	}

	// summary
	sum, err := ReadSum(analysis.Sim.DirOut, "cantilever")
	if err != nil {
		tst.Errorf("ReadSum failed:\n%v", err)
		return
	}
	chk.Array(tst, "OutTimes", 1e-15, sum.OutTimes, []float64{0, 0.5, 1})
	assert.Equal(tst, "json", sum.EncType)

	// read last state into a new domain
	dom, err := NewDomain(analysis.Sim, false)
	if err != nil {
		tst.Errorf("NewDomain failed:\n%v", err)
		return
	}
	err = dom.Read(sum, 2)
	if err != nil {
		tst.Errorf("Read failed:\n%v", err)
		return
	}
	chk.Float64(tst, "T", 1e-15, dom.Sol.T, 1)
	chk.Array(tst, "Y", 1e-15, dom.Sol.Y, analysis.Dom.Sol.Y)
	for _, id := range dom.Pts.Ids() {
		assert.Same(tst, dom.Pts.Get(id.Eid, id.Ipid), dom.Pts.GetOrCreate(id.Eid, id.Ipid, nil))
		chk.Array(tst, io.Sf("σ @ %v", id), 1e-15, stressOf(dom, id.Eid), stressOf(analysis.Dom, id.Eid))
	}

	// intermediate state
	err = dom.Read(sum, 1)
	if err != nil {
		tst.Errorf("Read failed:\n%v", err)
		return
	}
	tip := dom.Vid2node[2]
	chk.Float64(tst, "uz @ t=0.5", 1e-12, dom.Sol.Y[tip.GetEq("uz")], cantileverTip[2]/2)

	// wrong index
	assert.NotNil(tst, dom.Read(sum, 3))

	// missing files
	sum.Fnkey = "nonexistent"
	assert.NotNil(tst, dom.Read(sum, 0))
	_, err = os.Stat(out_ele_path(analysis.Sim.DirOut, "cantilever", "json", 0))
	assert.Nil(tst, err)
}

func Test_heated01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("heated01. free thermal expansion")

	analysis, err := NewMain("data/heated.sim", "imp", false, chk.Verbose)
	if err != nil {
		tst.Errorf("NewMain failed:\n%v", err)
		return
	}
	dom := analysis.Dom
	chk.Int(tst, "number of nodes", len(dom.Nodes), 2)
	err = analysis.Run()
	if err != nil {
		tst.Errorf("Run failed:\n%v", err)
		return
	}
	top := dom.Vid2node[1]
	chk.Float64(tst, "uz", 1e-15, dom.Sol.Y[top.GetEq("uz")], 2e-4)
	chk.Float64(tst, "ux", 1e-15, dom.Sol.Y[top.GetEq("ux")], 0)
	chk.Float64(tst, "N", 1e-14, stressOf(dom, 0)[0], 0)
}

// stressOf returns the committed stresses of the integration point of cell cid
func stressOf(dom *Domain, cid int) []float64 {
	M := dom.IpsValues()[cid]
	return []float64{M.Get("N", 0), M.Get("V2", 0), M.Get("V1", 0), M.Get("M2", 0), M.Get("M1", 0), M.Get("T0", 0)}
}

func Test_heated02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("heated02. results files with gob encoder")

	analysis, err := NewMain("data/heated.sim", "imp", true, chk.Verbose)
	if err != nil {
		tst.Errorf("NewMain failed:\n%v", err)
		return
	}
	analysis.Sim.DirOut = tst.TempDir()
	analysis.Summary.Dirout = analysis.Sim.DirOut
	err = analysis.Run()
	if err != nil {
		tst.Errorf("Run failed:\n%v", err)
		return
	}

	sum, err := ReadSum(analysis.Sim.DirOut, "heated")
	if err != nil {
		tst.Errorf("ReadSum failed:\n%v", err)
		return
	}
	assert.Equal(tst, "gob", sum.EncType)
	chk.Array(tst, "OutTimes", 1e-15, sum.OutTimes, []float64{0, 1})
	_, err = os.Stat(out_nod_path(analysis.Sim.DirOut, "heated", "gob", 1))
	assert.Nil(tst, err)

	dom, err := NewDomain(analysis.Sim, false)
	if err != nil {
		tst.Errorf("NewDomain failed:\n%v", err)
		return
	}
	err = dom.Read(sum, 1)
	if err != nil {
		tst.Errorf("Read failed:\n%v", err)
		return
	}
	chk.Array(tst, "Y", 1e-15, dom.Sol.Y, analysis.Dom.Sol.Y)
	chk.Array(tst, "σ", 1e-15, stressOf(dom, 0), stressOf(analysis.Dom, 0))

	// file names carry the encoder type
	sum.EncType = "json"
	_, err = os.Stat(out_nod_path(analysis.Sim.DirOut, "heated", "json", 1))
	assert.NotNil(tst, err)
	assert.NotNil(tst, dom.Read(sum, 1))
}

func Test_domain01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("domain01. backup and restore")

	analysis, err := NewMain("data/cantilever.sim", "imp", false, chk.Verbose)
	if err != nil {
		tst.Errorf("NewMain failed:\n%v", err)
		return
	}
	dom := analysis.Dom
	assert.NotNil(tst, dom.restore())

	err = analysis.Run()
	if err != nil {
		tst.Errorf("Run failed:\n%v", err)
		return
	}
	err = dom.backup()
	if err != nil {
		tst.Errorf("backup failed:\n%v", err)
		return
	}
	Y := append([]float64{}, dom.Sol.Y...)
	σ := stressOf(dom, 0)

	// spoil state
	for i := range dom.Sol.Y {
		dom.Sol.Y[i] = 123
	}
	dom.Sol.T = 7
	frame := dom.Cid2elem[0].(*elat.Frame)
	frame.Mdl.Status(frame.Pt).Stress[0] = -1

	err = dom.restore()
	if err != nil {
		tst.Errorf("restore failed:\n%v", err)
		return
	}
	chk.Float64(tst, "T", 1e-15, dom.Sol.T, 1)
	chk.Array(tst, "Y", 1e-15, dom.Sol.Y, Y)
	chk.Array(tst, "σ", 1e-15, stressOf(dom, 0), σ)
	chk.Float64(tst, "N", 1e-13, σ[0], 1e-2)
}
