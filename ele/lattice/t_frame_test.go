// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lattice

import (
	"bytes"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"
	"github.com/latfem/latfem/ele"
	"github.com/latfem/latfem/inp"
	mlat "github.com/latfem/latfem/mdl/lattice"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

const matdata = `{
  "sections" : [
    { "name":"sq10", "type":"rectangle", "unit":"m", "wid":0.1, "hei":0.1 }
  ],
  "materials" : [
    {
      "name"  : "concrete",
      "type"  : "lattice",
      "model" : "lattice-frame-elast",
      "prms"  : [
        {"n":"e",      "v":30000},
        {"n":"nu",     "v":0.2},
        {"n":"talpha", "v":1e-5}
      ]
    }
  ]
}`

// newFrame allocates a frame connecting the given vertices
func newFrame(tst *testing.T, verts ...[]float64) (*Frame, *mlat.PointSet) {
	mdb, err := inp.ParseMat([]byte(matdata))
	if err != nil {
		tst.Fatalf("ParseMat failed:\n%v", err)
	}
	sim := &inp.Simulation{
		ElemsData: []*inp.ElemData{{Tag: -1, Mat: "concrete", Sec: "sq10", Type: "latticeframe"}},
		MatModels: mdb,
	}
	cell := &inp.Cell{Id: 0, Tag: -1}
	for i, x := range verts {
		sim.Mesh.Verts = append(sim.Mesh.Verts, &inp.Vert{Id: i, Tag: 0, C: x})
		cell.Verts = append(cell.Verts, i)
	}
	sim.Mesh.Cells = []*inp.Cell{cell}
	pts := mlat.NewPointSet()
	e, err := ele.New(cell, sim, pts)
	if err != nil {
		tst.Fatalf("New failed:\n%v", err)
	}
	o := e.(*Frame)
	err = o.SetEqs([][]int{{0, 1, 2, 3, 4, 5}, {6, 7, 8, 9, 10, 11}})
	if err != nil {
		tst.Fatalf("SetEqs failed:\n%v", err)
	}
	return o, pts
}

// residual computes fb = -R for given displacements
func residual(tst *testing.T, o *Frame, y []float64) (fb []float64) {
	sol := ele.NewSolution(12)
	copy(sol.Y, y)
	err := o.Update(sol)
	if err != nil {
		tst.Fatalf("Update failed:\n%v", err)
	}
	fb = make([]float64, 12)
	err = o.AddToRhs(fb, sol)
	if err != nil {
		tst.Fatalf("AddToRhs failed:\n%v", err)
	}
	return
}

func Test_frame01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("frame01. axial and torsion")

	o, pts := newFrame(tst, []float64{0, 0, 0}, []float64{2, 0, 0})
	chk.Float64(tst, "L", 1e-15, o.L, 2)
	chk.Int(tst, "npts", pts.Len(), 1)
	chk.Ints(tst, "Umap", o.Umap, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11})

	// stretching
	y := make([]float64, 12)
	y[6] = 1e-3
	fb := residual(tst, o, y)
	fe := make([]float64, 12)
	fe[0], fe[6] = 0.15, -0.15
	chk.Array(tst, "fb: axial", 1e-15, fb, fe)
	σ := o.Mdl.Status(o.Pt).TempStress
	chk.Float64(tst, "N", 1e-15, σ[0], 0.15)

	// twisting
	y = make([]float64, 12)
	y[9] = 1e-3
	fb = residual(tst, o, y)
	fe = make([]float64, 12)
	fe[3], fe[9] = 8.7890625e-5, -8.7890625e-5
	chk.Array(tst, "fb: torsion", 1e-17, fb, fe)
}

func Test_frame02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("frame02. rigid body motions produce no strains")

	o, _ := newFrame(tst, []float64{0, 0, 0}, []float64{2, 0, 0})
	zero := make([]float64, mlat.Nsig)
	L, φ := 2.0, 1e-3

	// translation
	y := []float64{1, 2, 3, 0, 0, 0, 1, 2, 3, 0, 0, 0}
	residual(tst, o, y)
	chk.Array(tst, "ε: translation", 1e-15, o.Mdl.Status(o.Pt).TempStrain, zero)

	// rotation about z
	y = make([]float64, 12)
	y[7], y[5], y[11] = φ*L, φ, φ
	residual(tst, o, y)
	chk.Array(tst, "ε: rotation about z", 1e-15, o.Mdl.Status(o.Pt).TempStrain, zero)

	// rotation about y
	y = make([]float64, 12)
	y[8], y[4], y[10] = -φ*L, φ, φ
	residual(tst, o, y)
	chk.Array(tst, "ε: rotation about y", 1e-15, o.Mdl.Status(o.Pt).TempStrain, zero)

	// rotation about the axis
	y = make([]float64, 12)
	y[3], y[9] = φ, φ
	residual(tst, o, y)
	chk.Array(tst, "ε: rotation about x", 1e-15, o.Mdl.Status(o.Pt).TempStrain, zero)
}

func Test_frame03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("frame03. stiffness of inclined frame")

	o, _ := newFrame(tst, []float64{0, 0, 0}, []float64{1, 2, 2}, []float64{0, 0, 1})
	chk.Float64(tst, "L", 1e-15, o.L, 3)

	// stiffness
	var Kb la.Triplet
	Kb.Init(12, 12, 144)
	err := o.AddToKb(&Kb, ele.NewSolution(12), true)
	if err != nil {
		tst.Errorf("AddToKb failed:\n%v", err)
		return
	}
	K := Kb.ToDense()
	for i := 0; i < 12; i++ {
		for j := 0; j < 12; j++ {
			chk.Float64(tst, io.Sf("K%d%d-K%d%d", i, j, j, i), 1e-12, K.Get(i, j), K.Get(j, i))
		}
	}

	// fb = -K y
	y := []float64{1e-3, -2e-3, 3e-4, 1e-3, 2e-4, -5e-4, -1e-3, 1e-4, 2e-3, -3e-4, 4e-4, 1e-4}
	fb := residual(tst, o, y)
	Ky := make([]float64, 12)
	la.MatVecMul(Ky, -1, K, y)
	chk.Array(tst, "fb == -K y", 1e-12, fb, Ky)
}

func Test_frame04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("frame04. temperature, backup and encoding")

	o, _ := newFrame(tst, []float64{0, 0, 0}, []float64{0, 0, 2})

	// heating of restrained frame
	heat := dbf.New("cte", []*dbf.P{&dbf.P{N: "c", V: 10}})
	err := o.SetEleConds("temp", heat, "")
	if err != nil {
		tst.Errorf("SetEleConds failed:\n%v", err)
		return
	}
	residual(tst, o, make([]float64, 12))
	status := o.Mdl.Status(o.Pt)
	chk.Float64(tst, "ε0", 1e-17, status.TempStrain[0], -1e-4)
	chk.Float64(tst, "N", 1e-15, status.TempStress[0], -0.03)
	o.Commit()
	chk.Float64(tst, "N (committed)", 1e-15, status.Stress[0], -0.03)

	// unknown condition
	if o.SetEleConds("qn", heat, "") == nil {
		tst.Errorf("unknown element condition must be reported")
	}

	// backup and restore
	err = o.BackupIvs(false)
	if err != nil {
		tst.Errorf("BackupIvs failed:\n%v", err)
		return
	}
	status.Stress[0] = 123
	err = o.RestoreIvs(false)
	if err != nil {
		tst.Errorf("RestoreIvs failed:\n%v", err)
		return
	}
	chk.Float64(tst, "N (restored)", 1e-15, status.Stress[0], -0.03)

	// encode and decode
	var buf bytes.Buffer
	err = o.Encode(utl.NewEncoder(&buf, "json"))
	if err != nil {
		tst.Errorf("Encode failed:\n%v", err)
		return
	}
	p, _ := newFrame(tst, []float64{0, 0, 0}, []float64{0, 0, 2})
	err = p.Decode(utl.NewDecoder(&buf, "json"))
	if err != nil {
		tst.Errorf("Decode failed:\n%v", err)
		return
	}
	chk.Array(tst, "σ (decoded)", 1e-15, p.Mdl.Status(p.Pt).Stress, status.Stress)

	// output
	M := ele.NewIpsMap()
	p.OutIpVals(M, nil)
	chk.Float64(tst, "N (output)", 1e-15, M.Get("N", 0), -0.03)
	chk.Array(tst, "ip coords", 1e-15, p.OutIpCoords()[0], []float64{0, 0, 1})
}

func Test_frame05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("frame05. local system")

	// horizontal: y1 points up
	o, _ := newFrame(tst, []float64{0, 0, 0}, []float64{2, 0, 0})
	chk.Array(tst, "e1 (horizontal)", 1e-15, []float64{o.e1.X, o.e1.Y, o.e1.Z}, []float64{0, 0, 1})
	chk.Array(tst, "e2 (horizontal)", 1e-15, []float64{o.e2.X, o.e2.Y, o.e2.Z}, []float64{0, -1, 0})

	// vertical
	o, _ = newFrame(tst, []float64{0, 0, 0}, []float64{0, 0, 3})
	chk.Array(tst, "e0 (vertical)", 1e-15, []float64{o.e0.X, o.e0.Y, o.e0.Z}, []float64{0, 0, 1})
	chk.Array(tst, "e1 (vertical)", 1e-15, []float64{o.e1.X, o.e1.Y, o.e1.Z}, []float64{0, -1, 0})
	chk.Array(tst, "e2 (vertical)", 1e-15, []float64{o.e2.X, o.e2.Y, o.e2.Z}, []float64{1, 0, 0})

	// wrong equations
	if o.SetEqs([][]int{{0, 1, 2}}) == nil {
		tst.Errorf("wrong equations must be reported")
	}
}
