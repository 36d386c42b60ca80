// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package lattice implements lattice frame elements
package lattice

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"
	"github.com/latfem/latfem/ana"
	"github.com/latfem/latfem/ele"
	"github.com/latfem/latfem/inp"
	mlat "github.com/latfem/latfem/mdl/lattice"
	"gonum.org/v1/gonum/spatial/r3"
)

// Frame represents a 3D lattice frame element (Timoshenko, one integration point at mid-length)
//
//                        ,o--------o    ,y0
//                      ,' |     ,' |  ,'
//        y1          ,'       ,'   |,'
//         ^        ,'       ,'    ,|
//         |      ,'       ,'    ,  |
//         |    ,'       ,'    ,    |
//         |  ,'       ,'  | ,      |
//         |,'       ,'   (1) - - - o   -   -  (2)
//         o--------o    ,        ,'
//         |        |  ,        ,'    Props:          Nodes:
//         |        |,        ,'       e, nu, A        0, 1, 2
//         |       ,|       ,'         Iz, Iy, Ik      where node (2) is a point located on plane
//         |     ,  |     ,'           Ay, Az          y0-y2 and non-colinear to (0) and (1).
//         |   ,    |   ,'                             Node (2) is optional and does not have any DOF
//         | ,      | ,'
//        (0)-------o' --------> y2
//
type Frame struct {

	// basic data
	Cell *inp.Cell   // the cell structure
	X    [][]float64 // matrix of nodal coordinates [3][nverts]
	P02  []float64   // [3] point defining y0-y2 plane (from X matrix or computed here)
	Nu   int         // total number of unknowns == 12

	// parameters and properties
	Mdl mlat.Frame        // material model
	Sec *ana.CrossSection // cross-section
	L   float64           // (derived) length of element

	// integration point
	Pt   *mlat.Point       // the only integration point (at mid-length)
	Rmod mlat.ResponseMode // stiffness used in AddToKb

	// unit vectors aligned with element
	e0 r3.Vec // unit vector aligned with y0-axis
	e1 r3.Vec // unit vector aligned with y1-axis
	e2 r3.Vec // unit vector aligned with y2-axis

	// vectors and matrices
	T *la.Matrix // global-to-local transformation matrix [12][12]
	G *la.Matrix // generalised strain-displacement matrix in global system: G = B T [6][12]

	// problem variables
	Umap []int // assembly map (location array/element equations)
	Tfcn dbf.T // temperature change function; nil if none

	// backup
	bkp *mlat.Status

	// scratchpad
	ue []float64 // [12] global u vector
	fi []float64 // [12] internal forces
	ε  []float64 // [6] mechanical generalised strains
}

// register element
func init() {

	// information allocator
	ele.SetInfoFunc("latticeframe", func(sim *inp.Simulation, cell *inp.Cell, edat *inp.ElemData) *ele.Info {
		var info ele.Info
		ykeys := []string{"ux", "uy", "uz", "rx", "ry", "rz"}
		info.Dofs = make([][]string, len(cell.Verts))
		for m := 0; m < 2; m++ {
			info.Dofs[m] = ykeys
		}
		info.Y2F = map[string]string{"ux": "fx", "uy": "fy", "uz": "fz", "rx": "mx", "ry": "my", "rz": "mz"}
		return &info
	})

	// element allocator
	ele.SetAllocator("latticeframe", func(sim *inp.Simulation, cell *inp.Cell, edat *inp.ElemData, x [][]float64, pts *mlat.PointSet) (ele.Element, error) {

		// basic data
		var o Frame
		o.Cell = cell
		o.X = x
		o.P02 = make([]float64, 3)
		o.Nu = 12

		// model
		mat := sim.MatModels.Get(edat.Mat)
		if mat == nil {
			return nil, chk.Err("cannot find material %q for frame {tag=%d, id=%d}", edat.Mat, cell.Tag, cell.Id)
		}
		if !mat.Lattice.HasCapability(mlat.Mode3dLattice) {
			return nil, chk.Err("model %q of material %q cannot be used with 3D lattice frames", mat.Model, mat.Name)
		}
		var ok bool
		o.Mdl, ok = mat.Lattice.(mlat.Frame)
		if !ok {
			return nil, chk.Err("model %q of material %q does not implement frame forces", mat.Model, mat.Name)
		}

		// cross-section
		o.Sec = sim.MatModels.Section(edat.Sec)
		if o.Sec == nil {
			return nil, chk.Err("cannot find cross-section %q for frame {tag=%d, id=%d}", edat.Sec, cell.Tag, cell.Id)
		}

		// stiffness
		if _, found := io.Keycode(edat.Extra, "secant"); found {
			o.Rmod = mlat.SecantStiffness
		}

		// vectors and matrices
		o.T = la.NewMatrix(o.Nu, o.Nu)
		o.G = la.NewMatrix(mlat.Nsig, o.Nu)
		o.ue = make([]float64, o.Nu)
		o.fi = make([]float64, o.Nu)
		o.ε = make([]float64, mlat.Nsig)

		// geometry
		err := o.Recompute()
		if err != nil {
			return nil, err
		}

		// integration point
		o.Pt = pts.GetOrCreate(cell.Id, 0, &o)
		o.Mdl.Status(o.Pt)
		return &o, nil
	})
}

// Id returns the cell Id
func (o *Frame) Id() int { return o.Cell.Id }

// Area returns the cross-sectional area
func (o *Frame) Area() float64 { return o.Sec.Area() }

// Iy returns the moment of inertia about local y
func (o *Frame) Iy() float64 { return o.Sec.Iy() }

// Iz returns the moment of inertia about local z
func (o *Frame) Iz() float64 { return o.Sec.Iz() }

// Ik returns the torsional constant
func (o *Frame) Ik() float64 { return o.Sec.Ik() }

// ShearAreaY returns the effective shear area along local y
func (o *Frame) ShearAreaY() float64 { return o.Sec.ShearAreaY() }

// ShearAreaZ returns the effective shear area along local z
func (o *Frame) ShearAreaZ() float64 { return o.Sec.ShearAreaZ() }

// SetEqs set equations [2][6]. Format of eqs == format of info.Dofs
func (o *Frame) SetEqs(eqs [][]int) (err error) {
	if len(eqs) < 2 {
		return chk.Err("frame %d requires equations of 2 nodes", o.Id())
	}
	o.Umap = make([]int, o.Nu)
	for m := 0; m < 2; m++ {
		if len(eqs[m]) != 6 {
			return chk.Err("frame %d: node %d must have 6 equations", o.Id(), m)
		}
		for i := 0; i < 6; i++ {
			o.Umap[i+m*6] = eqs[m][i]
		}
	}
	return
}

// SetEleConds set element conditions
func (o *Frame) SetEleConds(key string, f dbf.T, extra string) (err error) {
	switch key {
	case "temp":
		o.Tfcn = f
	default:
		return chk.Err("cannot handle element condition named %q", key)
	}
	return
}

// Update computes trial generalised strains and stresses at the integration point
func (o *Frame) Update(sol *ele.Solution) (err error) {

	// node displacements
	for i, I := range o.Umap {
		o.ue[i] = sol.Y[I]
	}

	// ε = G u - εt ΔT
	la.MatVecMul(o.ε, 1, o.G, o.ue)
	if o.Tfcn != nil {
		ΔT := o.Tfcn.F(sol.T, nil)
		εt := o.Mdl.ThermalDilatation(o.Pt, sol.T)
		for i := 0; i < mlat.Nsig; i++ {
			o.ε[i] -= εt[i] * ΔT
		}
	}
	o.Mdl.FrameForces(o.ε, o.Pt, sol.T)
	return
}

// AddToRhs adds -R to global residual vector fb
//  Note: Update must be called before
func (o *Frame) AddToRhs(fb []float64, sol *ele.Solution) (err error) {
	σ := o.Mdl.Status(o.Pt).TempStress
	la.MatTrVecMul(o.fi, o.L, o.G, σ) // fi := L * trans(G) * σ
	for i, I := range o.Umap {
		fb[I] -= o.fi[i]
	}
	return
}

// AddToKb adds element K to global Jacobian matrix Kb
func (o *Frame) AddToKb(Kb *la.Triplet, sol *ele.Solution, firstIt bool) (err error) {
	D := o.Mdl.Stiffness(o.Rmod, o.Pt, sol.T)
	for i, I := range o.Umap {
		for j, J := range o.Umap {
			kij := 0.0
			for k := 0; k < mlat.Nsig; k++ {
				kij += o.G.Get(k, i) * D.At(k, k) * o.G.Get(k, j)
			}
			Kb.Put(I, J, o.L*kij)
		}
	}
	return
}

// Commit accepts the trial values at the integration point
func (o *Frame) Commit() {
	o.Mdl.Status(o.Pt).Commit()
}

// BackupIvs create copy of internal variables
func (o *Frame) BackupIvs(aux bool) (err error) {
	o.bkp = o.Mdl.Status(o.Pt).GetCopy()
	return
}

// RestoreIvs restore internal variables from copies
func (o *Frame) RestoreIvs(aux bool) (err error) {
	if o.bkp == nil {
		return chk.Err("frame %d: internal variables have not been backed up", o.Id())
	}
	o.Mdl.Status(o.Pt).Set(o.bkp)
	return
}

// Encode encodes internal variables
func (o *Frame) Encode(enc utl.Encoder) (err error) {
	return o.Mdl.Status(o.Pt).Encode(enc)
}

// Decode decodes internal variables
func (o *Frame) Decode(dec utl.Decoder) (err error) {
	return o.Mdl.Status(o.Pt).Decode(dec)
}

// OutIpCoords returns the coordinates of integration points
func (o *Frame) OutIpCoords() (C [][]float64) {
	C = [][]float64{make([]float64, 3)}
	for j := 0; j < 3; j++ {
		C[0][j] = (o.X[j][0] + o.X[j][1]) / 2.0
	}
	return
}

// OutIpKeys returns the integration points' keys
func (o *Frame) OutIpKeys() []string {
	return mlat.ComponentKeys
}

// OutIpVals returns the integration points' values corresponding to keys
func (o *Frame) OutIpVals(M *ele.IpsMap, sol *ele.Solution) {
	σ := o.Mdl.Status(o.Pt).Stress
	for i, key := range mlat.ComponentKeys {
		M.Set(key, 0, 1, σ[i])
	}
}

// auxiliary ////////////////////////////////////////////////////////////////////////////////////////

// Recompute re-computes the local system, T and G after coordinates are externally changed
func (o *Frame) Recompute() (err error) {

	// axis
	x0 := r3.Vec{X: o.X[0][0], Y: o.X[1][0], Z: o.X[2][0]}
	x1 := r3.Vec{X: o.X[0][1], Y: o.X[1][1], Z: o.X[2][1]}
	dx := r3.Sub(x1, x0)
	o.L = r3.Norm(dx)
	if o.L < 1e-12 {
		return chk.Err("frame %d has zero length", o.Id())
	}
	o.e0 = r3.Scale(1.0/o.L, dx)

	// point defining y0-y2 plane
	var v02 r3.Vec
	if len(o.X[0]) == 3 { // point given
		v02 = r3.Sub(r3.Vec{X: o.X[0][2], Y: o.X[1][2], Z: o.X[2][2]}, x0)
	} else {
		tol := 1e-5 // tolerance to find vertical elements
		if math.Abs(dx.X) < tol && math.Abs(dx.Y) < tol {
			v02 = r3.Vec{X: 0.1 * dx.Z} // + if 0->1 is going up
		} else {
			v02 = r3.Cross(o.e0, r3.Vec{Z: 1})
		}
	}
	o.P02[0], o.P02[1], o.P02[2] = x0.X+v02.X, x0.Y+v02.Y, x0.Z+v02.Z

	// unit vectors aligned with element
	o.e1 = r3.Cross(v02, o.e0) // e1 := v02 cross e0
	nrm1 := r3.Norm(o.e1)
	if nrm1 < 1e-12 {
		return chk.Err("frame %d: point defining the y0-y2 plane is colinear with the element axis", o.Id())
	}
	o.e1 = r3.Scale(1.0/nrm1, o.e1)
	o.e2 = r3.Cross(o.e0, o.e1) // e2 := e0 cross e1

	// global to local transformation matrix
	for k := 0; k < 4; k++ {
		for j, e := range []r3.Vec{o.e0, o.e1, o.e2} {
			o.T.Set(3*k+j, 3*k+0, e.X)
			o.T.Set(3*k+j, 3*k+1, e.Y)
			o.T.Set(3*k+j, 3*k+2, e.Z)
		}
	}

	// local B matrix: ε = B ul
	//  ul = {u0 u1 u2 θ0 θ1 θ2}_node0 {u0 u1 u2 θ0 θ1 θ2}_node1
	B := la.NewMatrix(mlat.Nsig, o.Nu)
	l := o.L
	B.Set(0, 0, -1/l) // axial
	B.Set(0, 6, 1/l)
	B.Set(1, 2, -1/l) // shear z
	B.Set(1, 8, 1/l)
	B.Set(1, 4, 0.5)
	B.Set(1, 10, 0.5)
	B.Set(2, 1, -1/l) // shear y
	B.Set(2, 7, 1/l)
	B.Set(2, 5, -0.5)
	B.Set(2, 11, -0.5)
	B.Set(3, 5, -1/l) // bending z
	B.Set(3, 11, 1/l)
	B.Set(4, 4, -1/l) // bending y
	B.Set(4, 10, 1/l)
	B.Set(5, 3, -1/l) // torsion
	B.Set(5, 9, 1/l)

	// G := B T
	for i := 0; i < mlat.Nsig; i++ {
		for j := 0; j < o.Nu; j++ {
			gij := 0.0
			for k := 0; k < o.Nu; k++ {
				gij += B.Get(i, k) * o.T.Get(k, j)
			}
			o.G.Set(i, j, gij)
		}
	}
	return
}
