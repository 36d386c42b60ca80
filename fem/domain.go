// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
	"github.com/latfem/latfem/ele"
	"github.com/latfem/latfem/inp"
	"github.com/latfem/latfem/mdl/lattice"

	// register elements
	_ "github.com/latfem/latfem/ele/lattice"
)

// Dof holds information about a degree-of-freedom == solution variable
type Dof struct {
	Key string // primary variable key. e.g. "ux"
	Eq  int    // equation number
}

// Node holds node dofs information
type Node struct {
	Dofs []*Dof    // degrees-of-freedom == solution variables
	Vert *inp.Vert // pointer to Vertex
}

// NewNode allocates a new Node
func NewNode(v *inp.Vert) *Node {
	return &Node{Vert: v}
}

// AddDofAndEq adds a new dof and respective equation number to node
//  Note: returns false if the key exists already
func (o *Node) AddDofAndEq(ukey string, eqnum int) (added bool) {
	for _, dof := range o.Dofs {
		if dof.Key == ukey {
			return false
		}
	}
	o.Dofs = append(o.Dofs, &Dof{ukey, eqnum})
	return true
}

// GetEq returns equation number of dof with given key
//  Note: returns -1 if not found
func (o *Node) GetEq(ukey string) int {
	for _, dof := range o.Dofs {
		if dof.Key == ukey {
			return dof.Eq
		}
	}
	return -1
}

// Domain holds all Nodes and Elements active in a lattice model in addition to the Solution at nodes
type Domain struct {

	// init: auxiliary variables
	ShowMsg bool            // show messages
	Sim     *inp.Simulation // input data
	Msh     *inp.Mesh       // mesh data

	// integration points of all elements
	Pts *lattice.PointSet

	// nodes (active) and elements (active)
	Nodes  []*Node       // active nodes. Note: indices in Nodes do NOT correpond to Ids => use Vid2node
	Elems  []ele.Element // active elements
	MyCids []int         // the ids of active cells

	// auxiliary maps for dofs
	F2Y   map[string]string // converts f-keys to y-keys; e.g.: "fx" => "ux"
	YandC map[string]bool   // y keys; e.g. "ux", "rz"

	// auxiliary maps for nodes and elements
	Vid2node []*Node       // [nverts] VertexId => index in Nodes. Inactive vertices are 'nil'
	Cid2elem []ele.Element // [ncells] CellId => index in Elems. Inactive cells are 'nil'

	// subsets of elements
	ElemIntvars []ele.WithIntVars  // elements with internal vars
	ElemOutIps  []ele.CanOutputIps // elements with values at integration points

	// prescribed values and forces
	EssenBcs EssentialBcs // prescribed displacements and rotations
	PtNatBcs PtNaturalBcs // point loads such as prescribed forces at nodes

	// dimensions
	NnzKb int // number of nonzeros in Kb matrix
	Ny    int // total number of dofs

	// solution and linear system
	Sol *ele.Solution // solution state
	Kb  *la.Triplet   // Jacobian == dRdy
	Fb  []float64     // residual == -fb

	// for divergence control
	bkpSol *ele.Solution // backup solution
}

// NewDomain allocates nodes, equations and elements of all active cells
func NewDomain(sim *inp.Simulation, verbose bool) (o *Domain, err error) {

	// new domain
	o = new(Domain)
	o.ShowMsg = verbose
	o.Sim = sim
	o.Msh = &sim.Mesh
	o.Pts = lattice.NewPointSet()

	// auxiliary maps
	o.F2Y = make(map[string]string)
	o.YandC = make(map[string]bool)
	o.Vid2node = make([]*Node, len(o.Msh.Verts))
	o.Cid2elem = make([]ele.Element, len(o.Msh.Cells))

	// for each cell
	var eq int // current equation number => total number of equations @ end of loop
	for _, cell := range o.Msh.Cells {

		// get element info
		info, inactive, err := ele.GetInfo(cell, sim)
		if err != nil {
			return nil, chk.Err("get element information failed:\n%v", err)
		}
		if inactive {
			continue
		}

		// store y and f information
		for ykey, fkey := range info.Y2F {
			o.F2Y[fkey] = ykey
			o.YandC[ykey] = true
		}

		// loop over nodes of this element
		var eNdof int // number of DOFs of this element
		eqs := make([][]int, len(cell.Verts))
		for j, v := range cell.Verts {
			if len(info.Dofs[j]) == 0 {
				continue // auxiliary vertex
			}

			// new or existent node
			nod := o.Vid2node[v]
			if nod == nil {
				nod = NewNode(o.Msh.Verts[v])
				o.Vid2node[v] = nod
				o.Nodes = append(o.Nodes, nod)
			}

			// set DOFs and equation numbers
			for _, ukey := range info.Dofs[j] {
				if nod.AddDofAndEq(ukey, eq) {
					eq++
				}
				eqs[j] = append(eqs[j], nod.GetEq(ukey))
				eNdof++
			}
		}
		o.NnzKb += eNdof * eNdof

		// allocate element
		e, err := ele.New(cell, sim, o.Pts)
		if err != nil {
			return nil, chk.Err("new element failed:\n%v", err)
		}
		err = e.SetEqs(eqs)
		if err != nil {
			return nil, chk.Err("cannot set equations of element %d:\n%v", cell.Id, err)
		}

		// element conditions
		if ec := sim.GetEleCond(cell.Tag); ec != nil {
			for i, key := range ec.Keys {
				f, err := sim.Functions.Get(ec.Funcs[i])
				if err != nil {
					return nil, chk.Err("cannot get function for element condition %q of cell %d:\n%v", key, cell.Id, err)
				}
				err = e.SetEleConds(key, f, ec.Extra)
				if err != nil {
					return nil, err
				}
			}
		}

		// subsets
		o.Elems = append(o.Elems, e)
		o.MyCids = append(o.MyCids, cell.Id)
		o.Cid2elem[cell.Id] = e
		if el, ok := e.(ele.WithIntVars); ok {
			o.ElemIntvars = append(o.ElemIntvars, el)
		}
		if el, ok := e.(ele.CanOutputIps); ok {
			o.ElemOutIps = append(o.ElemOutIps, el)
		}
	}
	o.Ny = eq

	// boundary conditions
	o.EssenBcs.Init()
	o.PtNatBcs.Reset()
	for _, nod := range o.Nodes {
		nbc := sim.GetNodeBc(nod.Vert.Tag)
		if nbc == nil {
			continue
		}
		if len(nbc.Funcs) != len(nbc.Keys) {
			return nil, chk.Err("number of functions must be equal to the number of keys of node condition with tag %d", nbc.Tag)
		}
		for i, key := range nbc.Keys {
			f, err := sim.Functions.Get(nbc.Funcs[i])
			if err != nil {
				return nil, chk.Err("cannot get function for node condition %q:\n%v", key, err)
			}
			if o.YandC[key] {
				eq := nod.GetEq(key)
				if eq < 0 {
					return nil, chk.Err("cannot find equation for %q at node %d", key, nod.Vert.Id)
				}
				o.EssenBcs.Set(key, eq, f)
				continue
			}
			if ykey, ok := o.F2Y[key]; ok {
				o.PtNatBcs.Set(key, nod.GetEq(ykey), f)
				continue
			}
			return nil, chk.Err("cannot handle node condition %q", key)
		}
	}

	// solution and linear system
	o.Sol = ele.NewSolution(o.Ny)
	o.Kb = new(la.Triplet)
	o.Kb.Init(o.Ny, o.Ny, o.NnzKb)
	o.Fb = make([]float64, o.Ny)

	// message
	if o.ShowMsg {
		io.Pf(">> Number of elements = %d\n", len(o.Elems))
		io.Pf(">> Number of equations = %d\n", o.Ny)
		io.Pf(">> Number of prescribed values = %d\n", len(o.EssenBcs.Bcs))
	}
	return
}

// UpdateElems update elements after Solution has been updated
func (o *Domain) UpdateElems() (err error) {
	for _, e := range o.ElemIntvars {
		err = e.Update(o.Sol)
		if err != nil {
			return
		}
	}
	return
}

// Assemble assembles the global residual vector Fb and the Jacobian Kb
//  Note: UpdateElems must be called before
func (o *Domain) Assemble(firstIt bool) (err error) {
	for i := 0; i < o.Ny; i++ {
		o.Fb[i] = 0
	}
	o.Kb.Start()
	for _, e := range o.Elems {
		err = e.AddToRhs(o.Fb, o.Sol)
		if err != nil {
			return
		}
		err = e.AddToKb(o.Kb, o.Sol, firstIt)
		if err != nil {
			return
		}
	}
	o.PtNatBcs.AddToRhs(o.Fb, o.Sol.T)
	return
}

// Commit accepts the trial values of all elements
func (o *Domain) Commit() {
	for _, e := range o.ElemIntvars {
		e.Commit()
	}
}

// IpsValues collects the values at integration points of all elements. cellId => IpsMap
func (o *Domain) IpsValues() (res map[int]*ele.IpsMap) {
	res = make(map[int]*ele.IpsMap)
	for _, e := range o.ElemOutIps {
		M := ele.NewIpsMap()
		e.OutIpVals(M, o.Sol)
		res[e.Id()] = M
	}
	return
}

// auxiliary functions //////////////////////////////////////////////////////////////////////////////

// backup saves a copy of solution
func (o *Domain) backup() (err error) {
	if o.bkpSol == nil {
		o.bkpSol = ele.NewSolution(o.Ny)
	}
	o.bkpSol.T = o.Sol.T
	copy(o.bkpSol.Y, o.Sol.Y)
	copy(o.bkpSol.ΔY, o.Sol.ΔY)
	for _, e := range o.ElemIntvars {
		err = e.BackupIvs(true)
		if err != nil {
			return chk.Err("cannot backup internal variables:\n%v", err)
		}
	}
	return
}

// restore restores solution
func (o *Domain) restore() (err error) {
	if o.bkpSol == nil {
		return chk.Err("there is no backup to restore")
	}
	o.Sol.T = o.bkpSol.T
	copy(o.Sol.Y, o.bkpSol.Y)
	copy(o.Sol.ΔY, o.bkpSol.ΔY)
	for _, e := range o.ElemIntvars {
		err = e.RestoreIvs(true)
		if err != nil {
			return chk.Err("cannot restore internal variables:\n%v", err)
		}
	}
	return
}
