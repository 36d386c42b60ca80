// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from (.sim and .mat) JSON files
package inp

import (
	"encoding/json"
	goio "io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cpmech/gosl/chk"
)

// Data holds global data for simulations
type Data struct {
	Desc    string `json:"desc"`    // description of simulation
	Matfile string `json:"matfile"` // materials file path (relative to .sim file)
	DirOut  string `json:"dirout"`  // directory for output; e.g. /tmp/latfem
	Encoder string `json:"encoder"` // encoder name; e.g. "gob" "json"
}

// Vert holds vertex data
type Vert struct {
	Id  int       `json:"id"`  // id
	Tag int       `json:"tag"` // tag
	C   []float64 `json:"c"`   // coordinates (size==3)
}

// Cell holds cell data
//  Note: lattice frames have 2 vertices; an optional 3rd vertex defines the y0-y2 plane
type Cell struct {
	Id    int   `json:"id"`    // id
	Tag   int   `json:"tag"`   // tag
	Verts []int `json:"verts"` // vertices
}

// Mesh holds the lattice geometry
type Mesh struct {
	Verts []*Vert `json:"verts"` // vertices
	Cells []*Cell `json:"cells"` // cells
}

// ElemData holds element data
type ElemData struct {
	Tag   int    `json:"tag"`   // tag of element
	Mat   string `json:"mat"`   // material name
	Sec   string `json:"sec"`   // cross-section name
	Type  string `json:"type"`  // type of element. ex: latticeframe
	Extra string `json:"extra"` // extra flags (in keycode format)
	Inact bool   `json:"inact"` // whether element starts inactive or not
}

// EleCond holds element condition
type EleCond struct {
	Tag   int      `json:"tag"`   // tag of cell/element
	Keys  []string `json:"keys"`  // key indicating type of condition. ex: "temp" (temperature change)
	Funcs []string `json:"funcs"` // name of function. ex: heating, none
	Extra string   `json:"extra"` // extra information
}

// NodeBc holds node boundary condition
type NodeBc struct {
	Tag   int      `json:"tag"`   // tag of vertex
	Keys  []string `json:"keys"`  // key indicating type of bcs. ex: "ux", "rz" (essential), "fz", "mx" (point load)
	Funcs []string `json:"funcs"` // name of function. ex: zero, load, myfunction1, etc.
	Extra string   `json:"extra"` // extra information
}

// Control holds data for time integration
type Control struct {
	Tf     float64 `json:"tf"`     // final time
	Dt     float64 `json:"dt"`     // time step size
	DtOut  float64 `json:"dtout"`  // time step size for output
	NmaxIt int     `json:"nmaxit"` // max number of iterations
	Tol    float64 `json:"tol"`    // tolerance on residual
}

// Simulation holds all simulation data
type Simulation struct {

	// input
	Data      Data        `json:"data"`      // stores global simulation data
	Functions FuncsData   `json:"functions"` // stores all functions
	Mesh      Mesh        `json:"mesh"`      // lattice geometry
	ElemsData []*ElemData `json:"elemsdata"` // list of elements data
	EleConds  []*EleCond  `json:"eleconds"`  // element conditions
	NodeBcs   []*NodeBc   `json:"nodebcs"`   // boundary conditions for nodes
	Control   Control     `json:"control"`   // time control

	// derived
	DirOut    string // directory to save results
	Key       string // simulation key; e.g. mysim01.sim => mysim01
	EncType   string // encoder type
	MatModels *MatDb // materials and models
}

// ReadSim reads all simulation data from a .sim JSON file
func ReadSim(simfilepath string, createDirOut bool) (o *Simulation, err error) {

	// read file
	b, err := os.ReadFile(simfilepath)
	if err != nil {
		return nil, chk.Err("cannot read simulation file %q:\n%v", simfilepath, err)
	}

	// decode
	o = new(Simulation)
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("cannot unmarshal simulation file %q:\n%v", simfilepath, err)
	}

	// input directory and filename key
	dir := os.ExpandEnv(filepath.Dir(simfilepath))
	fn := filepath.Base(simfilepath)
	o.Key = strings.TrimSuffix(fn, filepath.Ext(fn))

	// output directory
	o.DirOut = o.Data.DirOut
	if o.DirOut == "" {
		o.DirOut = filepath.Join(os.TempDir(), "latfem", o.Key)
	}

	// encoder type
	o.EncType = o.Data.Encoder
	if o.EncType != "gob" && o.EncType != "json" {
		o.EncType = "gob"
	}

	// control
	if o.Control.Tf <= 0 {
		o.Control.Tf = 1
	}
	if o.Control.Dt <= 0 {
		o.Control.Dt = o.Control.Tf
	}
	if o.Control.DtOut < o.Control.Dt {
		o.Control.DtOut = o.Control.Dt
	}
	if o.Control.NmaxIt < 1 {
		o.Control.NmaxIt = 10
	}
	if o.Control.Tol <= 0 {
		o.Control.Tol = 1e-10
	}

	// create directory
	if createDirOut {
		err = os.MkdirAll(o.DirOut, 0777)
		if err != nil {
			return nil, chk.Err("cannot create directory for output results (%s):\n%v", o.DirOut, err)
		}
	}

	// mesh
	err = o.Mesh.check()
	if err != nil {
		return nil, chk.Err("invalid mesh in %q:\n%v", simfilepath, err)
	}

	// materials
	if o.Data.Matfile == "" {
		return nil, chk.Err("materials file must be given in \"data\" section of %q", simfilepath)
	}
	o.MatModels, err = ReadMat(dir, o.Data.Matfile)
	if err != nil {
		return
	}

	// check elements data
	for _, edat := range o.ElemsData {
		if o.MatModels.Get(edat.Mat) == nil {
			return nil, chk.Err("cannot find material %q for elements with tag %d", edat.Mat, edat.Tag)
		}
		if o.MatModels.Section(edat.Sec) == nil {
			return nil, chk.Err("cannot find cross-section %q for elements with tag %d", edat.Sec, edat.Tag)
		}
	}
	return
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

// check checks ids and connectivity
func (o *Mesh) check() (err error) {
	for i, v := range o.Verts {
		if v.Id != i {
			return chk.Err("vertices must be sequentially numbered. vertex %d has id=%d", i, v.Id)
		}
		if len(v.C) != 3 {
			return chk.Err("vertex %d must have 3 coordinates", v.Id)
		}
	}
	nv := len(o.Verts)
	for i, c := range o.Cells {
		if c.Id != i {
			return chk.Err("cells must be sequentially numbered. cell %d has id=%d", i, c.Id)
		}
		if len(c.Verts) < 2 || len(c.Verts) > 3 {
			return chk.Err("cell %d must have 2 or 3 vertices", c.Id)
		}
		for _, v := range c.Verts {
			if v < 0 || v >= nv {
				return chk.Err("cell %d has invalid vertex %d", c.Id, v)
			}
		}
	}
	return
}

// Etag2data returns the ElemData corresponding to element tag
//  Note: returns nil if not found
func (o *Simulation) Etag2data(etag int) *ElemData {
	for _, edat := range o.ElemsData {
		if edat.Tag == etag {
			return edat
		}
	}
	return nil
}

// GetEleCond returns element condition structure by giving an elem tag
//  Note: returns nil if not found
func (o *Simulation) GetEleCond(elemtag int) *EleCond {
	for _, ec := range o.EleConds {
		if elemtag == ec.Tag {
			return ec
		}
	}
	return nil
}

// GetNodeBc returns node boundary condition structure by giving a vertex tag
//  Note: returns nil if not found
func (o *Simulation) GetNodeBc(verttag int) *NodeBc {
	for _, nbc := range o.NodeBcs {
		if verttag == nbc.Tag {
			return nbc
		}
	}
	return nil
}

// GetInfo returns formatted information
func (o *Simulation) GetInfo(w goio.Writer) (err error) {
	b, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return
}
