// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/latfem/latfem/ana"
	"github.com/latfem/latfem/mdl/lattice"
)

// Material holds material data
type Material struct {

	// input
	Name  string     `json:"name"`  // name of material
	Type  string     `json:"type"`  // type of material; e.g. "lattice"
	Model string     `json:"model"` // name of model; e.g. "lattice-frame-elast"
	Extra string     `json:"extra"` // extra information about this material
	Prms  dbf.Params `json:"prms"`  // prms holds all model parameters for this material

	// derived
	Lattice lattice.Model // pointer to actual lattice model
}

// SectionData holds cross-section data
type SectionData struct {

	// input
	Name string  `json:"name"` // name of cross-section
	Type string  `json:"type"` // "rectangle", "I-beam" or "circle"
	Unit string  `json:"unit"` // unit of length
	Wid  float64 `json:"wid"`  // width
	Hei  float64 `json:"hei"`  // height
	Tf   float64 `json:"tf"`   // flange thickness
	Tw   float64 `json:"tw"`   // web thickness
	R    float64 `json:"r"`    // radius

	// derived
	Sec *ana.CrossSection // computed properties
}

// MatsData holds materials
type MatsData []*Material

// SecsData holds cross-sections
type SecsData []*SectionData

// MatDb implements a database of materials
type MatDb struct {

	// input
	Functions FuncsData `json:"functions"` // all functions
	Sections  SecsData  `json:"sections"`  // all cross-sections
	Materials MatsData  `json:"materials"` // all materials

	// derived
	Lattices map[string]*Material // subset with materials/models: lattice
}

// ReadMat reads all materials data from a .mat JSON file
func ReadMat(dir, fn string) (mdb *MatDb, err error) {

	// read file
	b, err := os.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		return nil, chk.Err("cannot read materials file:\n%v", err)
	}
	return ParseMat(b)
}

// ParseMat decodes materials data in JSON format and allocates all models
func ParseMat(b []byte) (mdb *MatDb, err error) {

	// decode
	mdb = new(MatDb)
	err = json.Unmarshal(b, mdb)
	if err != nil {
		return nil, chk.Err("cannot decode materials file:\n%v", err)
	}

	// cross-sections
	for _, s := range mdb.Sections {
		s.Sec = new(ana.CrossSection)
		err = s.Sec.Init(s.Type, s.Unit, s.Wid, s.Hei, s.Tf, s.Tw, s.R)
		if err != nil {
			return nil, chk.Err("cannot initialise cross-section %q:\n%v", s.Name, err)
		}
	}

	// subsets
	mdb.Lattices = make(map[string]*Material)
	for _, m := range mdb.Materials {
		switch m.Type {
		case "lattice":
			mdb.Lattices[m.Name] = m
		default:
			return nil, chk.Err("material type %q is incorrect; options are \"lattice\"", m.Type)
		}
	}

	// alloc/init: lattices
	for _, m := range mdb.Lattices {
		m.Lattice, err = lattice.New(m.Model)
		if err != nil {
			return nil, chk.Err("cannot allocate model for material %q:\n%v", m.Name, err)
		}
		err = m.Lattice.Init(m.Prms)
		if err != nil {
			return nil, chk.Err("cannot initialise model for material %q:\n%v", m.Name, err)
		}
	}
	return
}

// Get returns a material
//  Note: returns nil if not found
func (o MatDb) Get(name string) *Material {
	for _, mat := range o.Materials {
		if mat.Name == name {
			return mat
		}
	}
	return nil
}

// AddReference adds a reference material (steel, aluminum, concrete-low, ...) named after its type
//  unitPres -- unit of pressure; e.g. "MPa"
//  Note: returns the existing material if name is already in the database
func (o *MatDb) AddReference(name, unitPres string) (mat *Material, err error) {
	mat = o.Get(name)
	if mat != nil {
		return
	}
	var ref ana.Material
	err = ref.Init(name, unitPres)
	if err != nil {
		return nil, chk.Err("cannot find reference material %q:\n%v", name, err)
	}
	mat = new(Material)
	err = json.Unmarshal([]byte(ref.GetMatString(name, "%g")), mat)
	if err != nil {
		return nil, chk.Err("cannot decode reference material %q:\n%v", name, err)
	}
	mat.Lattice, err = lattice.New(mat.Model)
	if err != nil {
		return nil, chk.Err("cannot allocate model for material %q:\n%v", name, err)
	}
	err = mat.Lattice.Init(mat.Prms)
	if err != nil {
		return nil, chk.Err("cannot initialise model for material %q:\n%v", name, err)
	}
	o.Materials = append(o.Materials, mat)
	if o.Lattices == nil {
		o.Lattices = make(map[string]*Material)
	}
	o.Lattices[name] = mat
	return
}

// Section returns a cross-section
//  Note: returns nil if not found
func (o MatDb) Section(name string) *ana.CrossSection {
	for _, s := range o.Sections {
		if s.Name == name {
			return s.Sec
		}
	}
	return nil
}

// String prints one material
func (o *Material) String() string {
	l := io.Sf("    {\n      \"name\"  : %q,\n      \"type\"  : %q,\n      \"model\" : %q,\n      \"extra\" : %q,\n      \"prms\"  : [\n", o.Name, o.Type, o.Model, o.Extra)
	for i, p := range o.Prms {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("        {\"n\":%q, \"v\":%v}", p.N, p.V)
	}
	l += "\n      ]\n    }"
	return l
}

// String prints materials
func (o MatsData) String() string {
	l := "  \"materials\" : [\n"
	for i, m := range o {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("%v", m)
	}
	l += "\n  ]"
	return l
}

// String prints cross-sections
func (o SecsData) String() string {
	l := "  \"sections\" : [\n"
	for i, s := range o {
		if i > 0 {
			l += ",\n"
		}
		l += s.Sec.GetSecString(s.Name, "%v")
	}
	l += "\n  ]"
	return l
}

// String outputs all materials
func (o MatDb) String() string {
	return io.Sf("{\n%v,\n%v,\n%v\n}", o.Functions, o.Sections, o.Materials)
}
