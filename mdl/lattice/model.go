// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package lattice implements constitutive models for lattice (frame) elements
//
//  Generalised strains and stresses have 6 components, in this order:
//
//   0 : axial        ε0 = du0/dy0                  N   = e A  ε0
//   1 : shear z      ε1 = du2/dy0 + θ1             V2  = g Az ε1
//   2 : shear y      ε2 = du1/dy0 - θ2             V1  = g Ay ε2
//   3 : bending z    ε3 = dθ2/dy0                  M2  = e Iz ε3
//   4 : bending y    ε4 = dθ1/dy0                  M1  = e Iy ε4
//   5 : torsion      ε5 = dθ0/dy0                  T0  = g Ik ε5
//
package lattice

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/utl"
	"gonum.org/v1/gonum/mat"
)

// Nsig is the number of generalised stress (and strain) components of 3D lattice elements
const Nsig = 6

// MaterialMode defines the kind of analysis a material is used for
type MaterialMode int

const (
	ModeUnknown   MaterialMode = iota // not set
	Mode2dLattice                     // 2D lattice (3 components)
	Mode3dLattice                     // 3D lattice/frame (6 components)
)

// ResponseMode selects which stiffness is computed
type ResponseMode int

const (
	ElasticStiffness ResponseMode = iota // initial/elastic
	TangentStiffness                     // consistent tangent
	SecantStiffness                      // secant
)

// String returns the name of the response mode
func (o ResponseMode) String() string {
	switch o {
	case ElasticStiffness:
		return "elastic"
	case TangentStiffness:
		return "tangent"
	case SecantStiffness:
		return "secant"
	}
	return "unknown"
}

// Section defines the geometric queries a lattice element must answer
type Section interface {
	Area() float64       // cross-sectional area
	Iy() float64         // second moment of area about local y
	Iz() float64         // second moment of area about local z
	Ik() float64         // torsional constant
	ShearAreaY() float64 // effective shear area along y
	ShearAreaZ() float64 // effective shear area along z
}

// Model defines the interface for lattice materials
type Model interface {
	Init(prms dbf.Params) error                          // initialises model
	GetPrms() dbf.Params                                 // gets (an example) of parameters
	HasCapability(mode MaterialMode) bool                // tells whether the model can handle mode
	Status(pt *Point) *Status                            // returns (and attaches if needed) the status of pt
	ThermalDilatation(pt *Point, time float64) []float64 // strains due to unit temperature change
	Encode(enc utl.Encoder) error                        // encodes parameters
	Decode(dec utl.Decoder) error                        // decodes parameters
}

// Frame defines lattice models for 3D frame elements
type Frame interface {
	Model
	Stiffness(rmode ResponseMode, pt *Point, time float64) *mat.DiagDense // computes D
	FrameForces(ε []float64, pt *Point, time float64) []float64           // computes σ = D ε and sets temp status
}

// New returns a new lattice model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'lattice' database", name)
	}
	return allocator(), nil
}

// allocators holds all available lattice models; modelname => allocator
var allocators = map[string]func() Model{}
