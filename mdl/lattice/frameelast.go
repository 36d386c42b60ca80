// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lattice

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/utl"
	"gonum.org/v1/gonum/mat"
)

// FrameElastic implements a linear elastic model for 3D lattice frame elements
//  Note: the sectional properties come from the element owning each point.
//        Shear-bending coupling is not included; D is diagonal
type FrameElastic struct {
	E  float64 // Young's modulus
	Nu float64 // Poisson's coefficient

	// base lattice material
	Alpha float64 // thermal expansion coefficient
	Rho   float64 // density
}

// add model to factory
func init() {
	allocators["lattice-frame-elast"] = func() Model { return new(FrameElastic) }
}

// Init initialises model
func (o *FrameElastic) Init(prms dbf.Params) (err error) {
	var hasE, hasNu bool
	for _, p := range prms {
		switch p.N {
		case "e":
			o.E, hasE = p.V, true
		case "nu":
			o.Nu, hasNu = p.V, true
		case "talpha":
			o.Alpha = p.V
		case "rho":
			o.Rho = p.V
		}
	}
	if !hasE {
		return chk.Err("lattice-frame-elast: parameter \"e\" (Young's modulus) is missing")
	}
	if !hasNu {
		return chk.Err("lattice-frame-elast: parameter \"nu\" (Poisson's coefficient) is missing")
	}
	if o.E <= 0 {
		return chk.Err("lattice-frame-elast: Young's modulus must be positive. e=%g is invalid", o.E)
	}
	if o.Nu <= -1 || o.Nu >= 0.5 {
		return chk.Err("lattice-frame-elast: Poisson's coefficient must be in (-1, 0.5). nu=%g is invalid", o.Nu)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o FrameElastic) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "e", V: 30000},
		&dbf.P{N: "nu", V: 0.2},
		&dbf.P{N: "talpha", V: 1e-5},
		&dbf.P{N: "rho", V: 2.4e-3},
	}
}

// HasCapability returns true for 3D lattice analyses only
func (o *FrameElastic) HasCapability(mode MaterialMode) bool {
	return mode == Mode3dLattice
}

// ShearModulus returns G = E / (2 (1 + ν))
func (o *FrameElastic) ShearModulus() float64 {
	return o.E / (2.0 * (1.0 + o.Nu))
}

// Status returns the status attached to pt; a new one is attached if pt has none
func (o *FrameElastic) Status(pt *Point) *Status {
	return pt.getOrCreateStatus()
}

// ThermalDilatation returns the strains caused by a unit change of temperature
func (o *FrameElastic) ThermalDilatation(pt *Point, time float64) []float64 {
	return []float64{o.Alpha, 0, 0, 0, 0, 0}
}

// Stiffness computes the diagonal matrix D relating generalised strains and stresses
//  Note: all response modes return the elastic stiffness
func (o *FrameElastic) Stiffness(rmode ResponseMode, pt *Point, time float64) *mat.DiagDense {
	o.Status(pt)
	g := o.ShearModulus()
	s := pt.Sec
	return mat.NewDiagDense(Nsig, []float64{
		o.E * s.Area(),
		g * s.ShearAreaZ(),
		g * s.ShearAreaY(),
		o.E * s.Iz(),
		o.E * s.Iy(),
		g * s.Ik(),
	})
}

// FrameForces computes σ = D ε and stores ε and σ as trial values of pt
func (o *FrameElastic) FrameForces(ε []float64, pt *Point, time float64) (σ []float64) {
	status := o.Status(pt)
	status.InitTemp()
	D := o.Stiffness(ElasticStiffness, pt, time)
	σ = make([]float64, Nsig)
	res := mat.NewVecDense(Nsig, σ)
	res.MulVec(D, mat.NewVecDense(Nsig, ε))
	status.SetTemp(ε, σ)
	return
}

// Encode encodes parameters
func (o *FrameElastic) Encode(enc utl.Encoder) (err error) {
	for _, v := range []float64{o.E, o.Nu, o.Alpha, o.Rho} {
		err = enc.Encode(v)
		if err != nil {
			return chk.Err("lattice-frame-elast: cannot encode parameters:\n%v", err)
		}
	}
	return
}

// Decode decodes parameters
func (o *FrameElastic) Decode(dec utl.Decoder) (err error) {
	for _, v := range []*float64{&o.E, &o.Nu, &o.Alpha, &o.Rho} {
		err = dec.Decode(v)
		if err != nil {
			return chk.Err("lattice-frame-elast: cannot decode parameters:\n%v", err)
		}
	}
	return
}
