// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lattice

import (
	"bytes"
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"github.com/stretchr/testify/assert"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// section implements Section with constant properties
type section struct {
	a, iy, iz, ik, ay, az float64
}

func (o section) Area() float64       { return o.a }
func (o section) Iy() float64         { return o.iy }
func (o section) Iz() float64         { return o.iz }
func (o section) Ik() float64         { return o.ik }
func (o section) ShearAreaY() float64 { return o.ay }
func (o section) ShearAreaZ() float64 { return o.az }

func newFrameElastic(tst *testing.T, e, nu float64) *FrameElastic {
	mdl, err := New("lattice-frame-elast")
	if err != nil {
		tst.Fatalf("New failed:\n%v", err)
	}
	err = mdl.Init([]*dbf.P{
		&dbf.P{N: "e", V: e},
		&dbf.P{N: "nu", V: nu},
		&dbf.P{N: "talpha", V: 1.2e-5},
	})
	if err != nil {
		tst.Fatalf("Init failed:\n%v", err)
	}
	return mdl.(*FrameElastic)
}

func Test_frameelast01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("frameelast01. stiffness and forces")

	mdl := newFrameElastic(tst, 30000, 0.2)
	sec := section{a: 0.01, iy: 8.33e-6, iz: 8.33e-6, ik: 1.67e-5, ay: 0.0083, az: 0.0083}
	pt := NewPoint(0, 0, sec)

	chk.Float64(tst, "g", 1e-12, mdl.ShearModulus(), 12500)

	D := mdl.Stiffness(ElasticStiffness, pt, 0)
	io.Pforan("D = %v\n", D.Diag())
	dcor := []float64{300, 103.75, 103.75, 0.2499, 0.2499, 0.20875}
	for i := 0; i < Nsig; i++ {
		for j := 0; j < Nsig; j++ {
			if i == j {
				chk.Float64(tst, io.Sf("D%d%d", i, j), 1e-12, D.At(i, j), dcor[i])
				continue
			}
			chk.Float64(tst, io.Sf("D%d%d", i, j), 1e-17, D.At(i, j), 0)
		}
	}

	σ := mdl.FrameForces([]float64{1e-4, 0, 0, 0, 0, 0}, pt, 0)
	chk.Array(tst, "σ", 1e-15, σ, []float64{0.03, 0, 0, 0, 0, 0})

	status := mdl.Status(pt)
	chk.Array(tst, "temp ε", 1e-17, status.TempStrain, []float64{1e-4, 0, 0, 0, 0, 0})
	chk.Array(tst, "temp σ", 1e-15, status.TempStress, []float64{0.03, 0, 0, 0, 0, 0})
	chk.Array(tst, "ε", 1e-17, status.Strain, []float64{0, 0, 0, 0, 0, 0})
	chk.Array(tst, "σ", 1e-17, status.Stress, []float64{0, 0, 0, 0, 0, 0})
}

func Test_frameelast02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("frameelast02. σ = diag(d) ε for all strains")

	mdl := newFrameElastic(tst, 2e8, 0.3)
	sec := section{a: 0.02, iy: 1.5e-5, iz: 6.7e-5, ik: 4.6e-5, ay: 0.0167, az: 0.0150}
	pt := NewPoint(3, 1, sec)
	g := 2e8 / 2.6
	d := []float64{2e8 * 0.02, g * 0.0150, g * 0.0167, 2e8 * 6.7e-5, 2e8 * 1.5e-5, g * 4.6e-5}

	strains := [][]float64{
		{1e-3, -2e-4, 3e-4, 1e-2, -5e-3, 2e-3},
		{-1, 2, -3, 4, -5, 6},
		{0, 0, 0, 0, 0, 0},
		{1e-9, 0, 1e-9, 0, 1e-9, 0},
	}
	for k, ε := range strains {
		σ := mdl.FrameForces(ε, pt, float64(k))
		for i := 0; i < Nsig; i++ {
			chk.Float64(tst, io.Sf("σ%d (case %d)", i, k), 1e-15*math.Max(1, math.Abs(d[i]*ε[i])), σ[i], d[i]*ε[i])
			if d[i] <= 0 {
				tst.Errorf("diagonal term %d must be positive", i)
			}
		}
	}

	// no hidden state
	D1 := mdl.Stiffness(ElasticStiffness, pt, 0)
	D2 := mdl.Stiffness(TangentStiffness, pt, 10)
	for i := 0; i < Nsig; i++ {
		if D1.At(i, i) != D2.At(i, i) {
			tst.Errorf("stiffness must be identical in repeated calls: %v != %v", D1.At(i, i), D2.At(i, i))
		}
	}
}

func Test_frameelast03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("frameelast03. status, thermal strains and capabilities")

	mdl := newFrameElastic(tst, 30000, 0.2)
	pt := NewPoint(0, 0, section{1, 1, 1, 1, 1, 1})

	if pt.HasStatus() {
		tst.Errorf("point must not have a status before the first request")
	}
	s1 := mdl.Status(pt)
	s2 := mdl.Status(pt)
	assert.Same(tst, s1, s2, "status must be created once")
	mdl.FrameForces([]float64{1, 1, 1, 1, 1, 1}, pt, 0)
	assert.Same(tst, s1, mdl.Status(pt), "FrameForces must not replace the status")

	chk.Array(tst, "α", 1e-17, mdl.ThermalDilatation(pt, 0), []float64{1.2e-5, 0, 0, 0, 0, 0})

	if !mdl.HasCapability(Mode3dLattice) {
		tst.Errorf("model must handle 3D lattices")
	}
	if mdl.HasCapability(Mode2dLattice) || mdl.HasCapability(ModeUnknown) {
		tst.Errorf("model must only handle 3D lattices")
	}
}

func Test_frameelast04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("frameelast04. input errors")

	mdl := new(FrameElastic)
	err := mdl.Init([]*dbf.P{&dbf.P{N: "nu", V: 0.2}})
	if err == nil {
		tst.Errorf("missing \"e\" must be reported")
	}
	io.Pforan("%v\n", err)

	err = mdl.Init([]*dbf.P{&dbf.P{N: "e", V: 100}})
	if err == nil {
		tst.Errorf("missing \"nu\" must be reported")
	}

	for _, prms := range [][]float64{{-1, 0.2}, {0, 0.2}, {100, 0.5}, {100, -1}} {
		err = new(FrameElastic).Init([]*dbf.P{&dbf.P{N: "e", V: prms[0]}, &dbf.P{N: "nu", V: prms[1]}})
		if err == nil {
			tst.Errorf("e=%g, nu=%g must be rejected", prms[0], prms[1])
		}
	}

	_, err = New("elastic-plastic-steel")
	if err == nil {
		tst.Errorf("unknown model must be reported")
	}
}

func Test_frameelast05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("frameelast05. encode and decode parameters")

	mdl := newFrameElastic(tst, 30000, 0.25)
	mdl.Rho = 2.5e-3

	var buf bytes.Buffer
	err := mdl.Encode(utl.NewEncoder(&buf, "gob"))
	if err != nil {
		tst.Errorf("Encode failed:\n%v", err)
		return
	}

	var other FrameElastic
	err = other.Decode(utl.NewDecoder(&buf, "gob"))
	if err != nil {
		tst.Errorf("Decode failed:\n%v", err)
		return
	}
	chk.Float64(tst, "e", 1e-17, other.E, 30000)
	chk.Float64(tst, "nu", 1e-17, other.Nu, 0.25)
	chk.Float64(tst, "talpha", 1e-17, other.Alpha, 1.2e-5)
	chk.Float64(tst, "rho", 1e-17, other.Rho, 2.5e-3)
}
