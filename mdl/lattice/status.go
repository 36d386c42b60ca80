// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lattice

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Status holds the strains and stresses of one integration point of a lattice element
//  Note: "temp" values are trial values of the current iteration; they only become
//        the converged values after Commit
type Status struct {

	// trial (uncommitted)
	TempStrain []float64 // trial generalised strains [Nsig]
	TempStress []float64 // trial generalised stresses [Nsig]

	// converged (committed)
	Strain []float64 // converged generalised strains [Nsig]
	Stress []float64 // converged generalised stresses [Nsig]
}

// NewStatus allocates a status with zero strains and stresses
func NewStatus() *Status {
	return &Status{
		TempStrain: make([]float64, Nsig),
		TempStress: make([]float64, Nsig),
		Strain:     make([]float64, Nsig),
		Stress:     make([]float64, Nsig),
	}
}

// InitTemp prepares the trial slots to receive new values: temp := converged
func (o *Status) InitTemp() {
	copy(o.TempStrain, o.Strain)
	copy(o.TempStress, o.Stress)
}

// SetTemp sets trial strains and stresses
func (o *Status) SetTemp(ε, σ []float64) {
	copy(o.TempStrain, ε)
	copy(o.TempStress, σ)
}

// Commit accepts the trial values: converged := temp
func (o *Status) Commit() {
	copy(o.Strain, o.TempStrain)
	copy(o.Stress, o.TempStress)
}

// Reset discards the trial values: temp := converged
func (o *Status) Reset() {
	o.InitTemp()
}

// Set copies states
//  Note: this and other states must have been allocated with NewStatus
func (o *Status) Set(other *Status) {
	copy(o.TempStrain, other.TempStrain)
	copy(o.TempStress, other.TempStress)
	copy(o.Strain, other.Strain)
	copy(o.Stress, other.Stress)
}

// GetCopy returns a copy of this status
func (o *Status) GetCopy() *Status {
	other := NewStatus()
	other.Set(o)
	return other
}

// Encode encodes converged values
func (o *Status) Encode(enc utl.Encoder) (err error) {
	err = enc.Encode(o.Strain)
	if err != nil {
		return chk.Err("cannot encode converged strains:\n%v", err)
	}
	err = enc.Encode(o.Stress)
	if err != nil {
		return chk.Err("cannot encode converged stresses:\n%v", err)
	}
	return
}

// Decode decodes converged values and resets the trial ones
func (o *Status) Decode(dec utl.Decoder) (err error) {
	var ε, σ []float64
	err = dec.Decode(&ε)
	if err != nil {
		return chk.Err("cannot decode converged strains:\n%v", err)
	}
	err = dec.Decode(&σ)
	if err != nil {
		return chk.Err("cannot decode converged stresses:\n%v", err)
	}
	if len(ε) != Nsig || len(σ) != Nsig {
		return chk.Err("decoded status has wrong size: len(ε)=%d, len(σ)=%d. %d components are required", len(ε), len(σ), Nsig)
	}
	copy(o.Strain, ε)
	copy(o.Stress, σ)
	o.InitTemp()
	return
}
