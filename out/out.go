// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements post-processing of results saved by fem
package out

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/latfem/latfem/fem"
)

// Results holds the data needed to read a saved simulation back
type Results struct {
	Analysis *fem.Main    // analysis data; Run is not called
	Sum      *fem.Summary // summary of output times
	Dom      *fem.Domain  // domain loaded at selected output times
	Tidx     int          // index of output time currently loaded; -1 if none
}

// Start reads the simulation file and the summary of results
//  dirout -- directory with results; "" means the one given in the .sim file
func Start(simfnpath, dirout string) (o *Results, err error) {
	o = &Results{Tidx: -1}
	o.Analysis, err = fem.NewMain(simfnpath, "imp", false, false)
	if err != nil {
		return nil, chk.Err("cannot load simulation:\n%v", err)
	}
	o.Dom = o.Analysis.Dom
	if dirout == "" {
		dirout = o.Analysis.Sim.DirOut
	}
	o.Sum, err = fem.ReadSum(dirout, o.Analysis.Sim.Key)
	if err != nil {
		return nil, chk.Err("cannot load summary of results:\n%v", err)
	}
	o.Sum.Dirout = dirout
	return
}

// Times returns the output times
func (o *Results) Times() []float64 {
	return o.Sum.OutTimes
}

// Load loads results at output time index tidx
func (o *Results) Load(tidx int) (err error) {
	if tidx == o.Tidx {
		return
	}
	err = o.Dom.Read(o.Sum, tidx)
	if err != nil {
		return
	}
	o.Tidx = tidx
	return
}

// NodeSeries returns the time series of a nodal value
//  key -- dof key; e.g. "ux", "rz"
func (o *Results) NodeSeries(vid int, key string) (Y []float64, err error) {
	if vid < 0 || vid >= len(o.Dom.Vid2node) || o.Dom.Vid2node[vid] == nil {
		return nil, chk.Err("vertex %d is not active", vid)
	}
	eq := o.Dom.Vid2node[vid].GetEq(key)
	if eq < 0 {
		return nil, chk.Err("vertex %d does not have dof %q", vid, key)
	}
	Y = make([]float64, len(o.Sum.OutTimes))
	for tidx := range o.Sum.OutTimes {
		err = o.Load(tidx)
		if err != nil {
			return
		}
		Y[tidx] = o.Dom.Sol.Y[eq]
	}
	return
}

// IpSeries returns the time series of a value at integration point ip of cell cid
//  key -- stress key; e.g. "N", "M1"
func (o *Results) IpSeries(cid, ip int, key string) (V []float64, err error) {
	if cid < 0 || cid >= len(o.Dom.Cid2elem) || o.Dom.Cid2elem[cid] == nil {
		return nil, chk.Err("cell %d is not active", cid)
	}
	V = make([]float64, len(o.Sum.OutTimes))
	for tidx := range o.Sum.OutTimes {
		err = o.Load(tidx)
		if err != nil {
			return
		}
		M, ok := o.Dom.IpsValues()[cid]
		if !ok {
			return nil, chk.Err("cell %d does not output values at integration points", cid)
		}
		v, found := M.Lookup(key, ip)
		if !found {
			return nil, chk.Err("cannot find %q at integration point %d of cell %d", key, ip, cid)
		}
		V[tidx] = v
	}
	return
}

// Table returns a formatted table with the time series of nodal values
func (o *Results) Table(vid int, keys ...string) (l string, err error) {
	cols := make([][]float64, len(keys))
	for i, key := range keys {
		cols[i], err = o.NodeSeries(vid, key)
		if err != nil {
			return
		}
	}
	l = io.Sf("%8s", "t")
	for _, key := range keys {
		l += io.Sf("%23s", key)
	}
	l += "\n"
	for tidx, t := range o.Sum.OutTimes {
		l += io.Sf("%8g", t)
		for i := range keys {
			l += io.Sf("%23.15e", cols[i][tidx])
		}
		l += "\n"
	}
	return
}
