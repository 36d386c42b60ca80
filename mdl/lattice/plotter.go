// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lattice

import (
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// ComponentKeys holds the names of the generalised stress components
var ComponentKeys = []string{"N", "V2", "V1", "M2", "M1", "T0"}

// Plotter plots stress-strain curves computed with Driver
type Plotter struct {
	DirOut string    // output directory
	FnKey  string    // filename key (without extension)
	Width  vg.Length // figure width
	Height vg.Length // figure height
}

// SetFig sets figure data
func (o *Plotter) SetFig(dirout, fnkey string) {
	o.DirOut, o.FnKey = dirout, fnkey
	o.Width, o.Height = 6*vg.Inch, 4*vg.Inch
}

// Plot plots σ_k versus ε_k for each selected component k and saves a png file
//  comps -- components to plot; e.g. {0, 3}; nil means all
func (o *Plotter) Plot(res []*Status, comps []int) (fn string, err error) {
	if len(res) == 0 {
		return "", chk.Err("there are no results to plot")
	}
	if comps == nil {
		comps = []int{0, 1, 2, 3, 4, 5}
	}
	p := plot.New()
	p.Title.Text = "lattice frame: " + o.FnKey
	p.X.Label.Text = "generalised strain"
	p.Y.Label.Text = "generalised stress"
	p.Add(plotter.NewGrid())
	for i, k := range comps {
		if k < 0 || k >= Nsig {
			return "", chk.Err("component %d is invalid", k)
		}
		xy := make(plotter.XYs, len(res))
		for j, s := range res {
			xy[j].X = s.Strain[k]
			xy[j].Y = s.Stress[k]
		}
		line, e := plotter.NewLine(xy)
		if e != nil {
			return "", chk.Err("cannot create line for component %q:\n%v", ComponentKeys[k], e)
		}
		line.Color = plotutil.Color(i)
		p.Add(line)
		p.Legend.Add(ComponentKeys[k], line)
	}
	err = os.MkdirAll(o.DirOut, 0777)
	if err != nil {
		return "", chk.Err("cannot create output directory:\n%v", err)
	}
	fn = filepath.Join(o.DirOut, o.FnKey+".png")
	err = p.Save(o.Width, o.Height, fn)
	if err != nil {
		return "", chk.Err("cannot save figure:\n%v", err)
	}
	io.Pf("file <%s> written\n", fn)
	return
}
