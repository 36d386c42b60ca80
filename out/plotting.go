// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

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

// PltEntity stores all data for a plot entity (X vs Y)
type PltEntity struct {
	Label string    // legend label
	X     []float64 // x-values
	Y     []float64 // y-values
}

// Figure collects entities to be drawn in one figure
type Figure struct {
	Title string       // title
	Xlbl  string       // x-axis label
	Ylbl  string       // y-axis label
	Data  []*PltEntity // data to be plotted
}

// Add adds a new entity to figure
func (o *Figure) Add(label string, X, Y []float64) (err error) {
	if len(X) != len(Y) {
		return chk.Err("lengths of x- and y-series are different. len(x)=%d, len(y)=%d", len(X), len(Y))
	}
	o.Data = append(o.Data, &PltEntity{label, X, Y})
	return
}

// Save draws all entities and saves a png file
func (o *Figure) Save(dirout, fnkey string) (fn string, err error) {
	if len(o.Data) == 0 {
		return "", chk.Err("there is no data to plot")
	}
	p := plot.New()
	p.Title.Text = o.Title
	p.X.Label.Text = o.Xlbl
	p.Y.Label.Text = o.Ylbl
	p.Add(plotter.NewGrid())
	for i, e := range o.Data {
		xy := make(plotter.XYs, len(e.X))
		for j := range e.X {
			xy[j].X, xy[j].Y = e.X[j], e.Y[j]
		}
		line, points, e2 := plotter.NewLinePoints(xy)
		if e2 != nil {
			return "", chk.Err("cannot create line %q:\n%v", e.Label, e2)
		}
		line.Color = plotutil.Color(i)
		points.Color = plotutil.Color(i)
		points.Shape = plotutil.Shape(i)
		p.Add(line, points)
		if e.Label != "" {
			p.Legend.Add(e.Label, line, points)
		}
	}
	err = os.MkdirAll(dirout, 0777)
	if err != nil {
		return "", chk.Err("cannot create output directory:\n%v", err)
	}
	fn = filepath.Join(dirout, fnkey+".png")
	err = p.Save(6*vg.Inch, 4*vg.Inch, fn)
	if err != nil {
		return "", chk.Err("cannot save figure:\n%v", err)
	}
	io.Pf("file <%s> written\n", fn)
	return
}

// PlotNode plots the time series of nodal values at vertex vid
func (o *Results) PlotNode(dirout, fnkey string, vid int, keys ...string) (fn string, err error) {
	fig := &Figure{Title: io.Sf("vertex %d", vid), Xlbl: "t", Ylbl: "value"}
	for _, key := range keys {
		Y, e := o.NodeSeries(vid, key)
		if e != nil {
			return "", e
		}
		err = fig.Add(key, o.Sum.OutTimes, Y)
		if err != nil {
			return
		}
	}
	return fig.Save(dirout, fnkey)
}
