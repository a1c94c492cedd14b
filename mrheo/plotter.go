// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mrheo

import (
	"math"

	"github.com/cpmech/gorheo/sym"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// EdotName is the name of the free symbol replacing edot_II when plotting
const EdotName = "edot_II"

// Curve holds the points of one effective viscosity curve
type Curve struct {
	Label string
	X, Y  []float64
}

// Plotter plots effective viscosities versus strain rate (log-log)
type Plotter struct {
	Npts    int       // number of points; default = 41
	EdotMin float64   // minimum strain rate; default = 1e-3
	EdotMax float64   // maximum strain rate; default = 1e6 EdotMin
	Title   string    // figure title
	Width   vg.Length // default = 5 inches
	Height  vg.Length // default = 4 inches
}

// init sets defaults
func (o *Plotter) init() {
	if o.Npts < 2 {
		o.Npts = 41
	}
	if o.EdotMin <= 0 {
		o.EdotMin = 1e-3
	}
	if o.EdotMax <= o.EdotMin {
		o.EdotMax = 1e6 * o.EdotMin
	}
	if o.Width == 0 {
		o.Width = 5 * vg.Inch
	}
	if o.Height == 0 {
		o.Height = 4 * vg.Inch
	}
}

// Curve computes η_eff(edot_II) for the parameters of m; the model is not modified
//  env must give values to all other free symbols in the parameters
func (o *Plotter) Curve(lbl string, m *ViscoPlastic, env sym.Env) (c Curve, err error) {
	o.init()
	prms := m.Prms()
	prms.EdotII = sym.S(EdotName)
	ηeff := prms.Effective()
	vars := make(map[string]float64, len(env.Vars)+1)
	for k, v := range env.Vars {
		vars[k] = v
	}
	env.Vars = vars
	c.Label = lbl
	c.X = utl.LinSpace(math.Log10(o.EdotMin), math.Log10(o.EdotMax), o.Npts)
	c.Y = make([]float64, o.Npts)
	for i, x := range c.X {
		c.X[i] = math.Pow(10, x)
		vars[EdotName] = c.X[i]
		if c.Y[i], err = ηeff.Eval(env); err != nil {
			return
		}
	}
	return
}

// Save plots all curves into fn (e.g. "/tmp/viscosity.png")
func (o *Plotter) Save(fn string, curves ...Curve) error {
	o.init()
	if len(curves) == 0 {
		return chk.Err("there are no curves to plot")
	}
	p := plot.New()
	p.Title.Text = o.Title
	p.X.Label.Text = "edot_II"
	p.Y.Label.Text = "effective viscosity"
	p.X.Scale = plot.LogScale{}
	p.Y.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Add(plotter.NewGrid())
	for i, c := range curves {
		xys := make(plotter.XYs, len(c.X))
		for j := range c.X {
			xys[j].X, xys[j].Y = c.X[j], c.Y[j]
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return err
		}
		line.Color = plotutil.Color(i)
		line.Dashes = plotutil.Dashes(i)
		p.Add(line)
		if c.Label != "" {
			p.Legend.Add(c.Label, line)
		}
	}
	if err := p.Save(o.Width, o.Height, fn); err != nil {
		return err
	}
	if Verbose {
		io.Pfblue2("file <%s> written\n", fn)
	}
	return nil
}
