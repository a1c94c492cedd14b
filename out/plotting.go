// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// PltEntity stores all data for a plot entity (X vs Y)
type PltEntity struct {
	Label string    // legend
	X     []float64 // x-values
	Y     []float64 // y-values
}

// SplotDat stores all data for one subplot
type SplotDat struct {
	Title string       // title of subplot
	Xlbl  string       // x-axis label
	Ylbl  string       // y-axis label
	Logy  bool         // logarithmic y-axis
	Data  []*PltEntity // data to be plotted
}

// Splot activates a new subplot window
func Splot(splotTitle string) {
	s := &SplotDat{Title: splotTitle}
	Splots = append(Splots, s)
	Csplot = s
}

// SplotConfig configures labels and scale of the current subplot
func SplotConfig(xlbl, ylbl string, logy bool) {
	if Csplot == nil {
		Splot("")
	}
	Csplot.Xlbl, Csplot.Ylbl, Csplot.Logy = xlbl, ylbl, logy
}

// Plot adds x-y data to the current subplot
func Plot(x, y []float64, label string) error {
	if len(x) != len(y) {
		return chk.Err("lengths of x- and y-series are different. len(x)=%d, len(y)=%d", len(x), len(y))
	}
	if Csplot == nil {
		Splot("")
	}
	Csplot.Data = append(Csplot.Data, &PltEntity{label, x, y})
	return nil
}

// PlotResids adds the norms of residuals of solver name to the current subplot
func PlotResids(name string) error {
	sum, ok := Sums[name]
	if !ok {
		return chk.Err("cannot find summary of solver %q", name)
	}
	x := make([]float64, len(sum.Resids))
	for i := range x {
		x[i] = float64(i)
	}
	return Plot(x, sum.Resids, name)
}

// Draw draws all subplots, one below the other, into a PNG file
//  width and height are the dimensions of each subplot; zero => 5×3 inches
func Draw(dirout, fname string, width, height vg.Length) (err error) {
	if len(Splots) == 0 {
		return chk.Err("there are no subplots to draw")
	}
	if !strings.HasSuffix(strings.ToLower(fname), ".png") {
		return chk.Err("figure file must have .png extension; got %q", fname)
	}
	if width == 0 {
		width = 5 * vg.Inch
	}
	if height == 0 {
		height = 3 * vg.Inch
	}

	// plots
	plots := make([][]*plot.Plot, len(Splots))
	for i, s := range Splots {
		p, err := s.plot()
		if err != nil {
			return err
		}
		plots[i] = []*plot.Plot{p}
	}

	// canvas
	img := vgimg.New(width, height*vg.Length(len(Splots)))
	dc := draw.New(img)
	tiles := draw.Tiles{Rows: len(Splots), Cols: 1}
	canvases := plot.Align(plots, tiles, dc)
	for i := range plots {
		plots[i][0].Draw(canvases[i][0])
	}

	// save file
	if err = os.MkdirAll(dirout, 0777); err != nil {
		return chk.Err("cannot create directory %q: %v", dirout, err)
	}
	fn := filepath.Join(dirout, fname)
	fil, err := os.Create(fn)
	if err != nil {
		return
	}
	defer func() {
		if e := fil.Close(); e != nil && err == nil {
			err = e
		}
	}()
	if _, err = (vgimg.PngCanvas{Canvas: img}).WriteTo(fil); err != nil {
		return
	}
	io.Pfblue2("file <%s> written\n", fn)
	return
}

// plot returns the gonum plot of this subplot
func (o *SplotDat) plot() (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = o.Title
	p.X.Label.Text = o.Xlbl
	p.Y.Label.Text = o.Ylbl
	if o.Logy {
		p.Y.Scale = plot.LogScale{}
		p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	}
	p.Add(plotter.NewGrid())
	for i, e := range o.Data {
		if o.Logy {
			for _, y := range e.Y {
				if y <= 0 {
					return nil, chk.Err("subplot %q: %q has non-positive values; cannot use log scale", o.Title, e.Label)
				}
			}
		}
		xys := make(plotter.XYs, len(e.X))
		for j := range e.X {
			xys[j].X, xys[j].Y = e.X[j], e.Y[j]
		}
		line, points, err := plotter.NewLinePoints(xys)
		if err != nil {
			return nil, err
		}
		line.Color = plotutil.Color(i)
		line.Dashes = plotutil.Dashes(i)
		points.Color = plotutil.Color(i)
		points.Shape = plotutil.Shape(i)
		p.Add(line, points)
		if e.Label != "" {
			p.Legend.Add(e.Label, line, points)
		}
	}
	return p, nil
}
