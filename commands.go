// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	goio "io"
	"log/slog"
	"math"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/cpmech/gorheo/fem"
	"github.com/cpmech/gorheo/inp"
	"github.com/cpmech/gorheo/mrheo"
	"github.com/cpmech/gorheo/out"
	"github.com/cpmech/gorheo/sym"
	"github.com/cpmech/gorheo/tensor"
	"github.com/cpmech/gosl/chk"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"
	"gopkg.in/yaml.v3"
)

// options holds the flags shared by all commands
type options struct {
	matfile string   // materials file
	name    string   // material name
	ndim    int      // space dimension
	set     []string // parameters replacing the ones in the materials file; key=value
	vars    []string // values of free symbols; key=value
	x       []float64
	t       float64
	verbose bool
	log     *slog.Logger
}

// newRootCmd returns the gorheo command with all subcommands
func newRootCmd(stdout, stderr goio.Writer) *cobra.Command {
	o := new(options)
	root := &cobra.Command{
		Use:           "gorheo",
		Short:         "Constitutive (rheological) models for finite element solvers",
		Long:          "gorheo builds viscous, viscoplastic, viscoelastic, diffusion and transverse-isotropic\nconstitutive tensors from materials files and evaluates fluxes.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if o.verbose {
				level = slog.LevelDebug
				mrheo.Verbose = true
			}
			o.log = slog.New(tint.NewHandler(stderr, &tint.Options{Level: level, TimeFormat: time.Kitchen}))
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVarP(&o.matfile, "mat", "m", "", "materials file (.mat, .json, .yaml)")
	pf.StringVarP(&o.name, "name", "n", "", "material name")
	pf.IntVarP(&o.ndim, "ndim", "d", 2, "space dimension")
	pf.StringArrayVar(&o.set, "set", nil, "replace parameter; e.g. --set viscosity=5 --set director=[0,1]")
	pf.StringArrayVar(&o.vars, "var", nil, "value of free symbol; e.g. --var eta=2")
	pf.Float64SliceVar(&o.x, "x", nil, "position passed to fields; e.g. --x 0.5,1")
	pf.Float64VarP(&o.t, "time", "t", 0, "time passed to fields")
	pf.BoolVarP(&o.verbose, "verbose", "v", false, "show messages")

	root.AddCommand(newShowCmd(o), newFluxCmd(o), newPlotCmd(o), newRunCmd(o), newPostCmd(o), newModelsCmd())
	return root
}

// newShowCmd prints the Mandel form of the constitutive tensor
func newShowCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show parameters and the Mandel form of the constitutive tensor",
		RunE: func(cmd *cobra.Command, args []string) error {
			mdl, err := o.model()
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s\n", mdl.Summary())
			C, err := mdl.Mandel()
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "\nC =\n%v", C)

			// numeric values
			env, err := o.env()
			if err != nil {
				return err
			}
			Cn, err := tensor.EvalMatrix(C, env)
			if err != nil {
				o.log.Warn("cannot evaluate C; use --var to set free symbols", "err", err)
				return nil
			}
			fmt.Fprintf(w, "\nC (numeric) =\n%v\n", mat.Formatted(Cn, mat.Prefix("    "), mat.Squeeze()))
			λ, err := eigenvalues(Cn)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "\neigenvalues = [%s]\n", join(λ))
			return nil
		},
	}
}

// newFluxCmd evaluates the flux at a gradient
func newFluxCmd(o *options) *cobra.Command {
	var gstr string
	var withJac, check bool
	cmd := &cobra.Command{
		Use:   "flux",
		Short: "Evaluate the flux for a given gradient",
		RunE: func(cmd *cobra.Command, args []string) error {
			grad, err := parseGrad(gstr)
			if err != nil {
				return err
			}
			mdl, err := o.model()
			if err != nil {
				return err
			}
			env, err := o.env()
			if err != nil {
				return err
			}
			sol, err := fem.NewSolver(o.name, mdl)
			if err != nil {
				return err
			}
			F, err := sol.Residual(grad, env)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "flux =\n%v\n", mat.Formatted(F, mat.Prefix("       "), mat.Squeeze()))
			if withJac {
				J, err := sol.Jacobian(grad, env)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "dflux/dgrad =\n%v\n", mat.Formatted(J, mat.Prefix("              "), mat.Squeeze()))
				if check {
					Jnum, err := sol.NumJacobian(grad, env)
					if err != nil {
						return err
					}
					var diff mat.Dense
					diff.Sub(J, Jnum)
					fmt.Fprintf(w, "‖dflux/dgrad - central differences‖∞ = %.3e\n", mat.Norm(&diff, math.Inf(1)))
				}
			}
			o.log.Debug("flux evaluated", "material", o.name, "nsetup", sol.Sum.Nsetup)
			return nil
		},
	}
	cmd.Flags().StringVarP(&gstr, "grad", "g", "", `gradient; rows separated by ";" e.g. "0,1;0,0"`)
	cmd.Flags().BoolVar(&withJac, "jac", false, "also print the derivatives of flux w.r.t gradient")
	cmd.Flags().BoolVar(&check, "check", false, "compare the derivatives with central differences (requires --jac)")
	cmd.MarkFlagRequired("grad")
	return cmd
}

// newPlotCmd plots the effective viscosity of a viscoplastic material
func newPlotCmd(o *options) *cobra.Command {
	var fn string
	plt := mrheo.Plotter{}
	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Plot the effective viscosity versus strain rate (viscoplastic materials)",
		RunE: func(cmd *cobra.Command, args []string) error {
			mdl, err := o.model()
			if err != nil {
				return err
			}
			vp, ok := mdl.(*mrheo.ViscoPlastic)
			if !ok {
				return chk.Err("material %q is %v; plot requires a viscoplastic material", o.name, mdl.Kind())
			}
			env, err := o.env()
			if err != nil {
				return err
			}
			plt.Title = o.name
			c, err := plt.Curve(o.name, vp, env)
			if err != nil {
				return err
			}
			if err = plt.Save(fn, c); err != nil {
				return err
			}
			o.log.Info("figure saved", "file", fn)
			fmt.Fprintf(cmd.OutOrStdout(), "file <%s> written\n", fn)
			return nil
		},
	}
	cmd.Flags().StringVarP(&fn, "output", "o", "viscosity.png", "figure file; e.g. fig.png or fig.svg")
	cmd.Flags().IntVar(&plt.Npts, "npts", 41, "number of points")
	cmd.Flags().Float64Var(&plt.EdotMin, "edot-min", 1e-3, "minimum strain rate")
	cmd.Flags().Float64Var(&plt.EdotMax, "edot-max", 1e3, "maximum strain rate")
	return cmd
}

// newRunCmd runs all cases of a simulation file
func newRunCmd(o *options) *cobra.Command {
	var alias string
	var erase, save bool
	cmd := &cobra.Command{
		Use:   "run file.sim",
		Short: "Evaluate all cases of a simulation (.sim or .yaml) file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			analysis, err := fem.NewFEM(args[0], alias, erase, save, o.verbose)
			if err != nil {
				return err
			}
			o.log.Debug("simulation loaded", "key", analysis.Sim.Key, "ncases", len(analysis.Sim.Cases))
			if err = analysis.Run(); err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, res := range analysis.Results {
				fmt.Fprintf(w, "%s [%s]:\n%v\n", res.Desc, res.Solver, mat.Formatted(res.Flux, mat.Prefix("  "), mat.Squeeze()))
			}
			if save {
				o.log.Info("summaries saved", "dir", analysis.Sim.DirOut)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&alias, "alias", "", "word to be appended to simulation key")
	cmd.Flags().BoolVar(&erase, "erase", false, "erase previous results")
	cmd.Flags().BoolVar(&save, "save", false, "save summaries")
	return cmd
}

// newPostCmd prints and plots the summaries saved by run --save
func newPostCmd(o *options) *cobra.Command {
	var alias, fig string
	cmd := &cobra.Command{
		Use:   "post file.sim",
		Short: "Print the fluxes saved by \"run --save\" and plot the norms of residuals",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := out.Start(args[0], alias); err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out.Table())
			if fig == "" {
				return nil
			}
			out.Splot("residuals")
			out.SplotConfig("evaluation", "norm of flux", true)
			for _, name := range out.Names {
				if err := out.PlotResids(name); err != nil {
					return err
				}
			}
			if err := out.Draw(filepath.Dir(fig), filepath.Base(fig), 0, 0); err != nil {
				return err
			}
			o.log.Info("figure saved", "file", fig)
			return nil
		},
	}
	cmd.Flags().StringVar(&alias, "alias", "", "word appended to simulation key by run")
	cmd.Flags().StringVarP(&fig, "output", "o", "", "figure file with norms of residuals; e.g. resids.png")
	return cmd
}

// newModelsCmd lists the available models
func newModelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List available models",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range mrheo.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}
}

// auxiliary //////////////////////////////////////////////////////////////////////////////////////

// model reads the materials file and returns the model of the selected material
func (o *options) model() (mrheo.Model, error) {
	if o.matfile == "" || o.name == "" {
		return nil, chk.Err("materials file (-m) and material name (-n) must be given")
	}
	mdb, err := inp.ReadMat(filepath.Dir(o.matfile), filepath.Base(o.matfile), o.ndim)
	if err != nil {
		return nil, err
	}
	o.log.Debug("materials file read", "file", o.matfile, "materials", mdb.Names())
	set, err := parseKeyVals(o.set)
	if err != nil {
		return nil, err
	}
	return fem.GetAndInitRheoModel(mdb, o.name, set)
}

// env returns the values of free symbols, position and time
func (o *options) env() (env sym.Env, err error) {
	raw, err := parseKeyVals(o.vars)
	if err != nil {
		return
	}
	env.Vars = make(map[string]float64, len(raw))
	for k, v := range raw {
		switch x := v.(type) {
		case int:
			env.Vars[k] = float64(x)
		case float64:
			env.Vars[k] = x
		default:
			return env, chk.Err("value of symbol %q must be a number; got %v", k, v)
		}
	}
	env.X, env.T = o.x, o.t
	return
}

// parseKeyVals parses key=value pairs; values are decoded as YAML (numbers, names or lists)
func parseKeyVals(pairs []string) (map[string]interface{}, error) {
	res := make(map[string]interface{}, len(pairs))
	for _, pair := range pairs {
		key, val, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, chk.Err("cannot parse %q; use key=value", pair)
		}
		var v interface{}
		if err := yaml.Unmarshal([]byte(val), &v); err != nil {
			return nil, chk.Err("cannot parse value of %q: %v", key, err)
		}
		if v == nil {
			return nil, chk.Err("value of %q must not be empty", key)
		}
		res[key] = v
	}
	return res, nil
}

// parseGrad parses a matrix given as "a,b;c,d"
func parseGrad(s string) (grad [][]float64, err error) {
	for _, row := range strings.Split(s, ";") {
		var r []float64
		for _, str := range strings.Split(row, ",") {
			v, err := strconv.ParseFloat(strings.TrimSpace(str), 64)
			if err != nil {
				return nil, chk.Err("cannot parse gradient %q: %v", s, err)
			}
			r = append(r, v)
		}
		grad = append(grad, r)
	}
	return
}

// join formats values with 6 significant digits
func join(vals []float64) string {
	l := make([]string, len(vals))
	for i, v := range vals {
		l[i] = strconv.FormatFloat(v, 'g', 6, 64)
	}
	return strings.Join(l, " ")
}

// eigenvalues returns the eigenvalues of a symmetric matrix
func eigenvalues(a *mat.Dense) ([]float64, error) {
	n, _ := a.Dims()
	s := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			s.SetSym(i, j, a.At(i, j))
		}
	}
	var es mat.EigenSym
	if !es.Factorize(s, false) {
		return nil, chk.Err("eigenvalue decomposition failed")
	}
	return es.Values(nil), nil
}
