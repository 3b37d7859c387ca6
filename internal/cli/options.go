// internal/cli/options.go
package cli

import (
	"flag"
	"fmt"

	"bfield/internal/common"
	"bfield/internal/version"
	"bfield/internal/writers"
)

// Options holds all CLI flags for the bfield command.
type Options struct {
	// Coil configuration
	Coil       string
	Radius     float64
	Separation float64 // resolved: <0 on the flag means "use radius"
	Current    float64

	// Observation: single point, or a z sweep when Steps > 0
	Z     float64
	Rho   float64
	ZMin  float64
	ZMax  float64
	Steps int

	// Output
	Normalized   bool
	Output       string
	Header       bool // true unless --no-header
	Quiet        bool
	SkipSingular bool

	// Performance
	Threads int

	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: magnetic field of circular current loops and Helmholtz coil pairs

Evaluates the field at one observation point (--z/--rho) or along an
axial sweep (--z-min/--z-max/--steps). Lengths in meters, current in
amperes, field in Tesla (dimensionless with --normalized).

Version: %s

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	// Coil configuration
	fs.StringVar(&opt.Coil, "coil", common.CoilLoop, "coil: loop | helmholtz | antihelmholtz [loop]")
	fs.Float64Var(&opt.Radius, "radius", 1.0, "loop radius R in meters [1]")
	fs.Float64Var(&opt.Separation, "separation", -1, "pair separation D in meters (-1 = radius, the canonical spacing) [-1]")
	fs.Float64Var(&opt.Current, "current", 1.0, "current I in amperes, signed [1]")

	// Observation point / sweep
	fs.Float64Var(&opt.Z, "z", 0, "axial coordinate of the observation point [0]")
	fs.Float64Var(&opt.Rho, "rho", 0, "radial coordinate of the observation point (also fixed rho for sweeps) [0]")
	fs.Float64Var(&opt.ZMin, "z-min", -1, "sweep start [-1]")
	fs.Float64Var(&opt.ZMax, "z-max", 1, "sweep end [1]")
	fs.IntVar(&opt.Steps, "steps", 0, "sweep sample count (0 = single-point mode) [0]")

	// Output
	fs.BoolVar(&opt.Normalized, "normalized", false, "emit the dimensionless shape field instead of Tesla [false]")
	fs.StringVar(&opt.Output, "output", "text", "output format: text | json | jsonl | csv [text]")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line in text/CSV [false]")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress warnings [false]")
	fs.BoolVar(&opt.SkipSingular, "skip-singular", false, "drop on-conductor grid points instead of failing [false]")

	// Performance
	fs.IntVar(&opt.Threads, "threads", 0, "number of worker threads (0 = all CPUs) [0]")

	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	opt.Header = !noHeader

	// Validation
	if !common.KnownCoil(opt.Coil) {
		return opt, fmt.Errorf("unknown --coil %q (loop | helmholtz | antihelmholtz)", opt.Coil)
	}
	if !writers.Known(opt.Output) {
		return opt, fmt.Errorf("unknown --output %q (text | json | jsonl | csv)", opt.Output)
	}
	if opt.Steps < 0 {
		return opt, fmt.Errorf("--steps must be >= 0, got %d", opt.Steps)
	}
	if opt.Separation < 0 {
		opt.Separation = opt.Radius
	}
	return opt, nil
}
