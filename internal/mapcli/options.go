// internal/mapcli/options.go
package mapcli

import (
	"flag"
	"fmt"

	"bfield/internal/common"
	"bfield/internal/version"
	"bfield/internal/writers"
)

// Options holds all CLI flags for the bfield-map command.
type Options struct {
	// Coil configuration
	Coil       string
	Radius     float64
	Separation float64 // resolved: <0 on the flag means "use radius"
	Current    float64

	// Grid
	ZMin, ZMax     float64
	ZSteps         int
	RhoMin, RhoMax float64
	RhoSteps       int

	// Output
	Normalized   bool
	Output       string
	Header       bool
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
			`%s: 2D field map of a coil in the (z, rho) half-plane

Rows stream in grid order (z outer, rho inner). Lengths in meters,
current in amperes, field in Tesla (dimensionless with --normalized).

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

	fs.StringVar(&opt.Coil, "coil", common.CoilHelmholtz, "coil: loop | helmholtz | antihelmholtz [helmholtz]")
	fs.Float64Var(&opt.Radius, "radius", 1.0, "loop radius R in meters [1]")
	fs.Float64Var(&opt.Separation, "separation", -1, "pair separation D in meters (-1 = radius) [-1]")
	fs.Float64Var(&opt.Current, "current", 1.0, "current I in amperes, signed [1]")

	fs.Float64Var(&opt.ZMin, "z-min", -1, "grid z start [-1]")
	fs.Float64Var(&opt.ZMax, "z-max", 1, "grid z end [1]")
	fs.IntVar(&opt.ZSteps, "z-steps", 41, "grid samples along z [41]")
	fs.Float64Var(&opt.RhoMin, "rho-min", 0, "grid rho start [0]")
	fs.Float64Var(&opt.RhoMax, "rho-max", 1, "grid rho end [1]")
	fs.IntVar(&opt.RhoSteps, "rho-steps", 21, "grid samples along rho [21]")

	fs.BoolVar(&opt.Normalized, "normalized", false, "emit the dimensionless shape field instead of Tesla [false]")
	fs.StringVar(&opt.Output, "output", "text", "output format: text | json | jsonl | csv [text]")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line in text/CSV [false]")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress warnings [false]")
	fs.BoolVar(&opt.SkipSingular, "skip-singular", true, "drop on-conductor grid points instead of failing [true]")

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

	if !common.KnownCoil(opt.Coil) {
		return opt, fmt.Errorf("unknown --coil %q (loop | helmholtz | antihelmholtz)", opt.Coil)
	}
	if !writers.Known(opt.Output) {
		return opt, fmt.Errorf("unknown --output %q (text | json | jsonl | csv)", opt.Output)
	}
	if opt.ZSteps < 1 || opt.RhoSteps < 1 {
		return opt, fmt.Errorf("grid steps must be >= 1, got %d x %d", opt.ZSteps, opt.RhoSteps)
	}
	if opt.Separation < 0 {
		opt.Separation = opt.Radius
	}
	return opt, nil
}
