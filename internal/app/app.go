// internal/app/app.go
// The bfield command: evaluate the coil field at one observation point
// or along an axial sweep, and stream rows in the selected format.
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"runtime"

	"bfield/internal/cli"
	"bfield/internal/cmdutil"
	"bfield/internal/common"
	"bfield/internal/sweep"
	"bfield/internal/version"
	"bfield/internal/writers"
)

// Run is RunContext without cancellation, kept for tests.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// RunContext parses argv, evaluates the requested points and writes rows.
// Exit codes: 0 ok, 1 runtime error, 2 usage, 3 write error.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("bfield")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return flushCode(outw, stderr)
		}
		_, _ = fmt.Fprintln(stderr, "error:", err)
		return 2
	}
	if opts.Version {
		_, _ = fmt.Fprintf(outw, "bfield version %s\n", version.Version)
		return flushCode(outw, stderr)
	}

	evalFn, err := common.Evaluator(opts.Coil, opts.Radius, opts.Separation, opts.Current, opts.Normalized)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "error:", err)
		return 2
	}

	var pts []sweep.Point
	if opts.Steps > 0 {
		pts, err = sweep.Line(opts.ZMin, opts.ZMax, opts.Steps, opts.Rho)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, "error:", err)
			return 2
		}
	} else {
		pts = []sweep.Point{{Z: opts.Z, Rho: opts.Rho}}
	}

	threads := opts.Threads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}
	cfg := sweep.Config{Threads: threads, SkipSingular: opts.SkipSingular}

	samples, skipped, err := sweep.Collect(ctx, cfg, pts, evalFn)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "error:", err)
		return 1
	}
	if skipped > 0 {
		cmdutil.Warnf(stderr, opts.Quiet, "skipped %d on-conductor point(s)", skipped)
	}

	ch, errc := writers.Start(outw, opts.Output, opts.Header, 64)
	for _, s := range samples {
		ch <- s
	}
	close(ch)
	if werr := <-errc; werr != nil && !writers.IsBrokenPipe(werr) {
		_, _ = fmt.Fprintln(stderr, "error:", werr)
		return 3
	}
	return flushCode(outw, stderr)
}

func flushCode(outw *bufio.Writer, stderr io.Writer) int {
	if err := outw.Flush(); writers.IsBrokenPipe(err) {
		return 0
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return 0
}
