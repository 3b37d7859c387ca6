// internal/mapapp/app.go
// The bfield-map command: evaluate the coil field over a (z, rho) grid.
package mapapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"runtime"

	"bfield/internal/cmdutil"
	"bfield/internal/common"
	"bfield/internal/mapcli"
	"bfield/internal/sweep"
	"bfield/internal/version"
	"bfield/internal/writers"
)

// Run is RunContext without cancellation, kept for tests.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// RunContext parses argv, evaluates the grid and writes rows.
// Exit codes: 0 ok, 1 runtime error, 2 usage, 3 write error.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := mapcli.NewFlagSet("bfield-map")
	fs.SetOutput(io.Discard)

	opts, err := mapcli.ParseArgs(fs, argv)
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
		_, _ = fmt.Fprintf(outw, "bfield-map version %s\n", version.Version)
		return flushCode(outw, stderr)
	}

	evalFn, err := common.Evaluator(opts.Coil, opts.Radius, opts.Separation, opts.Current, opts.Normalized)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "error:", err)
		return 2
	}

	pts, err := sweep.Plane(opts.ZMin, opts.ZMax, opts.ZSteps, opts.RhoMin, opts.RhoMax, opts.RhoSteps)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "error:", err)
		return 2
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
		cmdutil.Warnf(stderr, opts.Quiet, "skipped %d on-conductor grid point(s)", skipped)
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
