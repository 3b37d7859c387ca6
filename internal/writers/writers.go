// internal/writers/writers.go
// Writer goroutines per output format. Text, CSV and JSONL stream row by
// row; JSON buffers to emit a single array.
package writers

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"bfield/internal/output"
	"bfield/internal/sweep"
)

// Formats lists the accepted --output values.
var Formats = []string{"text", "json", "jsonl", "csv"}

// Known reports whether format has a registered writer.
func Known(format string) bool {
	switch format {
	case "text", "json", "jsonl", "csv":
		return true
	}
	return false
}

// Start spins up a writer goroutine for samples in the given format.
// Close the returned channel to finish; the error channel yields the
// first write error (nil on success).
func Start(out io.Writer, format string, header bool, bufSize int) (chan<- sweep.Sample, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan sweep.Sample, bufSize)
	errCh := make(chan error, 1)

	go func() {
		var err error
		switch format {
		case "text":
			err = streamText(out, in, header)
		case "csv":
			err = streamCSV(out, in, header)
		case "jsonl":
			err = streamJSONL(out, in)
		case "json":
			var buf []sweep.Sample
			for s := range in {
				buf = append(buf, s)
			}
			err = output.WriteJSON(out, buf)
		default:
			err = fmt.Errorf("unsupported output %q", format)
		}
		// Drain so senders never block after a write failure.
		for range in {
		}
		errCh <- err
	}()

	return in, errCh
}

func streamText(out io.Writer, in <-chan sweep.Sample, header bool) error {
	bw := bufio.NewWriter(out)
	if header {
		if _, err := fmt.Fprintln(bw, output.Header()); err != nil {
			return err
		}
	}
	for s := range in {
		if _, err := fmt.Fprintln(bw, output.FormatRowTSV(s)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func streamCSV(out io.Writer, in <-chan sweep.Sample, header bool) error {
	// encoding/csv keeps its own quoting rules; reuse the buffered form.
	var buf []sweep.Sample
	for s := range in {
		buf = append(buf, s)
	}
	return output.WriteCSV(out, buf, header)
}

func streamJSONL(out io.Writer, in <-chan sweep.Sample) error {
	bw := bufio.NewWriter(out)
	enc := json.NewEncoder(bw)
	for s := range in {
		if err := enc.Encode(output.ToAPI(s)); err != nil {
			return err
		}
	}
	return bw.Flush()
}
