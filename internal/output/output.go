// internal/output/output.go
// Row encoders for evaluated samples: TSV text, JSON array, CSV.
// JSONL lives in writers (streaming).
package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"bfield/internal/sweep"
)

// APISample is the stable wire form of one evaluated point.
type APISample struct {
	Z     float64 `json:"z"`
	Rho   float64 `json:"rho"`
	Bz    float64 `json:"bz"`
	Brho  float64 `json:"brho"`
	Bnorm float64 `json:"bnorm"`
}

// ToAPI converts an internal sample to its wire form.
func ToAPI(s sweep.Sample) APISample {
	return APISample{Z: s.Z, Rho: s.Rho, Bz: s.Bz, Brho: s.Brho, Bnorm: s.Bnorm}
}

// Header returns the TSV header line (no trailing newline).
func Header() string { return "z\trho\tbz\tbrho\tbnorm" }

// FormatRowTSV returns one sample as a TSV row (no trailing newline).
func FormatRowTSV(s sweep.Sample) string {
	return fmt.Sprintf("%g\t%g\t%g\t%g\t%g", s.Z, s.Rho, s.Bz, s.Brho, s.Bnorm)
}

// WriteText writes TSV rows with an optional header.
func WriteText(w io.Writer, rows []sweep.Sample, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, Header()); err != nil {
			return err
		}
	}
	for _, s := range rows {
		if _, err := fmt.Fprintln(w, FormatRowTSV(s)); err != nil {
			return err
		}
	}
	return nil
}

// WriteJSON writes all rows as one indented JSON array.
func WriteJSON(w io.Writer, rows []sweep.Sample) error {
	api := make([]APISample, len(rows))
	for i, s := range rows {
		api[i] = ToAPI(s)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(api)
}

// WriteCSV writes RFC 4180 rows with an optional header.
func WriteCSV(w io.Writer, rows []sweep.Sample, header bool) error {
	cw := csv.NewWriter(w)
	if header {
		if err := cw.Write([]string{"z", "rho", "bz", "brho", "bnorm"}); err != nil {
			return err
		}
	}
	rec := make([]string, 5)
	for _, s := range rows {
		for i, v := range []float64{s.Z, s.Rho, s.Bz, s.Brho, s.Bnorm} {
			rec[i] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
