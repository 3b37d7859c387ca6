// internal/integration/integration_test.go
package integration

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"bfield/internal/app"
	"bfield/internal/mapapp"
)

const mu0 = 4 * math.Pi * 1e-7

func runApp(t *testing.T, args ...string) (string, string, int) {
	t.Helper()
	var out, errB bytes.Buffer
	code := app.Run(args, &out, &errB)
	return out.String(), errB.String(), code
}

func TestPointModeHelmholtzCenter(t *testing.T) {
	out, errS, code := runApp(t,
		"--coil", "helmholtz",
		"--radius", "0.05",
		"--current", "1",
		"--z", "0", "--rho", "0",
	)
	if code != 0 {
		t.Fatalf("exit %d, err=%s", code, errS)
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("want header+1 row, got %q", out)
	}
	cols := strings.Split(lines[1], "\t")
	if len(cols) != 5 {
		t.Fatalf("row = %q", lines[1])
	}
	bz, err := strconv.ParseFloat(cols[2], 64)
	if err != nil {
		t.Fatal(err)
	}
	want := math.Pow(0.8, 1.5) * mu0 / 0.05
	if !scalar.EqualWithinRel(bz, want, 1e-9) {
		t.Errorf("center Bz = %g, want %g", bz, want)
	}
}

func TestSweepJSON(t *testing.T) {
	out, errS, code := runApp(t,
		"--coil", "antihelmholtz",
		"--z-min", "-0.02", "--z-max", "0.02", "--steps", "5",
		"--radius", "0.05",
		"--output", "json",
	)
	if code != 0 {
		t.Fatalf("exit %d, err=%s", code, errS)
	}
	var rows []struct {
		Z  float64 `json:"z"`
		Bz float64 `json:"bz"`
	}
	if err := json.Unmarshal([]byte(out), &rows); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(rows) != 5 {
		t.Fatalf("rows = %d", len(rows))
	}
	// Gradient coil: zero at the midplane, odd in z.
	if !scalar.EqualWithinAbs(rows[2].Bz, 0, 1e-12) {
		t.Errorf("midplane Bz = %g", rows[2].Bz)
	}
	if !scalar.EqualWithinRel(rows[0].Bz, -rows[4].Bz, 1e-9) {
		t.Errorf("sweep not odd in z: %g vs %g", rows[0].Bz, rows[4].Bz)
	}
}

func TestParallelMatchesSerial(t *testing.T) {
	run := func(threads string) string {
		out, errS, code := runApp(t,
			"--z-min", "-1", "--z-max", "1", "--steps", "101",
			"--rho", "0.3",
			"--threads", threads,
			"--output", "jsonl",
		)
		if code != 0 {
			t.Fatalf("exit %d err %s", code, errS)
		}
		return out
	}
	if run("1") != run("8") {
		t.Fatal("parallel output differs from serial")
	}
}

func TestNormalizedMatchesShape(t *testing.T) {
	out, _, code := runApp(t, "--normalized", "--z", "0", "--rho", "0", "--no-header")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	cols := strings.Fields(strings.TrimSpace(out))
	bz, err := strconv.ParseFloat(cols[2], 64)
	if err != nil {
		t.Fatal(err)
	}
	if bz != 1 { // unit-radius loop center, normalized
		t.Errorf("normalized center = %g, want 1", bz)
	}
}

func TestOnConductorFails(t *testing.T) {
	_, errS, code := runApp(t, "--z", "0", "--rho", "1")
	if code != 1 {
		t.Fatalf("exit %d, want 1", code)
	}
	if !strings.Contains(errS, "on conductor") {
		t.Errorf("stderr = %q", errS)
	}
}

func TestOnConductorSkipped(t *testing.T) {
	out, errS, code := runApp(t, "--z", "0", "--rho", "1", "--skip-singular")
	if code != 0 {
		t.Fatalf("exit %d, err=%s", code, errS)
	}
	if !strings.Contains(errS, "WARN") {
		t.Errorf("expected skip warning, stderr = %q", errS)
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 1 { // header only
		t.Errorf("expected no data rows, got %q", out)
	}
}

func TestUsageErrors(t *testing.T) {
	if _, _, code := runApp(t, "--coil", "toroid"); code != 2 {
		t.Errorf("unknown coil: exit %d, want 2", code)
	}
	if _, _, code := runApp(t, "--output", "yaml"); code != 2 {
		t.Errorf("unknown output: exit %d, want 2", code)
	}
}

func TestInvalidGeometryExitCode(t *testing.T) {
	_, errS, code := runApp(t, "--radius", "-1")
	if code != 1 {
		t.Fatalf("exit %d, want 1 (stderr %q)", code, errS)
	}
	if !strings.Contains(errS, "invalid geometry") {
		t.Errorf("stderr = %q", errS)
	}
}

func TestVersion(t *testing.T) {
	out, _, code := runApp(t, "--version")
	if code != 0 || !strings.Contains(out, "bfield version") {
		t.Fatalf("version: exit %d, out %q", code, out)
	}
}

func TestHelp(t *testing.T) {
	out, _, code := runApp(t, "-h")
	if code != 0 || !strings.Contains(out, "Usage of bfield") {
		t.Fatalf("help: exit %d, out %q", code, out)
	}
}

func TestMapGrid(t *testing.T) {
	var out, errB bytes.Buffer
	code := mapapp.Run([]string{
		"--coil", "helmholtz",
		"--radius", "0.05",
		"--z-min", "-0.05", "--z-max", "0.05", "--z-steps", "3",
		"--rho-min", "0", "--rho-max", "0.02", "--rho-steps", "3",
		"--output", "json",
	}, &out, &errB)
	if code != 0 {
		t.Fatalf("exit %d, err=%s", code, errB.String())
	}
	var rows []struct {
		Z   float64 `json:"z"`
		Rho float64 `json:"rho"`
	}
	if err := json.Unmarshal(out.Bytes(), &rows); err != nil {
		t.Fatal(err)
	}
	if len(rows) != 9 {
		t.Fatalf("rows = %d, want 9", len(rows))
	}
	// Grid order: z outer, rho inner.
	if rows[0].Z != -0.05 || rows[1].Rho != 0.01 || rows[3].Z != 0 {
		t.Errorf("grid order: %+v", rows[:4])
	}
}

func TestMapSkipsWirePoints(t *testing.T) {
	// Grid hits the loop wire at (z=0, rho=1); default skip-singular drops it.
	var out, errB bytes.Buffer
	code := mapapp.Run([]string{
		"--coil", "loop",
		"--z-min", "0", "--z-max", "0", "--z-steps", "1",
		"--rho-min", "0", "--rho-max", "2", "--rho-steps", "3",
		"--output", "jsonl",
	}, &out, &errB)
	if code != 0 {
		t.Fatalf("exit %d, err=%s", code, errB.String())
	}
	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("want 2 surviving rows, got %q", out.String())
	}
	if !strings.Contains(errB.String(), "WARN") {
		t.Errorf("expected skip warning, stderr = %q", errB.String())
	}
}
