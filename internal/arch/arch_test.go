// internal/arch/arch_test.go
package arch

import (
	"bytes"
	"encoding/json"
	"io"
	"os/exec"
	"strings"
	"testing"
)

type pkg struct {
	ImportPath string
	Imports    []string
	Standard   bool
}

// Keeps the dependency arrows pointing one way: core knows nothing of the
// apps, sweep/output/writers know nothing of CLI parsing, and only the
// app layers may wire everything together.
func TestImportBoundaries(t *testing.T) {
	cmd := exec.Command("go", "list", "-json", "./...")
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		t.Fatalf("go list: %v", err)
	}
	dec := json.NewDecoder(&out)

	bans := map[string][]string{
		"bfield/internal/sweep": {
			"bfield/internal/cli", "bfield/internal/mapcli",
			"bfield/internal/app", "bfield/internal/mapapp",
			"bfield/internal/output", "bfield/internal/writers",
			"bfield/cmd/",
		},
		"bfield/internal/output": {
			"bfield/internal/cli", "bfield/internal/mapcli",
			"bfield/internal/app", "bfield/internal/mapapp",
			"bfield/internal/writers", "bfield/cmd/",
		},
		"bfield/internal/writers": {
			"bfield/internal/cli", "bfield/internal/mapcli",
			"bfield/internal/app", "bfield/internal/mapapp",
			"bfield/cmd/",
		},
		"bfield/internal/common": {
			"bfield/internal/app", "bfield/internal/mapapp",
			"bfield/internal/cli", "bfield/internal/mapcli",
			"bfield/cmd/",
		},
	}

	for {
		var p pkg
		if err := dec.Decode(&p); err != nil {
			if err == io.EOF {
				break
			}
			t.Fatalf("decode: %v", err)
		}
		if p.Standard {
			continue
		}
		banned, ok := bans[p.ImportPath]
		if !ok {
			continue
		}
		for _, imp := range p.Imports {
			for _, b := range banned {
				if imp == b || (strings.HasSuffix(b, "/") && strings.HasPrefix(imp, b)) {
					t.Errorf("%s must not import %s", p.ImportPath, imp)
				}
			}
		}
	}
}
