package export

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/polychaos/internal/basis"
	"github.com/san-kum/polychaos/internal/dist"
	"github.com/san-kum/polychaos/internal/orth"
)

func TestJSONRoundTrip(t *testing.T) {
	e, err := orth.Orthogonal(3, dist.NewNormal(0, 1))
	if err != nil {
		t.Fatalf("building basis: %v", err)
	}

	path := filepath.Join(t.TempDir(), "hermite.json")
	if err := ExportJSON(path, e); err != nil {
		t.Fatalf("export: %v", err)
	}

	back, err := ImportJSON(path)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if len(back) != len(e) {
		t.Fatalf("expected %d polynomials, got %d", len(e), len(back))
	}
	for i := range e {
		if !e[i].Equal(back[i]) {
			t.Errorf("entry %d: expected %s, got %s", i, e[i], back[i])
		}
	}
}

func TestWriteCSV(t *testing.T) {
	e, err := basis.Monomials(0, 2, 2, 1)
	if err != nil {
		t.Fatalf("building basis: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, e); err != nil {
		t.Fatalf("write csv: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if lines[0] != "entry,e0,e1,coeff" {
		t.Errorf("unexpected header %q", lines[0])
	}
	// One row per term: each monomial has exactly one.
	if len(lines) != len(e)+1 {
		t.Errorf("expected %d rows, got %d", len(e)+1, len(lines))
	}
}
