package generator

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/toastate/icongen/pkg/config"
)

func TestScan(t *testing.T) {
	icons := writeIcons(t, map[string]string{
		"light/zap.svg":       bellSVG,
		"light/bell.svg":      bellSVG,
		"light/readme.md":     "# icons",
		"light/draft.svg.bak": bellSVG,
		"filled/bell.svg":     bellSVG,
		"unknown/bell.svg":    bellSVG,
		"filled/nested/x.svg": bellSVG,
	})
	if err := os.Mkdir(filepath.Join(icons, "light", "old.svg"), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	g := NewGenerator(icons, t.TempDir(), config.DefaultConfiguration())
	scanned, err := g.Scan()
	if err != nil {
		t.Fatalf("scan: %v", err)
	}

	if len(scanned) != 2 {
		t.Fatalf("expected light and filled, got %v", scanned)
	}
	if scanned[0].Variant != "light" || scanned[1].Variant != "filled" {
		t.Fatalf("unexpected variant order %v", scanned)
	}
	if want := []string{"bell.svg", "zap.svg"}; !reflect.DeepEqual(scanned[0].Files, want) {
		t.Fatalf("light files: got %v, want %v", scanned[0].Files, want)
	}
	if want := []string{"bell.svg"}; !reflect.DeepEqual(scanned[1].Files, want) {
		t.Fatalf("filled files: got %v, want %v", scanned[1].Files, want)
	}
	if scanned[0].Dir != filepath.Join(icons, "light") {
		t.Fatalf("unexpected folder %s", scanned[0].Dir)
	}
}
