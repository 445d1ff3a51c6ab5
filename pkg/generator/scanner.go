package generator

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/toastate/icongen/internal/tlogger"
	"github.com/toastate/icongen/pkg/naming"
)

// VariantFiles lists the svg files found in the folder of one variant.
type VariantFiles struct {
	Variant string
	Dir     string
	Files   []string
}

// Scan lists the svg files of every configured variant, in variant order then
// directory order. Variants without a folder are skipped.
func (g *Generator) Scan() ([]VariantFiles, error) {
	err := g.Init()
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(g.iconsDir); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrIconsDirNotFound, g.iconsDir)
	}

	var out []VariantFiles
	for _, variant := range g.conf.Variants {
		dir := filepath.Join(g.iconsDir, variant)
		entries, err := os.ReadDir(dir)
		if err != nil {
			if os.IsNotExist(err) {
				tlogger.Debug("msg", "Variant folder not found, skipping", "variant", variant, "path", dir)
				continue
			}
			tlogger.Error("msg", "Failed to read variant folder", "variant", variant, "path", dir, "err", err)
			return nil, err
		}

		vf := VariantFiles{Variant: variant, Dir: dir}
		for _, e := range entries {
			if !e.Type().IsRegular() || !strings.HasSuffix(e.Name(), naming.Ext) {
				continue
			}
			vf.Files = append(vf.Files, e.Name())
		}
		tlogger.Debug("msg", "Variant scanned", "variant", variant, "icons", len(vf.Files))
		out = append(out, vf)
	}
	return out, nil
}
