package generator

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"text/template"
	"time"

	"github.com/docker/go-units"
	"github.com/toastate/icongen/internal/tlogger"
	"github.com/toastate/icongen/pkg/config"
	"github.com/toastate/icongen/pkg/iconsvg"
	"github.com/toastate/icongen/pkg/naming"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Init is idempotent, multiple calls will only initialize the generator once
func (g *Generator) Init() error {
	if g.initialized {
		return nil
	}

	if g.conf == nil {
		g.conf = config.Config
	}
	if g.iconsDir == "" {
		g.iconsDir = g.conf.IconsDir
	}
	if g.outDir == "" {
		g.outDir = g.conf.OutDir
	}

	var err error
	g.layout, err = ParseLayout(g.conf.Layout)
	if err != nil {
		tlogger.Error("msg", "Unknown layout", "layout", g.conf.Layout, "err", err)
		return err
	}
	g.naming, err = naming.ParseStrategy(g.conf.Naming)
	if err != nil {
		tlogger.Error("msg", "Unknown naming strategy", "naming", g.conf.Naming, "err", err)
		return err
	}
	if g.layout == LayoutFlat && g.naming == naming.Plain {
		tlogger.Error("msg", "Flat layout needs suffixed names", "layout", g.layout, "naming", g.naming)
		return fmt.Errorf("%w: flat layout with %s names puts every variant in one namespace", ErrInvalidLayout, g.naming)
	}

	if err := g.validateConfig(); err != nil {
		tlogger.Error("msg", "Invalid configuration", "err", err)
		return err
	}

	g.preprocessor = iconsvg.NewPreprocessor(g.conf.ColorKeywords)
	g.minifier = newMinifier(g.conf.Minify)

	g.templates, err = template.ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		tlogger.Error("msg", "Failed to parse templates", "err", err)
		return err
	}

	g.initialized = true
	return nil
}

func (g *Generator) validateConfig() error {
	if len(g.conf.Variants) == 0 {
		return fmt.Errorf("%w: no variants", ErrInvalidConfig)
	}
	seen := map[string]bool{}
	for _, v := range g.conf.Variants {
		if seen[v] {
			return fmt.Errorf("%w: variant %q listed twice", ErrInvalidConfig, v)
		}
		seen[v] = true
		if !naming.IsName(v) || !naming.IsIdentifier(naming.Pascal(v)) {
			return fmt.Errorf("%w: variant %q", ErrInvalidConfig, v)
		}
	}
	if !naming.IsIdentifier(g.conf.DispatchName) {
		return fmt.Errorf("%w: dispatch name %q", ErrInvalidConfig, g.conf.DispatchName)
	}
	if g.conf.DefaultSize <= 0 {
		return fmt.Errorf("%w: default size %d", ErrInvalidConfig, g.conf.DefaultSize)
	}
	return nil
}

// Generate runs the whole pipeline: scan every variant folder, emit one
// component per icon, then write barrels, types and the dispatch component.
// The first error aborts the run.
func (g *Generator) Generate() error {
	err := g.Init()
	if err != nil {
		return err
	}

	if _, err := os.Stat(g.iconsDir); os.IsNotExist(err) {
		tlogger.Error("msg", "Icons folder not found", "path", g.iconsDir, "err", err)
		return fmt.Errorf("%w: %s", ErrIconsDirNotFound, g.iconsDir)
	}

	registry := NewRegistry(g.conf.Variants, g.layout)
	g.filesWritten = 0
	g.bytesWritten = 0

	iconsOut := filepath.Join(g.outDir, "icons")
	if g.conf.Clean {
		err = os.RemoveAll(iconsOut)
		if err != nil {
			<-time.After(time.Millisecond * 20)
			err = os.RemoveAll(iconsOut)
			if err != nil {
				tlogger.Error("msg", "Failed to remove icons output folder", "path", iconsOut, "err", err)
				return err
			}
		}
	}
	err = os.MkdirAll(iconsOut, 0755)
	if err != nil {
		tlogger.Error("msg", "Failed to create output folder", "path", iconsOut, "err", err)
		return err
	}

	tlogger.Info("msg", "Generation started", "path", g.iconsDir)

	scanned, err := g.Scan()
	if err != nil {
		return err
	}

	for _, vf := range scanned {
		registry.MarkScanned(vf.Variant)
		for _, file := range vf.Files {
			asset, err := g.newAsset(vf, file)
			if err != nil {
				tlogger.Error("msg", "Invalid icon name", "file", filepath.Join(vf.Dir, file), "err", err)
				return err
			}
			err = registry.Add(asset)
			if err != nil {
				tlogger.Error("msg", "Component name collision", "file", asset.Source, "err", err)
				return err
			}
			err = g.emitComponent(asset)
			if err != nil {
				tlogger.Error("msg", "Error processing icon", "file", asset.Source, "err", err)
				return err
			}
		}
	}

	err = g.writeIndexes(registry)
	if err != nil {
		return err
	}

	g.mu.Lock()
	g.registry = registry
	g.mu.Unlock()

	tlogger.Info("msg", "Generation finished", "icons", len(registry.All()), "files", g.filesWritten, "size", units.HumanSize(float64(g.bytesWritten)))
	return nil
}

func (g *Generator) newAsset(vf VariantFiles, file string) (IconAsset, error) {
	component, err := naming.ComponentName(file, vf.Variant, g.naming)
	if err != nil {
		return IconAsset{}, err
	}
	a := IconAsset{
		Variant:   vf.Variant,
		Name:      naming.BaseName(file),
		Component: component,
		Source:    filepath.Join(vf.Dir, file),
		Filled:    g.conf.IsFilled(vf.Variant),
	}
	a.File = g.componentFile(a)
	return a, nil
}

// componentFile is the slash separated path of the component of a, relative
// to the output folder.
func (g *Generator) componentFile(a IconAsset) string {
	if g.layout == LayoutFlat {
		return "icons/" + a.Component + ".tsx"
	}
	return "icons/" + a.Variant + "/" + a.Component + ".tsx"
}

// Watch regenerates after every burst of paths received on updates, once no
// update came in for 500ms. Failures are logged, the registry of the last
// successful run stays in place. regenerated, if set, runs after each
// successful run.
func (g *Generator) Watch(updates <-chan string, regenerated func()) {
	for {
		_, ok := <-updates
		if !ok {
			return
		}
	rootFor:
		for {
			select {
			case _, ok := <-updates:
				if !ok {
					return
				}
				continue
			case <-time.After(time.Millisecond * 500):
				break rootFor
			}
		}
		err := g.Generate()
		if err != nil {
			tlogger.Error("msg", "Regeneration failed", "err", err)
			continue
		}
		if regenerated != nil {
			regenerated()
		}
	}
}
