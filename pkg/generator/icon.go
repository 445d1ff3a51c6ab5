package generator

import (
	"bytes"
	"fmt"
	"os"

	"github.com/toastate/icongen/internal/tlogger"
	"github.com/toastate/icongen/pkg/iconsvg"
	"github.com/toastate/icongen/pkg/naming"
)

const svgMediaType = "image/svg+xml"

type componentData struct {
	Component   string
	Title       string
	Name        string
	Variant     string
	DefaultSize int
	JSX         string
}

// LoadIcon reads the source of a and returns its element tree with the paint
// policy of its variant applied.
func (g *Generator) LoadIcon(a IconAsset) (*iconsvg.Node, error) {
	err := g.Init()
	if err != nil {
		return nil, err
	}

	f, err := os.ReadFile(a.Source)
	if err != nil {
		tlogger.Error("msg", "file error", "file", a.Source, "err", err)
		return nil, err
	}

	f = replaceWindowsCarriageReturn(f)
	f = g.preprocessor.Process(f)

	f, err = g.minifier.Minify(svgMediaType, f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", iconsvg.ErrMalformedSVG, a.Source, err)
	}

	root, err := iconsvg.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", a.Source, err)
	}

	policy := iconsvg.Policy{
		Filled:        a.Filled,
		PreserveFills: g.conf.PreserveDecorativeFills,
	}
	for _, w := range policy.Apply(root) {
		tlogger.Warn("msg", "Decorative fill on outline icon", "file", a.Source, "element", w, "preserved", policy.PreserveFills)
	}
	return root, nil
}

func (g *Generator) emitComponent(a IconAsset) error {
	root, err := g.LoadIcon(a)
	if err != nil {
		return err
	}

	buf := &bytes.Buffer{}
	err = g.templates.ExecuteTemplate(buf, "component.tsx.tmpl", componentData{
		Component:   a.Component,
		Title:       naming.Title(naming.Pascal(a.Name)),
		Name:        a.Name,
		Variant:     a.Variant,
		DefaultSize: g.conf.DefaultSize,
		JSX:         iconsvg.JSX(root, "  "),
	})
	if err != nil {
		return err
	}

	return g.writeFile(a.File, buf.Bytes())
}
