package generator

import (
	"bytes"

	"github.com/toastate/icongen/internal/helpers"
	"github.com/toastate/icongen/internal/tlogger"
	"github.com/toastate/icongen/pkg/naming"
)

type barrelData struct {
	Components []IconAsset
}

type typesData struct {
	Dispatch string
	Names    []string
	Variants []string
}

type dispatchEntry struct {
	Name string
	Ref  string
}

type dispatchVariant struct {
	Variant string
	Entries []dispatchEntry
}

type dispatchData struct {
	Dispatch    string
	DefaultSize int
	Imports     []string
	Table       []dispatchVariant
}

type indexExport struct {
	Component string
	Import    string
}

type indexData struct {
	Dispatch   string
	Components []indexExport
}

type manifest struct {
	Variants []string               `json:"variants"`
	Icons    map[string][]IconAsset `json:"icons"`
}

func (g *Generator) writeIndexes(r *Registry) error {
	if g.layout == LayoutVariant {
		for _, variant := range r.Variants() {
			if !r.Scanned(variant) {
				continue
			}
			err := g.render("barrel.ts.tmpl", "icons/"+variant+"/index.ts", barrelData{Components: r.Assets(variant)})
			if err != nil {
				return err
			}
		}
	}

	err := g.render("types.ts.tmpl", "types.ts", typesData{
		Dispatch: g.conf.DispatchName,
		Names:    r.Names(),
		Variants: r.Variants(),
	})
	if err != nil {
		return err
	}

	err = g.render("dispatch.tsx.tmpl", g.conf.DispatchName+".tsx", g.dispatchData(r))
	if err != nil {
		return err
	}

	idx := indexData{Dispatch: g.conf.DispatchName}
	if g.layout == LayoutFlat {
		for _, a := range r.All() {
			idx.Components = append(idx.Components, indexExport{Component: a.Component, Import: "./icons/" + a.Component})
		}
	}
	err = g.render("index.ts.tmpl", "index.ts", idx)
	if err != nil {
		return err
	}

	if g.conf.Manifest {
		m := manifest{Variants: r.Variants(), Icons: map[string][]IconAsset{}}
		for _, variant := range r.Variants() {
			m.Icons[variant] = append([]IconAsset{}, r.Assets(variant)...)
		}
		data, err := helpers.MarshalJson(m)
		if err != nil {
			tlogger.Error("msg", "Failed to encode manifest", "err", err)
			return err
		}
		err = g.writeFile("manifest.json", data)
		if err != nil {
			return err
		}
	}
	return nil
}

// dispatchData builds the lookup table of the dispatch component. Every
// configured variant gets a row so the table covers the variant type.
func (g *Generator) dispatchData(r *Registry) dispatchData {
	d := dispatchData{
		Dispatch:    g.conf.DispatchName,
		DefaultSize: g.conf.DefaultSize,
	}

	for _, variant := range r.Variants() {
		row := dispatchVariant{Variant: variant}
		assets := r.Assets(variant)

		if g.layout == LayoutVariant && r.Scanned(variant) {
			alias := VariantNamespace(variant)
			d.Imports = append(d.Imports, "import * as "+alias+" from './icons/"+variant+"';")
			for _, a := range assets {
				row.Entries = append(row.Entries, dispatchEntry{Name: a.Name, Ref: alias + "." + a.Component})
			}
		} else {
			for _, a := range assets {
				d.Imports = append(d.Imports, "import { "+a.Component+" } from './"+trimExt(a.File)+"';")
				row.Entries = append(row.Entries, dispatchEntry{Name: a.Name, Ref: a.Component})
			}
		}
		d.Table = append(d.Table, row)
	}
	return d
}

// VariantNamespace is the identifier the dispatch component imports the
// barrel of variant under.
func VariantNamespace(variant string) string {
	return naming.Pascal(variant) + "Icons"
}

func (g *Generator) render(tmpl, rel string, data interface{}) error {
	buf := &bytes.Buffer{}
	err := g.templates.ExecuteTemplate(buf, tmpl, data)
	if err != nil {
		tlogger.Error("msg", "templater", "template", tmpl, "err", err)
		return err
	}
	return g.writeFile(rel, buf.Bytes())
}

func trimExt(file string) string {
	return file[:len(file)-len(".tsx")]
}
