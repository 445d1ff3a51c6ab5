package generator

import (
	"errors"
	"fmt"
	"sync"
	"text/template"

	"github.com/toastate/icongen/pkg/config"
	"github.com/toastate/icongen/pkg/iconsvg"
	"github.com/toastate/icongen/pkg/naming"
)

var (
	ErrIconsDirNotFound = errors.New("icons folder not found")
	ErrInvalidLayout    = errors.New("invalid output layout")
	ErrInvalidConfig    = errors.New("invalid configuration")
	ErrNameCollision    = errors.New("component name collision")
)

// Layout selects where component files are written.
type Layout string

const (
	// LayoutVariant writes icons/<variant>/<Component>.tsx plus a barrel per variant.
	LayoutVariant Layout = "variant"
	// LayoutFlat writes every component to icons/<Component>.tsx.
	LayoutFlat Layout = "flat"
)

func ParseLayout(s string) (Layout, error) {
	switch Layout(s) {
	case LayoutVariant, LayoutFlat:
		return Layout(s), nil
	case "":
		return LayoutVariant, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidLayout, s)
}

type Generator struct {
	initialized bool

	iconsDir string
	outDir   string
	conf     *config.Configuration

	layout       Layout
	naming       naming.Strategy
	preprocessor *iconsvg.Preprocessor
	minifier     Minifier
	templates    *template.Template

	mu       sync.RWMutex
	registry *Registry

	filesWritten int
	bytesWritten int64
}

// NewGenerator returns a generator reading iconsDir and writing outDir. Empty
// directories and a nil conf fall back to config.Config.
func NewGenerator(iconsDir, outDir string, conf *config.Configuration) *Generator {
	return &Generator{
		iconsDir: iconsDir,
		outDir:   outDir,
		conf:     conf,
	}
}

func (g *Generator) IconsDir() string {
	return g.iconsDir
}

func (g *Generator) OutDir() string {
	return g.outDir
}

func (g *Generator) Config() *config.Configuration {
	return g.conf
}

// Registry returns the registry of the last successful run, nil before.
func (g *Generator) Registry() *Registry {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.registry
}

// IconAsset is one source SVG and the component generated from it.
type IconAsset struct {
	Variant   string `json:"variant"`
	Name      string `json:"name"`
	Component string `json:"component"`
	Source    string `json:"-"`
	File      string `json:"file"`
	Filled    bool   `json:"filled"`
}
