package generator

import "fmt"

// Registry holds every icon seen during one run: the distinct icon names in
// first-seen order and, per variant, the generated components.
type Registry struct {
	layout   Layout
	variants []string

	names []string
	seen  map[string]struct{}

	scanned map[string]bool
	order   []IconAsset
	assets  map[string][]IconAsset
	byName  map[string]map[string]IconAsset

	// scope -> component -> asset, a scope is one variant folder or the flat folder
	scopes map[string]map[string]IconAsset
}

func NewRegistry(variants []string, layout Layout) *Registry {
	return &Registry{
		layout:   layout,
		variants: variants,
		seen:     map[string]struct{}{},
		scanned:  map[string]bool{},
		assets:   map[string][]IconAsset{},
		byName:   map[string]map[string]IconAsset{},
		scopes:   map[string]map[string]IconAsset{},
	}
}

// MarkScanned records that the folder of variant exists.
func (r *Registry) MarkScanned(variant string) {
	r.scanned[variant] = true
}

func (r *Registry) Scanned(variant string) bool {
	return r.scanned[variant]
}

func (r *Registry) scope(variant string) string {
	if r.layout == LayoutFlat {
		return ""
	}
	return variant
}

// Add registers a, rejecting it when its component name is already used in
// the same namespace.
func (r *Registry) Add(a IconAsset) error {
	scope := r.scope(a.Variant)
	components, ok := r.scopes[scope]
	if !ok {
		components = map[string]IconAsset{}
		r.scopes[scope] = components
	}
	if prev, ok := components[a.Component]; ok {
		return fmt.Errorf("%w: %s generated by %s/%s and %s/%s", ErrNameCollision, a.Component, prev.Variant, prev.Name, a.Variant, a.Name)
	}
	components[a.Component] = a

	if _, ok := r.seen[a.Name]; !ok {
		r.seen[a.Name] = struct{}{}
		r.names = append(r.names, a.Name)
	}

	r.order = append(r.order, a)
	r.assets[a.Variant] = append(r.assets[a.Variant], a)
	if r.byName[a.Variant] == nil {
		r.byName[a.Variant] = map[string]IconAsset{}
	}
	r.byName[a.Variant][a.Name] = a
	return nil
}

// Names returns the distinct icon names in first-seen order.
func (r *Registry) Names() []string {
	return r.names
}

func (r *Registry) Variants() []string {
	return r.variants
}

func (r *Registry) Assets(variant string) []IconAsset {
	return r.assets[variant]
}

// All returns every asset in generation order.
func (r *Registry) All() []IconAsset {
	return r.order
}

func (r *Registry) Lookup(name, variant string) (IconAsset, bool) {
	a, ok := r.byName[variant][name]
	return a, ok
}
