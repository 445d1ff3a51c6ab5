// Package iconsvg turns icon SVG markup into an element tree that can be
// rendered as JSX for a component or as plain SVG for previews.
package iconsvg

import "strings"

// ColorToken is the paint value bound to the component color.
const ColorToken = "currentColor"

// Binding tells a renderer where an attribute value comes from.
type Binding int

const (
	Literal Binding = iota
	BindColor
	BindSize
)

type Attr struct {
	Name  string
	Value string
	Bind  Binding
}

// Decl is a single declaration of a style attribute.
type Decl struct {
	Prop  string
	Value string
	Bind  Binding
}

// Node is an element, or a text node when Name is empty.
type Node struct {
	Name     string
	Attrs    []Attr
	Style    []Decl
	Children []*Node
	Text     string
}

func (n *Node) IsText() bool {
	return n.Name == ""
}

func (n *Node) Attr(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// SetAttr replaces the attribute in place, or appends it.
func (n *Node) SetAttr(name, value string, bind Binding) {
	for i := range n.Attrs {
		if n.Attrs[i].Name == name {
			n.Attrs[i].Value = value
			n.Attrs[i].Bind = bind
			return
		}
	}
	n.Attrs = append(n.Attrs, Attr{Name: name, Value: value, Bind: bind})
}

func (n *Node) RemoveAttr(name string) {
	attrs := n.Attrs[:0]
	for _, a := range n.Attrs {
		if a.Name != name {
			attrs = append(attrs, a)
		}
	}
	n.Attrs = attrs
}

func (n *Node) removeDecl(prop string) {
	style := n.Style[:0]
	for _, d := range n.Style {
		if d.Prop != prop {
			style = append(style, d)
		}
	}
	n.Style = style
}

// Walk calls fn on n and every element below it, depth first.
func (n *Node) Walk(fn func(*Node)) {
	if n.IsText() {
		return
	}
	fn(n)
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

func parseStyle(s string) []Decl {
	var decls []Decl
	for _, part := range strings.Split(s, ";") {
		i := strings.IndexByte(part, ':')
		if i < 0 {
			continue
		}
		prop := strings.TrimSpace(part[:i])
		value := strings.TrimSpace(part[i+1:])
		if prop == "" {
			continue
		}
		decls = append(decls, Decl{Prop: strings.ToLower(prop), Value: value})
	}
	return decls
}
