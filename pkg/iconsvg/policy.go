package iconsvg

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var cssFillRegexp = regexp.MustCompile(`(?i)\b(fill\s*:\s*)currentColor`)

// Policy decides how paint attributes are bound to the component color.
//
// Filled icons bind fill and stroke to the color. Outline icons force fill to
// none and only bind stroke. Outline fills using another color than ColorToken
// are decorative: kept when PreserveFills is set, otherwise forced to none.
type Policy struct {
	Filled        bool
	PreserveFills bool
}

// Apply rewrites root in place and returns a description of every decorative
// fill it met on an outline icon.
//
// Paint set to ColorToken inside <style> elements resolves against the CSS
// color property, so the root then binds color as well.
func (p Policy) Apply(root *Node) []string {
	w, okW := userUnits(root.Attr("width"))
	h, okH := userUnits(root.Attr("height"))
	if _, ok := root.Attr("viewBox"); !ok && okW && okH {
		root.SetAttr("viewBox", fmt.Sprintf("0 0 %s %s", w, h), Literal)
	}
	for _, name := range []string{"width", "height", "fill", "stroke"} {
		root.RemoveAttr(name)
		root.removeDecl(name)
	}

	root.Attrs = append(root.Attrs,
		Attr{Name: "width", Bind: BindSize},
		Attr{Name: "height", Bind: BindSize},
	)
	if p.Filled {
		root.Attrs = append(root.Attrs, Attr{Name: "fill", Bind: BindColor})
	} else {
		root.Attrs = append(root.Attrs, Attr{Name: "fill", Value: "none"})
	}
	root.Attrs = append(root.Attrs, Attr{Name: "stroke", Bind: BindColor})

	if p.bindStyleElements(root) {
		root.RemoveAttr("color")
		root.Attrs = append(root.Attrs, Attr{Name: "color", Bind: BindColor})
	}

	var warnings []string
	for _, c := range root.Children {
		c.Walk(func(n *Node) {
			for i := range n.Attrs {
				a := &n.Attrs[i]
				if a.Name != "fill" && a.Name != "stroke" {
					continue
				}
				orig := a.Value
				var warn bool
				a.Value, a.Bind, warn = p.paint(a.Name, a.Value)
				if warn {
					warnings = append(warnings, fmt.Sprintf("<%s %s=%q>", n.Name, a.Name, orig))
				}
			}
			for i := range n.Style {
				d := &n.Style[i]
				if d.Prop != "fill" && d.Prop != "stroke" {
					continue
				}
				orig := d.Value
				var warn bool
				d.Value, d.Bind, warn = p.paint(d.Prop, d.Value)
				if warn {
					warnings = append(warnings, fmt.Sprintf("<%s style=\"%s:%s\">", n.Name, d.Prop, orig))
				}
			}
		})
	}
	return warnings
}

func (p Policy) paint(prop, value string) (string, Binding, bool) {
	if strings.EqualFold(value, ColorToken) {
		if prop == "fill" && !p.Filled {
			return "none", Literal, false
		}
		return "", BindColor, false
	}
	if prop == "stroke" || p.Filled {
		return value, Literal, false
	}
	v := strings.ToLower(value)
	if v == "" || v == "none" || v == "transparent" || strings.HasPrefix(v, "url(") {
		return value, Literal, false
	}
	if p.PreserveFills {
		return value, Literal, true
	}
	return "none", Literal, true
}

// bindStyleElements forces outline fills of <style> elements to none and
// reports whether any stylesheet still paints with ColorToken.
func (p Policy) bindStyleElements(root *Node) bool {
	bound := false
	root.Walk(func(n *Node) {
		if n.Name != "style" {
			return
		}
		for _, c := range n.Children {
			if !c.IsText() {
				continue
			}
			if !p.Filled {
				c.Text = cssFillRegexp.ReplaceAllString(c.Text, "${1}none")
			}
			if strings.Contains(strings.ToLower(c.Text), strings.ToLower(ColorToken)) {
				bound = true
			}
		}
	})
	return bound
}

// userUnits returns a root size attribute as a plain number, px being the
// only unit that maps onto viewBox coordinates.
func userUnits(v string, ok bool) (string, bool) {
	if !ok {
		return "", false
	}
	v = strings.TrimSuffix(strings.TrimSpace(v), "px")
	if _, err := strconv.ParseFloat(v, 64); err != nil {
		return "", false
	}
	return v, true
}
