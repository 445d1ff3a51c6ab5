package iconsvg

import (
	"strings"

	"github.com/iancoleman/strcase"
)

var jsxAttrNames = map[string]string{
	"class":    "className",
	"for":      "htmlFor",
	"tabindex": "tabIndex",
}

// JSX renders root as a JSX expression, each line prefixed by indent. Bound
// values refer to the `size` and `color` identifiers and the root element
// spreads `props` last so callers can override any attribute.
func JSX(root *Node, indent string) string {
	sb := &strings.Builder{}
	writeJSX(sb, root, indent, true)
	return sb.String()
}

func writeJSX(sb *strings.Builder, n *Node, indent string, isRoot bool) {
	sb.WriteString(indent)
	if n.IsText() {
		if strings.ContainsAny(n.Text, "{}<>") {
			sb.WriteString("{" + jsString(n.Text) + "}")
		} else {
			sb.WriteString(n.Text)
		}
		sb.WriteByte('\n')
		return
	}

	sb.WriteString("<" + n.Name)
	for _, a := range n.Attrs {
		sb.WriteString(" " + jsxName(a.Name) + "=" + jsxValue(a.Value, a.Bind))
	}
	if len(n.Style) > 0 {
		sb.WriteString(" style={{ ")
		for i, d := range n.Style {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(jsxStyleProp(d.Prop) + ": " + jsxExpr(d.Value, d.Bind))
		}
		sb.WriteString(" }}")
	}
	if isRoot {
		sb.WriteString(" {...props}")
	}

	if len(n.Children) == 0 {
		sb.WriteString(" />\n")
		return
	}
	sb.WriteString(">\n")
	for _, c := range n.Children {
		writeJSX(sb, c, indent+"  ", false)
	}
	sb.WriteString(indent + "</" + n.Name + ">\n")
}

func jsxName(name string) string {
	if v, ok := jsxAttrNames[name]; ok {
		return v
	}
	if strings.HasPrefix(name, "data-") || strings.HasPrefix(name, "aria-") {
		return name
	}
	if !strings.ContainsAny(name, "-:") {
		return name
	}
	return strcase.ToLowerCamel(strings.ReplaceAll(name, ":", "-"))
}

func jsxStyleProp(prop string) string {
	if strings.HasPrefix(prop, "--") {
		return jsString(prop)
	}
	return strcase.ToLowerCamel(prop)
}

func jsxValue(v string, bind Binding) string {
	if bind != Literal || strings.ContainsAny(v, `"{}`) {
		return "{" + jsxExpr(v, bind) + "}"
	}
	return `"` + v + `"`
}

func jsxExpr(v string, bind Binding) string {
	switch bind {
	case BindColor:
		return "color"
	case BindSize:
		return "size"
	}
	return jsString(v)
}

func jsString(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `'`, `\'`, "\n", `\n`, "\r", `\r`)
	return "'" + r.Replace(s) + "'"
}
