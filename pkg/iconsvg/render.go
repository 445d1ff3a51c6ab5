package iconsvg

import (
	"html"
	"strconv"
	"strings"
)

const svgNamespace = "http://www.w3.org/2000/svg"

// Values are the component parameters bound into a rendered SVG.
type Values struct {
	Color string
	Size  int
}

// Render writes root as an SVG document with bound attributes replaced by v,
// which is what a generated component draws for the same parameters.
func Render(root *Node, v Values) []byte {
	sb := &strings.Builder{}
	writeSVG(sb, root, v, true)
	return []byte(sb.String())
}

func writeSVG(sb *strings.Builder, n *Node, v Values, isRoot bool) {
	if n.IsText() {
		sb.WriteString(n.Text)
		return
	}

	sb.WriteString("<" + n.Name)
	if isRoot {
		if _, ok := n.Attr("xmlns"); !ok {
			sb.WriteString(` xmlns="` + svgNamespace + `"`)
		}
	}
	for _, a := range n.Attrs {
		sb.WriteString(" " + a.Name + `="` + bound(a.Value, a.Bind, v) + `"`)
	}
	if len(n.Style) > 0 {
		decls := make([]string, len(n.Style))
		for i, d := range n.Style {
			decls[i] = d.Prop + ":" + bound(d.Value, d.Bind, v)
		}
		sb.WriteString(` style="` + strings.Join(decls, ";") + `"`)
	}

	if len(n.Children) == 0 {
		sb.WriteString("/>")
		return
	}
	sb.WriteByte('>')
	for _, c := range n.Children {
		writeSVG(sb, c, v, false)
	}
	sb.WriteString("</" + n.Name + ">")
}

func bound(value string, bind Binding, v Values) string {
	switch bind {
	case BindColor:
		return html.EscapeString(v.Color)
	case BindSize:
		return strconv.Itoa(v.Size)
	}
	return strings.ReplaceAll(value, `"`, "&quot;")
}
