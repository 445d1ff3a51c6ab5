package iconsvg

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/xml"
)

var ErrMalformedSVG = errors.New("malformed svg")

// Parse builds the element tree of an SVG document. Comments, doctypes and
// processing instructions are dropped, whitespace-only text is ignored.
func Parse(markup []byte) (*Node, error) {
	// the lexer rewrites newlines inside attribute values in place
	buf := make([]byte, len(markup))
	copy(buf, markup)

	l := xml.NewLexer(parse.NewInputBytes(buf))

	var root, open *Node
	var stack []*Node
	inPI := false

	for {
		tt, data := l.Next()
		switch tt {
		case xml.ErrorToken:
			if err := l.Err(); err != io.EOF {
				return nil, fmt.Errorf("%w: %v", ErrMalformedSVG, err)
			}
			if len(stack) > 0 {
				return nil, fmt.Errorf("%w: unclosed <%s>", ErrMalformedSVG, stack[len(stack)-1].Name)
			}
			if root == nil {
				return nil, fmt.Errorf("%w: no <svg> element", ErrMalformedSVG)
			}
			return root, nil

		case xml.StartTagPIToken:
			inPI = true
		case xml.StartTagClosePIToken:
			inPI = false

		case xml.StartTagToken:
			n := &Node{Name: string(l.Text())}
			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("%w: second root element <%s>", ErrMalformedSVG, n.Name)
				}
				if n.Name != "svg" {
					return nil, fmt.Errorf("%w: root element is <%s>", ErrMalformedSVG, n.Name)
				}
				root = n
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, n)
			}
			stack = append(stack, n)
			open = n

		case xml.AttributeToken:
			if inPI {
				continue
			}
			if open == nil {
				return nil, fmt.Errorf("%w: attribute outside of a tag", ErrMalformedSVG)
			}
			name := string(l.Text())
			value := unquote(string(l.AttrVal()))
			if name == "style" {
				open.Style = append(open.Style, parseStyle(value)...)
				continue
			}
			open.Attrs = append(open.Attrs, Attr{Name: name, Value: value})

		case xml.StartTagCloseToken:
			open = nil
		case xml.StartTagCloseVoidToken:
			open = nil
			stack = stack[:len(stack)-1]

		case xml.EndTagToken:
			name := string(l.Text())
			if len(stack) == 0 {
				return nil, fmt.Errorf("%w: unexpected </%s>", ErrMalformedSVG, name)
			}
			if top := stack[len(stack)-1]; top.Name != name {
				return nil, fmt.Errorf("%w: </%s> closes <%s>", ErrMalformedSVG, name, top.Name)
			}
			stack = stack[:len(stack)-1]

		case xml.TextToken, xml.CDATAToken:
			text := strings.TrimSpace(string(data))
			if tt == xml.CDATAToken {
				text = strings.TrimSpace(string(l.Text()))
			}
			if text == "" {
				continue
			}
			if len(stack) == 0 {
				return nil, fmt.Errorf("%w: text outside of <svg>", ErrMalformedSVG)
			}
			parent := stack[len(stack)-1]
			parent.Children = append(parent.Children, &Node{Text: text})
		}
	}
}

func unquote(v string) string {
	if len(v) == 0 {
		return v
	}
	if q := v[0]; q == '"' || q == '\'' {
		v = v[1:]
		if len(v) > 0 && v[len(v)-1] == q {
			v = v[:len(v)-1]
		}
	}
	return v
}
