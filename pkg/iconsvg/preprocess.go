package iconsvg

import (
	"regexp"
	"strings"
)

// DefaultColorKeywords are the hardcoded colors drawn in icon sources.
var DefaultColorKeywords = []string{"black", "#000", "#000000"}

var (
	styleDoubleRegexp  = regexp.MustCompile(`(style\s*=\s*")([^"]*)(")`)
	styleSingleRegexp  = regexp.MustCompile(`(style\s*=\s*')([^']*)(')`)
	styleElementRegexp = regexp.MustCompile(`(?is)(<style\b[^>]*>)(.*?)(</style\s*>)`)
)

// Preprocessor rewrites hardcoded color keywords into ColorToken before the
// markup is parsed.
type Preprocessor struct {
	keywords  []string
	attrValue *regexp.Regexp
	cssPaint  *regexp.Regexp
}

func NewPreprocessor(keywords []string) *Preprocessor {
	if len(keywords) == 0 {
		keywords = DefaultColorKeywords
	}
	quoted := make([]string, len(keywords))
	for i, k := range keywords {
		quoted[i] = regexp.QuoteMeta(k)
	}
	alt := strings.Join(quoted, "|")

	return &Preprocessor{
		keywords:  keywords,
		attrValue: regexp.MustCompile(`(?i)(=\s*["'])\s*(?:` + alt + `)\s*(["'])`),
		cssPaint:  regexp.MustCompile(`(?i)\b((?:fill|stroke)\s*:\s*)(?:` + alt + `)(\s*(?:[;}]|!important|$))`),
	}
}

// Process returns a copy of markup where every quoted attribute value and
// every fill/stroke declaration equal to a keyword is replaced by ColorToken.
// Declarations are looked up in style attributes and in <style> elements.
func (p *Preprocessor) Process(markup []byte) []byte {
	out := p.attrValue.ReplaceAll(markup, []byte("${1}"+ColorToken+"${2}"))
	out = styleDoubleRegexp.ReplaceAllFunc(out, p.rewriteStyle(styleDoubleRegexp))
	out = styleSingleRegexp.ReplaceAllFunc(out, p.rewriteStyle(styleSingleRegexp))
	out = styleElementRegexp.ReplaceAllFunc(out, p.rewriteStyleElement)
	return out
}

func (p *Preprocessor) rewriteStyleElement(match []byte) []byte {
	sub := styleElementRegexp.FindSubmatch(match)
	css := p.cssPaint.ReplaceAll(sub[2], []byte("${1}"+ColorToken+"${2}"))
	out := make([]byte, 0, len(sub[1])+len(css)+len(sub[3]))
	out = append(out, sub[1]...)
	out = append(out, css...)
	return append(out, sub[3]...)
}

func (p *Preprocessor) rewriteStyle(re *regexp.Regexp) func([]byte) []byte {
	return func(match []byte) []byte {
		sub := re.FindSubmatch(match)
		decls := strings.Split(string(sub[2]), ";")
		changed := false
		for i, d := range decls {
			j := strings.IndexByte(d, ':')
			if j < 0 {
				continue
			}
			prop := strings.ToLower(strings.TrimSpace(d[:j]))
			if prop != "fill" && prop != "stroke" {
				continue
			}
			if p.isKeyword(strings.TrimSpace(d[j+1:])) {
				decls[i] = d[:j+1] + ColorToken
				changed = true
			}
		}
		if !changed {
			return match
		}
		return []byte(string(sub[1]) + strings.Join(decls, ";") + string(sub[3]))
	}
}

func (p *Preprocessor) isKeyword(v string) bool {
	for _, k := range p.keywords {
		if strings.EqualFold(v, k) {
			return true
		}
	}
	return false
}
