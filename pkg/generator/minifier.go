package generator

import (
	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/svg"
)

// Minifier shrinks source markup before it is parsed.
type Minifier interface {
	Minify(mediatype string, b []byte) ([]byte, error)
}

type TDMinifier struct {
	Minifier *minify.M
}

func (m *TDMinifier) Minify(mediatype string, b []byte) ([]byte, error) {
	return m.Minifier.Bytes(mediatype, b)
}

type NOOPMinifier struct {
}

func (m *NOOPMinifier) Minify(mediatype string, b []byte) ([]byte, error) {
	return b, nil
}

func newMinifier(enabled bool) Minifier {
	if !enabled {
		return &NOOPMinifier{}
	}

	minifier := minify.New()
	minifier.AddFunc("text/css", css.Minify)
	minifier.AddFunc(svgMediaType, svg.Minify)
	return &TDMinifier{
		Minifier: minifier,
	}
}
