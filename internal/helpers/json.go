package helpers

import (
	"bytes"
	"encoding/json"
)

// MarshalJson encodes v indented, without html escaping, with a trailing newline
func MarshalJson(v any) ([]byte, error) {
	buf := &bytes.Buffer{}
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	err := enc.Encode(v)
	return buf.Bytes(), err
}
