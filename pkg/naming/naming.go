// Package naming derives component identifiers from icon file names.
//
// The same functions are used when emitting components, when building the
// dispatch table and when the preview server resolves a name, so an icon is
// always reachable under the identifier it was generated with.
package naming

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/fatih/camelcase"
	"github.com/iancoleman/strcase"
)

// Ext is the extension of icon source files.
const Ext = ".svg"

var (
	ErrInvalidName     = errors.New("invalid component name")
	ErrUnknownStrategy = errors.New("unknown naming strategy")
)

// Strategy selects how the variant takes part in a component identifier.
type Strategy string

const (
	// Plain names components after the icon only, variants are scoped by folder.
	Plain Strategy = "plain"
	// Suffixed appends the variant, for a single flat namespace.
	Suffixed Strategy = "suffixed"
)

var (
	identifierRegexp = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)
	// icon and variant names end up in single quoted TypeScript literals and in paths
	nameRegexp = regexp.MustCompile(`^[a-z0-9]+([-_][a-z0-9]+)*$`)
)

func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case Plain, Suffixed:
		return Strategy(s), nil
	case "":
		return Plain, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
}

// BaseName strips the directory and the svg extension from a file name.
func BaseName(file string) string {
	if i := strings.LastIndexAny(file, `/\`); i >= 0 {
		file = file[i+1:]
	}
	return strings.TrimSuffix(file, Ext)
}

// Pascal converts a kebab-case name to PascalCase. Names starting with a digit
// are prefixed with "Icon" so they stay valid identifiers.
func Pascal(s string) string {
	id := strcase.ToCamel(s)
	if id != "" && id[0] >= '0' && id[0] <= '9' {
		id = "Icon" + id
	}
	return id
}

// ComponentName derives the identifier of the component generated for file
// (with or without extension) in variant.
func ComponentName(file, variant string, st Strategy) (string, error) {
	name := BaseName(file)
	if !IsName(name) {
		return "", fmt.Errorf("%w: %q is not a kebab-case name", ErrInvalidName, file)
	}
	id := Pascal(name)
	if st == Suffixed {
		id += Pascal(variant)
	}
	if !identifierRegexp.MatchString(id) {
		return "", fmt.Errorf("%w: %q from %q", ErrInvalidName, id, file)
	}
	return id, nil
}

// IsName reports whether s is a lower case kebab-case (or snake_case) name,
// as icon file names and variant folders must be.
func IsName(s string) bool {
	return nameRegexp.MatchString(s)
}

// IsIdentifier reports whether id can name a TypeScript binding.
func IsIdentifier(id string) bool {
	return identifierRegexp.MatchString(id)
}

// Title splits an identifier into space separated words: ArrowLeft becomes "Arrow Left".
func Title(id string) string {
	return strings.Join(camelcase.Split(id), " ")
}
