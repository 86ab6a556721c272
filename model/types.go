package model

import (
	"fmt"
	"regexp"
	"strings"
)

// TypeDesc is the structured type-description tree for a declared type.
// The front end parses declaration text into this form once; everything
// downstream (classification, planning, emission) consumes the tree and
// never re-inspects the text.
type TypeDesc struct {
	Name string
	Args []*TypeDesc
}

// String reconstructs the declared spelling of the type.
func (t *TypeDesc) String() string {
	if t == nil {
		return "void"
	}
	if t.Name == "handle" && len(t.Args) == 1 {
		return "handle:" + t.Args[0].Name
	}
	if len(t.Args) == 0 {
		return t.Name
	}
	parts := make([]string, len(t.Args))
	for i, a := range t.Args {
		parts[i] = a.String()
	}
	return t.Name + "<" + strings.Join(parts, ", ") + ">"
}

var primitiveNames = map[string]bool{
	"bool": true, "int32": true, "uint32": true, "int64": true,
	"uint64": true, "float32": true, "float64": true, "void": true,
}

// IsPrimitiveName reports whether name is one of the primitive type names.
func IsPrimitiveName(name string) bool {
	return primitiveNames[name]
}

var (
	identPattern   = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	handlePattern  = regexp.MustCompile(`^handle:([A-Za-z][A-Za-z0-9]*)$`)
	genericPattern = regexp.MustCompile(`^([a-z][a-z0-9_]*)<(.+)>$`)
)

// ParseType parses a declared type string into its structured tree.
//
// Grammar: primitives (bool, int32, uint32, int64, uint64, float32,
// float64, void), string, optional<T>, handle:Kind, shared<T>, pinned<T>,
// and bare identifiers for opaque native types.
func ParseType(s string) (*TypeDesc, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("empty type")
	}

	if m := handlePattern.FindStringSubmatch(s); m != nil {
		return &TypeDesc{Name: "handle", Args: []*TypeDesc{{Name: m[1]}}}, nil
	}

	if m := genericPattern.FindStringSubmatch(s); m != nil {
		inner, err := ParseType(m[2])
		if err != nil {
			return nil, fmt.Errorf("in %s: %w", m[1], err)
		}
		return &TypeDesc{Name: m[1], Args: []*TypeDesc{inner}}, nil
	}

	if !identPattern.MatchString(s) {
		return nil, fmt.Errorf("invalid type %q", s)
	}
	return &TypeDesc{Name: s}, nil
}

// IsWrapper reports whether the tree is a single-argument wrapper with the
// given name (optional, shared, pinned).
func (t *TypeDesc) IsWrapper(name string) bool {
	return t != nil && t.Name == name && len(t.Args) == 1
}

// HandleInner returns the handle kind name and true for handle:Kind trees.
func (t *TypeDesc) HandleInner() (string, bool) {
	if t != nil && t.Name == "handle" && len(t.Args) == 1 {
		return t.Args[0].Name, true
	}
	return "", false
}
