package views

import "github.com/mesh-intelligence/octofit/pkg/types"

// FieldSpec is one logical field: candidate keys tried in order, first
// truthy value wins, Default when none is present.
type FieldSpec struct {
	Keys    []string
	Default string
}

// Field builds a FieldSpec with no default.
func Field(keys ...string) FieldSpec {
	return FieldSpec{Keys: keys}
}

// Or returns a copy of f with def as its default.
func (f FieldSpec) Or(def string) FieldSpec {
	f.Default = def
	return f
}

// Resolve returns the first truthy value among the candidate keys.
func (f FieldSpec) Resolve(e types.Entity) (any, bool) {
	for _, k := range f.Keys {
		if v, ok := e[k]; ok && types.Truthy(v) {
			return v, true
		}
	}
	return nil, false
}

// Text returns the resolved value as display text, or the default.
func (f FieldSpec) Text(e types.Entity) string {
	if v, ok := f.Resolve(e); ok {
		return types.Text(v)
	}
	return f.Default
}
