package schema

// scalars maps Kotlin property types to proto2 scalar types. Exact and
// case-sensitive; anything else is treated as a cross-reference.
var scalars = map[string]string{
	"String":  "string",
	"Int":     "int32",
	"Long":    "int64",
	"Boolean": "bool",
	"Float":   "float",
}

// Resolver classifies declared type names as scalars or cross-references
// against the global definition-name set.
type Resolver struct {
	names map[string]bool
}

// NewResolver creates a resolver over the given definition-name set.
func NewResolver(names map[string]bool) *Resolver {
	return &Resolver{names: names}
}

// Resolve maps a declared type name to its proto2 type. Scalars map through
// the fixed table; any other name resolves to itself. The boolean is false
// when the name is neither a scalar nor a discovered definition — the name
// still passes through unchanged so synthesis can proceed.
func (r *Resolver) Resolve(name string) (string, bool) {
	if scalar, ok := scalars[name]; ok {
		return scalar, true
	}
	return name, r.names[name]
}
