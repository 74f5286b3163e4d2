package model

// predeclaredTypes lists Go's universe-scope type names plus the pseudo
// types found in doc-comment annotations.
var predeclaredTypes = map[string]struct{}{
	"any": {}, "bool": {}, "byte": {}, "comparable": {},
	"complex64": {}, "complex128": {}, "error": {},
	"float32": {}, "float64": {},
	"int": {}, "int8": {}, "int16": {}, "int32": {}, "int64": {},
	"rune": {}, "string": {},
	"uint": {}, "uint8": {}, "uint16": {}, "uint32": {}, "uint64": {}, "uintptr": {},
	// doc-comment pseudo types
	"mixed": {}, "void": {}, "null": {}, "object": {}, "array": {},
	"func": {}, "map": {}, "chan": {}, "struct": {}, "interface": {},
}

// predeclaredValues are universe-scope constants and nil.
var predeclaredValues = map[string]struct{}{
	"nil": {}, "iota": {}, "true": {}, "false": {},
}

// IsPredeclared reports whether name is a built-in type or identifier that
// must be attributed to the primitives module.
func IsPredeclared(name string) bool {
	return IsPredeclaredType(name) || isPredeclaredValue(name)
}

// IsPredeclaredType reports whether name is a built-in type.
func IsPredeclaredType(name string) bool {
	_, ok := predeclaredTypes[name]
	return ok
}

func isPredeclaredValue(name string) bool {
	_, ok := predeclaredValues[name]
	return ok
}
