package catalog

import (
	"embed"
	"io/fs"
)

//go:embed all:builtin
var builtinFS embed.FS

// BuiltinSource is the Source of the catalog compiled into the binary.
const BuiltinSource = "builtin"

// Builtin returns the catalog shipped with the binary.
func Builtin() *Catalog {
	sub, err := fs.Sub(builtinFS, "builtin")
	if err != nil {
		// fs.Sub only fails on an invalid path literal.
		panic(err)
	}

	return New(sub, BuiltinSource)
}
