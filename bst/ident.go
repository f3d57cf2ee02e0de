package bst

import (
	"fmt"

	"github.com/dave/dst"
)

// IdentTracker hands out identifiers within one scope, renaming a name that
// is already taken by appending a counter. A dst node may appear only once in
// a tree, so every call returns a fresh *dst.Ident.
type IdentTracker map[string][]string

func (it IdentTracker) Get(name string) *dst.Ident {
	if names, ok := it[name]; ok {
		return dst.NewIdent(names[0])
	}
	it[name] = []string{name}
	return dst.NewIdent(name)
}

func (it IdentTracker) New(name string) *dst.Ident {
	if names, ok := it[name]; ok {
		incName := fmt.Sprintf("%s%d", name, len(names))
		it[name] = append(names, incName)
		it[incName] = []string{incName}
		return dst.NewIdent(incName)
	}
	return it.Get(name)
}

// Reserve marks names as taken without producing identifiers.
func (it IdentTracker) Reserve(names ...string) {
	for _, name := range names {
		it.Get(name)
	}
}
