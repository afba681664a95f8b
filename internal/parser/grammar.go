// Package parser is the front door of the extraction pipeline: it parses a
// source file with tree-sitter and hands the CST to the visitor walker,
// returning the finalized module model.
package parser

import (
	"path/filepath"
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_python "github.com/tree-sitter/tree-sitter-python/bindings/go"
)

// Grammar binds a language name to its tree-sitter grammar and the file
// extensions it claims.
type Grammar struct {
	Name       string
	Language   *sitter.Language
	Extensions []string
}

var grammars = []Grammar{
	{
		Name:       "python",
		Language:   sitter.NewLanguage(tree_sitter_python.Language()),
		Extensions: []string{".py"},
	},
}

// GrammarForPath resolves the grammar responsible for a file, by extension.
func GrammarForPath(path string) (Grammar, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	for _, g := range grammars {
		for _, e := range g.Extensions {
			if e == ext {
				return g, true
			}
		}
	}
	return Grammar{}, false
}
