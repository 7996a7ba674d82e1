// Package structdata projects organization profiles into schema.org
// JSON-LD documents. Projection is pure: the same profile always yields
// the same document, and a malformed extra-JSON payload fails the whole
// render with no partial output.
package structdata

import (
	"encoding/json"

	"github.com/ormondry/seoforge-backend/internal/schemaorg"
)

// Document wraps a projected root node with the JSON-LD context. A root
// that already carries @context (through an author overlay) keeps it.
func Document(root map[string]any) map[string]any {
	doc := map[string]any{"@context": schemaorg.Context}
	return Overlay(doc, root)
}

// Render encodes a projected root as a JSON-LD document, optionally
// indented for embedding in page templates. encoding/json sorts object
// keys, so identical roots render to identical bytes.
func Render(root map[string]any, indent bool) ([]byte, error) {
	doc := Document(root)
	if indent {
		return json.MarshalIndent(doc, "", "  ")
	}
	return json.Marshal(doc)
}
