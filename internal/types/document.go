// Package types provides shared types used across multiple packages.
// This package has no dependencies on other outline packages to avoid import cycles.
package types

// Heading is one entry in a document outline.
type Heading struct {
	Level string `json:"level"` // "H1".."H6"
	Text  string `json:"text"`
	Page  int    `json:"page"` // 1-based page number
}

// Document is the output record produced for one input document.
// Outline is ordered by reading position: page ascending, then vertical
// position ascending within a page.
type Document struct {
	Title   string    `json:"title"`
	Outline []Heading `json:"outline"`
}

// NewDocument returns a Document with a non-nil outline so an empty
// outline serializes as [] rather than null.
func NewDocument(title string, outline []Heading) Document {
	if outline == nil {
		outline = []Heading{}
	}
	return Document{Title: title, Outline: outline}
}
