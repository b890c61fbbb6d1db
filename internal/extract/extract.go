// Package extract defines the "HTML to inner text" collaborator the
// tokenizer consumes. The spec explicitly scopes HTML-to-text normalization
// out of the core as an external library function, so this package only
// owns the interface and two thin adapters over real extraction libraries.
package extract

import "errors"

// ErrEmptyHTML is returned by TextExtractor implementations when given an
// empty document.
var ErrEmptyHTML = errors.New("extract: empty HTML input")

// TextExtractor reduces an HTML document to its main inner text, discarding
// markup, navigation chrome and boilerplate.
type TextExtractor interface {
	Extract(rawHTML string) (string, error)
}
