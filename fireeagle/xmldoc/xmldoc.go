// Package xmldoc provides pluggable XML parsing for Fire Eagle responses.
//
// Two interchangeable handlers are available: an XPath handler built on
// antchfx/xmlquery and a DOM handler built on beevik/etree. Both expose the
// same path-based lookup interface, so callers never depend on which one
// was selected.
package xmldoc

import "fmt"

// Handler names accepted by NewParser. The values match the api_handler
// configuration key.
const (
	HandlerXPath  = "XPath"
	HandlerLibXML = "LibXML"
)

// Document is a parsed XML response supporting path-based lookups.
// Paths use absolute slash notation, e.g. "/ResultSet/Result/city".
type Document interface {
	// Text returns the text content of the first element at path.
	// The second return is false when no such element exists.
	Text(path string) (string, bool)

	// Attr returns the named attribute of the first element at path.
	// The second return is false when the element or attribute is absent.
	Attr(path, name string) (string, bool)
}

// Parser turns raw response bytes into a Document.
type Parser interface {
	Parse(data []byte) (Document, error)
}

// NewParser returns the parser for the given handler name.
func NewParser(handler string) (Parser, error) {
	switch handler {
	case HandlerXPath:
		return &xpathParser{}, nil
	case HandlerLibXML:
		return &domParser{}, nil
	default:
		return nil, fmt.Errorf("unknown XML handler: %q", handler)
	}
}
