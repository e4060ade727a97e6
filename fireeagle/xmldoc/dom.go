package xmldoc

import (
	"fmt"

	"github.com/beevik/etree"
)

// domParser implements Parser using beevik/etree. This is the "LibXML"
// handler, named after the DOM backend of the original service client.
type domParser struct{}

func (p *domParser) Parse(data []byte) (Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("dom handler: %w", err)
	}
	if doc.Root() == nil {
		return nil, fmt.Errorf("dom handler: document has no root element")
	}
	return &domDocument{doc: doc}, nil
}

type domDocument struct {
	doc *etree.Document
}

func (d *domDocument) Text(path string) (string, bool) {
	el := d.doc.FindElement(path)
	if el == nil {
		return "", false
	}
	return el.Text(), true
}

func (d *domDocument) Attr(path, name string) (string, bool) {
	el := d.doc.FindElement(path)
	if el == nil {
		return "", false
	}
	attr := el.SelectAttr(name)
	if attr == nil {
		return "", false
	}
	return attr.Value, true
}
