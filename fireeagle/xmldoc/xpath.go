package xmldoc

import (
	"bytes"
	"fmt"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
)

// xpathParser implements Parser using antchfx/xmlquery.
type xpathParser struct{}

func (p *xpathParser) Parse(data []byte) (Document, error) {
	root, err := xmlquery.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("xpath handler: %w", err)
	}
	return &xpathDocument{root: root}, nil
}

type xpathDocument struct {
	root *xmlquery.Node
}

func (d *xpathDocument) find(path string) *xmlquery.Node {
	expr, err := xpath.Compile(path)
	if err != nil {
		return nil
	}
	return xmlquery.QuerySelector(d.root, expr)
}

func (d *xpathDocument) Text(path string) (string, bool) {
	node := d.find(path)
	if node == nil {
		return "", false
	}
	return node.InnerText(), true
}

func (d *xpathDocument) Attr(path, name string) (string, bool) {
	node := d.find(path)
	if node == nil {
		return "", false
	}
	for _, attr := range node.Attr {
		if attr.Name.Local == name {
			return attr.Value, true
		}
	}
	return "", false
}
