package xmltree

import "encoding/xml"

// Node is a generic, order-preserving XML element: its tag name,
// attributes, text content, and child elements in document order.
// encoding/xml's reflection-based decoder fills Children and Attrs
// recursively via the ",any" wildcard tags, so no custom
// UnmarshalXML is needed.
type Node struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	CharData string     `xml:",chardata"`
	Children []*Node    `xml:",any"`
}
