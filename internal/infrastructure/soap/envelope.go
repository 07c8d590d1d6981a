package soap

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

const (
	envelopeNamespace = "http://schemas.xmlsoap.org/soap/envelope/"
	listItemElement   = "item"
	returnElement     = "retval"
)

// encodeEnvelope renders an RPC-style SOAP 1.1 request. A single input part
// receives the whole payload; several parts are filled from payload keys of
// the same name.
func encodeEnvelope(namespace string, op operation, payload map[string]any) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)

	enc := xml.NewEncoder(&buf)

	envelope := xml.StartElement{
		Name: xml.Name{Local: "SOAP-ENV:Envelope"},
		Attr: []xml.Attr{
			{Name: xml.Name{Local: "xmlns:SOAP-ENV"}, Value: envelopeNamespace},
			{Name: xml.Name{Local: "xmlns:ns1"}, Value: namespace},
		},
	}
	body := xml.StartElement{Name: xml.Name{Local: "SOAP-ENV:Body"}}
	call := xml.StartElement{Name: xml.Name{Local: "ns1:" + op.name}}

	for _, start := range []xml.StartElement{envelope, body, call} {
		if err := enc.EncodeToken(start); err != nil {
			return nil, err
		}
	}

	switch len(op.parts) {
	case 0:
		if err := encodeFields(enc, payload); err != nil {
			return nil, err
		}
	case 1:
		if err := encodeValue(enc, op.parts[0], payload); err != nil {
			return nil, err
		}
	default:
		for _, part := range op.parts {
			if err := encodeValue(enc, part, payload[part]); err != nil {
				return nil, err
			}
		}
	}

	for _, end := range []xml.EndElement{call.End(), body.End(), envelope.End()} {
		if err := enc.EncodeToken(end); err != nil {
			return nil, err
		}
	}
	if err := enc.Flush(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeFields(enc *xml.Encoder, fields map[string]any) error {
	for _, key := range slices.Sorted(maps.Keys(fields)) {
		if err := encodeValue(enc, key, fields[key]); err != nil {
			return err
		}
	}
	return nil
}

func encodeValue(enc *xml.Encoder, name string, value any) error {
	start := xml.StartElement{Name: xml.Name{Local: name}}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}

	switch v := value.(type) {
	case nil:
	case map[string]any:
		if err := encodeFields(enc, v); err != nil {
			return err
		}
	case []any:
		for _, item := range v {
			if err := encodeValue(enc, listItemElement, item); err != nil {
				return err
			}
		}
	case string:
		if err := enc.EncodeToken(xml.CharData(v)); err != nil {
			return err
		}
	default:
		if err := enc.EncodeToken(xml.CharData(fmt.Sprint(v))); err != nil {
			return err
		}
	}

	return enc.EncodeToken(start.End())
}

// node is a generic XML element tree.
type node struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Content  string     `xml:",chardata"`
	Children []node     `xml:",any"`
}

func (n *node) child(local string) *node {
	for i := range n.Children {
		if n.Children[i].XMLName.Local == local {
			return &n.Children[i]
		}
	}
	return nil
}

func (n *node) isNil() bool {
	for _, a := range n.Attrs {
		if a.Name.Local == "nil" && a.Value == "true" {
			return true
		}
	}
	return false
}

// value turns an element into a string, a list or a mapping. Elements whose
// children are all <item> are lists; repeated names inside a mapping are
// collected into a list.
func (n *node) value() any {
	if n.isNil() {
		return nil
	}
	if len(n.Children) == 0 {
		return strings.TrimSpace(n.Content)
	}

	if n.isList() {
		out := make([]any, len(n.Children))
		for i := range n.Children {
			out[i] = n.Children[i].value()
		}
		return out
	}

	counts := make(map[string]int, len(n.Children))
	for i := range n.Children {
		counts[n.Children[i].XMLName.Local]++
	}

	out := make(map[string]any, len(counts))
	for i := range n.Children {
		c := &n.Children[i]
		name := c.XMLName.Local
		if counts[name] > 1 {
			list, _ := out[name].([]any)
			out[name] = append(list, c.value())
			continue
		}
		out[name] = c.value()
	}
	return out
}

func (n *node) isList() bool {
	for i := range n.Children {
		if n.Children[i].XMLName.Local != listItemElement {
			return false
		}
	}
	return true
}

type soapFault struct {
	code   string
	reason string
}

// message is the faultstring, or the faultcode when the processor sent no text.
func (f *soapFault) message() string {
	if f.reason != "" {
		return f.reason
	}
	return f.code
}

var errEmptyBody = errors.New("soap body is empty")

// decodeEnvelope returns the operation response element, or the fault the
// body carries.
func decodeEnvelope(raw []byte) (*node, *soapFault, error) {
	var envelope node
	if err := xml.Unmarshal(raw, &envelope); err != nil {
		return nil, nil, fmt.Errorf("decode soap envelope: %w", err)
	}
	if envelope.XMLName.Local != "Envelope" {
		return nil, nil, fmt.Errorf("unexpected root element %q", envelope.XMLName.Local)
	}

	body := envelope.child("Body")
	if body == nil || len(body.Children) == 0 {
		return nil, nil, errEmptyBody
	}

	first := &body.Children[0]
	if first.XMLName.Local == "Fault" {
		fault := &soapFault{}
		if c := first.child("faultcode"); c != nil {
			fault.code = strings.TrimSpace(c.Content)
		}
		if c := first.child("faultstring"); c != nil {
			fault.reason = strings.TrimSpace(c.Content)
		}
		return nil, fault, nil
	}
	return first, nil, nil
}

// returnValue picks the value an RPC response carries: the retval element,
// or the only child when the service names it differently.
func returnValue(response *node) *node {
	if rv := response.child(returnElement); rv != nil {
		return rv
	}
	if len(response.Children) == 1 {
		return &response.Children[0]
	}
	return nil
}
