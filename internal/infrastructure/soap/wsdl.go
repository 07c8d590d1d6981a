package soap

import (
	"encoding/xml"
	"errors"
	"fmt"
	"os"
	"strings"
)

type wsdlDefinitions struct {
	XMLName         xml.Name       `xml:"definitions"`
	TargetNamespace string         `xml:"targetNamespace,attr"`
	Messages        []wsdlMessage  `xml:"message"`
	PortTypes       []wsdlPortType `xml:"portType"`
	Bindings        []wsdlBinding  `xml:"binding"`
}

type wsdlMessage struct {
	Name  string     `xml:"name,attr"`
	Parts []wsdlPart `xml:"part"`
}

type wsdlPart struct {
	Name string `xml:"name,attr"`
}

type wsdlPortType struct {
	Operations []wsdlPortOperation `xml:"operation"`
}

type wsdlPortOperation struct {
	Name  string `xml:"name,attr"`
	Input struct {
		Message string `xml:"message,attr"`
	} `xml:"input"`
}

type wsdlBinding struct {
	Operations []wsdlBindingOperation `xml:"operation"`
}

type wsdlBindingOperation struct {
	Name string `xml:"name,attr"`
	Soap struct {
		Action string `xml:"soapAction,attr"`
	} `xml:"operation"`
}

// operation is what a call needs to know about one WSDL operation.
type operation struct {
	name   string
	action string
	parts  []string
}

// serviceDescription is the subset of a WSDL document the channel uses.
type serviceDescription struct {
	namespace  string
	operations map[string]operation
}

func loadServiceDescription(path string) (*serviceDescription, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parseServiceDescription(raw)
}

func parseServiceDescription(raw []byte) (*serviceDescription, error) {
	var defs wsdlDefinitions
	if err := xml.Unmarshal(raw, &defs); err != nil {
		return nil, fmt.Errorf("parse wsdl: %w", err)
	}
	if defs.TargetNamespace == "" {
		return nil, errors.New("wsdl has no targetNamespace")
	}

	messages := make(map[string][]string, len(defs.Messages))
	for _, m := range defs.Messages {
		parts := make([]string, len(m.Parts))
		for i, p := range m.Parts {
			parts[i] = p.Name
		}
		messages[m.Name] = parts
	}

	actions := make(map[string]string)
	for _, b := range defs.Bindings {
		for _, op := range b.Operations {
			actions[op.Name] = op.Soap.Action
		}
	}

	desc := &serviceDescription{
		namespace:  defs.TargetNamespace,
		operations: make(map[string]operation),
	}
	for _, pt := range defs.PortTypes {
		for _, op := range pt.Operations {
			desc.operations[op.Name] = operation{
				name:   op.Name,
				action: actions[op.Name],
				parts:  messages[localName(op.Input.Message)],
			}
		}
	}
	if len(desc.operations) == 0 {
		return nil, errors.New("wsdl declares no operations")
	}

	return desc, nil
}

func localName(qname string) string {
	if i := strings.IndexByte(qname, ':'); i >= 0 {
		return qname[i+1:]
	}
	return qname
}
