package document

import (
	"bytes"
	"errors"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// fieldColumn is the 1-based column of a key indented by two spaces.
const fieldColumn = 3

const fieldIndent = "  "

// Mode reports how a Document was decoded.
type Mode int

const (
	// ModeStructured means the document was decoded as YAML.
	ModeStructured Mode = iota
	// ModeLineScan means the document was not valid YAML and was scanned line by line.
	ModeLineScan
)

func (m Mode) String() string {
	switch m {
	case ModeStructured:
		return "structured"
	case ModeLineScan:
		return "line-scan"
	default:
		return "unknown"
	}
}

// Document is a read-only index from field name to the first value declared for it.
type Document struct {
	fields map[string]string
	mode   Mode
	// decodeErr holds the YAML error that forced the line-scan fallback.
	decodeErr error
}

// Parse indexes data. It never fails: invalid YAML is line-scanned instead.
func Parse(data []byte) *Document {
	doc, err := decodeStructured(data)
	if err == nil {
		return doc
	}

	doc = scanLines(data)
	doc.decodeErr = err
	return doc
}

// Field returns the first value declared for name and whether it was present.
func (d *Document) Field(name string) (string, bool) {
	value, ok := d.fields[name]
	return value, ok
}

// Len returns the number of distinct fields indexed.
func (d *Document) Len() int {
	return len(d.fields)
}

// Mode reports which decoder produced the document.
func (d *Document) Mode() Mode {
	return d.mode
}

// DecodeError returns the YAML error that caused a line-scan fallback, if any.
func (d *Document) DecodeError() error {
	return d.decodeErr
}

func newDocument(mode Mode) *Document {
	return &Document{
		fields: make(map[string]string),
		mode:   mode,
	}
}

// add records value for name unless an earlier declaration exists.
func (d *Document) add(name, value string) {
	if _, seen := d.fields[name]; seen {
		return
	}
	d.fields[name] = value
}

func decodeStructured(data []byte) (*Document, error) {
	doc := newDocument(ModeStructured)
	dec := yaml.NewDecoder(bytes.NewReader(data))

	for {
		var root yaml.Node
		if err := dec.Decode(&root); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		doc.walk(&root, false)
	}

	return doc, nil
}

// walk visits nodes in document order so the first declaration wins.
// Only mappings nested directly under a mapping key hold fields; mappings
// that are sequence items or document roots do not.
func (d *Document) walk(node *yaml.Node, underKey bool) {
	switch node.Kind {
	case yaml.DocumentNode, yaml.SequenceNode:
		for _, child := range node.Content {
			d.walk(child, false)
		}
	case yaml.MappingNode:
		for i := 0; i+1 < len(node.Content); i += 2 {
			key, value := node.Content[i], node.Content[i+1]
			if underKey && key.Column == fieldColumn && value.Kind == yaml.ScalarNode {
				d.add(key.Value, scalarValue(value))
			}
			d.walk(value, true)
		}
	}
}

func scalarValue(node *yaml.Node) string {
	if node.ShortTag() == "!!null" {
		return ""
	}
	return node.Value
}

func scanLines(data []byte) *Document {
	doc := newDocument(ModeLineScan)

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSuffix(line, "\r")
		rest, ok := strings.CutPrefix(line, fieldIndent)
		if !ok || rest == "" || rest[0] == ' ' || rest[0] == '\t' {
			continue
		}

		name, value, ok := strings.Cut(rest, ":")
		if !ok || name == "" {
			continue
		}
		doc.add(name, cleanValue(value))
	}

	return doc
}

func cleanValue(raw string) string {
	return strings.TrimSpace(strings.ReplaceAll(raw, `"`, ""))
}
