package describe

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/reoring/argskema"
)

// DuplicateKeyError reports a mapping key that occurs twice, with both
// positions.
type DuplicateKeyError struct {
	Key       string
	FirstLine int
	FirstCol  int
	Line      int
	Col       int
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate YAML key %q at %d:%d (first at %d:%d)", e.Key, e.Line, e.Col, e.FirstLine, e.FirstCol)
}

// FromYAML decodes a single-document description. Duplicate and unknown keys
// are errors.
func FromYAML(data []byte) (*Document, error) {
	docs, err := readYAML(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	if len(docs) != 1 {
		return nil, fmt.Errorf("describe: expected one YAML document, got %d", len(docs))
	}
	return docs[0], nil
}

// FromYAMLBundle scans a multi-document YAML stream and returns the
// document with the given name.
func FromYAMLBundle(data []byte, name string) (*Document, error) {
	docs, err := readYAML(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	for _, d := range docs {
		if d.Name == name {
			return d, nil
		}
	}
	return nil, fmt.Errorf("describe: %q not found in YAML bundle", name)
}

// EncodeYAML writes the option table of s.
func EncodeYAML(w io.Writer, s *argskema.Schema) error {
	return writeYAML(w, OptionTable(s))
}

// EncodeDocumentYAML writes d as a YAML description.
func EncodeDocumentYAML(w io.Writer, d *Document) error {
	return writeYAML(w, d)
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func readYAML(r io.Reader) ([]*Document, error) {
	dec := yaml.NewDecoder(r)
	var out []*Document
	for {
		var root yaml.Node
		if err := dec.Decode(&root); err != nil {
			if errors.Is(err, io.EOF) {
				return out, nil
			}
			return nil, err
		}
		if len(root.Content) == 0 {
			continue
		}
		if err := checkDuplicates(root.Content[0]); err != nil {
			return nil, err
		}
		var d Document
		if err := decodeStrict(&root, &d); err != nil {
			return nil, err
		}
		out = append(out, &d)
	}
}

// decodeStrict decodes n into v, rejecting keys v has no field for.
// yaml.Node.Decode has no strict mode, so the node goes back through a
// Decoder with KnownFields set.
func decodeStrict(n *yaml.Node, v any) error {
	raw, err := yaml.Marshal(n)
	if err != nil {
		return err
	}
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("describe: %w", err)
	}
	return nil
}

func checkDuplicates(n *yaml.Node) error {
	switch n.Kind {
	case yaml.MappingNode:
		first := make(map[string][2]int, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			k := n.Content[i]
			if pos, dup := first[k.Value]; dup {
				return &DuplicateKeyError{Key: k.Value, FirstLine: pos[0], FirstCol: pos[1], Line: k.Line, Col: k.Column}
			}
			first[k.Value] = [2]int{k.Line, k.Column}
			if err := checkDuplicates(n.Content[i+1]); err != nil {
				return err
			}
		}
	case yaml.SequenceNode, yaml.DocumentNode:
		for _, c := range n.Content {
			if err := checkDuplicates(c); err != nil {
				return err
			}
		}
	}
	return nil
}
