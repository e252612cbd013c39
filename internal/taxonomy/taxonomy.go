// Package taxonomy flattens a category taxonomy into a value→category lookup.
//
// A taxonomy document is a sequence of entries, each mapping a category key to
// its member values:
//
//	{"categories": [{"教育": ["學校", "圖書館"]}, {"交通": ["道路"]}]}
//
// The sequence may also be the top-level node. JSON and YAML are accepted.
package taxonomy

import (
	"bytes"
	"errors"
	"fmt"
	"sort"

	"fjacquet/proposal-search/internal/searcherror"

	"gopkg.in/yaml.v3"
)

var errEmptyDocument = errors.New("document is empty")

// Entry maps category keys to their member values. Keys keep document order.
type Entry struct {
	Keys   []string
	Values map[string][]string
}

// Document is a decoded taxonomy.
type Document struct {
	Entries []Entry
}

// Mapping is the flattened member value → category key lookup.
type Mapping struct {
	byValue map[string]string
}

// Load flattens doc. A value listed under several keys resolves to the last
// one in document order.
func Load(doc Document) Mapping {
	byValue := make(map[string]string)
	for _, entry := range doc.Entries {
		for _, key := range entry.Keys {
			for _, value := range entry.Values[key] {
				byValue[value] = key
			}
		}
	}
	return Mapping{byValue: byValue}
}

// Parse decodes a taxonomy document from JSON or YAML bytes and flattens it.
// source names the input in error messages.
func Parse(source string, data []byte) (Mapping, error) {
	doc, err := Decode(source, data)
	if err != nil {
		return Mapping{}, err
	}
	return Load(doc), nil
}

// Decode decodes a taxonomy document without flattening it.
func Decode(source string, data []byte) (Document, error) {
	root, err := parseTree(bytes.TrimPrefix(data, []byte("\ufeff")))
	if err != nil {
		return Document{}, &searcherror.MalformedInputError{Source: source, Reason: "cannot decode taxonomy", Err: err}
	}

	seq, err := entrySequence(source, root)
	if err != nil {
		return Document{}, err
	}

	doc := Document{Entries: make([]Entry, 0, len(seq.Content))}
	for i, node := range seq.Content {
		entry, err := decodeEntry(source, i, node)
		if err != nil {
			return Document{}, err
		}
		doc.Entries = append(doc.Entries, entry)
	}
	return doc, nil
}

// parseTree decodes data into a node tree. JSON input goes through
// encoding/json; YAML flow style also starts with '{' or '[', so it is tried
// when the JSON decoder fails.
func parseTree(data []byte) (*yaml.Node, error) {
	if !looksLikeJSON(data) {
		return yamlTree(data)
	}
	node, err := jsonTree(data)
	if err == nil {
		return node, nil
	}
	if node, yamlErr := yamlTree(data); yamlErr == nil {
		return node, nil
	}
	return nil, err
}

func looksLikeJSON(data []byte) bool {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	return len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[')
}

func yamlTree(data []byte) (*yaml.Node, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, errEmptyDocument
	}
	return root.Content[0], nil
}

// entrySequence returns the entry list: either the node itself or the value
// of its "categories" key.
func entrySequence(source string, node *yaml.Node) (*yaml.Node, error) {
	node = resolveAlias(node)
	switch node.Kind {
	case yaml.SequenceNode:
		return node, nil
	case yaml.MappingNode:
		// A repeated key resolves to its last occurrence.
		var value *yaml.Node
		for i := 0; i+1 < len(node.Content); i += 2 {
			if node.Content[i].Value == "categories" {
				value = resolveAlias(node.Content[i+1])
			}
		}
		if value == nil {
			return nil, &searcherror.MalformedInputError{Source: source, Reason: "missing 'categories' sequence"}
		}
		if value.Kind != yaml.SequenceNode {
			return nil, &searcherror.MalformedInputError{Source: source, Reason: "'categories' must be a sequence"}
		}
		return value, nil
	default:
		return nil, &searcherror.MalformedInputError{Source: source, Reason: "taxonomy must be a sequence of category entries"}
	}
}

func decodeEntry(source string, index int, node *yaml.Node) (Entry, error) {
	node = resolveAlias(node)
	if node.Kind != yaml.MappingNode {
		return Entry{}, malformedEntry(source, index, "entry is not a mapping")
	}

	entry := Entry{Values: make(map[string][]string, len(node.Content)/2)}
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode := node.Content[i]
		if keyNode.Kind != yaml.ScalarNode {
			return Entry{}, malformedEntry(source, index, "category key is not a string")
		}
		key := keyNode.Value

		valuesNode := resolveAlias(node.Content[i+1])
		if valuesNode.Kind != yaml.SequenceNode {
			return Entry{}, malformedEntry(source, index, fmt.Sprintf("values of '%s' are not a sequence", key))
		}
		values := make([]string, 0, len(valuesNode.Content))
		for _, v := range valuesNode.Content {
			v = resolveAlias(v)
			if v.Kind != yaml.ScalarNode || v.ShortTag() != strTag {
				return Entry{}, malformedEntry(source, index, fmt.Sprintf("values of '%s' must be strings", key))
			}
			values = append(values, v.Value)
		}

		// A repeated key keeps its first position and takes the later values.
		if _, seen := entry.Values[key]; !seen {
			entry.Keys = append(entry.Keys, key)
		}
		entry.Values[key] = values
	}
	return entry, nil
}

func resolveAlias(node *yaml.Node) *yaml.Node {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node
}

func malformedEntry(source string, index int, reason string) error {
	return &searcherror.MalformedInputError{
		Source: source,
		Reason: fmt.Sprintf("entry %d: %s", index, reason),
	}
}

// Lookup returns the category key for a member value.
func (m Mapping) Lookup(value string) (string, bool) {
	key, ok := m.byValue[value]
	return key, ok
}

// Len returns the number of member values.
func (m Mapping) Len() int {
	return len(m.byValue)
}

// Values returns the member values in ascending order.
func (m Mapping) Values() []string {
	values := make([]string, 0, len(m.byValue))
	for v := range m.byValue {
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}

// Keys returns the distinct category keys in ascending order.
func (m Mapping) Keys() []string {
	seen := make(map[string]struct{})
	for _, k := range m.byValue {
		seen[k] = struct{}{}
	}
	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Members returns the values that resolve to key, in ascending order.
func (m Mapping) Members(key string) []string {
	var members []string
	for v, k := range m.byValue {
		if k == key {
			members = append(members, v)
		}
	}
	sort.Strings(members)
	return members
}
