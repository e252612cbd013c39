package taxonomy

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Node tags given to JSON values, as yaml.v3 resolves them.
const (
	strTag   = "!!str"
	intTag   = "!!int"
	floatTag = "!!float"
	boolTag  = "!!bool"
	nullTag  = "!!null"
	seqTag   = "!!seq"
	mapTag   = "!!map"
)

// jsonTree decodes a JSON document into the node tree the YAML path produces,
// keeping object key order.
func jsonTree(data []byte) (*yaml.Node, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	node, err := jsonNode(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errors.New("unexpected data after top-level value")
		}
		return nil, err
	}
	return node, nil
}

func jsonNode(dec *json.Decoder) (*yaml.Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, unexpectedEOF(err)
	}

	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			node := &yaml.Node{Kind: yaml.MappingNode, Tag: mapTag}
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, unexpectedEOF(err)
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("object key %v is not a string", keyTok)
				}
				value, err := jsonNode(dec)
				if err != nil {
					return nil, err
				}
				node.Content = append(node.Content, scalar(strTag, key), value)
			}
			return node, closing(dec)
		case '[':
			node := &yaml.Node{Kind: yaml.SequenceNode, Tag: seqTag}
			for dec.More() {
				item, err := jsonNode(dec)
				if err != nil {
					return nil, err
				}
				node.Content = append(node.Content, item)
			}
			return node, closing(dec)
		default:
			return nil, fmt.Errorf("unexpected delimiter %q", rune(v))
		}
	case string:
		return scalar(strTag, v), nil
	case json.Number:
		if _, err := v.Int64(); err == nil {
			return scalar(intTag, v.String()), nil
		}
		return scalar(floatTag, v.String()), nil
	case bool:
		return scalar(boolTag, fmt.Sprint(v)), nil
	case nil:
		return scalar(nullTag, "null"), nil
	default:
		return nil, fmt.Errorf("unexpected token %v", tok)
	}
}

// closing consumes the delimiter ending an object or array.
func closing(dec *json.Decoder) error {
	if _, err := dec.Token(); err != nil {
		return unexpectedEOF(err)
	}
	return nil
}

func unexpectedEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}
	return err
}

func scalar(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}
