package document

import (
	"errors"
	"fmt"
	"math/big"

	"gopkg.in/yaml.v3"

	"deep-cloner/value"
)

const (
	ParentKey = "$parent"
	SymbolTag = "!symbol"
	BigIntTag = "!bigint"
)

var (
	ErrBadParent = errors.New("$parent must be a mapping")
	ErrBadBigInt = errors.New("invalid !bigint literal")
	ErrCycle     = errors.New("cyclic value cannot be encoded")
)

type decoder struct {
	symbols map[string]value.Symbol
	anchors map[*yaml.Node]any
}

// Decode parses one YAML document into the value model.
func Decode(data []byte) (any, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to parse document YAML: %w", err)
	}

	d := &decoder{
		symbols: make(map[string]value.Symbol),
		anchors: make(map[*yaml.Node]any),
	}

	return d.decode(&root)
}

func (d *decoder) symbol(desc string) value.Symbol {
	s, ok := d.symbols[desc]
	if !ok {
		s = value.NewSymbol(desc)
		d.symbols[desc] = s
	}

	return s
}

func (d *decoder) decode(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return d.decode(n.Content[0])

	case yaml.AliasNode:
		return d.decode(n.Alias)

	case yaml.MappingNode:
		return d.decodeMapping(n)

	case yaml.SequenceNode:
		if v, ok := d.anchors[n]; ok {
			return v, nil
		}

		out := make([]any, len(n.Content))
		d.anchors[n] = out
		for i, child := range n.Content {
			v, err := d.decode(child)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}

		return out, nil

	case yaml.ScalarNode:
		return d.decodeScalar(n)

	default:
		return nil, nil
	}
}

func (d *decoder) decodeMapping(n *yaml.Node) (any, error) {
	if v, ok := d.anchors[n]; ok {
		return v, nil
	}

	rec := value.NewRecord(nil)
	d.anchors[n] = rec

	for i := 0; i+1 < len(n.Content); i += 2 {
		keyNode, valNode := n.Content[i], n.Content[i+1]

		if keyNode.Tag != SymbolTag && keyNode.Value == ParentKey {
			if err := d.decodeParent(rec, valNode); err != nil {
				return nil, err
			}
			continue
		}

		v, err := d.decode(valNode)
		if err != nil {
			return nil, err
		}

		key := value.StringKey(keyNode.Value)
		if keyNode.Tag == SymbolTag {
			key = value.SymbolKey(d.symbol(keyNode.Value))
		}

		rec.Set(key, v)
	}

	return rec, nil
}

func (d *decoder) decodeParent(rec *value.Record, n *yaml.Node) error {
	v, err := d.decode(n)
	if err != nil {
		return err
	}

	parent, ok := v.(*value.Record)
	if !ok {
		return fmt.Errorf("%w, got %s", ErrBadParent, n.ShortTag())
	}

	rec.SetParent(parent)
	return nil
}

func (d *decoder) decodeScalar(n *yaml.Node) (any, error) {
	switch n.Tag {
	case SymbolTag:
		return d.symbol(n.Value), nil

	case BigIntTag:
		i, ok := new(big.Int).SetString(n.Value, 0)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrBadBigInt, n.Value)
		}
		return i, nil

	case "!!timestamp", "!!binary":
		return n.Value, nil
	}

	var v any
	if err := n.Decode(&v); err != nil {
		return nil, fmt.Errorf("failed to decode scalar %q: %w", n.Value, err)
	}

	return v, nil
}
