// Package codec converts adventures to and from their persisted representation.
//
// A record is self-contained: id, title, description, startNodeId and a nodes map whose
// values carry an explicit "type" tag next to the variant fields. Unknown fields are
// ignored on decode; a record that fails to decode is reported with domain.ErrDecode.
package codec

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"

	"github.com/aretw0/quest/pkg/domain"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// TypeKey is the field holding the node kind tag.
const TypeKey = "type"

// Record is the wire shape of one adventure.
type Record struct {
	ID          string                    `json:"id" yaml:"id"`
	Title       string                    `json:"title" yaml:"title"`
	Description string                    `json:"description" yaml:"description"`
	StartNodeID string                    `json:"startNodeId" yaml:"startNodeId"`
	Nodes       map[string]map[string]any `json:"nodes" yaml:"nodes"`
}

// ToRecord flattens an adventure into its wire shape.
func ToRecord(adv *domain.Adventure) (*Record, error) {
	if adv == nil {
		return nil, fmt.Errorf("cannot encode nil adventure")
	}
	rec := &Record{
		ID:          adv.ID,
		Title:       adv.Title,
		Description: adv.Description,
		StartNodeID: adv.StartNodeID,
		Nodes:       make(map[string]map[string]any, len(adv.Nodes)),
	}
	for id, n := range adv.Nodes {
		fields, err := MarshalNode(n)
		if err != nil {
			return nil, fmt.Errorf("failed to encode node %s: %w", id, err)
		}
		rec.Nodes[id] = fields
	}
	return rec, nil
}

// FromRecord rebuilds an adventure from its wire shape.
// The map key is authoritative for each node's ID.
func FromRecord(rec *Record) (*domain.Adventure, error) {
	if rec == nil {
		return nil, fmt.Errorf("%w: empty record", domain.ErrDecode)
	}
	if rec.ID == "" {
		return nil, fmt.Errorf("%w: record missing id", domain.ErrDecode)
	}
	adv := &domain.Adventure{
		ID:          rec.ID,
		Title:       rec.Title,
		Description: rec.Description,
		StartNodeID: rec.StartNodeID,
		Nodes:       make(map[string]domain.Node, len(rec.Nodes)),
	}
	for id, fields := range rec.Nodes {
		n, err := UnmarshalNode(id, fields)
		if err != nil {
			return nil, err
		}
		adv.Nodes[id] = n
	}
	return adv, nil
}

// MarshalNode returns the tagged field map of a node.
func MarshalNode(n domain.Node) (map[string]any, error) {
	if n == nil {
		return nil, fmt.Errorf("cannot encode nil node")
	}
	fields := make(map[string]any)
	if err := mapstructure.Decode(domain.CloneNode(n), &fields); err != nil {
		return nil, err
	}
	fields[TypeKey] = string(n.Kind())
	return fields, nil
}

// UnmarshalNode decodes a tagged field map into the matching variant.
// A non-empty id overrides the "id" field of the map.
func UnmarshalNode(id string, fields map[string]any) (domain.Node, error) {
	tag, _ := fields[TypeKey].(string)
	kind := domain.Kind(tag)
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: node %s: %w %q", domain.ErrDecode, id, domain.ErrUnknownKind, tag)
	}

	n, err := decodeVariant(kind, fields)
	if err != nil {
		return nil, fmt.Errorf("%w: node %s: %w", domain.ErrDecode, id, err)
	}
	if id != "" {
		n = withID(n, id)
	}
	return domain.CloneNode(n), nil
}

func decodeVariant(kind domain.Kind, fields map[string]any) (domain.Node, error) {
	switch kind {
	case domain.KindDialogue:
		var v domain.Dialogue
		err := decodeInto(fields, &v)
		return v, err
	case domain.KindCombat:
		var v domain.Combat
		err := decodeInto(fields, &v)
		return v, err
	case domain.KindExploration:
		var v domain.Exploration
		err := decodeInto(fields, &v)
		return v, err
	case domain.KindSkill:
		var v domain.Skill
		err := decodeInto(fields, &v)
		return v, err
	case domain.KindItem:
		var v domain.Item
		err := decodeInto(fields, &v)
		return v, err
	case domain.KindLoot:
		var v domain.Loot
		err := decodeInto(fields, &v)
		return v, err
	}
	return nil, domain.ErrUnknownKind
}

// decodeInto ignores unknown keys and accepts whole float64 numbers for int fields.
func decodeInto(fields map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
		DecodeHook:       wholeNumberHook,
	})
	if err != nil {
		return err
	}
	return dec.Decode(fields)
}

// wholeNumberHook rejects fractional numbers bound for integer fields,
// which weak decoding would otherwise truncate.
func wholeNumberHook(from, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.Float32 && from.Kind() != reflect.Float64 {
		return data, nil
	}
	switch to.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
	default:
		return data, nil
	}
	f := reflect.ValueOf(data).Float()
	if f != math.Trunc(f) {
		return nil, fmt.Errorf("%v is not a whole number", data)
	}
	return data, nil
}

func withID(n domain.Node, id string) domain.Node {
	switch v := n.(type) {
	case domain.Dialogue:
		v.ID = id
		return v
	case domain.Combat:
		v.ID = id
		return v
	case domain.Exploration:
		v.ID = id
		return v
	case domain.Skill:
		v.ID = id
		return v
	case domain.Item:
		v.ID = id
		return v
	case domain.Loot:
		v.ID = id
		return v
	}
	return n
}

// EncodeJSON encodes an adventure as an indented JSON record.
func EncodeJSON(adv *domain.Adventure) ([]byte, error) {
	rec, err := ToRecord(adv)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(rec, "", "  ")
}

// DecodeJSON decodes a JSON record.
func DecodeJSON(data []byte) (*domain.Adventure, error) {
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrDecode, err)
	}
	return FromRecord(&rec)
}

// EncodeYAML encodes an adventure as a YAML document, used for hand-authored imports and exports.
func EncodeYAML(adv *domain.Adventure) ([]byte, error) {
	rec, err := ToRecord(adv)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(rec)
}

// DecodeYAML decodes a YAML document.
func DecodeYAML(data []byte) (*domain.Adventure, error) {
	var rec Record
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrDecode, err)
	}
	return FromRecord(&rec)
}
