package ast

import (
	"encoding/json"
	"fmt"

	"github.com/go-webidl/webidl/token"
)

// DecodeFile parses the JSON representation written by File.MarshalJSON
// back into a *File. It exists so spec.md §8's round-trip and idempotence
// properties are checkable without a full external serializer: re-encoding
// the result of DecodeFile must reproduce the same JSON bytes (up to map
// key ordering, which encoding/json fixes lexicographically and we never
// rely on since every object here uses ordered struct fields).
func DecodeFile(data []byte) (*File, error) {
	var raw struct {
		Definitions []json.RawMessage `json:"definitions"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	f := &File{Definitions: make([]Definition, 0, len(raw.Definitions))}
	for _, d := range raw.Definitions {
		def, err := decodeDefinition(d)
		if err != nil {
			return nil, err
		}
		f.Definitions = append(f.Definitions, def)
	}
	return f, nil
}

func kindOf(data []byte) (string, error) {
	var probe struct {
		Kind string `json:"kind"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return "", err
	}
	return probe.Kind, nil
}

func tok(name string) token.Token { return token.Token{Kind: token.Identifier, Lexeme: name} }

func decodeDefinition(data []byte) (Definition, error) {
	kind, err := kindOf(data)
	if err != nil {
		return nil, err
	}
	switch kind {
	case "interface":
		var v struct {
			Name               string
			Parent             *string
			Members            []json.RawMessage
			ExtendedAttributes []*ExtendedAttribute `json:"extended_attributes"`
			Partial            bool
		}
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		members, err := decodeMembers(v.Members)
		if err != nil {
			return nil, err
		}
		return &Interface{Name: tok(v.Name), Parent: derefStr(v.Parent), Members: members, ExtendedAttributes: v.ExtendedAttributes, Partial: v.Partial}, nil
	case "interface_mixin":
		var v struct {
			Name               string
			Members            []json.RawMessage
			ExtendedAttributes []*ExtendedAttribute `json:"extended_attributes"`
			Partial            bool
		}
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		members, err := decodeMembers(v.Members)
		if err != nil {
			return nil, err
		}
		return &InterfaceMixin{Name: tok(v.Name), Members: members, ExtendedAttributes: v.ExtendedAttributes, Partial: v.Partial}, nil
	case "dictionary":
		var v struct {
			Name               string
			Parent             *string
			Members            []json.RawMessage
			ExtendedAttributes []*ExtendedAttribute `json:"extended_attributes"`
			Partial            bool
		}
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		members, err := decodeDictionaryMembers(v.Members)
		if err != nil {
			return nil, err
		}
		return &Dictionary{Name: tok(v.Name), Parent: derefStr(v.Parent), Members: members, ExtendedAttributes: v.ExtendedAttributes, Partial: v.Partial}, nil
	case "enum":
		var v struct {
			Name               string
			Values             []string
			ExtendedAttributes []*ExtendedAttribute `json:"extended_attributes"`
		}
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return &Enum{Name: tok(v.Name), Values: v.Values, ExtendedAttributes: v.ExtendedAttributes}, nil
	case "typedef":
		var v struct {
			Name               string
			Type               json.RawMessage
			ExtendedAttributes []*ExtendedAttribute `json:"extended_attributes"`
		}
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		typ, err := decodeType(v.Type)
		if err != nil {
			return nil, err
		}
		return &Typedef{Name: tok(v.Name), Type: typ, ExtendedAttributes: v.ExtendedAttributes}, nil
	case "callback":
		var v struct {
			Name               string
			ReturnType         json.RawMessage `json:"return_type"`
			Arguments          []*argJSON
			ExtendedAttributes []*ExtendedAttribute `json:"extended_attributes"`
		}
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		ret, err := decodeType(v.ReturnType)
		if err != nil {
			return nil, err
		}
		args, err := decodeArgs(v.Arguments)
		if err != nil {
			return nil, err
		}
		return &Callback{Name: tok(v.Name), ReturnType: ret, Arguments: args, ExtendedAttributes: v.ExtendedAttributes}, nil
	case "callback_interface":
		var v struct {
			Name               string
			Members            []json.RawMessage
			ExtendedAttributes []*ExtendedAttribute `json:"extended_attributes"`
		}
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		members, err := decodeMembers(v.Members)
		if err != nil {
			return nil, err
		}
		return &CallbackInterface{Name: tok(v.Name), Members: members, ExtendedAttributes: v.ExtendedAttributes}, nil
	case "includes":
		var v struct {
			Interface string
			Mixin     string
		}
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return &Includes{Interface: v.Interface, Mixin: v.Mixin}, nil
	case "namespace":
		var v struct {
			Name               string
			Members            []json.RawMessage
			ExtendedAttributes []*ExtendedAttribute `json:"extended_attributes"`
			Partial            bool
		}
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		members, err := decodeMembers(v.Members)
		if err != nil {
			return nil, err
		}
		return &Namespace{Name: tok(v.Name), Members: members, ExtendedAttributes: v.ExtendedAttributes, Partial: v.Partial}, nil
	default:
		return nil, fmt.Errorf("ast: unknown definition kind %q", kind)
	}
}

func derefStr(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

type argJSON struct {
	Name               string
	Type               json.RawMessage
	Optional           bool
	Variadic           bool
	DefaultValue       json.RawMessage      `json:"default_value"`
	ExtendedAttributes []*ExtendedAttribute `json:"extended_attributes"`
}

func decodeArgs(raws []*argJSON) ([]*Argument, error) {
	out := make([]*Argument, 0, len(raws))
	for _, r := range raws {
		typ, err := decodeType(r.Type)
		if err != nil {
			return nil, err
		}
		var def Value
		if len(r.DefaultValue) > 0 {
			def, err = decodeValue(r.DefaultValue)
			if err != nil {
				return nil, err
			}
		}
		out = append(out, &Argument{
			Name: tok(r.Name), Type: typ, Optional: r.Optional, Variadic: r.Variadic,
			DefaultValue: def, ExtendedAttributes: r.ExtendedAttributes,
		})
	}
	return out, nil
}

// UnmarshalJSON reads back the shape ExtendedAttribute.MarshalJSON writes.
func (e *ExtendedAttribute) UnmarshalJSON(data []byte) error {
	var v struct {
		Name      string
		Value     *struct{ Identifier string; IdentifierList []string `json:"identifier_list"` }
		Arguments []*argJSON
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	args, err := decodeArgs(v.Arguments)
	*e = ExtendedAttribute{Name: tok(v.Name), Arguments: args}
	if v.Value != nil {
		e.Value = ExtendedAttributeValue{Identifier: v.Value.Identifier, IdentifierList: v.Value.IdentifierList, HasValue: true}
	}
	return err
}

func decodeDictionaryMembers(raws []json.RawMessage) ([]*DictionaryMember, error) {
	out := make([]*DictionaryMember, 0, len(raws))
	for _, raw := range raws {
		var v struct {
			Name               string
			Type               json.RawMessage
			Required           bool
			DefaultValue       json.RawMessage      `json:"default_value"`
			ExtendedAttributes []*ExtendedAttribute `json:"extended_attributes"`
		}
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		typ, err := decodeType(v.Type)
		if err != nil {
			return nil, err
		}
		var def Value
		if len(v.DefaultValue) > 0 {
			def, err = decodeValue(v.DefaultValue)
			if err != nil {
				return nil, err
			}
		}
		out = append(out, &DictionaryMember{
			Name: tok(v.Name), Type: typ, Required: v.Required,
			DefaultValue: def, ExtendedAttributes: v.ExtendedAttributes,
		})
	}
	return out, nil
}

func decodeMembers(raws []json.RawMessage) ([]InterfaceMember, error) {
	out := make([]InterfaceMember, 0, len(raws))
	for _, raw := range raws {
		m, err := decodeMember(raw)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

var specialLookup = map[string]Special{
	"": NoSpecial, "getter": SpecialGetter, "setter": SpecialSetter,
	"deleter": SpecialDeleter, "stringifier": SpecialStringifier,
}

var stringifierFormLookup = map[string]StringifierForm{
	"bare": StringifierBare, "attribute": StringifierAttributeForm, "operation": StringifierOperationForm,
}

func decodeMember(data []byte) (InterfaceMember, error) {
	kind, err := kindOf(data)
	if err != nil {
		return nil, err
	}
	switch kind {
	case "attribute":
		var v struct {
			Name                                                  string
			Type                                                  json.RawMessage
			Readonly, Static, Stringifier, Inherit                bool
			ExtendedAttributes                                    []*ExtendedAttribute `json:"extended_attributes"`
		}
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		typ, err := decodeType(v.Type)
		if err != nil {
			return nil, err
		}
		return &Attribute{Name: tok(v.Name), Type: typ, Readonly: v.Readonly, Static: v.Static, Stringifier: v.Stringifier, Inherit: v.Inherit, ExtendedAttributes: v.ExtendedAttributes}, nil
	case "operation":
		var v struct {
			Name               string
			ReturnType         json.RawMessage `json:"return_type"`
			Arguments          []*argJSON
			Static             bool
			Special            string
			ExtendedAttributes []*ExtendedAttribute `json:"extended_attributes"`
		}
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		ret, err := decodeType(v.ReturnType)
		if err != nil {
			return nil, err
		}
		args, err := decodeArgs(v.Arguments)
		if err != nil {
			return nil, err
		}
		return &Operation{Name: v.Name, ReturnType: ret, Arguments: args, Static: v.Static, SpecialForm: specialLookup[v.Special], ExtendedAttributes: v.ExtendedAttributes}, nil
	case "const":
		var v struct {
			Name               string
			Type               json.RawMessage
			Value              json.RawMessage
			ExtendedAttributes []*ExtendedAttribute `json:"extended_attributes"`
		}
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		typ, err := decodeType(v.Type)
		if err != nil {
			return nil, err
		}
		val, err := decodeValue(v.Value)
		if err != nil {
			return nil, err
		}
		return &Const{Name: tok(v.Name), Type: typ, Value: val, ExtendedAttributes: v.ExtendedAttributes}, nil
	case "constructor":
		var v struct {
			Arguments          []*argJSON
			ExtendedAttributes []*ExtendedAttribute `json:"extended_attributes"`
		}
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		args, err := decodeArgs(v.Arguments)
		if err != nil {
			return nil, err
		}
		return &Constructor{Arguments: args, ExtendedAttributes: v.ExtendedAttributes}, nil
	case "stringifier":
		var v struct{ Form string }
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return &Stringifier{Form: stringifierFormLookup[v.Form]}, nil
	case "iterable":
		var v struct {
			KeyType   json.RawMessage `json:"key_type"`
			ValueType json.RawMessage `json:"value_type"`
		}
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		keyType, valueType, err := decodeKV(v.KeyType, v.ValueType)
		if err != nil {
			return nil, err
		}
		return &Iterable{KeyType: keyType, ValueType: valueType}, nil
	case "async_iterable":
		var v struct {
			KeyType   json.RawMessage `json:"key_type"`
			ValueType json.RawMessage `json:"value_type"`
			Arguments []*argJSON
		}
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		keyType, valueType, err := decodeKV(v.KeyType, v.ValueType)
		if err != nil {
			return nil, err
		}
		args, err := decodeArgs(v.Arguments)
		if err != nil {
			return nil, err
		}
		return &AsyncIterable{KeyType: keyType, ValueType: valueType, Arguments: args}, nil
	case "maplike":
		var v struct {
			KeyType   json.RawMessage `json:"key_type"`
			ValueType json.RawMessage `json:"value_type"`
			Readonly  bool
		}
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		keyType, valueType, err := decodeKV(v.KeyType, v.ValueType)
		if err != nil {
			return nil, err
		}
		return &Maplike{KeyType: keyType, ValueType: valueType, Readonly: v.Readonly}, nil
	case "setlike":
		var v struct {
			ValueType json.RawMessage `json:"value_type"`
			Readonly  bool
		}
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		valueType, err := decodeType(v.ValueType)
		if err != nil {
			return nil, err
		}
		return &Setlike{ValueType: valueType, Readonly: v.Readonly}, nil
	default:
		return nil, fmt.Errorf("ast: unknown member kind %q", kind)
	}
}

func decodeKV(keyRaw, valueRaw json.RawMessage) (Type, Type, error) {
	var keyType, valueType Type
	var err error
	if len(keyRaw) > 0 {
		keyType, err = decodeType(keyRaw)
		if err != nil {
			return nil, nil, err
		}
	}
	valueType, err = decodeType(valueRaw)
	if err != nil {
		return nil, nil, err
	}
	return keyType, valueType, nil
}

var primitiveLookup = func() map[string]PrimitiveKind {
	m := make(map[string]PrimitiveKind, len(primitiveNames))
	for k, v := range primitiveNames {
		m[v] = k
	}
	return m
}()

func decodeType(data []byte) (Type, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var asString string
	if err := json.Unmarshal(data, &asString); err == nil {
		if kind, ok := primitiveLookup[asString]; ok {
			return &PrimitiveType{Primitive: kind}, nil
		}
		return nil, fmt.Errorf("ast: unknown primitive type %q", asString)
	}

	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, err
	}
	switch {
	case probe["reference"] != nil:
		var name string
		json.Unmarshal(probe["reference"], &name)
		return &TypeReference{Name: name}, nil
	case probe["sequence"] != nil:
		el, err := decodeType(probe["sequence"])
		if err != nil {
			return nil, err
		}
		return &SequenceType{Element: el}, nil
	case probe["frozen_array"] != nil:
		el, err := decodeType(probe["frozen_array"])
		if err != nil {
			return nil, err
		}
		return &FrozenArrayType{Element: el}, nil
	case probe["observable_array"] != nil:
		el, err := decodeType(probe["observable_array"])
		if err != nil {
			return nil, err
		}
		return &ObservableArrayType{Element: el}, nil
	case probe["record"] != nil:
		var kv struct {
			Key   json.RawMessage
			Value json.RawMessage
		}
		if err := json.Unmarshal(probe["record"], &kv); err != nil {
			return nil, err
		}
		key, err := decodeType(kv.Key)
		if err != nil {
			return nil, err
		}
		value, err := decodeType(kv.Value)
		if err != nil {
			return nil, err
		}
		return &RecordType{Key: key, Value: value}, nil
	case probe["promise"] != nil:
		result, err := decodeType(probe["promise"])
		if err != nil {
			return nil, err
		}
		return &PromiseType{Result: result}, nil
	case probe["nullable"] != nil:
		inner, err := decodeType(probe["nullable"])
		if err != nil {
			return nil, err
		}
		return &NullableType{Inner: inner}, nil
	case probe["union"] != nil:
		var raws []json.RawMessage
		if err := json.Unmarshal(probe["union"], &raws); err != nil {
			return nil, err
		}
		members := make([]Type, 0, len(raws))
		for _, raw := range raws {
			m, err := decodeType(raw)
			if err != nil {
				return nil, err
			}
			members = append(members, m)
		}
		return &UnionType{Members: members}, nil
	default:
		return nil, fmt.Errorf("ast: unrecognised type shape: %s", string(data))
	}
}

func decodeValue(data []byte) (Value, error) {
	if len(data) == 0 {
		return nil, nil
	}
	kind, err := kindOf(data)
	if err != nil {
		return nil, err
	}
	switch kind {
	case "null":
		return &NullValue{}, nil
	case "boolean":
		var v struct{ Value bool }
		json.Unmarshal(data, &v)
		return &BoolValue{Value: v.Value}, nil
	case "integer":
		var v struct {
			Value  int64
			Lexeme string
		}
		json.Unmarshal(data, &v)
		return &IntegerValue{Value: v.Value, Lexeme: v.Lexeme}, nil
	case "float":
		var v struct {
			Value  float64
			Lexeme string
		}
		json.Unmarshal(data, &v)
		return &FloatValue{Value: v.Value, Lexeme: v.Lexeme}, nil
	case "string":
		var v struct{ Value string }
		json.Unmarshal(data, &v)
		return &StringValue{Value: v.Value}, nil
	case "sequence":
		return &EmptySequenceValue{}, nil
	case "dictionary":
		return &EmptyDictionaryValue{}, nil
	case "infinity":
		return &InfinityValue{}, nil
	case "negative_infinity":
		return &NegativeInfinityValue{}, nil
	case "nan":
		return &NaNValue{}, nil
	default:
		return nil, fmt.Errorf("ast: unknown value kind %q", kind)
	}
}
