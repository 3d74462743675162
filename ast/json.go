package ast

import "encoding/json"

// MarshalJSON implements the tagged-object JSON representation spec.md
// §6.3 describes: one object per definition, discriminated by "kind".
// Primitive types serialize as a bare string; every other Type serializes
// as a single-keyed object so a reader can recover the variant without a
// side-channel discriminator.
func (f *File) MarshalJSON() ([]byte, error) {
	defs := make([]json.RawMessage, 0, len(f.Definitions))
	for _, d := range f.Definitions {
		raw, err := json.Marshal(d)
		if err != nil {
			return nil, err
		}
		defs = append(defs, raw)
	}
	return json.Marshal(struct {
		Definitions []json.RawMessage `json:"definitions"`
	}{Definitions: defs})
}

func (t *PrimitiveType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Primitive.String())
}

func (t *TypeReference) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Reference string `json:"reference"`
	}{Reference: t.Name})
}

func (t *SequenceType) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Sequence Type `json:"sequence"`
	}{Sequence: t.Element})
}

func (t *FrozenArrayType) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		FrozenArray Type `json:"frozen_array"`
	}{FrozenArray: t.Element})
}

func (t *ObservableArrayType) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ObservableArray Type `json:"observable_array"`
	}{ObservableArray: t.Element})
}

func (t *RecordType) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Record struct {
			Key   Type `json:"key"`
			Value Type `json:"value"`
		} `json:"record"`
	}{Record: struct {
		Key   Type `json:"key"`
		Value Type `json:"value"`
	}{Key: t.Key, Value: t.Value}})
}

func (t *PromiseType) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Promise Type `json:"promise"`
	}{Promise: t.Result})
}

func (t *NullableType) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Nullable Type `json:"nullable"`
	}{Nullable: t.Inner})
}

func (t *UnionType) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Union []Type `json:"union"`
	}{Union: t.Members})
}

// value JSON shapes keep both the parsed value and the original source
// lexeme for IntegerValue/FloatValue, per spec.md §6.4.

func (v *NullValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind string `json:"kind"`
	}{Kind: "null"})
}

func (v *BoolValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind  string `json:"kind"`
		Value bool   `json:"value"`
	}{Kind: "boolean", Value: v.Value})
}

func (v *IntegerValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind   string `json:"kind"`
		Value  int64  `json:"value"`
		Lexeme string `json:"lexeme"`
	}{Kind: "integer", Value: v.Value, Lexeme: v.Lexeme})
}

func (v *FloatValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind   string  `json:"kind"`
		Value  float64 `json:"value"`
		Lexeme string  `json:"lexeme"`
	}{Kind: "float", Value: v.Value, Lexeme: v.Lexeme})
}

func (v *StringValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind  string `json:"kind"`
		Value string `json:"value"`
	}{Kind: "string", Value: v.Value})
}

func (v *EmptySequenceValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind string `json:"kind"`
	}{Kind: "sequence"})
}

func (v *EmptyDictionaryValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind string `json:"kind"`
	}{Kind: "dictionary"})
}

func (v *InfinityValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind string `json:"kind"`
	}{Kind: "infinity"})
}

func (v *NegativeInfinityValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind string `json:"kind"`
	}{Kind: "negative_infinity"})
}

func (v *NaNValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind string `json:"kind"`
	}{Kind: "nan"})
}
