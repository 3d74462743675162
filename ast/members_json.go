package ast

import "encoding/json"

func (m *Attribute) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind               string              `json:"kind"`
		Name               string              `json:"name"`
		Type               Type                `json:"type"`
		Readonly           bool                `json:"readonly"`
		Static             bool                `json:"static"`
		Stringifier        bool                `json:"stringifier"`
		Inherit            bool                `json:"inherit"`
		ExtendedAttributes []*ExtendedAttribute `json:"extended_attributes,omitempty"`
	}{
		Kind: m.Kind(), Name: m.Name.Lexeme, Type: m.Type, Readonly: m.Readonly,
		Static: m.Static, Stringifier: m.Stringifier, Inherit: m.Inherit,
		ExtendedAttributes: m.ExtendedAttributes,
	})
}

var specialNames = map[Special]string{
	NoSpecial: "", SpecialGetter: "getter", SpecialSetter: "setter",
	SpecialDeleter: "deleter", SpecialStringifier: "stringifier",
}

func (s Special) String() string { return specialNames[s] }

func (m *Operation) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind               string              `json:"kind"`
		Name               string              `json:"name,omitempty"`
		ReturnType         Type                `json:"return_type"`
		Arguments          []*Argument         `json:"arguments"`
		Static             bool                `json:"static"`
		Special            string              `json:"special,omitempty"`
		ExtendedAttributes []*ExtendedAttribute `json:"extended_attributes,omitempty"`
	}{
		Kind: m.Kind(), Name: m.Name, ReturnType: m.ReturnType, Arguments: nonNilArgs(m.Arguments),
		Static: m.Static, Special: m.SpecialForm.String(), ExtendedAttributes: m.ExtendedAttributes,
	})
}

func (m *Const) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind               string              `json:"kind"`
		Name               string              `json:"name"`
		Type               Type                `json:"type"`
		Value              Value               `json:"value"`
		ExtendedAttributes []*ExtendedAttribute `json:"extended_attributes,omitempty"`
	}{Kind: m.Kind(), Name: m.Name.Lexeme, Type: m.Type, Value: m.Value, ExtendedAttributes: m.ExtendedAttributes})
}

func (m *Constructor) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind               string              `json:"kind"`
		Arguments          []*Argument         `json:"arguments"`
		ExtendedAttributes []*ExtendedAttribute `json:"extended_attributes,omitempty"`
	}{Kind: m.Kind(), Arguments: nonNilArgs(m.Arguments), ExtendedAttributes: m.ExtendedAttributes})
}

var stringifierFormNames = map[StringifierForm]string{
	StringifierBare: "bare", StringifierAttributeForm: "attribute", StringifierOperationForm: "operation",
}

func (m *Stringifier) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind string `json:"kind"`
		Form string `json:"form"`
	}{Kind: m.Kind(), Form: stringifierFormNames[m.Form]})
}

func (m *Iterable) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind      string `json:"kind"`
		KeyType   Type   `json:"key_type,omitempty"`
		ValueType Type   `json:"value_type"`
	}{Kind: m.Kind(), KeyType: m.KeyType, ValueType: m.ValueType})
}

func (m *AsyncIterable) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind      string      `json:"kind"`
		KeyType   Type        `json:"key_type,omitempty"`
		ValueType Type        `json:"value_type"`
		Arguments []*Argument `json:"arguments,omitempty"`
	}{Kind: m.Kind(), KeyType: m.KeyType, ValueType: m.ValueType, Arguments: m.Arguments})
}

func (m *Maplike) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind      string `json:"kind"`
		KeyType   Type   `json:"key_type"`
		ValueType Type   `json:"value_type"`
		Readonly  bool   `json:"readonly"`
	}{Kind: m.Kind(), KeyType: m.KeyType, ValueType: m.ValueType, Readonly: m.Readonly})
}

func (m *Setlike) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind      string `json:"kind"`
		ValueType Type   `json:"value_type"`
		Readonly  bool   `json:"readonly"`
	}{Kind: m.Kind(), ValueType: m.ValueType, Readonly: m.Readonly})
}

func (m *DictionaryMember) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Name               string              `json:"name"`
		Type               Type                `json:"type"`
		Required           bool                `json:"required"`
		DefaultValue       Value               `json:"default_value,omitempty"`
		ExtendedAttributes []*ExtendedAttribute `json:"extended_attributes,omitempty"`
	}{Name: m.Name.Lexeme, Type: m.Type, Required: m.Required, DefaultValue: m.DefaultValue, ExtendedAttributes: m.ExtendedAttributes})
}

func (a *Argument) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Name               string              `json:"name"`
		Type               Type                `json:"type"`
		Optional           bool                `json:"optional"`
		Variadic           bool                `json:"variadic"`
		DefaultValue       Value               `json:"default_value,omitempty"`
		ExtendedAttributes []*ExtendedAttribute `json:"extended_attributes,omitempty"`
	}{Name: a.Name.Lexeme, Type: a.Type, Optional: a.Optional, Variadic: a.Variadic, DefaultValue: a.DefaultValue, ExtendedAttributes: a.ExtendedAttributes})
}

func (e *ExtendedAttribute) MarshalJSON() ([]byte, error) {
	type value struct {
		Identifier     string   `json:"identifier,omitempty"`
		IdentifierList []string `json:"identifier_list,omitempty"`
	}
	var v *value
	if e.Value.HasValue {
		v = &value{Identifier: e.Value.Identifier, IdentifierList: e.Value.IdentifierList}
	}
	return json.Marshal(struct {
		Name      string      `json:"name"`
		Value     *value      `json:"value,omitempty"`
		Arguments []*Argument `json:"arguments,omitempty"`
	}{Name: e.Name.Lexeme, Value: v, Arguments: e.Arguments})
}

func nonNilArgs(a []*Argument) []*Argument {
	if a == nil {
		return []*Argument{}
	}
	return a
}
