package ast

import "encoding/json"

func (d *Interface) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind               string              `json:"kind"`
		Name               string              `json:"name"`
		Parent             *string             `json:"parent,omitempty"`
		Members            []InterfaceMember   `json:"members"`
		ExtendedAttributes []*ExtendedAttribute `json:"extended_attributes,omitempty"`
		Partial            bool                `json:"partial"`
	}{
		Kind: d.Kind(), Name: d.Name.Lexeme, Parent: optionalString(d.Parent),
		Members: nonNilMembers(d.Members), ExtendedAttributes: d.ExtendedAttributes, Partial: d.Partial,
	})
}

func (d *InterfaceMixin) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind               string              `json:"kind"`
		Name               string              `json:"name"`
		Members            []InterfaceMember   `json:"members"`
		ExtendedAttributes []*ExtendedAttribute `json:"extended_attributes,omitempty"`
		Partial            bool                `json:"partial"`
	}{Kind: d.Kind(), Name: d.Name.Lexeme, Members: nonNilMembers(d.Members), ExtendedAttributes: d.ExtendedAttributes, Partial: d.Partial})
}

func (d *Dictionary) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind               string              `json:"kind"`
		Name               string              `json:"name"`
		Parent             *string             `json:"parent,omitempty"`
		Members            []*DictionaryMember `json:"members"`
		ExtendedAttributes []*ExtendedAttribute `json:"extended_attributes,omitempty"`
		Partial            bool                `json:"partial"`
	}{Kind: d.Kind(), Name: d.Name.Lexeme, Parent: optionalString(d.Parent), Members: d.Members, ExtendedAttributes: d.ExtendedAttributes, Partial: d.Partial})
}

func (d *Enum) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind               string              `json:"kind"`
		Name               string              `json:"name"`
		Values             []string            `json:"values"`
		ExtendedAttributes []*ExtendedAttribute `json:"extended_attributes,omitempty"`
	}{Kind: d.Kind(), Name: d.Name.Lexeme, Values: d.Values, ExtendedAttributes: d.ExtendedAttributes})
}

func (d *Typedef) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind               string              `json:"kind"`
		Name               string              `json:"name"`
		Type               Type                `json:"type"`
		ExtendedAttributes []*ExtendedAttribute `json:"extended_attributes,omitempty"`
	}{Kind: d.Kind(), Name: d.Name.Lexeme, Type: d.Type, ExtendedAttributes: d.ExtendedAttributes})
}

func (d *Callback) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind               string              `json:"kind"`
		Name               string              `json:"name"`
		ReturnType         Type                `json:"return_type"`
		Arguments          []*Argument         `json:"arguments"`
		ExtendedAttributes []*ExtendedAttribute `json:"extended_attributes,omitempty"`
	}{Kind: d.Kind(), Name: d.Name.Lexeme, ReturnType: d.ReturnType, Arguments: d.Arguments, ExtendedAttributes: d.ExtendedAttributes})
}

func (d *CallbackInterface) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind               string              `json:"kind"`
		Name               string              `json:"name"`
		Members            []InterfaceMember   `json:"members"`
		ExtendedAttributes []*ExtendedAttribute `json:"extended_attributes,omitempty"`
	}{Kind: d.Kind(), Name: d.Name.Lexeme, Members: nonNilMembers(d.Members), ExtendedAttributes: d.ExtendedAttributes})
}

func (d *Includes) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind      string `json:"kind"`
		Interface string `json:"interface"`
		Mixin     string `json:"mixin"`
	}{Kind: d.Kind(), Interface: d.Interface, Mixin: d.Mixin})
}

func (d *Namespace) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind               string              `json:"kind"`
		Name               string              `json:"name"`
		Members            []InterfaceMember   `json:"members"`
		ExtendedAttributes []*ExtendedAttribute `json:"extended_attributes,omitempty"`
		Partial            bool                `json:"partial"`
	}{Kind: d.Kind(), Name: d.Name.Lexeme, Members: nonNilMembers(d.Members), ExtendedAttributes: d.ExtendedAttributes, Partial: d.Partial})
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// nonNilMembers guarantees `"members": []` rather than `"members": null`
// for an empty body, since round-trip comparisons are structural and a
// nil/empty slice distinction is not semantically meaningful here.
func nonNilMembers(m []InterfaceMember) []InterfaceMember {
	if m == nil {
		return []InterfaceMember{}
	}
	return m
}
