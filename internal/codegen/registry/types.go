// Package registry holds the fixed table of protocol types apigen knows how to
// marshal, together with the native representation and the encode, decode
// and dispatch routines generated code must call for each of them.
package registry

import (
	"encoding/json"
)

// Type enumerates every protocol type the generator supports.
// Adding a constant without a matching entry in bindings is caught by
// TestBindingsTotal.
type Type int

const (
	ArrayOfWindow Type = iota
	ArrayOfBuffer
	ArrayOfTabpage
	ArrayOfString
	ArrayOfDictionary
	Position // ArrayOf(Integer, 2)
	Integer
	Void
	String
	Buffer
	Window
	Tabpage
	Dictionary
	Array
	Object
	Boolean

	typeCount
)

// Symbol is the name of a generated C routine. The zero value is None.
type Symbol string

// None marks an operation that is not generated for a protocol type.
const None Symbol = ""

func (s Symbol) IsNone() bool { return s == None }

func (s Symbol) String() string {
	if s.IsNone() {
		return "none"
	}
	return string(s)
}

// MarshalYAML emits null for None so dumps never show an invented symbol.
func (s Symbol) MarshalYAML() (any, error) {
	if s.IsNone() {
		return nil, nil
	}
	return string(s), nil
}

func (s Symbol) MarshalJSON() ([]byte, error) {
	if s.IsNone() {
		return []byte("null"), nil
	}
	return json.Marshal(string(s))
}

// Binding is the set of generation facts attached to one protocol type.
type Binding struct {
	Type     Type   `json:"-" yaml:"-"`
	Name     string `json:"name" yaml:"name"`
	Native   string `json:"native" yaml:"native"`
	Encode   Symbol `json:"encode" yaml:"encode"`
	Decode   Symbol `json:"decode" yaml:"decode"`
	Dispatch Symbol `json:"dispatch" yaml:"dispatch"`
}

var bindings = [typeCount]Binding{
	ArrayOfWindow:     {Name: "ArrayOf(Window)", Native: "Eina_List*", Encode: "pack_list_of_windows", Decode: "pack_windows_get"},
	ArrayOfBuffer:     {Name: "ArrayOf(Buffer)", Native: "Eina_List*", Encode: "pack_list_of_buffers", Decode: "pack_buffers_get"},
	ArrayOfTabpage:    {Name: "ArrayOf(Tabpage)", Native: "Eina_List*", Encode: "pack_list_of_tabpages", Decode: "pack_tabpages_get"},
	ArrayOfString:     {Name: "ArrayOf(String)", Native: "Eina_List*", Encode: "pack_list_of_strings", Decode: "pack_strings_get"},
	ArrayOfDictionary: {Name: "ArrayOf(Dictionary)", Native: "Eina_List*", Encode: "pack_non_implemented", Decode: "pack_non_implemented_get"},
	Position:          {Name: "ArrayOf(Integer, 2)", Native: "s_position", Encode: "pack_position", Decode: "pack_position_get"},
	Integer:           {Name: "Integer", Native: "t_int", Encode: "msgpack_pack_int64", Decode: "pack_int_get", Dispatch: "_arg_t_int_get"},
	Void:              {Name: "void", Native: "void"},
	String:            {Name: "String", Native: "Eina_Stringshare*", Encode: "pack_stringshare", Decode: "pack_stringshare_get", Dispatch: "_arg_stringshare_get"},
	Buffer:            {Name: "Buffer", Native: "s_buffer*", Encode: "pack_buffer", Decode: "pack_buffer_get"},
	Window:            {Name: "Window", Native: "s_window*", Encode: "pack_window", Decode: "pack_window_get"},
	Tabpage:           {Name: "Tabpage", Native: "s_tabpage*", Encode: "pack_tabpage", Decode: "pack_tabpage_get"},
	Dictionary:        {Name: "Dictionary", Native: "Eina_Hash*", Encode: "pack_dictionary"},
	Array:             {Name: "Array", Native: "Eina_List*", Encode: "pack_non_implemented", Decode: "pack_non_implemented_get"},
	Object:            {Name: "Object", Native: "s_object*", Encode: "pack_object", Decode: "pack_object_get"},
	Boolean:           {Name: "Boolean", Native: "Eina_Bool", Encode: "pack_boolean", Decode: "pack_boolean_get", Dispatch: "_arg_bool_get"},
}

// String returns the protocol type name as written in API schemas.
func (t Type) String() string {
	if t < 0 || t >= typeCount {
		return "Type(invalid)"
	}
	return bindings[t].Name
}

// Valid reports whether t is one of the enumerated protocol types.
func (t Type) Valid() bool { return t >= 0 && t < typeCount }
