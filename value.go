package openstep

import (
	"sort"
)

// Kind identifies which of the three value types a Value holds.
type Kind uint

const (
	Invalid Kind = iota
	DictionaryKind
	ArrayKind
	StringKind
)

var kindNames = map[Kind]string{
	Invalid:        "invalid",
	DictionaryKind: "dictionary",
	ArrayKind:      "array",
	StringKind:     "string",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return kindNames[Invalid]
}

// Value is a decoded property list value. It is implemented by String, Dictionary and
// Array, and by nothing else.
type Value interface {
	Kind() Kind
	TypeName() string
}

// String is a scalar. Quoted and unquoted literals both decode to String.
type String string

func (String) Kind() Kind {
	return StringKind
}

func (String) TypeName() string {
	return StringKind.String()
}

// Dictionary maps keys to values. Key order in the source document is not preserved.
type Dictionary map[string]Value

func (Dictionary) Kind() Kind {
	return DictionaryKind
}

func (Dictionary) TypeName() string {
	return DictionaryKind.String()
}

// Keys returns the dictionary's keys in sorted order.
func (d Dictionary) Keys() []string {
	keys := make(sort.StringSlice, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	keys.Sort()
	return keys
}

// Range calls r for every entry, in key order.
func (d Dictionary) Range(r func(int, string, Value)) {
	for i, k := range d.Keys() {
		r(i, k, d[k])
	}
}

// LookupString returns the value for key if it is a String.
func (d Dictionary) LookupString(key string) (string, bool) {
	s, ok := d[key].(String)
	return string(s), ok
}

func (d Dictionary) LookupDictionary(key string) (Dictionary, bool) {
	sub, ok := d[key].(Dictionary)
	return sub, ok
}

func (d Dictionary) LookupArray(key string) (Array, bool) {
	a, ok := d[key].(Array)
	return a, ok
}

// Array is an ordered sequence of values.
type Array []Value

func (Array) Kind() Kind {
	return ArrayKind
}

func (Array) TypeName() string {
	return ArrayKind.String()
}

func (a Array) Range(r func(int, Value)) {
	for i, v := range a {
		r(i, v)
	}
}

// Interface converts v into plain Go values: string, []interface{} and
// map[string]interface{}, the same shapes encoding/json produces. A nil Value converts
// to nil.
func Interface(v Value) interface{} {
	switch v := v.(type) {
	case String:
		return string(v)
	case Array:
		out := make([]interface{}, len(v))
		v.Range(func(i int, subv Value) {
			out[i] = Interface(subv)
		})
		return out
	case Dictionary:
		out := make(map[string]interface{}, len(v))
		for k, subv := range v {
			out[k] = Interface(subv)
		}
		return out
	}
	return nil
}
