package openstep

import (
	"encoding"
	"fmt"
	"reflect"
	"runtime"
	"strconv"
)

// Unmarshaler is implemented by types that decode themselves. UnmarshalOpenStep receives
// a function that stores the value being decoded into any Go value, following the
// rules of Unmarshal.
type Unmarshaler interface {
	UnmarshalOpenStep(unmarshal func(interface{}) error) error
}

// An InvalidUnmarshalError describes an invalid argument passed to Unmarshal or
// Decoder.Decode. (The argument must be a non-nil pointer.)
type InvalidUnmarshalError struct {
	Type reflect.Type
}

func (e *InvalidUnmarshalError) Error() string {
	if e.Type == nil {
		return "openstep: Unmarshal(nil)"
	}
	if e.Type.Kind() != reflect.Ptr {
		return "openstep: Unmarshal(non-pointer " + e.Type.String() + ")"
	}
	return "openstep: Unmarshal(nil " + e.Type.String() + ")"
}

var (
	unmarshalerType     = reflect.TypeOf((*Unmarshaler)(nil)).Elem()
	textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()
	valueType           = reflect.TypeOf((*Value)(nil)).Elem()
	rawValueType        = reflect.TypeOf(RawValue{})
)

func isEmptyInterface(v reflect.Value) bool {
	return v.Kind() == reflect.Interface && v.NumMethod() == 0
}

// implementsInterface reports whether val, or a pointer to it, implements interfaceType,
// and returns the implementation.
func implementsInterface(val reflect.Value, interfaceType reflect.Type) (interface{}, bool) {
	if val.CanInterface() && val.Type().Implements(interfaceType) {
		if val.Kind() == reflect.Ptr && val.IsNil() {
			return nil, false
		}
		return val.Interface(), true
	}
	if val.CanAddr() {
		pv := val.Addr()
		if pv.CanInterface() && pv.Type().Implements(interfaceType) {
			return pv.Interface(), true
		}
	}
	return nil, false
}

func mustParseInt(str string, base, bits int) int64 {
	i, err := strconv.ParseInt(str, base, bits)
	if err != nil {
		panic(err)
	}
	return i
}

func mustParseUint(str string, base, bits int) uint64 {
	i, err := strconv.ParseUint(str, base, bits)
	if err != nil {
		panic(err)
	}
	return i
}

func mustParseFloat(str string, bits int) float64 {
	f, err := strconv.ParseFloat(str, bits)
	if err != nil {
		panic(err)
	}
	return f
}

// mustParseBool accepts the spellings found in property lists as well as strconv's.
func mustParseBool(str string) bool {
	switch str {
	case "YES", "yes", "Y":
		return true
	case "NO", "no", "N":
		return false
	}
	b, err := strconv.ParseBool(str)
	if err != nil {
		panic(err)
	}
	return b
}

func (p *Decoder) unmarshalOpenStepInterface(pval Value, unmarshalable Unmarshaler) {
	err := unmarshalable.UnmarshalOpenStep(func(i interface{}) (err error) {
		defer func() {
			if r := recover(); r != nil {
				if _, ok := r.(runtime.Error); ok {
					panic(r)
				}
				err = r.(error)
			}
		}()
		p.unmarshal(pval, reflect.ValueOf(i))
		return
	})

	if err != nil {
		panic(err)
	}
}

func (p *Decoder) unmarshalTextInterface(pval String, unmarshalable encoding.TextUnmarshaler) {
	err := unmarshalable.UnmarshalText([]byte(pval))
	if err != nil {
		panic(err)
	}
}

func (p *Decoder) unmarshalLaxString(s string, val reflect.Value) {
	switch val.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i := mustParseInt(s, 10, val.Type().Bits())
		val.SetInt(i)
		return
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		i := mustParseUint(s, 10, val.Type().Bits())
		val.SetUint(i)
		return
	case reflect.Float32, reflect.Float64:
		f := mustParseFloat(s, val.Type().Bits())
		val.SetFloat(f)
		return
	case reflect.Bool:
		b := mustParseBool(s)
		val.SetBool(b)
		return
	default:
		panic(&UnmarshalTypeError{StringKind, val.Type()})
	}
}

func (p *Decoder) unmarshal(pval Value, val reflect.Value) {
	if pval == nil {
		return
	}

	if val.Kind() == reflect.Ptr {
		if val.IsNil() {
			val.Set(reflect.New(val.Type().Elem()))
		}
		val = val.Elem()
	}

	if isEmptyInterface(val) {
		val.Set(reflect.ValueOf(Interface(pval)))
		return
	}

	if val.Type() == valueType {
		val.Set(reflect.ValueOf(pval))
		return
	}

	if val.Type() == rawValueType {
		val.Set(reflect.ValueOf(RawValue{v: pval}))
		return
	}

	incompatibleTypeError := &UnmarshalTypeError{pval.Kind(), val.Type()}

	if receiver, can := implementsInterface(val, unmarshalerType); can {
		p.unmarshalOpenStepInterface(pval, receiver.(Unmarshaler))
		return
	}

	if receiver, can := implementsInterface(val, textUnmarshalerType); can {
		if str, ok := pval.(String); ok {
			p.unmarshalTextInterface(str, receiver.(encoding.TextUnmarshaler))
		} else {
			panic(incompatibleTypeError)
		}
		return
	}

	switch pval := pval.(type) {
	case String:
		if val.Kind() == reflect.String {
			val.SetString(string(pval))
			return
		}
		if p.lax {
			p.unmarshalLaxString(string(pval), val)
			return
		}

		panic(incompatibleTypeError)
	case Array:
		p.unmarshalArray(pval, val)
	case Dictionary:
		p.unmarshalDictionary(pval, val)
	}
}

func (p *Decoder) unmarshalArray(a Array, val reflect.Value) {
	var n int
	if val.Kind() == reflect.Slice {
		// Slice of element values.
		// Grow slice.
		cnt := len(a) + val.Len()
		if cnt >= val.Cap() {
			ncap := 2 * cnt
			if ncap < 4 {
				ncap = 4
			}
			new := reflect.MakeSlice(val.Type(), val.Len(), ncap)
			reflect.Copy(new, val)
			val.Set(new)
		}
		n = val.Len()
		val.SetLen(cnt)
	} else if val.Kind() == reflect.Array {
		if len(a) > val.Cap() {
			panic(fmt.Errorf("openstep: attempted to unmarshal %d values into an array of size %d", len(a), val.Cap()))
		}
	} else {
		panic(&UnmarshalTypeError{a.Kind(), val.Type()})
	}

	// Recur to read element into slice.
	a.Range(func(i int, sval Value) {
		p.unmarshal(sval, val.Index(n))
		n++
	})
}

func (p *Decoder) unmarshalDictionary(dict Dictionary, val reflect.Value) {
	typ := val.Type()
	switch val.Kind() {
	case reflect.Struct:
		tinfo, err := getTypeInfo(typ)
		if err != nil {
			panic(err)
		}

		for _, finfo := range tinfo.fields {
			if sval, ok := dict[finfo.name]; ok {
				p.unmarshal(sval, finfo.value(val))
			}
		}
	case reflect.Map:
		if typ.Key().Kind() != reflect.String {
			panic(&UnmarshalTypeError{dict.Kind(), typ})
		}
		if val.IsNil() {
			val.Set(reflect.MakeMap(typ))
		}

		dict.Range(func(i int, k string, sval Value) {
			keyv := reflect.ValueOf(k).Convert(typ.Key())
			mapElem := val.MapIndex(keyv)
			if !mapElem.IsValid() {
				mapElem = reflect.New(typ.Elem()).Elem()
			} else {
				// map elements are not addressable; decode into a copy.
				cp := reflect.New(typ.Elem()).Elem()
				cp.Set(mapElem)
				mapElem = cp
			}

			p.unmarshal(sval, mapElem)
			val.SetMapIndex(keyv, mapElem)
		})
	default:
		panic(&UnmarshalTypeError{dict.Kind(), typ})
	}
}
