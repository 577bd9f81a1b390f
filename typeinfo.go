package openstep

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
)

// typeInfo holds details for the openstep representation of a struct type.
type typeInfo struct {
	fields []fieldInfo
}

// fieldInfo holds details for the openstep representation of a single field.
type fieldInfo struct {
	idx  []int
	name string
}

var tinfoMap sync.Map // map[reflect.Type]*typeInfo

// getTypeInfo returns the typeInfo structure with details necessary for decoding into
// a struct of type typ.
func getTypeInfo(typ reflect.Type) (*typeInfo, error) {
	if ti, ok := tinfoMap.Load(typ); ok {
		return ti.(*typeInfo), nil
	}

	tinfo := &typeInfo{}
	n := typ.NumField()
	for i := 0; i < n; i++ {
		f := typ.Field(i)
		if f.PkgPath != "" && !f.Anonymous {
			continue // Private field
		}
		tag := f.Tag.Get("openstep")
		if tag == "-" {
			continue
		}

		// For embedded structs, embed its fields.
		if f.Anonymous && tag == "" {
			t := f.Type
			if t.Kind() == reflect.Ptr {
				t = t.Elem()
			}
			if t.Kind() == reflect.Struct {
				inner, err := getTypeInfo(t)
				if err != nil {
					return nil, err
				}
				for _, finfo := range inner.fields {
					finfo.idx = append([]int{i}, finfo.idx...)
					if err := addFieldInfo(typ, tinfo, finfo); err != nil {
						return nil, err
					}
				}
				continue
			}
			if f.PkgPath != "" {
				continue
			}
		}

		name := f.Name
		if tag != "" {
			// only the name is meaningful; options after a comma are accepted and ignored.
			if j := strings.IndexByte(tag, ','); j >= 0 {
				tag = tag[:j]
			}
			if tag != "" {
				name = tag
			}
		}
		if err := addFieldInfo(typ, tinfo, fieldInfo{idx: f.Index, name: name}); err != nil {
			return nil, err
		}
	}

	ti, _ := tinfoMap.LoadOrStore(typ, tinfo)
	return ti.(*typeInfo), nil
}

// addFieldInfo adds finfo to tinfo.fields. A field at a shallower depth hides deeper
// fields of the same name; two fields at the same depth conflict.
func addFieldInfo(typ reflect.Type, tinfo *typeInfo, newf fieldInfo) error {
	for i, oldf := range tinfo.fields {
		if oldf.name != newf.name {
			continue
		}
		switch {
		case len(oldf.idx) < len(newf.idx):
			return nil
		case len(oldf.idx) > len(newf.idx):
			tinfo.fields[i] = newf
			return nil
		default:
			return fmt.Errorf("openstep: %v has conflicting fields named %q", typ, newf.name)
		}
	}
	tinfo.fields = append(tinfo.fields, newf)
	return nil
}

// value returns v's field value corresponding to finfo. It allocates nil embedded
// pointers along the way.
func (finfo *fieldInfo) value(v reflect.Value) reflect.Value {
	for i, x := range finfo.idx {
		if i > 0 {
			t := v.Type()
			if t.Kind() == reflect.Ptr && t.Elem().Kind() == reflect.Struct {
				if v.IsNil() {
					v.Set(reflect.New(v.Type().Elem()))
				}
				v = v.Elem()
			}
		}
		v = v.Field(x)
	}
	return v
}
