package openstep

// RawValue holds a decoded subtree as-is. Storing part of a document in a RawValue
// delays its conversion to Go values until the caller knows what it should be; this is
// how a project file's heterogeneous "objects" dictionary is usually handled.
type RawValue struct {
	v Value
}

// Value returns the subtree, or nil if nothing was stored.
func (r RawValue) Value() Value {
	return r.v
}

// Unmarshal stores the subtree in the value pointed to by v, following the rules of
// Unmarshal.
func (r RawValue) Unmarshal(v interface{}, opts ...Option) error {
	d := &Decoder{}
	o := &readOptions{}
	if err := applyOptions(o, opts); err != nil {
		return err
	}
	d.lax = o.lax
	return d.unmarshalValue(r.v, v)
}
