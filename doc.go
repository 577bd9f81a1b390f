// Package openstep implements decoding of OpenStep (NeXTSTEP) text property lists,
// the format still used by Xcode project files (project.pbxproj).
//
// A document decodes into a tree of String, Array and Dictionary values; the root is
// always a Dictionary. Scalars are never typed by the decoder: numbers, booleans and
// dates are all Strings, and it is up to the caller (or Unmarshal, in Lax mode) to
// interpret them.
//
// The mapping between property list values and Go objects is described in the
// documentation for Unmarshal.
package openstep
