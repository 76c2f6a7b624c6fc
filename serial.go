// Package serial provides deterministic, allocation-light building blocks
// for composing and decomposing fixed-length binary frames from typed
// scalar fields.
//
// Goals include:
//
// Deterministic: every operation is a pure function of its immediate inputs.
// Nothing is retained between calls, so all operations are safe to use
// concurrently without locking.
//
// Exact: sequence lengths are fixed at construction, byte widths are
// explicit, and every mismatch is either a compile-time type error or a
// returned error. No operation silently truncates or pads.
//
// Modular and Open: the low-level pieces are exposed in sub-packages so
// custom frame formats can be built directly on them.
//
// serial/seq provides fixed-length sequences with range construction and
// concatenation.
//
// serial/byteconv splits fixed-width integers into bytes, in native
// (least-significant first) or reversed order, and assembles them back.
//
// serial/hdlc is an example 14-byte frame format built on the two; a fixed
// header, an opaque payload and a checksum footer.
//
// serial/member stores per-type member metadata for serialization between
// objects and named fields. It is a collaborator of the codec, not a part
// of it.
package serial

import "github.com/MiddleMan5/Serialization/member"

// Register registers the type C for member enumeration and lookup.
// It is a shortcut for member.Register.
func Register[C any](name string, members ...member.Member[C]) error {
	return member.Register[C](name, members...)
}
