// Package abi defines the flat, bit-exact layer of the node protocol: the
// 16-byte Flat value, its Flags, the one-byte operation tag and the error
// codes that travel inside error-kind values.
//
// Nothing in this package knows about nodes or native values; see package
// value for the ownership-aware counterparts.
//
// # Payloads
//
// Strings, paths and value arrays do not fit in the 8-byte slot.  Their
// backing slices are registered in a pin table and the slot carries the pin.
// Whoever consumes a flat takes its pin with Unpin, exactly once. A Boxed
// flat hands over the payload itself; an unboxed one only lends it, and the
// payload must not be retained past the call that carried the flat.
package abi
