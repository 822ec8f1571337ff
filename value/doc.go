// Package value is the ownership-aware side of the node protocol.
//
// A Value is a tagged union with one case per dynamic kind. Cases come in
// owned and borrowed pairs (String/StringRef, PathBuf/PathRef, Handle/Ref,
// Array/ArrayRef): a borrowed case aliases storage owned by someone else, and
// is only valid for the duration of the call that produced it. MakeOwned
// copies a value out of such storage.
//
// ToFlat and FromFlat convert between a Value and its abi.Flat form. ToFlat
// moves ownership into the flat: an owned node handle's count unit and any
// payload travel with it, and exactly one consumer must call FromFlat (or
// ReleaseFlat) on the result.
//
// Nodes are reached through a Record, which carries the node's single
// dispatch function, its implementation state and an atomic strong count.
// Handle owns one unit of that count; Ref does not. Every operation on a
// node, including Clone and Drop, is a call to the record's dispatch
// function.
//
// As and Of bind Go types to values:
//
//	v, _ := value.Of(int64(-5))               // Signed(-5)
//	n, err := value.As[int64](v)              // -5, nil
//	t, err := value.As[value.Tuple2[intern.Interned, bool]](arr)
package value
