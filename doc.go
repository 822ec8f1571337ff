// Package vnodes is a hierarchical namespace of dynamically typed,
// reference-counted nodes addressed by slash-separated paths.
//
// A Context owns a root node and a current node. Absolute paths ("/a/b")
// resolve from the root, relative ones ("a/b") from the current node, and a
// trailing slash ("/a/") names the node itself rather than a binding in it.
//
//	c := vnodes.New()
//	defer c.Close()
//	_ = vnodes.Insert(c, "/foo", int64(-5))
//	n, err := vnodes.Get[int64](c, "foo") // -5, nil
//
// Nodes are reached through the protocol of package value; package mapnode
// provides the default in-memory node.
package vnodes
