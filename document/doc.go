// Package document provides the immutable node graph produced by a YAML
// document engine.
//
// # Overview
//
// A [Document] stores every node of one parsed YAML document in a flat
// table. Nodes are addressed by [Ref]; the zero Ref means "no node". A
// node is one of
//
//   - ScalarNode: resolved scalar text
//   - SequenceNode: an ordered list of child refs
//   - MappingNode: an ordered list of key/value ref pairs
//
// Aliases do not appear as nodes: an alias is resolved to the ref of the
// node carrying its anchor, so the graph may share subtrees (and may even
// be cyclic for self-referencing anchors).
//
// # Positions
//
// Every node records a start and end [Mark]. Engines supply start
// positions; end positions are recovered from the source by the token
// package when the document is built.
//
// # Immutability
//
// Documents are only created by [Builder.Build] and are never modified
// afterwards. All accessors are safe for concurrent use without locking,
// and tolerate the zero Ref and out of range refs by returning zero values.
package document
