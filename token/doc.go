// Package token provides source position support for YAML documents.
//
// [PosDoc] converts between byte offsets and line/column pairs.
//
// Engines report where a node starts but rarely where it ends; [ScalarEnd]
// and [FlowEnd] recover the end of a node's textual extent by scanning the
// source from its start.
package token
