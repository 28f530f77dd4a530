// Package engine adapts YAML parsers into document engines.
//
// An [Engine] turns source bytes into an immutable [document.Document].
// Two engines are provided:
//
//   - [Goccy], backed by github.com/goccy/go-yaml (the default)
//   - [YAMLv3], backed by gopkg.in/yaml.v3
//
// Both engines produce the same graph for the same input: scalars carry
// their resolved text (null-like values keep their raw text, which is
// empty for an implicit null), aliases resolve to the anchored node and
// tags are dropped. Parse loads the first document of a stream; ParseAll
// loads every document.
//
// Parse failures are reported as [*ParseError], which wraps [ErrParse].
package engine
