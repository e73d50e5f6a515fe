// Package parser is a single-pass lexer and heuristic classifier for
// code-like strings such as assertion conditions and symbol names.
//
// It is not a real parser. The classification rules aim for readable
// highlighting; when they disagree with the actual grammar the only
// consequence is a token rendered in the wrong color.
package parser
