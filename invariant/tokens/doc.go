// Package tokens defines the token vocabulary shared by the parser and the
// highlighter: the closed set of token kinds and the Token record.
package tokens
