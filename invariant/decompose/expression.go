package decompose

import (
	"reflect"

	"github.com/LerianStudio/lib-invariant/invariant/highlight"
	"github.com/LerianStudio/lib-invariant/invariant/internal/nilcheck"
)

// Expression is an evaluated condition that remembers how it was built.
type Expression interface {
	// Passed reports whether the condition holds.
	Passed() bool
	// Value returns the computed result.
	Value() any
	// Operator returns the root operator, or OpNone for a single value.
	Operator() Operator
	// Render formats the operands and operator of the expression.
	Render(style highlight.Style) string
	String() string
}

// Truthy reports whether v counts as a passing condition.
//
// A bool is itself and an Expression is its Passed. An Ordering is true
// unless it is Equivalent. Nil pointers, slices, maps, channels, functions
// and interfaces are false. Any other value is true when it is not its
// type's zero value.
func Truthy(v any) bool {
	switch x := v.(type) {
	case bool:
		return x
	case Expression:
		return x.Passed()
	case Ordering:
		return x != Equivalent
	}

	if nilcheck.Interface(v) {
		return false
	}

	return !reflect.ValueOf(v).IsZero()
}

// Wrap turns a condition into an Expression. Expressions are returned as
// is; any other value becomes a Unary judged by Truthy.
func Wrap(cond any) Expression {
	switch c := cond.(type) {
	case Expression:
		return c
	case bool:
		return Unary[bool]{value: c}
	default:
		return Unary[any]{value: c}
	}
}

// operandValue resolves a sub-expression used as an operand to its result.
func operandValue(v any) any {
	if e, ok := v.(Expression); ok {
		return e.Value()
	}

	return v
}

func isBroken(v any) bool {
	if b, ok := v.(interface{ broken() bool }); ok {
		return b.broken()
	}

	return false
}

// Unary is a single captured value with no operator.
type Unary[T any] struct {
	value T
}

// Get returns the captured value.
func (u Unary[T]) Get() T {
	return u.value
}

func (u Unary[T]) Passed() bool {
	return Truthy(u.value)
}

func (u Unary[T]) Value() any {
	return u.value
}

func (u Unary[T]) Operator() Operator {
	return OpNone
}

func (u Unary[T]) Render(style highlight.Style) string {
	return renderOperand(u.value, style)
}

func (u Unary[T]) String() string {
	return u.Render(highlight.Unstyled)
}

// node holds the untyped part of a binary expression.
type node struct {
	op     Operator
	lhs    any
	rhs    any
	result any
	nested Expression

	// failed marks this node's own operation as not evaluable; poisoned
	// also covers a failed operand.
	failed   bool
	poisoned bool
}

func (n *node) broken() bool {
	return n.poisoned
}

// Passed reports whether every step evaluated and the result is truthy.
func (n *node) Passed() bool {
	return !n.poisoned && Truthy(n.result)
}

// Value returns the computed result.
func (n *node) Value() any {
	return n.result
}

// Operator returns the node's operator.
func (n *node) Operator() Operator {
	return n.op
}

// LHS returns the left operand. For a nested node it is the sub-expression.
func (n *node) LHS() any {
	if n.nested != nil {
		return n.nested
	}

	return n.lhs
}

// RHS returns the right operand as it was passed.
func (n *node) RHS() any {
	return n.rhs
}

// Nested reports whether the left operand is itself an expression.
func (n *node) Nested() bool {
	return n.nested != nil
}

// Evaluable reports whether every operation in the chain could be computed.
func (n *node) Evaluable() bool {
	return !n.poisoned
}

// Render formats the expression, nesting prior operations in parentheses.
func (n *node) Render(style highlight.Style) string {
	return renderNode(n, style)
}

func (n *node) String() string {
	return n.Render(highlight.Unstyled)
}
