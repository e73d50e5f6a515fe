package decompose

import "reflect"

// Initial holds the leftmost operand of a capture chain.
//
//	decompose.Capture(a).Add(b).Eq(7)   // (a + b) == 7
//
// Each method evaluates its operation immediately and returns a Binary
// nesting the chain so far on the left. Methods apply strictly left to
// right, so a chain reads like the Go expression it mirrors only when Go's
// precedence would group it the same way; group differently by capturing
// a sub-chain and passing it as an operand.
type Initial[T any] struct {
	value T
}

// Capture starts a chain with v.
func Capture[T any](v T) Initial[T] {
	return Initial[T]{value: v}
}

// Of is Capture.
func Of[T any](v T) Initial[T] {
	return Capture(v)
}

// Get returns the captured operand.
func (i Initial[T]) Get() T {
	return i.value
}

// Unary turns the captured operand into a single-value condition.
func (i Initial[T]) Unary() Unary[T] {
	return Unary[T]{value: i.value}
}

// Binary is an evaluated binary operation whose result has type T.
type Binary[T any] struct {
	node
	value T
}

// Get returns the typed result.
func (b *Binary[T]) Get() T {
	return b.value
}

// origin describes where the left operand of a new node comes from.
type origin struct {
	lhs    any
	nested Expression
	broken bool
}

func (i Initial[T]) origin() origin {
	return origin{lhs: i.value}
}

func (b *Binary[T]) origin() origin {
	return origin{lhs: b.value, nested: b, broken: b.poisoned}
}

func newNode(op Operator, from origin, rhs any) node {
	return node{op: op, lhs: from.lhs, rhs: rhs, nested: from.nested, poisoned: from.broken || isBroken(rhs)}
}

func arithmetic[T any](op Operator, from origin, lhs T, rhs any) *Binary[T] {
	b := &Binary[T]{node: newNode(op, from, rhs)}

	if !b.poisoned {
		out, ok := apply(op, reflect.ValueOf(lhs), reflect.ValueOf(rhs))
		if ok {
			b.value, ok = out.Interface().(T)
		}

		if !ok {
			b.failed, b.poisoned = true, true
		}
	}

	b.result = b.value

	return b
}

func comparison(op Operator, from origin, lhs, rhs any) *Binary[bool] {
	b := &Binary[bool]{node: newNode(op, from, rhs)}

	if !b.poisoned {
		switch op {
		case OpEq:
			b.value = Equal(lhs, rhs)
		case OpNe:
			b.value = NotEqual(lhs, rhs)
		case OpLt:
			b.value = LessThan(lhs, rhs)
		case OpLe:
			b.value = LessEqual(lhs, rhs)
		case OpGt:
			b.value = GreaterThan(lhs, rhs)
		case OpGe:
			b.value = GreaterEqual(lhs, rhs)
		case OpAnd:
			b.value = Truthy(lhs) && Truthy(rhs)
		case OpOr:
			b.value = Truthy(lhs) || Truthy(rhs)
		}
	}

	b.result = b.value

	return b
}

func ordering(from origin, lhs, rhs any) *Binary[Ordering] {
	b := &Binary[Ordering]{node: newNode(OpCmp, from, rhs)}
	b.value = Unordered

	if !b.poisoned {
		b.value = Compare(lhs, rhs)
	}

	b.result = b.value

	return b
}

func comma(from origin, rhs any) *Binary[any] {
	b := &Binary[any]{node: newNode(OpComma, from, rhs)}
	b.value = operandValue(rhs)
	b.result = b.value

	return b
}

func (i Initial[T]) Add(rhs T) *Binary[T]    { return arithmetic(OpAdd, i.origin(), i.value, rhs) }
func (i Initial[T]) Sub(rhs T) *Binary[T]    { return arithmetic(OpSub, i.origin(), i.value, rhs) }
func (i Initial[T]) Mul(rhs T) *Binary[T]    { return arithmetic(OpMul, i.origin(), i.value, rhs) }
func (i Initial[T]) Div(rhs T) *Binary[T]    { return arithmetic(OpDiv, i.origin(), i.value, rhs) }
func (i Initial[T]) Mod(rhs T) *Binary[T]    { return arithmetic(OpMod, i.origin(), i.value, rhs) }
func (i Initial[T]) BitAnd(rhs T) *Binary[T] { return arithmetic(OpBitAnd, i.origin(), i.value, rhs) }
func (i Initial[T]) BitOr(rhs T) *Binary[T]  { return arithmetic(OpBitOr, i.origin(), i.value, rhs) }
func (i Initial[T]) BitXor(rhs T) *Binary[T] { return arithmetic(OpBitXor, i.origin(), i.value, rhs) }
func (i Initial[T]) AndNot(rhs T) *Binary[T] { return arithmetic(OpAndNot, i.origin(), i.value, rhs) }
func (i Initial[T]) Shl(n uint) *Binary[T]   { return arithmetic(OpShl, i.origin(), i.value, n) }
func (i Initial[T]) Shr(n uint) *Binary[T]   { return arithmetic(OpShr, i.origin(), i.value, n) }

func (i Initial[T]) And(rhs any) *Binary[bool] {
	return comparison(OpAnd, i.origin(), i.value, rhs)
}

func (i Initial[T]) Or(rhs any) *Binary[bool] {
	return comparison(OpOr, i.origin(), i.value, rhs)
}

func (i Initial[T]) Eq(rhs any) *Binary[bool] {
	return comparison(OpEq, i.origin(), i.value, rhs)
}

func (i Initial[T]) Ne(rhs any) *Binary[bool] {
	return comparison(OpNe, i.origin(), i.value, rhs)
}

func (i Initial[T]) Lt(rhs any) *Binary[bool] {
	return comparison(OpLt, i.origin(), i.value, rhs)
}

func (i Initial[T]) Le(rhs any) *Binary[bool] {
	return comparison(OpLe, i.origin(), i.value, rhs)
}

func (i Initial[T]) Gt(rhs any) *Binary[bool] {
	return comparison(OpGt, i.origin(), i.value, rhs)
}

func (i Initial[T]) Ge(rhs any) *Binary[bool] {
	return comparison(OpGe, i.origin(), i.value, rhs)
}

// Cmp is a three-way comparison, rendered as "<=>".
func (i Initial[T]) Cmp(rhs any) *Binary[Ordering] {
	return ordering(i.origin(), i.value, rhs)
}

// Comma discards the captured operand and evaluates to rhs.
func (i Initial[T]) Comma(rhs any) *Binary[any] {
	return comma(i.origin(), rhs)
}

func (b *Binary[T]) Add(rhs T) *Binary[T]    { return arithmetic(OpAdd, b.origin(), b.value, rhs) }
func (b *Binary[T]) Sub(rhs T) *Binary[T]    { return arithmetic(OpSub, b.origin(), b.value, rhs) }
func (b *Binary[T]) Mul(rhs T) *Binary[T]    { return arithmetic(OpMul, b.origin(), b.value, rhs) }
func (b *Binary[T]) Div(rhs T) *Binary[T]    { return arithmetic(OpDiv, b.origin(), b.value, rhs) }
func (b *Binary[T]) Mod(rhs T) *Binary[T]    { return arithmetic(OpMod, b.origin(), b.value, rhs) }
func (b *Binary[T]) BitAnd(rhs T) *Binary[T] { return arithmetic(OpBitAnd, b.origin(), b.value, rhs) }
func (b *Binary[T]) BitOr(rhs T) *Binary[T]  { return arithmetic(OpBitOr, b.origin(), b.value, rhs) }
func (b *Binary[T]) BitXor(rhs T) *Binary[T] { return arithmetic(OpBitXor, b.origin(), b.value, rhs) }
func (b *Binary[T]) AndNot(rhs T) *Binary[T] { return arithmetic(OpAndNot, b.origin(), b.value, rhs) }
func (b *Binary[T]) Shl(n uint) *Binary[T]   { return arithmetic(OpShl, b.origin(), b.value, n) }
func (b *Binary[T]) Shr(n uint) *Binary[T]   { return arithmetic(OpShr, b.origin(), b.value, n) }

func (b *Binary[T]) And(rhs any) *Binary[bool] {
	return comparison(OpAnd, b.origin(), b.value, rhs)
}

func (b *Binary[T]) Or(rhs any) *Binary[bool] {
	return comparison(OpOr, b.origin(), b.value, rhs)
}

func (b *Binary[T]) Eq(rhs any) *Binary[bool] {
	return comparison(OpEq, b.origin(), b.value, rhs)
}

func (b *Binary[T]) Ne(rhs any) *Binary[bool] {
	return comparison(OpNe, b.origin(), b.value, rhs)
}

func (b *Binary[T]) Lt(rhs any) *Binary[bool] {
	return comparison(OpLt, b.origin(), b.value, rhs)
}

func (b *Binary[T]) Le(rhs any) *Binary[bool] {
	return comparison(OpLe, b.origin(), b.value, rhs)
}

func (b *Binary[T]) Gt(rhs any) *Binary[bool] {
	return comparison(OpGt, b.origin(), b.value, rhs)
}

func (b *Binary[T]) Ge(rhs any) *Binary[bool] {
	return comparison(OpGe, b.origin(), b.value, rhs)
}

// Cmp is a three-way comparison, rendered as "<=>".
func (b *Binary[T]) Cmp(rhs any) *Binary[Ordering] {
	return ordering(b.origin(), b.value, rhs)
}

// Comma discards the chain's result and evaluates to rhs.
func (b *Binary[T]) Comma(rhs any) *Binary[any] {
	return comma(b.origin(), rhs)
}
