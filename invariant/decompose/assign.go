package decompose

import "reflect"

// Target captures an assignable operand by address.
type Target[T any] struct {
	ptr *T
}

// Ref captures the variable at p so an assertion can assign to it.
func Ref[T any](p *T) Target[T] {
	return Target[T]{ptr: p}
}

// assign writes through the target once and evaluates to the stored value.
// The left operand of the resulting node is the variable after the write.
func assign[T any](t Target[T], op Operator, rhs any) *Binary[T] {
	b := &Binary[T]{node: node{op: op, rhs: rhs}}

	if t.ptr == nil {
		b.failed, b.poisoned = true, true
		return b
	}

	// Assign passes a T, so the assertion only fails for a nil
	// interface, whose zero value is already right.
	value, _ := rhs.(T)
	ok := true

	if op != OpAssign {
		var out reflect.Value

		out, ok = apply(op.arithmeticOf(), reflect.ValueOf(*t.ptr), reflect.ValueOf(rhs))
		if ok {
			value, ok = out.Interface().(T)
		}
	}

	if !ok {
		b.failed, b.poisoned = true, true
		b.lhs = *t.ptr

		return b
	}

	*t.ptr = value
	b.lhs, b.value, b.result = value, value, value

	return b
}

func (t Target[T]) Assign(v T) *Binary[T]    { return assign(t, OpAssign, v) }
func (t Target[T]) AddAssign(v T) *Binary[T] { return assign(t, OpAddAssign, v) }
func (t Target[T]) SubAssign(v T) *Binary[T] { return assign(t, OpSubAssign, v) }
func (t Target[T]) MulAssign(v T) *Binary[T] { return assign(t, OpMulAssign, v) }
func (t Target[T]) DivAssign(v T) *Binary[T] { return assign(t, OpDivAssign, v) }
func (t Target[T]) ModAssign(v T) *Binary[T] { return assign(t, OpModAssign, v) }
func (t Target[T]) AndAssign(v T) *Binary[T] { return assign(t, OpAndAssign, v) }
func (t Target[T]) OrAssign(v T) *Binary[T]  { return assign(t, OpOrAssign, v) }
func (t Target[T]) XorAssign(v T) *Binary[T] { return assign(t, OpXorAssign, v) }
func (t Target[T]) ShlAssign(n uint) *Binary[T] {
	return assign(t, OpShlAssign, n)
}

func (t Target[T]) ShrAssign(n uint) *Binary[T] {
	return assign(t, OpShrAssign, n)
}
