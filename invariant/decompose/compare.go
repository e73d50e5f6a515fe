package decompose

import (
	"cmp"
	"math"
	"reflect"
	"strings"

	"github.com/LerianStudio/lib-invariant/invariant/internal/nilcheck"
)

// Ordering is the result of a three-way comparison.
type Ordering int8

const (
	Less Ordering = iota - 1
	Equivalent
	Greater
	Unordered
)

func (o Ordering) String() string {
	switch o {
	case Less:
		return "less"
	case Equivalent:
		return "equivalent"
	case Greater:
		return "greater"
	default:
		return "unordered"
	}
}

// Compare orders a and b.
//
// Mixed integer and float operands compare by value, so -1 orders before
// uint(1). Values with a Cmp or Compare method accepting the other operand
// use it. Strings order lexically. Anything else that is equal reports
// Equivalent and otherwise Unordered.
func Compare(a, b any) Ordering {
	a, b = operandValue(a), operandValue(b)

	if o, ok := orderValues(a, b); ok {
		return o
	}

	if Equal(a, b) {
		return Equivalent
	}

	return Unordered
}

// Equal reports whether a and b are equal, following the rules of Compare
// and then an Equal method, before falling back to reflect.DeepEqual.
func Equal(a, b any) bool {
	a, b = operandValue(a), operandValue(b)

	if a == nil || b == nil {
		return nilcheck.Interface(a) && nilcheck.Interface(b)
	}

	if eq, ok := callEqual(a, b); ok {
		return eq
	}

	if o, ok := orderValues(a, b); ok {
		return o == Equivalent
	}

	return reflect.DeepEqual(a, b)
}

// NotEqual is !Equal(a, b).
func NotEqual(a, b any) bool {
	return !Equal(a, b)
}

// LessThan reports whether a orders strictly before b.
func LessThan(a, b any) bool {
	return Compare(a, b) == Less
}

// LessEqual reports whether a orders before or equal to b.
func LessEqual(a, b any) bool {
	o := Compare(a, b)
	return o == Less || o == Equivalent
}

// GreaterThan reports whether a orders strictly after b.
func GreaterThan(a, b any) bool {
	return Compare(a, b) == Greater
}

// GreaterEqual reports whether a orders after or equal to b.
func GreaterEqual(a, b any) bool {
	o := Compare(a, b)
	return o == Greater || o == Equivalent
}

func orderValues(a, b any) (Ordering, bool) {
	if a == nil || b == nil {
		return Unordered, false
	}

	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)

	if o, ok := orderNumbers(va, vb); ok {
		return o, true
	}

	if va.Kind() == reflect.String && vb.Kind() == reflect.String {
		return Ordering(strings.Compare(va.String(), vb.String())), true
	}

	return callCompare(va, vb)
}

func orderNumbers(a, b reflect.Value) (Ordering, bool) {
	ca, cb := classOf(a.Kind()), classOf(b.Kind())
	if !isReal(ca) || !isReal(cb) {
		return Unordered, false
	}

	switch {
	case ca == classFloat || cb == classFloat:
		x, y := toFloat(a), toFloat(b)
		if math.IsNaN(x) || math.IsNaN(y) {
			return Unordered, true
		}

		return Ordering(cmp.Compare(x, y)), true
	case ca == classSigned && cb == classSigned:
		return Ordering(cmp.Compare(a.Int(), b.Int())), true
	case ca == classUnsigned && cb == classUnsigned:
		return Ordering(cmp.Compare(a.Uint(), b.Uint())), true
	case ca == classSigned:
		if a.Int() < 0 {
			return Less, true
		}

		return Ordering(cmp.Compare(uint64(a.Int()), b.Uint())), true
	default:
		if b.Int() < 0 {
			return Greater, true
		}

		return Ordering(cmp.Compare(a.Uint(), uint64(b.Int()))), true
	}
}

func isReal(c kindClass) bool {
	return c == classSigned || c == classUnsigned || c == classFloat
}

func toFloat(v reflect.Value) float64 {
	switch classOf(v.Kind()) {
	case classSigned:
		return float64(v.Int())
	case classUnsigned:
		return float64(v.Uint())
	default:
		return v.Float()
	}
}

var (
	intType  = reflect.TypeOf(0)
	boolType = reflect.TypeOf(false)
)

// callCompare uses a Cmp(T) int or Compare(T) int method on a.
func callCompare(a, b reflect.Value) (Ordering, bool) {
	for _, name := range [...]string{"Cmp", "Compare"} {
		out, ok := callMethod(a, name, b, intType)
		if ok {
			return Ordering(cmp.Compare(out.Int(), 0)), true
		}
	}

	return Unordered, false
}

// callEqual uses an Equal(T) bool method on a.
func callEqual(a, b any) (bool, bool) {
	out, ok := callMethod(reflect.ValueOf(a), "Equal", reflect.ValueOf(b), boolType)
	if !ok {
		return false, false
	}

	return out.Bool(), true
}

func callMethod(recv reflect.Value, name string, arg reflect.Value, result reflect.Type) (reflect.Value, bool) {
	m := recv.MethodByName(name)
	if !m.IsValid() {
		return reflect.Value{}, false
	}

	mt := m.Type()
	if mt.NumIn() != 1 || mt.NumOut() != 1 || mt.Out(0) != result || !arg.Type().AssignableTo(mt.In(0)) {
		return reflect.Value{}, false
	}

	if recv.Kind() == reflect.Pointer && recv.IsNil() {
		return reflect.Value{}, false
	}

	if arg.Kind() == reflect.Pointer && arg.IsNil() {
		return reflect.Value{}, false
	}

	return m.Call([]reflect.Value{arg})[0], true
}
