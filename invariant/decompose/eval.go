package decompose

import (
	"reflect"

	"github.com/shopspring/decimal"

	"github.com/LerianStudio/lib-invariant/invariant/safe"
)

var decimalType = reflect.TypeOf(decimal.Decimal{})

type kindClass uint8

const (
	classNone kindClass = iota
	classSigned
	classUnsigned
	classFloat
	classComplex
	classString
)

func classOf(k reflect.Kind) kindClass {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return classSigned
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return classUnsigned
	case reflect.Float32, reflect.Float64:
		return classFloat
	case reflect.Complex64, reflect.Complex128:
		return classComplex
	case reflect.String:
		return classString
	default:
		return classNone
	}
}

// apply evaluates lhs op rhs for an arithmetic, bitwise or shift operator.
// The result has lhs's type, wrapping on overflow the way Go does. It
// reports false when the operation is undefined for the operands, including
// division or modulo by zero.
func apply(op Operator, lhs, rhs reflect.Value) (reflect.Value, bool) {
	if !lhs.IsValid() || !rhs.IsValid() {
		return reflect.Value{}, false
	}

	if op == OpShl || op == OpShr {
		return shift(op, lhs, rhs)
	}

	if lhs.Type() == decimalType && rhs.Type() == decimalType {
		return applyDecimal(op, lhs.Interface().(decimal.Decimal), rhs.Interface().(decimal.Decimal))
	}

	class := classOf(lhs.Kind())
	if class == classNone {
		return reflect.Value{}, false
	}

	if rhs.Type() != lhs.Type() {
		if classOf(rhs.Kind()) == classNone || !rhs.CanConvert(lhs.Type()) {
			return reflect.Value{}, false
		}

		rhs = rhs.Convert(lhs.Type())
	}

	out := reflect.New(lhs.Type()).Elem()

	var ok bool

	switch class {
	case classSigned:
		var r int64
		if r, ok = applySigned(op, lhs.Int(), rhs.Int()); ok {
			out.SetInt(r)
		}
	case classUnsigned:
		var r uint64
		if r, ok = applyUnsigned(op, lhs.Uint(), rhs.Uint()); ok {
			out.SetUint(r)
		}
	case classFloat:
		var r float64
		if r, ok = applyFloat(op, lhs.Float(), rhs.Float()); ok {
			out.SetFloat(r)
		}
	case classComplex:
		var r complex128
		if r, ok = applyComplex(op, lhs.Complex(), rhs.Complex()); ok {
			out.SetComplex(r)
		}
	case classString:
		if op == OpAdd {
			out.SetString(lhs.String() + rhs.String())
			ok = true
		}
	}

	if !ok {
		return reflect.Value{}, false
	}

	return out, true
}

func applySigned(op Operator, x, y int64) (int64, bool) {
	switch op {
	case OpAdd:
		return x + y, true
	case OpSub:
		return x - y, true
	case OpMul:
		return x * y, true
	case OpDiv:
		r, err := safe.DivideInt64(x, y)
		return r, err == nil
	case OpMod:
		r, err := safe.ModuloInt64(x, y)
		return r, err == nil
	case OpBitAnd:
		return x & y, true
	case OpBitOr:
		return x | y, true
	case OpBitXor:
		return x ^ y, true
	case OpAndNot:
		return x &^ y, true
	default:
		return 0, false
	}
}

func applyUnsigned(op Operator, x, y uint64) (uint64, bool) {
	switch op {
	case OpAdd:
		return x + y, true
	case OpSub:
		return x - y, true
	case OpMul:
		return x * y, true
	case OpDiv:
		r, err := safe.DivideUint64(x, y)
		return r, err == nil
	case OpMod:
		r, err := safe.ModuloUint64(x, y)
		return r, err == nil
	case OpBitAnd:
		return x & y, true
	case OpBitOr:
		return x | y, true
	case OpBitXor:
		return x ^ y, true
	case OpAndNot:
		return x &^ y, true
	default:
		return 0, false
	}
}

func applyFloat(op Operator, x, y float64) (float64, bool) {
	switch op {
	case OpAdd:
		return x + y, true
	case OpSub:
		return x - y, true
	case OpMul:
		return x * y, true
	case OpDiv:
		r, err := safe.DivideFloat64(x, y)
		return r, err == nil
	default:
		return 0, false
	}
}

func applyComplex(op Operator, x, y complex128) (complex128, bool) {
	switch op {
	case OpAdd:
		return x + y, true
	case OpSub:
		return x - y, true
	case OpMul:
		return x * y, true
	case OpDiv:
		r, err := safe.DivideComplex128(x, y)
		return r, err == nil
	default:
		return 0, false
	}
}

func applyDecimal(op Operator, x, y decimal.Decimal) (reflect.Value, bool) {
	var (
		r   decimal.Decimal
		err error
	)

	switch op {
	case OpAdd:
		r = x.Add(y)
	case OpSub:
		r = x.Sub(y)
	case OpMul:
		r = x.Mul(y)
	case OpDiv:
		r, err = safe.Divide(x, y)
	case OpMod:
		r, err = safe.Modulo(x, y)
	default:
		return reflect.Value{}, false
	}

	if err != nil {
		return reflect.Value{}, false
	}

	return reflect.ValueOf(r), true
}

func shift(op Operator, lhs, rhs reflect.Value) (reflect.Value, bool) {
	if classOf(rhs.Kind()) != classUnsigned {
		return reflect.Value{}, false
	}

	n := rhs.Uint()
	out := reflect.New(lhs.Type()).Elem()

	switch classOf(lhs.Kind()) {
	case classSigned:
		x := lhs.Int()
		if op == OpShl {
			out.SetInt(x << n)
		} else {
			out.SetInt(x >> n)
		}
	case classUnsigned:
		x := lhs.Uint()
		if op == OpShl {
			out.SetUint(x << n)
		} else {
			out.SetUint(x >> n)
		}
	default:
		return reflect.Value{}, false
	}

	return out, true
}
