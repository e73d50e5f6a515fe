package decompose

// Operator identifies the operation at the root of an expression node.
type Operator uint8

const (
	OpNone Operator = iota

	OpAdd
	OpSub
	OpMul
	OpDiv
	OpMod
	OpBitAnd
	OpBitOr
	OpBitXor
	OpAndNot
	OpShl
	OpShr

	OpAnd
	OpOr

	OpEq
	OpNe
	OpLt
	OpLe
	OpGt
	OpGe
	OpCmp

	OpComma

	OpAssign
	OpAddAssign
	OpSubAssign
	OpMulAssign
	OpDivAssign
	OpModAssign
	OpAndAssign
	OpOrAssign
	OpXorAssign
	OpShlAssign
	OpShrAssign
)

type operatorInfo struct {
	symbol     string
	method     string
	precedence int
}

var operators = [...]operatorInfo{
	OpNone:      {},
	OpAdd:       {"+", "Add", 4},
	OpSub:       {"-", "Sub", 4},
	OpMul:       {"*", "Mul", 5},
	OpDiv:       {"/", "Div", 5},
	OpMod:       {"%", "Mod", 5},
	OpBitAnd:    {"&", "BitAnd", 5},
	OpBitOr:     {"|", "BitOr", 4},
	OpBitXor:    {"^", "BitXor", 4},
	OpAndNot:    {"&^", "AndNot", 5},
	OpShl:       {"<<", "Shl", 5},
	OpShr:       {">>", "Shr", 5},
	OpAnd:       {"&&", "And", 2},
	OpOr:        {"||", "Or", 1},
	OpEq:        {"==", "Eq", 3},
	OpNe:        {"!=", "Ne", 3},
	OpLt:        {"<", "Lt", 3},
	OpLe:        {"<=", "Le", 3},
	OpGt:        {">", "Gt", 3},
	OpGe:        {">=", "Ge", 3},
	OpCmp:       {"<=>", "Cmp", 3},
	OpComma:     {",", "Comma", 0},
	OpAssign:    {"=", "Assign", 0},
	OpAddAssign: {"+=", "AddAssign", 0},
	OpSubAssign: {"-=", "SubAssign", 0},
	OpMulAssign: {"*=", "MulAssign", 0},
	OpDivAssign: {"/=", "DivAssign", 0},
	OpModAssign: {"%=", "ModAssign", 0},
	OpAndAssign: {"&=", "AndAssign", 0},
	OpOrAssign:  {"|=", "OrAssign", 0},
	OpXorAssign: {"^=", "XorAssign", 0},
	OpShlAssign: {"<<=", "ShlAssign", 0},
	OpShrAssign: {">>=", "ShrAssign", 0},
}

// String returns the operator's infix symbol, or "" for OpNone.
func (o Operator) String() string {
	if int(o) >= len(operators) {
		return "?"
	}

	return operators[o].symbol
}

// Method returns the capture method that produces o, e.g. "Add" for OpAdd.
func (o Operator) Method() string {
	if int(o) >= len(operators) {
		return ""
	}

	return operators[o].method
}

// Precedence follows Go's binary operator precedence: 5 binds tightest and
// 1 is ||. Comma and assignments report 0.
func (o Operator) Precedence() int {
	if int(o) >= len(operators) {
		return 0
	}

	return operators[o].precedence
}

// IsComparison reports whether o yields a bool from two ordered or
// comparable operands.
func (o Operator) IsComparison() bool {
	return o >= OpEq && o <= OpGe
}

// IsAssignment reports whether o writes through a Target.
func (o Operator) IsAssignment() bool {
	return o >= OpAssign && o <= OpShrAssign
}

// OperatorForMethod maps a capture method name back to its operator.
func OperatorForMethod(name string) (Operator, bool) {
	for i := range operators {
		if operators[i].method != "" && operators[i].method == name {
			return Operator(i), true
		}
	}

	return OpNone, false
}

// arithmeticOf returns the binary operator a compound assignment applies.
func (o Operator) arithmeticOf() Operator {
	switch o {
	case OpAddAssign:
		return OpAdd
	case OpSubAssign:
		return OpSub
	case OpMulAssign:
		return OpMul
	case OpDivAssign:
		return OpDiv
	case OpModAssign:
		return OpMod
	case OpAndAssign:
		return OpBitAnd
	case OpOrAssign:
		return OpBitOr
	case OpXorAssign:
		return OpBitXor
	case OpShlAssign:
		return OpShl
	case OpShrAssign:
		return OpShr
	default:
		return OpNone
	}
}
