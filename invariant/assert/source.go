package assert

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"sync"

	"github.com/LerianStudio/lib-invariant/invariant/decompose"
	"github.com/LerianStudio/lib-invariant/invariant/location"
)

// operandPrecedence is above every binary operator.
const operandPrecedence = 6

type sourceFile struct {
	fset *token.FileSet
	file *ast.File
	src  []byte
}

// sources caches parsed files by path. Files that cannot be read or parsed
// are cached as empty entries.
var sources sync.Map

func loadSource(path string) *sourceFile {
	if v, ok := sources.Load(path); ok {
		return v.(*sourceFile)
	}

	sf := &sourceFile{}

	if src, err := os.ReadFile(path); err == nil {
		fset := token.NewFileSet()
		if f, err := parser.ParseFile(fset, path, src, parser.SkipObjectResolution); err == nil {
			sf = &sourceFile{fset: fset, file: f, src: src}
		}
	}

	actual, _ := sources.LoadOrStore(path, sf)

	return actual.(*sourceFile)
}

// recoverCondition returns the text of argument arg of the call to fn on
// loc's line, along with the call's column. It returns "" and 0 when the
// call cannot be found.
func recoverCondition(loc location.SourceLocation, fn string, arg int) (string, int) {
	if loc.File == "" || loc.Line <= 0 || fn == "" {
		return "", 0
	}

	sf := loadSource(loc.File)

	call := sf.findCall(loc.Line, fn, arg)
	if call == nil {
		return "", 0
	}

	expr := call.Args[arg]
	if lit, ok := expr.(*ast.FuncLit); ok {
		if ret := returnedExpr(lit); ret != nil {
			expr = ret
		}
	}

	return sf.condition(expr), sf.fset.Position(call.Pos()).Column
}

// findCall returns the outermost call to fn with more than arg arguments
// whose source spans line. Frames carry no column, so two such calls on the
// same line are indistinguishable and neither is returned.
func (sf *sourceFile) findCall(line int, fn string, arg int) *ast.CallExpr {
	if sf.file == nil {
		return nil
	}

	var found []*ast.CallExpr

	ast.Inspect(sf.file, func(n ast.Node) bool {
		if n == nil || len(found) > 1 || !sf.spans(n, line) {
			return false
		}

		if call, ok := n.(*ast.CallExpr); ok && calleeName(call.Fun) == fn && len(call.Args) > arg && !call.Ellipsis.IsValid() {
			found = append(found, call)
			return false
		}

		return true
	})

	if len(found) != 1 {
		return nil
	}

	return found[0]
}

func (sf *sourceFile) spans(n ast.Node, line int) bool {
	return sf.fset.Position(n.Pos()).Line <= line && line <= sf.fset.Position(n.End()).Line
}

func (sf *sourceFile) text(n ast.Node) string {
	start := sf.fset.Position(n.Pos()).Offset
	end := sf.fset.Position(n.End()).Offset

	if start < 0 || end > len(sf.src) || start > end {
		return ""
	}

	return string(sf.src[start:end])
}

// condition renders e as the condition text. Capture chains are rebuilt in
// infix form; anything else is the source text as written.
func (sf *sourceFile) condition(e ast.Expr) string {
	if text, _, ok := sf.chain(e); ok {
		return text
	}

	return sf.text(e)
}

// chain rebuilds a decompose capture chain, such as
// decompose.Capture(a).Add(b).Eq(7), as the infix expression a + b == 7.
// It reports the precedence of the rebuilt expression's root operator.
func (sf *sourceFile) chain(e ast.Expr) (string, int, bool) {
	call, ok := e.(*ast.CallExpr)
	if !ok {
		return "", 0, false
	}

	if name, ok := chainStart(call); ok {
		operand := call.Args[0]
		if u, isUnary := operand.(*ast.UnaryExpr); name == "Ref" && isUnary && u.Op == token.AND {
			operand = u.X
		}

		text, prec := sf.operand(operand)

		return text, prec, true
	}

	sel, ok := call.Fun.(*ast.SelectorExpr)
	if !ok {
		return "", 0, false
	}

	if sel.Sel.Name == "Unary" && len(call.Args) == 0 {
		return sf.chain(sel.X)
	}

	op, ok := decompose.OperatorForMethod(sel.Sel.Name)
	if !ok || len(call.Args) != 1 {
		return "", 0, false
	}

	lhs, lhsPrec, ok := sf.chain(sel.X)
	if !ok {
		return "", 0, false
	}

	rhs, rhsPrec := sf.operand(call.Args[0])
	prec := op.Precedence()

	if lhsPrec < prec {
		lhs = "(" + lhs + ")"
	}

	if rhsPrec <= prec {
		rhs = "(" + rhs + ")"
	}

	return lhs + " " + op.String() + " " + rhs, prec, true
}

func (sf *sourceFile) operand(e ast.Expr) (string, int) {
	if text, prec, ok := sf.chain(e); ok {
		return text, prec
	}

	if bin, ok := e.(*ast.BinaryExpr); ok {
		return sf.text(e), bin.Op.Precedence()
	}

	return sf.text(e), operandPrecedence
}

// chainStart reports whether call is decompose.Capture, Of or Ref called
// with a single argument, possibly with explicit type arguments.
func chainStart(call *ast.CallExpr) (string, bool) {
	if len(call.Args) != 1 {
		return "", false
	}

	fun := call.Fun
	switch f := fun.(type) {
	case *ast.IndexExpr:
		fun = f.X
	case *ast.IndexListExpr:
		fun = f.X
	}

	var name string

	switch f := fun.(type) {
	case *ast.Ident:
		name = f.Name
	case *ast.SelectorExpr:
		if _, isPkg := f.X.(*ast.Ident); !isPkg {
			return "", false
		}

		name = f.Sel.Name
	default:
		return "", false
	}

	switch name {
	case "Capture", "Of", "Ref":
		return name, true
	default:
		return "", false
	}
}

func calleeName(fun ast.Expr) string {
	switch f := fun.(type) {
	case *ast.Ident:
		return f.Name
	case *ast.SelectorExpr:
		return f.Sel.Name
	case *ast.IndexExpr:
		return calleeName(f.X)
	case *ast.IndexListExpr:
		return calleeName(f.X)
	default:
		return ""
	}
}

// returnedExpr extracts e from func() any { return e }.
func returnedExpr(lit *ast.FuncLit) ast.Expr {
	if lit.Body == nil || len(lit.Body.List) != 1 {
		return nil
	}

	ret, ok := lit.Body.List[0].(*ast.ReturnStmt)
	if !ok || len(ret.Results) != 1 {
		return nil
	}

	return ret.Results[0]
}
