package parser

// punctuation is the fixed set of operator and delimiter literals. A byte is
// treated as punctuation when its single-byte string is a member.
var punctuation = newSet(
	"~", "!", "+", "-", "*", "/", "%", "^", "&", "|", "=", "+=",
	"-=", "*=", "/=", "%=", "^=", "&=", "|=", "==", "!=", "<", ">", "<=",
	">=", "<=>", "&&", "||", "<<", ">>", "<<=", ">>=", "++", "--", "?", "::",
	":", "...", ".", ".*", "->", "->*", "[", "]", "{", "}", "(", ")", ";",
)

// keywords covers the C++ vocabulary rendered in symbol names plus the Go
// keywords that show up in conditions and runtime function names.
var keywords = newSet(
	"alignas", "constinit", "public", "alignof",
	"const_cast", "float", "register", "try",
	"asm", "continue", "for", "reinterpret_cast",
	"typedef", "auto", "co_await", "friend",
	"requires", "typeid", "bool", "co_return",
	"goto", "return", "typename", "break",
	"co_yield", "if", "short", "union",
	"case", "decltype", "inline", "signed",
	"unsigned", "catch", "default", "int",
	"sizeof", "using", "char", "delete",
	"long", "static", "virtual", "char8_t",
	"do", "mutable", "static_assert", "void",
	"char16_t", "double", "namespace", "static_cast",
	"volatile", "char32_t", "dynamic_cast", "new",
	"struct", "wchar_t", "class", "else",
	"noexcept", "switch", "while", "concept",
	"enum", "template", "const", "explicit",
	"operator", "this", "consteval", "export",
	"private", "thread_local", "constexpr", "extern",
	"protected", "throw", "and", "or",
	"xor", "not", "bitand", "bitor",
	"compl", "and_eq", "or_eq", "xor_eq",
	"not_eq",
	"func", "package", "var", "go", "chan", "map", "range",
	"defer", "select", "type", "interface", "fallthrough", "import", "nil",
)

type set map[string]struct{}

func newSet(members ...string) set {
	s := make(set, len(members))
	for _, m := range members {
		s[m] = struct{}{}
	}

	return s
}

func (s set) contains(value string) bool {
	_, ok := s[value]
	return ok
}

// IsPunctuation reports whether value is one of the fixed punctuation literals.
func IsPunctuation(value string) bool {
	return punctuation.contains(value)
}

// IsKeyword reports whether value is a member of the keyword vocabulary.
func IsKeyword(value string) bool {
	return keywords.contains(value)
}

var punctuationBytes = func() (table [256]bool) {
	for member := range punctuation {
		if len(member) == 1 {
			table[member[0]] = true
		}
	}

	return table
}()

func isPunctuationByte(b byte) bool {
	return punctuationBytes[b]
}

func isWhitespace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	default:
		return false
	}
}
