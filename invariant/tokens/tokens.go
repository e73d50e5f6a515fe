package tokens

// Kind is the semantic class assigned to a fragment of code-like text.
//
// Namespace, Type, Function and Variable form the identifier group; the
// remaining kinds classify everything that is not a name.
type Kind uint8

const (
	Namespace Kind = iota
	Type
	Function
	Variable
	Keyword
	String
	Numeric
	Punctuation
	Error
)

// Count is the number of token kinds.
const Count = int(Error) + 1

// Kinds returns every kind in declaration order.
func Kinds() []Kind {
	return []Kind{Namespace, Type, Function, Variable, Keyword, String, Numeric, Punctuation, Error}
}

// IsIdentifier reports whether the kind belongs to the identifier group.
func (k Kind) IsIdentifier() bool {
	return k <= Variable
}

// Valid reports whether k names a declared kind.
func (k Kind) Valid() bool {
	return int(k) < Count
}

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case Namespace:
		return "namespace"
	case Type:
		return "type"
	case Function:
		return "function"
	case Variable:
		return "variable"
	case Keyword:
		return "keyword"
	case String:
		return "string"
	case Numeric:
		return "numeric"
	case Punctuation:
		return "punctuation"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// ParseKind resolves a kind from its String form.
func ParseKind(name string) (Kind, bool) {
	for _, k := range Kinds() {
		if k.String() == name {
			return k, true
		}
	}

	return 0, false
}

// Token is a lexed fragment of a source string.
//
// Text always equals source[Begin:End]; it shares memory with the source.
type Token struct {
	Text  string
	Begin int
	End   int
	Kind  Kind
}

// New creates a token covering source[begin:end].
func New(source string, begin, end int, kind Kind) Token {
	return Token{Text: source[begin:end], Begin: begin, End: end, Kind: kind}
}

// Equal reports whether two tokens carry the same text, range and kind.
func (t Token) Equal(other Token) bool {
	return t == other
}

// Len returns the byte length of the token.
func (t Token) Len() int {
	return t.End - t.Begin
}
