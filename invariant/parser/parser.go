package parser

import (
	"cmp"
	"slices"
	"strings"

	"github.com/LerianStudio/lib-invariant/invariant/tokens"
)

// Parse splits source into tokens and assigns each one a semantic kind.
//
// Tokens are returned in ascending Begin order, whitespace is never emitted
// and every other byte of source is covered by exactly one token. Parse never
// fails: input it cannot make sense of still yields a best-effort sequence.
func Parse(source string) []tokens.Token {
	toks := lex(source)
	classify(toks)

	return toks
}

func lex(source string) []tokens.Token {
	var result []tokens.Token

	for i := 0; i < len(source); {
		if isWhitespace(source[i]) {
			i++
			continue
		}

		begin := i
		for i < len(source) && !isWhitespace(source[i]) {
			i++
		}

		result = lexWord(source, begin, i, result)
	}

	slices.SortFunc(result, func(a, b tokens.Token) int {
		return cmp.Compare(a.Begin, b.Begin)
	})

	return result
}

func lexWord(source string, begin, end int, out []tokens.Token) []tokens.Token {
	word := source[begin:end]

	if punctuation.contains(word) {
		return append(out, tokens.New(source, begin, end, tokens.Punctuation))
	}

	if keywords.contains(word) {
		return append(out, tokens.New(source, begin, end, tokens.Keyword))
	}

	for i := begin; i < end; {
		if !isPunctuationByte(source[i]) {
			i++
			continue
		}

		start := i
		for i < end && isPunctuationByte(source[i]) {
			i++
		}

		out = append(out, tokens.New(source, start, i, tokens.Punctuation))
	}

	for i := begin; i < end; {
		if isPunctuationByte(source[i]) {
			i++
			continue
		}

		start := i
		for i < end && !isPunctuationByte(source[i]) {
			i++
		}

		out = append(out, tokens.New(source, start, i, literalKind(source[start:i])))
	}

	return out
}

func literalKind(text string) tokens.Kind {
	switch {
	case text[0] == '"' && text[len(text)-1] == '"':
		return tokens.String
	case isNumeric(text):
		return tokens.Numeric
	case keywords.contains(text):
		return tokens.Keyword
	default:
		return tokens.Namespace
	}
}

func isNumeric(text string) bool {
	if text == "true" || text == "false" || text[0] == '0' {
		return true
	}

	for i := 0; i < len(text); i++ {
		if text[i] < '0' || text[i] > '9' {
			return false
		}
	}

	return true
}

// classify refines identifier kinds using the two preceding tokens.
func classify(toks []tokens.Token) {
	for i := range toks {
		cur := &toks[i]

		if cur.Text == "operator" {
			cur.Kind = tokens.Function
			continue
		}

		if i == 0 {
			if cur.Kind.IsIdentifier() {
				cur.Kind = tokens.Namespace
			}

			continue
		}

		prev := &toks[i-1]

		var prevprev *tokens.Token
		if i >= 2 {
			prevprev = &toks[i-2]
		}

		switch {
		case cur.Kind.IsIdentifier():
			classifyIdentifier(cur, prev, prevprev)
		case cur.Kind == tokens.Punctuation && prev.Kind.IsIdentifier():
			revisePrevious(cur, prev)
		}
	}
}

func classifyIdentifier(cur, prev, prevprev *tokens.Token) {
	switch {
	case prev.Kind == tokens.Keyword:
		switch prev.Text {
		case "namespace":
			cur.Kind = tokens.Namespace
		case "auto":
			cur.Kind = tokens.Variable
		default:
			cur.Kind = tokens.Type
		}
	case prev.Kind == tokens.Punctuation:
		switch {
		case prev.Text == "::(":
			cur.Kind = tokens.Type
		case strings.HasPrefix(prev.Text, "::"):
			cur.Kind = tokens.Namespace
		case (prevprev != nil && prevprev.Kind == tokens.Keyword) || strings.HasPrefix(prev.Text, "("):
			cur.Kind = tokens.Type
		default:
			cur.Kind = tokens.Variable
		}
	case prev.Kind.IsIdentifier():
		prev.Kind = tokens.Type
		cur.Kind = tokens.Variable
	}
}

// revisePrevious re-labels the identifier preceding a punctuation token.
//
// A ">>" run leaves an identifier already judged a Variable alone. Nested
// template closers are not tracked beyond that.
func revisePrevious(cur, prev *tokens.Token) {
	switch {
	case prev.Text == "operator":
		prev.Kind = tokens.Function
	case strings.HasPrefix(cur.Text, "::"):
		prev.Kind = tokens.Namespace
	case strings.HasPrefix(cur.Text, "{") && cur.Begin == prev.End:
		prev.Kind = tokens.Type
	case cur.Text == "<",
		strings.HasPrefix(cur.Text, ">") && !(strings.HasPrefix(cur.Text, ">>") && prev.Kind == tokens.Variable):
		prev.Kind = tokens.Type
	case strings.HasPrefix(cur.Text, "("):
		prev.Kind = tokens.Function
	case cur.Text != "=" && !strings.HasPrefix(cur.Text, "{"):
		prev.Kind = tokens.Variable
	}
}
