package grammar

import (
	"fmt"
	"strings"

	"github.com/vk/unitgrid/internal/model"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokWord
	tokString
	tokArg
	tokLParen
	tokRParen
	tokLBracket
	tokRBracket
	tokComma
)

func (k tokenKind) String() string {
	switch k {
	case tokEOF:
		return "end of text"
	case tokWord:
		return "word"
	case tokString:
		return "string"
	case tokArg:
		return "argument"
	case tokLParen:
		return "'('"
	case tokRParen:
		return "')'"
	case tokLBracket:
		return "'['"
	case tokRBracket:
		return "']'"
	default:
		return "','"
	}
}

type token struct {
	kind tokenKind
	text string
	pos  int
}

func isWordChar(r byte) bool {
	return r == '_' || r == '-' || r == '.' || r == ':' || r == '+' ||
		(r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// lex splits text into tokens.
func lex(text string) ([]token, error) {
	var tokens []token
	i := 0
	for i < len(text) {
		c := text[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case c == '(':
			tokens = append(tokens, token{kind: tokLParen, text: "(", pos: i})
			i++
		case c == ')':
			tokens = append(tokens, token{kind: tokRParen, text: ")", pos: i})
			i++
		case c == '[':
			tokens = append(tokens, token{kind: tokLBracket, text: "[", pos: i})
			i++
		case c == ']':
			tokens = append(tokens, token{kind: tokRBracket, text: "]", pos: i})
			i++
		case c == ',':
			tokens = append(tokens, token{kind: tokComma, text: ",", pos: i})
			i++
		case c == '"':
			end, err := scanString(text, i)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, token{kind: tokString, text: text[i:end], pos: i})
			i = end
		case c == '$' && strings.HasPrefix(text[i:], "${"):
			end := strings.IndexByte(text[i:], '}')
			if end < 0 {
				return nil, model.Errorf(model.KindParse, "unterminated argument at offset %d", i)
			}
			tokens = append(tokens, token{kind: tokArg, text: text[i+2 : i+end], pos: i})
			i += end + 1
		case isWordChar(c):
			start := i
			for i < len(text) && isWordChar(text[i]) {
				i++
			}
			tokens = append(tokens, token{kind: tokWord, text: text[start:i], pos: start})
		default:
			return nil, model.Errorf(model.KindParse, "unexpected character %q at offset %d", rune(c), i)
		}
	}
	tokens = append(tokens, token{kind: tokEOF, pos: len(text)})
	return tokens, nil
}

// scanString returns the offset just past the closing quote of the string
// starting at start.
func scanString(text string, start int) (int, error) {
	for i := start + 1; i < len(text); i++ {
		switch text[i] {
		case '\\':
			i++
		case '"':
			return i + 1, nil
		case '\n':
			return 0, model.Errorf(model.KindParse, "newline in string starting at offset %d", start)
		}
	}
	return 0, model.Errorf(model.KindParse, "unterminated string starting at offset %d", start)
}

func (t token) String() string {
	if t.kind == tokEOF {
		return t.kind.String()
	}
	return fmt.Sprintf("%s %q", t.kind, t.text)
}
