package grammar

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/vk/unitgrid/internal/catalog"
	"github.com/vk/unitgrid/internal/ctxlog"
	"github.com/vk/unitgrid/internal/model"
	"github.com/vk/unitgrid/internal/urn"
	"github.com/vk/unitgrid/internal/variable"
	"github.com/zclconf/go-cty/cty"
)

// numberRegex matches the numeric literals HCL accepts.
var numberRegex = regexp.MustCompile(`^-?[0-9]+(\.[0-9]+)?([eE][+-]?[0-9]+)?$`)

// Grammar is the parser of unit spec text. It is safe for concurrent use.
type Grammar struct {
	catalog *catalog.Catalog
}

// New creates a grammar resolving constructor names against cat.
func New(cat *catalog.Catalog) *Grammar {
	return &Grammar{catalog: cat}
}

// Reserved reports whether name belongs to a constructor. A local call
// with that name always builds the constructor, so no unit may take it.
func (g *Grammar) Reserved(name string) bool {
	_, ok := g.catalog.Lookup(name)
	return ok
}

// Parse builds the tree for text on behalf of owner.
func (g *Grammar) Parse(ctx context.Context, owner urn.URN, text string) (model.Variable, error) {
	logger := ctxlog.FromContext(ctx)
	tokens, err := lex(text)
	if err != nil {
		return nil, model.Wrap(model.KindParse, err, "cannot parse spec of '%s'", owner)
	}
	p := &parser{grammar: g, owner: owner, tokens: tokens}
	root, err := p.parseVariable()
	if err == nil && p.peek().kind != tokEOF {
		err = p.errorf("unexpected %s after the end of the spec", p.peek())
	}
	if err != nil {
		logger.Debug("Spec parsing failed.", "owner", owner, "error", err)
		return nil, model.Wrap(model.KindParse, err, "cannot parse spec of '%s'", owner)
	}
	return root, nil
}

type parser struct {
	grammar *Grammar
	owner   urn.URN
	tokens  []token
	pos     int
}

func (p *parser) peek() token {
	return p.tokens[p.pos]
}

func (p *parser) next() token {
	tok := p.tokens[p.pos]
	if tok.kind != tokEOF {
		p.pos++
	}
	return tok
}

func (p *parser) errorf(format string, args ...any) error {
	return fmt.Errorf("at offset %d: %s", p.peek().pos, fmt.Sprintf(format, args...))
}

func (p *parser) expect(kind tokenKind) error {
	if p.peek().kind != kind {
		return p.errorf("expected %s, found %s", kind, p.peek())
	}
	p.next()
	return nil
}

func (p *parser) parseVariable() (model.Variable, error) {
	tok := p.peek()
	switch tok.kind {
	case tokString:
		p.next()
		return parseLiteral(tok)
	case tokArg:
		p.next()
		return parseArg(tok)
	case tokLBracket:
		p.next()
		items, err := p.parseList(tokRBracket)
		if err != nil {
			return nil, err
		}
		return variable.NewArray(items), nil
	case tokWord:
		p.next()
		if p.peek().kind == tokLParen {
			p.next()
			return p.parseCall(tok)
		}
		if tok.text == "true" || tok.text == "false" || numberRegex.MatchString(tok.text) {
			return parseLiteral(tok)
		}
		return nil, fmt.Errorf("at offset %d: %q must be followed by '('", tok.pos, tok.text)
	default:
		return nil, p.errorf("unexpected %s", tok)
	}
}

// parseList reads comma separated variables up to the closing token, which
// it consumes.
func (p *parser) parseList(closing tokenKind) ([]model.Variable, error) {
	var items []model.Variable
	if p.peek().kind == closing {
		p.next()
		return items, nil
	}
	for {
		item, err := p.parseVariable()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
		if p.peek().kind == tokComma {
			p.next()
			continue
		}
		if err := p.expect(closing); err != nil {
			return nil, err
		}
		return items, nil
	}
}

func (p *parser) parseCall(word token) (model.Variable, error) {
	children, err := p.parseList(tokRParen)
	if err != nil {
		return nil, err
	}

	if idx := strings.LastIndexByte(word.text, ':'); idx >= 0 {
		owner, err := urn.Parse(word.text[:idx])
		if err != nil {
			return nil, fmt.Errorf("at offset %d: %w", word.pos, err)
		}
		return variable.NewForeign(p.grammar, p.owner, owner, word.text[idx+1:], children)
	}
	if ctor, ok := p.grammar.catalog.Lookup(word.text); ok {
		return variable.NewComposite(word.text, ctor, children)
	}
	return variable.NewLocal(p.grammar, p.owner, word.text, children)
}

func parseLiteral(tok token) (model.Variable, error) {
	expr, diags := hclsyntax.ParseExpression([]byte(tok.text), "spec", hcl.InitialPos)
	if diags.HasErrors() {
		return nil, fmt.Errorf("at offset %d: invalid literal %s: %w", tok.pos, tok.text, diags)
	}
	value, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("at offset %d: invalid literal %s: %w", tok.pos, tok.text, diags)
	}
	if !value.IsWhollyKnown() || value.IsNull() {
		return nil, fmt.Errorf("at offset %d: literal %s has no value", tok.pos, tok.text)
	}
	switch value.Type() {
	case cty.String, cty.Number, cty.Bool:
		return variable.NewLiteral(value), nil
	}
	return nil, fmt.Errorf("at offset %d: unsupported literal %s", tok.pos, tok.text)
}

// parseArg reads the body of `${N:title}`.
func parseArg(tok token) (model.Variable, error) {
	rawPos, title, ok := strings.Cut(tok.text, ":")
	if !ok {
		return nil, fmt.Errorf("at offset %d: argument %q needs a position and a title", tok.pos, tok.text)
	}
	pos, err := strconv.Atoi(strings.TrimSpace(rawPos))
	if err != nil {
		return nil, fmt.Errorf("at offset %d: invalid argument position %q", tok.pos, rawPos)
	}
	return variable.NewArg(pos, title)
}
