// Package parser is a recursive-descent parser over datalog/lexer's token
// stream, producing a datalog/lang.Program. Its grammar follows
// original_source/parser.cpp (Schemes: / Facts: / Rules: / Queries:
// sections); its cursor-over-token-slice shape follows the teacher's
// datalog/parser/parser.go.
package parser

import (
	"fmt"

	"github.com/arnegard/datalogo/datalog/lang"
	"github.com/arnegard/datalogo/datalog/lexer"
)

// Parser consumes a token slice produced by lexer.Lex and builds a
// lang.Program.
type Parser struct {
	tokens []lexer.Token
	pos    int
}

// Parse lexes and parses source in one step.
func Parse(source string) (*lang.Program, error) {
	tokens, err := lexer.New(source).Lex()
	if err != nil {
		return nil, err
	}
	return New(tokens).ParseProgram()
}

// New creates a Parser over an already-lexed token stream.
func New(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens}
}

func (p *Parser) current() lexer.Token {
	return p.tokens[p.pos]
}

func (p *Parser) match(expected lexer.TokenType) (lexer.Token, error) {
	tok := p.current()
	if tok.Type != expected {
		return tok, fmt.Errorf("unexpected token %s, expected %s", tok, expected)
	}
	p.pos++
	return tok, nil
}

// ParseProgram parses a complete `Schemes: ... Facts: ... Rules: ...
// Queries: ...` program.
func (p *Parser) ParseProgram() (*lang.Program, error) {
	prog := &lang.Program{}

	if _, err := p.match(lexer.SCHEMES); err != nil {
		return nil, err
	}
	if _, err := p.match(lexer.COLON); err != nil {
		return nil, err
	}
	for p.current().Type != lexer.FACTS {
		scheme, err := p.parseScheme()
		if err != nil {
			return nil, err
		}
		prog.Schemes = append(prog.Schemes, scheme)
	}

	if _, err := p.match(lexer.FACTS); err != nil {
		return nil, err
	}
	if _, err := p.match(lexer.COLON); err != nil {
		return nil, err
	}
	for p.current().Type != lexer.RULES {
		fact, err := p.parseFact()
		if err != nil {
			return nil, err
		}
		prog.Facts = append(prog.Facts, fact)
	}

	if _, err := p.match(lexer.RULES); err != nil {
		return nil, err
	}
	if _, err := p.match(lexer.COLON); err != nil {
		return nil, err
	}
	for p.current().Type != lexer.QUERIES {
		rule, err := p.parseRule()
		if err != nil {
			return nil, err
		}
		prog.Rules = append(prog.Rules, rule)
	}

	if _, err := p.match(lexer.QUERIES); err != nil {
		return nil, err
	}
	if _, err := p.match(lexer.COLON); err != nil {
		return nil, err
	}
	for p.current().Type != lexer.END {
		query, err := p.parseQuery()
		if err != nil {
			return nil, err
		}
		prog.Queries = append(prog.Queries, query)
	}

	if _, err := p.match(lexer.END); err != nil {
		return nil, err
	}
	return prog, nil
}

// parseScheme parses `name(ID,ID,...)` — a schema's parameters are always
// bare identifiers naming attributes, never quoted literals.
func (p *Parser) parseScheme() (lang.Predicate, error) {
	return p.parsePredicate(lexer.ID, lang.NewVariable)
}

// parseFact parses `name('v1','v2',...).` — a fact's parameters are always
// quoted literals.
func (p *Parser) parseFact() (lang.Predicate, error) {
	pred, err := p.parsePredicate(lexer.STRING, lang.NewLiteral)
	if err != nil {
		return pred, err
	}
	if _, err := p.match(lexer.PERIOD); err != nil {
		return pred, err
	}
	return pred, nil
}

// parsePredicate parses `name(p0,p1,...)` where every parameter is
// expected to have firstTokenType, wrapping each raw value with build.
func (p *Parser) parsePredicate(firstTokenType lexer.TokenType, build func(string) lang.Parameter) (lang.Predicate, error) {
	nameTok, err := p.match(lexer.ID)
	if err != nil {
		return lang.Predicate{}, err
	}
	pred := lang.Predicate{Name: nameTok.Value}

	if _, err := p.match(lexer.LEFT_PAREN); err != nil {
		return pred, err
	}
	first, err := p.match(firstTokenType)
	if err != nil {
		return pred, err
	}
	pred.Parameters = append(pred.Parameters, build(first.Value))

	for p.current().Type == lexer.COMMA {
		p.pos++
		tok, err := p.match(firstTokenType)
		if err != nil {
			return pred, err
		}
		pred.Parameters = append(pred.Parameters, build(tok.Value))
	}

	if _, err := p.match(lexer.RIGHT_PAREN); err != nil {
		return pred, err
	}
	return pred, nil
}

// parseAtom parses a rule-body atom or a query predicate, whose parameters
// may be either quoted literals or bare variables, intermixed freely.
func (p *Parser) parseAtom() (lang.Predicate, error) {
	nameTok, err := p.match(lexer.ID)
	if err != nil {
		return lang.Predicate{}, err
	}
	pred := lang.Predicate{Name: nameTok.Value}

	if _, err := p.match(lexer.LEFT_PAREN); err != nil {
		return pred, err
	}
	param, err := p.parseParameter()
	if err != nil {
		return pred, err
	}
	pred.Parameters = append(pred.Parameters, param)

	for p.current().Type == lexer.COMMA {
		p.pos++
		param, err := p.parseParameter()
		if err != nil {
			return pred, err
		}
		pred.Parameters = append(pred.Parameters, param)
	}

	if _, err := p.match(lexer.RIGHT_PAREN); err != nil {
		return pred, err
	}
	return pred, nil
}

func (p *Parser) parseParameter() (lang.Parameter, error) {
	tok := p.current()
	switch tok.Type {
	case lexer.STRING:
		p.pos++
		return lang.NewLiteral(tok.Value), nil
	case lexer.ID:
		p.pos++
		return lang.NewVariable(tok.Value), nil
	default:
		return lang.Parameter{}, fmt.Errorf("unexpected token %s in parameter list", tok)
	}
}

// parseRule parses `head(...) :- atom1,atom2,....`. The head's own
// parameters are always bare variables, per spec.md §3.
func (p *Parser) parseRule() (lang.Rule, error) {
	head, err := p.parsePredicate(lexer.ID, lang.NewVariable)
	if err != nil {
		return lang.Rule{}, err
	}
	if _, err := p.match(lexer.COLON_DASH); err != nil {
		return lang.Rule{}, err
	}
	rule := lang.Rule{Head: head}

	atom, err := p.parseAtom()
	if err != nil {
		return rule, err
	}
	rule.Body = append(rule.Body, atom)

	for p.current().Type == lexer.COMMA {
		p.pos++
		atom, err := p.parseAtom()
		if err != nil {
			return rule, err
		}
		rule.Body = append(rule.Body, atom)
	}

	if _, err := p.match(lexer.PERIOD); err != nil {
		return rule, err
	}
	return rule, nil
}

// parseQuery parses `predicate(...)?`.
func (p *Parser) parseQuery() (lang.Predicate, error) {
	pred, err := p.parseAtom()
	if err != nil {
		return pred, err
	}
	if _, err := p.match(lexer.Q_MARK); err != nil {
		return pred, err
	}
	return pred, nil
}
