// Package parser turns a token stream into the ast.Expr tree the
// evaluator walks. The lexer carries no keyword concept (spec §4.2's
// token kinds are purely structural), so this Pratt parser is what
// gives "var", "function", "if", "while", "switch", "new" and friends
// meaning, by inspecting Identifier token text.
//
// Grounded on _examples/Metnew-simple-go-js-interpreter/parser/parser.go's
// precedence-climbing structure, trimmed to exactly the grammar
// SPEC_FULL §5.3 names.
package parser

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/go-jsgo/jsgo/ast"
	"github.com/go-jsgo/jsgo/lexer"
	"github.com/go-jsgo/jsgo/token"
)

// Error is a parser-fatal error with source position.
type Error struct {
	Line, Column int
	Msg          string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Msg)
}

// precedence levels, lowest to highest binding power.
const (
	_ int = iota
	precAssign
	precLogicalOr
	precLogicalAnd
	precBitOr
	precBitXor
	precBitAnd
	precEquality
	precRelational
	precShift
	precAdditive
	precMultiplicative
	precUnary
	precCall
)

// Parser is a single-pass Pratt parser over a pre-lexed token slice.
type Parser struct {
	toks []token.Token
	pos  int
	err  error
}

// New lexes source and returns a Parser ready to ParseProgram it.
func New(source string) (*Parser, error) {
	toks, err := lexer.New(source).Lex()
	if err != nil {
		return nil, errors.Wrap(err, "lex")
	}
	return NewFromTokens(toks), nil
}

// NewFromTokens builds a Parser directly from an already-lexed stream,
// skipping Comment tokens (they carry no grammatical meaning here).
func NewFromTokens(toks []token.Token) *Parser {
	filtered := make([]token.Token, 0, len(toks))
	for _, t := range toks {
		if t.Type != token.Comment {
			filtered = append(filtered, t)
		}
	}
	if len(filtered) == 0 || filtered[len(filtered)-1].Type != token.EOF {
		filtered = append(filtered, token.Token{Type: token.EOF})
	}
	return &Parser{toks: filtered}
}

// ParseProgram parses the whole token stream as a top-level Block and
// returns the first parse error encountered, if any.
func (p *Parser) ParseProgram() (*ast.Block, error) {
	block := &ast.Block{}
	for !p.curIs(token.EOF) {
		expr := p.parseStatement()
		if p.err != nil {
			return nil, errors.Wrap(p.err, "parse")
		}
		block.Children = append(block.Children, expr)
	}
	return block, nil
}

func (p *Parser) cur() token.Token { return p.toks[p.pos] }

func (p *Parser) peek() token.Token {
	if p.pos+1 < len(p.toks) {
		return p.toks[p.pos+1]
	}
	return p.toks[len(p.toks)-1]
}

func (p *Parser) advance() token.Token {
	t := p.cur()
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func (p *Parser) curIs(t token.Type) bool  { return p.cur().Type == t }
func (p *Parser) peekIs(t token.Type) bool { return p.peek().Type == t }

func (p *Parser) curIsIdent(lit string) bool {
	return p.cur().Type == token.Identifier && p.cur().Literal == lit
}

func (p *Parser) fail(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	t := p.cur()
	p.err = &Error{t.Line, t.Column, fmt.Sprintf(format, args...)}
}

func (p *Parser) expect(t token.Type) token.Token {
	if !p.curIs(t) {
		p.fail("expected %s, got %s (%q)", t, p.cur().Type, p.cur().Literal)
		return p.cur()
	}
	return p.advance()
}

// consumeSemicolon swallows an optional trailing ';'; this grammar has
// no automatic-semicolon-insertion machinery, it simply treats ';' as
// always optional.
func (p *Parser) consumeSemicolon() {
	if p.curIs(token.Semicolon) {
		p.advance()
	}
}

// ---------- Statements ----------

func (p *Parser) parseStatement() ast.Expr {
	switch {
	case p.curIsIdent("var"), p.curIsIdent("let"), p.curIsIdent("const"):
		return p.parseVarStatement()
	case p.curIsIdent("function"):
		return p.parseFunctionLiteral()
	case p.curIsIdent("if"):
		return p.parseIfStatement()
	case p.curIsIdent("while"):
		return p.parseWhileStatement()
	case p.curIsIdent("switch"):
		return p.parseSwitchStatement()
	case p.curIsIdent("return"):
		return p.parseReturnStatement()
	case p.curIsIdent("throw"):
		return p.parseThrowStatement()
	case p.curIs(token.OpenBlock):
		return p.parseBlockStatement()
	case p.curIs(token.Semicolon):
		p.advance()
		return &ast.UndefinedLiteral{}
	default:
		expr := p.parseExpression(0)
		p.consumeSemicolon()
		return expr
	}
}

// parseVarStatement desugars `var NAME (= EXPR)?` to an Assign against
// a Local. The evaluator's Assign rule already falls back to a global
// write for an unbound name (spec §4.3 "Assign"), which is exactly
// what a top-level declaration needs; no separate declare node exists
// in spec §4.3's expression-variant list, and the original Rust has
// none either (see DESIGN.md).
func (p *Parser) parseVarStatement() ast.Expr {
	p.advance() // var/let/const
	name := p.expect(token.Identifier).Literal
	var value ast.Expr = &ast.UndefinedLiteral{}
	if p.curIs(token.Equal) {
		p.advance()
		value = p.parseExpression(precAssign)
	}
	p.consumeSemicolon()
	return &ast.Assign{Target: &ast.Local{Name: name}, Value: value}
}

func (p *Parser) parseBlockStatement() *ast.Block {
	p.expect(token.OpenBlock)
	block := &ast.Block{}
	for !p.curIs(token.CloseBlock) && !p.curIs(token.EOF) {
		block.Children = append(block.Children, p.parseStatement())
	}
	p.expect(token.CloseBlock)
	return block
}

// parseBodyStatement wraps a non-brace statement body so `if`/`while`
// bodies are uniformly an ast.Expr, exactly like a braced block.
func (p *Parser) parseBodyStatement() ast.Expr {
	if p.curIs(token.OpenBlock) {
		return p.parseBlockStatement()
	}
	return p.parseStatement()
}

// parseFunctionLiteral parses `function NAME? (params) { body }`. A
// present name additionally causes the evaluator to bind it on the
// global object (spec §4.3); an absent name is a function expression.
func (p *Parser) parseFunctionLiteral() *ast.FunctionDecl {
	p.advance() // function
	name := ""
	if p.curIs(token.Identifier) {
		name = p.advance().Literal
	}
	params := p.parseParamList()
	body := p.parseBlockStatement()
	return &ast.FunctionDecl{Name: name, Params: params, Body: body}
}

func (p *Parser) parseParamList() []string {
	p.expect(token.OpenParen)
	var params []string
	for !p.curIs(token.CloseParen) && !p.curIs(token.EOF) {
		params = append(params, p.expect(token.Identifier).Literal)
		if !p.curIs(token.Comma) {
			break
		}
		p.advance()
	}
	p.expect(token.CloseParen)
	return params
}

func (p *Parser) parseIfStatement() ast.Expr {
	p.advance() // if
	p.expect(token.OpenParen)
	cond := p.parseExpression(0)
	p.expect(token.CloseParen)
	then := p.parseBodyStatement()
	stmt := &ast.If{Cond: cond, Then: then}
	if p.curIsIdent("else") {
		p.advance()
		stmt.Else = p.parseBodyStatement()
	}
	return stmt
}

func (p *Parser) parseWhileStatement() ast.Expr {
	p.advance() // while
	p.expect(token.OpenParen)
	cond := p.parseExpression(0)
	p.expect(token.CloseParen)
	body := p.parseBodyStatement()
	return &ast.While{Cond: cond, Body: body}
}

func (p *Parser) parseSwitchStatement() ast.Expr {
	p.advance() // switch
	p.expect(token.OpenParen)
	disc := p.parseExpression(0)
	p.expect(token.CloseParen)
	p.expect(token.OpenBlock)

	sw := &ast.Switch{Discriminant: disc}
	for !p.curIs(token.CloseBlock) && !p.curIs(token.EOF) {
		sc := &ast.SwitchCase{}
		switch {
		case p.curIsIdent("case"):
			p.advance()
			sc.Test = p.parseExpression(0)
			p.expect(token.Colon)
		case p.curIsIdent("default"):
			p.advance()
			p.expect(token.Colon)
		default:
			p.fail("expected case or default, got %q", p.cur().Literal)
			return sw
		}
		body := &ast.Block{}
		for !p.curIsIdent("case") && !p.curIsIdent("default") && !p.curIs(token.CloseBlock) && !p.curIs(token.EOF) {
			body.Children = append(body.Children, p.parseStatement())
		}
		sc.Body = body
		sw.Cases = append(sw.Cases, sc)
	}
	p.expect(token.CloseBlock)
	return sw
}

func (p *Parser) parseReturnStatement() ast.Expr {
	p.advance() // return
	var value ast.Expr
	if !p.curIs(token.Semicolon) && !p.curIs(token.CloseBlock) && !p.curIs(token.EOF) {
		value = p.parseExpression(0)
	}
	p.consumeSemicolon()
	return &ast.Return{Value: value}
}

func (p *Parser) parseThrowStatement() ast.Expr {
	p.advance() // throw
	value := p.parseExpression(0)
	p.consumeSemicolon()
	return &ast.Throw{Value: value}
}

// ---------- Expressions (Pratt) ----------

func (p *Parser) parseExpression(minPrec int) ast.Expr {
	left := p.parsePrefix()
	for {
		prec, rightAssoc := p.infixPrecedence()
		if prec == 0 {
			break
		}
		if prec <= minPrec && !(rightAssoc && prec == minPrec) {
			break
		}
		left = p.parseInfix(left, prec)
	}
	return left
}

// infixPrecedence reports the binding power of the current token as an
// infix operator, and whether it is right-associative. A zero result
// means the current token does not continue a binary expression.
func (p *Parser) infixPrecedence() (int, bool) {
	switch {
	case p.curIs(token.Equal):
		return precAssign, true
	case p.curIs(token.LogOp):
		if p.cur().Literal == "||" {
			return precLogicalOr, false
		}
		return precLogicalAnd, false
	case p.curIs(token.CompOp):
		switch p.cur().Literal {
		case "==", "!=":
			return precEquality, false
		case "<=", ">=":
			return precRelational, false
		case "<", ">":
			if p.peekIs(token.CompOp) && p.peek().Literal == p.cur().Literal {
				return precShift, false
			}
			return precRelational, false
		}
	case p.curIs(token.BitOp):
		switch p.cur().Literal {
		case "|":
			return precBitOr, false
		case "^":
			return precBitXor, false
		case "&":
			return precBitAnd, false
		}
	case p.curIs(token.NumOp):
		switch p.cur().Literal {
		case "+", "-":
			return precAdditive, false
		case "*", "/", "%":
			return precMultiplicative, false
		}
	}
	return 0, false
}

func (p *Parser) parseInfix(left ast.Expr, prec int) ast.Expr {
	op := p.advance()
	switch op.Type {
	case token.Equal:
		value := p.parseExpression(prec - 1)
		return &ast.Assign{Target: left, Value: value}
	case token.LogOp:
		right := p.parseExpression(prec)
		return &ast.Logical{Op: op.Literal, Left: left, Right: right}
	case token.CompOp:
		if prec == precShift {
			// fold the adjacent same-kind CompOp token into one shift
			// operator (SPEC_FULL §4's shift-token-synthesis supplement).
			p.advance()
			shiftOp := op.Literal + op.Literal
			right := p.parseExpression(prec)
			return &ast.Shift{Op: shiftOp, Left: left, Right: right}
		}
		right := p.parseExpression(prec)
		return &ast.Compare{Op: op.Literal, Left: left, Right: right}
	case token.BitOp:
		right := p.parseExpression(prec)
		return &ast.NumOp{Op: op.Literal, Left: left, Right: right}
	case token.NumOp:
		right := p.parseExpression(prec)
		return &ast.NumOp{Op: op.Literal, Left: left, Right: right}
	default:
		p.fail("unexpected infix operator %s", op.Type)
		return left
	}
}

func (p *Parser) parsePrefix() ast.Expr {
	switch {
	case p.curIs(token.NumOp) && (p.cur().Literal == "-" || p.cur().Literal == "+"):
		op := p.advance().Literal
		operand := p.parseExpression(precUnary)
		if op == "-" {
			return &ast.NumOp{Op: "-", Left: &ast.IntegerLiteral{Value: 0}, Right: operand}
		}
		return operand
	case p.curIsIdent("new"):
		return p.parsePostfix(p.parseConstruct())
	case p.curIsIdent("function"):
		return p.parsePostfix(p.parseFunctionLiteral())
	case p.curIsIdent("var"), p.curIsIdent("let"), p.curIsIdent("const"):
		return p.parseVarStatement()
	case p.curIsIdent("true"):
		p.advance()
		return &ast.BoolLiteral{Value: true}
	case p.curIsIdent("false"):
		p.advance()
		return &ast.BoolLiteral{Value: false}
	case p.curIsIdent("null"):
		p.advance()
		return p.parsePostfix(&ast.NullLiteral{})
	case p.curIsIdent("undefined"):
		p.advance()
		return p.parsePostfix(&ast.UndefinedLiteral{})
	case p.curIs(token.Identifier) && p.peekIs(token.Arrow):
		return p.parsePostfix(p.parseArrowSingleParam())
	case p.curIs(token.Identifier):
		name := p.advance().Literal
		return p.parsePostfix(&ast.Local{Name: name})
	case p.curIs(token.Number):
		return p.parsePostfix(p.parseNumberLiteral())
	case p.curIs(token.String):
		return p.parsePostfix(&ast.StringLiteral{Value: p.advance().Literal})
	case p.curIs(token.RegExp):
		p.advance()
		return &ast.RegExpLiteral{}
	case p.curIs(token.OpenParen):
		return p.parsePostfix(p.parseParenOrArrow())
	case p.curIs(token.OpenArray):
		return p.parsePostfix(p.parseArrayLiteral())
	case p.curIs(token.OpenBlock):
		return p.parsePostfix(p.parseObjectLiteral())
	default:
		p.fail("unexpected token %s (%q)", p.cur().Type, p.cur().Literal)
		p.advance()
		return &ast.UndefinedLiteral{}
	}
}

// parseNumberLiteral resolves the Integer-vs-Number split of SPEC_FULL
// §5.3: a non-decimal radix with no fractional part is an Integer,
// everything else a Number.
func (p *Parser) parseNumberLiteral() ast.Expr {
	t := p.advance()
	if t.Radix != 10 {
		return &ast.IntegerLiteral{Value: int32(t.Num)}
	}
	return &ast.NumberLiteral{Value: t.Num}
}

func (p *Parser) parseConstruct() ast.Expr {
	p.advance() // new
	callee := p.parseCalleeChain()
	var args []ast.Expr
	if p.curIs(token.OpenParen) {
		args = p.parseArgs()
	}
	return &ast.Construct{Callee: callee, Args: args}
}

// parseCalleeChain parses a primary plus any `.field`/`[expr]` chain,
// stopping before a call so `new` can claim the argument list that
// follows (mirrors the teacher's parseNewExpression/
// parseLeftHandSideExpression split).
func (p *Parser) parseCalleeChain() ast.Expr {
	var left ast.Expr
	switch {
	case p.curIsIdent("new"):
		left = p.parseConstruct()
	case p.curIs(token.Identifier):
		left = &ast.Local{Name: p.advance().Literal}
	case p.curIs(token.OpenParen):
		p.advance()
		left = p.parseExpression(0)
		p.expect(token.CloseParen)
	default:
		p.fail("unexpected token in new-expression: %s", p.cur().Type)
		return &ast.UndefinedLiteral{}
	}
	for {
		switch {
		case p.curIs(token.Dot):
			p.advance()
			name := p.expect(token.Identifier).Literal
			left = &ast.GetField{Object: left, Name: name}
		case p.curIs(token.OpenArray):
			p.advance()
			idx := p.parseExpression(0)
			p.expect(token.CloseArray)
			left = &ast.GetIndex{Object: left, Index: idx}
		default:
			return left
		}
	}
}

// parsePostfix extends a primary expression with member access, index
// access, and call chains (spec §4.3 "Field access"/"Call").
func (p *Parser) parsePostfix(left ast.Expr) ast.Expr {
	for {
		switch {
		case p.curIs(token.Dot):
			p.advance()
			name := p.expect(token.Identifier).Literal
			left = &ast.GetField{Object: left, Name: name}
		case p.curIs(token.OpenArray):
			p.advance()
			idx := p.parseExpression(0)
			p.expect(token.CloseArray)
			left = &ast.GetIndex{Object: left, Index: idx}
		case p.curIs(token.OpenParen):
			args := p.parseArgs()
			left = &ast.Call{Callee: left, Args: args}
		default:
			return left
		}
	}
}

func (p *Parser) parseArgs() []ast.Expr {
	p.expect(token.OpenParen)
	var args []ast.Expr
	for !p.curIs(token.CloseParen) && !p.curIs(token.EOF) {
		args = append(args, p.parseExpression(precAssign))
		if !p.curIs(token.Comma) {
			break
		}
		p.advance()
	}
	p.expect(token.CloseParen)
	return args
}

func (p *Parser) parseArrayLiteral() ast.Expr {
	p.advance() // [
	lit := &ast.ArrayLiteral{}
	for !p.curIs(token.CloseArray) && !p.curIs(token.EOF) {
		lit.Elements = append(lit.Elements, p.parseExpression(precAssign))
		if !p.curIs(token.Comma) {
			break
		}
		p.advance()
	}
	p.expect(token.CloseArray)
	return lit
}

func (p *Parser) parseObjectLiteral() ast.Expr {
	p.advance() // {
	lit := &ast.ObjectLiteral{}
	for !p.curIs(token.CloseBlock) && !p.curIs(token.EOF) {
		var key string
		switch {
		case p.curIs(token.Identifier):
			key = p.advance().Literal
		case p.curIs(token.String):
			key = p.advance().Literal
		case p.curIs(token.Number):
			key = p.cur().Literal
			p.advance()
		default:
			p.fail("unexpected token in object literal key: %s", p.cur().Type)
			return lit
		}
		p.expect(token.Colon)
		value := p.parseExpression(precAssign)
		lit.Props = append(lit.Props, ast.ObjectProp{Key: key, Value: value})
		if !p.curIs(token.Comma) {
			break
		}
		p.advance()
	}
	p.expect(token.CloseBlock)
	return lit
}

// parseParenOrArrow handles both `(expr)` grouping and `(params) =>
// expr` arrow literals (SPEC_FULL §4's arrow-function supplement),
// mirroring the teacher's parseParenthesizedOrArrow disambiguation by
// speculative lookahead.
func (p *Parser) parseParenOrArrow() ast.Expr {
	p.advance() // (

	if p.curIs(token.CloseParen) {
		p.advance()
		if p.curIs(token.Arrow) {
			return p.finishArrow(nil)
		}
		p.fail("unexpected empty parentheses")
		return &ast.UndefinedLiteral{}
	}

	if p.curIs(token.Identifier) {
		save := p.pos
		var params []string
		ok := true
		for {
			if !p.curIs(token.Identifier) {
				ok = false
				break
			}
			params = append(params, p.advance().Literal)
			if p.curIs(token.Comma) {
				p.advance()
				continue
			}
			break
		}
		if ok && p.curIs(token.CloseParen) && p.peekIs(token.Arrow) {
			p.advance() // )
			return p.finishArrow(params)
		}
		p.pos = save
	}

	expr := p.parseExpression(0)
	p.expect(token.CloseParen)
	return expr
}

func (p *Parser) finishArrow(params []string) ast.Expr {
	p.advance() // =>
	var body ast.Expr
	if p.curIs(token.OpenBlock) {
		body = p.parseBlockStatement()
	} else {
		body = p.parseExpression(precAssign)
	}
	return &ast.FunctionDecl{Params: params, Body: body}
}

func (p *Parser) parseArrowSingleParam() ast.Expr {
	param := p.advance().Literal
	p.advance() // =>
	return p.finishArrow([]string{param})
}
