package parser

import (
	"fmt"
	"math"
	"strconv"

	"sunaba/internal/ast"
)

// exprState tracks what the expression parser expects next: an operand
// (empty), an operand to wrap with a pending prefix sign (unary), or an
// operator to combine with a finished left operand (binary).
type exprStateKind int

const (
	exprEmpty exprStateKind = iota
	exprPendingUnary
	exprPendingBinary
)

type exprState struct {
	kind exprStateKind
	op   string   // pending prefix when kind == exprPendingUnary
	left ast.Expr // finished operand when kind == exprPendingBinary
}

// parseExpression parses one complete expression region: a whole test or
// right-hand side, parenthesised contents, a subscript, or an argument
// slot. The recursion builds binary chains right-leaning; the single
// rotation here normalizes the finished region to left-associative form.
func (p *Parser) parseExpression(column int, toks []Token) (ast.Expr, error) {
	expr, err := p.parseExprTokens(column, toks, exprState{})
	if err != nil {
		return nil, err
	}
	if root, ok := expr.(*ast.BinaryExpr); ok {
		return rotateLeft(root), nil
	}
	return expr, nil
}

func (p *Parser) parseExprTokens(column int, toks []Token, state exprState) (ast.Expr, error) {
	if len(toks) == 0 {
		return nil, errorAt(column, 0, "An expression is expected")
	}

	if state.kind == exprPendingBinary {
		op := toks[0]
		if op.Type != OPERATOR {
			return nil, errorAt(column, op.Row, "An operator is expected here")
		}
		right, err := p.parseExprTokens(column, toks[1:], exprState{})
		if err != nil {
			return nil, err
		}
		return &ast.BinaryExpr{Op: op.Value, Left: state.left, Right: right}, nil
	}

	tok := toks[0]
	switch tok.Type {
	case IDENTIFIER:
		return p.parseOperandTail(column, &ast.IdentExpr{Name: tok.Value}, toks, state)

	case MEMORY:
		if len(toks) < 2 || toks[1].Type != LEFT_BRACKET {
			return nil, errorAt(column, tok.Row, "'[' is required after 'memory'")
		}
		return p.parseOperandTail(column, &ast.IdentExpr{Name: "memory"}, toks, state)

	case NUMBER:
		value, err := strconv.ParseInt(tok.Value, 10, 64)
		if state.kind == exprPendingUnary && state.op == "-" {
			value = -value
		}
		if err != nil || value < math.MinInt32 || value > math.MaxInt32 {
			return nil, errorAt(column, tok.Row, "Out of range integer value")
		}
		var node ast.Expr = &ast.NumberLit{Value: int32(value)}
		if rest := toks[1:]; len(rest) > 0 {
			return p.parseExprTokens(column, rest, exprState{kind: exprPendingBinary, left: node})
		}
		return node, nil

	case OPERATOR:
		if state.kind == exprPendingUnary {
			return nil, errorAt(column, tok.Row, "An operand is expected after the sign")
		}
		if tok.Value != "+" && tok.Value != "-" {
			return nil, errorAt(column, tok.Row, "Only '+' or '-' can prefix an expression")
		}
		return p.parseExprTokens(column, toks[1:], exprState{kind: exprPendingUnary, op: tok.Value})

	case LEFT_PAREN:
		end := matchRegion(toks, 0, LEFT_PAREN, RIGHT_PAREN)
		if end < 0 {
			return nil, errorAt(column, tok.Row, "The '(' is not closed")
		}
		inner := toks[1:end]
		if len(inner) == 0 {
			return nil, errorAt(column, tok.Row, "The parentheses need an expression")
		}
		sub, err := p.parseExpression(column, inner)
		if err != nil {
			return nil, err
		}
		if binary, ok := sub.(*ast.BinaryExpr); ok {
			binary.Paren = true
		}
		var node ast.Expr = sub
		if state.kind == exprPendingUnary {
			node = &ast.UnaryExpr{Op: state.op, Arg: sub}
		}
		if rest := toks[end+1:]; len(rest) > 0 {
			return p.parseExprTokens(column, rest, exprState{kind: exprPendingBinary, left: node})
		}
		return node, nil

	case IF, WHILE, DEF, CONST:
		return nil, errorAt(column, tok.Row, fmt.Sprintf("The keyword '%s' cannot appear in an expression", tok.Value))

	default:
		return nil, errorAt(column, tok.Row, fmt.Sprintf("The expression cannot contain '%s'", tok.Value))
	}
}

// parseOperandTail finishes an identifier-rooted operand: indexed access,
// a call, or the bare name. The finished operand picks up any pending sign
// and feeds remaining tokens back as the left side of a binary chain.
func (p *Parser) parseOperandTail(column int, target *ast.IdentExpr, toks []Token, state exprState) (ast.Expr, error) {
	var node ast.Expr = target
	rest := toks[1:]

	if len(rest) > 0 && rest[0].Type == LEFT_BRACKET {
		end := matchRegion(rest, 0, LEFT_BRACKET, RIGHT_BRACKET)
		if end < 0 {
			return nil, errorAt(column, rest[0].Row, "The '[' is not closed")
		}
		inner := rest[1:end]
		if len(inner) == 0 {
			return nil, errorAt(column, rest[0].Row, "The brackets need a subscript expression")
		}
		property, err := p.parseExpression(column, inner)
		if err != nil {
			return nil, err
		}
		node = &ast.MemberExpr{Target: target, Property: property}
		rest = rest[end+1:]
	} else if len(rest) > 0 && rest[0].Type == LEFT_PAREN {
		end := matchRegion(rest, 0, LEFT_PAREN, RIGHT_PAREN)
		if end < 0 {
			return nil, errorAt(column, rest[0].Row, "The '(' is not closed")
		}
		args, err := p.parseArguments(column, rest[0].Row, rest[1:end])
		if err != nil {
			return nil, err
		}
		node = &ast.CallExpr{Callee: target, Args: args}
		rest = rest[end+1:]
	}

	if state.kind == exprPendingUnary {
		node = &ast.UnaryExpr{Op: state.op, Arg: node}
	}
	if len(rest) > 0 {
		return p.parseExprTokens(column, rest, exprState{kind: exprPendingBinary, left: node})
	}
	return node, nil
}

// parseArguments splits the region between a call's parentheses on commas
// at nesting depth zero and parses each slot; empty slots are rejected.
func (p *Parser) parseArguments(column, openRow int, inner []Token) ([]ast.Expr, error) {
	if len(inner) == 0 {
		return nil, nil
	}

	var args []ast.Expr
	depth := 0
	start := 0
	for i, tok := range inner {
		switch tok.Type {
		case LEFT_PAREN, LEFT_BRACKET:
			depth++
		case RIGHT_PAREN, RIGHT_BRACKET:
			depth--
		case SEPARATOR:
			if depth == 0 {
				if i == start {
					return nil, errorAt(column, openRow, "An argument is missing")
				}
				arg, err := p.parseExpression(column, inner[start:i])
				if err != nil {
					return nil, err
				}
				args = append(args, arg)
				start = i + 1
			}
		}
	}

	if start == len(inner) {
		return nil, errorAt(column, openRow, "An argument is missing")
	}
	arg, err := p.parseExpression(column, inner[start:])
	if err != nil {
		return nil, err
	}
	return append(args, arg), nil
}

// matchRegion returns the index of the close that balances the opening
// token at toks[open], or -1 when the region never closes.
func matchRegion(toks []Token, open int, openType, closeType TokenType) int {
	depth := 0
	for i := open; i < len(toks); i++ {
		switch toks[i].Type {
		case openType:
			depth++
		case closeType:
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// rotateLeft rebalances the right-leaning chain the recursion produces so
// it associates to the left: (l op (ll op2 lr)) becomes ((l op ll) op2 lr),
// repeated until the right child is no longer part of the chain. Operands
// are never Binary themselves except parenthesised subtrees, which are
// pinned and never folded into the surrounding chain.
func rotateLeft(root *ast.BinaryExpr) *ast.BinaryExpr {
	for {
		right, ok := root.Right.(*ast.BinaryExpr)
		if !ok || right.Paren {
			return root
		}
		root = &ast.BinaryExpr{
			Op:    right.Op,
			Left:  &ast.BinaryExpr{Op: root.Op, Left: root.Left, Right: right.Left},
			Right: right.Right,
		}
	}
}
