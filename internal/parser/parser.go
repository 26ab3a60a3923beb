package parser

import (
	"fmt"

	"sunaba/internal/ast"
)

// Parser consumes line-token groups and builds the program tree. Open
// blocks are tracked as a stack of statement bodies indexed by indent
// level; dedenting truncates the stack, closing the blocks it cuts off.
type Parser struct {
	frames     []*[]ast.Stmt
	minIndent  int // the next line must be at least this deep; -1 when unset
	maxIndent  int // the next line must be at most this deep
	lastColumn int
}

// Parse builds a Program from line tokens. The first violation aborts with
// a ParseError; there is no recovery.
func Parse(lines []LineToken) (*ast.Program, error) {
	program := &ast.Program{}
	p := &Parser{
		frames:    []*[]ast.Stmt{&program.Body},
		minIndent: -1,
		maxIndent: 0,
	}

	for _, line := range lines {
		if err := p.parseLine(line); err != nil {
			return nil, err
		}
	}

	if p.minIndent >= 0 {
		return nil, errorAt(p.lastColumn, 0, "There is no body for the last `if` or `while` or `def` statement")
	}
	return program, nil
}

func (p *Parser) parseLine(line LineToken) error {
	if p.minIndent >= 0 {
		if line.Indent < p.minIndent {
			return errorAt(line.Column, 0, "Invalid indent space")
		}
	} else if line.Indent > p.maxIndent {
		return errorAt(line.Column, 0, "Invalid indent space")
	}
	if line.Indent+1 > len(p.frames) {
		return errorAt(line.Column, 0, "Invalid indent space")
	}

	p.minIndent = -1
	p.lastColumn = line.Column
	p.frames = p.frames[:line.Indent+1]

	first := line.Tokens[0]
	switch first.Type {
	case IDENTIFIER, MEMORY:
		stmt, err := p.parseSimple(line)
		if err != nil {
			return err
		}
		p.append(stmt)
		p.maxIndent = line.Indent

	case IF, WHILE:
		return p.parseBlock(line)

	case CONST:
		return p.parseConst(line)

	case DEF:
		return p.parseDef(line)

	default:
		return errorAt(line.Column, first.Row, fmt.Sprintf("The statement cannot start with '%s'", first.Value))
	}
	return nil
}

func (p *Parser) append(stmt ast.Stmt) {
	top := p.frames[len(p.frames)-1]
	*top = append(*top, stmt)
}

// parseSimple handles lines led by an identifier or `memory`: an assignment
// when the line contains `->`, otherwise a bare call statement.
func (p *Parser) parseSimple(line LineToken) (ast.Stmt, error) {
	toks := line.Tokens
	split := -1
	for i, tok := range toks {
		if tok.Type == ASSIGN {
			split = i
			break
		}
	}

	if split < 0 {
		expr, err := p.parseExpression(line.Column, toks)
		if err != nil {
			return nil, err
		}
		call, ok := expr.(*ast.CallExpr)
		if !ok {
			return nil, errorAt(line.Column, toks[0].Row, "Only a function call can stand alone as a statement")
		}
		return &ast.ExprStmt{Call: call}, nil
	}

	if split == 0 {
		return nil, errorAt(line.Column, toks[0].Row, "The left side of '->' is missing")
	}
	if split == len(toks)-1 {
		return nil, errorAt(line.Column, toks[split].Row, "The right side of '->' is missing")
	}

	left, err := p.parseExpression(line.Column, toks[:split])
	if err != nil {
		return nil, err
	}
	switch left.(type) {
	case *ast.IdentExpr, *ast.MemberExpr:
	default:
		return nil, errorAt(line.Column, toks[0].Row, "The left side of '->' must be a name or a memory element")
	}

	right, err := p.parseExpression(line.Column, toks[split+1:])
	if err != nil {
		return nil, err
	}
	return &ast.AssignStmt{Left: left, Right: right}, nil
}

// parseBlock handles `if` and `while`: the rest of the line is the test and
// the statement opens a body that the next, deeper line must begin.
func (p *Parser) parseBlock(line LineToken) error {
	first := line.Tokens[0]
	rest := line.Tokens[1:]
	if len(rest) == 0 {
		return errorAt(line.Column, first.Row, fmt.Sprintf("The condition of '%s' is missing", first.Value))
	}

	test, err := p.parseExpression(line.Column, rest)
	if err != nil {
		return err
	}

	var body *[]ast.Stmt
	if first.Type == IF {
		node := &ast.IfStmt{Test: test}
		p.append(node)
		body = &node.Body
	} else {
		node := &ast.WhileStmt{Test: test}
		p.append(node)
		body = &node.Body
	}

	p.frames = append(p.frames, body)
	p.minIndent = line.Indent + 1
	return nil
}

func (p *Parser) parseConst(line LineToken) error {
	toks := line.Tokens
	if line.Indent != 0 {
		return errorAt(line.Column, toks[0].Row, "The 'const' statement is allowed only at the top level")
	}
	if len(toks) < 2 || toks[1].Type != IDENTIFIER {
		return errorAt(line.Column, toks[0].Row, "A name is required after 'const'")
	}
	if len(toks) < 3 || toks[2].Type != ASSIGN {
		return errorAt(line.Column, toks[1].Row, "'->' is required after the constant name")
	}
	if len(toks) < 4 {
		return errorAt(line.Column, toks[2].Row, "The right side of '->' is missing")
	}

	right, err := p.parseExpression(line.Column, toks[3:])
	if err != nil {
		return err
	}

	p.append(&ast.ConstDecl{
		Left:  &ast.IdentExpr{Name: toks[1].Value},
		Right: right,
	})
	p.maxIndent = line.Indent
	return nil
}

func (p *Parser) parseDef(line LineToken) error {
	toks := line.Tokens
	if line.Indent != 0 {
		return errorAt(line.Column, toks[0].Row, "The 'def' statement is allowed only at the top level")
	}
	if len(toks) < 2 || toks[1].Type != IDENTIFIER {
		return errorAt(line.Column, toks[0].Row, "A function name is required after 'def'")
	}
	if len(toks) < 3 || toks[2].Type != LEFT_PAREN {
		return errorAt(line.Column, toks[1].Row, "'(' is required after the function name")
	}

	end := matchRegion(toks, 2, LEFT_PAREN, RIGHT_PAREN)
	if end < 0 {
		return errorAt(line.Column, toks[2].Row, "The '(' is not closed")
	}
	if end != len(toks)-1 {
		return errorAt(line.Column, toks[end+1].Row, "Nothing can follow the parameter list")
	}

	params, err := p.parseParams(line.Column, toks[3:end])
	if err != nil {
		return err
	}

	node := &ast.FuncDecl{
		ID:     &ast.IdentExpr{Name: toks[1].Value},
		Params: params,
	}
	p.append(node)
	p.frames = append(p.frames, &node.Body)
	p.minIndent = line.Indent + 1
	return nil
}

// parseParams reads a comma-separated list of parameter names; every slot
// must hold exactly one identifier.
func (p *Parser) parseParams(column int, toks []Token) ([]*ast.IdentExpr, error) {
	if len(toks) == 0 {
		return nil, nil
	}

	var params []*ast.IdentExpr
	i := 0
	for {
		if i >= len(toks) || toks[i].Type != IDENTIFIER {
			row := 0
			if i < len(toks) {
				row = toks[i].Row
			} else {
				row = toks[i-1].Row
			}
			return nil, errorAt(column, row, "A parameter name is expected")
		}
		params = append(params, &ast.IdentExpr{Name: toks[i].Value})
		i++
		if i == len(toks) {
			return params, nil
		}
		if toks[i].Type != SEPARATOR {
			return nil, errorAt(column, toks[i].Row, "',' is expected between parameters")
		}
		i++
	}
}
