package parser

import "sunaba/internal/ast"

// Compile runs both front-end stages over source text.
func Compile(source string) (*ast.Program, error) {
	lines, err := Tokenize(source)
	if err != nil {
		return nil, err
	}
	return Parse(lines)
}
