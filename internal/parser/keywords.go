package parser

var KEYWORDS = map[string]TokenType{
	"memory": MEMORY,
	"if":     IF,
	"while":  WHILE,
	"def":    DEF,
	"const":  CONST,
}
