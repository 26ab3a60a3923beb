package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// SunabaLexer is a flat, layout-insensitive lexer for editor tooling.
// Semantic highlighting has to survive sources whose indentation the real
// tokeniser rejects, so this lexer never consults the indent stack; the
// tokeniser in internal/parser owns layout.
var SunabaLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		// Comments
		{Name: "Comment", Pattern: `#[^\n]*`},
		{Name: "BlockCommentStart", Pattern: `/\*`, Action: lexer.Push("BlockComment")},

		// Literals before identifiers (order matters)
		{Name: "Number", Pattern: `[0-9]+`},
		{Name: "Ident", Pattern: `[A-Za-z_@$?'\x{0100}-\x{10FFFF}][0-9A-Za-z_@$?'\x{0100}-\x{10FFFF}]*`},

		// Operators; '->' must win over bare '-'
		{Name: "Assign", Pattern: `->`},
		{Name: "Operator", Pattern: `!=|>=|<=|[-+*/=<>]`},
		{Name: "Bang", Pattern: `!`},

		// Punctuation
		{Name: "Punct", Pattern: `[(),\[\]]`},

		// Whitespace
		{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
	},
	"BlockComment": {
		{Name: "BlockCommentNest", Pattern: `/\*`, Action: lexer.Push("BlockComment")},
		{Name: "BlockCommentEnd", Pattern: `\*/`, Action: lexer.Pop()},
		{Name: "BlockCommentChunk", Pattern: `[^*/]+|[*/]`},
	},
})

// KEYWORDS mirrors the reserved words of the real tokeniser.
var KEYWORDS = map[string]bool{
	"memory": true,
	"if":     true,
	"while":  true,
	"def":    true,
	"const":  true,
}

func IsKeyword(text string) bool {
	return KEYWORDS[text]
}

// SymbolName resolves a lexed token type back to its rule name.
func SymbolName(t lexer.TokenType) string {
	for name, symbol := range SunabaLexer.Symbols() {
		if symbol == t {
			return name
		}
	}
	return ""
}
