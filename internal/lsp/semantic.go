package lsp

import (
	"sunaba/grammar"
)

// SemanticToken is a single LSP semantic token entry. Line and StartChar
// are 0-based; TokenType indexes SemanticTokenTypes and TokenModifiers is a
// bitmask over SemanticTokenModifiers.
type SemanticToken struct {
	Line           uint32
	StartChar      uint32
	Length         uint32
	TokenType      int
	TokenModifiers int
}

const (
	tokenKeyword = iota
	tokenVariable
	tokenNumber
	tokenOperator
)

// collectSemanticTokens lexes the document with the flat editor lexer so
// highlighting keeps working even when layout errors stop the real
// tokeniser. Comments, whitespace, and punctuation are left unstyled.
func collectSemanticTokens(source string) []SemanticToken {
	lx, err := grammar.SunabaLexer.LexString("", source)
	if err != nil {
		return nil
	}

	var out []SemanticToken
	for {
		tok, err := lx.Next()
		if err != nil || tok.EOF() {
			return out
		}

		var tokenType int
		switch grammar.SymbolName(tok.Type) {
		case "Ident":
			tokenType = tokenVariable
			if grammar.IsKeyword(tok.Value) {
				tokenType = tokenKeyword
			}
		case "Number":
			tokenType = tokenNumber
		case "Operator", "Assign":
			tokenType = tokenOperator
		default:
			continue
		}

		out = append(out, SemanticToken{
			Line:      uint32(tok.Pos.Line - 1),
			StartChar: uint32(tok.Pos.Column - 1),
			Length:    uint32(utf16Len(tok.Value)),
			TokenType: tokenType,
		})
	}
}

// utf16Len measures a lexeme the way LSP positions count: UTF-16 code
// units, so codepoints beyond U+FFFF weigh two.
func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		n++
		if r > 0xFFFF {
			n++
		}
	}
	return n
}
