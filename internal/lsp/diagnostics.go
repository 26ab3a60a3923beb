package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"sunaba/internal/parser"
)

// ConvertParseError transforms a front-end error into an LSP diagnostic.
// ParseError coordinates are 1-based (column is the line number, row the
// in-line offset); LSP positions are 0-based.
func ConvertParseError(parseErr *parser.ParseError) []protocol.Diagnostic {
	line := uint32(0)
	if parseErr.Column > 0 {
		line = uint32(parseErr.Column - 1)
	}
	start := uint32(0)
	if parseErr.Row > 0 {
		start = uint32(parseErr.Row - 1)
	}

	return []protocol.Diagnostic{{
		Range: protocol.Range{
			Start: protocol.Position{Line: line, Character: start},
			End:   protocol.Position{Line: line, Character: start + 1},
		},
		Severity: ptrSeverity(protocol.DiagnosticSeverityError),
		Source:   ptrString("sunaba"),
		Message:  parseErr.Message,
	}}
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func ptrString(s string) *string {
	return &s
}
