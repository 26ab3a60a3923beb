package parser

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFullProgramRoundTrip(t *testing.T) {
	source := `# clamp a value into [0, max]
const max -> 100

def clamp(v)
    if v > max
        v -> max
    while v < 0
        v -> v + max
    memory[0] -> v

clamp(12)`

	program := compile(t, source)
	require.Len(t, program.Body, 3)

	expected := "const max -> 100\n" +
		"def clamp(v)\n" +
		"    if v > max\n" +
		"        v -> max\n" +
		"    while v < 0\n" +
		"        v -> v + max\n" +
		"    memory[0] -> v\n" +
		"clamp(12)"
	assert.Equal(t, expected, program.String())
}

func TestTokenDumpShape(t *testing.T) {
	lines, err := Tokenize("x -> 1")
	require.NoError(t, err)

	data, err := json.Marshal(lines)
	require.NoError(t, err)

	expected := `[{"column":1,"indent":0,"tokens":[` +
		`{"type":"Identifier","value":"x","row":1},` +
		`{"type":"Assignment","row":3},` +
		`{"type":"NumericLiteral","value":"1","row":6}]}]`
	assert.Equal(t, expected, string(data))
}

func TestSyntaxDumpShape(t *testing.T) {
	program := compile(t, "memory[i + 1] -> 7")

	data, err := json.Marshal(program)
	require.NoError(t, err)

	expected := `{"type":"Program","body":[{"type":"Assignment",` +
		`"left":{"type":"Member",` +
		`"target":{"type":"Identifier","name":"memory"},` +
		`"property":{"type":"Binary","operator":"+",` +
		`"left":{"type":"Identifier","name":"i"},` +
		`"right":{"type":"NumericLiteral","value":1}}},` +
		`"right":{"type":"NumericLiteral","value":7}}]}`
	assert.Equal(t, expected, string(data))
}

func TestCommentOnlyLinesKeepColumns(t *testing.T) {
	source := "# header\n/* block\ncomment */\nx -> 1"
	lines, err := Tokenize(source)
	require.NoError(t, err)

	require.Len(t, lines, 1)
	assert.Equal(t, 4, lines[0].Column)
	assert.Equal(t, 0, lines[0].Indent)
}

func TestCommentTokenisesLikePlainSource(t *testing.T) {
	commented, err := Tokenize("/* a /* b */ c */ x -> 1")
	require.NoError(t, err)
	plain, err := Tokenize("x -> 1")
	require.NoError(t, err)

	require.Len(t, commented, 1)
	require.Len(t, plain, 1)
	require.Len(t, commented[0].Tokens, len(plain[0].Tokens))
	for i := range plain[0].Tokens {
		assert.Equal(t, plain[0].Tokens[i].Type, commented[0].Tokens[i].Type)
		assert.Equal(t, plain[0].Tokens[i].Value, commented[0].Tokens[i].Value)
	}
}

func TestIndentStaysWithinStack(t *testing.T) {
	source := "def main()\n    a -> 1\n    if a\n        b -> 2\n    c -> 3"
	lines, err := Tokenize(source)
	require.NoError(t, err)

	maxSeen := 0
	for _, line := range lines {
		assert.GreaterOrEqual(t, line.Indent, 0)
		assert.LessOrEqual(t, line.Indent, maxSeen+1)
		if line.Indent > maxSeen {
			maxSeen = line.Indent
		}
	}
}
