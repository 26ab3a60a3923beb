package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func singleLine(t *testing.T, source string) LineToken {
	t.Helper()
	lines, err := Tokenize(source)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	return lines[0]
}

func TestKeywordsAndIdentifiers(t *testing.T) {
	line := singleLine(t, "memory if while def const foo")

	expected := []struct {
		typ   TokenType
		value string
		row   int
	}{
		{MEMORY, "memory", 1},
		{IF, "if", 8},
		{WHILE, "while", 11},
		{DEF, "def", 17},
		{CONST, "const", 21},
		{IDENTIFIER, "foo", 27},
	}

	require.Len(t, line.Tokens, len(expected))
	for i, exp := range expected {
		assert.Equal(t, exp.typ, line.Tokens[i].Type, "token %d type", i)
		assert.Equal(t, exp.value, line.Tokens[i].Value, "token %d value", i)
		assert.Equal(t, exp.row, line.Tokens[i].Row, "token %d row", i)
	}
}

func TestOperatorsAndBrackets(t *testing.T) {
	line := singleLine(t, "+ - * / = != > >= < <= -> , ( ) [ ]")

	expectedTypes := []TokenType{
		OPERATOR, OPERATOR, OPERATOR, OPERATOR, OPERATOR, OPERATOR,
		OPERATOR, OPERATOR, OPERATOR, OPERATOR,
		ASSIGN, SEPARATOR, LEFT_PAREN, RIGHT_PAREN, LEFT_BRACKET, RIGHT_BRACKET,
	}
	expectedValues := []string{"+", "-", "*", "/", "=", "!=", ">", ">=", "<", "<=", "->", ",", "(", ")", "[", "]"}
	expectedRows := []int{1, 3, 5, 7, 9, 11, 14, 16, 19, 21, 24, 27, 29, 31, 33, 35}

	require.Len(t, line.Tokens, len(expectedTypes))
	for i := range expectedTypes {
		assert.Equal(t, expectedTypes[i], line.Tokens[i].Type, "token %d type", i)
		assert.Equal(t, expectedValues[i], line.Tokens[i].Value, "token %d value", i)
		assert.Equal(t, expectedRows[i], line.Tokens[i].Row, "token %d row", i)
	}
}

func TestAdjacentOperators(t *testing.T) {
	line := singleLine(t, "a<=b")

	require.Len(t, line.Tokens, 3)
	assert.Equal(t, Token{IDENTIFIER, "a", 1}, line.Tokens[0])
	assert.Equal(t, Token{OPERATOR, "<=", 2}, line.Tokens[1])
	assert.Equal(t, Token{IDENTIFIER, "b", 4}, line.Tokens[2])
}

func TestMinusVersusAssignment(t *testing.T) {
	line := singleLine(t, "a-b ->c")

	require.Len(t, line.Tokens, 5)
	assert.Equal(t, OPERATOR, line.Tokens[1].Type)
	assert.Equal(t, "-", line.Tokens[1].Value)
	assert.Equal(t, ASSIGN, line.Tokens[3].Type)
	assert.Equal(t, 5, line.Tokens[3].Row)
	assert.Equal(t, Token{IDENTIFIER, "c", 7}, line.Tokens[4])
}

func TestIdentifierCharacters(t *testing.T) {
	line := singleLine(t, "a_b @x $y ?z a'b X9")

	values := []string{"a_b", "@x", "$y", "?z", "a'b", "X9"}
	require.Len(t, line.Tokens, len(values))
	for i, value := range values {
		assert.Equal(t, IDENTIFIER, line.Tokens[i].Type, "token %d", i)
		assert.Equal(t, value, line.Tokens[i].Value, "token %d", i)
	}
}

func TestRowCountsNonBMPAsTwo(t *testing.T) {
	line := singleLine(t, "a 𩸽 b")

	require.Len(t, line.Tokens, 3)
	assert.Equal(t, Token{IDENTIFIER, "a", 1}, line.Tokens[0])
	assert.Equal(t, Token{IDENTIFIER, "𩸽", 3}, line.Tokens[1])
	assert.Equal(t, Token{IDENTIFIER, "b", 6}, line.Tokens[2])
}

func TestDigitsDoNotStartIdentifiers(t *testing.T) {
	line := singleLine(t, "123abc")

	require.Len(t, line.Tokens, 2)
	assert.Equal(t, Token{NUMBER, "123", 1}, line.Tokens[0])
	assert.Equal(t, Token{IDENTIFIER, "abc", 4}, line.Tokens[1])
}

func TestIndentLevels(t *testing.T) {
	lines, err := Tokenize("def main()\n    x -> 1\n        y -> 2\n    z -> 3\nw -> 4")
	require.NoError(t, err)
	require.Len(t, lines, 5)

	expected := []int{0, 1, 2, 1, 0}
	for i, indent := range expected {
		assert.Equal(t, indent, lines[i].Indent, "line %d indent", i+1)
		assert.Equal(t, i+1, lines[i].Column, "line %d column", i+1)
	}
}

func TestTabWidensToEight(t *testing.T) {
	lines, err := Tokenize("while x\n\ty -> 1\n        z -> 2")
	require.NoError(t, err)
	require.Len(t, lines, 3)

	assert.Equal(t, 0, lines[0].Indent)
	assert.Equal(t, 1, lines[1].Indent)
	assert.Equal(t, 1, lines[2].Indent)
}

func TestDedentToUnseenLevel(t *testing.T) {
	_, err := Tokenize("    a -> 1\n  b -> 2")
	require.EqualError(t, err, "2: Invalid indent space")
}

func TestBlankAndCommentLinesDropped(t *testing.T) {
	lines, err := Tokenize("a -> 1\n\n# note\n   \nb -> 2")
	require.NoError(t, err)
	require.Len(t, lines, 2)

	assert.Equal(t, 1, lines[0].Column)
	assert.Equal(t, 5, lines[1].Column)
}

func TestLineComment(t *testing.T) {
	line := singleLine(t, "x -> 1 # trailing words")
	assert.Len(t, line.Tokens, 3)
}

func TestNestedBlockComment(t *testing.T) {
	line := singleLine(t, "/* a /* b */ c */ x -> 1")

	require.Len(t, line.Tokens, 3)
	assert.Equal(t, Token{IDENTIFIER, "x", 19}, line.Tokens[0])
	assert.Equal(t, Token{ASSIGN, "->", 21}, line.Tokens[1])
	assert.Equal(t, Token{NUMBER, "1", 24}, line.Tokens[2])
}

func TestBlockCommentAcrossLines(t *testing.T) {
	lines, err := Tokenize("x -> /* start\nstill inside\nend */ 5")
	require.NoError(t, err)
	require.Len(t, lines, 2)

	assert.Equal(t, 1, lines[0].Column)
	require.Len(t, lines[0].Tokens, 2)
	assert.Equal(t, 3, lines[1].Column)
	require.Len(t, lines[1].Tokens, 1)
	assert.Equal(t, NUMBER, lines[1].Tokens[0].Type)
}

func TestUnclosedBlockComment(t *testing.T) {
	_, err := Tokenize("x -> 1 /* open\nstill open")
	require.EqualError(t, err, "2: The multi-line comment is not closed")
}

func TestBareBang(t *testing.T) {
	_, err := Tokenize("a ! b")
	require.EqualError(t, err, "1 3: There should be only '=' after the '!'")
}

func TestBangAtEndOfLine(t *testing.T) {
	_, err := Tokenize("a !")
	require.EqualError(t, err, "1 3: There should be only '=' after the '!'")
}

func TestUnknownCharacter(t *testing.T) {
	_, err := Tokenize("a % b")
	require.EqualError(t, err, "1 3: Unknown character '%'")
}

func TestCRLFLineEndings(t *testing.T) {
	lines, err := Tokenize("a -> 1\r\nb -> 2")
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, 2, lines[1].Column)
	assert.Len(t, lines[1].Tokens, 3)
}
