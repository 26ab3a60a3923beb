package errors

import (
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sunaba/internal/parser"
)

func TestFormatParseError(t *testing.T) {
	color.NoColor = true

	source := "x -> memory\ny -> 2"
	reporter := NewReporter("test.sunaba", source)

	out := reporter.Format(&parser.ParseError{Column: 1, Row: 6, Message: "'[' is required after 'memory'"})

	assert.Contains(t, out, "error: '[' is required after 'memory'")
	assert.Contains(t, out, "test.sunaba:1:6")
	assert.Contains(t, out, "x -> memory")

	lines := strings.Split(out, "\n")
	require.GreaterOrEqual(t, len(lines), 5)
	caret := lines[4]
	assert.True(t, strings.HasSuffix(caret, "^"), "caret line: %q", caret)
	assert.Contains(t, lines[3], "x -> memory")
}

func TestFormatLineOnlyError(t *testing.T) {
	color.NoColor = true

	reporter := NewReporter("test.sunaba", "  a -> 1")
	out := reporter.Format(&parser.ParseError{Column: 1, Message: "Invalid indent space"})

	assert.Contains(t, out, "error: Invalid indent space")
	assert.Contains(t, out, "test.sunaba:1:1")
}

func TestFormatPlainError(t *testing.T) {
	color.NoColor = true

	reporter := NewReporter("test.sunaba", "")
	out := reporter.Format(assertableError("boom"))

	assert.Equal(t, "error: boom\n", out)
}

type assertableError string

func (e assertableError) Error() string { return string(e) }
