package errors

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"sunaba/internal/parser"
)

// Reporter renders front-end errors against their source the way the CLI
// presents them: the message, the location, and the offending line with a
// caret under the fault.
type Reporter struct {
	filename string
	lines    []string
}

func NewReporter(filename, source string) *Reporter {
	return &Reporter{
		filename: filename,
		lines:    strings.Split(source, "\n"),
	}
}

func (r *Reporter) Format(err error) string {
	red := color.New(color.FgRed).SprintFunc()

	parseErr, ok := err.(*parser.ParseError)
	if !ok {
		return fmt.Sprintf("%s: %v\n", red("error"), err)
	}

	bold := color.New(color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	var lineContent string
	if parseErr.Column-1 >= 0 && parseErr.Column-1 < len(r.lines) {
		lineContent = r.lines[parseErr.Column-1]
	}

	row := parseErr.Row
	if row < 1 {
		row = 1
	}
	marker := strings.Repeat(" ", row-1) + bold(red("^"))

	lineNumberWidth := len(fmt.Sprintf("%d", parseErr.Column))
	if lineNumberWidth < 3 {
		lineNumberWidth = 3 // minimum width for visual alignment
	}
	indent := strings.Repeat(" ", lineNumberWidth)

	return fmt.Sprintf(
		"%s: %s\n%s %s %s:%d:%d\n%s %s\n%*d %s %s\n%s %s %s\n\n",
		red("error"), parseErr.Message,
		indent, dim("-->"), r.filename, parseErr.Column, row,
		indent, dim("│"),
		lineNumberWidth, parseErr.Column, dim("│"), lineContent,
		indent, dim("│"), marker,
	)
}
