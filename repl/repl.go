package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"sunaba/internal/parser"
)

const PROMPT = ">> "

// Start reads programs from in and prints their trees. Sunaba blocks span
// multiple lines, so input is buffered until a blank line ends the program.
func Start(in io.Reader) {
	scanner := bufio.NewScanner(in)
	var buffer []string

	fmt.Print(PROMPT)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) != "" {
			buffer = append(buffer, line)
			fmt.Print(".. ")
			continue
		}
		if len(buffer) == 0 {
			fmt.Print(PROMPT)
			continue
		}

		program, err := parser.Compile(strings.Join(buffer, "\n"))
		buffer = buffer[:0]
		if err != nil {
			fmt.Printf("error: %s\n", err)
		} else {
			fmt.Printf("AST:\n%s\n", program.String())
		}
		fmt.Print(PROMPT)
	}
}
