package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"

	"sunaba/internal/errors"
	"sunaba/internal/parser"
	"sunaba/internal/wasm"
)

func main() {
	dumpTokens := flag.Bool("tokens", false, "write <file>.token.json next to the source")
	dumpSyntax := flag.Bool("syntax", false, "write <file>.syntax.json next to the source")
	emit := flag.String("emit", "", "write the experimental wasm module to the given path")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Println("Usage: sunaba [-tokens] [-syntax] [-emit out.wasm] <file.sunaba>")
		os.Exit(1)
	}

	startTime := time.Now()
	path := flag.Arg(0)

	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read file: %v\n", err)
		os.Exit(1)
	}

	reporter := errors.NewReporter(path, string(source))

	lines, err := parser.Tokenize(string(source))
	if err != nil {
		fail(reporter, err, startTime)
	}
	if *dumpTokens {
		writeJSON(path+".token.json", lines)
	}

	program, err := parser.Parse(lines)
	if err != nil {
		fail(reporter, err, startTime)
	}
	if *dumpSyntax {
		writeJSON(path+".syntax.json", program)
	}

	if *emit != "" {
		if err := os.WriteFile(*emit, wasm.Module(), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write module: %v\n", err)
			os.Exit(1)
		}
	}

	fmt.Println(program.String())
	color.Green("Successfully processed %s in %s", path, formatDuration(time.Since(startTime)))
}

func fail(reporter *errors.Reporter, err error, startTime time.Time) {
	fmt.Print(reporter.Format(err))
	color.Red("Compilation failed after %s", formatDuration(time.Since(startTime)))
	os.Exit(1)
}

func writeJSON(path string, v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to marshal %s: %v\n", path, err)
		os.Exit(1)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write %s: %v\n", path, err)
		os.Exit(1)
	}
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		return fmt.Sprintf("%.2fmin", d.Minutes())
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}
