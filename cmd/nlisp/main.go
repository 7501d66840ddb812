package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"nlisp/lisp"
)

func main() {
	if err := runCLI(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runCLI(args []string) error {
	if len(args) < 2 {
		return usageError()
	}
	switch args[1] {
	case "run":
		return runCommand(args[2:])
	case "ast":
		return astCommand(args[2:])
	case "repl":
		return replCommand(args[2:])
	case "help", "-h", "--help":
		printUsage()
		return nil
	default:
		return usageError()
	}
}

func runCommand(args []string) error {
	if len(args) == 0 {
		return errors.New("nlisp run: script path required")
	}
	scriptPath, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("resolve script path: %w", err)
	}
	input, err := os.ReadFile(scriptPath)
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}

	engine := lisp.NewEngine(lisp.Config{Diagnostics: newDiagWriter(os.Stderr)})
	results, err := engine.Run(string(input))
	if err != nil {
		return fmt.Errorf("parse failed: %w", err)
	}
	for _, result := range results {
		fmt.Println(result.String())
	}
	return nil
}

func usageError() error {
	printUsage()
	return errors.New("invalid command")
}

func printUsage() {
	prog := filepath.Base(os.Args[0])
	fmt.Fprintf(os.Stderr, "Usage: %s <command> [args]\n", prog)
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  run <script>")
	fmt.Fprintln(os.Stderr, "    evaluate a script and print each result")
	fmt.Fprintln(os.Stderr, "  ast <script>")
	fmt.Fprintln(os.Stderr, "    print the parsed expression trees")
	fmt.Fprintln(os.Stderr, "  repl [-plain]")
	fmt.Fprintln(os.Stderr, "    interactive session (-plain for a line-oriented prompt)")
}

type flagErrorSink struct{}

func (flagErrorSink) Write(p []byte) (int, error) {
	return len(p), nil
}

// diagWriter renders engine WARNING lines in the error color, matching the
// REPL presentation.
type diagWriter struct {
	out io.Writer
}

func newDiagWriter(out io.Writer) diagWriter {
	return diagWriter{out: out}
}

func (w diagWriter) Write(p []byte) (int, error) {
	_, err := fmt.Fprintln(w.out, errorStyle.Render(strings.TrimRight(string(p), "\n")))
	if err != nil {
		return 0, err
	}
	return len(p), nil
}
