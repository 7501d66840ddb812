package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/peterh/liner"

	"nlisp/lisp"
)

const (
	historyFile = ".nlisp_history"
	promptMain  = "nlisp> "
	promptCont  = "  ...> "
)

// runPlainREPL is the line-oriented fallback for hosts where the
// full-screen interface is unwanted. Expressions may span lines; input is
// read until parentheses balance.
func runPlainREPL() error {
	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	engine := lisp.NewEngine(lisp.Config{Diagnostics: newDiagWriter(os.Stdout)})

	for {
		source, ok := readBalanced(ln, promptMain, promptCont)
		if !ok {
			fmt.Println()
			return nil
		}

		trimmed := strings.TrimSpace(source)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, ":") {
			switch strings.ToLower(trimmed) {
			case ":quit", ":q":
				return nil
			default:
				fmt.Println("unknown command. Type :quit to exit.")
			}
			continue
		}
		if trimmed == "quit" {
			return nil
		}

		results, err := engine.Run(source)
		if err != nil {
			fmt.Fprintln(os.Stderr, errorStyle.Render(err.Error()))
			continue
		}
		for _, result := range results {
			fmt.Println(resultStyle.Render(result.String()))
		}
		ln.AppendHistory(strings.ReplaceAll(source, "\n", " "))
	}
}

// readBalanced prompts until the accumulated input has balanced
// parentheses, so multi-line expressions can be entered naturally.
func readBalanced(ln *liner.State, prompt, cont string) (string, bool) {
	var b strings.Builder

	for {
		var line string
		var err error
		if b.Len() == 0 {
			line, err = ln.Prompt(prompt)
		} else {
			line, err = ln.Prompt(cont)
		}
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if err != nil {
			return "", true
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		if parenBalance(b.String()) <= 0 {
			return b.String(), true
		}
	}
}

// parenBalance counts open minus close parens, ignoring comments.
func parenBalance(source string) int {
	depth := 0
	inComment := false
	for _, r := range source {
		switch {
		case inComment:
			if r == '\n' {
				inComment = false
			}
		case r == ';':
			inComment = true
		case r == '(':
			depth++
		case r == ')':
			depth--
		}
	}
	return depth
}
