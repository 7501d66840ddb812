package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kr/pretty"

	"nlisp/lisp"
)

// nodeDump is a back-link-free mirror of an expression tree, safe to hand
// to a reflective printer.
type nodeDump struct {
	Kind     string
	Value    string
	Name     string
	Func     string
	Operands []*nodeDump
	Bindings []bindingDump
	Child    *nodeDump
}

type bindingDump struct {
	Name  string
	Type  string
	Value *nodeDump
}

func astCommand(args []string) error {
	fs := flag.NewFlagSet("ast", flag.ContinueOnError)
	fs.SetOutput(new(flagErrorSink))
	if err := fs.Parse(args); err != nil {
		return err
	}

	remaining := fs.Args()
	if len(remaining) == 0 {
		return errors.New("nlisp ast: script path required")
	}

	scriptPath, err := filepath.Abs(remaining[0])
	if err != nil {
		return fmt.Errorf("resolve script path: %w", err)
	}
	input, err := os.ReadFile(scriptPath)
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}

	engine := lisp.NewEngine(lisp.Config{Diagnostics: newDiagWriter(os.Stderr)})
	program, err := engine.Parse(string(input))
	if err != nil {
		if program != nil {
			program.Release()
		}
		return fmt.Errorf("parse failed: %w", err)
	}
	defer program.Release()

	for expr := program.Exprs; expr != nil; expr = expr.Next() {
		_, _ = pretty.Println(dumpNode(expr))
	}
	return nil
}

func dumpNode(node *lisp.Node) *nodeDump {
	if node == nil {
		return nil
	}

	dump := &nodeDump{Kind: node.Kind.String()}
	switch node.Kind {
	case lisp.NodeNumber:
		dump.Value = node.Num.String()
	case lisp.NodeSymbol:
		dump.Name = node.Name
	case lisp.NodeFunction:
		dump.Func = node.Func.String()
		for op := node.Operands; op != nil; op = op.Next() {
			dump.Operands = append(dump.Operands, dumpNode(op))
		}
	case lisp.NodeScope:
		for entry := node.Table; entry != nil; entry = entry.NextEntry() {
			dump.Bindings = append(dump.Bindings, bindingDump{
				Name:  entry.Name,
				Type:  entry.DeclaredType.String(),
				Value: dumpNode(entry.Value),
			})
		}
		dump.Child = dumpNode(node.Child)
	}
	return dump
}
