package main

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestUpdateQuitCommandReturnsQuit(t *testing.T) {
	m := newREPLModel()
	m.textInput.SetValue(":quit")

	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	rm, ok := model.(replModel)
	if !ok {
		t.Fatalf("unexpected model type %T", model)
	}

	if !rm.quitting {
		t.Fatalf("quitting flag not set")
	}
	if rm.textInput.Value() != "" {
		t.Fatalf("input not cleared after quit command")
	}
	if cmd == nil {
		t.Fatalf("expected tea.Quit command")
	}
	if msg := cmd(); msg != nil {
		if _, ok := msg.(tea.QuitMsg); !ok {
			t.Fatalf("expected QuitMsg, got %T", msg)
		}
	}
}

func TestUpdateBareQuitAlsoQuits(t *testing.T) {
	m := newREPLModel()
	m.textInput.SetValue("quit")

	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	rm := model.(replModel)

	if !rm.quitting {
		t.Fatalf("quitting flag not set")
	}
	if cmd == nil {
		t.Fatalf("expected tea.Quit command")
	}
}

func TestUpdateHelpCommandTogglesHelp(t *testing.T) {
	m := newREPLModel()
	m.textInput.SetValue(":help")

	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	rm := model.(replModel)

	if cmd != nil {
		t.Fatalf("expected no command for help input")
	}
	if rm.quitting {
		t.Fatalf("quitting should remain false")
	}
	if !rm.showHelp {
		t.Fatalf("help toggle should be enabled")
	}
	if rm.textInput.Value() != "" {
		t.Fatalf("input not cleared after command")
	}
}

func TestUpdateEnterRecordsHistory(t *testing.T) {
	m := newREPLModel()
	m.textInput.SetValue("(add 1 2)")

	model, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	rm := model.(replModel)

	if len(rm.history) != 1 {
		t.Fatalf("expected 1 history entry, got %d", len(rm.history))
	}
	entry := rm.history[0]
	if entry.input != "(add 1 2)" {
		t.Fatalf("unexpected history input: %q", entry.input)
	}
	if entry.isErr {
		t.Fatalf("unexpected error output: %q", entry.output)
	}
	if entry.output != "Integer : 3" {
		t.Fatalf("unexpected output: %q", entry.output)
	}
	if len(rm.cmdHistory) != 1 || rm.cmdHistory[0] != "(add 1 2)" {
		t.Fatalf("command history not recorded: %v", rm.cmdHistory)
	}
}

func TestEvaluateIncludesWarnings(t *testing.T) {
	m := newREPLModel()

	output, isErr := m.evaluate("(sub 5)")
	if isErr {
		t.Fatalf("warnings alone are not an error: %q", output)
	}
	if !strings.Contains(output, "WARNING") {
		t.Fatalf("expected a warning line, got %q", output)
	}
	if !strings.Contains(output, "Double : NaN") {
		t.Fatalf("expected NaN result, got %q", output)
	}
}

func TestEvaluateParseErrorIsError(t *testing.T) {
	m := newREPLModel()

	output, isErr := m.evaluate("(add 1")
	if !isErr {
		t.Fatalf("expected parse error, got %q", output)
	}
	if !strings.Contains(output, "parse error at") {
		t.Fatalf("error output lacks position: %q", output)
	}
}

func TestEvaluateResetsDiagnosticsBetweenRuns(t *testing.T) {
	m := newREPLModel()

	m.evaluate("(sub 5)")
	output, isErr := m.evaluate("(sub 5 2)")
	if isErr {
		t.Fatalf("unexpected error: %q", output)
	}
	if strings.Contains(output, "WARNING") {
		t.Fatalf("stale warning leaked into clean run: %q", output)
	}
	if output != "Integer : 3" {
		t.Fatalf("unexpected output: %q", output)
	}
}

func TestHandleAutocompleteCompletesUniquePrefix(t *testing.T) {
	m := newREPLModel()
	m.textInput.SetValue("(hyp")

	m = m.handleAutocomplete()

	if got := m.textInput.Value(); got != "(hypot" {
		t.Fatalf("unexpected completion: %q", got)
	}
}

func TestHandleAutocompleteListsAmbiguousMatches(t *testing.T) {
	m := newREPLModel()
	m.textInput.SetValue("(m")

	m = m.handleAutocomplete()

	if got := m.textInput.Value(); got != "(m" {
		t.Fatalf("ambiguous prefix should not rewrite input, got %q", got)
	}
	if len(m.history) != 1 || !strings.Contains(m.history[0].output, "Completions:") {
		t.Fatalf("expected a completions listing, got %v", m.history)
	}
}
