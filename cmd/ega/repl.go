package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/katayama-lang/ega"
)

const prompt = "ega> "

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	outputStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// replModel is the Bubble Tea model for the interactive shell. It holds its
// own ega.Interpreter so the global environment persists across every line
// entered, exactly as EGA's single flat scope persists between prompts in
// the original's native REPL loop.
type replModel struct {
	input    textinput.Model
	interp   *ega.Interpreter
	names    []string
	history  []string
	histIdx  int
	output   strings.Builder
	quitting bool
}

func runREPL() {
	ti := textinput.New()
	ti.Prompt = promptStyle.Render(prompt)
	ti.Focus()
	ti.CharLimit = 2048
	ti.Width = 78

	m := &replModel{input: ti}
	m.interp = ega.New(ega.WithPrintFn(func(s string) { m.output.WriteString(s) }))
	m.interp.SetInteractive(true)
	m.names = sortedNames(m.interp.FunctionNames())

	fmt.Println(hintStyle.Render(version + " — type 'exit' to quit, 'help' for the function list"))

	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		fmt.Println(errorStyle.Render(err.Error()))
	}
}

func sortedNames(names []string) []string {
	out := make([]string, len(names))
	copy(out, names)
	sort.Strings(out)
	return out
}

func (m *replModel) Init() tea.Cmd { return textinput.Blink }

func (m *replModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch keyMsg.Type {
	case tea.KeyCtrlC, tea.KeyCtrlD:
		m.quitting = true
		return m, tea.Quit

	case tea.KeyEnter:
		return m.execute()

	case tea.KeyTab:
		m.complete()
		return m, nil

	case tea.KeyUp:
		m.historyPrev()
		return m, nil

	case tea.KeyDown:
		m.historyNext()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *replModel) View() string {
	if m.quitting {
		return ""
	}
	return m.input.View() + "\n"
}

// execute runs one entered line. The three interactive commands — `exit`,
// `help`, `help <name>` — are intercepted here, before anything reaches
// EvalTextEx, matching the original driver's behavior of handling them
// ahead of eval_text.
func (m *replModel) execute() (tea.Model, tea.Cmd) {
	line := strings.TrimSpace(m.input.Value())
	m.input.SetValue("")
	if line == "" {
		return m, nil
	}
	m.history = append(m.history, line)
	m.histIdx = len(m.history)

	echo := promptStyle.Render(prompt) + outputStyle.Render(line)

	if line == "exit" {
		m.quitting = true
		return m, tea.Sequence(tea.Println(echo), tea.Quit)
	}

	if line == "help" {
		return m, tea.Sequence(tea.Println(echo), tea.Println(m.helpList()))
	}

	if rest, ok := strings.CutPrefix(line, "help "); ok {
		return m, tea.Sequence(tea.Println(echo), tea.Println(m.helpOne(strings.TrimSpace(rest))))
	}

	m.output.Reset()
	more := m.interp.EvalTextEx(line)
	out := strings.TrimRight(m.output.String(), "\n")
	cmds := []tea.Cmd{tea.Println(echo)}
	if out != "" {
		cmds = append(cmds, tea.Println(outputStyle.Render(out)))
	}
	if !more {
		m.quitting = true
		cmds = append(cmds, tea.Quit)
	}
	return m, tea.Sequence(cmds...)
}

func (m *replModel) helpList() string {
	return hintStyle.Render(strings.Join(m.names, ", "))
}

// helpOne prints name's arity range and help string, or a fuzzy-matched
// suggestion list when name isn't registered exactly.
func (m *replModel) helpOne(name string) string {
	if fn := m.interp.Lookup(name); fn != nil {
		return outputStyle.Render(fmt.Sprintf("%s (%d-%d args): %s", fn.Name, fn.MinArgs, fn.MaxArgs, fn.Help))
	}

	matches := fuzzy.Find(name, m.names)
	if len(matches) == 0 {
		return errorStyle.Render(fmt.Sprintf("no such function: %s", name))
	}
	suggestions := make([]string, 0, len(matches))
	for _, match := range matches {
		suggestions = append(suggestions, match.Str)
	}
	return errorStyle.Render(fmt.Sprintf("no such function: %s", name)) + "\n" +
		hintStyle.Render("did you mean: "+strings.Join(suggestions, ", ")+"?")
}

// complete fuzzy-matches the current input against every registered
// function name and, on a single surviving match, completes the line.
func (m *replModel) complete() {
	word := m.input.Value()
	if word == "" {
		return
	}
	matches := fuzzy.Find(word, m.names)
	if len(matches) != 1 {
		return
	}
	m.input.SetValue(matches[0].Str)
	m.input.SetCursor(len(matches[0].Str))
}

func (m *replModel) historyPrev() {
	if m.histIdx > 0 {
		m.histIdx--
		m.input.SetValue(m.history[m.histIdx])
		m.input.SetCursor(len(m.history[m.histIdx]))
	}
}

func (m *replModel) historyNext() {
	if m.histIdx < len(m.history)-1 {
		m.histIdx++
		m.input.SetValue(m.history[m.histIdx])
		m.input.SetCursor(len(m.history[m.histIdx]))
	} else {
		m.histIdx = len(m.history)
		m.input.SetValue("")
	}
}
