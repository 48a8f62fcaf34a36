package main

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/JDCodeWork/rslox/lox"
)

var (
	promptStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true)

	resultStyle = lipgloss.NewStyle().
			Foreground(successColor)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor)

	headerStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true).
			Padding(0, 1)

	helpKeyStyle = lipgloss.NewStyle().
			Foreground(warningColor)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	panelTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor)

	borderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accentColor).
			Padding(0, 1)
)

type historyEntry struct {
	input  string
	output string
	isErr  bool
}

type replModel struct {
	textInput   textinput.Model
	interp      *lox.Interp
	printBuf    *bytes.Buffer
	history     []historyEntry
	cmdHistory  []string
	historyIdx  int
	width       int
	height      int
	showHelp    bool
	showEnv     bool
	quitting    bool
	initialized bool
}

type keyMap struct {
	Up    key.Binding
	Down  key.Binding
	Enter key.Binding
	CtrlC key.Binding
	CtrlD key.Binding
	CtrlL key.Binding
	Tab   key.Binding
	CtrlV key.Binding
	CtrlK key.Binding
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("↑", "previous entry"),
	),
	Down: key.NewBinding(
		key.WithKeys("down"),
		key.WithHelp("↓", "next entry"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "evaluate"),
	),
	CtrlC: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
	CtrlD: key.NewBinding(
		key.WithKeys("ctrl+d"),
		key.WithHelp("ctrl+d", "quit"),
	),
	CtrlL: key.NewBinding(
		key.WithKeys("ctrl+l"),
		key.WithHelp("ctrl+l", "clear"),
	),
	Tab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "autocomplete"),
	),
	CtrlV: key.NewBinding(
		key.WithKeys("ctrl+v"),
		key.WithHelp("ctrl+v", "toggle globals"),
	),
	CtrlK: key.NewBinding(
		key.WithKeys("ctrl+k"),
		key.WithHelp("ctrl+k", "toggle help"),
	),
}

// loxKeywords feeds tab completion.
var loxKeywords = []string{
	"and", "break", "class", "continue", "else", "false", "for", "fun",
	"if", "nil", "or", "print", "return", "super", "this", "true",
	"var", "while",
}

func newREPLModel() replModel {
	ti := textinput.New()
	ti.Placeholder = "type an expression..."
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 60
	ti.PromptStyle = promptStyle
	ti.Prompt = "lox> "

	printBuf := new(bytes.Buffer)
	interp := lox.NewInterp(lox.Config{Stdout: printBuf})

	return replModel{
		textInput:  ti,
		interp:     interp,
		printBuf:   printBuf,
		history:    make([]historyEntry, 0),
		cmdHistory: make([]string, 0),
		historyIdx: -1,
	}
}

func (m replModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tea.EnterAltScreen)
}

func (m replModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.textInput.Width = msg.Width - 10
		m.initialized = true
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.CtrlC), key.Matches(msg, keys.CtrlD):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, keys.CtrlL):
			m.history = make([]historyEntry, 0)
			return m, nil

		case key.Matches(msg, keys.CtrlV):
			m.showEnv = !m.showEnv
			return m, nil

		case key.Matches(msg, keys.CtrlK):
			m.showHelp = !m.showHelp
			return m, nil

		case key.Matches(msg, keys.Up):
			if len(m.cmdHistory) > 0 {
				if m.historyIdx == -1 {
					m.historyIdx = len(m.cmdHistory) - 1
				} else if m.historyIdx > 0 {
					m.historyIdx--
				}
				m.textInput.SetValue(m.cmdHistory[m.historyIdx])
				m.textInput.CursorEnd()
			}
			return m, nil

		case key.Matches(msg, keys.Down):
			if m.historyIdx != -1 {
				if m.historyIdx < len(m.cmdHistory)-1 {
					m.historyIdx++
					m.textInput.SetValue(m.cmdHistory[m.historyIdx])
				} else {
					m.historyIdx = -1
					m.textInput.SetValue("")
				}
				m.textInput.CursorEnd()
			}
			return m, nil

		case key.Matches(msg, keys.Tab):
			m = m.handleAutocomplete()
			return m, nil

		case key.Matches(msg, keys.Enter):
			input := strings.TrimSpace(m.textInput.Value())
			if input == "" {
				return m, nil
			}

			if strings.HasPrefix(input, ":") {
				var cmd tea.Cmd
				m, cmd = m.handleCommand(input)
				m.textInput.SetValue("")
				m.historyIdx = -1
				return m, cmd
			}

			output, isErr := m.evaluate(input)
			m.history = append(m.history, historyEntry{
				input:  input,
				output: output,
				isErr:  isErr,
			})
			m.cmdHistory = append(m.cmdHistory, input)
			m.textInput.SetValue("")
			m.historyIdx = -1
			return m, nil
		}
	}

	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m replModel) handleCommand(input string) (replModel, tea.Cmd) {
	parts := strings.Fields(input)
	cmd := parts[0]

	switch cmd {
	case ":help", ":h":
		m.showHelp = !m.showHelp
	case ":clear", ":c":
		m.history = make([]historyEntry, 0)
	case ":env", ":e":
		m.showEnv = !m.showEnv
	case ":reset", ":r":
		m.interp = lox.NewInterp(lox.Config{Stdout: m.printBuf})
		m.history = append(m.history, historyEntry{
			input:  input,
			output: "Session reset",
		})
	case ":quit", ":q":
		m.quitting = true
		return m, tea.Quit
	default:
		m.history = append(m.history, historyEntry{
			input:  input,
			output: fmt.Sprintf("Unknown command: %s", cmd),
			isErr:  true,
		})
	}
	return m, nil
}

func (m replModel) handleAutocomplete() replModel {
	input := m.textInput.Value()
	if input == "" {
		return m
	}

	words := strings.Fields(input)
	if len(words) == 0 {
		return m
	}
	lastWord := words[len(words)-1]

	var completions []string
	for _, kw := range loxKeywords {
		if strings.HasPrefix(kw, lastWord) {
			completions = append(completions, kw)
		}
	}
	for _, name := range m.interp.Globals().Names() {
		if strings.HasPrefix(name, lastWord) {
			completions = append(completions, name)
		}
	}

	if len(completions) == 1 {
		prefix := strings.TrimSuffix(input, lastWord)
		m.textInput.SetValue(prefix + completions[0])
		m.textInput.CursorEnd()
	} else if len(completions) > 1 {
		m.history = append(m.history, historyEntry{
			output: "Completions: " + strings.Join(completions, ", "),
		})
	}

	return m
}

// evaluate runs one REPL entry. Expressions echo their value; statement
// entries show whatever they printed. The session interpreter and its
// globals survive errors, so a bad entry never ends the session.
func (m replModel) evaluate(input string) (string, bool) {
	tokens, scanErrs := lox.Scan(input)
	if len(scanErrs) > 0 {
		return joinErrors(scanErrs), true
	}

	m.printBuf.Reset()

	if expr, err := lox.ParseExpression(tokens); err == nil {
		binds, resolveErrs := lox.Resolve([]lox.Statement{&lox.ExpressionStmt{Expr: expr}})
		if len(resolveErrs) > 0 {
			return joinErrors(resolveErrs), true
		}
		val, err := m.interp.Evaluate(expr, binds)
		if err != nil {
			return err.Error(), true
		}
		return withCapturedOutput(m.printBuf, val.String()), false
	}

	program, parseErrs := lox.Parse(tokens)
	if len(parseErrs) > 0 {
		return joinErrors(parseErrs), true
	}
	binds, resolveErrs := lox.Resolve(program)
	if len(resolveErrs) > 0 {
		return joinErrors(resolveErrs), true
	}

	if err := m.interp.Run(program, binds); err != nil {
		return err.Error(), true
	}
	if out := strings.TrimRight(m.printBuf.String(), "\n"); out != "" {
		return out, false
	}
	return "ok", false
}

func withCapturedOutput(buf *bytes.Buffer, echo string) string {
	captured := strings.TrimRight(buf.String(), "\n")
	if captured == "" {
		return echo
	}
	return captured + "\n" + echo
}

func joinErrors(errs []error) string {
	parts := make([]string, 0, len(errs))
	for _, err := range errs {
		parts = append(parts, err.Error())
	}
	return strings.Join(parts, "\n")
}

func (m replModel) View() string {
	if !m.initialized {
		return "Loading..."
	}

	if m.quitting {
		return mutedStyle.Render("Goodbye!\n")
	}

	var b strings.Builder

	header := headerStyle.Render("rslox REPL")
	version := mutedStyle.Render("v" + versionString)
	b.WriteString(header + " " + version + "\n")
	b.WriteString(mutedStyle.Render(strings.Repeat("─", min(m.width-2, 60))) + "\n\n")

	reservedLines := 8
	if m.showHelp {
		reservedLines += 12
	}
	if m.showEnv {
		reservedLines += len(m.interp.Globals().Names()) + 3
	}
	availableHeight := m.height - reservedLines

	historyStart := 0
	if len(m.history) > availableHeight {
		historyStart = len(m.history) - availableHeight
	}

	for i := historyStart; i < len(m.history); i++ {
		entry := m.history[i]
		if entry.input != "" {
			b.WriteString(mutedStyle.Render("  › ") + entry.input + "\n")
		}
		for _, line := range strings.Split(entry.output, "\n") {
			if entry.isErr {
				b.WriteString("  " + errorStyle.Render("✗ "+line) + "\n")
			} else {
				b.WriteString("  " + resultStyle.Render("→ "+line) + "\n")
			}
		}
		b.WriteString("\n")
	}

	if m.showEnv {
		b.WriteString(renderEnvPanel(m.interp))
		b.WriteString("\n")
	}

	if m.showHelp {
		b.WriteString(renderHelpPanel())
		b.WriteString("\n")
	}

	b.WriteString(m.textInput.View() + "\n\n")

	footer := helpKeyStyle.Render("ctrl+k") + helpDescStyle.Render(" help  ") +
		helpKeyStyle.Render("ctrl+v") + helpDescStyle.Render(" globals  ") +
		helpKeyStyle.Render("ctrl+l") + helpDescStyle.Render(" clear  ") +
		helpKeyStyle.Render("ctrl+c") + helpDescStyle.Render(" quit")
	b.WriteString(footer)

	return b.String()
}

func renderEnvPanel(interp *lox.Interp) string {
	globals := interp.Globals()
	names := globals.Names()
	if len(names) == 0 {
		return borderStyle.Render(mutedStyle.Render("No globals defined"))
	}

	nameStyle := lipgloss.NewStyle().Foreground(warningColor)
	lines := []string{panelTitleStyle.Render("Globals")}
	for _, name := range names {
		val, ok := globals.Get(name)
		if !ok {
			continue
		}
		lines = append(lines, fmt.Sprintf("  %s = %s", nameStyle.Render(name), val.String()))
	}
	return borderStyle.Render(strings.Join(lines, "\n"))
}

func renderHelpPanel() string {
	help := []struct {
		key  string
		desc string
	}{
		{"↑/↓", "Navigate entry history"},
		{"Tab", "Autocomplete"},
		{"Enter", "Evaluate entry"},
		{":help", "Toggle this help"},
		{":env", "Toggle globals panel"},
		{":clear", "Clear history"},
		{":reset", "Reset the session"},
		{":quit", "Exit REPL"},
	}

	lines := []string{panelTitleStyle.Render("Help")}
	for _, h := range help {
		line := fmt.Sprintf("  %s  %s",
			helpKeyStyle.Render(fmt.Sprintf("%-8s", h.key)),
			helpDescStyle.Render(h.desc))
		lines = append(lines, line)
	}
	return borderStyle.Render(strings.Join(lines, "\n"))
}

func runREPL() error {
	p := tea.NewProgram(newREPLModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
