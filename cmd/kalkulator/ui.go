package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	calculator "github.com/programowanie-obiektowe-cpp-classes/projekt-2-michalwysocki17"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	resultStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

const helpLine = "Supported: + - * / % ^, sin cos tan sqrt, ( )  ·  enter evaluates, esc quits"

// entry is one evaluated expression in the scrollback.
type entry struct {
	src  string
	out  string
	fail bool
}

type uiModel struct {
	input   textinput.Model
	history []entry
}

func newUIModel() uiModel {
	in := textinput.New()
	in.Placeholder = "2+3*4"
	in.Prompt = "> "
	in.Focus()
	return uiModel{input: in}
}

func (m uiModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m uiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			src := strings.TrimSpace(m.input.Value())
			if src == "" {
				return m, nil
			}
			m.history = append(m.history, evalEntry(src))
			m.input.Reset()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// evalEntry evaluates one line. Every line is an independent call, so a
// failed expression never affects the next one.
func evalEntry(src string) entry {
	r, err := calculator.Evaluate(src)
	if err != nil {
		return entry{src: src, out: err.Error(), fail: true}
	}
	return entry{src: src, out: fmt.Sprintf("%g", r)}
}

func (m uiModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Kalkulator"))
	b.WriteString("\n\n")
	for _, e := range m.history {
		b.WriteString("> ")
		b.WriteString(e.src)
		b.WriteByte('\n')
		if e.fail {
			b.WriteString(errorStyle.Render("Error: " + e.out))
		} else {
			b.WriteString(resultStyle.Render("= " + e.out))
		}
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render(helpLine))
	b.WriteByte('\n')
	return b.String()
}

func runUI() error {
	_, err := tea.NewProgram(newUIModel(), tea.WithOutput(os.Stdout)).Run()
	return err
}
