package cpu

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"
)

// model is the bubbletea model backing Debug. It steps the live Cpu one
// instruction at a time and renders the surrounding memory pages, the
// register file, and the decoded opcode at PC.
type model struct {
	cpu *Cpu

	prevPC uint16
	lastM  int
	err    error
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ", "j":
			m.prevPC = m.cpu.R.PC
			mCycles, err := m.cpu.Step()
			m.lastM = mCycles
			if err != nil {
				m.err = err
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

// renderPage renders 16 contiguous bytes as a line, highlighting PC.
func (m model) renderPage(start uint16) string {
	s := fmt.Sprintf("%04x | ", start)
	for i := 0; i < 16; i++ {
		addr := start + uint16(i)
		b := m.cpu.Bus.Read8(addr)
		if addr == m.cpu.R.PC {
			s += fmt.Sprintf("[%02x] ", b)
		} else {
			s += fmt.Sprintf(" %02x  ", b)
		}
	}
	return s
}

func (m model) status() string {
	var flags string
	for _, set := range []bool{m.cpu.R.Zf(), m.cpu.R.Nf(), m.cpu.R.Hf(), m.cpu.R.Cf()} {
		if set {
			flags += "/ "
		} else {
			flags += "  "
		}
	}
	return fmt.Sprintf(`
PC: %04x (was %04x)
SP: %04x
 A: %02x   F: %02x
 B: %02x   C: %02x
 D: %02x   E: %02x
 H: %02x   L: %02x
 M: %d  IME: %v  HALT: %v
Z N H C
`,
		m.cpu.R.PC, m.prevPC,
		m.cpu.R.SP,
		m.cpu.R.A, m.cpu.R.F,
		m.cpu.R.B, m.cpu.R.C,
		m.cpu.R.D, m.cpu.R.E,
		m.cpu.R.H, m.cpu.R.L,
		m.lastM, m.cpu.IME, m.cpu.halted,
	) + flags
}

func (m model) pageTable() string {
	header := "page | "
	for b := 0; b < 16; b++ {
		header += fmt.Sprintf("  %01x  ", b)
	}
	lines := []string{header}
	base := m.cpu.R.PC &^ 0x0F
	for i := -2; i <= 2; i++ {
		lines = append(lines, m.renderPage(base+uint16(i*16)))
	}
	return strings.Join(lines, "\n")
}

func (m model) currentOpcode() Opcode {
	op := m.cpu.Bus.Read8(m.cpu.R.PC)
	if op == 0xCB {
		return cbTable[m.cpu.Bus.Read8(m.cpu.R.PC+1)]
	}
	return baseTable[op]
}

func (m model) View() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			m.pageTable(),
			m.status(),
		),
		"",
		spew.Sdump(m.currentOpcode()),
	)
}

// Debug starts an interactive TUI that single-steps the given Cpu. Space or
// j steps one instruction; q quits.
func (c *Cpu) Debug() error {
	m, err := tea.NewProgram(model{cpu: c, prevPC: c.R.PC}).Run()
	if err != nil {
		return err
	}
	if fm, ok := m.(model); ok && fm.err != nil {
		return fm.err
	}
	return nil
}
