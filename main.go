package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"covalent/internal/interact"
	"covalent/internal/logutil"
	"covalent/internal/render"
	"covalent/internal/workspace"
)

func main() {
	config := loadConfig()

	if config.LogFile != "" {
		f, err := tea.LogToFile(config.LogFile, "covalent")
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}
	if os.Getenv("LOG_LEVEL") == "" {
		logutil.SetLevel(logutil.ParseLevel(config.LogLevel))
	}

	p := tea.NewProgram(
		initialModel(config),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)
	if _, err := p.Run(); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}
}

var statusStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#ffffff")).
	Background(lipgloss.Color("#3c3c64"))

var errorStyle = statusStyle.
	Foreground(lipgloss.Color("#ff6464")).
	Bold(true)

var cursorColor = render.Red

func initialModel(config *Config) model {
	if config == nil {
		config = defaultConfig()
	}
	graph := workspace.New()
	hist := newHistory()

	ctl := interact.New(graph)
	ctl.HitRadius = config.SlotHitRadius
	ctl.Spawn = interact.DefaultSpawn(config.SpawnX)
	ctl.Journal = hist

	return model{
		graph:   graph,
		ctl:     ctl,
		history: hist,
		mode:    ModeNormal,
		config:  config,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ensureCursorInBounds()
		m.fitToWindow()
		return m, nil

	case tea.MouseMsg:
		if m.help || m.mode != ModeNormal {
			return m, nil
		}
		ev, ok := m.mouseEvent(msg)
		if !ok {
			return m, nil
		}
		m.keyboardActive = false
		m.cursorX, m.cursorY = msg.X, msg.Y
		m.ensureCursorInBounds()
		m.dispatch(ev)
		return m, nil

	case tea.KeyMsg:
		if m.help {
			switch msg.String() {
			case "esc", "q", "?":
				m.help = false
				m.helpScroll = 0
			case "j", "down":
				if m.helpScroll < len(helpLines)-1 {
					m.helpScroll++
				}
			case "k", "up":
				if m.helpScroll > 0 {
					m.helpScroll--
				}
			}
			return m, nil
		}

		switch m.mode {
		case ModeConfirm:
			switch msg.String() {
			case "y", "Y":
				m.mode = ModeNormal
				switch m.confirmAction {
				case ConfirmQuit:
					return m.quit()
				case ConfirmClearWorkspace:
					m.clearWorkspace()
					m.successMessage = "Workspace cleared"
				}
			case "n", "N", "esc", "ctrl+c":
				m.mode = ModeNormal
			}
			return m, nil

		case ModeNormal:
			if msg.Type == tea.KeyEscape {
				m.ctl.Cancel()
				m.keyHeld = false
				m.errorMessage = ""
				m.successMessage = ""
				return m, nil
			}

			key := msg.String()
			switch key {
			case "ctrl+c", "q":
				if !m.config.Confirmations {
					return m.quit()
				}
				m.mode = ModeConfirm
				m.confirmAction = ConfirmQuit
				return m, nil
			case "x":
				if !m.config.Confirmations {
					m.clearWorkspace()
					return m, nil
				}
				m.mode = ModeConfirm
				m.confirmAction = ConfirmClearWorkspace
				return m, nil
			case "?":
				m.help = true
				m.helpScroll = 0
				return m, nil
			}

			m.errorMessage = ""
			m.successMessage = ""
			switch key {
			case "u":
				m.ctl.Cancel()
				m.keyHeld = false
				if !m.history.undo(m.graph) {
					m.errorMessage = "Nothing to undo"
				}
			case "U":
				m.ctl.Cancel()
				m.keyHeld = false
				if !m.history.redo(m.graph) {
					m.errorMessage = "Nothing to redo"
				}
			case " ", "enter":
				m.togglePress()
			case "d":
				m.removeAtCursor()
			case "y":
				if err := m.copyFormulas(); err != nil {
					m.errorMessage = err.Error()
				} else {
					m.successMessage = "Copied formulas"
				}
			case "S":
				filename, err := m.exportPicture()
				if err != nil {
					m.errorMessage = fmt.Sprintf("Error exporting PNG: %s", err.Error())
					break
				}
				absPath, _ := filepath.Abs(filename)
				m.successMessage = fmt.Sprintf("Exported to %s", absPath)
			case "T":
				filename, err := m.exportText()
				if err != nil {
					m.errorMessage = fmt.Sprintf("Error exporting text: %s", err.Error())
					break
				}
				absPath, _ := filepath.Abs(filename)
				m.successMessage = fmt.Sprintf("Exported to %s", absPath)
			case "h", "j", "k", "l", "H", "J", "K", "L",
				"left", "right", "up", "down",
				"shift+left", "shift+right", "shift+up", "shift+down":
				m.handleCursorMove(key, m.getMoveSpeed(key))
			}
			if err := m.graph.Check(); err != nil {
				logutil.Errorf("workspace inconsistent after %q: %v", key, err)
			}
			return m, nil
		}
	}
	return m, nil
}

func (m model) quit() (tea.Model, tea.Cmd) {
	m.dispatch(interact.Event{Type: interact.Quit})
	logutil.Infof("quitting with %d tokens and %d bonds", m.graph.Len(), len(m.graph.Bonds()))
	return m, tea.Quit
}

// canvas rasterizes the workspace for the terminal.
func (m *model) canvas(showCursor bool) *termSurface {
	s := newTermSurface(m.canvasCols(), m.canvasRows(), m.cellWidth(), m.cellHeight())
	render.DrawScene(s, m.frame(m.workspaceSize()))
	if showCursor {
		if c := s.at(m.cursorX, m.cursorY); c != nil {
			c.r = '█'
			c.fg = cursorColor
		}
	}
	return s
}

func (m model) View() string {
	if m.help {
		return m.helpView()
	}

	var result strings.Builder
	for _, line := range m.canvas(m.keyboardActive).Render() {
		result.WriteString(line)
		result.WriteString("\n")
	}
	result.WriteString(m.statusLine())
	return result.String()
}

func (m model) statusLine() string {
	var status string
	style := statusStyle
	switch m.mode {
	case ModeConfirm:
		var message string
		switch m.confirmAction {
		case ConfirmQuit:
			message = "Quit? (y/n)"
		case ConfirmClearWorkspace:
			message = "Remove every element? Undo history is lost. (y/n)"
		}
		status = fmt.Sprintf("Mode: CONFIRM | %s", message)
	default:
		p := m.ctl.Pointer()
		status = fmt.Sprintf("Mode: %s | %s | Pointer: (%.0f,%.0f)", m.modeString(), m.ctl.State(), p.X, p.Y)
		if info := m.hoverInfo(); info != "" {
			status += " | " + info
		}
		if list := formulas(m.graph); len(list) > 0 {
			status += " | " + strings.Join(list, " ")
		}
		if m.successMessage != "" {
			status += fmt.Sprintf(" | %s", m.successMessage)
		}
		if m.errorMessage != "" {
			status += fmt.Sprintf(" | ERROR: %s", m.errorMessage)
			style = errorStyle
		} else if m.successMessage == "" {
			status += " | ? for help | q to quit"
		}
	}

	width := max(m.width, 1)
	return style.Width(width).Render(truncate(status, width))
}

func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 1 {
		return string(runes[:width])
	}
	return string(runes[:width-1]) + "…"
}

func (m model) modeString() string {
	switch m.mode {
	case ModeNormal:
		if m.keyHeld {
			return "HOLD"
		}
		return "NORMAL"
	case ModeConfirm:
		return "CONFIRM"
	default:
		return "UNKNOWN"
	}
}

var helpLines = []string{
	"Covalent Help",
	"=============",
	"",
	"Mouse:",
	"------",
	"  Click element in table   Add it to the workspace (once per element)",
	"  Drag from an electron    Form a bond with an electron of another element",
	"  Drag a bonded electron   Break the bond and drag it somewhere else",
	"  Drag element body        Move the element",
	"  Right click / Ctrl+click Remove the element and its bonds",
	"",
	"Keyboard pointer:",
	"-----------------",
	"  h/←/j/↓/k/↑/l/→  Move pointer",
	"  Shift+h/j/k/l    Move pointer 2x faster",
	"  Space/Enter      Press, then release, at the pointer",
	"  d                Remove element under the pointer",
	"",
	"Workspace:",
	"----------",
	"  u                Undo last action",
	"  U                Redo last undone action",
	"  x                Clear workspace",
	"  y                Copy molecule formulas to clipboard",
	"  S                Export as PNG image",
	"  T                Export as text",
	"",
	"General:",
	"  Esc              Cancel current drag",
	"  ?                Toggle this help screen",
	"  q/Ctrl+C         Quit",
	"",
	"The table shrinks to fit the terminal down to 49 columns;",
	"narrower than that, its right end is cut off.",
	"Settings are read from ~/.covalentrc (key=value).",
}

func (m model) helpView() string {
	visibleHeight := m.height - 1
	if visibleHeight < 1 {
		visibleHeight = 1
	}

	startLine := m.helpScroll
	if startLine > len(helpLines)-visibleHeight {
		startLine = max(len(helpLines)-visibleHeight, 0)
	}
	endLine := min(startLine+visibleHeight, len(helpLines))

	result := strings.Join(helpLines[startLine:endLine], "\n")
	statusLine := fmt.Sprintf("Help (%d-%d of %d lines) | j/k to scroll, Esc to close",
		startLine+1, endLine, len(helpLines))
	return result + "\n" + statusLine
}
