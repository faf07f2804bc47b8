package viz

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/emberfx/internal/config"
	"github.com/san-kum/emberfx/internal/emitter"
)

var presetInfo = map[string]string{
	"fountain":  "ballistic arcs under gravity",
	"smoke":     "slow ellipsoid plume",
	"explosion": "radial burst",
	"snow":      "drifting sheet fall",
	"orbitals":  "rotating emission frame",
}

const (
	stateMenu = iota
	stateSim
)

type app struct {
	state, cursor int
	presets       []string
	width, height int
	liveModel     Model
}

func NewInteractiveApp() *app {
	names := config.ListPresets()
	sort.Strings(names)
	return &app{
		state:   stateMenu,
		presets: names,
		width:   80, height: 24,
	}
}

func (a app) Init() tea.Cmd { return nil }

func (a app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKey(msg)
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		return a, nil
	default:
		if a.state == stateSim {
			newLive, cmd := a.liveModel.Update(msg)
			a.liveModel = newLive.(Model)
			return a, cmd
		}
	}
	return a, nil
}

func (a app) handleKey(msg tea.KeyMsg) (app, tea.Cmd) {
	switch a.state {
	case stateMenu:
		return a.menuKey(msg)
	case stateSim:
		if msg.String() == "escape" {
			a.state = stateMenu
			return a, nil
		}
		newLive, cmd := a.liveModel.Update(msg)
		a.liveModel = newLive.(Model)
		return a, cmd
	}
	return a, nil
}

func (a app) menuKey(msg tea.KeyMsg) (app, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "up", "k":
		if a.cursor > 0 {
			a.cursor--
		}
	case "down", "j":
		if a.cursor < len(a.presets)-1 {
			a.cursor++
		}
	case "enter", " ":
		name := a.presets[a.cursor]
		cmd := a.start(name)
		return a, cmd
	}
	return a, nil
}

func (a *app) start(name string) tea.Cmd {
	cfg := config.GetPreset(name)
	if cfg == nil {
		return nil
	}
	ec, err := cfg.ToEmitter()
	if err != nil {
		return nil
	}
	em, err := emitter.New(ec)
	if err != nil {
		return nil
	}
	if ec.Rate == 0 {
		em.Emit(ec.Capacity)
	}
	a.liveModel = NewModel(em, cfg.Dt, name)
	a.state = stateSim
	return a.liveModel.Init()
}

func (a app) View() string {
	switch a.state {
	case stateMenu:
		return a.viewMenu()
	case stateSim:
		return a.liveModel.View()
	}
	return ""
}

func (a app) viewMenu() string {
	var b strings.Builder
	h := lipgloss.NewStyle().Foreground(lipgloss.Color("#ff6b35")).Bold(true)
	sub := lipgloss.NewStyle().Foreground(lipgloss.Color("#666688"))
	sel := lipgloss.NewStyle().Foreground(lipgloss.Color("#00ffff")).Bold(true)
	name := lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Bold(true)
	desc := lipgloss.NewStyle().Foreground(lipgloss.Color("#ff88ff"))
	dimName := lipgloss.NewStyle().Foreground(lipgloss.Color("#555566"))
	dimDesc := lipgloss.NewStyle().Foreground(lipgloss.Color("#444455"))
	key := lipgloss.NewStyle().Foreground(lipgloss.Color("#00aaaa")).Bold(true)

	b.WriteString("\n\n    " + h.Render("EMBERFX") + "\n    " + sub.Render("particle emission engine") + "\n    " + sub.Render("─────────────────────────") + "\n\n")
	for i, p := range a.presets {
		info := presetInfo[p]
		if i == a.cursor {
			b.WriteString(fmt.Sprintf("    %s %s  %s\n", sel.Render("▸"), name.Render(fmt.Sprintf("%-12s", p)), desc.Render(info)))
		} else {
			b.WriteString(fmt.Sprintf("    %s  %s\n", dimName.Render(fmt.Sprintf("  %-12s", p)), dimDesc.Render(info)))
		}
	}
	b.WriteString("\n    " + key.Render("j/k") + sub.Render(" navigate  ") + key.Render("enter") + sub.Render(" select  ") + key.Render("q") + sub.Render(" quit") + "\n")
	return b.String()
}

func RunInteractive() error {
	_, err := tea.NewProgram(NewInteractiveApp(), tea.WithAltScreen()).Run()
	return err
}
