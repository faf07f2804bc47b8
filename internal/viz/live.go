package viz

import (
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/emberfx/internal/emitter"
	"github.com/san-kum/emberfx/internal/vecmath"
)

const (
	width           = 80
	height          = 24
	historyCapacity = 600
)

var (
	canvasStyle      = lipgloss.NewStyle().Padding(1, 2)
	statsStyle       = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(45)
	headerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle       = MetricLabel.Width(12)
	activeParamStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	graphStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
)

type TickMsg time.Time

// Model holds the live emitter, visualization buffers, and UI context.
type Model struct {
	em            *emitter.Emitter
	presetName    string
	dt            float64 // ms per frame
	t             float64 // ms elapsed
	width, height int
	canvas        *Canvas
	camera        *Camera
	running       bool
	showBounds    bool
	showAxes      bool
	burstSize     int
	popHistory    []float64
	views         []emitter.View
	recording     bool
	frames        []*image.Paletted
	showHelp      bool
}

// NewModel wraps an emitter for interactive viewing. dt is the fixed
// frame step in milliseconds.
func NewModel(em *emitter.Emitter, dt float64, presetName string) Model {
	return Model{
		em:         em,
		presetName: presetName,
		dt:         dt,
		width:      width,
		height:     height,
		canvas:     NewCanvas(width, height),
		camera:     NewCamera(),
		running:    true,
		showAxes:   true,
		burstSize:  25,
		popHistory: make([]float64, 0, historyCapacity),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles input events and steps the emitter.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.reset()
		case "b":
			m.em.Emit(m.burstSize)
		case "e":
			if m.em.Running() {
				m.em.Stop()
			} else {
				m.em.Start()
			}
		case "up", "k":
			m.adjustRate(1.1)
		case "down", "j":
			m.adjustRate(0.9)
		case "g":
			if m.recording {
				m.saveGIF()
				m.recording = false
				m.frames = nil
			} else {
				m.recording = true
				m.frames = make([]*image.Paletted, 0)
			}
		case "?":
			m.showHelp = !m.showHelp
		case "t":
			names := ThemeNames()
			for i, name := range names {
				if name == CurrentTheme.Name {
					SetTheme(names[(i+1)%len(names)])
					break
				}
			}
		case "a":
			m.showAxes = !m.showAxes
		case "o":
			m.showBounds = !m.showBounds
		case "x":
			m.camera.RotateX(0.1)
		case "X":
			m.camera.RotateX(-0.1)
		case "y":
			m.camera.RotateY(0.1)
		case "Y":
			m.camera.RotateY(-0.1)
		case "z":
			m.camera.RotateZ(0.1)
		case "Z":
			m.camera.RotateZ(-0.1)
		case "+", "=":
			m.camera.ZoomIn()
		case "-", "_":
			m.camera.ZoomOut()
		}
	case TickMsg:
		if m.running {
			m.step()
		}
		m.draw()
		if m.recording {
			m.captureFrame()
		}
		return m, tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

func (m *Model) adjustRate(factor float64) {
	rate := m.em.Config().Rate * factor
	if rate < 0.1 {
		rate = 0.1
	}
	m.em.SetRate(rate)
}

// step advances the emitter one frame.
func (m *Model) step() {
	m.em.Update(m.dt)
	m.t += m.dt
	m.views = m.em.Snapshot(m.views[:0])

	m.popHistory = append(m.popHistory, float64(m.em.Live()))
	if len(m.popHistory) > historyCapacity {
		m.popHistory = m.popHistory[1:]
	}
}

// reset restores the emitter and clears the history buffers.
func (m *Model) reset() {
	m.em.Reset()
	m.t = 0
	m.views = m.views[:0]
	m.popHistory = m.popHistory[:0]
}

func (m *Model) draw() {
	m.canvas.Clear()
	if m.showAxes {
		RenderAxes(m.canvas, m.camera, 5)
	}
	if m.showBounds {
		cfg := m.em.Config()
		half := cfg.PositionVariance
		if half.IsZero() {
			half = vecmath.Vec3{X: 1, Y: 1, Z: 1}
		}
		RenderBounds(m.canvas, m.camera, half)
	}
	RenderParticles(m.canvas, m.views, m.camera)
}

// View renders the TUI interface.
func (m Model) View() string {
	m.draw()
	canvasView := canvasStyle.Render(m.canvas.String())

	var s strings.Builder
	s.WriteString(headerStyle.Render(strings.ToUpper(m.presetName)) + "\n")

	status := StatusRunning.Render("RUNNING")
	if !m.running {
		status = StatusPaused.Render("PAUSED")
	} else if !m.em.Running() {
		status = StatusPaused.Render("DRAINING")
	}
	if m.recording {
		status += " " + StatusRecording.Render("● REC")
	}
	s.WriteString(status + "\n\n")

	if len(m.popHistory) > 1 {
		chart := asciigraph.Plot(m.popHistory, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("Population"))
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	cfg := m.em.Config()
	s.WriteString(labelStyle.Render("Time") + MetricValue.Render(fmt.Sprintf("%.1fs", m.t/1000)) + "\n")
	s.WriteString(labelStyle.Render("Live") + MetricValue.Render(fmt.Sprintf("%d / %d", m.em.Live(), m.em.Capacity())) + "\n")
	s.WriteString(labelStyle.Render("Spawned") + MetricValue.Render(fmt.Sprintf("%d", m.em.TotalSpawned())) + "\n")
	s.WriteString(labelStyle.Render("Expired") + MetricValue.Render(fmt.Sprintf("%d", m.em.TotalExpired())) + "\n")
	s.WriteString(labelStyle.Render("Rate") + activeParamStyle.Render(fmt.Sprintf("%.1f /s", cfg.Rate)) + "\n")

	occupancy := 0.0
	if m.em.Capacity() > 0 {
		occupancy = float64(m.em.Live()) / float64(m.em.Capacity())
	}
	s.WriteString(labelStyle.Render("Pool") + ProgressBar(occupancy, 20) + "\n")
	if len(m.popHistory) > 1 {
		s.WriteString(labelStyle.Render("Trend") + SparklineChart(m.popHistory, 20) + "\n")
	}

	s.WriteString("\n" + Separator(24) + "\n")
	s.WriteString(KeyHint.Render("SP:Pause R:Reset Q:Quit\nB:Burst  E:Emit ↑↓:Rate\nT:Theme  G:Record ?:Help"))

	statsView := statsStyle.Render(s.String())
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)

	if m.showHelp {
		help := GlassPanel.Render(strings.Join([]string{
			MetricValue.Render("KEYBOARD SHORTCUTS"),
			"",
			"Space    pause/resume",
			"R        reset emitter",
			"Q        quit",
			"B        emit a burst",
			"E        start/stop emission",
			"Up/K     increase rate (+10%)",
			"Down/J   decrease rate (-10%)",
			"X/Y/Z    rotate camera",
			"+/-      zoom",
			"A        toggle axes",
			"O        toggle bounds box",
			"G        toggle GIF recording",
			"T        cycle themes",
			"?        toggle this help",
		}, "\n"))
		return help + "\n\n" + mainView
	}
	return mainView
}

func (m *Model) captureFrame() {
	charW, charH := 8, 16
	imgW, imgH := m.width*charW, m.height*charH
	img := image.NewPaletted(image.Rect(0, 0, imgW, imgH), color.Palette{color.Black, color.White})
	for row := 0; row < m.height; row++ {
		for col := 0; col < m.width; col++ {
			r := m.canvas.Grid[row][col]
			if r <= 0x2800 {
				continue
			}
			pattern := int(r - 0x2800)
			dotW, dotH := charW/2, charH/4
			baseX, baseY := col*charW, row*charH
			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&pixelMap[dy][dx] == 0 {
						continue
					}
					for py := 0; py < dotH; py++ {
						for px := 0; px < dotW; px++ {
							img.SetColorIndex(baseX+dx*dotW+px, baseY+dy*dotH+py, 1)
						}
					}
				}
			}
		}
	}
	m.frames = append(m.frames, img)
}

func (m *Model) saveGIF() {
	if len(m.frames) == 0 {
		return
	}
	anim := gif.GIF{LoopCount: 0}
	for _, frame := range m.frames {
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, 2)
	}
	f, err := os.Create("emitter.gif")
	if err != nil {
		return
	}
	defer f.Close()
	gif.EncodeAll(f, &anim)
}
