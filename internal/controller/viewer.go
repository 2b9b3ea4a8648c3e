package controller

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/mouse-blink/bloch/internal/domain"
	m "github.com/mouse-blink/bloch/internal/model"
)

const (
	historyCapacity = 120
	defaultCols     = 40
	defaultRows     = 20
	panelWidth      = 46
)

var gateKeys = map[string]m.GateName{
	"x": m.GateX,
	"y": m.GateY,
	"z": m.GateZ,
	"h": m.GateH,
	"s": m.GateS,
	"t": m.GateT,
}

var (
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	accentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	alertStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	graphStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("49"))
	canvasStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("6")).Padding(0, 1)
	sidebarStyle = lipgloss.NewStyle().Padding(0, 2).Width(panelWidth)
)

// viewerModel is the interactive Bloch sphere. Every tick advances the engine
// by one transition sample and redraws.
type viewerModel struct {
	engine   domain.Engine
	frame    m.Frame
	fps      int
	camera   camera
	width    int
	height   int
	bars     [2]progress.Model
	history  []float64
	form     customForm
	editing  bool
	announce string
	errText  string
	dragging bool
	dragX    int
	dragY    int
	quitting bool
}

func newViewerModel(engine domain.Engine, cfg SessionConfig) viewerModel {
	vm := newFrameView(engine.Snapshot(), cfg)
	vm.engine = engine

	return vm
}

// newFrameView builds a model that only renders frame; it has no engine and
// must not receive input.
func newFrameView(frame m.Frame, cfg SessionConfig) viewerModel {
	newBar := func() progress.Model {
		return progress.New(
			progress.WithDefaultGradient(),
			progress.WithWidth(24),
			progress.WithoutPercentage(),
		)
	}

	return viewerModel{
		frame:   frame,
		fps:     cfg.fps,
		camera:  cfg.camera,
		bars:    [2]progress.Model{newBar(), newBar()},
		history: []float64{frame.Probabilities.P0},
		form:    newCustomForm(),
	}
}

func (vm viewerModel) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(vm.fps), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (vm viewerModel) Init() tea.Cmd {
	return vm.tick()
}

func (vm viewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		vm.width = msg.Width
		vm.height = msg.Height

		return vm, nil

	case tickMsg:
		return vm.handleTick(), vm.tick()

	case tea.MouseMsg:
		return vm.handleMouse(msg), nil

	case tea.KeyMsg:
		if vm.editing {
			return vm.handleFormKey(msg)
		}

		return vm.handleKey(msg)
	}

	return vm, nil
}

func (vm viewerModel) handleTick() viewerModel {
	frame, advanced := vm.engine.Step()
	vm.frame = frame

	if advanced {
		vm.history = append(vm.history, frame.Probabilities.P0)
		if len(vm.history) > historyCapacity {
			vm.history = vm.history[len(vm.history)-historyCapacity:]
		}
	}

	return vm
}

//nolint:cyclop // one case per key binding
func (vm viewerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if name, ok := gateKeys[key]; ok {
		if vm.engine.ApplyGate(name) {
			vm.announce, vm.errText = "", ""
		}

		return vm, nil
	}

	switch key {
	case "q", "ctrl+c", "esc":
		vm.quitting = true
		return vm, tea.Quit

	case "0", "r":
		if vm.engine.Reset() {
			vm.announce, vm.errText = "", ""
		}

	case "n":
		if vm.engine.Randomize() {
			vm.announce, vm.errText = "", ""
		}

	case "m":
		if measurement, ok := vm.engine.Measure(); ok {
			vm.announce = FormatMeasurement(measurement)
			vm.errText = ""
		}

	case "c":
		if vm.engine.Phase() == domain.PhaseIdle {
			var cmd tea.Cmd

			vm.editing = true
			vm.form, cmd = vm.form.open()

			return vm, cmd
		}

	case "left":
		vm.camera = vm.camera.orbit(-orbitStep, 0)
	case "right":
		vm.camera = vm.camera.orbit(orbitStep, 0)
	case "up":
		vm.camera = vm.camera.orbit(0, orbitStep)
	case "down":
		vm.camera = vm.camera.orbit(0, -orbitStep)
	}

	return vm, nil
}

func (vm viewerModel) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		vm.editing = false
		return vm, nil

	case "ctrl+c":
		vm.quitting = true
		return vm, tea.Quit

	case "enter":
		vm.editing = false

		alpha, beta := vm.form.amplitudes()

		accepted, err := vm.engine.SetCustomState(alpha, beta)
		if err != nil {
			vm.errText = err.Error()
			return vm, nil
		}

		if accepted {
			vm.announce, vm.errText = "", ""
		}

		return vm, nil
	}

	var cmd tea.Cmd
	vm.form, cmd = vm.form.update(msg)

	return vm, cmd
}

// handleMouse orbits the camera while the left button is dragged.
func (vm viewerModel) handleMouse(msg tea.MouseMsg) viewerModel {
	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		vm.dragging = true
		vm.dragX, vm.dragY = msg.X, msg.Y

	case msg.Action == tea.MouseActionMotion && vm.dragging:
		dx, dy := msg.X-vm.dragX, msg.Y-vm.dragY
		vm.camera = vm.camera.orbit(float64(dx)*dragSpeed, float64(dy)*dragSpeed)
		vm.dragX, vm.dragY = msg.X, msg.Y

	case msg.Action == tea.MouseActionRelease:
		vm.dragging = false
	}

	return vm
}

func (vm viewerModel) canvasSize() (int, int) {
	cols, rows := defaultCols, defaultRows

	if vm.width > 0 {
		cols = min(max(vm.width-panelWidth-6, 16), 60)
	}

	if vm.height > 0 {
		rows = min(max(vm.height-4, 8), 30)
	}

	return cols, rows
}

func (vm viewerModel) View() string {
	if vm.quitting {
		return ""
	}

	cols, rows := vm.canvasSize()
	cv := newCanvas(cols, rows)
	drawScene(cv, vm.camera, vm.frame.Bloch)

	sphere := canvasStyle.Render(cv.String())
	sidebar := sidebarStyle.Render(vm.renderSidebar())

	return lipgloss.JoinHorizontal(lipgloss.Top, sphere, sidebar)
}

func (vm viewerModel) renderSidebar() string {
	var sb strings.Builder

	frame := vm.frame

	sb.WriteString(titleStyle.Render("Bloch Sphere") + "\n\n")
	sb.WriteString(accentStyle.Render(FormatState(frame.State)) + "\n\n")

	for basis := range 2 {
		p := frame.Probabilities.Of(basis)
		sb.WriteString(fmt.Sprintf("%s %s %s %s\n",
			labelStyle.Width(5).Render(fmt.Sprintf("|%d⟩", basis)),
			vm.bars[basis].ViewAs(p),
			valueStyle.Render(fmt.Sprintf("%6s", FormatPercent(p))),
			basisArrow(basis, p),
		))
	}

	sb.WriteString("\n")
	sb.WriteString(labelStyle.Render("Bloch") + valueStyle.Render(FormatBloch(frame.Bloch)) + "\n")
	sb.WriteString(labelStyle.Render("Last gate") + valueStyle.Render(FormatOperation(frame.Operation)) + "\n")

	status := "idle"
	if frame.Animating() {
		status = fmt.Sprintf("animating %d/%d", frame.Step, frame.Steps)
	}

	sb.WriteString(labelStyle.Render("Status") + valueStyle.Render(status) + "\n")

	if vm.announce != "" {
		sb.WriteString("\n" + alertStyle.Render(vm.announce) + "\n")
	}

	if vm.errText != "" {
		sb.WriteString("\n" + errorStyle.Render(vm.errText) + "\n")
	}

	if len(vm.history) > 1 {
		chart := asciigraph.Plot(vm.history,
			asciigraph.Height(4),
			asciigraph.Width(30),
			asciigraph.LowerBound(0),
			asciigraph.UpperBound(1),
			asciigraph.Precision(1),
			asciigraph.Caption("P(|0⟩)"),
		)
		sb.WriteString("\n" + graphStyle.Render(chart) + "\n")
	}

	if vm.editing {
		sb.WriteString("\n" + vm.form.view() + "\n")
	}

	sb.WriteString("\n" + helpStyle.Render(
		"x y z h s t gates • 0 reset • c custom\nn random • m measure • ←↑↓→/drag orbit • q quit",
	))

	return sb.String()
}
