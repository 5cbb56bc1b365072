package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sprite-tutorial/internal/config"
	"github.com/vovakirdan/sprite-tutorial/internal/core"
	"github.com/vovakirdan/sprite-tutorial/internal/engine"
	"github.com/vovakirdan/sprite-tutorial/internal/games/tutorial"
	"github.com/vovakirdan/sprite-tutorial/internal/storage"
)

// helpRows is the number of terminal rows below the world.
const helpRows = 1

// Options carries the optional collaborators of a Model.
type Options struct {
	Store  *storage.Store // Nil disables the run history
	Logger *log.Logger
	Player string // Recorded with the run
	Host   string // "terminal" or "ssh"
	Bell   io.Writer
}

// Model is the Bubble Tea model hosting one tutorial run.
type Model struct {
	game     *engine.Game[tutorial.GameState]
	screen   *core.Screen
	config   core.RuntimeConfig
	opts     Options
	input    *inputTracker
	keys     KeyMap
	help     help.Model
	started  time.Time
	lastTick time.Time
	summary  tutorial.RunSummary
	quitting bool
}

// NewModel creates a model with a fresh engine and game.
func NewModel(cfg core.RuntimeConfig, game config.TutorialConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Host == "" {
		opts.Host = "terminal"
	}
	if !cfg.Bell {
		opts.Bell = nil
	}

	m := Model{
		config: cfg,
		opts:   opts,
		input:  newInputTracker(cfg.HoldWindow),
		keys:   DefaultKeyMap(),
		help:   help.New(),
	}
	vp := m.viewport()
	m.screen = core.NewScreen(vp.Cols, vp.Rows)

	e := engine.New(
		engine.WithLogger(opts.Logger),
		engine.WithSeed(cfg.Seed),
		engine.WithWindowDimensions(vp.Dimensions()),
	)
	m.game = tutorial.New(e, game)
	return m
}

// viewport returns the world area of the terminal.
func (m Model) viewport() Viewport {
	return Viewport{
		Cols:  m.config.ScreenW,
		Rows:  max(m.config.ScreenH-helpRows, 1),
		CellW: m.config.CellW,
		CellH: m.config.CellH,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.input.mouseEvent(msg, m.viewport())
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input. Game keys are only recorded here and
// reach the game on the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return m.finish()
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	if k, ok := MapKey(msg); ok {
		m.input.key(k, time.Now())
	}
	return m, nil
}

// handleResize follows the terminal size. The game keeps running; the HUD
// repositions itself from the new window dimensions.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	vp := m.viewport()
	m.screen.Resize(vp.Cols, vp.Rows)
	return m, nil
}

// handleTick runs one game frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}
	if m.started.IsZero() {
		m.started = now
	}

	delta := now.Sub(m.lastTick)
	if m.lastTick.IsZero() || delta < 0 {
		delta = time.Second / time.Duration(m.config.TickRate)
	}
	m.lastTick = now

	in := m.input.frame(now, delta, m.viewport().Dimensions())
	running := m.game.Frame(in)
	m.playAudio()

	if !running {
		return m.finish()
	}
	return m, tickCmd(m.config.TickRate)
}

// playAudio drains the engine's audio queue. A terminal can only ring its
// bell, so music requests are dropped.
func (m Model) playAudio() {
	for _, req := range m.game.Engine().Audio.Drain() {
		if req.Kind == engine.AudioSfx && m.opts.Bell != nil {
			//nolint:errcheck // Best-effort bell
			io.WriteString(m.opts.Bell, "\a")
		}
	}
}

// finish records the run and quits the program.
func (m Model) finish() (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, tea.Quit
	}
	m.quitting = true

	played := time.Duration(0)
	if !m.started.IsZero() {
		played = m.lastTick.Sub(m.started)
	}
	m.summary = tutorial.Summarize(*m.game.State(), played)

	if m.opts.Store != nil {
		id, err := m.opts.Store.SaveRun(storage.NewRun(m.summary, m.opts.Player, m.opts.Host))
		if err != nil {
			m.opts.Logger.Warn("could not save run", "error", err)
		} else {
			m.opts.Logger.Info("run saved", "run", id, "high_score", m.summary.HighScore)
		}
	}

	return m, tea.Quit
}

// Summary returns the run summary once the model has quit.
func (m Model) Summary() tutorial.RunSummary {
	return m.summary
}

// Game returns the hosted game.
func (m Model) Game() *engine.Game[tutorial.GameState] {
	return m.game
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	DrawWorld(m.screen, m.game.Engine(), m.viewport())

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, config.AppDir, "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("tutorial_%s.txt", timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.opts.Logger.Info("screenshot saved", "path", path)
}

// View renders the world and the help bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	DrawWorld(m.screen, m.game.Engine(), m.viewport())
	return renderPlayView(m.screen, m.help, m.keys)
}

// Run starts the Bubble Tea program and blocks until the run ends.
func Run(cfg core.RuntimeConfig, game config.TutorialConfig, opts Options) (tutorial.RunSummary, error) {
	model := NewModel(cfg, game, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	final, err := p.Run()
	if err != nil {
		return tutorial.RunSummary{}, err
	}
	if fm, ok := final.(Model); ok {
		return fm.Summary(), nil
	}
	return tutorial.RunSummary{}, nil
}
