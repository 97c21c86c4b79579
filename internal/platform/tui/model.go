package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-crossing/internal/core"
	"github.com/vovakirdan/tui-crossing/internal/platform/headless"
	"github.com/vovakirdan/tui-crossing/internal/registry"
)

// framesPerStep paces redraws relative to the world's step rate.
const framesPerStep = 5

// Model is the Bubble Tea model for a play session.
type Model struct {
	env      registry.Env
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	episode  int
	current  headless.Summary
	results  []headless.Summary
	last     string // trace of the last step
	started  time.Time
	elapsed  time.Duration
	finished bool // every episode played
	quitting bool
}

// NewModel creates a play session model and resets the first episode.
func NewModel(env registry.Env, cfg core.RuntimeConfig, logger *log.Logger) *Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	m := &Model{
		env:     env,
		screen:  core.NewScreen(cfg.ScreenW, core.Max(1, cfg.ScreenH-1)),
		config:  cfg,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		logger:  logger,
		started: time.Now(),
	}
	m.resetEpisode()
	return m
}

// Init starts the frame loop.
func (m *Model) Init() tea.Cmd {
	return tickCmd(m.frameRate())
}

// frameRate is the number of redraws per second.
func (m *Model) frameRate() int {
	return core.Max(1, m.env.StepsPerSecond()*framesPerStep)
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, core.Max(1, msg.Height-1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		m.elapsed = time.Time(msg).Sub(m.started)
		return m, tickCmd(m.frameRate())
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quit()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case msg.String() == "ctrl+s":
		m.saveScreenshot()
		return m, nil
	}

	if m.finished {
		return m, nil
	}

	if m.env.State().Terminal() {
		if key.Matches(msg, m.keys.Restart) {
			m.nextEpisode()
		}
		return m, nil
	}

	if a, ok := m.keys.Action(msg); ok {
		m.step(a)
	}
	return m, nil
}

// step advances the world by one action and records the outcome.
func (m *Model) step(a core.Action) {
	res, err := m.env.Step(a)
	if err != nil {
		m.logger.Warn("step rejected", "action", a, "err", err)
		return
	}
	m.current.Steps++
	m.current.Return += res.Reward
	m.last = fmt.Sprintf("action=%s, reward=%v, done=%v", a, res.Reward, res.Done())
	m.logger.Debug(m.last)

	if res.Done() {
		m.current.Outcome = res.State
		m.results = append(m.results, m.current)
		m.logger.Info("episode finished",
			"episode", m.current.Episode,
			"seed", m.current.Seed,
			"steps", m.current.Steps,
			"outcome", m.current.Outcome,
		)
		if m.lastEpisode() {
			m.finished = true
		}
	}
}

// nextEpisode resets the world with the next seed in the session.
func (m *Model) nextEpisode() {
	if m.lastEpisode() {
		m.finished = true
		return
	}
	m.episode++
	m.resetEpisode()
}

// lastEpisode reports whether the current episode is the session's final one.
func (m *Model) lastEpisode() bool {
	return m.config.Episodes > 0 && m.episode+1 >= m.config.Episodes
}

func (m *Model) resetEpisode() {
	seed := m.config.EpisodeSeed(m.episode)
	m.env.Reset(&seed)
	m.current = headless.Summary{Episode: m.episode, Seed: seed, Outcome: core.EpisodeRunning}
	m.last = ""
}

// quit records an unfinished episode before leaving.
func (m *Model) quit() {
	if !m.finished && !m.env.State().Terminal() && m.current.Steps > 0 {
		m.results = append(m.results, m.current)
	}
	m.quitting = true
}

// Results returns the summaries of the episodes played so far.
func (m *Model) Results() []headless.Summary {
	out := make([]headless.Summary, len(m.results))
	copy(out, m.results)
	return out
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.env.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".crossing", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.env.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot", "err", err)
	}
}

// View renders the current state to a string for display.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	m.env.Render(m.screen)
	m.drawBanner()

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// drawBanner writes the session line and the end-of-episode prompt.
func (m *Model) drawBanner() {
	h := m.screen.Height()
	episode := fmt.Sprintf("episode %d", m.episode+1)
	if m.config.Episodes > 0 {
		episode += fmt.Sprintf("/%d", m.config.Episodes)
	}
	session := fmt.Sprintf("%s  seed %d  return %v  %s",
		episode, m.current.Seed, m.current.Return, m.elapsed.Truncate(time.Second))
	m.screen.DrawTextColor(1, 0, session, core.ColorGray)

	if m.last != "" {
		m.screen.DrawText(1, h-2, m.last)
	}

	var prompt string
	color := core.ColorBrightGreen
	switch {
	case m.finished:
		prompt = "session over, press q to quit"
	case m.env.State() == core.EpisodeCollision:
		prompt = "collision! press r for the next episode"
		color = core.ColorBrightRed
	case m.env.State() == core.EpisodeSuccess:
		prompt = "crossed! press r for the next episode"
	}
	if prompt != "" {
		m.screen.DrawTextColor(core.Max(0, (m.screen.Width()-len(prompt))/2), h-1, prompt, color)
	}
}

// Run starts the Bubble Tea program and returns the played episodes.
func Run(env registry.Env, cfg core.RuntimeConfig, logger *log.Logger) ([]headless.Summary, error) {
	model := NewModel(env, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return model.Results(), err
	}
	return model.Results(), nil
}
