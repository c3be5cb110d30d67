// Package tui hosts the visualizer in the terminal. Each tab owns a
// player.Driver; every pause between two steps is a tea.Tick whose message
// names the tab and the run epoch, so ticks of a run that was reset or
// replaced are dropped when they arrive.
package tui

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/san-kum/algoviz/internal/algo"
	"github.com/san-kum/algoviz/internal/config"
	"github.com/san-kum/algoviz/internal/dataset"
	"github.com/san-kum/algoviz/internal/player"
	"github.com/san-kum/algoviz/internal/viz"
)

const (
	defaultWidth  = 110
	defaultHeight = 34
	sideWidth     = 42
	chartHeight   = 5
)

// stepMsg asks for the next step of the run identified by epoch.
type stepMsg struct {
	tab   tab
	epoch uint64
}

type model struct {
	cfg    *config.Config
	rng    *rand.Rand
	logger *zap.Logger

	panels []*panel
	active tab
	speed  player.Speed
	theme  viz.Theme

	keys keyMap
	help help.Model
	log  viewport.Model

	status        string
	width, height int
}

func newModel(cfg *config.Config, logger *zap.Logger) (model, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	m := model{
		cfg:    cfg,
		rng:    rand.New(rand.NewSource(seed)),
		logger: logger,
		speed:  cfg.SpeedValue(),
		theme:  viz.GetTheme(cfg.Theme),
		keys:   keys,
		help:   help.New(),
		log:    viewport.New(sideWidth, 10),
		width:  defaultWidth,
		height: defaultHeight,
	}

	tree, treeErr := cfg.BuildTree()
	if treeErr != nil {
		logger.Warn("tree configuration rejected", zap.Errors("problems", dataset.Problems(treeErr)))
	}
	variant, first := cfg.VariantValue(), tabTree
	if info, err := cfg.AlgorithmInfo(); err == nil {
		first = tabFor(info)
		if v, verr := algo.ParseVariant(info.Name); info.Tree && verr == nil {
			variant = v
		}
	}
	m.panels = append(m.panels, newTreePanel(tree, treeErr, variant, m.speed, logger))

	size := dataset.ClampSize(cfg.ArraySize)
	for _, kind := range []tab{tabBubble, tabInsertion} {
		seq, err := dataset.GeneratePattern(m.rng, cfg.Pattern, size, cfg.ValueMin, cfg.ValueMax)
		if err != nil {
			return model{}, fmt.Errorf("tui: %s data: %w", kind, err)
		}
		m.panels = append(m.panels, newSortPanel(kind, seq, m.speed, logger))
	}
	m.active = first
	m.resize()
	return m, nil
}

// tabFor picks the tab that shows an algorithm.
func tabFor(info algo.Info) tab {
	switch {
	case info.Tree:
		return tabTree
	case info.Name == "insertion":
		return tabInsertion
	}
	return tabBubble
}

// RunInteractive opens the three-tab visualizer on the alternate screen.
func RunInteractive(cfg *config.Config, logger *zap.Logger) error {
	m, err := newModel(cfg, logger)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
	case stepMsg:
		cmd = m.advance(msg)
	case tea.KeyMsg:
		if m, cmd = m.handleKey(msg); cmd != nil {
			return m, cmd
		}
	}
	m.refreshLog()
	return m, cmd
}

func (m *model) advance(msg stepMsg) tea.Cmd {
	p := m.panels[msg.tab]
	if !p.usable() {
		return nil
	}
	step, err := p.driver.Advance(msg.epoch)
	if errors.Is(err, player.ErrStaleRun) || errors.Is(err, player.ErrNotRunning) {
		m.logger.Debug("tick dropped", zap.Stringer("tab", msg.tab), zap.Uint64("epoch", msg.epoch), zap.Error(err))
		return nil
	}
	if err != nil {
		m.status = err.Error()
		return nil
	}
	if step.Done {
		return nil
	}
	return tick(msg.tab, msg.epoch, p.driver.Delay(step))
}

func tick(t tab, epoch uint64, pause time.Duration) tea.Cmd {
	return tea.Tick(pause, func(time.Time) tea.Msg {
		return stepMsg{tab: t, epoch: epoch}
	})
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	p := m.current()
	m.status = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.NextTab):
		m.switchTab(1)
	case key.Matches(msg, m.keys.PrevTab):
		m.switchTab(-1)
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize()
	case key.Matches(msg, m.keys.Theme):
		m.theme = viz.NextTheme(m.theme.Name)
		m.status = "theme " + m.theme.Name
	case key.Matches(msg, m.keys.Faster):
		m.setSpeed(m.speed.Faster())
	case key.Matches(msg, m.keys.Slower):
		m.setSpeed(m.speed.Slower())
	case !p.usable():
		// everything below needs a working panel
	case key.Matches(msg, m.keys.Start):
		step, epoch, err := p.driver.Start()
		if err != nil {
			m.status = "already running, press r to reset"
			return m, nil
		}
		m.refreshLog()
		if step.Done {
			return m, nil
		}
		return m, tick(p.kind, epoch, p.driver.Delay(step))
	case key.Matches(msg, m.keys.Reset):
		p.driver.Reset()
	case key.Matches(msg, m.keys.ClearLog):
		p.driver.Transcript().Clear()
	case key.Matches(msg, m.keys.NewData) && p.sorting():
		m.regenerate(p, p.size)
	case key.Matches(msg, m.keys.Grow) && p.sorting():
		m.regenerate(p, p.size+1)
	case key.Matches(msg, m.keys.Shrink) && p.sorting():
		m.regenerate(p, p.size-1)
	case key.Matches(msg, m.keys.Variant) && !p.sorting():
		if err := p.cycleVariant(); err != nil {
			m.status = err.Error()
		}
	default:
		var cmd tea.Cmd
		m.log, cmd = m.log.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *model) current() *panel { return m.panels[m.active] }

func (m *model) switchTab(delta int) {
	n := len(m.panels)
	m.active = tab((int(m.active) + delta + n) % n)
	m.log.GotoBottom()
}

func (m *model) setSpeed(s player.Speed) {
	m.speed = s
	for _, p := range m.panels {
		if p.driver != nil {
			p.driver.SetSpeed(s)
		}
	}
	m.status = "speed " + s.String()
}

func (m *model) regenerate(p *panel, size int) {
	p.size = dataset.ClampSize(size)
	if err := p.regenerate(m.rng, m.cfg); err != nil {
		m.status = err.Error()
		return
	}
	m.logger.Info("new data", zap.Stringer("tab", p.kind), zap.Int("size", p.size))
}

func (m *model) refreshLog() {
	p := m.current()
	if !p.usable() {
		m.log.SetContent("")
		return
	}
	atBottom := m.log.AtBottom()
	m.log.SetContent(p.driver.Transcript().String())
	if atBottom {
		m.log.GotoBottom()
	}
}

func (m *model) resize() {
	m.help.Width = m.width
	m.log.Width = sideWidth
	m.log.Height = max(m.height-chartHeight-18, 4)
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString(m.viewTabs() + "\n\n")

	p := m.current()
	if p.err != nil {
		b.WriteString(m.viewTreeError(p.err))
	} else {
		left := viz.GlassPanel.Render(m.viewSubject(p))
		right := m.viewSide(p)
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right))
	}

	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(viz.Subtle.Render(m.status) + "\n")
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m model) viewTabs() string {
	title := viz.GradientText("algoviz", m.theme.Primary, m.theme.Secondary)
	parts := []string{title, " "}
	for i, p := range m.panels {
		label := p.kind.String()
		if tab(i) == m.active {
			parts = append(parts, viz.NeonGlow.Foreground(m.theme.Primary).Background(m.theme.Background).Render(label))
		} else {
			parts = append(parts, viz.TabIdle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom, parts...)
}

func (m model) subjectSize() (int, int) {
	w := max(m.width-sideWidth-8, 20)
	h := max(m.height-12, 8)
	return w, h
}

func (m model) viewSubject(p *panel) string {
	w, h := m.subjectSize()
	switch f := p.driver.Frame().(type) {
	case algo.SequenceFrame:
		return viz.Bars(f, m.theme, h-2)
	case algo.TreeFrame:
		return viz.TreeView(p.tree, f, m.theme, w, h)
	}
	return ""
}

func (m model) viewSide(p *panel) string {
	var s strings.Builder
	s.WriteString(viz.HeaderStyle.Render(p.driver.Engine().Name()) + "\n")

	state := p.driver.State()
	s.WriteString(viz.MetricLabel.Render("State") + stateStyle(m.theme, state).Render(state.String()) + "\n")
	s.WriteString(viz.MetricLabel.Render("Speed") + viz.MetricValue.Render(m.speed.String()) + "\n")
	s.WriteString(viz.MetricLabel.Render("Data") + viz.MetricValue.Render(p.describe()) + "\n")
	if last, ok := p.driver.Last(); ok {
		s.WriteString(viz.MetricLabel.Render("Step") + viz.MetricValue.Render(fmt.Sprintf("%d %s", last.Index, last.Action)) + "\n")
	}
	for _, name := range p.recorder.Names() {
		v, _ := p.recorder.Value(name)
		s.WriteString(viz.MetricLabel.Render(name) + viz.MetricValue.Render(fmt.Sprintf("%.0f", v)) + "\n")
	}
	if p.sorting() {
		total := float64(p.size * (p.size - 1) / 2)
		left, _ := p.recorder.Value("inversions")
		if hist := p.recorder.History("inversions"); len(hist) > 0 && total > 0 {
			s.WriteString(viz.MetricLabel.Render("order") + viz.ProgressBar(1-left/total, sideWidth-14) + "\n")
		}
	} else {
		seen, _ := p.recorder.Value("visited")
		s.WriteString(viz.MetricLabel.Render("progress") + viz.ProgressBar(seen/float64(p.tree.Len()), sideWidth-14) + "\n")
	}
	if hist := p.recorder.History(p.trend); len(hist) > 0 {
		s.WriteString(viz.MetricLabel.Render("trend") + viz.SparklineChart(hist, sideWidth-14) + "\n")
	}

	if chart := viz.Chart(p.recorder.History(p.chart), p.chart, sideWidth-10, chartHeight); chart != "" {
		s.WriteString("\n" + chart + "\n")
	}

	s.WriteString("\n" + viz.Separator(sideWidth-4) + "\n")
	s.WriteString(viz.HeaderStyle.Render("Log") + "\n")
	s.WriteString(m.log.View())
	return s.String()
}

func (m model) viewTreeError(err error) string {
	var b strings.Builder
	b.WriteString(viz.StatusError.Foreground(m.theme.Error).Render("Tree Traversal unavailable: the tree definition was rejected") + "\n\n")
	for _, e := range dataset.Problems(err) {
		b.WriteString("  • " + e.Error() + "\n")
	}
	b.WriteString("\n" + viz.Subtle.Render("fix the tree section of the config; the sorting tabs still work") + "\n")
	return b.String()
}

// stateStyle colors a driver state with the theme: running in Success,
// finished in Accent, idle in Warning.
func stateStyle(t viz.Theme, s player.State) lipgloss.Style {
	switch s {
	case player.Running:
		return viz.StatusRunning.Foreground(t.Success)
	case player.Finished:
		return viz.StatusIdle.Foreground(t.Accent)
	}
	return viz.StatusIdle.Foreground(t.Warning)
}
