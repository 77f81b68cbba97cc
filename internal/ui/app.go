package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/ruoka/internal/filter"
	"github.com/five82/ruoka/internal/menu"
)

// Options configures the browser.
type Options struct {
	Sources     []menu.Source
	MealOptions []menu.OptionDef
	Query       filter.Query
	ThemeName   string
	Renderer    *lipgloss.Renderer // nil uses the default renderer
}

// Model is the browser's Bubble Tea state.
type Model struct {
	sources  []menu.Source
	defs     []menu.OptionDef
	query    filter.Query
	previous filter.Query // restored when the prompt is cancelled

	renderer *lipgloss.Renderer
	theme    Theme
	styles   Styles
	keys     keyMap

	viewport  viewport.Model
	input     textinput.Model
	filtering bool

	width  int
	height int
	ready  bool
}

// New creates a browser model.
func New(opts Options) Model {
	r := opts.Renderer
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	input := textinput.New()
	input.Prompt = "/ "
	input.Placeholder = "keywords, -excluded"

	theme := GetTheme(opts.ThemeName)
	return Model{
		sources:  opts.Sources,
		defs:     opts.MealOptions,
		query:    opts.Query,
		renderer: r,
		theme:    theme,
		styles:   theme.Styles(r),
		keys:     DefaultKeyMap(),
		input:    input,
	}
}

// Run starts the browser and blocks until the user quits.
func Run(opts Options) error {
	_, err := tea.NewProgram(New(opts), tea.WithAltScreen()).Run()
	return err
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		bodyHeight := maxInt(msg.Height-1, 1)
		if !m.ready {
			m.viewport = viewport.New(msg.Width, bodyHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = bodyHeight
		}
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		if m.filtering {
			return m.handlePromptKey(msg)
		}
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Filter):
		m.filtering = true
		m.previous = m.query
		m.input.SetValue(m.query.String())
		m.input.CursorEnd()
		return m, m.input.Focus()

	case key.Matches(msg, m.keys.ClearQuery):
		m.query = filter.Query{}
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.styles = m.theme.Styles(m.renderer)
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.filtering = false
		m.input.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Cancel):
		m.filtering = false
		m.input.Blur()
		m.query = m.previous
		m.refresh()
		return m, nil

	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.query = filter.ParseLine(m.input.Value())
	m.refresh()
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	return m.viewport.View() + "\n" + m.footer()
}

func (m Model) footer() string {
	if m.filtering {
		return m.input.View()
	}
	parts := make([]string, 0, len(m.keys.ShortHelp())+1)
	if !m.query.Empty() {
		parts = append(parts, m.styles.Accent.Render(m.query.String()))
	}
	for _, b := range m.keys.ShortHelp() {
		help := b.Help()
		parts = append(parts, m.styles.Muted.Render(help.Key+" "+help.Desc))
	}
	return strings.Join(parts, m.styles.Muted.Render("  "))
}

// refresh re-filters every source and re-renders the listing.
func (m *Model) refresh() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.Content())
	m.viewport.GotoTop()
}

// Content renders the current query against every source.
func (m Model) Content() string {
	var b strings.Builder
	r := NewRenderer(&b, m.width, m.styles)
	shown := 0
	for _, src := range m.sources {
		board := menu.Build(src.Restaurant, m.defs, src.Menu, m.query)
		if board.Empty() {
			continue
		}
		shown++
		_ = r.Board(board)
	}
	if shown == 0 {
		return m.styles.Muted.Render("No matching meals.")
	}
	return b.String()
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
