package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/reimagine/internal/cli/formatter"
	"github.com/alexanderramin/reimagine/internal/domain"
	"github.com/alexanderramin/reimagine/internal/service"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newBrowseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse projects in an interactive terminal view",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return errors.New("browse needs an interactive terminal")
			}
			_, err := tea.NewProgram(newBrowseModel(app), tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run()
			return err
		},
	}
}

var browseTabs = []string{"Overview", "Rooms", "Budget", "Timeline", "Materials", "Vendors", "Mood", "ROI"}

const tabRooms = 1

type browseKeyMap struct {
	NextTab     key.Binding
	PrevTab     key.Binding
	NextProject key.Binding
	PrevProject key.Binding
	Up          key.Binding
	Down        key.Binding
	Toggle      key.Binding
	Help        key.Binding
	Quit        key.Binding
}

func defaultBrowseKeys() browseKeyMap {
	return browseKeyMap{
		NextTab:     key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab/→", "next tab")),
		PrevTab:     key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("shift+tab/←", "prev tab")),
		NextProject: key.NewBinding(key.WithKeys("]", "n"), key.WithHelp("]", "next project")),
		PrevProject: key.NewBinding(key.WithKeys("[", "p"), key.WithHelp("[", "prev project")),
		Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle:      key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "toggle scope item")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
	}
}

func (k browseKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTab, k.NextProject, k.Toggle, k.Help, k.Quit}
}

func (k browseKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextTab, k.PrevTab},
		{k.NextProject, k.PrevProject},
		{k.Up, k.Down, k.Toggle},
		{k.Help, k.Quit},
	}
}

// workspaceLoadedMsg carries a fresh snapshot for the browser.
type workspaceLoadedMsg struct {
	ws  domain.Workspace
	err error
}

// mutationDoneMsg reports the outcome of a change made from the browser.
type mutationDoneMsg struct {
	status string
	err    error
}

type scopeRef struct {
	roomID string
	itemID string
}

// browseModel is a read-mostly view of every project. It can switch the
// active project and toggle scope items; everything else is edited through
// the regular commands.
type browseModel struct {
	app    *App
	keys   browseKeyMap
	help   help.Model
	ws     domain.Workspace
	loaded bool
	tab    int
	cursor int
	status string
	err    error
	width  int
}

func newBrowseModel(app *App) *browseModel {
	return &browseModel{
		app:  app,
		keys: defaultBrowseKeys(),
		help: help.New(),
	}
}

func (m *browseModel) Init() tea.Cmd {
	return m.loadWorkspace()
}

func (m *browseModel) loadWorkspace() tea.Cmd {
	app := m.app
	return func() tea.Msg {
		ws, err := app.Projects.List(context.Background())
		return workspaceLoadedMsg{ws: ws, err: err}
	}
}

func (m *browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case workspaceLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.ws = msg.ws
		m.loaded = true
		m.clampCursor()
		return m, nil

	case mutationDoneMsg:
		var saveErr *service.SaveError
		switch {
		case errors.As(msg.err, &saveErr):
			m.status = formatter.StyleYellow.Render("Warning: " + saveErr.Error())
		case msg.err != nil:
			m.status = formatter.StyleRed.Render("Error: " + msg.err.Error())
		default:
			m.status = msg.status
		}
		return m, m.loadWorkspace()

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m *browseModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.NextTab):
		m.tab = (m.tab + 1) % len(browseTabs)
		m.cursor = 0
	case key.Matches(msg, m.keys.PrevTab):
		m.tab = (m.tab + len(browseTabs) - 1) % len(browseTabs)
		m.cursor = 0
	case key.Matches(msg, m.keys.NextProject):
		return m, m.switchProject(1)
	case key.Matches(msg, m.keys.PrevProject):
		return m, m.switchProject(-1)
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.scopeRefs())-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Toggle):
		return m, m.toggleScope()
	}
	return m, nil
}

func (m *browseModel) switchProject(step int) tea.Cmd {
	n := len(m.ws.Projects)
	if n < 2 {
		return nil
	}
	idx := 0
	for i, p := range m.ws.Projects {
		if p.ID == m.ws.ActiveID {
			idx = i
		}
	}
	next := m.ws.Projects[(idx+step+n)%n]
	m.cursor = 0
	app := m.app
	return func() tea.Msg {
		err := app.Projects.SetActive(context.Background(), next.ID)
		return mutationDoneMsg{status: "Active project: " + next.Name, err: err}
	}
}

func (m *browseModel) toggleScope() tea.Cmd {
	if m.tab != tabRooms {
		return nil
	}
	refs := m.scopeRefs()
	if m.cursor >= len(refs) {
		return nil
	}
	ref := refs[m.cursor]
	app := m.app
	return func() tea.Msg {
		_, err := app.Scope.Toggle(context.Background(), ref.roomID, ref.itemID)
		return mutationDoneMsg{err: err}
	}
}

func (m *browseModel) scopeRefs() []scopeRef {
	p, ok := m.ws.Active()
	if !ok {
		return nil
	}
	var refs []scopeRef
	for _, r := range p.Rooms {
		for _, s := range r.Scope {
			refs = append(refs, scopeRef{roomID: r.ID, itemID: s.ID})
		}
	}
	return refs
}

func (m *browseModel) clampCursor() {
	if n := len(m.scopeRefs()); m.cursor >= n {
		m.cursor = max(n-1, 0)
	}
}

func (m *browseModel) View() string {
	if m.err != nil {
		return formatter.StyleRed.Render("Error: "+m.err.Error()) + "\n"
	}
	if !m.loaded {
		return formatter.Dim("Loading…") + "\n"
	}

	var b strings.Builder
	p, ok := m.ws.Active()
	if !ok {
		b.WriteString(formatter.EmptyState("No projects yet. Run `reimagine project new` to get started.") + "\n\n")
		b.WriteString(m.help.View(m.keys) + "\n")
		return b.String()
	}

	idx := 0
	for i, q := range m.ws.Projects {
		if q.ID == p.ID {
			idx = i + 1
		}
	}
	b.WriteString(formatter.StyleHeader.Render("REIMAGINE") + "  " + formatter.Bold(p.Name) + "  " +
		formatter.PhasePill(p.Status) + "  " + formatter.Dim(fmt.Sprintf("project %d/%d", idx, len(m.ws.Projects))) + "\n")
	b.WriteString(m.renderTabs() + "\n\n")
	b.WriteString(m.renderTab(p))
	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}
	b.WriteString("\n" + m.help.View(m.keys) + "\n")
	return b.String()
}

func (m *browseModel) renderTabs() string {
	parts := make([]string, len(browseTabs))
	for i, name := range browseTabs {
		if i == m.tab {
			parts[i] = formatter.StyleYellowBold.Render("[" + name + "]")
			continue
		}
		parts[i] = formatter.Dim(" " + name + " ")
	}
	return strings.Join(parts, " ")
}

func (m *browseModel) renderTab(p domain.Project) string {
	switch browseTabs[m.tab] {
	case "Overview":
		return formatter.FormatProjectOverview(p) + "\n"
	case "Rooms":
		return m.renderRooms(p)
	case "Budget":
		return formatter.FormatBudget(p)
	case "Timeline":
		return formatter.FormatTimeline(p, m.app.now())
	case "Materials":
		return formatter.FormatMaterials(p)
	case "Vendors":
		return formatter.FormatVendors(p)
	case "Mood":
		return formatter.FormatMood(p)
	default:
		return formatter.FormatROI(p.ROI)
	}
}

func (m *browseModel) renderRooms(p domain.Project) string {
	if len(p.Rooms) == 0 {
		return formatter.EmptyState("No rooms yet. Add one with `reimagine room add`.") + "\n"
	}
	var b strings.Builder
	i := 0
	for _, r := range p.Rooms {
		b.WriteString(formatter.Bold(r.Name) + "  " + formatter.StyleBlue.Render("[ "+r.CompletionLabel()+" ]") + "\n")
		if len(r.Scope) == 0 {
			b.WriteString("   " + formatter.Dim("no scope items") + "\n")
		}
		for _, s := range r.Scope {
			pointer := "  "
			if i == m.cursor {
				pointer = formatter.StyleYellowBold.Render("▸ ")
			}
			box := "[ ] "
			text := s.Text
			if s.Done {
				box = formatter.StyleGreen.Render("[✔] ")
				text = formatter.Dim(text)
			}
			b.WriteString(" " + pointer + box + text + "\n")
			i++
		}
	}
	return b.String()
}
