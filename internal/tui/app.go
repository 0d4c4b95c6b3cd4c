package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/wandertools/wandertools/internal/config"
	"github.com/wandertools/wandertools/internal/database/repository"
	"github.com/wandertools/wandertools/internal/feedback"
	"github.com/wandertools/wandertools/internal/service"
)

// Catalog is what the launcher needs from the service layer.
type Catalog interface {
	List(ctx context.Context) ([]repository.App, error)
	Search(ctx context.Context, query string) ([]repository.App, error)
	Theme(ctx context.Context) (string, error)
	ToggleTheme(ctx context.Context) (string, error)
}

// URLOpener launches a link outside the terminal.
type URLOpener interface {
	Open(url string) error
}

type Services struct {
	Catalog  Catalog
	Sender   feedback.Sender
	Observer feedback.Observer
	Opener   URLOpener
}

// App is the launcher screen plus the feedback dialogs it opens.
type App struct {
	ctx      context.Context
	cfg      config.Config
	services Services
	logger   zerolog.Logger
	keys     keyMap

	apps      []repository.App
	cursor    int
	searching bool
	query     string
	theme     string
	styles    styles
	status    string
	width     int
	height    int
	year      int

	// one dialog per app name, kept for the whole session
	dialogs map[string]*feedback.Dialog
	active  *feedback.Dialog
	input   textarea.Model
	hint    string
}

func New(ctx context.Context, cfg config.Config, services Services, logger zerolog.Logger) *App {
	input := textarea.New()
	input.Placeholder = "Your feedback"
	input.ShowLineNumbers = false
	// drafts are sent whole: no character or line cap
	input.CharLimit = 0
	input.MaxHeight = 0
	input.SetHeight(5)
	input.SetWidth(48)

	return &App{
		ctx:      ctx,
		cfg:      cfg,
		services: services,
		logger:   logger.With().Str("component", "tui").Logger(),
		keys:     defaultKeyMap(),
		theme:    cfg.UI.Theme,
		styles:   newStyles(cfg.UI.Theme),
		year:     time.Now().Year(),
		dialogs:  map[string]*feedback.Dialog{},
		input:    input,
	}
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(a.loadApps(), a.loadTheme())
}

func (a *App) loadApps() tea.Cmd {
	query := a.query
	return func() tea.Msg {
		var (
			apps []repository.App
			err  error
		)
		if strings.TrimSpace(query) == "" {
			apps, err = a.services.Catalog.List(a.ctx)
		} else {
			apps, err = a.services.Catalog.Search(a.ctx, query)
		}
		if err != nil {
			return errMsg{err}
		}
		return appsMsg{query: query, apps: apps}
	}
}

func (a *App) openURLCmd(url string) tea.Cmd {
	if a.services.Opener == nil || url == "" {
		a.status = "nothing to open"
		return nil
	}
	opener := a.services.Opener
	return func() tea.Msg {
		if err := opener.Open(url); err != nil {
			return errMsg{err}
		}
		return statusMsg("opened " + url)
	}
}

func (a *App) loadTheme() tea.Cmd {
	return func() tea.Msg {
		theme, err := a.services.Catalog.Theme(a.ctx)
		if err != nil {
			return errMsg{err}
		}
		return themeMsg(theme)
	}
}

func (a *App) toggleThemeCmd() tea.Cmd {
	return func() tea.Msg {
		theme, err := a.services.Catalog.ToggleTheme(a.ctx)
		if err != nil {
			return errMsg{err}
		}
		return themeMsg(theme)
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		a.input.SetWidth(dialogInputWidth(m.Width))
		return a, nil
	case tea.KeyMsg:
		if a.dialogOpen() {
			return a.handleDialogKey(m)
		}
		if a.searching {
			return a.handleSearchKey(m)
		}
		return a.handleLauncherKey(m)
	case appsMsg:
		// results for a query the user has since changed
		if m.query != a.query {
			return a, nil
		}
		a.apps = m.apps
		if a.cursor >= len(a.apps) {
			a.cursor = 0
		}
		return a, nil
	case themeMsg:
		a.theme = string(m)
		a.styles = newStyles(a.theme)
		return a, nil
	case submitDoneMsg:
		a.applyOutcome(m)
		return a, nil
	case statusMsg:
		a.status = string(m)
		return a, nil
	case errMsg:
		a.logger.Error().Err(m.error).Msg("tui: command failed")
		a.status = "error: " + m.Error()
		return a, nil
	}
	if a.dialogOpen() {
		var cmd tea.Cmd
		a.input, cmd = a.input.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a *App) handleLauncherKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(m, a.keys.Up):
		if a.cursor > 0 {
			a.cursor--
		}
	case key.Matches(m, a.keys.Down):
		if a.cursor < len(a.apps)-1 {
			a.cursor++
		}
	case key.Matches(m, a.keys.Open):
		if len(a.apps) == 0 {
			a.status = "no apps"
			return a, nil
		}
		return a, a.openURLCmd(a.apps[a.cursor].URL)
	case key.Matches(m, a.keys.ContactLink):
		return a, a.openURLCmd(a.cfg.UI.ContactURL)
	case key.Matches(m, a.keys.Contact):
		return a, a.openDialog(a.cfg.Feedback.AppName)
	case key.Matches(m, a.keys.AppFeedback):
		if len(a.apps) == 0 {
			a.status = "no apps"
			return a, nil
		}
		return a, a.openDialog(a.apps[a.cursor].Name)
	case key.Matches(m, a.keys.Theme):
		return a, a.toggleThemeCmd()
	case key.Matches(m, a.keys.Search):
		a.searching = true
		a.status = ""
	case key.Matches(m, a.keys.ClearSearch):
		if a.query != "" {
			a.query = ""
			return a, a.loadApps()
		}
	}
	return a, nil
}

func (a *App) handleSearchKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.Type {
	case tea.KeyCtrlC:
		return a, tea.Quit
	case tea.KeyEsc:
		a.searching = false
		a.query = ""
		return a, a.loadApps()
	case tea.KeyEnter:
		a.searching = false
		return a, nil
	case tea.KeyBackspace, tea.KeyCtrlH, tea.KeyDelete:
		if r := []rune(a.query); len(r) > 0 {
			a.query = string(r[:len(r)-1])
		}
	case tea.KeySpace:
		a.query += " "
	case tea.KeyRunes:
		a.query += string(m.Runes)
	default:
		return a, nil
	}
	a.cursor = 0
	return a, a.loadApps()
}

func (a *App) View() string {
	base := a.renderLauncher()
	if !a.dialogOpen() {
		return base
	}
	card := a.styles.card.Render(a.renderDialog())
	if a.width <= 0 || a.height <= 0 {
		return base + "\n\n" + card
	}
	return centerOver(base, card, a.width, a.height)
}

func (a *App) renderLauncher() string {
	var b strings.Builder
	glyph := "☾"
	if a.theme == service.ThemeLight {
		glyph = "☀"
	}
	b.WriteString(a.styles.title.Render("◆ WanderTools") + "  " + a.styles.muted.Render(glyph) + "\n")
	b.WriteString(a.styles.tagline.Render("A suite of free, minimal travel tools for digital nomads and explorers.") + "\n\n")

	if a.searching || a.query != "" {
		b.WriteString(a.styles.key.Render("/") + " " + a.query)
		if a.searching {
			b.WriteString("▏")
		}
		b.WriteString("\n\n")
	}

	if len(a.apps) == 0 {
		b.WriteString(a.styles.muted.Render("  (no apps match)") + "\n")
	}
	for i, app := range a.apps {
		marker, name := "  ", a.styles.name.Render(app.Name)
		if i == a.cursor {
			marker, name = a.styles.selected.Render("▶ "), a.styles.selected.Render(app.Name)
		}
		fmt.Fprintf(&b, "%s%s %s\n", marker, accent(app.Icon, app.Accent), name)
		fmt.Fprintf(&b, "    %s\n", a.styles.muted.Render(app.Description))
		fmt.Fprintf(&b, "    %s\n\n", a.styles.link.Render(app.URL))
	}

	b.WriteString(a.styles.muted.Render("Trusted by travelers in 40+ countries.") + "\n\n")
	b.WriteString(helpLine(a.styles, a.keys.launcherHelp()...) + "\n")
	b.WriteString(a.styles.muted.Render(fmt.Sprintf("© %d WanderTools.", a.year)))
	if a.cfg.UI.ContactURL != "" {
		b.WriteString("  " + a.styles.muted.Render("Contact") + " " + a.styles.link.Render(a.cfg.UI.ContactURL))
	}
	if a.status != "" {
		b.WriteString("\n" + a.status)
	}
	return a.styles.app.Render(b.String())
}

// messages
type appsMsg struct {
	query string
	apps  []repository.App
}

type statusMsg string

type themeMsg string

type errMsg struct{ error }

type submitDoneMsg struct {
	dialog  *feedback.Dialog
	outcome feedback.Outcome
}
