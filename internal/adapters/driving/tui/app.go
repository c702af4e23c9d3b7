package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/docschema/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/docschema/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/docschema/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/docschema/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/docschema/internal/adapters/driving/tui/views/schemas"
	"github.com/custodia-labs/docschema/internal/adapters/driving/tui/views/viewer"
	"github.com/custodia-labs/docschema/internal/core/domain"
)

// statusHeight is the number of rows reserved for the status bar.
const statusHeight = 1

// App is the schema browser following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	styles *styles.Styles
	keymap *keymap.KeyMap
	help   help.Model
	status *status.Bar

	schemasView *schemas.View
	viewerView  *viewer.View

	// currentView tracks which view is active; previousView is restored when help closes.
	currentView  messages.ViewType
	previousView messages.ViewType

	// err holds the last error that occurred.
	err error

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	h := help.New()
	h.ShowAll = true

	bar := status.NewBar(s)
	bar.SetBindings(km.ListHelp())

	return &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		keymap:      km,
		help:        h,
		status:      bar,
		schemasView: schemas.NewView(s),
		viewerView:  viewer.NewView(s, km),
		currentView: messages.ViewSchemas,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("docschema - Schema Browser"),
		a.loadSchemas(),
	)
}

func (a *App) loadSchemas() tea.Cmd {
	return func() tea.Msg {
		return messages.SchemasLoaded{
			Dir:     a.ports.Schema.Dir(),
			Schemas: a.ports.Schema.List(a.ctx),
		}
	}
}

func (a *App) loadSchema(kind domain.SchemaKind) tea.Cmd {
	return func() tea.Msg {
		raw, err := a.ports.Schema.Get(a.ctx, kind)
		if err != nil {
			return messages.SchemaLoaded{Kind: kind, Err: err}
		}
		tpl, err := a.ports.Schema.GenerateTemplate(a.ctx, kind, "")
		if err != nil {
			return messages.SchemaLoaded{Kind: kind, Err: err}
		}
		return messages.SchemaLoaded{Kind: kind, Raw: raw, Template: tpl.Content}
	}
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case messages.SchemasLoaded:
		a.schemasView.SetSchemas(msg.Dir, msg.Schemas)
		available := 0
		for _, info := range msg.Schemas {
			if info.Available {
				available++
			}
		}
		a.status.SetMessage(fmt.Sprintf("%d of %d schemas available", available, len(msg.Schemas)))
		return a, nil

	case messages.SchemaSelected:
		a.status.SetMessage("Loading " + msg.Kind.String() + "...")
		return a, a.loadSchema(msg.Kind)

	case messages.SchemaLoaded:
		if msg.Err != nil {
			a.setError(msg.Err)
			return a, nil
		}
		a.err = nil
		a.viewerView.SetSchema(msg.Kind, msg.Raw, msg.Template)
		a.status.SetMessage(msg.Kind.Description())
		a.switchTo(messages.ViewSchema)
		return a, nil

	case messages.ViewChanged:
		a.switchTo(msg.View)
		return a, nil

	case messages.ErrorOccurred:
		a.setError(msg.Err)
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	if a.currentView == messages.ViewSchema {
		a.viewerView, cmd = a.viewerView.Update(msg)
	}
	return a, cmd
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch {
	case key.Matches(msg, a.keymap.Quit):
		return a, tea.Quit
	case key.Matches(msg, a.keymap.Help):
		if a.currentView == messages.ViewHelp {
			a.switchTo(a.previousView)
		} else {
			a.previousView = a.currentView
			a.switchTo(messages.ViewHelp)
		}
		return a, nil
	}

	switch a.currentView {
	case messages.ViewSchemas:
		a.schemasView, cmd = a.schemasView.Update(msg)
	case messages.ViewSchema:
		a.viewerView, cmd = a.viewerView.Update(msg)
	case messages.ViewHelp:
		if key.Matches(msg, a.keymap.Back) {
			a.switchTo(a.previousView)
		}
	}
	return a, cmd
}

func (a *App) switchTo(view messages.ViewType) {
	a.currentView = view
	switch view {
	case messages.ViewSchemas:
		a.status.SetBindings(a.keymap.ListHelp())
	case messages.ViewSchema:
		a.status.SetBindings(a.keymap.ViewerHelp())
	case messages.ViewHelp:
		a.status.SetBindings([]key.Binding{a.keymap.Back, a.keymap.Quit})
	}
}

func (a *App) setError(err error) {
	a.err = err
	a.status.SetError(err)
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	var body string
	switch a.currentView {
	case messages.ViewSchema:
		body = a.viewerView.View()
	case messages.ViewHelp:
		body = a.styles.Title.Render("Help") + "\n\n" + a.help.View(a.keymap)
	default:
		body = a.schemasView.View()
	}

	return body + "\n" + a.status.View()
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// Viewer returns the schema viewer.
func (a *App) Viewer() *viewer.View {
	return a.viewerView
}

// SetDimensions sets the terminal dimensions on every view.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true

	bodyHeight := max(1, height-statusHeight)
	a.schemasView.SetDimensions(width, bodyHeight)
	a.viewerView.SetDimensions(width, bodyHeight)
	a.status.SetWidth(width)
	a.help.Width = width
}
