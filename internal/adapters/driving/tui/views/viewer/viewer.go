// Package viewer provides the scrolling schema viewer for the TUI.
package viewer

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/docschema/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/docschema/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/docschema/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/docschema/internal/core/domain"
)

// Mode selects what the viewer shows.
type Mode int

const (
	// ModeTemplate shows the skeleton derived from the schema.
	ModeTemplate Mode = iota
	// ModeRaw shows the schema text itself.
	ModeRaw
)

// String returns the label shown in the header.
func (m Mode) String() string {
	if m == ModeRaw {
		return "raw schema"
	}
	return "derived template"
}

// Rows taken by the header and the viewport frame.
const (
	headerHeight = 2
	frameHeight  = 2
	frameWidth   = 4
)

// View shows one schema in a scrollable viewport.
type View struct {
	styles   *styles.Styles
	keymap   *keymap.KeyMap
	viewport viewport.Model

	kind     domain.SchemaKind
	raw      string
	template string
	mode     Mode

	width  int
	height int
	ready  bool
}

// NewView creates a new schema viewer.
func NewView(s *styles.Styles, km *keymap.KeyMap) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	return &View{
		styles:   s,
		keymap:   km,
		viewport: viewport.New(80-frameWidth, 24-headerHeight-frameHeight),
		width:    80,
		height:   24,
	}
}

// SetSchema loads a schema into the viewer, starting on the derived template.
func (v *View) SetSchema(kind domain.SchemaKind, raw, template string) {
	v.kind = kind
	v.raw = raw
	v.template = template
	v.mode = ModeTemplate
	v.refresh()
}

// Toggle switches between the derived template and the raw schema.
func (v *View) Toggle() {
	if v.mode == ModeTemplate {
		v.mode = ModeRaw
	} else {
		v.mode = ModeTemplate
	}
	v.refresh()
}

func (v *View) refresh() {
	v.viewport.SetContent(v.Content())
	v.viewport.GotoTop()
}

// Update handles messages for the viewer.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, v.keymap.Toggle):
			v.Toggle()
			return v, nil
		case key.Matches(msg, v.keymap.Back):
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewSchemas}
			}
		}
	}

	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return v, cmd
}

// View renders the header and viewport.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		v.styles.Title.Render(v.kind.String()+" schema"),
		"  ",
		v.styles.Subtitle.Render(v.mode.String()),
		"  ",
		v.styles.Muted.Render(fmt.Sprintf("%3.0f%%", v.viewport.ScrollPercent()*100)),
	)

	return header + "\n\n" + v.styles.Viewport.Render(v.viewport.View())
}

// SetDimensions sizes the viewport to fit the view.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.viewport.Width = max(1, width-frameWidth)
	v.viewport.Height = max(1, height-headerHeight-frameHeight)
	v.ready = true
}

// Kind returns the schema being shown.
func (v *View) Kind() domain.SchemaKind {
	return v.kind
}

// Mode returns what the viewer is showing.
func (v *View) Mode() Mode {
	return v.mode
}

// Content returns the text for the current mode.
func (v *View) Content() string {
	if v.mode == ModeRaw {
		return v.raw
	}
	return v.template
}

// AtTop reports whether the viewport is scrolled to the top.
func (v *View) AtTop() bool {
	return v.viewport.AtTop()
}
