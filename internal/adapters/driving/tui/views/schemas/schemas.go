// Package schemas provides the schema list view for the TUI.
package schemas

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/docschema/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/docschema/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/docschema/internal/core/domain"
)

// View lists every schema kind with its availability.
type View struct {
	styles   *styles.Styles
	dir      string
	schemas  []domain.SchemaInfo
	selected int
	width    int
	height   int
	ready    bool
}

// NewView creates a new schema list view.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles: s,
		width:  80,
		height: 24,
	}
}

// SetSchemas replaces the listed schemas, keeping the selection in range.
func (v *View) SetSchemas(dir string, schemas []domain.SchemaInfo) {
	v.dir = dir
	v.schemas = schemas
	if v.selected >= len(schemas) {
		v.selected = max(0, len(schemas)-1)
	}
}

// Update handles messages for the list view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.selected > 0 {
				v.selected--
			}
		case "down", "j":
			if v.selected < len(v.schemas)-1 {
				v.selected++
			}
		case "home", "g":
			v.selected = 0
		case "end", "G":
			v.selected = max(0, len(v.schemas)-1)
		case "enter":
			if len(v.schemas) == 0 {
				return v, nil
			}
			kind := v.schemas[v.selected].Kind
			return v, func() tea.Msg {
				return messages.SchemaSelected{Kind: kind}
			}
		}
	}

	return v, nil
}

// View renders the list.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Document Schemas"))
	b.WriteString("\n")
	if v.dir != "" {
		b.WriteString(v.styles.Muted.Render(v.dir))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if len(v.schemas) == 0 {
		b.WriteString(v.styles.Muted.Render("Loading schemas..."))
		return b.String()
	}

	for i, info := range v.schemas {
		cursor := "  "
		name := v.styles.Normal.Render(fmt.Sprintf("%-14s", info.Kind))
		if i == v.selected {
			cursor = "> "
			name = v.styles.Selected.Render(fmt.Sprintf("%-14s", info.Kind))
		}

		mark := v.styles.Available.Render("✓")
		if !info.Available {
			mark = v.styles.Missing.Render("✗")
		}

		b.WriteString(cursor + mark + " " + name + " " + v.styles.Muted.Render(info.Description))
		b.WriteString("\n")
	}

	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Selected returns the currently selected index.
func (v *View) Selected() int {
	return v.selected
}

// SelectedSchema returns the highlighted schema, if any.
func (v *View) SelectedSchema() (domain.SchemaInfo, bool) {
	if len(v.schemas) == 0 {
		return domain.SchemaInfo{}, false
	}
	return v.schemas[v.selected], true
}
