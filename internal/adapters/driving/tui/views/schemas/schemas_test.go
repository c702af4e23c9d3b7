package schemas

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docschema/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/docschema/internal/core/domain"
)

func testSchemas() []domain.SchemaInfo {
	return []domain.SchemaInfo{
		{Kind: domain.SchemaKindReadme, Available: true, Description: "Schema for readme documentation"},
		{Kind: domain.SchemaKindAPI, Available: false, Description: domain.NotAvailableDescription},
		{Kind: domain.SchemaKindTechStack, Available: true, Description: "Schema for tech stack documentation"},
	}
}

func TestNewView_NilStyles(t *testing.T) {
	view := NewView(nil)

	require.NotNil(t, view)
	assert.NotNil(t, view.styles)
	assert.Equal(t, 0, view.Selected())
}

func TestView_NotReady(t *testing.T) {
	view := NewView(nil)

	assert.Equal(t, "Initialising...", view.View())
}

func TestView_Navigate(t *testing.T) {
	view := NewView(nil)
	view.SetSchemas("/schemas", testSchemas())

	view.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, view.Selected())

	view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	assert.Equal(t, 2, view.Selected())

	// Can't go past the last item
	view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	assert.Equal(t, 2, view.Selected())

	view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	assert.Equal(t, 1, view.Selected())

	view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'g'}})
	assert.Equal(t, 0, view.Selected())

	view.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, view.Selected())

	view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'G'}})
	assert.Equal(t, 2, view.Selected())
}

func TestView_EnterSelectsSchema(t *testing.T) {
	view := NewView(nil)
	view.SetSchemas("/schemas", testSchemas())
	view.Update(tea.KeyMsg{Type: tea.KeyDown})

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	assert.Equal(t, messages.SchemaSelected{Kind: domain.SchemaKindAPI}, cmd())
}

func TestView_EnterWithoutSchemas(t *testing.T) {
	view := NewView(nil)

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	_, ok := view.SelectedSchema()
	assert.False(t, ok)
}

func TestView_SetSchemas_ClampsSelection(t *testing.T) {
	view := NewView(nil)
	view.SetSchemas("", testSchemas())
	view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'G'}})

	view.SetSchemas("", testSchemas()[:1])

	info, ok := view.SelectedSchema()
	require.True(t, ok)
	assert.Equal(t, domain.SchemaKindReadme, info.Kind)
}

func TestView_Render(t *testing.T) {
	view := NewView(nil)
	view.SetDimensions(100, 30)
	view.SetSchemas("/schemas", testSchemas())

	out := view.View()

	assert.Contains(t, out, "Document Schemas")
	assert.Contains(t, out, "/schemas")
	assert.Contains(t, out, "> ")
	assert.Contains(t, out, "✓")
	assert.Contains(t, out, "✗")
	assert.Contains(t, out, "tech_stack")
	assert.Contains(t, out, "Not available")
}

func TestView_RenderLoading(t *testing.T) {
	view := NewView(nil)
	view.SetDimensions(80, 24)

	assert.Contains(t, view.View(), "Loading schemas...")
}
