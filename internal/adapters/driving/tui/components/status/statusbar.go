// Package status provides the status bar component for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/docschema/internal/adapters/driving/tui/styles"
)

// Bar shows a message on the left and keybinding hints on the right.
type Bar struct {
	styles   *styles.Styles
	bindings []key.Binding
	message  string
	err      error
	width    int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &Bar{styles: s, width: 80}
}

// View renders the status bar.
func (b *Bar) View() string {
	left := b.renderLeft()
	right := b.renderRight()

	padding := b.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if padding < 1 {
		padding = 1
	}

	return b.styles.StatusBar.Width(b.width).Render(left + strings.Repeat(" ", padding) + right)
}

func (b *Bar) renderLeft() string {
	if b.err != nil {
		return b.styles.Error.Render(fmt.Sprintf("Error: %v", b.err))
	}
	if b.message == "" {
		return b.styles.Muted.Render("Ready")
	}
	return b.styles.Normal.Render(b.message)
}

func (b *Bar) renderRight() string {
	hints := make([]string, 0, len(b.bindings))
	for _, binding := range b.bindings {
		h := binding.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return b.styles.Muted.Render(strings.Join(hints, " | "))
}

// SetBindings sets the keybinding hints.
func (b *Bar) SetBindings(bindings []key.Binding) {
	b.bindings = bindings
}

// SetMessage sets the message and clears any error.
func (b *Bar) SetMessage(message string) {
	b.message = message
	b.err = nil
}

// Message returns the current message.
func (b *Bar) Message() string {
	return b.message
}

// SetError shows err in place of the message until the next SetMessage.
func (b *Bar) SetError(err error) {
	b.err = err
}

// Err returns the error being shown, if any.
func (b *Bar) Err() error {
	return b.err
}

// SetWidth sets the status bar width.
func (b *Bar) SetWidth(width int) {
	b.width = width
}
