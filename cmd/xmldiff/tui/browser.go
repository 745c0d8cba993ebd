package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dimelords/xmldiff/pkg/xmldiff"
)

// Browser is a read-only list-and-detail model over a token stream.
type Browser struct {
	tokens   []xmldiff.Token
	cursor   int
	expanded bool
	quitting bool
}

// NewBrowser returns a Browser ready to run with tea.NewProgram.
func NewBrowser(tokens []xmldiff.Token) *Browser {
	return &Browser{tokens: tokens}
}

func (b *Browser) Init() tea.Cmd {
	return nil
}

func (b *Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return b, nil
	}

	switch keyMsg.String() {
	case "ctrl+c", "q":
		b.quitting = true
		return b, tea.Quit

	case "up", "k":
		if b.cursor > 0 {
			b.cursor--
		}

	case "down", "j":
		if b.cursor < len(b.tokens)-1 {
			b.cursor++
		}

	case "enter", " ":
		b.expanded = !b.expanded
	}

	return b, nil
}

func (b *Browser) View() string {
	if b.quitting {
		return ""
	}

	var s strings.Builder
	s.WriteString(titleStyle.Render(fmt.Sprintf("xmldiff — %d tokens", len(b.tokens))))
	s.WriteString("\n\n")

	if len(b.tokens) == 0 {
		s.WriteString(unselectedStyle.Render("(no differences)"))
		s.WriteString("\n")
		return s.String()
	}

	for i, tok := range b.tokens {
		line := fmt.Sprintf("%s %s %s", tok.EditType, tok.NodeType, tok.XPath)
		style := unselectedStyle
		if i == b.cursor {
			style = selectedStyle
			line = "> " + line
		} else {
			line = "  " + line
		}
		s.WriteString(editTypeStyle(string(tok.EditType)).Inherit(style).Render(line))
		s.WriteString("\n")
	}

	if b.expanded {
		s.WriteString(detailStyle.Render(b.renderDetail(b.tokens[b.cursor])))
		s.WriteString("\n")
	}

	s.WriteString(helpStyle.Render("j/k, up/down: move • enter: toggle detail • q: quit"))

	return s.String()
}

func (b *Browser) renderDetail(tok xmldiff.Token) string {
	var lines []string
	lines = append(lines, fmt.Sprintf("xpath: %s", tok.XPath))
	if tok.Name != "" {
		lines = append(lines, fmt.Sprintf("name:  %s", tok.Name))
	}
	if tok.OldValue != nil {
		lines = append(lines, fmt.Sprintf("old:   %s", *tok.OldValue))
	}
	if tok.NewValue != nil {
		lines = append(lines, fmt.Sprintf("new:   %s", *tok.NewValue))
	}
	return strings.Join(lines, "\n")
}
