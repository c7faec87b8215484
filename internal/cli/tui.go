package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/wordhunt/pkg/grid"
	"github.com/matzehuels/wordhunt/pkg/trie"
	"github.com/matzehuels/wordhunt/pkg/word"
)

var (
	inspectCursorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(colorCyan)
	inspectNeighborStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	inspectWordStyle     = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)
	inspectDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// InspectModel - Interactive tile inspector
// =============================================================================

// InspectModel is the bubbletea model behind "grid inspect". It moves a
// cursor over the board and shows the selected tile's neighbors by letter.
// When a dictionary is loaded it also marks the neighbors whose letter
// extends a dictionary prefix starting at the selected tile.
type InspectModel struct {
	Graph  *grid.Graph
	Trie   *trie.Trie // optional
	Cursor grid.Coord
}

// NewInspectModel creates an inspector positioned on the top-left tile.
func NewInspectModel(g *grid.Graph, t *trie.Trie) InspectModel {
	return InspectModel{Graph: g, Trie: t}
}

// Selected returns the id of the tile under the cursor.
func (m InspectModel) Selected() int {
	id, _ := m.Graph.At(m.Cursor)
	return id
}

func (m InspectModel) Init() tea.Cmd {
	return nil
}

func (m InspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	last := m.Graph.Dimension() - 1
	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.Cursor.Row > 0 {
			m.Cursor.Row--
		}
	case "down", "j":
		if m.Cursor.Row < last {
			m.Cursor.Row++
		}
	case "left", "h":
		if m.Cursor.Col > 0 {
			m.Cursor.Col--
		}
	case "right", "l":
		if m.Cursor.Col < last {
			m.Cursor.Col++
		}
	}
	return m, nil
}

// continuations returns the neighbor letters that extend a dictionary
// prefix made of the selected tile's letter.
func (m InspectModel) continuations() word.Set {
	if m.Trie == nil {
		return 0
	}
	id := m.Selected()
	node, _ := m.Graph.Node(id)
	root, ok := m.Trie.Root(node.Symbol)
	if !ok {
		return 0
	}
	return m.Trie.NextSymbols(root).Intersect(m.Graph.NeighborSymbols(id))
}

func (m InspectModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Inspect Board"))
	b.WriteString("\n")
	b.WriteString(inspectDimStyle.Render("arrows/hjkl move  q quit"))
	b.WriteString("\n\n")

	selected := m.Selected()
	around := make(map[int]bool)
	for _, id := range m.Graph.AllNeighbors(selected) {
		around[id] = true
	}
	extends := m.continuations()

	b.WriteString(boardTable(m.Graph, func(id int) (string, lipgloss.Style) {
		node, _ := m.Graph.Node(id)
		switch {
		case id == selected:
			return node.Symbol.String(), inspectCursorStyle
		case around[id] && extends.Contains(node.Symbol):
			return node.Symbol.String(), inspectWordStyle
		case around[id]:
			return node.Symbol.String(), inspectNeighborStyle
		}
		return node.Symbol.String(), inspectDimStyle
	}))
	b.WriteString("\n")

	node, _ := m.Graph.Node(selected)
	b.WriteString(fmt.Sprintf("%s at %s, tile %d, %d neighbors\n",
		StyleValue.Bold(true).Render(node.Symbol.String()), node.Coord, node.ID, m.Graph.NeighborCount(selected)))
	for _, line := range neighborLines(m.Graph, selected) {
		b.WriteString("  " + line + "\n")
	}
	if m.Trie != nil {
		if extends.IsEmpty() {
			b.WriteString(inspectDimStyle.Render("  no dictionary word continues from here"))
		} else {
			b.WriteString(inspectWordStyle.Render("  words continue with " + extends.String()))
		}
		b.WriteString("\n")
	}

	return b.String()
}
