package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/wordhunt/pkg/grid"
	"github.com/matzehuels/wordhunt/pkg/trie"
	"github.com/matzehuels/wordhunt/pkg/word"
)

func sampleBoard(t *testing.T) *grid.Graph {
	t.Helper()
	g, err := grid.Parse([]string{"CAT", "XOR", "DEW"})
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func press(m InspectModel, keys ...string) InspectModel {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "left":
			msg = tea.KeyMsg{Type: tea.KeyLeft}
		case "right":
			msg = tea.KeyMsg{Type: tea.KeyRight}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(InspectModel)
	}
	return m
}

func TestInspectModelMovesCursor(t *testing.T) {
	m := NewInspectModel(sampleBoard(t), nil)

	tests := []struct {
		name string
		keys []string
		want grid.Coord
	}{
		{"start", nil, grid.Coord{Row: 0, Col: 0}},
		{"arrows", []string{"down", "right"}, grid.Coord{Row: 1, Col: 1}},
		{"vim keys", []string{"j", "j", "l"}, grid.Coord{Row: 2, Col: 1}},
		{"clamped at top left", []string{"up", "left", "k", "h"}, grid.Coord{Row: 0, Col: 0}},
		{"clamped at bottom right", []string{"down", "down", "down", "right", "right", "right"}, grid.Coord{Row: 2, Col: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := press(m, tt.keys...)
			if got.Cursor != tt.want {
				t.Errorf("Cursor = %v, want %v", got.Cursor, tt.want)
			}
		})
	}
}

func TestInspectModelQuit(t *testing.T) {
	m := NewInspectModel(sampleBoard(t), nil)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

func TestInspectModelContinuations(t *testing.T) {
	tr, err := trie.FromStrings([]string{"cat", "cow", "cry", "dew"})
	if err != nil {
		t.Fatal(err)
	}
	m := NewInspectModel(sampleBoard(t), tr)

	// C touches A, X and O; the dictionary continues C with A, O and R.
	want := word.SetOf(word.MustSymbol('A'), word.MustSymbol('O'))
	if got := m.continuations(); got != want {
		t.Errorf("continuations() at C = %v, want %v", got, want)
	}

	// X starts no word.
	m = press(m, "down")
	if got := m.continuations(); !got.IsEmpty() {
		t.Errorf("continuations() at X = %v, want empty", got)
	}

	view := press(m, "up").View()
	if !strings.Contains(view, "words continue with [A O]") {
		t.Errorf("View() should list continuations:\n%s", view)
	}
}

func TestInspectModelView(t *testing.T) {
	m := press(NewInspectModel(sampleBoard(t), nil), "down", "right")
	if m.Selected() != 4 {
		t.Fatalf("Selected() = %d, want 4", m.Selected())
	}

	view := m.View()
	for _, want := range []string{"Inspect Board", "O at (1, 1), tile 4, 8 neighbors", "W → (2, 2)"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q:\n%s", want, view)
		}
	}
	if strings.Contains(view, "words continue") {
		t.Error("View() without a dictionary should not mention continuations")
	}
}
