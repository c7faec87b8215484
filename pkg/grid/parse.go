package grid

import (
	"fmt"
	"math/rand/v2"
	"strings"

	apperrors "github.com/matzehuels/wordhunt/pkg/errors"
	"github.com/matzehuels/wordhunt/pkg/word"
)

// Parse builds a graph from one string per row. Letters are read
// case-insensitively and the board must be square.
func Parse(rows []string) (*Graph, error) {
	letters, err := Letters(rows)
	if err != nil {
		return nil, err
	}
	g, err := Build(letters, len(letters))
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidGrid, err, "build %dx%d grid", len(letters), len(letters))
	}
	return g, nil
}

// Letters encodes rows into a symbol matrix without checking the shape.
func Letters(rows []string) ([][]word.Symbol, error) {
	letters := make([][]word.Symbol, len(rows))
	for r, text := range rows {
		w, err := word.Parse(strings.TrimSpace(text))
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrCodeInvalidGrid, err, "row %d", r)
		}
		letters[r] = w.Symbols()
	}
	return letters, nil
}

// Random returns a dimension × dimension board of uniformly drawn letters.
// A nil r uses the package-level generator.
func Random(dimension int, r *rand.Rand) [][]word.Symbol {
	draw := rand.IntN
	if r != nil {
		draw = r.IntN
	}
	letters := make([][]word.Symbol, dimension)
	for i := range letters {
		letters[i] = make([]word.Symbol, dimension)
		for j := range letters[i] {
			letters[i][j] = word.Symbol(draw(word.AlphabetSize))
		}
	}
	return letters
}

// String renders c as "(row, col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Col)
}
