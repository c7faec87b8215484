package io

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	apperrors "github.com/matzehuels/wordhunt/pkg/errors"
	"github.com/matzehuels/wordhunt/pkg/grid"
	"github.com/matzehuels/wordhunt/pkg/word"
)

// WordOptions controls how dictionaries are read.
type WordOptions struct {
	// SkipInvalid drops entries with characters outside A-Z instead of
	// failing the whole read.
	SkipInvalid bool

	// MinLength drops words shorter than this many letters. Zero keeps all.
	MinLength int
}

// ReadWords decodes a dictionary from r, one word per line.
//
// Entries are returned in file order; duplicates are kept. ReadWords does
// not close r.
func ReadWords(r io.Reader, opts WordOptions) ([]word.Word, error) {
	var words []word.Word
	err := scanLines(r, func(n int, line string) error {
		w, err := word.Parse(line)
		if err != nil {
			if opts.SkipInvalid {
				return nil
			}
			return apperrors.Wrap(apperrors.ErrCodeInvalidWord, err, "line %d", n)
		}
		if w.Len() < opts.MinLength {
			return nil
		}
		words = append(words, w)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return words, nil
}

// ImportWords reads the dictionary file at path with [ReadWords].
func ImportWords(path string, opts WordOptions) ([]word.Word, error) {
	f, err := open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	words, err := ReadWords(f, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return words, nil
}

// ReadGrid decodes a board from r, one row per line, and builds its graph.
func ReadGrid(r io.Reader) (*grid.Graph, error) {
	var rows []string
	err := scanLines(r, func(n int, line string) error {
		if _, err := word.Parse(line); err != nil {
			return apperrors.Wrap(apperrors.ErrCodeInvalidGrid, err, "line %d", n)
		}
		rows = append(rows, line)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return grid.Parse(rows)
}

// ImportGrid reads the board file at path with [ReadGrid].
func ImportGrid(path string) (*grid.Graph, error) {
	f, err := open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g, err := ReadGrid(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

func scanLines(r io.Reader, fn func(n int, line string) error) error {
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := fn(n, line); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "read line %d", n+1)
	}
	return nil
}

func open(path string) (*os.File, error) {
	if err := apperrors.ValidatePath(path); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.Wrap(apperrors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return f, nil
}
