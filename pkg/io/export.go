package io

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/wordhunt/pkg/grid"
	"github.com/matzehuels/wordhunt/pkg/word"
)

// WriteWords writes one lowercase word per line.
func WriteWords(w io.Writer, words []word.Word) error {
	bw := bufio.NewWriter(w)
	for _, wd := range words {
		if _, err := bw.WriteString(wd.Lower()); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ExportWords writes words to the file at path with [WriteWords].
func ExportWords(path string, words []word.Word) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteWords(f, words); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// WriteGrid writes the board one uppercase row per line, the format read
// by [ReadGrid].
func WriteGrid(w io.Writer, g *grid.Graph) error {
	for _, row := range g.Rows() {
		if _, err := fmt.Fprintln(w, row); err != nil {
			return err
		}
	}
	return nil
}

// ExportGrid writes the board rows of g to the file at path with [WriteGrid].
func ExportGrid(path string, g *grid.Graph) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteGrid(f, g); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
