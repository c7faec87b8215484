// Package io reads and writes dictionaries and boards.
//
// # Overview
//
// Dictionaries and boards are plain text files so they can be written by
// hand or produced by other tools:
//
//   - A dictionary holds one word per line.
//   - A board holds one row per line, all rows the same length as the
//     number of rows.
//
// In both formats blank lines and lines starting with '#' are ignored and
// surrounding whitespace is trimmed. Letters are read case-insensitively.
//
//	# 4x4 board
//	ABCD
//	EFGH
//	IJKL
//	MNOP
//
// # Errors
//
// Readers stop at the first bad line and report its 1-based line number.
// The returned error wraps the underlying sentinel (for example
// word.ErrOutOfAlphabet or grid.ErrNonSquare), so errors.Is keeps working,
// and carries a [errors.Code] for the CLI.
//
// Dictionaries taken from the system (such as /usr/share/dict/words) often
// contain apostrophes or accented letters. Set [WordOptions.SkipInvalid] to
// drop those entries instead of failing.
//
// # Writing
//
// [WriteWords] and [WriteGrid] produce the same formats the readers accept,
// so a generated board or a filtered word list can be saved and read back.
// Only the input text is written; the trie and the board graph themselves
// are always rebuilt on read.
//
// # Concurrency
//
// All functions are safe to call concurrently. Readers return fresh values
// that the caller owns.
//
// [errors.Code]: github.com/matzehuels/wordhunt/pkg/errors.Code
package io
