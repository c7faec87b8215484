package errors

import (
	"strings"
	"testing"
)

func TestValidateWordText(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"lowercase", "foo", false},
		{"uppercase", "FOOOZ", false},
		{"mixed case", "BaRz", false},
		{"single letter", "a", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", MaxWordLength+1), true},
		{"digit", "b4r", true},
		{"space", "foo bar", true},
		{"hyphen", "x-ray", true},
		{"accented", "café", true},
		{"null byte", "foo\x00", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateWordText(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateWordText(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidWord) {
				t.Errorf("ValidateWordText(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidWord)
			}
		})
	}
}

func TestValidateDimension(t *testing.T) {
	tests := []struct {
		n       int
		wantErr bool
	}{
		{1, false},
		{4, false},
		{MaxDimension, false},
		{0, true},
		{-3, true},
		{MaxDimension + 1, true},
	}

	for _, tt := range tests {
		err := ValidateDimension(tt.n)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateDimension(%d) error = %v, wantErr %v", tt.n, err, tt.wantErr)
		}
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"relative", "words.txt", false},
		{"absolute", "/usr/share/dict/words", false},
		{"nested", "testdata/grids/standard.txt", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 5000), true},
		{"null byte", "words\x00.txt", true},
		{"newline", "words\n.txt", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
