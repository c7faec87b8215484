package render

import (
	"context"
	"testing"

	apperrors "github.com/matzehuels/wordhunt/pkg/errors"
)

func TestValidateFormat(t *testing.T) {
	for _, f := range Formats {
		if err := ValidateFormat(f); err != nil {
			t.Errorf("ValidateFormat(%q) = %v", f, err)
		}
	}
	err := ValidateFormat("pdf")
	if !apperrors.Is(err, apperrors.ErrCodeInvalidFormat) {
		t.Errorf("ValidateFormat(pdf) = %v, want INVALID_FORMAT", err)
	}
}

func TestRenderDOTPassthrough(t *testing.T) {
	src := "graph G { a -- b; }\n"
	out, err := Render(context.Background(), src, FormatDOT)
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if string(out) != src {
		t.Errorf("Render(dot) = %q, want %q", out, src)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<?xml version="1.0"?><svg width="62pt" height="116pt" viewBox="0.00 0.00 62.00 116.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	want := `<?xml version="1.0"?><svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 62.00 116.00" width="62" height="116"><g/></svg>`
	if got := string(normalizeViewBox(in)); got != want {
		t.Errorf("normalizeViewBox =\n%s\nwant\n%s", got, want)
	}

	plain := []byte(`<svg><g/></svg>`)
	if got := normalizeViewBox(plain); string(got) != string(plain) {
		t.Errorf("normalizeViewBox without viewBox changed input: %s", got)
	}
}
