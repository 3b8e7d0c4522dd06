package extract

import (
	"context"
	"image"
	"reflect"
	"testing"
)

func textFormulaContents(formulas []Formula) []string {
	out := make([]string, 0, len(formulas))
	for _, f := range formulas {
		out = append(out, f.Content)
	}
	return out
}

func TestExtractWithRules_InlineMath(t *testing.T) {
	e := NewFormulaExtractor(5, false, nil)

	formulas := e.extractWithRules("It is known that $E = mc^2$ holds.")
	if len(formulas) != 1 {
		t.Fatalf("got %d formulas %v, want 1", len(formulas), formulas)
	}
	got := formulas[0]
	if got.Kind != FormulaKindText {
		t.Errorf("Kind = %q, want %q", got.Kind, FormulaKindText)
	}
	if got.Content != "E = mc^2" {
		t.Errorf("Content = %q, want %q", got.Content, "E = mc^2")
	}
	if got.Page != 0 {
		t.Errorf("Page = %d, want 0 (no provenance)", got.Page)
	}
}

func TestExtractWithRules_PatternFamilies(t *testing.T) {
	e := NewFormulaExtractor(5, false, nil)

	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "display math claims the whole block",
			text: `before $$\sum_i x_i$$ after`,
			want: []string{`\sum_i x_i`},
		},
		{
			name: "bracket display math",
			text: `a sentence \[a + b\] here`,
			want: []string{"a + b"},
		},
		{
			name: "function call",
			text: "we take log(n) steps",
			want: []string{"log(n)"},
		},
		{
			name: "greek run",
			text: "parameters αβγ tune the model",
			want: []string{"αβγ"},
		},
		{
			name: "single greek letters are too short",
			text: "α and β alone",
			want: nil,
		},
		{
			name: "subscript token",
			text: "value x_i here",
			want: []string{"x_i"},
		},
		{
			name: "superscript token",
			text: "growth n^2 here",
			want: []string{"n^2"},
		},
		{
			name: "fragment of a captured equation is suppressed",
			text: "$E = mc^2$",
			want: []string{"E = mc^2"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := textFormulaContents(e.extractWithRules(tt.text))
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("extractWithRules(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestExtractWithRules_DedupPreservesFirstSeenOrder(t *testing.T) {
	e := NewFormulaExtractor(5, false, nil)

	got := textFormulaContents(e.extractWithRules("$y = a + b$ then log(n) and log(n) again"))
	want := []string{"y = a + b", "log(n)"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("contents = %v, want %v", got, want)
	}
}

func TestMergeFormulas(t *testing.T) {
	text := []Formula{
		{Kind: FormulaKindText, Content: "E = mc^2"},
		{Kind: FormulaKindText, Content: "a + b"},
	}
	ocr := []Formula{
		{Kind: FormulaKindOCR, Content: "a + b", Page: 2},     // duplicate, dropped
		{Kind: FormulaKindOCR, Content: "x^2 + y^2", Page: 3}, // new, appended
		{Kind: FormulaKindOCR, Content: "x^2 + y^2", Page: 4}, // dup within OCR, dropped
	}

	merged := MergeFormulas(text, ocr)
	want := []Formula{
		{Kind: FormulaKindText, Content: "E = mc^2"},
		{Kind: FormulaKindText, Content: "a + b"},
		{Kind: FormulaKindOCR, Content: "x^2 + y^2", Page: 3},
	}
	if !reflect.DeepEqual(merged, want) {
		t.Errorf("MergeFormulas() = %v, want %v", merged, want)
	}
}

func TestMergeFormulas_TextStrategyFirst(t *testing.T) {
	text := []Formula{{Kind: FormulaKindText, Content: "b + c"}}
	ocr := []Formula{{Kind: FormulaKindOCR, Content: "a + b", Page: 1}}
	merged := MergeFormulas(text, ocr)
	if merged[0].Content != "b + c" || merged[1].Content != "a + b" {
		t.Errorf("merge order = %v, want text-strategy results first", merged)
	}
}

func TestExtract_TextOnlyWhenEnoughFormulas(t *testing.T) {
	// MinFormulaCount of 1 is satisfied by the text strategy, so the OCR
	// engine must never be consulted even though it is configured.
	e := NewFormulaExtractor(1, true, &explodingOCR{t: t})
	got := e.Extract(context.Background(), "$E = mc^2$", "unused.pdf")
	if len(got) != 1 || got[0].Content != "E = mc^2" {
		t.Errorf("Extract() = %v, want the single text formula", got)
	}
}

func TestExtract_OCRDisabled(t *testing.T) {
	e := NewFormulaExtractor(5, false, &explodingOCR{t: t})
	got := e.Extract(context.Background(), "$E = mc^2$ and nothing else", "unused.pdf")
	if len(got) != 1 {
		t.Fatalf("Extract() = %v, want exactly one formula", got)
	}
	if got[0].Kind != FormulaKindText || got[0].Content != "E = mc^2" {
		t.Errorf("Extract()[0] = %+v, want text-eqn E = mc^2", got[0])
	}
}

func TestExtract_OCRUnavailableDegrades(t *testing.T) {
	e := NewFormulaExtractor(5, true, unavailableOCR{})
	got := e.Extract(context.Background(), "$E = mc^2$", "does-not-exist.pdf")
	if len(got) != 1 || got[0].Content != "E = mc^2" {
		t.Errorf("Extract() = %v, want text-only degradation", got)
	}
}

func TestLooksLikeFormula(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"x + y", true},
		{"∑ of terms", true},
		{"f(x)", true},
		{"contains sqrt inside", true},
		{"just prose words", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := looksLikeFormula(tt.in); got != tt.want {
			t.Errorf("looksLikeFormula(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

// explodingOCR fails the test if any of its methods are called.
type explodingOCR struct{ t *testing.T }

func (e *explodingOCR) Available() bool {
	e.t.Fatal("OCR engine must not be consulted")
	return false
}

func (e *explodingOCR) ImageText(context.Context, image.Image) (string, error) {
	e.t.Fatal("OCR engine must not be consulted")
	return "", nil
}

type unavailableOCR struct{}

func (unavailableOCR) Available() bool { return false }
func (unavailableOCR) ImageText(context.Context, image.Image) (string, error) {
	return "", nil
}
