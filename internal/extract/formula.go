package extract

import (
	"context"
	"regexp"
	"strings"

	"papervec/internal/contextutil"
	"papervec/internal/pdfdoc"
)

// Formula kinds, recorded as provenance in the vector payload.
const (
	FormulaKindText = "text-eqn"
	FormulaKindOCR  = "ocr-eqn"
)

// Formula is a detected mathematical expression. Page is 0 when the source
// strategy has no page provenance (text scanning works on the concatenated
// full text); payloads render 0 as "N/A".
type Formula struct {
	Kind    string
	Content string
	Page    int
}

// Rule is one named pattern family of the text-scanning strategy. Matches
// shorter than MinLen runes (after trimming) are discarded. Rules are
// evaluated independently and in order.
type Rule struct {
	Name    string
	Pattern *regexp.Regexp
	MinLen  int
}

// DefaultRules returns the ordered pattern families: delimited math blocks,
// simple binary-operator expressions, named function calls, Greek and math
// symbol runs, and sub/superscript tokens.
func DefaultRules() []Rule {
	const minLen = 3
	mk := func(name, pattern string) Rule {
		return Rule{Name: name, Pattern: regexp.MustCompile(pattern), MinLen: minLen}
	}
	return []Rule{
		mk("display-math", `(?s)\$\$(.*?)\$\$`),
		mk("inline-math", `(?s)\$(.*?)\$`),
		mk("display-bracket-math", `(?s)\\\[(.*?)\\\]`),
		mk("inline-paren-math", `(?s)\\\((.*?)\\\)`),
		mk("equation", `\b[A-Za-z]\s*=\s*[A-Za-z0-9+\-*/^()\[\]{}\s,.]+\b`),
		mk("addition", `\b[A-Za-z]\s*\+\s*[A-Za-z0-9+\-*/^()\[\]{}\s,.]+\b`),
		mk("subtraction", `\b[A-Za-z]\s*-\s*[A-Za-z0-9+\-*/^()\[\]{}\s,.]+\b`),
		mk("multiplication", `\b[A-Za-z]\s*\*\s*[A-Za-z0-9+\-*/^()\[\]{}\s,.]+\b`),
		mk("function-call", `(?i)\b(?:sin|cos|tan|log|ln|exp|sqrt|sum|prod|int|lim)\s*\([^)]*\)`),
		mk("greek-run", `[αβγδεζηθικλμνξοπρστυφχψωΑΒΓΔΕΖΗΘΙΚΛΜΝΞΟΠΡΣΤΥΦΧΨΩ]+`),
		mk("math-symbol-run", `[∑∫∂∏√∞≠≤≥±×÷]+`),
		mk("subscript", `[A-Za-z]_[A-Za-z0-9]`),
		mk("superscript", `[A-Za-z]\^[A-Za-z0-9]`),
	}
}

// FormulaExtractor combines a text-pattern strategy with an optional
// OCR-on-embedded-images fallback. Dedup is by exact content string; near
// duplicates from OCR noise are a known limitation and do not merge.
type FormulaExtractor struct {
	Rules           []Rule
	MinFormulaCount int  // OCR kicks in below this many text hits
	OCREnabled      bool // config switch for the fallback
	OCR             OCREngine
}

// NewFormulaExtractor builds an extractor with the default rules.
func NewFormulaExtractor(minCount int, ocrEnabled bool, ocr OCREngine) *FormulaExtractor {
	if minCount <= 0 {
		minCount = 5
	}
	return &FormulaExtractor{
		Rules:           DefaultRules(),
		MinFormulaCount: minCount,
		OCREnabled:      ocrEnabled,
		OCR:             ocr,
	}
}

// Extract runs the text strategy over rawText and, when it finds fewer than
// MinFormulaCount formulas and an OCR engine is usable, OCRs every embedded
// image of the PDF at path. OCR unavailability degrades to text-only with a
// warning; it is never an error.
func (e *FormulaExtractor) Extract(ctx context.Context, rawText, path string) []Formula {
	logger := contextutil.LoggerFromContext(ctx)

	textFormulas := e.extractWithRules(rawText)
	logger.InfoContext(ctx, "text-based formula extraction finished", "count", len(textFormulas))

	if !e.OCREnabled || len(textFormulas) >= e.MinFormulaCount {
		return textFormulas
	}
	if e.OCR == nil || !e.OCR.Available() {
		logger.WarnContext(ctx, "tesseract not available, skipping OCR formula fallback")
		return textFormulas
	}

	logger.InfoContext(ctx, "few text formulas found, falling back to OCR",
		"found", len(textFormulas), "min", e.MinFormulaCount)
	ocrFormulas := e.extractWithOCR(ctx, path)
	merged := MergeFormulas(textFormulas, ocrFormulas)
	logger.InfoContext(ctx, "formula extraction finished after OCR merge", "count", len(merged))
	return merged
}

// extractWithRules applies every rule to text in order, trims matches, drops
// matches below the rule's minimum rune length, and dedups by exact content
// while preserving first-seen order. A match that lies wholly inside a span
// already claimed by an earlier family is part of that formula, not a new
// one; this keeps fragments like the superscript of an already-captured
// equation from surfacing separately.
func (e *FormulaExtractor) extractWithRules(text string) []Formula {
	seen := make(map[string]struct{})
	var claimed [][2]int
	var out []Formula
	for _, rule := range e.Rules {
		for _, m := range rule.Pattern.FindAllStringSubmatchIndex(text, -1) {
			start, end := m[0], m[1]
			if insideClaimed(claimed, start, end) {
				continue
			}
			content := text[start:end]
			if len(m) > 3 && m[2] >= 0 {
				content = text[m[2]:m[3]]
			}
			content = strings.TrimSpace(content)
			if len([]rune(content)) < rule.MinLen {
				continue
			}
			claimed = append(claimed, [2]int{start, end})
			if _, ok := seen[content]; ok {
				continue
			}
			seen[content] = struct{}{}
			out = append(out, Formula{Kind: FormulaKindText, Content: content})
		}
	}
	return out
}

func insideClaimed(claimed [][2]int, start, end int) bool {
	for _, span := range claimed {
		if start >= span[0] && end <= span[1] {
			return true
		}
	}
	return false
}

// extractWithOCR runs the OCR engine over every embedded raster image of
// every page and keeps outputs that look like formulas. Image decode or OCR
// failures are logged and skipped; they never abort the page loop.
func (e *FormulaExtractor) extractWithOCR(ctx context.Context, path string) []Formula {
	logger := contextutil.LoggerFromContext(ctx)

	doc, err := pdfdoc.Open(path)
	if err != nil {
		logger.WarnContext(ctx, "cannot reopen pdf for OCR pass", "error", err)
		return nil
	}
	defer func() {
		_ = doc.Close()
	}()

	var out []Formula
	for page := 1; page <= doc.NumPages(); page++ {
		imgs, errs := doc.PageImages(page)
		for _, imgErr := range errs {
			logger.WarnContext(ctx, "could not process embedded image", "page", page, "error", imgErr)
		}
		for _, img := range imgs {
			text, err := e.OCR.ImageText(ctx, img.Image)
			if err != nil {
				logger.WarnContext(ctx, "OCR failed for image", "page", page, "image", img.Index+1, "error", err)
				continue
			}
			text = strings.TrimSpace(text)
			if text == "" || !looksLikeFormula(text) {
				continue
			}
			out = append(out, Formula{Kind: FormulaKindOCR, Content: text, Page: page})
		}
	}
	return out
}

// MergeFormulas keeps every text-strategy formula and appends OCR formulas
// whose content is not already present. Order: text results first, each
// preserved list in its own order.
func MergeFormulas(text, ocr []Formula) []Formula {
	existing := make(map[string]struct{}, len(text))
	for _, f := range text {
		existing[f.Content] = struct{}{}
	}
	merged := make([]Formula, 0, len(text)+len(ocr))
	merged = append(merged, text...)
	for _, f := range ocr {
		if _, ok := existing[f.Content]; ok {
			continue
		}
		existing[f.Content] = struct{}{}
		merged = append(merged, f)
	}
	return merged
}

const formulaIndicatorRunes = "+=∑∫∂<>()[]{}"

var formulaIndicatorTokens = []string{
	"sin", "cos", "tan", "log", "exp", "sqrt", "sum", "prod", "int", "lim",
}

// looksLikeFormula reports whether OCR output contains at least one
// operator/bracket rune or named function token.
func looksLikeFormula(s string) bool {
	if strings.ContainsAny(s, formulaIndicatorRunes) {
		return true
	}
	for _, tok := range formulaIndicatorTokens {
		if strings.Contains(s, tok) {
			return true
		}
	}
	return false
}
