// Package pipeline orchestrates one ingestion run: it walks the pending
// papers of the tracking sheet, extracts and embeds their content and
// upserts the result into the vector store.
package pipeline

import "fmt"

// Kind discriminates the document variants. Every switch over Kind must
// handle all three.
type Kind int

const (
	KindText Kind = iota
	KindFormula
	KindImage
)

// PaperMeta is the sheet metadata attached to every point of a paper.
type PaperMeta struct {
	Title           string
	Authors         string
	PublicationYear string
}

// Document is one unit to embed and upsert. Which fields are meaningful
// depends on Kind: text chunks carry Text, ChunkIndex and Page; formulas
// carry Text, FormulaKind and Page (0 when unknown); images carry ImagePath,
// Page and Caption.
type Document struct {
	Kind Kind

	Text       string
	ChunkIndex int
	Page       int

	FormulaKind string

	ImagePath string
	Caption   string
}

// Payload builds the vector store payload for the document. The paper
// metadata is merged into every payload so points remain self-describing.
func (d Document) Payload(meta PaperMeta) map[string]any {
	payload := map[string]any{
		"paper_title":      meta.Title,
		"authors":          meta.Authors,
		"publication_year": meta.PublicationYear,
	}
	switch d.Kind {
	case KindText:
		payload["type"] = "text"
		payload["content"] = d.Text
		payload["chunk_index"] = d.ChunkIndex
		payload["page"] = d.Page
	case KindFormula:
		payload["type"] = "formula"
		payload["content"] = d.Text
		payload["formula_type"] = d.FormulaKind
		if d.Page > 0 {
			payload["page"] = d.Page
		} else {
			payload["page"] = "N/A"
		}
	case KindImage:
		payload["type"] = "image"
		payload["content"] = d.ImagePath
		payload["page"] = d.Page
		payload["caption"] = d.Caption
	default:
		panic(fmt.Sprintf("unhandled document kind %d", d.Kind))
	}
	return payload
}
