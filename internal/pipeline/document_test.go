package pipeline

import "testing"

func TestDocumentPayload(t *testing.T) {
	meta := PaperMeta{Title: "A Paper", Authors: "Doe et al.", PublicationYear: "2024"}

	t.Run("text chunk", func(t *testing.T) {
		doc := Document{Kind: KindText, Text: "chunk body", ChunkIndex: 3, Page: 2}
		payload := doc.Payload(meta)
		if payload["type"] != "text" {
			t.Errorf("type = %v", payload["type"])
		}
		if payload["content"] != "chunk body" {
			t.Errorf("content = %v", payload["content"])
		}
		if payload["chunk_index"] != 3 || payload["page"] != 2 {
			t.Errorf("provenance = %v/%v", payload["chunk_index"], payload["page"])
		}
		if payload["paper_title"] != "A Paper" || payload["authors"] != "Doe et al." || payload["publication_year"] != "2024" {
			t.Errorf("paper metadata missing from payload: %v", payload)
		}
	})

	t.Run("formula with page", func(t *testing.T) {
		doc := Document{Kind: KindFormula, Text: "E = mc^2", FormulaKind: "ocr-eqn", Page: 4}
		payload := doc.Payload(meta)
		if payload["type"] != "formula" || payload["formula_type"] != "ocr-eqn" {
			t.Errorf("formula fields = %v", payload)
		}
		if payload["page"] != 4 {
			t.Errorf("page = %v, want 4", payload["page"])
		}
	})

	t.Run("formula without provenance", func(t *testing.T) {
		doc := Document{Kind: KindFormula, Text: "a + b", FormulaKind: "text-eqn"}
		payload := doc.Payload(meta)
		if payload["page"] != "N/A" {
			t.Errorf("page = %v, want N/A for unknown provenance", payload["page"])
		}
	})

	t.Run("image", func(t *testing.T) {
		doc := Document{Kind: KindImage, ImagePath: "results/A_Paper/visuals/page1_img1.png", Page: 1, Caption: "Caption extraction not yet implemented."}
		payload := doc.Payload(meta)
		if payload["type"] != "image" {
			t.Errorf("type = %v", payload["type"])
		}
		if payload["content"] != doc.ImagePath {
			t.Errorf("content = %v, want image path", payload["content"])
		}
		if payload["caption"] != doc.Caption || payload["page"] != 1 {
			t.Errorf("image fields = %v", payload)
		}
	})
}
