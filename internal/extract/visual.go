package extract

import (
	"context"
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	"papervec/internal/artifacts"
	"papervec/internal/contextutil"
	"papervec/internal/pdfdoc"
)

// CaptionPlaceholder marks visuals whose caption has not been associated;
// a captioning strategy can be substituted later.
const CaptionPlaceholder = "Caption extraction not yet implemented."

// Visual is one embedded raster image saved to disk with its provenance.
type Visual struct {
	Type    string `json:"type"` // always "image"
	Path    string `json:"path"`
	Page    int    `json:"page"`
	Caption string `json:"caption"`
}

// VisualExtractor saves every decodable embedded raster image of a PDF as a
// PNG under OutDir.
type VisualExtractor struct {
	OutDir string
}

// Extract decodes and re-encodes each embedded image to
// OutDir/page{N}_img{M}.png. A failure for one image is logged and skipped;
// only failing to open the PDF or create OutDir aborts the paper.
func (e *VisualExtractor) Extract(ctx context.Context, path string) ([]Visual, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if err := artifacts.EnsureDir(e.OutDir); err != nil {
		return nil, err
	}
	doc, err := pdfdoc.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = doc.Close()
	}()

	visuals := make([]Visual, 0)
	for page := 1; page <= doc.NumPages(); page++ {
		imgs, errs := doc.PageImages(page)
		for _, imgErr := range errs {
			logger.WarnContext(ctx, "skipping an image", "page", page, "error", imgErr)
		}
		for _, img := range imgs {
			name := fmt.Sprintf("page%d_img%d.png", page, img.Index+1)
			outPath := filepath.Join(e.OutDir, name)
			if err := savePNG(outPath, img); err != nil {
				logger.WarnContext(ctx, "skipping an image", "page", page, "image", img.Index+1, "error", err)
				continue
			}
			visuals = append(visuals, Visual{
				Type:    "image",
				Path:    outPath,
				Page:    page,
				Caption: CaptionPlaceholder,
			})
		}
	}
	return visuals, nil
}

// WriteMetadata persists the visuals list as images_metadata.json in dir.
func WriteMetadata(dir string, visuals []Visual) error {
	return artifacts.WriteJSONAtomic(filepath.Join(dir, "images_metadata.json"), visuals)
}

func savePNG(path string, img pdfdoc.PageImage) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img.Image); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
