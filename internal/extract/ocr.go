package extract

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"os/exec"

	"github.com/otiai10/gosseract/v2"
)

// OCREngine recognizes text in a raster image. Implementations must treat
// Available as cheap; it is consulted once per paper before the fallback
// pass runs.
type OCREngine interface {
	Available() bool
	ImageText(ctx context.Context, img image.Image) (string, error)
}

// TesseractEngine is the production OCREngine backed by gosseract.
type TesseractEngine struct{}

// NewTesseractEngine returns the Tesseract-backed engine.
func NewTesseractEngine() *TesseractEngine { return &TesseractEngine{} }

// Available reports whether a tesseract installation can be found on the host.
func (*TesseractEngine) Available() bool {
	_, err := exec.LookPath("tesseract")
	return err == nil
}

// ImageText runs OCR over img and returns the recognized text.
func (*TesseractEngine) ImageText(ctx context.Context, img image.Image) (string, error) {
	_ = ctx // gosseract has no context support; calls are short-lived

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("encode image for OCR: %w", err)
	}

	client := gosseract.NewClient()
	defer func() {
		_ = client.Close()
	}()
	if err := client.SetImageFromBytes(buf.Bytes()); err != nil {
		return "", fmt.Errorf("load image into tesseract: %w", err)
	}
	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("tesseract recognition: %w", err)
	}
	return text, nil
}
