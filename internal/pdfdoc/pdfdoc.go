// Package pdfdoc is a thin, scoped access layer over github.com/ledongthuc/pdf.
// The underlying library panics on malformed structures, so every call into
// it runs behind a recover guard and surfaces a plain error instead.
package pdfdoc

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"io"
	"os"

	"github.com/ledongthuc/pdf"
)

// ErrNotPDF is returned by Open when the file does not start with a PDF header.
var ErrNotPDF = errors.New("not a PDF file")

// Document is an open PDF. The file handle is held until Close.
type Document struct {
	path string
	file *os.File
	r    *pdf.Reader
}

// PageImage is one embedded raster image on a page, decoded to pixels.
type PageImage struct {
	Index int // 0-based position among the page's image XObjects
	Image image.Image
}

// Open opens the PDF at path. The caller must Close the returned document.
func Open(path string) (*Document, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("pdf file not found at %s: %w", path, err)
	}
	header := make([]byte, 5)
	hf, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf %s: %w", path, err)
	}
	_, readErr := io.ReadFull(hf, header)
	_ = hf.Close()
	if readErr != nil || !bytes.Equal(header, []byte("%PDF-")) {
		return nil, fmt.Errorf("%s: %w", path, ErrNotPDF)
	}

	var (
		f *os.File
		r *pdf.Reader
	)
	err = safely(func() error {
		var openErr error
		f, r, openErr = pdf.Open(path)
		return openErr
	})
	if err != nil {
		return nil, fmt.Errorf("open pdf %s: %w", path, err)
	}
	return &Document{path: path, file: f, r: r}, nil
}

// Close releases the underlying file handle.
func (d *Document) Close() error {
	return d.file.Close()
}

// Path returns the path the document was opened from.
func (d *Document) Path() string { return d.path }

// NumPages returns the page count.
func (d *Document) NumPages() int { return d.r.NumPage() }

// PageText extracts plain text from page n (1-based).
func (d *Document) PageText(n int) (string, error) {
	var text string
	err := safely(func() error {
		page := d.r.Page(n)
		if page.V.IsNull() {
			return nil
		}
		var extractErr error
		text, extractErr = page.GetPlainText(nil)
		return extractErr
	})
	if err != nil {
		return "", fmt.Errorf("extract text from page %d: %w", n, err)
	}
	return text, nil
}

// PageImages decodes the embedded raster image XObjects on page n (1-based).
// Images that cannot be decoded are reported in errs and skipped; errs never
// aborts the remaining images of the page.
func (d *Document) PageImages(n int) (imgs []PageImage, errs []error) {
	var names []string
	var xobjs pdf.Value
	if err := safely(func() error {
		page := d.r.Page(n)
		if page.V.IsNull() {
			return nil
		}
		xobjs = page.Resources().Key("XObject")
		if xobjs.Kind() == pdf.Dict {
			names = xobjs.Keys()
		}
		return nil
	}); err != nil {
		return nil, []error{fmt.Errorf("page %d resources: %w", n, err)}
	}

	idx := 0
	for _, name := range names {
		name := name
		var img image.Image
		err := safely(func() error {
			obj := xobjs.Key(name)
			if obj.Kind() != pdf.Stream || obj.Key("Subtype").Name() != "Image" {
				return errNotImage
			}
			var decodeErr error
			img, decodeErr = decodeImage(obj)
			return decodeErr
		})
		if errors.Is(err, errNotImage) {
			continue
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("image %d (%s) on page %d: %w", idx+1, name, n, err))
			idx++
			continue
		}
		imgs = append(imgs, PageImage{Index: idx, Image: img})
		idx++
	}
	return imgs, errs
}

var errNotImage = errors.New("xobject is not an image")

// decodeImage reconstructs pixels from an image XObject stream. Supported:
// 8-bit gray and RGB samples behind stream filters the library can undo, and
// raw JPEG (DCTDecode) payloads. Anything else is an error the caller skips.
func decodeImage(obj pdf.Value) (image.Image, error) {
	width := int(obj.Key("Width").Int64())
	height := int(obj.Key("Height").Int64())
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid dimensions %dx%d", width, height)
	}

	rd := obj.Reader()
	defer rd.Close()
	data, err := io.ReadAll(rd)
	if err != nil {
		return nil, fmt.Errorf("read image stream: %w", err)
	}

	if img, jerr := jpeg.Decode(bytes.NewReader(data)); jerr == nil {
		return img, nil
	}

	bpc := int(obj.Key("BitsPerComponent").Int64())
	if bpc != 8 {
		return nil, fmt.Errorf("unsupported bits per component %d", bpc)
	}

	switch {
	case len(data) >= width*height*3:
		img := image.NewRGBA(image.Rect(0, 0, width, height))
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				o := (y*width + x) * 3
				img.SetRGBA(x, y, color.RGBA{R: data[o], G: data[o+1], B: data[o+2], A: 0xff})
			}
		}
		return img, nil
	case len(data) >= width*height:
		img := image.NewGray(image.Rect(0, 0, width, height))
		copy(img.Pix, data[:width*height])
		return img, nil
	default:
		return nil, fmt.Errorf("sample data too short: %d bytes for %dx%d", len(data), width, height)
	}
}

// safely runs fn and converts a library panic into an error.
func safely(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf parse panic: %v", r)
		}
	}()
	return fn()
}
