package source

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/gen2brain/go-fitz"
	"github.com/sirupsen/logrus"
)

// PDFSource renders each page of a scanned PDF into its own scratch PNG and
// hands those files out as batches. The scratch directory lives until Close.
type PDFSource struct {
	path  string
	stem  string
	dir   string
	dpi   int
	pages int
	log   *logrus.Logger
}

func NewPDFSource(path string, dpi int, log *logrus.Logger) (*PDFSource, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open pdf %s: %w", path, err)
	}
	pages := doc.NumPage()
	doc.Close()

	dir, err := os.MkdirTemp("", "scansplit-pdf-")
	if err != nil {
		return nil, err
	}

	base := filepath.Base(path)
	return &PDFSource{
		path:  path,
		stem:  strings.TrimSuffix(base, filepath.Ext(base)),
		dir:   dir,
		dpi:   dpi,
		pages: pages,
		log:   log,
	}, nil
}

func (s *PDFSource) Count() int {
	return s.pages
}

// Path renders page i at the configured DPI. fitz documents are not safe
// for concurrent use, so every render opens its own.
func (s *PDFSource) Path(i int) (string, error) {
	doc, err := fitz.New(s.path)
	if err != nil {
		return "", fmt.Errorf("failed to open pdf %s: %w", s.path, err)
	}
	defer doc.Close()

	img, err := doc.ImageDPI(i, float64(s.dpi))
	if err != nil {
		return "", fmt.Errorf("failed to render pdf page %d: %w", i+1, err)
	}

	p := filepath.Join(s.dir, pageName(s.stem, i))
	f, err := os.Create(p)
	if err != nil {
		return "", err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		os.Remove(p)
		return "", fmt.Errorf("failed to encode pdf page %d: %w", i+1, err)
	}
	if err := f.Close(); err != nil {
		return "", err
	}

	s.log.Infof("rendered pdf page %d/%d to %s (%d dpi)", i+1, s.pages, p, s.dpi)
	return p, nil
}

func (s *PDFSource) Close() error {
	return os.RemoveAll(s.dir)
}

func pageName(stem string, i int) string {
	return fmt.Sprintf("%s_page%d.png", stem, i+1)
}
