package source

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

// Source enumerates the batch images behind one input path. Every batch is
// a file on disk, because the engine only takes files.
type Source interface {
	Count() int
	Path(i int) (string, error)
	Close() error
}

// Open picks a source for path: a PDF becomes one batch per page, a
// directory one batch per contained image file, anything else a single
// batch.
func Open(path string, dpi int, log *logrus.Logger) (Source, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}
	fi, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !fi.IsDir() && strings.EqualFold(filepath.Ext(path), ".pdf") {
		return NewPDFSource(path, dpi, log)
	}
	return NewImageSource(path, log)
}
