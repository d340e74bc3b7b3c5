package source

import (
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ImageSource serves image files that already exist on disk: a single file,
// or every image inside a directory in name order.
type ImageSource struct {
	paths []string
	log   *logrus.Logger
}

func NewImageSource(path string, log *logrus.Logger) (*ImageSource, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}
	fi, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	var paths []string
	if fi.IsDir() {
		entries, err := os.ReadDir(path)
		if err != nil {
			return nil, err
		}
		for _, entry := range entries {
			if !entry.IsDir() && isImageFile(entry.Name()) {
				paths = append(paths, filepath.Join(path, entry.Name()))
			}
		}
		sort.Strings(paths)
	} else {
		paths = []string{path}
	}

	return &ImageSource{paths: paths, log: log}, nil
}

func (s *ImageSource) Count() int {
	return len(s.paths)
}

func (s *ImageSource) Path(i int) (string, error) {
	p := s.paths[i]
	s.probe(p)
	return p, nil
}

func (s *ImageSource) Close() error {
	return nil
}

func isImageFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".jpg", ".jpeg", ".png", ".tif", ".tiff", ".bmp", ".webp":
		return true
	}
	return false
}

// probe logs the image header. The engine stays the authority on whether a
// file is actually readable, so a failed probe only warns.
func (s *ImageSource) probe(path string) {
	f, err := os.Open(path)
	if err != nil {
		s.log.Warnf("probe %s: %v", path, err)
		return
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		s.log.Warnf("probe %s: %v", path, err)
		return
	}
	s.log.Infof("input %s: %dx%d %s", path, cfg.Width, cfg.Height, format)
}
