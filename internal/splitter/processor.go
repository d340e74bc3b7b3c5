package splitter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ivlev/scansplit/internal/detector"
	"github.com/ivlev/scansplit/internal/magick"
)

// Processor cuts detected regions out of a batch image and straightens each
// one into its own output file.
type Processor struct {
	Engine magick.Engine
	Deskew int // deskew search percent
	Fuzz   int // trim fuzz percent
}

// Process writes one file per region, named {i}_{base of inputPath} inside
// outputDir. The first engine failure aborts the whole batch; files already
// written stay on disk.
func (p *Processor) Process(ctx context.Context, inputPath string, regions []detector.Component, outputDir string) error {
	if len(regions) == 0 {
		return nil
	}

	// Один scratch-файл на батч: каждый crop полностью перезаписывает его
	// содержимое перед выпрямлением.
	scratch, err := os.CreateTemp("", "scansplit-crop-")
	if err != nil {
		return fmt.Errorf("create scratch file: %w", err)
	}
	scratch.Close()
	defer os.Remove(scratch.Name())

	base := filepath.Base(inputPath)
	for i, region := range regions {
		if err := ctx.Err(); err != nil {
			return err
		}

		if _, err := p.Engine.Apply(inputPath, scratch.Name(), magick.Crop(region.Geometry)); err != nil {
			return err
		}

		outPath := filepath.Join(outputDir, fmt.Sprintf("%d_%s", i, base))
		if _, err := p.Engine.Apply(scratch.Name(), outPath, magick.Deskew(p.Deskew), magick.Trim(p.Fuzz)); err != nil {
			return err
		}

		fmt.Printf("Wrote image %d to %s.\n", i, outPath)
	}
	return nil
}
