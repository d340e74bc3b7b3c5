package splitter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/ivlev/scansplit/internal/config"
	"github.com/ivlev/scansplit/internal/detector"
	"github.com/ivlev/scansplit/internal/magick"
	"github.com/ivlev/scansplit/internal/source"
	"github.com/ivlev/scansplit/internal/system"
)

// Project ties the detector and the processor together for one run over one
// input path (image file, directory or PDF).
type Project struct {
	Config *config.Config
	Log    *logrus.Logger

	det  *detector.Detector
	proc *Processor
}

func NewProject(cfg *config.Config, eng magick.Engine, log *logrus.Logger) *Project {
	if log == nil {
		log = logrus.StandardLogger()
	}

	det := detector.New(eng)
	det.Threshold = cfg.Threshold
	det.Connectivity = cfg.Connectivity
	det.MinAreaFrac = cfg.MinAreaFraction
	det.Log = log

	return &Project{
		Config: cfg,
		Log:    log,
		det:    det,
		proc:   &Processor{Engine: eng, Deskew: cfg.Deskew, Fuzz: cfg.Fuzz},
	}
}

// Run обрабатывает все батчи входа. При jobs > 1 независимые батчи идут
// параллельно; внутри одного батча все вызовы движка строго последовательны.
func (p *Project) Run(ctx context.Context) error {
	src, err := source.Open(p.Config.Input, p.Config.DPI, p.Log)
	if err != nil {
		return err
	}
	defer src.Close()

	n := src.Count()
	if n == 0 {
		return fmt.Errorf("no input images found in %s", p.Config.Input)
	}

	outDir, err := p.outputDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return err
	}
	system.CheckDiskSpace(outDir, p.Log)

	jobs := p.Config.Jobs
	if jobs <= 1 || n == 1 {
		for i := 0; i < n; i++ {
			if err := p.runBatch(ctx, src, i, outDir); err != nil {
				return err
			}
		}
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i := 0; i < n; i++ {
		g.Go(func() error {
			return p.runBatch(gctx, src, i, outDir)
		})
	}
	return g.Wait()
}

func (p *Project) runBatch(ctx context.Context, src source.Source, i int, outDir string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path, err := src.Path(i)
	if err != nil {
		return err
	}

	regions, err := p.det.Detect(path)
	if err != nil {
		return err
	}
	fmt.Printf("Found %d images.\n", len(regions))

	return p.proc.Process(ctx, path, regions, outDir)
}

// outputDir applies the default: next to the input itself.
func (p *Project) outputDir() (string, error) {
	if p.Config.OutputDir != "" {
		return p.Config.OutputDir, nil
	}
	fi, err := os.Stat(p.Config.Input)
	if err != nil {
		return "", err
	}
	if fi.IsDir() {
		return p.Config.Input, nil
	}
	return filepath.Dir(p.Config.Input), nil
}
