package detector

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/ivlev/scansplit/internal/magick"
)

// Component is one connected component from the engine report. Geometry is
// the engine's native WxH+X+Y form; it is never parsed, only handed back to
// the crop operation.
type Component struct {
	Geometry  string
	Area      int
	MeanColor string
}

// Detector finds photo regions in one scanned batch image.
type Detector struct {
	Engine       magick.Engine
	Threshold    int     // binarization percent of the luminance range
	Connectivity int     // 4 or 8
	MinAreaFrac  float64 // survivors need area >= MinAreaFrac * largest area
	Log          *logrus.Logger
}

// New returns a Detector with the stock parameters.
func New(eng magick.Engine) *Detector {
	return &Detector{
		Engine:       eng,
		Threshold:    90,
		Connectivity: 4,
		MinAreaFrac:  0.1,
		Log:          logrus.StandardLogger(),
	}
}

// Detect binarizes the input, asks the engine for connected components and
// returns the ones that look like photos, in engine report order. An empty
// result is valid: a blank scan simply has no photos on it.
func (d *Detector) Detect(inputPath string) ([]Component, error) {
	scratch, err := os.CreateTemp("", "scansplit-cc-")
	if err != nil {
		return nil, fmt.Errorf("create scratch file: %w", err)
	}
	scratch.Close()
	defer os.Remove(scratch.Name())

	report, err := d.Engine.Apply(inputPath, scratch.Name(),
		magick.Threshold(d.Threshold),
		magick.ConnectedComponents(d.Connectivity),
	)
	if err != nil {
		return nil, err
	}

	// A photo candidate is a component whose mean color is pure black
	// after thresholding.
	var candidates []Component
	maxArea := 1
	for _, c := range parseReport(report) {
		if !isBlack(c.MeanColor) {
			continue
		}
		if c.Area > maxArea {
			maxArea = c.Area
		}
		candidates = append(candidates, c)
	}
	d.logger().Infof("found %d total connected components", len(candidates))

	var regions []Component
	for _, c := range candidates {
		if float64(c.Area) >= d.MinAreaFrac*float64(maxArea) {
			regions = append(regions, c)
		}
	}
	return regions, nil
}

func isBlack(meanColor string) bool {
	return meanColor == "srgb(0,0,0)" || strings.HasPrefix(meanColor, "srgba(0,0,0")
}

func (d *Detector) logger() *logrus.Logger {
	if d.Log != nil {
		return d.Log
	}
	return logrus.StandardLogger()
}
