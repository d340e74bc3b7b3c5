package magick

import "fmt"

// Op is a single engine operation, expressed as the argument fragment it
// contributes to the command line.
type Op []string

// Threshold maps every pixel to pure black or white at percent of the
// luminance range.
func Threshold(percent int) Op {
	return Op{"-threshold", fmt.Sprintf("%d%%", percent)}
}

// ConnectedComponents labels connected regions and makes the engine print
// one report line per region (bounding box, centroid, area, mean color).
func ConnectedComponents(connectivity int) Op {
	return Op{
		"-define", "connected-components:verbose=true",
		"-connected-components", fmt.Sprintf("%d", connectivity),
	}
}

// Crop cuts out the WxH+X+Y region and resets the virtual canvas offset.
func Crop(geometry string) Op {
	return Op{"-crop", geometry, "+repage"}
}

// Deskew straightens the content, searching for the rotation angle up to
// percent of the image.
func Deskew(percent int) Op {
	return Op{"-deskew", fmt.Sprintf("%d%%", percent)}
}

// Trim shaves near-uniform borders within the fuzz tolerance and resets the
// virtual canvas offset.
func Trim(fuzzPercent int) Op {
	return Op{"-fuzz", fmt.Sprintf("%d%%", fuzzPercent), "-trim", "+repage"}
}
