package detector

import (
	"strconv"
	"strings"
)

// A verbose connected-components report looks like this:
//
//	Objects (id: bounding-box centroid area mean-color):
//	  0: 169x154+0+0 84.0,76.9 26026 srgb(0,0,0)
//
// Splitting a component line on single spaces keeps the two empty indent
// tokens, so a well-formed line always yields exactly 7 tokens.
const (
	reportTokens   = 7
	geometryToken  = 3
	areaToken      = 5
	meanColorToken = 6
)

// parseReport extracts components from the engine report. The first line is
// a header; lines that do not match the 7-token layout are skipped.
func parseReport(report string) []Component {
	lines := strings.Split(report, "\n")
	if len(lines) > 0 {
		lines = lines[1:]
	}

	var components []Component
	for _, line := range lines {
		tokens := strings.Split(line, " ")
		if len(tokens) != reportTokens {
			continue
		}
		area, err := strconv.Atoi(tokens[areaToken])
		if err != nil {
			continue
		}
		components = append(components, Component{
			Geometry:  tokens[geometryToken],
			Area:      area,
			MeanColor: tokens[meanColorToken],
		})
	}
	return components
}
