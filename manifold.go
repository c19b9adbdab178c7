package hypview

import (
	"fmt"
	"math"
)

// Manifold is the narrow interface onto the external hyperbolic-geometry
// engine. Calls are synchronous and may take a while (hyperbolic structure
// solving); the caller blocks until the engine returns.
type Manifold interface {
	Name() string
	NumCusps() int

	// CuspInfo returns one (meridian, longitude) Dehn-filling pair per cusp.
	CuspInfo() []Filling

	// DehnFill replaces the filling coefficients of all cusps.
	DehnFill(fillings []Filling)

	// InitHyperbolicStructure solves for the hyperbolic structure. The
	// result may legitimately be degenerate or non-geometric; that is a
	// terminal state of the computation, not an error.
	InitHyperbolicStructure(forceRecompute bool)

	// Volume errors when the volume is undefined for the current structure.
	Volume() (float64, error)

	SolutionType() int

	// CuspAreaMatrix returns the symmetric cusp area matrix for the given
	// method ("trigDependent" here).
	CuspAreaMatrix(method string) ([][]float64, error)

	Copy() Manifold
}

// Engine is the external raytracing renderer.
type Engine interface {
	// RecomputeRaytracingDataAndRedraw rebuilds the scene data from the
	// manifold's current structure, then redraws.
	RecomputeRaytracingDataAndRedraw()

	// RedrawIfInitialized redraws with the existing scene data; a no-op
	// before the renderer is ready.
	RedrawIfInitialized()
}

// Solution-type names by engine status code.
var solutionTypeText = [...]string{
	"degenerate",
	"geometric",
	"non-geometric",
	"flat",
	"degenerate",
	"degenerate",
	"degenerate",
}

// SolutionTypeText maps an engine status code to its display category. Codes
// outside 0..6 violate the engine contract.
func SolutionTypeText(code int) string {
	if code < 0 || code >= len(solutionTypeText) {
		panic(fmt.Sprintf("solution type code %d outside engine contract", code))
	}
	return solutionTypeText[code]
}

// VolumeText formats the manifold's volume for the status line; "-" when
// the volume is undefined for the current (possibly degenerate) structure.
func VolumeText(m Manifold) string {
	vol, err := m.Volume()
	if err != nil {
		return "-"
	}
	return fmt.Sprintf("%.3f", vol)
}

// fallbackCuspArea bounds the cusp-area sliders when the engine cannot
// produce an area matrix.
const fallbackCuspArea = 5.0

// MaximalCuspArea estimates the largest sensible cusp area as the square
// root of the biggest diagonal entry of the unfilled manifold's cusp area
// matrix, computed with the "trigDependent" method. Works on a copy so the
// probe's unfilling never disturbs the live manifold. Any failure falls back
// to a constant bound.
func MaximalCuspArea(m Manifold, log Logger) float64 {
	area, err := maximalCuspArea(m)
	if err != nil {
		log.Warnf("maximal cusp area unavailable, using fallback: %v", err)
		return fallbackCuspArea
	}
	return area
}

func maximalCuspArea(m Manifold) (area float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("cusp area computation panicked: %v", r)
		}
	}()

	probe := m.Copy()
	probe.DehnFill(make([]Filling, probe.NumCusps()))
	probe.InitHyperbolicStructure(true)

	matrix, err := probe.CuspAreaMatrix("trigDependent")
	if err != nil {
		return 0, err
	}

	best := 0.0
	for i := 0; i < probe.NumCusps(); i++ {
		if matrix[i][i] > best {
			best = matrix[i][i]
		}
	}
	if best <= 0 {
		return 0, fmt.Errorf("cusp area matrix has no positive diagonal entry")
	}
	return math.Sqrt(best), nil
}

// CuspAreaSliderBound gives the upper bound for the cusp area controllers,
// with a little headroom over the estimated maximum.
func CuspAreaSliderBound(m Manifold, log Logger) float64 {
	return 1.05 * MaximalCuspArea(m, log)
}
