package hypview

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Filling is one cusp's pair of Dehn-filling coefficients
// (meridian, longitude). The zero value is the unfilled cusp.
type Filling = mgl64.Vec2

// fillingsFromManifold pulls the per-cusp filling coefficients out of the
// manifold, in cusp order.
func fillingsFromManifold(m Manifold) []Filling {
	return m.CuspInfo()
}

// fillingsValue wraps fillings as the uniform value the controllers address
// with (key, index, component) paths.
func fillingsValue(fillings []Filling) Value {
	return Vec2List(fillings)
}

// roundFillings rounds every coefficient to the nearest integer, in place.
func roundFillings(fillings []Filling) {
	for i := range fillings {
		fillings[i][0] = math.Round(fillings[i][0])
		fillings[i][1] = math.Round(fillings[i][1])
	}
}
