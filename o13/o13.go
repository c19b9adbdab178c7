// Package o13 implements the small amount of O(1,3) linear algebra needed to
// move a camera through the hyperboloid model of hyperbolic 3-space. The
// Minkowski form is diag(-1,+1,+1,+1) with the time coordinate first; a view
// transformation is a 4x4 matrix whose columns are orthonormal with respect
// to that form.
package o13

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Minkowski signs per coordinate, time first.
var metricSigns = [4]float64{-1, 1, 1, 1}

// zeroDirEpsilon is the squared length below which a direction or axis is
// treated as zero and the identity transform is returned instead of a
// NaN-contaminated matrix.
const zeroDirEpsilon = 1e-24

// MinkowskiDot returns <a, b> with respect to diag(-1,+1,+1,+1).
func MinkowskiDot(a, b mgl64.Vec4) float64 {
	return -a[0]*b[0] + a[1]*b[1] + a[2]*b[2] + a[3]*b[3]
}

// HyperbolicTranslation returns the Lorentz boost translating the origin of
// the hyperboloid by hyperbolic distance dist along dir. dir need not be
// normalized; only its direction matters, so dist stays independent of the
// vector's magnitude. A zero dir has no defined direction and yields the
// identity.
//
// Composing the boosts for dist and -dist recovers the identity to within
// an absolute 1e-10 for |dist| up to about 5; beyond that the cosh/sinh
// entries grow like e^dist and the bound degrades proportionally to their
// magnitude. Per-frame navigation increments are far below that range.
func HyperbolicTranslation(dir mgl64.Vec3, dist float64) mgl64.Mat4 {
	if dir.LenSqr() < zeroDirEpsilon {
		return mgl64.Ident4()
	}
	u := dir.Normalize()

	c := math.Cosh(dist)
	s := math.Sinh(dist)

	m := mgl64.Ident4()
	m.Set(0, 0, c)
	for i := 0; i < 3; i++ {
		m.Set(0, i+1, s*u[i])
		m.Set(i+1, 0, s*u[i])
		for j := 0; j < 3; j++ {
			d := 0.0
			if i == j {
				d = 1.0
			}
			m.Set(i+1, j+1, d+(c-1)*u[i]*u[j])
		}
	}
	return m
}

// Rotation returns the spatial rotation by angle about axis, embedded into
// O(1,3) as diag(1, R) with R in SO(3). A zero axis yields the identity.
func Rotation(axis mgl64.Vec3, angle float64) mgl64.Mat4 {
	if axis.LenSqr() < zeroDirEpsilon {
		return mgl64.Ident4()
	}
	r := mgl64.HomogRotate3D(angle, axis.Normalize()).Mat3()

	m := mgl64.Ident4()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m.Set(i+1, j+1, r.At(i, j))
		}
	}
	return m
}

// Orthonormalize runs Gram-Schmidt on the columns of m with respect to the
// Minkowski form: column 0 is normalized to <c,c> = -1, the spatial columns
// to <c,c> = +1, each after removing its projections onto the previous
// columns. Applied after every view-state update this keeps accumulated
// floating-point drift below 1e-10 per step. The tolerance is absolute and
// assumes view-sized entries; it is not meaningful for matrices with
// entries far above cosh(5).
func Orthonormalize(m mgl64.Mat4) mgl64.Mat4 {
	var cols [4]mgl64.Vec4
	for i := 0; i < 4; i++ {
		cols[i] = m.Col(i)
	}

	for i := 0; i < 4; i++ {
		for j := 0; j < i; j++ {
			// Projection onto a unit-norm column cj is <ci,cj>/<cj,cj> cj,
			// and <cj,cj> is the metric sign after normalization.
			p := MinkowskiDot(cols[i], cols[j]) * metricSigns[j]
			cols[i] = cols[i].Sub(cols[j].Mul(p))
		}
		n := math.Sqrt(math.Abs(MinkowskiDot(cols[i], cols[i])))
		cols[i] = cols[i].Mul(1 / n)
	}

	return mgl64.Mat4FromCols(cols[0], cols[1], cols[2], cols[3])
}

// LorentzError returns the largest absolute entry of m^T G m - G, i.e. how
// far m is from being a Lorentz transformation. Exactly orthonormal input
// gives 0.
func LorentzError(m mgl64.Mat4) float64 {
	worst := 0.0
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			d := MinkowskiDot(m.Col(i), m.Col(j))
			if i == j {
				d -= metricSigns[i]
			}
			if a := math.Abs(d); a > worst {
				worst = a
			}
		}
	}
	return worst
}
