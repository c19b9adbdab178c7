package hypview

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/hypview/hypview/o13"
)

// Navigation holds the user-tunable movement velocities. They live in a
// uniform dict so the speed sliders bind to them with ordinary controllers.
type Navigation struct {
	Dict UniformDict
}

const (
	defaultTranslationVelocity = 0.4
	defaultRotationVelocity    = 0.4

	// Hyperbolic distance / radians per pixel of mouse drag.
	mouseDragScale = 0.01
)

func NewNavigation() *Navigation {
	return &Navigation{Dict: UniformDict{
		"translationVelocity": Float(defaultTranslationVelocity),
		"rotationVelocity":    Float(defaultRotationVelocity),
	}}
}

func (n *Navigation) TranslationVelocity() float64 {
	return n.Dict["translationVelocity"].Float
}

func (n *Navigation) RotationVelocity() float64 {
	return n.Dict["rotationVelocity"].Float
}

// VelocityControllers binds the two speed sliders, each in [0.1, 1.0].
func (n *Navigation) VelocityControllers() (translation, rotation *Controller) {
	translation = NewController(n.Dict, Key("translationVelocity"), 0.1, 1.0)
	rotation = NewController(n.Dict, Key("rotationVelocity"), 0.1, 1.0)
	return translation, rotation
}

// NavigationModule installs the Navigation resource, seeding the velocities
// from Config when set.
type NavigationModule struct {
	Config Config
}

func (m NavigationModule) Install(app *App, cmd *Commands) {
	nav := NewNavigation()
	if v := m.Config.Navigation.TranslationVelocity; v != 0 {
		nav.Dict["translationVelocity"] = Float(v)
	}
	if v := m.Config.Navigation.RotationVelocity; v != 0 {
		nav.Dict["rotationVelocity"] = Float(v)
	}
	cmd.AddResources(nav)
	cmd.UseSystem(System(navigationSystem).InStage(Update))
}

// translationKeys maps the wasdec keys to camera-frame directions; forward
// is -z as in the rendering convention.
var translationKeys = map[int]mgl64.Vec3{
	KeyW: {0, 0, -1},
	KeyS: {0, 0, 1},
	KeyA: {-1, 0, 0},
	KeyD: {1, 0, 0},
	KeyE: {0, 1, 0},
	KeyC: {0, -1, 0},
}

// rotationKeys maps arrows and x/z to rotation axes (yaw, pitch, roll).
var rotationKeys = map[int]mgl64.Vec3{
	KeyLeft:  {0, 1, 0},
	KeyRight: {0, -1, 0},
	KeyUp:    {1, 0, 0},
	KeyDown:  {-1, 0, 0},
	KeyX:     {0, 0, 1},
	KeyZ:     {0, 0, -1},
}

// navigationSystem turns the keys held this frame and any mouse drag into
// incremental O(1,3) transforms: distance and angle are velocity × frame
// time, so movement speed is independent of the frame rate.
func navigationSystem(input *Input, nav *Navigation, view *View, time *Time) {
	dt := time.Dt.Seconds()
	if dt <= 0 {
		return
	}

	moved := false

	dir := mgl64.Vec3{}
	for key, d := range translationKeys {
		if input.Pressed[key] {
			dir = dir.Add(d)
		}
	}
	if dir.LenSqr() > 0 {
		dist := nav.TranslationVelocity() * dt
		view.State = view.State.Apply(o13.HyperbolicTranslation(dir, dist))
		moved = true
	}

	axis := mgl64.Vec3{}
	for key, a := range rotationKeys {
		if input.Pressed[key] {
			axis = axis.Add(a)
		}
	}
	if axis.LenSqr() > 0 {
		angle := nav.RotationVelocity() * dt
		view.State = view.State.Apply(o13.Rotation(axis, angle))
		moved = true
	}

	if input.Pressed[MouseButtonLeft] &&
		(input.MouseDeltaX != 0 || input.MouseDeltaY != 0) {
		dx := input.MouseDeltaX * mouseDragScale
		dy := input.MouseDeltaY * mouseDragScale

		switch {
		case input.Pressed[KeyShift]:
			// Rotate in place.
			view.State = view.State.Apply(
				o13.Rotation(mgl64.Vec3{dy, dx, 0}, mgl64.Vec2{dx, dy}.Len()))
		case input.Pressed[KeyAlt]:
			// Orbit the origin: rotate on the world side of the state.
			view.State = view.State.ApplyPre(
				o13.Rotation(mgl64.Vec3{dy, dx, 0}, mgl64.Vec2{dx, dy}.Len()))
		default:
			view.State = view.State.Apply(
				o13.HyperbolicTranslation(mgl64.Vec3{dx, -dy, 0},
					mgl64.Vec2{dx, dy}.Len()))
		}
		moved = true
	}

	if moved {
		view.Moved = true
	}
}
