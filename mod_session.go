package hypview

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Renderer wraps the external raytracing engine as a resource. Available is
// false when no backend was supplied; that is reported once at startup and
// every redraw becomes a no-op.
type Renderer struct {
	Engine    Engine
	Available bool

	// ReportTime is handed to the engine, which invokes it once per frame
	// with the elapsed render time.
	ReportTime func(elapsed time.Duration)
}

func (r *Renderer) RedrawIfInitialized() {
	if r.Available {
		r.Engine.RedrawIfInitialized()
	}
}

func (r *Renderer) RecomputeRaytracingDataAndRedraw() {
	if r.Available {
		r.Engine.RecomputeRaytracingDataAndRedraw()
	}
}

// Session owns the per-session uniform dicts and the controllers bound over
// them. RenderUniforms feed straight into the shader (changing one only
// needs a redraw); SceneParameters feed the raytracing-data build (changing
// one needs a recompute).
type Session struct {
	ID       string
	Manifold Manifold

	RenderUniforms  UniformDict
	SceneParameters UniformDict

	// PerspectiveType toggles the ideal-view projection.
	PerspectiveType *BoolController

	controllers map[string]*Controller
}

// Controller returns the binding for a render uniform or scene parameter;
// nil for unknown names. Cusp areas are addressed as "cuspAreas/<i>".
func (s *Session) Controller(name string) *Controller {
	return s.controllers[name]
}

// SessionModule wires a manifold and a rendering backend into an App: view
// state, navigation, the recompute orchestrator, the parameter controllers,
// and the redraw system.
type SessionModule struct {
	Manifold Manifold
	Engine   Engine
	Config   Config

	// FillingsChanged, when set, is forwarded to the orchestrator's
	// OnFillingsChanged hook.
	FillingsChanged func()
}

func (m SessionModule) Install(app *App, cmd *Commands) {
	log := app.Logger()

	renderer := &Renderer{Engine: m.Engine, Available: m.Engine != nil}
	if !renderer.Available {
		log.Warnf("no rendering backend available; redraws disabled")
	}

	session := &Session{
		ID:          uuid.NewString(),
		Manifold:    m.Manifold,
		controllers: map[string]*Controller{},
	}
	session.RenderUniforms = UniformDict{
		"fov":             Float(m.Config.Fov),
		"maxSteps":        Int(m.Config.Quality.MaxSteps),
		"maxDist":         Float(m.Config.Quality.MaxDist),
		"subpixelCount":   Float(m.Config.Quality.SubpixelCount),
		"edgeThickness":   Float(0.0),
		"lightBias":       Float(m.Config.Light.Bias),
		"lightFalloff":    Float(m.Config.Light.Falloff),
		"brightness":      Float(m.Config.Light.Brightness),
		"perspectiveType": Bool(false),
	}

	numCusps := m.Manifold.NumCusps()
	cuspAreas := make([]float64, numCusps)
	for i := range cuspAreas {
		cuspAreas[i] = 1.0
	}
	session.SceneParameters = UniformDict{
		"cuspAreas":      FloatList(cuspAreas),
		"insphere_scale": Float(0.05),
		"edgeTubeRadius": Float(0.08),
	}

	orchestrator := NewOrchestrator(m.Manifold, renderer, log)
	orchestrator.OnFillingsChanged = m.FillingsChanged
	orchestrator.FillingControllers()

	m.bindControllers(session, renderer, orchestrator, log)

	fps := &FpsUpdater{}
	renderer.ReportTime = fps.ReportTime

	cmd.AddResources(renderer, session, orchestrator, fps)
	cmd.UseSystem(System(redrawSystem).InStage(Render))

	log.Infof("session %s: inside view of %s (%d cusps)",
		session.ID, m.Manifold.Name(), numCusps)
	orchestrator.RefreshStatus()
}

// Ranges follow the original control layout: redraw-only uniforms bind with
// RedrawIfInitialized, scene parameters with the full recompute.
func (m SessionModule) bindControllers(
	session *Session, renderer *Renderer, orch *Orchestrator, log Logger) {

	redraw := renderer.RedrawIfInitialized
	recompute := renderer.RecomputeRaytracingDataAndRedraw

	bind := func(name string, dict UniformDict, path Path,
		from, to float64, format string, update func()) {
		c := NewController(dict, path, from, to)
		if format != "" {
			c.FormatString = format
		}
		c.UpdateFunction = update
		session.controllers[name] = c
	}

	bind("fov", session.RenderUniforms, Key("fov"), 20, 120, "%.1f", redraw)
	bind("edgeThickness", session.RenderUniforms, Key("edgeThickness"),
		0.0, 0.35, "%.3f", redraw)
	bind("maxSteps", session.RenderUniforms, Key("maxSteps"), 1, 100, "%.0f", redraw)
	bind("maxDist", session.RenderUniforms, Key("maxDist"), 1.0, 28.0, "", redraw)
	bind("subpixelCount", session.RenderUniforms, Key("subpixelCount"),
		1.0, 4.25, "", redraw)
	bind("lightBias", session.RenderUniforms, Key("lightBias"), 0.3, 4.0, "", redraw)
	bind("lightFalloff", session.RenderUniforms, Key("lightFalloff"),
		0.1, 2.0, "", redraw)
	bind("brightness", session.RenderUniforms, Key("brightness"), 0.3, 3.0, "", redraw)

	session.PerspectiveType = &BoolController{
		Dict:           session.RenderUniforms,
		Key:            "perspectiveType",
		UpdateFunction: redraw,
	}

	bind("insphere_scale", session.SceneParameters, Key("insphere_scale"),
		0.0, 1.25, "%.2f", recompute)
	// Edge tubes are evaluated in the shader, so changing the radius only
	// needs a redraw even though it lives with the scene parameters.
	bind("edgeTubeRadius", session.SceneParameters, Key("edgeTubeRadius"),
		0.0, 0.5, "", redraw)

	areaBound := CuspAreaSliderBound(m.Manifold, log)
	for i := 0; i < m.Manifold.NumCusps(); i++ {
		bind(fmt.Sprintf("cuspAreas/%d", i), session.SceneParameters,
			KeyIndex("cuspAreas", i), 0.0, areaBound, "", recompute)
	}
}

// redrawSystem requests a redraw once per frame when navigation moved the
// camera.
func redrawSystem(view *View, renderer *Renderer) {
	if !view.Moved {
		return
	}
	view.Moved = false
	renderer.RedrawIfInitialized()
}
