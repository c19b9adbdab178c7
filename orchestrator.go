package hypview

import (
	"fmt"
)

// Phase tracks where a recompute/redraw pass currently is. Every pass walks
// the same sequence and ends back at Idle; a filling edit enters at
// FillingsPushed, an explicit structure recompute enters at
// StructureRecomputed.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseFillingsPushed
	PhaseStructureRecomputed
	PhaseDataRebuilt
	PhaseRedrawn
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseFillingsPushed:
		return "FillingsPushed"
	case PhaseStructureRecomputed:
		return "StructureRecomputed"
	case PhaseDataRebuilt:
		return "DataRebuilt"
	case PhaseRedrawn:
		return "Redrawn"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// Orchestrator sequences "apply parameter change → rebuild raytracing data →
// redraw → refresh derived labels". All methods run on the single frame
// thread; a pass always completes before the next event is handled.
type Orchestrator struct {
	manifold Manifold
	engine   Engine
	log      Logger

	// fillingDict holds the working copy of the Dehn-filling coefficients
	// under the "fillings" key, addressed by the filling controllers with
	// (key, index, component) paths.
	fillingDict UniformDict

	fillingControllers []*Controller

	// OnFillingsChanged fires after every successful filling push.
	OnFillingsChanged func()

	// StatusDisplay receives the volume/solution-type line whenever it is
	// refreshed.
	StatusDisplay func(text string)

	phase Phase
	trace []Phase
}

func NewOrchestrator(manifold Manifold, engine Engine, log Logger) *Orchestrator {
	if log == nil {
		log = NewNopLogger()
	}
	o := &Orchestrator{
		manifold:    manifold,
		engine:      engine,
		log:         log,
		fillingDict: UniformDict{},
		phase:       PhaseIdle,
	}
	o.fillingDict["fillings"] = fillingsValue(fillingsFromManifold(manifold))
	return o
}

func (o *Orchestrator) Phase() Phase { return o.phase }

// PhaseTrace returns the phases visited since the last call, in order.
func (o *Orchestrator) PhaseTrace() []Phase {
	t := o.trace
	o.trace = nil
	return t
}

func (o *Orchestrator) enterPhase(p Phase) {
	o.phase = p
	o.trace = append(o.trace, p)
	o.log.Debugf("phase %s", p)
}

// Fillings returns the working filling coefficients, one pair per cusp.
func (o *Orchestrator) Fillings() []Filling {
	return o.fillingDict["fillings"].Vec2List
}

// FillingControllers builds two controllers per cusp (meridian and
// longitude) over the working fillings, each clamped to [-15, 15] and
// pushing to the manifold on edit.
func (o *Orchestrator) FillingControllers() []*Controller {
	if o.fillingControllers != nil {
		return o.fillingControllers
	}
	for i := 0; i < o.manifold.NumCusps(); i++ {
		for component := 0; component < 2; component++ {
			c := NewController(
				o.fillingDict,
				KeyIndexComponent("fillings", i, component),
				-15, 15)
			c.UpdateFunction = o.PushFillings
			o.fillingControllers = append(o.fillingControllers, c)
		}
	}
	return o.fillingControllers
}

func (o *Orchestrator) updateFillingControllers() {
	for _, c := range o.fillingControllers {
		if err := c.Update(); err != nil {
			o.log.Errorf("filling controller refresh: %v", err)
		}
	}
}

// PushFillings writes the working coefficients to the manifold and runs the
// rebuild/redraw pass. Entry point for filling edits.
func (o *Orchestrator) PushFillings() {
	o.manifold.DehnFill(o.Fillings())
	o.enterPhase(PhaseFillingsPushed)

	// Dehn filling re-solves the hyperbolic structure inside the geometry
	// engine before any scene data can be rebuilt.
	o.enterPhase(PhaseStructureRecomputed)

	o.finishPass(true)
}

// PullFillings refreshes the working coefficients from the manifold (after
// the structure was recomputed externally), then rebuilds and redraws. The
// controller refresh must not loop back into PushFillings, so it goes
// through Controller.Update.
func (o *Orchestrator) PullFillings() {
	o.fillingDict["fillings"] = fillingsValue(fillingsFromManifold(o.manifold))
	o.updateFillingControllers()

	o.enterPhase(PhaseStructureRecomputed)
	o.finishPass(false)
}

// RecomputeHyperbolicStructure forces the geometry engine to re-solve the
// hyperbolic structure. Landing in a degenerate or non-geometric solution is
// a valid outcome; the status line reports it and the view keeps running.
// Entry point for the explicit "recompute" and "round to integers" actions.
func (o *Orchestrator) RecomputeHyperbolicStructure() {
	o.manifold.InitHyperbolicStructure(true)
	o.enterPhase(PhaseStructureRecomputed)

	// The view state might be off after a drastic structure change, but
	// per-update orthonormalization recovers it; no reset needed.

	o.finishPass(true)
}

// RoundFillings snaps every coefficient to the nearest integer and pushes.
func (o *Orchestrator) RoundFillings() {
	roundFillings(o.Fillings())
	o.updateFillingControllers()
	o.PushFillings()
}

// finishPass runs the tail every entry point shares: rebuild raytracing
// data, redraw, refresh the status line, notify, return to Idle.
func (o *Orchestrator) finishPass(notify bool) {
	o.engine.RecomputeRaytracingDataAndRedraw()
	o.enterPhase(PhaseDataRebuilt)
	o.enterPhase(PhaseRedrawn)

	o.RefreshStatus()

	if notify && o.OnFillingsChanged != nil {
		o.OnFillingsChanged()
	}

	o.enterPhase(PhaseIdle)
}

// StatusText renders the volume/solution-type line, substituting "-" when
// the volume is undefined for the current structure.
func (o *Orchestrator) StatusText() string {
	return fmt.Sprintf("Vol: %s (%s)",
		VolumeText(o.manifold),
		SolutionTypeText(o.manifold.SolutionType()))
}

func (o *Orchestrator) RefreshStatus() {
	if o.StatusDisplay != nil {
		o.StatusDisplay(o.StatusText())
	}
}
