package hypview

import (
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/hypview/hypview/o13"
)

// FrameDriver is a generic fixed-tick loop for benchmarking the render
// path: every period it applies a small camera increment, runs one App tick
// (which requests a redraw), and accumulates the render times the engine
// reports. Cooperative by construction; a tick completes fully before the
// next one is scheduled.
type FrameDriver struct {
	App        *App
	Period     time.Duration
	Iterations int

	// Increment applied to the view each tick; defaults to a small
	// diagonal hyperbolic translation when zero.
	Increment mgl64.Mat4

	total  time.Duration
	frames int
}

const defaultFramePeriod = 250 * time.Millisecond

func NewFrameDriver(app *App, iterations int) *FrameDriver {
	return &FrameDriver{
		App:        app,
		Period:     defaultFramePeriod,
		Iterations: iterations,
		Increment: o13.HyperbolicTranslation(
			mgl64.Vec3{
				0.3 * math.Sqrt(2.0),
				0.4 * math.Sqrt(2.0),
				0.5 * math.Sqrt(2.0),
			},
			0.1/float64(iterations)),
	}
}

// Run drives the loop to completion and reports total and per-frame render
// time through the App's logger. The render-time hook is restored on return.
func (d *FrameDriver) Run() {
	log := d.App.Logger()

	renderer := GetResource[Renderer](d.App)
	view := GetResource[View](d.App)
	if renderer == nil || view == nil {
		log.Errorf("frame driver needs a session installed")
		return
	}

	previous := renderer.ReportTime
	renderer.ReportTime = d.reportTime
	defer func() { renderer.ReportTime = previous }()

	ticker := time.NewTicker(d.Period)
	defer ticker.Stop()

	for i := 0; i < d.Iterations; i++ {
		<-ticker.C
		view.State = view.State.Apply(d.Increment)
		view.Moved = true
		if !d.App.Tick() {
			break
		}
	}

	log.Infof("total time: %.1fms", float64(d.total.Milliseconds()))
	if d.frames > 0 {
		log.Infof("time per frame: %.1fms",
			float64(d.total.Milliseconds())/float64(d.frames))
	}
}

func (d *FrameDriver) reportTime(elapsed time.Duration) {
	d.total += elapsed
	d.frames++
}
