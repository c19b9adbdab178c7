package hypview

import (
	"fmt"
	"time"
)

type Time struct {
	Time time.Time
	Dt   time.Duration
}

type TimeModule struct {
}

func (mod TimeModule) Install(app *App, cmd *Commands) {
	cmd.AddResources(&Time{
		Time: time.Now(),
		Dt:   0,
	})
	cmd.UseSystem(System(timeSystem).InStage(Prelude))
}

func timeSystem(timeResource *Time) {
	now := time.Now()

	timeResource.Dt = now.Sub(timeResource.Time)
	timeResource.Time = now
}

// FpsUpdater turns per-frame render times into a smoothed frames-per-second
// reading. The engine reports the elapsed render time once per frame via
// ReportTime; Text gives the current label value.
type FpsUpdater struct {
	smoothed float64

	// Display, when set, receives the formatted label after every report.
	Display func(text string)
}

// Smoothing factor for the exponential moving average of frame times.
const fpsSmoothing = 0.9

func (f *FpsUpdater) ReportTime(elapsed time.Duration) {
	t := elapsed.Seconds()
	if f.smoothed == 0 {
		f.smoothed = t
	} else {
		f.smoothed = fpsSmoothing*f.smoothed + (1-fpsSmoothing)*t
	}
	if f.Display != nil {
		f.Display(f.Text())
	}
}

func (f *FpsUpdater) Text() string {
	if f.smoothed <= 0 {
		return "FPS: -"
	}
	return fmt.Sprintf("FPS: %.1f", 1.0/f.smoothed)
}
