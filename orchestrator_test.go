package hypview

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeManifold struct {
	name         string
	fillings     []Filling
	volume       float64
	volumeErr    error
	solutionType int

	areaMatrix [][]float64
	areaErr    error

	// areaMethod is shared between the manifold and its copies, so the
	// method used on a probe copy is visible to the test.
	areaMethod *string

	dehnFillCalls  int
	structureCalls int
}

func newFakeManifold(numCusps int) *fakeManifold {
	return &fakeManifold{
		name:       "m004",
		fillings:   make([]Filling, numCusps),
		volume:     2.0299,
		areaMethod: new(string),
		areaMatrix: func() [][]float64 {
			m := make([][]float64, numCusps)
			for i := range m {
				m[i] = make([]float64, numCusps)
				m[i][i] = 16.0
			}
			return m
		}(),
		solutionType: 1,
	}
}

func (f *fakeManifold) Name() string  { return f.name }
func (f *fakeManifold) NumCusps() int { return len(f.fillings) }

func (f *fakeManifold) CuspInfo() []Filling {
	out := make([]Filling, len(f.fillings))
	copy(out, f.fillings)
	return out
}

func (f *fakeManifold) DehnFill(fillings []Filling) {
	f.dehnFillCalls++
	f.fillings = make([]Filling, len(fillings))
	copy(f.fillings, fillings)
}

func (f *fakeManifold) InitHyperbolicStructure(forceRecompute bool) {
	f.structureCalls++
}

func (f *fakeManifold) Volume() (float64, error) {
	return f.volume, f.volumeErr
}

func (f *fakeManifold) SolutionType() int { return f.solutionType }

func (f *fakeManifold) CuspAreaMatrix(method string) ([][]float64, error) {
	*f.areaMethod = method
	return f.areaMatrix, f.areaErr
}

func (f *fakeManifold) Copy() Manifold {
	c := *f
	c.fillings = make([]Filling, len(f.fillings))
	copy(c.fillings, f.fillings)
	return &c
}

type fakeEngine struct {
	recomputes int
	redraws    int
}

func (e *fakeEngine) RecomputeRaytracingDataAndRedraw() { e.recomputes++ }
func (e *fakeEngine) RedrawIfInitialized()              { e.redraws++ }

func TestOrchestrator_FillingRoundTrip(t *testing.T) {
	m := newFakeManifold(2)
	o := NewOrchestrator(m, &fakeEngine{}, nil)

	fillings := o.Fillings()
	fillings[0] = Filling{1, 2}
	fillings[1] = Filling{3, 4}
	o.PushFillings()

	assert.Equal(t, []Filling{{1, 2}, {3, 4}}, m.CuspInfo())

	o.PullFillings()
	assert.Equal(t, []Filling{{1, 2}, {3, 4}}, o.Fillings())
}

func TestOrchestrator_PushPhaseSequence(t *testing.T) {
	m := newFakeManifold(1)
	engine := &fakeEngine{}
	o := NewOrchestrator(m, engine, nil)

	o.PushFillings()

	assert.Equal(t, []Phase{
		PhaseFillingsPushed,
		PhaseStructureRecomputed,
		PhaseDataRebuilt,
		PhaseRedrawn,
		PhaseIdle,
	}, o.PhaseTrace())
	assert.Equal(t, PhaseIdle, o.Phase())
	assert.Equal(t, 1, engine.recomputes)
}

func TestOrchestrator_RecomputeEntersAtStructure(t *testing.T) {
	m := newFakeManifold(1)
	o := NewOrchestrator(m, &fakeEngine{}, nil)

	o.RecomputeHyperbolicStructure()

	assert.Equal(t, 1, m.structureCalls)
	assert.Equal(t, []Phase{
		PhaseStructureRecomputed,
		PhaseDataRebuilt,
		PhaseRedrawn,
		PhaseIdle,
	}, o.PhaseTrace())
}

func TestOrchestrator_DegenerateStructureIsTerminalNotError(t *testing.T) {
	m := newFakeManifold(1)
	m.volumeErr = errors.New("volume not defined for degenerate structure")
	m.solutionType = 0

	o := NewOrchestrator(m, &fakeEngine{}, nil)

	var status string
	o.StatusDisplay = func(text string) { status = text }

	o.RecomputeHyperbolicStructure()

	assert.Equal(t, "Vol: - (degenerate)", status)
	assert.Equal(t, PhaseIdle, o.Phase())
}

func TestOrchestrator_StatusText(t *testing.T) {
	m := newFakeManifold(1)
	o := NewOrchestrator(m, &fakeEngine{}, nil)

	assert.Equal(t, "Vol: 2.030 (geometric)", o.StatusText())
}

func TestOrchestrator_FillingsChangedHook(t *testing.T) {
	m := newFakeManifold(1)
	o := NewOrchestrator(m, &fakeEngine{}, nil)

	notified := 0
	o.OnFillingsChanged = func() { notified++ }

	o.PushFillings()
	assert.Equal(t, 1, notified)

	o.RecomputeHyperbolicStructure()
	assert.Equal(t, 2, notified)

	// A pull refreshes state from the manifold; it is not an edit.
	o.PullFillings()
	assert.Equal(t, 2, notified)
}

func TestOrchestrator_PullDoesNotPushBack(t *testing.T) {
	m := newFakeManifold(2)
	o := NewOrchestrator(m, &fakeEngine{}, nil)
	o.FillingControllers()

	m.fillings = []Filling{{5, 6}, {7, 8}}
	before := m.dehnFillCalls

	o.PullFillings()

	assert.Equal(t, []Filling{{5, 6}, {7, 8}}, o.Fillings())
	assert.Equal(t, before, m.dehnFillCalls,
		"pulling must not write back to the manifold")
}

func TestOrchestrator_FillingControllerEditPushes(t *testing.T) {
	m := newFakeManifold(2)
	engine := &fakeEngine{}
	o := NewOrchestrator(m, engine, nil)

	controllers := o.FillingControllers()
	require.Len(t, controllers, 4)

	// Controller layout is (cusp 0 meridian, cusp 0 longitude, ...).
	require.NoError(t, controllers[2].Set(20))

	assert.Equal(t, Filling{15, 0}, m.CuspInfo()[1], "edit clamps to 15 and pushes")
	assert.Equal(t, 1, engine.recomputes)
}

func TestOrchestrator_RoundFillings(t *testing.T) {
	m := newFakeManifold(2)
	o := NewOrchestrator(m, &fakeEngine{}, nil)

	fillings := o.Fillings()
	fillings[0] = Filling{0.9, -1.4}
	fillings[1] = Filling{2.5001, 3.0}

	o.RoundFillings()

	assert.Equal(t, []Filling{{1, -1}, {3, 3}}, m.CuspInfo())
}

func TestSolutionTypeText_Table(t *testing.T) {
	expected := []string{
		"degenerate",
		"geometric",
		"non-geometric",
		"flat",
		"degenerate",
		"degenerate",
		"degenerate",
	}
	for code, text := range expected {
		assert.Equal(t, text, SolutionTypeText(code), "code %d", code)
	}

	assert.Panics(t, func() { SolutionTypeText(7) })
	assert.Panics(t, func() { SolutionTypeText(-1) })
}

func TestVolumeText(t *testing.T) {
	m := newFakeManifold(1)
	assert.Equal(t, "2.030", VolumeText(m))

	m.volumeErr = errors.New("ill-defined")
	assert.Equal(t, "-", VolumeText(m))
}

func TestMaximalCuspArea(t *testing.T) {
	m := newFakeManifold(3)
	m.areaMatrix = [][]float64{
		{104.55, 0, 0},
		{0, 6.38, 0},
		{0, 0, 6.38},
	}

	area := MaximalCuspArea(m, NewNopLogger())
	assert.InDelta(t, 10.2249, area, 1e-3)
	assert.Equal(t, "trigDependent", *m.areaMethod)
}

func TestMaximalCuspArea_FallbackOnError(t *testing.T) {
	m := newFakeManifold(1)
	m.areaErr = errors.New("no cusp area matrix for this triangulation")

	assert.Equal(t, 5.0, MaximalCuspArea(m, NewNopLogger()))
}

type panickyManifold struct{ *fakeManifold }

func (p panickyManifold) CuspAreaMatrix(method string) ([][]float64, error) {
	panic("not implemented for this manifold kind")
}

func (p panickyManifold) Copy() Manifold { return p }

func TestMaximalCuspArea_FallbackOnPanic(t *testing.T) {
	m := panickyManifold{newFakeManifold(1)}
	assert.Equal(t, 5.0, MaximalCuspArea(m, NewNopLogger()))
}

func TestMaximalCuspArea_ProbeDoesNotDisturbManifold(t *testing.T) {
	m := newFakeManifold(2)
	m.fillings = []Filling{{1, 2}, {3, 4}}

	MaximalCuspArea(m, NewNopLogger())

	assert.Equal(t, []Filling{{1, 2}, {3, 4}}, m.CuspInfo(),
		"the unfilled probe must run on a copy")
	assert.Equal(t, 0, m.structureCalls)
}

func TestCuspAreaSliderBound(t *testing.T) {
	m := newFakeManifold(1)
	// Diagonal entry 16 -> maximal area 4 -> bound 4.2.
	assert.InDelta(t, 4.2, CuspAreaSliderBound(m, NewNopLogger()), 1e-12)
}

func ExamplePhase_String() {
	fmt.Println(PhaseFillingsPushed)
	// Output: FillingsPushed
}
