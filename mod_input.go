package hypview

// Key and button codes for navigation input. The front end (GUI toolkit,
// terminal, test harness) translates its own events into these and feeds
// them through the Input methods; nothing here depends on a windowing
// library.
const (
	KeyA int = iota
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	KeyRight
	KeyLeft
	KeyDown
	KeyUp
	KeyShift
	KeyAlt
	MouseButtonLeft
	MouseButtonRight
	MouseButtonMiddle

	keyCount
)

type InputModule struct{}

type Input struct {
	Pressed [keyCount]bool

	JustPressed  [keyCount]bool
	JustReleased [keyCount]bool

	MouseX, MouseY           float64
	MouseDeltaX, MouseDeltaY float64

	pendingPress   []int
	pendingRelease []int
	pendingMouseX  float64
	pendingMouseY  float64
	mouseMoved     bool
}

func (mod InputModule) Install(app *App, cmd *Commands) {
	cmd.AddResources(&Input{})
	cmd.UseSystem(System(inputSystem).InStage(PreUpdate))
}

// Press records a key or button going down; it takes effect at the start of
// the next frame.
func (in *Input) Press(key int) {
	in.pendingPress = append(in.pendingPress, key)
}

func (in *Input) Release(key int) {
	in.pendingRelease = append(in.pendingRelease, key)
}

func (in *Input) MouseMove(x, y float64) {
	in.pendingMouseX = x
	in.pendingMouseY = y
	in.mouseMoved = true
}

// inputSystem folds the events queued since the previous frame into the
// per-frame pressed/just-pressed view that the navigation systems read.
func inputSystem(input *Input) {
	for key := range input.JustPressed {
		input.JustPressed[key] = false
		input.JustReleased[key] = false
	}

	for _, key := range input.pendingPress {
		if !input.Pressed[key] {
			input.JustPressed[key] = true
		}
		input.Pressed[key] = true
	}
	input.pendingPress = input.pendingPress[:0]

	for _, key := range input.pendingRelease {
		if input.Pressed[key] {
			input.JustReleased[key] = true
		}
		input.Pressed[key] = false
	}
	input.pendingRelease = input.pendingRelease[:0]

	if input.mouseMoved {
		input.MouseDeltaX = input.pendingMouseX - input.MouseX
		input.MouseDeltaY = input.pendingMouseY - input.MouseY
		input.MouseX = input.pendingMouseX
		input.MouseY = input.pendingMouseY
		input.mouseMoved = false
	} else {
		input.MouseDeltaX = 0
		input.MouseDeltaY = 0
	}
}
