package viewer

import "sync"

// Key is a platform independent key code
type Key int

const (
	KeyUnknown Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyZ
	KeyX
	KeyC
	KeyV
	KeyR
	KeyL
	Key1
	Key2
	Key3
	KeyEscape
)

var keyNames = map[Key]string{
	KeyLeft:   "left",
	KeyRight:  "right",
	KeyUp:     "up",
	KeyDown:   "down",
	KeyZ:      "z",
	KeyX:      "x",
	KeyC:      "c",
	KeyV:      "v",
	KeyR:      "r",
	KeyL:      "l",
	Key1:      "1",
	Key2:      "2",
	Key3:      "3",
	KeyEscape: "escape",
}

func (k Key) String() string {
	if s, ok := keyNames[k]; ok {
		return s
	}
	return "unknown"
}

// Input collects the keyboard and mouse state between frames. Event
// callbacks and frame code may run on different goroutines.
type Input struct {
	lock      sync.Mutex
	pressed   map[Key]bool
	hits      map[Key]bool
	mouseDown bool
	prevX     float64
	prevY     float64
	currX     float64
	currY     float64
}

func NewInput() *Input {
	return &Input{
		pressed: make(map[Key]bool),
		hits:    make(map[Key]bool),
	}
}

func (in *Input) Press(k Key) {
	in.lock.Lock()
	defer in.lock.Unlock()
	if !in.pressed[k] {
		in.hits[k] = true
	}
	in.pressed[k] = true
}

func (in *Input) Release(k Key) {
	in.lock.Lock()
	defer in.lock.Unlock()
	delete(in.pressed, k)
}

// Pressed returns true while the key is held down
func (in *Input) Pressed(k Key) bool {
	in.lock.Lock()
	defer in.lock.Unlock()
	return in.pressed[k]
}

// Hit returns true once for every press of the key
func (in *Input) Hit(k Key) bool {
	in.lock.Lock()
	defer in.lock.Unlock()
	hit := in.hits[k]
	delete(in.hits, k)
	return hit
}

func (in *Input) MouseDown(x, y float64) {
	in.lock.Lock()
	defer in.lock.Unlock()
	in.mouseDown = true
	in.prevX, in.prevY = x, y
	in.currX, in.currY = x, y
}

func (in *Input) MouseUp() {
	in.lock.Lock()
	defer in.lock.Unlock()
	in.mouseDown = false
}

func (in *Input) MouseMove(x, y float64) {
	in.lock.Lock()
	defer in.lock.Unlock()
	in.currX, in.currY = x, y
}

// Drag returns the mouse movement since the last call while a button is
// held down
func (in *Input) Drag() (dx, dy float64, dragging bool) {
	in.lock.Lock()
	defer in.lock.Unlock()
	if !in.mouseDown {
		return 0, 0, false
	}
	dx, dy = in.currX-in.prevX, in.currY-in.prevY
	in.prevX, in.prevY = in.currX, in.currY
	return dx, dy, true
}

// Reset forgets all pressed keys and mouse buttons
func (in *Input) Reset() {
	in.lock.Lock()
	defer in.lock.Unlock()
	in.pressed = make(map[Key]bool)
	in.hits = make(map[Key]bool)
	in.mouseDown = false
}
