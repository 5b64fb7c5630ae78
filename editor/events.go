package editor

// Button identifies a pointer button.
type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
)

// Key is the editor's own key code; the host translates from its input
// layer.
type Key int

const (
	KeyNone Key = iota
	KeyEscape
	KeyEnter
	KeyBackspace
	KeyTab
	KeyS
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
)

// Event is a discrete input event delivered to Session.HandleEvent.
type Event interface{ isEvent() }

type MouseMove struct {
	X, Y float32
}

type MouseDown struct {
	Button Button
}

type MouseUp struct {
	Button Button
}

type Scroll struct {
	Delta float32
}

type KeyDown struct {
	Key    Key
	Repeat bool
	Ctrl   bool
}

type KeyUp struct {
	Key Key
}

// Char is a text-input codepoint, delivered only while a text dialog has
// focus.
type Char struct {
	Rune rune
}

func (MouseMove) isEvent() {}
func (MouseDown) isEvent() {}
func (MouseUp) isEvent()   {}
func (Scroll) isEvent()    {}
func (KeyDown) isEvent()   {}
func (KeyUp) isEvent()     {}
func (Char) isEvent()      {}
