package ui

// FocusLayer represents what component currently owns keyboard input
type FocusLayer int

const (
	FocusMain  FocusLayer = iota // Active panel, including its own forms
	FocusHelp                    // Help dialog open
	FocusAlert                   // Blocking alert (highest priority)
)

// String returns a human-readable name for the focus layer
func (f FocusLayer) String() string {
	switch f {
	case FocusMain:
		return "Main"
	case FocusHelp:
		return "Help"
	case FocusAlert:
		return "Alert"
	default:
		return "Unknown"
	}
}

// FocusStack manages the stack of focus layers.
// The stack always has at least one element (FocusMain at the bottom).
type FocusStack struct {
	stack []FocusLayer
}

// NewFocusStack creates a new focus stack with FocusMain as the base layer
func NewFocusStack() FocusStack {
	return FocusStack{
		stack: []FocusLayer{FocusMain},
	}
}

// Push adds a new focus layer to the top of the stack.
// Does nothing if the layer is already at the top.
func (f *FocusStack) Push(layer FocusLayer) {
	if len(f.stack) > 0 && f.stack[len(f.stack)-1] == layer {
		return
	}
	f.stack = append(f.stack, layer)
}

// Current returns the current focus layer (top of stack)
func (f *FocusStack) Current() FocusLayer {
	if len(f.stack) == 0 {
		return FocusMain
	}
	return f.stack[len(f.stack)-1]
}

// Has returns true if the given layer is anywhere in the stack
func (f *FocusStack) Has(layer FocusLayer) bool {
	for _, l := range f.stack {
		if l == layer {
			return true
		}
	}
	return false
}

// Remove removes a specific layer from anywhere in the stack
func (f *FocusStack) Remove(layer FocusLayer) {
	if layer == FocusMain {
		return
	}
	newStack := make([]FocusLayer, 0, len(f.stack))
	for _, l := range f.stack {
		if l != layer {
			newStack = append(newStack, l)
		}
	}
	if len(newStack) == 0 {
		newStack = []FocusLayer{FocusMain}
	}
	f.stack = newStack
}
