//go:build !tinygo && !cgo

package hal

// hostKeyboard without cgo has no window to read from; Events never fires.
type hostKeyboard struct {
	ch chan KeyEvent
}

func newHostKeyboard() *hostKeyboard {
	return &hostKeyboard{ch: make(chan KeyEvent)}
}

func (k *hostKeyboard) Events() <-chan KeyEvent { return k.ch }
