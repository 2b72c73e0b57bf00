package tabstrip

// Haptics emits one feedback pulse per qualifying selection or focus
// change. The default is a no-op; the embedding application wires a real
// backend (device vibration, an audible click, ...).
type Haptics interface {
	Pulse()
}

// HapticsFunc adapts a plain function to the Haptics interface.
type HapticsFunc func()

func (f HapticsFunc) Pulse() { f() }

type noopHaptics struct{}

func (noopHaptics) Pulse() {}
