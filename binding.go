package tabstrip

// State is a small observable value shared between the bar and the
// embedding application. The bar mutates it internally; the application can
// read it, subscribe to changes, and push values back. Setting an equal
// value is a no-op, which keeps the notification cycle convergent.
type State[T comparable] struct {
	value     T
	listeners []func(T)
}

func NewState[T comparable](v T) *State[T] {
	return &State[T]{value: v}
}

func (s *State[T]) Get() T { return s.value }

// Set stores v and notifies listeners in registration order. Equal values
// are ignored.
func (s *State[T]) Set(v T) {
	if s.value == v {
		return
	}
	s.value = v
	for _, fn := range s.listeners {
		fn(v)
	}
}

// OnChange registers a listener called after every value change.
func (s *State[T]) OnChange(fn func(T)) {
	s.listeners = append(s.listeners, fn)
}
