// ABOUTME: State is a type-keyed bag of values handed to components on every draw
// ABOUTME: StateGet looks a value up by its static type

package superconsole

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrStateMissing is returned when a component asks for a value the
// caller did not put in the State.
var ErrStateMissing = errors.New("value missing from state")

// State holds at most one value per concrete type. Components read what
// they need with StateGet; the console never inspects it.
type State struct {
	values map[reflect.Type]any
}

// NewState returns a State holding values. A later value replaces an
// earlier one of the same type.
func NewState(values ...any) *State {
	s := &State{values: make(map[reflect.Type]any, len(values))}
	for _, v := range values {
		s.With(v)
	}
	return s
}

// With stores v, replacing any value of the same type, and returns s.
func (s *State) With(v any) *State {
	if v == nil {
		return s
	}
	if s.values == nil {
		s.values = make(map[reflect.Type]any)
	}
	s.values[reflect.TypeOf(v)] = v
	return s
}

// Len returns the number of values held.
func (s *State) Len() int {
	if s == nil {
		return 0
	}
	return len(s.values)
}

// StateGet returns the value of type T held by s.
func StateGet[T any](s *State) (T, error) {
	var zero T
	t := reflect.TypeFor[T]()
	if s == nil {
		return zero, fmt.Errorf("%w: %s", ErrStateMissing, t)
	}
	v, ok := s.values[t]
	if !ok {
		return zero, fmt.Errorf("%w: %s", ErrStateMissing, t)
	}
	return v.(T), nil
}
