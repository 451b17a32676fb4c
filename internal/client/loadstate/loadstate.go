// Package loadstate models the lifecycle of one remote fetch as a tagged
// union: Idle, Pending, Loaded(value) or Failed(message). A State holds
// exactly one tag; the zero value is Idle.
package loadstate

import (
	"errors"
	"fmt"
)

type Tag int

const (
	TagIdle Tag = iota
	TagPending
	TagLoaded
	TagFailed
)

func (t Tag) String() string {
	switch t {
	case TagIdle:
		return "idle"
	case TagPending:
		return "pending"
	case TagLoaded:
		return "loaded"
	case TagFailed:
		return "failed"
	}
	return fmt.Sprintf("tag(%d)", int(t))
}

var ErrInvalidTransition = errors.New("invalid load state transition")

// State is immutable; the constructors below are the only way to build a
// non-idle value.
type State[T any] struct {
	tag     Tag
	value   T
	message string
}

func Idle[T any]() State[T] { return State[T]{} }

func Pending[T any]() State[T] { return State[T]{tag: TagPending} }

func Loaded[T any](v T) State[T] { return State[T]{tag: TagLoaded, value: v} }

func Failed[T any](message string) State[T] { return State[T]{tag: TagFailed, message: message} }

func (s State[T]) Tag() Tag { return s.tag }

// Value returns the loaded value; ok is false for any other tag.
func (s State[T]) Value() (v T, ok bool) {
	if s.tag != TagLoaded {
		return v, false
	}
	return s.value, true
}

// Message returns the failure message; ok is false for any other tag.
func (s State[T]) Message() (string, bool) {
	if s.tag != TagFailed {
		return "", false
	}
	return s.message, true
}

// IsSettled reports whether a response has been applied.
func (s State[T]) IsSettled() bool {
	return s.tag == TagLoaded || s.tag == TagFailed
}

func (s State[T]) String() string {
	switch s.tag {
	case TagLoaded:
		return fmt.Sprintf("loaded(%v)", s.value)
	case TagFailed:
		return fmt.Sprintf("failed(%s)", s.message)
	}
	return s.tag.String()
}

// Transition validates a move between tags. A fresh request may start from
// any tag (it restarts the lifecycle); responses only apply to Pending.
func Transition(from, to Tag) error {
	switch to {
	case TagPending:
		return nil
	case TagLoaded, TagFailed:
		if from == TagPending {
			return nil
		}
	case TagIdle:
		// Idle is only reached by discarding the fetch target, which callers
		// model as a new State, not a transition.
	}
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
}
