package component

import (
	"errors"
	"sync/atomic"
)

var (
	ErrEntityNotAlive = errors.New("ecs: entity not alive")
	ErrInvalidKind    = errors.New("ecs: invalid component kind")
)

// ID uniquely identifies a component type for the lifetime of the process.
type ID uint32

// Kind is the type-erased view of a component kind, used where heterogeneous
// kinds travel together (queries, storage lookup).
type Kind interface {
	ID() ID
	Valid() bool
}

type ComponentKind[T any] struct {
	id ID
}

func NewComponentKind[T any]() ComponentKind[T] {
	return ComponentKind[T]{id: ID(nextID.Add(1))}
}

func (k ComponentKind[T]) ID() ID {
	return k.id
}

func (k ComponentKind[T]) Valid() bool {
	return k.id != 0
}

// ComponentHandle pairs a component type with its registered kind. Component
// definitions declare a package-level handle via NewComponent.
type ComponentHandle[T any] struct {
	kind ComponentKind[T]
}

func NewComponent[T any]() ComponentHandle[T] {
	return ComponentHandle[T]{kind: NewComponentKind[T]()}
}

func (h ComponentHandle[T]) Kind() ComponentKind[T] {
	return h.kind
}

var nextID atomic.Uint32
