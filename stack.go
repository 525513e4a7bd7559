/*
 * Copyright (c) 2023-present unTill Pro, Ltd. and Contributors
 *
 * This source code is licensed under the MIT license found in the
 * LICENSE file in the root directory of this source tree.
 */

package trove

import (
	"errors"

	"github.com/google/uuid"
	"golang.org/x/exp/slices"
)

// ErrNoPool is returned by Stack.Add() if there is no pool to register the object into
var ErrNoPool = errors.New("no autorelease pool in place")

var defaultStack = NewStack(DefaultConfig())

// NewStack creates an empty stack. Push() must be called before autoreleasing into it
func NewStack(cfg Config) *Stack {
	capacity := cfg.InitialCapacity
	if capacity <= 0 {
		capacity = DefaultInitialCapacity
	}
	return &Stack{
		id:              uuid.New(),
		initialCapacity: capacity,
	}
}

// Default returns the process-wide stack used by Push(), Pop(), Autorelease() and Scope()
func Default() *Stack {
	return defaultStack
}

// Push opens a new pool on the default stack
func Push() {
	defaultStack.Push()
}

// Pop drains the current pool of the default stack, see Stack.Pop()
func Pop() bool {
	return defaultStack.Pop()
}

// ID identifies the stack in diagnostics
func (s *Stack) ID() uuid.UUID {
	return s.id
}

// Push opens a new pool and makes it current. The previous current pool is restored by the matching Pop()
func (s *Stack) Push() {
	s.current = &Pool{
		objects: make([]IObject, 0, s.initialCapacity),
		parent:  s.current,
	}
	s.depth++
	logger.Debugf("stack %s: pushed pool, depth %d", s.id, s.depth)
}

// Pop releases each object registered in the current pool once, in registration order, and restores the enclosing pool
// pool is detached before releasing so objects autoreleased by destructors go to the enclosing pool
// if a destructor panics the rest of the pool is still released, then the panic goes on
// returns false and does nothing if there is no pool
func (s *Stack) Pop() bool {
	pool := s.current
	if pool == nil {
		logger.Debugf("stack %s: pop with no autorelease pool", s.id)
		return false
	}
	s.current = pool.parent
	s.depth--
	releaseAll(pool.objects)
	logger.Debugf("stack %s: popped pool of %d objects, depth %d", s.id, len(pool.objects), s.depth)
	pool.objects = nil
	pool.parent = nil
	return true
}

func releaseAll(objects []IObject) {
	next := 0
	defer func() {
		if next < len(objects) {
			releaseAll(objects[next:])
		}
	}()
	for next < len(objects) {
		obj := objects[next]
		next++
		Release(obj)
	}
}

// Add registers the object into the current pool without changing its reference count. nil is ignored
// returns ErrNoPool if there is no pool: the object is not registered and will leak unless released by someone else
func (s *Stack) Add(obj IObject) error {
	if IsNil(obj) {
		return nil
	}
	pool := s.current
	if pool == nil {
		s.orphans++
		logger.Errorf("stack %s: %s, %T is not registered", s.id, ErrNoPool, obj)
		return ErrNoPool
	}
	if len(pool.objects) == cap(pool.objects) {
		pool.objects = slices.Grow(pool.objects, cap(pool.objects))
	}
	pool.objects = append(pool.objects, obj)
	return nil
}

// Current returns the current pool, nil if there is no pool
func (s *Stack) Current() *Pool {
	return s.current
}

// Depth returns the amount of pushed but not popped pools
func (s *Stack) Depth() int {
	return s.depth
}

// Pending returns the amount of objects registered in the current pool
func (s *Stack) Pending() int {
	if s.current == nil {
		return 0
	}
	return len(s.current.objects)
}

// Orphans returns the amount of objects that were autoreleased while there was no pool
func (s *Stack) Orphans() int {
	return s.orphans
}

// Len returns the amount of registered objects
func (p *Pool) Len() int {
	return len(p.objects)
}

// Cap returns the amount of objects the pool can hold before growing
func (p *Pool) Cap() int {
	return cap(p.objects)
}

// Objects returns a copy of the registered objects in registration order
func (p *Pool) Objects() []IObject {
	return slices.Clone(p.objects)
}
