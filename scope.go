/*
 * Copyright (c) 2023-present unTill Pro, Ltd. and Contributors
 *
 * This source code is licensed under the MIT license found in the
 * LICENSE file in the root directory of this source tree.
 */

package trove

// Scope runs fn inside a new pool of the default stack
// objects autoreleased within fn are released when fn returns or panics
//
//	trove.Scope(func() {
//		s := trove.Autorelease(objects.NewString("Hello, world!"))
//		// no need to release s
//	})
func Scope(fn func()) {
	defaultStack.Scope(fn)
}

// Scope pushes a pool, runs fn and pops the pool on every exit path including panic
func (s *Stack) Scope(fn func()) {
	s.Push()
	defer s.Pop()
	fn()
}

// ScopeErr is Scope() for funcs that fail. The pool is popped before the error is returned
func (s *Stack) ScopeErr(fn func() error) error {
	s.Push()
	defer s.Pop()
	return fn()
}
