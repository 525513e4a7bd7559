/*
 * Copyright (c) 2023-present unTill Pro, Ltd. and Contributors
 *
 * This source code is licensed under the MIT license found in the
 * LICENSE file in the root directory of this source tree.
 */

// Package objects contains sample managed types built on trove
package objects

import (
	"github.com/valyala/bytebufferpool"

	"github.com/wess/trove"
)

// String is a managed text value. The text is held in a pooled buffer which is returned on Destroy()
type String struct {
	trove.Header
	buf *bytebufferpool.ByteBuffer

	// OnDestroy is called by Destroy() while the text is still readable
	OnDestroy func()
}

// NewString creates a string owned by the caller
func NewString(init string) *String {
	s := &String{buf: bytebufferpool.Get()}
	s.buf.SetString(init)
	return trove.Manage(s)
}

// AutoString creates a string and autoreleases it into the current pool of the stack
func AutoString(st *trove.Stack, init string) *String {
	return trove.AutoreleaseTo(st, NewString(init))
}

// Value returns the text, empty after Destroy()
func (s *String) Value() string {
	if s.buf == nil {
		return ""
	}
	return s.buf.String()
}

// Len returns the length of the text in bytes, 0 after Destroy()
func (s *String) Len() int {
	if s.buf == nil {
		return 0
	}
	return s.buf.Len()
}

// Destroy calls OnDestroy and returns the text buffer to the buffer pool
func (s *String) Destroy() {
	if s.OnDestroy != nil {
		s.OnDestroy()
	}
	if s.buf != nil {
		bytebufferpool.Put(s.buf)
		s.buf = nil
	}
}
