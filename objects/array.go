/*
 * Copyright (c) 2023-present unTill Pro, Ltd. and Contributors
 *
 * This source code is licensed under the MIT license found in the
 * LICENSE file in the root directory of this source tree.
 */

package objects

import "github.com/wess/trove"

// Array owns its elements: each appended element is retained and released on Destroy()
type Array struct {
	trove.Header
	items []trove.IObject

	OnDestroy func()
}

// NewArray creates an empty array owned by the caller
func NewArray(capacity int) *Array {
	return trove.Manage(&Array{items: make([]trove.IObject, 0, capacity)})
}

// AutoArray creates an array and autoreleases it into the current pool of the stack
func AutoArray(st *trove.Stack, capacity int) *Array {
	return trove.AutoreleaseTo(st, NewArray(capacity))
}

// Append retains obj and stores it. nil and typed nil pointers are ignored
func (a *Array) Append(obj trove.IObject) {
	if trove.IsNil(obj) {
		return
	}
	trove.Retain(obj)
	a.items = append(a.items, obj)
}

// At returns the element borrowed: retain it to keep it beyond the array lifetime
func (a *Array) At(i int) trove.IObject {
	return a.items[i]
}

// Len returns the amount of elements
func (a *Array) Len() int {
	return len(a.items)
}

// Destroy releases the elements in the order they were appended
func (a *Array) Destroy() {
	if a.OnDestroy != nil {
		a.OnDestroy()
	}
	for _, item := range a.items {
		trove.Release(item)
	}
	a.items = nil
}
