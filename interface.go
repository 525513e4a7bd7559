/*
 * Copyright (c) 2023-present unTill Pro, Ltd. and Contributors
 *
 * This source code is licensed under the MIT license found in the
 * LICENSE file in the root directory of this source tree.
 */

// Package trove provides reference counted objects and stacks of autorelease pools that defer their release
package trove

// IObject is a reference counted value
// every managed type must embed Header (which provides the unexported accessor) and implement Destroy()
// constructor must finish with Manage(obj) so the caller becomes the first owner
type IObject interface {
	// Destroy frees everything the object owns
	// called by Release() when the reference count drops to zero or below
	// must not be called directly
	Destroy()

	header() *Header
}
