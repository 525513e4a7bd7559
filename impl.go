/*
 * Copyright (c) 2020-present unTill Pro, Ltd.
 */

package trove

import (
	"bytes"
	"fmt"
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/tliron/commonlog"
)

var (
	m            sync.Mutex = sync.Mutex{}
	objectsInUse uint64
	isDebug      bool
	objAmounts   map[string]int = map[string]int{}
)

var logger = commonlog.GetLogger("trove")

// string formats the construction trace, the constructor that called Manage() goes first
func (st stackTrace) string() string {
	buf := bytes.NewBufferString("")
	for i, sf := range st {
		if i == 0 {
			fmt.Fprintf(buf, "%s (constructor)\n", sf.fn)
		} else {
			fmt.Fprintf(buf, "%s\n", sf.fn)
		}
		fmt.Fprintf(buf, "\t%s:%d\n", sf.file, sf.line)
	}
	return buf.String()
}

func (h *Header) header() *Header {
	return h
}

// RefCount returns the amount of owners of the object
func (h *Header) RefCount() int {
	return h.refCount
}

// Manage finishes the construction of a managed object: reference count is set to 1 and the caller becomes the owner
// must be called by the constructor right before returning the object
func Manage[T IObject](obj T) T {
	h := obj.header()
	h.refCount = 1
	h.managed = true
	h.destroyed = false
	atomic.AddUint64(&objectsInUse, 1)
	if isDebug {
		st := constructionTrace().string()
		h.createdAt = st
		m.Lock()
		objAmounts[st]++
		m.Unlock()
	}
	return obj
}

// RefCount returns the reference count of the object, 0 for nil
func RefCount(obj IObject) int {
	if IsNil(obj) {
		return 0
	}
	return obj.header().refCount
}

// Retain claims one more ownership of the object. nil is ignored
func Retain(obj IObject) {
	if IsNil(obj) {
		return
	}
	obj.header().refCount++
}

// Release gives up one ownership of the object. nil is ignored
// calls obj.Destroy() when the reference count drops to zero or below
// releasing more times than retained is a caller error: Destroy() will be called again
// objects that did not pass Manage() are destroyed as well but are not counted by GetObjectsInUse()
func Release(obj IObject) {
	if IsNil(obj) {
		return
	}
	h := obj.header()
	h.refCount--
	if h.refCount > 0 {
		return
	}
	if h.destroyed {
		if isDebug {
			logger.Errorf("over-release of %T, reference count %d", obj, h.refCount)
		}
	} else if h.managed {
		h.destroyed = true
		atomic.AddUint64(&objectsInUse, ^uint64(0))
		if isDebug && len(h.createdAt) > 0 {
			m.Lock()
			objAmounts[h.createdAt]--
			m.Unlock()
		}
	}
	obj.Destroy()
}

// Autorelease registers the object into the current pool of the default stack and returns the object
// reference count is not changed: the construction ownership is passed to the pool
func Autorelease[T IObject](obj T) T {
	return AutoreleaseTo(defaultStack, obj)
}

// AutoreleaseTo is Autorelease() for the explicit stack
// object is not registered anywhere if the stack has no pool, see Stack.Add()
func AutoreleaseTo[T IObject](s *Stack, obj T) T {
	_ = s.Add(obj)
	return obj
}

// IsNil reports whether obj is nil or a typed nil pointer
func IsNil(obj IObject) bool {
	if obj == nil {
		return true
	}
	v := reflect.ValueOf(obj)
	return v.Kind() == reflect.Ptr && v.IsNil()
}
