/*
 * Copyright (c) 2023-present unTill Pro, Ltd. and Contributors
 *
 * This source code is licensed under the MIT license found in the
 * LICENSE file in the root directory of this source tree.
 */

package trove

import (
	"fmt"
	"io"
	"runtime"
	"sort"
	"strings"
	"sync/atomic"
)

// GetObjectsInUse returns total amount of managed objects that are constructed but not destroyed yet, across all stacks
// useful in tests
func GetObjectsInUse() uint64 {
	return atomic.LoadUint64(&objectsInUse)
}

// PrintLeaked prints how many objects are not destroyed yet per construction trace, the most leaking constructor goes first
// note: debug mode must be turned on by `trove.SetDebug(true)` call before the objects are constructed
func PrintLeaked(w io.Writer) {
	leaks := leaked()
	if len(leaks) == 0 {
		return
	}
	fmt.Fprintln(w, "objects constructed but not destroyed:")
	for _, l := range leaks {
		trace := "\t" + strings.ReplaceAll(l.trace, "\n", "\n\t")
		trace = trace[:len(trace)-1]
		fmt.Fprintf(w, "%d not destroyed, constructed by:\n%s", l.amount, trace)
	}
}

// SetDebug switches debug mode. In debug mode the engine tracks amounts of not destroyed objects
// per each construction source code point (for all stacks) and reports over-releases
// use PrintLeaked() to get explanations
// useful for investigations only, decreases performance
func SetDebug(IsDebug bool) {
	isDebug = IsDebug
}

type leak struct {
	trace  string
	amount int
}

func leaked() []leak {
	m.Lock()
	res := []leak{}
	for trace, amount := range objAmounts {
		if amount > 0 {
			res = append(res, leak{trace: trace, amount: amount})
		}
	}
	m.Unlock()
	sort.Slice(res, func(i, j int) bool {
		if res[i].amount != res[j].amount {
			return res[i].amount > res[j].amount
		}
		return res[i].trace < res[j].trace
	})
	return res
}

// constructionTrace captures the constructor that called Manage() and its callers
// runtime frames carry nothing about who owns the object and are skipped
func constructionTrace() stackTrace {
	pc := make([]uintptr, 32)
	n := runtime.Callers(3, pc) // runtime.Callers, constructionTrace, Manage
	frames := runtime.CallersFrames(pc[:n])
	st := stackTrace{}
	for {
		frame, more := frames.Next()
		if !strings.HasPrefix(frame.Function, "runtime.") {
			st = append(st, stackFrame{
				fn:   frame.Function,
				file: frame.File,
				line: frame.Line,
			})
		}
		if !more {
			break
		}
	}
	return st
}
