/*
 * Copyright (c) 2021-present unTill Pro, Ltd.
 */

package trove

import "github.com/google/uuid"

// Header is the common part of every managed object. Embed it by value:
//
//	type myObject struct {
//		trove.Header
//		...
//	}
type Header struct {
	refCount  int
	managed   bool
	destroyed bool
	createdAt string
}

// Pool is an autorelease pool: the objects registered into it are released once each, in registration order, on Pop()
type Pool struct {
	objects []IObject
	parent  *Pool
}

// Stack is a stack of autorelease pools
// not safe for concurrent use: use one Stack per goroutine
type Stack struct {
	id              uuid.UUID
	current         *Pool
	depth           int
	initialCapacity int
	orphans         int
}

// Config configures a Stack and the ambient diagnostics
type Config struct {
	// InitialCapacity is the amount of slots each new pool allocates for registered objects
	InitialCapacity int `toml:"initial_capacity"`

	// Debug turns on leak tracking, see SetDebug()
	Debug bool `toml:"debug"`

	// Verbosity and LogPath are passed to commonlog.Configure() by the driver
	Verbosity int    `toml:"verbosity"`
	LogPath   string `toml:"log_path"`
}

type stackFrame struct {
	fn   string
	file string
	line int
}

type stackTrace []stackFrame
